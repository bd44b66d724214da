// Package mcptool exposes hanja lookups as MCP tools over stdio.
package mcptool

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/heartmarshall/hanjadic/internal/domain"
	"github.com/heartmarshall/hanjadic/internal/service/hanja"
)

const (
	serverName = "hanjadic"

	// NoResultText is the reply when no entry matches a query.
	NoResultText = "No result"
	pongText     = "Pong!"
)

// lookupService defines the minimal interface needed by the tools.
type lookupService interface {
	Lookup(ctx context.Context, query string) (*hanja.Result, error)
}

// Server wires the lookup service to MCP tool handlers.
type Server struct {
	svc     lookupService
	log     *slog.Logger
	version string
}

// NewServer creates a Server.
func NewServer(svc lookupService, logger *slog.Logger, version string) *Server {
	return &Server{svc: svc, log: logger.With("transport", "mcp"), version: version}
}

// MCPServer builds the MCP server with all tools registered.
func (s *Server) MCPServer() *mcpserver.MCPServer {
	srv := mcpserver.NewMCPServer(serverName, s.version, mcpserver.WithToolCapabilities(false))
	srv.AddTool(lookupTool(), s.handleLookup)
	srv.AddTool(pingTool(), s.handlePing)
	return srv
}

// ServeStdio serves MCP on stdin/stdout until the input is closed.
func (s *Server) ServeStdio() error {
	s.log.Info("mcp server starting", slog.String("version", s.version))
	return mcpserver.ServeStdio(s.MCPServer())
}

var lookupAnnotation = mcp.ToolAnnotation{
	ReadOnlyHint:    mcp.ToBoolPtr(true),
	DestructiveHint: mcp.ToBoolPtr(false),
	IdempotentHint:  mcp.ToBoolPtr(true),
	OpenWorldHint:   mcp.ToBoolPtr(true),
}

func lookupTool() mcp.Tool {
	return mcp.NewTool("hanja_lookup",
		mcp.WithDescription("Look up a hanja character or word in the Daum hanja dictionary. Returns the Korean reading and usage examples as short markdown text."),
		mcp.WithToolAnnotation(lookupAnnotation),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Hanja character or word, e.g. 水 or 水道"),
		),
	)
}

func pingTool() mcp.Tool {
	return mcp.NewTool("ping",
		mcp.WithDescription("Check that the server is responsive."),
		mcp.WithToolAnnotation(mcp.ToolAnnotation{
			ReadOnlyHint:  mcp.ToBoolPtr(true),
			OpenWorldHint: mcp.ToBoolPtr(false),
		}),
	)
}

func (s *Server) handleLookup(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query := req.GetString("query", "")

	res, err := s.svc.Lookup(ctx, query)
	switch {
	case err == nil:
		return mcp.NewToolResultText(res.Text), nil
	case errors.Is(err, domain.ErrNotFound):
		return mcp.NewToolResultText(NoResultText), nil
	case errors.Is(err, domain.ErrValidation):
		return mcp.NewToolResultError("query is required"), nil
	default:
		s.log.ErrorContext(ctx, "lookup failed",
			slog.String("query", query),
			slog.String("error", err.Error()),
		)
		return mcp.NewToolResultError(fmt.Sprintf("lookup failed: %v", err)), nil
	}
}

func (s *Server) handlePing(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(pongText), nil
}
