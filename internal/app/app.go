package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"

	"github.com/heartmarshall/hanjadic/internal/adapter/provider/daum"
	"github.com/heartmarshall/hanjadic/internal/config"
	"github.com/heartmarshall/hanjadic/internal/service/hanja"
	"github.com/heartmarshall/hanjadic/internal/transport/mcptool"
	"github.com/heartmarshall/hanjadic/internal/transport/middleware"
	"github.com/heartmarshall/hanjadic/internal/transport/rest"
)

// Version, Commit, and BuildTime are set via ldflags at build time.
// Example: go build -ldflags "-X github.com/heartmarshall/hanjadic/internal/app.Version=1.0.0"
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion returns a formatted version string for startup logs and health endpoints.
func BuildVersion() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildTime)
}

// App holds the wired components shared by every entry point.
type App struct {
	Config   *config.Config
	Logger   *slog.Logger
	Provider *daum.Provider
	Service  *hanja.Service
}

// New wires the dictionary provider and lookup service from cfg.
// Logs go to logOut.
func New(cfg *config.Config, logOut io.Writer) *App {
	logger := NewLogger(cfg.Log, logOut)

	dict := daum.NewProvider(cfg.Daum, daum.NewMatchers(), logger)
	svc := hanja.NewService(logger, dict, hanja.NewFormatter(cfg.Format.ReferMarker))

	return &App{
		Config:   cfg,
		Logger:   logger,
		Provider: dict,
		Service:  svc,
	}
}

// Handler builds the HTTP routes and middleware stack. limit guards the
// lookup endpoint only.
func (a *App) Handler(limit middleware.Middleware) http.Handler {
	health := rest.NewHealthHandler(a.Provider, BuildVersion())
	lookup := rest.NewHanjaHandler(a.Service, a.Logger)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /health", health.Health)
	mux.Handle("GET /api/v1/hanja", limit(http.HandlerFunc(lookup.Lookup)))

	return middleware.Chain(
		middleware.RequestID(),
		middleware.ClientIP(a.Config.Server.TrustProxy),
		middleware.Recovery(a.Logger),
		middleware.Logger(a.Logger),
		middleware.CORS(a.Config.CORS),
	)(mux)
}

// Serve runs the HTTP server on ln until ctx is cancelled, then shuts down
// gracefully within the configured timeout.
func (a *App) Serve(ctx context.Context, ln net.Listener) error {
	cfg := a.Config

	limit := middleware.Middleware(func(next http.Handler) http.Handler { return next })
	if cfg.RateLimit.RequestsPerMinute > 0 {
		rl := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
		defer rl.Stop()
		limit = rl.Limit(cfg.RateLimit.RequestsPerMinute)
	}

	srv := &http.Server{
		Handler:      a.Handler(limit),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(a.Logger.Handler(), slog.LevelWarn),
	}

	errCh := make(chan error, 1)
	go func() {
		a.Logger.Info("server listening",
			slog.String("addr", ln.Addr().String()),
			slog.String("version", BuildVersion()),
		)
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("app: serve: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	a.Logger.Info("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("app: shutdown: %w", err)
	}
	return nil
}

// ListenAndServe listens on the configured address and calls Serve.
func (a *App) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", a.Config.Server.Addr())
	if err != nil {
		return fmt.Errorf("app: listen %s: %w", a.Config.Server.Addr(), err)
	}
	return a.Serve(ctx, ln)
}

// ServeMCP serves the MCP tools on stdio until the input is closed.
func (a *App) ServeMCP() error {
	return mcptool.NewServer(a.Service, a.Logger, Version).ServeStdio()
}
