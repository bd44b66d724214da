package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/heartmarshall/hanjadic/internal/domain"
	"github.com/heartmarshall/hanjadic/internal/provider"
	"github.com/heartmarshall/hanjadic/internal/service/hanja"
)

// NoResultMessage is the reply when no entry matches a query.
const NoResultMessage = "No result"

// lookupService defines the minimal interface needed by HanjaHandler.
type lookupService interface {
	Lookup(ctx context.Context, query string) (*hanja.Result, error)
}

// HanjaHandler serves the hanja lookup endpoint.
type HanjaHandler struct {
	svc lookupService
	log *slog.Logger
}

// NewHanjaHandler creates a HanjaHandler.
func NewHanjaHandler(svc lookupService, logger *slog.Logger) *HanjaHandler {
	return &HanjaHandler{svc: svc, log: logger.With("handler", "hanja")}
}

type lookupResponse struct {
	Query    string          `json:"query"`
	EntryID  string          `json:"entryId"`
	Headword string          `json:"headword"`
	Reading  string          `json:"reading"`
	Blocks   []blockResponse `json:"blocks"`
	Text     string          `json:"text"`
}

type blockResponse struct {
	Kind    string   `json:"kind"`
	Text    string   `json:"text,omitempty"`
	Phrase  string   `json:"phrase,omitempty"`
	Reading *string  `json:"reading,omitempty"`
	Source  *string  `json:"source,omitempty"`
	Items   []string `json:"items,omitempty"`
}

// Lookup handles GET /api/v1/hanja?q=<query>.
// The reply is JSON unless ?format=text is given or the client accepts
// text/plain but not JSON.
func (h *HanjaHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	plain := wantsText(r)

	result, err := h.svc.Lookup(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		h.handleError(w, r, err, plain)
		return
	}

	if plain {
		writeText(w, http.StatusOK, result.Text)
		return
	}
	writeJSON(w, http.StatusOK, toLookupResponse(result))
}

func (h *HanjaHandler) handleError(w http.ResponseWriter, r *http.Request, err error, plain bool) {
	var (
		status  int
		message string
	)
	switch {
	case errors.Is(err, domain.ErrValidation):
		status, message = http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrNotFound):
		status, message = http.StatusNotFound, NoResultMessage
	case errors.Is(err, domain.ErrUnexpectedStructure):
		h.log.ErrorContext(r.Context(), "upstream structure changed", slog.String("error", err.Error()))
		status, message = http.StatusBadGateway, "unexpected upstream response"
	case errors.Is(err, domain.ErrUpstream):
		h.log.WarnContext(r.Context(), "upstream unavailable", slog.String("error", err.Error()))
		status, message = http.StatusBadGateway, "dictionary unavailable"
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		status, message = http.StatusInternalServerError, "internal server error"
	}

	if plain {
		writeText(w, status, message)
		return
	}
	writeError(w, status, message)
}

func wantsText(r *http.Request) bool {
	switch r.URL.Query().Get("format") {
	case "text":
		return true
	case "json":
		return false
	}
	accept := r.Header.Get("Accept")
	return strings.Contains(accept, "text/plain") && !strings.Contains(accept, "application/json")
}

func toLookupResponse(res *hanja.Result) lookupResponse {
	blocks := make([]blockResponse, 0, len(res.Entry.Blocks))
	for _, b := range res.Entry.Blocks {
		br := blockResponse{Kind: string(b.Kind())}
		switch v := b.(type) {
		case provider.PlainExample:
			br.Text = v.Text
		case provider.PhraseExample:
			br.Phrase = v.Phrase
			br.Reading = v.Reading
			br.Source = v.Source
		case provider.CrossReference:
			br.Items = v.Items
		}
		blocks = append(blocks, br)
	}

	return lookupResponse{
		Query:    res.Query,
		EntryID:  res.EntryID,
		Headword: res.Headword,
		Reading:  strings.TrimSpace(res.Entry.Reading),
		Blocks:   blocks,
		Text:     res.Text,
	}
}
