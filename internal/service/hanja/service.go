package hanja

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/hanjadic/internal/domain"
	"github.com/heartmarshall/hanjadic/internal/provider"
)

type dictionaryProvider interface {
	Resolve(ctx context.Context, query string) (*provider.SearchMatch, error)
	FetchEntry(ctx context.Context, entryID string) (*provider.Entry, error)
}

// Service runs hanja lookups: resolve the query to an entry, fetch and parse
// it, and render the reply text. Lookups share no mutable state.
type Service struct {
	log    *slog.Logger
	dict   dictionaryProvider
	format Formatter
}

// NewService creates a new hanja lookup service.
func NewService(logger *slog.Logger, dict dictionaryProvider, format Formatter) *Service {
	return &Service{
		log:    logger.With("service", "hanja"),
		dict:   dict,
		format: format,
	}
}

// Result is the outcome of one successful lookup.
type Result struct {
	Query    string
	EntryID  string
	Headword string
	Entry    *provider.Entry
	Text     string
}

// Lookup finds the dictionary entry for query and renders it.
//
// Errors: *domain.ValidationError for an empty query, ErrNoResult (matches
// domain.ErrNotFound) when no headword starts with the query, and wrapped
// domain.ErrUpstream or domain.ErrUnexpectedStructure when fetching or
// parsing fails. Nothing is retried and no partial result is returned.
func (s *Service) Lookup(ctx context.Context, query string) (*Result, error) {
	normalized := domain.NormalizeQuery(query)
	if normalized == "" {
		return nil, domain.NewValidationError("query", "required")
	}

	match, err := s.dict.Resolve(ctx, normalized)
	if err != nil {
		s.log.ErrorContext(ctx, "search failed",
			slog.String("query", normalized),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("resolve %q: %w", normalized, err)
	}
	if match == nil {
		return nil, ErrNoResult
	}

	entry, err := s.dict.FetchEntry(ctx, match.EntryID)
	if err != nil {
		s.log.ErrorContext(ctx, "entry fetch failed",
			slog.String("query", normalized),
			slog.String("entry_id", match.EntryID),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("fetch entry %s: %w", match.EntryID, err)
	}

	s.log.InfoContext(ctx, "hanja lookup",
		slog.String("query", normalized),
		slog.String("entry_id", match.EntryID),
		slog.Int("blocks", len(entry.Blocks)),
	)

	return &Result{
		Query:    normalized,
		EntryID:  match.EntryID,
		Headword: match.Headword,
		Entry:    entry,
		Text:     s.format.Format(normalized, entry),
	}, nil
}
