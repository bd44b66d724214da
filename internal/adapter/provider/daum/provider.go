package daum

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/heartmarshall/hanjadic/internal/config"
	"github.com/heartmarshall/hanjadic/internal/domain"
	"github.com/heartmarshall/hanjadic/internal/provider"
)

const (
	searchPath     = "/search.do"
	entryPath      = "/word/view.do"
	supplementPath = "/word/view_supword.do"
)

// Provider looks up hanja entries on the Daum dictionary site.
// It keeps no per-query state and is safe for concurrent use.
type Provider struct {
	baseURL    string
	dictType   string
	supType    string
	userAgent  string
	maxBody    int64
	timeout    time.Duration
	httpClient *http.Client
	match      *Matchers
	log        *slog.Logger
}

// NewProvider creates a Provider from configuration. m is shared read-only.
func NewProvider(cfg config.DaumConfig, m *Matchers, logger *slog.Logger) *Provider {
	return &Provider{
		baseURL:    cfg.BaseURL,
		dictType:   cfg.DictType,
		supType:    cfg.SupType,
		userAgent:  cfg.UserAgent,
		maxBody:    cfg.MaxBodyBytes,
		timeout:    cfg.Timeout,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		match:      m,
		log:        logger.With("adapter", "daum"),
	}
}

// Resolve searches for query and returns the first result if its headword
// starts with query. Returns nil, nil if there is no such result.
func (p *Provider) Resolve(ctx context.Context, query string) (*provider.SearchMatch, error) {
	reqURL := p.searchURL(query)

	body, err := p.fetch(ctx, reqURL, "", "search")
	if err != nil {
		return nil, err
	}

	match, err := ParseSearch(bytes.NewReader(body), query, p.match)
	if err != nil {
		return nil, fmt.Errorf("daum: search: %w", err)
	}

	if match == nil {
		p.log.InfoContext(ctx, "daum no match", slog.String("query", query))
		return nil, nil
	}

	p.log.DebugContext(ctx, "daum match",
		slog.String("query", query),
		slog.String("entry_id", match.EntryID),
		slog.String("headword", match.Headword),
	)
	return match, nil
}

// FetchEntry loads the entry page for its reading and the supplementary
// examples fragment for its description. The fragment is only served when
// the entry page URL is sent as Referer.
func (p *Provider) FetchEntry(ctx context.Context, entryID string) (*provider.Entry, error) {
	entryURL := p.entryURL(entryID)

	page, err := p.fetch(ctx, entryURL, "", "entry page")
	if err != nil {
		return nil, err
	}

	reading, err := ExtractReading(bytes.NewReader(page), p.match)
	if err != nil {
		return nil, fmt.Errorf("daum: entry %s: %w", entryID, err)
	}

	fragment, err := p.fetch(ctx, p.supplementURL(entryID), entryURL, "supplement")
	if err != nil {
		return nil, err
	}

	blocks, err := ParseDescription(bytes.NewReader(fragment), p.match)
	if err != nil {
		return nil, fmt.Errorf("daum: entry %s: %w", entryID, err)
	}

	p.log.DebugContext(ctx, "daum entry",
		slog.String("entry_id", entryID),
		slog.Int("blocks", len(blocks)),
	)

	return &provider.Entry{Reading: reading, Blocks: blocks}, nil
}

// Ping checks that the dictionary site answers. Any status below 500 counts as up.
func (p *Provider) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, p.baseURL+"/", nil)
	if err != nil {
		return fmt.Errorf("daum: create request: %w", err)
	}
	p.setHeaders(req, "")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("daum: ping: %w: %w", domain.ErrUpstream, err)
	}
	resp.Body.Close()

	if resp.StatusCode >= 500 {
		return fmt.Errorf("daum: ping: %w: status %d", domain.ErrUpstream, resp.StatusCode)
	}
	return nil
}

// fetch GETs reqURL and returns the body. Every failure wraps domain.ErrUpstream.
func (p *Provider) fetch(ctx context.Context, reqURL, referer, what string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	p.log.DebugContext(ctx, "daum request", slog.String("kind", what), slog.String("url", reqURL))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("daum: %s: create request: %w", what, err)
	}
	p.setHeaders(req, referer)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		p.log.ErrorContext(ctx, "daum request failed",
			slog.String("kind", what),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("daum: %s: %w: %w", what, domain.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		p.log.ErrorContext(ctx, "daum unexpected status",
			slog.String("kind", what),
			slog.Int("status", resp.StatusCode),
		)
		return nil, fmt.Errorf("daum: %s: %w: unexpected status %d", what, domain.ErrUpstream, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, p.maxBody+1))
	if err != nil {
		return nil, fmt.Errorf("daum: %s: read body: %w: %w", what, domain.ErrUpstream, err)
	}
	if int64(len(body)) > p.maxBody {
		return nil, fmt.Errorf("daum: %s: %w: body exceeds %d bytes", what, domain.ErrUpstream, p.maxBody)
	}

	return body, nil
}

func (p *Provider) setHeaders(req *http.Request, referer string) {
	if p.userAgent != "" {
		req.Header.Set("User-Agent", p.userAgent)
	}
	req.Header.Set("Accept", "text/html")
	if referer != "" {
		req.Header.Set("Referer", referer)
	}
}

func (p *Provider) searchURL(query string) string {
	q := url.Values{"dic": {p.dictType}, "q": {query}}
	return p.baseURL + searchPath + "?" + q.Encode()
}

func (p *Provider) entryURL(entryID string) string {
	q := url.Values{"wordid": {entryID}}
	return p.baseURL + entryPath + "?" + q.Encode()
}

func (p *Provider) supplementURL(entryID string) string {
	q := url.Values{"suptype": {p.supType}, "wordid": {entryID}}
	return p.baseURL + supplementPath + "?" + q.Encode()
}
