package kanjiapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/heartmarshall/kanjilens-backend/internal/domain"
)

const (
	defaultBaseURL = "https://kanjiapi.dev"
	retryBackoff   = 300 * time.Millisecond
	maxBodyBytes   = 1 << 20
)

// Provider fetches kanji metadata from kanjiapi.dev.
type Provider struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

// NewProvider creates a Provider. An empty baseURL selects the public API.
func NewProvider(baseURL string, timeout time.Duration, logger *slog.Logger) *Provider {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Provider{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "kanjiapi"),
	}
}

// FetchKanji returns metadata for a single kanji.
// Returns nil, nil if the API does not know the character (HTTP 404).
func (p *Provider) FetchKanji(ctx context.Context, kanji string) (*domain.KanjiInfo, error) {
	reqURL := p.baseURL + "/v1/kanji/" + url.PathEscape(kanji)

	p.log.DebugContext(ctx, "kanjiapi request", slog.String("kanji", kanji))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("kanjiapi: create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.doWithRetry(ctx, req, kanji)
	if err != nil {
		p.log.ErrorContext(ctx, "kanjiapi request failed", slog.String("kanji", kanji), slog.String("error", err.Error()))
		return nil, fmt.Errorf("kanjiapi: request failed: %w: %w", domain.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("kanjiapi: unexpected status %d: %w", resp.StatusCode, domain.ErrUnavailable)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("kanjiapi: read body: %w", err)
	}

	var k apiKanji
	if err := json.Unmarshal(body, &k); err != nil {
		return nil, fmt.Errorf("kanjiapi: decode json: %w", err)
	}
	if k.Kanji == "" {
		k.Kanji = kanji
	}

	info := k.toDomain()
	p.log.DebugContext(ctx, "kanjiapi response",
		slog.String("kanji", kanji),
		slog.Int("meanings", len(info.Meanings)),
	)
	return info, nil
}

// doWithRetry executes the request with a single retry on 5xx or network errors.
func (p *Provider) doWithRetry(ctx context.Context, req *http.Request, kanji string) (*http.Response, error) {
	resp, err := p.httpClient.Do(req)

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry {
		return resp, err
	}
	if ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil && resp != nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
	}
	p.log.WarnContext(ctx, "kanjiapi retry", slog.String("kanji", kanji), slog.String("reason", reason))

	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	select {
	case <-time.After(retryBackoff):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	return p.httpClient.Do(req)
}
