package feed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"faqflip/internal/domain"
)

// HTTPProvider fetches the JSON entry array from an HTTP endpoint
type HTTPProvider struct {
	url    string
	client *http.Client
	log    *zap.Logger
}

// NewHTTPProvider creates a provider for url. A nil client gets a 15s
// timeout.
func NewHTTPProvider(url string, client *http.Client, log *zap.Logger) *HTTPProvider {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &HTTPProvider{url: url, client: client, log: log.Named("feed")}
}

func (p *HTTPProvider) Source() string {
	return p.url
}

func (p *HTTPProvider) Fetch(ctx context.Context) ([]domain.Entry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		return nil, &FetchError{Source: p.url, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := p.client.Do(req)
	if err != nil {
		return nil, &FetchError{Source: p.url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &FetchError{Source: p.url, Status: resp.StatusCode, Err: fmt.Errorf("unexpected status %s", resp.Status)}
	}

	var entries []domain.Entry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, &FetchError{Source: p.url, Err: fmt.Errorf("failed to decode FAQ data: %w", err)}
	}
	if err := validate(p.url, entries); err != nil {
		return nil, err
	}

	p.log.Info("fetched FAQ data",
		zap.String("url", p.url),
		zap.Int("entries", len(entries)),
		zap.Duration("took", time.Since(start)))
	return entries, nil
}
