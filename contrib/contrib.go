// CLAUDE:SUMMARY HTTP fetcher for GitHub contribution calendars — timeout, UA header, status check, body cap.
// Package contrib fetches a GitHub user's public contributions page and
// decodes the activity calendar into a binary grid.
package contrib

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/hazyhaar/lifegrid/life"
)

// Config configures the fetcher.
type Config struct {
	// BaseURL overrides the GitHub base URL (for testing). Empty string
	// uses production.
	BaseURL string
	Timeout time.Duration // HTTP timeout. Default: 15s.
	// MaxBytes caps the response body size. Default: 2MB.
	MaxBytes int64
	// UserAgent sent with requests.
	UserAgent string
}

func (c *Config) defaults() {
	if c.BaseURL == "" {
		c.BaseURL = "https://github.com"
	}
	if c.Timeout <= 0 {
		c.Timeout = 15 * time.Second
	}
	if c.MaxBytes <= 0 {
		c.MaxBytes = 2 * 1024 * 1024 // 2MB
	}
	if c.UserAgent == "" {
		c.UserAgent = "Mozilla/5.0 (compatible; lifegrid/1.0)"
	}
}

// Fetcher retrieves contribution calendars over HTTP.
type Fetcher struct {
	client *http.Client
	config Config
}

// New creates a Fetcher.
func New(cfg Config) *Fetcher {
	cfg.defaults()
	return &Fetcher{
		client: &http.Client{Timeout: cfg.Timeout},
		config: cfg,
	}
}

// Fetch retrieves the contributions page for username and decodes it.
// Single attempt, no retries, no caching.
func (f *Fetcher) Fetch(ctx context.Context, username string) (life.Grid, error) {
	target := fmt.Sprintf("%s/users/%s/contributions", f.config.BaseURL, url.PathEscape(username))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("User-Agent", f.config.UserAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http get: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("contrib: http %d fetching %s", resp.StatusCode, target)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.config.MaxBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	return parseGrid(body)
}
