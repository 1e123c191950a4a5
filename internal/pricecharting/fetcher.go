// Package pricecharting downloads and parses the PriceCharting price guide
// CSV into reference records.
package pricecharting

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// Fetcher returns the raw CSV price guide. Callers close the body.
type Fetcher interface {
	Fetch(ctx context.Context) (io.ReadCloser, error)
}

// HTTPFetcher downloads the CSV from a fixed URL. The URL embeds the
// subscriber token, so it is never logged.
type HTTPFetcher struct {
	url    string
	client *http.Client
}

// FetcherOption configures the HTTPFetcher.
type FetcherOption func(*HTTPFetcher)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(c *http.Client) FetcherOption {
	return func(f *HTTPFetcher) {
		f.client = c
	}
}

// WithTimeout sets the download timeout on the default client.
func WithTimeout(d time.Duration) FetcherOption {
	return func(f *HTTPFetcher) {
		f.client.Timeout = d
	}
}

// NewHTTPFetcher creates a fetcher for the given CSV URL.
func NewHTTPFetcher(url string, opts ...FetcherOption) *HTTPFetcher {
	f := &HTTPFetcher{
		url:    url,
		client: &http.Client{Timeout: 5 * time.Minute},
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch implements Fetcher.
func (f *HTTPFetcher) Fetch(ctx context.Context) (io.ReadCloser, error) {
	if f.url == "" {
		return nil, fmt.Errorf("pricecharting csv url is not configured")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating download request: %w", err)
	}
	req.Header.Set("Accept", "text/csv")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("downloading price guide: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("downloading price guide: unexpected status %d", resp.StatusCode)
	}
	return resp.Body, nil
}

// FileFetcher reads the CSV from a local file, for imports from a
// previously downloaded guide.
type FileFetcher struct {
	Path string
}

// Fetch implements Fetcher.
func (f FileFetcher) Fetch(context.Context) (io.ReadCloser, error) {
	file, err := os.Open(f.Path)
	if err != nil {
		return nil, fmt.Errorf("opening price guide: %w", err)
	}
	return file, nil
}
