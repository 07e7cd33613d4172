package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/docscrape"
)

// Fetcher defaults.
const (
	DefaultFetchTimeout = 30 * time.Second
	DefaultMaxBodyBytes = 10 << 20
)

var _ docscrape.Fetcher = (*Fetcher)(nil)

// Fetcher returns the HTML a server sends without executing scripts. Pages
// that build their content client-side come back mostly empty; use
// rod.Fetcher for those.
type Fetcher struct {
	client       *http.Client
	maxBodyBytes int64
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout bounds each request. Defaults to DefaultFetchTimeout.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.client.Timeout = d
	}
}

// WithClient replaces the underlying client. Its timeout is kept.
func WithClient(c *http.Client) Option {
	return func(f *Fetcher) {
		f.client = c
	}
}

// WithMaxBodyBytes caps how much of a response is read.
func WithMaxBodyBytes(n int64) Option {
	return func(f *Fetcher) {
		f.maxBodyBytes = n
	}
}

// NewFetcher creates an HTTP Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		client:       &http.Client{Timeout: DefaultFetchTimeout},
		maxBodyBytes: DefaultMaxBodyBytes,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch returns the response body for url. Bodies larger than the cap are
// truncated.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	body, err := get(ctx, f.client, url)
	if err != nil {
		return "", err
	}
	defer body.Close()

	b, err := io.ReadAll(io.LimitReader(body, f.maxBodyBytes))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Close is a no-op.
func (f *Fetcher) Close() error {
	return nil
}
