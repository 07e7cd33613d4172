// Package rod renders pages in a Chrome browser driven by go-rod.
package rod

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/fwojciec/docscrape"
)

// Defaults for page rendering.
const (
	DefaultFetchTimeout = 30 * time.Second
	DefaultIdleWait     = 500 * time.Millisecond
)

// Ensure Fetcher implements docscrape.Fetcher at compile time.
var _ docscrape.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML from URLs using Chrome browser automation.
// Each fetch opens a fresh tab, navigates, waits for the load event and for
// network activity to settle, then serializes the document.
type Fetcher struct {
	browser  *Browser
	timeout  time.Duration
	idleWait time.Duration
	headless bool
	closed   atomic.Bool
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithFetchTimeout bounds each navigation. Defaults to DefaultFetchTimeout.
func WithFetchTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithHeadless selects headless (default) or visible browser mode.
func WithHeadless(headless bool) Option {
	return func(f *Fetcher) {
		f.headless = headless
	}
}

// WithIdleWait sets how long the network must stay quiet before the page is
// considered settled. Defaults to DefaultIdleWait.
func WithIdleWait(d time.Duration) Option {
	return func(f *Fetcher) {
		f.idleWait = d
	}
}

// NewFetcher launches a browser and returns a Fetcher backed by it.
// Close must be called when the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	f := &Fetcher{
		timeout:  DefaultFetchTimeout,
		idleWait: DefaultIdleWait,
		headless: true,
	}
	for _, opt := range opts {
		opt(f)
	}

	var bopts []BrowserOption
	if !f.headless {
		bopts = append(bopts, WithVisibleWindow())
	}
	browser, err := NewBrowser(bopts...)
	if err != nil {
		return nil, err
	}
	f.browser = browser

	return f, nil
}

// Fetch navigates to the URL and returns the rendered HTML.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if f.closed.Load() {
		return "", docscrape.Errorf(docscrape.EINVALID, "fetcher is closed")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	page, err := f.browser.OpenPage(ctx)
	if err != nil {
		return "", err
	}
	defer page.Close()

	wait := page.WaitRequestIdle(f.idleWait, nil, nil, nil)

	if err := page.Navigate(url); err != nil {
		return "", contextErr(ctx, err)
	}
	if err := page.WaitLoad(); err != nil {
		return "", contextErr(ctx, err)
	}
	wait()

	html, err := page.HTML()
	if err != nil {
		return "", contextErr(ctx, err)
	}

	return html, nil
}

// Close releases browser resources. Close is safe to call multiple times.
func (f *Fetcher) Close() error {
	if !f.closed.CompareAndSwap(false, true) {
		return nil
	}
	return f.browser.Close()
}

// PID returns the process ID of the browser launcher, 0 once closed.
func (f *Fetcher) PID() int {
	return f.browser.PID()
}

// contextErr prefers the context's error so callers can match
// context.DeadlineExceeded and context.Canceled.
func contextErr(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return fmt.Errorf("%w: %v", ctxErr, err)
	}
	return err
}
