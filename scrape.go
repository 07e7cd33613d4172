package docscrape

import (
	"context"
	"time"
)

// Default scrape settings.
const (
	DefaultTimeout = 30 * time.Second
	DefaultDelay   = time.Second
)

// Config controls a scrape run.
type Config struct {
	// Headless selects headless browser mode. It only affects the renderer.
	Headless bool

	// Timeout bounds each navigation. Zero uses DefaultTimeout.
	Timeout time.Duration

	// Delay is the politeness pause between page requests.
	Delay time.Duration

	// IncludeMetadata prepends the metadata header to the document.
	IncludeMetadata bool

	// Platform selects the platform configuration. PlatformAuto detects it.
	Platform Platform

	// Recursive skips the sitemap and follows links instead.
	Recursive bool

	// MinContentLength is the content-detection threshold used while
	// crawling. Zero uses DefaultMinContentLength.
	MinContentLength int

	// MaxPages caps the number of pages rendered while crawling. Zero is unlimited.
	MaxPages int

	// Filter adds user patterns to the platform's own.
	Filter *URLFilter

	// Retries is the number of extra fetch attempts per page.
	Retries int
}

// Result is the outcome of a scrape run.
type Result struct {
	// Document is the assembled output text.
	Document string

	// Platform is the resolved platform.
	Platform Platform

	// URLs are the discovered addresses in processing order.
	URLs []string

	// Outcomes holds one entry per processed address, in processing order.
	Outcomes []PageOutcome
}

// Scraper extracts documentation from a site.
type Scraper interface {
	// Scrape discovers, extracts and assembles the documentation at baseURL.
	// When outputPath is non-empty the document is also written there.
	Scrape(ctx context.Context, baseURL, outputPath string, cfg Config) (*Result, error)
}
