// Package slog decorates docscrape collaborators with log/slog logging.
// Successful calls log at debug level and failures at warn level.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docscrape"
)

// logCall records one decorated call.
func logCall(logger *slog.Logger, msg string, begin time.Time, err error, attrs ...any) {
	attrs = append(attrs, "duration", time.Since(begin).Round(time.Millisecond))
	if err != nil {
		logger.Warn(msg, append(attrs, "err", err)...)
		return
	}
	logger.Debug(msg, attrs...)
}

var _ docscrape.Fetcher = (*Fetcher)(nil)

// Fetcher logs every page render.
type Fetcher struct {
	next   docscrape.Fetcher
	logger *slog.Logger
}

// NewFetcher wraps next.
func NewFetcher(next docscrape.Fetcher, logger *slog.Logger) *Fetcher {
	return &Fetcher{next: next, logger: logger}
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (html string, err error) {
	defer func(begin time.Time) {
		logCall(f.logger, "fetch", begin, err, "url", url, "bytes", len(html))
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

func (f *Fetcher) Close() error {
	return f.next.Close()
}

var _ docscrape.SitemapService = (*SitemapService)(nil)

// SitemapService logs sitemap discovery.
type SitemapService struct {
	next   docscrape.SitemapService
	logger *slog.Logger
}

// NewSitemapService wraps next.
func NewSitemapService(next docscrape.SitemapService, logger *slog.Logger) *SitemapService {
	return &SitemapService{next: next, logger: logger}
}

func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string, filter *docscrape.URLFilter) (urls []string, err error) {
	defer func(begin time.Time) {
		logCall(s.logger, "sitemap discovery", begin, err, "url", baseURL, "count", len(urls))
	}(time.Now())
	return s.next.DiscoverURLs(ctx, baseURL, filter)
}

var _ docscrape.PlatformDetector = (*PlatformDetector)(nil)

// PlatformDetector logs the platform each inspected page resolves to.
type PlatformDetector struct {
	next   docscrape.PlatformDetector
	logger *slog.Logger
}

// NewPlatformDetector wraps next.
func NewPlatformDetector(next docscrape.PlatformDetector, logger *slog.Logger) *PlatformDetector {
	return &PlatformDetector{next: next, logger: logger}
}

func (d *PlatformDetector) Detect(html string) docscrape.Platform {
	begin := time.Now()
	p := d.next.Detect(html)
	logCall(d.logger, "platform detection", begin, nil, "platform", string(p))
	return p
}
