// Package crawl discovers documentation pages and assembles them into a
// single Markdown document.
package crawl

import (
	"context"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/fwojciec/docscrape"
)

// Ensure Scraper implements docscrape.Scraper at compile time.
var _ docscrape.Scraper = (*Scraper)(nil)

// Scraper orchestrates a scrape run: platform resolution, discovery,
// per-page extraction and conversion, assembly and output.
type Scraper struct {
	Detector  docscrape.PlatformDetector
	Sitemaps  docscrape.SitemapService
	Fetcher   docscrape.Fetcher
	Extractor docscrape.Extractor
	Links     docscrape.LinkHarvester
	Converter docscrape.Converter
	Writer    docscrape.DocumentWriter

	// Limiter overrides the politeness limiter built from Config.Delay.
	Limiter docscrape.DomainLimiter

	// WrapFetcher, if set, decorates the rate-limited fetcher. A render cache
	// installed here serves repeat addresses without a politeness delay.
	WrapFetcher func(docscrape.Fetcher) (docscrape.Fetcher, error)

	// Progress, if set, is called after each page is processed.
	Progress docscrape.ProgressFunc

	// Now returns the header date. Defaults to time.Now.
	Now func() time.Time

	Logger *slog.Logger
}

// Scrape discovers, extracts and assembles the documentation at baseURL.
//
// Per-page failures never abort the run; they are recorded in
// Result.Outcomes. An invalid base URL or a failed write to outputPath is
// fatal.
func (s *Scraper) Scrape(ctx context.Context, baseURL, outputPath string, cfg docscrape.Config) (*docscrape.Result, error) {
	u, err := url.Parse(baseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, docscrape.Errorf(docscrape.EINVALID, "invalid base URL %q", baseURL)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = docscrape.DefaultTimeout
	}
	limiter := s.Limiter
	if limiter == nil {
		limiter = NewDomainLimiter(cfg.Delay)
	}
	var fetcher docscrape.Fetcher = &LimitedFetcher{Next: s.Fetcher, Limiter: limiter}
	if s.WrapFetcher != nil {
		if fetcher, err = s.WrapFetcher(fetcher); err != nil {
			return nil, err
		}
	}
	delays := RetryDelays(cfg.Retries)
	logger := s.logger()

	platform := cfg.Platform
	if platform == "" {
		platform = docscrape.PlatformAuto
	}
	if platform == docscrape.PlatformAuto {
		platform = s.detect(ctx, fetcher, baseURL, timeout)
		logger.Info("platform resolved", "url", baseURL, "platform", string(platform))
	}

	pcfg := docscrape.ConfigFor(platform).WithFilter(cfg.Filter)

	discoverer := &Discoverer{
		Sitemaps:         s.Sitemaps,
		Fetcher:          fetcher,
		Extractor:        s.Extractor,
		Links:            s.Links,
		Timeout:          timeout,
		MinContentLength: cfg.MinContentLength,
		MaxPages:         cfg.MaxPages,
		RetryDelays:      delays,
		Logger:           logger,
	}
	urls, err := discoverer.Discover(ctx, baseURL, pcfg, cfg.Recursive)
	if err != nil {
		return nil, err
	}
	logger.Info("discovery complete", "url", baseURL, "count", len(urls))

	result := &docscrape.Result{
		Platform: platform,
		URLs:     urls,
		Outcomes: make([]docscrape.PageOutcome, 0, len(urls)),
	}
	var sections []*docscrape.Section

	for i, pageURL := range urls {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		section, outcome := s.processPage(ctx, fetcher, pageURL, pcfg, timeout, delays)
		if outcome.Status == docscrape.OutcomeFailed && ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if section != nil {
			sections = append(sections, section)
		}
		result.Outcomes = append(result.Outcomes, outcome)
		logger.Debug("page processed",
			"url", pageURL,
			"status", string(outcome.Status),
			"bytes", outcome.Bytes,
			"err", outcome.Err,
		)

		if s.Progress != nil {
			s.Progress(docscrape.ProgressEvent{
				Outcome:   outcome,
				Completed: i + 1,
				Total:     len(urls),
			})
		}
	}

	var header *docscrape.Header
	if cfg.IncludeMetadata {
		header = &docscrape.Header{
			BaseURL:  baseURL,
			Platform: platform,
			Date:     s.now().UTC(),
		}
	}
	result.Document = docscrape.FormatDocument(header, sections)

	if outputPath != "" {
		if err := s.Writer.WriteDocument(ctx, outputPath, result.Document); err != nil {
			return nil, err
		}
	}

	return result, nil
}

// detect renders the base page and identifies its platform. Any failure
// resolves to PlatformAuto.
func (s *Scraper) detect(ctx context.Context, fetcher docscrape.Fetcher, baseURL string, timeout time.Duration) docscrape.Platform {
	if s.Detector == nil {
		return docscrape.PlatformAuto
	}
	html, err := fetchPage(ctx, fetcher, baseURL, timeout, nil, s.logger())
	if err != nil {
		s.logger().Warn("platform detection fetch failed", "url", baseURL, "err", err)
		return docscrape.PlatformAuto
	}
	return s.Detector.Detect(html)
}

// processPage renders, extracts and converts one page. The section is nil
// unless the outcome is a success.
func (s *Scraper) processPage(
	ctx context.Context,
	fetcher docscrape.Fetcher,
	pageURL string,
	pcfg docscrape.PlatformConfig,
	timeout time.Duration,
	delays []time.Duration,
) (*docscrape.Section, docscrape.PageOutcome) {
	outcome := docscrape.PageOutcome{URL: pageURL}

	html, err := fetchPage(ctx, fetcher, pageURL, timeout, delays, s.logger())
	if err != nil {
		outcome.Status = docscrape.OutcomeFailed
		outcome.Err = err
		return nil, outcome
	}

	extracted, err := s.Extractor.Extract(html, pcfg.ContentSelectors)
	if err != nil {
		outcome.Status = docscrape.OutcomeFailed
		outcome.Err = err
		return nil, outcome
	}
	if strings.TrimSpace(extracted.ContentHTML) == "" {
		outcome.Status = docscrape.OutcomeNoContent
		return nil, outcome
	}

	markdown, err := s.Converter.Convert(extracted.ContentHTML)
	if err != nil {
		outcome.Status = docscrape.OutcomeFailed
		outcome.Err = err
		return nil, outcome
	}

	body := strings.TrimSpace(markdown)
	outcome.Status = docscrape.OutcomeSuccess
	outcome.Bytes = len(body)
	outcome.Hash = ContentHash(body)
	return docscrape.NewSection(extracted.Title, pageURL, body), outcome
}

func (s *Scraper) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

func (s *Scraper) logger() *slog.Logger {
	if s.Logger == nil {
		return discardLogger
	}
	return s.Logger
}
