package crawl

import (
	"context"
	"log/slog"
	"net/url"
	"slices"
	"time"

	"github.com/fwojciec/docscrape"
)

// Discoverer finds the documentation addresses of a site, from its sitemap
// when available and otherwise by crawling links breadth-first. Politeness
// is the Fetcher's concern; wrap it in a LimitedFetcher.
type Discoverer struct {
	Sitemaps  docscrape.SitemapService
	Fetcher   docscrape.Fetcher
	Extractor docscrape.Extractor
	Links     docscrape.LinkHarvester

	// Timeout bounds each page render. Zero means no per-page bound.
	Timeout time.Duration

	// MinContentLength is the content-detection threshold.
	// Zero uses docscrape.DefaultMinContentLength.
	MinContentLength int

	// MaxPages caps the number of pages rendered by Crawl. Zero is unlimited.
	MaxPages int

	// RetryDelays are the backoff delays between fetch attempts.
	RetryDelays []time.Duration

	Logger *slog.Logger
}

// Discover returns the sorted documentation addresses under baseURL.
//
// Unless recursive is set, the sitemap is tried first when the platform
// supports it. A sitemap that fails to load, or that lists no matching
// addresses, falls back to Crawl.
func (d *Discoverer) Discover(ctx context.Context, baseURL string, cfg docscrape.PlatformConfig, recursive bool) ([]string, error) {
	if cfg.UseSitemap && !recursive && d.Sitemaps != nil {
		urls, err := d.Sitemaps.DiscoverURLs(ctx, baseURL, cfg.Filter)
		switch {
		case err == nil && len(urls) > 0:
			return urls, nil
		case ctx.Err() != nil:
			return nil, ctx.Err()
		case err != nil:
			d.logger().Info("sitemap unavailable, crawling links", "url", baseURL, "err", err)
		default:
			d.logger().Info("sitemap has no matching pages, crawling links", "url", baseURL)
		}
	}
	return d.Crawl(ctx, baseURL, cfg)
}

// Crawl discovers addresses by following links from baseURL until the
// frontier is exhausted or MaxPages pages have been rendered.
//
// Only addresses that pass content detection and the filter are returned;
// every same-origin page not excluded is still traversed so documentation
// reachable through non-content pages is found.
func (d *Discoverer) Crawl(ctx context.Context, baseURL string, cfg docscrape.PlatformConfig) ([]string, error) {
	base, err := url.Parse(baseURL)
	if err != nil || base.Host == "" {
		return nil, docscrape.Errorf(docscrape.EINVALID, "invalid base URL %q", baseURL)
	}

	state := NewState(baseURL)
	for !state.Done() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if d.MaxPages > 0 && state.Rendered >= d.MaxPages {
			d.logger().Info("page limit reached", "count", state.Rendered, "queued", state.Frontier.Len())
			break
		}
		if err := d.Step(ctx, base, cfg, state); err != nil {
			return nil, err
		}
	}
	return state.Result(), nil
}

// Step performs one crawl transition: pop the next address, render it,
// record it when it has content and queue its in-scope links.
//
// Render and harvest failures are logged and skipped. Only context errors
// are returned.
func (d *Discoverer) Step(ctx context.Context, base *url.URL, cfg docscrape.PlatformConfig, state *State) error {
	current, ok := state.Frontier.Pop()
	if !ok {
		return nil
	}
	if state.IsVisited(current) {
		return nil
	}
	state.Visited[current] = struct{}{}

	html, err := fetchPage(ctx, d.Fetcher, current, d.Timeout, d.RetryDelays, d.logger())
	state.Rendered++
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		d.logger().Warn("crawl fetch failed", "url", current, "err", err)
		return nil
	}

	// Include patterns select results only; every page is still traversed.
	if cfg.Filter.Match(current) && d.Extractor.HasContent(html, cfg.ContentSelectors, d.minContentLength()) {
		state.Discovered[current] = struct{}{}
	}

	selectors := append(slices.Clone(cfg.NavigationSelectors), docscrape.AllAnchorsSelector)
	links, err := d.Links.Harvest(html, current, selectors)
	if err != nil {
		d.logger().Warn("link harvest failed", "url", current, "err", err)
		return nil
	}

	for _, link := range links {
		if !docscrape.SameOrigin(base, link.URL) || docscrape.HasFragment(link.URL) {
			continue
		}
		if state.IsVisited(link.URL) || cfg.Filter.Excluded(link.URL) {
			continue
		}
		state.Frontier.Push(link.URL)
	}
	return nil
}

func (d *Discoverer) minContentLength() int {
	if d.MinContentLength > 0 {
		return d.MinContentLength
	}
	return docscrape.DefaultMinContentLength
}

func (d *Discoverer) logger() *slog.Logger {
	if d.Logger == nil {
		return discardLogger
	}
	return d.Logger
}

var discardLogger = slog.New(slog.DiscardHandler)

// fetchPage renders pageURL within timeout, retrying after each of delays.
func fetchPage(
	ctx context.Context,
	fetcher docscrape.Fetcher,
	pageURL string,
	timeout time.Duration,
	delays []time.Duration,
	logger *slog.Logger,
) (string, error) {
	fetch := func(ctx context.Context, u string) (string, error) {
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}
		return fetcher.Fetch(ctx, u)
	}
	return FetchWithRetry(ctx, pageURL, fetch, logger, delays)
}
