package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/docscrape"
)

// Ensure SitemapService implements docscrape.SitemapService.
var _ docscrape.SitemapService = (*SitemapService)(nil)

// SitemapService discovers URLs from website sitemaps via HTTP.
type SitemapService struct {
	client *http.Client
}

// NewSitemapService creates a new SitemapService with the given HTTP client.
// If client is nil, http.DefaultClient is used.
func NewSitemapService(client *http.Client) *SitemapService {
	if client == nil {
		client = http.DefaultClient
	}
	return &SitemapService{client: client}
}

// DiscoverURLs fetches <baseURL>/sitemap.xml and returns the documentation
// addresses it lists. Nested sitemap indexes are followed; each sitemap is
// fetched at most once. Any fetch or parse failure is returned as an error so
// the caller can fall back to crawling.
func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string, filter *docscrape.URLFilter) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sitemapURL := strings.TrimRight(baseURL, "/") + "/sitemap.xml"

	seen := make(map[string]bool)
	locs, err := s.processSitemap(ctx, sitemapURL, seen)
	if err != nil {
		return nil, err
	}

	return docscrape.SelectSitemapURLs(baseURL, locs, filter), nil
}

// processSitemap fetches and parses a sitemap, handling both urlset and sitemapindex.
func (s *SitemapService) processSitemap(ctx context.Context, sitemapURL string, seen map[string]bool) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Avoid processing the same sitemap twice
	if seen[sitemapURL] {
		return nil, nil
	}
	seen[sitemapURL] = true

	body, err := get(ctx, s.client, sitemapURL)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	sm, err := ParseSitemap(body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", sitemapURL, err)
	}

	locs := sm.URLs
	for _, nested := range sm.Sitemaps {
		urls, err := s.processSitemap(ctx, nested, seen)
		if err != nil {
			return nil, err
		}
		locs = append(locs, urls...)
	}
	return locs, nil
}

// Sitemap is a parsed sitemap document.
type Sitemap struct {
	// URLs are the <loc> values of a <urlset>.
	URLs []string

	// Sitemaps are the <loc> values of a <sitemapindex>.
	Sitemaps []string
}

// ParseSitemap parses a sitemap XML document. Namespaces are ignored; every
// <loc> below the root is collected. Parsing has no side effects, so equal
// input always yields an equal Sitemap.
func ParseSitemap(r io.Reader) (*Sitemap, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, docscrape.Errorf(docscrape.EINVALID, "parsing sitemap XML: %v", err)
	}

	root := doc.Root()
	if root == nil {
		return nil, docscrape.Errorf(docscrape.EINVALID, "empty sitemap XML")
	}

	sm := &Sitemap{}
	for _, loc := range root.FindElements(".//loc") {
		u := strings.TrimSpace(loc.Text())
		if u == "" {
			continue
		}
		if root.Tag == "sitemapindex" {
			sm.Sitemaps = append(sm.Sitemaps, u)
		} else {
			sm.URLs = append(sm.URLs, u)
		}
	}
	return sm, nil
}
