package docscrape

import (
	"context"
	"net/url"
	"slices"
	"strings"
)

// SitemapService discovers URLs from website sitemaps.
type SitemapService interface {
	// DiscoverURLs fetches <baseURL>/sitemap.xml and returns the addresses
	// selected by SelectSitemapURLs. Nested sitemap indexes are resolved.
	DiscoverURLs(ctx context.Context, baseURL string, filter *URLFilter) ([]string, error)
}

// SelectSitemapURLs reduces raw <loc> values to the documentation addresses
// of a site. An address is kept only if it is same-origin with baseURL,
// starts with it and has no fragment; the filter's include patterns are applied next, then its
// exclude patterns. The result is deduplicated by exact string equality and
// sorted lexicographically.
func SelectSitemapURLs(baseURL string, locs []string, filter *URLFilter) []string {
	urls := []string{}
	base, err := url.Parse(baseURL)
	if err != nil || base.Host == "" {
		return urls
	}
	seen := make(map[string]struct{}, len(locs))
	for _, loc := range locs {
		if !strings.HasPrefix(loc, baseURL) || !SameOrigin(base, loc) || HasFragment(loc) {
			continue
		}
		if !filter.Match(loc) {
			continue
		}
		if _, ok := seen[loc]; ok {
			continue
		}
		seen[loc] = struct{}{}
		urls = append(urls, loc)
	}
	slices.Sort(urls)
	return urls
}

// HasFragment reports whether the address carries a fragment component.
func HasFragment(rawURL string) bool {
	return strings.Contains(rawURL, "#")
}

// SameOrigin reports whether target shares scheme, host and port with base.
func SameOrigin(base *url.URL, target string) bool {
	u, err := url.Parse(target)
	if err != nil {
		return false
	}
	return strings.EqualFold(u.Scheme, base.Scheme) && strings.EqualFold(u.Host, base.Host)
}

// URLPath returns the path component of an address, "/" when empty.
func URLPath(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Path == "" {
		return "/"
	}
	return u.Path
}
