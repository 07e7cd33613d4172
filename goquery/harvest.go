package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docscrape"
)

var _ docscrape.LinkHarvester = (*Harvester)(nil)

// Harvester collects absolute link addresses from rendered pages.
type Harvester struct{}

// NewHarvester creates a new Harvester.
func NewHarvester() *Harvester {
	return &Harvester{}
}

// Harvest evaluates each selector against the HTML and returns the resolved
// absolute addresses. Links are deduplicated by URL and keep the source of
// the first selector that produced them. Fragments are preserved; scoping
// (origin, fragments, visited state) is left to the caller.
func (h *Harvester) Harvest(html string, pageURL string, selectors []string) ([]docscrape.DiscoveredLink, error) {
	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, docscrape.Errorf(docscrape.EINVALID, "invalid page URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, docscrape.Errorf(docscrape.EINVALID, "failed to parse HTML: %v", err)
	}

	// Respect <base href> the way a browser resolves anchors.
	if href, ok := doc.Find("base[href]").First().Attr("href"); ok {
		if ref, err := url.Parse(href); err == nil {
			base = base.ResolveReference(ref)
		}
	}

	seen := make(map[string]struct{})
	var links []docscrape.DiscoveredLink

	for _, selector := range selectors {
		doc.Find(selector).Each(func(_ int, sel *goquery.Selection) {
			href, exists := sel.Attr("href")
			if !exists || href == "" {
				return
			}

			// Skip non-HTTP links (javascript:, mailto:, etc.)
			if isNonHTTPLink(href) {
				return
			}

			resolved := resolveURL(base, href)
			if resolved == "" {
				return
			}

			if _, ok := seen[resolved]; ok {
				return
			}
			seen[resolved] = struct{}{}
			links = append(links, docscrape.DiscoveredLink{
				URL:    resolved,
				Text:   strings.TrimSpace(sel.Text()),
				Source: selector,
			})
		})
	}

	return links, nil
}

// resolveURL resolves a relative URL against a base URL.
// Returns empty string if the href cannot be parsed or does not resolve
// to an http(s) address.
func resolveURL(base *url.URL, href string) string {
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return ""
	}
	resolved := base.ResolveReference(ref)
	if resolved.Scheme != "http" && resolved.Scheme != "https" {
		return ""
	}
	return resolved.String()
}

// isNonHTTPLink checks if a href is a non-HTTP link that should be skipped.
func isNonHTTPLink(href string) bool {
	href = strings.ToLower(strings.TrimSpace(href))
	return strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "tel:") ||
		strings.HasPrefix(href, "data:")
}
