package docscrape

import (
	"regexp"
	"strings"
)

// Platform identifies the documentation generator that produced a site.
type Platform string

// Known platforms. PlatformAuto is the catch-all used when the platform is
// unknown; it may be resolved to a concrete platform after the first page
// has been inspected.
const (
	PlatformAuto       Platform = "auto"
	PlatformDocusaurus Platform = "docusaurus"
	PlatformMintlify   Platform = "mintlify"
)

// Platforms returns the concrete platforms in registry order.
func Platforms() []Platform {
	return []Platform{PlatformDocusaurus, PlatformMintlify}
}

// ParsePlatform converts user input into a Platform.
// Returns EINVALID for unknown names.
func ParsePlatform(s string) (Platform, error) {
	switch p := Platform(strings.ToLower(strings.TrimSpace(s))); p {
	case PlatformAuto, PlatformDocusaurus, PlatformMintlify:
		return p, nil
	case "":
		return PlatformAuto, nil
	}
	return "", Errorf(EINVALID, "unknown platform %q", s)
}

// PlatformConfig holds the selectors and discovery strategy for a platform.
type PlatformConfig struct {
	// NavigationSelectors are CSS selectors for anchors used to harvest links.
	NavigationSelectors []string

	// ContentSelectors locate the primary content. The first match wins.
	ContentSelectors []string

	// UseSitemap enables the sitemap discovery strategy.
	UseSitemap bool

	// Filter holds the include/exclude address patterns. Nil keeps everything.
	Filter *URLFilter
}

// WithFilter returns a copy of the config with extra's patterns appended
// to the config's own patterns.
func (c PlatformConfig) WithFilter(extra *URLFilter) PlatformConfig {
	if extra == nil || (len(extra.Include) == 0 && len(extra.Exclude) == 0) {
		return c
	}
	merged := &URLFilter{}
	if c.Filter != nil {
		merged.Include = append(merged.Include, c.Filter.Include...)
		merged.Exclude = append(merged.Exclude, c.Filter.Exclude...)
	}
	merged.Include = append(merged.Include, extra.Include...)
	merged.Exclude = append(merged.Exclude, extra.Exclude...)
	c.Filter = merged
	return c
}

// Validated against Docusaurus v2.x and v3.x.
var docusaurusConfig = PlatformConfig{
	NavigationSelectors: []string{
		".theme-doc-sidebar-container a[href]",
		".menu__link[href]",
		"nav.navbar a[href]",
		".pagination-nav a[href]",
	},
	ContentSelectors: []string{
		".theme-doc-markdown",
		"article .markdown",
		"article",
		"main .container",
		"main",
	},
	UseSitemap: true,
	Filter: &URLFilter{
		Exclude: []*regexp.Regexp{
			regexp.MustCompile(`/blog(/|$)`),
			regexp.MustCompile(`/tags(/|$)`),
			regexp.MustCompile(`/search(/|$|\?)`),
		},
	},
}

var mintlifyConfig = PlatformConfig{
	NavigationSelectors: []string{
		"#sidebar a[href]",
		"#sidebar-content a[href]",
		"#navbar a[href]",
		"#pagination a[href]",
	},
	ContentSelectors: []string{
		"#content-area",
		"#content",
		".mdx-content",
		".prose",
		"article",
		"main",
	},
	UseSitemap: true,
	Filter: &URLFilter{
		Exclude: []*regexp.Regexp{
			regexp.MustCompile(`/_next/`),
			regexp.MustCompile(`/api-playground(/|$)`),
		},
	},
}

// ConfigFor returns the configuration for a platform.
//
// PlatformAuto (and any unknown value) yields the union of every concrete
// platform's navigation and content selectors, without filter patterns.
func ConfigFor(p Platform) PlatformConfig {
	switch p {
	case PlatformDocusaurus:
		return docusaurusConfig
	case PlatformMintlify:
		return mintlifyConfig
	}
	return autoConfig()
}

func autoConfig() PlatformConfig {
	var nav, content []string
	for _, p := range Platforms() {
		c := ConfigFor(p)
		nav = appendUnique(nav, c.NavigationSelectors...)
		content = appendUnique(content, c.ContentSelectors...)
	}
	return PlatformConfig{
		NavigationSelectors: nav,
		ContentSelectors:    content,
		UseSitemap:          true,
	}
}

// appendUnique appends the values not already present in dst, keeping order.
func appendUnique(dst []string, values ...string) []string {
	for _, v := range values {
		dup := false
		for _, existing := range dst {
			if existing == v {
				dup = true
				break
			}
		}
		if !dup {
			dst = append(dst, v)
		}
	}
	return dst
}

// PlatformDetector identifies the platform that rendered a page.
type PlatformDetector interface {
	// Detect analyzes HTML and returns the identified platform.
	// Returns PlatformAuto if the platform cannot be determined.
	Detect(html string) Platform
}
