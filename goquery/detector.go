// Package goquery implements DOM inspection on rendered pages using goquery:
// platform detection, content extraction and link harvesting.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docscrape"
)

var _ docscrape.PlatformDetector = (*Detector)(nil)

// Detector identifies documentation platforms from HTML content.
// It checks the generator meta tag, platform-specific class names, element
// ids and script sources.
type Detector struct{}

// NewDetector creates a new Detector.
func NewDetector() *Detector {
	return &Detector{}
}

// Detect analyzes HTML and returns the identified platform.
// Returns PlatformAuto if the platform cannot be determined. Detect never
// panics; any inspection failure resolves to PlatformAuto.
func (d *Detector) Detect(html string) (platform docscrape.Platform) {
	defer func() {
		if r := recover(); r != nil {
			platform = docscrape.PlatformAuto
		}
	}()

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return docscrape.PlatformAuto
	}

	// Check meta generator tags first - most reliable when present
	if p := d.detectFromMetaGenerator(doc); p != docscrape.PlatformAuto {
		return p
	}

	// __docusaurus_skipToContent_fallback is highly specific
	if d.hasSelector(doc, "#__docusaurus") ||
		d.hasSelector(doc, "#__docusaurus_skipToContent_fallback") ||
		d.hasSelector(doc, ".theme-doc-sidebar-container") ||
		d.hasSelector(doc, "[class*='docusaurus']") ||
		d.hasSelector(doc, "script[src*='docusaurus']") {
		return docscrape.PlatformDocusaurus
	}

	if d.hasSelector(doc, "[class*='mintlify']") ||
		d.hasSelector(doc, "script[src*='mintlify']") ||
		d.hasSelector(doc, "link[href*='mintlify']") ||
		d.hasSelector(doc, "img[src*='mintlify']") {
		return docscrape.PlatformMintlify
	}

	return docscrape.PlatformAuto
}

// detectFromMetaGenerator checks the meta generator tag for platform identification.
func (d *Detector) detectFromMetaGenerator(doc *goquery.Document) docscrape.Platform {
	generator := ""
	doc.Find("meta[name='generator']").Each(func(_ int, s *goquery.Selection) {
		if content, exists := s.Attr("content"); exists {
			generator = strings.ToLower(content)
		}
	})

	switch {
	case strings.Contains(generator, "docusaurus"):
		return docscrape.PlatformDocusaurus
	case strings.Contains(generator, "mintlify"):
		return docscrape.PlatformMintlify
	}

	return docscrape.PlatformAuto
}

// hasSelector checks if the document contains at least one element matching the selector.
func (d *Detector) hasSelector(doc *goquery.Document, selector string) bool {
	return doc.Find(selector).Length() > 0
}
