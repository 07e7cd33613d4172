package mock

import "github.com/fwojciec/docscrape"

var _ docscrape.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of docscrape.Extractor.
type Extractor struct {
	ExtractFn    func(html string, selectors []string) (*docscrape.ExtractResult, error)
	HasContentFn func(html string, selectors []string, minLength int) bool
}

func (e *Extractor) Extract(html string, selectors []string) (*docscrape.ExtractResult, error) {
	return e.ExtractFn(html, selectors)
}

func (e *Extractor) HasContent(html string, selectors []string, minLength int) bool {
	return e.HasContentFn(html, selectors, minLength)
}

var _ docscrape.LinkHarvester = (*LinkHarvester)(nil)

// LinkHarvester is a mock implementation of docscrape.LinkHarvester.
type LinkHarvester struct {
	HarvestFn func(html string, pageURL string, selectors []string) ([]docscrape.DiscoveredLink, error)
}

func (h *LinkHarvester) Harvest(html string, pageURL string, selectors []string) ([]docscrape.DiscoveredLink, error) {
	return h.HarvestFn(html, pageURL, selectors)
}

var _ docscrape.PlatformDetector = (*PlatformDetector)(nil)

// PlatformDetector is a mock implementation of docscrape.PlatformDetector.
type PlatformDetector struct {
	DetectFn func(html string) docscrape.Platform
}

func (d *PlatformDetector) Detect(html string) docscrape.Platform {
	return d.DetectFn(html)
}
