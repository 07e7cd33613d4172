package mock

import (
	"context"

	"github.com/fwojciec/docscrape"
)

var _ docscrape.Scraper = (*Scraper)(nil)

// Scraper is a mock implementation of docscrape.Scraper.
type Scraper struct {
	ScrapeFn func(ctx context.Context, baseURL, outputPath string, cfg docscrape.Config) (*docscrape.Result, error)
}

func (s *Scraper) Scrape(ctx context.Context, baseURL, outputPath string, cfg docscrape.Config) (*docscrape.Result, error) {
	return s.ScrapeFn(ctx, baseURL, outputPath, cfg)
}
