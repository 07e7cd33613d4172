package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/docscrape"
	"github.com/fwojciec/docscrape/crawl"
)

// Renderer names.
const (
	rendererBrowser = "browser"
	rendererHTTP    = "http"
)

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	URL        string        `arg:"" required:"" help:"Base URL of the documentation site"`
	Output     string        `short:"o" env:"DOCSCRAPE_OUTPUT" help:"Write the document to this file instead of stdout"`
	Platform   string        `short:"p" default:"auto" enum:"auto,docusaurus,mintlify" env:"DOCSCRAPE_PLATFORM" help:"Documentation platform (${enum})"`
	Recursive  bool          `short:"r" env:"DOCSCRAPE_RECURSIVE" help:"Follow links instead of reading the sitemap"`
	Metadata   bool          `short:"m" env:"DOCSCRAPE_METADATA" help:"Prepend a header with source, platform and date"`
	Timeout    time.Duration `short:"t" default:"30s" env:"DOCSCRAPE_TIMEOUT" help:"Render timeout per page"`
	Delay      time.Duration `short:"d" default:"1s" env:"DOCSCRAPE_DELAY" help:"Minimum delay between requests to the site"`
	Headless   bool          `default:"true" negatable:"" env:"DOCSCRAPE_HEADLESS" help:"Run the browser without a window"`
	MinContent int           `default:"100" env:"DOCSCRAPE_MIN_CONTENT" help:"Minimum content length for a crawled page to count as documentation"`
	MaxPages   int           `default:"0" env:"DOCSCRAPE_MAX_PAGES" help:"Stop crawling after this many pages (0 = unlimited)"`
	Include    []string      `env:"DOCSCRAPE_INCLUDE" help:"Only keep URLs matching this regular expression (repeatable)"`
	Exclude    []string      `env:"DOCSCRAPE_EXCLUDE" help:"Drop URLs matching this regular expression (repeatable)"`
	Retries    int           `default:"0" env:"DOCSCRAPE_RETRIES" help:"Extra attempts for pages that fail to render"`
	Renderer   string        `default:"browser" enum:"browser,http" env:"DOCSCRAPE_RENDERER" help:"Page renderer (${enum})"`
	CacheSize  int           `default:"256" env:"DOCSCRAPE_CACHE_SIZE" help:"Number of rendered pages kept in memory"`
	Verbose    bool          `short:"v" env:"DOCSCRAPE_VERBOSE" help:"Log every request"`
}

// Config converts the parsed flags into a scrape configuration.
func (c *CLI) Config() (docscrape.Config, error) {
	platform, err := docscrape.ParsePlatform(c.Platform)
	if err != nil {
		return docscrape.Config{}, err
	}
	filter, err := docscrape.NewURLFilter(c.Include, c.Exclude)
	if err != nil {
		return docscrape.Config{}, err
	}
	return docscrape.Config{
		Headless:         c.Headless,
		Timeout:          c.Timeout,
		Delay:            c.Delay,
		IncludeMetadata:  c.Metadata,
		Platform:         platform,
		Recursive:        c.Recursive,
		MinContentLength: c.MinContent,
		MaxPages:         c.MaxPages,
		Filter:           filter,
		Retries:          c.Retries,
	}, nil
}

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger
	Scraper docscrape.Scraper
}

// ScrapeCmd runs a scrape and reports the result.
type ScrapeCmd struct {
	URL    string
	Output string
	Config docscrape.Config
}

// Run executes the scrape command. The document goes to Output when set,
// otherwise to stdout.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	result, err := deps.Scraper.Scrape(deps.Ctx, c.URL, c.Output, c.Config)
	if err != nil {
		return err
	}

	for _, o := range result.Outcomes {
		switch o.Status {
		case docscrape.OutcomeNoContent:
			deps.Logger.Warn("no content", "url", o.URL)
		case docscrape.OutcomeFailed:
			deps.Logger.Warn("page failed", "url", o.URL, "err", o.Err)
		}
	}

	if c.Output == "" {
		if _, err := io.WriteString(deps.Stdout, result.Document); err != nil {
			return err
		}
	}

	summary := crawl.Summarize(result.Outcomes)
	deps.Logger.Info("done",
		"platform", string(result.Platform),
		"pages", summary.Written,
		"skipped", summary.Skipped,
		"failed", summary.Failed,
		"duplicates", summary.Duplicates,
		"size", summary.Size(),
		"output", outputName(c.Output),
	)
	if len(result.URLs) == 0 {
		deps.Logger.Warn("no documentation pages found", "url", c.URL)
	}
	return nil
}

func outputName(path string) string {
	if path == "" {
		return "stdout"
	}
	return path
}
