package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/alecthomas/kong"
	"github.com/briandowns/spinner"
	"github.com/charmbracelet/log"
	"github.com/fwojciec/docscrape"
	"github.com/fwojciec/docscrape/crawl"
	"github.com/fwojciec/docscrape/fs"
	"github.com/fwojciec/docscrape/goquery"
	"github.com/fwojciec/docscrape/htmltomarkdown"
	docshttp "github.com/fwojciec/docscrape/http"
	"github.com/fwojciec/docscrape/lru"
	"github.com/fwojciec/docscrape/rod"
	docslog "github.com/fwojciec/docscrape/slog"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

func main() {
	// A missing .env file is fine; explicit flags and the environment still apply.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, errorText(err))
		stop()
		os.Exit(1)
	}
}

// errorText prefers an application error's message over its full form.
func errorText(err error) string {
	if docscrape.ErrorCode(err) == docscrape.EINTERNAL {
		return err.Error()
	}
	return docscrape.ErrorMessage(err)
}

// Main represents the program.
type Main struct {
	// Scraper replaces the browser-backed scraper. Used in tests.
	Scraper docscrape.Scraper
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("docscrape"),
		kong.Description("Extract a documentation site into a single Markdown document"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle no arguments
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no arguments provided")
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	cfg, err := cli.Config()
	if err != nil {
		return err
	}

	logger := newLogger(stderr, cli.Verbose)

	deps := &Dependencies{
		Ctx:     ctx,
		Stdout:  stdout,
		Stderr:  stderr,
		Logger:  logger,
		Scraper: m.Scraper,
	}

	if deps.Scraper == nil {
		scraper, closeFn, err := buildScraper(cli, cfg, logger)
		if err != nil {
			return err
		}
		defer closeFn()

		deps.Scraper = scraper
		if !cli.Verbose {
			spin := spinner.New(spinner.CharSets[9], 100*time.Millisecond, spinner.WithWriter(stderr))
			scraper.Progress = spinnerProgress(spin)
			deps.Scraper = &spinnerScraper{next: scraper, spin: spin}
		}
	}

	cmd := &ScrapeCmd{
		URL:    cli.URL,
		Output: cli.Output,
		Config: cfg,
	}
	return cmd.Run(deps)
}

// newLogger returns a slog logger backed by charmbracelet/log, tagged with a
// run id.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	handler := log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Prefix:          "docscrape",
	})
	return slog.New(handler).With("run", uuid.NewString())
}

// buildScraper wires the production collaborators. The returned function
// releases the renderer.
func buildScraper(cli *CLI, cfg docscrape.Config, logger *slog.Logger) (*crawl.Scraper, func(), error) {
	var fetcher docscrape.Fetcher
	switch cli.Renderer {
	case rendererHTTP:
		fetcher = docshttp.NewFetcher(docshttp.WithTimeout(cfg.Timeout))
	default:
		rf, err := rod.NewFetcher(
			rod.WithFetchTimeout(cfg.Timeout),
			rod.WithHeadless(cfg.Headless),
		)
		if err != nil {
			logger.Error("Chrome or Chromium must be installed")
			return nil, nil, fmt.Errorf("failed to start browser: %w", err)
		}
		fetcher = rf
	}

	var sitemaps docscrape.SitemapService = docshttp.NewSitemapService(nil)
	var detector docscrape.PlatformDetector = goquery.NewDetector()
	if cli.Verbose {
		sitemaps = docslog.NewSitemapService(sitemaps, logger)
		detector = docslog.NewPlatformDetector(detector, logger)
	}

	// Cached renders skip the politeness delay.
	wrap := func(limited docscrape.Fetcher) (docscrape.Fetcher, error) {
		cached, err := lru.NewFetcher(limited, cli.CacheSize)
		if err != nil {
			return nil, err
		}
		if cli.Verbose {
			return docslog.NewFetcher(cached, logger), nil
		}
		return cached, nil
	}

	s := &crawl.Scraper{
		Detector:    detector,
		Sitemaps:    sitemaps,
		Fetcher:     fetcher,
		WrapFetcher: wrap,
		Extractor:   goquery.NewExtractor(),
		Links:       goquery.NewHarvester(),
		Converter:   htmltomarkdown.NewConverter(),
		Writer:      fs.NewWriter(),
		Logger:      logger,
	}
	closeFn := func() {
		if err := fetcher.Close(); err != nil {
			logger.Warn("closing renderer", "err", err)
		}
	}
	return s, closeFn, nil
}

// spinnerScraper shows a spinner on stderr while a scrape runs.
type spinnerScraper struct {
	next docscrape.Scraper
	spin *spinner.Spinner
}

func (s *spinnerScraper) Scrape(ctx context.Context, baseURL, outputPath string, cfg docscrape.Config) (*docscrape.Result, error) {
	s.spin.Suffix = " discovering pages"
	s.spin.Start()
	defer s.spin.Stop()
	return s.next.Scrape(ctx, baseURL, outputPath, cfg)
}

// spinnerProgress reports per-page progress in the spinner suffix.
func spinnerProgress(spin *spinner.Spinner) docscrape.ProgressFunc {
	return func(e docscrape.ProgressEvent) {
		spin.Lock()
		spin.Suffix = fmt.Sprintf(" [%d/%d] %s", e.Completed, e.Total, crawl.ShortURL(e.Outcome.URL, 60))
		spin.Unlock()
	}
}
