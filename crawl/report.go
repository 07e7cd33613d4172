package crawl

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/docscrape"
)

// ContentHash returns the hex xxhash of a converted page body.
func ContentHash(body string) string {
	return strconv.FormatUint(xxhash.Sum64String(body), 16)
}

// Summary aggregates the page outcomes of a scrape run.
type Summary struct {
	Written int
	Skipped int
	Failed  int

	// Bytes is the total size of the written bodies.
	Bytes int

	// Duplicates counts written pages whose body hash matched an earlier page.
	Duplicates int
}

// Summarize tallies outcomes by status.
func Summarize(outcomes []docscrape.PageOutcome) Summary {
	var s Summary
	seen := make(map[string]struct{}, len(outcomes))
	for _, o := range outcomes {
		switch o.Status {
		case docscrape.OutcomeSuccess:
			s.Written++
			s.Bytes += o.Bytes
			if o.Hash == "" {
				continue
			}
			if _, dup := seen[o.Hash]; dup {
				s.Duplicates++
			}
			seen[o.Hash] = struct{}{}
		case docscrape.OutcomeNoContent:
			s.Skipped++
		case docscrape.OutcomeFailed:
			s.Failed++
		}
	}
	return s
}

// Size returns Bytes in human-readable form.
func (s Summary) Size() string {
	const (
		kib = 1 << 10
		mib = 1 << 20
	)
	switch {
	case s.Bytes >= mib:
		return fmt.Sprintf("%.1f MB", float64(s.Bytes)/mib)
	case s.Bytes >= kib:
		return fmt.Sprintf("%.1f KB", float64(s.Bytes)/kib)
	}
	return fmt.Sprintf("%d B", s.Bytes)
}

// ShortURL drops the scheme from pageURL and, when the rest is wider than
// width, keeps its tail behind an ellipsis.
func ShortURL(pageURL string, width int) string {
	s := pageURL
	if i := strings.Index(s, "://"); i >= 0 {
		s = s[i+3:]
	}
	if width <= 0 {
		return ""
	}
	if len(s) <= width {
		return s
	}
	if width <= 3 {
		return s[len(s)-width:]
	}
	return "..." + s[len(s)-width+3:]
}
