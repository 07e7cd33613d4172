package crawl_test

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/fwojciec/docscrape/mock"
)

// longText is enough text to pass the default content threshold.
var longText = strings.Repeat("Documentation text. ", 10)

// page builds an HTML page with the given content length and links.
func page(title string, content string, links ...string) string {
	var b strings.Builder
	b.WriteString("<html><head><title>" + title + "</title></head><body><nav>")
	for _, l := range links {
		b.WriteString(`<a href="` + l + `">` + l + `</a>`)
	}
	b.WriteString("</nav><article>" + content + "</article></body></html>")
	return b.String()
}

// fakeSite serves pages from memory and records every fetch.
type fakeSite struct {
	mu      sync.Mutex
	pages   map[string]string
	fetched []string
}

func newFakeSite(pages map[string]string) *fakeSite {
	return &fakeSite{pages: pages}
}

func (s *fakeSite) Fetcher() *mock.Fetcher {
	return &mock.Fetcher{
		FetchFn: func(_ context.Context, url string) (string, error) {
			s.mu.Lock()
			defer s.mu.Unlock()
			s.fetched = append(s.fetched, url)
			html, ok := s.pages[url]
			if !ok {
				return "", errors.New("404 " + url)
			}
			return html, nil
		},
		CloseFn: func() error { return nil },
	}
}

func (s *fakeSite) Fetched() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.fetched...)
}

func noWait() *mock.DomainLimiter {
	return &mock.DomainLimiter{
		WaitFn: func(context.Context, string) error { return nil },
	}
}
