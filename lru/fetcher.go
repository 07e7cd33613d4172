// Package lru caches rendered pages with hashicorp/golang-lru so an address
// rendered during discovery is not rendered again during extraction.
package lru

import (
	"context"

	"github.com/fwojciec/docscrape"
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultSize is the default number of cached pages.
const DefaultSize = 256

// Ensure Fetcher implements docscrape.Fetcher at compile time.
var _ docscrape.Fetcher = (*Fetcher)(nil)

// Fetcher decorates a Fetcher with a bounded cache of successful renders.
// Failed fetches are not cached.
type Fetcher struct {
	next  docscrape.Fetcher
	cache *lru.Cache[string, string]
}

// NewFetcher wraps next with a cache holding up to size pages. A size below
// one uses DefaultSize.
func NewFetcher(next docscrape.Fetcher, size int) (*Fetcher, error) {
	if size < 1 {
		size = DefaultSize
	}
	cache, err := lru.New[string, string](size)
	if err != nil {
		return nil, docscrape.Errorf(docscrape.EINVALID, "creating page cache: %v", err)
	}
	return &Fetcher{next: next, cache: cache}, nil
}

// Fetch returns the cached render of url or delegates to the wrapped fetcher.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if html, ok := f.cache.Get(url); ok {
		return html, nil
	}
	html, err := f.next.Fetch(ctx, url)
	if err != nil {
		return "", err
	}
	f.cache.Add(url, html)
	return html, nil
}

// Len returns the number of cached pages.
func (f *Fetcher) Len() int {
	return f.cache.Len()
}

// Close purges the cache and closes the wrapped fetcher.
func (f *Fetcher) Close() error {
	f.cache.Purge()
	return f.next.Close()
}
