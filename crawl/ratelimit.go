package crawl

import (
	"context"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/fwojciec/docscrape"
	"golang.org/x/time/rate"
)

var _ docscrape.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter keeps requests to one host at least a fixed delay apart.
// Hosts are compared case-insensitively. A zero delay never blocks.
type DomainLimiter struct {
	delay time.Duration

	mu    sync.Mutex
	hosts map[string]*rate.Limiter
}

// NewDomainLimiter returns a limiter spacing requests to a host by delay.
func NewDomainLimiter(delay time.Duration) *DomainLimiter {
	return &DomainLimiter{
		delay: delay,
		hosts: make(map[string]*rate.Limiter),
	}
}

// Wait blocks until a request to host may start, or ctx is done.
func (d *DomainLimiter) Wait(ctx context.Context, host string) error {
	if d.delay <= 0 {
		return ctx.Err()
	}
	return d.limiter(strings.ToLower(host)).Wait(ctx)
}

func (d *DomainLimiter) limiter(host string) *rate.Limiter {
	d.mu.Lock()
	defer d.mu.Unlock()
	l, ok := d.hosts[host]
	if !ok {
		// Burst 1: the first request passes, each later one waits a full delay.
		l = rate.NewLimiter(rate.Every(d.delay), 1)
		d.hosts[host] = l
	}
	return l
}

var _ docscrape.Fetcher = (*LimitedFetcher)(nil)

// LimitedFetcher waits on Limiter for the page host before each fetch.
// Decorators stacked on top of it, such as a render cache, answer without
// paying the delay.
type LimitedFetcher struct {
	Next    docscrape.Fetcher
	Limiter docscrape.DomainLimiter
}

func (f *LimitedFetcher) Fetch(ctx context.Context, pageURL string) (string, error) {
	host := pageURL
	if u, err := url.Parse(pageURL); err == nil {
		host = u.Host
	}
	if err := f.Limiter.Wait(ctx, host); err != nil {
		return "", err
	}
	return f.Next.Fetch(ctx, pageURL)
}

func (f *LimitedFetcher) Close() error {
	return f.Next.Close()
}
