package crawl

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docscrape"
)

// FetchFunc renders one address.
type FetchFunc func(ctx context.Context, url string) (string, error)

// RetryDelays returns the waits before each of n extra attempts, doubling
// from one second.
func RetryDelays(n int) []time.Duration {
	var delays []time.Duration
	for d := time.Second; len(delays) < n; d *= 2 {
		delays = append(delays, d)
	}
	return delays
}

// FetchWithRetry calls fetch, then again after each delay while it fails.
// Missing pages and invalid addresses are not retried.
func FetchWithRetry(ctx context.Context, url string, fetch FetchFunc, logger *slog.Logger, delays []time.Duration) (string, error) {
	html, err := fetch(ctx, url)
	for attempt := 0; err != nil && attempt < len(delays); attempt++ {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		if !retryable(err) {
			return "", err
		}
		if logger != nil {
			logger.Debug("retry", "url", url, "attempt", attempt+2, "wait", delays[attempt], "err", err)
		}

		timer := time.NewTimer(delays[attempt])
		select {
		case <-ctx.Done():
			timer.Stop()
			return "", ctx.Err()
		case <-timer.C:
		}

		html, err = fetch(ctx, url)
	}
	if err != nil {
		return "", err
	}
	return html, nil
}

func retryable(err error) bool {
	switch docscrape.ErrorCode(err) {
	case docscrape.ENOTFOUND, docscrape.EINVALID:
		return false
	}
	return true
}
