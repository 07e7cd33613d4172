//go:build integration

package rod_test

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/docscrape"
	"github.com/fwojciec/docscrape/goquery"
	"github.com/fwojciec/docscrape/rod"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_Fetch_LiveSites(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		url      string
		platform docscrape.Platform
	}{
		{"https://docusaurus.io/docs", docscrape.PlatformDocusaurus},
		{"https://mintlify.com/docs", docscrape.PlatformMintlify},
	} {
		t.Run(string(tc.platform), func(t *testing.T) {
			t.Parallel()

			ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
			defer cancel()

			html, err := newFetcher(t).Fetch(ctx, tc.url)
			require.NoError(t, err)

			assert.Equal(t, tc.platform, goquery.NewDetector().Detect(html))
			cfg := docscrape.ConfigFor(tc.platform)
			assert.True(t, goquery.NewExtractor().HasContent(html, cfg.ContentSelectors, docscrape.DefaultMinContentLength))
		})
	}
}
