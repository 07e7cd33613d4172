package docscrape_test

import (
	"net/url"
	"testing"

	"github.com/fwojciec/docscrape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectSitemapURLs(t *testing.T) {
	t.Parallel()

	t.Run("keeps only same-site fragment-free addresses", func(t *testing.T) {
		t.Parallel()

		locs := []string{
			"https://docs.example.com/a",
			"https://docs.example.com/b#frag",
			"https://other.com/c",
			"https://docs.example.com.evil.com/x",
			"https://docs.example.com:8443/y",
			"https://docs.example.com@evil.com/z",
		}

		got := docscrape.SelectSitemapURLs("https://docs.example.com", locs, nil)

		assert.Equal(t, []string{"https://docs.example.com/a"}, got)
	})

	t.Run("invalid base keeps nothing", func(t *testing.T) {
		t.Parallel()

		got := docscrape.SelectSitemapURLs("://bad", []string{"://bad/a"}, nil)

		assert.Empty(t, got)
	})

	t.Run("sorts and deduplicates", func(t *testing.T) {
		t.Parallel()

		locs := []string{
			"https://docs.example.com/z",
			"https://docs.example.com/a",
			"https://docs.example.com/m",
			"https://docs.example.com/a",
			"http://docs.example.com/b",
			"https://docs.example.com/m#top",
		}

		got := docscrape.SelectSitemapURLs("https://docs.example.com", locs, nil)

		assert.Equal(t, []string{
			"https://docs.example.com/a",
			"https://docs.example.com/m",
			"https://docs.example.com/z",
		}, got)
	})

	t.Run("applies include then exclude patterns", func(t *testing.T) {
		t.Parallel()

		filter, err := docscrape.NewURLFilter([]string{`/docs/`}, []string{`/docs/internal`})
		require.NoError(t, err)
		locs := []string{
			"https://example.com/docs/intro",
			"https://example.com/docs/internal/notes",
			"https://example.com/blog/hello",
		}

		got := docscrape.SelectSitemapURLs("https://example.com", locs, filter)

		assert.Equal(t, []string{"https://example.com/docs/intro"}, got)
	})

	t.Run("returns empty slice rather than nil", func(t *testing.T) {
		t.Parallel()

		got := docscrape.SelectSitemapURLs("https://example.com", nil, nil)

		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("is idempotent", func(t *testing.T) {
		t.Parallel()

		locs := []string{
			"https://example.com/b",
			"https://example.com/a",
			"https://example.com/a#x",
		}

		first := docscrape.SelectSitemapURLs("https://example.com", locs, nil)
		second := docscrape.SelectSitemapURLs("https://example.com", locs, nil)

		assert.Equal(t, first, second)
	})
}

func TestSameOrigin(t *testing.T) {
	t.Parallel()

	base, err := url.Parse("https://docs.example.com/start")
	require.NoError(t, err)

	assert.True(t, docscrape.SameOrigin(base, "https://docs.example.com/other"))
	assert.False(t, docscrape.SameOrigin(base, "http://docs.example.com/other"))
	assert.False(t, docscrape.SameOrigin(base, "https://docs.example.com:8443/other"))
	assert.False(t, docscrape.SameOrigin(base, "https://api.example.com/other"))
}

func TestURLPath(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "/docs/intro", docscrape.URLPath("https://example.com/docs/intro?x=1"))
	assert.Equal(t, "/", docscrape.URLPath("https://example.com"))
}
