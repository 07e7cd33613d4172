package docscrape_test

import (
	"regexp"
	"testing"

	"github.com/fwojciec/docscrape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePlatform(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want docscrape.Platform
	}{
		{in: "docusaurus", want: docscrape.PlatformDocusaurus},
		{in: "Mintlify", want: docscrape.PlatformMintlify},
		{in: " auto ", want: docscrape.PlatformAuto},
		{in: "", want: docscrape.PlatformAuto},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			got, err := docscrape.ParsePlatform(tt.in)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("rejects unknown platform", func(t *testing.T) {
		t.Parallel()

		_, err := docscrape.ParsePlatform("sphinx")

		require.Error(t, err)
		assert.Equal(t, docscrape.EINVALID, docscrape.ErrorCode(err))
	})
}

func TestConfigFor(t *testing.T) {
	t.Parallel()

	t.Run("concrete platforms use the sitemap", func(t *testing.T) {
		t.Parallel()

		for _, p := range docscrape.Platforms() {
			cfg := docscrape.ConfigFor(p)
			assert.True(t, cfg.UseSitemap, p)
			assert.NotEmpty(t, cfg.ContentSelectors, p)
			assert.NotEmpty(t, cfg.NavigationSelectors, p)
		}
	})

	t.Run("auto is the union of all platforms without patterns", func(t *testing.T) {
		t.Parallel()

		auto := docscrape.ConfigFor(docscrape.PlatformAuto)

		assert.Nil(t, auto.Filter)
		for _, p := range docscrape.Platforms() {
			cfg := docscrape.ConfigFor(p)
			assert.Subset(t, auto.NavigationSelectors, cfg.NavigationSelectors)
			assert.Subset(t, auto.ContentSelectors, cfg.ContentSelectors)
		}
	})

	t.Run("auto keeps docusaurus selectors first and drops duplicates", func(t *testing.T) {
		t.Parallel()

		auto := docscrape.ConfigFor(docscrape.PlatformAuto)
		docusaurus := docscrape.ConfigFor(docscrape.PlatformDocusaurus)

		assert.Equal(t, docusaurus.ContentSelectors, auto.ContentSelectors[:len(docusaurus.ContentSelectors)])
		seen := make(map[string]bool)
		for _, s := range auto.ContentSelectors {
			assert.False(t, seen[s], "duplicate selector %q", s)
			seen[s] = true
		}
	})

	t.Run("unknown platform falls back to auto", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t,
			docscrape.ConfigFor(docscrape.PlatformAuto),
			docscrape.ConfigFor(docscrape.Platform("gitbook")),
		)
	})
}

func TestPlatformConfig_WithFilter(t *testing.T) {
	t.Parallel()

	t.Run("appends user patterns without mutating the registry", func(t *testing.T) {
		t.Parallel()

		base := docscrape.ConfigFor(docscrape.PlatformDocusaurus)
		before := len(base.Filter.Exclude)
		extra := &docscrape.URLFilter{
			Include: []*regexp.Regexp{regexp.MustCompile(`/docs/`)},
			Exclude: []*regexp.Regexp{regexp.MustCompile(`/changelog`)},
		}

		got := base.WithFilter(extra)

		assert.Len(t, got.Filter.Include, 1)
		assert.Len(t, got.Filter.Exclude, before+1)
		assert.Len(t, docscrape.ConfigFor(docscrape.PlatformDocusaurus).Filter.Exclude, before)
	})

	t.Run("nil filter returns config unchanged", func(t *testing.T) {
		t.Parallel()

		base := docscrape.ConfigFor(docscrape.PlatformAuto)

		assert.Equal(t, base, base.WithFilter(nil))
	})
}
