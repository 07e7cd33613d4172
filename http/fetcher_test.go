package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/fwojciec/docscrape"
	docscrapehttp "github.com/fwojciec/docscrape/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ docscrape.Fetcher = (*docscrapehttp.Fetcher)(nil)

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("returns the served HTML and identifies itself", func(t *testing.T) {
		t.Parallel()

		var gotAgent string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAgent = r.UserAgent()
			w.Header().Set("Content-Type", "text/html")
			_, _ = w.Write([]byte(`<html><body><article>Install</article></body></html>`))
		}))
		defer srv.Close()

		html, err := docscrapehttp.NewFetcher().Fetch(context.Background(), srv.URL)

		require.NoError(t, err)
		assert.Equal(t, `<html><body><article>Install</article></body></html>`, html)
		assert.Equal(t, docscrapehttp.UserAgent, gotAgent)
	})

	t.Run("does not run scripts", func(t *testing.T) {
		t.Parallel()

		page := `<div id="root"></div><script>document.getElementById('root').textContent = 'x'</script>`
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(page))
		}))
		defer srv.Close()

		html, err := docscrapehttp.NewFetcher().Fetch(context.Background(), srv.URL)

		require.NoError(t, err)
		assert.Equal(t, page, html)
	})

	t.Run("truncates bodies over the cap", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(strings.Repeat("a", 64)))
		}))
		defer srv.Close()

		html, err := docscrapehttp.NewFetcher(docscrapehttp.WithMaxBodyBytes(16)).Fetch(context.Background(), srv.URL)

		require.NoError(t, err)
		assert.Len(t, html, 16)
	})

	t.Run("maps 404 to ENOTFOUND", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.NotFoundHandler())
		defer srv.Close()

		_, err := docscrapehttp.NewFetcher().Fetch(context.Background(), srv.URL+"/missing")

		assert.Equal(t, docscrape.ENOTFOUND, docscrape.ErrorCode(err))
	})

	t.Run("server errors are internal", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		_, err := docscrapehttp.NewFetcher().Fetch(context.Background(), srv.URL)

		require.Error(t, err)
		assert.Equal(t, docscrape.EINTERNAL, docscrape.ErrorCode(err))
		assert.Contains(t, err.Error(), "502")
	})

	t.Run("request timeout", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			time.Sleep(200 * time.Millisecond)
		}))
		defer srv.Close()

		_, err := docscrapehttp.NewFetcher(docscrapehttp.WithTimeout(20*time.Millisecond)).Fetch(context.Background(), srv.URL)

		require.Error(t, err)
	})

	t.Run("canceled context", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
		defer srv.Close()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := docscrapehttp.NewFetcher().Fetch(ctx, srv.URL)

		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("malformed address is invalid", func(t *testing.T) {
		t.Parallel()

		_, err := docscrapehttp.NewFetcher().Fetch(context.Background(), "http://[::1")

		assert.Equal(t, docscrape.EINVALID, docscrape.ErrorCode(err))
	})
}
