// Package http implements sitemap discovery and a plain HTTP page fetcher
// for sites that render without JavaScript.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/fwojciec/docscrape"
)

// UserAgent identifies docscrape requests.
const UserAgent = "docscrape/1.0 (+https://github.com/fwojciec/docscrape)"

// get issues a GET for targetURL and returns the body of a 200 response.
// A 404 is ENOTFOUND; any other status is a plain error. The caller closes
// the body.
func get(ctx context.Context, client *http.Client, targetURL string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if err != nil {
		return nil, docscrape.Errorf(docscrape.EINVALID, "creating request for %s: %v", targetURL, err)
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}

	switch resp.StatusCode {
	case http.StatusOK:
		return resp.Body, nil
	case http.StatusNotFound:
		resp.Body.Close()
		return nil, docscrape.Errorf(docscrape.ENOTFOUND, "not found: %s", targetURL)
	}
	resp.Body.Close()
	return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, targetURL)
}
