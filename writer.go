package docscrape

import "context"

// DocumentWriter persists the final document.
type DocumentWriter interface {
	// WriteDocument stores text verbatim at path as UTF-8.
	WriteDocument(ctx context.Context, path string, text string) error
}
