package mock

import (
	"context"

	"github.com/fwojciec/docscrape"
)

var _ docscrape.DocumentWriter = (*DocumentWriter)(nil)

// DocumentWriter is a mock implementation of docscrape.DocumentWriter.
type DocumentWriter struct {
	WriteDocumentFn func(ctx context.Context, path string, text string) error
}

func (w *DocumentWriter) WriteDocument(ctx context.Context, path string, text string) error {
	return w.WriteDocumentFn(ctx, path, text)
}
