// Package fs writes the assembled document to the local file system.
package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/fwojciec/docscrape"
)

// Ensure Writer implements docscrape.DocumentWriter at compile time.
var _ docscrape.DocumentWriter = (*Writer)(nil)

// Writer writes documents to disk atomically: the text goes to a temporary
// file in the destination directory, which is then renamed over the target.
// A failed write leaves any previous file untouched.
type Writer struct{}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// WriteDocument stores text verbatim at path, creating parent directories.
func (w *Writer) WriteDocument(ctx context.Context, path string, text string) error {
	if path == "" {
		return docscrape.Errorf(docscrape.EINVALID, "output path required")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if _, err := tmp.WriteString(text); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		os.Remove(tmpPath)
		return err
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return nil
}
