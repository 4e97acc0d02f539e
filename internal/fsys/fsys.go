// Package fsys provides filesystem adapters that implement audit service
// interfaces.
package fsys

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alguides/fmlint/internal/scan"
)

// OSLister implements audit.DocumentLister over a root directory on the
// local filesystem.
type OSLister struct {
	Root string
}

// ListDocumentsImpl enumerates Markdown files under the root, applying
// the standard exclusions.
func (l *OSLister) ListDocumentsImpl(_ context.Context) ([]string, error) {
	if _, err := os.Stat(l.Root); err != nil {
		return nil, fmt.Errorf("reading root %s: %w", l.Root, err)
	}
	return scan.Markdown(os.DirFS(l.Root))
}

// ListDocuments delegates to ListDocumentsImpl.
func (l *OSLister) ListDocuments(ctx context.Context) ([]string, error) {
	return l.ListDocumentsImpl(ctx)
}

// OSContentReader implements audit.ContentReader using os.ReadFile.
type OSContentReader struct {
	Root string
}

// ReadDocumentImpl reads the full content of a file under the root.
func (r *OSContentReader) ReadDocumentImpl(_ context.Context, path string) (string, error) {
	data, err := os.ReadFile(filepath.Join(r.Root, path))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// ReadDocument delegates to ReadDocumentImpl.
func (r *OSContentReader) ReadDocument(ctx context.Context, path string) (string, error) {
	return r.ReadDocumentImpl(ctx, path)
}
