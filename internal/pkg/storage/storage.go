package storage

import (
	"context"
	"io"
)

// FileStorage persists uploaded candidate resumes. Local disk is the only
// backend for now; the interface leaves room for an object store later.
type FileStorage interface {
	// Upload stores a file and returns the storage path
	Upload(ctx context.Context, file io.Reader, path string) (string, error)

	// Download retrieves a file
	Download(ctx context.Context, path string) (io.ReadCloser, error)

	// Delete removes a file
	Delete(ctx context.Context, path string) error

	// GetURL returns a public URL for the stored file
	GetURL(path string) string

	// Exists checks if file exists
	Exists(ctx context.Context, path string) (bool, error)
}
