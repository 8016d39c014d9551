package storage

import (
	"context"
	"io"
)

// Storage is the file store behind job attachments.
type Storage interface {
	// Save stores a file at the given relative path.
	Save(ctx context.Context, path string, reader io.Reader) (int64, error)

	// Get opens the file at the given path for reading.
	Get(ctx context.Context, path string) (io.ReadCloser, error)

	// Delete removes the file. Deleting a missing file is not an error:
	// attachment removal is record-authoritative.
	Delete(ctx context.Context, path string) error

	// Exists checks whether a file is present at the path.
	Exists(ctx context.Context, path string) (bool, error)
}

// Config holds storage configuration.
type Config struct {
	BasePath string
}

// NewStorage creates the configured storage backend.
func NewStorage(cfg Config) (Storage, error) {
	return NewLocalStorage(cfg)
}
