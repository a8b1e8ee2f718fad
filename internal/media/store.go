// Package media wraps blob storage behind a small interface: upload a
// stream into a folder, get back a URL and a deletion key. Deletes are
// best-effort by contract — callers log failures and carry on with
// their primary database operation.
package media

import (
	"context"
	"errors"
	"io"
)

// Sentinel errors surfaced to handlers.
var (
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file too large")
)

// Object identifies a stored blob. Key is the deletion handle.
type Object struct {
	URL string `json:"url"`
	Key string `json:"key"`
}

// Store is the blob-store contract consumed by the class, employee,
// bank-account and upload services.
type Store interface {
	// Upload stores the stream under the given folder and returns the
	// resulting object. The declared size is validated against the
	// configured limit before any bytes are written.
	Upload(ctx context.Context, r io.Reader, folder, contentType string, size int64) (Object, error)
	// Delete removes the blob for a previously returned key. Deleting a
	// missing blob is not an error.
	Delete(ctx context.Context, key string) error
}
