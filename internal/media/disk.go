package media

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Extensions by allowed MIME type. Class materials cover documents as
// well as images, so the allow-list is wider than avatars alone.
var allowedMIMETypes = map[string]string{
	"image/jpeg":         ".jpg",
	"image/png":          ".png",
	"image/gif":          ".gif",
	"image/webp":         ".webp",
	"application/pdf":    ".pdf",
	"application/msword": ".doc",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": ".docx",
	"application/vnd.ms-excel": ".xls",
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": ".xlsx",
	"text/plain": ".txt",
}

// DiskStore is the local-filesystem Store implementation. Keys are
// slash-separated paths relative to the base directory; URLs are served
// under the public prefix by the router's static group.
type DiskStore struct {
	baseDir   string
	urlPrefix string
	maxBytes  int64
}

// NewDiskStore creates a DiskStore rooted at baseDir.
func NewDiskStore(baseDir, urlPrefix string, maxBytes int64) *DiskStore {
	return &DiskStore{baseDir: baseDir, urlPrefix: strings.TrimSuffix(urlPrefix, "/"), maxBytes: maxBytes}
}

// Upload writes the stream to <baseDir>/<folder>/<uuid><ext>.
func (s *DiskStore) Upload(ctx context.Context, r io.Reader, folder, contentType string, size int64) (Object, error) {
	ext, ok := allowedMIMETypes[contentType]
	if !ok {
		return Object{}, fmt.Errorf("%w: %s", ErrUnsupportedFileType, contentType)
	}
	if size > s.maxBytes {
		return Object{}, fmt.Errorf("%w: %d bytes (max: %d)", ErrFileTooLarge, size, s.maxBytes)
	}

	folder = sanitizeFolder(folder)
	if err := os.MkdirAll(filepath.Join(s.baseDir, folder), 0o755); err != nil {
		return Object{}, fmt.Errorf("create upload dir: %w", err)
	}

	key := path.Join(folder, uuid.New().String()+ext)
	dst, err := os.Create(filepath.Join(s.baseDir, filepath.FromSlash(key)))
	if err != nil {
		return Object{}, fmt.Errorf("create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, r); err != nil {
		return Object{}, fmt.Errorf("write file: %w", err)
	}

	return Object{URL: s.urlPrefix + "/" + key, Key: key}, nil
}

// Delete removes the blob. A missing file is treated as success.
func (s *DiskStore) Delete(ctx context.Context, key string) error {
	key = sanitizeFolder(key)
	if key == "" {
		return nil
	}
	err := os.Remove(filepath.Join(s.baseDir, filepath.FromSlash(key)))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove blob: %w", err)
	}
	return nil
}

// Walk visits every stored key with its modification time. Used by the
// janitor worker to find blobs no longer referenced by any database
// row; the mod time lets it spare files still being registered.
func (s *DiskStore) Walk(fn func(key string, modTime time.Time) error) error {
	return filepath.WalkDir(s.baseDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(s.baseDir, p)
		if err != nil {
			return err
		}
		return fn(filepath.ToSlash(rel), info.ModTime())
	})
}

// sanitizeFolder strips path traversal and leading separators so keys
// always stay inside the base directory.
func sanitizeFolder(folder string) string {
	folder = strings.ReplaceAll(folder, "\\", "/")
	cleaned := path.Clean("/" + folder)
	return strings.TrimPrefix(cleaned, "/")
}
