package media

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func newTestStore(t *testing.T) *DiskStore {
	t.Helper()
	return NewDiskStore(t.TempDir(), "/uploads", 1024)
}

func TestUploadAndDelete(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	obj, err := store.Upload(ctx, strings.NewReader("hello"), "materials", "application/pdf", 5)
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if !strings.HasPrefix(obj.Key, "materials/") {
		t.Fatalf("expected key under folder, got %q", obj.Key)
	}
	if !strings.HasSuffix(obj.Key, ".pdf") {
		t.Fatalf("expected .pdf extension, got %q", obj.Key)
	}
	if obj.URL != "/uploads/"+obj.Key {
		t.Fatalf("expected URL under prefix, got %q", obj.URL)
	}

	data, err := os.ReadFile(filepath.Join(store.baseDir, filepath.FromSlash(obj.Key)))
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "hello" {
		t.Fatalf("expected stored bytes %q, got %q", "hello", data)
	}

	if err := store.Delete(ctx, obj.Key); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := os.Stat(filepath.Join(store.baseDir, filepath.FromSlash(obj.Key))); !os.IsNotExist(err) {
		t.Fatalf("expected blob removed, stat err %v", err)
	}

	// Deleting again is not an error.
	if err := store.Delete(ctx, obj.Key); err != nil {
		t.Fatalf("second Delete: %v", err)
	}
}

func TestUploadRejectsUnsupportedType(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Upload(context.Background(), strings.NewReader("x"), "materials", "application/x-msdownload", 1)
	if !errors.Is(err, ErrUnsupportedFileType) {
		t.Fatalf("expected ErrUnsupportedFileType, got %v", err)
	}
}

func TestUploadRejectsOversizedFile(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Upload(context.Background(), strings.NewReader("x"), "materials", "image/png", 2048)
	if !errors.Is(err, ErrFileTooLarge) {
		t.Fatalf("expected ErrFileTooLarge, got %v", err)
	}
}

func TestUploadSanitizesFolder(t *testing.T) {
	store := newTestStore(t)

	obj, err := store.Upload(context.Background(), strings.NewReader("x"), "../../etc", "text/plain", 1)
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if strings.Contains(obj.Key, "..") {
		t.Fatalf("expected traversal stripped, got %q", obj.Key)
	}
	if _, err := os.Stat(filepath.Join(store.baseDir, "etc")); err != nil {
		t.Fatalf("expected folder inside base dir: %v", err)
	}
}

func TestWalkListsEveryKey(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	first, err := store.Upload(ctx, strings.NewReader("a"), "materials", "text/plain", 1)
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	second, err := store.Upload(ctx, strings.NewReader("b"), "employees", "image/png", 1)
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}

	seen := map[string]bool{}
	if err := store.Walk(func(key string, modTime time.Time) error {
		if time.Since(modTime) > time.Minute {
			t.Fatalf("expected a fresh mod time for %s, got %v", key, modTime)
		}
		seen[key] = true
		return nil
	}); err != nil {
		t.Fatalf("Walk: %v", err)
	}

	if len(seen) != 2 || !seen[first.Key] || !seen[second.Key] {
		t.Fatalf("expected both keys walked, got %v", seen)
	}
}
