package blob

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// extensions maps declared content types to file extensions. Anything
// not listed falls back to fallbackExt so malformed content types can
// never produce an unusable name.
var extensions = map[string]string{
	"image/png":     "png",
	"image/jpeg":    "jpg",
	"image/gif":     "gif",
	"image/webp":    "webp",
	"image/svg+xml": "svg",
}

const fallbackExt = "bin"

// DiskStore persists uploaded blobs on the local filesystem under a
// single directory, each under a freshly generated unique name. The
// caller-supplied filename is never used.
type DiskStore struct {
	dir string
}

func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &DiskStore{dir: dir}, nil
}

// Save writes the blob under "{uuid}.{ext}" and returns the generated
// name. A partially written file is removed on failure so the store
// never holds bytes the caller could mistake for a completed upload.
func (s *DiskStore) Save(ctx context.Context, r io.Reader, contentType string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	name := uuid.New().String() + "." + ExtensionFor(contentType)
	dst := filepath.Join(s.dir, name)

	f, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("create blob file: %w", err)
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(dst)
		return "", fmt.Errorf("write blob file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(dst)
		return "", fmt.Errorf("close blob file: %w", err)
	}

	return name, nil
}

// Dir returns the directory blobs are written to, for static serving.
func (s *DiskStore) Dir() string {
	return s.dir
}

func ExtensionFor(contentType string) string {
	if ext, ok := extensions[contentType]; ok {
		return ext
	}
	return fallbackExt
}
