package blob

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiskStore_Save(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	assert.NoError(t, err)

	name, err := store.Save(context.Background(), strings.NewReader("fake png bytes"), "image/png")
	assert.NoError(t, err)
	assert.True(t, strings.HasSuffix(name, ".png"), "expected .png suffix, got %s", name)

	data, err := os.ReadFile(filepath.Join(store.Dir(), name))
	assert.NoError(t, err)
	assert.Equal(t, "fake png bytes", string(data))
}

func TestDiskStore_Save_UniqueNames(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	assert.NoError(t, err)

	first, err := store.Save(context.Background(), strings.NewReader("a"), "image/png")
	assert.NoError(t, err)
	second, err := store.Save(context.Background(), strings.NewReader("b"), "image/png")
	assert.NoError(t, err)

	assert.NotEqual(t, first, second, "two saves must never collide")
}

func TestDiskStore_Save_CancelledContext(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	assert.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = store.Save(ctx, strings.NewReader("a"), "image/png")
	assert.Error(t, err)

	entries, err := os.ReadDir(store.Dir())
	assert.NoError(t, err)
	assert.Empty(t, entries, "no file should be written after cancellation")
}

func TestExtensionFor(t *testing.T) {
	tests := []struct {
		contentType string
		want        string
	}{
		{"image/png", "png"},
		{"image/jpeg", "jpg"},
		{"image/gif", "gif"},
		{"image/webp", "webp"},
		{"application/octet-stream", "bin"},
		{"", "bin"},
		{"image/png; charset=utf-8", "bin"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ExtensionFor(tt.contentType), "content type %q", tt.contentType)
	}
}
