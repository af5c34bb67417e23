package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weddinginvite/internal/domain"
)

func dirEntryCount(t *testing.T, root string) int {
	t.Helper()
	count := 0
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			count++
		}
		return nil
	})
	require.NoError(t, err)
	return count
}

func TestFileStore_Store(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		upload     *domain.Upload
		slug       string
		purpose    domain.MediaPurpose
		wantPrefix string
		wantExt    string
		wantErr    error
	}{
		{
			name:       "jpeg under slug and purpose",
			upload:     &domain.Upload{Content: []byte("jpegdata"), ContentType: "image/jpeg", Size: 8},
			slug:       "abc12345",
			purpose:    domain.PurposeMain,
			wantPrefix: "abc12345/main/",
			wantExt:    ".jpg",
		},
		{
			name:       "webp gallery",
			upload:     &domain.Upload{Content: []byte("webpdata"), ContentType: "image/webp", Size: 8},
			slug:       "abc12345",
			purpose:    domain.PurposeGallery,
			wantPrefix: "abc12345/gallery/",
			wantExt:    ".webp",
		},
		{
			name:       "malformed id redirected to quarantine",
			upload:     &domain.Upload{Content: []byte("x"), ContentType: "image/png", Size: 1},
			slug:       "../../etc",
			purpose:    domain.PurposeOG,
			wantPrefix: "temp/og/",
			wantExt:    ".png",
		},
		{
			name:    "disallowed mime",
			upload:  &domain.Upload{Content: []byte("<svg/>"), ContentType: "image/svg+xml", Size: 6},
			slug:    "abc12345",
			purpose: domain.PurposeMain,
			wantErr: domain.ErrUnsupportedMedia,
		},
		{
			name:    "oversized file",
			upload:  &domain.Upload{Content: []byte("x"), ContentType: "image/jpeg", Size: 16 << 20},
			slug:    "abc12345",
			purpose: domain.PurposeMain,
			wantErr: domain.ErrPayloadTooLarge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			store := NewFileStore(root)

			relPath, err := store.Store(ctx, tt.upload, tt.slug, tt.purpose)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Zero(t, dirEntryCount(t, root), "rejected upload must not create files")
				return
			}
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(relPath, tt.wantPrefix), "path %q should start with %q", relPath, tt.wantPrefix)
			assert.True(t, strings.HasSuffix(relPath, tt.wantExt))

			data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(relPath)))
			require.NoError(t, err)
			assert.Equal(t, tt.upload.Content, data)
		})
	}
}

func TestFileStore_Store_uniqueNames(t *testing.T) {
	root := t.TempDir()
	store := NewFileStore(root)
	ctx := context.Background()

	seen := make(map[string]struct{})
	for i := 0; i < 10; i++ {
		p, err := store.Store(ctx, &domain.Upload{Content: []byte("d"), ContentType: "image/jpeg", Size: 1}, "abc12345", domain.PurposeGallery)
		require.NoError(t, err)
		_, dup := seen[p]
		require.False(t, dup, "generated path %q repeated", p)
		seen[p] = struct{}{}
	}
}

func TestFileStore_DeleteAll(t *testing.T) {
	root := t.TempDir()
	store := NewFileStore(root)
	ctx := context.Background()

	_, err := store.Store(ctx, &domain.Upload{Content: []byte("a"), ContentType: "image/jpeg", Size: 1}, "abc12345", domain.PurposeMain)
	require.NoError(t, err)
	_, err = store.Store(ctx, &domain.Upload{Content: []byte("b"), ContentType: "image/png", Size: 1}, "abc12345", domain.PurposeGallery)
	require.NoError(t, err)

	require.NoError(t, store.DeleteAll("abc12345"))
	_, err = os.Stat(filepath.Join(root, "abc12345"))
	assert.True(t, os.IsNotExist(err))

	// Idempotent: deleting again is not an error.
	require.NoError(t, store.DeleteAll("abc12345"))

	// Malformed ids are a no-op, not a traversal.
	require.NoError(t, store.DeleteAll("../outside"))
}
