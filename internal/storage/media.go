package storage

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"weddinginvite/internal/domain"
)

// MaxFileSize is the hard ceiling for a single uploaded file.
const MaxFileSize = 15 << 20 // 15 MiB

// quarantineDir receives writes whose invitation id does not match the slug
// shape. Redirecting instead of rejecting means no caller-supplied id can
// ever reach the filesystem path.
const quarantineDir = "temp"

// slugPattern is the only identifier shape allowed into a storage path.
var slugPattern = regexp.MustCompile(`^[a-zA-Z0-9]{6,12}$`)

// extByMIME maps allowed content types to the stored file extension. The
// extension always comes from the validated MIME type, never from the
// client-supplied filename.
var extByMIME = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

type fileStore struct {
	root string
}

// NewFileStore returns a MediaStore rooted at the given directory. Files are
// laid out as <root>/<slug>/<purpose>/<generatedName>.
func NewFileStore(root string) domain.MediaStore {
	return &fileStore{root: root}
}

func (s *fileStore) Store(ctx context.Context, upload *domain.Upload, slug string, purpose domain.MediaPurpose) (string, error) {
	ext, ok := extByMIME[upload.ContentType]
	if !ok {
		return "", fmt.Errorf("%w: %s", domain.ErrUnsupportedMedia, upload.ContentType)
	}
	if upload.Size > MaxFileSize || int64(len(upload.Content)) > MaxFileSize {
		return "", fmt.Errorf("%w: %d bytes", domain.ErrPayloadTooLarge, upload.Size)
	}
	if !purpose.Valid() {
		return "", fmt.Errorf("invalid media purpose %q", purpose)
	}
	if !slugPattern.MatchString(slug) {
		slug = quarantineDir
	}

	dir := filepath.Join(s.root, slug, string(purpose))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create media directory: %w", err)
	}
	name := generateFilename(ext)
	if err := os.WriteFile(filepath.Join(dir, name), upload.Content, 0o644); err != nil {
		return "", fmt.Errorf("failed to write media file: %w", err)
	}
	return filepath.ToSlash(filepath.Join(slug, string(purpose), name)), nil
}

func (s *fileStore) DeleteAll(slug string) error {
	// Never walk outside the root: malformed ids could only ever have been
	// written to the quarantine directory, which the sweep leaves alone.
	if !slugPattern.MatchString(slug) {
		return nil
	}
	if err := os.RemoveAll(filepath.Join(s.root, slug)); err != nil {
		return fmt.Errorf("failed to delete media directory: %w", err)
	}
	return nil
}

// generateFilename builds a collision-resistant name from the current
// timestamp and a random suffix.
func generateFilename(ext string) string {
	suffix := make([]byte, 4)
	_, _ = rand.Read(suffix)
	return fmt.Sprintf("%d_%s%s", time.Now().UnixNano(), hex.EncodeToString(suffix), ext)
}
