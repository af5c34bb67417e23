package domain

import "context"

// MediaPurpose selects the per-invitation subdirectory a file is stored under.
type MediaPurpose string

const (
	PurposeMain    MediaPurpose = "main"
	PurposeMiddle  MediaPurpose = "middle"
	PurposeGallery MediaPurpose = "gallery"
	PurposeOG      MediaPurpose = "og"
)

// Valid reports whether p is one of the fixed media purposes.
func (p MediaPurpose) Valid() bool {
	switch p {
	case PurposeMain, PurposeMiddle, PurposeGallery, PurposeOG:
		return true
	}
	return false
}

// Upload is a single file received from a client, not yet written to storage.
type Upload struct {
	Content     []byte
	ContentType string
	Size        int64
}

// InvitationUploads groups the files submitted with a create or update
// request. On update, a nil/empty slice or pointer means "unchanged".
type InvitationUploads struct {
	MainImages    []*Upload
	MiddleImage   *Upload
	GalleryImages []*Upload
	OgImage       *Upload
}

// MediaStore writes uploaded files under a per-invitation, per-purpose
// directory and deletes an invitation's entire subtree on removal.
// Store validates content type and size before any write; DeleteAll is
// idempotent (a missing subtree is not an error).
type MediaStore interface {
	Store(ctx context.Context, upload *Upload, slug string, purpose MediaPurpose) (relPath string, err error)
	DeleteAll(slug string) error
}
