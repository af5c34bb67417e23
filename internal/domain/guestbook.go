package domain

import (
	"context"
	"time"
)

// GuestbookEntry is a message left on an invitation page. Each entry carries
// its own hashed secret; edits and deletes authenticate per entry, not with
// the invitation's secret.
// swagger:model GuestbookEntry
type GuestbookEntry struct {
	ID           string    `json:"id"`
	InvitationID string    `json:"invitation_id"`
	Name         string    `json:"name"`
	SecretHash   string    `json:"-"`
	SecretSalt   string    `json:"-"`
	Message      string    `json:"message"`
	CreatedAt    time.Time `json:"created_at"`
}

// GuestbookRepository defines storage for guestbook entries.
type GuestbookRepository interface {
	Create(ctx context.Context, e *GuestbookEntry) error
	GetByID(ctx context.Context, id string) (*GuestbookEntry, error)
	ListByInvitationID(ctx context.Context, invitationID string) ([]*GuestbookEntry, error)
	Update(ctx context.Context, e *GuestbookEntry) error
	Delete(ctx context.Context, id string) error
}

// GuestbookService defines guestbook business logic. Entries are created
// against an invitation slug but managed by their own id and secret.
type GuestbookService interface {
	Create(ctx context.Context, slug, name, secret, message string) (*GuestbookEntry, error)
	List(ctx context.Context, slug string) ([]*GuestbookEntry, error)
	Update(ctx context.Context, entryID, secret, name, message string) (*GuestbookEntry, error)
	Delete(ctx context.Context, entryID, secret string) error
}
