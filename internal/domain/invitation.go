package domain

import (
	"context"
	"time"
)

// AccountRole tags a bank account entry with its owner within the wedding party.
type AccountRole string

const (
	RoleGroom       AccountRole = "groom"
	RoleBride       AccountRole = "bride"
	RoleGroomFather AccountRole = "groom_father"
	RoleGroomMother AccountRole = "groom_mother"
	RoleBrideFather AccountRole = "bride_father"
	RoleBrideMother AccountRole = "bride_mother"
)

// Valid reports whether r is one of the six fixed account roles.
func (r AccountRole) Valid() bool {
	switch r {
	case RoleGroom, RoleBride, RoleGroomFather, RoleGroomMother, RoleBrideFather, RoleBrideMother:
		return true
	}
	return false
}

// Invitation is the aggregate root for a wedding invitation page.
// The slug is globally unique and immutable after creation. WeddingDate is
// always stored in UTC so the retention cutoff is timezone-independent.
// swagger:model Invitation
type Invitation struct {
	ID           string     `json:"id"`
	Slug         string     `json:"slug"`
	SecretHash   string     `json:"-"`
	SecretSalt   string     `json:"-"`
	GroomName    string     `json:"groom_name"`
	GroomContact string     `json:"groom_contact"`
	GroomFather  string     `json:"groom_father"`
	GroomMother  string     `json:"groom_mother"`
	BrideName    string     `json:"bride_name"`
	BrideContact string     `json:"bride_contact"`
	BrideFather  string     `json:"bride_father"`
	BrideMother  string     `json:"bride_mother"`
	WeddingDate  time.Time  `json:"wedding_date"`
	VenueName    string     `json:"venue_name"`
	VenueDetail  string     `json:"venue_detail"`
	VenueAddress string     `json:"venue_address"`
	LocationLat  *float64   `json:"location_lat"`
	LocationLng  *float64   `json:"location_lng"`
	WelcomeMsg   string     `json:"welcome_msg"`
	TransitInfo  string     `json:"transit_info"`
	MainImages   []string   `json:"main_images"`
	MiddleImage  string     `json:"middle_image"`
	OgImage      *string    `json:"og_image"`
	Template     string     `json:"template"`
	Active       bool       `json:"active"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`

	Gallery    []*GalleryPhoto   `json:"gallery"`
	Accounts   []*AccountEntry   `json:"accounts"`
	Interviews []*InterviewEntry `json:"interviews"`
}

// GalleryPhoto is one ordered photo in an invitation's gallery. The whole set
// is recreated whenever new gallery images are submitted on update.
type GalleryPhoto struct {
	ID           string `json:"id"`
	InvitationID string `json:"invitation_id"`
	ImagePath    string `json:"image_path"`
	Position     int    `json:"position"`
}

// AccountEntry is one bank account shown on the invitation, tagged by role.
type AccountEntry struct {
	ID           string      `json:"id"`
	InvitationID string      `json:"invitation_id"`
	Role         AccountRole `json:"role"`
	Holder       string      `json:"holder"`
	Bank         string      `json:"bank"`
	Number       string      `json:"number"`
}

// InterviewEntry is one question/answer pair; at most two per invitation.
type InterviewEntry struct {
	ID           string `json:"id"`
	InvitationID string `json:"invitation_id"`
	Question     string `json:"question"`
	Answer       string `json:"answer"`
	Position     int    `json:"position"`
}

// InvitationFields are the scalar fields supplied on create and overwritten
// wholesale on update. Image fields are managed separately through uploads.
type InvitationFields struct {
	GroomName    string
	GroomContact string
	GroomFather  string
	GroomMother  string
	BrideName    string
	BrideContact string
	BrideFather  string
	BrideMother  string
	WeddingDate  time.Time
	VenueName    string
	VenueDetail  string
	VenueAddress string
	WelcomeMsg   string
	TransitInfo  string
	Template     string
}

// ChildReplacements lists child collections to replace wholesale on update.
// A nil slice leaves the existing collection untouched; a non-nil empty slice
// clears it. Gallery replacement is driven by uploaded gallery files instead.
type ChildReplacements struct {
	Accounts   []*AccountEntry
	Interviews []*InterviewEntry
}

// OwnerAuth carries one of the two accepted proofs of invitation ownership:
// the plaintext secret, or an edit token previously issued by Authenticate.
type OwnerAuth struct {
	Secret string
	Token  string
}

// InvitationRepository defines storage for the invitation aggregate.
// Create persists the root first and the child collections second; the
// Replace* operations delete and reinsert a child set in one transaction.
type InvitationRepository interface {
	Create(ctx context.Context, inv *Invitation) error
	GetBySlug(ctx context.Context, slug string) (*Invitation, error)
	ExistsBySlug(ctx context.Context, slug string) (bool, error)
	UpdateFields(ctx context.Context, inv *Invitation) error
	ReplaceGallery(ctx context.Context, invitationID string, photos []*GalleryPhoto) error
	ReplaceAccounts(ctx context.Context, invitationID string, accounts []*AccountEntry) error
	ReplaceInterviews(ctx context.Context, invitationID string, interviews []*InterviewEntry) error
	Delete(ctx context.Context, id string) error
	ListExpired(ctx context.Context, before time.Time) ([]*Invitation, error)
	SearchByParty(ctx context.Context, name, contact string) ([]*Invitation, error)
}

// InvitationService defines the business logic for the invitation lifecycle.
type InvitationService interface {
	Create(ctx context.Context, fields InvitationFields, secret string, uploads *InvitationUploads, children ChildReplacements) (*Invitation, error)
	Get(ctx context.Context, slug string) (*Invitation, error)
	Authenticate(ctx context.Context, slug, secret string) (token string, err error)
	Update(ctx context.Context, slug string, auth OwnerAuth, fields InvitationFields, uploads *InvitationUploads, repl ChildReplacements) (*Invitation, error)
	Delete(ctx context.Context, slug string, auth OwnerAuth) error
	Lookup(ctx context.Context, name, contact, secret string) ([]*Invitation, error)
}
