package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"weddinginvite/internal/domain"
)

// In-memory fakes for the service ports.

type fakeInvitationRepo struct {
	mu          sync.Mutex
	bySlug      map[string]*domain.Invitation
	nextID      int
	createQueue []error // popped per Create call; nil means normal behavior
}

func newFakeInvitationRepo() *fakeInvitationRepo {
	return &fakeInvitationRepo{bySlug: map[string]*domain.Invitation{}}
}

func (f *fakeInvitationRepo) Create(_ context.Context, inv *domain.Invitation) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.createQueue) > 0 {
		err := f.createQueue[0]
		f.createQueue = f.createQueue[1:]
		if err != nil {
			return err
		}
	}
	if _, ok := f.bySlug[inv.Slug]; ok {
		return domain.ErrDuplicateSlug
	}
	f.nextID++
	inv.ID = fmt.Sprintf("inv-%d", f.nextID)
	for i, p := range inv.Gallery {
		p.ID = fmt.Sprintf("g-%d-%d", f.nextID, i)
		p.InvitationID = inv.ID
	}
	for i, a := range inv.Accounts {
		a.ID = fmt.Sprintf("a-%d-%d", f.nextID, i)
		a.InvitationID = inv.ID
	}
	for i, iv := range inv.Interviews {
		iv.ID = fmt.Sprintf("iv-%d-%d", f.nextID, i)
		iv.InvitationID = inv.ID
	}
	f.bySlug[inv.Slug] = inv
	return nil
}

func (f *fakeInvitationRepo) GetBySlug(_ context.Context, slug string) (*domain.Invitation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	inv, ok := f.bySlug[slug]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return inv, nil
}

func (f *fakeInvitationRepo) ExistsBySlug(_ context.Context, slug string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.bySlug[slug]
	return ok, nil
}

func (f *fakeInvitationRepo) UpdateFields(_ context.Context, inv *domain.Invitation) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, stored := range f.bySlug {
		if stored.ID == inv.ID {
			children := struct {
				g []*domain.GalleryPhoto
				a []*domain.AccountEntry
				i []*domain.InterviewEntry
			}{stored.Gallery, stored.Accounts, stored.Interviews}
			*stored = *inv
			stored.Gallery, stored.Accounts, stored.Interviews = children.g, children.a, children.i
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeInvitationRepo) ReplaceGallery(_ context.Context, invitationID string, photos []*domain.GalleryPhoto) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, stored := range f.bySlug {
		if stored.ID == invitationID {
			stored.Gallery = photos
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeInvitationRepo) ReplaceAccounts(_ context.Context, invitationID string, accounts []*domain.AccountEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, stored := range f.bySlug {
		if stored.ID == invitationID {
			stored.Accounts = accounts
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeInvitationRepo) ReplaceInterviews(_ context.Context, invitationID string, interviews []*domain.InterviewEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, stored := range f.bySlug {
		if stored.ID == invitationID {
			stored.Interviews = interviews
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeInvitationRepo) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for slug, stored := range f.bySlug {
		if stored.ID == id {
			delete(f.bySlug, slug)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeInvitationRepo) ListExpired(_ context.Context, before time.Time) ([]*domain.Invitation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	expired := make([]*domain.Invitation, 0)
	for _, inv := range f.bySlug {
		if inv.WeddingDate.Before(before) {
			expired = append(expired, inv)
		}
	}
	return expired, nil
}

func (f *fakeInvitationRepo) SearchByParty(_ context.Context, name, contact string) ([]*domain.Invitation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	found := make([]*domain.Invitation, 0)
	for _, inv := range f.bySlug {
		if (inv.GroomName == name && inv.GroomContact == contact) ||
			(inv.BrideName == name && inv.BrideContact == contact) {
			found = append(found, inv)
		}
	}
	return found, nil
}

type fakeMediaStore struct {
	mu        sync.Mutex
	seq       int
	stored    map[string][]string // slug -> relative paths
	deleted   []string
	storeErr  error
	deleteErr error
}

func newFakeMediaStore() *fakeMediaStore {
	return &fakeMediaStore{stored: map[string][]string{}}
}

func (f *fakeMediaStore) Store(_ context.Context, _ *domain.Upload, slug string, purpose domain.MediaPurpose) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.storeErr != nil {
		return "", f.storeErr
	}
	f.seq++
	path := fmt.Sprintf("%s/%s/%d.jpg", slug, purpose, f.seq)
	f.stored[slug] = append(f.stored[slug], path)
	return path, nil
}

func (f *fakeMediaStore) DeleteAll(slug string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, slug)
	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.stored, slug)
	return nil
}

type fakeHasher struct {
	saltSeq int
}

func (f *fakeHasher) GenerateSalt() (string, error) {
	f.saltSeq++
	return fmt.Sprintf("salt-%d", f.saltSeq), nil
}

func (f *fakeHasher) Hash(salt, secret string) (string, error) {
	return "hashed:" + salt + ":" + secret, nil
}

func (f *fakeHasher) Compare(hash, salt, secret string) error {
	if hash != "hashed:"+salt+":"+secret {
		return errors.New("mismatch")
	}
	return nil
}

type fakeTokens struct{}

func (fakeTokens) Issue(subject, scope string, _ time.Duration) (string, error) {
	return "token:" + subject + ":" + scope, nil
}

func (fakeTokens) Verify(token string) (string, string, error) {
	parts := strings.Split(token, ":")
	if len(parts) != 3 || parts[0] != "token" {
		return "", "", errors.New("invalid token")
	}
	return parts[1], parts[2], nil
}

type fakeGeocoder struct {
	coords    *domain.Coordinates
	err       error
	addresses []string
}

func (f *fakeGeocoder) Geocode(_ context.Context, address string) (*domain.Coordinates, error) {
	f.addresses = append(f.addresses, address)
	if f.err != nil {
		return nil, f.err
	}
	return f.coords, nil
}

type sentMail struct {
	To      string
	Subject string
	HTML    string
	Text    string
}

type fakeMailer struct {
	sent []sentMail
	err  error
}

func (f *fakeMailer) Send(to, subject, html, text string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentMail{To: to, Subject: subject, HTML: html, Text: text})
	return nil
}

type fakeGuestbookRepo struct {
	byID   map[string]*domain.GuestbookEntry
	nextID int
}

func newFakeGuestbookRepo() *fakeGuestbookRepo {
	return &fakeGuestbookRepo{byID: map[string]*domain.GuestbookEntry{}}
}

func (f *fakeGuestbookRepo) Create(_ context.Context, e *domain.GuestbookEntry) error {
	f.nextID++
	e.ID = fmt.Sprintf("gb-%d", f.nextID)
	f.byID[e.ID] = e
	return nil
}

func (f *fakeGuestbookRepo) GetByID(_ context.Context, id string) (*domain.GuestbookEntry, error) {
	e, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return e, nil
}

func (f *fakeGuestbookRepo) ListByInvitationID(_ context.Context, invitationID string) ([]*domain.GuestbookEntry, error) {
	entries := make([]*domain.GuestbookEntry, 0)
	for _, e := range f.byID {
		if e.InvitationID == invitationID {
			entries = append(entries, e)
		}
	}
	return entries, nil
}

func (f *fakeGuestbookRepo) Update(_ context.Context, e *domain.GuestbookEntry) error {
	if _, ok := f.byID[e.ID]; !ok {
		return domain.ErrNotFound
	}
	f.byID[e.ID] = e
	return nil
}

func (f *fakeGuestbookRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

type fakeReviewRepo struct {
	entries []*domain.ReviewEntry
	nextID  int
}

func (f *fakeReviewRepo) Create(_ context.Context, e *domain.ReviewEntry) error {
	f.nextID++
	e.ID = fmt.Sprintf("rv-%d", f.nextID)
	f.entries = append(f.entries, e)
	return nil
}

func (f *fakeReviewRepo) GetByID(_ context.Context, id string) (*domain.ReviewEntry, error) {
	for _, e := range f.entries {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeReviewRepo) List(_ context.Context, params domain.PaginationParams) ([]*domain.ReviewEntry, error) {
	start := params.Offset()
	if start >= len(f.entries) {
		return []*domain.ReviewEntry{}, nil
	}
	end := start + params.PageSize
	if end > len(f.entries) {
		end = len(f.entries)
	}
	return f.entries[start:end], nil
}

func (f *fakeReviewRepo) Count(_ context.Context) (int, error) {
	return len(f.entries), nil
}

func (f *fakeReviewRepo) Update(_ context.Context, e *domain.ReviewEntry) error {
	for i, stored := range f.entries {
		if stored.ID == e.ID {
			f.entries[i] = e
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeReviewRepo) Delete(_ context.Context, id string) error {
	for i, stored := range f.entries {
		if stored.ID == id {
			f.entries = append(f.entries[:i], f.entries[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}
