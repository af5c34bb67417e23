package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"weddinginvite/internal/domain"
)

const (
	editTokenTTL   = 24 * time.Hour
	createAttempts = 3

	maxMainImages = 3
	maxAccounts   = 6
	maxInterviews = 2

	invitationSecretMin = 4
	invitationSecretMax = 6
)

type invitationService struct {
	repo     domain.InvitationRepository
	media    domain.MediaStore
	slugs    *SlugAllocator
	hasher   domain.SecretHasher
	issuer   domain.TokenIssuer
	verifier domain.TokenVerifier
	geocoder domain.Geocoder
	logger   *slog.Logger
}

func NewInvitationService(
	repo domain.InvitationRepository,
	media domain.MediaStore,
	slugs *SlugAllocator,
	hasher domain.SecretHasher,
	issuer domain.TokenIssuer,
	verifier domain.TokenVerifier,
	geocoder domain.Geocoder,
	logger *slog.Logger,
) domain.InvitationService {
	return &invitationService{
		repo:     repo,
		media:    media,
		slugs:    slugs,
		hasher:   hasher,
		issuer:   issuer,
		verifier: verifier,
		geocoder: geocoder,
		logger:   logger,
	}
}

func (s *invitationService) Create(ctx context.Context, fields domain.InvitationFields, secret string, uploads *domain.InvitationUploads, children domain.ChildReplacements) (*domain.Invitation, error) {
	if err := validateFields(fields); err != nil {
		return nil, err
	}
	if err := validateReplacements(children); err != nil {
		return nil, err
	}
	if len(secret) < invitationSecretMin || len(secret) > invitationSecretMax {
		return nil, fmt.Errorf("%w: secret must be %d to %d characters", domain.ErrValidation, invitationSecretMin, invitationSecretMax)
	}
	if uploads == nil || len(uploads.MainImages) == 0 {
		return nil, fmt.Errorf("%w: at least one main image is required", domain.ErrValidation)
	}
	if len(uploads.MainImages) > maxMainImages {
		return nil, fmt.Errorf("%w: at most %d main images", domain.ErrValidation, maxMainImages)
	}
	if len(uploads.GalleryImages) == 0 {
		return nil, fmt.Errorf("%w: at least one gallery image is required", domain.ErrValidation)
	}

	salt, err := s.hasher.GenerateSalt()
	if err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}
	hash, err := s.hasher.Hash(salt, secret)
	if err != nil {
		return nil, fmt.Errorf("failed to hash secret: %w", err)
	}

	now := time.Now().UTC()
	inv := &domain.Invitation{
		SecretHash: hash,
		SecretSalt: salt,
		Active:     true,
		CreatedAt:  now,
		UpdatedAt:  now,
		Accounts:   children.Accounts,
		Interviews: children.Interviews,
	}
	if inv.Accounts == nil {
		inv.Accounts = []*domain.AccountEntry{}
	}
	if inv.Interviews == nil {
		inv.Interviews = []*domain.InterviewEntry{}
	}
	applyFields(inv, fields)
	s.resolveCoordinates(ctx, inv)

	// A slug that passed the availability check can still lose the insert
	// race; reallocate and retry a bounded number of times.
	for attempt := 0; attempt < createAttempts; attempt++ {
		slug, err := s.slugs.Allocate(ctx)
		if err != nil {
			return nil, err
		}
		stored, err := s.storeUploads(ctx, slug, uploads)
		if err != nil {
			return nil, err
		}
		inv.Slug = slug
		inv.MainImages = stored.main
		inv.MiddleImage = stored.middle
		inv.OgImage = stored.og
		inv.Gallery = galleryPhotos(stored.gallery)

		err = s.repo.Create(ctx, inv)
		if err == nil {
			return inv, nil
		}
		s.cleanupMedia(slug)
		if !errors.Is(err, domain.ErrDuplicateSlug) {
			return nil, fmt.Errorf("failed to create invitation: %w", err)
		}
		s.logger.Warn("slug insert race, reallocating", "slug", slug, "attempt", attempt+1)
	}
	return nil, domain.ErrSlugExhausted
}

func (s *invitationService) Get(ctx context.Context, slug string) (*domain.Invitation, error) {
	return s.repo.GetBySlug(ctx, slug)
}

func (s *invitationService) Authenticate(ctx context.Context, slug, secret string) (string, error) {
	inv, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return "", err
	}
	if err := s.hasher.Compare(inv.SecretHash, inv.SecretSalt, secret); err != nil {
		return "", domain.ErrAuthenticationFailed
	}
	token, err := s.issuer.Issue(slug, domain.TokenScopeEdit, editTokenTTL)
	if err != nil {
		return "", fmt.Errorf("failed to issue edit token: %w", err)
	}
	return token, nil
}

func (s *invitationService) Update(ctx context.Context, slug string, auth domain.OwnerAuth, fields domain.InvitationFields, uploads *domain.InvitationUploads, repl domain.ChildReplacements) (*domain.Invitation, error) {
	inv, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if err := s.verifyOwner(inv, auth); err != nil {
		return nil, err
	}
	if err := validateFields(fields); err != nil {
		return nil, err
	}
	if err := validateReplacements(repl); err != nil {
		return nil, err
	}

	applyFields(inv, fields)
	inv.UpdatedAt = time.Now().UTC()
	s.resolveCoordinates(ctx, inv)

	// Files superseded by new uploads stay on disk until the retention
	// sweep removes the whole slug directory.
	var newGallery []string
	if uploads != nil {
		if len(uploads.MainImages) > maxMainImages {
			return nil, fmt.Errorf("%w: at most %d main images", domain.ErrValidation, maxMainImages)
		}
		stored, err := s.storeUploads(ctx, slug, uploads)
		if err != nil {
			return nil, err
		}
		if len(stored.main) > 0 {
			inv.MainImages = stored.main
		}
		if stored.middle != "" {
			inv.MiddleImage = stored.middle
		}
		if stored.og != nil {
			inv.OgImage = stored.og
		}
		newGallery = stored.gallery
	}

	if err := s.repo.UpdateFields(ctx, inv); err != nil {
		return nil, fmt.Errorf("failed to update invitation: %w", err)
	}
	if len(newGallery) > 0 {
		if err := s.repo.ReplaceGallery(ctx, inv.ID, galleryPhotos(newGallery)); err != nil {
			return nil, fmt.Errorf("failed to replace gallery: %w", err)
		}
	}
	if repl.Accounts != nil {
		if err := s.repo.ReplaceAccounts(ctx, inv.ID, repl.Accounts); err != nil {
			return nil, fmt.Errorf("failed to replace accounts: %w", err)
		}
	}
	if repl.Interviews != nil {
		if err := s.repo.ReplaceInterviews(ctx, inv.ID, repl.Interviews); err != nil {
			return nil, fmt.Errorf("failed to replace interviews: %w", err)
		}
	}
	return s.repo.GetBySlug(ctx, slug)
}

func (s *invitationService) Delete(ctx context.Context, slug string, auth domain.OwnerAuth) error {
	inv, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return err
	}
	if err := s.verifyOwner(inv, auth); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, inv.ID); err != nil {
		return fmt.Errorf("failed to delete invitation: %w", err)
	}
	s.cleanupMedia(slug)
	return nil
}

func (s *invitationService) Lookup(ctx context.Context, name, contact, secret string) ([]*domain.Invitation, error) {
	if name == "" || contact == "" || secret == "" {
		return nil, fmt.Errorf("%w: name, contact and secret are required", domain.ErrValidation)
	}
	candidates, err := s.repo.SearchByParty(ctx, name, contact)
	if err != nil {
		return nil, fmt.Errorf("failed to search invitations: %w", err)
	}
	matched := make([]*domain.Invitation, 0)
	for _, inv := range candidates {
		if s.hasher.Compare(inv.SecretHash, inv.SecretSalt, secret) == nil {
			matched = append(matched, inv)
		}
	}
	return matched, nil
}

// verifyOwner accepts either the plaintext secret or a slug-scoped edit token.
func (s *invitationService) verifyOwner(inv *domain.Invitation, auth domain.OwnerAuth) error {
	if auth.Token != "" {
		subject, scope, err := s.verifier.Verify(auth.Token)
		if err != nil || scope != domain.TokenScopeEdit || subject != inv.Slug {
			return domain.ErrAuthenticationFailed
		}
		return nil
	}
	if auth.Secret == "" {
		return domain.ErrAuthenticationFailed
	}
	if err := s.hasher.Compare(inv.SecretHash, inv.SecretSalt, auth.Secret); err != nil {
		return domain.ErrAuthenticationFailed
	}
	return nil
}

// resolveCoordinates geocodes the venue address. Lookup failures never fail
// the surrounding operation; the invitation simply carries no coordinates.
func (s *invitationService) resolveCoordinates(ctx context.Context, inv *domain.Invitation) {
	inv.LocationLat = nil
	inv.LocationLng = nil
	if inv.VenueAddress == "" {
		return
	}
	coords, err := s.geocoder.Geocode(ctx, inv.VenueAddress)
	if err != nil {
		s.logger.Warn("geocoding failed", "address", inv.VenueAddress, "error", err)
		return
	}
	if coords != nil {
		inv.LocationLat = &coords.Lat
		inv.LocationLng = &coords.Lng
	}
}

type storedUploads struct {
	main    []string
	middle  string
	gallery []string
	og      *string
}

// storeUploads writes all submitted files concurrently, preserving the
// submitted order of main and gallery images.
func (s *invitationService) storeUploads(ctx context.Context, slug string, uploads *domain.InvitationUploads) (*storedUploads, error) {
	out := &storedUploads{
		main:    make([]string, len(uploads.MainImages)),
		gallery: make([]string, len(uploads.GalleryImages)),
	}
	g, ctx := errgroup.WithContext(ctx)
	for i, u := range uploads.MainImages {
		g.Go(func() error {
			path, err := s.media.Store(ctx, u, slug, domain.PurposeMain)
			out.main[i] = path
			return err
		})
	}
	for i, u := range uploads.GalleryImages {
		g.Go(func() error {
			path, err := s.media.Store(ctx, u, slug, domain.PurposeGallery)
			out.gallery[i] = path
			return err
		})
	}
	if uploads.MiddleImage != nil {
		g.Go(func() error {
			path, err := s.media.Store(ctx, uploads.MiddleImage, slug, domain.PurposeMiddle)
			out.middle = path
			return err
		})
	}
	if uploads.OgImage != nil {
		g.Go(func() error {
			path, err := s.media.Store(ctx, uploads.OgImage, slug, domain.PurposeOG)
			if err == nil {
				out.og = &path
			}
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to store uploads: %w", err)
	}
	return out, nil
}

func (s *invitationService) cleanupMedia(slug string) {
	if err := s.media.DeleteAll(slug); err != nil {
		s.logger.Warn("failed to delete media directory", "slug", slug, "error", err)
	}
}

func galleryPhotos(paths []string) []*domain.GalleryPhoto {
	photos := make([]*domain.GalleryPhoto, len(paths))
	for i, p := range paths {
		photos[i] = &domain.GalleryPhoto{ImagePath: p, Position: i}
	}
	return photos
}

func applyFields(inv *domain.Invitation, f domain.InvitationFields) {
	inv.GroomName = f.GroomName
	inv.GroomContact = f.GroomContact
	inv.GroomFather = f.GroomFather
	inv.GroomMother = f.GroomMother
	inv.BrideName = f.BrideName
	inv.BrideContact = f.BrideContact
	inv.BrideFather = f.BrideFather
	inv.BrideMother = f.BrideMother
	inv.WeddingDate = f.WeddingDate.UTC()
	inv.VenueName = f.VenueName
	inv.VenueDetail = f.VenueDetail
	inv.VenueAddress = f.VenueAddress
	inv.WelcomeMsg = f.WelcomeMsg
	inv.TransitInfo = f.TransitInfo
	inv.Template = f.Template
}

func validateFields(f domain.InvitationFields) error {
	var problems []string
	if strings.TrimSpace(f.GroomName) == "" {
		problems = append(problems, "groom name is required")
	}
	if strings.TrimSpace(f.BrideName) == "" {
		problems = append(problems, "bride name is required")
	}
	if strings.TrimSpace(f.GroomContact) == "" {
		problems = append(problems, "groom contact is required")
	}
	if strings.TrimSpace(f.BrideContact) == "" {
		problems = append(problems, "bride contact is required")
	}
	if f.WeddingDate.IsZero() {
		problems = append(problems, "wedding date is required")
	}
	if strings.TrimSpace(f.VenueName) == "" {
		problems = append(problems, "venue name is required")
	}
	if strings.TrimSpace(f.Template) == "" {
		problems = append(problems, "template is required")
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", domain.ErrValidation, strings.Join(problems, "; "))
	}
	return nil
}

func validateReplacements(repl domain.ChildReplacements) error {
	if len(repl.Accounts) > maxAccounts {
		return fmt.Errorf("%w: at most %d account entries", domain.ErrValidation, maxAccounts)
	}
	for _, a := range repl.Accounts {
		if !a.Role.Valid() {
			return fmt.Errorf("%w: unknown account role %q", domain.ErrValidation, a.Role)
		}
		if a.Holder == "" || a.Number == "" {
			return fmt.Errorf("%w: account holder and number are required", domain.ErrValidation)
		}
	}
	if len(repl.Interviews) > maxInterviews {
		return fmt.Errorf("%w: at most %d interview entries", domain.ErrValidation, maxInterviews)
	}
	for i, iv := range repl.Interviews {
		if iv.Question == "" || iv.Answer == "" {
			return fmt.Errorf("%w: interview question and answer are required", domain.ErrValidation)
		}
		iv.Position = i
	}
	return nil
}
