package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"weddinginvite/internal/domain"
)

const (
	entrySecretMin = 4
	entrySecretMax = 20

	maxGuestbookMessage = 1000
)

type guestbookService struct {
	repo        domain.GuestbookRepository
	invitations domain.InvitationRepository
	hasher      domain.SecretHasher
}

func NewGuestbookService(repo domain.GuestbookRepository, invitations domain.InvitationRepository, hasher domain.SecretHasher) domain.GuestbookService {
	return &guestbookService{repo: repo, invitations: invitations, hasher: hasher}
}

func (s *guestbookService) Create(ctx context.Context, slug, name, secret, message string) (*domain.GuestbookEntry, error) {
	if err := validateEntry(name, secret, message, maxGuestbookMessage); err != nil {
		return nil, err
	}
	inv, err := s.invitations.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	salt, err := s.hasher.GenerateSalt()
	if err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}
	hash, err := s.hasher.Hash(salt, secret)
	if err != nil {
		return nil, fmt.Errorf("failed to hash secret: %w", err)
	}
	entry := &domain.GuestbookEntry{
		InvitationID: inv.ID,
		Name:         name,
		SecretHash:   hash,
		SecretSalt:   salt,
		Message:      message,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to create guestbook entry: %w", err)
	}
	return entry, nil
}

func (s *guestbookService) List(ctx context.Context, slug string) ([]*domain.GuestbookEntry, error) {
	inv, err := s.invitations.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	return s.repo.ListByInvitationID(ctx, inv.ID)
}

func (s *guestbookService) Update(ctx context.Context, entryID, secret, name, message string) (*domain.GuestbookEntry, error) {
	if err := validateEntry(name, secret, message, maxGuestbookMessage); err != nil {
		return nil, err
	}
	entry, err := s.repo.GetByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if err := s.hasher.Compare(entry.SecretHash, entry.SecretSalt, secret); err != nil {
		return nil, domain.ErrAuthenticationFailed
	}
	entry.Name = name
	entry.Message = message
	if err := s.repo.Update(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to update guestbook entry: %w", err)
	}
	return entry, nil
}

func (s *guestbookService) Delete(ctx context.Context, entryID, secret string) error {
	entry, err := s.repo.GetByID(ctx, entryID)
	if err != nil {
		return err
	}
	if err := s.hasher.Compare(entry.SecretHash, entry.SecretSalt, secret); err != nil {
		return domain.ErrAuthenticationFailed
	}
	return s.repo.Delete(ctx, entryID)
}

func validateEntry(name, secret, body string, maxBody int) error {
	var problems []string
	if strings.TrimSpace(name) == "" {
		problems = append(problems, "name is required")
	}
	if len(secret) < entrySecretMin || len(secret) > entrySecretMax {
		problems = append(problems, fmt.Sprintf("secret must be %d to %d characters", entrySecretMin, entrySecretMax))
	}
	if strings.TrimSpace(body) == "" {
		problems = append(problems, "content is required")
	}
	if len(body) > maxBody {
		problems = append(problems, fmt.Sprintf("content exceeds %d characters", maxBody))
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", domain.ErrValidation, strings.Join(problems, "; "))
	}
	return nil
}
