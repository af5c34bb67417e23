package services

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"

	"weddinginvite/internal/domain"
)

const (
	slugLength   = 8
	slugAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	slugAttempts = 5
)

// SlugAllocator draws random slugs and checks them against storage.
// Allocation is advisory; the unique constraint on the slug column is the
// final arbiter, and the create flow retries on an insert race.
type SlugAllocator struct {
	repo domain.InvitationRepository
}

func NewSlugAllocator(repo domain.InvitationRepository) *SlugAllocator {
	return &SlugAllocator{repo: repo}
}

// Allocate returns a slug not currently in use, giving up with
// ErrSlugExhausted after a fixed number of collisions.
func (a *SlugAllocator) Allocate(ctx context.Context) (string, error) {
	for i := 0; i < slugAttempts; i++ {
		slug, err := randomSlug()
		if err != nil {
			return "", fmt.Errorf("failed to generate slug: %w", err)
		}
		exists, err := a.repo.ExistsBySlug(ctx, slug)
		if err != nil {
			return "", fmt.Errorf("failed to check slug availability: %w", err)
		}
		if !exists {
			return slug, nil
		}
	}
	return "", domain.ErrSlugExhausted
}

func randomSlug() (string, error) {
	alphabetLen := big.NewInt(int64(len(slugAlphabet)))
	b := make([]byte, slugLength)
	for i := range b {
		n, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			return "", err
		}
		b[i] = slugAlphabet[n.Int64()]
	}
	return string(b), nil
}
