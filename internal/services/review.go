package services

import (
	"context"
	"fmt"
	"time"

	"weddinginvite/internal/domain"
)

const maxReviewContent = 2000

type reviewService struct {
	repo   domain.ReviewRepository
	hasher domain.SecretHasher
}

func NewReviewService(repo domain.ReviewRepository, hasher domain.SecretHasher) domain.ReviewService {
	return &reviewService{repo: repo, hasher: hasher}
}

func (s *reviewService) Create(ctx context.Context, name, secret, content string, rating *int) (*domain.ReviewEntry, error) {
	if err := validateEntry(name, secret, content, maxReviewContent); err != nil {
		return nil, err
	}
	if err := validateRating(rating); err != nil {
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
	entry := &domain.ReviewEntry{
		Name:       name,
		SecretHash: hash,
		SecretSalt: salt,
		Content:    content,
		Rating:     rating,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}
	return entry, nil
}

func (s *reviewService) List(ctx context.Context, params domain.PaginationParams) ([]*domain.ReviewEntry, int, error) {
	entries, err := s.repo.List(ctx, params)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list reviews: %w", err)
	}
	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count reviews: %w", err)
	}
	return entries, total, nil
}

func (s *reviewService) Update(ctx context.Context, reviewID, secret, content string, rating *int) (*domain.ReviewEntry, error) {
	if err := validateRating(rating); err != nil {
		return nil, err
	}
	entry, err := s.repo.GetByID(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	if err := s.hasher.Compare(entry.SecretHash, entry.SecretSalt, secret); err != nil {
		return nil, domain.ErrAuthenticationFailed
	}
	if err := validateEntry(entry.Name, secret, content, maxReviewContent); err != nil {
		return nil, err
	}
	entry.Content = content
	entry.Rating = rating
	if err := s.repo.Update(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to update review: %w", err)
	}
	return entry, nil
}

func (s *reviewService) Delete(ctx context.Context, reviewID, secret string) error {
	entry, err := s.repo.GetByID(ctx, reviewID)
	if err != nil {
		return err
	}
	if err := s.hasher.Compare(entry.SecretHash, entry.SecretSalt, secret); err != nil {
		return domain.ErrAuthenticationFailed
	}
	return s.repo.Delete(ctx, reviewID)
}

func validateRating(rating *int) error {
	if rating != nil && (*rating < 1 || *rating > 5) {
		return fmt.Errorf("%w: rating must be between 1 and 5", domain.ErrValidation)
	}
	return nil
}
