package domain

import (
	"context"
	"time"
)

// ReviewEntry is a site-wide review of the service with an optional rating.
// Like guestbook entries, reviews authenticate with a per-entry secret.
// swagger:model ReviewEntry
type ReviewEntry struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	SecretHash string    `json:"-"`
	SecretSalt string    `json:"-"`
	Content    string    `json:"content"`
	Rating     *int      `json:"rating"`
	CreatedAt  time.Time `json:"created_at"`
}

// ReviewRepository defines storage for reviews. List is offset-paginated,
// newest first; Count returns the total for pagination metadata.
type ReviewRepository interface {
	Create(ctx context.Context, e *ReviewEntry) error
	GetByID(ctx context.Context, id string) (*ReviewEntry, error)
	List(ctx context.Context, params PaginationParams) ([]*ReviewEntry, error)
	Count(ctx context.Context) (int, error)
	Update(ctx context.Context, e *ReviewEntry) error
	Delete(ctx context.Context, id string) error
}

// ReviewService defines review business logic.
type ReviewService interface {
	Create(ctx context.Context, name, secret, content string, rating *int) (*ReviewEntry, error)
	List(ctx context.Context, params PaginationParams) ([]*ReviewEntry, int, error)
	Update(ctx context.Context, reviewID, secret, content string, rating *int) (*ReviewEntry, error)
	Delete(ctx context.Context, reviewID, secret string) error
}
