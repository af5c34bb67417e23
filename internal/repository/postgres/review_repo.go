package postgres

import (
	"context"
	"database/sql"
	"errors"

	"weddinginvite/internal/domain"
)

type reviewRepository struct {
	DB *sql.DB
}

func NewReviewRepository(db *sql.DB) domain.ReviewRepository {
	return &reviewRepository{DB: db}
}

func (r *reviewRepository) Create(ctx context.Context, e *domain.ReviewEntry) error {
	query := `
		INSERT INTO reviews (name, secret_hash, secret_salt, content, rating, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query, e.Name, e.SecretHash, e.SecretSalt, e.Content, e.Rating, e.CreatedAt).Scan(&e.ID)
}

func (r *reviewRepository) GetByID(ctx context.Context, id string) (*domain.ReviewEntry, error) {
	query := `
		SELECT id, name, secret_hash, secret_salt, content, rating, created_at
		FROM reviews
		WHERE id = $1
	`
	e := &domain.ReviewEntry{}
	var ratingNull sql.NullInt64
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&e.ID, &e.Name, &e.SecretHash, &e.SecretSalt, &e.Content, &ratingNull, &e.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if ratingNull.Valid {
		rating := int(ratingNull.Int64)
		e.Rating = &rating
	}
	return e, nil
}

func (r *reviewRepository) List(ctx context.Context, params domain.PaginationParams) ([]*domain.ReviewEntry, error) {
	query := `
		SELECT id, name, secret_hash, secret_salt, content, rating, created_at
		FROM reviews
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.DB.QueryContext(ctx, query, params.PageSize, params.Offset())
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	entries := make([]*domain.ReviewEntry, 0)
	for rows.Next() {
		e := &domain.ReviewEntry{}
		var ratingNull sql.NullInt64
		if err := rows.Scan(&e.ID, &e.Name, &e.SecretHash, &e.SecretSalt, &e.Content, &ratingNull, &e.CreatedAt); err != nil {
			return nil, err
		}
		if ratingNull.Valid {
			rating := int(ratingNull.Int64)
			e.Rating = &rating
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *reviewRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM reviews`).Scan(&count)
	return count, err
}

func (r *reviewRepository) Update(ctx context.Context, e *domain.ReviewEntry) error {
	query := `
		UPDATE reviews
		SET content = $1, rating = $2
		WHERE id = $3
	`
	result, err := r.DB.ExecContext(ctx, query, e.Content, e.Rating, e.ID)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *reviewRepository) Delete(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
