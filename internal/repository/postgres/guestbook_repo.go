package postgres

import (
	"context"
	"database/sql"
	"errors"

	"weddinginvite/internal/domain"
)

type guestbookRepository struct {
	DB *sql.DB
}

func NewGuestbookRepository(db *sql.DB) domain.GuestbookRepository {
	return &guestbookRepository{DB: db}
}

func (r *guestbookRepository) Create(ctx context.Context, e *domain.GuestbookEntry) error {
	query := `
		INSERT INTO guestbook_entries (invitation_id, name, secret_hash, secret_salt, message, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query, e.InvitationID, e.Name, e.SecretHash, e.SecretSalt, e.Message, e.CreatedAt).Scan(&e.ID)
}

func (r *guestbookRepository) GetByID(ctx context.Context, id string) (*domain.GuestbookEntry, error) {
	query := `
		SELECT id, invitation_id, name, secret_hash, secret_salt, message, created_at
		FROM guestbook_entries
		WHERE id = $1
	`
	e := &domain.GuestbookEntry{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&e.ID, &e.InvitationID, &e.Name, &e.SecretHash, &e.SecretSalt, &e.Message, &e.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *guestbookRepository) ListByInvitationID(ctx context.Context, invitationID string) ([]*domain.GuestbookEntry, error) {
	query := `
		SELECT id, invitation_id, name, secret_hash, secret_salt, message, created_at
		FROM guestbook_entries
		WHERE invitation_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, invitationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	entries := make([]*domain.GuestbookEntry, 0)
	for rows.Next() {
		e := &domain.GuestbookEntry{}
		if err := rows.Scan(&e.ID, &e.InvitationID, &e.Name, &e.SecretHash, &e.SecretSalt, &e.Message, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *guestbookRepository) Update(ctx context.Context, e *domain.GuestbookEntry) error {
	query := `
		UPDATE guestbook_entries
		SET name = $1, message = $2
		WHERE id = $3
	`
	result, err := r.DB.ExecContext(ctx, query, e.Name, e.Message, e.ID)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *guestbookRepository) Delete(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM guestbook_entries WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
