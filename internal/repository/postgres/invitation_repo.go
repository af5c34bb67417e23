package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"
	"weddinginvite/internal/domain"
)

type invitationRepository struct {
	DB *sql.DB
}

func NewInvitationRepository(db *sql.DB) domain.InvitationRepository {
	return &invitationRepository{DB: db}
}

const invitationColumns = `id, slug, secret_hash, secret_salt,
	groom_name, groom_contact, groom_father, groom_mother,
	bride_name, bride_contact, bride_father, bride_mother,
	wedding_date, venue_name, venue_detail, venue_address,
	location_lat, location_lng, welcome_msg, transit_info,
	main_images, middle_image, og_image, template, active, created_at, updated_at`

// isUniqueViolation reports whether err is a Postgres unique-constraint
// violation (SQLSTATE 23505), the insert-time side of a slug race.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

func (r *invitationRepository) Create(ctx context.Context, inv *domain.Invitation) error {
	query := `
		INSERT INTO invitations (slug, secret_hash, secret_salt,
			groom_name, groom_contact, groom_father, groom_mother,
			bride_name, bride_contact, bride_father, bride_mother,
			wedding_date, venue_name, venue_detail, venue_address,
			location_lat, location_lng, welcome_msg, transit_info,
			main_images, middle_image, og_image, template, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
			$16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query,
		inv.Slug, inv.SecretHash, inv.SecretSalt,
		inv.GroomName, inv.GroomContact, inv.GroomFather, inv.GroomMother,
		inv.BrideName, inv.BrideContact, inv.BrideFather, inv.BrideMother,
		inv.WeddingDate, inv.VenueName, inv.VenueDetail, inv.VenueAddress,
		inv.LocationLat, inv.LocationLng, inv.WelcomeMsg, inv.TransitInfo,
		strings.Join(inv.MainImages, ","), inv.MiddleImage, inv.OgImage,
		inv.Template, inv.Active, inv.CreatedAt, inv.UpdatedAt,
	).Scan(&inv.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateSlug
		}
		return err
	}

	// Root first, children second: a crash here leaves an unshared
	// invitation with incomplete children, never a dangling child row.
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()
	if err := insertGallery(ctx, tx, inv.ID, inv.Gallery); err != nil {
		return err
	}
	if err := insertAccounts(ctx, tx, inv.ID, inv.Accounts); err != nil {
		return err
	}
	if err := insertInterviews(ctx, tx, inv.ID, inv.Interviews); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *invitationRepository) GetBySlug(ctx context.Context, slug string) (*domain.Invitation, error) {
	query := fmt.Sprintf(`SELECT %s FROM invitations WHERE slug = $1`, invitationColumns)
	inv, err := scanInvitation(r.DB.QueryRowContext(ctx, query, slug))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if inv.Gallery, err = r.listGallery(ctx, inv.ID); err != nil {
		return nil, err
	}
	if inv.Accounts, err = r.listAccounts(ctx, inv.ID); err != nil {
		return nil, err
	}
	if inv.Interviews, err = r.listInterviews(ctx, inv.ID); err != nil {
		return nil, err
	}
	return inv, nil
}

func (r *invitationRepository) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	var exists bool
	err := r.DB.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM invitations WHERE slug = $1)`, slug).Scan(&exists)
	return exists, err
}

func (r *invitationRepository) UpdateFields(ctx context.Context, inv *domain.Invitation) error {
	query := `
		UPDATE invitations SET
			groom_name = $1, groom_contact = $2, groom_father = $3, groom_mother = $4,
			bride_name = $5, bride_contact = $6, bride_father = $7, bride_mother = $8,
			wedding_date = $9, venue_name = $10, venue_detail = $11, venue_address = $12,
			location_lat = $13, location_lng = $14, welcome_msg = $15, transit_info = $16,
			main_images = $17, middle_image = $18, og_image = $19, template = $20,
			active = $21, updated_at = $22
		WHERE id = $23
	`
	result, err := r.DB.ExecContext(ctx, query,
		inv.GroomName, inv.GroomContact, inv.GroomFather, inv.GroomMother,
		inv.BrideName, inv.BrideContact, inv.BrideFather, inv.BrideMother,
		inv.WeddingDate, inv.VenueName, inv.VenueDetail, inv.VenueAddress,
		inv.LocationLat, inv.LocationLng, inv.WelcomeMsg, inv.TransitInfo,
		strings.Join(inv.MainImages, ","), inv.MiddleImage, inv.OgImage, inv.Template,
		inv.Active, inv.UpdatedAt, inv.ID,
	)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *invitationRepository) ReplaceGallery(ctx context.Context, invitationID string, photos []*domain.GalleryPhoto) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()
	if _, err := tx.ExecContext(ctx, `DELETE FROM gallery_photos WHERE invitation_id = $1`, invitationID); err != nil {
		return err
	}
	if err := insertGallery(ctx, tx, invitationID, photos); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *invitationRepository) ReplaceAccounts(ctx context.Context, invitationID string, accounts []*domain.AccountEntry) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()
	if _, err := tx.ExecContext(ctx, `DELETE FROM account_entries WHERE invitation_id = $1`, invitationID); err != nil {
		return err
	}
	if err := insertAccounts(ctx, tx, invitationID, accounts); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *invitationRepository) ReplaceInterviews(ctx context.Context, invitationID string, interviews []*domain.InterviewEntry) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()
	if _, err := tx.ExecContext(ctx, `DELETE FROM interview_entries WHERE invitation_id = $1`, invitationID); err != nil {
		return err
	}
	if err := insertInterviews(ctx, tx, invitationID, interviews); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *invitationRepository) Delete(ctx context.Context, id string) error {
	// Child rows go with the root via ON DELETE CASCADE.
	result, err := r.DB.ExecContext(ctx, `DELETE FROM invitations WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *invitationRepository) ListExpired(ctx context.Context, before time.Time) ([]*domain.Invitation, error) {
	query := fmt.Sprintf(`SELECT %s FROM invitations WHERE wedding_date < $1 ORDER BY wedding_date`, invitationColumns)
	return r.listRoots(ctx, query, before)
}

func (r *invitationRepository) SearchByParty(ctx context.Context, name, contact string) ([]*domain.Invitation, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM invitations
		WHERE (groom_name = $1 AND groom_contact = $2)
		   OR (bride_name = $1 AND bride_contact = $2)
		ORDER BY created_at DESC`, invitationColumns)
	return r.listRoots(ctx, query, name, contact)
}

func (r *invitationRepository) listRoots(ctx context.Context, query string, args ...interface{}) ([]*domain.Invitation, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	invitations := make([]*domain.Invitation, 0)
	for rows.Next() {
		inv, err := scanInvitation(rows)
		if err != nil {
			return nil, err
		}
		invitations = append(invitations, inv)
	}
	return invitations, rows.Err()
}

func (r *invitationRepository) listGallery(ctx context.Context, invitationID string) ([]*domain.GalleryPhoto, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, invitation_id, image_path, position
		FROM gallery_photos WHERE invitation_id = $1 ORDER BY position`, invitationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	photos := make([]*domain.GalleryPhoto, 0)
	for rows.Next() {
		p := &domain.GalleryPhoto{}
		if err := rows.Scan(&p.ID, &p.InvitationID, &p.ImagePath, &p.Position); err != nil {
			return nil, err
		}
		photos = append(photos, p)
	}
	return photos, rows.Err()
}

func (r *invitationRepository) listAccounts(ctx context.Context, invitationID string) ([]*domain.AccountEntry, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, invitation_id, role, holder, bank, number
		FROM account_entries WHERE invitation_id = $1 ORDER BY role`, invitationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	accounts := make([]*domain.AccountEntry, 0)
	for rows.Next() {
		a := &domain.AccountEntry{}
		if err := rows.Scan(&a.ID, &a.InvitationID, &a.Role, &a.Holder, &a.Bank, &a.Number); err != nil {
			return nil, err
		}
		accounts = append(accounts, a)
	}
	return accounts, rows.Err()
}

func (r *invitationRepository) listInterviews(ctx context.Context, invitationID string) ([]*domain.InterviewEntry, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, invitation_id, question, answer, position
		FROM interview_entries WHERE invitation_id = $1 ORDER BY position`, invitationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	interviews := make([]*domain.InterviewEntry, 0)
	for rows.Next() {
		iv := &domain.InterviewEntry{}
		if err := rows.Scan(&iv.ID, &iv.InvitationID, &iv.Question, &iv.Answer, &iv.Position); err != nil {
			return nil, err
		}
		interviews = append(interviews, iv)
	}
	return interviews, rows.Err()
}

func insertGallery(ctx context.Context, tx *sql.Tx, invitationID string, photos []*domain.GalleryPhoto) error {
	for _, p := range photos {
		err := tx.QueryRowContext(ctx, `
			INSERT INTO gallery_photos (invitation_id, image_path, position)
			VALUES ($1, $2, $3) RETURNING id`,
			invitationID, p.ImagePath, p.Position).Scan(&p.ID)
		if err != nil {
			return err
		}
		p.InvitationID = invitationID
	}
	return nil
}

func insertAccounts(ctx context.Context, tx *sql.Tx, invitationID string, accounts []*domain.AccountEntry) error {
	for _, a := range accounts {
		err := tx.QueryRowContext(ctx, `
			INSERT INTO account_entries (invitation_id, role, holder, bank, number)
			VALUES ($1, $2, $3, $4, $5) RETURNING id`,
			invitationID, a.Role, a.Holder, a.Bank, a.Number).Scan(&a.ID)
		if err != nil {
			return err
		}
		a.InvitationID = invitationID
	}
	return nil
}

func insertInterviews(ctx context.Context, tx *sql.Tx, invitationID string, interviews []*domain.InterviewEntry) error {
	for _, iv := range interviews {
		err := tx.QueryRowContext(ctx, `
			INSERT INTO interview_entries (invitation_id, question, answer, position)
			VALUES ($1, $2, $3, $4) RETURNING id`,
			invitationID, iv.Question, iv.Answer, iv.Position).Scan(&iv.ID)
		if err != nil {
			return err
		}
		iv.InvitationID = invitationID
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanInvitation(row rowScanner) (*domain.Invitation, error) {
	inv := &domain.Invitation{}
	var latNull, lngNull sql.NullFloat64
	var ogNull sql.NullString
	var mainImages string
	err := row.Scan(
		&inv.ID, &inv.Slug, &inv.SecretHash, &inv.SecretSalt,
		&inv.GroomName, &inv.GroomContact, &inv.GroomFather, &inv.GroomMother,
		&inv.BrideName, &inv.BrideContact, &inv.BrideFather, &inv.BrideMother,
		&inv.WeddingDate, &inv.VenueName, &inv.VenueDetail, &inv.VenueAddress,
		&latNull, &lngNull, &inv.WelcomeMsg, &inv.TransitInfo,
		&mainImages, &inv.MiddleImage, &ogNull, &inv.Template,
		&inv.Active, &inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if latNull.Valid {
		inv.LocationLat = &latNull.Float64
	}
	if lngNull.Valid {
		inv.LocationLng = &lngNull.Float64
	}
	if ogNull.Valid {
		inv.OgImage = &ogNull.String
	}
	if mainImages != "" {
		inv.MainImages = strings.Split(mainImages, ",")
	} else {
		inv.MainImages = []string{}
	}
	return inv, nil
}
