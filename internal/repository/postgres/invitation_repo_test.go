package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weddinginvite/internal/domain"
)

func newInvitationRepoMock(t *testing.T) (domain.InvitationRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewInvitationRepository(db), mock
}

func sampleInvitation() *domain.Invitation {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return &domain.Invitation{
		Slug:         "a1b2c3d4",
		SecretHash:   "hash",
		SecretSalt:   "salt",
		GroomName:    "Minjun",
		GroomContact: "01012345678",
		BrideName:    "Seoyeon",
		BrideContact: "01087654321",
		WeddingDate:  time.Date(2026, 6, 20, 4, 0, 0, 0, time.UTC),
		VenueName:    "Garden Hall",
		MainImages:   []string{"a1b2c3d4/main/1.jpg", "a1b2c3d4/main/2.jpg"},
		MiddleImage:  "a1b2c3d4/middle/1.jpg",
		Template:     "classic",
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func invitationRows(inv *domain.Invitation) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "slug", "secret_hash", "secret_salt",
		"groom_name", "groom_contact", "groom_father", "groom_mother",
		"bride_name", "bride_contact", "bride_father", "bride_mother",
		"wedding_date", "venue_name", "venue_detail", "venue_address",
		"location_lat", "location_lng", "welcome_msg", "transit_info",
		"main_images", "middle_image", "og_image", "template", "active", "created_at", "updated_at",
	}).AddRow(
		"inv-1", inv.Slug, inv.SecretHash, inv.SecretSalt,
		inv.GroomName, inv.GroomContact, inv.GroomFather, inv.GroomMother,
		inv.BrideName, inv.BrideContact, inv.BrideFather, inv.BrideMother,
		inv.WeddingDate, inv.VenueName, inv.VenueDetail, inv.VenueAddress,
		nil, nil, inv.WelcomeMsg, inv.TransitInfo,
		"a1b2c3d4/main/1.jpg,a1b2c3d4/main/2.jpg", inv.MiddleImage, nil,
		inv.Template, inv.Active, inv.CreatedAt, inv.UpdatedAt,
	)
}

func TestInvitationRepository_Create(t *testing.T) {
	repo, mock := newInvitationRepoMock(t)
	inv := sampleInvitation()
	inv.Gallery = []*domain.GalleryPhoto{
		{ImagePath: "a1b2c3d4/gallery/1.jpg", Position: 0},
		{ImagePath: "a1b2c3d4/gallery/2.jpg", Position: 1},
	}
	inv.Accounts = []*domain.AccountEntry{
		{Role: domain.RoleGroom, Holder: "Minjun", Bank: "KB", Number: "110-123"},
	}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO invitations")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("inv-1"))
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO gallery_photos")).
		WithArgs("inv-1", "a1b2c3d4/gallery/1.jpg", 0).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("g-1"))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO gallery_photos")).
		WithArgs("inv-1", "a1b2c3d4/gallery/2.jpg", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("g-2"))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO account_entries")).
		WithArgs("inv-1", domain.RoleGroom, "Minjun", "KB", "110-123").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("a-1"))
	mock.ExpectCommit()

	err := repo.Create(context.Background(), inv)
	require.NoError(t, err)
	assert.Equal(t, "inv-1", inv.ID)
	assert.Equal(t, "g-2", inv.Gallery[1].ID)
	assert.Equal(t, "inv-1", inv.Accounts[0].InvitationID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInvitationRepository_Create_duplicateSlug(t *testing.T) {
	repo, mock := newInvitationRepoMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO invitations")).
		WillReturnError(&pq.Error{Code: "23505", Constraint: "invitations_slug_key"})

	err := repo.Create(context.Background(), sampleInvitation())
	assert.ErrorIs(t, err, domain.ErrDuplicateSlug)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInvitationRepository_GetBySlug(t *testing.T) {
	repo, mock := newInvitationRepoMock(t)
	want := sampleInvitation()

	mock.ExpectQuery(regexp.QuoteMeta("FROM invitations WHERE slug = $1")).
		WithArgs("a1b2c3d4").
		WillReturnRows(invitationRows(want))
	mock.ExpectQuery(regexp.QuoteMeta("FROM gallery_photos")).
		WithArgs("inv-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "invitation_id", "image_path", "position"}).
			AddRow("g-1", "inv-1", "a1b2c3d4/gallery/1.jpg", 0))
	mock.ExpectQuery(regexp.QuoteMeta("FROM account_entries")).
		WithArgs("inv-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "invitation_id", "role", "holder", "bank", "number"}))
	mock.ExpectQuery(regexp.QuoteMeta("FROM interview_entries")).
		WithArgs("inv-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "invitation_id", "question", "answer", "position"}).
			AddRow("iv-1", "inv-1", "How did you meet?", "At work.", 0))

	got, err := repo.GetBySlug(context.Background(), "a1b2c3d4")
	require.NoError(t, err)
	assert.Equal(t, "inv-1", got.ID)
	assert.Equal(t, []string{"a1b2c3d4/main/1.jpg", "a1b2c3d4/main/2.jpg"}, got.MainImages)
	assert.Nil(t, got.LocationLat)
	assert.Len(t, got.Gallery, 1)
	assert.Empty(t, got.Accounts)
	assert.Len(t, got.Interviews, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInvitationRepository_GetBySlug_notFound(t *testing.T) {
	repo, mock := newInvitationRepoMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM invitations WHERE slug = $1")).
		WithArgs("zzzzzzzz").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetBySlug(context.Background(), "zzzzzzzz")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInvitationRepository_ExistsBySlug(t *testing.T) {
	repo, mock := newInvitationRepoMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS")).
		WithArgs("a1b2c3d4").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.ExistsBySlug(context.Background(), "a1b2c3d4")
	require.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInvitationRepository_UpdateFields_notFound(t *testing.T) {
	repo, mock := newInvitationRepoMock(t)
	inv := sampleInvitation()
	inv.ID = "gone"

	mock.ExpectExec(regexp.QuoteMeta("UPDATE invitations SET")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateFields(context.Background(), inv)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInvitationRepository_ReplaceAccounts(t *testing.T) {
	repo, mock := newInvitationRepoMock(t)
	accounts := []*domain.AccountEntry{
		{Role: domain.RoleBride, Holder: "Seoyeon", Bank: "Shinhan", Number: "222-333"},
	}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM account_entries WHERE invitation_id = $1")).
		WithArgs("inv-1").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO account_entries")).
		WithArgs("inv-1", domain.RoleBride, "Seoyeon", "Shinhan", "222-333").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("a-9"))
	mock.ExpectCommit()

	err := repo.ReplaceAccounts(context.Background(), "inv-1", accounts)
	require.NoError(t, err)
	assert.Equal(t, "a-9", accounts[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInvitationRepository_ReplaceGallery_clears(t *testing.T) {
	repo, mock := newInvitationRepoMock(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM gallery_photos WHERE invitation_id = $1")).
		WithArgs("inv-1").
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectCommit()

	err := repo.ReplaceGallery(context.Background(), "inv-1", nil)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInvitationRepository_Delete(t *testing.T) {
	tests := []struct {
		name    string
		rows    int64
		wantErr error
	}{
		{name: "deleted", rows: 1, wantErr: nil},
		{name: "missing", rows: 0, wantErr: domain.ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newInvitationRepoMock(t)
			mock.ExpectExec(regexp.QuoteMeta("DELETE FROM invitations WHERE id = $1")).
				WithArgs("inv-1").
				WillReturnResult(sqlmock.NewResult(0, tt.rows))

			err := repo.Delete(context.Background(), "inv-1")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestInvitationRepository_ListExpired(t *testing.T) {
	repo, mock := newInvitationRepoMock(t)
	cutoff := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE wedding_date < $1")).
		WithArgs(cutoff).
		WillReturnRows(invitationRows(sampleInvitation()))

	expired, err := repo.ListExpired(context.Background(), cutoff)
	require.NoError(t, err)
	require.Len(t, expired, 1)
	assert.Equal(t, "a1b2c3d4", expired[0].Slug)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInvitationRepository_SearchByParty(t *testing.T) {
	repo, mock := newInvitationRepoMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("OR (bride_name = $1 AND bride_contact = $2)")).
		WithArgs("Seoyeon", "01087654321").
		WillReturnRows(invitationRows(sampleInvitation()))

	found, err := repo.SearchByParty(context.Background(), "Seoyeon", "01087654321")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "inv-1", found[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
