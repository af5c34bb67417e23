package services

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weddinginvite/internal/domain"
)

func seedInvitation(t *testing.T, repo *fakeInvitationRepo, slug string, weddingDaysAgo int) *domain.Invitation {
	t.Helper()
	inv := &domain.Invitation{
		Slug:        slug,
		GroomName:   "Minjun",
		BrideName:   "Seoyeon",
		WeddingDate: time.Now().UTC().AddDate(0, 0, -weddingDaysAgo),
	}
	require.NoError(t, repo.Create(context.Background(), inv))
	return inv
}

func TestRetentionService_Sweep_boundary(t *testing.T) {
	repo := newFakeInvitationRepo()
	media := newFakeMediaStore()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	seedInvitation(t, repo, "oldwed01", 32)
	seedInvitation(t, repo, "newwed01", 29)

	svc := NewRetentionService(repo, media, nil, "", 30, logger)
	report, err := svc.Sweep(context.Background())
	require.NoError(t, err)

	require.Equal(t, 1, report.DeletedCount)
	require.Len(t, report.Items, 1)
	assert.Equal(t, "oldwed01", report.Items[0].Slug)
	assert.Equal(t, "Minjun", report.Items[0].GroomName)
	assert.Contains(t, media.deleted, "oldwed01")

	_, err = repo.GetBySlug(context.Background(), "oldwed01")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = repo.GetBySlug(context.Background(), "newwed01")
	assert.NoError(t, err)
}

func TestRetentionService_Sweep_idempotent(t *testing.T) {
	repo := newFakeInvitationRepo()
	media := newFakeMediaStore()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	seedInvitation(t, repo, "oldwed01", 45)

	svc := NewRetentionService(repo, media, nil, "", 30, logger)
	first, err := svc.Sweep(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, first.DeletedCount)

	second, err := svc.Sweep(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, second.DeletedCount)
	assert.Empty(t, second.Items)
}

func TestRetentionService_Sweep_mediaFailureIsRecorded(t *testing.T) {
	repo := newFakeInvitationRepo()
	media := newFakeMediaStore()
	media.deleteErr = assert.AnError
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	seedInvitation(t, repo, "oldwed01", 40)
	seedInvitation(t, repo, "oldwed02", 40)

	svc := NewRetentionService(repo, media, nil, "", 30, logger)
	report, err := svc.Sweep(context.Background())
	require.NoError(t, err)

	// Both rows purged despite media failures; the failure rides on the item.
	assert.Equal(t, 2, report.DeletedCount)
	for _, item := range report.Items {
		assert.NotEmpty(t, item.MediaError)
	}
}

func TestRetentionService_Sweep_emailsReport(t *testing.T) {
	repo := newFakeInvitationRepo()
	media := newFakeMediaStore()
	mailer := &fakeMailer{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	seedInvitation(t, repo, "oldwed01", 31)

	svc := NewRetentionService(repo, media, mailer, "ops@example.com", 30, logger)
	_, err := svc.Sweep(context.Background())
	require.NoError(t, err)

	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "ops@example.com", mailer.sent[0].To)
	assert.Contains(t, mailer.sent[0].Text, "oldwed01")

	// Nothing purged, nothing sent.
	_, err = svc.Sweep(context.Background())
	require.NoError(t, err)
	assert.Len(t, mailer.sent, 1)
}
