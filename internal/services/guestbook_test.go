package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weddinginvite/internal/domain"
)

func newGuestbookFixture(t *testing.T) (domain.GuestbookService, *fakeInvitationRepo) {
	t.Helper()
	invRepo := newFakeInvitationRepo()
	seedInvitation(t, invRepo, "a1b2c3d4", 0)
	return NewGuestbookService(newFakeGuestbookRepo(), invRepo, &fakeHasher{}), invRepo
}

func TestGuestbookService_CreateAndList(t *testing.T) {
	svc, _ := newGuestbookFixture(t)

	entry, err := svc.Create(context.Background(), "a1b2c3d4", "Jisoo", "mypassword", "Congratulations!")
	require.NoError(t, err)
	assert.NotEmpty(t, entry.ID)
	assert.NotContains(t, entry.SecretHash, "mypassword")

	entries, err := svc.List(context.Background(), "a1b2c3d4")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Congratulations!", entries[0].Message)

	_, err = svc.Create(context.Background(), "zzzzzzzz", "Jisoo", "mypassword", "hi")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGuestbookService_Create_validation(t *testing.T) {
	svc, _ := newGuestbookFixture(t)

	_, err := svc.Create(context.Background(), "a1b2c3d4", "", "mypassword", "hi")
	assert.ErrorIs(t, err, domain.ErrValidation)
	_, err = svc.Create(context.Background(), "a1b2c3d4", "Jisoo", "abc", "hi")
	assert.ErrorIs(t, err, domain.ErrValidation)
	_, err = svc.Create(context.Background(), "a1b2c3d4", "Jisoo", "mypassword", "")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestGuestbookService_UpdateAndDelete(t *testing.T) {
	svc, _ := newGuestbookFixture(t)
	entry, err := svc.Create(context.Background(), "a1b2c3d4", "Jisoo", "mypassword", "Congratulations!")
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), entry.ID, "wrongpass", "Jisoo", "Edited")
	assert.ErrorIs(t, err, domain.ErrAuthenticationFailed)

	updated, err := svc.Update(context.Background(), entry.ID, "mypassword", "Jisoo K", "Edited")
	require.NoError(t, err)
	assert.Equal(t, "Jisoo K", updated.Name)
	assert.Equal(t, "Edited", updated.Message)

	err = svc.Delete(context.Background(), entry.ID, "wrongpass")
	assert.ErrorIs(t, err, domain.ErrAuthenticationFailed)
	require.NoError(t, svc.Delete(context.Background(), entry.ID, "mypassword"))

	err = svc.Delete(context.Background(), entry.ID, "mypassword")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
