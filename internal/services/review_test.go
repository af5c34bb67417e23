package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weddinginvite/internal/domain"
)

func intPtr(v int) *int { return &v }

func TestReviewService_Create(t *testing.T) {
	svc := NewReviewService(&fakeReviewRepo{}, &fakeHasher{})

	entry, err := svc.Create(context.Background(), "Jisoo", "mypassword", "Lovely service", intPtr(5))
	require.NoError(t, err)
	assert.NotEmpty(t, entry.ID)
	require.NotNil(t, entry.Rating)
	assert.Equal(t, 5, *entry.Rating)

	// Rating is optional but bounded when present.
	_, err = svc.Create(context.Background(), "Jisoo", "mypassword", "No stars", nil)
	assert.NoError(t, err)
	_, err = svc.Create(context.Background(), "Jisoo", "mypassword", "Too generous", intPtr(6))
	assert.ErrorIs(t, err, domain.ErrValidation)
	_, err = svc.Create(context.Background(), "Jisoo", "mypassword", "Too harsh", intPtr(0))
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestReviewService_List(t *testing.T) {
	repo := &fakeReviewRepo{}
	svc := NewReviewService(repo, &fakeHasher{})
	for i := 0; i < 7; i++ {
		_, err := svc.Create(context.Background(), "Jisoo", "mypassword", "review", nil)
		require.NoError(t, err)
	}

	entries, total, err := svc.List(context.Background(), domain.PaginationParams{Page: 2, PageSize: 5})
	require.NoError(t, err)
	assert.Equal(t, 7, total)
	assert.Len(t, entries, 2)
}

func TestReviewService_UpdateAndDelete(t *testing.T) {
	svc := NewReviewService(&fakeReviewRepo{}, &fakeHasher{})
	entry, err := svc.Create(context.Background(), "Jisoo", "mypassword", "First impression", intPtr(3))
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), entry.ID, "wrongpass", "Changed", intPtr(4))
	assert.ErrorIs(t, err, domain.ErrAuthenticationFailed)

	updated, err := svc.Update(context.Background(), entry.ID, "mypassword", "Changed my mind", intPtr(4))
	require.NoError(t, err)
	assert.Equal(t, "Changed my mind", updated.Content)
	assert.Equal(t, 4, *updated.Rating)

	err = svc.Delete(context.Background(), entry.ID, "wrongpass")
	assert.ErrorIs(t, err, domain.ErrAuthenticationFailed)
	require.NoError(t, svc.Delete(context.Background(), entry.ID, "mypassword"))

	_, err = svc.Update(context.Background(), entry.ID, "mypassword", "gone", nil)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
