package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weddinginvite/internal/domain"
)

func TestJWTManager_Issue_and_Verify(t *testing.T) {
	m := NewJWTManager("test-secret")

	token, err := m.Issue("abc12345", domain.TokenScopeEdit, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	subject, scope, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "abc12345", subject)
	assert.Equal(t, domain.TokenScopeEdit, scope)
}

func TestJWTManager_Verify_wrong_secret(t *testing.T) {
	m := NewJWTManager("test-secret")
	other := NewJWTManager("other-secret")

	token, err := m.Issue("abc12345", domain.TokenScopeEdit, time.Hour)
	require.NoError(t, err)

	_, _, err = other.Verify(token)
	assert.Error(t, err)
}

func TestJWTManager_Verify_expired(t *testing.T) {
	m := NewJWTManager("test-secret")

	token, err := m.Issue("admin", domain.TokenScopeAdmin, -time.Minute)
	require.NoError(t, err)

	_, _, err = m.Verify(token)
	assert.Error(t, err)
}
