package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLimiter_Check_withinQuota(t *testing.T) {
	l := New(NewMemoryStore(), map[string]Rule{
		ActionCreateInvitation: {Max: 5, Window: time.Hour},
	})

	for i := 0; i < 5; i++ {
		res := l.Check(ActionCreateInvitation, "ip-A")
		assert.False(t, res.Limited, "call %d should not be limited", i+1)
	}

	res := l.Check(ActionCreateInvitation, "ip-A")
	require.True(t, res.Limited)
	assert.Greater(t, res.RetryAfter, time.Duration(0))
}

func TestLimiter_Check_keysAreIndependent(t *testing.T) {
	l := New(NewMemoryStore(), map[string]Rule{
		ActionCreateInvitation: {Max: 1, Window: time.Hour},
		ActionCreateReview:     {Max: 1, Window: time.Hour},
	})

	require.False(t, l.Check(ActionCreateInvitation, "ip-A").Limited)
	require.True(t, l.Check(ActionCreateInvitation, "ip-A").Limited)

	// Different client, same action.
	assert.False(t, l.Check(ActionCreateInvitation, "ip-B").Limited)
	// Same client, different action.
	assert.False(t, l.Check(ActionCreateReview, "ip-A").Limited)
}

func TestLimiter_Check_unknownActionNeverLimited(t *testing.T) {
	l := New(NewMemoryStore(), map[string]Rule{})
	for i := 0; i < 100; i++ {
		assert.False(t, l.Check("unconfigured", "ip-A").Limited)
	}
}

func TestMemoryStore_windowReset(t *testing.T) {
	s := NewMemoryStore()

	count, _ := s.Incr("k", 10*time.Millisecond)
	require.Equal(t, 1, count)
	count, _ = s.Incr("k", 10*time.Millisecond)
	require.Equal(t, 2, count)

	time.Sleep(15 * time.Millisecond)

	// Lazy reset on first request after expiry.
	count, _ = s.Incr("k", 10*time.Millisecond)
	assert.Equal(t, 1, count)
}
