package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRevocationStore_RevokeAndCheck(t *testing.T) {
	s := NewMemoryRevocationStore()
	ctx := context.Background()

	require.NoError(t, s.Revoke(ctx, "jti-1", time.Now().Add(time.Hour)))

	revoked, err := s.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	revoked, err = s.IsRevoked(ctx, "jti-2")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestMemoryRevocationStore_ExpiredTokenIsNotStored(t *testing.T) {
	s := NewMemoryRevocationStore()

	require.NoError(t, s.Revoke(context.Background(), "old", time.Now().Add(-time.Second)))
	assert.Equal(t, 0, s.Len())
}

func TestMemoryRevocationStore_EmptyID(t *testing.T) {
	s := NewMemoryRevocationStore()

	assert.ErrorIs(t, s.Revoke(context.Background(), "", time.Now().Add(time.Hour)), ErrEmptyTokenID)
	_, err := s.IsRevoked(context.Background(), "")
	assert.ErrorIs(t, err, ErrEmptyTokenID)
}

func TestMemoryRevocationStore_Prune(t *testing.T) {
	s := NewMemoryRevocationStore()
	ctx := context.Background()
	now := time.Now()
	s.now = func() time.Time { return now }

	require.NoError(t, s.Revoke(ctx, "short", now.Add(time.Minute)))
	require.NoError(t, s.Revoke(ctx, "long", now.Add(time.Hour)))

	// move the clock past the first expiry
	now = now.Add(2 * time.Minute)

	revoked, err := s.IsRevoked(ctx, "short")
	require.NoError(t, err)
	assert.False(t, revoked, "expired entries no longer count as revoked")

	assert.Equal(t, 1, s.Prune(ctx))
	assert.Equal(t, 1, s.Len())

	revoked, err = s.IsRevoked(ctx, "long")
	require.NoError(t, err)
	assert.True(t, revoked)
}

func TestMemoryRevocationStore_KeepsLaterExpiry(t *testing.T) {
	s := NewMemoryRevocationStore()
	ctx := context.Background()
	now := time.Now()
	s.now = func() time.Time { return now }

	require.NoError(t, s.Revoke(ctx, "jti", now.Add(time.Hour)))
	require.NoError(t, s.Revoke(ctx, "jti", now.Add(time.Minute)))

	now = now.Add(30 * time.Minute)
	revoked, err := s.IsRevoked(ctx, "jti")
	require.NoError(t, err)
	assert.True(t, revoked)
}
