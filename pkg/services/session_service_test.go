package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testdb "github.com/missionctl/missionctl/test/database"
)

func TestSessionService_CreateAndValidate(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewSessionService(client.Client)
	ctx := context.Background()

	session, err := svc.Create(ctx, testOwner, 0)
	require.NoError(t, err)
	assert.Len(t, session.Token, 64)
	assert.WithinDuration(t, time.Now().UTC().Add(DefaultSessionTTL), session.ExpiresAt, time.Minute)

	resolved, err := svc.Validate(ctx, session.Token)
	require.NoError(t, err)
	assert.Equal(t, testOwner, resolved.OwnerID)

	t.Run("tokens are unique", func(t *testing.T) {
		other, err := svc.Create(ctx, testOwner, time.Hour)
		require.NoError(t, err)
		assert.NotEqual(t, session.Token, other.Token)
	})

	t.Run("unknown and empty tokens", func(t *testing.T) {
		_, err := svc.Validate(ctx, "deadbeef")
		assert.ErrorIs(t, err, ErrNotFound)

		_, err = svc.Validate(ctx, "")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("requires an owner", func(t *testing.T) {
		_, err := svc.Create(ctx, "", time.Hour)
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestSessionService_Expiry(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewSessionService(client.Client)
	ctx := context.Background()

	session, err := svc.Create(ctx, testOwner, time.Hour)
	require.NoError(t, err)
	expired, err := client.UserSession.UpdateOneID(session.ID).
		SetExpiresAt(time.Now().UTC().Add(-time.Minute)).
		Save(ctx)
	require.NoError(t, err)

	// An expired token is indistinguishable from an unknown one.
	_, err = svc.Validate(ctx, expired.Token)
	assert.ErrorIs(t, err, ErrNotFound)

	t.Run("sweep removes expired rows", func(t *testing.T) {
		live, err := svc.Create(ctx, testOwner, time.Hour)
		require.NoError(t, err)

		n, err := svc.SweepExpired(ctx, time.Now().UTC())
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		_, err = svc.Validate(ctx, live.Token)
		require.NoError(t, err)
	})
}

func TestSessionService_Revoke(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewSessionService(client.Client)
	ctx := context.Background()

	session, err := svc.Create(ctx, testOwner, time.Hour)
	require.NoError(t, err)

	require.NoError(t, svc.Revoke(ctx, session.Token))
	_, err = svc.Validate(ctx, session.Token)
	assert.ErrorIs(t, err, ErrNotFound)

	// Revoking again is a no-op.
	require.NoError(t, svc.Revoke(ctx, session.Token))
}
