package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/missionctl/missionctl/ent/commitment"
	testdb "github.com/missionctl/missionctl/test/database"
)

func TestCommitmentService(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewCommitmentService(client.Client)
	ctx := context.Background()

	created, err := svc.Create(ctx, testOwner, CreateCommitmentInput{
		Stakeholder: "Nancy",
		Description: "Send the revised contract",
		Direction:   "theirs",
		DueAt:       timePtr(time.Now().Add(72 * time.Hour)),
	})
	require.NoError(t, err)
	assert.Equal(t, commitment.StatusOpen, created.Status)

	_, err = svc.Create(ctx, testOwner, CreateCommitmentInput{
		Stakeholder: "Heath",
		Description: "Deliver the budget summary",
		Direction:   "ours",
	})
	require.NoError(t, err)

	t.Run("validates input", func(t *testing.T) {
		_, err := svc.Create(ctx, testOwner, CreateCommitmentInput{Description: "x", Direction: "ours"})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))

		_, err = svc.Create(ctx, testOwner, CreateCommitmentInput{Stakeholder: "x", Direction: "ours"})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))

		_, err = svc.Create(ctx, testOwner, CreateCommitmentInput{Stakeholder: "x", Description: "y", Direction: "mutual"})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("satisfy and list", func(t *testing.T) {
		satisfied, err := svc.Satisfy(ctx, testOwner, created.ID)
		require.NoError(t, err)
		assert.Equal(t, commitment.StatusSatisfied, satisfied.Status)

		all, err := svc.List(ctx, testOwner, false)
		require.NoError(t, err)
		require.Len(t, all, 2)
		// Open rows sort ahead of satisfied ones.
		assert.Equal(t, commitment.StatusOpen, all[0].Status)

		open, err := svc.List(ctx, testOwner, true)
		require.NoError(t, err)
		require.Len(t, open, 1)
		assert.Equal(t, "Heath", open[0].Stakeholder)
	})

	t.Run("cross-owner satisfy is not found", func(t *testing.T) {
		_, err := svc.Satisfy(ctx, "owner-2", created.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestProjectService(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewProjectService(client.Client)
	apps := NewApplicationService(client.Client)
	ctx := context.Background()

	app, err := apps.Create(ctx, testOwner, CreateApplicationInput{Name: "Acme ERP"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, testOwner, app.ID, "Cutover rehearsal", "Dry run of the production cutover")
	require.NoError(t, err)
	_, err = svc.Create(ctx, testOwner, "", "Brown-bag series", "")
	require.NoError(t, err)

	t.Run("validates input", func(t *testing.T) {
		_, err := svc.Create(ctx, testOwner, "", "  ", "")
		require.Error(t, err)
		assert.True(t, IsValidationError(err))

		_, err = svc.Create(ctx, testOwner, "ghost", "Orphan", "")
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("list and filter", func(t *testing.T) {
		all, err := svc.List(ctx, testOwner, "")
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, "Brown-bag series", all[0].Name)

		scoped, err := svc.List(ctx, testOwner, app.ID)
		require.NoError(t, err)
		require.Len(t, scoped, 1)
		assert.Equal(t, "Cutover rehearsal", scoped[0].Name)
	})
}
