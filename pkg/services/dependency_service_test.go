package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testdb "github.com/missionctl/missionctl/test/database"
)

func TestDependencyService_Add(t *testing.T) {
	client := testdb.NewTestClient(t)
	tasks := NewTaskService(client.Client)
	deps := NewDependencyService(client.Client)
	commitments := NewCommitmentService(client.Client)
	ctx := context.Background()

	a, err := tasks.Create(ctx, testOwner, CreateTaskInput{Title: "A"})
	require.NoError(t, err)
	b, err := tasks.Create(ctx, testOwner, CreateTaskInput{Title: "B"})
	require.NoError(t, err)
	c, err := tasks.Create(ctx, testOwner, CreateTaskInput{Title: "C"})
	require.NoError(t, err)

	t.Run("requires exactly one target", func(t *testing.T) {
		_, err := deps.Add(ctx, testOwner, a.ID, AddDependencyInput{})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))

		_, err = deps.Add(ctx, testOwner, a.ID, AddDependencyInput{
			DependsOnTaskID:       b.ID,
			DependsOnCommitmentID: "cm-1",
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects self dependency", func(t *testing.T) {
		_, err := deps.Add(ctx, testOwner, a.ID, AddDependencyInput{DependsOnTaskID: a.ID})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("creates task dependency", func(t *testing.T) {
		dep, err := deps.Add(ctx, testOwner, a.ID, AddDependencyInput{DependsOnTaskID: b.ID})
		require.NoError(t, err)
		require.NotNil(t, dep.DependsOnTaskID)
		assert.Equal(t, b.ID, *dep.DependsOnTaskID)
	})

	t.Run("duplicate dependency conflicts", func(t *testing.T) {
		_, err := deps.Add(ctx, testOwner, a.ID, AddDependencyInput{DependsOnTaskID: b.ID})
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("rejects circular chains", func(t *testing.T) {
		// a -> b already exists; extend to b -> c, then c -> a must fail.
		_, err := deps.Add(ctx, testOwner, b.ID, AddDependencyInput{DependsOnTaskID: c.ID})
		require.NoError(t, err)

		_, err = deps.Add(ctx, testOwner, c.ID, AddDependencyInput{DependsOnTaskID: a.ID})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
		assert.Contains(t, err.Error(), "Cannot create circular dependency")
	})

	t.Run("commitment dependency", func(t *testing.T) {
		cm, err := commitments.Create(ctx, testOwner, CreateCommitmentInput{
			Stakeholder: "Nancy",
			Description: "Send the revised contract",
			Direction:   "theirs",
			DueAt:       timePtr(time.Now().Add(72 * time.Hour)),
		})
		require.NoError(t, err)

		dep, err := deps.Add(ctx, testOwner, c.ID, AddDependencyInput{DependsOnCommitmentID: cm.ID})
		require.NoError(t, err)
		require.NotNil(t, dep.DependsOnCommitmentID)
		assert.Equal(t, cm.ID, *dep.DependsOnCommitmentID)
	})

	t.Run("unknown targets", func(t *testing.T) {
		_, err := deps.Add(ctx, testOwner, a.ID, AddDependencyInput{DependsOnTaskID: "ghost"})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))

		_, err = deps.Add(ctx, testOwner, "ghost", AddDependencyInput{DependsOnTaskID: b.ID})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestDependencyService_Unresolved(t *testing.T) {
	client := testdb.NewTestClient(t)
	tasks := NewTaskService(client.Client)
	deps := NewDependencyService(client.Client)
	commitments := NewCommitmentService(client.Client)
	ctx := context.Background()

	a, err := tasks.Create(ctx, testOwner, CreateTaskInput{Title: "A"})
	require.NoError(t, err)
	b, err := tasks.Create(ctx, testOwner, CreateTaskInput{Title: "B"})
	require.NoError(t, err)
	cm, err := commitments.Create(ctx, testOwner, CreateCommitmentInput{
		Stakeholder: "Heath",
		Description: "Approve budget",
		Direction:   "theirs",
	})
	require.NoError(t, err)

	_, err = deps.Add(ctx, testOwner, a.ID, AddDependencyInput{DependsOnTaskID: b.ID})
	require.NoError(t, err)
	_, err = deps.Add(ctx, testOwner, a.ID, AddDependencyInput{DependsOnCommitmentID: cm.ID})
	require.NoError(t, err)

	open, err := deps.Unresolved(ctx, testOwner, a.ID)
	require.NoError(t, err)
	assert.True(t, open)

	// Finishing the task leaves the open commitment blocking.
	_, err = tasks.Update(ctx, testOwner, b.ID, UpdateTaskInput{Status: strPtr("done")})
	require.NoError(t, err)
	open, err = deps.Unresolved(ctx, testOwner, a.ID)
	require.NoError(t, err)
	assert.True(t, open)

	_, err = commitments.Satisfy(ctx, testOwner, cm.ID)
	require.NoError(t, err)
	open, err = deps.Unresolved(ctx, testOwner, a.ID)
	require.NoError(t, err)
	assert.False(t, open)
}

func TestDependencyService_ListAndRemove(t *testing.T) {
	client := testdb.NewTestClient(t)
	tasks := NewTaskService(client.Client)
	deps := NewDependencyService(client.Client)
	ctx := context.Background()

	a, err := tasks.Create(ctx, testOwner, CreateTaskInput{Title: "A"})
	require.NoError(t, err)
	b, err := tasks.Create(ctx, testOwner, CreateTaskInput{Title: "B"})
	require.NoError(t, err)

	dep, err := deps.Add(ctx, testOwner, a.ID, AddDependencyInput{DependsOnTaskID: b.ID})
	require.NoError(t, err)

	listed, err := deps.List(ctx, testOwner, a.ID)
	require.NoError(t, err)
	require.Len(t, listed, 1)

	assert.ErrorIs(t, deps.Remove(ctx, "owner-2", a.ID, dep.ID), ErrNotFound)
	assert.ErrorIs(t, deps.Remove(ctx, testOwner, b.ID, dep.ID), ErrNotFound)
	require.NoError(t, deps.Remove(ctx, testOwner, a.ID, dep.ID))

	listed, err = deps.List(ctx, testOwner, a.ID)
	require.NoError(t, err)
	assert.Empty(t, listed)
}
