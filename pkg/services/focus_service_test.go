package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testdb "github.com/missionctl/missionctl/test/database"
)

func TestFocusService_Activate(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewFocusService(client.Client)
	apps := NewApplicationService(client.Client)
	ctx := context.Background()

	app, err := apps.Create(ctx, testOwner, CreateApplicationInput{Name: "Acme ERP"})
	require.NoError(t, err)

	t.Run("validates scope", func(t *testing.T) {
		tests := []struct {
			name  string
			input ActivateDirectiveInput
		}{
			{"missing text", ActivateDirectiveInput{ScopeType: "stakeholder", ScopeValue: "nancy"}},
			{"bad scope type", ActivateDirectiveInput{DirectiveText: "x", ScopeType: "team"}},
			{"application without id", ActivateDirectiveInput{DirectiveText: "x", ScopeType: "application"}},
			{"unknown application", ActivateDirectiveInput{DirectiveText: "x", ScopeType: "application", ScopeID: "ghost"}},
			{"stakeholder without value", ActivateDirectiveInput{DirectiveText: "x", ScopeType: "stakeholder"}},
			{"bad strength", ActivateDirectiveInput{DirectiveText: "x", ScopeType: "stakeholder", ScopeValue: "nancy", Strength: "max"}},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := svc.Activate(ctx, testOwner, tt.input)
				require.Error(t, err)
				assert.True(t, IsValidationError(err))
			})
		}
	})

	t.Run("single active invariant", func(t *testing.T) {
		first, err := svc.Activate(ctx, testOwner, ActivateDirectiveInput{
			DirectiveText: "Focus on Acme",
			ScopeType:     "application",
			ScopeID:       app.ID,
			Strength:      "strong",
		})
		require.NoError(t, err)
		assert.True(t, first.IsActive)

		second, err := svc.Activate(ctx, testOwner, ActivateDirectiveInput{
			DirectiveText: "Now chase Nancy's asks",
			ScopeType:     "stakeholder",
			ScopeValue:    "Nancy",
		})
		require.NoError(t, err)

		active, err := svc.Active(ctx, testOwner, time.Now().UTC())
		require.NoError(t, err)
		require.NotNil(t, active)
		assert.Equal(t, second.ID, active.ID)

		retired, err := client.FocusDirective.Get(ctx, first.ID)
		require.NoError(t, err)
		assert.False(t, retired.IsActive)
		assert.NotNil(t, retired.EndsAt)
	})
}

func TestFocusService_ActiveWindowGating(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewFocusService(client.Client)
	ctx := context.Background()
	now := time.Now().UTC()

	_, err := svc.Activate(ctx, testOwner, ActivateDirectiveInput{
		DirectiveText: "Deep work sprint",
		ScopeType:     "task_type",
		ScopeValue:    "build",
		StartsAt:      timePtr(now.Add(time.Hour)),
		EndsAt:        timePtr(now.Add(3 * time.Hour)),
	})
	require.NoError(t, err)

	// Before the window opens the directive is dormant.
	active, err := svc.Active(ctx, testOwner, now)
	require.NoError(t, err)
	assert.Nil(t, active)

	active, err = svc.Active(ctx, testOwner, now.Add(2*time.Hour))
	require.NoError(t, err)
	assert.NotNil(t, active)

	active, err = svc.Active(ctx, testOwner, now.Add(4*time.Hour))
	require.NoError(t, err)
	assert.Nil(t, active)
}

func TestFocusService_Update(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewFocusService(client.Client)
	ctx := context.Background()

	first, err := svc.Activate(ctx, testOwner, ActivateDirectiveInput{
		DirectiveText: "Ship the migration",
		ScopeType:     "task_type",
		ScopeValue:    "build",
	})
	require.NoError(t, err)

	t.Run("not found", func(t *testing.T) {
		_, err := svc.Update(ctx, testOwner, "ghost", UpdateDirectiveInput{})
		assert.ErrorIs(t, err, ErrNotFound)

		_, err = svc.Update(ctx, "owner-2", first.ID, UpdateDirectiveInput{})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("validates patch fields", func(t *testing.T) {
		_, err := svc.Update(ctx, testOwner, first.ID, UpdateDirectiveInput{DirectiveText: strPtr("  ")})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))

		_, err = svc.Update(ctx, testOwner, first.ID, UpdateDirectiveInput{Strength: strPtr("max")})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("patches whitelisted fields", func(t *testing.T) {
		updated, err := svc.Update(ctx, testOwner, first.ID, UpdateDirectiveInput{
			DirectiveText: strPtr("Ship the migration, then the cutover"),
			Strength:      strPtr("strong"),
		})
		require.NoError(t, err)
		assert.Equal(t, "Ship the migration, then the cutover", updated.DirectiveText)
		assert.Equal(t, "strong", updated.Strength.String())
		assert.True(t, updated.IsActive)
	})

	t.Run("deactivating stamps ends_at", func(t *testing.T) {
		updated, err := svc.Update(ctx, testOwner, first.ID, UpdateDirectiveInput{IsActive: boolPtr(false)})
		require.NoError(t, err)
		assert.False(t, updated.IsActive)
		require.NotNil(t, updated.EndsAt)
	})

	t.Run("re-activating retires the current active directive", func(t *testing.T) {
		second, err := svc.Activate(ctx, testOwner, ActivateDirectiveInput{
			DirectiveText: "Chase Nancy's contract",
			ScopeType:     "stakeholder",
			ScopeValue:    "Nancy",
		})
		require.NoError(t, err)

		revived, err := svc.Update(ctx, testOwner, first.ID, UpdateDirectiveInput{IsActive: boolPtr(true)})
		require.NoError(t, err)
		assert.True(t, revived.IsActive)

		retired, err := client.FocusDirective.Get(ctx, second.ID)
		require.NoError(t, err)
		assert.False(t, retired.IsActive)
		assert.NotNil(t, retired.EndsAt)
	})
}

func TestFocusService_Clear(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewFocusService(client.Client)
	ctx := context.Background()

	_, err := svc.Activate(ctx, testOwner, ActivateDirectiveInput{
		DirectiveText: "Chase follow-ups",
		ScopeType:     "task_type",
		ScopeValue:    "follow_up",
	})
	require.NoError(t, err)

	n, err := svc.Clear(ctx, testOwner)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	active, err := svc.Active(ctx, testOwner, time.Now().UTC())
	require.NoError(t, err)
	assert.Nil(t, active)

	// Clearing again is a no-op.
	n, err = svc.Clear(ctx, testOwner)
	require.NoError(t, err)
	assert.Zero(t, n)
}
