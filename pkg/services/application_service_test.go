package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testdb "github.com/missionctl/missionctl/test/database"
)

func TestApplicationService_CreateAndList(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewApplicationService(client.Client)
	ctx := context.Background()

	t.Run("creates with defaults", func(t *testing.T) {
		app, err := svc.Create(ctx, testOwner, CreateApplicationInput{Name: "Acme ERP"})
		require.NoError(t, err)
		assert.Equal(t, "intake", app.Phase.String())
		assert.Equal(t, "green", app.Rag.String())
		assert.Equal(t, 5, app.PriorityWeight)
		assert.Nil(t, app.PortfolioRank)
	})

	t.Run("validates input", func(t *testing.T) {
		_, err := svc.Create(ctx, testOwner, CreateApplicationInput{})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))

		_, err = svc.Create(ctx, testOwner, CreateApplicationInput{Name: "x", Phase: "limbo"})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))

		_, err = svc.Create(ctx, testOwner, CreateApplicationInput{Name: "x", RAG: "purple"})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("list orders ranked before unranked", func(t *testing.T) {
		b, err := svc.Create(ctx, testOwner, CreateApplicationInput{Name: "Billing"})
		require.NoError(t, err)
		_, err = client.Application.UpdateOneID(b.ID).SetPortfolioRank(1).Save(ctx)
		require.NoError(t, err)

		apps, err := svc.List(ctx, testOwner)
		require.NoError(t, err)
		require.NotEmpty(t, apps)
		assert.Equal(t, "Billing", apps[0].Name)
	})
}

func TestApplicationService_Reorder(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewApplicationService(client.Client)
	ctx := context.Background()

	names := []string{"Alpha", "Beta", "Gamma"}
	ids := make([]string, 0, len(names))
	for _, name := range names {
		app, err := svc.Create(ctx, testOwner, CreateApplicationInput{Name: name})
		require.NoError(t, err)
		ids = append(ids, app.ID)
	}

	t.Run("assigns ranks and spreads weights", func(t *testing.T) {
		// Reverse order: Gamma first.
		apps, err := svc.Reorder(ctx, testOwner, []string{ids[2], ids[1], ids[0]})
		require.NoError(t, err)
		require.Len(t, apps, 3)

		assert.Equal(t, "Gamma", apps[0].Name)
		require.NotNil(t, apps[0].PortfolioRank)
		assert.Equal(t, 1, *apps[0].PortfolioRank)
		assert.Equal(t, 10, apps[0].PriorityWeight)
		assert.Equal(t, 5, apps[1].PriorityWeight)
		assert.Equal(t, 0, apps[2].PriorityWeight)
	})

	t.Run("reorder is idempotent under repetition", func(t *testing.T) {
		_, err := svc.Reorder(ctx, testOwner, []string{ids[2], ids[1], ids[0]})
		require.NoError(t, err)
	})

	t.Run("rejects non-permutations", func(t *testing.T) {
		tests := []struct {
			name  string
			order []string
		}{
			{"too short", []string{ids[0]}},
			{"duplicate", []string{ids[0], ids[0], ids[1]}},
			{"unknown id", []string{ids[0], ids[1], "ghost"}},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := svc.Reorder(ctx, testOwner, tt.order)
				require.Error(t, err)
				assert.True(t, IsValidationError(err))
			})
		}
	})
}

func TestSpreadWeight(t *testing.T) {
	assert.Equal(t, 10, spreadWeight(0, 1))
	assert.Equal(t, 10, spreadWeight(0, 5))
	assert.Equal(t, 0, spreadWeight(4, 5))
	// Two apps split the extremes.
	assert.Equal(t, 10, spreadWeight(0, 2))
	assert.Equal(t, 0, spreadWeight(1, 2))
	// Middle of three is the neutral weight.
	assert.Equal(t, 5, spreadWeight(1, 3))
}

func TestApplicationService_CopyUpdate(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewApplicationService(client.Client)
	tasks := NewTaskService(client.Client)
	ctx := context.Background()

	target := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	app, err := svc.Create(ctx, testOwner, CreateApplicationInput{
		Name:          "Acme ERP",
		Phase:         "go_live",
		RAG:           "yellow",
		StatusSummary: "Cutover rehearsal complete.",
		NextMilestone: "Production cutover",
		TargetDate:    &target,
	})
	require.NoError(t, err)

	t.Run("full snippet", func(t *testing.T) {
		snippet, err := svc.CopyUpdate(ctx, testOwner, app.ID, true)
		require.NoError(t, err)
		assert.Equal(t,
			"Acme ERP — Go Live (YELLOW). Cutover rehearsal complete. "+
				"Next: Production cutover (2026-09-15). Blocker(s): None.",
			snippet)

		updates, err := svc.StatusUpdates(ctx, testOwner, app.ID, 10)
		require.NoError(t, err)
		require.Len(t, updates, 1)
		assert.Equal(t, snippet, updates[0].Snippet)
	})

	t.Run("skips log when asked", func(t *testing.T) {
		_, err := svc.CopyUpdate(ctx, testOwner, app.ID, false)
		require.NoError(t, err)
		updates, err := svc.StatusUpdates(ctx, testOwner, app.ID, 10)
		require.NoError(t, err)
		assert.Len(t, updates, 1)
	})

	t.Run("names blockers with overflow ellipsis", func(t *testing.T) {
		for _, title := range []string{"Vendor SSO outage", "Data load stuck", "Firewall request", "Training overdue"} {
			_, err := tasks.Create(ctx, testOwner, CreateTaskInput{
				Title:         title,
				ApplicationID: app.ID,
				Blocker:       true,
			})
			require.NoError(t, err)
		}

		snippet, err := svc.CopyUpdate(ctx, testOwner, app.ID, false)
		require.NoError(t, err)
		assert.Contains(t, snippet, "Blocker(s): ")
		assert.Contains(t, snippet, "; ")
		assert.Contains(t, snippet, "....")
		assert.NotContains(t, snippet, "None")
	})

	t.Run("pending summary placeholder", func(t *testing.T) {
		bare, err := svc.Create(ctx, testOwner, CreateApplicationInput{Name: "Bare"})
		require.NoError(t, err)
		snippet, err := svc.CopyUpdate(ctx, testOwner, bare.ID, false)
		require.NoError(t, err)
		assert.Equal(t, "Bare — Intake (GREEN). Status update pending. Blocker(s): None.", snippet)
	})
}

func TestApplicationService_Update(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewApplicationService(client.Client)
	ctx := context.Background()

	app, err := svc.Create(ctx, testOwner, CreateApplicationInput{Name: "Acme ERP"})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, testOwner, app.ID, UpdateApplicationInput{
		Phase:          strPtr("build"),
		RAG:            strPtr("red"),
		PriorityWeight: intPtr(8),
		Keywords:       []string{"acme", "erp"},
	})
	require.NoError(t, err)
	assert.Equal(t, "build", updated.Phase.String())
	assert.Equal(t, "red", updated.Rag.String())
	assert.Equal(t, 8, updated.PriorityWeight)
	assert.Equal(t, []string{"acme", "erp"}, updated.Keywords)

	_, err = svc.Update(ctx, testOwner, app.ID, UpdateApplicationInput{PriorityWeight: intPtr(11)})
	require.Error(t, err)
	assert.True(t, IsValidationError(err))

	_, err = svc.Update(ctx, "owner-2", app.ID, UpdateApplicationInput{})
	assert.ErrorIs(t, err, ErrNotFound)
}
