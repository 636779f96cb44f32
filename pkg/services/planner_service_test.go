package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/missionctl/missionctl/pkg/calendar"
	"github.com/missionctl/missionctl/pkg/config"
	"github.com/missionctl/missionctl/pkg/planner"
	testdb "github.com/missionctl/missionctl/test/database"
)

func plannerFixture(t *testing.T) (*PlannerService, *TaskService, *ApplicationService, *FocusService) {
	return plannerFixtureIn(t, time.UTC)
}

func plannerFixtureIn(t *testing.T, loc *time.Location) (*PlannerService, *TaskService, *ApplicationService, *FocusService) {
	t.Helper()
	client := testdb.NewTestClient(t)
	focus := NewFocusService(client.Client)
	windowing := calendar.NewWindowing(loc, 8*60, 18*60)
	cfg := &config.PlannerConfig{
		HighPriorityStakeholders: []string{"nancy", "heath"},
		NextWindowMinutes:        60,
	}
	return NewPlannerService(client.Client, focus, windowing, cfg),
		NewTaskService(client.Client),
		NewApplicationService(client.Client),
		focus
}

func TestPlannerService_BuildPlan(t *testing.T) {
	svc, tasks, apps, _ := plannerFixture(t)
	ctx := context.Background()
	planDate := time.Now().UTC().Format("2006-01-02")

	app, err := apps.Create(ctx, testOwner, CreateApplicationInput{Name: "Acme ERP"})
	require.NoError(t, err)
	_, err = apps.Update(ctx, testOwner, app.ID, UpdateApplicationInput{PriorityWeight: intPtr(9)})
	require.NoError(t, err)

	_, err = tasks.Create(ctx, testOwner, CreateTaskInput{
		Title:         "Weighted work",
		ApplicationID: app.ID,
		PriorityScore: floatPtr(60),
	})
	require.NoError(t, err)
	_, err = tasks.Create(ctx, testOwner, CreateTaskInput{
		Title:         "Plain work",
		PriorityScore: floatPtr(60),
	})
	require.NoError(t, err)
	_, err = tasks.Create(ctx, testOwner, CreateTaskInput{
		Title:  "Finished work",
		Status: "done",
	})
	require.NoError(t, err)

	result, saved, err := svc.BuildPlan(ctx, testOwner, planDate, "")
	require.NoError(t, err)
	assert.True(t, saved)

	plan := result.Plan
	assert.Equal(t, planner.PlanSource, plan.Source)
	assert.Equal(t, planner.ModeToday, plan.Mode)
	require.NotNil(t, plan.NowNext)
	// The weight-9 application multiplies its task ahead of the plain one.
	assert.Equal(t, "Weighted work", plan.NowNext.Title)
	require.Len(t, plan.Queue, 2)
	assert.Equal(t, 1, plan.Queue[0].Rank)
	assert.NotContains(t,
		[]string{plan.Queue[0].Title, plan.Queue[1].Title}, "Finished work")
	assert.Len(t, result.Reasons, 2)

	t.Run("persists and reloads", func(t *testing.T) {
		stored, err := svc.Latest(ctx, testOwner, planDate)
		require.NoError(t, err)
		assert.Equal(t, planDate, stored.PlanDate)
		assert.Equal(t, planner.PlanSource, stored.Source)
		assert.NotEmpty(t, stored.PlanJSON)
		assert.NotEmpty(t, stored.ReasonsJSON)
	})

	t.Run("plans are append-only", func(t *testing.T) {
		_, _, err := svc.BuildPlan(ctx, testOwner, planDate, planner.ModeNow)
		require.NoError(t, err)
		count, err := svc.client.Plan.Query().Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, count)
	})

	t.Run("validates input", func(t *testing.T) {
		_, _, err := svc.BuildPlan(ctx, testOwner, "not-a-date", "")
		require.Error(t, err)
		assert.True(t, IsValidationError(err))

		_, _, err = svc.BuildPlan(ctx, testOwner, planDate, "yesterday")
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("latest for empty date", func(t *testing.T) {
		_, err := svc.Latest(ctx, testOwner, "1999-01-01")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

// An empty plan date resolves to today in the workday timezone, not UTC. The
// fixture zone sits a full day ahead of UTC for part of every day, so routing
// the default through the wrong clock would produce the wrong date.
func TestPlannerService_EmptyDateUsesWorkdayTimezone(t *testing.T) {
	loc := time.FixedZone("UTC+14", 14*3600)
	svc, tasks, _, _ := plannerFixtureIn(t, loc)
	ctx := context.Background()

	_, err := tasks.Create(ctx, testOwner, CreateTaskInput{Title: "Any work"})
	require.NoError(t, err)

	result, saved, err := svc.BuildPlan(ctx, testOwner, "", "")
	require.NoError(t, err)
	assert.True(t, saved)

	wantDate := time.Now().In(loc).Format("2006-01-02")
	assert.Equal(t, wantDate, result.Plan.PlanDate)

	stored, err := svc.Latest(ctx, testOwner, "")
	require.NoError(t, err)
	assert.Equal(t, wantDate, stored.PlanDate)
}

func TestPlannerService_DirectiveExceptions(t *testing.T) {
	svc, tasks, apps, focus := plannerFixture(t)
	ctx := context.Background()
	planDate := time.Now().UTC().Format("2006-01-02")

	app, err := apps.Create(ctx, testOwner, CreateApplicationInput{Name: "Acme ERP"})
	require.NoError(t, err)

	_, err = tasks.Create(ctx, testOwner, CreateTaskInput{
		Title:         "Matching task",
		ApplicationID: app.ID,
	})
	require.NoError(t, err)
	_, err = tasks.Create(ctx, testOwner, CreateTaskInput{
		Title: "Urgent elsewhere",
		DueAt: timePtr(time.Now().Add(6 * time.Hour)),
	})
	require.NoError(t, err)

	_, err = focus.Activate(ctx, testOwner, ActivateDirectiveInput{
		DirectiveText: "All in on Acme",
		ScopeType:     "application",
		ScopeID:       app.ID,
		Strength:      "hard",
	})
	require.NoError(t, err)

	result, _, err := svc.BuildPlan(ctx, testOwner, planDate, "")
	require.NoError(t, err)

	assert.NotEmpty(t, result.Plan.DirectiveID)
	require.Len(t, result.Plan.Exceptions, 1)
	assert.Equal(t, "Urgent elsewhere", result.Plan.Exceptions[0].Title)
	assert.Equal(t, "Due within 24 hours", result.Plan.Exceptions[0].Reason)
}
