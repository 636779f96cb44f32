package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/missionctl/missionctl/ent/task"
	testdb "github.com/missionctl/missionctl/test/database"
)

const testOwner = "owner-1"

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func strPtr(v string) *string { return &v }

func boolPtr(v bool) *bool { return &v }

func timePtr(v time.Time) *time.Time { return &v }

func TestTaskService_Create(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewTaskService(client.Client)
	ctx := context.Background()

	t.Run("creates task with defaults", func(t *testing.T) {
		created, err := svc.Create(ctx, testOwner, CreateTaskInput{Title: "Write status report"})
		require.NoError(t, err)
		assert.Equal(t, "Write status report", created.Title)
		assert.Equal(t, task.StatusBacklog, created.Status)
		assert.Equal(t, task.TaskTypeTask, created.TaskType)
		assert.Equal(t, 50.0, created.PriorityScore)
		assert.Equal(t, 30, created.EstimatedMinutes)
		assert.Equal(t, task.EstimateSourceDefault, created.EstimateSource)
	})

	t.Run("manual estimate flips estimate source", func(t *testing.T) {
		created, err := svc.Create(ctx, testOwner, CreateTaskInput{
			Title:            "Size the migration",
			EstimatedMinutes: intPtr(90),
		})
		require.NoError(t, err)
		assert.Equal(t, 90, created.EstimatedMinutes)
		assert.Equal(t, task.EstimateSourceManual, created.EstimateSource)
	})

	t.Run("validates input", func(t *testing.T) {
		tests := []struct {
			name  string
			input CreateTaskInput
		}{
			{"missing title", CreateTaskInput{}},
			{"bad status", CreateTaskInput{Title: "x", Status: "sleeping"}},
			{"bad task type", CreateTaskInput{Title: "x", TaskType: "chore"}},
			{"priority out of range", CreateTaskInput{Title: "x", PriorityScore: floatPtr(150)}},
			{"estimate out of range", CreateTaskInput{Title: "x", EstimatedMinutes: intPtr(999)}},
			{"unknown application", CreateTaskInput{Title: "x", ApplicationID: "nope"}},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := svc.Create(ctx, testOwner, tt.input)
				require.Error(t, err)
				assert.True(t, IsValidationError(err))
			})
		}
	})
}

func TestTaskService_GetAndOwnerScoping(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewTaskService(client.Client)
	ctx := context.Background()

	created, err := svc.Create(ctx, testOwner, CreateTaskInput{Title: "Scoped"})
	require.NoError(t, err)

	got, err := svc.Get(ctx, testOwner, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	// Another owner's lookup behaves like the task does not exist.
	_, err = svc.Get(ctx, "owner-2", created.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Get(ctx, testOwner, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTaskService_List(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewTaskService(client.Client)
	ctx := context.Background()

	mk := func(input CreateTaskInput) {
		t.Helper()
		_, err := svc.Create(ctx, testOwner, input)
		require.NoError(t, err)
	}
	mk(CreateTaskInput{Title: "Open A"})
	mk(CreateTaskInput{Title: "Open B", Status: "in_progress"})
	mk(CreateTaskInput{Title: "Finished", Status: "done"})
	mk(CreateTaskInput{Title: "Due soon", DueAt: timePtr(time.Now().Add(2 * time.Hour))})

	t.Run("excludes done by default", func(t *testing.T) {
		tasks, err := svc.List(ctx, testOwner, ListTasksInput{})
		require.NoError(t, err)
		assert.Len(t, tasks, 3)
	})

	t.Run("include done", func(t *testing.T) {
		tasks, err := svc.List(ctx, testOwner, ListTasksInput{IncludeDone: true})
		require.NoError(t, err)
		assert.Len(t, tasks, 4)
	})

	t.Run("status filter", func(t *testing.T) {
		tasks, err := svc.List(ctx, testOwner, ListTasksInput{Status: "in_progress"})
		require.NoError(t, err)
		require.Len(t, tasks, 1)
		assert.Equal(t, "Open B", tasks[0].Title)
	})

	t.Run("due before filter", func(t *testing.T) {
		due := time.Now().Add(24 * time.Hour)
		tasks, err := svc.List(ctx, testOwner, ListTasksInput{DueBefore: &due})
		require.NoError(t, err)
		require.Len(t, tasks, 1)
		assert.Equal(t, "Due soon", tasks[0].Title)
	})

	t.Run("other owner sees nothing", func(t *testing.T) {
		tasks, err := svc.List(ctx, "owner-2", ListTasksInput{})
		require.NoError(t, err)
		assert.Empty(t, tasks)
	})
}

func TestTaskService_Update(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewTaskService(client.Client)
	ctx := context.Background()

	created, err := svc.Create(ctx, testOwner, CreateTaskInput{
		Title: "Original",
		DueAt: timePtr(time.Now().Add(48 * time.Hour)),
	})
	require.NoError(t, err)

	t.Run("applies whitelist", func(t *testing.T) {
		updated, err := svc.Update(ctx, testOwner, created.ID, UpdateTaskInput{
			Title:            strPtr("Renamed"),
			Status:           strPtr("blocked_waiting"),
			WaitingOn:        strPtr("vendor response"),
			FollowUpAt:       timePtr(time.Now().Add(24 * time.Hour)),
			EstimatedMinutes: intPtr(45),
		})
		require.NoError(t, err)
		assert.Equal(t, "Renamed", updated.Title)
		assert.Equal(t, task.StatusBlockedWaiting, updated.Status)
		require.NotNil(t, updated.WaitingOn)
		assert.Equal(t, "vendor response", *updated.WaitingOn)
		assert.Equal(t, task.EstimateSourceManual, updated.EstimateSource)
	})

	t.Run("clears due date", func(t *testing.T) {
		updated, err := svc.Update(ctx, testOwner, created.ID, UpdateTaskInput{ClearDueAt: true})
		require.NoError(t, err)
		assert.Nil(t, updated.DueAt)
	})

	t.Run("review flag and estimate source", func(t *testing.T) {
		updated, err := svc.Update(ctx, testOwner, created.ID, UpdateTaskInput{
			NeedsReview:    boolPtr(true),
			EstimateSource: strPtr("llm"),
		})
		require.NoError(t, err)
		assert.True(t, updated.NeedsReview)
		assert.Equal(t, task.EstimateSourceLlm, updated.EstimateSource)
	})

	t.Run("rejects invalid patch", func(t *testing.T) {
		_, err := svc.Update(ctx, testOwner, created.ID, UpdateTaskInput{Status: strPtr("paused")})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))

		_, err = svc.Update(ctx, testOwner, created.ID, UpdateTaskInput{EstimateSource: strPtr("guess")})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("cross-owner update is not found", func(t *testing.T) {
		_, err := svc.Update(ctx, "owner-2", created.ID, UpdateTaskInput{Title: strPtr("hijack")})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

// The stored score is the scoring kernel's base input: edits that would move
// a derived score (an imminent due date, a status change) must leave it
// exactly as supplied, so plan snapshots replay against their real inputs.
func TestTaskService_StoredScoreIsKernelBaseInput(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewTaskService(client.Client)
	ctx := context.Background()

	created, err := svc.Create(ctx, testOwner, CreateTaskInput{
		Title:         "Scored work",
		PriorityScore: floatPtr(42),
		DueAt:         timePtr(time.Now().Add(30 * 24 * time.Hour)),
	})
	require.NoError(t, err)
	assert.Equal(t, 42.0, created.PriorityScore)

	updated, err := svc.Update(ctx, testOwner, created.ID, UpdateTaskInput{
		DueAt: timePtr(time.Now().Add(2 * time.Hour)),
	})
	require.NoError(t, err)
	assert.Equal(t, 42.0, updated.PriorityScore)

	updated, err = svc.Update(ctx, testOwner, created.ID, UpdateTaskInput{
		Status: strPtr("in_progress"),
	})
	require.NoError(t, err)
	assert.Equal(t, 42.0, updated.PriorityScore)
}

func TestTaskService_DeleteCascadesChecklist(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewTaskService(client.Client)
	ctx := context.Background()

	created, err := svc.Create(ctx, testOwner, CreateTaskInput{Title: "With checklist"})
	require.NoError(t, err)

	_, err = client.ChecklistItem.Create().
		SetID("cl-1").
		SetOwnerID(testOwner).
		SetTaskID(created.ID).
		SetLabel("step one").
		Save(ctx)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, testOwner, created.ID))

	_, err = svc.Get(ctx, testOwner, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	items, err := client.ChecklistItem.Query().All(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestTaskService_Checklist(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewTaskService(client.Client)
	ctx := context.Background()

	created, err := svc.Create(ctx, testOwner, CreateTaskInput{Title: "Checklist host"})
	require.NoError(t, err)
	for i, label := range []string{"first", "second"} {
		_, err := client.ChecklistItem.Create().
			SetID(label).
			SetOwnerID(testOwner).
			SetTaskID(created.ID).
			SetLabel(label).
			SetSortOrder(i).
			Save(ctx)
		require.NoError(t, err)
	}

	items, err := svc.Checklist(ctx, testOwner, created.ID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "first", items[0].Label)

	toggled, err := svc.SetChecklistItemDone(ctx, testOwner, items[0].ID, true)
	require.NoError(t, err)
	assert.True(t, toggled.Done)
}
