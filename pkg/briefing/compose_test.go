package briefing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/missionctl/missionctl/pkg/calendar"
	"github.com/missionctl/missionctl/pkg/planner"
	"github.com/missionctl/missionctl/pkg/priority"
)

func etLoc(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	return loc
}

// etTime builds an instant from a local New York wall clock.
func etTime(t *testing.T, y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, etLoc(t))
}

func tpb(t time.Time) *time.Time { return &t }

func TestResolveMode(t *testing.T) {
	loc := etLoc(t)
	tests := []struct {
		hour int
		want string
	}{
		{8, ModeMorning},
		{11, ModeMorning},
		{12, ModeMidday},
		{14, ModeMidday},
		{15, ModeEOD},
		{20, ModeEOD},
	}
	for _, tt := range tests {
		now := etTime(t, 2026, 3, 10, tt.hour, 0)
		assert.Equal(t, tt.want, ResolveMode(ModeAuto, now, loc), "hour %d", tt.hour)
	}

	// Explicit modes pass through untouched.
	now := etTime(t, 2026, 3, 10, 8, 0)
	assert.Equal(t, ModeEOD, ResolveMode(ModeEOD, now, loc))
}

func briefingInput(t *testing.T, mode string, hour int) ComposeInput {
	return ComposeInput{
		RequestedDate:  "2026-03-10",
		Mode:           mode,
		Now:            etTime(t, 2026, 3, 10, hour, 0),
		Location:       etLoc(t),
		WorkdayMinutes: 510,
	}
}

func TestCompose_TaskPartition(t *testing.T) {
	in := briefingInput(t, ModeMorning, 9)
	dayUpdated := etTime(t, 2026, 3, 10, 8, 30)
	in.Tasks = []planner.Task{
		{ID: "p1", Title: "Planned", Status: priority.StatusPlanned, EstimatedMinutes: 60, UpdatedAt: dayUpdated},
		{ID: "p2", Title: "Started", Status: priority.StatusInProgress, EstimatedMinutes: 30, UpdatedAt: dayUpdated},
		{ID: "d1", Title: "Done today", Status: priority.StatusDone, EstimatedMinutes: 45, UpdatedAt: dayUpdated},
		{ID: "d2", Title: "Done last week", Status: priority.StatusDone, EstimatedMinutes: 45, UpdatedAt: dayUpdated.AddDate(0, 0, -7)},
		{ID: "b1", Title: "Backlog", Status: priority.StatusBacklog, EstimatedMinutes: 15, UpdatedAt: dayUpdated},
	}

	b := Compose(in)
	today := b.Today

	ids := func(tasks []TaskSummary) []string {
		out := make([]string, len(tasks))
		for i, task := range tasks {
			out[i] = task.ID
		}
		return out
	}
	assert.ElementsMatch(t, []string{"p1", "p2"}, ids(today.Planned))
	assert.ElementsMatch(t, []string{"d1"}, ids(today.Completed))
	assert.ElementsMatch(t, []string{"p1", "p2", "b1"}, ids(today.Remaining))

	// 45 completed vs 105 remaining → round(100×45/150) = 30.
	assert.Equal(t, 1, today.Progress.CompletedCount)
	assert.Equal(t, 4, today.Progress.TotalCount)
	assert.Equal(t, 30, today.Progress.PercentComplete)
}

func TestCompose_Capacity(t *testing.T) {
	in := briefingInput(t, ModeMorning, 9)
	in.TodayStats = calendar.DayStats{BusyMinutes: 120}
	in.Tasks = []planner.Task{
		{ID: "p1", Title: "A", Status: priority.StatusPlanned, EstimatedMinutes: 60, UpdatedAt: in.Now},
		{ID: "p2", Title: "B", Status: priority.StatusPlanned, EstimatedMinutes: 120, UpdatedAt: in.Now},
	}

	b := Compose(in)
	cap := b.Today.Capacity
	// 510 − 30 lunch − 30 overhead − 120 meetings − 2×5 buffer = 320.
	assert.Equal(t, 320, cap.AvailableMinutes)
	assert.Equal(t, 180, cap.RequiredMinutes)
	assert.Equal(t, "Green", cap.RAG) // 180 ≤ 0.8×320

	in.Tasks = append(in.Tasks, planner.Task{
		ID: "p3", Title: "C", Status: priority.StatusPlanned, EstimatedMinutes: 120, UpdatedAt: in.Now,
	})
	b = Compose(in)
	assert.Equal(t, "Yellow", b.Today.Capacity.RAG) // 300 ≤ 1.1×315

	in.Tasks = append(in.Tasks, planner.Task{
		ID: "p4", Title: "D", Status: priority.StatusPlanned, EstimatedMinutes: 180, UpdatedAt: in.Now,
	})
	b = Compose(in)
	assert.Equal(t, "Red", b.Today.Capacity.RAG)
}

func TestCompose_TomorrowOnlyForEOD(t *testing.T) {
	morning := Compose(briefingInput(t, ModeMorning, 9))
	assert.Nil(t, morning.Tomorrow)

	eod := Compose(briefingInput(t, ModeEOD, 17))
	assert.NotNil(t, eod.Tomorrow)
}

func TestCompose_RolledOver(t *testing.T) {
	in := briefingInput(t, ModeEOD, 17)
	in.Tasks = []planner.Task{
		{ID: "due", Title: "Due today", Status: priority.StatusBacklog, EstimatedMinutes: 30,
			DueAt: tpb(etTime(t, 2026, 3, 10, 16, 0)), UpdatedAt: in.Now},
		{ID: "hot", Title: "High priority", Status: priority.StatusInProgress, EstimatedMinutes: 30,
			PriorityScore: 85, UpdatedAt: in.Now},
		{ID: "hot-backlog", Title: "High but backlog", Status: priority.StatusBacklog, EstimatedMinutes: 30,
			PriorityScore: 85, UpdatedAt: in.Now},
		{ID: "done", Title: "Done", Status: priority.StatusDone, EstimatedMinutes: 30,
			DueAt: tpb(etTime(t, 2026, 3, 10, 16, 0)), UpdatedAt: in.Now},
		{ID: "later", Title: "Due next week", Status: priority.StatusPlanned, EstimatedMinutes: 30,
			DueAt: tpb(etTime(t, 2026, 3, 17, 16, 0)), UpdatedAt: in.Now},
	}

	b := Compose(in)
	require.NotNil(t, b.Tomorrow)
	ids := make([]string, 0)
	for _, task := range b.Tomorrow.RolledOver {
		ids = append(ids, task.ID)
	}
	assert.ElementsMatch(t, []string{"due", "hot"}, ids)
}

func TestFindPrepTasks(t *testing.T) {
	loc := etLoc(t)
	tomorrowEvents := []calendar.Event{
		{Title: "Acme Steering Committee", StartAt: etTime(t, 2026, 3, 11, 10, 0), EndAt: etTime(t, 2026, 3, 11, 11, 0)},
		{Title: "Weekly portfolio sync", StartAt: etTime(t, 2026, 3, 11, 14, 0), EndAt: etTime(t, 2026, 3, 11, 14, 30)},
	}
	tasks := []planner.Task{
		{ID: "prep-matched", Title: "Prep for Acme steering deck", Type: "meeting_prep", Status: priority.StatusPlanned, EstimatedMinutes: 30},
		{ID: "prep-floating", Title: "Prepare talking points", Type: "meeting_prep", Status: priority.StatusPlanned, EstimatedMinutes: 30},
		{ID: "title-match", Title: "Draft Acme committee agenda", Type: "task", Status: priority.StatusBacklog, EstimatedMinutes: 30},
		{ID: "big-due", Title: "Finish migration runbook", Type: "task", Status: priority.StatusPlanned, EstimatedMinutes: 90,
			DueAt: tpb(etTime(t, 2026, 3, 11, 12, 0))},
		{ID: "small-due", Title: "Send invoice", Type: "task", Status: priority.StatusPlanned, EstimatedMinutes: 15,
			DueAt: tpb(etTime(t, 2026, 3, 11, 12, 0))},
		{ID: "done", Title: "Acme steering summary", Type: "meeting_prep", Status: priority.StatusDone, EstimatedMinutes: 30},
		{ID: "unrelated", Title: "Clean up backlog labels", Type: "task", Status: priority.StatusBacklog, EstimatedMinutes: 20},
	}

	prep := findPrepTasks(tasks, tomorrowEvents, "2026-03-10", loc)

	reasons := map[string]string{}
	for _, p := range prep {
		reasons[p.Task.ID] = p.Reason
	}
	assert.Equal(t, `Prepares for "Acme Steering Committee"`, reasons["prep-matched"])
	assert.Equal(t, "Meeting preparation task", reasons["prep-floating"])
	assert.Equal(t, `Related to "Acme Steering Committee"`, reasons["title-match"])
	assert.Equal(t, "Large task due tomorrow", reasons["big-due"])
	assert.NotContains(t, reasons, "small-due")
	assert.NotContains(t, reasons, "done")
	assert.NotContains(t, reasons, "unrelated")
}

func TestTokenize(t *testing.T) {
	assert.Equal(t, []string{"acme", "steering", "deck"}, tokenize("Prep for Acme Steering deck!"))
	assert.Empty(t, tokenize("Weekly sync meeting"))
}
