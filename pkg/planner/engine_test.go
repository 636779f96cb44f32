package planner

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/missionctl/missionctl/pkg/models"
	"github.com/missionctl/missionctl/pkg/priority"
)

var planNow = time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)

func tp(t time.Time) *time.Time { return &t }

func baseInputs(tasks ...Task) Inputs {
	return Inputs{
		PlanDate:          "2026-03-10",
		Now:               planNow,
		Tasks:             tasks,
		Weights:           map[string]float64{},
		WeightsAvailable:  true,
		NextWindowMinutes: 60,
	}
}

func task(id string, prio float64, minutes int) Task {
	return Task{
		ID:               id,
		Title:            "Task " + id,
		Status:           priority.StatusPlanned,
		Type:             "task",
		PriorityScore:    prio,
		EstimatedMinutes: minutes,
		UpdatedAt:        planNow,
	}
}

func TestBuild_OrderingAndQueue(t *testing.T) {
	result := Build(baseInputs(
		task("low", 20, 30),
		task("high", 80, 30),
		task("mid", 50, 30),
	))

	plan := result.Plan
	require.NotNil(t, plan.NowNext)
	assert.Equal(t, "high", plan.NowNext.TaskID)
	require.Len(t, plan.Next3, 2)
	assert.Equal(t, "mid", plan.Next3[0].TaskID)
	assert.Equal(t, "low", plan.Next3[1].TaskID)

	require.Len(t, plan.Queue, 3)
	for i, ranked := range plan.Queue {
		assert.Equal(t, i+1, ranked.Rank)
	}
	assert.Equal(t, PlanSource, plan.Source)
	assert.Equal(t, ModeToday, plan.Mode)
	assert.Empty(t, plan.Exceptions)
}

func TestBuild_TieBreaksByDueThenTitle(t *testing.T) {
	a := task("a", 50, 30)
	a.Title = "Bravo"
	b := task("b", 50, 30)
	b.Title = "Alpha"
	c := task("c", 50, 30)
	c.Title = "Zulu"
	c.DueAt = tp(planNow.Add(48 * time.Hour)) // +7 urgency pushes c to the top

	result := Build(baseInputs(a, b, c))
	queue := result.Plan.Queue
	require.Len(t, queue, 3)
	assert.Equal(t, "c", queue[0].TaskID)
	assert.Equal(t, "Alpha", queue[1].Title)
	assert.Equal(t, "Bravo", queue[2].Title)
}

func TestBuild_DoneTasksExcluded(t *testing.T) {
	done := task("done", 99, 30)
	done.Status = priority.StatusDone

	result := Build(baseInputs(done, task("open", 10, 30)))
	require.Len(t, result.Plan.Queue, 1)
	assert.Equal(t, "open", result.Plan.Queue[0].TaskID)
	assert.NotContains(t, result.Reasons, "done")
}

func TestBuild_NowNextPrefersWindowFit(t *testing.T) {
	big := task("big", 90, 180)
	small := task("small", 50, 45)

	result := Build(baseInputs(big, small))
	require.NotNil(t, result.Plan.NowNext)
	assert.Equal(t, "small", result.Plan.NowNext.TaskID)
	// The oversized top scorer still leads the queue.
	assert.Equal(t, "big", result.Plan.Queue[0].TaskID)
	assert.Contains(t, result.Plan.Next3[0].TaskID, "big")
}

func TestBuild_NowNextFallsBackToTopScorer(t *testing.T) {
	result := Build(baseInputs(task("only", 60, 240)))
	require.NotNil(t, result.Plan.NowNext)
	assert.Equal(t, "only", result.Plan.NowNext.TaskID)
}

func TestBuild_SuggestedMinutesAndMode(t *testing.T) {
	result := Build(baseInputs(task("deep", 50, 120), task("prep", 40, 10)))

	byID := map[string]RankedTask{}
	for _, r := range result.Plan.Queue {
		byID[r.TaskID] = r
	}
	assert.Equal(t, 60, byID["deep"].SuggestedMinutes)
	assert.Equal(t, "deep", byID["deep"].Mode)
	assert.Equal(t, 10, byID["prep"].SuggestedMinutes)
	assert.Equal(t, "prep", byID["prep"].Mode)
}

func TestBuild_QueueCapped(t *testing.T) {
	tasks := make([]Task, 60)
	for i := range tasks {
		tasks[i] = task(fmt.Sprintf("t%02d", i), float64(i), 30)
	}
	result := Build(baseInputs(tasks...))
	assert.Len(t, result.Plan.Queue, QueueLimit)
	assert.Equal(t, 60, result.Snapshot.TaskCount)
}

func TestBuild_ImplementationWeights(t *testing.T) {
	weighted := task("weighted", 50, 30)
	weighted.ApplicationID = "app-1"
	neutral := task("neutral", 50, 30)

	in := baseInputs(weighted, neutral)
	in.Weights = map[string]float64{"app-1": 9}

	result := Build(in)
	// weight 9 → ×1.6 beats the default weight 5 → ×1.0.
	assert.Equal(t, "weighted", result.Plan.Queue[0].TaskID)

	// Column missing: every task ranks neutral regardless of weights.
	in.WeightsAvailable = false
	result = Build(in)
	assert.Equal(t, result.Plan.Queue[0].FinalScore, result.Plan.Queue[1].FinalScore)
	assert.False(t, result.Snapshot.WeightsAvailable)
}

func TestBuild_DirectiveFocus(t *testing.T) {
	// Scenario: A matches the application directive, B does not.
	a := task("a", 40, 30)
	a.ApplicationID = "app-x"
	a.DueAt = tp(planNow.Add(12 * time.Hour))
	b := task("b", 50, 30)
	b.StakeholderMentions = []string{"Nancy"}

	in := baseInputs(a, b)
	in.Directive = &Directive{
		ID:        "dir-1",
		ScopeType: models.ScopeApplication,
		ScopeID:   "app-x",
		Strength:  models.StrengthStrong,
		IsActive:  true,
	}

	result := Build(in)
	plan := result.Plan
	require.NotNil(t, plan.NowNext)
	assert.Equal(t, "a", plan.NowNext.TaskID)
	assert.Equal(t, "dir-1", plan.DirectiveID)

	// a: (40+15+5)×1.6 = 96; b: (50+10+5)×0.85 = 55.25.
	assert.Equal(t, 96.0, result.Reasons["a"].FinalScore)
	assert.Equal(t, 55.25, result.Reasons["b"].FinalScore)
	assert.True(t, plan.NowNext.DirectiveMatch)

	// b is not due within 24h and not blocked: no exception.
	assert.Empty(t, plan.Exceptions)
}

func TestBuild_Exceptions(t *testing.T) {
	dueSoon := task("due-soon", 50, 30)
	dueSoon.DueAt = tp(planNow.Add(6 * time.Hour))

	blocked := task("blocked", 50, 30)
	blocked.Status = priority.StatusBlockedWaiting
	blocked.Blocker = true
	blocked.FollowUpAt = tp(planNow.Add(-time.Hour))
	blocked.DueAt = tp(planNow.Add(2 * time.Hour))

	farOut := task("far-out", 50, 30)
	farOut.DueAt = tp(planNow.Add(96 * time.Hour))

	matching := task("matching", 50, 30)
	matching.ApplicationID = "app-x"
	matching.DueAt = tp(planNow.Add(time.Hour))

	in := baseInputs(dueSoon, blocked, farOut, matching)
	in.Directive = &Directive{
		ID:        "dir-1",
		ScopeType: models.ScopeApplication,
		ScopeID:   "app-x",
		Strength:  models.StrengthHard,
		IsActive:  true,
	}

	result := Build(in)
	exceptions := result.Plan.Exceptions
	require.Len(t, exceptions, 2)

	byID := map[string]Exception{}
	for _, e := range exceptions {
		byID[e.TaskID] = e
	}
	assert.Equal(t, "Due within 24 hours", byID["due-soon"].Reason)
	assert.Equal(t, "Blocked and follow-up is due", byID["blocked"].Reason)
	assert.NotContains(t, byID, "far-out")
	assert.NotContains(t, byID, "matching")
}

func TestBuild_ExceptionsCapped(t *testing.T) {
	tasks := make([]Task, 15)
	for i := range tasks {
		tk := task(fmt.Sprintf("t%02d", i), 50, 30)
		tk.DueAt = tp(planNow.Add(time.Hour))
		tasks[i] = tk
	}
	in := baseInputs(tasks...)
	in.Directive = &Directive{
		ID:        "dir-1",
		ScopeType: models.ScopeApplication,
		ScopeID:   "app-none",
		Strength:  models.StrengthNudge,
		IsActive:  true,
	}

	result := Build(in)
	assert.Len(t, result.Plan.Exceptions, ExceptionsCap)
}

func TestBuild_DirectiveWindowGating(t *testing.T) {
	tk := task("t", 50, 30)
	tk.ApplicationID = "app-x"

	expired := &Directive{
		ID:        "dir-1",
		ScopeType: models.ScopeApplication,
		ScopeID:   "app-x",
		Strength:  models.StrengthHard,
		IsActive:  true,
		EndsAt:    tp(planNow.Add(-time.Hour)),
	}
	in := baseInputs(tk)
	in.Directive = expired

	result := Build(in)
	assert.Empty(t, result.Plan.DirectiveID)
	assert.Equal(t, 55.0, result.Reasons["t"].FinalScore) // 50+5 fit, no multiplier
}

func TestDirectiveMatches(t *testing.T) {
	tk := Task{
		Type:                "meeting_prep",
		ApplicationID:       "app-1",
		StakeholderMentions: []string{"Nancy Whitfield"},
	}

	tests := []struct {
		name      string
		directive Directive
		want      bool
	}{
		{"application match", Directive{ScopeType: models.ScopeApplication, ScopeID: "app-1"}, true},
		{"application miss", Directive{ScopeType: models.ScopeApplication, ScopeID: "app-2"}, false},
		{"stakeholder substring", Directive{ScopeType: models.ScopeStakeholder, ScopeValue: "nancy"}, true},
		{"stakeholder miss", Directive{ScopeType: models.ScopeStakeholder, ScopeValue: "heath"}, false},
		{"task type exact", Directive{ScopeType: models.ScopeTaskType, ScopeValue: "Meeting_Prep"}, true},
		{"query never matches", Directive{ScopeType: models.ScopeQuery, ScopeValue: "anything"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, directiveMatches(&tt.directive, tk))
		})
	}
}
