package priority

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var testNow = time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

func baseContext() Context {
	return Context{
		Now:                      testNow,
		ImplementationMultiplier: 1,
		DirectiveMultiplier:      1,
	}
}

func tp(t time.Time) *time.Time { return &t }

func TestScore_PriorityBlendClamped(t *testing.T) {
	tests := []struct {
		name string
		base float64
		want float64
	}{
		{"in range", 40, 40},
		{"above cap", 150, 100},
		{"below floor", -10, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Score(TaskSignals{BasePriority: tt.base, Status: StatusPlanned, UpdatedAt: testNow}, baseContext())
			assert.Equal(t, tt.want, b.PriorityBlend)
		})
	}
}

func TestScore_UrgencyBoost(t *testing.T) {
	tests := []struct {
		name string
		due  *time.Time
		want float64
	}{
		{"no due", nil, 0},
		{"overdue", tp(testNow.Add(-time.Hour)), 25},
		{"due now", tp(testNow), 25},
		{"within 24h", tp(testNow.Add(12 * time.Hour)), 15},
		{"within 72h", tp(testNow.Add(48 * time.Hour)), 7},
		{"far out", tp(testNow.Add(200 * time.Hour)), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Score(TaskSignals{BasePriority: 50, Status: StatusPlanned, UpdatedAt: testNow, DueAt: tt.due}, baseContext())
			assert.Equal(t, tt.want, b.UrgencyBoost)
		})
	}
}

func TestScore_StakeholderBoost(t *testing.T) {
	b := Score(TaskSignals{
		BasePriority:        50,
		Status:              StatusPlanned,
		UpdatedAt:           testNow,
		StakeholderMentions: []string{"Nancy Whitfield"},
	}, baseContext())
	assert.Equal(t, 10.0, b.StakeholderBoost)

	b = Score(TaskSignals{
		BasePriority:        50,
		Status:              StatusPlanned,
		UpdatedAt:           testNow,
		StakeholderMentions: []string{"Someone Else"},
	}, baseContext())
	assert.Equal(t, 0.0, b.StakeholderBoost)
}

func TestScore_StakeholderBoost_CustomList(t *testing.T) {
	ctx := baseContext()
	ctx.HighPriorityStakeholders = []string{"priya"}

	b := Score(TaskSignals{
		BasePriority:        50,
		Status:              StatusPlanned,
		UpdatedAt:           testNow,
		StakeholderMentions: []string{"PRIYA R"},
	}, ctx)
	assert.Equal(t, 10.0, b.StakeholderBoost)

	// Custom list replaces, not extends, the default.
	b = Score(TaskSignals{
		BasePriority:        50,
		Status:              StatusPlanned,
		UpdatedAt:           testNow,
		StakeholderMentions: []string{"Nancy"},
	}, ctx)
	assert.Equal(t, 0.0, b.StakeholderBoost)
}

func TestScore_StalenessBoost(t *testing.T) {
	tests := []struct {
		name    string
		updated time.Time
		want    float64
	}{
		{"fresh", testNow.Add(-1 * time.Hour), 0},
		{"three days", testNow.Add(-80 * time.Hour), 3},
		{"a week", testNow.Add(-180 * time.Hour), 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Score(TaskSignals{BasePriority: 50, Status: StatusPlanned, UpdatedAt: tt.updated}, baseContext())
			assert.Equal(t, tt.want, b.StalenessBoost)
		})
	}
}

func TestScore_StatusAdjust(t *testing.T) {
	tests := []struct {
		name     string
		status   string
		followUp *time.Time
		want     float64
		wantDue  bool
	}{
		{"in progress", StatusInProgress, nil, 5, false},
		{"backlog", StatusBacklog, nil, -5, false},
		{"planned", StatusPlanned, nil, 0, false},
		{"blocked, no follow-up", StatusBlockedWaiting, nil, -15, false},
		{"blocked, follow-up later", StatusBlockedWaiting, tp(testNow.Add(time.Hour)), -15, false},
		{"blocked, follow-up due", StatusBlockedWaiting, tp(testNow.Add(-time.Hour)), 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Score(TaskSignals{
				BasePriority: 50,
				Status:       tt.status,
				UpdatedAt:    testNow,
				FollowUpAt:   tt.followUp,
			}, baseContext())
			assert.Equal(t, tt.want, b.StatusAdjust)
			assert.Equal(t, tt.wantDue, b.FollowUpDue)
		})
	}
}

func TestScore_Composition(t *testing.T) {
	ctx := baseContext()
	ctx.FitBonus = 5
	ctx.ImplementationMultiplier = 1.25
	ctx.DirectiveMultiplier = 1.6

	sig := TaskSignals{
		BasePriority:        40,
		Status:              StatusInProgress,
		UpdatedAt:           testNow.Add(-100 * time.Hour),
		DueAt:               tp(testNow.Add(10 * time.Hour)),
		StakeholderMentions: []string{"heath"},
	}

	b := Score(sig, ctx)

	// 40 + 15 + 10 + 3 + 5 + 5 = 78; 78 * 1.25 * 1.6 = 156.
	assert.Equal(t, 78.0, b.PreMultiplierScore)
	assert.Equal(t, 156.0, b.FinalScore)
}

func TestScore_FinalClampAndRounding(t *testing.T) {
	ctx := baseContext()
	ctx.ImplementationMultiplier = 1.8
	ctx.DirectiveMultiplier = 2.0

	b := Score(TaskSignals{
		BasePriority: 100,
		Status:       StatusInProgress,
		UpdatedAt:    testNow.Add(-200 * time.Hour),
		DueAt:        tp(testNow.Add(-time.Hour)),
	}, ctx)

	// 100+25+6+5 = 136; 136*3.6 = 489.6 → clamped to 300.
	assert.Equal(t, 300.0, b.FinalScore)

	ctx.ImplementationMultiplier = 0.95
	ctx.DirectiveMultiplier = 0.85
	b = Score(TaskSignals{BasePriority: 41, Status: StatusPlanned, UpdatedAt: testNow}, ctx)
	// 41 * 0.95 * 0.85 = 33.1075 → 33.11.
	assert.Equal(t, 33.11, b.FinalScore)
}

func TestScore_ZeroMultipliersDefaultToNeutral(t *testing.T) {
	b := Score(TaskSignals{BasePriority: 50, Status: StatusPlanned, UpdatedAt: testNow}, Context{Now: testNow})
	assert.Equal(t, 50.0, b.FinalScore)
}

func TestImplementationMultiplier(t *testing.T) {
	tests := []struct {
		weight float64
		want   float64
	}{
		{0, 0.6},
		{3, 0.9},
		{4.4, 0.95},
		{5, 1.0},
		{7, 1.25},
		{10, 1.8},
		{-2, 0.6},
		{14, 1.8},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ImplementationMultiplier(tt.weight), "weight %v", tt.weight)
	}
}

func TestIntakeBoosts(t *testing.T) {
	t.Run("due soon plus stakeholder", func(t *testing.T) {
		got := IntakeBoosts([]string{"Nancy"}, testNow.Add(6*time.Hour).Format(time.RFC3339), "Review contract", testNow)
		assert.Equal(t, 25.0, got) // 15 urgency + 10 stakeholder
	})

	t.Run("urgent title only", func(t *testing.T) {
		got := IntakeBoosts(nil, "", "URGENT: server down", testNow)
		assert.Equal(t, 5.0, got)
	})

	t.Run("date-only guess", func(t *testing.T) {
		got := IntakeBoosts(nil, testNow.Format("2006-01-02"), "Quarterly report", testNow)
		assert.Equal(t, 15.0, got) // due by end of day → within 24h
	})

	t.Run("unparseable guess ignored", func(t *testing.T) {
		got := IntakeBoosts(nil, "next Tuesday-ish", "Quarterly report", testNow)
		assert.Equal(t, 0.0, got)
	})
}
