// Package priority implements the pure scoring kernel used by the planner
// and the intake pipeline. Everything here is deterministic and free of I/O:
// the same signals and context always produce the same breakdown.
package priority

import (
	"math"
	"strings"
	"time"
)

// Task status values as the kernel sees them. Kept as plain strings so the
// kernel stays decoupled from the persistence layer.
const (
	StatusBacklog        = "backlog"
	StatusPlanned        = "planned"
	StatusInProgress     = "in_progress"
	StatusBlockedWaiting = "blocked_waiting"
	StatusDone           = "done"
)

// Score bounds.
const (
	MaxBaseScore  = 100.0
	MaxFinalScore = 300.0
)

// DefaultHighPriorityStakeholders are matched when the planner context does
// not supply its own list.
var DefaultHighPriorityStakeholders = []string{"nancy", "heath"}

// TaskSignals are the per-task inputs to the kernel.
type TaskSignals struct {
	BasePriority        float64
	DueAt               *time.Time
	FollowUpAt          *time.Time
	Blocker             bool
	Status              string
	UpdatedAt           time.Time
	StakeholderMentions []string
}

// Context carries the planner-level inputs shared across tasks in one
// scoring pass.
type Context struct {
	Now                      time.Time
	HighPriorityStakeholders []string

	// FitBonus is +5 when the task fits the next execution window, -10
	// otherwise. The planner computes it per task.
	FitBonus float64

	// ImplementationMultiplier comes from the portfolio weight table.
	ImplementationMultiplier float64

	// DirectiveMultiplier comes from the active focus directive (1.0 when
	// none is active).
	DirectiveMultiplier float64
}

// Breakdown is the reproducible decomposition of a task's score.
type Breakdown struct {
	PriorityBlend      float64 `json:"priorityBlend"`
	UrgencyBoost       float64 `json:"urgencyBoost"`
	StakeholderBoost   float64 `json:"stakeholderBoost"`
	StalenessBoost     float64 `json:"stalenessBoost"`
	StatusAdjust       float64 `json:"statusAdjust"`
	FitBonus           float64 `json:"fitBonus"`
	FollowUpDue        bool    `json:"followUpDue"`
	PreMultiplierScore float64 `json:"preMultiplierScore"`
	FinalScore         float64 `json:"finalScore"`
}

// Score computes the full breakdown for one task.
func Score(sig TaskSignals, ctx Context) Breakdown {
	b := Breakdown{
		PriorityBlend: clamp(sig.BasePriority, 0, MaxBaseScore),
		FitBonus:      ctx.FitBonus,
	}

	b.UrgencyBoost = urgencyBoost(sig.DueAt, ctx.Now)
	b.StakeholderBoost = stakeholderBoost(sig.StakeholderMentions, ctx.highPriority())
	b.StalenessBoost = stalenessBoost(sig.UpdatedAt, ctx.Now)
	b.FollowUpDue = sig.Status == StatusBlockedWaiting &&
		sig.FollowUpAt != nil && !sig.FollowUpAt.After(ctx.Now)
	b.StatusAdjust = statusAdjust(sig.Status, b.FollowUpDue)

	b.PreMultiplierScore = b.PriorityBlend + b.UrgencyBoost + b.StakeholderBoost +
		b.StalenessBoost + b.StatusAdjust + b.FitBonus

	impl := ctx.ImplementationMultiplier
	if impl == 0 {
		impl = 1
	}
	dir := ctx.DirectiveMultiplier
	if dir == 0 {
		dir = 1
	}

	b.FinalScore = round2(clamp(b.PreMultiplierScore*impl*dir, 0, MaxFinalScore))
	return b
}

func (c Context) highPriority() []string {
	if len(c.HighPriorityStakeholders) > 0 {
		return c.HighPriorityStakeholders
	}
	return DefaultHighPriorityStakeholders
}

// urgencyBoost steps with time-to-due: overdue +25, within 24h +15, within
// 72h +7. Capped at +25 by construction.
func urgencyBoost(dueAt *time.Time, now time.Time) float64 {
	if dueAt == nil {
		return 0
	}
	until := dueAt.Sub(now)
	switch {
	case until <= 0:
		return 25
	case until <= 24*time.Hour:
		return 15
	case until <= 72*time.Hour:
		return 7
	default:
		return 0
	}
}

// stakeholderBoost is +10 when any mention contains a high-priority
// stakeholder, case-insensitively.
func stakeholderBoost(mentions, highPriority []string) float64 {
	for _, mention := range mentions {
		lower := strings.ToLower(mention)
		for _, vip := range highPriority {
			if strings.Contains(lower, strings.ToLower(vip)) {
				return 10
			}
		}
	}
	return 0
}

// stalenessBoost nudges long-untouched tasks back up: a week or more +6,
// three days or more +3.
func stalenessBoost(updatedAt, now time.Time) float64 {
	hours := now.Sub(updatedAt).Hours()
	switch {
	case hours >= 168:
		return 6
	case hours >= 72:
		return 3
	default:
		return 0
	}
}

func statusAdjust(status string, followUpDue bool) float64 {
	switch status {
	case StatusInProgress:
		return 5
	case StatusBlockedWaiting:
		if followUpDue {
			// Follow-up is due: no penalty, task is exception-eligible.
			return 0
		}
		return -15
	case StatusBacklog:
		return -5
	default:
		return 0
	}
}

// Clip bounds v into [lo, hi].
func Clip(v, lo, hi float64) float64 {
	return clamp(v, lo, hi)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
