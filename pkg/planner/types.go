// Package planner ranks an owner's open tasks into a daily plan: a single
// now/next pick, a short runway, a bounded queue, and directive exceptions.
// The engine is pure; loading tasks and persisting plans is the services
// layer's job.
package planner

import (
	"time"

	"github.com/missionctl/missionctl/pkg/priority"
)

// PlanSource tags every emitted plan with the engine revision.
const PlanSource = "planner_v1.1"

// Engine limits.
const (
	MaxTasks      = 1000
	QueueLimit    = 50
	Next3Limit    = 3
	ExceptionsCap = 10
)

// DefaultNextWindowMinutes is the execution window assumed for the now/next
// pick when configuration does not override it.
const DefaultNextWindowMinutes = 60

// Plan modes.
const (
	ModeToday = "today"
	ModeNow   = "now"
)

// Task is the engine's view of one open task.
type Task struct {
	ID                  string
	Title               string
	Status              string
	Type                string
	ApplicationID       string
	PriorityScore       float64
	EstimatedMinutes    int
	DueAt               *time.Time
	FollowUpAt          *time.Time
	Blocker             bool
	WaitingOn           string
	StakeholderMentions []string
	UpdatedAt           time.Time
}

// Directive is the single active focus directive, already gated for
// activity by the caller or by the engine's window check.
type Directive struct {
	ID         string
	ScopeType  string
	ScopeID    string
	ScopeValue string
	Strength   string
	IsActive   bool
	StartsAt   *time.Time
	EndsAt     *time.Time
}

// Inputs is everything one ranking pass needs.
type Inputs struct {
	PlanDate string
	Mode     string
	Now      time.Time

	Tasks []Task

	// Weights maps application id to priority_weight. Missing entries
	// default to 5. WeightsAvailable is false when the column itself is
	// absent; every task then ranks with a neutral multiplier.
	Weights          map[string]float64
	WeightsAvailable bool

	Directive *Directive

	HighPriorityStakeholders []string
	NextWindowMinutes        int
}

// RankedTask is one scored task in the plan.
type RankedTask struct {
	TaskID           string             `json:"taskId"`
	Title            string             `json:"title"`
	Rank             int                `json:"rank"`
	FinalScore       float64            `json:"finalScore"`
	SuggestedMinutes int                `json:"suggestedMinutes"`
	Mode             string             `json:"mode"`
	DirectiveMatch   bool               `json:"directiveMatch"`
	Breakdown        priority.Breakdown `json:"breakdown"`
}

// Exception is a non-matching task surfaced despite an active directive.
type Exception struct {
	TaskID     string  `json:"taskId"`
	Title      string  `json:"title"`
	Reason     string  `json:"reason"`
	FinalScore float64 `json:"finalScore"`
}

// Window is a candidate execution window. The engine currently emits a
// single stub window; concrete window selection from the calendar is a
// future extension.
type Window struct {
	Minutes int    `json:"minutes"`
	Label   string `json:"label"`
}

// Plan is the full ranking output for one (owner, date).
type Plan struct {
	PlanDate    string       `json:"planDate"`
	Source      string       `json:"source"`
	Mode        string       `json:"mode"`
	DirectiveID string       `json:"directiveId,omitempty"`
	NowNext     *RankedTask  `json:"nowNext"`
	Next3       []RankedTask `json:"next3"`
	Queue       []RankedTask `json:"queue"`
	Windows     []Window     `json:"windows"`
	Exceptions  []Exception  `json:"exceptions"`
}

// InputsSnapshot summarizes what the plan was computed from, persisted
// alongside it for reproducibility.
type InputsSnapshot struct {
	TaskCount         int       `json:"taskCount"`
	DirectiveID       string    `json:"directiveId,omitempty"`
	DirectiveStrength string    `json:"directiveStrength,omitempty"`
	WeightsAvailable  bool      `json:"weightsAvailable"`
	NextWindowMinutes int       `json:"nextWindowMinutes"`
	GeneratedAt       time.Time `json:"generatedAt"`
}

// Result bundles the plan with its snapshot and per-task reasons.
type Result struct {
	Plan     Plan
	Snapshot InputsSnapshot
	// Reasons maps task id to its score breakdown for every ranked task.
	Reasons map[string]priority.Breakdown
}
