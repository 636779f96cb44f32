package api

import (
	"github.com/missionctl/missionctl/ent"
	"github.com/missionctl/missionctl/pkg/database"
	"github.com/missionctl/missionctl/pkg/planner"
	"github.com/missionctl/missionctl/pkg/priority"
)

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status   string                 `json:"status"`
	Version  string                 `json:"version"`
	Database *database.HealthStatus `json:"database"`
}

// PlanResponse is returned by POST /api/v1/planner/plan.
type PlanResponse struct {
	Plan     planner.Plan                  `json:"plan"`
	Snapshot planner.InputsSnapshot        `json:"inputs_snapshot"`
	Reasons  map[string]priority.Breakdown `json:"reasons"`
	Saved    bool                          `json:"saved"`
}

// CopyUpdateResponse is returned by POST /api/v1/implementations/:id/copy-update.
type CopyUpdateResponse struct {
	Text string `json:"text"`
}

// ClearFocusResponse is returned by POST /api/v1/focus/clear.
type ClearFocusResponse struct {
	Cleared int `json:"cleared"`
}

// IntakeResponse is returned by POST /api/v1/intake/email. Duplicates carry
// an explanatory message and the original inbox item id.
type IntakeResponse struct {
	InboxItemID string         `json:"inbox_item_id"`
	InboxItem   *ent.InboxItem `json:"inbox_item"`
	Task        *ent.Task      `json:"task,omitempty"`
	Duplicate   bool           `json:"duplicate"`
	Message     string         `json:"message,omitempty"`
}
