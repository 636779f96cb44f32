package api

import (
	"time"

	"github.com/missionctl/missionctl/pkg/briefing"
)

// CreateTaskRequest is the HTTP request body for POST /api/v1/tasks.
type CreateTaskRequest struct {
	Title               string     `json:"title"`
	Description         string     `json:"description,omitempty"`
	ApplicationID       string     `json:"application_id,omitempty"`
	ProjectID           string     `json:"project_id,omitempty"`
	Status              string     `json:"status,omitempty"`
	TaskType            string     `json:"task_type,omitempty"`
	PriorityScore       *float64   `json:"priority_score,omitempty"`
	EstimatedMinutes    *int       `json:"estimated_minutes,omitempty"`
	DueAt               *time.Time `json:"due_at,omitempty"`
	Blocker             bool       `json:"blocker,omitempty"`
	WaitingOn           string     `json:"waiting_on,omitempty"`
	FollowUpAt          *time.Time `json:"follow_up_at,omitempty"`
	StakeholderMentions []string   `json:"stakeholder_mentions,omitempty"`
	SourceType          string     `json:"source_type,omitempty"`
	SourceURL           string     `json:"source_url,omitempty"`
	PinnedExcerpt       string     `json:"pinned_excerpt,omitempty"`
}

// UpdateTaskRequest is the HTTP request body for PATCH /api/v1/tasks/:id.
// Absent fields are left untouched; the clear flags null out nillable fields.
type UpdateTaskRequest struct {
	Title               *string    `json:"title,omitempty"`
	Description         *string    `json:"description,omitempty"`
	ApplicationID       *string    `json:"application_id,omitempty"`
	ImplementationID    *string    `json:"implementation_id,omitempty"`
	ProjectID           *string    `json:"project_id,omitempty"`
	Status              *string    `json:"status,omitempty"`
	TaskType            *string    `json:"task_type,omitempty"`
	PriorityScore       *float64   `json:"priority_score,omitempty"`
	EstimatedMinutes    *int       `json:"estimated_minutes,omitempty"`
	EstimateSource      *string    `json:"estimate_source,omitempty"`
	DueAt               *time.Time `json:"due_at,omitempty"`
	ClearDueAt          bool       `json:"clear_due_at,omitempty"`
	NeedsReview         *bool      `json:"needs_review,omitempty"`
	Blocker             *bool      `json:"blocker,omitempty"`
	WaitingOn           *string    `json:"waiting_on,omitempty"`
	FollowUpAt          *time.Time `json:"follow_up_at,omitempty"`
	ClearFollowUpAt     bool       `json:"clear_follow_up_at,omitempty"`
	StakeholderMentions []string   `json:"stakeholder_mentions,omitempty"`
	PinnedExcerpt       *string    `json:"pinned_excerpt,omitempty"`
}

// SetChecklistDoneRequest is the HTTP request body for PATCH /api/v1/checklist/:id.
type SetChecklistDoneRequest struct {
	Done bool `json:"done"`
}

// AddDependencyRequest is the HTTP request body for POST /api/v1/tasks/:id/dependencies.
type AddDependencyRequest struct {
	DependsOnTaskID       string `json:"depends_on_task_id,omitempty"`
	DependsOnCommitmentID string `json:"depends_on_commitment_id,omitempty"`
}

// CreateApplicationRequest is the HTTP request body for POST /api/v1/applications.
type CreateApplicationRequest struct {
	Name          string     `json:"name"`
	Phase         string     `json:"phase,omitempty"`
	RAG           string     `json:"rag,omitempty"`
	Stakeholders  []string   `json:"stakeholders,omitempty"`
	Keywords      []string   `json:"keywords,omitempty"`
	StatusSummary string     `json:"status_summary,omitempty"`
	NextMilestone string     `json:"next_milestone,omitempty"`
	TargetDate    *time.Time `json:"target_date,omitempty"`
}

// UpdateApplicationRequest is the HTTP request body for PATCH /api/v1/applications/:id.
type UpdateApplicationRequest struct {
	Name           *string    `json:"name,omitempty"`
	Phase          *string    `json:"phase,omitempty"`
	RAG            *string    `json:"rag,omitempty"`
	PriorityWeight *int       `json:"priority_weight,omitempty"`
	Stakeholders   []string   `json:"stakeholders,omitempty"`
	Keywords       []string   `json:"keywords,omitempty"`
	StatusSummary  *string    `json:"status_summary,omitempty"`
	NextMilestone  *string    `json:"next_milestone,omitempty"`
	TargetDate     *time.Time `json:"target_date,omitempty"`
	ClearTarget    bool       `json:"clear_target,omitempty"`
}

// ReorderApplicationsRequest is the HTTP request body for POST /api/v1/applications/reorder.
type ReorderApplicationsRequest struct {
	OrderedIDs []string `json:"ordered_ids"`
}

// CopyUpdateRequest is the HTTP request body for POST /api/v1/implementations/:id/copy-update.
// SaveToLog defaults to true when absent.
type CopyUpdateRequest struct {
	SaveToLog *bool `json:"save_to_log,omitempty"`
}

// CreateProjectRequest is the HTTP request body for POST /api/v1/projects.
type CreateProjectRequest struct {
	ApplicationID string `json:"application_id,omitempty"`
	Name          string `json:"name"`
	Description   string `json:"description,omitempty"`
}

// CreateCommitmentRequest is the HTTP request body for POST /api/v1/commitments.
type CreateCommitmentRequest struct {
	Stakeholder string     `json:"stakeholder"`
	Description string     `json:"description"`
	Direction   string     `json:"direction"`
	DueAt       *time.Time `json:"due_at,omitempty"`
}

// ActivateFocusRequest is the HTTP request body for POST /api/v1/focus.
type ActivateFocusRequest struct {
	DirectiveText string     `json:"directive_text"`
	ScopeType     string     `json:"scope_type"`
	ScopeID       string     `json:"scope_id,omitempty"`
	ScopeValue    string     `json:"scope_value,omitempty"`
	Strength      string     `json:"strength,omitempty"`
	StartsAt      *time.Time `json:"starts_at,omitempty"`
	EndsAt        *time.Time `json:"ends_at,omitempty"`
}

// UpdateFocusRequest is the HTTP request body for PATCH /api/v1/focus/:id.
// Absent fields are left untouched.
type UpdateFocusRequest struct {
	DirectiveText *string    `json:"directive_text,omitempty"`
	Strength      *string    `json:"strength,omitempty"`
	IsActive      *bool      `json:"is_active,omitempty"`
	StartsAt      *time.Time `json:"starts_at,omitempty"`
	EndsAt        *time.Time `json:"ends_at,omitempty"`
}

// BuildPlanRequest is the HTTP request body for POST /api/v1/planner/plan.
type BuildPlanRequest struct {
	PlanDate string `json:"plan_date,omitempty"`
	Mode     string `json:"mode,omitempty"`
}

// CalendarEventPayload is one event in an ingest request.
type CalendarEventPayload struct {
	ExternalEventID string    `json:"external_event_id"`
	Title           string    `json:"title"`
	Body            string    `json:"body,omitempty"`
	StartAt         time.Time `json:"start_at"`
	EndAt           time.Time `json:"end_at"`
	IsAllDay        bool      `json:"is_all_day,omitempty"`
}

// IngestCalendarRequest is the HTTP request body for POST /api/v1/calendar/ingest.
type IngestCalendarRequest struct {
	Source     string                 `json:"source"`
	Events     []CalendarEventPayload `json:"events"`
	RangeStart string                 `json:"range_start,omitempty"`
	RangeEnd   string                 `json:"range_end,omitempty"`
}

// IngestICSRequest is the HTTP request body for POST /api/v1/calendar/ingest/ics.
type IngestICSRequest struct {
	Payload    string `json:"payload"`
	RangeStart string `json:"range_start,omitempty"`
	RangeEnd   string `json:"range_end,omitempty"`
}

// MeetingContextRequest is the HTTP request body for PATCH /api/v1/calendar.
// A null or absent meeting_context clears the note.
type MeetingContextRequest struct {
	EventID        string  `json:"event_id"`
	MeetingContext *string `json:"meeting_context"`
}

// NarrativeRequest is the HTTP request body for POST /api/v1/briefing/narrative.
// The caller supplies an already-composed briefing and gets its narrative back.
type NarrativeRequest struct {
	Briefing briefing.Briefing `json:"briefing"`
}

// SetPreferenceRequest is the HTTP request body for PUT /api/v1/llm/preferences/:feature.
type SetPreferenceRequest struct {
	CatalogID string `json:"catalog_id"`
}
