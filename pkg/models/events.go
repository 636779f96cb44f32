package models

// Ingestion event types, an append-only audit trail of the intake pipeline.
const (
	IngestionReceived    = "received"
	IngestionDeduped     = "deduped"
	IngestionExtracted   = "extracted"
	IngestionTaskCreated = "task_created"
	IngestionError       = "error"
)

// Inbox item triage states.
const (
	TriageNew       = "new"
	TriageProcessed = "processed"
	TriageError     = "error"
)

// Calendar event sources.
const (
	CalendarSourceLocal = "local"
	CalendarSourceICal  = "ical"
	CalendarSourceGraph = "graph"
)

// Focus directive scopes and strengths.
const (
	ScopeApplication = "application"
	ScopeStakeholder = "stakeholder"
	ScopeTaskType    = "task_type"
	ScopeQuery       = "query"

	StrengthNudge  = "nudge"
	StrengthStrong = "strong"
	StrengthHard   = "hard"
)
