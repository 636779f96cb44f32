// Code generated by ent, DO NOT EDIT.

package task

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the task type in the database.
	Label = "task"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldOwnerID holds the string denoting the owner_id field in the database.
	FieldOwnerID = "owner_id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldApplicationID holds the string denoting the application_id field in the database.
	FieldApplicationID = "application_id"
	// FieldProjectID holds the string denoting the project_id field in the database.
	FieldProjectID = "project_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldTaskType holds the string denoting the task_type field in the database.
	FieldTaskType = "task_type"
	// FieldPriorityScore holds the string denoting the priority_score field in the database.
	FieldPriorityScore = "priority_score"
	// FieldEstimatedMinutes holds the string denoting the estimated_minutes field in the database.
	FieldEstimatedMinutes = "estimated_minutes"
	// FieldEstimateSource holds the string denoting the estimate_source field in the database.
	FieldEstimateSource = "estimate_source"
	// FieldDueAt holds the string denoting the due_at field in the database.
	FieldDueAt = "due_at"
	// FieldNeedsReview holds the string denoting the needs_review field in the database.
	FieldNeedsReview = "needs_review"
	// FieldBlocker holds the string denoting the blocker field in the database.
	FieldBlocker = "blocker"
	// FieldWaitingOn holds the string denoting the waiting_on field in the database.
	FieldWaitingOn = "waiting_on"
	// FieldFollowUpAt holds the string denoting the follow_up_at field in the database.
	FieldFollowUpAt = "follow_up_at"
	// FieldStakeholderMentions holds the string denoting the stakeholder_mentions field in the database.
	FieldStakeholderMentions = "stakeholder_mentions"
	// FieldSourceType holds the string denoting the source_type field in the database.
	FieldSourceType = "source_type"
	// FieldSourceURL holds the string denoting the source_url field in the database.
	FieldSourceURL = "source_url"
	// FieldInboxItemID holds the string denoting the inbox_item_id field in the database.
	FieldInboxItemID = "inbox_item_id"
	// FieldPinnedExcerpt holds the string denoting the pinned_excerpt field in the database.
	FieldPinnedExcerpt = "pinned_excerpt"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the task in the database.
	Table = "tasks"
)

// Columns holds all SQL columns for task fields.
var Columns = []string{
	FieldID,
	FieldOwnerID,
	FieldTitle,
	FieldDescription,
	FieldApplicationID,
	FieldProjectID,
	FieldStatus,
	FieldTaskType,
	FieldPriorityScore,
	FieldEstimatedMinutes,
	FieldEstimateSource,
	FieldDueAt,
	FieldNeedsReview,
	FieldBlocker,
	FieldWaitingOn,
	FieldFollowUpAt,
	FieldStakeholderMentions,
	FieldSourceType,
	FieldSourceURL,
	FieldInboxItemID,
	FieldPinnedExcerpt,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// TitleValidator is a validator for the "title" field. It is called by the builders before save.
	TitleValidator func(string) error
	// DefaultPriorityScore holds the default value on creation for the "priority_score" field.
	DefaultPriorityScore float64
	// PriorityScoreValidator is a validator for the "priority_score" field. It is called by the builders before save.
	PriorityScoreValidator func(float64) error
	// DefaultEstimatedMinutes holds the default value on creation for the "estimated_minutes" field.
	DefaultEstimatedMinutes int
	// EstimatedMinutesValidator is a validator for the "estimated_minutes" field. It is called by the builders before save.
	EstimatedMinutesValidator func(int) error
	// DefaultNeedsReview holds the default value on creation for the "needs_review" field.
	DefaultNeedsReview bool
	// DefaultBlocker holds the default value on creation for the "blocker" field.
	DefaultBlocker bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusBacklog is the default value of the Status enum.
const DefaultStatus = StatusBacklog

// Status values.
const (
	StatusBacklog        Status = "backlog"
	StatusPlanned        Status = "planned"
	StatusInProgress     Status = "in_progress"
	StatusBlockedWaiting Status = "blocked_waiting"
	StatusDone           Status = "done"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusBacklog, StatusPlanned, StatusInProgress, StatusBlockedWaiting, StatusDone:
		return nil
	default:
		return fmt.Errorf("task: invalid enum value for status field: %q", s)
	}
}

// TaskType defines the type for the "task_type" enum field.
type TaskType string

// TaskTypeTask is the default value of the TaskType enum.
const DefaultTaskType = TaskTypeTask

// TaskType values.
const (
	TaskTypeTask        TaskType = "task"
	TaskTypeTicket      TaskType = "ticket"
	TaskTypeMeetingPrep TaskType = "meeting_prep"
	TaskTypeFollowUp    TaskType = "follow_up"
	TaskTypeAdmin       TaskType = "admin"
	TaskTypeBuild       TaskType = "build"
)

func (tt TaskType) String() string {
	return string(tt)
}

// TaskTypeValidator is a validator for the "task_type" field enum values. It is called by the builders before save.
func TaskTypeValidator(tt TaskType) error {
	switch tt {
	case TaskTypeTask, TaskTypeTicket, TaskTypeMeetingPrep, TaskTypeFollowUp, TaskTypeAdmin, TaskTypeBuild:
		return nil
	default:
		return fmt.Errorf("task: invalid enum value for task_type field: %q", tt)
	}
}

// EstimateSource defines the type for the "estimate_source" enum field.
type EstimateSource string

// EstimateSourceDefault is the default value of the EstimateSource enum.
const DefaultEstimateSource = EstimateSourceDefault

// EstimateSource values.
const (
	EstimateSourceDefault EstimateSource = "default"
	EstimateSourceLlm     EstimateSource = "llm"
	EstimateSourceManual  EstimateSource = "manual"
)

func (es EstimateSource) String() string {
	return string(es)
}

// EstimateSourceValidator is a validator for the "estimate_source" field enum values. It is called by the builders before save.
func EstimateSourceValidator(es EstimateSource) error {
	switch es {
	case EstimateSourceDefault, EstimateSourceLlm, EstimateSourceManual:
		return nil
	default:
		return fmt.Errorf("task: invalid enum value for estimate_source field: %q", es)
	}
}

// SourceType defines the type for the "source_type" enum field.
type SourceType string

// SourceTypeManual is the default value of the SourceType enum.
const DefaultSourceType = SourceTypeManual

// SourceType values.
const (
	SourceTypeManual  SourceType = "manual"
	SourceTypeEmail   SourceType = "email"
	SourceTypeMeeting SourceType = "meeting"
)

func (st SourceType) String() string {
	return string(st)
}

// SourceTypeValidator is a validator for the "source_type" field enum values. It is called by the builders before save.
func SourceTypeValidator(st SourceType) error {
	switch st {
	case SourceTypeManual, SourceTypeEmail, SourceTypeMeeting:
		return nil
	default:
		return fmt.Errorf("task: invalid enum value for source_type field: %q", st)
	}
}

// OrderOption defines the ordering options for the Task queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByOwnerID orders the results by the owner_id field.
func ByOwnerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOwnerID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByApplicationID orders the results by the application_id field.
func ByApplicationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldApplicationID, opts...).ToFunc()
}

// ByProjectID orders the results by the project_id field.
func ByProjectID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProjectID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByTaskType orders the results by the task_type field.
func ByTaskType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaskType, opts...).ToFunc()
}

// ByPriorityScore orders the results by the priority_score field.
func ByPriorityScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriorityScore, opts...).ToFunc()
}

// ByEstimatedMinutes orders the results by the estimated_minutes field.
func ByEstimatedMinutes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEstimatedMinutes, opts...).ToFunc()
}

// ByEstimateSource orders the results by the estimate_source field.
func ByEstimateSource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEstimateSource, opts...).ToFunc()
}

// ByDueAt orders the results by the due_at field.
func ByDueAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDueAt, opts...).ToFunc()
}

// ByNeedsReview orders the results by the needs_review field.
func ByNeedsReview(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNeedsReview, opts...).ToFunc()
}

// ByBlocker orders the results by the blocker field.
func ByBlocker(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBlocker, opts...).ToFunc()
}

// ByWaitingOn orders the results by the waiting_on field.
func ByWaitingOn(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWaitingOn, opts...).ToFunc()
}

// ByFollowUpAt orders the results by the follow_up_at field.
func ByFollowUpAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFollowUpAt, opts...).ToFunc()
}

// BySourceType orders the results by the source_type field.
func BySourceType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceType, opts...).ToFunc()
}

// BySourceURL orders the results by the source_url field.
func BySourceURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceURL, opts...).ToFunc()
}

// ByInboxItemID orders the results by the inbox_item_id field.
func ByInboxItemID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInboxItemID, opts...).ToFunc()
}

// ByPinnedExcerpt orders the results by the pinned_excerpt field.
func ByPinnedExcerpt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPinnedExcerpt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
