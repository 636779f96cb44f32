// Code generated by ent, DO NOT EDIT.

package calendarevent

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the calendarevent type in the database.
	Label = "calendar_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldOwnerID holds the string denoting the owner_id field in the database.
	FieldOwnerID = "owner_id"
	// FieldSource holds the string denoting the source field in the database.
	FieldSource = "source"
	// FieldExternalEventID holds the string denoting the external_event_id field in the database.
	FieldExternalEventID = "external_event_id"
	// FieldStartAt holds the string denoting the start_at field in the database.
	FieldStartAt = "start_at"
	// FieldEndAt holds the string denoting the end_at field in the database.
	FieldEndAt = "end_at"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldBodyPreview holds the string denoting the body_preview field in the database.
	FieldBodyPreview = "body_preview"
	// FieldIsAllDay holds the string denoting the is_all_day field in the database.
	FieldIsAllDay = "is_all_day"
	// FieldContentHash holds the string denoting the content_hash field in the database.
	FieldContentHash = "content_hash"
	// FieldMeetingContext holds the string denoting the meeting_context field in the database.
	FieldMeetingContext = "meeting_context"
	// FieldRemovedAt holds the string denoting the removed_at field in the database.
	FieldRemovedAt = "removed_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the calendarevent in the database.
	Table = "calendar_events"
)

// Columns holds all SQL columns for calendarevent fields.
var Columns = []string{
	FieldID,
	FieldOwnerID,
	FieldSource,
	FieldExternalEventID,
	FieldStartAt,
	FieldEndAt,
	FieldTitle,
	FieldBodyPreview,
	FieldIsAllDay,
	FieldContentHash,
	FieldMeetingContext,
	FieldRemovedAt,
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
	// ExternalEventIDValidator is a validator for the "external_event_id" field. It is called by the builders before save.
	ExternalEventIDValidator func(string) error
	// DefaultIsAllDay holds the default value on creation for the "is_all_day" field.
	DefaultIsAllDay bool
	// MeetingContextValidator is a validator for the "meeting_context" field. It is called by the builders before save.
	MeetingContextValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Source defines the type for the "source" enum field.
type Source string

// Source values.
const (
	SourceLocal Source = "local"
	SourceIcal  Source = "ical"
	SourceGraph Source = "graph"
)

func (s Source) String() string {
	return string(s)
}

// SourceValidator is a validator for the "source" field enum values. It is called by the builders before save.
func SourceValidator(s Source) error {
	switch s {
	case SourceLocal, SourceIcal, SourceGraph:
		return nil
	default:
		return fmt.Errorf("calendarevent: invalid enum value for source field: %q", s)
	}
}

// OrderOption defines the ordering options for the CalendarEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByOwnerID orders the results by the owner_id field.
func ByOwnerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOwnerID, opts...).ToFunc()
}

// BySource orders the results by the source field.
func BySource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSource, opts...).ToFunc()
}

// ByExternalEventID orders the results by the external_event_id field.
func ByExternalEventID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExternalEventID, opts...).ToFunc()
}

// ByStartAt orders the results by the start_at field.
func ByStartAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartAt, opts...).ToFunc()
}

// ByEndAt orders the results by the end_at field.
func ByEndAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEndAt, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByBodyPreview orders the results by the body_preview field.
func ByBodyPreview(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBodyPreview, opts...).ToFunc()
}

// ByIsAllDay orders the results by the is_all_day field.
func ByIsAllDay(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsAllDay, opts...).ToFunc()
}

// ByContentHash orders the results by the content_hash field.
func ByContentHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContentHash, opts...).ToFunc()
}

// ByMeetingContext orders the results by the meeting_context field.
func ByMeetingContext(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMeetingContext, opts...).ToFunc()
}

// ByRemovedAt orders the results by the removed_at field.
func ByRemovedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRemovedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
