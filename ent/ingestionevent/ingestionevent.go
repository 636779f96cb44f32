// Code generated by ent, DO NOT EDIT.

package ingestionevent

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the ingestionevent type in the database.
	Label = "ingestion_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldOwnerID holds the string denoting the owner_id field in the database.
	FieldOwnerID = "owner_id"
	// FieldInboxItemID holds the string denoting the inbox_item_id field in the database.
	FieldInboxItemID = "inbox_item_id"
	// FieldEventType holds the string denoting the event_type field in the database.
	FieldEventType = "event_type"
	// FieldDetail holds the string denoting the detail field in the database.
	FieldDetail = "detail"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the ingestionevent in the database.
	Table = "ingestion_events"
)

// Columns holds all SQL columns for ingestionevent fields.
var Columns = []string{
	FieldID,
	FieldOwnerID,
	FieldInboxItemID,
	FieldEventType,
	FieldDetail,
	FieldCreatedAt,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// EventType defines the type for the "event_type" enum field.
type EventType string

// EventType values.
const (
	EventTypeDeduped     EventType = "deduped"
	EventTypeReceived    EventType = "received"
	EventTypeExtracted   EventType = "extracted"
	EventTypeTaskCreated EventType = "task_created"
	EventTypeError       EventType = "error"
)

func (et EventType) String() string {
	return string(et)
}

// EventTypeValidator is a validator for the "event_type" field enum values. It is called by the builders before save.
func EventTypeValidator(et EventType) error {
	switch et {
	case EventTypeDeduped, EventTypeReceived, EventTypeExtracted, EventTypeTaskCreated, EventTypeError:
		return nil
	default:
		return fmt.Errorf("ingestionevent: invalid enum value for event_type field: %q", et)
	}
}

// OrderOption defines the ordering options for the IngestionEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByOwnerID orders the results by the owner_id field.
func ByOwnerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOwnerID, opts...).ToFunc()
}

// ByInboxItemID orders the results by the inbox_item_id field.
func ByInboxItemID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInboxItemID, opts...).ToFunc()
}

// ByEventType orders the results by the event_type field.
func ByEventType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventType, opts...).ToFunc()
}

// ByDetail orders the results by the detail field.
func ByDetail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDetail, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
