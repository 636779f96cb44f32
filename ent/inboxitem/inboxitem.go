// Code generated by ent, DO NOT EDIT.

package inboxitem

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the inboxitem type in the database.
	Label = "inbox_item"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldOwnerID holds the string denoting the owner_id field in the database.
	FieldOwnerID = "owner_id"
	// FieldDedupeKey holds the string denoting the dedupe_key field in the database.
	FieldDedupeKey = "dedupe_key"
	// FieldSubject holds the string denoting the subject field in the database.
	FieldSubject = "subject"
	// FieldFromEmail holds the string denoting the from_email field in the database.
	FieldFromEmail = "from_email"
	// FieldFromName holds the string denoting the from_name field in the database.
	FieldFromName = "from_name"
	// FieldReceivedAt holds the string denoting the received_at field in the database.
	FieldReceivedAt = "received_at"
	// FieldMessageID holds the string denoting the message_id field in the database.
	FieldMessageID = "message_id"
	// FieldSourceURL holds the string denoting the source_url field in the database.
	FieldSourceURL = "source_url"
	// FieldTriageState holds the string denoting the triage_state field in the database.
	FieldTriageState = "triage_state"
	// FieldExtractionJSON holds the string denoting the extraction_json field in the database.
	FieldExtractionJSON = "extraction_json"
	// FieldExtractionModel holds the string denoting the extraction_model field in the database.
	FieldExtractionModel = "extraction_model"
	// FieldExtractionConfidence holds the string denoting the extraction_confidence field in the database.
	FieldExtractionConfidence = "extraction_confidence"
	// FieldProcessingError holds the string denoting the processing_error field in the database.
	FieldProcessingError = "processing_error"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the inboxitem in the database.
	Table = "inbox_items"
)

// Columns holds all SQL columns for inboxitem fields.
var Columns = []string{
	FieldID,
	FieldOwnerID,
	FieldDedupeKey,
	FieldSubject,
	FieldFromEmail,
	FieldFromName,
	FieldReceivedAt,
	FieldMessageID,
	FieldSourceURL,
	FieldTriageState,
	FieldExtractionJSON,
	FieldExtractionModel,
	FieldExtractionConfidence,
	FieldProcessingError,
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
	// DedupeKeyValidator is a validator for the "dedupe_key" field. It is called by the builders before save.
	DedupeKeyValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// TriageState defines the type for the "triage_state" enum field.
type TriageState string

// TriageStateNew is the default value of the TriageState enum.
const DefaultTriageState = TriageStateNew

// TriageState values.
const (
	TriageStateNew       TriageState = "new"
	TriageStateProcessed TriageState = "processed"
	TriageStateError     TriageState = "error"
)

func (ts TriageState) String() string {
	return string(ts)
}

// TriageStateValidator is a validator for the "triage_state" field enum values. It is called by the builders before save.
func TriageStateValidator(ts TriageState) error {
	switch ts {
	case TriageStateNew, TriageStateProcessed, TriageStateError:
		return nil
	default:
		return fmt.Errorf("inboxitem: invalid enum value for triage_state field: %q", ts)
	}
}

// OrderOption defines the ordering options for the InboxItem queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByOwnerID orders the results by the owner_id field.
func ByOwnerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOwnerID, opts...).ToFunc()
}

// ByDedupeKey orders the results by the dedupe_key field.
func ByDedupeKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDedupeKey, opts...).ToFunc()
}

// BySubject orders the results by the subject field.
func BySubject(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubject, opts...).ToFunc()
}

// ByFromEmail orders the results by the from_email field.
func ByFromEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFromEmail, opts...).ToFunc()
}

// ByFromName orders the results by the from_name field.
func ByFromName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFromName, opts...).ToFunc()
}

// ByReceivedAt orders the results by the received_at field.
func ByReceivedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReceivedAt, opts...).ToFunc()
}

// ByMessageID orders the results by the message_id field.
func ByMessageID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMessageID, opts...).ToFunc()
}

// BySourceURL orders the results by the source_url field.
func BySourceURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceURL, opts...).ToFunc()
}

// ByTriageState orders the results by the triage_state field.
func ByTriageState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTriageState, opts...).ToFunc()
}

// ByExtractionModel orders the results by the extraction_model field.
func ByExtractionModel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExtractionModel, opts...).ToFunc()
}

// ByExtractionConfidence orders the results by the extraction_confidence field.
func ByExtractionConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExtractionConfidence, opts...).ToFunc()
}

// ByProcessingError orders the results by the processing_error field.
func ByProcessingError(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProcessingError, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
