// Code generated by ent, DO NOT EDIT.

package calendarsnapshot

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the calendarsnapshot type in the database.
	Label = "calendar_snapshot"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldOwnerID holds the string denoting the owner_id field in the database.
	FieldOwnerID = "owner_id"
	// FieldRangeStart holds the string denoting the range_start field in the database.
	FieldRangeStart = "range_start"
	// FieldRangeEnd holds the string denoting the range_end field in the database.
	FieldRangeEnd = "range_end"
	// FieldPayloadMin holds the string denoting the payload_min field in the database.
	FieldPayloadMin = "payload_min"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the calendarsnapshot in the database.
	Table = "calendar_snapshots"
)

// Columns holds all SQL columns for calendarsnapshot fields.
var Columns = []string{
	FieldID,
	FieldOwnerID,
	FieldRangeStart,
	FieldRangeEnd,
	FieldPayloadMin,
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

// OrderOption defines the ordering options for the CalendarSnapshot queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByOwnerID orders the results by the owner_id field.
func ByOwnerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOwnerID, opts...).ToFunc()
}

// ByRangeStart orders the results by the range_start field.
func ByRangeStart(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRangeStart, opts...).ToFunc()
}

// ByRangeEnd orders the results by the range_end field.
func ByRangeEnd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRangeEnd, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
