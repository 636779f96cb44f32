// Code generated by ent, DO NOT EDIT.

package taskdependency

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the taskdependency type in the database.
	Label = "task_dependency"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldOwnerID holds the string denoting the owner_id field in the database.
	FieldOwnerID = "owner_id"
	// FieldTaskID holds the string denoting the task_id field in the database.
	FieldTaskID = "task_id"
	// FieldDependsOnTaskID holds the string denoting the depends_on_task_id field in the database.
	FieldDependsOnTaskID = "depends_on_task_id"
	// FieldDependsOnCommitmentID holds the string denoting the depends_on_commitment_id field in the database.
	FieldDependsOnCommitmentID = "depends_on_commitment_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the taskdependency in the database.
	Table = "task_dependencies"
)

// Columns holds all SQL columns for taskdependency fields.
var Columns = []string{
	FieldID,
	FieldOwnerID,
	FieldTaskID,
	FieldDependsOnTaskID,
	FieldDependsOnCommitmentID,
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

// OrderOption defines the ordering options for the TaskDependency queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByOwnerID orders the results by the owner_id field.
func ByOwnerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOwnerID, opts...).ToFunc()
}

// ByTaskID orders the results by the task_id field.
func ByTaskID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaskID, opts...).ToFunc()
}

// ByDependsOnTaskID orders the results by the depends_on_task_id field.
func ByDependsOnTaskID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDependsOnTaskID, opts...).ToFunc()
}

// ByDependsOnCommitmentID orders the results by the depends_on_commitment_id field.
func ByDependsOnCommitmentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDependsOnCommitmentID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
