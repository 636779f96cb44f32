// Code generated by ent, DO NOT EDIT.

package focusdirective

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the focusdirective type in the database.
	Label = "focus_directive"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldOwnerID holds the string denoting the owner_id field in the database.
	FieldOwnerID = "owner_id"
	// FieldDirectiveText holds the string denoting the directive_text field in the database.
	FieldDirectiveText = "directive_text"
	// FieldScopeType holds the string denoting the scope_type field in the database.
	FieldScopeType = "scope_type"
	// FieldScopeID holds the string denoting the scope_id field in the database.
	FieldScopeID = "scope_id"
	// FieldScopeValue holds the string denoting the scope_value field in the database.
	FieldScopeValue = "scope_value"
	// FieldStrength holds the string denoting the strength field in the database.
	FieldStrength = "strength"
	// FieldIsActive holds the string denoting the is_active field in the database.
	FieldIsActive = "is_active"
	// FieldStartsAt holds the string denoting the starts_at field in the database.
	FieldStartsAt = "starts_at"
	// FieldEndsAt holds the string denoting the ends_at field in the database.
	FieldEndsAt = "ends_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the focusdirective in the database.
	Table = "focus_directives"
)

// Columns holds all SQL columns for focusdirective fields.
var Columns = []string{
	FieldID,
	FieldOwnerID,
	FieldDirectiveText,
	FieldScopeType,
	FieldScopeID,
	FieldScopeValue,
	FieldStrength,
	FieldIsActive,
	FieldStartsAt,
	FieldEndsAt,
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
	// DirectiveTextValidator is a validator for the "directive_text" field. It is called by the builders before save.
	DirectiveTextValidator func(string) error
	// DefaultIsActive holds the default value on creation for the "is_active" field.
	DefaultIsActive bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// ScopeType defines the type for the "scope_type" enum field.
type ScopeType string

// ScopeType values.
const (
	ScopeTypeApplication ScopeType = "application"
	ScopeTypeStakeholder ScopeType = "stakeholder"
	ScopeTypeTaskType    ScopeType = "task_type"
	ScopeTypeQuery       ScopeType = "query"
)

func (st ScopeType) String() string {
	return string(st)
}

// ScopeTypeValidator is a validator for the "scope_type" field enum values. It is called by the builders before save.
func ScopeTypeValidator(st ScopeType) error {
	switch st {
	case ScopeTypeApplication, ScopeTypeStakeholder, ScopeTypeTaskType, ScopeTypeQuery:
		return nil
	default:
		return fmt.Errorf("focusdirective: invalid enum value for scope_type field: %q", st)
	}
}

// Strength defines the type for the "strength" enum field.
type Strength string

// StrengthNudge is the default value of the Strength enum.
const DefaultStrength = StrengthNudge

// Strength values.
const (
	StrengthNudge  Strength = "nudge"
	StrengthStrong Strength = "strong"
	StrengthHard   Strength = "hard"
)

func (s Strength) String() string {
	return string(s)
}

// StrengthValidator is a validator for the "strength" field enum values. It is called by the builders before save.
func StrengthValidator(s Strength) error {
	switch s {
	case StrengthNudge, StrengthStrong, StrengthHard:
		return nil
	default:
		return fmt.Errorf("focusdirective: invalid enum value for strength field: %q", s)
	}
}

// OrderOption defines the ordering options for the FocusDirective queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByOwnerID orders the results by the owner_id field.
func ByOwnerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOwnerID, opts...).ToFunc()
}

// ByDirectiveText orders the results by the directive_text field.
func ByDirectiveText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDirectiveText, opts...).ToFunc()
}

// ByScopeType orders the results by the scope_type field.
func ByScopeType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScopeType, opts...).ToFunc()
}

// ByScopeID orders the results by the scope_id field.
func ByScopeID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScopeID, opts...).ToFunc()
}

// ByScopeValue orders the results by the scope_value field.
func ByScopeValue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScopeValue, opts...).ToFunc()
}

// ByStrength orders the results by the strength field.
func ByStrength(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStrength, opts...).ToFunc()
}

// ByIsActive orders the results by the is_active field.
func ByIsActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsActive, opts...).ToFunc()
}

// ByStartsAt orders the results by the starts_at field.
func ByStartsAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartsAt, opts...).ToFunc()
}

// ByEndsAt orders the results by the ends_at field.
func ByEndsAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEndsAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
