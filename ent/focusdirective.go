// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/missionctl/missionctl/ent/focusdirective"
)

// FocusDirective is the model entity for the FocusDirective schema.
type FocusDirective struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// OwnerID holds the value of the "owner_id" field.
	OwnerID string `json:"owner_id,omitempty"`
	// DirectiveText holds the value of the "directive_text" field.
	DirectiveText string `json:"directive_text,omitempty"`
	// ScopeType holds the value of the "scope_type" field.
	ScopeType focusdirective.ScopeType `json:"scope_type,omitempty"`
	// Application id for scope_type=application
	ScopeID *string `json:"scope_id,omitempty"`
	// Trimmed match value for stakeholder/task_type/query scopes
	ScopeValue *string `json:"scope_value,omitempty"`
	// Strength holds the value of the "strength" field.
	Strength focusdirective.Strength `json:"strength,omitempty"`
	// IsActive holds the value of the "is_active" field.
	IsActive bool `json:"is_active,omitempty"`
	// StartsAt holds the value of the "starts_at" field.
	StartsAt *time.Time `json:"starts_at,omitempty"`
	// EndsAt holds the value of the "ends_at" field.
	EndsAt *time.Time `json:"ends_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*FocusDirective) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case focusdirective.FieldIsActive:
			values[i] = new(sql.NullBool)
		case focusdirective.FieldID, focusdirective.FieldOwnerID, focusdirective.FieldDirectiveText, focusdirective.FieldScopeType, focusdirective.FieldScopeID, focusdirective.FieldScopeValue, focusdirective.FieldStrength:
			values[i] = new(sql.NullString)
		case focusdirective.FieldStartsAt, focusdirective.FieldEndsAt, focusdirective.FieldCreatedAt, focusdirective.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the FocusDirective fields.
func (_m *FocusDirective) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case focusdirective.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case focusdirective.FieldOwnerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field owner_id", values[i])
			} else if value.Valid {
				_m.OwnerID = value.String
			}
		case focusdirective.FieldDirectiveText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field directive_text", values[i])
			} else if value.Valid {
				_m.DirectiveText = value.String
			}
		case focusdirective.FieldScopeType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field scope_type", values[i])
			} else if value.Valid {
				_m.ScopeType = focusdirective.ScopeType(value.String)
			}
		case focusdirective.FieldScopeID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field scope_id", values[i])
			} else if value.Valid {
				_m.ScopeID = new(string)
				*_m.ScopeID = value.String
			}
		case focusdirective.FieldScopeValue:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field scope_value", values[i])
			} else if value.Valid {
				_m.ScopeValue = new(string)
				*_m.ScopeValue = value.String
			}
		case focusdirective.FieldStrength:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field strength", values[i])
			} else if value.Valid {
				_m.Strength = focusdirective.Strength(value.String)
			}
		case focusdirective.FieldIsActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_active", values[i])
			} else if value.Valid {
				_m.IsActive = value.Bool
			}
		case focusdirective.FieldStartsAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field starts_at", values[i])
			} else if value.Valid {
				_m.StartsAt = new(time.Time)
				*_m.StartsAt = value.Time
			}
		case focusdirective.FieldEndsAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field ends_at", values[i])
			} else if value.Valid {
				_m.EndsAt = new(time.Time)
				*_m.EndsAt = value.Time
			}
		case focusdirective.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case focusdirective.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the FocusDirective.
// This includes values selected through modifiers, order, etc.
func (_m *FocusDirective) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this FocusDirective.
// Note that you need to call FocusDirective.Unwrap() before calling this method if this FocusDirective
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *FocusDirective) Update() *FocusDirectiveUpdateOne {
	return NewFocusDirectiveClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the FocusDirective entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *FocusDirective) Unwrap() *FocusDirective {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: FocusDirective is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *FocusDirective) String() string {
	var builder strings.Builder
	builder.WriteString("FocusDirective(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("owner_id=")
	builder.WriteString(_m.OwnerID)
	builder.WriteString(", ")
	builder.WriteString("directive_text=")
	builder.WriteString(_m.DirectiveText)
	builder.WriteString(", ")
	builder.WriteString("scope_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.ScopeType))
	builder.WriteString(", ")
	if v := _m.ScopeID; v != nil {
		builder.WriteString("scope_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ScopeValue; v != nil {
		builder.WriteString("scope_value=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("strength=")
	builder.WriteString(fmt.Sprintf("%v", _m.Strength))
	builder.WriteString(", ")
	builder.WriteString("is_active=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsActive))
	builder.WriteString(", ")
	if v := _m.StartsAt; v != nil {
		builder.WriteString("starts_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.EndsAt; v != nil {
		builder.WriteString("ends_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// FocusDirectives is a parsable slice of FocusDirective.
type FocusDirectives []*FocusDirective
