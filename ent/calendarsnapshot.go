// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/missionctl/missionctl/ent/calendarsnapshot"
)

// CalendarSnapshot is the model entity for the CalendarSnapshot schema.
type CalendarSnapshot struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// OwnerID holds the value of the "owner_id" field.
	OwnerID string `json:"owner_id,omitempty"`
	// YYYY-MM-DD
	RangeStart string `json:"range_start,omitempty"`
	// YYYY-MM-DD
	RangeEnd string `json:"range_end,omitempty"`
	// Ordered (external_event_id, start_at, end_at, content_hash) tuples
	PayloadMin []map[string]interface{} `json:"payload_min,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CalendarSnapshot) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case calendarsnapshot.FieldPayloadMin:
			values[i] = new([]byte)
		case calendarsnapshot.FieldID, calendarsnapshot.FieldOwnerID, calendarsnapshot.FieldRangeStart, calendarsnapshot.FieldRangeEnd:
			values[i] = new(sql.NullString)
		case calendarsnapshot.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CalendarSnapshot fields.
func (_m *CalendarSnapshot) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case calendarsnapshot.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case calendarsnapshot.FieldOwnerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field owner_id", values[i])
			} else if value.Valid {
				_m.OwnerID = value.String
			}
		case calendarsnapshot.FieldRangeStart:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field range_start", values[i])
			} else if value.Valid {
				_m.RangeStart = value.String
			}
		case calendarsnapshot.FieldRangeEnd:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field range_end", values[i])
			} else if value.Valid {
				_m.RangeEnd = value.String
			}
		case calendarsnapshot.FieldPayloadMin:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field payload_min", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.PayloadMin); err != nil {
					return fmt.Errorf("unmarshal field payload_min: %w", err)
				}
			}
		case calendarsnapshot.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CalendarSnapshot.
// This includes values selected through modifiers, order, etc.
func (_m *CalendarSnapshot) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this CalendarSnapshot.
// Note that you need to call CalendarSnapshot.Unwrap() before calling this method if this CalendarSnapshot
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CalendarSnapshot) Update() *CalendarSnapshotUpdateOne {
	return NewCalendarSnapshotClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CalendarSnapshot entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CalendarSnapshot) Unwrap() *CalendarSnapshot {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CalendarSnapshot is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CalendarSnapshot) String() string {
	var builder strings.Builder
	builder.WriteString("CalendarSnapshot(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("owner_id=")
	builder.WriteString(_m.OwnerID)
	builder.WriteString(", ")
	builder.WriteString("range_start=")
	builder.WriteString(_m.RangeStart)
	builder.WriteString(", ")
	builder.WriteString("range_end=")
	builder.WriteString(_m.RangeEnd)
	builder.WriteString(", ")
	builder.WriteString("payload_min=")
	builder.WriteString(fmt.Sprintf("%v", _m.PayloadMin))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// CalendarSnapshots is a parsable slice of CalendarSnapshot.
type CalendarSnapshots []*CalendarSnapshot
