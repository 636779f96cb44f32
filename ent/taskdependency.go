// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/missionctl/missionctl/ent/taskdependency"
)

// TaskDependency is the model entity for the TaskDependency schema.
type TaskDependency struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// OwnerID holds the value of the "owner_id" field.
	OwnerID string `json:"owner_id,omitempty"`
	// TaskID holds the value of the "task_id" field.
	TaskID string `json:"task_id,omitempty"`
	// DependsOnTaskID holds the value of the "depends_on_task_id" field.
	DependsOnTaskID *string `json:"depends_on_task_id,omitempty"`
	// DependsOnCommitmentID holds the value of the "depends_on_commitment_id" field.
	DependsOnCommitmentID *string `json:"depends_on_commitment_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TaskDependency) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case taskdependency.FieldID, taskdependency.FieldOwnerID, taskdependency.FieldTaskID, taskdependency.FieldDependsOnTaskID, taskdependency.FieldDependsOnCommitmentID:
			values[i] = new(sql.NullString)
		case taskdependency.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TaskDependency fields.
func (_m *TaskDependency) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case taskdependency.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case taskdependency.FieldOwnerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field owner_id", values[i])
			} else if value.Valid {
				_m.OwnerID = value.String
			}
		case taskdependency.FieldTaskID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field task_id", values[i])
			} else if value.Valid {
				_m.TaskID = value.String
			}
		case taskdependency.FieldDependsOnTaskID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field depends_on_task_id", values[i])
			} else if value.Valid {
				_m.DependsOnTaskID = new(string)
				*_m.DependsOnTaskID = value.String
			}
		case taskdependency.FieldDependsOnCommitmentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field depends_on_commitment_id", values[i])
			} else if value.Valid {
				_m.DependsOnCommitmentID = new(string)
				*_m.DependsOnCommitmentID = value.String
			}
		case taskdependency.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the TaskDependency.
// This includes values selected through modifiers, order, etc.
func (_m *TaskDependency) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this TaskDependency.
// Note that you need to call TaskDependency.Unwrap() before calling this method if this TaskDependency
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TaskDependency) Update() *TaskDependencyUpdateOne {
	return NewTaskDependencyClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TaskDependency entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TaskDependency) Unwrap() *TaskDependency {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TaskDependency is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TaskDependency) String() string {
	var builder strings.Builder
	builder.WriteString("TaskDependency(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("owner_id=")
	builder.WriteString(_m.OwnerID)
	builder.WriteString(", ")
	builder.WriteString("task_id=")
	builder.WriteString(_m.TaskID)
	builder.WriteString(", ")
	if v := _m.DependsOnTaskID; v != nil {
		builder.WriteString("depends_on_task_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.DependsOnCommitmentID; v != nil {
		builder.WriteString("depends_on_commitment_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// TaskDependencies is a parsable slice of TaskDependency.
type TaskDependencies []*TaskDependency
