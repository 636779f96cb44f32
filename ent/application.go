// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/missionctl/missionctl/ent/application"
)

// Application is the model entity for the Application schema.
type Application struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// OwnerID holds the value of the "owner_id" field.
	OwnerID string `json:"owner_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Phase holds the value of the "phase" field.
	Phase application.Phase `json:"phase,omitempty"`
	// Rag holds the value of the "rag" field.
	Rag application.Rag `json:"rag,omitempty"`
	// Feeds the planner's implementation multiplier table
	PriorityWeight int `json:"priority_weight,omitempty"`
	// PortfolioRank holds the value of the "portfolio_rank" field.
	PortfolioRank *int `json:"portfolio_rank,omitempty"`
	// Stakeholders holds the value of the "stakeholders" field.
	Stakeholders []string `json:"stakeholders,omitempty"`
	// Hints for intake extraction application matching
	Keywords []string `json:"keywords,omitempty"`
	// StatusSummary holds the value of the "status_summary" field.
	StatusSummary *string `json:"status_summary,omitempty"`
	// NextMilestone holds the value of the "next_milestone" field.
	NextMilestone *string `json:"next_milestone,omitempty"`
	// TargetDate holds the value of the "target_date" field.
	TargetDate *time.Time `json:"target_date,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Application) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case application.FieldStakeholders, application.FieldKeywords:
			values[i] = new([]byte)
		case application.FieldPriorityWeight, application.FieldPortfolioRank:
			values[i] = new(sql.NullInt64)
		case application.FieldID, application.FieldOwnerID, application.FieldName, application.FieldPhase, application.FieldRag, application.FieldStatusSummary, application.FieldNextMilestone:
			values[i] = new(sql.NullString)
		case application.FieldTargetDate, application.FieldCreatedAt, application.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Application fields.
func (_m *Application) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case application.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case application.FieldOwnerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field owner_id", values[i])
			} else if value.Valid {
				_m.OwnerID = value.String
			}
		case application.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case application.FieldPhase:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field phase", values[i])
			} else if value.Valid {
				_m.Phase = application.Phase(value.String)
			}
		case application.FieldRag:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field rag", values[i])
			} else if value.Valid {
				_m.Rag = application.Rag(value.String)
			}
		case application.FieldPriorityWeight:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field priority_weight", values[i])
			} else if value.Valid {
				_m.PriorityWeight = int(value.Int64)
			}
		case application.FieldPortfolioRank:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field portfolio_rank", values[i])
			} else if value.Valid {
				_m.PortfolioRank = new(int)
				*_m.PortfolioRank = int(value.Int64)
			}
		case application.FieldStakeholders:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field stakeholders", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Stakeholders); err != nil {
					return fmt.Errorf("unmarshal field stakeholders: %w", err)
				}
			}
		case application.FieldKeywords:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field keywords", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Keywords); err != nil {
					return fmt.Errorf("unmarshal field keywords: %w", err)
				}
			}
		case application.FieldStatusSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status_summary", values[i])
			} else if value.Valid {
				_m.StatusSummary = new(string)
				*_m.StatusSummary = value.String
			}
		case application.FieldNextMilestone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field next_milestone", values[i])
			} else if value.Valid {
				_m.NextMilestone = new(string)
				*_m.NextMilestone = value.String
			}
		case application.FieldTargetDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field target_date", values[i])
			} else if value.Valid {
				_m.TargetDate = new(time.Time)
				*_m.TargetDate = value.Time
			}
		case application.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case application.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Application.
// This includes values selected through modifiers, order, etc.
func (_m *Application) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Application.
// Note that you need to call Application.Unwrap() before calling this method if this Application
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Application) Update() *ApplicationUpdateOne {
	return NewApplicationClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Application entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Application) Unwrap() *Application {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Application is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Application) String() string {
	var builder strings.Builder
	builder.WriteString("Application(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("owner_id=")
	builder.WriteString(_m.OwnerID)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("phase=")
	builder.WriteString(fmt.Sprintf("%v", _m.Phase))
	builder.WriteString(", ")
	builder.WriteString("rag=")
	builder.WriteString(fmt.Sprintf("%v", _m.Rag))
	builder.WriteString(", ")
	builder.WriteString("priority_weight=")
	builder.WriteString(fmt.Sprintf("%v", _m.PriorityWeight))
	builder.WriteString(", ")
	if v := _m.PortfolioRank; v != nil {
		builder.WriteString("portfolio_rank=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("stakeholders=")
	builder.WriteString(fmt.Sprintf("%v", _m.Stakeholders))
	builder.WriteString(", ")
	builder.WriteString("keywords=")
	builder.WriteString(fmt.Sprintf("%v", _m.Keywords))
	builder.WriteString(", ")
	if v := _m.StatusSummary; v != nil {
		builder.WriteString("status_summary=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.NextMilestone; v != nil {
		builder.WriteString("next_milestone=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.TargetDate; v != nil {
		builder.WriteString("target_date=")
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

// Applications is a parsable slice of Application.
type Applications []*Application
