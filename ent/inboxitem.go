// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/missionctl/missionctl/ent/inboxitem"
)

// InboxItem is the model entity for the InboxItem schema.
type InboxItem struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// OwnerID holds the value of the "owner_id" field.
	OwnerID string `json:"owner_id,omitempty"`
	// SHA-256 over (owner|message_id) or the composite fallback
	DedupeKey string `json:"dedupe_key,omitempty"`
	// Subject holds the value of the "subject" field.
	Subject string `json:"subject,omitempty"`
	// FromEmail holds the value of the "from_email" field.
	FromEmail string `json:"from_email,omitempty"`
	// FromName holds the value of the "from_name" field.
	FromName *string `json:"from_name,omitempty"`
	// ReceivedAt holds the value of the "received_at" field.
	ReceivedAt time.Time `json:"received_at,omitempty"`
	// MessageID holds the value of the "message_id" field.
	MessageID *string `json:"message_id,omitempty"`
	// SourceURL holds the value of the "source_url" field.
	SourceURL *string `json:"source_url,omitempty"`
	// TriageState holds the value of the "triage_state" field.
	TriageState inboxitem.TriageState `json:"triage_state,omitempty"`
	// ExtractionJSON holds the value of the "extraction_json" field.
	ExtractionJSON map[string]interface{} `json:"extraction_json,omitempty"`
	// ExtractionModel holds the value of the "extraction_model" field.
	ExtractionModel *string `json:"extraction_model,omitempty"`
	// ExtractionConfidence holds the value of the "extraction_confidence" field.
	ExtractionConfidence *float64 `json:"extraction_confidence,omitempty"`
	// ProcessingError holds the value of the "processing_error" field.
	ProcessingError *string `json:"processing_error,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*InboxItem) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case inboxitem.FieldExtractionJSON:
			values[i] = new([]byte)
		case inboxitem.FieldExtractionConfidence:
			values[i] = new(sql.NullFloat64)
		case inboxitem.FieldID, inboxitem.FieldOwnerID, inboxitem.FieldDedupeKey, inboxitem.FieldSubject, inboxitem.FieldFromEmail, inboxitem.FieldFromName, inboxitem.FieldMessageID, inboxitem.FieldSourceURL, inboxitem.FieldTriageState, inboxitem.FieldExtractionModel, inboxitem.FieldProcessingError:
			values[i] = new(sql.NullString)
		case inboxitem.FieldReceivedAt, inboxitem.FieldCreatedAt, inboxitem.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the InboxItem fields.
func (_m *InboxItem) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case inboxitem.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case inboxitem.FieldOwnerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field owner_id", values[i])
			} else if value.Valid {
				_m.OwnerID = value.String
			}
		case inboxitem.FieldDedupeKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field dedupe_key", values[i])
			} else if value.Valid {
				_m.DedupeKey = value.String
			}
		case inboxitem.FieldSubject:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subject", values[i])
			} else if value.Valid {
				_m.Subject = value.String
			}
		case inboxitem.FieldFromEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field from_email", values[i])
			} else if value.Valid {
				_m.FromEmail = value.String
			}
		case inboxitem.FieldFromName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field from_name", values[i])
			} else if value.Valid {
				_m.FromName = new(string)
				*_m.FromName = value.String
			}
		case inboxitem.FieldReceivedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field received_at", values[i])
			} else if value.Valid {
				_m.ReceivedAt = value.Time
			}
		case inboxitem.FieldMessageID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field message_id", values[i])
			} else if value.Valid {
				_m.MessageID = new(string)
				*_m.MessageID = value.String
			}
		case inboxitem.FieldSourceURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_url", values[i])
			} else if value.Valid {
				_m.SourceURL = new(string)
				*_m.SourceURL = value.String
			}
		case inboxitem.FieldTriageState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field triage_state", values[i])
			} else if value.Valid {
				_m.TriageState = inboxitem.TriageState(value.String)
			}
		case inboxitem.FieldExtractionJSON:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field extraction_json", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ExtractionJSON); err != nil {
					return fmt.Errorf("unmarshal field extraction_json: %w", err)
				}
			}
		case inboxitem.FieldExtractionModel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field extraction_model", values[i])
			} else if value.Valid {
				_m.ExtractionModel = new(string)
				*_m.ExtractionModel = value.String
			}
		case inboxitem.FieldExtractionConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field extraction_confidence", values[i])
			} else if value.Valid {
				_m.ExtractionConfidence = new(float64)
				*_m.ExtractionConfidence = value.Float64
			}
		case inboxitem.FieldProcessingError:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field processing_error", values[i])
			} else if value.Valid {
				_m.ProcessingError = new(string)
				*_m.ProcessingError = value.String
			}
		case inboxitem.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case inboxitem.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the InboxItem.
// This includes values selected through modifiers, order, etc.
func (_m *InboxItem) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this InboxItem.
// Note that you need to call InboxItem.Unwrap() before calling this method if this InboxItem
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *InboxItem) Update() *InboxItemUpdateOne {
	return NewInboxItemClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the InboxItem entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *InboxItem) Unwrap() *InboxItem {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: InboxItem is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *InboxItem) String() string {
	var builder strings.Builder
	builder.WriteString("InboxItem(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("owner_id=")
	builder.WriteString(_m.OwnerID)
	builder.WriteString(", ")
	builder.WriteString("dedupe_key=")
	builder.WriteString(_m.DedupeKey)
	builder.WriteString(", ")
	builder.WriteString("subject=")
	builder.WriteString(_m.Subject)
	builder.WriteString(", ")
	builder.WriteString("from_email=")
	builder.WriteString(_m.FromEmail)
	builder.WriteString(", ")
	if v := _m.FromName; v != nil {
		builder.WriteString("from_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("received_at=")
	builder.WriteString(_m.ReceivedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.MessageID; v != nil {
		builder.WriteString("message_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.SourceURL; v != nil {
		builder.WriteString("source_url=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("triage_state=")
	builder.WriteString(fmt.Sprintf("%v", _m.TriageState))
	builder.WriteString(", ")
	builder.WriteString("extraction_json=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExtractionJSON))
	builder.WriteString(", ")
	if v := _m.ExtractionModel; v != nil {
		builder.WriteString("extraction_model=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ExtractionConfidence; v != nil {
		builder.WriteString("extraction_confidence=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ProcessingError; v != nil {
		builder.WriteString("processing_error=")
		builder.WriteString(*v)
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

// InboxItems is a parsable slice of InboxItem.
type InboxItems []*InboxItem
