// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/missionctl/missionctl/ent/modelcatalogentry"
)

// ModelCatalogEntry is the model entity for the ModelCatalogEntry schema.
type ModelCatalogEntry struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Provider holds the value of the "provider" field.
	Provider modelcatalogentry.Provider `json:"provider,omitempty"`
	// ModelID holds the value of the "model_id" field.
	ModelID string `json:"model_id,omitempty"`
	// DisplayName holds the value of the "display_name" field.
	DisplayName string `json:"display_name,omitempty"`
	// InputPricePerMtok holds the value of the "input_price_per_mtok" field.
	InputPricePerMtok *float64 `json:"input_price_per_mtok,omitempty"`
	// OutputPricePerMtok holds the value of the "output_price_per_mtok" field.
	OutputPricePerMtok *float64 `json:"output_price_per_mtok,omitempty"`
	// Tier holds the value of the "tier" field.
	Tier *modelcatalogentry.Tier `json:"tier,omitempty"`
	// Enabled holds the value of the "enabled" field.
	Enabled bool `json:"enabled,omitempty"`
	// PricingIsPlaceholder holds the value of the "pricing_is_placeholder" field.
	PricingIsPlaceholder bool `json:"pricing_is_placeholder,omitempty"`
	// SortOrder holds the value of the "sort_order" field.
	SortOrder int `json:"sort_order,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ModelCatalogEntry) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case modelcatalogentry.FieldEnabled, modelcatalogentry.FieldPricingIsPlaceholder:
			values[i] = new(sql.NullBool)
		case modelcatalogentry.FieldInputPricePerMtok, modelcatalogentry.FieldOutputPricePerMtok:
			values[i] = new(sql.NullFloat64)
		case modelcatalogentry.FieldSortOrder:
			values[i] = new(sql.NullInt64)
		case modelcatalogentry.FieldID, modelcatalogentry.FieldProvider, modelcatalogentry.FieldModelID, modelcatalogentry.FieldDisplayName, modelcatalogentry.FieldTier:
			values[i] = new(sql.NullString)
		case modelcatalogentry.FieldCreatedAt, modelcatalogentry.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ModelCatalogEntry fields.
func (_m *ModelCatalogEntry) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case modelcatalogentry.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case modelcatalogentry.FieldProvider:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field provider", values[i])
			} else if value.Valid {
				_m.Provider = modelcatalogentry.Provider(value.String)
			}
		case modelcatalogentry.FieldModelID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model_id", values[i])
			} else if value.Valid {
				_m.ModelID = value.String
			}
		case modelcatalogentry.FieldDisplayName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field display_name", values[i])
			} else if value.Valid {
				_m.DisplayName = value.String
			}
		case modelcatalogentry.FieldInputPricePerMtok:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field input_price_per_mtok", values[i])
			} else if value.Valid {
				_m.InputPricePerMtok = new(float64)
				*_m.InputPricePerMtok = value.Float64
			}
		case modelcatalogentry.FieldOutputPricePerMtok:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field output_price_per_mtok", values[i])
			} else if value.Valid {
				_m.OutputPricePerMtok = new(float64)
				*_m.OutputPricePerMtok = value.Float64
			}
		case modelcatalogentry.FieldTier:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tier", values[i])
			} else if value.Valid {
				_m.Tier = new(modelcatalogentry.Tier)
				*_m.Tier = modelcatalogentry.Tier(value.String)
			}
		case modelcatalogentry.FieldEnabled:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field enabled", values[i])
			} else if value.Valid {
				_m.Enabled = value.Bool
			}
		case modelcatalogentry.FieldPricingIsPlaceholder:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field pricing_is_placeholder", values[i])
			} else if value.Valid {
				_m.PricingIsPlaceholder = value.Bool
			}
		case modelcatalogentry.FieldSortOrder:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sort_order", values[i])
			} else if value.Valid {
				_m.SortOrder = int(value.Int64)
			}
		case modelcatalogentry.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case modelcatalogentry.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the ModelCatalogEntry.
// This includes values selected through modifiers, order, etc.
func (_m *ModelCatalogEntry) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ModelCatalogEntry.
// Note that you need to call ModelCatalogEntry.Unwrap() before calling this method if this ModelCatalogEntry
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ModelCatalogEntry) Update() *ModelCatalogEntryUpdateOne {
	return NewModelCatalogEntryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ModelCatalogEntry entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ModelCatalogEntry) Unwrap() *ModelCatalogEntry {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ModelCatalogEntry is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ModelCatalogEntry) String() string {
	var builder strings.Builder
	builder.WriteString("ModelCatalogEntry(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("provider=")
	builder.WriteString(fmt.Sprintf("%v", _m.Provider))
	builder.WriteString(", ")
	builder.WriteString("model_id=")
	builder.WriteString(_m.ModelID)
	builder.WriteString(", ")
	builder.WriteString("display_name=")
	builder.WriteString(_m.DisplayName)
	builder.WriteString(", ")
	if v := _m.InputPricePerMtok; v != nil {
		builder.WriteString("input_price_per_mtok=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.OutputPricePerMtok; v != nil {
		builder.WriteString("output_price_per_mtok=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Tier; v != nil {
		builder.WriteString("tier=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("enabled=")
	builder.WriteString(fmt.Sprintf("%v", _m.Enabled))
	builder.WriteString(", ")
	builder.WriteString("pricing_is_placeholder=")
	builder.WriteString(fmt.Sprintf("%v", _m.PricingIsPlaceholder))
	builder.WriteString(", ")
	builder.WriteString("sort_order=")
	builder.WriteString(fmt.Sprintf("%v", _m.SortOrder))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ModelCatalogEntries is a parsable slice of ModelCatalogEntry.
type ModelCatalogEntries []*ModelCatalogEntry
