package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// FocusDirective holds the schema definition for the FocusDirective entity,
// a scoped multiplier that re-weights the portfolio at plan time. At most one
// directive is active per owner; activating a new one deactivates the rest
// (service-layer invariant).
type FocusDirective struct {
	ent.Schema
}

// Fields of the FocusDirective.
func (FocusDirective) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("owner_id").
			Immutable(),
		field.Text("directive_text").
			NotEmpty(),
		field.Enum("scope_type").
			Values("application", "stakeholder", "task_type", "query"),
		field.String("scope_id").
			Optional().
			Nillable().
			Comment("Application id for scope_type=application"),
		field.String("scope_value").
			Optional().
			Nillable().
			Comment("Trimmed match value for stakeholder/task_type/query scopes"),
		field.Enum("strength").
			Values("nudge", "strong", "hard").
			Default("nudge"),
		field.Bool("is_active").
			Default(true),
		field.Time("starts_at").
			Optional().
			Nillable(),
		field.Time("ends_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the FocusDirective.
func (FocusDirective) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("owner_id", "is_active"),
	}
}
