package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ModelPreference holds the schema definition for the ModelPreference entity,
// a per-owner (feature → catalog entry) override used by dispatch
// candidate resolution.
type ModelPreference struct {
	ent.Schema
}

// Fields of the ModelPreference.
func (ModelPreference) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("owner_id").
			Immutable(),
		field.Enum("feature").
			Values("global_default", "briefing_narrative", "intake_extraction"),
		field.String("catalog_id").
			NotEmpty(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the ModelPreference.
func (ModelPreference) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("owner_id", "feature").
			Unique(),
	}
}
