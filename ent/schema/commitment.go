package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Commitment holds the schema definition for the Commitment entity, a
// two-party promise attached to a stakeholder. Tasks may depend on one.
type Commitment struct {
	ent.Schema
}

// Fields of the Commitment.
func (Commitment) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("owner_id").
			Immutable(),
		field.String("stakeholder").
			NotEmpty(),
		field.Text("description").
			NotEmpty(),
		field.Enum("direction").
			Values("ours", "theirs"),
		field.Enum("status").
			Values("open", "satisfied").
			Default("open"),
		field.Time("due_at").
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

// Indexes of the Commitment.
func (Commitment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("owner_id", "status"),
	}
}
