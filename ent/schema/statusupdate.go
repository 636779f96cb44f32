package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StatusUpdate holds the schema definition for the StatusUpdate entity, the
// log of Teams-ready copy-update snippets generated for an application.
type StatusUpdate struct {
	ent.Schema
}

// Fields of the StatusUpdate.
func (StatusUpdate) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("owner_id").
			Immutable(),
		field.String("application_id").
			Immutable(),
		field.Text("snippet").
			NotEmpty().
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the StatusUpdate.
func (StatusUpdate) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("owner_id", "application_id", "created_at"),
	}
}
