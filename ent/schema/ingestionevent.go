package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// IngestionEvent holds the schema definition for the IngestionEvent entity,
// the append-only audit trail of the intake pipeline.
type IngestionEvent struct {
	ent.Schema
}

// Fields of the IngestionEvent.
func (IngestionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("owner_id").
			Immutable(),
		field.String("inbox_item_id").
			Optional().
			Nillable().
			Immutable(),
		field.Enum("event_type").
			Values("deduped", "received", "extracted", "task_created", "error").
			Immutable(),
		field.Text("detail").
			Optional().
			Nillable().
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the IngestionEvent.
func (IngestionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("owner_id", "created_at"),
		index.Fields("inbox_item_id"),
	}
}
