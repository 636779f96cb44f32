package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// InboxItem holds the schema definition for the InboxItem entity, the
// metadata-only record of an inbound intake event. The raw body snippet is
// never stored; only the extraction result and triage state are persisted.
// (owner_id, dedupe_key) uniqueness makes intake idempotent.
type InboxItem struct {
	ent.Schema
}

// Fields of the InboxItem.
func (InboxItem) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("owner_id").
			Immutable(),
		field.String("dedupe_key").
			NotEmpty().
			Immutable().
			Comment("SHA-256 over (owner|message_id) or the composite fallback"),
		field.String("subject").
			Immutable(),
		field.String("from_email").
			Immutable(),
		field.String("from_name").
			Optional().
			Nillable().
			Immutable(),
		field.Time("received_at").
			Immutable(),
		field.String("message_id").
			Optional().
			Nillable().
			Immutable(),
		field.String("source_url").
			Optional().
			Nillable().
			Immutable(),
		field.Enum("triage_state").
			Values("new", "processed", "error").
			Default("new"),
		field.JSON("extraction_json", map[string]interface{}{}).
			Optional(),
		field.String("extraction_model").
			Optional().
			Nillable(),
		field.Float("extraction_confidence").
			Optional().
			Nillable(),
		field.Text("processing_error").
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

// Indexes of the InboxItem.
func (InboxItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("owner_id", "dedupe_key").
			Unique(),
		index.Fields("owner_id", "triage_state"),
	}
}
