package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CalendarEvent holds the schema definition for the CalendarEvent entity.
// Ingest is idempotent on (owner, source, external_event_id, start_at); a
// changed content_hash updates the row in place, and events that disappear
// from an ingested range are soft-removed rather than deleted.
type CalendarEvent struct {
	ent.Schema
}

// Fields of the CalendarEvent.
func (CalendarEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("owner_id").
			Immutable(),
		field.Enum("source").
			Values("local", "ical", "graph").
			Immutable(),
		field.String("external_event_id").
			NotEmpty().
			Immutable(),
		field.Time("start_at").
			Immutable().
			Comment("UTC"),
		field.Time("end_at").
			Comment("UTC"),
		field.String("title"),
		field.Text("body_preview").
			Optional().
			Comment("Sanitized; raw bodies never persist"),
		field.Bool("is_all_day").
			Default(false),
		field.String("content_hash").
			Comment("SHA-256 over canonicalized title|start|end|sanitized body"),
		field.Text("meeting_context").
			Optional().
			Nillable().
			MaxLen(8000),
		field.Time("removed_at").
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

// Indexes of the CalendarEvent.
func (CalendarEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("owner_id", "source", "external_event_id", "start_at").
			Unique(),
		index.Fields("owner_id", "start_at"),
	}
}
