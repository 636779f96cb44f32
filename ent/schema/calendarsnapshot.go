package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CalendarSnapshot holds the schema definition for the CalendarSnapshot
// entity. Snapshots capture the canonicalized event sequence of a range
// request and exist only to compute deltas against the next request; rows
// older than the retention horizon are pruned lazily.
type CalendarSnapshot struct {
	ent.Schema
}

// Fields of the CalendarSnapshot.
func (CalendarSnapshot) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("owner_id").
			Immutable(),
		field.String("range_start").
			Immutable().
			Comment("YYYY-MM-DD"),
		field.String("range_end").
			Immutable().
			Comment("YYYY-MM-DD"),
		field.JSON("payload_min", []map[string]interface{}{}).
			Immutable().
			Comment("Ordered (external_event_id, start_at, end_at, content_hash) tuples"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the CalendarSnapshot.
func (CalendarSnapshot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("owner_id", "range_start", "range_end", "created_at"),
		index.Fields("created_at"),
	}
}
