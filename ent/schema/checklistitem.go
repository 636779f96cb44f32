package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ChecklistItem holds the schema definition for the ChecklistItem entity.
// Intake extraction emits one row per suggested checklist entry; sort_order
// preserves the extractor's ordering.
type ChecklistItem struct {
	ent.Schema
}

// Fields of the ChecklistItem.
func (ChecklistItem) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("owner_id").
			Immutable(),
		field.String("task_id").
			Immutable(),
		field.String("label").
			NotEmpty(),
		field.Int("sort_order").
			Default(0),
		field.Bool("done").
			Default(false),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the ChecklistItem.
func (ChecklistItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("task_id", "sort_order"),
	}
}
