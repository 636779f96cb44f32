package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TaskDependency holds the schema definition for the TaskDependency entity.
// A dependency targets exactly one of another task or a commitment; the
// service layer rejects self-dependencies and circular task chains before
// insert. A dependency is unresolved while its target is not done/satisfied.
type TaskDependency struct {
	ent.Schema
}

// Fields of the TaskDependency.
func (TaskDependency) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("owner_id").
			Immutable(),
		field.String("task_id").
			Immutable(),
		field.String("depends_on_task_id").
			Optional().
			Nillable().
			Immutable(),
		field.String("depends_on_commitment_id").
			Optional().
			Nillable().
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the TaskDependency.
func (TaskDependency) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("task_id", "depends_on_task_id").
			Unique(),
		index.Fields("task_id", "depends_on_commitment_id").
			Unique(),
		index.Fields("owner_id", "task_id"),
	}
}
