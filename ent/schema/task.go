package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Task holds the schema definition for the Task entity. Tasks are the unit
// of work the planner ranks; everything else in the system exists to create,
// score, or schedule them.
type Task struct {
	ent.Schema
}

// Fields of the Task.
func (Task) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("owner_id").
			Immutable().
			Comment("Authenticated user that owns this task; every query filters on it"),
		field.String("title").
			NotEmpty(),
		field.Text("description").
			Optional().
			Nillable(),
		field.String("application_id").
			Optional().
			Nillable().
			Comment("Linked long-running workstream (implementation)"),
		field.String("project_id").
			Optional().
			Nillable(),

		// Lifecycle
		field.Enum("status").
			Values("backlog", "planned", "in_progress", "blocked_waiting", "done").
			Default("backlog"),
		field.Enum("task_type").
			Values("task", "ticket", "meeting_prep", "follow_up", "admin", "build").
			Default("task"),

		// Scoring inputs
		field.Float("priority_score").
			Default(50).
			Range(0, 100),
		field.Int("estimated_minutes").
			Default(30).
			Min(1).
			Max(480),
		field.Enum("estimate_source").
			Values("default", "llm", "manual").
			Default("default"),
		field.Time("due_at").
			Optional().
			Nillable(),
		field.Bool("needs_review").
			Default(false),
		field.Bool("blocker").
			Default(false),
		field.String("waiting_on").
			Optional().
			Nillable(),
		field.Time("follow_up_at").
			Optional().
			Nillable(),
		field.JSON("stakeholder_mentions", []string{}).
			Optional(),

		// Provenance
		field.Enum("source_type").
			Values("manual", "email", "meeting").
			Default("manual"),
		field.String("source_url").
			Optional().
			Nillable(),
		field.String("inbox_item_id").
			Optional().
			Nillable().
			Comment("Inbox item this task was extracted from"),
		field.Text("pinned_excerpt").
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

// Indexes of the Task.
func (Task) Indexes() []ent.Index {
	return []ent.Index{
		// Planner loads all non-done tasks per owner.
		index.Fields("owner_id", "status"),
		index.Fields("owner_id", "due_at"),
		index.Fields("owner_id", "application_id"),
	}
}
