package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Plan holds the schema definition for the Plan entity, an immutable
// scoring snapshot for a given (owner, plan_date). Plans are append-only;
// the latest row by created_at is authoritative for the date.
type Plan struct {
	ent.Schema
}

// Fields of the Plan.
func (Plan) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("owner_id").
			Immutable(),
		field.String("plan_date").
			Immutable().
			Comment("YYYY-MM-DD in the workday timezone"),
		field.String("source").
			Default("planner_v1.1").
			Immutable(),
		field.JSON("inputs_snapshot", map[string]interface{}{}).
			Immutable(),
		field.JSON("plan_json", map[string]interface{}{}).
			Immutable(),
		field.JSON("reasons_json", map[string]interface{}{}).
			Immutable(),
		field.Enum("status").
			Values("proposed", "applied").
			Default("proposed"),
		field.Time("applied_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the Plan.
func (Plan) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("owner_id", "plan_date", "created_at"),
	}
}
