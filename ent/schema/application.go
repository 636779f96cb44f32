package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Application holds the schema definition for the Application entity, a
// long-running workstream (elsewhere called "implementation") that tasks and
// projects hang off of. portfolio_rank induces a strict total order per owner
// when all ranks are set; uniqueness is enforced by a partial index in the
// migrations since it only applies to non-null ranks.
type Application struct {
	ent.Schema
}

// Fields of the Application.
func (Application) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("owner_id").
			Immutable(),
		field.String("name").
			NotEmpty(),
		field.Enum("phase").
			Values("intake", "discovery", "design", "build", "test", "training",
				"go_live", "hypercare", "steady_state", "sundown").
			Default("intake"),
		field.Enum("rag").
			Values("green", "yellow", "red").
			Default("green"),
		field.Int("priority_weight").
			Default(5).
			Range(0, 10).
			Comment("Feeds the planner's implementation multiplier table"),
		field.Int("portfolio_rank").
			Optional().
			Nillable().
			Min(1),
		field.JSON("stakeholders", []string{}).
			Optional(),
		field.JSON("keywords", []string{}).
			Optional().
			Comment("Hints for intake extraction application matching"),
		field.Text("status_summary").
			Optional().
			Nillable(),
		field.String("next_milestone").
			Optional().
			Nillable(),
		field.Time("target_date").
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

// Indexes of the Application.
func (Application) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("owner_id", "portfolio_rank"),
	}
}
