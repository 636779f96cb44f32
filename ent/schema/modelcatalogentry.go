package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ModelCatalogEntry holds the schema definition for the ModelCatalogEntry
// entity, the global (not owner-scoped) list of dispatchable models with
// pricing. Prices are $/1M tokens and may be null while a placeholder is in
// effect; cost accounting skips rows where either price is missing.
type ModelCatalogEntry struct {
	ent.Schema
}

// Fields of the ModelCatalogEntry.
func (ModelCatalogEntry) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.Enum("provider").
			Values("openai", "anthropic"),
		field.String("model_id").
			NotEmpty(),
		field.String("display_name").
			NotEmpty(),
		field.Float("input_price_per_mtok").
			Optional().
			Nillable(),
		field.Float("output_price_per_mtok").
			Optional().
			Nillable(),
		field.Enum("tier").
			Values("standard", "flex", "priority").
			Optional().
			Nillable(),
		field.Bool("enabled").
			Default(true),
		field.Bool("pricing_is_placeholder").
			Default(false),
		field.Int("sort_order").
			Default(0),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the ModelCatalogEntry.
func (ModelCatalogEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("provider", "model_id").
			Unique(),
	}
}
