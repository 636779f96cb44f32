package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// UsageEvent holds the schema definition for the UsageEvent entity, the
// append-only telemetry log of every LLM dispatch attempt, including cache
// hits and skips. Rows past the retention horizon are pruned by the cleanup
// loop and best-effort by the dispatcher itself.
type UsageEvent struct {
	ent.Schema
}

// Fields of the UsageEvent.
func (UsageEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("owner_id").
			Immutable(),
		field.String("feature").
			Immutable(),
		field.String("provider").
			Immutable(),
		field.String("model_id").
			Immutable(),
		field.Enum("model_source").
			Values("feature_override", "global_default", "default").
			Immutable(),
		field.Enum("status").
			Values("success", "timeout", "error", "cache_hit", "skipped_unconfigured").
			Immutable(),
		field.Int("latency_ms").
			Immutable(),
		field.Int("input_tokens").
			Optional().
			Nillable().
			Immutable(),
		field.Int("output_tokens").
			Optional().
			Nillable().
			Immutable(),
		field.Int("total_tokens").
			Optional().
			Nillable().
			Immutable(),
		field.Float("estimated_cost_usd").
			Optional().
			Nillable().
			Immutable(),
		field.String("cache_status").
			Optional().
			Immutable(),
		field.String("request_fingerprint").
			Optional().
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the UsageEvent.
func (UsageEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("owner_id", "created_at"),
		index.Fields("created_at"),
	}
}
