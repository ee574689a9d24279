package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PlanStep holds the schema definition for the PlanStep entity.
// Steps form the DAG of an investigation plan; a step may only run once
// every listed dependency is complete.
type PlanStep struct {
	ent.Schema
}

// Fields of the PlanStep.
func (PlanStep) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("step_id").
			Unique().
			Immutable(),
		field.String("investigation_id").
			Immutable(),
		field.String("tenant_id").
			Immutable(),

		field.String("name"),
		field.Enum("type").
			Values("query", "enrich", "correlate", "validate"),
		field.String("agent").
			Optional().
			Comment("Agent responsible for this step (executor by default)"),
		field.JSON("dependencies", []string{}).
			Optional().
			Comment("Step IDs that must be complete before this step runs"),
		field.JSON("payload", map[string]interface{}{}).
			Optional(),
		field.JSON("data_sources", []string{}).
			Optional().
			Comment("Connector types to try, in order"),
		field.Int64("timeout_ms").
			Default(5_000),
		field.Int("max_retries").
			Default(2),
		field.Bool("critical").
			Default(true).
			Comment("A skipped non-critical step still satisfies downstream dependencies"),

		field.Enum("status").
			Values("pending", "running", "complete", "failed", "skipped").
			Default("pending"),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Int("retry_count").
			Default(0),
		field.String("last_error").
			Optional().
			Nillable(),
		field.String("adapted_from").
			Optional().
			Nillable().
			Comment("Step this one replaces after plan adaptation"),

		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the PlanStep.
func (PlanStep) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("investigation", Investigation.Type).
			Ref("steps").
			Field("investigation_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the PlanStep.
func (PlanStep) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("investigation_id", "status"),
		index.Fields("tenant_id", "investigation_id"),
	}
}
