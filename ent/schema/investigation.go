package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Investigation holds the schema definition for the Investigation entity.
// An investigation is the unit of work triggered by one alert: it owns a
// plan (DAG of steps), the evidence gathered, and the final verdict.
type Investigation struct {
	ent.Schema
}

// Fields of the Investigation.
func (Investigation) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("investigation_id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.String("alert_id").
			Immutable(),
		field.String("correlation_key").
			Immutable().
			Comment("Idempotency scope: (tenant_id, alert_id, correlation_key) is unique"),
		field.String("user_id").
			Optional().
			Nillable(),

		// Alert snapshot (alerts are created externally and immutable after ingest)
		field.String("alert_title").
			Optional(),
		field.Enum("alert_severity").
			Values("critical", "high", "medium", "low").
			Default("medium"),
		field.String("alert_source").
			Optional(),
		field.Time("alert_timestamp").
			Optional().
			Nillable(),
		field.JSON("alert_payload", map[string]interface{}{}).
			Optional(),
		field.JSON("alert_entities", map[string][]string{}).
			Optional(),

		field.Int("priority").
			Default(3).
			Comment("1..5, higher admitted first"),
		field.Enum("status").
			Values("queued", "planning", "executing", "analyzing", "responding",
				"awaiting_approval", "paused", "complete", "requires_review",
				"failed", "timed_out").
			Default("queued"),
		field.Int64("timeout_ms").
			Default(1_800_000),

		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("started_at").
			Optional().
			Nillable().
			Comment("When admitted to the running set"),
		field.Time("completed_at").
			Optional().
			Nillable(),

		field.JSON("verdict", map[string]interface{}{}).
			Optional().
			Comment("classification, confidence, reasoning, limitations, recommendations"),
		field.String("error_message").
			Optional().
			Nillable(),
		field.JSON("execution_summary", map[string]interface{}{}).
			Optional(),
		field.JSON("metadata", map[string]interface{}{}).
			Optional(),

		field.String("pod_id").
			Optional().
			Nillable().
			Comment("For multi-replica coordination"),
		field.Time("last_heartbeat_at").
			Optional().
			Nillable().
			Comment("For orphan detection"),
		field.Time("deleted_at").
			Optional().
			Nillable().
			Comment("Soft delete for retention policy"),
	}
}

// Edges of the Investigation.
func (Investigation) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("steps", PlanStep.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("evidence", Evidence.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("feedback", Feedback.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("approvals", ApprovalRequest.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("run_events", RunEvent.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Investigation.
func (Investigation) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "alert_id", "correlation_key").
			Unique(),
		index.Fields("tenant_id", "status"),
		index.Fields("tenant_id", "created_at"),
		index.Fields("status", "priority", "created_at"),
		index.Fields("status", "last_heartbeat_at"),
		index.Fields("deleted_at").
			Annotations(entsql.IndexWhere("deleted_at IS NOT NULL")),
	}
}
