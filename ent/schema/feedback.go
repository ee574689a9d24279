package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Feedback holds the schema definition for human feedback rows.
// Feedback is append-only; the orchestrator consumes unprocessed rows
// between state-machine transitions and between steps.
type Feedback struct {
	ent.Schema
}

// Fields of the Feedback.
func (Feedback) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("feedback_id").
			Unique().
			Immutable(),
		field.String("investigation_id").
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.String("user_id").
			Immutable(),

		field.Enum("type").
			Values("verdict_correction", "step_feedback", "note", "escalation"),
		field.JSON("content", map[string]interface{}{}),

		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("consumed_at").
			Optional().
			Nillable().
			Comment("Set when the orchestrator has acted on this feedback"),
	}
}

// Edges of the Feedback.
func (Feedback) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("investigation", Investigation.Type).
			Ref("feedback").
			Field("investigation_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Feedback.
func (Feedback) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("investigation_id", "created_at"),
		index.Fields("tenant_id", "investigation_id"),
	}
}
