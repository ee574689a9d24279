package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ApprovalRequest holds the schema definition for human approval gates.
// If a producer omits the request ID, the event bus synthesizes a
// deterministic one and marks the request verified=false.
type ApprovalRequest struct {
	ent.Schema
}

// Fields of the ApprovalRequest.
func (ApprovalRequest) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("request_id").
			Unique().
			Immutable(),
		field.String("run_id").
			Immutable(),
		field.String("tenant_id").
			Immutable(),

		field.String("title"),
		field.String("description").
			Optional(),
		field.Enum("risk").
			Values("low", "medium", "high", "critical").
			Default("medium"),
		field.JSON("action_payload", map[string]interface{}{}).
			Optional().
			Comment("The action awaiting approval"),

		field.Enum("status").
			Values("pending", "approved", "rejected", "expired").
			Default("pending"),
		field.Bool("verified").
			Default(true).
			Comment("false when the request ID was synthesized by the bus"),

		field.Time("requested_at").
			Default(time.Now).
			Immutable(),
		field.Time("responded_at").
			Optional().
			Nillable(),
		field.String("responded_by").
			Optional().
			Nillable(),
	}
}

// Edges of the ApprovalRequest.
func (ApprovalRequest) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("investigation", Investigation.Type).
			Ref("approvals").
			Field("run_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the ApprovalRequest.
func (ApprovalRequest) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "run_id"),
		index.Fields("status"),
	}
}
