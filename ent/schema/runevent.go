package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RunEvent holds the schema definition for the per-run event log.
// The (run_id, sequence) unique index is the server-side guarantee that
// published sequences form 1..N with no gaps or duplicates.
type RunEvent struct {
	ent.Schema
}

// Fields of the RunEvent.
func (RunEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("run_id").
			Immutable().
			Comment("Investigation/run identity of the event stream"),
		field.String("tenant_id").
			Immutable(),
		field.Int64("sequence").
			Immutable().
			Comment("Strictly monotonic per run, starting at 1"),
		field.String("method").
			Immutable().
			Comment("e.g. run/started, turn/planner/completed, item/evidence"),
		field.JSON("params", map[string]interface{}{}).
			Comment("Full event params including envelope fields"),
		field.Time("ts").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the RunEvent.
func (RunEvent) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("investigation", Investigation.Type).
			Ref("run_events").
			Field("run_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the RunEvent.
func (RunEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id", "sequence").
			Unique(),
		index.Fields("tenant_id", "run_id"),
	}
}
