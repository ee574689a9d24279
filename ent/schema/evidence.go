package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Evidence holds the schema definition for the Evidence entity.
// Evidence rows are append-only: score or confidence updates driven by
// feedback produce a new row pointing at the original via supersedes.
type Evidence struct {
	ent.Schema
}

// Fields of the Evidence.
func (Evidence) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("evidence_id").
			Unique().
			Immutable(),
		field.String("investigation_id").
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.String("step_id").
			Optional().
			Immutable().
			Comment("Step that produced this evidence"),

		field.Enum("type").
			Values("network", "process", "file", "log", "alert", "enrichment", "correlation", "other").
			Default("other"),
		field.String("source").
			Comment("Producing system, e.g. siem / edr / threat_intel"),
		field.Time("timestamp").
			Comment("When the observed activity happened (not when stored)"),
		field.JSON("payload", map[string]interface{}{}).
			Optional(),
		field.JSON("entities", map[string][]string{}).
			Optional().
			Comment("entity kind -> values, e.g. ip -> [10.0.0.5]"),

		field.Float("confidence").
			Default(0.5).
			Comment("Producer confidence in [0,1]"),
		field.Float("quality_score").
			Default(0).
			Comment("Scorer output in [0,1]"),
		field.JSON("score_breakdown", map[string]float64{}).
			Optional(),
		field.JSON("tags", []string{}).
			Optional(),

		field.String("supersedes").
			Optional().
			Nillable().
			Immutable().
			Comment("Evidence ID this row revises (original retained)"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Evidence.
func (Evidence) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("investigation", Investigation.Type).
			Ref("evidence").
			Field("investigation_id").
			Unique().
			Required().
			Immutable(),
		edge.To("outgoing_relationships", EvidenceRelationship.Type),
	}
}

// Indexes of the Evidence.
func (Evidence) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "investigation_id"),
		index.Fields("tenant_id", "type"),
		index.Fields("tenant_id", "source"),
		index.Fields("tenant_id", "timestamp"),
	}
}
