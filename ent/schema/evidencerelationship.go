package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// EvidenceRelationship holds the schema definition for derived links between
// evidence rows. Correlations are stored as separate relationship rows keyed
// by evidence IDs rather than embedded objects, so graph walks are index
// lookups and never cyclic object references.
type EvidenceRelationship struct {
	ent.Schema
}

// Fields of the EvidenceRelationship.
func (EvidenceRelationship) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("relationship_id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.String("investigation_id").
			Immutable(),
		field.String("from_evidence_id").
			Immutable(),
		field.String("to_evidence_id").
			Immutable(),

		field.Enum("kind").
			Values("temporal", "entity", "behavioral", "causal"),
		field.Float("strength").
			Comment("Link strength in [0,1]"),
		field.String("rationale").
			Optional(),

		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the EvidenceRelationship.
func (EvidenceRelationship) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("from_evidence", Evidence.Type).
			Ref("outgoing_relationships").
			Field("from_evidence_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the EvidenceRelationship.
func (EvidenceRelationship) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("from_evidence_id", "to_evidence_id", "kind").
			Unique(),
		index.Fields("tenant_id", "investigation_id"),
		index.Fields("to_evidence_id"),
	}
}
