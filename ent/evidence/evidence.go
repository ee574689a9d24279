// Code generated by ent, DO NOT EDIT.

package evidence

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the evidence type in the database.
	Label = "evidence"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "evidence_id"
	// FieldInvestigationID holds the string denoting the investigation_id field in the database.
	FieldInvestigationID = "investigation_id"
	// FieldTenantID holds the string denoting the tenant_id field in the database.
	FieldTenantID = "tenant_id"
	// FieldStepID holds the string denoting the step_id field in the database.
	FieldStepID = "step_id"
	// FieldType holds the string denoting the type field in the database.
	FieldType = "type"
	// FieldSource holds the string denoting the source field in the database.
	FieldSource = "source"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldPayload holds the string denoting the payload field in the database.
	FieldPayload = "payload"
	// FieldEntities holds the string denoting the entities field in the database.
	FieldEntities = "entities"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldQualityScore holds the string denoting the quality_score field in the database.
	FieldQualityScore = "quality_score"
	// FieldScoreBreakdown holds the string denoting the score_breakdown field in the database.
	FieldScoreBreakdown = "score_breakdown"
	// FieldTags holds the string denoting the tags field in the database.
	FieldTags = "tags"
	// FieldSupersedes holds the string denoting the supersedes field in the database.
	FieldSupersedes = "supersedes"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeInvestigation holds the string denoting the investigation edge name in mutations.
	EdgeInvestigation = "investigation"
	// EdgeOutgoingRelationships holds the string denoting the outgoing_relationships edge name in mutations.
	EdgeOutgoingRelationships = "outgoing_relationships"
	// InvestigationFieldID holds the string denoting the ID field of the Investigation.
	InvestigationFieldID = "investigation_id"
	// EvidenceRelationshipFieldID holds the string denoting the ID field of the EvidenceRelationship.
	EvidenceRelationshipFieldID = "relationship_id"
	// Table holds the table name of the evidence in the database.
	Table = "evidences"
	// InvestigationTable is the table that holds the investigation relation/edge.
	InvestigationTable = "evidences"
	// InvestigationInverseTable is the table name for the Investigation entity.
	// It exists in this package in order to avoid circular dependency with the "investigation" package.
	InvestigationInverseTable = "investigations"
	// InvestigationColumn is the table column denoting the investigation relation/edge.
	InvestigationColumn = "investigation_id"
	// OutgoingRelationshipsTable is the table that holds the outgoing_relationships relation/edge.
	OutgoingRelationshipsTable = "evidence_relationships"
	// OutgoingRelationshipsInverseTable is the table name for the EvidenceRelationship entity.
	// It exists in this package in order to avoid circular dependency with the "evidencerelationship" package.
	OutgoingRelationshipsInverseTable = "evidence_relationships"
	// OutgoingRelationshipsColumn is the table column denoting the outgoing_relationships relation/edge.
	OutgoingRelationshipsColumn = "from_evidence_id"
)

// Columns holds all SQL columns for evidence fields.
var Columns = []string{
	FieldID,
	FieldInvestigationID,
	FieldTenantID,
	FieldStepID,
	FieldType,
	FieldSource,
	FieldTimestamp,
	FieldPayload,
	FieldEntities,
	FieldConfidence,
	FieldQualityScore,
	FieldScoreBreakdown,
	FieldTags,
	FieldSupersedes,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultConfidence holds the default value on creation for the "confidence" field.
	DefaultConfidence float64
	// DefaultQualityScore holds the default value on creation for the "quality_score" field.
	DefaultQualityScore float64
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Type defines the type for the "type" enum field.
type Type string

// TypeOther is the default value of the Type enum.
const DefaultType = TypeOther

// Type values.
const (
	TypeNetwork     Type = "network"
	TypeProcess     Type = "process"
	TypeFile        Type = "file"
	TypeLog         Type = "log"
	TypeAlert       Type = "alert"
	TypeEnrichment  Type = "enrichment"
	TypeCorrelation Type = "correlation"
	TypeOther       Type = "other"
)

func (_type Type) String() string {
	return string(_type)
}

// TypeValidator is a validator for the "type" field enum values. It is called by the builders before save.
func TypeValidator(_type Type) error {
	switch _type {
	case TypeNetwork, TypeProcess, TypeFile, TypeLog, TypeAlert, TypeEnrichment, TypeCorrelation, TypeOther:
		return nil
	default:
		return fmt.Errorf("evidence: invalid enum value for type field: %q", _type)
	}
}

// OrderOption defines the ordering options for the Evidence queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByInvestigationID orders the results by the investigation_id field.
func ByInvestigationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInvestigationID, opts...).ToFunc()
}

// ByTenantID orders the results by the tenant_id field.
func ByTenantID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTenantID, opts...).ToFunc()
}

// ByStepID orders the results by the step_id field.
func ByStepID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStepID, opts...).ToFunc()
}

// ByType orders the results by the type field.
func ByType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldType, opts...).ToFunc()
}

// BySource orders the results by the source field.
func BySource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSource, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByQualityScore orders the results by the quality_score field.
func ByQualityScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQualityScore, opts...).ToFunc()
}

// BySupersedes orders the results by the supersedes field.
func BySupersedes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSupersedes, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByInvestigationField orders the results by investigation field.
func ByInvestigationField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newInvestigationStep(), sql.OrderByField(field, opts...))
	}
}

// ByOutgoingRelationshipsCount orders the results by outgoing_relationships count.
func ByOutgoingRelationshipsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newOutgoingRelationshipsStep(), opts...)
	}
}

// ByOutgoingRelationships orders the results by outgoing_relationships terms.
func ByOutgoingRelationships(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newOutgoingRelationshipsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newInvestigationStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(InvestigationInverseTable, InvestigationFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, InvestigationTable, InvestigationColumn),
	)
}
func newOutgoingRelationshipsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(OutgoingRelationshipsInverseTable, EvidenceRelationshipFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, OutgoingRelationshipsTable, OutgoingRelationshipsColumn),
	)
}
