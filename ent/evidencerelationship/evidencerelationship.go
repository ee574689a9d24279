// Code generated by ent, DO NOT EDIT.

package evidencerelationship

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the evidencerelationship type in the database.
	Label = "evidence_relationship"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "relationship_id"
	// FieldTenantID holds the string denoting the tenant_id field in the database.
	FieldTenantID = "tenant_id"
	// FieldInvestigationID holds the string denoting the investigation_id field in the database.
	FieldInvestigationID = "investigation_id"
	// FieldFromEvidenceID holds the string denoting the from_evidence_id field in the database.
	FieldFromEvidenceID = "from_evidence_id"
	// FieldToEvidenceID holds the string denoting the to_evidence_id field in the database.
	FieldToEvidenceID = "to_evidence_id"
	// FieldKind holds the string denoting the kind field in the database.
	FieldKind = "kind"
	// FieldStrength holds the string denoting the strength field in the database.
	FieldStrength = "strength"
	// FieldRationale holds the string denoting the rationale field in the database.
	FieldRationale = "rationale"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeFromEvidence holds the string denoting the from_evidence edge name in mutations.
	EdgeFromEvidence = "from_evidence"
	// EvidenceFieldID holds the string denoting the ID field of the Evidence.
	EvidenceFieldID = "evidence_id"
	// Table holds the table name of the evidencerelationship in the database.
	Table = "evidence_relationships"
	// FromEvidenceTable is the table that holds the from_evidence relation/edge.
	FromEvidenceTable = "evidence_relationships"
	// FromEvidenceInverseTable is the table name for the Evidence entity.
	// It exists in this package in order to avoid circular dependency with the "evidence" package.
	FromEvidenceInverseTable = "evidences"
	// FromEvidenceColumn is the table column denoting the from_evidence relation/edge.
	FromEvidenceColumn = "from_evidence_id"
)

// Columns holds all SQL columns for evidencerelationship fields.
var Columns = []string{
	FieldID,
	FieldTenantID,
	FieldInvestigationID,
	FieldFromEvidenceID,
	FieldToEvidenceID,
	FieldKind,
	FieldStrength,
	FieldRationale,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Kind defines the type for the "kind" enum field.
type Kind string

// Kind values.
const (
	KindTemporal   Kind = "temporal"
	KindEntity     Kind = "entity"
	KindBehavioral Kind = "behavioral"
	KindCausal     Kind = "causal"
)

func (k Kind) String() string {
	return string(k)
}

// KindValidator is a validator for the "kind" field enum values. It is called by the builders before save.
func KindValidator(k Kind) error {
	switch k {
	case KindTemporal, KindEntity, KindBehavioral, KindCausal:
		return nil
	default:
		return fmt.Errorf("evidencerelationship: invalid enum value for kind field: %q", k)
	}
}

// OrderOption defines the ordering options for the EvidenceRelationship queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTenantID orders the results by the tenant_id field.
func ByTenantID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTenantID, opts...).ToFunc()
}

// ByInvestigationID orders the results by the investigation_id field.
func ByInvestigationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInvestigationID, opts...).ToFunc()
}

// ByFromEvidenceID orders the results by the from_evidence_id field.
func ByFromEvidenceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFromEvidenceID, opts...).ToFunc()
}

// ByToEvidenceID orders the results by the to_evidence_id field.
func ByToEvidenceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldToEvidenceID, opts...).ToFunc()
}

// ByKind orders the results by the kind field.
func ByKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKind, opts...).ToFunc()
}

// ByStrength orders the results by the strength field.
func ByStrength(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStrength, opts...).ToFunc()
}

// ByRationale orders the results by the rationale field.
func ByRationale(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRationale, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByFromEvidenceField orders the results by from_evidence field.
func ByFromEvidenceField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newFromEvidenceStep(), sql.OrderByField(field, opts...))
	}
}
func newFromEvidenceStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(FromEvidenceInverseTable, EvidenceFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, FromEvidenceTable, FromEvidenceColumn),
	)
}
