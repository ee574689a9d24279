// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/ent/evidence"
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/ent/evidencerelationship"
)

// EvidenceRelationship is the model entity for the EvidenceRelationship schema.
type EvidenceRelationship struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TenantID holds the value of the "tenant_id" field.
	TenantID string `json:"tenant_id,omitempty"`
	// InvestigationID holds the value of the "investigation_id" field.
	InvestigationID string `json:"investigation_id,omitempty"`
	// FromEvidenceID holds the value of the "from_evidence_id" field.
	FromEvidenceID string `json:"from_evidence_id,omitempty"`
	// ToEvidenceID holds the value of the "to_evidence_id" field.
	ToEvidenceID string `json:"to_evidence_id,omitempty"`
	// Kind holds the value of the "kind" field.
	Kind evidencerelationship.Kind `json:"kind,omitempty"`
	// Link strength in [0,1]
	Strength float64 `json:"strength,omitempty"`
	// Rationale holds the value of the "rationale" field.
	Rationale string `json:"rationale,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the EvidenceRelationshipQuery when eager-loading is set.
	Edges        EvidenceRelationshipEdges `json:"edges"`
	selectValues sql.SelectValues
}

// EvidenceRelationshipEdges holds the relations/edges for other nodes in the graph.
type EvidenceRelationshipEdges struct {
	// FromEvidence holds the value of the from_evidence edge.
	FromEvidence *Evidence `json:"from_evidence,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// FromEvidenceOrErr returns the FromEvidence value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e EvidenceRelationshipEdges) FromEvidenceOrErr() (*Evidence, error) {
	if e.FromEvidence != nil {
		return e.FromEvidence, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: evidence.Label}
	}
	return nil, &NotLoadedError{edge: "from_evidence"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*EvidenceRelationship) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case evidencerelationship.FieldStrength:
			values[i] = new(sql.NullFloat64)
		case evidencerelationship.FieldID, evidencerelationship.FieldTenantID, evidencerelationship.FieldInvestigationID, evidencerelationship.FieldFromEvidenceID, evidencerelationship.FieldToEvidenceID, evidencerelationship.FieldKind, evidencerelationship.FieldRationale:
			values[i] = new(sql.NullString)
		case evidencerelationship.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the EvidenceRelationship fields.
func (_m *EvidenceRelationship) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case evidencerelationship.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case evidencerelationship.FieldTenantID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tenant_id", values[i])
			} else if value.Valid {
				_m.TenantID = value.String
			}
		case evidencerelationship.FieldInvestigationID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field investigation_id", values[i])
			} else if value.Valid {
				_m.InvestigationID = value.String
			}
		case evidencerelationship.FieldFromEvidenceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field from_evidence_id", values[i])
			} else if value.Valid {
				_m.FromEvidenceID = value.String
			}
		case evidencerelationship.FieldToEvidenceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field to_evidence_id", values[i])
			} else if value.Valid {
				_m.ToEvidenceID = value.String
			}
		case evidencerelationship.FieldKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field kind", values[i])
			} else if value.Valid {
				_m.Kind = evidencerelationship.Kind(value.String)
			}
		case evidencerelationship.FieldStrength:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field strength", values[i])
			} else if value.Valid {
				_m.Strength = value.Float64
			}
		case evidencerelationship.FieldRationale:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field rationale", values[i])
			} else if value.Valid {
				_m.Rationale = value.String
			}
		case evidencerelationship.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the EvidenceRelationship.
// This includes values selected through modifiers, order, etc.
func (_m *EvidenceRelationship) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryFromEvidence queries the "from_evidence" edge of the EvidenceRelationship entity.
func (_m *EvidenceRelationship) QueryFromEvidence() *EvidenceQuery {
	return NewEvidenceRelationshipClient(_m.config).QueryFromEvidence(_m)
}

// Update returns a builder for updating this EvidenceRelationship.
// Note that you need to call EvidenceRelationship.Unwrap() before calling this method if this EvidenceRelationship
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *EvidenceRelationship) Update() *EvidenceRelationshipUpdateOne {
	return NewEvidenceRelationshipClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the EvidenceRelationship entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *EvidenceRelationship) Unwrap() *EvidenceRelationship {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: EvidenceRelationship is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *EvidenceRelationship) String() string {
	var builder strings.Builder
	builder.WriteString("EvidenceRelationship(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("tenant_id=")
	builder.WriteString(_m.TenantID)
	builder.WriteString(", ")
	builder.WriteString("investigation_id=")
	builder.WriteString(_m.InvestigationID)
	builder.WriteString(", ")
	builder.WriteString("from_evidence_id=")
	builder.WriteString(_m.FromEvidenceID)
	builder.WriteString(", ")
	builder.WriteString("to_evidence_id=")
	builder.WriteString(_m.ToEvidenceID)
	builder.WriteString(", ")
	builder.WriteString("kind=")
	builder.WriteString(fmt.Sprintf("%v", _m.Kind))
	builder.WriteString(", ")
	builder.WriteString("strength=")
	builder.WriteString(fmt.Sprintf("%v", _m.Strength))
	builder.WriteString(", ")
	builder.WriteString("rationale=")
	builder.WriteString(_m.Rationale)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// EvidenceRelationships is a parsable slice of EvidenceRelationship.
type EvidenceRelationships []*EvidenceRelationship
