// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ApprovalRequest is the predicate function for approvalrequest builders.
type ApprovalRequest func(*sql.Selector)

// ConnectorDef is the predicate function for connectordef builders.
type ConnectorDef func(*sql.Selector)

// Evidence is the predicate function for evidence builders.
type Evidence func(*sql.Selector)

// EvidenceRelationship is the predicate function for evidencerelationship builders.
type EvidenceRelationship func(*sql.Selector)

// Feedback is the predicate function for feedback builders.
type Feedback func(*sql.Selector)

// Investigation is the predicate function for investigation builders.
type Investigation func(*sql.Selector)

// PlanStep is the predicate function for planstep builders.
type PlanStep func(*sql.Selector)

// RunEvent is the predicate function for runevent builders.
type RunEvent func(*sql.Selector)
