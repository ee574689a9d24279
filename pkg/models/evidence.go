package models

import "time"

// EvidenceType classifies an evidence record.
type EvidenceType string

// Evidence types.
const (
	EvidenceTypeNetwork     EvidenceType = "network"
	EvidenceTypeProcess     EvidenceType = "process"
	EvidenceTypeFile        EvidenceType = "file"
	EvidenceTypeLog         EvidenceType = "log"
	EvidenceTypeAlert       EvidenceType = "alert"
	EvidenceTypeEnrichment  EvidenceType = "enrichment"
	EvidenceTypeCorrelation EvidenceType = "correlation"
	EvidenceTypeOther       EvidenceType = "other"
)

// EvidenceRecord is the in-memory representation of one evidence row.
// The scorer and correlator operate on these; the evidence service maps
// them to and from persisted rows.
type EvidenceRecord struct {
	ID              string              `json:"evidence_id"`
	InvestigationID string              `json:"investigation_id"`
	TenantID        string              `json:"tenant_id"`
	StepID          string              `json:"step_id,omitempty"`
	Type            EvidenceType        `json:"type"`
	Source          string              `json:"source"`
	Timestamp       time.Time           `json:"timestamp"`
	Payload         map[string]any      `json:"payload,omitempty"`
	Entities        map[string][]string `json:"entities,omitempty"`
	Confidence      float64             `json:"confidence"`
	QualityScore    float64             `json:"quality_score"`
	ScoreBreakdown  map[string]float64  `json:"score_breakdown,omitempty"`
	Tags            []string            `json:"tags,omitempty"`
	Supersedes      string              `json:"supersedes,omitempty"`
	CreatedAt       time.Time           `json:"created_at"`
}

// HasEntity reports whether the record carries the given entity kind/value.
func (e *EvidenceRecord) HasEntity(kind, value string) bool {
	for _, v := range e.Entities[kind] {
		if v == value {
			return true
		}
	}
	return false
}

// RelationshipKind classifies a derived link between two evidence rows.
type RelationshipKind string

// Relationship kinds.
const (
	RelationshipTemporal   RelationshipKind = "temporal"
	RelationshipEntity     RelationshipKind = "entity"
	RelationshipBehavioral RelationshipKind = "behavioral"
	RelationshipCausal     RelationshipKind = "causal"
)

// Relationship is a derived link between two evidence rows.
type Relationship struct {
	ID             string           `json:"relationship_id,omitempty"`
	FromEvidenceID string           `json:"from_evidence_id"`
	ToEvidenceID   string           `json:"to_evidence_id"`
	Kind           RelationshipKind `json:"kind"`
	Strength       float64          `json:"strength"`
	Rationale      string           `json:"rationale,omitempty"`
}

// Correlation is a derived aggregate over evidence sharing a window, an
// entity, or a technique.
type Correlation struct {
	Kind      RelationshipKind `json:"kind"`
	Members   []string         `json:"members"`
	Strength  float64          `json:"strength"`
	Window    *TimeWindow      `json:"window,omitempty"`
	Rationale string           `json:"rationale,omitempty"`
}

// TimeWindow is a closed time interval.
type TimeWindow struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}
