package models

import "time"

// ApprovalStatus is the lifecycle state of an approval request.
type ApprovalStatus string

// Approval statuses.
const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
	ApprovalExpired  ApprovalStatus = "expired"
)

// RiskLevel grades how destructive an action awaiting approval is.
type RiskLevel string

// Risk levels.
const (
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

// Valid reports whether r is a known risk level.
func (r RiskLevel) Valid() bool {
	switch r {
	case RiskLow, RiskMedium, RiskHigh, RiskCritical:
		return true
	}
	return false
}

// ApprovalRequest is a human approval gate for a recommended action.
type ApprovalRequest struct {
	ID              string         `json:"request_id"`
	InvestigationID string         `json:"investigation_id"`
	TenantID        string         `json:"tenant_id"`
	Title           string         `json:"title"`
	Description     string         `json:"description,omitempty"`
	Risk            RiskLevel      `json:"risk"`
	ActionPayload   map[string]any `json:"action_payload,omitempty"`
	Status          ApprovalStatus `json:"status"`
	// Verified is false when the request ID was synthesized by the event bus
	// instead of supplied by the producer.
	Verified    bool       `json:"verified"`
	RequestedAt time.Time  `json:"requested_at"`
	RespondedAt *time.Time `json:"responded_at,omitempty"`
	RespondedBy string     `json:"responded_by,omitempty"`
}
