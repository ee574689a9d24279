// Package models contains the shared domain types passed between the API,
// orchestrator, execution engine, and services layers.
package models

import "time"

// Severity classifies an alert.
type Severity string

// Alert severity levels.
const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
)

// Valid reports whether s is a known severity.
func (s Severity) Valid() bool {
	switch s {
	case SeverityCritical, SeverityHigh, SeverityMedium, SeverityLow:
		return true
	}
	return false
}

// Alert is an externally-produced security event requiring investigation.
// Alerts are immutable after ingest; the investigation stores a snapshot.
type Alert struct {
	ID        string              `json:"alert_id"`
	TenantID  string              `json:"tenant_id"`
	Title     string              `json:"title"`
	Severity  Severity            `json:"severity"`
	Source    string              `json:"source"`
	Timestamp time.Time           `json:"timestamp"`
	Payload   map[string]any      `json:"payload,omitempty"`
	Entities  map[string][]string `json:"entities,omitempty"`
}
