// Package agent holds the investigation agents: the planner that turns an
// alert into a step DAG, the analyst that turns evidence into a verdict,
// and the responder that turns a verdict into recommendations.
//
// Agents are deterministic given the same context. External model calls are
// isolated behind ModelFunc; when no model is wired the agents run on their
// built-in rules alone.
package agent

import (
	"context"

	"github.com/NeoCh3n/NeonharbourSecurity-sub001/pkg/models"
)

// ModelFunc is the opaque model boundary. Implementations may call an
// external model; its output is advisory and treated as one more input.
type ModelFunc func(ctx context.Context, task string, input map[string]any) (map[string]any, error)

// Context is everything an agent may read. The orchestrator assembles it
// per phase; agents never reach back into storage.
type Context struct {
	TenantID        string
	InvestigationID string
	Alert           models.Alert

	// AvailableSources are the connector kinds currently selectable for the
	// tenant, e.g. ["siem", "edr", "threat_intel"].
	AvailableSources []string
	// Limitations accumulates degradations observed so far,
	// e.g. "siem_unavailable".
	Limitations []string

	Evidence []*models.EvidenceRecord
	Links    []models.Relationship
	Summary  *models.ExecutionSummary

	// CorrectedVerdict is set when verdictCorrection feedback re-runs the
	// analyst or responder.
	CorrectedVerdict *models.Verdict
	// Verdict is the analyst output, set for the responder phase.
	Verdict *models.Verdict

	Model ModelFunc
}

// ValidationResult is the outcome of an agent's input validation.
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

func validation(errs []string) ValidationResult {
	return ValidationResult{Valid: len(errs) == 0, Errors: errs}
}
