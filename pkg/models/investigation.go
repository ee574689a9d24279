package models

import "time"

// InvestigationStatus is the lifecycle state of an investigation.
type InvestigationStatus string

// Investigation lifecycle statuses.
const (
	StatusQueued           InvestigationStatus = "queued"
	StatusPlanning         InvestigationStatus = "planning"
	StatusExecuting        InvestigationStatus = "executing"
	StatusAnalyzing        InvestigationStatus = "analyzing"
	StatusResponding       InvestigationStatus = "responding"
	StatusAwaitingApproval InvestigationStatus = "awaiting_approval"
	StatusPaused           InvestigationStatus = "paused"
	StatusComplete         InvestigationStatus = "complete"
	StatusRequiresReview   InvestigationStatus = "requires_review"
	StatusFailed           InvestigationStatus = "failed"
	StatusTimedOut         InvestigationStatus = "timed_out"
)

// Terminal reports whether the status is final.
func (s InvestigationStatus) Terminal() bool {
	switch s {
	case StatusComplete, StatusRequiresReview, StatusFailed, StatusTimedOut:
		return true
	}
	return false
}

// Active reports whether the investigation holds a concurrency slot.
func (s InvestigationStatus) Active() bool {
	switch s {
	case StatusPlanning, StatusExecuting, StatusAnalyzing, StatusResponding,
		StatusAwaitingApproval, StatusPaused:
		return true
	}
	return false
}

// Valid reports whether s is a known status.
func (s InvestigationStatus) Valid() bool {
	return s.Terminal() || s.Active() || s == StatusQueued
}

// Investigation is the domain view of one investigation row.
type Investigation struct {
	ID             string              `json:"investigation_id"`
	TenantID       string              `json:"tenant_id"`
	Alert          Alert               `json:"alert"`
	CorrelationKey string              `json:"correlation_key,omitempty"`
	UserID         string              `json:"user_id,omitempty"`
	Priority       int                 `json:"priority"`
	Status         InvestigationStatus `json:"status"`
	TimeoutMs      int64               `json:"timeout_ms"`
	CreatedAt      time.Time           `json:"created_at"`
	StartedAt      *time.Time          `json:"started_at,omitempty"`
	CompletedAt    *time.Time          `json:"completed_at,omitempty"`
	Verdict        *Verdict            `json:"verdict,omitempty"`
	Response       *Response           `json:"response,omitempty"`
	Summary        *ExecutionSummary   `json:"execution_summary,omitempty"`
	ErrorMessage   string              `json:"error_message,omitempty"`
	Metadata       map[string]any      `json:"metadata,omitempty"`
}

// StartInvestigationRequest is the API payload to open an investigation.
type StartInvestigationRequest struct {
	Alert          Alert          `json:"alert"`
	Priority       int            `json:"priority,omitempty"`   // 1..5, default 3
	TimeoutMs      int64          `json:"timeout_ms,omitempty"` // default from config
	CorrelationKey string         `json:"correlation_key,omitempty"`
	UserID         string         `json:"user_id,omitempty"`
	Metadata       map[string]any `json:"metadata,omitempty"`
}

// StartInvestigationResponse acknowledges admission.
type StartInvestigationResponse struct {
	InvestigationID string `json:"investigation_id"`
	Status          string `json:"status"`
	// Existing is true when the idempotency key matched a prior investigation.
	Existing bool `json:"existing,omitempty"`
}

// InvestigationFilters narrows ListInvestigations.
type InvestigationFilters struct {
	Status        string     `json:"status,omitempty"`
	Severity      string     `json:"severity,omitempty"`
	CreatedAfter  *time.Time `json:"created_after,omitempty"`
	CreatedBefore *time.Time `json:"created_before,omitempty"`
	Limit         int        `json:"limit,omitempty"` // hard cap 200
	Offset        int        `json:"offset,omitempty"`
}

// StepProgress is the per-step view used by status and timeline responses.
type StepProgress struct {
	StepID      string     `json:"step_id"`
	Name        string     `json:"name"`
	Agent       string     `json:"agent,omitempty"`
	Status      StepStatus `json:"status"`
	StartedAt   *time.Time `json:"started_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	DurationMs  int64      `json:"duration_ms,omitempty"`
	Retries     int        `json:"retries"`
}

// StatusResponse answers GetStatus.
type StatusResponse struct {
	InvestigationID     string         `json:"investigation_id"`
	Status              string         `json:"status"`
	Progress            int            `json:"progress"` // 0..100
	CurrentAgent        string         `json:"current_agent,omitempty"`
	Steps               []StepProgress `json:"steps,omitempty"`
	StartedAt           *time.Time     `json:"started_at,omitempty"`
	EstimatedCompletion *time.Time     `json:"estimated_completion,omitempty"`
}

// ReportSummary aggregates step counts for a terminal investigation.
type ReportSummary struct {
	TotalSteps   int `json:"total_steps"`
	Completed    int `json:"completed"`
	Failed       int `json:"failed"`
	TotalRetries int `json:"total_retries"`
}

// Report is the terminal-state investigation report.
type Report struct {
	InvestigationID string          `json:"investigation_id"`
	Status          string          `json:"status"`
	DurationMs      int64           `json:"duration_ms"`
	Summary         ReportSummary   `json:"summary"`
	Timeline        []StepProgress  `json:"timeline"`
	Feedback        []FeedbackEntry `json:"feedback,omitempty"`
	Verdict         *Verdict        `json:"verdict,omitempty"`
}

// ExecutionSummary is produced by the engine when a plan terminates.
type ExecutionSummary struct {
	TotalSteps      int      `json:"total_steps"`
	CompletedSteps  int      `json:"completed_steps"`
	FailedSteps     int      `json:"failed_steps"`
	SuccessRate     float64  `json:"success_rate"`
	TotalEvidence   int      `json:"total_evidence"`
	ExecutionTimeMs int64    `json:"execution_time_ms"`
	Adaptations     []string `json:"adaptations,omitempty"`
	Limitations     []string `json:"limitations,omitempty"`
}

// Stats is the aggregate answer for a timeframe.
type Stats struct {
	Timeframe       string         `json:"timeframe"`
	Total           int            `json:"total"`
	ByStatus        map[string]int `json:"by_status"`
	BySeverity      map[string]int `json:"by_severity"`
	AvgDurationMs   int64          `json:"avg_duration_ms"`
	ActiveRightNow  int            `json:"active_right_now"`
	QueuedRightNow  int            `json:"queued_right_now"`
	CompletionRatio float64        `json:"completion_ratio"`
}
