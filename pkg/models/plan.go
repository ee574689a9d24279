package models

import (
	"fmt"
	"time"
)

// StepType is the kind of work a plan step performs.
type StepType string

// Plan step types.
const (
	StepTypeQuery     StepType = "query"
	StepTypeEnrich    StepType = "enrich"
	StepTypeCorrelate StepType = "correlate"
	StepTypeValidate  StepType = "validate"
)

// Valid reports whether t is a known step type.
func (t StepType) Valid() bool {
	switch t {
	case StepTypeQuery, StepTypeEnrich, StepTypeCorrelate, StepTypeValidate:
		return true
	}
	return false
}

// StepStatus is the lifecycle state of a plan step.
type StepStatus string

// Plan step statuses.
const (
	StepStatusPending  StepStatus = "pending"
	StepStatusRunning  StepStatus = "running"
	StepStatusComplete StepStatus = "complete"
	StepStatusFailed   StepStatus = "failed"
	StepStatusSkipped  StepStatus = "skipped"
)

// Terminal reports whether the step has finished (successfully or not).
func (s StepStatus) Terminal() bool {
	return s == StepStatusComplete || s == StepStatusFailed || s == StepStatusSkipped
}

// Step is one node of a plan DAG. The engine mutates the lifecycle fields
// in memory and persists them through the step service.
type Step struct {
	ID           string         `json:"step_id"`
	Name         string         `json:"name"`
	Type         StepType       `json:"type"`
	Agent        string         `json:"agent,omitempty"`
	Dependencies []string       `json:"dependencies,omitempty"`
	Payload      map[string]any `json:"payload,omitempty"`
	DataSources  []string       `json:"data_sources,omitempty"`
	TimeoutMs    int64          `json:"timeout_ms"`
	MaxRetries   int            `json:"max_retries"`
	// Critical steps propagate failure to dependents; a skipped non-critical
	// step still satisfies downstream dependencies.
	Critical bool `json:"critical"`

	Status      StepStatus `json:"status"`
	StartedAt   *time.Time `json:"started_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	RetryCount  int        `json:"retry_count"`
	LastError   string     `json:"last_error,omitempty"`
	AdaptedFrom string     `json:"adapted_from,omitempty"`
}

// Plan is a DAG of steps owned by one investigation.
type Plan struct {
	ID              string  `json:"plan_id"`
	InvestigationID string  `json:"investigation_id"`
	Steps           []*Step `json:"steps"`
}

// StepByID returns the step with the given ID, or nil.
func (p *Plan) StepByID(id string) *Step {
	for _, s := range p.Steps {
		if s.ID == id {
			return s
		}
	}
	return nil
}

// Validate checks that every dependency references a known step and that the
// dependency graph is acyclic.
func (p *Plan) Validate() error {
	byID := make(map[string]*Step, len(p.Steps))
	for _, s := range p.Steps {
		if s.ID == "" {
			return fmt.Errorf("plan %s: step with empty id", p.ID)
		}
		if _, dup := byID[s.ID]; dup {
			return fmt.Errorf("plan %s: duplicate step id %q", p.ID, s.ID)
		}
		if !s.Type.Valid() {
			return fmt.Errorf("plan %s: step %s has unknown type %q", p.ID, s.ID, s.Type)
		}
		byID[s.ID] = s
	}
	for _, s := range p.Steps {
		for _, dep := range s.Dependencies {
			if _, ok := byID[dep]; !ok {
				return fmt.Errorf("plan %s: step %s depends on unknown step %q", p.ID, s.ID, dep)
			}
		}
	}
	// Cycle detection: iterative DFS with colors.
	const (
		white = 0
		gray  = 1
		black = 2
	)
	color := make(map[string]int, len(p.Steps))
	var visit func(id string) error
	visit = func(id string) error {
		color[id] = gray
		for _, dep := range byID[id].Dependencies {
			switch color[dep] {
			case gray:
				return fmt.Errorf("plan %s: dependency cycle through step %q", p.ID, dep)
			case white:
				if err := visit(dep); err != nil {
					return err
				}
			}
		}
		color[id] = black
		return nil
	}
	for _, s := range p.Steps {
		if color[s.ID] == white {
			if err := visit(s.ID); err != nil {
				return err
			}
		}
	}
	return nil
}
