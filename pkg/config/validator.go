package config

import "fmt"

// validate checks the merged configuration for values that would misbehave
// at runtime. Called by Initialize after defaults and env overrides.
func validate(cfg *Config) error {
	if err := validateOrchestrator(cfg.Orchestrator); err != nil {
		return err
	}
	if err := validateEngine(cfg.Engine); err != nil {
		return err
	}
	if err := validateEvents(cfg.Events); err != nil {
		return err
	}
	if cfg.Breaker.FailureThreshold == 0 {
		return NewValidationError("breaker", "", "failure_threshold", fmt.Errorf("%w: must be >= 1", ErrInvalidValue))
	}
	if cfg.Breaker.RecoveryTimeout <= 0 {
		return NewValidationError("breaker", "", "recovery_timeout", fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if cfg.Retention.InvestigationRetentionDays < 1 {
		return NewValidationError("retention", "", "investigation_retention_days", fmt.Errorf("%w: must be >= 1", ErrInvalidValue))
	}
	for id, spec := range cfg.Connectors {
		if err := validateConnector(id, spec); err != nil {
			return err
		}
	}
	return nil
}

func validateOrchestrator(o *OrchestratorConfig) error {
	if o.WorkerCount < 1 {
		return NewValidationError("orchestrator", "", "worker_count", fmt.Errorf("%w: must be >= 1", ErrInvalidValue))
	}
	if o.MaxConcurrentInvestigations < 1 {
		return NewValidationError("orchestrator", "", "max_concurrent_investigations", fmt.Errorf("%w: must be >= 1", ErrInvalidValue))
	}
	if o.DefaultInvestigationTimeout <= 0 {
		return NewValidationError("orchestrator", "", "default_investigation_timeout", fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if o.PollInterval <= 0 {
		return NewValidationError("orchestrator", "", "poll_interval", fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if o.OrphanThreshold <= o.HeartbeatInterval {
		return NewValidationError("orchestrator", "", "orphan_threshold",
			fmt.Errorf("%w: must exceed heartbeat_interval (%s)", ErrInvalidValue, o.HeartbeatInterval))
	}
	if o.BackpressureMinPriority < 1 || o.BackpressureMinPriority > 5 {
		return NewValidationError("orchestrator", "", "backpressure_min_priority", fmt.Errorf("%w: must be in 1..5", ErrInvalidValue))
	}
	return nil
}

func validateEngine(e *EngineConfig) error {
	if e.MaxParallelSteps < 1 {
		return NewValidationError("engine", "", "max_parallel_steps", fmt.Errorf("%w: must be >= 1", ErrInvalidValue))
	}
	if e.StepTimeout <= 0 {
		return NewValidationError("engine", "", "step_timeout", fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if e.MaxRetryAttempts < 0 {
		return NewValidationError("engine", "", "max_retry_attempts", fmt.Errorf("%w: must be >= 0", ErrInvalidValue))
	}
	if e.CorrelationWindow <= 0 {
		return NewValidationError("engine", "", "correlation_window", fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	return nil
}

func validateEvents(e *EventsConfig) error {
	if e.BufferSize < 1 {
		return NewValidationError("events", "", "buffer_size", fmt.Errorf("%w: must be >= 1", ErrInvalidValue))
	}
	if e.QuarantineSize < 1 {
		return NewValidationError("events", "", "quarantine_size", fmt.Errorf("%w: must be >= 1", ErrInvalidValue))
	}
	return nil
}

func validateConnector(id string, spec *ConnectorSpec) error {
	if spec == nil {
		return NewValidationError("connector", id, "", fmt.Errorf("%w: empty definition", ErrInvalidValue))
	}
	if spec.Kind == "" {
		return NewValidationError("connector", id, "kind", fmt.Errorf("%w: required", ErrInvalidValue))
	}
	if spec.Priority < 0 {
		return NewValidationError("connector", id, "priority", fmt.Errorf("%w: must be >= 0", ErrInvalidValue))
	}
	if err := spec.Auth.Validate(); err != nil {
		return NewValidationError("connector", id, "auth", err)
	}
	if spec.Rate.RequestsPerSecond < 0 || spec.Rate.RequestsPerMinute < 0 || spec.Rate.RequestsPerHour < 0 {
		return NewValidationError("connector", id, "rateLimits", fmt.Errorf("%w: windows must be >= 0", ErrInvalidValue))
	}
	return nil
}
