package config

import "time"

// DefaultConfig returns the built-in defaults. Loaded YAML is merged over
// these, then environment overrides are applied on top.
func DefaultConfig() *Config {
	return &Config{
		System: &SystemConfig{},
		Orchestrator: &OrchestratorConfig{
			WorkerCount:                 5,
			MaxConcurrentInvestigations: 10,
			DefaultInvestigationTimeout: 30 * time.Minute,
			PollInterval:                1 * time.Second,
			PollIntervalJitter:          500 * time.Millisecond,
			HeartbeatInterval:           30 * time.Second,
			GracefulShutdownTimeout:     15 * time.Minute,
			OrphanDetectionInterval:     5 * time.Minute,
			OrphanThreshold:             5 * time.Minute,
			FeedbackPollInterval:        2 * time.Second,
			ApprovalPollInterval:        2 * time.Second,
			ApprovalTTL:                 15 * time.Minute,
			QueueSoftLimit:              100,
			BackpressureMinPriority:     3,
		},
		Engine: &EngineConfig{
			MaxParallelSteps:  3,
			StepTimeout:       5 * time.Second,
			MaxRetryAttempts:  2,
			CorrelationWindow: 5 * time.Minute,
		},
		Events: &EventsConfig{
			BufferSize:     200,
			QuarantineSize: 50,
			WriteTimeout:   10 * time.Second,
		},
		Breaker: &BreakerConfig{
			FailureThreshold: 5,
			RecoveryTimeout:  30 * time.Second,
		},
		Retention: &RetentionConfig{
			InvestigationRetentionDays: 365,
			PurgeAfter:                 30 * 24 * time.Hour,
			CleanupInterval:            12 * time.Hour,
		},
		Connectors: map[string]*ConnectorSpec{},
	}
}
