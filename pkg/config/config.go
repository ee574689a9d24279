// Package config loads and validates the orchestrator configuration: a
// single YAML file with environment expansion, merged over built-in
// defaults, with the operational knobs overridable from the environment.
package config

import (
	"time"

	"github.com/NeoCh3n/NeonharbourSecurity-sub001/pkg/connector"
)

// Config is the umbrella configuration object returned by Initialize and
// threaded through the application. It is immutable after startup.
type Config struct {
	configDir string

	System       *SystemConfig             `yaml:"system"`
	Orchestrator *OrchestratorConfig       `yaml:"orchestrator"`
	Engine       *EngineConfig             `yaml:"engine"`
	Events       *EventsConfig             `yaml:"events"`
	Breaker      *BreakerConfig            `yaml:"breaker"`
	Retention    *RetentionConfig          `yaml:"retention"`
	Connectors   map[string]*ConnectorSpec `yaml:"connectors"`
}

// ConfigDir returns the configuration directory path.
func (c *Config) ConfigDir() string {
	return c.configDir
}

// ConnectorConfigs renders the YAML connector entries as instance configs
// keyed for the registry. Entries without a tenant are assigned to the
// default tenant.
func (c *Config) ConnectorConfigs() []connector.Config {
	out := make([]connector.Config, 0, len(c.Connectors))
	for id, spec := range c.Connectors {
		if spec == nil || (spec.Enabled != nil && !*spec.Enabled) {
			continue
		}
		cfg := spec.Config
		cfg.ID = id
		if cfg.TenantID == "" {
			cfg.TenantID = DefaultTenantID
		}
		out = append(out, cfg)
	}
	return out
}

// DefaultTenantID is assigned to YAML connectors that do not name a tenant.
const DefaultTenantID = "default"

// SystemConfig groups system-wide infrastructure settings.
type SystemConfig struct {
	// AllowedWSOrigins lists origins accepted for WebSocket upgrades.
	// Empty means same-origin only.
	AllowedWSOrigins []string `yaml:"allowed_ws_origins"`
}

// OrchestratorConfig controls admission, the worker pool, and the
// per-investigation lifecycle.
type OrchestratorConfig struct {
	// WorkerCount is the number of worker goroutines per replica.
	WorkerCount int `yaml:"worker_count"`

	// MaxConcurrentInvestigations is the global cap of investigations
	// holding an active slot, enforced across all replicas by a database
	// count. Environment override: MAX_CONCURRENT_INVESTIGATIONS.
	MaxConcurrentInvestigations int `yaml:"max_concurrent_investigations"`

	// DefaultInvestigationTimeout is applied when a start request carries
	// no timeout. Environment override: DEFAULT_INVESTIGATION_TIMEOUT_MS.
	DefaultInvestigationTimeout time.Duration `yaml:"default_investigation_timeout"`

	// PollInterval is the base interval for checking queued investigations.
	PollInterval time.Duration `yaml:"poll_interval"`

	// PollIntervalJitter randomizes the poll interval to de-synchronize
	// workers. Actual interval: PollInterval ± PollIntervalJitter.
	PollIntervalJitter time.Duration `yaml:"poll_interval_jitter"`

	// HeartbeatInterval is how often a worker bumps the claim heartbeat.
	HeartbeatInterval time.Duration `yaml:"heartbeat_interval"`

	// GracefulShutdownTimeout is the max wait for in-flight investigations
	// during shutdown.
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`

	// OrphanDetectionInterval is how often stale claims are scanned for.
	OrphanDetectionInterval time.Duration `yaml:"orphan_detection_interval"`

	// OrphanThreshold is how long a claim may go without a heartbeat
	// before it is re-queued.
	OrphanThreshold time.Duration `yaml:"orphan_threshold"`

	// FeedbackPollInterval is how often pending human feedback is consumed
	// between pipeline phases.
	FeedbackPollInterval time.Duration `yaml:"feedback_poll_interval"`

	// ApprovalPollInterval is how often pending approvals are re-checked
	// while an investigation is awaiting approval.
	ApprovalPollInterval time.Duration `yaml:"approval_poll_interval"`

	// ApprovalTTL expires approval requests that receive no decision.
	ApprovalTTL time.Duration `yaml:"approval_ttl"`

	// QueueSoftLimit is the queue depth above which admission of
	// low-priority investigations is refused until the queue drains.
	QueueSoftLimit int `yaml:"queue_soft_limit"`

	// BackpressureMinPriority is the lowest priority still admitted while
	// the queue is above the soft limit.
	BackpressureMinPriority int `yaml:"backpressure_min_priority"`
}

// EngineConfig controls plan execution.
type EngineConfig struct {
	// MaxParallelSteps bounds concurrently running steps per investigation.
	// Environment override: MAX_PARALLEL_STEPS.
	MaxParallelSteps int `yaml:"max_parallel_steps"`

	// StepTimeout caps a single step execution.
	// Environment override: STEP_TIMEOUT_MS.
	StepTimeout time.Duration `yaml:"step_timeout"`

	// MaxRetryAttempts bounds retries for transient step failures.
	// Environment override: MAX_RETRY_ATTEMPTS.
	MaxRetryAttempts int `yaml:"max_retry_attempts"`

	// CorrelationWindow is the temporal-correlation window.
	CorrelationWindow time.Duration `yaml:"correlation_window"`
}

// EventsConfig controls the event bus and client-side buffers.
type EventsConfig struct {
	// BufferSize caps the in-memory tail of a run's events; older events
	// are fetched on demand. Environment override: EVENT_BUFFER_SIZE.
	BufferSize int `yaml:"buffer_size"`

	// QuarantineSize caps the isolated list of malformed events.
	QuarantineSize int `yaml:"quarantine_size"`

	// WriteTimeout bounds one WebSocket write.
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// BreakerConfig tunes connector circuit breakers.
type BreakerConfig struct {
	// FailureThreshold is the consecutive-failure count that trips a
	// breaker. Environment override: CIRCUIT_FAILURE_THRESHOLD.
	FailureThreshold uint32 `yaml:"failure_threshold"`

	// RecoveryTimeout is the open → half-open delay.
	// Environment override: CIRCUIT_RECOVERY_MS.
	RecoveryTimeout time.Duration `yaml:"recovery_timeout"`
}

// RetentionConfig controls data retention and cleanup behavior.
type RetentionConfig struct {
	// InvestigationRetentionDays is how many days to keep terminal
	// investigations before soft-deleting them.
	InvestigationRetentionDays int `yaml:"investigation_retention_days"`

	// PurgeAfter is how long soft-deleted investigations linger before the
	// hard purge.
	PurgeAfter time.Duration `yaml:"purge_after"`

	// CleanupInterval is how often the cleanup loop runs.
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

// ConnectorSpec is one YAML-declared connector instance. The map key in
// Config.Connectors is the connector ID.
type ConnectorSpec struct {
	connector.Config `yaml:",inline"`

	// Enabled defaults to true; set false to keep a definition around
	// without registering it.
	Enabled *bool `yaml:"enabled,omitempty"`
}
