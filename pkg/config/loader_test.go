package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NeoCh3n/NeonharbourSecurity-sub001/pkg/connector"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0o600))
	return dir
}

func TestInitializeDefaultsWhenFileMissing(t *testing.T) {
	cfg, err := Initialize(context.Background(), t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.Orchestrator.MaxConcurrentInvestigations)
	assert.Equal(t, 30*time.Minute, cfg.Orchestrator.DefaultInvestigationTimeout)
	assert.Equal(t, 3, cfg.Engine.MaxParallelSteps)
	assert.Equal(t, 5*time.Second, cfg.Engine.StepTimeout)
	assert.Equal(t, 2, cfg.Engine.MaxRetryAttempts)
	assert.Equal(t, uint32(5), cfg.Breaker.FailureThreshold)
	assert.Equal(t, 30*time.Second, cfg.Breaker.RecoveryTimeout)
	assert.Equal(t, 200, cfg.Events.BufferSize)
	assert.Equal(t, 50, cfg.Events.QuarantineSize)
}

func TestInitializeMergesFileOverDefaults(t *testing.T) {
	dir := writeConfig(t, `
orchestrator:
  worker_count: 2
  max_concurrent_investigations: 4
engine:
  max_parallel_steps: 7
`)
	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.Orchestrator.WorkerCount)
	assert.Equal(t, 4, cfg.Orchestrator.MaxConcurrentInvestigations)
	assert.Equal(t, 7, cfg.Engine.MaxParallelSteps)
	// Untouched fields keep defaults.
	assert.Equal(t, 1*time.Second, cfg.Orchestrator.PollInterval)
	assert.Equal(t, 2, cfg.Engine.MaxRetryAttempts)
}

func TestInitializeEnvOverridesWinOverFile(t *testing.T) {
	t.Setenv("MAX_CONCURRENT_INVESTIGATIONS", "25")
	t.Setenv("DEFAULT_INVESTIGATION_TIMEOUT_MS", "60000")
	t.Setenv("STEP_TIMEOUT_MS", "2500")
	t.Setenv("EVENT_BUFFER_SIZE", "64")

	dir := writeConfig(t, `
orchestrator:
  max_concurrent_investigations: 4
`)
	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, 25, cfg.Orchestrator.MaxConcurrentInvestigations)
	assert.Equal(t, time.Minute, cfg.Orchestrator.DefaultInvestigationTimeout)
	assert.Equal(t, 2500*time.Millisecond, cfg.Engine.StepTimeout)
	assert.Equal(t, 64, cfg.Events.BufferSize)
}

func TestInitializeInvalidEnvOverrideIgnored(t *testing.T) {
	t.Setenv("MAX_PARALLEL_STEPS", "not-a-number")

	cfg, err := Initialize(context.Background(), t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Engine.MaxParallelSteps)
}

func TestInitializeConnectorSpecs(t *testing.T) {
	t.Setenv("SIEM_API_KEY", "s3cret")
	dir := writeConfig(t, `
connectors:
  siem-primary:
    kind: siem
    endpoint: https://siem.internal
    priority: 0
    auth:
      method: api_key
      apiKey: "{{.SIEM_API_KEY}}"
    rateLimits:
      requestsPerSecond: 10
      requestsPerMinute: 300
  siem-backup:
    kind: siem
    tenantId: acme
    endpoint: https://siem-dr.internal
    priority: 1
  edr-disabled:
    kind: edr
    endpoint: https://edr.internal
    enabled: false
`)
	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, cfg.Connectors, 3)

	configs := cfg.ConnectorConfigs()
	require.Len(t, configs, 2, "disabled connector must not be rendered")

	byID := map[string]connector.Config{}
	for _, c := range configs {
		byID[c.ID] = c
	}
	primary := byID["siem-primary"]
	assert.Equal(t, connector.KindSIEM, primary.Kind)
	assert.Equal(t, DefaultTenantID, primary.TenantID)
	assert.Equal(t, "s3cret", primary.Auth.APIKey)
	assert.Equal(t, 10, primary.Rate.RequestsPerSecond)

	backup := byID["siem-backup"]
	assert.Equal(t, "acme", backup.TenantID)
	assert.Equal(t, 1, backup.Priority)
}

func TestInitializeRejectsInvalidYAML(t *testing.T) {
	dir := writeConfig(t, "orchestrator: [not a map")
	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, ConfigFileName, loadErr.File)
}

func TestInitializeValidationFailures(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"zero workers", "orchestrator:\n  worker_count: -1\n"},
		{"bad parallel steps", "engine:\n  max_parallel_steps: -2\n"},
		{"connector without kind", "connectors:\n  nameless:\n    endpoint: https://x\n"},
		{"connector bad auth", "connectors:\n  siem-a:\n    kind: siem\n    endpoint: https://x\n    auth:\n      method: api_key\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := writeConfig(t, tt.yaml)
			_, err := Initialize(context.Background(), dir)
			require.Error(t, err)

			var validErr *ValidationError
			assert.ErrorAs(t, err, &validErr)
		})
	}
}
