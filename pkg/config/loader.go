package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// ConfigFileName is the single configuration file read from the config
// directory.
const ConfigFileName = "neonharbour.yaml"

// Initialize loads, merges, and validates configuration.
//
// Steps performed:
//  1. Read neonharbour.yaml from configDir (missing file means defaults)
//  2. Expand {{.ENV_VAR}} templates
//  3. Unmarshal YAML
//  4. Merge over built-in defaults
//  5. Apply environment variable overrides
//  6. Validate
func Initialize(_ context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg, err := load(configDir)
	if err != nil {
		return nil, NewLoadError(ConfigFileName, err)
	}
	cfg.configDir = configDir

	applyEnvOverrides(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	log.Info("Configuration initialized",
		"workers", cfg.Orchestrator.WorkerCount,
		"max_concurrent", cfg.Orchestrator.MaxConcurrentInvestigations,
		"connectors", len(cfg.Connectors))
	return cfg, nil
}

func load(configDir string) (*Config, error) {
	cfg := &Config{}

	path := filepath.Join(configDir, ConfigFileName)
	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		slog.Info("No configuration file found, using defaults", "path", path)
	case err != nil:
		return nil, err
	default:
		expanded := ExpandEnv(data)
		if err := yaml.Unmarshal(expanded, cfg); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
		}
	}

	// User values win; defaults fill the gaps.
	if err := mergo.Merge(cfg, DefaultConfig()); err != nil {
		return nil, fmt.Errorf("merging defaults: %w", err)
	}
	return cfg, nil
}

// applyEnvOverrides applies the documented operational environment
// variables on top of file configuration.
func applyEnvOverrides(cfg *Config) {
	overrideInt("MAX_CONCURRENT_INVESTIGATIONS", &cfg.Orchestrator.MaxConcurrentInvestigations)
	overrideDurationMs("DEFAULT_INVESTIGATION_TIMEOUT_MS", &cfg.Orchestrator.DefaultInvestigationTimeout)
	overrideInt("MAX_PARALLEL_STEPS", &cfg.Engine.MaxParallelSteps)
	overrideDurationMs("STEP_TIMEOUT_MS", &cfg.Engine.StepTimeout)
	overrideInt("MAX_RETRY_ATTEMPTS", &cfg.Engine.MaxRetryAttempts)
	overrideUint32("CIRCUIT_FAILURE_THRESHOLD", &cfg.Breaker.FailureThreshold)
	overrideDurationMs("CIRCUIT_RECOVERY_MS", &cfg.Breaker.RecoveryTimeout)
	overrideInt("EVENT_BUFFER_SIZE", &cfg.Events.BufferSize)
}

func overrideInt(key string, dst *int) {
	raw := os.Getenv(key)
	if raw == "" {
		return
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		slog.Warn("Ignoring invalid environment override", "var", key, "value", raw)
		return
	}
	*dst = v
}

func overrideUint32(key string, dst *uint32) {
	raw := os.Getenv(key)
	if raw == "" {
		return
	}
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		slog.Warn("Ignoring invalid environment override", "var", key, "value", raw)
		return
	}
	*dst = uint32(v)
}

func overrideDurationMs(key string, dst *time.Duration) {
	raw := os.Getenv(key)
	if raw == "" {
		return
	}
	ms, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		slog.Warn("Ignoring invalid environment override", "var", key, "value", raw)
		return
	}
	*dst = time.Duration(ms) * time.Millisecond
}
