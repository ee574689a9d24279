package agent

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"
)

// Base agent defaults.
const (
	defaultExecTimeout = 30 * time.Second
	defaultMaxRetries  = 2
	defaultBackoffBase = time.Second
)

// Metrics counts an agent's executions. Snapshot returns a consistent view.
type Metrics struct {
	total      atomic.Int64
	successful atomic.Int64
	failed     atomic.Int64
	retries    atomic.Int64
}

// MetricsSnapshot is a point-in-time copy of agent counters.
type MetricsSnapshot struct {
	TotalExecutions int64   `json:"totalExecutions"`
	Successful      int64   `json:"successful"`
	Failed          int64   `json:"failed"`
	Retries         int64   `json:"retries"`
	SuccessRate     float64 `json:"successRate"`
}

// Snapshot copies the counters.
func (m *Metrics) Snapshot() MetricsSnapshot {
	s := MetricsSnapshot{
		TotalExecutions: m.total.Load(),
		Successful:      m.successful.Load(),
		Failed:          m.failed.Load(),
		Retries:         m.retries.Load(),
	}
	if s.TotalExecutions > 0 {
		s.SuccessRate = float64(s.Successful) / float64(s.TotalExecutions)
	}
	return s
}

// BaseAgent carries the retry, timeout, and metrics machinery shared by all
// agents. Concrete agents embed it and run their work through run.
type BaseAgent struct {
	name        string
	execTimeout time.Duration
	maxRetries  int
	backoffBase time.Duration
	metrics     Metrics
}

// BaseOptions tunes an agent's execution envelope.
type BaseOptions struct {
	ExecTimeout time.Duration
	MaxRetries  int
	BackoffBase time.Duration
}

// NewBase creates the shared agent core.
func NewBase(name string, opts BaseOptions) BaseAgent {
	if opts.ExecTimeout <= 0 {
		opts.ExecTimeout = defaultExecTimeout
	}
	if opts.MaxRetries <= 0 {
		opts.MaxRetries = defaultMaxRetries
	}
	if opts.BackoffBase <= 0 {
		opts.BackoffBase = defaultBackoffBase
	}
	return BaseAgent{
		name:        name,
		execTimeout: opts.ExecTimeout,
		maxRetries:  opts.MaxRetries,
		backoffBase: opts.BackoffBase,
	}
}

// Name returns the agent's identifier, used in turn/<agent>/… events.
func (a *BaseAgent) Name() string { return a.name }

// Metrics returns a snapshot of the agent's counters.
func (a *BaseAgent) Metrics() MetricsSnapshot { return a.metrics.Snapshot() }

// run executes fn with the per-execution timeout, retrying with exponential
// backoff. It returns the result, the attempt count, and the final error.
// Context cancellation is terminal, never retried.
func (a *BaseAgent) run(ctx context.Context, fn func(ctx context.Context) (any, error)) (any, int, error) {
	a.metrics.total.Add(1)

	var lastErr error
	attempts := 0
	for attempt := 0; attempt <= a.maxRetries; attempt++ {
		if attempt > 0 {
			a.metrics.retries.Add(1)
			backoff := a.backoffBase << (attempt - 1)
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				a.metrics.failed.Add(1)
				return nil, attempts, ctx.Err()
			}
		}
		attempts++

		execCtx, cancel := context.WithTimeout(ctx, a.execTimeout)
		out, err := fn(execCtx)
		cancel()
		if err == nil {
			a.metrics.successful.Add(1)
			return out, attempts, nil
		}
		lastErr = err
		if errors.Is(err, context.Canceled) || ctx.Err() != nil {
			break
		}
	}

	a.metrics.failed.Add(1)
	return nil, attempts, fmt.Errorf("%s failed after %d attempts: %w", a.name, attempts, lastErr)
}
