package connector

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/NeoCh3n/NeonharbourSecurity-sub001/pkg/breaker"
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/pkg/clock"
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/pkg/ratelimit"
)

// InstanceMetrics is a point-in-time snapshot of one instance's counters.
type InstanceMetrics struct {
	ID            string        `json:"id"`
	Kind          Kind          `json:"kind"`
	TenantID      string        `json:"tenantId"`
	InFlight      int64         `json:"inFlight"`
	TotalCalls    int64         `json:"totalCalls"`
	Failures      int64         `json:"failures"`
	RateRejected  int64         `json:"rateRejected"`
	BreakerState  breaker.State `json:"breakerState"`
	LastLatencyMS int64         `json:"lastLatencyMs"`
}

// Instance wraps one Connector with its rate limiter, circuit breaker, and
// in-flight accounting. The registry only ever talks to backends through
// instances.
type Instance struct {
	cfg  Config
	impl Connector

	limiter *ratelimit.Limiter
	breaker *breaker.Breaker

	inFlight     atomic.Int64
	totalCalls   atomic.Int64
	failures     atomic.Int64
	rateRejected atomic.Int64
	lastLatency  atomic.Int64

	clk clock.Clock
}

// BreakerConfig tunes instance circuit breakers.
type BreakerConfig struct {
	FailureThreshold uint32
	RecoveryTimeout  time.Duration
}

// NewInstance wraps impl for the given config. onBreakerChange may be nil.
func NewInstance(cfg Config, impl Connector, bc BreakerConfig, clk clock.Clock, onBreakerChange func(breaker.StateChange)) *Instance {
	if clk == nil {
		clk = clock.System{}
	}
	return &Instance{
		cfg:  cfg,
		impl: impl,
		limiter: ratelimit.New(ratelimit.Config{
			RequestsPerSecond: cfg.Rate.RequestsPerSecond,
			RequestsPerMinute: cfg.Rate.RequestsPerMinute,
			RequestsPerHour:   cfg.Rate.RequestsPerHour,
		}, clk),
		breaker: breaker.New(breaker.Config{
			Name:             cfg.ID,
			FailureThreshold: bc.FailureThreshold,
			RecoveryTimeout:  bc.RecoveryTimeout,
		}, onBreakerChange),
		clk: clk,
	}
}

// ID returns the instance's connector id.
func (i *Instance) ID() string { return i.cfg.ID }

// Kind returns the instance's connector kind.
func (i *Instance) Kind() Kind { return i.cfg.Kind }

// TenantID returns the owning tenant.
func (i *Instance) TenantID() string { return i.cfg.TenantID }

// Priority returns the configured selection priority (lower is preferred).
func (i *Instance) Priority() int { return i.cfg.Priority }

// InFlight returns the number of calls currently executing.
func (i *Instance) InFlight() int64 { return i.inFlight.Load() }

// BreakerState returns the current circuit state.
func (i *Instance) BreakerState() breaker.State { return i.breaker.State() }

// ResetBreaker closes the circuit with zeroed counts. Used by the health
// monitor when an instance recovers.
func (i *Instance) ResetBreaker() { i.breaker.Reset() }

// Capabilities proxies to the wrapped backend.
func (i *Instance) Capabilities() []string { return i.impl.Capabilities() }

// DataTypes proxies to the wrapped backend.
func (i *Instance) DataTypes() []string { return i.impl.DataTypes() }

// Initialize prepares the wrapped backend.
func (i *Instance) Initialize(ctx context.Context) error {
	if err := i.cfg.Auth.Validate(); err != nil {
		return NewError(ErrKindValidation, i.cfg.ID, err)
	}
	if err := i.impl.Initialize(ctx, i.cfg); err != nil {
		return i.classify(err)
	}
	return nil
}

// HealthCheck probes the backend directly, bypassing limiter and breaker so
// probes work while the circuit is open.
func (i *Instance) HealthCheck(ctx context.Context) error {
	return i.impl.HealthCheck(ctx)
}

// Shutdown releases the wrapped backend.
func (i *Instance) Shutdown(ctx context.Context) error {
	return i.impl.Shutdown(ctx)
}

// Query runs one query through the limiter and breaker.
func (i *Instance) Query(ctx context.Context, req QueryRequest) (*QueryResult, error) {
	out, err := i.call(ctx, func(ctx context.Context) (any, error) {
		return i.impl.Query(ctx, req)
	})
	if err != nil {
		return nil, err
	}
	res := out.(*QueryResult)
	res.Connector = i.cfg.ID
	return res, nil
}

// Enrich runs one enrichment through the limiter and breaker.
func (i *Instance) Enrich(ctx context.Context, entityKind, entity string) (*Enrichment, error) {
	out, err := i.call(ctx, func(ctx context.Context) (any, error) {
		return i.impl.Enrich(ctx, entityKind, entity)
	})
	if err != nil {
		return nil, err
	}
	return out.(*Enrichment), nil
}

func (i *Instance) call(ctx context.Context, fn func(context.Context) (any, error)) (any, error) {
	if d := i.limiter.CheckRequest(); !d.Allowed {
		i.rateRejected.Add(1)
		return nil, &Error{
			Kind:        ErrKindRateLimit,
			ConnectorID: i.cfg.ID,
			RetryAfter:  d.RetryAfter,
			Err:         fmt.Errorf("rate limit exceeded"),
		}
	}

	i.inFlight.Add(1)
	i.totalCalls.Add(1)
	start := i.clk.Now()
	defer func() {
		i.inFlight.Add(-1)
		i.lastLatency.Store(i.clk.Since(start).Milliseconds())
	}()

	out, err := i.breaker.Execute(func() (any, error) {
		return fn(ctx)
	})
	if err != nil {
		i.failures.Add(1)
		return nil, i.classify(err)
	}
	return out, nil
}

// classify maps raw errors onto the connector error taxonomy, preserving
// classifications the backend already applied.
func (i *Instance) classify(err error) error {
	var ce *Error
	if errors.As(err, &ce) {
		if ce.ConnectorID == "" {
			ce.ConnectorID = i.cfg.ID
		}
		return err
	}
	if errors.Is(err, breaker.ErrOpen) {
		return NewError(ErrKindCircuitOpen, i.cfg.ID, err)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return NewError(ErrKindTimeout, i.cfg.ID, err)
	}
	if errors.Is(err, context.Canceled) {
		return NewError(ErrKindFatal, i.cfg.ID, err)
	}
	return NewError(ErrKindFatal, i.cfg.ID, err)
}

// Metrics snapshots the instance counters.
func (i *Instance) Metrics() InstanceMetrics {
	return InstanceMetrics{
		ID:            i.cfg.ID,
		Kind:          i.cfg.Kind,
		TenantID:      i.cfg.TenantID,
		InFlight:      i.inFlight.Load(),
		TotalCalls:    i.totalCalls.Load(),
		Failures:      i.failures.Load(),
		RateRejected:  i.rateRejected.Load(),
		BreakerState:  i.breaker.State(),
		LastLatencyMS: i.lastLatency.Load(),
	}
}
