package connector

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/NeoCh3n/NeonharbourSecurity-sub001/pkg/breaker"
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/pkg/clock"
)

// ErrNoConnector is returned when no instance can serve a request.
var ErrNoConnector = errors.New("no connector available")

// Factory builds a fresh, uninitialized Connector.
type Factory func() Connector

// HealthState is the registry's view of an instance.
type HealthState string

// Instance health states.
const (
	HealthActive    HealthState = "active"
	HealthDegraded  HealthState = "degraded"
	HealthUnhealthy HealthState = "unhealthy"
)

// FailoverEvent describes one failover between instances.
type FailoverEvent struct {
	TenantID string
	Kind     Kind
	From     string
	To       string
	Reason   string
}

type failoverObserverKey struct{}

// WithFailoverObserver returns a context whose Query and Enrich failovers
// are reported to fn, in addition to the registry-level OnFailover hook.
// Callers that own a run use this to attach failovers to its event stream.
func WithFailoverObserver(ctx context.Context, fn func(FailoverEvent)) context.Context {
	return context.WithValue(ctx, failoverObserverKey{}, fn)
}

// RegistryOptions tunes registry construction.
type RegistryOptions struct {
	Breaker BreakerConfig
	Clock   clock.Clock
	// OnFailover is invoked after a failed attempt hands over to the next
	// candidate. May be nil.
	OnFailover func(FailoverEvent)
	// OnBreakerChange is invoked on instance circuit transitions. May be nil.
	OnBreakerChange func(connectorID string, change breaker.StateChange)
}

// Registry holds connector factories and the per-tenant instances built
// from them, and routes requests with priority, load, and failover rules.
type Registry struct {
	opts RegistryOptions

	mu        sync.RWMutex
	factories map[Kind]Factory
	instances map[string]*entry // tenantID + "/" + connectorID
	rrCounter map[string]int    // tenantID + "/" + kind → round-robin cursor
}

type entry struct {
	inst   *Instance
	health HealthState
}

// NewRegistry creates an empty registry with the built-in connector kinds
// registered.
func NewRegistry(opts RegistryOptions) *Registry {
	r := &Registry{
		opts:      opts,
		factories: make(map[Kind]Factory),
		instances: make(map[string]*entry),
		rrCounter: make(map[string]int),
	}
	r.RegisterFactory(KindSIEM, func() Connector { return NewSIEM() })
	r.RegisterFactory(KindEDR, func() Connector { return NewEDR() })
	r.RegisterFactory(KindThreatIntel, func() Connector { return NewThreatIntel() })
	return r
}

// RegisterFactory registers (or replaces) the factory for a kind.
func (r *Registry) RegisterFactory(kind Kind, f Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[kind] = f
}

func instanceKey(tenantID, connectorID string) string { return tenantID + "/" + connectorID }

// Add builds, initializes, and registers an instance for cfg. A second Add
// with the same (tenant, id) replaces the previous instance after shutting
// it down.
func (r *Registry) Add(ctx context.Context, cfg Config) (*Instance, error) {
	r.mu.RLock()
	factory, ok := r.factories[cfg.Kind]
	r.mu.RUnlock()
	if !ok {
		return nil, NewError(ErrKindConnectorNotFound, cfg.ID, fmt.Errorf("no factory for kind %q", cfg.Kind))
	}
	if cfg.ID == "" || cfg.TenantID == "" {
		return nil, NewError(ErrKindValidation, cfg.ID, fmt.Errorf("connector config requires id and tenantId"))
	}

	var onChange func(breaker.StateChange)
	if r.opts.OnBreakerChange != nil {
		id := cfg.ID
		cb := r.opts.OnBreakerChange
		onChange = func(c breaker.StateChange) { cb(id, c) }
	}
	inst := NewInstance(cfg, factory(), r.opts.Breaker, r.opts.Clock, onChange)
	if err := inst.Initialize(ctx); err != nil {
		return nil, err
	}

	key := instanceKey(cfg.TenantID, cfg.ID)
	r.mu.Lock()
	prev := r.instances[key]
	r.instances[key] = &entry{inst: inst, health: HealthActive}
	r.mu.Unlock()

	if prev != nil {
		if err := prev.inst.Shutdown(ctx); err != nil {
			slog.Warn("Failed to shut down replaced connector",
				"connector_id", cfg.ID, "tenant_id", cfg.TenantID, "error", err)
		}
	}
	return inst, nil
}

// AddInstance registers a pre-built connector implementation, bypassing the
// factory. Used for custom backends and tests.
func (r *Registry) AddInstance(ctx context.Context, cfg Config, impl Connector) (*Instance, error) {
	if cfg.ID == "" || cfg.TenantID == "" {
		return nil, NewError(ErrKindValidation, cfg.ID, fmt.Errorf("connector config requires id and tenantId"))
	}
	var onChange func(breaker.StateChange)
	if r.opts.OnBreakerChange != nil {
		id := cfg.ID
		cb := r.opts.OnBreakerChange
		onChange = func(c breaker.StateChange) { cb(id, c) }
	}
	inst := NewInstance(cfg, impl, r.opts.Breaker, r.opts.Clock, onChange)
	if err := inst.Initialize(ctx); err != nil {
		return nil, err
	}
	r.mu.Lock()
	r.instances[instanceKey(cfg.TenantID, cfg.ID)] = &entry{inst: inst, health: HealthActive}
	r.mu.Unlock()
	return inst, nil
}

// Remove shuts down and drops an instance.
func (r *Registry) Remove(ctx context.Context, tenantID, connectorID string) error {
	key := instanceKey(tenantID, connectorID)
	r.mu.Lock()
	e, ok := r.instances[key]
	delete(r.instances, key)
	r.mu.Unlock()
	if !ok {
		return NewError(ErrKindConnectorNotFound, connectorID, fmt.Errorf("connector %s not registered for tenant %s", connectorID, tenantID))
	}
	return e.inst.Shutdown(ctx)
}

// Get returns a tenant's instance by id.
func (r *Registry) Get(tenantID, connectorID string) (*Instance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.instances[instanceKey(tenantID, connectorID)]
	if !ok {
		return nil, NewError(ErrKindConnectorNotFound, connectorID, fmt.Errorf("connector %s not registered for tenant %s", connectorID, tenantID))
	}
	return e.inst, nil
}

// SetHealth updates the registry's health view of an instance. Unhealthy
// instances are excluded from selection until they recover.
func (r *Registry) SetHealth(tenantID, connectorID string, state HealthState) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.instances[instanceKey(tenantID, connectorID)]; ok {
		e.health = state
	}
}

// Health returns the registry's health view of an instance.
func (r *Registry) Health(tenantID, connectorID string) (HealthState, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.instances[instanceKey(tenantID, connectorID)]
	if !ok {
		return "", false
	}
	return e.health, true
}

// Instances returns a tenant's instances, all kinds.
func (r *Registry) Instances(tenantID string) []*Instance {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*Instance
	for _, e := range r.instances {
		if e.inst.TenantID() == tenantID {
			out = append(out, e.inst)
		}
	}
	sort.Slice(out, func(a, b int) bool { return out[a].ID() < out[b].ID() })
	return out
}

// ActiveKinds returns the distinct connector kinds with at least one
// selectable (non-unhealthy) instance for the tenant, sorted. Planners use
// this as the set of available data sources.
func (r *Registry) ActiveKinds(tenantID string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	seen := make(map[string]bool)
	for _, e := range r.instances {
		if e.inst.TenantID() != tenantID || e.health == HealthUnhealthy {
			continue
		}
		seen[string(e.inst.Kind())] = true
	}
	out := make([]string, 0, len(seen))
	for k := range seen {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// AllInstances returns every registered instance across tenants. Used by
// the health monitor.
func (r *Registry) AllInstances() []*Instance {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Instance, 0, len(r.instances))
	for _, e := range r.instances {
		out = append(out, e.inst)
	}
	sort.Slice(out, func(a, b int) bool {
		if out[a].TenantID() != out[b].TenantID() {
			return out[a].TenantID() < out[b].TenantID()
		}
		return out[a].ID() < out[b].ID()
	})
	return out
}

// candidates returns the tenant's selectable instances of a kind ordered by
// priority (ascending), then current in-flight load, then a per-(tenant,
// kind) round-robin cursor to spread exact ties.
func (r *Registry) candidates(tenantID string, kind Kind) []*Instance {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*Instance
	for _, e := range r.instances {
		if e.inst.TenantID() != tenantID || e.inst.Kind() != kind {
			continue
		}
		if e.health == HealthUnhealthy {
			continue
		}
		out = append(out, e.inst)
	}
	if len(out) == 0 {
		return nil
	}

	rrKey := tenantID + "/" + string(kind)
	cursor := r.rrCounter[rrKey]
	r.rrCounter[rrKey] = cursor + 1

	// Stable base order so the round-robin offset is meaningful.
	sort.Slice(out, func(a, b int) bool { return out[a].ID() < out[b].ID() })
	if n := len(out); n > 1 {
		rotated := make([]*Instance, 0, n)
		rotated = append(rotated, out[cursor%n:]...)
		rotated = append(rotated, out[:cursor%n]...)
		out = rotated
	}
	sort.SliceStable(out, func(a, b int) bool {
		if out[a].Priority() != out[b].Priority() {
			return out[a].Priority() < out[b].Priority()
		}
		return out[a].InFlight() < out[b].InFlight()
	})
	return out
}

// Query routes a query to the tenant's best instance of the kind, failing
// over to the next candidate on retryable-elsewhere errors. The returned
// error on exhaustion wraps ErrNoConnector together with the last failure.
func (r *Registry) Query(ctx context.Context, tenantID string, kind Kind, req QueryRequest) (*QueryResult, error) {
	var lastErr error
	cands := r.candidates(tenantID, kind)
	if len(cands) == 0 {
		return nil, fmt.Errorf("%w: tenant %s has no %s instances", ErrNoConnector, tenantID, kind)
	}
	for idx, inst := range cands {
		res, err := inst.Query(ctx, req)
		if err == nil {
			return res, nil
		}
		lastErr = err
		if !FailoverEligible(err) {
			return nil, err
		}
		if idx+1 < len(cands) {
			r.emitFailover(ctx, tenantID, kind, inst.ID(), cands[idx+1].ID(), string(KindOf(err)))
		}
	}
	return nil, fmt.Errorf("%w: all %s instances failed for tenant %s: %w", ErrNoConnector, kind, tenantID, lastErr)
}

// Enrich routes an enrichment with the same selection and failover rules
// as Query.
func (r *Registry) Enrich(ctx context.Context, tenantID string, kind Kind, entityKind, entity string) (*Enrichment, error) {
	var lastErr error
	cands := r.candidates(tenantID, kind)
	if len(cands) == 0 {
		return nil, fmt.Errorf("%w: tenant %s has no %s instances", ErrNoConnector, tenantID, kind)
	}
	for idx, inst := range cands {
		res, err := inst.Enrich(ctx, entityKind, entity)
		if err == nil {
			return res, nil
		}
		lastErr = err
		if !FailoverEligible(err) {
			return nil, err
		}
		if idx+1 < len(cands) {
			r.emitFailover(ctx, tenantID, kind, inst.ID(), cands[idx+1].ID(), string(KindOf(err)))
		}
	}
	return nil, fmt.Errorf("%w: all %s instances failed for tenant %s: %w", ErrNoConnector, kind, tenantID, lastErr)
}

func (r *Registry) emitFailover(ctx context.Context, tenantID string, kind Kind, from, to, reason string) {
	slog.Info("Connector failover",
		"tenant_id", tenantID, "kind", kind, "from", from, "to", to, "reason", reason)
	ev := FailoverEvent{TenantID: tenantID, Kind: kind, From: from, To: to, Reason: reason}
	if r.opts.OnFailover != nil {
		r.opts.OnFailover(ev)
	}
	if fn, ok := ctx.Value(failoverObserverKey{}).(func(FailoverEvent)); ok {
		fn(ev)
	}
}

// Shutdown stops every instance. Errors are logged, not returned; shutdown
// proceeds through all instances.
func (r *Registry) Shutdown(ctx context.Context) {
	r.mu.Lock()
	entries := make([]*entry, 0, len(r.instances))
	for _, e := range r.instances {
		entries = append(entries, e)
	}
	r.instances = make(map[string]*entry)
	r.mu.Unlock()

	for _, e := range entries {
		if err := e.inst.Shutdown(ctx); err != nil {
			slog.Warn("Connector shutdown failed", "connector_id", e.inst.ID(), "error", err)
		}
	}
}
