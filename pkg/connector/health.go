package connector

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Health monitor defaults.
const (
	defaultProbeInterval = 30 * time.Second
	defaultProbeTimeout  = 5 * time.Second
	// unhealthyAfter is the consecutive probe failures before an instance is
	// taken out of selection.
	unhealthyAfter = 3
)

// HealthStatus captures the probe result for a single instance.
type HealthStatus struct {
	ConnectorID  string      `json:"connector_id"`
	TenantID     string      `json:"tenant_id"`
	Kind         Kind        `json:"kind"`
	State        HealthState `json:"state"`
	ConsecFails  int         `json:"consecutive_failures"`
	LastCheck    time.Time   `json:"last_check"`
	Error        string      `json:"error,omitempty"`
	LastRecovery time.Time   `json:"last_recovery,omitempty"`
}

// HealthMonitor periodically probes every registered instance and feeds the
// results back into the registry's selection view. Runs one background
// goroutine per process.
type HealthMonitor struct {
	registry *Registry

	probeInterval time.Duration
	probeTimeout  time.Duration

	statuses   map[string]*HealthStatus // tenant/connector key
	statusesMu sync.RWMutex

	// onUnhealthy fires when an instance crosses into unhealthy, and
	// onRecovered when it comes back. Either may be nil.
	onUnhealthy func(HealthStatus)
	onRecovered func(HealthStatus)

	cancel context.CancelFunc
	done   chan struct{}
	logger *slog.Logger
}

// HealthMonitorOptions tunes monitor construction.
type HealthMonitorOptions struct {
	ProbeInterval time.Duration
	ProbeTimeout  time.Duration
	OnUnhealthy   func(HealthStatus)
	OnRecovered   func(HealthStatus)
}

// NewHealthMonitor creates a monitor over the registry.
func NewHealthMonitor(registry *Registry, opts HealthMonitorOptions) *HealthMonitor {
	if opts.ProbeInterval <= 0 {
		opts.ProbeInterval = defaultProbeInterval
	}
	if opts.ProbeTimeout <= 0 {
		opts.ProbeTimeout = defaultProbeTimeout
	}
	return &HealthMonitor{
		registry:      registry,
		probeInterval: opts.ProbeInterval,
		probeTimeout:  opts.ProbeTimeout,
		statuses:      make(map[string]*HealthStatus),
		onUnhealthy:   opts.OnUnhealthy,
		onRecovered:   opts.OnRecovered,
		logger:        slog.Default(),
	}
}

// Start launches the background probe loop.
// Calling Start on an already-running monitor is a no-op.
func (m *HealthMonitor) Start(ctx context.Context) {
	if m.cancel != nil {
		return
	}
	ctx, m.cancel = context.WithCancel(ctx)
	m.done = make(chan struct{})
	go m.loop(ctx)
}

// Stop shuts the monitor down and clears stale status so a later Start
// begins clean. After Stop returns, Start may be called again.
func (m *HealthMonitor) Stop() {
	if m.cancel != nil {
		m.cancel()
	}
	if m.done != nil {
		<-m.done
	}
	m.statusesMu.Lock()
	m.statuses = make(map[string]*HealthStatus)
	m.statusesMu.Unlock()
	m.cancel = nil
	m.done = nil
}

func (m *HealthMonitor) loop(ctx context.Context) {
	defer close(m.done)

	m.CheckAll(ctx)

	ticker := time.NewTicker(m.probeInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.CheckAll(ctx)
		}
	}
}

// CheckAll probes every registered instance once.
func (m *HealthMonitor) CheckAll(ctx context.Context) {
	for _, inst := range m.registry.AllInstances() {
		m.checkInstance(ctx, inst)
	}
}

func (m *HealthMonitor) checkInstance(ctx context.Context, inst *Instance) {
	probeCtx, cancel := context.WithTimeout(ctx, m.probeTimeout)
	err := inst.HealthCheck(probeCtx)
	cancel()

	key := instanceKey(inst.TenantID(), inst.ID())

	m.statusesMu.Lock()
	st, ok := m.statuses[key]
	if !ok {
		st = &HealthStatus{
			ConnectorID: inst.ID(),
			TenantID:    inst.TenantID(),
			Kind:        inst.Kind(),
			State:       HealthActive,
		}
		m.statuses[key] = st
	}
	st.LastCheck = time.Now().UTC()

	if err != nil {
		st.ConsecFails++
		st.Error = err.Error()
		crossed := st.ConsecFails == unhealthyAfter
		if st.ConsecFails >= unhealthyAfter {
			st.State = HealthUnhealthy
		} else {
			st.State = HealthDegraded
		}
		snapshot := *st
		m.statusesMu.Unlock()

		m.registry.SetHealth(inst.TenantID(), inst.ID(), snapshot.State)
		if crossed {
			m.logger.Warn("Connector marked unhealthy",
				"connector_id", inst.ID(), "tenant_id", inst.TenantID(),
				"consecutive_failures", snapshot.ConsecFails, "error", err)
			if m.onUnhealthy != nil {
				m.onUnhealthy(snapshot)
			}
		}
		return
	}

	recovered := st.State == HealthUnhealthy
	st.ConsecFails = 0
	st.Error = ""
	st.State = HealthActive
	if recovered {
		st.LastRecovery = time.Now().UTC()
	}
	snapshot := *st
	m.statusesMu.Unlock()

	m.registry.SetHealth(inst.TenantID(), inst.ID(), HealthActive)
	if recovered {
		// A recovered backend gets a fresh circuit so it is immediately
		// selectable instead of waiting out the open timeout.
		inst.ResetBreaker()
		m.logger.Info("Connector recovered",
			"connector_id", inst.ID(), "tenant_id", inst.TenantID())
		if m.onRecovered != nil {
			m.onRecovered(snapshot)
		}
	}
}

// Statuses returns the current probe results, keyed by tenant/connector.
func (m *HealthMonitor) Statuses() map[string]HealthStatus {
	m.statusesMu.RLock()
	defer m.statusesMu.RUnlock()
	out := make(map[string]HealthStatus, len(m.statuses))
	for k, v := range m.statuses {
		out[k] = *v
	}
	return out
}

// IsHealthy reports whether every probed instance is currently active.
// Returns false before the first probe completes when instances exist.
func (m *HealthMonitor) IsHealthy() bool {
	m.statusesMu.RLock()
	defer m.statusesMu.RUnlock()
	if len(m.statuses) == 0 {
		return len(m.registry.AllInstances()) == 0
	}
	for _, s := range m.statuses {
		if s.State != HealthActive {
			return false
		}
	}
	return true
}
