package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NeoCh3n/NeonharbourSecurity-sub001/pkg/config"
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/pkg/models"
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/pkg/orchestrator"
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/pkg/services"
)

// memStore is an in-memory Store double with a claimable backlog.
type memStore struct {
	mu         sync.Mutex
	backlog    []*models.Investigation
	active     int
	completed  map[string]services.CompleteResult
	heartbeats map[string]int
	recovered  []string
}

func newMemStore(backlog ...*models.Investigation) *memStore {
	return &memStore{
		backlog:    backlog,
		completed:  make(map[string]services.CompleteResult),
		heartbeats: make(map[string]int),
	}
}

func (m *memStore) Claim(_ context.Context, podID string) (*models.Investigation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.backlog) == 0 {
		return nil, services.ErrNoWorkAvailable
	}
	inv := m.backlog[0]
	m.backlog = m.backlog[1:]
	inv.Status = models.StatusPlanning
	m.active++
	return inv, nil
}

func (m *memStore) Heartbeat(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.heartbeats[id]++
	return nil
}

func (m *memStore) Complete(_ context.Context, id string, result services.CompleteResult) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.completed[id] = result
	m.active--
	return nil
}

func (m *memStore) ActiveCount(context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.active, nil
}

func (m *memStore) QueuedCount(context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.backlog), nil
}

func (m *memStore) RecoverOrphans(context.Context, time.Duration) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := m.recovered
	m.recovered = nil
	return out, nil
}

func (m *memStore) result(id string) (services.CompleteResult, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.completed[id]
	return r, ok
}

func (m *memStore) completedCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.completed)
}

// stubExecutor returns a fixed outcome, optionally tracking concurrency.
type stubExecutor struct {
	outcome *orchestrator.Outcome
	delay   time.Duration

	mu      sync.Mutex
	running int
	peak    int
}

func (s *stubExecutor) Execute(ctx context.Context, inv *models.Investigation) *orchestrator.Outcome {
	s.mu.Lock()
	s.running++
	if s.running > s.peak {
		s.peak = s.running
	}
	s.mu.Unlock()

	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
		}
	}

	s.mu.Lock()
	s.running--
	s.mu.Unlock()

	if s.outcome != nil {
		return s.outcome
	}
	return &orchestrator.Outcome{Status: models.StatusComplete}
}

func testConfig() *config.OrchestratorConfig {
	return &config.OrchestratorConfig{
		WorkerCount:                 2,
		MaxConcurrentInvestigations: 2,
		PollInterval:                5 * time.Millisecond,
		PollIntervalJitter:          time.Millisecond,
		HeartbeatInterval:           5 * time.Millisecond,
		OrphanDetectionInterval:     10 * time.Millisecond,
		OrphanThreshold:             time.Minute,
	}
}

func queuedInvestigation(id string) *models.Investigation {
	return &models.Investigation{
		ID:       id,
		TenantID: "acme",
		Status:   models.StatusQueued,
		Priority: 3,
		Alert:    models.Alert{ID: "alert-" + id, Severity: models.SeverityLow},
	}
}

func TestWorkerProcessesBacklog(t *testing.T) {
	store := newMemStore(queuedInvestigation("inv-1"), queuedInvestigation("inv-2"))
	exec := &stubExecutor{outcome: &orchestrator.Outcome{
		Status:  models.StatusComplete,
		Verdict: &models.Verdict{Classification: models.VerdictFalsePositive, Confidence: 0.8},
	}}

	w := NewWorker("w-0", "pod-a", store, testConfig(), exec, nil)
	w.Start(context.Background())

	require.Eventually(t, func() bool {
		return store.completedCount() == 2
	}, 2*time.Second, 5*time.Millisecond)
	w.Stop()

	result, ok := store.result("inv-1")
	require.True(t, ok)
	assert.Equal(t, models.StatusComplete, result.Status)
	require.NotNil(t, result.Verdict)
	assert.Equal(t, models.VerdictFalsePositive, result.Verdict.Classification)
}

func TestWorkerHeartbeatsDuringExecution(t *testing.T) {
	store := newMemStore(queuedInvestigation("inv-1"))
	exec := &stubExecutor{delay: 60 * time.Millisecond}

	w := NewWorker("w-0", "pod-a", store, testConfig(), exec, nil)
	w.Start(context.Background())

	require.Eventually(t, func() bool {
		return store.completedCount() == 1
	}, 2*time.Second, 5*time.Millisecond)
	w.Stop()

	store.mu.Lock()
	beats := store.heartbeats["inv-1"]
	store.mu.Unlock()
	assert.Greater(t, beats, 0, "heartbeat must fire while the executor runs")
}

func TestWorkerNilOutcomeSynthesizesFailure(t *testing.T) {
	store := newMemStore(queuedInvestigation("inv-1"))
	exec := &nilExecutor{}

	w := NewWorker("w-0", "pod-a", store, testConfig(), exec, nil)
	w.Start(context.Background())

	require.Eventually(t, func() bool {
		return store.completedCount() == 1
	}, 2*time.Second, 5*time.Millisecond)
	w.Stop()

	result, _ := store.result("inv-1")
	assert.Equal(t, models.StatusFailed, result.Status)
	assert.Contains(t, result.ErrorMessage, "no outcome")
}

type nilExecutor struct{}

func (nilExecutor) Execute(context.Context, *models.Investigation) *orchestrator.Outcome {
	return nil
}

func TestPoolEnforcesConcurrencyCap(t *testing.T) {
	backlog := []*models.Investigation{
		queuedInvestigation("inv-1"),
		queuedInvestigation("inv-2"),
		queuedInvestigation("inv-3"),
		queuedInvestigation("inv-4"),
		queuedInvestigation("inv-5"),
	}
	store := newMemStore(backlog...)
	exec := &stubExecutor{delay: 20 * time.Millisecond}

	cfg := testConfig()
	cfg.WorkerCount = 4
	cfg.MaxConcurrentInvestigations = 2

	pool := NewWorkerPool("pod-a", store, cfg, exec, nil)
	require.NoError(t, pool.Start(context.Background()))

	require.Eventually(t, func() bool {
		return store.completedCount() == len(backlog)
	}, 5*time.Second, 5*time.Millisecond)
	pool.Stop()

	exec.mu.Lock()
	peak := exec.peak
	exec.mu.Unlock()
	assert.LessOrEqual(t, peak, cfg.MaxConcurrentInvestigations,
		"concurrent executions must not exceed the configured cap")
}

func TestPoolGracefulStopFinishesCurrentWork(t *testing.T) {
	store := newMemStore(queuedInvestigation("inv-1"))
	exec := &stubExecutor{delay: 50 * time.Millisecond}

	cfg := testConfig()
	cfg.WorkerCount = 1
	pool := NewWorkerPool("pod-a", store, cfg, exec, nil)
	require.NoError(t, pool.Start(context.Background()))

	// Wait for the claim, then stop while the executor is mid-run.
	require.Eventually(t, func() bool {
		store.mu.Lock()
		defer store.mu.Unlock()
		return store.active == 1
	}, 2*time.Second, time.Millisecond)
	pool.Stop()

	assert.Equal(t, 1, store.completedCount(), "in-flight investigation must complete before shutdown")
}

func TestPoolOrphanScanCountsRecoveries(t *testing.T) {
	store := newMemStore()
	store.recovered = []string{"inv-9"}

	cfg := testConfig()
	cfg.WorkerCount = 0
	pool := NewWorkerPool("pod-a", store, cfg, &stubExecutor{}, nil)
	require.NoError(t, pool.Start(context.Background()))

	require.Eventually(t, func() bool {
		pool.orphans.mu.Lock()
		defer pool.orphans.mu.Unlock()
		return pool.orphans.orphansRecovered == 1
	}, 2*time.Second, 5*time.Millisecond)
	pool.Stop()

	health := pool.Health()
	assert.Equal(t, 1, health.OrphansRecovered)
	assert.False(t, health.LastOrphanScan.IsZero())
}

func TestPoolHealthReflectsStore(t *testing.T) {
	store := newMemStore(queuedInvestigation("inv-1"), queuedInvestigation("inv-2"))
	cfg := testConfig()
	cfg.WorkerCount = 1
	pool := NewWorkerPool("pod-a", store, cfg, &stubExecutor{delay: 30 * time.Millisecond}, nil)
	require.NoError(t, pool.Start(context.Background()))
	defer pool.Stop()

	require.Eventually(t, func() bool {
		h := pool.Health()
		return h.IsHealthy && h.TotalWorkers == 1
	}, 2*time.Second, 5*time.Millisecond)

	h := pool.Health()
	assert.True(t, h.DBReachable)
	assert.Equal(t, "pod-a", h.PodID)
	assert.Equal(t, cfg.MaxConcurrentInvestigations, h.MaxConcurrent)
}
