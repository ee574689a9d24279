package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/NeoCh3n/NeonharbourSecurity-sub001/pkg/config"
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/pkg/learning"
)

// WorkerPool manages a pool of queue workers plus the orphan detection
// background task.
type WorkerPool struct {
	podID    string
	store    Store
	config   *config.OrchestratorConfig
	executor Executor
	hook     learning.Hook
	log      *slog.Logger
	workers  []*Worker
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	started  bool

	// Orphan detection state
	orphans orphanState
}

// orphanState tracks orphan detection metrics.
type orphanState struct {
	mu               sync.Mutex
	lastOrphanScan   time.Time
	orphansRecovered int
}

// NewWorkerPool creates a worker pool.
func NewWorkerPool(podID string, store Store, cfg *config.OrchestratorConfig, executor Executor, log *slog.Logger) *WorkerPool {
	if log == nil {
		log = slog.Default()
	}
	return &WorkerPool{
		podID:    podID,
		store:    store,
		config:   cfg,
		executor: executor,
		log:      log,
		workers:  make([]*Worker, 0, cfg.WorkerCount),
		stopCh:   make(chan struct{}),
	}
}

// SetLearningHook wires the completion hook into every worker. Call
// before Start.
func (p *WorkerPool) SetLearningHook(hook learning.Hook) {
	p.hook = hook
}

// Start spawns worker goroutines and the orphan detection background task.
// Safe to call multiple times; subsequent calls are no-ops.
func (p *WorkerPool) Start(ctx context.Context) error {
	if p.started {
		p.log.Warn("Worker pool already started, ignoring duplicate Start call", "pod_id", p.podID)
		return nil
	}
	p.started = true

	p.log.Info("Starting worker pool", "pod_id", p.podID, "worker_count", p.config.WorkerCount)

	for i := 0; i < p.config.WorkerCount; i++ {
		workerID := fmt.Sprintf("%s-worker-%d", p.podID, i)
		worker := NewWorker(workerID, p.podID, p.store, p.config, p.executor, p.log)
		worker.SetLearningHook(p.hook)
		p.workers = append(p.workers, worker)
		worker.Start(ctx)
	}

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.runOrphanDetection(ctx)
	}()

	p.log.Info("Worker pool started")
	return nil
}

// Stop signals all workers to stop and waits for them to finish. Workers
// finish their current investigations before exiting.
func (p *WorkerPool) Stop() {
	p.log.Info("Stopping worker pool gracefully")

	for _, worker := range p.workers {
		worker.Stop()
	}

	p.stopOnce.Do(func() { close(p.stopCh) })
	p.wg.Wait()

	p.log.Info("Worker pool stopped gracefully")
}

// Health returns the current health status of the pool.
func (p *WorkerPool) Health() *PoolHealth {
	ctx := context.Background()

	queueDepth, errQ := p.store.QueuedCount(ctx)
	if errQ != nil {
		p.log.Error("Failed to query queue depth for health check", "pod_id", p.podID, "error", errQ)
	}
	activeRuns, errA := p.store.ActiveCount(ctx)
	if errA != nil {
		p.log.Error("Failed to query active investigations for health check", "pod_id", p.podID, "error", errA)
	}

	workerStats := make([]WorkerHealth, len(p.workers))
	activeWorkers := 0
	for i, worker := range p.workers {
		stats := worker.Health()
		workerStats[i] = stats
		if stats.Status == string(WorkerStatusWorking) {
			activeWorkers++
		}
	}

	// DB errors affect health status: if we can't reach the DB we can't
	// claim or complete work.
	dbHealthy := errQ == nil && errA == nil
	isHealthy := len(p.workers) > 0 && dbHealthy

	p.orphans.mu.Lock()
	lastOrphanScan := p.orphans.lastOrphanScan
	orphansRecovered := p.orphans.orphansRecovered
	p.orphans.mu.Unlock()

	var dbError string
	switch {
	case errQ != nil:
		dbError = fmt.Sprintf("queue depth query failed: %v", errQ)
	case errA != nil:
		dbError = fmt.Sprintf("active investigations query failed: %v", errA)
	}

	return &PoolHealth{
		IsHealthy:        isHealthy,
		DBReachable:      dbHealthy,
		DBError:          dbError,
		PodID:            p.podID,
		ActiveWorkers:    activeWorkers,
		TotalWorkers:     len(p.workers),
		ActiveRuns:       activeRuns,
		MaxConcurrent:    p.config.MaxConcurrentInvestigations,
		QueueDepth:       queueDepth,
		WorkerStats:      workerStats,
		LastOrphanScan:   lastOrphanScan,
		OrphansRecovered: orphansRecovered,
	}
}

// runOrphanDetection periodically re-queues investigations whose heartbeat
// went stale. All replicas run this independently; the recovery update is
// guarded so doing it twice is harmless.
func (p *WorkerPool) runOrphanDetection(ctx context.Context) {
	// An immediate scan on startup re-queues work stranded by a previous
	// crash of this or any other replica.
	p.scanOrphans(ctx)

	ticker := time.NewTicker(p.config.OrphanDetectionInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			p.scanOrphans(ctx)
		}
	}
}

func (p *WorkerPool) scanOrphans(ctx context.Context) {
	recovered, err := p.store.RecoverOrphans(ctx, p.config.OrphanThreshold)
	if err != nil {
		p.log.Error("Orphan detection failed", "error", err)
		return
	}
	if len(recovered) > 0 {
		p.log.Warn("Recovered orphaned investigations",
			"count", len(recovered), "investigation_ids", recovered)
	}

	p.orphans.mu.Lock()
	p.orphans.lastOrphanScan = time.Now()
	p.orphans.orphansRecovered += len(recovered)
	p.orphans.mu.Unlock()
}
