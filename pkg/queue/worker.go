package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/NeoCh3n/NeonharbourSecurity-sub001/pkg/config"
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/pkg/learning"
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/pkg/models"
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/pkg/orchestrator"
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/pkg/services"
)

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// Worker is a single queue worker that polls for and processes
// investigations.
type Worker struct {
	id       string
	podID    string
	store    Store
	config   *config.OrchestratorConfig
	executor Executor
	hook     learning.Hook
	log      *slog.Logger
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	// Health tracking
	mu                     sync.RWMutex
	status                 WorkerStatus
	currentInvestigationID string
	processed              int
	lastActivity           time.Time
}

// NewWorker creates a queue worker.
func NewWorker(id, podID string, store Store, cfg *config.OrchestratorConfig, executor Executor, log *slog.Logger) *Worker {
	if log == nil {
		log = slog.Default()
	}
	return &Worker{
		id:           id,
		podID:        podID,
		store:        store,
		config:       cfg,
		executor:     executor,
		hook:         learning.NopHook{},
		log:          log.With("worker_id", id, "pod_id", podID),
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// SetLearningHook replaces the completion hook. Call before Start.
func (w *Worker) SetLearningHook(hook learning.Hook) {
	if hook != nil {
		w.hook = hook
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish its current
// investigation. Safe to call multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:                     w.id,
		Status:                 string(w.status),
		CurrentInvestigationID: w.currentInvestigationID,
		Processed:              w.processed,
		LastActivity:           w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()
	w.log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			w.log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			w.log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, services.ErrNoWorkAvailable) || errors.Is(err, ErrAtCapacity) {
					w.sleep(w.pollInterval())
					continue
				}
				w.log.Error("Error processing investigation", "error", err)
				w.sleep(time.Second) // brief backoff on error
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndProcess checks capacity, claims an investigation, and processes
// it to a terminal state.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	// Global capacity check is best-effort: racy with concurrent workers
	// but bounded by WorkerCount and mitigated by poll jitter.
	active, err := w.store.ActiveCount(ctx)
	if err != nil {
		return fmt.Errorf("checking active investigations: %w", err)
	}
	if active >= w.config.MaxConcurrentInvestigations {
		return ErrAtCapacity
	}

	// Claim sets status=planning, pod_id, started_at, and the first
	// heartbeat in one transaction.
	inv, err := w.store.Claim(ctx, w.podID)
	if err != nil {
		return err
	}

	log := w.log.With("investigation_id", inv.ID, "tenant_id", inv.TenantID)
	log.Info("Investigation claimed", "priority", inv.Priority, "alert_id", inv.Alert.ID)

	w.setStatus(WorkerStatusWorking, inv.ID)
	defer w.setStatus(WorkerStatusIdle, "")

	// Heartbeat runs for the whole execution so other replicas never
	// mistake this run for an orphan.
	heartbeatCtx, stopHeartbeat := context.WithCancel(ctx)
	defer stopHeartbeat()
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		w.runHeartbeat(heartbeatCtx, inv.ID)
	}()

	// The executor owns timeout, pause, and cancellation internally and
	// always returns a terminal outcome.
	outcome := w.executor.Execute(ctx, inv)
	if outcome == nil {
		outcome = &orchestrator.Outcome{
			Status:       models.StatusFailed,
			ErrorMessage: "executor returned no outcome",
		}
	}
	stopHeartbeat()

	// Terminal write uses a background context: the outcome must land even
	// when the pool is shutting down.
	if err := w.store.Complete(context.Background(), inv.ID, services.CompleteResult{
		Status:       outcome.Status,
		Verdict:      outcome.Verdict,
		Response:     outcome.Response,
		Summary:      outcome.Summary,
		ErrorMessage: outcome.ErrorMessage,
	}); err != nil {
		log.Error("Failed to write terminal status", "status", outcome.Status, "error", err)
		return err
	}

	inv.Status = outcome.Status
	inv.Verdict = outcome.Verdict
	inv.Response = outcome.Response
	inv.Summary = outcome.Summary
	w.hook.InvestigationCompleted(context.Background(), learning.Signal{Investigation: inv})

	w.mu.Lock()
	w.processed++
	w.mu.Unlock()

	log.Info("Investigation processing complete", "status", outcome.Status)
	return nil
}

// runHeartbeat periodically bumps the orphan-detection timestamp.
func (w *Worker) runHeartbeat(ctx context.Context, investigationID string) {
	ticker := time.NewTicker(w.config.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.store.Heartbeat(ctx, investigationID); err != nil {
				w.log.Warn("Heartbeat update failed", "investigation_id", investigationID, "error", err)
			}
		}
	}
}

// pollInterval returns the poll duration with jitter.
func (w *Worker) pollInterval() time.Duration {
	base := w.config.PollInterval
	jitter := w.config.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status WorkerStatus, investigationID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentInvestigationID = investigationID
	w.lastActivity = time.Now()
}
