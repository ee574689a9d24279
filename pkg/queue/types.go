// Package queue provides the DB-backed investigation queue: a pool of
// workers that claim queued investigations with FOR UPDATE SKIP LOCKED,
// drive them through the orchestrator, and write the terminal result.
// Multiple replicas run the same pool against the shared database; the
// row lock is the only coordination between them.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/NeoCh3n/NeonharbourSecurity-sub001/pkg/models"
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/pkg/orchestrator"
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/pkg/services"
)

// ErrAtCapacity indicates the global concurrent investigation limit has
// been reached; workers back off and re-poll.
var ErrAtCapacity = errors.New("at capacity")

// Store is the queue's view of investigation persistence.
type Store interface {
	Claim(ctx context.Context, podID string) (*models.Investigation, error)
	Heartbeat(ctx context.Context, id string) error
	Complete(ctx context.Context, id string, result services.CompleteResult) error
	ActiveCount(ctx context.Context) (int, error)
	QueuedCount(ctx context.Context) (int, error)
	RecoverOrphans(ctx context.Context, staleAfter time.Duration) ([]string, error)
}

// Executor drives one claimed investigation to a terminal outcome. The
// worker only handles claiming, heartbeat, and the terminal write; the
// executor owns everything in between and never returns nil.
type Executor interface {
	Execute(ctx context.Context, inv *models.Investigation) *orchestrator.Outcome
}

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	IsHealthy        bool           `json:"is_healthy"`
	DBReachable      bool           `json:"db_reachable"`
	DBError          string         `json:"db_error,omitempty"`
	PodID            string         `json:"pod_id"`
	ActiveWorkers    int            `json:"active_workers"`
	TotalWorkers     int            `json:"total_workers"`
	ActiveRuns       int            `json:"active_runs"`
	MaxConcurrent    int            `json:"max_concurrent"`
	QueueDepth       int            `json:"queue_depth"`
	WorkerStats      []WorkerHealth `json:"worker_stats"`
	LastOrphanScan   time.Time      `json:"last_orphan_scan"`
	OrphansRecovered int            `json:"orphans_recovered"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID                     string    `json:"id"`
	Status                 string    `json:"status"` // "idle" or "working"
	CurrentInvestigationID string    `json:"current_investigation_id,omitempty"`
	Processed              int       `json:"processed"`
	LastActivity           time.Time `json:"last_activity"`
}
