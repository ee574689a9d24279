// Package cleanup enforces data retention for finished investigations.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/NeoCh3n/NeonharbourSecurity-sub001/pkg/clock"
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/pkg/config"
)

// RetentionStore is the investigation store surface the sweeper needs.
type RetentionStore interface {
	SoftDeleteTerminalBefore(ctx context.Context, cutoff time.Time) (int, error)
	PurgeDeletedBefore(ctx context.Context, cutoff time.Time) (int, error)
}

// ApprovalExpirer times out approval requests that never got a decision.
type ApprovalExpirer interface {
	ExpirePending(ctx context.Context, cutoff time.Time) ([]string, error)
}

// Service periodically enforces retention policies:
//   - Soft-deletes terminal investigations past the retention window
//   - Hard-purges soft-deleted investigations past the purge delay
//   - Expires approval requests whose TTL lapsed without a decision
//
// All operations are idempotent and safe to run from multiple pods.
type Service struct {
	config      *config.RetentionConfig
	store       RetentionStore
	approvals   ApprovalExpirer
	approvalTTL time.Duration
	clk         clock.Clock
	log         *slog.Logger

	cancel context.CancelFunc
	done   chan struct{}
}

// Options wires the sweeper's collaborators.
type Options struct {
	Retention   *config.RetentionConfig
	Store       RetentionStore
	Approvals   ApprovalExpirer // optional
	ApprovalTTL time.Duration
	Clock       clock.Clock
	Logger      *slog.Logger
}

// NewService creates a new cleanup service.
func NewService(opts Options) *Service {
	if opts.Clock == nil {
		opts.Clock = clock.System{}
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.ApprovalTTL <= 0 {
		opts.ApprovalTTL = 15 * time.Minute
	}
	return &Service{
		config:      opts.Retention,
		store:       opts.Store,
		approvals:   opts.Approvals,
		approvalTTL: opts.ApprovalTTL,
		clk:         opts.Clock,
		log:         opts.Logger,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	s.log.Info("Cleanup service started",
		"investigation_retention_days", s.config.InvestigationRetentionDays,
		"purge_after", s.config.PurgeAfter,
		"interval", s.config.CleanupInterval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	s.log.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.RunAll(ctx)

	ticker := time.NewTicker(s.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.RunAll(ctx)
		}
	}
}

// RunAll performs one full sweep.
func (s *Service) RunAll(ctx context.Context) {
	s.softDeleteOldInvestigations(ctx)
	s.purgeDeletedInvestigations(ctx)
	s.expireStaleApprovals(ctx)
}

func (s *Service) softDeleteOldInvestigations(ctx context.Context) {
	cutoff := s.clk.Now().AddDate(0, 0, -s.config.InvestigationRetentionDays)
	count, err := s.store.SoftDeleteTerminalBefore(ctx, cutoff)
	if err != nil {
		s.log.Error("Retention: soft-delete investigations failed", "error", err)
		return
	}
	if count > 0 {
		s.log.Info("Retention: soft-deleted old investigations", "count", count)
	}
}

func (s *Service) purgeDeletedInvestigations(ctx context.Context) {
	cutoff := s.clk.Now().Add(-s.config.PurgeAfter)
	count, err := s.store.PurgeDeletedBefore(ctx, cutoff)
	if err != nil {
		s.log.Error("Retention: purge investigations failed", "error", err)
		return
	}
	if count > 0 {
		s.log.Info("Retention: purged soft-deleted investigations", "count", count)
	}
}

func (s *Service) expireStaleApprovals(ctx context.Context) {
	if s.approvals == nil {
		return
	}
	cutoff := s.clk.Now().Add(-s.approvalTTL)
	expired, err := s.approvals.ExpirePending(ctx, cutoff)
	if err != nil {
		s.log.Error("Retention: approval expiry failed", "error", err)
		return
	}
	if len(expired) > 0 {
		s.log.Info("Retention: expired stale approvals",
			"count", len(expired), "request_ids", expired)
	}
}
