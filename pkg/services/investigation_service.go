// Package services contains the ent-backed persistence layer. Services
// validate input, own their transactions, and translate between the
// generated ent types and the domain models.
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/NeoCh3n/NeonharbourSecurity-sub001/ent"
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/ent/investigation"
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/pkg/models"
)

// writeTimeout bounds critical writes that must survive request
// cancellation (terminal statuses, claims).
const writeTimeout = 10 * time.Second

// InvestigationService manages investigation lifecycle rows.
type InvestigationService struct {
	client *ent.Client
}

// NewInvestigationService creates a new InvestigationService.
func NewInvestigationService(client *ent.Client) *InvestigationService {
	return &InvestigationService{client: client}
}

// Start admits an investigation for the alert. Admission is idempotent on
// (tenant_id, alert_id, correlation_key): a repeated request returns the
// existing investigation instead of creating a duplicate.
func (s *InvestigationService) Start(httpCtx context.Context, tenantID string, req models.StartInvestigationRequest) (*models.Investigation, bool, error) {
	if tenantID == "" {
		return nil, false, NewValidationError("tenant_id", "required")
	}
	if req.Alert.ID == "" {
		return nil, false, NewValidationError("alert.alert_id", "required")
	}
	if !req.Alert.Severity.Valid() {
		return nil, false, NewValidationError("alert.severity", fmt.Sprintf("unknown severity %q", req.Alert.Severity))
	}
	if req.Priority < 0 || req.Priority > 5 {
		return nil, false, NewValidationError("priority", "must be in 1..5")
	}
	priority := req.Priority
	if priority == 0 {
		priority = 3
	}
	correlationKey := req.CorrelationKey
	if correlationKey == "" {
		correlationKey = "default"
	}

	// Use background context with timeout so a dropped request cannot
	// leave a half-admitted investigation.
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	if existing, err := s.findByIdempotencyKey(ctx, tenantID, req.Alert.ID, correlationKey); err == nil {
		return existing, true, nil
	} else if !ent.IsNotFound(err) {
		return nil, false, fmt.Errorf("failed to check idempotency key: %w", err)
	}

	builder := s.client.Investigation.Create().
		SetID(uuid.New().String()).
		SetTenantID(tenantID).
		SetAlertID(req.Alert.ID).
		SetCorrelationKey(correlationKey).
		SetAlertTitle(req.Alert.Title).
		SetAlertSeverity(investigation.AlertSeverity(req.Alert.Severity)).
		SetAlertSource(req.Alert.Source).
		SetPriority(priority).
		SetStatus(investigation.StatusQueued)
	if req.UserID != "" {
		builder.SetUserID(req.UserID)
	}
	if !req.Alert.Timestamp.IsZero() {
		builder.SetAlertTimestamp(req.Alert.Timestamp)
	}
	if req.Alert.Payload != nil {
		builder.SetAlertPayload(req.Alert.Payload)
	}
	if req.Alert.Entities != nil {
		builder.SetAlertEntities(req.Alert.Entities)
	}
	if req.TimeoutMs > 0 {
		builder.SetTimeoutMs(req.TimeoutMs)
	}
	if req.Metadata != nil {
		builder.SetMetadata(req.Metadata)
	}

	row, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// Lost the race against a concurrent identical request.
			existing, ferr := s.findByIdempotencyKey(ctx, tenantID, req.Alert.ID, correlationKey)
			if ferr != nil {
				return nil, false, fmt.Errorf("constraint hit but existing row not found: %w", ferr)
			}
			return existing, true, nil
		}
		return nil, false, fmt.Errorf("failed to create investigation: %w", err)
	}
	return investigationFromEnt(row), false, nil
}

func (s *InvestigationService) findByIdempotencyKey(ctx context.Context, tenantID, alertID, correlationKey string) (*models.Investigation, error) {
	row, err := s.client.Investigation.Query().
		Where(
			investigation.TenantID(tenantID),
			investigation.AlertID(alertID),
			investigation.CorrelationKey(correlationKey),
			investigation.DeletedAtIsNil(),
		).
		Only(ctx)
	if err != nil {
		return nil, err
	}
	return investigationFromEnt(row), nil
}

// Get returns the investigation, tenant-scoped.
func (s *InvestigationService) Get(ctx context.Context, tenantID, id string) (*models.Investigation, error) {
	row, err := s.client.Investigation.Query().
		Where(
			investigation.ID(id),
			investigation.TenantID(tenantID),
			investigation.DeletedAtIsNil(),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get investigation: %w", err)
	}
	return investigationFromEnt(row), nil
}

// listLimitCap is the hard ceiling on page size.
const listLimitCap = 200

// List returns investigations for the tenant, newest first.
func (s *InvestigationService) List(ctx context.Context, tenantID string, filters models.InvestigationFilters) ([]*models.Investigation, error) {
	q := s.client.Investigation.Query().
		Where(
			investigation.TenantID(tenantID),
			investigation.DeletedAtIsNil(),
		)
	if filters.Status != "" {
		if !models.InvestigationStatus(filters.Status).Valid() {
			return nil, NewValidationError("status", fmt.Sprintf("unknown status %q", filters.Status))
		}
		q = q.Where(investigation.StatusEQ(investigation.Status(filters.Status)))
	}
	if filters.Severity != "" {
		if !models.Severity(filters.Severity).Valid() {
			return nil, NewValidationError("severity", fmt.Sprintf("unknown severity %q", filters.Severity))
		}
		q = q.Where(investigation.AlertSeverityEQ(investigation.AlertSeverity(filters.Severity)))
	}
	if filters.CreatedAfter != nil {
		q = q.Where(investigation.CreatedAtGTE(*filters.CreatedAfter))
	}
	if filters.CreatedBefore != nil {
		q = q.Where(investigation.CreatedAtLT(*filters.CreatedBefore))
	}

	limit := filters.Limit
	if limit <= 0 || limit > listLimitCap {
		limit = listLimitCap
	}
	rows, err := q.
		Order(ent.Desc(investigation.FieldCreatedAt)).
		Limit(limit).
		Offset(filters.Offset).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list investigations: %w", err)
	}
	out := make([]*models.Investigation, len(rows))
	for i, row := range rows {
		out[i] = investigationFromEnt(row)
	}
	return out, nil
}

// Transition moves the investigation from one of the allowed statuses to
// the target. The status guard in the WHERE clause makes concurrent
// transitions race-safe: losing the race returns ErrInvalidTransition.
func (s *InvestigationService) Transition(ctx context.Context, id string, from []models.InvestigationStatus, to models.InvestigationStatus) error {
	if !to.Valid() {
		return NewValidationError("status", fmt.Sprintf("unknown status %q", to))
	}
	allowed := make([]investigation.Status, len(from))
	for i, st := range from {
		allowed[i] = investigation.Status(st)
	}
	n, err := s.client.Investigation.Update().
		Where(
			investigation.ID(id),
			investigation.StatusIn(allowed...),
		).
		SetStatus(investigation.Status(to)).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to transition investigation: %w", err)
	}
	if n == 0 {
		return ErrInvalidTransition
	}
	return nil
}

// Claim atomically claims the highest-priority queued investigation for a
// worker using FOR UPDATE SKIP LOCKED. FIFO within equal priority.
func (s *InvestigationService) Claim(ctx context.Context, podID string) (*models.Investigation, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	row, err := tx.Investigation.Query().
		Where(
			investigation.StatusEQ(investigation.StatusQueued),
			investigation.DeletedAtIsNil(),
		).
		Order(ent.Desc(investigation.FieldPriority), ent.Asc(investigation.FieldCreatedAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoWorkAvailable
		}
		return nil, fmt.Errorf("failed to query queued investigations: %w", err)
	}

	now := time.Now()
	row, err = row.Update().
		SetStatus(investigation.StatusPlanning).
		SetPodID(podID).
		SetStartedAt(now).
		SetLastHeartbeatAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim investigation: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}
	return investigationFromEnt(row), nil
}

// Heartbeat bumps the orphan-detection timestamp.
func (s *InvestigationService) Heartbeat(ctx context.Context, id string) error {
	return s.client.Investigation.UpdateOneID(id).
		SetLastHeartbeatAt(time.Now()).
		Exec(ctx)
}

// RecoverOrphans re-queues active investigations whose heartbeat went stale,
// typically after a worker crash. Returns the recovered IDs.
func (s *InvestigationService) RecoverOrphans(ctx context.Context, staleAfter time.Duration) ([]string, error) {
	cutoff := time.Now().Add(-staleAfter)
	rows, err := s.client.Investigation.Query().
		Where(
			investigation.StatusIn(
				investigation.StatusPlanning,
				investigation.StatusExecuting,
				investigation.StatusAnalyzing,
				investigation.StatusResponding,
			),
			investigation.LastHeartbeatAtLT(cutoff),
			investigation.DeletedAtIsNil(),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query orphans: %w", err)
	}

	var recovered []string
	for _, row := range rows {
		err := row.Update().
			SetStatus(investigation.StatusQueued).
			ClearPodID().
			ClearStartedAt().
			ClearLastHeartbeatAt().
			Exec(ctx)
		if err != nil {
			return recovered, fmt.Errorf("failed to recover %s: %w", row.ID, err)
		}
		recovered = append(recovered, row.ID)
	}
	return recovered, nil
}

// CompleteResult carries everything written at investigation termination.
type CompleteResult struct {
	Status       models.InvestigationStatus
	Verdict      *models.Verdict
	Response     *models.Response
	Summary      *models.ExecutionSummary
	ErrorMessage string
}

// Complete writes the terminal status and result artifacts. Uses a
// background context so request cancellation cannot lose the outcome.
func (s *InvestigationService) Complete(_ context.Context, id string, result CompleteResult) error {
	if !result.Status.Terminal() {
		return fmt.Errorf("%w: %s is not terminal", ErrInvalidTransition, result.Status)
	}
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	update := s.client.Investigation.UpdateOneID(id).
		SetStatus(investigation.Status(result.Status)).
		SetCompletedAt(time.Now())
	if result.Verdict != nil {
		verdict, err := toJSONMap(verdictDocument{Verdict: result.Verdict, Response: result.Response})
		if err != nil {
			return fmt.Errorf("failed to encode verdict: %w", err)
		}
		update.SetVerdict(verdict)
	}
	if result.Summary != nil {
		summary, err := toJSONMap(result.Summary)
		if err != nil {
			return fmt.Errorf("failed to encode execution summary: %w", err)
		}
		update.SetExecutionSummary(summary)
	}
	if result.ErrorMessage != "" {
		update.SetErrorMessage(result.ErrorMessage)
	}
	if err := update.Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to complete investigation: %w", err)
	}
	return nil
}

// ActiveCount returns how many investigations hold a concurrency slot.
func (s *InvestigationService) ActiveCount(ctx context.Context) (int, error) {
	n, err := s.client.Investigation.Query().
		Where(
			investigation.StatusIn(
				investigation.StatusPlanning,
				investigation.StatusExecuting,
				investigation.StatusAnalyzing,
				investigation.StatusResponding,
				investigation.StatusAwaitingApproval,
				investigation.StatusPaused,
			),
			investigation.DeletedAtIsNil(),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count active investigations: %w", err)
	}
	return n, nil
}

// QueuedCount returns the current queue depth across tenants.
func (s *InvestigationService) QueuedCount(ctx context.Context) (int, error) {
	n, err := s.client.Investigation.Query().
		Where(
			investigation.StatusEQ(investigation.StatusQueued),
			investigation.DeletedAtIsNil(),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count queued investigations: %w", err)
	}
	return n, nil
}

// Stats aggregates investigation counts for the tenant over the window.
func (s *InvestigationService) Stats(ctx context.Context, tenantID string, timeframe string, window time.Duration) (*models.Stats, error) {
	since := time.Now().Add(-window)
	rows, err := s.client.Investigation.Query().
		Where(
			investigation.TenantID(tenantID),
			investigation.CreatedAtGTE(since),
			investigation.DeletedAtIsNil(),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query stats window: %w", err)
	}

	stats := &models.Stats{
		Timeframe:  timeframe,
		Total:      len(rows),
		ByStatus:   make(map[string]int),
		BySeverity: make(map[string]int),
	}
	var durationSum int64
	var durationCount int64
	var completed int
	for _, row := range rows {
		stats.ByStatus[string(row.Status)]++
		stats.BySeverity[string(row.AlertSeverity)]++
		switch models.InvestigationStatus(row.Status) {
		case models.StatusQueued:
			stats.QueuedRightNow++
		default:
			if models.InvestigationStatus(row.Status).Active() {
				stats.ActiveRightNow++
			}
		}
		if models.InvestigationStatus(row.Status) == models.StatusComplete {
			completed++
		}
		if row.StartedAt != nil && row.CompletedAt != nil {
			durationSum += row.CompletedAt.Sub(*row.StartedAt).Milliseconds()
			durationCount++
		}
	}
	if durationCount > 0 {
		stats.AvgDurationMs = durationSum / durationCount
	}
	if stats.Total > 0 {
		stats.CompletionRatio = float64(completed) / float64(stats.Total)
	}
	return stats, nil
}

// SoftDelete marks the investigation deleted without dropping rows; the
// retention sweeper purges it later.
func (s *InvestigationService) SoftDelete(ctx context.Context, tenantID, id string) error {
	n, err := s.client.Investigation.Update().
		Where(
			investigation.ID(id),
			investigation.TenantID(tenantID),
			investigation.DeletedAtIsNil(),
		).
		SetDeletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to soft-delete investigation: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// SoftDeleteTerminalBefore marks terminal investigations that completed
// before the cutoff as deleted. Returns the number of rows marked.
func (s *InvestigationService) SoftDeleteTerminalBefore(ctx context.Context, cutoff time.Time) (int, error) {
	n, err := s.client.Investigation.Update().
		Where(
			investigation.StatusIn(
				investigation.StatusComplete,
				investigation.StatusRequiresReview,
				investigation.StatusFailed,
				investigation.StatusTimedOut,
			),
			investigation.CompletedAtNotNil(),
			investigation.CompletedAtLT(cutoff),
			investigation.DeletedAtIsNil(),
		).
		SetDeletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to soft-delete old investigations: %w", err)
	}
	return n, nil
}

// PurgeDeletedBefore hard-deletes soft-deleted investigations older than the
// cutoff. Cascades take the dependent rows. Returns the purge count.
func (s *InvestigationService) PurgeDeletedBefore(ctx context.Context, cutoff time.Time) (int, error) {
	n, err := s.client.Investigation.Delete().
		Where(
			investigation.DeletedAtNotNil(),
			investigation.DeletedAtLT(cutoff),
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to purge investigations: %w", err)
	}
	return n, nil
}

// verdictDocument is the persisted shape of the verdict JSON column.
type verdictDocument struct {
	Verdict  *models.Verdict  `json:"verdict"`
	Response *models.Response `json:"response,omitempty"`
}

// investigationFromEnt maps a row to the domain view.
func investigationFromEnt(row *ent.Investigation) *models.Investigation {
	inv := &models.Investigation{
		ID:       row.ID,
		TenantID: row.TenantID,
		Alert: models.Alert{
			ID:       row.AlertID,
			TenantID: row.TenantID,
			Title:    row.AlertTitle,
			Severity: models.Severity(row.AlertSeverity),
			Source:   row.AlertSource,
			Payload:  row.AlertPayload,
			Entities: row.AlertEntities,
		},
		CorrelationKey: row.CorrelationKey,
		Priority:       row.Priority,
		Status:         models.InvestigationStatus(row.Status),
		TimeoutMs:      row.TimeoutMs,
		CreatedAt:      row.CreatedAt,
		StartedAt:      row.StartedAt,
		CompletedAt:    row.CompletedAt,
		Metadata:       row.Metadata,
	}
	if row.UserID != nil {
		inv.UserID = *row.UserID
	}
	if row.AlertTimestamp != nil {
		inv.Alert.Timestamp = *row.AlertTimestamp
	}
	if row.ErrorMessage != nil {
		inv.ErrorMessage = *row.ErrorMessage
	}
	if row.Verdict != nil {
		var doc verdictDocument
		if err := fromJSONMap(row.Verdict, &doc); err == nil {
			inv.Verdict = doc.Verdict
			inv.Response = doc.Response
		}
	}
	if row.ExecutionSummary != nil {
		var summary models.ExecutionSummary
		if err := fromJSONMap(row.ExecutionSummary, &summary); err == nil {
			inv.Summary = &summary
		}
	}
	return inv
}

// toJSONMap round-trips a typed value into the map shape ent JSON columns
// expect.
func toJSONMap(v any) (map[string]any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func fromJSONMap(m map[string]any, out any) error {
	raw, err := json.Marshal(m)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}
