package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/NeoCh3n/NeonharbourSecurity-sub001/ent"
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/ent/approvalrequest"
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/pkg/models"
)

// ApprovalService persists human approval gates for recommended actions.
type ApprovalService struct {
	client *ent.Client
}

// NewApprovalService creates a new ApprovalService.
func NewApprovalService(client *ent.Client) *ApprovalService {
	return &ApprovalService{client: client}
}

// Create opens a pending approval request. A caller-supplied ID is kept
// (verified); an empty ID gets a fresh one.
func (s *ApprovalService) Create(ctx context.Context, req *models.ApprovalRequest) (*models.ApprovalRequest, error) {
	if req.InvestigationID == "" {
		return nil, NewValidationError("investigation_id", "required")
	}
	if req.Title == "" {
		return nil, NewValidationError("title", "required")
	}
	risk := req.Risk
	if risk == "" {
		risk = models.RiskMedium
	}
	if !risk.Valid() {
		return nil, NewValidationError("risk", fmt.Sprintf("unknown risk level %q", risk))
	}
	id := req.ID
	verified := true
	if id == "" {
		id = uuid.New().String()
	} else {
		verified = req.Verified
	}

	b := s.client.ApprovalRequest.Create().
		SetID(id).
		SetRunID(req.InvestigationID).
		SetTenantID(req.TenantID).
		SetTitle(req.Title).
		SetRisk(approvalrequest.Risk(risk)).
		SetVerified(verified)
	if req.Description != "" {
		b = b.SetDescription(req.Description)
	}
	if req.ActionPayload != nil {
		b = b.SetActionPayload(req.ActionPayload)
	}
	row, err := b.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create approval request: %w", err)
	}
	return approvalFromEnt(row), nil
}

// Get returns the approval request, tenant-scoped.
func (s *ApprovalService) Get(ctx context.Context, tenantID, requestID string) (*models.ApprovalRequest, error) {
	row, err := s.client.ApprovalRequest.Query().
		Where(
			approvalrequest.ID(requestID),
			approvalrequest.TenantID(tenantID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get approval request: %w", err)
	}
	return approvalFromEnt(row), nil
}

// Resolve moves a pending request to approved or rejected. The pending
// guard in the WHERE clause makes a double response lose cleanly with
// ErrInvalidTransition.
func (s *ApprovalService) Resolve(ctx context.Context, tenantID, requestID string, approve bool, respondedBy string) (*models.ApprovalRequest, error) {
	status := approvalrequest.StatusRejected
	if approve {
		status = approvalrequest.StatusApproved
	}
	n, err := s.client.ApprovalRequest.Update().
		Where(
			approvalrequest.ID(requestID),
			approvalrequest.TenantID(tenantID),
			approvalrequest.StatusEQ(approvalrequest.StatusPending),
		).
		SetStatus(status).
		SetRespondedAt(time.Now()).
		SetRespondedBy(respondedBy).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve approval request: %w", err)
	}
	if n == 0 {
		// Either unknown or already resolved; disambiguate for the caller.
		if _, err := s.Get(ctx, tenantID, requestID); err != nil {
			return nil, err
		}
		return nil, ErrInvalidTransition
	}
	return s.Get(ctx, tenantID, requestID)
}

// ExpirePending expires pending requests older than the cutoff, returning
// the expired IDs so the caller can publish approval/expired events.
func (s *ApprovalService) ExpirePending(ctx context.Context, cutoff time.Time) ([]string, error) {
	rows, err := s.client.ApprovalRequest.Query().
		Where(
			approvalrequest.StatusEQ(approvalrequest.StatusPending),
			approvalrequest.RequestedAtLT(cutoff),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query stale approvals: %w", err)
	}
	var expired []string
	for _, row := range rows {
		err := row.Update().
			SetStatus(approvalrequest.StatusExpired).
			SetRespondedAt(time.Now()).
			Exec(ctx)
		if err != nil {
			return expired, fmt.Errorf("failed to expire approval %s: %w", row.ID, err)
		}
		expired = append(expired, row.ID)
	}
	return expired, nil
}

// ListPending returns the investigation's open approval requests, oldest
// first.
func (s *ApprovalService) ListPending(ctx context.Context, tenantID, investigationID string) ([]*models.ApprovalRequest, error) {
	rows, err := s.client.ApprovalRequest.Query().
		Where(
			approvalrequest.TenantID(tenantID),
			approvalrequest.RunID(investigationID),
			approvalrequest.StatusEQ(approvalrequest.StatusPending),
		).
		Order(ent.Asc(approvalrequest.FieldRequestedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending approvals: %w", err)
	}
	out := make([]*models.ApprovalRequest, len(rows))
	for i, row := range rows {
		out[i] = approvalFromEnt(row)
	}
	return out, nil
}

func approvalFromEnt(row *ent.ApprovalRequest) *models.ApprovalRequest {
	req := &models.ApprovalRequest{
		ID:              row.ID,
		InvestigationID: row.RunID,
		TenantID:        row.TenantID,
		Title:           row.Title,
		Description:     row.Description,
		Risk:            models.RiskLevel(row.Risk),
		ActionPayload:   row.ActionPayload,
		Status:          models.ApprovalStatus(row.Status),
		Verified:        row.Verified,
		RequestedAt:     row.RequestedAt,
		RespondedAt:     row.RespondedAt,
	}
	if row.RespondedBy != nil {
		req.RespondedBy = *row.RespondedBy
	}
	return req
}
