package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/NeoCh3n/NeonharbourSecurity-sub001/ent"
	entfeedback "github.com/NeoCh3n/NeonharbourSecurity-sub001/ent/feedback"
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/pkg/models"
)

// FeedbackService stores human feedback for running investigations. Rows
// are append-only; the orchestrator marks them consumed after acting.
type FeedbackService struct {
	client *ent.Client
}

// NewFeedbackService creates a new FeedbackService.
func NewFeedbackService(client *ent.Client) *FeedbackService {
	return &FeedbackService{client: client}
}

// Create stores one feedback entry against the investigation.
func (s *FeedbackService) Create(ctx context.Context, tenantID, investigationID string, req models.PostFeedbackRequest) (*models.FeedbackEntry, error) {
	if !req.Type.Valid() {
		return nil, NewValidationError("type", fmt.Sprintf("unknown feedback type %q", req.Type))
	}
	if len(req.Content) == 0 {
		return nil, NewValidationError("content", "required")
	}
	if req.Type == models.FeedbackVerdictCorrection {
		verdict, _ := req.Content["corrected_verdict"].(string)
		switch verdict {
		case "true_positive", "false_positive", "requires_review":
		default:
			return nil, NewValidationError("content.corrected_verdict", "must be true_positive, false_positive or requires_review")
		}
	}
	userID := req.UserID
	if userID == "" {
		userID = "anonymous"
	}
	row, err := s.client.Feedback.Create().
		SetID(uuid.New().String()).
		SetInvestigationID(investigationID).
		SetTenantID(tenantID).
		SetUserID(userID).
		SetType(entfeedback.Type(req.Type)).
		SetContent(req.Content).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// The FK to investigations is the only constraint here.
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to create feedback: %w", err)
	}
	return feedbackFromEnt(row), nil
}

// ListUnconsumed returns feedback the orchestrator has not yet acted on,
// oldest first.
func (s *FeedbackService) ListUnconsumed(ctx context.Context, investigationID string) ([]*models.FeedbackEntry, error) {
	rows, err := s.client.Feedback.Query().
		Where(
			entfeedback.InvestigationID(investigationID),
			entfeedback.ConsumedAtIsNil(),
		).
		Order(ent.Asc(entfeedback.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list unconsumed feedback: %w", err)
	}
	return feedbackListFromEnt(rows), nil
}

// MarkConsumed stamps the given feedback rows as acted on.
func (s *FeedbackService) MarkConsumed(ctx context.Context, feedbackIDs []string) error {
	if len(feedbackIDs) == 0 {
		return nil
	}
	_, err := s.client.Feedback.Update().
		Where(entfeedback.IDIn(feedbackIDs...)).
		SetConsumedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark feedback consumed: %w", err)
	}
	return nil
}

// ListByInvestigation returns all feedback for the investigation, oldest
// first, for reports.
func (s *FeedbackService) ListByInvestigation(ctx context.Context, tenantID, investigationID string) ([]*models.FeedbackEntry, error) {
	rows, err := s.client.Feedback.Query().
		Where(
			entfeedback.TenantID(tenantID),
			entfeedback.InvestigationID(investigationID),
		).
		Order(ent.Asc(entfeedback.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list feedback: %w", err)
	}
	return feedbackListFromEnt(rows), nil
}

func feedbackListFromEnt(rows []*ent.Feedback) []*models.FeedbackEntry {
	out := make([]*models.FeedbackEntry, len(rows))
	for i, row := range rows {
		out[i] = feedbackFromEnt(row)
	}
	return out
}

func feedbackFromEnt(row *ent.Feedback) *models.FeedbackEntry {
	return &models.FeedbackEntry{
		FeedbackID: row.ID,
		Type:       models.FeedbackType(row.Type),
		UserID:     row.UserID,
		Content:    row.Content,
		CreatedAt:  row.CreatedAt,
	}
}
