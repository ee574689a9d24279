package services

import (
	"context"
	"fmt"

	"github.com/NeoCh3n/NeonharbourSecurity-sub001/ent"
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/ent/planstep"
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/pkg/models"
)

// StepService persists plan steps and their lifecycle transitions.
type StepService struct {
	client *ent.Client
}

// NewStepService creates a new StepService.
func NewStepService(client *ent.Client) *StepService {
	return &StepService{client: client}
}

// SavePlan writes every step of a freshly planned DAG in one transaction.
// The plan must already be validated; a partial write is never visible.
func (s *StepService) SavePlan(ctx context.Context, tenantID string, plan *models.Plan) error {
	if plan.InvestigationID == "" {
		return NewValidationError("investigation_id", "required")
	}
	if len(plan.Steps) == 0 {
		return NewValidationError("steps", "plan has no steps")
	}
	if err := plan.Validate(); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	builders := make([]*ent.PlanStepCreate, len(plan.Steps))
	for i, step := range plan.Steps {
		builders[i] = stepCreate(tx.PlanStep.Create(), tenantID, plan.InvestigationID, step)
	}
	if _, err := tx.PlanStep.CreateBulk(builders...).Save(ctx); err != nil {
		if ent.IsConstraintError(err) {
			return ErrAlreadyExists
		}
		return fmt.Errorf("failed to save plan steps: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit plan: %w", err)
	}
	return nil
}

// SaveStep persists a single step added after planning, e.g. an adapted
// replacement inserted mid-run.
func (s *StepService) SaveStep(ctx context.Context, tenantID, investigationID string, step *models.Step) error {
	_, err := stepCreate(s.client.PlanStep.Create(), tenantID, investigationID, step).Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return ErrAlreadyExists
		}
		return fmt.Errorf("failed to save step %s: %w", step.ID, err)
	}
	return nil
}

func stepCreate(b *ent.PlanStepCreate, tenantID, investigationID string, step *models.Step) *ent.PlanStepCreate {
	b = b.
		SetID(step.ID).
		SetInvestigationID(investigationID).
		SetTenantID(tenantID).
		SetName(step.Name).
		SetType(planstep.Type(step.Type)).
		SetTimeoutMs(step.TimeoutMs).
		SetMaxRetries(step.MaxRetries).
		SetCritical(step.Critical).
		SetStatus(planstep.Status(step.Status))
	if step.Agent != "" {
		b = b.SetAgent(step.Agent)
	}
	if len(step.Dependencies) > 0 {
		b = b.SetDependencies(step.Dependencies)
	}
	if step.Payload != nil {
		b = b.SetPayload(step.Payload)
	}
	if len(step.DataSources) > 0 {
		b = b.SetDataSources(step.DataSources)
	}
	if step.AdaptedFrom != "" {
		b = b.SetAdaptedFrom(step.AdaptedFrom)
	}
	return b
}

// UpdateStep writes the engine's in-memory lifecycle state back to the row.
func (s *StepService) UpdateStep(ctx context.Context, step *models.Step) error {
	update := s.client.PlanStep.UpdateOneID(step.ID).
		SetStatus(planstep.Status(step.Status)).
		SetRetryCount(step.RetryCount).
		SetDependencies(step.Dependencies)
	if step.StartedAt != nil {
		update.SetStartedAt(*step.StartedAt)
	}
	if step.CompletedAt != nil {
		update.SetCompletedAt(*step.CompletedAt)
	}
	if step.LastError != "" {
		update.SetLastError(step.LastError)
	}
	if err := update.Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update step %s: %w", step.ID, err)
	}
	return nil
}

// ListSteps returns every step of the investigation in creation order.
func (s *StepService) ListSteps(ctx context.Context, tenantID, investigationID string) ([]*models.Step, error) {
	rows, err := s.client.PlanStep.Query().
		Where(
			planstep.TenantID(tenantID),
			planstep.InvestigationID(investigationID),
		).
		Order(ent.Asc(planstep.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list steps: %w", err)
	}
	out := make([]*models.Step, len(rows))
	for i, row := range rows {
		out[i] = stepFromEnt(row)
	}
	return out, nil
}

// Progress summarizes step completion for the status endpoint. The
// percentage counts terminal steps against the whole plan.
func (s *StepService) Progress(ctx context.Context, tenantID, investigationID string) (int, []models.StepProgress, error) {
	steps, err := s.ListSteps(ctx, tenantID, investigationID)
	if err != nil {
		return 0, nil, err
	}
	if len(steps) == 0 {
		return 0, nil, nil
	}
	progress := make([]models.StepProgress, len(steps))
	terminal := 0
	for i, step := range steps {
		progress[i] = models.StepProgress{
			StepID:      step.ID,
			Name:        step.Name,
			Agent:       step.Agent,
			Status:      step.Status,
			StartedAt:   step.StartedAt,
			CompletedAt: step.CompletedAt,
			Retries:     step.RetryCount,
		}
		if step.StartedAt != nil && step.CompletedAt != nil {
			progress[i].DurationMs = step.CompletedAt.Sub(*step.StartedAt).Milliseconds()
		}
		if step.Status.Terminal() {
			terminal++
		}
	}
	return terminal * 100 / len(steps), progress, nil
}

func stepFromEnt(row *ent.PlanStep) *models.Step {
	step := &models.Step{
		ID:           row.ID,
		Name:         row.Name,
		Type:         models.StepType(row.Type),
		Agent:        row.Agent,
		Dependencies: row.Dependencies,
		Payload:      row.Payload,
		DataSources:  row.DataSources,
		TimeoutMs:    row.TimeoutMs,
		MaxRetries:   row.MaxRetries,
		Critical:     row.Critical,
		Status:       models.StepStatus(row.Status),
		StartedAt:    row.StartedAt,
		CompletedAt:  row.CompletedAt,
		RetryCount:   row.RetryCount,
	}
	if row.LastError != nil {
		step.LastError = *row.LastError
	}
	if row.AdaptedFrom != nil {
		step.AdaptedFrom = *row.AdaptedFrom
	}
	return step
}
