package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/NeoCh3n/NeonharbourSecurity-sub001/ent"
	entevidence "github.com/NeoCh3n/NeonharbourSecurity-sub001/ent/evidence"
	entrelationship "github.com/NeoCh3n/NeonharbourSecurity-sub001/ent/evidencerelationship"
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/pkg/models"
)

// EvidenceService persists evidence rows and their derived relationships.
// Evidence is append-only: revisions supersede rather than overwrite.
type EvidenceService struct {
	client *ent.Client
}

// NewEvidenceService creates a new EvidenceService.
func NewEvidenceService(client *ent.Client) *EvidenceService {
	return &EvidenceService{client: client}
}

// SaveEvidence writes a batch of evidence rows in one transaction. IDs are
// assigned here when the producer left them empty.
func (s *EvidenceService) SaveEvidence(ctx context.Context, tenantID, investigationID string, records []*models.EvidenceRecord) error {
	if len(records) == 0 {
		return nil
	}
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	builders := make([]*ent.EvidenceCreate, len(records))
	for i, rec := range records {
		if rec.ID == "" {
			rec.ID = uuid.New().String()
		}
		if rec.Timestamp.IsZero() {
			rec.Timestamp = time.Now()
		}
		b := tx.Evidence.Create().
			SetID(rec.ID).
			SetInvestigationID(investigationID).
			SetTenantID(tenantID).
			SetType(entevidence.Type(rec.Type)).
			SetSource(rec.Source).
			SetTimestamp(rec.Timestamp).
			SetConfidence(rec.Confidence).
			SetQualityScore(rec.QualityScore)
		if rec.StepID != "" {
			b = b.SetStepID(rec.StepID)
		}
		if rec.Payload != nil {
			b = b.SetPayload(rec.Payload)
		}
		if rec.Entities != nil {
			b = b.SetEntities(rec.Entities)
		}
		if rec.ScoreBreakdown != nil {
			b = b.SetScoreBreakdown(rec.ScoreBreakdown)
		}
		if len(rec.Tags) > 0 {
			b = b.SetTags(rec.Tags)
		}
		if rec.Supersedes != "" {
			b = b.SetSupersedes(rec.Supersedes)
		}
		builders[i] = b
	}
	if _, err := tx.Evidence.CreateBulk(builders...).Save(ctx); err != nil {
		if ent.IsConstraintError(err) {
			return ErrAlreadyExists
		}
		return fmt.Errorf("failed to save evidence: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit evidence: %w", err)
	}
	return nil
}

// SaveRelationships writes derived links. The correlator is deterministic
// and may re-emit an existing link after a re-score, so duplicates on
// (from, to, kind) are skipped rather than treated as errors.
func (s *EvidenceService) SaveRelationships(ctx context.Context, tenantID, investigationID string, links []models.Relationship) error {
	for _, link := range links {
		if link.FromEvidenceID == "" || link.ToEvidenceID == "" {
			return NewValidationError("relationship", "both evidence IDs are required")
		}
		id := link.ID
		if id == "" {
			id = uuid.New().String()
		}
		err := s.client.EvidenceRelationship.Create().
			SetID(id).
			SetTenantID(tenantID).
			SetInvestigationID(investigationID).
			SetFromEvidenceID(link.FromEvidenceID).
			SetToEvidenceID(link.ToEvidenceID).
			SetKind(entrelationship.Kind(link.Kind)).
			SetStrength(link.Strength).
			SetRationale(link.Rationale).
			Exec(ctx)
		if err != nil {
			if ent.IsConstraintError(err) {
				continue
			}
			return fmt.Errorf("failed to save relationship %s -> %s: %w", link.FromEvidenceID, link.ToEvidenceID, err)
		}
	}
	return nil
}

// ListByInvestigation returns the investigation's evidence, oldest activity
// first. Superseded rows stay in the result; callers that want only the
// latest revisions filter on Supersedes.
func (s *EvidenceService) ListByInvestigation(ctx context.Context, tenantID, investigationID string) ([]*models.EvidenceRecord, error) {
	rows, err := s.client.Evidence.Query().
		Where(
			entevidence.TenantID(tenantID),
			entevidence.InvestigationID(investigationID),
		).
		Order(ent.Asc(entevidence.FieldTimestamp), ent.Asc(entevidence.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list evidence: %w", err)
	}
	out := make([]*models.EvidenceRecord, len(rows))
	for i, row := range rows {
		out[i] = evidenceFromEnt(row)
	}
	return out, nil
}

// ListByTenant returns the tenant's evidence across investigations for
// search, newest first, capped at the page limit.
func (s *EvidenceService) ListByTenant(ctx context.Context, tenantID string, limit int) ([]*models.EvidenceRecord, error) {
	if limit <= 0 || limit > listLimitCap {
		limit = listLimitCap
	}
	rows, err := s.client.Evidence.Query().
		Where(entevidence.TenantID(tenantID)).
		Order(ent.Desc(entevidence.FieldTimestamp)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tenant evidence: %w", err)
	}
	out := make([]*models.EvidenceRecord, len(rows))
	for i, row := range rows {
		out[i] = evidenceFromEnt(row)
	}
	return out, nil
}

// ListRelationships returns the investigation's derived links.
func (s *EvidenceService) ListRelationships(ctx context.Context, tenantID, investigationID string) ([]models.Relationship, error) {
	rows, err := s.client.EvidenceRelationship.Query().
		Where(
			entrelationship.TenantID(tenantID),
			entrelationship.InvestigationID(investigationID),
		).
		Order(ent.Asc(entrelationship.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list relationships: %w", err)
	}
	out := make([]models.Relationship, len(rows))
	for i, row := range rows {
		out[i] = models.Relationship{
			ID:             row.ID,
			FromEvidenceID: row.FromEvidenceID,
			ToEvidenceID:   row.ToEvidenceID,
			Kind:           models.RelationshipKind(row.Kind),
			Strength:       row.Strength,
			Rationale:      row.Rationale,
		}
	}
	return out, nil
}

// Supersede writes a revision of an existing evidence row with updated
// confidence and tags. The original row is kept untouched; the new row
// points back at it. Returns the revision.
func (s *EvidenceService) Supersede(ctx context.Context, tenantID, originalID string, confidence float64, tags []string, rationale string) (*models.EvidenceRecord, error) {
	if confidence < 0 || confidence > 1 {
		return nil, NewValidationError("confidence", "must be in [0,1]")
	}
	original, err := s.client.Evidence.Query().
		Where(
			entevidence.ID(originalID),
			entevidence.TenantID(tenantID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load evidence %s: %w", originalID, err)
	}

	payload := original.Payload
	if rationale != "" {
		payload = make(map[string]any, len(original.Payload)+1)
		for k, v := range original.Payload {
			payload[k] = v
		}
		payload["revision_rationale"] = rationale
	}
	b := s.client.Evidence.Create().
		SetID(uuid.New().String()).
		SetInvestigationID(original.InvestigationID).
		SetTenantID(tenantID).
		SetType(original.Type).
		SetSource(original.Source).
		SetTimestamp(original.Timestamp).
		SetConfidence(confidence).
		SetQualityScore(original.QualityScore).
		SetSupersedes(original.ID)
	if original.StepID != "" {
		b = b.SetStepID(original.StepID)
	}
	if payload != nil {
		b = b.SetPayload(payload)
	}
	if original.Entities != nil {
		b = b.SetEntities(original.Entities)
	}
	if original.ScoreBreakdown != nil {
		b = b.SetScoreBreakdown(original.ScoreBreakdown)
	}
	if len(tags) > 0 {
		b = b.SetTags(tags)
	} else if len(original.Tags) > 0 {
		b = b.SetTags(original.Tags)
	}
	row, err := b.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to supersede evidence %s: %w", originalID, err)
	}
	return evidenceFromEnt(row), nil
}

func evidenceFromEnt(row *ent.Evidence) *models.EvidenceRecord {
	rec := &models.EvidenceRecord{
		ID:              row.ID,
		InvestigationID: row.InvestigationID,
		TenantID:        row.TenantID,
		StepID:          row.StepID,
		Type:            models.EvidenceType(row.Type),
		Source:          row.Source,
		Timestamp:       row.Timestamp,
		Payload:         row.Payload,
		Entities:        row.Entities,
		Confidence:      row.Confidence,
		QualityScore:    row.QualityScore,
		ScoreBreakdown:  row.ScoreBreakdown,
		Tags:            row.Tags,
		CreatedAt:       row.CreatedAt,
	}
	if row.Supersedes != nil {
		rec.Supersedes = *row.Supersedes
	}
	return rec
}
