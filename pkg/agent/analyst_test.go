package agent

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NeoCh3n/NeonharbourSecurity-sub001/pkg/models"
)

func maliciousEvidence(id, source string) *models.EvidenceRecord {
	return &models.EvidenceRecord{
		ID:           id,
		Source:       source,
		Type:         "indicator",
		QualityScore: 0.8,
		Payload:      map[string]any{"verdict": "malicious"},
	}
}

func benignEvidence(id, source string) *models.EvidenceRecord {
	return &models.EvidenceRecord{
		ID:           id,
		Source:       source,
		Type:         "log_entry",
		QualityScore: 0.7,
		Payload:      map[string]any{"verdict": "benign"},
	}
}

func TestAnalyzeTruePositive(t *testing.T) {
	a := NewAnalyst(BaseOptions{})
	agentCtx := &Context{
		InvestigationID: "inv-1",
		Alert:           models.Alert{ID: "a1", Severity: models.SeverityCritical},
		Evidence: []*models.EvidenceRecord{
			maliciousEvidence("ev-1", "siem-prod"),
			maliciousEvidence("ev-2", "edr-prod"),
			maliciousEvidence("ev-3", "ti-feed"),
		},
		Links: []models.Relationship{
			{FromEvidenceID: "ev-1", ToEvidenceID: "ev-2", Kind: models.RelationshipTemporal, Strength: 0.8},
			{FromEvidenceID: "ev-1", ToEvidenceID: "ev-3", Kind: models.RelationshipEntity, Strength: 0.6},
			{FromEvidenceID: "ev-2", ToEvidenceID: "ev-3", Kind: models.RelationshipBehavioral, Strength: 0.5},
		},
	}

	verdict, err := a.Analyze(context.Background(), agentCtx)
	require.NoError(t, err)
	assert.Equal(t, models.VerdictTruePositive, verdict.Classification)
	assert.Greater(t, verdict.Confidence, 0.7)
	assert.Contains(t, verdict.Reasoning, "3 indicators rated malicious")
	assert.Empty(t, verdict.Limitations)
}

func TestAnalyzeFalsePositive(t *testing.T) {
	a := NewAnalyst(BaseOptions{})
	agentCtx := &Context{
		InvestigationID: "inv-1",
		Alert:           models.Alert{ID: "a1", Severity: models.SeverityLow},
		Evidence: []*models.EvidenceRecord{
			benignEvidence("ev-1", "siem-prod"),
			benignEvidence("ev-2", "edr-prod"),
		},
	}

	verdict, err := a.Analyze(context.Background(), agentCtx)
	require.NoError(t, err)
	assert.Equal(t, models.VerdictFalsePositive, verdict.Classification)
}

func TestAnalyzeInconclusiveRequiresReview(t *testing.T) {
	a := NewAnalyst(BaseOptions{})
	agentCtx := &Context{
		InvestigationID: "inv-1",
		Alert:           models.Alert{ID: "a1", Severity: models.SeverityMedium},
		Evidence: []*models.EvidenceRecord{
			maliciousEvidence("ev-1", "siem-prod"),
			benignEvidence("ev-2", "siem-prod"),
		},
	}

	verdict, err := a.Analyze(context.Background(), agentCtx)
	require.NoError(t, err)
	assert.Equal(t, models.VerdictRequiresReview, verdict.Classification)
}

func TestAnalyzeDegradedCapsConfidence(t *testing.T) {
	a := NewAnalyst(BaseOptions{})
	agentCtx := &Context{
		InvestigationID: "inv-1",
		Alert:           models.Alert{ID: "a1", Severity: models.SeverityCritical},
		Evidence: []*models.EvidenceRecord{
			maliciousEvidence("ev-1", "siem-prod"),
			maliciousEvidence("ev-2", "edr-prod"),
			maliciousEvidence("ev-3", "ti-feed"),
		},
		Links: []models.Relationship{
			{FromEvidenceID: "ev-1", ToEvidenceID: "ev-2", Kind: models.RelationshipTemporal, Strength: 0.8},
			{FromEvidenceID: "ev-1", ToEvidenceID: "ev-3", Kind: models.RelationshipEntity, Strength: 0.6},
			{FromEvidenceID: "ev-2", ToEvidenceID: "ev-3", Kind: models.RelationshipBehavioral, Strength: 0.5},
		},
		Limitations: []string{"edr-backup unavailable"},
	}

	verdict, err := a.Analyze(context.Background(), agentCtx)
	require.NoError(t, err)
	assert.LessOrEqual(t, verdict.Confidence, 0.75)
	assert.Less(t, verdict.Confidence, 0.8)
	assert.Contains(t, verdict.Reasoning, "limited data sources (edr-backup unavailable)")
	assert.Equal(t, []string{"edr-backup unavailable"}, verdict.Limitations)
}

func TestAnalyzeNoEvidenceDegraded(t *testing.T) {
	a := NewAnalyst(BaseOptions{})
	agentCtx := &Context{
		InvestigationID: "inv-1",
		Alert:           models.Alert{ID: "a1", Severity: models.SeverityCritical},
		Limitations:     []string{"all sources unavailable"},
	}

	verdict, err := a.Analyze(context.Background(), agentCtx)
	require.NoError(t, err)
	assert.Equal(t, models.VerdictRequiresReview, verdict.Classification)
	assert.Less(t, verdict.Confidence, 0.5)
}

func TestAnalyzeSeverityAloneCannotConvict(t *testing.T) {
	a := NewAnalyst(BaseOptions{})
	agentCtx := &Context{
		InvestigationID: "inv-1",
		Alert:           models.Alert{ID: "a1", Severity: models.SeverityCritical},
	}

	verdict, err := a.Analyze(context.Background(), agentCtx)
	require.NoError(t, err)
	assert.NotEqual(t, models.VerdictTruePositive, verdict.Classification)
}

func TestAnalyzeCorrectedVerdictOverrides(t *testing.T) {
	a := NewAnalyst(BaseOptions{})
	agentCtx := &Context{
		InvestigationID: "inv-1",
		Alert:           models.Alert{ID: "a1", Severity: models.SeverityLow},
		Evidence: []*models.EvidenceRecord{
			benignEvidence("ev-1", "siem-prod"),
		},
		CorrectedVerdict: &models.Verdict{Classification: models.VerdictTruePositive},
	}

	verdict, err := a.Analyze(context.Background(), agentCtx)
	require.NoError(t, err)
	assert.Equal(t, models.VerdictTruePositive, verdict.Classification)
	assert.GreaterOrEqual(t, verdict.Confidence, 0.9)
	assert.Contains(t, verdict.Reasoning, "overridden to true_positive by analyst feedback")
}

func TestAnalyzeDeduplicatesLimitations(t *testing.T) {
	a := NewAnalyst(BaseOptions{})
	agentCtx := &Context{
		InvestigationID: "inv-1",
		Alert:           models.Alert{ID: "a1"},
		Evidence:        []*models.EvidenceRecord{benignEvidence("ev-1", "siem-prod")},
		Limitations:     []string{"siem-b down", "siem-b down", "", "edr-a down"},
	}

	verdict, err := a.Analyze(context.Background(), agentCtx)
	require.NoError(t, err)
	assert.Equal(t, []string{"edr-a down", "siem-b down"}, verdict.Limitations)
}

func TestAnalyzeRequiresInvestigationID(t *testing.T) {
	a := NewAnalyst(BaseOptions{})
	_, err := a.Analyze(context.Background(), &Context{})
	require.Error(t, err)
}
