package agent

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NeoCh3n/NeonharbourSecurity-sub001/pkg/models"
)

func findRecommendation(recs []models.Recommendation, action string) *models.Recommendation {
	for i := range recs {
		for _, a := range recs[i].Actions {
			if a == action {
				return &recs[i]
			}
		}
	}
	return nil
}

func TestRespondTruePositiveContainment(t *testing.T) {
	r := NewResponder(BaseOptions{})
	agentCtx := &Context{
		InvestigationID: "inv-1",
		Alert: models.Alert{
			ID:       "a1",
			Severity: models.SeverityCritical,
			Entities: map[string][]string{
				"hostname": {"workstation-042"},
				"ip":       {"203.0.113.7"},
				"user":     {"jdoe"},
			},
		},
		Verdict: &models.Verdict{Classification: models.VerdictTruePositive, Confidence: 0.9},
	}

	resp, err := r.Respond(context.Background(), agentCtx)
	require.NoError(t, err)

	isolate := findRecommendation(resp.Recommendations, "isolate_host")
	require.NotNil(t, isolate)
	assert.True(t, isolate.RequiresApproval, "host isolation must be gated on approval")
	assert.Equal(t, "high", isolate.Priority)
	assert.Contains(t, isolate.Title, "workstation-042")

	block := findRecommendation(resp.Recommendations, "block_ip")
	require.NotNil(t, block)
	assert.True(t, block.RequiresApproval)

	reset := findRecommendation(resp.Recommendations, "reset_credentials")
	require.NotNil(t, reset)
	assert.Contains(t, reset.Title, "jdoe")
}

func TestRespondTruePositiveMediumSeverity(t *testing.T) {
	r := NewResponder(BaseOptions{})
	agentCtx := &Context{
		InvestigationID: "inv-1",
		Alert: models.Alert{
			ID:       "a1",
			Severity: models.SeverityMedium,
			Entities: map[string][]string{"ip": {"198.51.100.9"}},
		},
		Verdict: &models.Verdict{Classification: models.VerdictTruePositive, Confidence: 0.8},
	}

	resp, err := r.Respond(context.Background(), agentCtx)
	require.NoError(t, err)

	block := findRecommendation(resp.Recommendations, "block_ip")
	require.NotNil(t, block)
	assert.Equal(t, "medium", block.Priority)
	assert.False(t, block.RequiresApproval)
}

func TestRespondTruePositiveNoEntities(t *testing.T) {
	r := NewResponder(BaseOptions{})
	agentCtx := &Context{
		InvestigationID: "inv-1",
		Alert:           models.Alert{ID: "a1", Severity: models.SeverityHigh},
		Verdict:         &models.Verdict{Classification: models.VerdictTruePositive, Confidence: 0.85},
	}

	resp, err := r.Respond(context.Background(), agentCtx)
	require.NoError(t, err)
	require.Len(t, resp.Recommendations, 1)
	assert.Equal(t, []string{"open_incident"}, resp.Recommendations[0].Actions)
}

func TestRespondFalsePositive(t *testing.T) {
	r := NewResponder(BaseOptions{})
	agentCtx := &Context{
		InvestigationID: "inv-1",
		Alert:           models.Alert{ID: "a1", Severity: models.SeverityLow},
		Verdict:         &models.Verdict{Classification: models.VerdictFalsePositive, Confidence: 0.8},
	}

	resp, err := r.Respond(context.Background(), agentCtx)
	require.NoError(t, err)
	assert.NotNil(t, findRecommendation(resp.Recommendations, "close_alert"))
	tune := findRecommendation(resp.Recommendations, "tune_rule")
	require.NotNil(t, tune)
	assert.Equal(t, "low", tune.Priority)
	assert.Nil(t, findRecommendation(resp.Recommendations, "escalate"))
}

func TestRespondRequiresReviewEscalates(t *testing.T) {
	r := NewResponder(BaseOptions{})
	agentCtx := &Context{
		InvestigationID: "inv-1",
		Alert:           models.Alert{ID: "a1", Severity: models.SeverityMedium},
		Verdict:         &models.Verdict{Classification: models.VerdictRequiresReview, Confidence: 0.5},
	}

	resp, err := r.Respond(context.Background(), agentCtx)
	require.NoError(t, err)
	esc := findRecommendation(resp.Recommendations, "escalate")
	require.NotNil(t, esc)
	assert.Equal(t, "high", esc.Priority)
	assert.Equal(t, "Escalate to senior analyst", esc.Title)
}

func TestRespondDegradedAlwaysEscalates(t *testing.T) {
	r := NewResponder(BaseOptions{})
	agentCtx := &Context{
		InvestigationID: "inv-1",
		Alert: models.Alert{
			ID:       "a1",
			Severity: models.SeverityHigh,
			Entities: map[string][]string{"ip": {"203.0.113.7"}},
		},
		Verdict: &models.Verdict{
			Classification: models.VerdictTruePositive,
			Confidence:     0.4,
			Limitations:    []string{"edr unavailable"},
		},
	}

	resp, err := r.Respond(context.Background(), agentCtx)
	require.NoError(t, err)
	assert.NotNil(t, findRecommendation(resp.Recommendations, "block_ip"))
	esc := findRecommendation(resp.Recommendations, "escalate")
	require.NotNil(t, esc)
	assert.Equal(t, "high", esc.Priority)
	assert.Contains(t, esc.Description, "edr unavailable")
}

func TestRespondCorrectedVerdictWins(t *testing.T) {
	r := NewResponder(BaseOptions{})
	agentCtx := &Context{
		InvestigationID:  "inv-1",
		Alert:            models.Alert{ID: "a1", Severity: models.SeverityLow},
		Verdict:          &models.Verdict{Classification: models.VerdictTruePositive, Confidence: 0.9},
		CorrectedVerdict: &models.Verdict{Classification: models.VerdictFalsePositive},
	}

	resp, err := r.Respond(context.Background(), agentCtx)
	require.NoError(t, err)
	assert.NotNil(t, findRecommendation(resp.Recommendations, "close_alert"))
	assert.Nil(t, findRecommendation(resp.Recommendations, "isolate_host"))
}

func TestRespondEvidenceEntitiesConsidered(t *testing.T) {
	r := NewResponder(BaseOptions{})
	agentCtx := &Context{
		InvestigationID: "inv-1",
		Alert:           models.Alert{ID: "a1", Severity: models.SeverityHigh},
		Evidence: []*models.EvidenceRecord{
			{ID: "ev-1", Entities: map[string][]string{"hostname": {"srv-db-01"}}},
		},
		Verdict: &models.Verdict{Classification: models.VerdictTruePositive, Confidence: 0.9},
	}

	resp, err := r.Respond(context.Background(), agentCtx)
	require.NoError(t, err)
	isolate := findRecommendation(resp.Recommendations, "isolate_host")
	require.NotNil(t, isolate)
	assert.Contains(t, isolate.Title, "srv-db-01")
}

func TestRespondRequiresVerdict(t *testing.T) {
	r := NewResponder(BaseOptions{})
	_, err := r.Respond(context.Background(), &Context{InvestigationID: "inv-1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "verdict is required")
}
