package learning

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/NeoCh3n/NeonharbourSecurity-sub001/pkg/models"
)

func TestLogHookRecordsOutcome(t *testing.T) {
	var buf bytes.Buffer
	hook := NewLogHook(slog.New(slog.NewTextHandler(&buf, nil)))

	hook.InvestigationCompleted(context.Background(), Signal{
		Investigation: &models.Investigation{
			ID:       "inv-1",
			TenantID: "acme",
			Status:   models.StatusComplete,
			Verdict:  &models.Verdict{Classification: models.VerdictTruePositive, Confidence: 0.9},
		},
		Feedback: []*models.FeedbackEntry{
			{FeedbackID: "fb-1", Type: models.FeedbackVerdictCorrection},
			{FeedbackID: "fb-2", Type: models.FeedbackNote},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "inv-1")
	assert.Contains(t, out, "verdict_corrections=1")
	assert.Contains(t, out, "feedback_count=2")
	assert.Contains(t, out, models.VerdictTruePositive)
}

func TestLogHookIgnoresNilInvestigation(t *testing.T) {
	var buf bytes.Buffer
	hook := NewLogHook(slog.New(slog.NewTextHandler(&buf, nil)))

	hook.InvestigationCompleted(context.Background(), Signal{})
	assert.Empty(t, buf.String())
}
