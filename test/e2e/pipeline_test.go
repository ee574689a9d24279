package e2e

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NeoCh3n/NeonharbourSecurity-sub001/pkg/connector"
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/pkg/events"
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/pkg/models"
)

// TestInvestigationPipeline drives one alert from admission to a complete
// verdict through the HTTP API and checks every externally observable
// surface: status, report, evidence, and the persisted event stream.
func TestInvestigationPipeline(t *testing.T) {
	app := newTestApp(t)
	app.SeedConnector(connector.KindSIEM, "siem-a", 1,
		connector.NewMemory(connector.KindSIEM).Seed(denyRecords(3)...))

	req := models.StartInvestigationRequest{
		Alert:          criticalAlert("alert-p1"),
		CorrelationKey: "pipeline-1",
	}
	id := app.StartInvestigation(req)

	// Same correlation key replays the admission instead of opening a
	// duplicate investigation.
	code, raw := app.do(http.MethodPost, "/api/v1/investigations", req)
	require.Equal(t, http.StatusOK, code)
	replay := decodeInto[models.StartInvestigationResponse](t, raw)
	assert.Equal(t, id, replay.InvestigationID)
	assert.True(t, replay.Existing)

	inv := app.WaitTerminal(id, 30*time.Second)
	require.Equal(t, models.StatusComplete, inv.Status)
	require.NotNil(t, inv.Verdict)
	assert.Equal(t, models.VerdictTruePositive, inv.Verdict.Classification)
	require.NotNil(t, inv.Summary)
	assert.Equal(t, 3, inv.Summary.TotalEvidence)
	assert.Zero(t, inv.Summary.FailedSteps)

	code, raw = app.do(http.MethodGet, "/api/v1/investigations/"+id+"/status", nil)
	require.Equal(t, http.StatusOK, code)
	status := decodeInto[models.StatusResponse](t, raw)
	assert.Equal(t, string(models.StatusComplete), status.Status)
	assert.Equal(t, 100, status.Progress)
	require.NotEmpty(t, status.Steps)
	for _, step := range status.Steps {
		assert.Equal(t, models.StepStatusComplete, step.Status, "step %s", step.StepID)
	}

	code, raw = app.do(http.MethodGet, "/api/v1/investigations/"+id+"/report", nil)
	require.Equal(t, http.StatusOK, code)
	report := decodeInto[models.Report](t, raw)
	assert.Equal(t, report.Summary.TotalSteps, report.Summary.Completed)
	require.NotNil(t, report.Verdict)
	assert.Equal(t, models.VerdictTruePositive, report.Verdict.Classification)

	code, raw = app.do(http.MethodGet, "/api/v1/investigations/"+id+"/evidence", nil)
	require.Equal(t, http.StatusOK, code)
	page := decodeInto[struct {
		Evidence []*models.EvidenceRecord `json:"evidence"`
		Total    int                      `json:"total"`
	}](t, raw)
	require.Equal(t, 3, page.Total)
	for _, rec := range page.Evidence {
		assert.Equal(t, "siem-a", rec.Source)
		assert.Greater(t, rec.QualityScore, 0.0)
	}

	assertEventStream(t, app.RunEvents(id))
}

// assertEventStream checks the persisted stream: gapless sequencing from 1,
// a complete envelope on every event, and the run lifecycle frame.
func assertEventStream(t *testing.T, stream []*events.Envelope) {
	t.Helper()
	require.NotEmpty(t, stream)

	methods := make(map[string]int)
	for i, ev := range stream {
		assert.Equal(t, int64(i+1), ev.Params.Sequence, "sequence gap at index %d", i)
		assert.Empty(t, ev.MissingFields(), "incomplete envelope for %s", ev.Method)
		methods[ev.Method]++
	}
	assert.Equal(t, events.MethodRunStarted, stream[0].Method)
	assert.Equal(t, 1, methods[events.MethodRunStarted])
	assert.Equal(t, 1, methods[events.MethodRunCompleted])
	assert.Equal(t, 1, methods[events.MethodRunMetrics])
	assert.Greater(t, methods[events.ItemMethod("evidence")], 0)
}
