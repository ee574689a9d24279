package e2e

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NeoCh3n/NeonharbourSecurity-sub001/pkg/connector"
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/pkg/events"
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/pkg/models"
)

// TestConnectorFailover runs an investigation while the preferred SIEM
// instance returns server errors. The registry hands the query to the
// backup inside the same call, so the plan completes without limitations.
func TestConnectorFailover(t *testing.T) {
	app := newTestApp(t)

	primary := connector.NewMemory(connector.KindSIEM)
	primary.FailQueries(connector.NewError(connector.ErrKindServer, "siem-primary",
		errors.New("upstream returned 503")))
	app.SeedConnector(connector.KindSIEM, "siem-primary", 1, primary)

	backup := connector.NewMemory(connector.KindSIEM).Seed(denyRecords(2)...)
	app.SeedConnector(connector.KindSIEM, "siem-backup", 2, backup)

	id := app.StartInvestigation(models.StartInvestigationRequest{
		Alert:          criticalAlert("alert-fo-1"),
		CorrelationKey: "failover-1",
	})

	inv := app.WaitTerminal(id, 30*time.Second)
	require.Equal(t, models.StatusComplete, inv.Status)
	require.NotNil(t, inv.Summary)
	assert.Zero(t, inv.Summary.FailedSteps)
	assert.Empty(t, inv.Summary.Limitations)

	assert.GreaterOrEqual(t, primary.Queries(), 1, "primary was never attempted")

	var sawFailover bool
	for _, ev := range app.RunEvents(id) {
		if ev.Method == events.MethodConnectorFailover {
			sawFailover = true
			assert.Equal(t, "siem-primary", ev.Params.Extra["from"])
			assert.Equal(t, "siem-backup", ev.Params.Extra["to"])
		}
	}
	assert.True(t, sawFailover, "stream missing connector_failover")

	records, err := app.Evidence.ListByInvestigation(t.Context(), app.Tenant, id)
	require.NoError(t, err)
	require.NotEmpty(t, records)
	for _, rec := range records {
		assert.Equal(t, "siem-backup", rec.Source)
	}
}

// TestAllSourcesDownRoutesToReview exhausts the only SIEM instance. The
// engine records the lost source as a limitation and the analyst refuses
// to classify on no evidence.
func TestAllSourcesDownRoutesToReview(t *testing.T) {
	app := newTestApp(t)

	down := connector.NewMemory(connector.KindSIEM)
	down.FailQueries(connector.NewError(connector.ErrKindServer, "siem-down",
		errors.New("connection refused")))
	app.SeedConnector(connector.KindSIEM, "siem-down", 1, down)

	id := app.StartInvestigation(models.StartInvestigationRequest{
		Alert:          criticalAlert("alert-down-1"),
		CorrelationKey: "sources-down-1",
	})

	inv := app.WaitTerminal(id, 30*time.Second)
	require.Equal(t, models.StatusRequiresReview, inv.Status)
	require.NotNil(t, inv.Verdict)
	assert.Equal(t, models.VerdictRequiresReview, inv.Verdict.Classification)
	assert.LessOrEqual(t, inv.Verdict.Confidence, 0.4)
	assert.NotEmpty(t, inv.Verdict.Limitations)

	require.NotNil(t, inv.Summary)
	assert.Equal(t, 1, inv.Summary.FailedSteps)
	assert.Zero(t, inv.Summary.TotalEvidence)

	var sawRetry, sawFailure bool
	for _, ev := range app.RunEvents(id) {
		switch ev.Method {
		case events.MethodConnectorRetry:
			sawRetry = true
		case events.MethodDataSourceFailure:
			sawFailure = true
		}
	}
	assert.True(t, sawRetry, "stream missing connector_retry")
	assert.True(t, sawFailure, "stream missing data_source_failure")
}
