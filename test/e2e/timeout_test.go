package e2e

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NeoCh3n/NeonharbourSecurity-sub001/pkg/connector"
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/pkg/events"
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/pkg/models"
)

// TestInvestigationTimeout gives the run a 400ms budget against a backend
// that takes two seconds per call. The hard deadline must surface as the
// timed_out terminal status, not a generic failure.
func TestInvestigationTimeout(t *testing.T) {
	app := newTestApp(t)

	slow := connector.NewMemory(connector.KindSIEM).Seed(denyRecords(2)...)
	slow.SetDelay(2 * time.Second)
	app.SeedConnector(connector.KindSIEM, "siem-slow", 1, slow)

	id := app.StartInvestigation(models.StartInvestigationRequest{
		Alert:          criticalAlert("alert-to-1"),
		CorrelationKey: "timeout-1",
		TimeoutMs:      400,
	})

	inv := app.WaitTerminal(id, 30*time.Second)
	require.Equal(t, models.StatusTimedOut, inv.Status)
	assert.NotEmpty(t, inv.ErrorMessage)

	var sawTimeout, sawFailed bool
	for _, ev := range app.RunEvents(id) {
		switch ev.Method {
		case events.MethodInvestigationTimeout:
			sawTimeout = true
		case events.MethodRunFailed:
			sawFailed = true
		}
	}
	assert.True(t, sawTimeout, "stream missing investigation_timeout")
	assert.True(t, sawFailed, "stream missing run/failed")
}
