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

// approvalAlert carries an IP indicator so a true-positive verdict on a
// critical alert recommends a perimeter block, which gates on approval.
func approvalAlert(id string) models.Alert {
	alert := criticalAlert(id)
	alert.Entities = map[string][]string{"ip": {"203.0.113.9"}}
	return alert
}

// waitPendingApproval polls the approvals API until the investigation has a
// pending request.
func waitPendingApproval(t *testing.T, app *TestApp, investigationID string) models.ApprovalRequest {
	t.Helper()
	var pending models.ApprovalRequest
	require.Eventually(t, func() bool {
		code, raw := app.do(http.MethodGet, "/api/v1/approvals?investigation_id="+investigationID, nil)
		if code != http.StatusOK {
			return false
		}
		page := decodeInto[struct {
			Approvals []models.ApprovalRequest `json:"approvals"`
		}](t, raw)
		if len(page.Approvals) == 0 {
			return false
		}
		pending = page.Approvals[0]
		return true
	}, 15*time.Second, 50*time.Millisecond, "no approval request appeared for %s", investigationID)
	return pending
}

func TestApprovalGrantedCompletesInvestigation(t *testing.T) {
	app := newTestApp(t)
	app.SeedConnector(connector.KindSIEM, "siem-a", 1,
		connector.NewMemory(connector.KindSIEM).Seed(denyRecords(2)...))

	id := app.StartInvestigation(models.StartInvestigationRequest{
		Alert:          approvalAlert("alert-appr-1"),
		CorrelationKey: "approval-grant",
	})

	app.WaitStatus(id, models.StatusAwaitingApproval, 15*time.Second)
	pending := waitPendingApproval(t, app, id)
	assert.Contains(t, pending.Title, "203.0.113.9")
	assert.Equal(t, models.RiskHigh, pending.Risk)

	code, raw := app.do(http.MethodPost, "/api/v1/approvals/"+pending.ID+"/resolve",
		map[string]any{"approve": true})
	require.Equal(t, http.StatusOK, code, "body: %s", raw)
	resolved := decodeInto[models.ApprovalRequest](t, raw)
	assert.Equal(t, models.ApprovalApproved, resolved.Status)
	assert.Equal(t, "analyst-1", resolved.RespondedBy)

	inv := app.WaitTerminal(id, 15*time.Second)
	assert.Equal(t, models.StatusComplete, inv.Status)

	var sawRequested, sawApproved bool
	for _, ev := range app.RunEvents(id) {
		switch ev.Method {
		case events.MethodApprovalRequested:
			sawRequested = true
		case events.MethodApprovalApproved:
			sawApproved = true
		}
	}
	assert.True(t, sawRequested, "stream missing approval/requested")
	assert.True(t, sawApproved, "stream missing approval/approved")
}

func TestApprovalRejectedRoutesToReview(t *testing.T) {
	app := newTestApp(t)
	app.SeedConnector(connector.KindSIEM, "siem-a", 1,
		connector.NewMemory(connector.KindSIEM).Seed(denyRecords(2)...))

	id := app.StartInvestigation(models.StartInvestigationRequest{
		Alert:          approvalAlert("alert-appr-2"),
		CorrelationKey: "approval-reject",
	})

	app.WaitStatus(id, models.StatusAwaitingApproval, 15*time.Second)
	pending := waitPendingApproval(t, app, id)

	code, raw := app.do(http.MethodPost, "/api/v1/approvals/"+pending.ID+"/resolve",
		map[string]any{"approve": false})
	require.Equal(t, http.StatusOK, code, "body: %s", raw)

	inv := app.WaitTerminal(id, 15*time.Second)
	// The verdict stands, but the denied action means a human finishes the
	// response.
	assert.Equal(t, models.StatusRequiresReview, inv.Status)
	require.NotNil(t, inv.Verdict)
	assert.Equal(t, models.VerdictTruePositive, inv.Verdict.Classification)
}
