package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NeoCh3n/NeonharbourSecurity-sub001/pkg/models"
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/pkg/services"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	m.Run()
}

type fakeInvestigations struct {
	byID     map[string]*models.Investigation
	existing bool
	started  []models.StartInvestigationRequest
	deleted  []string
}

func newFakeInvestigations() *fakeInvestigations {
	return &fakeInvestigations{byID: make(map[string]*models.Investigation)}
}

func (f *fakeInvestigations) Start(_ context.Context, tenantID string, req models.StartInvestigationRequest) (*models.Investigation, bool, error) {
	f.started = append(f.started, req)
	if f.existing {
		for _, inv := range f.byID {
			return inv, true, nil
		}
	}
	inv := &models.Investigation{
		ID:       "inv-new",
		TenantID: tenantID,
		Alert:    req.Alert,
		Status:   models.StatusQueued,
	}
	f.byID[inv.ID] = inv
	return inv, false, nil
}

func (f *fakeInvestigations) Get(_ context.Context, tenantID, id string) (*models.Investigation, error) {
	inv, ok := f.byID[id]
	if !ok || inv.TenantID != tenantID {
		return nil, services.ErrNotFound
	}
	return inv, nil
}

func (f *fakeInvestigations) List(_ context.Context, tenantID string, filters models.InvestigationFilters) ([]*models.Investigation, error) {
	var out []*models.Investigation
	for _, inv := range f.byID {
		if inv.TenantID == tenantID {
			out = append(out, inv)
		}
	}
	if filters.Limit > 0 && len(out) > filters.Limit {
		out = out[:filters.Limit]
	}
	return out, nil
}

func (f *fakeInvestigations) Stats(_ context.Context, _, timeframe string, _ time.Duration) (*models.Stats, error) {
	return &models.Stats{Timeframe: timeframe, Total: len(f.byID)}, nil
}

func (f *fakeInvestigations) QueuedCount(context.Context) (int, error) { return 0, nil }

func (f *fakeInvestigations) SoftDelete(_ context.Context, tenantID, id string) error {
	inv, ok := f.byID[id]
	if !ok || inv.TenantID != tenantID {
		return services.ErrNotFound
	}
	if !inv.Status.Terminal() {
		return services.ErrNotTerminal
	}
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeSteps struct {
	progress int
	steps    []models.StepProgress
}

func (f *fakeSteps) Progress(context.Context, string, string) (int, []models.StepProgress, error) {
	return f.progress, f.steps, nil
}

type fakeFeedback struct {
	created []models.PostFeedbackRequest
	entries []*models.FeedbackEntry
}

func (f *fakeFeedback) Create(_ context.Context, _, _ string, req models.PostFeedbackRequest) (*models.FeedbackEntry, error) {
	f.created = append(f.created, req)
	return &models.FeedbackEntry{FeedbackID: "fb-1", Type: req.Type, UserID: req.UserID, Content: req.Content}, nil
}

func (f *fakeFeedback) ListByInvestigation(context.Context, string, string) ([]*models.FeedbackEntry, error) {
	return f.entries, nil
}

type fakeEvidence struct {
	records []*models.EvidenceRecord
	links   []models.Relationship
}

func (f *fakeEvidence) ListByInvestigation(context.Context, string, string) ([]*models.EvidenceRecord, error) {
	return f.records, nil
}

func (f *fakeEvidence) ListRelationships(context.Context, string, string) ([]models.Relationship, error) {
	return f.links, nil
}

type fakeApprovals struct {
	pending  []*models.ApprovalRequest
	resolved map[string]bool
}

func (f *fakeApprovals) ListPending(context.Context, string, string) ([]*models.ApprovalRequest, error) {
	return f.pending, nil
}

func (f *fakeApprovals) Resolve(_ context.Context, _, requestID string, approve bool, respondedBy string) (*models.ApprovalRequest, error) {
	if f.resolved == nil {
		f.resolved = make(map[string]bool)
	}
	f.resolved[requestID] = approve
	status := models.ApprovalRejected
	if approve {
		status = models.ApprovalApproved
	}
	return &models.ApprovalRequest{ID: requestID, Status: status, RespondedBy: respondedBy}, nil
}

type fakeRuntime struct {
	known map[string]bool
}

func (f *fakeRuntime) Pause(id string) bool  { return f.known[id] }
func (f *fakeRuntime) Resume(id string) bool { return f.known[id] }
func (f *fakeRuntime) Cancel(id string) bool { return f.known[id] }
func (f *fakeRuntime) ExtendTimeout(id string, delta time.Duration) (time.Time, bool) {
	if !f.known[id] {
		return time.Time{}, false
	}
	return time.Now().Add(delta), true
}

type apiFixture struct {
	investigations *fakeInvestigations
	steps          *fakeSteps
	feedback       *fakeFeedback
	evidence       *fakeEvidence
	approvals      *fakeApprovals
	runtime        *fakeRuntime
	router         *gin.Engine
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()
	f := &apiFixture{
		investigations: newFakeInvestigations(),
		steps:          &fakeSteps{},
		feedback:       &fakeFeedback{},
		evidence:       &fakeEvidence{},
		approvals:      &fakeApprovals{},
		runtime:        &fakeRuntime{known: make(map[string]bool)},
	}
	server := NewServer(Options{
		Investigations: f.investigations,
		Steps:          f.steps,
		Feedback:       f.feedback,
		Evidence:       f.evidence,
		Approvals:      f.approvals,
		Runtime:        f.runtime,
	})
	f.router = server.Router()
	return f
}

func (f *apiFixture) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(HeaderTenantID, "acme")
	req.Header.Set(HeaderUserID, "analyst-1")
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func (f *apiFixture) addInvestigation(inv *models.Investigation) {
	if inv.TenantID == "" {
		inv.TenantID = "acme"
	}
	f.investigations.byID[inv.ID] = inv
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestMissingTenantHeaderRejected(t *testing.T) {
	f := newAPIFixture(t)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/investigations", nil)
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStartInvestigationAccepted(t *testing.T) {
	f := newAPIFixture(t)
	rec := f.do(t, http.MethodPost, "/api/v1/investigations", models.StartInvestigationRequest{
		Alert: models.Alert{ID: "alert-1", Severity: "high", Title: "Suspicious login"},
	})
	require.Equal(t, http.StatusAccepted, rec.Code)

	resp := decode[models.StartInvestigationResponse](t, rec)
	assert.Equal(t, "inv-new", resp.InvestigationID)
	assert.False(t, resp.Existing)
	require.Len(t, f.investigations.started, 1)
	assert.Equal(t, "analyst-1", f.investigations.started[0].UserID)
}

func TestStartInvestigationIdempotentReplay(t *testing.T) {
	f := newAPIFixture(t)
	f.addInvestigation(&models.Investigation{ID: "inv-1", Status: models.StatusExecuting})
	f.investigations.existing = true

	rec := f.do(t, http.MethodPost, "/api/v1/investigations", models.StartInvestigationRequest{
		Alert: models.Alert{ID: "alert-1"},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[models.StartInvestigationResponse](t, rec)
	assert.True(t, resp.Existing)
	assert.Equal(t, "inv-1", resp.InvestigationID)
}

func TestStatusIncludesProgressAndAgent(t *testing.T) {
	f := newAPIFixture(t)
	started := time.Now().Add(-time.Minute)
	f.addInvestigation(&models.Investigation{
		ID:        "inv-1",
		Status:    models.StatusAnalyzing,
		StartedAt: &started,
		TimeoutMs: int64((10 * time.Minute).Milliseconds()),
	})
	f.steps.progress = 60
	f.steps.steps = []models.StepProgress{{StepID: "s1", Status: models.StepStatusComplete}}

	rec := f.do(t, http.MethodGet, "/api/v1/investigations/inv-1/status", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[models.StatusResponse](t, rec)
	assert.Equal(t, 60, resp.Progress)
	assert.Equal(t, "analyst", resp.CurrentAgent)
	require.NotNil(t, resp.EstimatedCompletion)
	assert.WithinDuration(t, started.Add(10*time.Minute), *resp.EstimatedCompletion, time.Second)
}

func TestStatusTerminalIsFullProgress(t *testing.T) {
	f := newAPIFixture(t)
	f.addInvestigation(&models.Investigation{ID: "inv-1", Status: models.StatusComplete})
	f.steps.progress = 80

	rec := f.do(t, http.MethodGet, "/api/v1/investigations/inv-1/status", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[models.StatusResponse](t, rec)
	assert.Equal(t, 100, resp.Progress)
	assert.Empty(t, resp.CurrentAgent)
	assert.Nil(t, resp.EstimatedCompletion)
}

func TestReportRequiresTerminalState(t *testing.T) {
	f := newAPIFixture(t)
	f.addInvestigation(&models.Investigation{ID: "inv-1", Status: models.StatusExecuting})

	rec := f.do(t, http.MethodGet, "/api/v1/investigations/inv-1/report", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestReportComposesSummaryAndFeedback(t *testing.T) {
	f := newAPIFixture(t)
	started := time.Now().Add(-5 * time.Minute)
	completed := started.Add(4 * time.Minute)
	f.addInvestigation(&models.Investigation{
		ID:          "inv-1",
		Status:      models.StatusComplete,
		StartedAt:   &started,
		CompletedAt: &completed,
		Verdict:     &models.Verdict{Classification: models.VerdictFalsePositive, Confidence: 0.9},
	})
	f.steps.steps = []models.StepProgress{
		{StepID: "s1", Status: models.StepStatusComplete, Retries: 1},
		{StepID: "s2", Status: models.StepStatusComplete},
		{StepID: "s3", Status: models.StepStatusFailed, Retries: 2},
	}
	f.feedback.entries = []*models.FeedbackEntry{{FeedbackID: "fb-1", Type: models.FeedbackNote}}

	rec := f.do(t, http.MethodGet, "/api/v1/investigations/inv-1/report", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	report := decode[models.Report](t, rec)
	assert.Equal(t, 3, report.Summary.TotalSteps)
	assert.Equal(t, 2, report.Summary.Completed)
	assert.Equal(t, 1, report.Summary.Failed)
	assert.Equal(t, 3, report.Summary.TotalRetries)
	assert.Equal(t, (4 * time.Minute).Milliseconds(), report.DurationMs)
	require.Len(t, report.Feedback, 1)
	require.NotNil(t, report.Verdict)
}

func TestListRejectsUnknownStatusFilter(t *testing.T) {
	f := newAPIFixture(t)
	rec := f.do(t, http.MethodGet, "/api/v1/investigations?status=bogus", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListCapsLimit(t *testing.T) {
	f := newAPIFixture(t)
	rec := f.do(t, http.MethodGet, "/api/v1/investigations?limit=5000", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[map[string]any](t, rec)
	assert.EqualValues(t, maxListLimit, body["limit"])
}

func TestStatsRejectsUnknownTimeframe(t *testing.T) {
	f := newAPIFixture(t)
	rec := f.do(t, http.MethodGet, "/api/v1/investigations/stats?timeframe=1y", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFeedbackRejectsUnknownType(t *testing.T) {
	f := newAPIFixture(t)
	f.addInvestigation(&models.Investigation{ID: "inv-1", Status: models.StatusExecuting})

	rec := f.do(t, http.MethodPost, "/api/v1/investigations/inv-1/feedback", models.PostFeedbackRequest{
		Type: "shrug",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, f.feedback.created)
}

func TestFeedbackDefaultsUserFromHeader(t *testing.T) {
	f := newAPIFixture(t)
	f.addInvestigation(&models.Investigation{ID: "inv-1", Status: models.StatusExecuting})

	rec := f.do(t, http.MethodPost, "/api/v1/investigations/inv-1/feedback", models.PostFeedbackRequest{
		Type:    models.FeedbackNote,
		Content: map[string]any{"text": "looks fine"},
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, f.feedback.created, 1)
	assert.Equal(t, "analyst-1", f.feedback.created[0].UserID)
}

func TestPauseRequiresRunOnThisReplica(t *testing.T) {
	f := newAPIFixture(t)
	f.addInvestigation(&models.Investigation{ID: "inv-1", Status: models.StatusExecuting})

	rec := f.do(t, http.MethodPost, "/api/v1/investigations/inv-1/pause", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)

	f.runtime.known["inv-1"] = true
	rec = f.do(t, http.MethodPost, "/api/v1/investigations/inv-1/pause", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestExtendTimeoutValidatesRange(t *testing.T) {
	f := newAPIFixture(t)
	f.addInvestigation(&models.Investigation{ID: "inv-1", Status: models.StatusExecuting})
	f.runtime.known["inv-1"] = true

	rec := f.do(t, http.MethodPost, "/api/v1/investigations/inv-1/extend", gin.H{"extend_ms": 0})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.do(t, http.MethodPost, "/api/v1/investigations/inv-1/extend", gin.H{"extend_ms": 60000})
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[map[string]any](t, rec)
	assert.NotEmpty(t, body["deadline"])
}

func TestDeleteRequiresTerminalState(t *testing.T) {
	f := newAPIFixture(t)
	f.addInvestigation(&models.Investigation{ID: "inv-1", Status: models.StatusExecuting})

	rec := f.do(t, http.MethodDelete, "/api/v1/investigations/inv-1", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)

	f.investigations.byID["inv-1"].Status = models.StatusComplete
	rec = f.do(t, http.MethodDelete, "/api/v1/investigations/inv-1", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, []string{"inv-1"}, f.investigations.deleted)
}

func TestEvidenceSearchFiltersAndPaginates(t *testing.T) {
	f := newAPIFixture(t)
	f.addInvestigation(&models.Investigation{ID: "inv-1", Status: models.StatusComplete})
	now := time.Now().UTC()
	f.evidence.records = []*models.EvidenceRecord{
		{ID: "ev-1", Type: models.EvidenceTypeLog, Source: "siem", Timestamp: now, Confidence: 0.9},
		{ID: "ev-2", Type: models.EvidenceTypeNetwork, Source: "edr", Timestamp: now, Confidence: 0.4},
		{ID: "ev-3", Type: models.EvidenceTypeLog, Source: "siem", Timestamp: now, Confidence: 0.8},
	}

	rec := f.do(t, http.MethodGet, "/api/v1/investigations/inv-1/evidence?q=type:log&limit=1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[map[string]any](t, rec)
	assert.EqualValues(t, 2, body["total"])
	assert.Len(t, body["evidence"], 1)
	assert.NotNil(t, body["facets"])
}

func TestEvidenceSearchRejectsBadQuery(t *testing.T) {
	f := newAPIFixture(t)
	f.addInvestigation(&models.Investigation{ID: "inv-1", Status: models.StatusComplete})

	rec := f.do(t, http.MethodGet, "/api/v1/investigations/inv-1/evidence?q=confidence:%3Enope", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestNetworkBuildsFromEvidenceAndLinks(t *testing.T) {
	f := newAPIFixture(t)
	f.addInvestigation(&models.Investigation{ID: "inv-1", Status: models.StatusComplete})
	now := time.Now().UTC()
	f.evidence.records = []*models.EvidenceRecord{
		{ID: "ev-1", Type: models.EvidenceTypeLog, Source: "siem", Timestamp: now,
			Entities: map[string][]string{"hostname": {"ws-1"}}},
		{ID: "ev-2", Type: models.EvidenceTypeLog, Source: "siem", Timestamp: now,
			Entities: map[string][]string{"ip": {"10.0.0.4"}}},
	}
	f.evidence.links = []models.Relationship{
		{FromEvidenceID: "ev-1", ToEvidenceID: "ev-2", Kind: models.RelationshipTemporal, Strength: 0.8},
	}

	rec := f.do(t, http.MethodGet, "/api/v1/investigations/inv-1/network", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[map[string]any](t, rec)
	assert.Len(t, body["nodes"], 2)
	assert.Len(t, body["edges"], 1)
}

func TestResolveApproval(t *testing.T) {
	f := newAPIFixture(t)
	rec := f.do(t, http.MethodPost, "/api/v1/approvals/appr-1/resolve", gin.H{"approve": true})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, f.approvals.resolved["appr-1"])

	resolved := decode[models.ApprovalRequest](t, rec)
	assert.Equal(t, models.ApprovalApproved, resolved.Status)
	assert.Equal(t, "analyst-1", resolved.RespondedBy)
}

func TestHealthWithoutOptionalDeps(t *testing.T) {
	f := newAPIFixture(t)
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[map[string]any](t, rec)
	assert.Equal(t, "healthy", body["status"])
}
