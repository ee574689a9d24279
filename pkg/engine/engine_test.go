package engine

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NeoCh3n/NeonharbourSecurity-sub001/pkg/clock"
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/pkg/connector"
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/pkg/events"
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/pkg/models"
)

var testNow = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

type queryFunc func(kind connector.Kind, req connector.QueryRequest) (*connector.QueryResult, error)

type fakeSources struct {
	mu      sync.Mutex
	query   queryFunc
	enrich  func(kind connector.Kind, entityKind, entity string) (*connector.Enrichment, error)
	calls   map[string]int
	cur     atomic.Int32
	maxSeen atomic.Int32
}

func newFakeSources(q queryFunc) *fakeSources {
	return &fakeSources{query: q, calls: make(map[string]int)}
}

func (f *fakeSources) Query(_ context.Context, _ string, kind connector.Kind, req connector.QueryRequest) (*connector.QueryResult, error) {
	cur := f.cur.Add(1)
	for {
		max := f.maxSeen.Load()
		if cur <= max || f.maxSeen.CompareAndSwap(max, cur) {
			break
		}
	}
	defer f.cur.Add(-1)

	f.mu.Lock()
	f.calls[string(kind)]++
	f.mu.Unlock()
	time.Sleep(2 * time.Millisecond)
	return f.query(kind, req)
}

func (f *fakeSources) Enrich(_ context.Context, _ string, kind connector.Kind, entityKind, entity string) (*connector.Enrichment, error) {
	if f.enrich == nil {
		return nil, connector.NewError(connector.ErrKindNotFound, string(kind), errors.New("no data"))
	}
	return f.enrich(kind, entityKind, entity)
}

func (f *fakeSources) callCount(kind string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[kind]
}

type eventRecorder struct {
	mu        sync.Mutex
	envelopes []*events.Envelope
}

func (r *eventRecorder) Publish(_ context.Context, _ string, ev *events.Envelope) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.envelopes = append(r.envelopes, ev)
	return int64(len(r.envelopes)), nil
}

func (r *eventRecorder) methods() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.envelopes))
	for i, ev := range r.envelopes {
		out[i] = ev.Method
	}
	return out
}

func (r *eventRecorder) count(method string) int {
	n := 0
	for _, m := range r.methods() {
		if m == method {
			n++
		}
	}
	return n
}

func okResult(kind connector.Kind) *connector.QueryResult {
	return &connector.QueryResult{
		Records: []connector.Record{
			{
				Timestamp: testNow.Add(-10 * time.Minute),
				Source:    string(kind),
				Fields:    map[string]any{"src_ip": "192.168.1.50", "message": "allowed"},
			},
		},
		Complete:   true,
		QueriedAt:  testNow,
		Connector:  string(kind) + "-primary",
		DataSource: string(kind),
	}
}

func queryStep(id, source string, deps ...string) *models.Step {
	return &models.Step{
		ID:          id,
		Name:        "Query " + source,
		Type:        models.StepTypeQuery,
		Payload:     map[string]any{"query": "src_ip:192.168.1.50", "dataType": "network"},
		DataSources: []string{source},
		TimeoutMs:   5000,
		MaxRetries:  2,
		Dependencies: func() []string {
			if len(deps) == 0 {
				return nil
			}
			return deps
		}(),
		Status: models.StepStatusPending,
	}
}

func standardPlan() *models.Plan {
	correlate := &models.Step{
		ID:           "correlate-evidence",
		Name:         "Correlate",
		Type:         models.StepTypeCorrelate,
		Dependencies: []string{"query-siem", "query-edr"},
		Critical:     true,
		TimeoutMs:    5000,
		MaxRetries:   2,
		Status:       models.StepStatusPending,
	}
	validate := &models.Step{
		ID:           "validate-evidence",
		Name:         "Validate",
		Type:         models.StepTypeValidate,
		Dependencies: []string{"correlate-evidence"},
		Payload:      map[string]any{"evidenceCount": 1, "confidenceThreshold": 0.3},
		TimeoutMs:    5000,
		MaxRetries:   2,
		Status:       models.StepStatusPending,
	}
	return &models.Plan{
		ID:              "plan-inv-1",
		InvestigationID: "inv-1",
		Steps: []*models.Step{
			queryStep("query-siem", "siem"),
			queryStep("query-edr", "edr"),
			correlate,
			validate,
		},
	}
}

func testInput(plan *models.Plan) Input {
	return Input{
		TenantID:        "tenant-1",
		InvestigationID: "inv-1",
		Alert: models.Alert{
			ID: "alert-1", TenantID: "tenant-1",
			Severity: models.SeverityHigh, Timestamp: testNow.Add(-30 * time.Minute),
		},
		Plan:             plan,
		AvailableSources: []string{"siem", "edr"},
	}
}

func newTestEngine(src Sources, rec *eventRecorder, maxParallel int) *Engine {
	opts := Options{
		Sources:          src,
		Clock:            clock.NewFake(testNow),
		MaxParallelSteps: maxParallel,
		Sleep:            func(context.Context, time.Duration) error { return nil },
	}
	if rec != nil {
		opts.Events = rec
	}
	return New(opts)
}

func TestExecutePlanHappyPath(t *testing.T) {
	src := newFakeSources(func(kind connector.Kind, _ connector.QueryRequest) (*connector.QueryResult, error) {
		return okResult(kind), nil
	})
	rec := &eventRecorder{}
	e := newTestEngine(src, rec, 3)

	res, err := e.ExecutePlan(context.Background(), testInput(standardPlan()))
	require.NoError(t, err)

	assert.Equal(t, 4, res.Summary.TotalSteps)
	assert.Equal(t, 4, res.Summary.CompletedSteps)
	assert.Equal(t, 0, res.Summary.FailedSteps)
	assert.Equal(t, 1.0, res.Summary.SuccessRate)
	assert.Equal(t, 2, res.Summary.TotalEvidence)
	assert.False(t, res.RequiresReview)
	assert.Empty(t, res.Summary.Limitations)

	// Both records scored and entity-extracted.
	for _, ev := range res.Evidence {
		assert.Greater(t, ev.QualityScore, 0.0)
		assert.Contains(t, ev.Entities["ip"], "192.168.1.50")
		assert.Equal(t, models.EvidenceTypeNetwork, ev.Type)
	}

	assert.Equal(t, 4, rec.count("item/step.started"))
	assert.Equal(t, 4, rec.count("item/step.complete"))
	assert.Equal(t, 2, rec.count("item/evidence"))
	assert.Equal(t, 1, rec.count("item/correlation"))
}

func TestExecutePlanBoundsParallelism(t *testing.T) {
	src := newFakeSources(func(kind connector.Kind, _ connector.QueryRequest) (*connector.QueryResult, error) {
		return okResult(kind), nil
	})
	plan := &models.Plan{
		ID:              "plan-inv-1",
		InvestigationID: "inv-1",
		Steps: []*models.Step{
			queryStep("q1", "a"), queryStep("q2", "b"), queryStep("q3", "c"),
			queryStep("q4", "d"), queryStep("q5", "e"), queryStep("q6", "f"),
		},
	}
	in := testInput(plan)
	in.AvailableSources = []string{"a", "b", "c", "d", "e", "f"}

	e := newTestEngine(src, nil, 2)
	res, err := e.ExecutePlan(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, 6, res.Summary.CompletedSteps)
	assert.LessOrEqual(t, src.maxSeen.Load(), int32(2), "no more than two steps may run at once")
}

func TestTransientFailureRetriesThenSucceeds(t *testing.T) {
	var failures atomic.Int32
	failures.Store(2)
	src := newFakeSources(func(kind connector.Kind, _ connector.QueryRequest) (*connector.QueryResult, error) {
		if failures.Add(-1) >= 0 {
			return nil, connector.NewError(connector.ErrKindNetworkTransient, string(kind), errors.New("connection reset"))
		}
		return okResult(kind), nil
	})
	rec := &eventRecorder{}
	plan := &models.Plan{ID: "p", InvestigationID: "inv-1", Steps: []*models.Step{queryStep("query-siem", "siem")}}

	e := newTestEngine(src, rec, 3)
	res, err := e.ExecutePlan(context.Background(), testInput(plan))
	require.NoError(t, err)

	assert.Equal(t, 1, res.Summary.CompletedSteps)
	assert.Equal(t, 2, plan.Steps[0].RetryCount)
	assert.Equal(t, 2, rec.count(events.MethodConnectorRetry))
	assert.Equal(t, 3, src.callCount("siem"))
}

func TestRateLimitRetriesOnceThenSkips(t *testing.T) {
	src := newFakeSources(func(kind connector.Kind, _ connector.QueryRequest) (*connector.QueryResult, error) {
		return nil, &connector.Error{
			Kind: connector.ErrKindRateLimit, ConnectorID: string(kind),
			RetryAfter: 10 * time.Millisecond, Err: errors.New("quota exceeded"),
		}
	})
	rec := &eventRecorder{}
	plan := &models.Plan{ID: "p", InvestigationID: "inv-1", Steps: []*models.Step{queryStep("query-siem", "siem")}}

	e := newTestEngine(src, rec, 3)
	res, err := e.ExecutePlan(context.Background(), testInput(plan))
	require.NoError(t, err)

	assert.Equal(t, models.StepStatusSkipped, plan.Steps[0].Status)
	assert.Equal(t, 2, src.callCount("siem"), "one retry after the rate limit, then skip")
	assert.Contains(t, res.Summary.Limitations, "siem skipped: rate limited")
	assert.Equal(t, 1, rec.count(events.MethodDataSourceFailure))
}

func TestAuthFailureEscalates(t *testing.T) {
	src := newFakeSources(func(kind connector.Kind, _ connector.QueryRequest) (*connector.QueryResult, error) {
		return nil, connector.NewError(connector.ErrKindAuth, string(kind), errors.New("token expired"))
	})
	rec := &eventRecorder{}
	plan := &models.Plan{ID: "p", InvestigationID: "inv-1", Steps: []*models.Step{queryStep("query-siem", "siem")}}

	e := newTestEngine(src, rec, 3)
	res, err := e.ExecutePlan(context.Background(), testInput(plan))
	require.NoError(t, err)

	assert.Equal(t, models.StepStatusFailed, plan.Steps[0].Status)
	assert.True(t, res.RequiresReview)
	assert.Contains(t, res.Summary.Limitations, "siem unavailable: access denied")
	assert.Equal(t, 1, src.callCount("siem"), "auth failures are never retried")
}

func TestValidationErrorFailsWithoutRetry(t *testing.T) {
	src := newFakeSources(func(kind connector.Kind, _ connector.QueryRequest) (*connector.QueryResult, error) {
		return nil, connector.NewError(connector.ErrKindValidation, string(kind), errors.New("bad query"))
	})
	plan := &models.Plan{ID: "p", InvestigationID: "inv-1", Steps: []*models.Step{queryStep("query-siem", "siem")}}

	e := newTestEngine(src, nil, 3)
	res, err := e.ExecutePlan(context.Background(), testInput(plan))
	require.NoError(t, err)

	assert.Equal(t, models.StepStatusFailed, plan.Steps[0].Status)
	assert.Equal(t, 0, plan.Steps[0].RetryCount)
	assert.Equal(t, 1, res.Summary.FailedSteps)
}

func TestAdaptationReplacesFailedQueryStep(t *testing.T) {
	src := newFakeSources(func(kind connector.Kind, _ connector.QueryRequest) (*connector.QueryResult, error) {
		if kind == "siem" {
			return nil, connector.NewError(connector.ErrKindTimeout, "siem", errors.New("deadline"))
		}
		return okResult(kind), nil
	})
	rec := &eventRecorder{}

	correlate := &models.Step{
		ID: "correlate-evidence", Name: "Correlate", Type: models.StepTypeCorrelate,
		Dependencies: []string{"query-siem"}, Critical: true,
		TimeoutMs: 5000, MaxRetries: 2, Status: models.StepStatusPending,
	}
	siem := queryStep("query-siem", "siem")
	siem.MaxRetries = 0
	plan := &models.Plan{ID: "p", InvestigationID: "inv-1", Steps: []*models.Step{siem, correlate}}

	e := newTestEngine(src, rec, 3)
	res, err := e.ExecutePlan(context.Background(), testInput(plan))
	require.NoError(t, err)

	replacement := plan.StepByID("query-siem-adapted")
	require.NotNil(t, replacement, "failed query must be replaced with the alternate source")
	assert.Equal(t, models.StepStatusComplete, replacement.Status)
	assert.Equal(t, []string{"edr"}, replacement.DataSources)
	assert.Equal(t, "query-siem", replacement.AdaptedFrom)

	// The correlate step waited for the replacement.
	assert.Contains(t, correlate.Dependencies, "query-siem-adapted")
	assert.Equal(t, models.StepStatusComplete, correlate.Status)

	assert.Equal(t, 1, rec.count(events.MethodPlanAdapted))
	assert.Contains(t, res.Summary.Adaptations, "replaced query-siem with query-siem-adapted")
	assert.Equal(t, 1, res.Summary.TotalEvidence)
}

func TestAdaptationHappensOncePerStep(t *testing.T) {
	src := newFakeSources(func(kind connector.Kind, _ connector.QueryRequest) (*connector.QueryResult, error) {
		return nil, connector.NewError(connector.ErrKindTimeout, string(kind), errors.New("deadline"))
	})
	siem := queryStep("query-siem", "siem")
	siem.MaxRetries = 0
	plan := &models.Plan{ID: "p", InvestigationID: "inv-1", Steps: []*models.Step{siem}}

	e := newTestEngine(src, nil, 3)
	_, err := e.ExecutePlan(context.Background(), testInput(plan))
	require.NoError(t, err)

	// siem fails, edr replacement fails too; the replacement is not adapted
	// again because edr was the last untried source.
	require.NotNil(t, plan.StepByID("query-siem-adapted"))
	assert.Nil(t, plan.StepByID("query-siem-adapted-adapted"))
}

func TestBulkAdaptationDropsFailingSources(t *testing.T) {
	src := newFakeSources(func(kind connector.Kind, _ connector.QueryRequest) (*connector.QueryResult, error) {
		return nil, connector.NewError(connector.ErrKindServer, string(kind), errors.New("upstream down"))
	})
	rec := &eventRecorder{}
	a, b, c := queryStep("q-a", "a"), queryStep("q-b", "b"), queryStep("q-c", "c")
	for _, s := range []*models.Step{a, b, c} {
		s.MaxRetries = 0
	}
	plan := &models.Plan{ID: "p", InvestigationID: "inv-1", Steps: []*models.Step{a, b, c}}
	in := testInput(plan)
	in.AvailableSources = []string{"a", "b", "c"}

	e := newTestEngine(src, rec, 1)
	res, err := e.ExecutePlan(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, 3, res.Summary.FailedSteps)
	require.NotEmpty(t, res.Summary.Adaptations)
	assert.Contains(t, res.Summary.Adaptations[len(res.Summary.Adaptations)-1], "dropped sources")
	assert.GreaterOrEqual(t, rec.count(events.MethodPlanAdapted), 1)
}

func TestCriticalDependencyFailureSkipsDependents(t *testing.T) {
	src := newFakeSources(func(kind connector.Kind, _ connector.QueryRequest) (*connector.QueryResult, error) {
		return nil, connector.NewError(connector.ErrKindFatal, string(kind), errors.New("broken"))
	})
	critical := queryStep("query-siem", "siem")
	critical.Critical = true
	dependent := &models.Step{
		ID: "validate-evidence", Name: "Validate", Type: models.StepTypeValidate,
		Dependencies: []string{"query-siem"},
		TimeoutMs:    5000, MaxRetries: 2, Status: models.StepStatusPending,
	}
	plan := &models.Plan{ID: "p", InvestigationID: "inv-1", Steps: []*models.Step{critical, dependent}}

	e := newTestEngine(src, nil, 3)
	_, err := e.ExecutePlan(context.Background(), testInput(plan))
	require.NoError(t, err)

	assert.Equal(t, models.StepStatusFailed, critical.Status)
	assert.Equal(t, models.StepStatusSkipped, dependent.Status)
	assert.Equal(t, "critical dependency failed", dependent.LastError)
}

func TestSkippedCriticalDependencyDoomsChain(t *testing.T) {
	src := newFakeSources(func(kind connector.Kind, _ connector.QueryRequest) (*connector.QueryResult, error) {
		return nil, connector.NewError(connector.ErrKindValidation, string(kind), errors.New("bad query"))
	})
	a := queryStep("query-siem", "siem")
	a.Critical = true
	b := &models.Step{
		ID: "correlate-evidence", Name: "Correlate", Type: models.StepTypeCorrelate,
		Dependencies: []string{"query-siem"}, Critical: true,
		TimeoutMs: 5000, MaxRetries: 2, Status: models.StepStatusPending,
	}
	c := &models.Step{
		ID: "validate-evidence", Name: "Validate", Type: models.StepTypeValidate,
		Dependencies: []string{"correlate-evidence"},
		TimeoutMs:    5000, MaxRetries: 2, Status: models.StepStatusPending,
	}
	plan := &models.Plan{ID: "p", InvestigationID: "inv-1", Steps: []*models.Step{a, b, c}}

	e := newTestEngine(src, nil, 3)
	res, err := e.ExecutePlan(context.Background(), testInput(plan))
	require.NoError(t, err)

	// A skipped critical step is as unsatisfied as a failed one, so dooming
	// must walk the whole chain.
	assert.Equal(t, models.StepStatusFailed, a.Status)
	assert.Equal(t, models.StepStatusSkipped, b.Status)
	assert.Equal(t, models.StepStatusSkipped, c.Status)
	assert.Equal(t, "critical dependency failed", c.LastError)
	assert.Equal(t, 1, res.Summary.FailedSteps)
}

func TestQueryFallsBackAcrossStepSources(t *testing.T) {
	src := newFakeSources(func(kind connector.Kind, _ connector.QueryRequest) (*connector.QueryResult, error) {
		if kind == "siem" {
			return nil, connector.NewError(connector.ErrKindServer, string(kind), errors.New("upstream 503"))
		}
		return okResult(kind), nil
	})
	step := queryStep("query-logs", "siem")
	step.DataSources = []string{"siem", "edr"}
	plan := &models.Plan{ID: "p", InvestigationID: "inv-1", Steps: []*models.Step{step}}

	e := newTestEngine(src, nil, 3)
	res, err := e.ExecutePlan(context.Background(), testInput(plan))
	require.NoError(t, err)

	assert.Equal(t, models.StepStatusComplete, step.Status)
	assert.Zero(t, step.RetryCount, "source fallback happens inside the attempt, not via retry")
	assert.Equal(t, 1, src.callCount("siem"))
	assert.Equal(t, 1, src.callCount("edr"))
	require.Equal(t, 1, res.Summary.TotalEvidence)
	assert.Equal(t, "edr-primary", res.Evidence[0].Source)
}

func TestQueryFailsOnlyWhenAllStepSourcesFail(t *testing.T) {
	src := newFakeSources(func(kind connector.Kind, _ connector.QueryRequest) (*connector.QueryResult, error) {
		return nil, connector.NewError(connector.ErrKindAuth, string(kind), errors.New("token expired"))
	})
	step := queryStep("query-logs", "siem")
	step.DataSources = []string{"siem", "edr"}
	plan := &models.Plan{ID: "p", InvestigationID: "inv-1", Steps: []*models.Step{step}}

	e := newTestEngine(src, nil, 3)
	res, err := e.ExecutePlan(context.Background(), testInput(plan))
	require.NoError(t, err)

	assert.Equal(t, models.StepStatusFailed, step.Status)
	assert.Equal(t, 1, src.callCount("siem"))
	assert.Equal(t, 1, src.callCount("edr"))
	assert.True(t, res.RequiresReview)
}

func TestValidateUnmetCriteriaFlagsReview(t *testing.T) {
	src := newFakeSources(func(kind connector.Kind, _ connector.QueryRequest) (*connector.QueryResult, error) {
		return okResult(kind), nil
	})
	validate := &models.Step{
		ID: "validate-evidence", Name: "Validate", Type: models.StepTypeValidate,
		Payload:   map[string]any{"evidenceCount": 10},
		TimeoutMs: 5000, MaxRetries: 2, Status: models.StepStatusPending,
	}
	plan := &models.Plan{ID: "p", InvestigationID: "inv-1", Steps: []*models.Step{queryStep("query-siem", "siem"), validate}}
	validate.Dependencies = []string{"query-siem"}

	e := newTestEngine(src, nil, 3)
	res, err := e.ExecutePlan(context.Background(), testInput(plan))
	require.NoError(t, err)

	// Unmet criteria complete the step but poison the verdict.
	assert.Equal(t, models.StepStatusComplete, validate.Status)
	assert.True(t, res.RequiresReview)
	require.Len(t, res.Summary.Limitations, 1)
	assert.Contains(t, res.Summary.Limitations[0], "validation criteria unmet")
}

func TestEnrichStepProducesEnrichmentEvidence(t *testing.T) {
	src := newFakeSources(func(kind connector.Kind, _ connector.QueryRequest) (*connector.QueryResult, error) {
		return okResult(kind), nil
	})
	src.enrich = func(kind connector.Kind, entityKind, entity string) (*connector.Enrichment, error) {
		return &connector.Enrichment{
			Entity: entity, EntityKind: entityKind,
			Verdict: "malicious", Confidence: 0.9, Source: "intel-1",
		}, nil
	}
	enrich := &models.Step{
		ID: "enrich-indicators", Name: "Enrich", Type: models.StepTypeEnrich,
		Payload:     map[string]any{"entities": map[string]any{"ip": "203.0.113.7"}},
		DataSources: []string{"threat_intel"},
		TimeoutMs:   5000, MaxRetries: 2, Status: models.StepStatusPending,
	}
	plan := &models.Plan{ID: "p", InvestigationID: "inv-1", Steps: []*models.Step{enrich}}

	e := newTestEngine(src, nil, 3)
	res, err := e.ExecutePlan(context.Background(), testInput(plan))
	require.NoError(t, err)

	require.Len(t, res.Evidence, 1)
	rec := res.Evidence[0]
	assert.Equal(t, models.EvidenceTypeEnrichment, rec.Type)
	assert.Equal(t, "intel-1", rec.Source)
	assert.Equal(t, "malicious", rec.Payload["verdict"])
	assert.Equal(t, []string{"203.0.113.7"}, rec.Entities["ip"])
}

func TestExecutePlanCancellation(t *testing.T) {
	src := newFakeSources(func(kind connector.Kind, _ connector.QueryRequest) (*connector.QueryResult, error) {
		return okResult(kind), nil
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	e := newTestEngine(src, nil, 3)
	_, err := e.ExecutePlan(ctx, testInput(standardPlan()))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestExecutePlanRejectsInvalidPlan(t *testing.T) {
	e := newTestEngine(newFakeSources(nil), nil, 3)

	_, err := e.ExecutePlan(context.Background(), Input{Plan: nil})
	assert.Error(t, err)

	bad := &models.Plan{ID: "p", Steps: []*models.Step{
		{ID: "s1", Type: models.StepTypeQuery, Dependencies: []string{"missing"}},
	}}
	_, err = e.ExecutePlan(context.Background(), Input{Plan: bad})
	assert.ErrorContains(t, err, "unknown step")
}

type countingGate struct {
	waits atomic.Int32
}

func (g *countingGate) Wait(context.Context) error {
	g.waits.Add(1)
	return nil
}

func TestGateConsultedBeforeEachDispatch(t *testing.T) {
	src := newFakeSources(func(kind connector.Kind, _ connector.QueryRequest) (*connector.QueryResult, error) {
		return okResult(kind), nil
	})
	gate := &countingGate{}
	e := New(Options{
		Sources: src,
		Clock:   clock.NewFake(testNow),
		Gate:    gate,
		Sleep:   func(context.Context, time.Duration) error { return nil },
	})

	_, err := e.ExecutePlan(context.Background(), testInput(standardPlan()))
	require.NoError(t, err)
	assert.Equal(t, int32(4), gate.waits.Load(), "gate consulted once per dispatched step")
}
