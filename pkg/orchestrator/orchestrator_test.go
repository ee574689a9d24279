package orchestrator

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NeoCh3n/NeonharbourSecurity-sub001/pkg/agent"
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/pkg/clock"
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/pkg/engine"
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/pkg/events"
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/pkg/models"
)

type fakeInvestigations struct {
	mu          sync.Mutex
	transitions []string
	failAt      map[string]error
}

func (f *fakeInvestigations) Transition(_ context.Context, _ string, from []models.InvestigationStatus, to models.InvestigationStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := string(from[0]) + "->" + string(to)
	if err := f.failAt[key]; err != nil {
		return err
	}
	f.transitions = append(f.transitions, key)
	return nil
}

func (f *fakeInvestigations) seen() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.transitions...)
}

type fakeSteps struct {
	mu      sync.Mutex
	plans   []*models.Plan
	updates []string
}

func (f *fakeSteps) SavePlan(_ context.Context, _ string, plan *models.Plan) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.plans = append(f.plans, plan)
	return nil
}

func (f *fakeSteps) UpdateStep(_ context.Context, step *models.Step) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updates = append(f.updates, step.ID)
	return nil
}

type fakeFeedback struct {
	mu       sync.Mutex
	pending  []*models.FeedbackEntry
	consumed []string
}

func (f *fakeFeedback) ListUnconsumed(context.Context, string) ([]*models.FeedbackEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := f.pending
	f.pending = nil
	return out, nil
}

func (f *fakeFeedback) MarkConsumed(_ context.Context, ids []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.consumed = append(f.consumed, ids...)
	return nil
}

type fakeApprovals struct {
	mu       sync.Mutex
	created  []*models.ApprovalRequest
	decision models.ApprovalStatus
}

func (f *fakeApprovals) Create(_ context.Context, req *models.ApprovalRequest) (*models.ApprovalRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	req.ID = "appr-" + req.Title
	req.Status = models.ApprovalPending
	f.created = append(f.created, req)
	return req, nil
}

func (f *fakeApprovals) Get(_ context.Context, _ string, requestID string) (*models.ApprovalRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, req := range f.created {
		if req.ID == requestID {
			out := *req
			out.Status = f.decision
			return &out, nil
		}
	}
	return nil, errors.New("approval not found")
}

func (f *fakeApprovals) ExpirePending(context.Context, time.Time) ([]string, error) {
	return nil, nil
}

type capturingBus struct {
	mu      sync.Mutex
	methods []string
}

func (b *capturingBus) Publish(_ context.Context, _ string, ev *events.Envelope) (int64, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.methods = append(b.methods, ev.Method)
	return int64(len(b.methods)), nil
}

func (b *capturingBus) has(method string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, m := range b.methods {
		if m == method {
			return true
		}
	}
	return false
}

type staticSources []string

func (s staticSources) ActiveKinds(string) []string { return s }

type stubEngine struct {
	result *engine.Result
	err    error
	block  bool // block until ctx cancelled
	opts   engine.Options
}

func (s *stubEngine) ExecutePlan(ctx context.Context, _ engine.Input) (*engine.Result, error) {
	if s.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func okResult() *engine.Result {
	return &engine.Result{
		Summary: models.ExecutionSummary{
			TotalSteps:     2,
			CompletedSteps: 2,
			SuccessRate:    1.0,
			TotalEvidence:  3,
		},
		Evidence: []*models.EvidenceRecord{
			{ID: "ev-1", InvestigationID: "inv-1", Source: "siem", QualityScore: 0.8,
				Payload: map[string]any{"verdict": "benign"}},
		},
	}
}

type executorFixture struct {
	exec           *Executor
	investigations *fakeInvestigations
	steps          *fakeSteps
	feedback       *fakeFeedback
	approvals      *fakeApprovals
	bus            *capturingBus
	stub           *stubEngine
}

func newFixture(t *testing.T) *executorFixture {
	t.Helper()
	f := &executorFixture{
		investigations: &fakeInvestigations{failAt: map[string]error{}},
		steps:          &fakeSteps{},
		feedback:       &fakeFeedback{},
		approvals:      &fakeApprovals{decision: models.ApprovalApproved},
		bus:            &capturingBus{},
		stub:           &stubEngine{result: okResult()},
	}
	f.exec = NewExecutor(Options{
		Investigations:       f.investigations,
		Steps:                f.steps,
		Feedback:             f.feedback,
		Approvals:            f.approvals,
		Events:               f.bus,
		Sources:              staticSources{"siem", "edr", "threat_intel"},
		Runtime:              NewRuntime(clock.System{}),
		Planner:              agent.NewPlanner(agent.PlannerOptions{}),
		Analyst:              agent.NewAnalyst(agent.BaseOptions{}),
		Responder:            agent.NewResponder(agent.BaseOptions{}),
		ApprovalPollInterval: 5 * time.Millisecond,
		ApprovalTTL:          time.Minute,
	})
	f.exec.buildEngine = func(opts engine.Options) PlanRunner {
		f.stub.opts = opts
		return f.stub
	}
	return f
}

func testInvestigation() *models.Investigation {
	return &models.Investigation{
		ID:       "inv-1",
		TenantID: "acme",
		Status:   models.StatusPlanning,
		Alert: models.Alert{
			ID:       "alert-1",
			TenantID: "acme",
			Title:    "Suspicious login",
			Severity: models.SeverityLow,
			Source:   "siem",
			Entities: map[string][]string{"user": {"alice"}},
		},
	}
}

func TestExecuteHappyPath(t *testing.T) {
	f := newFixture(t)
	out := f.exec.Execute(context.Background(), testInvestigation())

	assert.Equal(t, models.StatusComplete, out.Status)
	require.NotNil(t, out.Verdict)
	require.NotNil(t, out.Response)
	require.NotNil(t, out.Summary)

	assert.Equal(t, []string{
		"planning->executing",
		"executing->analyzing",
		"analyzing->responding",
	}, f.investigations.seen())
	require.Len(t, f.steps.plans, 1)
	assert.NotEmpty(t, f.steps.updates, "final step states must be persisted")

	assert.True(t, f.bus.has(events.MethodRunStarted))
	assert.True(t, f.bus.has(events.MethodRunCompleted))
	assert.True(t, f.bus.has(events.MethodRunMetrics))
	assert.False(t, f.bus.has(events.MethodRunFailed))
}

func TestExecuteEngineFailure(t *testing.T) {
	f := newFixture(t)
	f.stub.err = errors.New("all sources exhausted")

	out := f.exec.Execute(context.Background(), testInvestigation())

	assert.Equal(t, models.StatusFailed, out.Status)
	assert.Contains(t, out.ErrorMessage, "all sources exhausted")
	assert.True(t, f.bus.has(events.MethodRunFailed))
	assert.False(t, f.bus.has(events.MethodRunCompleted))
}

func TestExecuteTimeout(t *testing.T) {
	f := newFixture(t)
	f.stub.block = true

	inv := testInvestigation()
	inv.TimeoutMs = 30
	out := f.exec.Execute(context.Background(), inv)

	assert.Equal(t, models.StatusTimedOut, out.Status)
	assert.True(t, f.bus.has(events.MethodInvestigationTimeout))
	assert.True(t, f.bus.has(events.MethodRunFailed))
}

func TestExecuteCancel(t *testing.T) {
	f := newFixture(t)
	f.stub.block = true

	inv := testInvestigation()
	done := make(chan *Outcome, 1)
	go func() { done <- f.exec.Execute(context.Background(), inv) }()

	require.Eventually(t, func() bool {
		return f.exec.runtime.Active() == 1
	}, time.Second, 5*time.Millisecond)
	// Let the pipeline reach the blocking engine call.
	time.Sleep(20 * time.Millisecond)
	require.True(t, f.exec.runtime.Cancel(inv.ID))

	out := <-done
	assert.Equal(t, models.StatusFailed, out.Status)
	assert.Equal(t, 0, f.exec.runtime.Active())
}

func TestExecuteEngineRequiresReview(t *testing.T) {
	f := newFixture(t)
	f.stub.result = okResult()
	f.stub.result.RequiresReview = true
	f.stub.result.Summary.Limitations = []string{"siem_unavailable"}

	out := f.exec.Execute(context.Background(), testInvestigation())

	assert.Equal(t, models.StatusRequiresReview, out.Status)
	assert.True(t, f.bus.has(events.MethodRunCompleted),
		"requires_review still completes the run on the stream")
}

func TestExecuteEscalationFeedbackForcesReview(t *testing.T) {
	f := newFixture(t)
	f.feedback.pending = []*models.FeedbackEntry{
		{FeedbackID: "fb-1", Type: models.FeedbackEscalation, Content: map[string]any{"reason": "customer VIP"}},
	}

	out := f.exec.Execute(context.Background(), testInvestigation())

	assert.Equal(t, models.StatusRequiresReview, out.Status)
	assert.Equal(t, []string{"fb-1"}, f.feedback.consumed)
}

func TestExecuteVerdictCorrectionRerunsAnalysis(t *testing.T) {
	f := newFixture(t)
	// Queue the correction so it is drained at the responding boundary.
	drained := false
	base := f.feedback
	f.exec.feedback = newFeedbackFunc(func(ctx context.Context, invID string) ([]*models.FeedbackEntry, error) {
		if drained {
			return nil, nil
		}
		drained = true
		return []*models.FeedbackEntry{{
			FeedbackID: "fb-2",
			Type:       models.FeedbackVerdictCorrection,
			Content:    map[string]any{"classification": models.VerdictTruePositive, "confidence": 0.95, "reasoning": "confirmed by analyst"},
		}}, nil
	}, base.MarkConsumed)

	out := f.exec.Execute(context.Background(), testInvestigation())

	require.NotNil(t, out.Verdict)
	assert.Equal(t, models.VerdictTruePositive, out.Verdict.Classification)
	assert.Contains(t, []models.InvestigationStatus{models.StatusComplete, models.StatusRequiresReview}, out.Status)
}

type feedbackFunc struct {
	list func(ctx context.Context, invID string) ([]*models.FeedbackEntry, error)
	mark func(ctx context.Context, ids []string) error
}

func (f feedbackFunc) ListUnconsumed(ctx context.Context, invID string) ([]*models.FeedbackEntry, error) {
	return f.list(ctx, invID)
}

func (f feedbackFunc) MarkConsumed(ctx context.Context, ids []string) error {
	return f.mark(ctx, ids)
}

func newFeedbackFunc(list func(ctx context.Context, invID string) ([]*models.FeedbackEntry, error), mark func(ctx context.Context, ids []string) error) feedbackFunc {
	return feedbackFunc{list: list, mark: mark}
}

func TestExecuteApprovalRejectedRoutesToReview(t *testing.T) {
	f := newFixture(t)
	f.approvals.decision = models.ApprovalRejected
	// Critical severity plus unanimous malicious indicators yields a
	// true_positive verdict, and the hostname entity makes the responder
	// recommend host isolation, which gates on approval.
	inv := testInvestigation()
	inv.Alert.Severity = models.SeverityCritical
	inv.Alert.Entities["hostname"] = []string{"ws-042"}
	f.stub.result.Evidence = []*models.EvidenceRecord{
		{ID: "ev-1", InvestigationID: "inv-1", Source: "threat_intel", QualityScore: 0.95,
			Payload: map[string]any{"verdict": "malicious"}},
		{ID: "ev-2", InvestigationID: "inv-1", Source: "edr", QualityScore: 0.9,
			Payload: map[string]any{"verdict": "malicious"}},
	}

	out := f.exec.Execute(context.Background(), inv)

	require.NotEmpty(t, f.approvals.created, "isolate-host recommendation must open an approval request")
	assert.Equal(t, models.StatusRequiresReview, out.Status)
	assert.Contains(t, f.investigations.seen(), "responding->awaiting_approval")
	assert.True(t, f.bus.has(events.MethodApprovalRequested))
	assert.True(t, f.bus.has(events.MethodApprovalRejected))
}

func TestPauseCheckpointBlocksUntilResume(t *testing.T) {
	f := newFixture(t)
	inv := testInvestigation()

	done := make(chan *Outcome, 1)
	started := make(chan struct{})
	f.exec.buildEngine = func(opts engine.Options) PlanRunner {
		return &stubEngine{result: okResult()}
	}

	// Pause before execution starts: Register happens inside Execute, so we
	// pause as soon as the run appears in the runtime.
	go func() {
		<-started
		require.Eventually(t, func() bool { return f.exec.runtime.Pause(inv.ID) }, time.Second, time.Millisecond)
		time.Sleep(20 * time.Millisecond)
		f.exec.runtime.Resume(inv.ID)
	}()
	go func() {
		close(started)
		done <- f.exec.Execute(context.Background(), inv)
	}()

	select {
	case out := <-done:
		assert.Equal(t, models.StatusComplete, out.Status)
	case <-time.After(5 * time.Second):
		t.Fatal("execution did not finish after resume")
	}
}

func TestGatePauseResume(t *testing.T) {
	g := NewGate()
	assert.False(t, g.Paused())
	require.NoError(t, g.Wait(context.Background()), "open gate must not block")

	g.Pause()
	assert.True(t, g.Paused())
	g.Pause() // idempotent

	released := make(chan error, 1)
	go func() { released <- g.Wait(context.Background()) }()
	select {
	case <-released:
		t.Fatal("Wait returned while paused")
	case <-time.After(20 * time.Millisecond):
	}

	g.Resume()
	require.NoError(t, <-released)
	g.Resume() // idempotent
}

func TestGateWaitHonorsContext(t *testing.T) {
	g := NewGate()
	g.Pause()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := g.Wait(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestRuntimeExtendTimeout(t *testing.T) {
	r := NewRuntime(clock.System{})
	ctrl, ctx := r.Register(context.Background(), "inv-x", time.Minute)
	defer r.Unregister("inv-x")

	before := ctrl.Deadline()
	after, ok := r.ExtendTimeout("inv-x", 30*time.Second)
	require.True(t, ok)
	assert.Equal(t, before.Add(30*time.Second), after)
	assert.NoError(t, ctx.Err())

	_, ok = r.ExtendTimeout("missing", time.Second)
	assert.False(t, ok)
}

func TestRuntimeCancelDistinguishesCause(t *testing.T) {
	r := NewRuntime(clock.System{})
	_, ctx := r.Register(context.Background(), "inv-y", time.Minute)

	require.True(t, r.Cancel("inv-y"))
	<-ctx.Done()
	assert.ErrorIs(t, context.Cause(ctx), ErrCancelled)
	r.Unregister("inv-y")
}

func TestRuntimeTimeoutFiresCause(t *testing.T) {
	r := NewRuntime(clock.System{})
	_, ctx := r.Register(context.Background(), "inv-z", 10*time.Millisecond)
	defer r.Unregister("inv-z")

	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("timeout timer did not fire")
	}
	assert.ErrorIs(t, context.Cause(ctx), ErrTimedOut)
}
