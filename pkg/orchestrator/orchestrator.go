// Package orchestrator drives one investigation through its lifecycle:
// planning → executing → analyzing → responding, with pause and approval
// gates, a hard per-investigation timeout, and human feedback consumed at
// every phase boundary.
//
// The executor owns no persistence of its own: it moves the investigation
// row through the state machine, hands the plan to the execution engine,
// and publishes every observable transition on the event bus.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/NeoCh3n/NeonharbourSecurity-sub001/pkg/agent"
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/pkg/clock"
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/pkg/engine"
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/pkg/events"
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/pkg/models"
)

// InvestigationStore moves the investigation row through the state machine.
type InvestigationStore interface {
	Transition(ctx context.Context, id string, from []models.InvestigationStatus, to models.InvestigationStatus) error
}

// StepStore persists the plan and final step states.
type StepStore interface {
	SavePlan(ctx context.Context, tenantID string, plan *models.Plan) error
	UpdateStep(ctx context.Context, step *models.Step) error
}

// EvidenceStore persists evidence and derived relationships.
type EvidenceStore interface {
	SaveEvidence(ctx context.Context, tenantID, investigationID string, records []*models.EvidenceRecord) error
	SaveRelationships(ctx context.Context, tenantID, investigationID string, links []models.Relationship) error
}

// FeedbackStore drains pending human feedback at phase boundaries.
type FeedbackStore interface {
	ListUnconsumed(ctx context.Context, investigationID string) ([]*models.FeedbackEntry, error)
	MarkConsumed(ctx context.Context, feedbackIDs []string) error
}

// ApprovalStore manages human approval gates.
type ApprovalStore interface {
	Create(ctx context.Context, req *models.ApprovalRequest) (*models.ApprovalRequest, error)
	Get(ctx context.Context, tenantID, requestID string) (*models.ApprovalRequest, error)
	ExpirePending(ctx context.Context, cutoff time.Time) ([]string, error)
}

// Publisher pushes lifecycle events onto the investigation's stream.
type Publisher interface {
	Publish(ctx context.Context, runID string, ev *events.Envelope) (int64, error)
}

// SourceLister exposes the connector kinds currently selectable per tenant.
type SourceLister interface {
	ActiveKinds(tenantID string) []string
}

// PlanRunner executes one plan. Satisfied by *engine.Engine.
type PlanRunner interface {
	ExecutePlan(ctx context.Context, in engine.Input) (*engine.Result, error)
}

// Options wires the executor's collaborators.
type Options struct {
	Investigations InvestigationStore
	Steps          StepStore
	Evidence       EvidenceStore
	Feedback       FeedbackStore
	Approvals      ApprovalStore
	Events         Publisher
	Sources        SourceLister
	Runtime        *Runtime

	Planner   *agent.Planner
	Analyst   *agent.Analyst
	Responder *agent.Responder
	Model     agent.ModelFunc // optional

	// EngineOptions is the template for per-run engines; the executor fills
	// in the run's pause gate and evidence sink.
	EngineOptions engine.Options

	Clock  clock.Clock
	Logger *slog.Logger

	DefaultTimeout       time.Duration
	ApprovalPollInterval time.Duration
	ApprovalTTL          time.Duration
}

// Executor runs investigations claimed by the worker pool.
type Executor struct {
	investigations InvestigationStore
	steps          StepStore
	evidence       EvidenceStore
	feedback       FeedbackStore
	approvals      ApprovalStore
	events         Publisher
	sources        SourceLister
	runtime        *Runtime

	planner   *agent.Planner
	analyst   *agent.Analyst
	responder *agent.Responder
	model     agent.ModelFunc

	engineOpts engine.Options
	// buildEngine is swappable in tests.
	buildEngine func(opts engine.Options) PlanRunner

	clk clock.Clock
	log *slog.Logger

	defaultTimeout       time.Duration
	approvalPollInterval time.Duration
	approvalTTL          time.Duration
}

// NewExecutor creates an executor.
func NewExecutor(opts Options) *Executor {
	if opts.Clock == nil {
		opts.Clock = clock.System{}
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.DefaultTimeout <= 0 {
		opts.DefaultTimeout = 30 * time.Minute
	}
	if opts.ApprovalPollInterval <= 0 {
		opts.ApprovalPollInterval = 2 * time.Second
	}
	if opts.ApprovalTTL <= 0 {
		opts.ApprovalTTL = 15 * time.Minute
	}
	return &Executor{
		investigations:       opts.Investigations,
		steps:                opts.Steps,
		evidence:             opts.Evidence,
		feedback:             opts.Feedback,
		approvals:            opts.Approvals,
		events:               opts.Events,
		sources:              opts.Sources,
		runtime:              opts.Runtime,
		planner:              opts.Planner,
		analyst:              opts.Analyst,
		responder:            opts.Responder,
		model:                opts.Model,
		engineOpts:           opts.EngineOptions,
		buildEngine:          func(o engine.Options) PlanRunner { return engine.New(o) },
		clk:                  opts.Clock,
		log:                  opts.Logger,
		defaultTimeout:       opts.DefaultTimeout,
		approvalPollInterval: opts.ApprovalPollInterval,
		approvalTTL:          opts.ApprovalTTL,
	}
}

// Outcome is everything the worker writes at investigation termination.
type Outcome struct {
	Status       models.InvestigationStatus
	Verdict      *models.Verdict
	Response     *models.Response
	Summary      *models.ExecutionSummary
	ErrorMessage string
}

// Execute drives the claimed investigation to a terminal outcome. The
// investigation arrives in status planning (set by the claim); Execute
// never returns nil.
func (e *Executor) Execute(parent context.Context, inv *models.Investigation) *Outcome {
	timeout := e.defaultTimeout
	if inv.TimeoutMs > 0 {
		timeout = time.Duration(inv.TimeoutMs) * time.Millisecond
	}
	ctrl, ctx := e.runtime.Register(parent, inv.ID, timeout)
	defer e.runtime.Unregister(inv.ID)

	log := e.log.With("investigation_id", inv.ID, "tenant_id", inv.TenantID)
	scope := events.Scope{AgentID: "orchestrator", ThreadID: inv.ID}
	e.publish(ctx, inv.ID, scope.RunStarted(inv.TenantID, inv.Alert.ID))

	out := e.pipeline(ctx, ctrl, inv, log)

	// Terminal events must land even when the run context is cancelled.
	termCtx := context.WithoutCancel(parent)
	switch out.Status {
	case models.StatusComplete, models.StatusRequiresReview:
		classification := string(out.Status)
		confidence := 0.0
		if out.Verdict != nil {
			classification = out.Verdict.Classification
			confidence = out.Verdict.Confidence
		}
		e.publish(termCtx, inv.ID, scope.RunCompleted(inv.TenantID, classification, confidence))
	case models.StatusTimedOut:
		e.publish(termCtx, inv.ID, scope.InvestigationTimeout(timeout.Milliseconds(), out.ErrorMessage))
		e.publish(termCtx, inv.ID, scope.RunFailed(inv.TenantID, "investigation timed out"))
	default:
		e.publish(termCtx, inv.ID, scope.RunFailed(inv.TenantID, out.ErrorMessage))
	}
	if out.Summary != nil {
		e.publish(termCtx, inv.ID, scope.RunMetrics(inv.TenantID, map[string]any{
			"totalSteps":      out.Summary.TotalSteps,
			"completedSteps":  out.Summary.CompletedSteps,
			"failedSteps":     out.Summary.FailedSteps,
			"successRate":     out.Summary.SuccessRate,
			"totalEvidence":   out.Summary.TotalEvidence,
			"executionTimeMs": out.Summary.ExecutionTimeMs,
		}))
	}

	log.Info("Investigation finished", "status", out.Status)
	return out
}

// pipeline runs the four agent phases. Any error funnels through abort so
// timeout and cancellation always map to the right terminal status.
func (e *Executor) pipeline(ctx context.Context, ctrl *Control, inv *models.Investigation, log *slog.Logger) *Outcome {
	agentCtx := &agent.Context{
		TenantID:         inv.TenantID,
		InvestigationID:  inv.ID,
		Alert:            inv.Alert,
		AvailableSources: e.sources.ActiveKinds(inv.TenantID),
		Model:            e.model,
	}
	forceReview := false

	// ---- planning ----
	if err := e.pauseCheckpoint(ctx, ctrl, inv, models.StatusPlanning); err != nil {
		return e.abort(ctx, inv, nil, err)
	}
	if fb := e.drainFeedback(ctx, inv, agentCtx); fb.escalated {
		forceReview = true
	}
	plan, err := e.runPlanning(ctx, inv, agentCtx)
	if err != nil {
		return e.abort(ctx, inv, nil, err)
	}

	// ---- executing ----
	if err := e.transition(ctx, inv, models.StatusPlanning, models.StatusExecuting); err != nil {
		return e.abort(ctx, inv, nil, err)
	}
	if err := e.pauseCheckpoint(ctx, ctrl, inv, models.StatusExecuting); err != nil {
		return e.abort(ctx, inv, nil, err)
	}
	result, err := e.runExecution(ctx, ctrl, inv, plan, agentCtx)
	if err != nil {
		return e.abort(ctx, inv, nil, err)
	}
	agentCtx.Evidence = result.Evidence
	agentCtx.Links = result.Links
	agentCtx.Summary = &result.Summary
	agentCtx.Limitations = append(agentCtx.Limitations, result.Summary.Limitations...)
	if result.RequiresReview {
		forceReview = true
	}

	// ---- analyzing ----
	if err := e.transition(ctx, inv, models.StatusExecuting, models.StatusAnalyzing); err != nil {
		return e.abort(ctx, inv, result, err)
	}
	if err := e.pauseCheckpoint(ctx, ctrl, inv, models.StatusAnalyzing); err != nil {
		return e.abort(ctx, inv, result, err)
	}
	if fb := e.drainFeedback(ctx, inv, agentCtx); fb.escalated {
		forceReview = true
	}
	verdict, err := e.runAnalysis(ctx, inv, agentCtx)
	if err != nil {
		return e.abort(ctx, inv, result, err)
	}

	// ---- responding ----
	if err := e.transition(ctx, inv, models.StatusAnalyzing, models.StatusResponding); err != nil {
		return e.abort(ctx, inv, result, err)
	}
	if err := e.pauseCheckpoint(ctx, ctrl, inv, models.StatusResponding); err != nil {
		return e.abort(ctx, inv, result, err)
	}
	if fb := e.drainFeedback(ctx, inv, agentCtx); fb.corrected != nil || fb.escalated {
		if fb.escalated {
			forceReview = true
		}
		if fb.corrected != nil {
			// Re-run the analyst with the correction appended to context.
			verdict, err = e.runAnalysis(ctx, inv, agentCtx)
			if err != nil {
				return e.abort(ctx, inv, result, err)
			}
		}
	}
	agentCtx.Verdict = verdict
	response, err := e.runResponse(ctx, inv, agentCtx)
	if err != nil {
		return e.abort(ctx, inv, result, err)
	}

	// ---- approvals ----
	if needsApproval(response) {
		if err := e.transition(ctx, inv, models.StatusResponding, models.StatusAwaitingApproval); err != nil {
			return e.abort(ctx, inv, result, err)
		}
		decision, err := e.awaitApprovals(ctx, ctrl, inv, response)
		if err != nil {
			return e.abort(ctx, inv, result, err)
		}
		if decision != models.ApprovalApproved {
			log.Info("Approval not granted, routing to review", "decision", decision)
			forceReview = true
		}
	}

	status := models.StatusComplete
	if forceReview || verdict.Classification == models.VerdictRequiresReview {
		status = models.StatusRequiresReview
	}
	return &Outcome{
		Status:   status,
		Verdict:  verdict,
		Response: response,
		Summary:  &result.Summary,
	}
}

// runPlanning invokes the planner and persists the produced plan.
func (e *Executor) runPlanning(ctx context.Context, inv *models.Investigation, agentCtx *agent.Context) (*models.Plan, error) {
	scope := events.Scope{AgentID: e.planner.Name(), ThreadID: inv.ID, TurnID: "turn-planning"}
	e.publish(ctx, inv.ID, scope.TurnStarted(e.planner.Name()))

	plan, err := e.planner.Plan(ctx, agentCtx)
	if err != nil {
		e.publish(ctx, inv.ID, scope.TurnFailed(e.planner.Name(), err.Error()))
		return nil, fmt.Errorf("planning: %w", err)
	}
	if err := e.steps.SavePlan(ctx, inv.TenantID, plan); err != nil {
		return nil, fmt.Errorf("persisting plan: %w", err)
	}
	e.publish(ctx, inv.ID, scope.TurnCompleted(e.planner.Name(), map[string]any{
		"planId":    plan.ID,
		"stepCount": len(plan.Steps),
	}))
	return plan, nil
}

// runExecution builds a per-run engine bound to the run's pause gate and
// evidence sink and executes the plan.
func (e *Executor) runExecution(ctx context.Context, ctrl *Control, inv *models.Investigation, plan *models.Plan, agentCtx *agent.Context) (*engine.Result, error) {
	opts := e.engineOpts
	opts.Gate = ctrl.Gate()
	opts.Events = e.events
	if e.evidence != nil {
		opts.Sink = &sinkAdapter{store: e.evidence, tenantID: inv.TenantID}
	}
	eng := e.buildEngine(opts)

	result, err := eng.ExecutePlan(ctx, engine.Input{
		TenantID:         inv.TenantID,
		InvestigationID:  inv.ID,
		Alert:            inv.Alert,
		Plan:             plan,
		AvailableSources: agentCtx.AvailableSources,
	})
	if err != nil {
		return nil, fmt.Errorf("executing plan: %w", err)
	}

	// Persist the steps' final states; the stream already carried the
	// per-step transitions.
	for _, step := range plan.Steps {
		if err := e.steps.UpdateStep(ctx, step); err != nil {
			e.log.Warn("Failed to persist step state",
				"investigation_id", inv.ID, "step_id", step.ID, "error", err)
		}
	}
	return result, nil
}

func (e *Executor) runAnalysis(ctx context.Context, inv *models.Investigation, agentCtx *agent.Context) (*models.Verdict, error) {
	scope := events.Scope{AgentID: e.analyst.Name(), ThreadID: inv.ID, TurnID: "turn-analysis"}
	e.publish(ctx, inv.ID, scope.TurnStarted(e.analyst.Name()))

	verdict, err := e.analyst.Analyze(ctx, agentCtx)
	if err != nil {
		e.publish(ctx, inv.ID, scope.TurnFailed(e.analyst.Name(), err.Error()))
		return nil, fmt.Errorf("analysis: %w", err)
	}
	e.publish(ctx, inv.ID, scope.TurnCompleted(e.analyst.Name(), map[string]any{
		"classification": verdict.Classification,
		"confidence":     verdict.Confidence,
	}))
	return verdict, nil
}

func (e *Executor) runResponse(ctx context.Context, inv *models.Investigation, agentCtx *agent.Context) (*models.Response, error) {
	scope := events.Scope{AgentID: e.responder.Name(), ThreadID: inv.ID, TurnID: "turn-response"}
	e.publish(ctx, inv.ID, scope.TurnStarted(e.responder.Name()))

	response, err := e.responder.Respond(ctx, agentCtx)
	if err != nil {
		e.publish(ctx, inv.ID, scope.TurnFailed(e.responder.Name(), err.Error()))
		return nil, fmt.Errorf("response: %w", err)
	}
	e.publish(ctx, inv.ID, scope.TurnCompleted(e.responder.Name(), map[string]any{
		"recommendations": len(response.Recommendations),
	}))
	return response, nil
}

// needsApproval reports whether any recommendation gates on a human.
func needsApproval(r *models.Response) bool {
	for _, rec := range r.Recommendations {
		if rec.RequiresApproval {
			return true
		}
	}
	return false
}

// awaitApprovals opens one approval request per gated recommendation and
// polls until every request is decided, a request expires, or the run
// context ends. The aggregate decision is approved only when all requests
// are approved.
func (e *Executor) awaitApprovals(ctx context.Context, ctrl *Control, inv *models.Investigation, response *models.Response) (models.ApprovalStatus, error) {
	scope := events.Scope{AgentID: "orchestrator", ThreadID: inv.ID}

	var pending []string
	for _, rec := range response.Recommendations {
		if !rec.RequiresApproval {
			continue
		}
		risk := models.RiskMedium
		if rec.Priority == "high" {
			risk = models.RiskHigh
		}
		req, err := e.approvals.Create(ctx, &models.ApprovalRequest{
			InvestigationID: inv.ID,
			TenantID:        inv.TenantID,
			Title:           rec.Title,
			Description:     rec.Description,
			Risk:            risk,
			Verified:        true,
		})
		if err != nil {
			return "", fmt.Errorf("opening approval request: %w", err)
		}
		pending = append(pending, req.ID)
		e.publish(ctx, inv.ID, scope.ApprovalRequested(req.ID, req.Title, req.Description, nil))
	}

	deadline := e.clk.Now().Add(e.approvalTTL)
	decision := models.ApprovalApproved
	for len(pending) > 0 {
		if err := ctrl.Gate().Wait(ctx); err != nil {
			return "", err
		}
		remaining := pending[:0]
		for _, id := range pending {
			req, err := e.approvals.Get(ctx, inv.TenantID, id)
			if err != nil {
				return "", fmt.Errorf("checking approval %s: %w", id, err)
			}
			switch req.Status {
			case models.ApprovalPending:
				remaining = append(remaining, id)
			case models.ApprovalApproved:
				e.publish(ctx, inv.ID, scope.ApprovalResolved(events.MethodApprovalApproved, id, req.RespondedBy))
			case models.ApprovalRejected:
				e.publish(ctx, inv.ID, scope.ApprovalResolved(events.MethodApprovalRejected, id, req.RespondedBy))
				decision = models.ApprovalRejected
			case models.ApprovalExpired:
				e.publish(ctx, inv.ID, scope.ApprovalResolved(events.MethodApprovalExpired, id, ""))
				if decision != models.ApprovalRejected {
					decision = models.ApprovalExpired
				}
			}
		}
		pending = remaining
		if len(pending) == 0 {
			break
		}
		if e.clk.Now().After(deadline) {
			if _, err := e.approvals.ExpirePending(ctx, e.clk.Now().Add(-e.approvalTTL)); err != nil {
				e.log.Warn("Failed to expire stale approvals", "investigation_id", inv.ID, "error", err)
			}
			for _, id := range pending {
				e.publish(ctx, inv.ID, scope.ApprovalResolved(events.MethodApprovalExpired, id, ""))
			}
			if decision != models.ApprovalRejected {
				decision = models.ApprovalExpired
			}
			break
		}
		select {
		case <-time.After(e.approvalPollInterval):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return decision, nil
}

// feedbackResult summarizes one drain of pending feedback.
type feedbackResult struct {
	corrected *models.Verdict
	escalated bool
}

// drainFeedback consumes queued human feedback between phases. Verdict
// corrections are appended to the agent context; escalations force the
// requires-review outcome. Feedback is never an interrupt: it only takes
// effect at these boundaries.
func (e *Executor) drainFeedback(ctx context.Context, inv *models.Investigation, agentCtx *agent.Context) feedbackResult {
	var out feedbackResult
	if e.feedback == nil {
		return out
	}
	entries, err := e.feedback.ListUnconsumed(ctx, inv.ID)
	if err != nil {
		e.log.Warn("Failed to list pending feedback", "investigation_id", inv.ID, "error", err)
		return out
	}
	if len(entries) == 0 {
		return out
	}

	ids := make([]string, 0, len(entries))
	scope := events.Scope{AgentID: "orchestrator", ThreadID: inv.ID}
	for _, entry := range entries {
		ids = append(ids, entry.FeedbackID)
		switch entry.Type {
		case models.FeedbackVerdictCorrection:
			if v := verdictFromFeedback(entry.Content); v != nil {
				out.corrected = v
				agentCtx.CorrectedVerdict = v
			}
		case models.FeedbackEscalation:
			out.escalated = true
		}
		e.publish(ctx, inv.ID, scope.Item("feedback", map[string]any{
			"feedbackId": entry.FeedbackID,
			"type":       string(entry.Type),
		}))
	}
	if err := e.feedback.MarkConsumed(ctx, ids); err != nil {
		e.log.Warn("Failed to mark feedback consumed", "investigation_id", inv.ID, "error", err)
	}
	return out
}

// verdictFromFeedback extracts a corrected verdict from feedback content.
func verdictFromFeedback(content map[string]any) *models.Verdict {
	classification, _ := content["classification"].(string)
	switch classification {
	case models.VerdictTruePositive, models.VerdictFalsePositive, models.VerdictRequiresReview:
	default:
		return nil
	}
	v := &models.Verdict{Classification: classification, Confidence: 1.0}
	if c, ok := content["confidence"].(float64); ok && c >= 0 && c <= 1 {
		v.Confidence = c
	}
	if r, ok := content["reasoning"].(string); ok {
		v.Reasoning = r
	}
	return v
}

// pauseCheckpoint blocks at a phase boundary while the run is paused,
// reflecting the pause in the status row for the duration.
func (e *Executor) pauseCheckpoint(ctx context.Context, ctrl *Control, inv *models.Investigation, resumeTo models.InvestigationStatus) error {
	if !ctrl.Gate().Paused() {
		return nil
	}
	if err := e.transition(ctx, inv, resumeTo, models.StatusPaused); err != nil {
		return err
	}
	if err := ctrl.Gate().Wait(ctx); err != nil {
		return err
	}
	return e.transition(ctx, inv, models.StatusPaused, resumeTo)
}

func (e *Executor) transition(ctx context.Context, inv *models.Investigation, from, to models.InvestigationStatus) error {
	if err := e.investigations.Transition(ctx, inv.ID, []models.InvestigationStatus{from}, to); err != nil {
		return fmt.Errorf("transition %s → %s: %w", from, to, err)
	}
	inv.Status = to
	return nil
}

// abort maps a pipeline error to its terminal outcome. The run context's
// cancellation cause distinguishes our hard timeout from every other
// failure: a cancelled connector call surfaces context.Canceled, and only
// context.Cause knows whether the deadline timer fired.
func (e *Executor) abort(ctx context.Context, inv *models.Investigation, result *engine.Result, err error) *Outcome {
	out := &Outcome{Status: models.StatusFailed, ErrorMessage: err.Error()}
	if result != nil {
		out.Summary = &result.Summary
	}
	if errors.Is(err, ErrTimedOut) || errors.Is(context.Cause(ctx), ErrTimedOut) {
		out.Status = models.StatusTimedOut
		out.ErrorMessage = ErrTimedOut.Error()
	}
	return out
}

func (e *Executor) publish(ctx context.Context, runID string, ev *events.Envelope) {
	if e.events == nil {
		return
	}
	if _, err := e.events.Publish(ctx, runID, ev); err != nil {
		e.log.Warn("Event publish failed", "run_id", runID, "method", ev.Method, "error", err)
	}
}

// sinkAdapter binds the tenant onto the engine's evidence sink.
type sinkAdapter struct {
	store    EvidenceStore
	tenantID string
}

func (s *sinkAdapter) SaveEvidence(ctx context.Context, rec *models.EvidenceRecord) error {
	return s.store.SaveEvidence(ctx, s.tenantID, rec.InvestigationID, []*models.EvidenceRecord{rec})
}

func (s *sinkAdapter) SaveRelationships(ctx context.Context, investigationID string, links []models.Relationship) error {
	return s.store.SaveRelationships(ctx, s.tenantID, investigationID, links)
}
