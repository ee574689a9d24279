// Package engine executes investigation plans: it walks the step DAG with
// bounded parallelism, gathers evidence through the connector registry,
// correlates and scores it, and applies the retry/skip/adapt failure policy.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"

	"github.com/NeoCh3n/NeonharbourSecurity-sub001/pkg/clock"
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/pkg/connector"
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/pkg/events"
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/pkg/evidence"
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/pkg/models"
)

const (
	defaultMaxParallelSteps = 3
	defaultMaxRecords       = 100
	queryWindow             = time.Hour
)

// Sources is the slice of the connector registry the engine needs.
type Sources interface {
	Query(ctx context.Context, tenantID string, kind connector.Kind, req connector.QueryRequest) (*connector.QueryResult, error)
	Enrich(ctx context.Context, tenantID string, kind connector.Kind, entityKind, entity string) (*connector.Enrichment, error)
}

// Publisher pushes engine events onto the investigation's stream.
type Publisher interface {
	Publish(ctx context.Context, runID string, ev *events.Envelope) (int64, error)
}

// Sink persists evidence and relationships as they are produced.
type Sink interface {
	SaveEvidence(ctx context.Context, rec *models.EvidenceRecord) error
	SaveRelationships(ctx context.Context, investigationID string, links []models.Relationship) error
}

// Gate blocks step dispatch while the investigation is paused. Wait returns
// once execution may proceed, or the context error.
type Gate interface {
	Wait(ctx context.Context) error
}

// Options wires the engine's collaborators.
type Options struct {
	Sources    Sources
	Events     Publisher // optional
	Sink       Sink      // optional
	Scorer     *evidence.Scorer
	Correlator *evidence.Correlator
	Clock      clock.Clock
	Logger     *slog.Logger
	// MaxParallelSteps bounds concurrently running steps (default 3).
	MaxParallelSteps int
	Gate             Gate // optional
	// Sleep is injectable for tests; defaults to a context-aware time.Sleep.
	Sleep func(ctx context.Context, d time.Duration) error
}

// Engine executes one plan at a time per call; it holds no per-run state.
type Engine struct {
	sources     Sources
	events      Publisher
	sink        Sink
	scorer      *evidence.Scorer
	correlator  *evidence.Correlator
	clk         clock.Clock
	log         *slog.Logger
	maxParallel int
	gate        Gate
	sleep       func(ctx context.Context, d time.Duration) error
}

// New creates an engine.
func New(opts Options) *Engine {
	if opts.Scorer == nil {
		opts.Scorer = evidence.NewScorer(nil)
	}
	if opts.Correlator == nil {
		opts.Correlator = evidence.NewCorrelator(evidence.CorrelatorOptions{})
	}
	if opts.Clock == nil {
		opts.Clock = clock.System{}
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.MaxParallelSteps <= 0 {
		opts.MaxParallelSteps = defaultMaxParallelSteps
	}
	if opts.Sleep == nil {
		opts.Sleep = func(ctx context.Context, d time.Duration) error {
			select {
			case <-time.After(d):
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
	return &Engine{
		sources:     opts.Sources,
		events:      opts.Events,
		sink:        opts.Sink,
		scorer:      opts.Scorer,
		correlator:  opts.Correlator,
		clk:         opts.Clock,
		log:         opts.Logger,
		maxParallel: opts.MaxParallelSteps,
		gate:        opts.Gate,
		sleep:       opts.Sleep,
	}
}

// Input identifies the plan to execute and its investigation context.
type Input struct {
	TenantID         string
	InvestigationID  string
	Alert            models.Alert
	Plan             *models.Plan
	AvailableSources []string
}

// Result is the outcome of a plan execution.
type Result struct {
	Summary  models.ExecutionSummary
	Evidence []*models.EvidenceRecord
	Links    []models.Relationship
	// RequiresReview is set when access failures or unmet validation
	// criteria mean the verdict should not be trusted unattended.
	RequiresReview bool
}

// runState is the mutable per-execution state shared by step goroutines.
type runState struct {
	mu             sync.Mutex
	in             Input
	evidence       []*models.EvidenceRecord
	links          []models.Relationship
	limitations    []string
	adaptations    []string
	failedSources  map[string]bool
	requiresReview bool
	bulkAdapted    bool
}

func (st *runState) addLimitation(l string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	for _, have := range st.limitations {
		if have == l {
			return
		}
	}
	st.limitations = append(st.limitations, l)
}

func (st *runState) addEvidence(rec *models.EvidenceRecord) {
	st.mu.Lock()
	st.evidence = append(st.evidence, rec)
	st.mu.Unlock()
}

func (st *runState) snapshotEvidence() []*models.EvidenceRecord {
	st.mu.Lock()
	defer st.mu.Unlock()
	return append([]*models.EvidenceRecord(nil), st.evidence...)
}

// ExecutePlan runs the plan to completion. A context error aborts dispatch
// and is returned; individual step failures are absorbed by the failure
// policy and reported through the summary.
func (e *Engine) ExecutePlan(ctx context.Context, in Input) (*Result, error) {
	if in.Plan == nil {
		return nil, errors.New("engine: nil plan")
	}
	if err := in.Plan.Validate(); err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}
	start := e.clk.Now()
	st := &runState{in: in, failedSources: make(map[string]bool)}

	sem := semaphore.NewWeighted(int64(e.maxParallel))
	done := make(chan *models.Step)
	running := 0

	for {
		if err := ctx.Err(); err != nil {
			for ; running > 0; running-- {
				<-done
			}
			return e.result(st, start), err
		}
		ready := e.collectReady(st, in.Plan)
		for _, step := range ready {
			if e.gate != nil {
				if err := e.gate.Wait(ctx); err != nil {
					e.failStep(st, step, "canceled while paused")
					continue
				}
			}
			if err := sem.Acquire(ctx, 1); err != nil {
				e.failStep(st, step, "canceled")
				continue
			}
			now := e.clk.Now()
			st.mu.Lock()
			step.Status = models.StepStatusRunning
			step.StartedAt = &now
			st.mu.Unlock()
			e.emit(ctx, st, step, "step.started", map[string]any{"stepType": string(step.Type)})
			running++
			go func(step *models.Step) {
				e.runStep(ctx, st, step)
				sem.Release(1)
				done <- step
			}(step)
		}
		if running == 0 {
			if len(ready) == 0 {
				break
			}
			continue
		}
		step := <-done
		running--
		e.emit(ctx, st, step, "step."+string(step.Status), map[string]any{
			"retries": step.RetryCount,
			"error":   step.LastError,
		})
	}

	return e.result(st, start), nil
}

// collectReady returns pending steps whose dependencies are all terminal,
// skipping steps downstream of an unsatisfied critical dependency. A
// critical step that was itself skipped counts as failed here, so dooming
// propagates down a chain. The run lock orders the scan against step
// goroutines finishing and the adapter appending replacement steps.
func (e *Engine) collectReady(st *runState, plan *models.Plan) []*models.Step {
	st.mu.Lock()
	defer st.mu.Unlock()
	var ready []*models.Step
	for _, step := range plan.Steps {
		if step.Status != models.StepStatusPending {
			continue
		}
		blocked, doomed := false, false
		for _, dep := range step.Dependencies {
			d := plan.StepByID(dep)
			if !d.Status.Terminal() {
				blocked = true
				break
			}
			if d.Critical && (d.Status == models.StepStatusFailed || d.Status == models.StepStatusSkipped) {
				doomed = true
			}
		}
		if blocked {
			continue
		}
		if doomed {
			now := e.clk.Now()
			step.Status = models.StepStatusSkipped
			step.CompletedAt = &now
			step.LastError = "critical dependency failed"
			continue
		}
		ready = append(ready, step)
	}
	return ready
}

// runStep drives one step through the failure policy until it is terminal.
func (e *Engine) runStep(ctx context.Context, st *runState, step *models.Step) {
	timeout := time.Duration(step.TimeoutMs) * time.Millisecond
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	for attempt := 1; ; attempt++ {
		stepCtx, cancel := context.WithTimeout(ctx, timeout)
		err := e.execute(stepCtx, st, step)
		cancel()
		if err == nil {
			now := e.clk.Now()
			st.mu.Lock()
			step.Status = models.StepStatusComplete
			step.CompletedAt = &now
			st.mu.Unlock()
			return
		}
		if ctx.Err() != nil {
			e.failStep(st, step, "canceled: "+err.Error())
			return
		}

		source := stepSource(step)
		action, delay := decideFailure(err, attempt, step.MaxRetries)
		switch action {
		case actionRetry:
			st.mu.Lock()
			step.RetryCount++
			st.mu.Unlock()
			e.publish(ctx, st, events.Scope{
				AgentID: "engine", ThreadID: st.in.InvestigationID, ItemID: step.ID,
			}.ConnectorRetry(source, attempt, err.Error()))
			e.log.Warn("step retry",
				"investigationId", st.in.InvestigationID, "stepId", step.ID,
				"attempt", attempt, "error", err)
			if sleepErr := e.sleep(ctx, delay); sleepErr != nil {
				e.failStep(st, step, "canceled during backoff")
				return
			}

		case actionSkip:
			now := e.clk.Now()
			st.mu.Lock()
			step.Status = models.StepStatusSkipped
			step.CompletedAt = &now
			step.LastError = err.Error()
			st.mu.Unlock()
			st.addLimitation(fmt.Sprintf("%s skipped: rate limited", source))
			e.publishSourceFailure(ctx, st, step, source, err)
			return

		case actionEscalate:
			e.failStep(st, step, err.Error())
			st.mu.Lock()
			st.requiresReview = true
			st.mu.Unlock()
			st.addLimitation(fmt.Sprintf("%s unavailable: access denied", source))
			e.publishSourceFailure(ctx, st, step, source, err)
			return

		case actionAdapt:
			e.failStep(st, step, err.Error())
			st.mu.Lock()
			if source != "" {
				st.failedSources[source] = true
			}
			st.mu.Unlock()
			st.addLimitation(fmt.Sprintf("%s unavailable", source))
			e.publishSourceFailure(ctx, st, step, source, err)
			e.adapt(ctx, st, step)
			return

		default: // actionFail
			e.failStep(st, step, err.Error())
			return
		}
	}
}

func (e *Engine) failStep(st *runState, step *models.Step, reason string) {
	now := e.clk.Now()
	st.mu.Lock()
	step.Status = models.StepStatusFailed
	step.CompletedAt = &now
	step.LastError = reason
	st.mu.Unlock()
}

// stepSource returns the step's preferred source, used for log and event
// labels; execution itself walks all of DataSources in order.
func stepSource(step *models.Step) string {
	if len(step.DataSources) > 0 {
		return step.DataSources[0]
	}
	return ""
}

// execute dispatches one attempt by step type. Source failovers during the
// attempt are attached to the run's event stream.
func (e *Engine) execute(ctx context.Context, st *runState, step *models.Step) error {
	ctx = connector.WithFailoverObserver(ctx, func(fe connector.FailoverEvent) {
		scope := events.Scope{AgentID: "engine", ThreadID: st.in.InvestigationID, ItemID: step.ID}
		e.publish(ctx, st, scope.ConnectorFailover(string(fe.Kind), fe.From, fe.To, fe.Reason))
	})
	switch step.Type {
	case models.StepTypeQuery:
		return e.executeQuery(ctx, st, step)
	case models.StepTypeEnrich:
		return e.executeEnrich(ctx, st, step)
	case models.StepTypeCorrelate:
		return e.executeCorrelate(ctx, st, step)
	case models.StepTypeValidate:
		return e.executeValidate(ctx, st, step)
	default:
		return connector.NewError(connector.ErrKindValidation, "", fmt.Errorf("unknown step type %q", step.Type))
	}
}

func (e *Engine) executeQuery(ctx context.Context, st *runState, step *models.Step) error {
	if len(step.DataSources) == 0 {
		return connector.NewError(connector.ErrKindValidation, "", errors.New("query step has no data source"))
	}
	req := connector.QueryRequest{
		Query:      stringPayload(step.Payload, "query"),
		DataType:   stringPayload(step.Payload, "dataType"),
		MaxRecords: defaultMaxRecords,
	}
	if ts := st.in.Alert.Timestamp; !ts.IsZero() {
		req.TimeFrom = ts.Add(-queryWindow)
		req.TimeTo = ts.Add(queryWindow)
	}

	// Sources are tried in plan order; the attempt fails only when every
	// listed source does, and the last error drives the failure policy.
	var result *connector.QueryResult
	for i, source := range step.DataSources {
		res, err := e.sources.Query(ctx, st.in.TenantID, connector.Kind(source), req)
		if err != nil {
			if ctx.Err() != nil || i == len(step.DataSources)-1 {
				return err
			}
			continue
		}
		if !res.Complete {
			st.addLimitation(fmt.Sprintf("%s results truncated", source))
		}
		result = res
		break
	}

	now := e.clk.Now()
	for _, rec := range result.Records {
		entities := MergeEntities(ExtractEntities(rec.Fields), result.Entities)
		ev := &models.EvidenceRecord{
			ID:              uuid.NewString(),
			InvestigationID: st.in.InvestigationID,
			TenantID:        st.in.TenantID,
			StepID:          step.ID,
			Type:            evidenceTypeFor(req.DataType),
			Source:          result.Connector,
			Timestamp:       rec.Timestamp,
			Payload:         rec.Fields,
			Entities:        entities,
			Confidence:      0.6,
			CreatedAt:       now,
		}
		if ev.Timestamp.IsZero() {
			ev.Timestamp = result.QueriedAt
		}
		e.storeEvidence(ctx, st, step, ev)
	}
	return nil
}

func (e *Engine) executeEnrich(ctx context.Context, st *runState, step *models.Step) error {
	if len(step.DataSources) == 0 {
		return connector.NewError(connector.ErrKindValidation, "", errors.New("enrich step has no data source"))
	}
	targets := entityTargets(step.Payload)
	if len(targets) == 0 {
		return nil
	}

	now := e.clk.Now()
	for _, target := range targets {
		var enr *connector.Enrichment
		var err error
		for _, source := range step.DataSources {
			enr, err = e.sources.Enrich(ctx, st.in.TenantID, connector.Kind(source), target.kind, target.value)
			if err == nil || connector.KindOf(err) == connector.ErrKindNotFound || ctx.Err() != nil {
				break
			}
		}
		if err != nil {
			if connector.KindOf(err) == connector.ErrKindNotFound {
				continue
			}
			return err
		}
		payload := map[string]any{
			"verdict":    enr.Verdict,
			"confidence": enr.Confidence,
		}
		for k, v := range enr.Attributes {
			payload[k] = v
		}
		e.storeEvidence(ctx, st, step, &models.EvidenceRecord{
			ID:              uuid.NewString(),
			InvestigationID: st.in.InvestigationID,
			TenantID:        st.in.TenantID,
			StepID:          step.ID,
			Type:            models.EvidenceTypeEnrichment,
			Source:          enr.Source,
			Timestamp:       now,
			Payload:         payload,
			Entities:        map[string][]string{target.kind: {target.value}},
			Confidence:      enr.Confidence,
			CreatedAt:       now,
		})
	}
	return nil
}

func (e *Engine) executeCorrelate(ctx context.Context, st *runState, step *models.Step) error {
	records := st.snapshotEvidence()
	links := e.correlator.Correlate(records)

	// Re-score with the link graph so relevance reflects corroboration.
	now := e.clk.Now()
	for _, rec := range records {
		score := e.scorer.Score(rec, links, now)
		rec.QualityScore = score.Overall
		rec.ScoreBreakdown = score.Breakdown
	}

	st.mu.Lock()
	st.links = links
	st.mu.Unlock()

	if e.sink != nil && len(links) > 0 {
		if err := e.sink.SaveRelationships(ctx, st.in.InvestigationID, links); err != nil {
			return err
		}
	}
	e.emit(ctx, st, step, "correlation", map[string]any{"links": len(links)})
	return nil
}

// executeValidate checks the sufficiency criteria. An unmet criterion does
// not fail the step; it flags the investigation for review.
func (e *Engine) executeValidate(ctx context.Context, st *runState, step *models.Step) error {
	st.mu.Lock()
	count := len(st.evidence)
	var qualitySum float64
	for _, rec := range st.evidence {
		qualitySum += rec.QualityScore
	}
	st.mu.Unlock()

	var unmet []string
	if min := intPayload(step.Payload, "evidenceCount"); min > 0 && count < min {
		unmet = append(unmet, fmt.Sprintf("evidence count %d below required %d", count, min))
	}
	if threshold := floatPayload(step.Payload, "confidenceThreshold"); threshold > 0 {
		var mean float64
		if count > 0 {
			mean = qualitySum / float64(count)
		}
		if mean < threshold {
			unmet = append(unmet, fmt.Sprintf("mean evidence quality %.2f below %.2f", mean, threshold))
		}
	}
	if kind := stringPayload(step.Payload, "entityPresence"); kind != "" && !e.hasEntityKind(st, kind) {
		unmet = append(unmet, fmt.Sprintf("no %s entity observed", kind))
	}

	if len(unmet) > 0 {
		st.mu.Lock()
		st.requiresReview = true
		st.mu.Unlock()
		st.addLimitation("validation criteria unmet: " + strings.Join(unmet, "; "))
	}
	e.emit(ctx, st, step, "validation", map[string]any{"unmet": unmet})
	return nil
}

func (e *Engine) hasEntityKind(st *runState, kind string) bool {
	st.mu.Lock()
	defer st.mu.Unlock()
	for _, rec := range st.evidence {
		if len(rec.Entities[kind]) > 0 {
			return true
		}
	}
	return false
}

func (e *Engine) storeEvidence(ctx context.Context, st *runState, step *models.Step, rec *models.EvidenceRecord) {
	score := e.scorer.Score(rec, nil, e.clk.Now())
	rec.QualityScore = score.Overall
	rec.ScoreBreakdown = score.Breakdown
	st.addEvidence(rec)
	if e.sink != nil {
		if err := e.sink.SaveEvidence(ctx, rec); err != nil {
			e.log.Error("evidence persist failed",
				"investigationId", st.in.InvestigationID, "evidenceId", rec.ID, "error", err)
		}
	}
	e.emit(ctx, st, step, "evidence", map[string]any{
		"evidenceId": rec.ID,
		"source":     rec.Source,
		"quality":    rec.QualityScore,
	})
}

// adapt replaces a terminally-failed query step with one against an
// alternative source, at most once per step lineage. When enough of the
// plan has failed it instead drops the failing sources outright.
func (e *Engine) adapt(ctx context.Context, st *runState, failed *models.Step) {
	plan := st.in.Plan
	scope := events.Scope{AgentID: "engine", ThreadID: st.in.InvestigationID, ItemID: failed.ID}

	if failed.Type == models.StepTypeQuery && failed.AdaptedFrom == "" {
		if alt := e.alternativeSource(st, plan, failed); alt != "" {
			replacement := &models.Step{
				ID:           failed.ID + "-adapted",
				Name:         fmt.Sprintf("Query %s (adapted from %s)", alt, stepSource(failed)),
				Type:         models.StepTypeQuery,
				Dependencies: append([]string(nil), failed.Dependencies...),
				Payload:      failed.Payload,
				DataSources:  []string{alt},
				TimeoutMs:    failed.TimeoutMs,
				MaxRetries:   failed.MaxRetries,
				Status:       models.StepStatusPending,
				AdaptedFrom:  failed.ID,
			}
			st.mu.Lock()
			plan.Steps = append(plan.Steps, replacement)
			for _, s := range plan.Steps {
				if s == replacement || s.Status.Terminal() {
					continue
				}
				for _, dep := range s.Dependencies {
					if dep == failed.ID {
						s.Dependencies = append(s.Dependencies, replacement.ID)
						break
					}
				}
			}
			st.adaptations = append(st.adaptations,
				fmt.Sprintf("replaced %s with %s", failed.ID, replacement.ID))
			st.mu.Unlock()
			e.publish(ctx, st, scope.PlanAdapted(
				fmt.Sprintf("%s unavailable", stepSource(failed)),
				[]string{stepSource(failed)},
				[]string{failed.ID},
			))
			return
		}
	}

	// Bulk adaptation: with most of the plan failing, stop waiting on the
	// failed sources and let the remaining steps finish.
	st.mu.Lock()
	failedCount := 0
	for _, s := range plan.Steps {
		if s.Status == models.StepStatusFailed {
			failedCount++
		}
	}
	trigger := !st.bulkAdapted && (failedCount >= 3 || failedCount*2 >= len(plan.Steps))
	var dropped []string
	if trigger {
		st.bulkAdapted = true
		for _, s := range plan.Steps {
			if s.Status != models.StepStatusPending || !st.failedSources[stepSource(s)] {
				continue
			}
			now := e.clk.Now()
			s.Status = models.StepStatusSkipped
			s.CompletedAt = &now
			s.LastError = "source dropped after repeated failures"
			dropped = append(dropped, s.ID)
		}
		sources := make([]string, 0, len(st.failedSources))
		for src := range st.failedSources {
			sources = append(sources, src)
		}
		sort.Strings(sources)
		st.adaptations = append(st.adaptations,
			"dropped sources "+strings.Join(sources, ", "))
		st.mu.Unlock()
		e.publish(ctx, st, scope.PlanAdapted("repeated source failures", sources, dropped))
		return
	}
	st.mu.Unlock()
}

// alternativeSource picks a healthy source kind no query step has used yet.
func (e *Engine) alternativeSource(st *runState, plan *models.Plan, failed *models.Step) string {
	st.mu.Lock()
	defer st.mu.Unlock()
	used := make(map[string]bool)
	for _, s := range plan.Steps {
		if s.Type == models.StepTypeQuery {
			used[stepSource(s)] = true
		}
	}
	candidates := append([]string(nil), st.in.AvailableSources...)
	sort.Strings(candidates)
	for _, src := range candidates {
		if src == "threat_intel" || used[src] || st.failedSources[src] {
			continue
		}
		return src
	}
	return ""
}

func (e *Engine) result(st *runState, start time.Time) *Result {
	st.mu.Lock()
	defer st.mu.Unlock()

	var summary models.ExecutionSummary
	summary.TotalSteps = len(st.in.Plan.Steps)
	for _, s := range st.in.Plan.Steps {
		switch s.Status {
		case models.StepStatusComplete:
			summary.CompletedSteps++
		case models.StepStatusFailed:
			summary.FailedSteps++
		}
	}
	if summary.TotalSteps > 0 {
		summary.SuccessRate = float64(summary.CompletedSteps) / float64(summary.TotalSteps)
	}
	summary.TotalEvidence = len(st.evidence)
	summary.ExecutionTimeMs = e.clk.Since(start).Milliseconds()
	summary.Adaptations = append([]string(nil), st.adaptations...)

	limitations := append([]string(nil), st.limitations...)
	sort.Strings(limitations)
	summary.Limitations = limitations

	return &Result{
		Summary:        summary,
		Evidence:       append([]*models.EvidenceRecord(nil), st.evidence...),
		Links:          append([]models.Relationship(nil), st.links...),
		RequiresReview: st.requiresReview,
	}
}

// emit publishes an item/<type> event for the step. A closed or absent
// publisher never blocks execution.
func (e *Engine) emit(ctx context.Context, st *runState, step *models.Step, itemType string, extra map[string]any) {
	if itemType == "" {
		return
	}
	scope := events.Scope{AgentID: "engine", ThreadID: st.in.InvestigationID, ItemID: step.ID}
	if extra == nil {
		extra = map[string]any{}
	}
	extra["stepId"] = step.ID
	e.publish(ctx, st, scope.Item(itemType, extra))
}

func (e *Engine) publishSourceFailure(ctx context.Context, st *runState, step *models.Step, source string, err error) {
	scope := events.Scope{AgentID: "engine", ThreadID: st.in.InvestigationID, ItemID: step.ID}
	e.publish(ctx, st, scope.DataSourceFailure(step.ID, source, err.Error()))
}

func (e *Engine) publish(ctx context.Context, st *runState, ev *events.Envelope) {
	if e.events == nil || ev == nil {
		return
	}
	if _, err := e.events.Publish(ctx, st.in.InvestigationID, ev); err != nil {
		e.log.Warn("event publish failed",
			"investigationId", st.in.InvestigationID, "method", ev.Method, "error", err)
	}
}

func stringPayload(payload map[string]any, key string) string {
	v, _ := payload[key].(string)
	return v
}

func intPayload(payload map[string]any, key string) int {
	switch v := payload[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return 0
}

func floatPayload(payload map[string]any, key string) float64 {
	switch v := payload[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	}
	return 0
}

type entityTarget struct {
	kind  string
	value string
}

// entityTargets reads the enrich payload's entity map, tolerating both the
// planner's typed map and a JSON-roundtripped one.
func entityTargets(payload map[string]any) []entityTarget {
	var out []entityTarget
	switch m := payload["entities"].(type) {
	case map[string]string:
		for kind, value := range m {
			out = append(out, entityTarget{kind, value})
		}
	case map[string]any:
		for kind, raw := range m {
			if value, ok := raw.(string); ok && value != "" {
				out = append(out, entityTarget{kind, value})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].kind < out[j].kind })
	return out
}

func evidenceTypeFor(dataType string) models.EvidenceType {
	switch dataType {
	case "process":
		return models.EvidenceTypeProcess
	case "network":
		return models.EvidenceTypeNetwork
	case "file":
		return models.EvidenceTypeFile
	case "log", "auth":
		return models.EvidenceTypeLog
	case "alert":
		return models.EvidenceTypeAlert
	default:
		return models.EvidenceTypeOther
	}
}
