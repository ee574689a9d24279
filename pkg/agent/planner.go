package agent

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/NeoCh3n/NeonharbourSecurity-sub001/pkg/models"
)

// Planner turns an alert into a step DAG: one query step per available
// data-source kind, enrichment for indicator entities, then a correlate
// step and a validate step gated on the gathering steps.
type Planner struct {
	BaseAgent
	stepTimeout time.Duration
	maxRetries  int
}

// PlannerOptions tunes the plans the planner emits.
type PlannerOptions struct {
	Base BaseOptions
	// StepTimeout is stamped on every generated step (default 5s).
	StepTimeout time.Duration
	// StepMaxRetries is stamped on every generated step (default 2).
	StepMaxRetries int
}

// NewPlanner creates a planner.
func NewPlanner(opts PlannerOptions) *Planner {
	if opts.StepTimeout <= 0 {
		opts.StepTimeout = 5 * time.Second
	}
	if opts.StepMaxRetries <= 0 {
		opts.StepMaxRetries = 2
	}
	return &Planner{
		BaseAgent:   NewBase("planner", opts.Base),
		stepTimeout: opts.StepTimeout,
		maxRetries:  opts.StepMaxRetries,
	}
}

// Validate checks the planning context.
func (p *Planner) Validate(agentCtx *Context) ValidationResult {
	var errs []string
	if agentCtx.TenantID == "" {
		errs = append(errs, "tenantId is required")
	}
	if agentCtx.Alert.ID == "" {
		errs = append(errs, "alert id is required")
	}
	if len(agentCtx.AvailableSources) == 0 {
		errs = append(errs, "no data sources available for planning")
	}
	return validation(errs)
}

// Plan produces the investigation plan. Deterministic: the same alert and
// source set always yield the same plan shape.
func (p *Planner) Plan(ctx context.Context, agentCtx *Context) (*models.Plan, error) {
	if v := p.Validate(agentCtx); !v.Valid {
		return nil, fmt.Errorf("planner validation: %v", v.Errors)
	}
	out, _, err := p.run(ctx, func(context.Context) (any, error) {
		return p.buildPlan(agentCtx)
	})
	if err != nil {
		return nil, err
	}
	return out.(*models.Plan), nil
}

func (p *Planner) buildPlan(agentCtx *Context) (*models.Plan, error) {
	sources := append([]string(nil), agentCtx.AvailableSources...)
	sort.Strings(sources)

	plan := &models.Plan{
		ID:              "plan-" + agentCtx.InvestigationID,
		InvestigationID: agentCtx.InvestigationID,
	}

	newStep := func(id, name string, typ models.StepType, deps []string, payload map[string]any, dataSources []string) *models.Step {
		return &models.Step{
			ID:           id,
			Name:         name,
			Type:         typ,
			Dependencies: deps,
			Payload:      payload,
			DataSources:  dataSources,
			TimeoutMs:    p.stepTimeout.Milliseconds(),
			MaxRetries:   p.maxRetries,
			Status:       models.StepStatusPending,
		}
	}

	// One query step per source family, all independent.
	var gatherIDs []string
	for _, src := range sources {
		if src == "threat_intel" {
			continue // threat intel serves the enrich step below
		}
		id := "query-" + src
		plan.Steps = append(plan.Steps, newStep(
			id,
			fmt.Sprintf("Query %s for alert activity", src),
			models.StepTypeQuery,
			nil,
			map[string]any{
				"alertId":  agentCtx.Alert.ID,
				"query":    queryFor(src, agentCtx.Alert),
				"dataType": dataTypeFor(src),
			},
			[]string{src},
		))
		gatherIDs = append(gatherIDs, id)
	}

	// Indicator enrichment when a threat-intel source exists and the alert
	// carries indicator entities. Depends on queries so extracted entities
	// are available too.
	if containsSource(sources, "threat_intel") && len(indicatorEntities(agentCtx.Alert)) > 0 {
		id := "enrich-indicators"
		plan.Steps = append(plan.Steps, newStep(
			id,
			"Enrich alert indicators",
			models.StepTypeEnrich,
			append([]string(nil), gatherIDs...),
			map[string]any{"entities": indicatorEntities(agentCtx.Alert)},
			[]string{"threat_intel"},
		))
		gatherIDs = append(gatherIDs, id)
	}

	if len(gatherIDs) == 0 {
		return nil, fmt.Errorf("no gathering steps possible with sources %v", sources)
	}

	correlate := newStep(
		"correlate-evidence",
		"Correlate gathered evidence",
		models.StepTypeCorrelate,
		append([]string(nil), gatherIDs...),
		nil,
		nil,
	)
	correlate.Critical = true
	plan.Steps = append(plan.Steps, correlate)

	plan.Steps = append(plan.Steps, newStep(
		"validate-evidence",
		"Validate evidence sufficiency",
		models.StepTypeValidate,
		[]string{correlate.ID},
		map[string]any{
			"evidenceCount":       1,
			"confidenceThreshold": 0.3,
		},
		nil,
	))

	if err := plan.Validate(); err != nil {
		return nil, fmt.Errorf("generated invalid plan: %w", err)
	}
	return plan, nil
}

func queryFor(source string, alert models.Alert) string {
	switch source {
	case "edr":
		if host := stringField(alert.Payload, "hostname"); host != "" {
			return "host:" + host
		}
		if proc := stringField(alert.Payload, "process"); proc != "" {
			return "process:" + proc
		}
		return "alert:" + alert.ID
	default: // siem and custom families
		if ip := stringField(alert.Payload, "src_ip"); ip != "" {
			return "src_ip:" + ip
		}
		return "alert:" + alert.ID
	}
}

func dataTypeFor(source string) string {
	if source == "edr" {
		return "process"
	}
	return "network"
}

// indicatorEntities picks the alert entity kinds worth a reputation lookup.
func indicatorEntities(alert models.Alert) map[string]string {
	out := make(map[string]string)
	for _, kind := range []string{"ip", "domain", "hash"} {
		if values := alert.Entities[kind]; len(values) > 0 {
			sorted := append([]string(nil), values...)
			sort.Strings(sorted)
			out[kind] = sorted[0]
		}
	}
	// Fall back to well-known payload fields when extraction hasn't run.
	if len(out) == 0 {
		for field, kind := range map[string]string{"src_ip": "ip", "domain": "domain", "file_hash": "hash"} {
			if v := stringField(alert.Payload, field); v != "" {
				out[kind] = v
			}
		}
	}
	return out
}

func containsSource(sources []string, want string) bool {
	for _, s := range sources {
		if s == want {
			return true
		}
	}
	return false
}

func stringField(payload map[string]any, key string) string {
	v, _ := payload[key].(string)
	return v
}
