package agent

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NeoCh3n/NeonharbourSecurity-sub001/pkg/models"
)

func planningContext(sources ...string) *Context {
	return &Context{
		TenantID:        "tenant-1",
		InvestigationID: "inv-1",
		Alert: models.Alert{
			ID:       "alert-1",
			TenantID: "tenant-1",
			Severity: models.SeverityHigh,
			Payload: map[string]any{
				"src_ip":    "192.168.1.100",
				"dst_ip":    "10.0.0.5",
				"process":   "powershell.exe",
				"file_hash": "abc123def456",
				"domain":    "suspicious.com",
			},
		},
		AvailableSources: sources,
	}
}

func stepsOfType(p *models.Plan, t models.StepType) []*models.Step {
	var out []*models.Step
	for _, s := range p.Steps {
		if s.Type == t {
			out = append(out, s)
		}
	}
	return out
}

func TestPlanHasQueryAndCorrelateSteps(t *testing.T) {
	p := NewPlanner(PlannerOptions{})
	plan, err := p.Plan(context.Background(), planningContext("siem", "edr", "threat_intel"))
	require.NoError(t, err)
	require.NoError(t, plan.Validate())

	queries := stepsOfType(plan, models.StepTypeQuery)
	assert.GreaterOrEqual(t, len(queries), 1)
	assert.Len(t, stepsOfType(plan, models.StepTypeCorrelate), 1)
	assert.Len(t, stepsOfType(plan, models.StepTypeValidate), 1)

	// Queries carry their source and a concrete query string.
	for _, q := range queries {
		assert.NotEmpty(t, q.DataSources)
		assert.NotEmpty(t, q.Payload["query"])
	}
}

func TestCorrelateDependsOnAllGatheringSteps(t *testing.T) {
	p := NewPlanner(PlannerOptions{})
	plan, err := p.Plan(context.Background(), planningContext("siem", "edr", "threat_intel"))
	require.NoError(t, err)

	correlate := stepsOfType(plan, models.StepTypeCorrelate)[0]
	assert.True(t, correlate.Critical)

	gathering := 0
	for _, s := range plan.Steps {
		if s.Type == models.StepTypeQuery || s.Type == models.StepTypeEnrich {
			gathering++
			assert.Contains(t, correlate.Dependencies, s.ID)
		}
	}
	assert.Len(t, correlate.Dependencies, gathering)

	validate := stepsOfType(plan, models.StepTypeValidate)[0]
	assert.Equal(t, []string{correlate.ID}, validate.Dependencies)
}

func TestEnrichStepOnlyWithThreatIntelAndIndicators(t *testing.T) {
	p := NewPlanner(PlannerOptions{})

	plan, err := p.Plan(context.Background(), planningContext("siem", "edr", "threat_intel"))
	require.NoError(t, err)
	require.Len(t, stepsOfType(plan, models.StepTypeEnrich), 1)
	enrich := stepsOfType(plan, models.StepTypeEnrich)[0]
	assert.Equal(t, []string{"threat_intel"}, enrich.DataSources)

	// No threat intel source: no enrich step.
	plan, err = p.Plan(context.Background(), planningContext("siem", "edr"))
	require.NoError(t, err)
	assert.Empty(t, stepsOfType(plan, models.StepTypeEnrich))

	// Threat intel available but nothing to look up.
	ctx := planningContext("siem", "threat_intel")
	ctx.Alert.Payload = map[string]any{"message": "something"}
	plan, err = p.Plan(context.Background(), ctx)
	require.NoError(t, err)
	assert.Empty(t, stepsOfType(plan, models.StepTypeEnrich))
}

func TestPlanStampsTimeoutsAndRetries(t *testing.T) {
	p := NewPlanner(PlannerOptions{})
	plan, err := p.Plan(context.Background(), planningContext("siem"))
	require.NoError(t, err)
	for _, s := range plan.Steps {
		assert.Equal(t, int64(5000), s.TimeoutMs)
		assert.Equal(t, 2, s.MaxRetries)
		assert.Equal(t, models.StepStatusPending, s.Status)
	}
}

func TestPlanIsDeterministic(t *testing.T) {
	p := NewPlanner(PlannerOptions{})
	a, err := p.Plan(context.Background(), planningContext("edr", "siem", "threat_intel"))
	require.NoError(t, err)
	b, err := p.Plan(context.Background(), planningContext("threat_intel", "siem", "edr"))
	require.NoError(t, err)
	assert.Equal(t, a, b, "source ordering must not change the plan")
}

func TestPlanRequiresSources(t *testing.T) {
	p := NewPlanner(PlannerOptions{})
	_, err := p.Plan(context.Background(), planningContext())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no data sources")
}

func TestPlannerValidate(t *testing.T) {
	p := NewPlanner(PlannerOptions{})
	v := p.Validate(&Context{})
	assert.False(t, v.Valid)
	assert.Len(t, v.Errors, 3)
}
