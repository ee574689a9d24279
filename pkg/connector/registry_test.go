package connector

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memConfig(id string, kind Kind, priority int) Config {
	return Config{
		ID:       id,
		Kind:     kind,
		TenantID: "tenant-1",
		Priority: priority,
	}
}

func addMemory(t *testing.T, r *Registry, cfg Config) *MemoryConnector {
	t.Helper()
	mem := NewMemory(cfg.Kind)
	_, err := r.AddInstance(context.Background(), cfg, mem)
	require.NoError(t, err)
	return mem
}

func TestQueryPrefersLowerPriority(t *testing.T) {
	r := NewRegistry(RegistryOptions{})
	primary := addMemory(t, r, memConfig("siem-primary", KindSIEM, 1))
	secondary := addMemory(t, r, memConfig("siem-secondary", KindSIEM, 2))

	res, err := r.Query(context.Background(), "tenant-1", KindSIEM, QueryRequest{Query: "any"})
	require.NoError(t, err)
	assert.Equal(t, "siem-primary", res.Connector)
	assert.Equal(t, 1, primary.Queries())
	assert.Equal(t, 0, secondary.Queries())
}

func TestQueryFailsOverOnTransientError(t *testing.T) {
	var failovers []FailoverEvent
	r := NewRegistry(RegistryOptions{
		OnFailover: func(e FailoverEvent) { failovers = append(failovers, e) },
	})
	primary := addMemory(t, r, memConfig("siem-primary", KindSIEM, 1))
	addMemory(t, r, memConfig("siem-secondary", KindSIEM, 2))

	primary.FailQueries(NewError(ErrKindNetworkTransient, "siem-primary", errors.New("conn reset")))

	res, err := r.Query(context.Background(), "tenant-1", KindSIEM, QueryRequest{Query: "any"})
	require.NoError(t, err)
	assert.Equal(t, "siem-secondary", res.Connector)

	require.Len(t, failovers, 1)
	assert.Equal(t, "siem-primary", failovers[0].From)
	assert.Equal(t, "siem-secondary", failovers[0].To)
	assert.Equal(t, string(ErrKindNetworkTransient), failovers[0].Reason)
}

func TestQueryDoesNotFailOverOnValidationError(t *testing.T) {
	r := NewRegistry(RegistryOptions{})
	primary := addMemory(t, r, memConfig("siem-primary", KindSIEM, 1))
	secondary := addMemory(t, r, memConfig("siem-secondary", KindSIEM, 2))

	primary.FailQueries(NewError(ErrKindValidation, "siem-primary", errors.New("bad query")))

	_, err := r.Query(context.Background(), "tenant-1", KindSIEM, QueryRequest{Query: "bad"})
	require.Error(t, err)
	assert.Equal(t, ErrKindValidation, KindOf(err))
	assert.Equal(t, 0, secondary.Queries())
}

func TestQueryExhaustionWrapsNoConnector(t *testing.T) {
	r := NewRegistry(RegistryOptions{})
	a := addMemory(t, r, memConfig("siem-a", KindSIEM, 1))
	b := addMemory(t, r, memConfig("siem-b", KindSIEM, 2))
	a.FailQueries(NewError(ErrKindServer, "siem-a", errors.New("500")))
	b.FailQueries(NewError(ErrKindServer, "siem-b", errors.New("500")))

	_, err := r.Query(context.Background(), "tenant-1", KindSIEM, QueryRequest{Query: "any"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoConnector)
}

func TestQueryNoInstancesForKind(t *testing.T) {
	r := NewRegistry(RegistryOptions{})
	addMemory(t, r, memConfig("siem-a", KindSIEM, 1))

	_, err := r.Query(context.Background(), "tenant-1", KindEDR, QueryRequest{})
	assert.ErrorIs(t, err, ErrNoConnector)
}

func TestUnhealthyInstanceExcluded(t *testing.T) {
	r := NewRegistry(RegistryOptions{})
	primary := addMemory(t, r, memConfig("siem-primary", KindSIEM, 1))
	addMemory(t, r, memConfig("siem-secondary", KindSIEM, 2))

	r.SetHealth("tenant-1", "siem-primary", HealthUnhealthy)

	res, err := r.Query(context.Background(), "tenant-1", KindSIEM, QueryRequest{Query: "any"})
	require.NoError(t, err)
	assert.Equal(t, "siem-secondary", res.Connector)
	assert.Equal(t, 0, primary.Queries())
}

func TestTenantIsolation(t *testing.T) {
	r := NewRegistry(RegistryOptions{})
	addMemory(t, r, memConfig("siem-a", KindSIEM, 1))

	otherCfg := memConfig("siem-other", KindSIEM, 1)
	otherCfg.TenantID = "tenant-2"
	other := addMemory(t, r, otherCfg)

	res, err := r.Query(context.Background(), "tenant-1", KindSIEM, QueryRequest{Query: "any"})
	require.NoError(t, err)
	assert.Equal(t, "siem-a", res.Connector)
	assert.Equal(t, 0, other.Queries(), "another tenant's connector must never serve the query")

	_, err = r.Query(context.Background(), "tenant-3", KindSIEM, QueryRequest{})
	assert.ErrorIs(t, err, ErrNoConnector)
}

func TestRoundRobinAcrossEqualPriority(t *testing.T) {
	r := NewRegistry(RegistryOptions{})
	addMemory(t, r, memConfig("siem-a", KindSIEM, 1))
	addMemory(t, r, memConfig("siem-b", KindSIEM, 1))

	seen := make(map[string]int)
	for i := 0; i < 10; i++ {
		res, err := r.Query(context.Background(), "tenant-1", KindSIEM, QueryRequest{Query: "any"})
		require.NoError(t, err)
		seen[res.Connector]++
	}
	assert.Equal(t, 5, seen["siem-a"])
	assert.Equal(t, 5, seen["siem-b"])
}

func TestRateLimitedInstanceReportsRetryAfter(t *testing.T) {
	r := NewRegistry(RegistryOptions{})
	cfg := memConfig("siem-a", KindSIEM, 1)
	cfg.Rate = RateConfig{RequestsPerMinute: 1}
	addMemory(t, r, cfg)

	_, err := r.Query(context.Background(), "tenant-1", KindSIEM, QueryRequest{Query: "any"})
	require.NoError(t, err)

	_, err = r.Query(context.Background(), "tenant-1", KindSIEM, QueryRequest{Query: "any"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoConnector)
	assert.Greater(t, RetryAfterOf(err), time.Duration(0))
}

func TestBreakerOpensAndFailsFast(t *testing.T) {
	r := NewRegistry(RegistryOptions{
		Breaker: BreakerConfig{FailureThreshold: 2, RecoveryTimeout: time.Minute},
	})
	mem := addMemory(t, r, memConfig("edr-a", KindEDR, 1))
	mem.FailQueries(NewError(ErrKindServer, "edr-a", errors.New("500")))

	inst, err := r.Get("tenant-1", "edr-a")
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		_, err := inst.Query(context.Background(), QueryRequest{})
		require.Error(t, err)
	}
	assert.Equal(t, "open", string(inst.BreakerState()))

	// Backend never sees the third call.
	before := mem.Queries()
	_, err = inst.Query(context.Background(), QueryRequest{})
	require.Error(t, err)
	assert.Equal(t, ErrKindCircuitOpen, KindOf(err))
	assert.Equal(t, before, mem.Queries())
}

func TestEnrichFailsOver(t *testing.T) {
	r := NewRegistry(RegistryOptions{})
	primary := addMemory(t, r, memConfig("ti-a", KindThreatIntel, 1))
	secondary := addMemory(t, r, memConfig("ti-b", KindThreatIntel, 2))
	secondary.SeedEnrichment(Enrichment{
		Entity: "203.0.113.9", EntityKind: "ip", Verdict: "malicious", Confidence: 0.95,
	})
	primary.FailEnrich(NewError(ErrKindTimeout, "ti-a", errors.New("deadline")))

	e, err := r.Enrich(context.Background(), "tenant-1", KindThreatIntel, "ip", "203.0.113.9")
	require.NoError(t, err)
	assert.Equal(t, "malicious", e.Verdict)
	assert.Equal(t, "ti-b", e.Source)
}

func TestRemoveShutsDownInstance(t *testing.T) {
	r := NewRegistry(RegistryOptions{})
	mem := addMemory(t, r, memConfig("siem-a", KindSIEM, 1))

	require.NoError(t, r.Remove(context.Background(), "tenant-1", "siem-a"))
	assert.True(t, mem.IsShutdown())

	_, err := r.Get("tenant-1", "siem-a")
	assert.Equal(t, ErrKindConnectorNotFound, KindOf(err))
}

func TestAddRequiresFactoryForKind(t *testing.T) {
	r := NewRegistry(RegistryOptions{})
	_, err := r.Add(context.Background(), Config{ID: "x", TenantID: "t", Kind: Kind("unknown")})
	require.Error(t, err)
	assert.Equal(t, ErrKindConnectorNotFound, KindOf(err))
}
