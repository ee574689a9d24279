package connector

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonitorMarksUnhealthyAfterThreeFailures(t *testing.T) {
	r := NewRegistry(RegistryOptions{})
	mem := addMemory(t, r, memConfig("siem-a", KindSIEM, 1))
	mem.FailHealth(errors.New("connection refused"))

	var notified []HealthStatus
	m := NewHealthMonitor(r, HealthMonitorOptions{
		OnUnhealthy: func(s HealthStatus) { notified = append(notified, s) },
	})

	ctx := context.Background()
	m.CheckAll(ctx)
	state, _ := r.Health("tenant-1", "siem-a")
	assert.Equal(t, HealthDegraded, state, "one failure is degraded, not unhealthy")

	m.CheckAll(ctx)
	state, _ = r.Health("tenant-1", "siem-a")
	assert.Equal(t, HealthDegraded, state)

	m.CheckAll(ctx)
	state, _ = r.Health("tenant-1", "siem-a")
	assert.Equal(t, HealthUnhealthy, state)

	require.Len(t, notified, 1, "unhealthy callback fires once at the crossing")
	assert.Equal(t, "siem-a", notified[0].ConnectorID)
	assert.Equal(t, 3, notified[0].ConsecFails)

	// Further failures stay unhealthy without re-notifying.
	m.CheckAll(ctx)
	assert.Len(t, notified, 1)
}

func TestMonitorRecoveryRestoresSelectionAndBreaker(t *testing.T) {
	r := NewRegistry(RegistryOptions{
		Breaker: BreakerConfig{FailureThreshold: 1, RecoveryTimeout: time.Hour},
	})
	mem := addMemory(t, r, memConfig("siem-a", KindSIEM, 1))
	inst, err := r.Get("tenant-1", "siem-a")
	require.NoError(t, err)

	// Trip the breaker and drive the instance unhealthy.
	mem.FailQueries(NewError(ErrKindServer, "siem-a", errors.New("500")))
	_, _ = inst.Query(context.Background(), QueryRequest{})
	require.Equal(t, "open", string(inst.BreakerState()))

	mem.FailHealth(errors.New("down"))
	m := NewHealthMonitor(r, HealthMonitorOptions{})
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		m.CheckAll(ctx)
	}
	state, _ := r.Health("tenant-1", "siem-a")
	require.Equal(t, HealthUnhealthy, state)

	// Backend comes back: one clean probe restores selection and closes the
	// circuit without waiting out the recovery timeout.
	mem.FailHealth(nil)
	mem.FailQueries(nil)
	m.CheckAll(ctx)

	state, _ = r.Health("tenant-1", "siem-a")
	assert.Equal(t, HealthActive, state)
	assert.Equal(t, "closed", string(inst.BreakerState()))

	res, err := r.Query(ctx, "tenant-1", KindSIEM, QueryRequest{Query: "any"})
	require.NoError(t, err)
	assert.Equal(t, "siem-a", res.Connector)
}

func TestMonitorIsHealthy(t *testing.T) {
	r := NewRegistry(RegistryOptions{})
	m := NewHealthMonitor(r, HealthMonitorOptions{})

	// No instances at all counts as healthy.
	assert.True(t, m.IsHealthy())

	mem := addMemory(t, r, memConfig("siem-a", KindSIEM, 1))
	assert.False(t, m.IsHealthy(), "unprobed instances are not yet healthy")

	m.CheckAll(context.Background())
	assert.True(t, m.IsHealthy())

	mem.FailHealth(errors.New("down"))
	m.CheckAll(context.Background())
	assert.False(t, m.IsHealthy())
}

func TestMonitorStartStop(t *testing.T) {
	r := NewRegistry(RegistryOptions{})
	addMemory(t, r, memConfig("siem-a", KindSIEM, 1))

	m := NewHealthMonitor(r, HealthMonitorOptions{ProbeInterval: 10 * time.Millisecond})
	m.Start(context.Background())
	m.Start(context.Background()) // second Start is a no-op

	require.Eventually(t, func() bool {
		return len(m.Statuses()) == 1
	}, time.Second, 5*time.Millisecond)

	m.Stop()
	assert.Empty(t, m.Statuses(), "Stop clears stale status")

	// Restart works after Stop.
	m.Start(context.Background())
	require.Eventually(t, func() bool {
		return len(m.Statuses()) == 1
	}, time.Second, 5*time.Millisecond)
	m.Stop()
}

func TestProbeTimeoutCountsAsFailure(t *testing.T) {
	r := NewRegistry(RegistryOptions{})
	mem := addMemory(t, r, memConfig("siem-a", KindSIEM, 1))
	mem.SetDelay(100 * time.Millisecond)

	m := NewHealthMonitor(r, HealthMonitorOptions{ProbeTimeout: 10 * time.Millisecond})
	m.CheckAll(context.Background())

	statuses := m.Statuses()
	require.Len(t, statuses, 1)
	for _, s := range statuses {
		assert.Equal(t, 1, s.ConsecFails)
		assert.NotEmpty(t, s.Error)
	}
}
