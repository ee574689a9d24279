package breaker

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBoom = errors.New("boom")

func fail() (any, error)    { return nil, errBoom }
func succeed() (any, error) { return "ok", nil }

type changeRecorder struct {
	mu      sync.Mutex
	changes []StateChange
}

func (r *changeRecorder) record(c StateChange) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.changes = append(r.changes, c)
}

func (r *changeRecorder) transitions() []State {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]State, len(r.changes))
	for i, c := range r.changes {
		out[i] = c.To
	}
	return out
}

func trip(t *testing.T, b *Breaker, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		_, err := b.Execute(fail)
		require.Error(t, err)
	}
}

func TestOpensAfterThreshold(t *testing.T) {
	b := New(Config{Name: "siem", FailureThreshold: 3, RecoveryTimeout: time.Minute}, nil)

	trip(t, b, 2)
	assert.Equal(t, StateClosed, b.State())

	trip(t, b, 1)
	assert.Equal(t, StateOpen, b.State())
}

func TestOpenFailsFast(t *testing.T) {
	b := New(Config{Name: "siem", FailureThreshold: 1, RecoveryTimeout: time.Minute}, nil)
	trip(t, b, 1)

	called := false
	_, err := b.Execute(func() (any, error) {
		called = true
		return nil, nil
	})
	assert.ErrorIs(t, err, ErrOpen)
	assert.False(t, called, "fn must not run while open")
}

func TestHalfOpenProbeSuccessCloses(t *testing.T) {
	rec := &changeRecorder{}
	b := New(Config{Name: "edr", FailureThreshold: 1, RecoveryTimeout: 30 * time.Millisecond}, rec.record)
	trip(t, b, 1)
	require.Equal(t, StateOpen, b.State())

	time.Sleep(50 * time.Millisecond)

	out, err := b.Execute(succeed)
	require.NoError(t, err)
	assert.Equal(t, "ok", out)
	assert.Equal(t, StateClosed, b.State())
	assert.Equal(t, []State{StateOpen, StateHalfOpen, StateClosed}, rec.transitions())
}

func TestHalfOpenProbeFailureReopens(t *testing.T) {
	b := New(Config{Name: "edr", FailureThreshold: 1, RecoveryTimeout: 30 * time.Millisecond}, nil)
	trip(t, b, 1)

	time.Sleep(50 * time.Millisecond)

	_, err := b.Execute(fail)
	require.ErrorIs(t, err, errBoom)
	assert.Equal(t, StateOpen, b.State())

	// Still failing fast until the recovery timeout elapses again.
	_, err = b.Execute(succeed)
	assert.ErrorIs(t, err, ErrOpen)
}

func TestResetClosesAndNotifies(t *testing.T) {
	rec := &changeRecorder{}
	b := New(Config{Name: "ti", FailureThreshold: 1, RecoveryTimeout: time.Minute}, rec.record)
	trip(t, b, 1)
	require.Equal(t, StateOpen, b.State())

	b.Reset()
	assert.Equal(t, StateClosed, b.State())

	// Counts are zeroed: a single failure below a fresh threshold must not trip.
	b2 := New(Config{Name: "ti2", FailureThreshold: 2, RecoveryTimeout: time.Minute}, nil)
	trip(t, b2, 1)
	b2.Reset()
	trip(t, b2, 1)
	assert.Equal(t, StateClosed, b2.State())

	last := rec.transitions()
	assert.Equal(t, StateClosed, last[len(last)-1])
}

func TestStateIsFunctionOfEventSequence(t *testing.T) {
	// Two breakers fed the same ordered event sequence end in the same state.
	run := func() State {
		b := New(Config{Name: "x", FailureThreshold: 2, RecoveryTimeout: time.Minute}, nil)
		_, _ = b.Execute(succeed)
		_, _ = b.Execute(fail)
		_, _ = b.Execute(fail)
		return b.State()
	}
	assert.Equal(t, run(), run())
	assert.Equal(t, StateOpen, run())
}
