package agent

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunSucceedsFirstAttempt(t *testing.T) {
	a := NewBase("test", BaseOptions{})
	out, attempts, err := a.run(context.Background(), func(context.Context) (any, error) {
		return "ok", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", out)
	assert.Equal(t, 1, attempts)

	m := a.Metrics()
	assert.Equal(t, int64(1), m.TotalExecutions)
	assert.Equal(t, int64(1), m.Successful)
	assert.Equal(t, 1.0, m.SuccessRate)
}

func TestRunRetriesTransientFailure(t *testing.T) {
	a := NewBase("test", BaseOptions{BackoffBase: time.Millisecond})
	calls := 0
	out, attempts, err := a.run(context.Background(), func(context.Context) (any, error) {
		calls++
		if calls < 3 {
			return nil, errors.New("transient")
		}
		return calls, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, out)
	assert.Equal(t, 3, attempts)
	assert.Equal(t, int64(2), a.Metrics().Retries)
}

func TestRunExhaustsRetries(t *testing.T) {
	a := NewBase("test", BaseOptions{MaxRetries: 2, BackoffBase: time.Millisecond})
	boom := errors.New("boom")
	_, attempts, err := a.run(context.Background(), func(context.Context) (any, error) {
		return nil, boom
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "test failed after 3 attempts")
	assert.Equal(t, 3, attempts)

	m := a.Metrics()
	assert.Equal(t, int64(1), m.Failed)
	assert.Equal(t, 0.0, m.SuccessRate)
}

func TestRunCancellationIsTerminal(t *testing.T) {
	a := NewBase("test", BaseOptions{MaxRetries: 5, BackoffBase: time.Millisecond})
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	_, _, err := a.run(ctx, func(context.Context) (any, error) {
		calls++
		cancel()
		return nil, context.Canceled
	})
	require.Error(t, err)
	assert.Equal(t, 1, calls, "cancellation must not be retried")
}

func TestRunPerAttemptTimeout(t *testing.T) {
	a := NewBase("test", BaseOptions{ExecTimeout: 10 * time.Millisecond, MaxRetries: 1, BackoffBase: time.Millisecond})
	_, attempts, err := a.run(context.Background(), func(ctx context.Context) (any, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, 2, attempts, "attempt timeout is retryable")
}

func TestAgentNames(t *testing.T) {
	assert.Equal(t, "planner", NewPlanner(PlannerOptions{}).Name())
	assert.Equal(t, "analyst", NewAnalyst(BaseOptions{}).Name())
	assert.Equal(t, "responder", NewResponder(BaseOptions{}).Name())
}
