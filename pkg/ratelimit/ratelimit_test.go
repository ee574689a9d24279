package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NeoCh3n/NeonharbourSecurity-sub001/pkg/clock"
)

func newTestClock() *clock.Fake {
	return clock.NewFake(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
}

func TestSingleWindowExhaustion(t *testing.T) {
	clk := newTestClock()
	l := New(Config{RequestsPerSecond: 3}, clk)

	for i := 0; i < 3; i++ {
		require.True(t, l.CheckRequest().Allowed, "request %d should pass", i)
	}
	d := l.CheckRequest()
	assert.False(t, d.Allowed)
	assert.Greater(t, d.RetryAfter, time.Duration(0))
}

func TestRefillByElapsedTime(t *testing.T) {
	clk := newTestClock()
	l := New(Config{RequestsPerSecond: 2}, clk)

	require.True(t, l.TryConsume(2))
	assert.False(t, l.CheckRequest().Allowed)

	clk.Advance(time.Second)
	assert.True(t, l.CheckRequest().Allowed)
}

func TestAllWindowsMustPermit(t *testing.T) {
	clk := newTestClock()
	// Generous per-second window, tight per-minute window.
	l := New(Config{RequestsPerSecond: 100, RequestsPerMinute: 2}, clk)

	require.True(t, l.CheckRequest().Allowed)
	require.True(t, l.CheckRequest().Allowed)

	d := l.CheckRequest()
	require.False(t, d.Allowed, "minute window should reject")
	// Retry-after must come from the exhausted minute window, not the
	// still-open second window.
	assert.Greater(t, d.RetryAfter, time.Second)
}

func TestRejectionDoesNotDebit(t *testing.T) {
	clk := newTestClock()
	l := New(Config{RequestsPerSecond: 5, RequestsPerMinute: 1}, clk)

	require.True(t, l.CheckRequest().Allowed)
	// Rejected by the minute window; the second window must be refunded.
	for i := 0; i < 10; i++ {
		assert.False(t, l.CheckRequest().Allowed)
	}

	clk.Advance(time.Minute)
	// If rejections had leaked second-window tokens the bucket would still
	// be dry here.
	assert.True(t, l.CheckRequest().Allowed)
}

func TestTryConsumeBatch(t *testing.T) {
	clk := newTestClock()
	l := New(Config{RequestsPerSecond: 4}, clk)

	assert.True(t, l.TryConsume(3))
	assert.False(t, l.TryConsume(2))
	assert.True(t, l.TryConsume(1))
}

func TestTryConsumeLargerThanCapacity(t *testing.T) {
	clk := newTestClock()
	l := New(Config{RequestsPerSecond: 2}, clk)
	assert.False(t, l.TryConsume(3))
	// Capacity untouched by the impossible request.
	assert.True(t, l.TryConsume(2))
}

func TestNoWindowsAdmitsEverything(t *testing.T) {
	l := New(Config{}, newTestClock())
	for i := 0; i < 100; i++ {
		require.True(t, l.CheckRequest().Allowed)
	}
}
