// Package clock provides an injectable time source so time-dependent
// components (scorer freshness, limiter refill, breaker recovery, timeout
// manager) stay deterministic under test.
package clock

import (
	"sync"
	"time"
)

// Clock is the minimal time source used across the orchestrator.
type Clock interface {
	Now() time.Time
	// Since is a convenience for Now().Sub(t).
	Since(t time.Time) time.Duration
}

// System is the wall-clock implementation.
type System struct{}

// Now returns the current UTC time truncated to millisecond precision,
// matching the precision of persisted timestamps.
func (System) Now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

// Since returns the elapsed wall-clock time since t.
func (System) Since(t time.Time) time.Duration {
	return time.Since(t)
}

// Fake is a manually-advanced clock for tests.
type Fake struct {
	mu  sync.Mutex
	now time.Time
}

// NewFake returns a fake clock pinned at t.
func NewFake(t time.Time) *Fake {
	return &Fake{now: t.UTC()}
}

// Now returns the fake's current instant.
func (f *Fake) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

// Since returns the elapsed fake time since t.
func (f *Fake) Since(t time.Time) time.Duration {
	return f.Now().Sub(t)
}

// Advance moves the fake clock forward by d.
func (f *Fake) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = f.now.Add(d)
}

// Set pins the fake clock at t.
func (f *Fake) Set(t time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = t.UTC()
}
