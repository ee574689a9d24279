package orchestrator

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/NeoCh3n/NeonharbourSecurity-sub001/pkg/clock"
)

// Cancellation causes distinguished by context.Cause on a run context.
var (
	// ErrTimedOut cancels a run whose hard deadline expired.
	ErrTimedOut = errors.New("investigation timed out")
	// ErrCancelled cancels a run stopped by an explicit request.
	ErrCancelled = errors.New("investigation cancelled")
)

// Runtime is the process-wide registry of in-flight investigations. The API
// reaches running investigations through it: pause, resume, cancel, and
// timeout extension all address a run by investigation ID and succeed only
// on the replica actually executing it.
type Runtime struct {
	clk clock.Clock

	mu   sync.RWMutex
	runs map[string]*Control
}

// NewRuntime creates an empty runtime registry.
func NewRuntime(clk clock.Clock) *Runtime {
	if clk == nil {
		clk = clock.System{}
	}
	return &Runtime{clk: clk, runs: make(map[string]*Control)}
}

// Control is the handle for one in-flight investigation.
type Control struct {
	id   string
	gate *Gate
	clk  clock.Clock

	cancel context.CancelCauseFunc

	mu       sync.Mutex
	deadline time.Time
	timer    *time.Timer
}

// Register creates the run context for an investigation with a hard
// timeout and tracks its control handle until Unregister.
func (r *Runtime) Register(parent context.Context, investigationID string, timeout time.Duration) (*Control, context.Context) {
	ctx, cancel := context.WithCancelCause(parent)
	c := &Control{
		id:       investigationID,
		gate:     NewGate(),
		clk:      r.clk,
		cancel:   cancel,
		deadline: r.clk.Now().Add(timeout),
	}
	c.timer = time.AfterFunc(timeout, func() { cancel(ErrTimedOut) })

	r.mu.Lock()
	r.runs[investigationID] = c
	r.mu.Unlock()
	return c, ctx
}

// Unregister stops the timeout timer and drops the control handle.
func (r *Runtime) Unregister(investigationID string) {
	r.mu.Lock()
	c := r.runs[investigationID]
	delete(r.runs, investigationID)
	r.mu.Unlock()
	if c != nil {
		c.mu.Lock()
		c.timer.Stop()
		c.mu.Unlock()
	}
}

func (r *Runtime) get(id string) *Control {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.runs[id]
}

// Active returns the number of runs registered on this replica.
func (r *Runtime) Active() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.runs)
}

// Pause closes the run's gate. Returns false when the investigation is not
// running on this replica.
func (r *Runtime) Pause(investigationID string) bool {
	c := r.get(investigationID)
	if c == nil {
		return false
	}
	c.gate.Pause()
	return true
}

// Resume reopens the run's gate.
func (r *Runtime) Resume(investigationID string) bool {
	c := r.get(investigationID)
	if c == nil {
		return false
	}
	c.gate.Resume()
	return true
}

// Cancel aborts the run. In-flight connector calls observe the cancelled
// context; partial evidence is retained.
func (r *Runtime) Cancel(investigationID string) bool {
	c := r.get(investigationID)
	if c == nil {
		return false
	}
	c.gate.Resume() // a paused run must observe the cancellation
	c.cancel(ErrCancelled)
	return true
}

// ExtendTimeout pushes the run's hard deadline out by delta and returns the
// new deadline.
func (r *Runtime) ExtendTimeout(investigationID string, delta time.Duration) (time.Time, bool) {
	c := r.get(investigationID)
	if c == nil {
		return time.Time{}, false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.deadline = c.deadline.Add(delta)
	c.timer.Stop()
	remaining := c.deadline.Sub(c.clk.Now())
	if remaining < 0 {
		remaining = 0
	}
	c.timer.Reset(remaining)
	return c.deadline, true
}

// Deadline returns the run's current hard deadline.
func (c *Control) Deadline() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.deadline
}

// Gate returns the run's pause gate.
func (c *Control) Gate() *Gate {
	return c.gate
}
