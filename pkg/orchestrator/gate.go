package orchestrator

import (
	"context"
	"sync"
)

// Gate is the pause point for one investigation. Pausing never aborts
// in-flight work: the engine and the executor call Wait at step and phase
// boundaries and block there until the gate reopens.
type Gate struct {
	mu     sync.Mutex
	paused bool
	ch     chan struct{} // closed when the gate reopens
}

// NewGate creates an open gate.
func NewGate() *Gate {
	return &Gate{}
}

// Pause closes the gate. Idempotent.
func (g *Gate) Pause() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.paused {
		return
	}
	g.paused = true
	g.ch = make(chan struct{})
}

// Resume reopens the gate and releases all waiters. Idempotent.
func (g *Gate) Resume() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.paused {
		return
	}
	g.paused = false
	close(g.ch)
}

// Paused reports whether the gate is currently closed.
func (g *Gate) Paused() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.paused
}

// Wait blocks while the gate is paused. Returns the context error when the
// context ends first, so a paused investigation still honors its timeout.
func (g *Gate) Wait(ctx context.Context) error {
	for {
		g.mu.Lock()
		if !g.paused {
			g.mu.Unlock()
			return nil
		}
		ch := g.ch
		g.mu.Unlock()

		select {
		case <-ch:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
