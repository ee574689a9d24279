// Package breaker wraps sony/gobreaker with the three-state contract used by
// connectors: Closed → Open after failureThreshold failures in the window,
// Open → HalfOpen after the recovery timeout with a single probe permitted,
// HalfOpen → Closed on probe success, back to Open on probe failure.
package breaker

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sony/gobreaker"
)

// State is the externally-visible breaker state.
type State string

// Breaker states.
const (
	StateClosed   State = "closed"
	StateOpen     State = "open"
	StateHalfOpen State = "half_open"
)

// ErrOpen is returned by Execute when the breaker fails fast.
// Callers treat it as retryable-elsewhere: the registry fails over.
var ErrOpen = errors.New("circuit open")

// StateChange describes one breaker transition.
type StateChange struct {
	Name string
	From State
	To   State
	At   time.Time
}

// Config holds breaker tuning.
type Config struct {
	Name             string
	FailureThreshold uint32        // consecutive failures tripping the breaker (default 5)
	FailureWindow    time.Duration // closed-state count reset interval (default 60s)
	RecoveryTimeout  time.Duration // open → half-open delay (default 30s)
}

func (c Config) withDefaults() Config {
	if c.FailureThreshold == 0 {
		c.FailureThreshold = 5
	}
	if c.FailureWindow <= 0 {
		c.FailureWindow = time.Minute
	}
	if c.RecoveryTimeout <= 0 {
		c.RecoveryTimeout = 30 * time.Second
	}
	return c
}

// Breaker is a resettable circuit breaker.
type Breaker struct {
	cfg      Config
	onChange func(StateChange)

	mu sync.Mutex
	cb *gobreaker.CircuitBreaker
}

// New creates a breaker. onChange may be nil; when set it is invoked on every
// state transition (including Reset back to closed).
func New(cfg Config, onChange func(StateChange)) *Breaker {
	b := &Breaker{cfg: cfg.withDefaults(), onChange: onChange}
	b.cb = b.newInner()
	return b
}

func (b *Breaker) newInner() *gobreaker.CircuitBreaker {
	cfg := b.cfg
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: 1, // single half-open probe
		Interval:    cfg.FailureWindow,
		Timeout:     cfg.RecoveryTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.FailureThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			if b.onChange != nil {
				b.onChange(StateChange{
					Name: name,
					From: fromGobreaker(from),
					To:   fromGobreaker(to),
					At:   time.Now().UTC(),
				})
			}
		},
	})
}

// Execute runs fn through the breaker. When the breaker is open (or the
// half-open probe slot is taken) it fails fast with ErrOpen without calling
// fn.
func (b *Breaker) Execute(fn func() (any, error)) (any, error) {
	b.mu.Lock()
	cb := b.cb
	b.mu.Unlock()

	out, err := cb.Execute(fn)
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, fmt.Errorf("%s: %w", b.cfg.Name, ErrOpen)
	}
	return out, err
}

// State returns the current breaker state.
func (b *Breaker) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return fromGobreaker(b.cb.State())
}

// Reset returns the breaker to Closed with zeroed counts. gobreaker has no
// public reset, so a fresh instance is swapped in.
func (b *Breaker) Reset() {
	b.mu.Lock()
	prev := fromGobreaker(b.cb.State())
	b.cb = b.newInner()
	b.mu.Unlock()

	if prev != StateClosed && b.onChange != nil {
		b.onChange(StateChange{Name: b.cfg.Name, From: prev, To: StateClosed, At: time.Now().UTC()})
	}
}

func fromGobreaker(s gobreaker.State) State {
	switch s {
	case gobreaker.StateOpen:
		return StateOpen
	case gobreaker.StateHalfOpen:
		return StateHalfOpen
	default:
		return StateClosed
	}
}
