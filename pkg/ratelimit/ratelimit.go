// Package ratelimit implements the multi-window token bucket that gates
// connector calls. Each configured window (per-second, per-minute, per-hour)
// is an independent bucket; a request is admitted only when every window
// permits it, and a rejection reports the longest retry-after among the
// exhausted windows.
package ratelimit

import (
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/NeoCh3n/NeonharbourSecurity-sub001/pkg/clock"
)

// Config mirrors the connector rateLimits block. Zero values disable the
// corresponding window.
type Config struct {
	RequestsPerSecond int `yaml:"requests_per_second" json:"requestsPerSecond,omitempty"`
	RequestsPerMinute int `yaml:"requests_per_minute" json:"requestsPerMinute,omitempty"`
	RequestsPerHour   int `yaml:"requests_per_hour" json:"requestsPerHour,omitempty"`
}

// Decision is the outcome of CheckRequest.
type Decision struct {
	Allowed    bool
	RetryAfter time.Duration
}

type window struct {
	name string
	lim  *rate.Limiter
}

// Limiter applies all configured windows atomically.
type Limiter struct {
	mu      sync.Mutex
	clk     clock.Clock
	windows []window
}

// New builds a limiter from cfg. A limiter with no configured windows admits
// everything.
func New(cfg Config, clk clock.Clock) *Limiter {
	if clk == nil {
		clk = clock.System{}
	}
	l := &Limiter{clk: clk}
	add := func(name string, requests int, per time.Duration) {
		if requests <= 0 {
			return
		}
		// Refill spread evenly across the window; burst equals the window
		// capacity so a cold bucket admits a full window at once.
		l.windows = append(l.windows, window{
			name: name,
			lim:  rate.NewLimiter(rate.Limit(float64(requests)/per.Seconds()), requests),
		})
	}
	add("second", cfg.RequestsPerSecond, time.Second)
	add("minute", cfg.RequestsPerMinute, time.Minute)
	add("hour", cfg.RequestsPerHour, time.Hour)
	return l
}

// TryConsume atomically takes n tokens from every window. Either all windows
// are debited or none are.
func (l *Limiter) TryConsume(n int) bool {
	return l.consume(n).Allowed
}

// CheckRequest applies all configured windows for a single request and
// reports the retry-after of the tightest exhausted window on rejection.
func (l *Limiter) CheckRequest() Decision {
	return l.consume(1)
}

func (l *Limiter) consume(n int) Decision {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.clk.Now()
	reservations := make([]*rate.Reservation, 0, len(l.windows))
	var worst time.Duration
	allowed := true

	for _, w := range l.windows {
		res := w.lim.ReserveN(now, n)
		if !res.OK() {
			// n exceeds the window capacity; never admissible.
			res.CancelAt(now)
			allowed = false
			worst = maxDuration(worst, time.Duration(n)*time.Hour)
			continue
		}
		reservations = append(reservations, res)
		if d := res.DelayFrom(now); d > 0 {
			allowed = false
			worst = maxDuration(worst, d)
		}
	}

	if !allowed {
		// Return every token taken in this pass: rejection must not debit.
		for _, res := range reservations {
			res.CancelAt(now)
		}
		return Decision{Allowed: false, RetryAfter: worst}
	}
	return Decision{Allowed: true}
}

func maxDuration(a, b time.Duration) time.Duration {
	if a > b {
		return a
	}
	return b
}
