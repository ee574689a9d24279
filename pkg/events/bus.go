package events

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/NeoCh3n/NeonharbourSecurity-sub001/pkg/clock"
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/pkg/identity"
)

// Store is the durable event log behind the bus. The (runId, sequence)
// unique index on the log table backs the no-gap/no-duplicate guarantee.
type Store interface {
	// Append persists one event. It must fail on a (runId, sequence) conflict.
	Append(ctx context.Context, tenantID string, ev *Envelope) error
	// LastSequence returns the highest persisted sequence for the run (0 when
	// the run has no events).
	LastSequence(ctx context.Context, runID string) (int64, error)
	// EventsSince returns events with sequence > fromSequence in ascending
	// sequence order, up to limit.
	EventsSince(ctx context.Context, runID string, fromSequence int64, limit int) ([]*Envelope, error)
}

// subscriberBuffer is the per-subscriber channel depth. A subscriber that
// falls further behind than this is disconnected and must resume by
// sequence, preserving at-least-once delivery without blocking publishers.
const subscriberBuffer = 256

// catchupBatch bounds one backlog page during subscribe.
const catchupBatch = 500

// Bus assigns per-run sequences, persists, and fans out.
type Bus struct {
	store Store
	clk   clock.Clock

	mu   sync.Mutex
	runs map[string]*runState
}

type runState struct {
	mu      sync.Mutex
	loaded  bool
	lastSeq int64
	nextSub int64
	subs    map[int64]*Subscription
}

// Subscription is one live subscriber attached to a run.
type Subscription struct {
	// C delivers events in strictly increasing sequence order. It is closed
	// when the subscription is cancelled or when the subscriber lagged too
	// far behind; in the latter case Lagged() reports true and the caller
	// should re-subscribe from its last seen sequence.
	C <-chan *Envelope

	id     int64
	ch     chan *Envelope
	run    *runState
	lagged bool
}

// Close detaches the subscription from the bus. Idempotent: whichever of
// Close or the bus's lag disconnect removes the map entry closes the
// channel, never both.
func (s *Subscription) Close() {
	s.run.mu.Lock()
	_, present := s.run.subs[s.id]
	delete(s.run.subs, s.id)
	s.run.mu.Unlock()
	if present {
		close(s.ch)
	}
}

// Lagged reports whether the bus dropped the subscriber for falling behind.
func (s *Subscription) Lagged() bool {
	s.run.mu.Lock()
	defer s.run.mu.Unlock()
	return s.lagged
}

// NewBus creates an event bus over the given store.
func NewBus(store Store, clk clock.Clock) *Bus {
	if clk == nil {
		clk = clock.System{}
	}
	return &Bus{store: store, clk: clk, runs: make(map[string]*runState)}
}

func (b *Bus) run(runID string) *runState {
	b.mu.Lock()
	defer b.mu.Unlock()
	rs, ok := b.runs[runID]
	if !ok {
		rs = &runState{subs: make(map[int64]*Subscription)}
		b.runs[runID] = rs
	}
	return rs
}

// Publish assigns the next sequence for the run, stamps the timestamp and
// schema version, persists the event, and fans it out to live subscribers.
// The per-run lock is the only serialization point: sequence assignment,
// persistence, and fan-out happen under it so no subscriber can observe
// out-of-order sequences.
func (b *Bus) Publish(ctx context.Context, runID string, ev *Envelope) (int64, error) {
	if ev == nil {
		return 0, fmt.Errorf("publish: nil event")
	}
	rs := b.run(runID)

	rs.mu.Lock()
	defer rs.mu.Unlock()

	if !rs.loaded {
		last, err := b.store.LastSequence(ctx, runID)
		if err != nil {
			return 0, fmt.Errorf("publish: loading last sequence for run %s: %w", runID, err)
		}
		rs.lastSeq = last
		rs.loaded = true
	}

	seq := rs.lastSeq + 1
	ev.JSONRPC = "2.0"
	ev.Params.RunID = runID
	ev.Params.Sequence = seq
	ev.Params.TS = FormatTS(b.clk.Now())
	ev.Params.SchemaVersion = SchemaVersion
	b.fillApprovalID(ev)

	tenantID, _ := ev.Params.Extra["tenantId"].(string)
	if err := b.store.Append(ctx, tenantID, ev); err != nil {
		return 0, fmt.Errorf("publish: persisting event %d for run %s: %w", seq, runID, err)
	}
	rs.lastSeq = seq

	for id, sub := range rs.subs {
		select {
		case sub.ch <- ev:
		default:
			// Subscriber too slow: cut it loose rather than block the run.
			slog.Warn("Event subscriber lagged, disconnecting",
				"run_id", runID, "subscriber", id, "sequence", seq)
			sub.lagged = true
			delete(rs.subs, id)
			close(sub.ch)
		}
	}
	return seq, nil
}

// fillApprovalID synthesizes a deterministic requestId for approval/requested
// events that omit one, and marks the approval unverified.
func (b *Bus) fillApprovalID(ev *Envelope) {
	if ev.Method != MethodApprovalRequested {
		return
	}
	if ev.Params.Extra == nil {
		ev.Params.Extra = make(map[string]any)
	}
	if id, _ := ev.Params.Extra["requestId"].(string); id != "" {
		return
	}
	title, _ := ev.Params.Extra["title"].(string)
	description, _ := ev.Params.Extra["description"].(string)
	payload, _ := ev.Params.Extra["payload"].(map[string]any)
	ts, _ := ev.Timestamp()
	ev.Params.Extra["requestId"] = identity.SyntheticApprovalID(identity.ApprovalSeed{
		RunID:       ev.Params.RunID,
		AgentID:     ev.Params.AgentID,
		TS:          ts,
		Title:       title,
		Description: description,
		Payload:     payload,
	})
	ev.Params.Extra["verified"] = false
}

// LastSequence returns the current persisted sequence for the run.
func (b *Bus) LastSequence(ctx context.Context, runID string) (int64, error) {
	rs := b.run(runID)
	rs.mu.Lock()
	defer rs.mu.Unlock()
	if rs.loaded {
		return rs.lastSeq, nil
	}
	last, err := b.store.LastSequence(ctx, runID)
	if err != nil {
		return 0, err
	}
	rs.lastSeq = last
	rs.loaded = true
	return last, nil
}

// Subscribe delivers every persisted event with sequence > fromSequence in
// order, then live events as they are published. Delivery is at-least-once:
// a client that reconnects may see the boundary event twice and deduplicates
// by sequence.
func (b *Bus) Subscribe(ctx context.Context, runID string, fromSequence int64) (*Subscription, error) {
	rs := b.run(runID)

	// Register the live channel first so no event published during the
	// backlog read is missed.
	rs.mu.Lock()
	if !rs.loaded {
		last, err := b.store.LastSequence(ctx, runID)
		if err != nil {
			rs.mu.Unlock()
			return nil, fmt.Errorf("subscribe: loading last sequence for run %s: %w", runID, err)
		}
		rs.lastSeq = last
		rs.loaded = true
	}
	snapshot := rs.lastSeq
	live := make(chan *Envelope, subscriberBuffer)
	rs.nextSub++
	inner := &Subscription{id: rs.nextSub, ch: live, run: rs}
	inner.C = live
	rs.subs[inner.id] = inner
	rs.mu.Unlock()

	if fromSequence >= snapshot {
		return inner, nil
	}

	// Page the backlog (fromSequence, snapshot] ahead of the live channel.
	// The subscription keeps its registered live channel so Close still
	// detaches it from the bus; callers only ever read the spliced channel.
	out := make(chan *Envelope, subscriberBuffer)
	inner.C = out

	go func() {
		defer close(out)
		next := fromSequence
		for next < snapshot {
			batch, err := b.store.EventsSince(ctx, runID, next, catchupBatch)
			if err != nil {
				slog.Error("Event catchup failed", "run_id", runID, "from", next, "error", err)
				inner.Close()
				return
			}
			if len(batch) == 0 {
				break
			}
			for _, ev := range batch {
				if ev.Params.Sequence > snapshot {
					break
				}
				select {
				case out <- ev:
					next = ev.Params.Sequence
				case <-ctx.Done():
					inner.Close()
					return
				}
			}
			if batch[len(batch)-1].Params.Sequence >= snapshot {
				break
			}
		}
		// Hand over to the live feed, skipping anything at or below the
		// backlog high-water mark.
		for {
			select {
			case ev, ok := <-live:
				if !ok {
					return
				}
				if ev.Params.Sequence <= next {
					continue
				}
				select {
				case out <- ev:
					next = ev.Params.Sequence
				case <-ctx.Done():
					inner.Close()
					return
				}
			case <-ctx.Done():
				inner.Close()
				return
			}
		}
	}()

	return inner, nil
}
