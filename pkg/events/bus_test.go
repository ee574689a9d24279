package events

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NeoCh3n/NeonharbourSecurity-sub001/pkg/clock"
)

// memStore is an in-memory Store with the same (runId, sequence) uniqueness
// contract as the database-backed one.
type memStore struct {
	mu   sync.Mutex
	runs map[string][]*Envelope
}

func newMemStore() *memStore {
	return &memStore{runs: make(map[string][]*Envelope)}
}

func (s *memStore) Append(_ context.Context, _ string, ev *Envelope) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.runs[ev.Params.RunID] {
		if existing.Params.Sequence == ev.Params.Sequence {
			return fmt.Errorf("duplicate sequence %d for run %s", ev.Params.Sequence, ev.Params.RunID)
		}
	}
	s.runs[ev.Params.RunID] = append(s.runs[ev.Params.RunID], ev)
	return nil
}

func (s *memStore) LastSequence(_ context.Context, runID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var last int64
	for _, ev := range s.runs[runID] {
		if ev.Params.Sequence > last {
			last = ev.Params.Sequence
		}
	}
	return last, nil
}

func (s *memStore) EventsSince(_ context.Context, runID string, fromSequence int64, limit int) ([]*Envelope, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*Envelope
	for _, ev := range s.runs[runID] {
		if ev.Params.Sequence > fromSequence {
			out = append(out, ev)
		}
	}
	// Store rows arrive in append order, which is sequence order per run.
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func testScope() Scope {
	return Scope{AgentID: "orchestrator", ThreadID: "th-1", TurnID: "turn-1", ItemID: "item-1"}
}

func publishN(t *testing.T, bus *Bus, runID string, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		_, err := bus.Publish(context.Background(), runID, testScope().Item("step", map[string]any{"n": i}))
		require.NoError(t, err)
	}
}

func collect(t *testing.T, sub *Subscription, n int) []*Envelope {
	t.Helper()
	out := make([]*Envelope, 0, n)
	deadline := time.After(2 * time.Second)
	for len(out) < n {
		select {
		case ev, ok := <-sub.C:
			require.True(t, ok, "subscription closed after %d of %d events", len(out), n)
			out = append(out, ev)
		case <-deadline:
			t.Fatalf("timed out after %d of %d events", len(out), n)
		}
	}
	return out
}

func sequences(evs []*Envelope) []int64 {
	out := make([]int64, len(evs))
	for i, ev := range evs {
		out[i] = ev.Params.Sequence
	}
	return out
}

func TestPublishAssignsContiguousSequences(t *testing.T) {
	bus := NewBus(newMemStore(), clock.NewFake(time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)))

	for i := 1; i <= 5; i++ {
		seq, err := bus.Publish(context.Background(), "run-a", testScope().Item("step", nil))
		require.NoError(t, err)
		assert.Equal(t, int64(i), seq)
	}

	// Sequences are per run, not global.
	seq, err := bus.Publish(context.Background(), "run-b", testScope().Item("step", nil))
	require.NoError(t, err)
	assert.Equal(t, int64(1), seq)
}

func TestPublishStampsEnvelope(t *testing.T) {
	clk := clock.NewFake(time.Date(2026, 3, 1, 10, 0, 0, 123e6, time.UTC))
	bus := NewBus(newMemStore(), clk)

	ev := testScope().RunStarted("tenant-1", "alert-9")
	_, err := bus.Publish(context.Background(), "run-a", ev)
	require.NoError(t, err)

	assert.Equal(t, "2.0", ev.JSONRPC)
	assert.Equal(t, "run-a", ev.Params.RunID)
	assert.Equal(t, "2026-03-01T10:00:00.123Z", ev.Params.TS)
	assert.Equal(t, SchemaVersion, ev.Params.SchemaVersion)
	assert.Empty(t, ev.MissingFields())
}

func TestSequencesResumeFromStore(t *testing.T) {
	store := newMemStore()
	bus1 := NewBus(store, clock.System{})
	publishN(t, bus1, "run-a", 3)

	// A fresh bus over the same store continues the run's sequence.
	bus2 := NewBus(store, clock.System{})
	seq, err := bus2.Publish(context.Background(), "run-a", testScope().Item("step", nil))
	require.NoError(t, err)
	assert.Equal(t, int64(4), seq)
}

func TestConcurrentPublishersNoGapsNoDuplicates(t *testing.T) {
	bus := NewBus(newMemStore(), clock.System{})
	const n = 50

	var wg sync.WaitGroup
	seqs := make(chan int64, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			seq, err := bus.Publish(context.Background(), "run-a", testScope().Item("step", nil))
			assert.NoError(t, err)
			seqs <- seq
		}()
	}
	wg.Wait()
	close(seqs)

	seen := make(map[int64]bool)
	for s := range seqs {
		assert.False(t, seen[s], "duplicate sequence %d", s)
		seen[s] = true
	}
	for i := int64(1); i <= n; i++ {
		assert.True(t, seen[i], "missing sequence %d", i)
	}
}

func TestSubscribeLiveDeliveryInOrder(t *testing.T) {
	bus := NewBus(newMemStore(), clock.System{})

	sub, err := bus.Subscribe(context.Background(), "run-a", 0)
	require.NoError(t, err)
	defer sub.Close()

	publishN(t, bus, "run-a", 4)

	got := collect(t, sub, 4)
	assert.Equal(t, []int64{1, 2, 3, 4}, sequences(got))
}

func TestSubscribeReplaysBacklogThenLive(t *testing.T) {
	bus := NewBus(newMemStore(), clock.System{})
	publishN(t, bus, "run-a", 3)

	sub, err := bus.Subscribe(context.Background(), "run-a", 0)
	require.NoError(t, err)
	defer sub.Close()

	publishN(t, bus, "run-a", 2)

	got := collect(t, sub, 5)
	assert.Equal(t, []int64{1, 2, 3, 4, 5}, sequences(got))
}

func TestResumeFromSequenceSkipsDelivered(t *testing.T) {
	bus := NewBus(newMemStore(), clock.System{})
	publishN(t, bus, "run-a", 6)

	// Client saw up to sequence 4 before disconnecting.
	sub, err := bus.Subscribe(context.Background(), "run-a", 4)
	require.NoError(t, err)
	defer sub.Close()

	got := collect(t, sub, 2)
	assert.Equal(t, []int64{5, 6}, sequences(got))
}

// A resumed stream and an uninterrupted stream must apply identically.
func TestResumeEquivalence(t *testing.T) {
	bus := NewBus(newMemStore(), clock.System{})

	continuous, err := bus.Subscribe(context.Background(), "run-a", 0)
	require.NoError(t, err)
	defer continuous.Close()

	publishN(t, bus, "run-a", 4)

	// Interrupted client: read two, drop, resume from last seen.
	interrupted, err := bus.Subscribe(context.Background(), "run-a", 0)
	require.NoError(t, err)
	first := collect(t, interrupted, 2)
	interrupted.Close()

	publishN(t, bus, "run-a", 3)

	resumed, err := bus.Subscribe(context.Background(), "run-a", first[len(first)-1].Params.Sequence)
	require.NoError(t, err)
	defer resumed.Close()
	rest := collect(t, resumed, 5)

	got := append(sequences(first), sequences(rest)...)
	want := sequences(collect(t, continuous, 7))
	assert.Equal(t, want, got)
}

func TestSlowSubscriberDisconnectedNotBlocking(t *testing.T) {
	bus := NewBus(newMemStore(), clock.System{})

	sub, err := bus.Subscribe(context.Background(), "run-a", 0)
	require.NoError(t, err)

	// Never read: overflow the buffer. Publish must not block.
	done := make(chan struct{})
	go func() {
		publishN(t, bus, "run-a", subscriberBuffer+10)
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("publish blocked on a slow subscriber")
	}

	// Drain until the bus cuts the subscriber loose.
	for range sub.C {
	}
	assert.True(t, sub.Lagged())
}

func TestApprovalRequestIDSynthesized(t *testing.T) {
	clk := clock.NewFake(time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC))
	store := newMemStore()
	bus := NewBus(store, clk)

	ev := testScope().ApprovalRequested("", "Isolate host", "Quarantine endpoint web-01", map[string]any{"hostname": "web-01"})
	_, err := bus.Publish(context.Background(), "run-a", ev)
	require.NoError(t, err)

	id, _ := ev.Params.Extra["requestId"].(string)
	assert.Regexp(t, `^req_[0-9a-f]{8}$`, id)
	assert.Equal(t, false, ev.Params.Extra["verified"])

	// Same inputs on a fresh bus at the same instant yield the same ID.
	ev2 := testScope().ApprovalRequested("", "Isolate host", "Quarantine endpoint web-01", map[string]any{"hostname": "web-01"})
	_, err = NewBus(newMemStore(), clk).Publish(context.Background(), "run-a", ev2)
	require.NoError(t, err)
	assert.Equal(t, id, ev2.Params.Extra["requestId"])
}

func TestExplicitApprovalRequestIDKept(t *testing.T) {
	bus := NewBus(newMemStore(), clock.System{})

	ev := testScope().ApprovalRequested("req_known123", "Block IP", "", nil)
	_, err := bus.Publish(context.Background(), "run-a", ev)
	require.NoError(t, err)

	assert.Equal(t, "req_known123", ev.Params.Extra["requestId"])
	assert.Equal(t, true, ev.Params.Extra["verified"])
}
