package events

import "sync"

// Outcome classifies what the tracker did with an incoming event.
type Outcome string

// Tracker outcomes.
const (
	OutcomeApplied     Outcome = "applied"
	OutcomeDuplicate   Outcome = "duplicate"
	OutcomeReplay      Outcome = "replay"
	OutcomeQuarantined Outcome = "quarantined"
)

// IssueKind labels a recorded stream anomaly.
type IssueKind string

// Stream issue kinds.
const (
	IssueGap       IssueKind = "gap"
	IssueDuplicate IssueKind = "duplicate"
	IssueReplay    IssueKind = "replay"
	IssueMalformed IssueKind = "malformed"
)

// Issue is one recorded stream anomaly.
type Issue struct {
	Kind     IssueKind `json:"kind"`
	Sequence int64     `json:"sequence,omitempty"`
	From     int64     `json:"from,omitempty"` // gap range, inclusive
	To       int64     `json:"to,omitempty"`
	Method   string    `json:"method,omitempty"`
	Detail   string    `json:"detail,omitempty"`
}

// Tracker buffer caps. Applied events and issues are FIFO-evicted at the
// cap; quarantined events are held for diagnostics with a smaller cap.
const (
	defaultEventBuffer = 200
	issueBuffer        = 200
	quarantineBuffer   = 50
)

// Tracker is the per-run client-side view of an event stream. It applies
// events in arrival order, deduplicates by sequence, records gaps it sees,
// and quarantines events missing required envelope fields instead of
// dropping them silently.
type Tracker struct {
	mu sync.Mutex

	runID    string
	cap      int
	lastSeen int64
	seen     map[int64]struct{}

	events      []*Envelope
	issues      []Issue
	quarantined []*Envelope
}

// NewTracker creates a tracker for one run's stream. bufferSize caps the
// retained applied-event window; 0 uses the default of 200.
func NewTracker(runID string, bufferSize int) *Tracker {
	if bufferSize <= 0 {
		bufferSize = defaultEventBuffer
	}
	return &Tracker{
		runID: runID,
		cap:   bufferSize,
		seen:  make(map[int64]struct{}),
	}
}

// Ingest classifies and, when appropriate, applies one incoming event.
//
// Rules, in order:
//   - required envelope fields missing: quarantined, never applied
//   - sequence already seen: duplicate, dropped
//   - sequence at or below the high-water mark but never seen: replay of a
//     gap the tracker already recorded; noted, not applied
//   - sequence beyond lastSeen+1: the skipped range is recorded as a gap
//     and the event is applied anyway
func (t *Tracker) Ingest(ev *Envelope) Outcome {
	t.mu.Lock()
	defer t.mu.Unlock()

	if missing := ev.MissingFields(); len(missing) > 0 {
		t.quarantine(ev, missing)
		return OutcomeQuarantined
	}

	seq := ev.Params.Sequence
	if _, ok := t.seen[seq]; ok {
		t.addIssue(Issue{Kind: IssueDuplicate, Sequence: seq, Method: ev.Method})
		return OutcomeDuplicate
	}
	if seq <= t.lastSeen {
		t.addIssue(Issue{Kind: IssueReplay, Sequence: seq, Method: ev.Method})
		return OutcomeReplay
	}
	if seq > t.lastSeen+1 {
		t.addIssue(Issue{Kind: IssueGap, From: t.lastSeen + 1, To: seq - 1})
	}

	t.seen[seq] = struct{}{}
	t.lastSeen = seq
	t.events = append(t.events, ev)
	if len(t.events) > t.cap {
		evicted := t.events[0]
		t.events = t.events[1:]
		delete(t.seen, evicted.Params.Sequence)
	}
	return OutcomeApplied
}

func (t *Tracker) quarantine(ev *Envelope, missing []string) {
	t.quarantined = append(t.quarantined, ev)
	if len(t.quarantined) > quarantineBuffer {
		t.quarantined = t.quarantined[1:]
	}
	detail := "missing"
	for _, f := range missing {
		detail += " " + f
	}
	t.addIssue(Issue{Kind: IssueMalformed, Sequence: ev.Params.Sequence, Method: ev.Method, Detail: detail})
}

func (t *Tracker) addIssue(is Issue) {
	t.issues = append(t.issues, is)
	if len(t.issues) > issueBuffer {
		t.issues = t.issues[1:]
	}
}

// LastSeen returns the highest applied sequence, the value to resume a
// subscription from after a disconnect.
func (t *Tracker) LastSeen() int64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.lastSeen
}

// Events returns the retained applied events in application order.
func (t *Tracker) Events() []*Envelope {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]*Envelope, len(t.events))
	copy(out, t.events)
	return out
}

// Issues returns the recorded stream anomalies, oldest first.
func (t *Tracker) Issues() []Issue {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Issue, len(t.issues))
	copy(out, t.issues)
	return out
}

// Quarantined returns events held back for missing envelope fields.
func (t *Tracker) Quarantined() []*Envelope {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]*Envelope, len(t.quarantined))
	copy(out, t.quarantined)
	return out
}
