package services

import (
	"context"
	"fmt"
	"time"

	"github.com/NeoCh3n/NeonharbourSecurity-sub001/ent"
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/ent/runevent"
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/pkg/events"
)

// EventService is the durable event log behind the bus. The (run_id,
// sequence) unique index enforces the no-gap/no-duplicate guarantee at the
// database level even if two pods publish for the same run.
type EventService struct {
	client *ent.Client
}

var _ events.Store = (*EventService)(nil)

// NewEventService creates a new EventService.
func NewEventService(client *ent.Client) *EventService {
	return &EventService{client: client}
}

// Append persists one event. A (run_id, sequence) conflict surfaces as
// ErrAlreadyExists so the bus can detect a competing publisher.
func (s *EventService) Append(ctx context.Context, tenantID string, ev *events.Envelope) error {
	if ev.Params.RunID == "" {
		return NewValidationError("runId", "required")
	}
	if ev.Params.Sequence <= 0 {
		return NewValidationError("sequence", "must be positive")
	}
	params, err := toJSONMap(ev.Params)
	if err != nil {
		return fmt.Errorf("failed to encode event params: %w", err)
	}
	ts, err := ev.Timestamp()
	if err != nil {
		ts = time.Now()
	}
	err = s.client.RunEvent.Create().
		SetRunID(ev.Params.RunID).
		SetTenantID(tenantID).
		SetSequence(ev.Params.Sequence).
		SetMethod(ev.Method).
		SetParams(params).
		SetTs(ts).
		Exec(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return fmt.Errorf("%w: run %s sequence %d", ErrAlreadyExists, ev.Params.RunID, ev.Params.Sequence)
		}
		return fmt.Errorf("failed to append event: %w", err)
	}
	return nil
}

// LastSequence returns the highest persisted sequence for the run, 0 when
// the run has no events.
func (s *EventService) LastSequence(ctx context.Context, runID string) (int64, error) {
	row, err := s.client.RunEvent.Query().
		Where(runevent.RunID(runID)).
		Order(ent.Desc(runevent.FieldSequence)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to query last sequence: %w", err)
	}
	return row.Sequence, nil
}

// EventsSince returns events with sequence > fromSequence in ascending
// order, up to limit.
func (s *EventService) EventsSince(ctx context.Context, runID string, fromSequence int64, limit int) ([]*events.Envelope, error) {
	q := s.client.RunEvent.Query().
		Where(
			runevent.RunID(runID),
			runevent.SequenceGT(fromSequence),
		).
		Order(ent.Asc(runevent.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query events since %d: %w", fromSequence, err)
	}
	out := make([]*events.Envelope, len(rows))
	for i, row := range rows {
		ev := &events.Envelope{JSONRPC: "2.0", Method: row.Method}
		if err := fromJSONMap(row.Params, &ev.Params); err != nil {
			return nil, fmt.Errorf("failed to decode event %d of run %s: %w", row.Sequence, runID, err)
		}
		out[i] = ev
	}
	return out, nil
}
