package store

import (
	"context"
	"fmt"

	"focuslock/ent"
	"focuslock/ent/lockevent"
)

func (r *eventRepo) AppendLockEvent(ctx context.Context, data LockEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.LockEvent.Create().
		SetSequence(seqNum).
		SetLockID(data.LockID).
		SetAction(data.Action).
		SetKind(data.Kind).
		SetAppIds(data.AppIDs).
		SetDurationMs(data.DurationMs).
		SetTrigger(data.Trigger).
		SetScheduleID(data.ScheduleID).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save lock event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryLockEvents(ctx context.Context, opts QueryOpts) ([]LockEvent, error) {
	q := r.client.LockEvent.Query().
		Order(ent.Desc(lockevent.FieldSequence))

	if opts.After > 0 {
		q = q.Where(lockevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		q = q.Where(lockevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		q = q.Where(lockevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		q = q.Where(lockevent.TimestampLTE(opts.To))
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query lock events: %w", err)
	}

	events := make([]LockEvent, 0, len(rows))
	for _, e := range rows {
		events = append(events, LockEvent{
			ID:        e.ID,
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			LockEventData: LockEventData{
				LockID:     e.LockID,
				Action:     e.Action,
				Kind:       e.Kind,
				AppIDs:     e.AppIds,
				DurationMs: e.DurationMs,
				Trigger:    e.Trigger,
				ScheduleID: e.ScheduleID,
			},
		})
	}
	return events, nil
}
