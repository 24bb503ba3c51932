package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"focuslock/internal/lock"
	"focuslock/internal/schedule"
	"focuslock/internal/store"
)

// Lock event actions.
const (
	actionStart    = "start"
	actionExpire   = "expire"
	actionForceEnd = "force_end"
)

// Lock start triggers.
const (
	triggerManual   = "manual"
	triggerSchedule = "schedule"
)

// ErrHardLock is returned when the caller tries to end a hard lock
// early. Hard locks run until expiry.
var ErrHardLock = errors.New("hard locks cannot be ended early")

// ErrNoActiveLock is returned when an end operation finds no lock.
var ErrNoActiveLock = errors.New("no active lock")

// StartLock begins a manual lock over the currently selected apps.
// The expiry check runs first so a stale lock never blocks a start.
// The chosen duration becomes the new last-duration preference.
func (e *Engine) StartLock(ctx context.Context, kind lock.Kind, duration time.Duration) (*lock.ActiveLock, error) {
	if _, err := e.CheckExpiry(ctx); err != nil {
		return nil, err
	}

	l, err := e.locks.Start(kind, duration, e.SelectedApps())
	if err != nil {
		return nil, err
	}
	e.lastDuration = duration
	e.defaultKind = kind

	e.appendLockEvent(ctx, store.LockEventData{
		LockID:     l.ID,
		Action:     actionStart,
		Kind:       string(l.Kind),
		AppIDs:     l.AppIDs,
		DurationMs: duration.Milliseconds(),
		Trigger:    triggerManual,
	})

	if err := e.save(ctx); err != nil {
		return nil, err
	}
	return l, nil
}

// CheckExpiry clears the active lock once its end time has passed,
// recording the expiry. Idempotent; runs on load, before every start,
// and on each display tick. Returns true when a lock was cleared.
func (e *Engine) CheckExpiry(ctx context.Context) (bool, error) {
	prior := e.locks.Active()
	if !e.locks.CheckAndClearExpiry() {
		return false, nil
	}

	e.appendLockEvent(ctx, store.LockEventData{
		LockID: prior.ID,
		Action: actionExpire,
		Kind:   string(prior.Kind),
		AppIDs: prior.AppIDs,
	})

	if err := e.save(ctx); err != nil {
		return true, err
	}
	return true, nil
}

// EndLockEarly force-ends the active soft lock. Hard locks refuse this
// path; they end only by expiry. Challenge-gated unlocks go through
// CompleteChallenge instead.
func (e *Engine) EndLockEarly(ctx context.Context) error {
	l := e.locks.Active()
	if l == nil {
		return ErrNoActiveLock
	}
	if l.Kind == lock.KindHard {
		return ErrHardLock
	}
	return e.forceEnd(ctx, l)
}

// forceEnd clears the lock and records the force-end event.
func (e *Engine) forceEnd(ctx context.Context, l *lock.ActiveLock) error {
	e.locks.ForceEnd()

	e.appendLockEvent(ctx, store.LockEventData{
		LockID: l.ID,
		Action: actionForceEnd,
		Kind:   string(l.Kind),
		AppIDs: l.AppIDs,
	})

	return e.save(ctx)
}

// PollSchedules evaluates every schedule at t and starts a lock for
// each window just entered. An already active lock wins: the fired
// window is consumed without starting a second lock, so the singleton
// invariant holds. Returns the locks that were started.
func (e *Engine) PollSchedules(ctx context.Context, t time.Time) ([]*lock.ActiveLock, error) {
	fired := e.tracker.Poll(e.schedules.All(), t)
	if len(fired) == 0 {
		return nil, nil
	}

	var started []*lock.ActiveLock
	for _, s := range fired {
		if _, err := e.CheckExpiry(ctx); err != nil {
			return started, err
		}
		if e.locks.Active() != nil {
			continue
		}

		dur := schedule.RemainingWindow(s, t)
		if dur <= 0 {
			continue
		}

		l, err := e.locks.Start(e.defaultKind, dur, s.AppIDs)
		if err != nil {
			return started, fmt.Errorf("start scheduled lock %s: %w", s.ID, err)
		}

		e.appendLockEvent(ctx, store.LockEventData{
			LockID:     l.ID,
			Action:     actionStart,
			Kind:       string(l.Kind),
			AppIDs:     l.AppIDs,
			DurationMs: dur.Milliseconds(),
			Trigger:    triggerSchedule,
			ScheduleID: s.ID,
		})
		started = append(started, l)
	}

	if len(started) > 0 {
		if err := e.save(ctx); err != nil {
			return started, err
		}
	}
	return started, nil
}

// appendLockEvent records a lock event, tolerating logging failures.
func (e *Engine) appendLockEvent(ctx context.Context, data store.LockEventData) {
	if e.events == nil {
		return
	}
	_ = e.events.AppendLockEvent(ctx, data)
}
