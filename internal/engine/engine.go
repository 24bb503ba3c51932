package engine

import (
	"context"
	"fmt"
	"time"

	"focuslock/internal/challenge"
	"focuslock/internal/lock"
	"focuslock/internal/questionbank"
	"focuslock/internal/schedule"
	"focuslock/internal/store"
)

// snapshotKeep bounds how many snapshots Prune leaves behind.
const snapshotKeep = 20

// UsagePoint is one bar of the weekly usage chart.
type UsagePoint struct {
	Label string
	Hours float64
}

// AppUsage is one row of the top-apps usage list.
type AppUsage struct {
	AppID         string
	MinutesPerDay int
}

// Engine owns all focus state: the active lock, schedules, the
// adaptive difficulty, the question bank, and display preferences.
// Every mutating operation persists a fresh snapshot and appends the
// relevant events. The engine is designed for a single-threaded
// event-driven caller and performs no internal locking.
type Engine struct {
	bank       *questionbank.Bank
	locks      *lock.Manager
	schedules  *schedule.Collection
	tracker    *schedule.Tracker
	difficulty challenge.DifficultyState

	selectedApps map[string]bool
	lastDuration time.Duration
	defaultKind  lock.Kind
	statsRange   string
	usageWeek    []UsagePoint
	topApps      []AppUsage
	custom       []questionbank.Question

	snapshots store.SnapshotRepo
	events    store.EventRepo
	rng       challenge.Rand
	now       func() time.Time
}

// Options configures a new Engine.
type Options struct {
	Snapshots store.SnapshotRepo
	Events    store.EventRepo

	// Clock overrides time.Now. Used in tests to control expiry.
	Clock func() time.Time

	// Rand overrides the challenge selection randomness source.
	Rand challenge.Rand
}

// New creates an engine with seeded defaults and no persisted state
// applied. Call Load to restore the latest snapshot.
func New(opts Options) *Engine {
	now := opts.Clock
	if now == nil {
		now = time.Now
	}

	e := &Engine{
		bank:         questionbank.Seed(),
		schedules:    schedule.NewCollection(nil),
		tracker:      schedule.NewTracker(),
		difficulty:   challenge.NewDifficultyState(),
		selectedApps: make(map[string]bool),
		lastDuration: defaultLastDuration,
		defaultKind:  lock.KindSoft,
		statsRange:   defaultStatsRange,
		usageWeek:    defaultUsageWeek(),
		topApps:      defaultTopApps(),
		snapshots:    opts.Snapshots,
		events:       opts.Events,
		rng:          opts.Rand,
		now:          now,
	}
	e.locks = lock.NewManagerWithClock(now)
	return e
}

// Load restores the latest snapshot. A restored lock is immediately
// run through the expiry check, so a lock that lapsed while the app
// was closed is cleared (and recorded) before anything reads it.
func (e *Engine) Load(ctx context.Context) error {
	if e.snapshots == nil {
		return nil
	}

	snap, err := e.snapshots.Latest(ctx)
	if err != nil {
		return fmt.Errorf("load snapshot: %w", err)
	}
	if snap == nil {
		return nil
	}

	e.applySnapshot(snap.Data)

	if _, err := e.CheckExpiry(ctx); err != nil {
		return err
	}
	return nil
}

// Bank returns the current question bank (seed plus custom questions).
func (e *Engine) Bank() *questionbank.Bank {
	return e.bank
}

// Difficulty returns the current adaptive difficulty state.
func (e *Engine) Difficulty() challenge.DifficultyState {
	return e.difficulty
}

// ActiveLock returns the current lock, or nil. Callers that need the
// expiry check applied first should call CheckExpiry.
func (e *Engine) ActiveLock() *lock.ActiveLock {
	return e.locks.Active()
}

// Remaining returns the time until the active lock expires.
func (e *Engine) Remaining() time.Duration {
	return e.locks.Remaining()
}

// save persists a fresh snapshot and prunes old ones. Mutating
// operations call it after the state change and event appends.
func (e *Engine) save(ctx context.Context) error {
	if e.snapshots == nil {
		return nil
	}

	var seq int64
	if e.events != nil {
		var err error
		seq, err = e.events.NextSequence(ctx)
		if err != nil {
			return fmt.Errorf("snapshot sequence: %w", err)
		}
	}

	snap := &store.Snapshot{
		Sequence:  seq,
		Timestamp: e.now().UTC(),
		Data:      e.snapshotData(),
	}
	if err := e.snapshots.Save(ctx, snap); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	if err := e.snapshots.Prune(ctx, snapshotKeep); err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	return nil
}
