package lock

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Kind selects the lock behavior.
type Kind string

const (
	// KindSoft locks can be ended early after passing a challenge.
	KindSoft Kind = "soft"
	// KindHard locks run until expiry with no override path.
	KindHard Kind = "hard"
)

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	return k == KindSoft || k == KindHard
}

// Precondition violations. Calling Start in an invalid state is a
// caller error, not something the manager coerces into a no-op.
var (
	ErrLockActive  = errors.New("a lock is already active")
	ErrNoApps      = errors.New("lock requires at least one app")
	ErrBadDuration = errors.New("lock duration must be positive")
	ErrBadKind     = errors.New("unknown lock kind")
)

// ActiveLock is the single in-effect lock. At most one exists at a
// time. A stored lock may be stale; callers must run
// CheckAndClearExpiry before treating it as in effect.
type ActiveLock struct {
	ID        string
	AppIDs    []string
	Kind      Kind
	StartedAt time.Time
	EndsAt    time.Time
}

// Manager owns the active-lock slot and is the only component allowed
// to mutate it. It is designed for a single-threaded event-driven
// caller and performs no internal locking.
type Manager struct {
	active *ActiveLock
	now    func() time.Time
}

// NewManager creates a manager with no active lock.
func NewManager() *Manager {
	return &Manager{now: time.Now}
}

// NewManagerWithClock creates a manager using the given clock.
// Used in tests to control expiry.
func NewManagerWithClock(now func() time.Time) *Manager {
	return &Manager{now: now}
}

// Restore installs a previously persisted lock. The caller must run
// CheckAndClearExpiry immediately afterwards, before exposing the lock
// to any reader, since the snapshot may be arbitrarily stale.
func (m *Manager) Restore(l *ActiveLock) {
	m.active = l
}

// Start creates a new active lock running from now for the given
// duration. Preconditions: no lock is active (run CheckAndClearExpiry
// first), appIDs is non-empty, duration is positive.
func (m *Manager) Start(kind Kind, duration time.Duration, appIDs []string) (*ActiveLock, error) {
	if !kind.Valid() {
		return nil, ErrBadKind
	}
	if m.active != nil {
		return nil, ErrLockActive
	}
	if len(appIDs) == 0 {
		return nil, ErrNoApps
	}
	if duration <= 0 {
		return nil, ErrBadDuration
	}

	now := m.now()
	ids := make([]string, len(appIDs))
	copy(ids, appIDs)

	m.active = &ActiveLock{
		ID:        uuid.NewString(),
		AppIDs:    ids,
		Kind:      kind,
		StartedAt: now,
		EndsAt:    now.Add(duration),
	}
	return m.active, nil
}

// CheckAndClearExpiry clears the active lock once its end time has
// passed. Idempotent; intended to run on load, before any Start, and
// on every display tick. This is the sole mechanism by which a lock
// naturally ends. Returns true when a lock was cleared.
func (m *Manager) CheckAndClearExpiry() bool {
	if m.active == nil {
		return false
	}
	if m.now().Before(m.active.EndsAt) {
		return false
	}
	m.active = nil
	return true
}

// ForceEnd unconditionally clears the active lock. The soft-only
// policy lives in the caller: hard locks must never be offered this
// path, but the manager itself does not check the kind here.
func (m *Manager) ForceEnd() {
	m.active = nil
}

// Active returns the current lock, or nil. The returned value is a
// copy; mutating it does not affect the manager.
func (m *Manager) Active() *ActiveLock {
	if m.active == nil {
		return nil
	}
	l := *m.active
	l.AppIDs = append([]string(nil), m.active.AppIDs...)
	return &l
}

// Remaining returns the time until expiry, or 0 when no lock is
// active or the lock has already passed its end time.
func (m *Manager) Remaining() time.Duration {
	if m.active == nil {
		return 0
	}
	d := m.active.EndsAt.Sub(m.now())
	if d < 0 {
		return 0
	}
	return d
}
