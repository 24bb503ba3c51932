package lock

import (
	"errors"
	"testing"
	"time"
)

// fakeClock is a controllable clock for expiry tests.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestManager() (*Manager, *fakeClock) {
	clock := &fakeClock{t: time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)}
	return NewManagerWithClock(clock.now), clock
}

func TestStartSetsTimes(t *testing.T) {
	m, clock := newTestManager()

	l, err := m.Start(KindSoft, time.Hour, []string{"tiktok"})
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if l.ID == "" {
		t.Error("lock has empty id")
	}
	if !l.StartedAt.Equal(clock.t) {
		t.Errorf("StartedAt = %v, want %v", l.StartedAt, clock.t)
	}
	if !l.EndsAt.Equal(clock.t.Add(time.Hour)) {
		t.Errorf("EndsAt = %v, want %v", l.EndsAt, clock.t.Add(time.Hour))
	}
	if got := m.Remaining(); got != time.Hour {
		t.Errorf("Remaining = %v, want 1h", got)
	}
}

func TestStartPreconditions(t *testing.T) {
	m, _ := newTestManager()

	tests := []struct {
		name     string
		kind     Kind
		duration time.Duration
		apps     []string
		wantErr  error
	}{
		{"empty apps", KindSoft, time.Hour, nil, ErrNoApps},
		{"zero duration", KindSoft, 0, []string{"a"}, ErrBadDuration},
		{"negative duration", KindSoft, -time.Minute, []string{"a"}, ErrBadDuration},
		{"bad kind", Kind("medium"), time.Hour, []string{"a"}, ErrBadKind},
	}
	for _, tt := range tests {
		if _, err := m.Start(tt.kind, tt.duration, tt.apps); !errors.Is(err, tt.wantErr) {
			t.Errorf("%s: Start err = %v, want %v", tt.name, err, tt.wantErr)
		}
	}

	if _, err := m.Start(KindSoft, time.Hour, []string{"a"}); err != nil {
		t.Fatalf("valid Start: %v", err)
	}
	if _, err := m.Start(KindSoft, time.Hour, []string{"b"}); !errors.Is(err, ErrLockActive) {
		t.Errorf("second Start err = %v, want ErrLockActive", err)
	}
}

func TestCheckAndClearExpiry(t *testing.T) {
	m, clock := newTestManager()

	if _, err := m.Start(KindSoft, 10*time.Minute, []string{"a"}); err != nil {
		t.Fatal(err)
	}

	clock.advance(9 * time.Minute)
	if m.CheckAndClearExpiry() {
		t.Error("cleared lock before expiry")
	}
	if m.Active() == nil {
		t.Fatal("lock vanished before expiry")
	}

	clock.advance(time.Minute) // exactly at EndsAt
	if !m.CheckAndClearExpiry() {
		t.Error("did not clear lock at EndsAt")
	}
	if m.Active() != nil {
		t.Error("lock still active after expiry")
	}
	if got := m.Remaining(); got != 0 {
		t.Errorf("Remaining after expiry = %v, want 0", got)
	}

	// Idempotent: a second call changes nothing.
	if m.CheckAndClearExpiry() {
		t.Error("second CheckAndClearExpiry reported a clear")
	}
}

func TestExpiryWellPastEnd(t *testing.T) {
	m, clock := newTestManager()

	if _, err := m.Start(KindHard, time.Minute, []string{"a"}); err != nil {
		t.Fatal(err)
	}
	clock.advance(48 * time.Hour)

	if got := m.Remaining(); got != 0 {
		t.Errorf("Remaining on stale lock = %v, want 0", got)
	}
	if !m.CheckAndClearExpiry() {
		t.Error("stale lock not cleared")
	}
}

func TestForceEnd(t *testing.T) {
	m, _ := newTestManager()

	if _, err := m.Start(KindSoft, time.Hour, []string{"a"}); err != nil {
		t.Fatal(err)
	}
	m.ForceEnd()
	if m.Active() != nil {
		t.Error("lock active after ForceEnd")
	}

	// ForceEnd with no lock is a no-op.
	m.ForceEnd()
	if m.Active() != nil {
		t.Error("ForceEnd on empty slot produced a lock")
	}
}

func TestHardLockHasNoNaturalOverride(t *testing.T) {
	m, clock := newTestManager()

	if _, err := m.Start(KindHard, 10*time.Minute, []string{"a"}); err != nil {
		t.Fatal(err)
	}

	// Every operation short of the passage of time leaves the hard
	// lock in place.
	m.CheckAndClearExpiry()
	_ = m.Remaining()
	if _, err := m.Start(KindSoft, time.Hour, []string{"b"}); !errors.Is(err, ErrLockActive) {
		t.Errorf("Start over hard lock err = %v, want ErrLockActive", err)
	}
	if m.Active() == nil {
		t.Fatal("hard lock cleared without expiry")
	}

	clock.advance(10 * time.Minute)
	m.CheckAndClearExpiry()
	if m.Active() != nil {
		t.Error("hard lock survived expiry")
	}
}

func TestActiveReturnsCopy(t *testing.T) {
	m, _ := newTestManager()

	if _, err := m.Start(KindSoft, time.Hour, []string{"a", "b"}); err != nil {
		t.Fatal(err)
	}
	l := m.Active()
	l.AppIDs[0] = "mutated"
	if m.Active().AppIDs[0] != "a" {
		t.Error("mutating the returned lock affected the manager")
	}
}

func TestRestoreRequiresExpiryCheck(t *testing.T) {
	m, clock := newTestManager()

	stale := &ActiveLock{
		ID:        "restored",
		AppIDs:    []string{"a"},
		Kind:      KindSoft,
		StartedAt: clock.t.Add(-2 * time.Hour),
		EndsAt:    clock.t.Add(-time.Hour),
	}
	m.Restore(stale)

	if !m.CheckAndClearExpiry() {
		t.Error("stale restored lock not cleared")
	}
	if m.Active() != nil {
		t.Error("stale lock exposed after expiry check")
	}
}
