package engine

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"
	"time"

	"focuslock/internal/appcat"
	"focuslock/internal/lock"
	"focuslock/internal/questionbank"
	"focuslock/internal/schedule"
	"focuslock/internal/store"
)

// memSnapshots is an in-memory SnapshotRepo.
type memSnapshots struct {
	snaps []*store.Snapshot
}

func (m *memSnapshots) Save(_ context.Context, snap *store.Snapshot) error {
	c := *snap
	m.snaps = append(m.snaps, &c)
	return nil
}

func (m *memSnapshots) Latest(_ context.Context) (*store.Snapshot, error) {
	if len(m.snaps) == 0 {
		return nil, nil
	}
	c := *m.snaps[len(m.snaps)-1]
	return &c, nil
}

func (m *memSnapshots) Prune(_ context.Context, keep int) error {
	if len(m.snaps) > keep {
		m.snaps = m.snaps[len(m.snaps)-keep:]
	}
	return nil
}

// memEvents is an in-memory EventRepo.
type memEvents struct {
	seq        int64
	lockEvents []store.LockEventData
	challenges []store.ChallengeEventData
	llm        []store.LLMRequestEventData
}

func (m *memEvents) NextSequence(_ context.Context) (int64, error) {
	m.seq++
	return m.seq, nil
}

func (m *memEvents) AppendLockEvent(_ context.Context, d store.LockEventData) error {
	m.lockEvents = append(m.lockEvents, d)
	return nil
}

func (m *memEvents) AppendChallengeEvent(_ context.Context, d store.ChallengeEventData) error {
	m.challenges = append(m.challenges, d)
	return nil
}

func (m *memEvents) AppendLLMRequest(_ context.Context, d store.LLMRequestEventData) error {
	m.llm = append(m.llm, d)
	return nil
}

func (m *memEvents) QueryLockEvents(_ context.Context, _ store.QueryOpts) ([]store.LockEvent, error) {
	return nil, nil
}

func (m *memEvents) QueryLLMEvents(_ context.Context, _ store.QueryOpts) ([]store.LLMRequestEvent, error) {
	return nil, nil
}

func (m *memEvents) GetLLMEvent(_ context.Context, _ int) (*store.LLMRequestEvent, error) {
	return nil, nil
}

func (m *memEvents) LLMUsageByPurpose(_ context.Context) ([]store.LLMPurposeUsage, error) {
	return nil, nil
}

func (m *memEvents) LLMUsageByModel(_ context.Context) ([]store.LLMModelUsage, error) {
	return nil, nil
}

func (m *memEvents) ChallengeStats(_ context.Context) (int, int, error) {
	total := len(m.challenges)
	ok := 0
	for _, c := range m.challenges {
		if c.Success {
			ok++
		}
	}
	return total, ok, nil
}

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestEngine(t *testing.T) (*Engine, *memSnapshots, *memEvents, *fakeClock) {
	t.Helper()
	clock := &fakeClock{t: time.Date(2025, time.June, 2, 9, 0, 0, 0, time.UTC)} // a Monday
	snaps := &memSnapshots{}
	events := &memEvents{}
	e := New(Options{
		Snapshots: snaps,
		Events:    events,
		Clock:     clock.now,
		Rand:      rand.New(rand.NewPCG(11, 7)),
	})
	return e, snaps, events, clock
}

func lastLockEvent(t *testing.T, events *memEvents) store.LockEventData {
	t.Helper()
	if len(events.lockEvents) == 0 {
		t.Fatal("expected at least one lock event")
	}
	return events.lockEvents[len(events.lockEvents)-1]
}

func TestStartLockPersistsAndLogs(t *testing.T) {
	e, snaps, events, _ := newTestEngine(t)
	ctx := context.Background()

	if err := e.ToggleApp(ctx, "tiktok"); err != nil {
		t.Fatalf("toggle app: %v", err)
	}

	l, err := e.StartLock(ctx, lock.KindSoft, time.Hour)
	if err != nil {
		t.Fatalf("start lock: %v", err)
	}
	if e.ActiveLock() == nil {
		t.Fatal("expected active lock")
	}
	if e.Remaining() != time.Hour {
		t.Errorf("remaining = %s, want 1h", e.Remaining())
	}
	if e.LastDuration() != time.Hour {
		t.Errorf("last duration = %s, want 1h", e.LastDuration())
	}

	ev := lastLockEvent(t, events)
	if ev.Action != "start" || ev.Trigger != "manual" || ev.LockID != l.ID {
		t.Errorf("unexpected start event: %+v", ev)
	}
	if ev.DurationMs != time.Hour.Milliseconds() {
		t.Errorf("duration_ms = %d", ev.DurationMs)
	}

	if len(snaps.snaps) == 0 {
		t.Fatal("expected a persisted snapshot")
	}
	latest, _ := snaps.Latest(ctx)
	if latest.Data.ActiveLock == nil || latest.Data.ActiveLock.ID != l.ID {
		t.Errorf("snapshot lock = %+v", latest.Data.ActiveLock)
	}
}

func TestStartLockRequiresSelection(t *testing.T) {
	e, _, _, _ := newTestEngine(t)

	_, err := e.StartLock(context.Background(), lock.KindSoft, time.Hour)
	if !errors.Is(err, lock.ErrNoApps) {
		t.Fatalf("err = %v, want ErrNoApps", err)
	}
}

func TestSelectCategory(t *testing.T) {
	e, _, _, _ := newTestEngine(t)
	ctx := context.Background()

	if err := e.SelectCategory(ctx, appcat.CategorySocial); err != nil {
		t.Fatalf("select category: %v", err)
	}
	want := len(appcat.ByCategory(appcat.CategorySocial))
	if got := len(e.SelectedApps()); got != want {
		t.Errorf("selected = %d, want %d", got, want)
	}

	// Selection is additive, not a replacement.
	if err := e.ToggleApp(ctx, "youtube"); err != nil {
		t.Fatalf("toggle app: %v", err)
	}
	if err := e.SelectCategory(ctx, appcat.CategoryGames); err != nil {
		t.Fatalf("select second category: %v", err)
	}
	want += len(appcat.ByCategory(appcat.CategoryGames)) + 1
	if got := len(e.SelectedApps()); got != want {
		t.Errorf("selected = %d, want %d", got, want)
	}

	if err := e.SelectCategory(ctx, "nope"); err == nil {
		t.Error("expected error for unknown category")
	}
}

func TestExpiryClearsAndLogs(t *testing.T) {
	e, _, events, clock := newTestEngine(t)
	ctx := context.Background()

	_ = e.ToggleApp(ctx, "instagram")
	l, err := e.StartLock(ctx, lock.KindSoft, 30*time.Minute)
	if err != nil {
		t.Fatalf("start lock: %v", err)
	}

	// Not yet expired.
	cleared, err := e.CheckExpiry(ctx)
	if err != nil || cleared {
		t.Fatalf("premature clear: %v %v", cleared, err)
	}

	clock.advance(30 * time.Minute)
	cleared, err = e.CheckExpiry(ctx)
	if err != nil {
		t.Fatalf("check expiry: %v", err)
	}
	if !cleared {
		t.Fatal("expected lock to clear at its end time")
	}
	if e.ActiveLock() != nil {
		t.Fatal("expected no active lock")
	}

	ev := lastLockEvent(t, events)
	if ev.Action != "expire" || ev.LockID != l.ID {
		t.Errorf("unexpected expire event: %+v", ev)
	}

	// Idempotent.
	cleared, err = e.CheckExpiry(ctx)
	if err != nil || cleared {
		t.Fatalf("second check should be a no-op: %v %v", cleared, err)
	}
}

func TestEndLockEarlySoftOnly(t *testing.T) {
	e, _, events, clock := newTestEngine(t)
	ctx := context.Background()
	_ = e.ToggleApp(ctx, "tiktok")

	// Soft locks can end early.
	if _, err := e.StartLock(ctx, lock.KindSoft, time.Hour); err != nil {
		t.Fatalf("start soft: %v", err)
	}
	if err := e.EndLockEarly(ctx); err != nil {
		t.Fatalf("end early: %v", err)
	}
	if e.ActiveLock() != nil {
		t.Fatal("expected soft lock gone")
	}
	if ev := lastLockEvent(t, events); ev.Action != "force_end" {
		t.Errorf("unexpected event: %+v", ev)
	}

	// Hard locks refuse and only time clears them.
	if _, err := e.StartLock(ctx, lock.KindHard, 10*time.Minute); err != nil {
		t.Fatalf("start hard: %v", err)
	}
	if err := e.EndLockEarly(ctx); !errors.Is(err, ErrHardLock) {
		t.Fatalf("err = %v, want ErrHardLock", err)
	}
	if e.ActiveLock() == nil {
		t.Fatal("hard lock must survive the refused end")
	}

	clock.advance(10 * time.Minute)
	if cleared, _ := e.CheckExpiry(ctx); !cleared {
		t.Fatal("hard lock should clear by expiry")
	}

	// No active lock at all.
	if err := e.EndLockEarly(ctx); !errors.Is(err, ErrNoActiveLock) {
		t.Fatalf("err = %v, want ErrNoActiveLock", err)
	}
}

func TestChallengeSuccessUnlocksSoftLock(t *testing.T) {
	e, _, events, _ := newTestEngine(t)
	ctx := context.Background()
	_ = e.ToggleApp(ctx, "youtube")

	if _, err := e.StartLock(ctx, lock.KindSoft, time.Hour); err != nil {
		t.Fatalf("start: %v", err)
	}

	s := e.NewChallenge()
	if len(s.Questions) == 0 {
		t.Fatal("expected questions")
	}
	for _, q := range s.Questions {
		s.Answer(q.ID, q.AnswerIndex)
	}

	success, err := e.CompleteChallenge(ctx, s)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if !success {
		t.Fatal("expected success")
	}
	if e.ActiveLock() != nil {
		t.Fatal("expected soft lock ended by successful challenge")
	}
	if d := e.Difficulty(); d.Streak != 1 {
		t.Errorf("streak = %d, want 1", d.Streak)
	}

	if len(events.challenges) != 1 {
		t.Fatalf("expected 1 challenge event, got %d", len(events.challenges))
	}
	ce := events.challenges[0]
	if !ce.Success || ce.CorrectCount != len(s.Questions) {
		t.Errorf("challenge event = %+v", ce)
	}
}

func TestChallengeNeverUnlocksHardLock(t *testing.T) {
	e, _, _, _ := newTestEngine(t)
	ctx := context.Background()
	_ = e.ToggleApp(ctx, "tiktok")

	if _, err := e.StartLock(ctx, lock.KindHard, time.Hour); err != nil {
		t.Fatalf("start: %v", err)
	}

	s := e.NewChallenge()
	for _, q := range s.Questions {
		s.Answer(q.ID, q.AnswerIndex)
	}
	success, err := e.CompleteChallenge(ctx, s)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if !success {
		t.Fatal("expected success")
	}
	if e.ActiveLock() == nil {
		t.Fatal("hard lock must survive a successful challenge")
	}
}

func TestChallengeFailureDemotes(t *testing.T) {
	e, _, events, _ := newTestEngine(t)
	ctx := context.Background()

	s := e.NewChallenge()
	for _, q := range s.Questions {
		s.Answer(q.ID, (q.AnswerIndex+1)%len(q.Choices))
	}

	success, err := e.CompleteChallenge(ctx, s)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if success {
		t.Fatal("expected failure")
	}
	if d := e.Difficulty(); d.Level != 1 || d.Streak != 0 {
		t.Errorf("difficulty = %+v, want level 1 streak 0", d)
	}
	if events.challenges[0].DifficultyAfter != 1 {
		t.Errorf("difficulty_after = %d", events.challenges[0].DifficultyAfter)
	}
}

func TestFullLockAndDifficultyFlow(t *testing.T) {
	e, _, _, _ := newTestEngine(t)
	ctx := context.Background()
	_ = e.ToggleApp(ctx, "instagram")

	// Soft lock for one app, ended early immediately.
	if _, err := e.StartLock(ctx, lock.KindSoft, time.Hour); err != nil {
		t.Fatalf("start soft: %v", err)
	}
	if err := e.EndLockEarly(ctx); err != nil {
		t.Fatalf("end early: %v", err)
	}
	if e.ActiveLock() != nil {
		t.Fatal("expected no active lock")
	}

	// Hard lock refuses the early end.
	if _, err := e.StartLock(ctx, lock.KindHard, 10*time.Minute); err != nil {
		t.Fatalf("start hard: %v", err)
	}
	if err := e.EndLockEarly(ctx); !errors.Is(err, ErrHardLock) {
		t.Fatalf("err = %v, want ErrHardLock", err)
	}

	// Three successes from the default level promote once.
	for i := 0; i < 3; i++ {
		if _, err := e.RecordChallengeOutcome(ctx, true); err != nil {
			t.Fatalf("record success %d: %v", i, err)
		}
	}
	if d := e.Difficulty(); d.Level != 3 || d.Streak != 0 {
		t.Fatalf("difficulty = %+v, want level 3 streak 0", d)
	}

	// One more success only grows the streak.
	if _, err := e.RecordChallengeOutcome(ctx, true); err != nil {
		t.Fatalf("record success: %v", err)
	}
	if d := e.Difficulty(); d.Level != 3 || d.Streak != 1 {
		t.Fatalf("difficulty = %+v, want level 3 streak 1", d)
	}

	// A failure demotes and resets.
	if _, err := e.RecordChallengeOutcome(ctx, false); err != nil {
		t.Fatalf("record failure: %v", err)
	}
	if d := e.Difficulty(); d.Level != 2 || d.Streak != 0 {
		t.Fatalf("difficulty = %+v, want level 2 streak 0", d)
	}
}

func TestScheduledLockAutoStart(t *testing.T) {
	e, _, events, clock := newTestEngine(t)
	ctx := context.Background()

	// Window 9:30-10:30 on Mondays.
	s, err := e.UpsertSchedule(ctx, schedule.Schedule{
		AppIDs:      []string{"tiktok", "instagram"},
		StartMinute: 9*60 + 30,
		EndMinute:   10*60 + 30,
		Weekdays:    []time.Weekday{time.Monday},
	})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}

	// Before the window: nothing fires.
	started, err := e.PollSchedules(ctx, clock.now())
	if err != nil {
		t.Fatalf("poll: %v", err)
	}
	if len(started) != 0 {
		t.Fatalf("premature start: %v", started)
	}

	// Inside the window: one lock starts, for the rest of the window.
	clock.advance(45 * time.Minute) // 9:45
	started, err = e.PollSchedules(ctx, clock.now())
	if err != nil {
		t.Fatalf("poll: %v", err)
	}
	if len(started) != 1 {
		t.Fatalf("started = %v, want one lock", started)
	}
	if got := e.Remaining(); got != 45*time.Minute {
		t.Errorf("remaining = %s, want 45m", got)
	}

	ev := lastLockEvent(t, events)
	if ev.Trigger != "schedule" || ev.ScheduleID != s.ID {
		t.Errorf("unexpected event: %+v", ev)
	}

	// Re-polling the same window does not re-fire, even after the
	// user ends the lock.
	if err := e.EndLockEarly(ctx); err != nil {
		t.Fatalf("end early: %v", err)
	}
	clock.advance(5 * time.Minute)
	started, err = e.PollSchedules(ctx, clock.now())
	if err != nil {
		t.Fatalf("poll: %v", err)
	}
	if len(started) != 0 {
		t.Fatal("window instance must fire at most once")
	}

	// Next week's instance fires again.
	clock.advance(7 * 24 * time.Hour)
	started, err = e.PollSchedules(ctx, clock.now())
	if err != nil {
		t.Fatalf("poll: %v", err)
	}
	if len(started) != 1 {
		t.Fatal("expected next week's window to fire")
	}
}

func TestScheduledLockYieldsToActiveLock(t *testing.T) {
	e, _, _, clock := newTestEngine(t)
	ctx := context.Background()
	_ = e.ToggleApp(ctx, "browser")

	if _, err := e.UpsertSchedule(ctx, schedule.Schedule{
		AppIDs:      []string{"tiktok"},
		StartMinute: 9 * 60,
		EndMinute:   10 * 60,
		Weekdays:    []time.Weekday{time.Monday},
	}); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	manual, err := e.StartLock(ctx, lock.KindSoft, 2*time.Hour)
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	started, err := e.PollSchedules(ctx, clock.now())
	if err != nil {
		t.Fatalf("poll: %v", err)
	}
	if len(started) != 0 {
		t.Fatal("schedule must not replace the active lock")
	}
	if l := e.ActiveLock(); l == nil || l.ID != manual.ID {
		t.Fatal("manual lock must survive")
	}
}

func TestUpsertScheduleValidation(t *testing.T) {
	e, _, _, _ := newTestEngine(t)
	ctx := context.Background()

	tests := []struct {
		name string
		s    schedule.Schedule
		want error
	}{
		{
			name: "inverted window",
			s: schedule.Schedule{
				AppIDs:      []string{"tiktok"},
				StartMinute: 600,
				EndMinute:   540,
				Weekdays:    []time.Weekday{time.Monday},
			},
			want: ErrBadWindow,
		},
		{
			name: "degenerate window",
			s: schedule.Schedule{
				AppIDs:      []string{"tiktok"},
				StartMinute: 600,
				EndMinute:   600,
				Weekdays:    []time.Weekday{time.Monday},
			},
			want: ErrBadWindow,
		},
		{
			name: "no weekdays",
			s: schedule.Schedule{
				AppIDs:      []string{"tiktok"},
				StartMinute: 540,
				EndMinute:   600,
			},
			want: ErrNoWeekdays,
		},
		{
			name: "no apps",
			s: schedule.Schedule{
				StartMinute: 540,
				EndMinute:   600,
				Weekdays:    []time.Weekday{time.Monday},
			},
			want: ErrScheduleApps,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.UpsertSchedule(ctx, tt.s)
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestLoadRestoresState(t *testing.T) {
	clock := &fakeClock{t: time.Date(2025, time.June, 2, 9, 0, 0, 0, time.UTC)}
	snaps := &memSnapshots{}
	events := &memEvents{}
	ctx := context.Background()

	first := New(Options{Snapshots: snaps, Events: events, Clock: clock.now})
	_ = first.ToggleApp(ctx, "tiktok")
	_ = first.ToggleApp(ctx, "youtube")
	if _, err := first.RecordChallengeOutcome(ctx, true); err != nil {
		t.Fatalf("record: %v", err)
	}
	if _, err := first.UpsertSchedule(ctx, schedule.Schedule{
		AppIDs:      []string{"tiktok"},
		StartMinute: 540,
		EndMinute:   600,
		Weekdays:    []time.Weekday{time.Monday, time.Friday},
		Favorite:    true,
	}); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if _, err := first.StartLock(ctx, lock.KindSoft, time.Hour); err != nil {
		t.Fatalf("start: %v", err)
	}

	second := New(Options{Snapshots: snaps, Events: events, Clock: clock.now})
	if err := second.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}

	if got := second.SelectedApps(); len(got) != 2 {
		t.Errorf("selected apps = %v", got)
	}
	if d := second.Difficulty(); d.Level != 2 || d.Streak != 1 {
		t.Errorf("difficulty = %+v", d)
	}
	if got := second.Schedules(); len(got) != 1 || !got[0].Favorite {
		t.Errorf("schedules = %+v", got)
	}
	if second.ActiveLock() == nil {
		t.Fatal("expected restored lock")
	}
	if got := second.LastDuration(); got != time.Hour {
		t.Errorf("last duration = %s", got)
	}
}

func TestLoadClearsStaleLock(t *testing.T) {
	clock := &fakeClock{t: time.Date(2025, time.June, 2, 9, 0, 0, 0, time.UTC)}
	snaps := &memSnapshots{}
	events := &memEvents{}
	ctx := context.Background()

	first := New(Options{Snapshots: snaps, Events: events, Clock: clock.now})
	_ = first.ToggleApp(ctx, "tiktok")
	l, err := first.StartLock(ctx, lock.KindSoft, time.Hour)
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	// The app comes back two hours later.
	clock.advance(2 * time.Hour)
	second := New(Options{Snapshots: snaps, Events: events, Clock: clock.now})
	if err := second.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}
	if second.ActiveLock() != nil {
		t.Fatal("stale lock must be cleared on load")
	}

	ev := lastLockEvent(t, events)
	if ev.Action != "expire" || ev.LockID != l.ID {
		t.Errorf("unexpected event: %+v", ev)
	}
}

func TestAddCustomQuestionsGrowsBank(t *testing.T) {
	e, snaps, _, _ := newTestEngine(t)
	ctx := context.Background()

	before := e.Bank().Size()
	extra := []questionbank.Question{{
		ID:          "c-new",
		Category:    questionbank.CategoryMath,
		Difficulty:  2,
		Prompt:      "What is 15 + 27?",
		Choices:     []string{"42", "41", "43", "44"},
		AnswerIndex: 0,
	}}

	if err := e.AddCustomQuestions(ctx, extra); err != nil {
		t.Fatalf("add: %v", err)
	}
	if got := e.Bank().Size(); got != before+1 {
		t.Errorf("bank size = %d, want %d", got, before+1)
	}

	latest, _ := snaps.Latest(ctx)
	if len(latest.Data.CustomQuestions) != 1 {
		t.Errorf("persisted custom questions = %+v", latest.Data.CustomQuestions)
	}

	// A fresh engine restores the merged bank.
	second := New(Options{Snapshots: snaps, Events: &memEvents{}})
	if err := second.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := second.Bank().Size(); got != before+1 {
		t.Errorf("restored bank size = %d, want %d", got, before+1)
	}
}
