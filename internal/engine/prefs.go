package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"focuslock/internal/appcat"
	"focuslock/internal/lock"
	"focuslock/internal/questionbank"
	"focuslock/internal/schedule"
)

// Schedule validation failures.
var (
	ErrBadWindow    = errors.New("schedule window must start before it ends, within one day")
	ErrNoWeekdays   = errors.New("schedule requires at least one weekday")
	ErrScheduleApps = errors.New("schedule requires at least one app")
)

// ToggleApp flips an app in or out of the lock target selection.
func (e *Engine) ToggleApp(ctx context.Context, appID string) error {
	if err := appcat.Known([]string{appID}); err != nil {
		return err
	}
	if e.selectedApps[appID] {
		delete(e.selectedApps, appID)
	} else {
		e.selectedApps[appID] = true
	}
	return e.save(ctx)
}

// SelectOnlyApp replaces the selection with the single given app.
func (e *Engine) SelectOnlyApp(ctx context.Context, appID string) error {
	if err := appcat.Known([]string{appID}); err != nil {
		return err
	}
	e.selectedApps = map[string]bool{appID: true}
	return e.save(ctx)
}

// SelectCategory adds every app in a catalog category to the selection.
func (e *Engine) SelectCategory(ctx context.Context, c appcat.Category) error {
	apps := appcat.ByCategory(c)
	if len(apps) == 0 {
		return fmt.Errorf("unknown category %q", c)
	}
	for _, a := range apps {
		e.selectedApps[a.ID] = true
	}
	return e.save(ctx)
}

// SelectedApps returns the selected app ids in catalog order.
func (e *Engine) SelectedApps() []string {
	var out []string
	for _, a := range appcat.All() {
		if e.selectedApps[a.ID] {
			out = append(out, a.ID)
		}
	}
	return out
}

// IsSelected reports whether an app is in the lock target selection.
func (e *Engine) IsSelected(appID string) bool {
	return e.selectedApps[appID]
}

// LastDuration returns the most recently used lock duration.
func (e *Engine) LastDuration() time.Duration {
	return e.lastDuration
}

// SetLastDuration stores the duration preference without starting a lock.
func (e *Engine) SetLastDuration(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return lock.ErrBadDuration
	}
	e.lastDuration = d
	return e.save(ctx)
}

// DefaultKind returns the lock kind used for scheduled locks and
// pre-filled for manual ones.
func (e *Engine) DefaultKind() lock.Kind {
	return e.defaultKind
}

// SetDefaultKind stores the default lock kind.
func (e *Engine) SetDefaultKind(ctx context.Context, k lock.Kind) error {
	if !k.Valid() {
		return lock.ErrBadKind
	}
	e.defaultKind = k
	return e.save(ctx)
}

// StatsRange returns the stats screen range preference.
func (e *Engine) StatsRange() string {
	return e.statsRange
}

// SetStatsRange stores the stats screen range preference.
func (e *Engine) SetStatsRange(ctx context.Context, r string) error {
	switch r {
	case "day", "week", "month":
	default:
		return fmt.Errorf("unknown stats range %q", r)
	}
	e.statsRange = r
	return e.save(ctx)
}

// UsageWeek returns the weekly usage series for the stats screen.
func (e *Engine) UsageWeek() []UsagePoint {
	out := make([]UsagePoint, len(e.usageWeek))
	copy(out, e.usageWeek)
	return out
}

// TopApps returns the per-app usage list for the stats screen.
func (e *Engine) TopApps() []AppUsage {
	out := make([]AppUsage, len(e.topApps))
	copy(out, e.topApps)
	return out
}

// UpsertSchedule validates and stores a schedule. An empty id creates
// a new record; a matching id replaces the existing one in place.
func (e *Engine) UpsertSchedule(ctx context.Context, s schedule.Schedule) (schedule.Schedule, error) {
	if s.StartMinute < 0 || s.EndMinute > schedule.MinutesPerDay || s.StartMinute >= s.EndMinute {
		return schedule.Schedule{}, ErrBadWindow
	}
	if len(s.Weekdays) == 0 {
		return schedule.Schedule{}, ErrNoWeekdays
	}
	if len(s.AppIDs) == 0 {
		return schedule.Schedule{}, ErrScheduleApps
	}
	if err := appcat.Known(s.AppIDs); err != nil {
		return schedule.Schedule{}, err
	}

	stored := e.schedules.Upsert(s)
	if err := e.save(ctx); err != nil {
		return stored, err
	}
	return stored, nil
}

// ToggleScheduleFavorite flips the favorite flag on a schedule.
func (e *Engine) ToggleScheduleFavorite(ctx context.Context, id string) error {
	e.schedules.ToggleFavorite(id)
	return e.save(ctx)
}

// Schedules returns every schedule, most recent first.
func (e *Engine) Schedules() []schedule.Schedule {
	return e.schedules.All()
}

// AddCustomQuestions merges generated questions into the bank and
// persists them. Questions with colliding ids are dropped by the merge.
func (e *Engine) AddCustomQuestions(ctx context.Context, qs []questionbank.Question) error {
	if len(qs) == 0 {
		return nil
	}
	e.custom = append(e.custom, qs...)
	e.bank = e.bank.WithExtra(qs)
	return e.save(ctx)
}

// CustomQuestions returns the persisted LLM-generated questions.
func (e *Engine) CustomQuestions() []questionbank.Question {
	out := make([]questionbank.Question, len(e.custom))
	copy(out, e.custom)
	return out
}
