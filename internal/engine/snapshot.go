package engine

import (
	"time"

	"focuslock/internal/challenge"
	"focuslock/internal/lock"
	"focuslock/internal/questionbank"
	"focuslock/internal/schedule"
	"focuslock/internal/store"
)

// snapshotVersion is bumped when the snapshot layout changes shape.
const snapshotVersion = 1

// snapshotData exports the full engine state for persistence.
func (e *Engine) snapshotData() store.SnapshotData {
	data := store.SnapshotData{
		Version:        snapshotVersion,
		SelectedAppIDs: e.selectedApps,
		LastDuration:   durationToData(e.lastDuration),
		DefaultKind:    string(e.defaultKind),
		StatsRange:     e.statsRange,
	}

	if l := e.locks.Active(); l != nil {
		data.ActiveLock = &store.ActiveLockData{
			ID:        l.ID,
			AppIDs:    l.AppIDs,
			Kind:      string(l.Kind),
			StartedAt: l.StartedAt.Format(time.RFC3339),
			EndsAt:    l.EndsAt.Format(time.RFC3339),
		}
	}

	for _, s := range e.schedules.All() {
		data.Schedules = append(data.Schedules, store.ScheduleData{
			ID:          s.ID,
			AppIDs:      s.AppIDs,
			StartMinute: s.StartMinute,
			EndMinute:   s.EndMinute,
			Weekdays:    weekdaysToInts(s.Weekdays),
			Favorite:    s.Favorite,
		})
	}

	data.Difficulty = &store.DifficultyData{
		Level:  e.difficulty.Level,
		Streak: e.difficulty.Streak,
	}

	for _, p := range e.usageWeek {
		data.UsageWeek = append(data.UsageWeek, store.UsagePointData{Label: p.Label, Hours: p.Hours})
	}
	for _, a := range e.topApps {
		data.TopApps = append(data.TopApps, store.AppUsageData{AppID: a.AppID, MinutesPerDay: a.MinutesPerDay})
	}

	for _, q := range e.custom {
		data.CustomQuestions = append(data.CustomQuestions, store.QuestionData{
			ID:          q.ID,
			Category:    string(q.Category),
			Difficulty:  q.Difficulty,
			Prompt:      q.Prompt,
			Choices:     q.Choices,
			AnswerIndex: q.AnswerIndex,
		})
	}

	return data
}

// applySnapshot restores engine state from persisted data. Fields
// absent from the snapshot keep their seeded defaults.
func (e *Engine) applySnapshot(data store.SnapshotData) {
	if data.SelectedAppIDs != nil {
		e.selectedApps = data.SelectedAppIDs
	}
	if data.LastDuration != nil {
		e.lastDuration = dataToDuration(data.LastDuration)
	}
	if k := lock.Kind(data.DefaultKind); k.Valid() {
		e.defaultKind = k
	}
	if data.StatsRange != "" {
		e.statsRange = data.StatsRange
	}

	if data.ActiveLock != nil {
		if l := dataToLock(data.ActiveLock); l != nil {
			e.locks.Restore(l)
		}
	}

	if len(data.Schedules) > 0 {
		schedules := make([]schedule.Schedule, 0, len(data.Schedules))
		for _, sd := range data.Schedules {
			schedules = append(schedules, schedule.Schedule{
				ID:          sd.ID,
				AppIDs:      sd.AppIDs,
				StartMinute: sd.StartMinute,
				EndMinute:   sd.EndMinute,
				Weekdays:    intsToWeekdays(sd.Weekdays),
				Favorite:    sd.Favorite,
			})
		}
		e.schedules = schedule.NewCollection(schedules)
	}

	if d := data.Difficulty; d != nil {
		if d.Level >= questionbank.MinDifficulty && d.Level <= questionbank.MaxDifficulty {
			e.difficulty = challenge.DifficultyState{Level: d.Level, Streak: d.Streak}
		}
	}

	if len(data.UsageWeek) > 0 {
		e.usageWeek = nil
		for _, p := range data.UsageWeek {
			e.usageWeek = append(e.usageWeek, UsagePoint{Label: p.Label, Hours: p.Hours})
		}
	}
	if len(data.TopApps) > 0 {
		e.topApps = nil
		for _, a := range data.TopApps {
			e.topApps = append(e.topApps, AppUsage{AppID: a.AppID, MinutesPerDay: a.MinutesPerDay})
		}
	}

	if len(data.CustomQuestions) > 0 {
		e.custom = nil
		for _, qd := range data.CustomQuestions {
			e.custom = append(e.custom, questionbank.Question{
				ID:          qd.ID,
				Category:    questionbank.Category(qd.Category),
				Difficulty:  qd.Difficulty,
				Prompt:      qd.Prompt,
				Choices:     qd.Choices,
				AnswerIndex: qd.AnswerIndex,
			})
		}
		e.bank = questionbank.Seed().WithExtra(e.custom)
	}
}

// dataToLock parses a persisted lock. Returns nil when the timestamps
// do not parse; a corrupt record is dropped rather than trusted.
func dataToLock(d *store.ActiveLockData) *lock.ActiveLock {
	started, err := time.Parse(time.RFC3339, d.StartedAt)
	if err != nil {
		return nil
	}
	ends, err := time.Parse(time.RFC3339, d.EndsAt)
	if err != nil {
		return nil
	}
	k := lock.Kind(d.Kind)
	if !k.Valid() {
		return nil
	}
	return &lock.ActiveLock{
		ID:        d.ID,
		AppIDs:    d.AppIDs,
		Kind:      k,
		StartedAt: started,
		EndsAt:    ends,
	}
}

func durationToData(d time.Duration) *store.DurationData {
	days := int(d / (24 * time.Hour))
	d -= time.Duration(days) * 24 * time.Hour
	hours := int(d / time.Hour)
	d -= time.Duration(hours) * time.Hour
	minutes := int(d / time.Minute)
	return &store.DurationData{Days: days, Hours: hours, Minutes: minutes}
}

func dataToDuration(d *store.DurationData) time.Duration {
	return time.Duration(d.Days)*24*time.Hour +
		time.Duration(d.Hours)*time.Hour +
		time.Duration(d.Minutes)*time.Minute
}

func weekdaysToInts(ds []time.Weekday) []int {
	out := make([]int, len(ds))
	for i, d := range ds {
		out[i] = int(d)
	}
	return out
}

func intsToWeekdays(ds []int) []time.Weekday {
	out := make([]time.Weekday, len(ds))
	for i, d := range ds {
		out[i] = time.Weekday(d)
	}
	return out
}
