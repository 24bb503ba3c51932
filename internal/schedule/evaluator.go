package schedule

import "time"

// MinuteOfDay returns the minute-of-day for t in its own location.
func MinuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// MatchesAt reports whether t falls inside the schedule's window: the
// weekday is active and the minute-of-day is in [StartMinute,
// EndMinute). The end minute itself is outside the window. Degenerate
// records (StartMinute >= EndMinute) never match.
func MatchesAt(s Schedule, t time.Time) bool {
	if !s.OnWeekday(t.Weekday()) {
		return false
	}
	m := MinuteOfDay(t)
	return m >= s.StartMinute && m < s.EndMinute
}

// RemainingWindow returns the duration from t until the window's end
// minute, or 0 when t is not inside the window. Used as the lock
// duration when a schedule auto-starts a lock.
func RemainingWindow(s Schedule, t time.Time) time.Duration {
	if !MatchesAt(s, t) {
		return 0
	}
	end := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location()).
		Add(time.Duration(s.EndMinute) * time.Minute)
	return end.Sub(t)
}
