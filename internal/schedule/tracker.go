package schedule

import "time"

// Tracker performs positive-edge detection over a schedule collection:
// each poll reports the schedules whose window was just entered, and a
// window instance fires at most once. Re-polling while the window
// remains true does not re-trigger, so an auto-started lock that the
// user force-ends stays ended for the rest of that window.
//
// A window instance is identified by the schedule id plus the window's
// start instant on the matched day.
type Tracker struct {
	fired map[string]time.Time // schedule id -> window start already fired
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{fired: make(map[string]time.Time)}
}

// windowStart returns the start instant of the window instance
// containing t for schedule s. Valid only when MatchesAt(s, t).
func windowStart(s Schedule, t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location()).
		Add(time.Duration(s.StartMinute) * time.Minute)
}

// Poll evaluates every schedule at t and returns those that entered
// their window since the previous poll. Callers are expected to start
// a lock for each returned schedule with RemainingWindow as the
// duration.
func (tr *Tracker) Poll(schedules []Schedule, t time.Time) []Schedule {
	var entered []Schedule
	for _, s := range schedules {
		if !MatchesAt(s, t) {
			continue
		}
		start := windowStart(s, t)
		if last, ok := tr.fired[s.ID]; ok && last.Equal(start) {
			continue
		}
		tr.fired[s.ID] = start
		entered = append(entered, s)
	}
	return entered
}
