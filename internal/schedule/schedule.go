package schedule

import (
	"time"

	"github.com/google/uuid"
)

// MinutesPerDay bounds the minute-of-day fields.
const MinutesPerDay = 24 * 60

// Schedule is a recurring weekly restriction window. Windows are
// half-open [StartMinute, EndMinute) and may not span midnight;
// a record with StartMinute >= EndMinute never matches (the caller
// layer is expected to reject such input, see Evaluator).
type Schedule struct {
	ID          string
	AppIDs      []string
	StartMinute int            // minutes from midnight, [0, 1440)
	EndMinute   int            // minutes from midnight, [0, 1440)
	Weekdays    []time.Weekday // non-empty subset of Sunday..Saturday
	Favorite    bool           // display-only
}

// OnWeekday reports whether the schedule is active on the given day.
func (s Schedule) OnWeekday(d time.Weekday) bool {
	for _, w := range s.Weekdays {
		if w == d {
			return true
		}
	}
	return false
}

// Collection holds the schedule records, most recent first.
type Collection struct {
	schedules []Schedule
}

// NewCollection creates a collection with the given records.
func NewCollection(schedules []Schedule) *Collection {
	c := &Collection{schedules: make([]Schedule, len(schedules))}
	copy(c.schedules, schedules)
	return c
}

// Upsert inserts or replaces a schedule. A record with an empty id
// gets a fresh id and is prepended; a record whose id matches an
// existing one replaces it in place, keeping its position. The stored
// record is returned.
func (c *Collection) Upsert(s Schedule) Schedule {
	if s.ID == "" {
		s.ID = uuid.NewString()
		c.schedules = append([]Schedule{s}, c.schedules...)
		return s
	}
	for i := range c.schedules {
		if c.schedules[i].ID == s.ID {
			c.schedules[i] = s
			return s
		}
	}
	c.schedules = append([]Schedule{s}, c.schedules...)
	return s
}

// ToggleFavorite flips the favorite flag of the schedule with the
// given id. Unknown ids are ignored.
func (c *Collection) ToggleFavorite(id string) {
	for i := range c.schedules {
		if c.schedules[i].ID == id {
			c.schedules[i].Favorite = !c.schedules[i].Favorite
			return
		}
	}
}

// Get returns the schedule with the given id.
func (c *Collection) Get(id string) (Schedule, bool) {
	for _, s := range c.schedules {
		if s.ID == id {
			return s, true
		}
	}
	return Schedule{}, false
}

// All returns a copy of every schedule, most recent first.
func (c *Collection) All() []Schedule {
	out := make([]Schedule, len(c.schedules))
	copy(out, c.schedules)
	return out
}

// Len returns the number of schedules.
func (c *Collection) Len() int {
	return len(c.schedules)
}
