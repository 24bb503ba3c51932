package schedule

import (
	"testing"
	"time"
)

func TestTrackerFiresOncePerWindow(t *testing.T) {
	s := Schedule{
		ID:          "s1",
		AppIDs:      []string{"tiktok"},
		StartMinute: 900,
		EndMinute:   1020,
		Weekdays:    []time.Weekday{time.Monday},
	}
	tr := NewTracker()
	schedules := []Schedule{s}

	// Before the window: nothing.
	if got := tr.Poll(schedules, at(time.Monday, 14, 59)); len(got) != 0 {
		t.Errorf("fired before window: %v", got)
	}

	// Entering the window fires exactly once.
	if got := tr.Poll(schedules, at(time.Monday, 15, 0)); len(got) != 1 || got[0].ID != "s1" {
		t.Fatalf("entering window fired %v", got)
	}

	// Re-polling inside the same window does not re-trigger.
	for _, min := range []int{1, 30, 119} {
		if got := tr.Poll(schedules, at(time.Monday, 15, 0).Add(time.Duration(min)*time.Minute)); len(got) != 0 {
			t.Errorf("re-fired at +%dm: %v", min, got)
		}
	}
}

func TestTrackerFiresAgainNextWeek(t *testing.T) {
	s := Schedule{
		ID:          "s1",
		AppIDs:      []string{"tiktok"},
		StartMinute: 900,
		EndMinute:   1020,
		Weekdays:    []time.Weekday{time.Monday},
	}
	tr := NewTracker()
	schedules := []Schedule{s}

	if got := tr.Poll(schedules, at(time.Monday, 15, 5)); len(got) != 1 {
		t.Fatalf("first window fired %v", got)
	}
	nextWeek := at(time.Monday, 15, 5).AddDate(0, 0, 7)
	if got := tr.Poll(schedules, nextWeek); len(got) != 1 {
		t.Errorf("next week's window fired %v", got)
	}
}

func TestTrackerMidWindowFirstPollStillFires(t *testing.T) {
	// Process started in the middle of a window: the first poll counts
	// as the positive edge.
	s := Schedule{
		ID:          "s1",
		AppIDs:      []string{"tiktok"},
		StartMinute: 900,
		EndMinute:   1020,
		Weekdays:    []time.Weekday{time.Monday},
	}
	tr := NewTracker()

	if got := tr.Poll([]Schedule{s}, at(time.Monday, 16, 45)); len(got) != 1 {
		t.Errorf("mid-window first poll fired %v", got)
	}
}

func TestTrackerMultipleSchedules(t *testing.T) {
	a := Schedule{ID: "a", AppIDs: []string{"x"}, StartMinute: 540, EndMinute: 600, Weekdays: []time.Weekday{time.Monday}}
	b := Schedule{ID: "b", AppIDs: []string{"y"}, StartMinute: 540, EndMinute: 660, Weekdays: []time.Weekday{time.Monday}}
	tr := NewTracker()

	got := tr.Poll([]Schedule{a, b}, at(time.Monday, 9, 0))
	if len(got) != 2 {
		t.Fatalf("both schedules should fire, got %v", got)
	}

	// Only b is still in-window later; neither re-fires.
	if got := tr.Poll([]Schedule{a, b}, at(time.Monday, 10, 30)); len(got) != 0 {
		t.Errorf("re-fired: %v", got)
	}
}
