package schedule

import (
	"testing"
	"time"
)

// at builds a time on the given weekday at hh:mm. June 2025: the 1st
// is a Sunday.
func at(day time.Weekday, hour, min int) time.Time {
	return time.Date(2025, 6, 1+int(day), hour, min, 0, 0, time.UTC)
}

func TestMatchesAtHalfOpenBoundary(t *testing.T) {
	s := Schedule{
		ID:          "s1",
		AppIDs:      []string{"tiktok"},
		StartMinute: 900, // 15:00
		EndMinute:   1020, // 17:00
		Weekdays:    []time.Weekday{time.Monday},
	}

	tests := []struct {
		hour, min int
		want      bool
	}{
		{14, 59, false},
		{15, 0, true},  // start minute is inside
		{16, 59, true}, // last minute inside
		{17, 0, false}, // end minute is outside
		{17, 1, false},
	}
	for _, tt := range tests {
		got := MatchesAt(s, at(time.Monday, tt.hour, tt.min))
		if got != tt.want {
			t.Errorf("MatchesAt(Mon %02d:%02d) = %v, want %v", tt.hour, tt.min, got, tt.want)
		}
	}
}

func TestMatchesAtWeekday(t *testing.T) {
	s := Schedule{
		ID:          "s1",
		AppIDs:      []string{"tiktok"},
		StartMinute: 540,
		EndMinute:   600,
		Weekdays:    []time.Weekday{time.Monday, time.Wednesday},
	}

	if !MatchesAt(s, at(time.Monday, 9, 30)) {
		t.Error("Monday inside window did not match")
	}
	if !MatchesAt(s, at(time.Wednesday, 9, 30)) {
		t.Error("Wednesday inside window did not match")
	}
	if MatchesAt(s, at(time.Tuesday, 9, 30)) {
		t.Error("Tuesday matched")
	}
}

func TestDegenerateWindowNeverMatches(t *testing.T) {
	s := Schedule{
		ID:          "s1",
		AppIDs:      []string{"tiktok"},
		StartMinute: 600,
		EndMinute:   600,
		Weekdays:    []time.Weekday{time.Monday},
	}
	for min := 0; min < MinutesPerDay; min += 30 {
		if MatchesAt(s, at(time.Monday, min/60, min%60)) {
			t.Fatalf("degenerate window matched at minute %d", min)
		}
	}

	s.EndMinute = 500 // inverted
	if MatchesAt(s, at(time.Monday, 9, 30)) {
		t.Error("inverted window matched")
	}
}

func TestRemainingWindow(t *testing.T) {
	s := Schedule{
		ID:          "s1",
		AppIDs:      []string{"tiktok"},
		StartMinute: 900,
		EndMinute:   1020,
		Weekdays:    []time.Weekday{time.Monday},
	}

	if got, want := RemainingWindow(s, at(time.Monday, 15, 0)), 2*time.Hour; got != want {
		t.Errorf("RemainingWindow at start = %v, want %v", got, want)
	}
	if got, want := RemainingWindow(s, at(time.Monday, 16, 30)), 30*time.Minute; got != want {
		t.Errorf("RemainingWindow mid-window = %v, want %v", got, want)
	}
	if got := RemainingWindow(s, at(time.Monday, 17, 0)); got != 0 {
		t.Errorf("RemainingWindow outside = %v, want 0", got)
	}
}

func TestUpsertNewPrepends(t *testing.T) {
	c := NewCollection(nil)

	first := c.Upsert(Schedule{AppIDs: []string{"a"}, StartMinute: 60, EndMinute: 120, Weekdays: []time.Weekday{time.Monday}})
	if first.ID == "" {
		t.Fatal("Upsert did not assign an id")
	}

	second := c.Upsert(Schedule{AppIDs: []string{"b"}, StartMinute: 60, EndMinute: 120, Weekdays: []time.Weekday{time.Tuesday}})

	all := c.All()
	if len(all) != 2 {
		t.Fatalf("collection has %d schedules, want 2", len(all))
	}
	if all[0].ID != second.ID || all[1].ID != first.ID {
		t.Error("new schedules are not most-recent-first")
	}
}

func TestUpsertExistingReplacesInPlace(t *testing.T) {
	c := NewCollection(nil)
	a := c.Upsert(Schedule{AppIDs: []string{"a"}, StartMinute: 60, EndMinute: 120, Weekdays: []time.Weekday{time.Monday}})
	b := c.Upsert(Schedule{AppIDs: []string{"b"}, StartMinute: 60, EndMinute: 120, Weekdays: []time.Weekday{time.Monday}})

	a.StartMinute = 90
	c.Upsert(a)

	all := c.All()
	if all[0].ID != b.ID {
		t.Error("replacement moved the record")
	}
	if all[1].ID != a.ID || all[1].StartMinute != 90 {
		t.Errorf("record not replaced in place: %+v", all[1])
	}
}

func TestToggleFavorite(t *testing.T) {
	c := NewCollection(nil)
	s := c.Upsert(Schedule{AppIDs: []string{"a"}, StartMinute: 60, EndMinute: 120, Weekdays: []time.Weekday{time.Monday}})

	c.ToggleFavorite(s.ID)
	got, _ := c.Get(s.ID)
	if !got.Favorite {
		t.Error("favorite not set")
	}
	c.ToggleFavorite(s.ID)
	got, _ = c.Get(s.ID)
	if got.Favorite {
		t.Error("favorite not cleared")
	}

	c.ToggleFavorite("missing") // no-op
}
