package schedules

import (
	"testing"
	"time"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"09:00", 540, false},
		{"00:00", 0, false},
		{"23:59", 1439, false},
		{"24:00", 1440, false},
		{" 17:30 ", 1050, false},
		{"24:01", 0, true},
		{"25:00", 0, true},
		{"09:60", 0, true},
		{"9", 0, true},
		{"nine:00", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseClock(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseClock(%q) = %d, want error", tt.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseClock(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("parseClock(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseWeekdays(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    []time.Weekday
		wantErr bool
	}{
		{"spaces", "mon tue wed", []time.Weekday{time.Monday, time.Tuesday, time.Wednesday}, false},
		{"commas", "sat,sun", []time.Weekday{time.Sunday, time.Saturday}, false},
		{"full names", "monday friday", []time.Weekday{time.Monday, time.Friday}, false},
		{"mixed case", "MON Fri", []time.Weekday{time.Monday, time.Friday}, false},
		{"duplicates collapse", "mon mon monday", []time.Weekday{time.Monday}, false},
		{"empty", "", nil, true},
		{"unknown day", "mon xyz", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseWeekdays(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseWeekdays(%q) = %v, want error", tt.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseWeekdays(%q): %v", tt.in, err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("parseWeekdays(%q) = %v, want %v", tt.in, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("parseWeekdays(%q)[%d] = %v, want %v", tt.in, i, got[i], tt.want[i])
				}
			}
		})
	}
}
