package challenge

import "testing"

func TestRecordOutcomePromotion(t *testing.T) {
	d := DifficultyState{Level: 2}

	d.RecordOutcome(true)
	d.RecordOutcome(true)
	if d.Level != 2 || d.Streak != 2 {
		t.Fatalf("after 2 successes: level %d streak %d, want 2/2", d.Level, d.Streak)
	}

	d.RecordOutcome(true)
	if d.Level != 3 || d.Streak != 0 {
		t.Fatalf("after 3rd success: level %d streak %d, want 3/0", d.Level, d.Streak)
	}

	// A lone follow-up success starts a fresh streak.
	d.RecordOutcome(true)
	if d.Level != 3 || d.Streak != 1 {
		t.Fatalf("after 4th success: level %d streak %d, want 3/1", d.Level, d.Streak)
	}
}

func TestRecordOutcomeDemotion(t *testing.T) {
	d := DifficultyState{Level: 3, Streak: 2}

	d.RecordOutcome(false)
	if d.Level != 2 || d.Streak != 0 {
		t.Fatalf("after failure: level %d streak %d, want 2/0", d.Level, d.Streak)
	}

	// Floor at 1.
	d = DifficultyState{Level: 1}
	d.RecordOutcome(false)
	if d.Level != 1 {
		t.Errorf("failure at level 1 demoted to %d", d.Level)
	}
}

func TestRecordOutcomeCapAtFive(t *testing.T) {
	d := DifficultyState{Level: 5}
	for i := 0; i < 3; i++ {
		d.RecordOutcome(true)
	}
	if d.Level != 5 || d.Streak != 0 {
		t.Errorf("promotion at cap: level %d streak %d, want 5/0", d.Level, d.Streak)
	}
}

func TestDifficultyBounds(t *testing.T) {
	// Arbitrary outcome sequences never push the level outside 1..5.
	d := NewDifficultyState()
	outcomes := []bool{true, true, true, true, true, true, true, true, true, true,
		false, false, false, false, false, false, true, false, true, true, true}
	for i, o := range outcomes {
		d.RecordOutcome(o)
		if d.Level < 1 || d.Level > 5 {
			t.Fatalf("step %d: level %d out of bounds", i, d.Level)
		}
		if d.Streak < 0 {
			t.Fatalf("step %d: negative streak %d", i, d.Streak)
		}
	}
}
