package questionbank

import "testing"

func TestSeedBankInvariants(t *testing.T) {
	b := Seed()

	if b.Size() == 0 {
		t.Fatal("seed bank is empty")
	}

	seen := make(map[string]bool)
	for _, q := range b.All() {
		if q.ID == "" {
			t.Errorf("question with empty id: %q", q.Prompt)
		}
		if seen[q.ID] {
			t.Errorf("duplicate question id %q", q.ID)
		}
		seen[q.ID] = true

		if q.Difficulty < MinDifficulty || q.Difficulty > MaxDifficulty {
			t.Errorf("question %s: difficulty %d out of range", q.ID, q.Difficulty)
		}
		if len(q.Choices) < 2 {
			t.Errorf("question %s: only %d choices", q.ID, len(q.Choices))
		}
		if q.AnswerIndex < 0 || q.AnswerIndex >= len(q.Choices) {
			t.Errorf("question %s: answer index %d out of range", q.ID, q.AnswerIndex)
		}
		if q.Category != CategoryMath && q.Category != CategoryLogic && q.Category != CategoryReading {
			t.Errorf("question %s: unknown category %q", q.ID, q.Category)
		}
	}
}

func TestByMaxDifficulty(t *testing.T) {
	b := Seed()

	for max := MinDifficulty; max <= MaxDifficulty; max++ {
		for _, q := range b.ByMaxDifficulty(max) {
			if q.Difficulty > max {
				t.Errorf("ByMaxDifficulty(%d) returned %s with difficulty %d", max, q.ID, q.Difficulty)
			}
		}
	}

	if got, want := len(b.ByMaxDifficulty(MaxDifficulty)), b.Size(); got != want {
		t.Errorf("ByMaxDifficulty(%d) = %d questions, want %d", MaxDifficulty, got, want)
	}
}

func TestGet(t *testing.T) {
	b := Seed()

	q, ok := b.Get("m-1")
	if !ok {
		t.Fatal("Get(m-1) not found")
	}
	if q.Category != CategoryMath {
		t.Errorf("m-1 category = %q, want math", q.Category)
	}

	if _, ok := b.Get("nope"); ok {
		t.Error("Get(nope) found a question")
	}
}

func TestWithExtra(t *testing.T) {
	b := Seed()
	before := b.Size()

	extra := []Question{
		{ID: "x-1", Category: CategoryLogic, Difficulty: 2, Prompt: "p", Choices: []string{"a", "b"}, AnswerIndex: 0},
		{ID: "m-1", Category: CategoryMath, Difficulty: 1, Prompt: "dup", Choices: []string{"a", "b"}, AnswerIndex: 0},
	}
	merged := b.WithExtra(extra)

	if merged.Size() != before+1 {
		t.Errorf("merged size = %d, want %d (duplicate id must be skipped)", merged.Size(), before+1)
	}
	if b.Size() != before {
		t.Error("WithExtra mutated the receiver")
	}
	if q, ok := merged.Get("m-1"); !ok || q.Prompt == "dup" {
		t.Error("duplicate extra replaced the original question")
	}
}
