package challenge

import (
	"math/rand/v2"
	"testing"

	"focuslock/internal/questionbank"
)

func testBank(t *testing.T) *questionbank.Bank {
	t.Helper()
	return questionbank.Seed()
}

func TestSelectSizeLaw(t *testing.T) {
	bank := testBank(t)
	sel := NewSelector(bank)

	for difficulty := 1; difficulty <= 5; difficulty++ {
		for _, count := range []int{1, 3, 5, bank.Size(), bank.Size() + 10} {
			got := sel.Select(difficulty, count)
			want := count
			if bank.Size() < want {
				want = bank.Size()
			}
			if len(got) != want {
				t.Errorf("Select(%d, %d) returned %d questions, want %d",
					difficulty, count, len(got), want)
			}
		}
	}
}

func TestSelectNoDuplicates(t *testing.T) {
	bank := testBank(t)
	sel := NewSelector(bank)

	for difficulty := 1; difficulty <= 5; difficulty++ {
		got := sel.Select(difficulty, bank.Size())
		seen := make(map[string]bool)
		for _, q := range got {
			if seen[q.ID] {
				t.Errorf("Select(%d, %d) returned duplicate id %q", difficulty, bank.Size(), q.ID)
			}
			seen[q.ID] = true
		}
	}
}

func TestSelectRespectsDifficultyWhenPoolSuffices(t *testing.T) {
	bank := testBank(t)
	sel := NewSelector(bank)

	// Difficulty 1 pool has several questions; a request it can cover
	// must not pull in harder questions.
	pool := bank.ByMaxDifficulty(1)
	got := sel.Select(1, len(pool))
	for _, q := range got {
		if q.Difficulty > 1 {
			t.Errorf("Select(1, %d) returned %s with difficulty %d", len(pool), q.ID, q.Difficulty)
		}
	}
}

func TestSelectTopsUpFromFullBank(t *testing.T) {
	bank := testBank(t)
	sel := NewSelector(bank)

	pool := bank.ByMaxDifficulty(1)
	count := len(pool) + 2
	got := sel.Select(1, count)
	if len(got) != count {
		t.Fatalf("Select(1, %d) returned %d questions", count, len(got))
	}

	easy := 0
	for _, q := range got {
		if q.Difficulty <= 1 {
			easy++
		}
	}
	if easy != len(pool) {
		t.Errorf("expected all %d difficulty-1 questions before top-up, got %d", len(pool), easy)
	}
}

func TestSelectClampsDifficulty(t *testing.T) {
	bank := testBank(t)
	sel := NewSelector(bank)

	if got := sel.Select(0, 3); len(got) != 3 {
		t.Errorf("Select(0, 3) returned %d questions", len(got))
	}
	if got := sel.Select(99, 3); len(got) != 3 {
		t.Errorf("Select(99, 3) returned %d questions", len(got))
	}
	if got := sel.Select(3, 0); got != nil {
		t.Errorf("Select(3, 0) = %v, want nil", got)
	}
}

func TestSelectSeededRandIsDeterministic(t *testing.T) {
	bank := testBank(t)

	pick := func() []string {
		rng := rand.New(rand.NewPCG(7, 7))
		sel := NewSelectorWithRand(bank, rng)
		var ids []string
		for _, q := range sel.Select(5, 6) {
			ids = append(ids, q.ID)
		}
		return ids
	}

	a, b := pick(), pick()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("seeded selection differs at %d: %v vs %v", i, a, b)
		}
	}
}

func TestQuestionCount(t *testing.T) {
	tests := []struct {
		difficulty int
		want       int
	}{
		{1, 5},
		{2, 7},
		{3, 9},
		{4, 10},
		{5, 10},
		{0, 5},  // clamped up
		{9, 10}, // clamped down
	}
	for _, tt := range tests {
		if got := QuestionCount(tt.difficulty); got != tt.want {
			t.Errorf("QuestionCount(%d) = %d, want %d", tt.difficulty, got, tt.want)
		}
	}
}
