package challenge

import (
	"math/rand/v2"

	"focuslock/internal/questionbank"
)

// Rand is the randomness source for question selection. It is satisfied
// by *rand.Rand; tests may inject a seeded source for determinism.
type Rand interface {
	IntN(n int) int
}

// Selector draws challenge questions from a bank.
type Selector struct {
	bank *questionbank.Bank
	rng  Rand
}

// NewSelector creates a selector over the given bank using the shared
// non-seeded generator. Selection is re-randomized on every call.
func NewSelector(bank *questionbank.Bank) *Selector {
	return &Selector{bank: bank, rng: defaultRand{}}
}

// NewSelectorWithRand creates a selector with an explicit randomness
// source.
func NewSelectorWithRand(bank *questionbank.Bank, rng Rand) *Selector {
	return &Selector{bank: bank, rng: rng}
}

// defaultRand delegates to the package-level math/rand/v2 generator.
type defaultRand struct{}

func (defaultRand) IntN(n int) int { return rand.IntN(n) }

// clampDifficulty bounds a requested difficulty to the valid scale.
func clampDifficulty(d int) int {
	if d < questionbank.MinDifficulty {
		return questionbank.MinDifficulty
	}
	if d > questionbank.MaxDifficulty {
		return questionbank.MaxDifficulty
	}
	return d
}

// Select returns count questions whose difficulty is at or below the
// requested difficulty (clamped to 1..5). The eligible pool is shuffled
// uniformly; when it is smaller than count, the remainder is topped up
// from a shuffle of the whole bank, keeping ids unique. The result has
// min(count, bank size) questions.
func (s *Selector) Select(difficulty, count int) []questionbank.Question {
	if count <= 0 {
		return nil
	}
	d := clampDifficulty(difficulty)

	pool := s.bank.ByMaxDifficulty(d)
	s.shuffle(pool)

	out := make([]questionbank.Question, 0, count)
	chosen := make(map[string]bool, count)
	for _, q := range pool {
		out = append(out, q)
		chosen[q.ID] = true
		if len(out) >= count {
			return out
		}
	}

	// Pool exhausted: top up from the full bank, skipping already
	// chosen ids.
	rest := s.bank.All()
	s.shuffle(rest)
	for _, q := range rest {
		if chosen[q.ID] {
			continue
		}
		out = append(out, q)
		chosen[q.ID] = true
		if len(out) >= count {
			break
		}
	}
	return out
}

// shuffle performs a Fisher-Yates shuffle in place. Every permutation
// is equally likely; a sort-by-random-key would not be.
func (s *Selector) shuffle(qs []questionbank.Question) {
	for i := len(qs) - 1; i > 0; i-- {
		j := s.rng.IntN(i + 1)
		qs[i], qs[j] = qs[j], qs[i]
	}
}
