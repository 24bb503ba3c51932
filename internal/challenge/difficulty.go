package challenge

import "focuslock/internal/questionbank"

// PromotionStreak is the number of consecutive successes required to
// raise the difficulty by one level.
const PromotionStreak = 3

// DefaultDifficulty is the starting difficulty for a fresh profile.
const DefaultDifficulty = 2

// DifficultyState tracks the adaptive challenge difficulty. Promotion
// requires a sustained streak; demotion is immediate on any failure.
type DifficultyState struct {
	Level  int // 1..5
	Streak int // consecutive successes since the last reset
}

// NewDifficultyState returns the initial state.
func NewDifficultyState() DifficultyState {
	return DifficultyState{Level: DefaultDifficulty}
}

// RecordOutcome updates the state after a challenge attempt.
//
// Failure resets the streak and lowers the level by one (floored at 1).
// Success grows the streak; at PromotionStreak the level rises by one
// (capped at 5) and the streak resets.
func (d *DifficultyState) RecordOutcome(success bool) {
	if !success {
		d.Streak = 0
		if d.Level > questionbank.MinDifficulty {
			d.Level--
		}
		return
	}

	d.Streak++
	if d.Streak >= PromotionStreak {
		d.Streak = 0
		if d.Level < questionbank.MaxDifficulty {
			d.Level++
		}
	}
}
