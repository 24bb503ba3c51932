package engine

import (
	"context"

	"focuslock/internal/challenge"
	"focuslock/internal/lock"
	"focuslock/internal/store"
)

// NewChallenge draws a fresh challenge session at the current
// difficulty. The question count scales with the level; the draw
// favors questions at or below it.
func (e *Engine) NewChallenge() *challenge.Session {
	sel := e.selector()
	qs := sel.Select(e.difficulty.Level, challenge.QuestionCount(e.difficulty.Level))
	return challenge.NewSession(qs)
}

func (e *Engine) selector() *challenge.Selector {
	if e.rng != nil {
		return challenge.NewSelectorWithRand(e.bank, e.rng)
	}
	return challenge.NewSelector(e.bank)
}

// RecordChallengeOutcome adapts the difficulty directly from an
// outcome, without a session. Used by callers that grade externally.
func (e *Engine) RecordChallengeOutcome(ctx context.Context, success bool) (challenge.DifficultyState, error) {
	e.difficulty.RecordOutcome(success)
	return e.difficulty, e.save(ctx)
}

// CompleteChallenge records a finished challenge: the difficulty
// adapts to the outcome, the attempt is logged, and a fully correct
// session ends the active soft lock. Hard locks are never ended by a
// challenge. Returns whether the challenge succeeded.
func (e *Engine) CompleteChallenge(ctx context.Context, s *challenge.Session) (bool, error) {
	success := s.Successful()
	levelBefore := e.difficulty.Level
	e.difficulty.RecordOutcome(success)

	if e.events != nil {
		_ = e.events.AppendChallengeEvent(ctx, store.ChallengeEventData{
			SessionID:       s.ID,
			Difficulty:      levelBefore,
			QuestionCount:   len(s.Questions),
			CorrectCount:    s.CorrectCount(),
			Success:         success,
			DifficultyAfter: e.difficulty.Level,
		})
	}

	if success {
		if l := e.locks.Active(); l != nil && l.Kind == lock.KindSoft {
			return true, e.forceEnd(ctx, l)
		}
	}

	return success, e.save(ctx)
}
