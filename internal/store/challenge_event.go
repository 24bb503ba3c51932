package store

import (
	"context"
	"fmt"

	"focuslock/ent/challengeevent"
)

func (r *eventRepo) AppendChallengeEvent(ctx context.Context, data ChallengeEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.ChallengeEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetDifficulty(data.Difficulty).
		SetQuestionCount(data.QuestionCount).
		SetCorrectCount(data.CorrectCount).
		SetSuccess(data.Success).
		SetDifficultyAfter(data.DifficultyAfter).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save challenge event: %w", err)
	}
	return nil
}

func (r *eventRepo) ChallengeStats(ctx context.Context) (total, succeeded int, err error) {
	total, err = r.client.ChallengeEvent.Query().Count(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("count challenge events: %w", err)
	}

	succeeded, err = r.client.ChallengeEvent.Query().
		Where(challengeevent.Success(true)).
		Count(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("count successful challenges: %w", err)
	}
	return total, succeeded, nil
}
