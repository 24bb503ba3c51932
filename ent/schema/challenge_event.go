package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ChallengeEvent records the outcome of a completed unlock challenge.
type ChallengeEvent struct {
	ent.Schema
}

func (ChallengeEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ChallengeEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID of the challenge session"),
		field.Int("difficulty").
			Comment("Difficulty level the challenge was drawn at"),
		field.Int("question_count").
			Comment("Number of questions served"),
		field.Int("correct_count").
			Comment("Number answered correctly"),
		field.Bool("success").
			Comment("Whether every answer was correct"),
		field.Int("difficulty_after").
			Comment("Difficulty level after recording the outcome"),
	}
}

func (ChallengeEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("success"),
	}
}
