package questiongen

import (
	"strings"
	"testing"

	"focuslock/internal/questionbank"
)

func validQuestion() questionbank.Question {
	return questionbank.Question{
		ID:          "c-test",
		Category:    questionbank.CategoryMath,
		Difficulty:  2,
		Prompt:      "What is 9 x 6?",
		Choices:     []string{"52", "54", "56", "58"},
		AnswerIndex: 1,
	}
}

func TestStructuralValidator(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*questionbank.Question)
		wantErr bool
	}{
		{
			name:    "valid question passes",
			mutate:  func(q *questionbank.Question) {},
			wantErr: false,
		},
		{
			name:    "two choices is enough",
			mutate:  func(q *questionbank.Question) { q.Choices = []string{"yes", "no"}; q.AnswerIndex = 0 },
			wantErr: false,
		},
		{
			name:    "empty prompt",
			mutate:  func(q *questionbank.Question) { q.Prompt = "" },
			wantErr: true,
		},
		{
			name:    "overlong prompt",
			mutate:  func(q *questionbank.Question) { q.Prompt = strings.Repeat("x", 301) },
			wantErr: true,
		},
		{
			name:    "single choice",
			mutate:  func(q *questionbank.Question) { q.Choices = []string{"only"}; q.AnswerIndex = 0 },
			wantErr: true,
		},
		{
			name:    "too many choices",
			mutate:  func(q *questionbank.Question) { q.Choices = []string{"a", "b", "c", "d", "e", "f", "g"} },
			wantErr: true,
		},
		{
			name:    "negative answer index",
			mutate:  func(q *questionbank.Question) { q.AnswerIndex = -1 },
			wantErr: true,
		},
		{
			name:    "answer index past end",
			mutate:  func(q *questionbank.Question) { q.AnswerIndex = 4 },
			wantErr: true,
		},
		{
			name:    "empty choice text",
			mutate:  func(q *questionbank.Question) { q.Choices[2] = "" },
			wantErr: true,
		},
		{
			name:    "duplicate choices",
			mutate:  func(q *questionbank.Question) { q.Choices[2] = q.Choices[0] },
			wantErr: true,
		},
		{
			name:    "difficulty zero",
			mutate:  func(q *questionbank.Question) { q.Difficulty = 0 },
			wantErr: true,
		},
		{
			name:    "difficulty above max",
			mutate:  func(q *questionbank.Question) { q.Difficulty = 6 },
			wantErr: true,
		},
		{
			name:    "unknown category",
			mutate:  func(q *questionbank.Question) { q.Category = "trivia" },
			wantErr: true,
		},
	}

	v := &StructuralValidator{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := validQuestion()
			tt.mutate(&q)
			err := v.Validate(&q, GenerateInput{})
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
