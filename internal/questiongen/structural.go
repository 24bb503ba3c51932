package questiongen

import (
	"fmt"

	"focuslock/internal/questionbank"
)

// StructuralValidator checks that required fields are present, within
// length limits, and have valid enum values.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q *questionbank.Question, _ GenerateInput) *ValidationError {
	if q.Prompt == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "prompt is empty",
			Retryable: true,
		}
	}
	if len(q.Prompt) > 300 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "prompt exceeds 300 characters",
			Retryable: true,
		}
	}
	if len(q.Choices) < 2 || len(q.Choices) > 6 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("choice count %d outside 2-6", len(q.Choices)),
			Retryable: true,
		}
	}
	if q.AnswerIndex < 0 || q.AnswerIndex >= len(q.Choices) {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("answer index %d out of range for %d choices", q.AnswerIndex, len(q.Choices)),
			Retryable: true,
		}
	}
	seen := make(map[string]bool, len(q.Choices))
	for _, c := range q.Choices {
		if c == "" {
			return &ValidationError{
				Validator: v.Name(),
				Message:   "empty choice text",
				Retryable: true,
			}
		}
		if seen[c] {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("duplicate choice %q", c),
				Retryable: true,
			}
		}
		seen[c] = true
	}
	if q.Difficulty < questionbank.MinDifficulty || q.Difficulty > questionbank.MaxDifficulty {
		return &ValidationError{
			Validator: v.Name(),
			Message: fmt.Sprintf("difficulty %d outside %d-%d",
				q.Difficulty, questionbank.MinDifficulty, questionbank.MaxDifficulty),
			Retryable: true,
		}
	}
	switch q.Category {
	case questionbank.CategoryMath, questionbank.CategoryLogic, questionbank.CategoryReading:
	default:
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("unknown category %q", q.Category),
			Retryable: true,
		}
	}
	return nil
}
