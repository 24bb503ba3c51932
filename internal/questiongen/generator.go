package questiongen

import (
	"context"

	"focuslock/internal/questionbank"
)

// Generator produces unlock challenge questions using an LLM provider.
type Generator interface {
	// Generate produces a batch of questions for the given input context.
	// Returns validated questions or an error.
	// All configured validators are run before returning.
	Generate(ctx context.Context, input GenerateInput) ([]questionbank.Question, error)
}

// GenerateInput holds all context needed to generate a question batch.
type GenerateInput struct {
	// Category is the target question category.
	Category questionbank.Category

	// Difficulty is the target difficulty level (1-5).
	Difficulty int

	// Count is the number of questions to generate.
	Count int

	// ExistingPrompts contains the prompts already in the bank.
	// Used for deduplication in the prompt and by the dedup validator.
	ExistingPrompts []string
}
