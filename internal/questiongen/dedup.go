package questiongen

import (
	"fmt"
	"strings"

	"focuslock/internal/questionbank"
)

// DedupValidator rejects questions whose prompt already exists in the bank.
// Comparison is case-insensitive with surrounding whitespace ignored.
type DedupValidator struct{}

func (v *DedupValidator) Name() string { return "dedup" }

func (v *DedupValidator) Validate(q *questionbank.Question, input GenerateInput) *ValidationError {
	prompt := normalizePrompt(q.Prompt)
	for _, existing := range input.ExistingPrompts {
		if normalizePrompt(existing) == prompt {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("prompt duplicates existing question: %q", q.Prompt),
				Retryable: true,
			}
		}
	}
	return nil
}

func normalizePrompt(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// buildDedup formats existing prompts for the LLM prompt, respecting the
// max limit. Returns "None" if the bank is empty.
func buildDedup(prompts []string, max int) string {
	if len(prompts) == 0 {
		return "None"
	}

	// Keep only the most recent N prompts.
	if max > 0 && len(prompts) > max {
		prompts = prompts[len(prompts)-max:]
	}

	var b strings.Builder
	for i, p := range prompts {
		fmt.Fprintf(&b, "%d. %s\n", i+1, p)
	}
	return strings.TrimRight(b.String(), "\n")
}
