package questiongen

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are writing short cognitive challenge questions for a focus app. The user must answer a set of questions correctly to end a distraction block early, so the questions must demand real attention.

Rules:
- Generate multiple-choice questions for the given category and difficulty.
- Use plain ASCII text. No LaTeX, no Unicode symbols. Use / for fractions, * for multiplication, and standard operators.
- Each question must be self-contained and answerable in under a minute.
- Provide 2 to 6 options where exactly one is correct. Distractors should be plausible, not random values.
- math: arithmetic and number problems scaled to the difficulty.
- logic: sequences, patterns, and deduction puzzles.
- reading: short vocabulary, grammar, and comprehension items.
- Difficulty 1 is trivial, 5 requires sustained thought.
- Do not repeat any question from the "already in the bank" list.`

// buildUserMessage constructs the user message from GenerateInput and Config limits.
func buildUserMessage(input GenerateInput, cfg Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Category: %s\n", input.Category)
	fmt.Fprintf(&b, "Difficulty: %d\n", input.Difficulty)
	fmt.Fprintf(&b, "Count: %d\n", input.Count)

	b.WriteString("\nAlready in the bank:\n")
	b.WriteString(buildDedup(input.ExistingPrompts, cfg.MaxExistingPrompts))

	return b.String()
}
