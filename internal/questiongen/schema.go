package questiongen

import "focuslock/internal/llm"

// BatchSchema defines the JSON schema for LLM question batch responses.
var BatchSchema = &llm.Schema{
	Name:        "challenge-questions",
	Description: "A batch of multiple-choice unlock challenge questions",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"prompt": map[string]any{
							"type":        "string",
							"description": "The question shown to the user, in plain ASCII text",
						},
						"choices": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "string",
							},
							"description": "2 to 6 answer options, exactly one correct",
						},
						"answer_index": map[string]any{
							"type":        "integer",
							"minimum":     0,
							"description": "Zero-based index of the correct choice",
						},
						"difficulty": map[string]any{
							"type":        "integer",
							"minimum":     1,
							"maximum":     5,
							"description": "Difficulty from 1 (easy) to 5 (hard)",
						},
						"category": map[string]any{
							"type":        "string",
							"enum":        []any{"math", "logic", "reading"},
							"description": "The question category",
						},
					},
					"required":             []any{"prompt", "choices", "answer_index", "difficulty", "category"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}
