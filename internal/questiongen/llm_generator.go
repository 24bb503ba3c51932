package questiongen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"focuslock/internal/llm"
	"focuslock/internal/questionbank"
)

// LLMGenerator implements Generator using the LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// questionOutput is one raw LLM question before validation.
type questionOutput struct {
	Prompt      string   `json:"prompt"`
	Choices     []string `json:"choices"`
	AnswerIndex int      `json:"answer_index"`
	Difficulty  int      `json:"difficulty"`
	Category    string   `json:"category"`
}

type batchOutput struct {
	Questions []questionOutput `json:"questions"`
}

// Generate produces a validated question batch for the given input context.
func (g *LLMGenerator) Generate(ctx context.Context, input GenerateInput) ([]questionbank.Question, error) {
	ctx = llm.WithPurpose(ctx, "bank-gen")

	userMsg := buildUserMessage(input, g.config)

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      BatchSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var raw batchOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}
	if len(raw.Questions) == 0 {
		return nil, fmt.Errorf("LLM returned no questions")
	}

	questions := make([]questionbank.Question, 0, len(raw.Questions))
	for i, out := range raw.Questions {
		q := questionbank.Question{
			ID:          "c-" + uuid.NewString(),
			Category:    questionbank.Category(out.Category),
			Difficulty:  out.Difficulty,
			Prompt:      out.Prompt,
			Choices:     out.Choices,
			AnswerIndex: out.AnswerIndex,
		}

		// Run validators in order.
		for _, v := range g.config.Validators {
			if verr := v.Validate(&q, input); verr != nil {
				return nil, fmt.Errorf("question %d: %w", i+1, verr)
			}
		}

		questions = append(questions, q)
	}

	return questions, nil
}
