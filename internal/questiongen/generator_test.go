package questiongen

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"focuslock/internal/llm"
	"focuslock/internal/questionbank"
)

func validBatch() json.RawMessage {
	return json.RawMessage(`{
		"questions": [
			{
				"prompt": "What is 13 x 4?",
				"choices": ["42", "48", "52", "56"],
				"answer_index": 2,
				"difficulty": 2,
				"category": "math"
			},
			{
				"prompt": "Which number comes next: 3, 6, 12, 24, ...?",
				"choices": ["30", "36", "48", "60"],
				"answer_index": 2,
				"difficulty": 3,
				"category": "logic"
			}
		]
	}`)
}

func testInput() GenerateInput {
	return GenerateInput{
		Category:   questionbank.CategoryMath,
		Difficulty: 2,
		Count:      2,
	}
}

func TestGenerate_ValidBatch(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: validBatch()},
	)
	g := New(mock, DefaultConfig())

	questions, err := g.Generate(context.Background(), testInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(questions) != 2 {
		t.Fatalf("got %d questions, want 2", len(questions))
	}

	q := questions[0]
	if q.Prompt != "What is 13 x 4?" {
		t.Errorf("prompt = %q", q.Prompt)
	}
	if q.AnswerIndex != 2 {
		t.Errorf("answer index = %d, want 2", q.AnswerIndex)
	}
	if q.Category != questionbank.CategoryMath {
		t.Errorf("category = %q, want math", q.Category)
	}
	if q.ID == "" || !strings.HasPrefix(q.ID, "c-") {
		t.Errorf("expected generated id with c- prefix, got %q", q.ID)
	}
	if questions[1].ID == q.ID {
		t.Error("expected unique ids across the batch")
	}
}

func TestGenerate_SendsBankContext(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: validBatch()},
	)
	g := New(mock, DefaultConfig())

	input := testInput()
	input.ExistingPrompts = []string{"What is 12 x 12?"}

	_, err := g.Generate(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	msg := mock.Calls[0].Messages[0].Content
	if !strings.Contains(msg, "What is 12 x 12?") {
		t.Errorf("expected existing prompt in message, got:\n%s", msg)
	}
	if mock.Calls[0].Schema == nil || mock.Calls[0].Schema.Name != "challenge-questions" {
		t.Error("expected challenge-questions schema on the request")
	}
}

func TestGenerate_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}},
	)
	g := New(mock, DefaultConfig())

	_, err := g.Generate(context.Background(), testInput())
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestGenerate_EmptyBatchRejected(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"questions":[]}`)},
	)
	g := New(mock, DefaultConfig())

	_, err := g.Generate(context.Background(), testInput())
	if err == nil {
		t.Fatal("expected error for empty batch")
	}
}

func TestGenerate_StructuralFailureRejected(t *testing.T) {
	bad := json.RawMessage(`{
		"questions": [
			{
				"prompt": "What is 2 + 2?",
				"choices": ["4", "5", "6"],
				"answer_index": 7,
				"difficulty": 1,
				"category": "math"
			}
		]
	}`)
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: bad},
	)
	g := New(mock, DefaultConfig())

	_, err := g.Generate(context.Background(), testInput())
	if err == nil {
		t.Fatal("expected error for out-of-range answer index")
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got: %T", err)
	}
	if verr.Validator != "structural" {
		t.Errorf("validator = %q, want structural", verr.Validator)
	}
}

func TestGenerate_DuplicatePromptRejected(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: validBatch()},
	)
	g := New(mock, DefaultConfig())

	input := testInput()
	// Case and whitespace differences still count as duplicates.
	input.ExistingPrompts = []string{"  what is 13 X 4?  "}

	_, err := g.Generate(context.Background(), input)
	if err == nil {
		t.Fatal("expected error for duplicate prompt")
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got: %T", err)
	}
	if verr.Validator != "dedup" {
		t.Errorf("validator = %q, want dedup", verr.Validator)
	}
}
