package challenge

import (
	"testing"

	"focuslock/internal/questionbank"
)

func sessionQuestions() []questionbank.Question {
	return []questionbank.Question{
		{ID: "q1", Category: questionbank.CategoryMath, Difficulty: 1, Prompt: "a", Choices: []string{"x", "y"}, AnswerIndex: 0},
		{ID: "q2", Category: questionbank.CategoryLogic, Difficulty: 2, Prompt: "b", Choices: []string{"x", "y", "z"}, AnswerIndex: 2},
	}
}

func TestSessionCompleteAndSuccessful(t *testing.T) {
	s := NewSession(sessionQuestions())

	if s.Complete() {
		t.Error("fresh session reports complete")
	}
	if s.Successful() {
		t.Error("fresh session reports successful")
	}
	if got := s.AnswerFor("q1"); got != Unanswered {
		t.Errorf("AnswerFor(q1) = %d, want Unanswered", got)
	}

	s.Answer("q1", 0)
	if s.Complete() {
		t.Error("partially answered session reports complete")
	}

	s.Answer("q2", 1) // wrong
	if !s.Complete() {
		t.Error("fully answered session reports incomplete")
	}
	if s.Successful() {
		t.Error("session with a wrong answer reports successful")
	}
	if got := s.CorrectCount(); got != 1 {
		t.Errorf("CorrectCount = %d, want 1", got)
	}

	// Re-answering replaces the previous choice.
	s.Answer("q2", 2)
	if !s.Successful() {
		t.Error("all-correct session reports unsuccessful")
	}
	if got := s.CorrectCount(); got != 2 {
		t.Errorf("CorrectCount = %d, want 2", got)
	}
}
