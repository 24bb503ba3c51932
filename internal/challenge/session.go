package challenge

import (
	"github.com/google/uuid"

	"focuslock/internal/questionbank"
)

// Unanswered marks a question with no recorded answer.
const Unanswered = -1

// QuestionCount returns the number of questions a challenge at the
// given difficulty should contain: 5 at difficulty 1, growing by 2 per
// level, capped at 10.
func QuestionCount(difficulty int) int {
	d := clampDifficulty(difficulty)
	n := 5 + (d-1)*2
	if n > 10 {
		n = 10
	}
	return n
}

// Session is a transient challenge attempt. It is not persisted beyond
// completion.
type Session struct {
	ID        string
	Questions []questionbank.Question
	answers   map[string]int // question id -> choice index
}

// NewSession creates a session over the given questions with every
// answer initially unrecorded.
func NewSession(questions []questionbank.Question) *Session {
	return &Session{
		ID:        uuid.NewString(),
		Questions: questions,
		answers:   make(map[string]int, len(questions)),
	}
}

// Answer records a choice for the given question id. Recording again
// replaces the previous choice.
func (s *Session) Answer(questionID string, choiceIndex int) {
	s.answers[questionID] = choiceIndex
}

// AnswerFor returns the recorded choice for a question, or Unanswered.
func (s *Session) AnswerFor(questionID string) int {
	if idx, ok := s.answers[questionID]; ok {
		return idx
	}
	return Unanswered
}

// Complete reports whether every question has a recorded answer.
func (s *Session) Complete() bool {
	for _, q := range s.Questions {
		if _, ok := s.answers[q.ID]; !ok {
			return false
		}
	}
	return true
}

// Successful reports whether the session is complete and every answer
// is correct.
func (s *Session) Successful() bool {
	if !s.Complete() {
		return false
	}
	for _, q := range s.Questions {
		if s.answers[q.ID] != q.AnswerIndex {
			return false
		}
	}
	return true
}

// CorrectCount returns the number of correctly answered questions.
func (s *Session) CorrectCount() int {
	n := 0
	for _, q := range s.Questions {
		if idx, ok := s.answers[q.ID]; ok && idx == q.AnswerIndex {
			n++
		}
	}
	return n
}
