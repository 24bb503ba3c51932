package questionbank

// Category represents a question topic tag.
type Category string

const (
	CategoryMath    Category = "math"
	CategoryLogic   Category = "logic"
	CategoryReading Category = "reading"
)

// AllCategories returns all categories in display order.
func AllCategories() []Category {
	return []Category{CategoryMath, CategoryLogic, CategoryReading}
}

// CategoryDisplayName returns a human-readable name for a category.
func CategoryDisplayName(c Category) string {
	switch c {
	case CategoryMath:
		return "Math"
	case CategoryLogic:
		return "Logic"
	case CategoryReading:
		return "Reading"
	default:
		return string(c)
	}
}

// MinDifficulty and MaxDifficulty bound the difficulty scale.
const (
	MinDifficulty = 1
	MaxDifficulty = 5
)

// Question is a single quiz item. Questions are immutable once defined.
type Question struct {
	ID          string
	Category    Category
	Difficulty  int // 1..5
	Prompt      string
	Choices     []string // 2 or more options
	AnswerIndex int      // index into Choices
}

// Bank is an immutable catalog of questions with difficulty indices.
// The zero value is empty; construct with New.
type Bank struct {
	questions []Question
	byID      map[string]*Question
}

// New builds a bank from the given questions. The slice is copied;
// callers cannot mutate the bank afterwards.
func New(questions []Question) *Bank {
	b := &Bank{
		questions: make([]Question, len(questions)),
		byID:      make(map[string]*Question, len(questions)),
	}
	copy(b.questions, questions)
	for i := range b.questions {
		b.byID[b.questions[i].ID] = &b.questions[i]
	}
	return b
}

// Seed returns the built-in bank.
func Seed() *Bank {
	return New(seedQuestions)
}

// All returns a copy of every question in the bank.
func (b *Bank) All() []Question {
	out := make([]Question, len(b.questions))
	copy(out, b.questions)
	return out
}

// ByMaxDifficulty returns all questions with difficulty at or below max.
func (b *Bank) ByMaxDifficulty(max int) []Question {
	var out []Question
	for _, q := range b.questions {
		if q.Difficulty <= max {
			out = append(out, q)
		}
	}
	return out
}

// Get returns the question with the given id.
func (b *Bank) Get(id string) (Question, bool) {
	q, ok := b.byID[id]
	if !ok {
		return Question{}, false
	}
	return *q, true
}

// Size returns the number of questions in the bank.
func (b *Bank) Size() int {
	return len(b.questions)
}

// WithExtra returns a new bank containing this bank's questions plus
// the given extras. Extras whose id collides with an existing question
// are skipped; the receiver is not modified.
func (b *Bank) WithExtra(extra []Question) *Bank {
	merged := make([]Question, 0, len(b.questions)+len(extra))
	merged = append(merged, b.questions...)
	for _, q := range extra {
		if _, exists := b.byID[q.ID]; exists {
			continue
		}
		merged = append(merged, q)
	}
	return New(merged)
}
