// Package challenge is the screen that runs an unlock challenge: one
// multiple-choice question at a time, a result at the end.
package challenge

import (
	"context"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	challengecore "focuslock/internal/challenge"
	"focuslock/internal/engine"
	"focuslock/internal/router"
	"focuslock/internal/screen"
	"focuslock/internal/ui/components"
	"focuslock/internal/ui/layout"
	"focuslock/internal/ui/theme"
)

// feedbackDelay is how long the correct/incorrect coloring stays up
// before the next question appears.
const feedbackDelay = 900 * time.Millisecond

type advanceMsg struct{}

type phase int

const (
	phaseQuestion phase = iota
	phaseFeedback
	phaseResult
)

// Screen runs a challenge session.
type Screen struct {
	eng     *engine.Engine
	session *challengecore.Session

	index   int
	choice  components.MultiChoice
	phase   phase
	success bool
	errMsg  string
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New draws a fresh session at the current difficulty.
func New(eng *engine.Engine) *Screen {
	s := &Screen{
		eng:     eng,
		session: eng.NewChallenge(),
	}
	if len(s.session.Questions) > 0 {
		s.choice = newChoice(s.session, 0)
	}
	return s
}

func newChoice(sess *challengecore.Session, i int) components.MultiChoice {
	q := sess.Questions[i]
	return components.NewMultiChoice(q.Prompt, q.Choices, q.AnswerIndex)
}

func (s *Screen) Init() tea.Cmd {
	return nil
}

func (s *Screen) Title() string {
	return "Challenge"
}

func (s *Screen) KeyHints() []layout.KeyHint {
	if s.phase == phaseResult {
		return []layout.KeyHint{{Key: "Enter", Description: "Continue"}}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Choose"},
		{Key: "Enter", Description: "Answer"},
		{Key: "Esc", Description: "Give up"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case advanceMsg:
		if s.phase != phaseFeedback {
			return s, nil
		}
		s.index++
		if s.index >= len(s.session.Questions) {
			return s, s.finish()
		}
		s.choice = newChoice(s.session, s.index)
		s.phase = phaseQuestion
		return s, nil

	case tea.KeyMsg:
		switch s.phase {
		case phaseResult:
			if msg.String() == "enter" || msg.String() == "esc" {
				return s, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return s, nil

		case phaseFeedback:
			return s, nil

		default:
			if msg.String() == "esc" {
				return s, func() tea.Msg { return router.PopScreenMsg{} }
			}
			var cmd tea.Cmd
			s.choice, cmd = s.choice.Update(msg)
			if s.choice.Submitted {
				q := s.session.Questions[s.index]
				s.session.Answer(q.ID, s.choice.ChosenIndex)
				s.phase = phaseFeedback
				return s, tea.Tick(feedbackDelay, func(time.Time) tea.Msg {
					return advanceMsg{}
				})
			}
			return s, cmd
		}
	}
	return s, nil
}

// finish grades the session. Difficulty adapts either way; a fully
// correct run also ends an active soft lock.
func (s *Screen) finish() tea.Cmd {
	success, err := s.eng.CompleteChallenge(context.Background(), s.session)
	if err != nil {
		s.errMsg = err.Error()
	}
	s.success = success
	s.phase = phaseResult
	return nil
}

func (s *Screen) View(width, height int) string {
	if len(s.session.Questions) == 0 {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("No questions available."))
	}

	if s.phase == phaseResult {
		return s.resultView(width, height)
	}

	header := theme.Subtitle.Render(fmt.Sprintf(
		"Question %d of %d", s.index+1, len(s.session.Questions)))
	body := header + "\n\n" + s.choice.View()

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		theme.Card.Render(body))
}

func (s *Screen) resultView(width, height int) string {
	correct := s.session.CorrectCount()
	total := len(s.session.Questions)
	d := s.eng.Difficulty()

	var headline string
	if s.success {
		headline = theme.Correct.Render("Unlocked! All answers correct.")
	} else {
		headline = theme.Incorrect.Render(
			fmt.Sprintf("Not this time: %d of %d correct.", correct, total))
	}

	body := headline + "\n\n" +
		theme.Body.Render(fmt.Sprintf("Difficulty is now level %d.", d.Level))
	if s.errMsg != "" {
		body += "\n\n" + theme.Incorrect.Render(s.errMsg)
	}
	body += "\n\n" + theme.Hint.Render("enter to continue")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		theme.Card.Render(body))
}
