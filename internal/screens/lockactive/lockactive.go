// Package lockactive is the screen shown while a lock is running. It
// cannot be dismissed with esc; a soft lock offers the challenge exit
// and a hard lock only counts down.
package lockactive

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"focuslock/internal/appcat"
	"focuslock/internal/engine"
	"focuslock/internal/lock"
	"focuslock/internal/router"
	"focuslock/internal/screen"
	"focuslock/internal/screens/challenge"
	"focuslock/internal/ui/layout"
	"focuslock/internal/ui/theme"
)

type tickMsg time.Time

// Screen shows the running lock.
type Screen struct {
	eng *engine.Engine
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)
var _ screen.EscBlocker = (*Screen)(nil)

// New creates the active lock screen.
func New(eng *engine.Engine) *Screen {
	return &Screen{eng: eng}
}

func (s *Screen) Init() tea.Cmd {
	return tick()
}

func (s *Screen) Title() string {
	return "Locked"
}

// BlockEsc keeps the screen up while the lock runs.
func (s *Screen) BlockEsc() bool {
	return s.eng.ActiveLock() != nil
}

func (s *Screen) KeyHints() []layout.KeyHint {
	l := s.eng.ActiveLock()
	if l != nil && l.Kind == lock.KindSoft {
		return []layout.KeyHint{
			{Key: "U", Description: "Unlock (challenge)"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if _, err := s.eng.CheckExpiry(context.Background()); err != nil {
			return s, tick()
		}
		if s.eng.ActiveLock() == nil {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return s, tick()

	case tea.KeyMsg:
		l := s.eng.ActiveLock()
		if l == nil {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		switch msg.String() {
		case "u", "enter":
			if l.Kind == lock.KindSoft {
				return s, func() tea.Msg {
					return router.PushScreenMsg{Screen: challenge.New(s.eng)}
				}
			}
		}
	}
	return s, nil
}

func (s *Screen) View(width, height int) string {
	l := s.eng.ActiveLock()
	if l == nil {
		return ""
	}

	var b strings.Builder

	b.WriteString(theme.Locked.Render("🔒  LOCKED") + "\n\n")
	b.WriteString(renderCountdown(s.eng.Remaining()) + "\n\n")

	kindLine := "Soft lock: answer a challenge to unlock early."
	if l.Kind == lock.KindHard {
		kindLine = "Hard lock: no early exit. Wait it out."
	}
	b.WriteString(theme.Hint.Render(kindLine) + "\n\n")

	b.WriteString(theme.Subtitle.Render("Blocked apps") + "\n")
	for _, id := range l.AppIDs {
		name := id
		if a, err := appcat.Get(id); err == nil {
			name = a.Name
		}
		b.WriteString(theme.Body.Render("  ✕ "+name) + "\n")
	}

	card := theme.Card.Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

// renderCountdown formats the remaining time as a large HH:MM:SS line.
func renderCountdown(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Seconds())
	h := total / 3600
	m := (total % 3600) / 60
	sec := total % 60

	text := fmt.Sprintf("%02d:%02d:%02d", h, m, sec)
	return lipgloss.NewStyle().
		Foreground(theme.Danger).
		Bold(true).
		Render(text)
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
