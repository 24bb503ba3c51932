// Package locksetup is the screen where a manual lock is configured
// and armed. Confirming starts a short countdown before the lock
// actually begins, so a mistaken enter can still be cancelled.
package locksetup

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"focuslock/internal/engine"
	"focuslock/internal/lock"
	"focuslock/internal/router"
	"focuslock/internal/screen"
	"focuslock/internal/screens/lockactive"
	"focuslock/internal/ui/layout"
	"focuslock/internal/ui/theme"
)

// armSeconds is the grace period between confirming and locking.
const armSeconds = 3

type armTickMsg time.Time

type durationChoice struct {
	label string
	value time.Duration
}

// Screen configures and arms a manual lock.
type Screen struct {
	eng *engine.Engine

	kind      lock.Kind
	durations []durationChoice
	selected  int

	arming    bool
	countdown int
	errMsg    string
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates the lock setup screen with preset durations plus the
// most recently used one.
func New(eng *engine.Engine) *Screen {
	durations := []durationChoice{
		{"15 minutes", 15 * time.Minute},
		{"30 minutes", 30 * time.Minute},
		{"1 hour", time.Hour},
		{"2 hours", 2 * time.Hour},
	}

	last := eng.LastDuration()
	selected := 0
	found := false
	for i, d := range durations {
		if d.value == last {
			selected = i
			found = true
			break
		}
	}
	if !found && last > 0 {
		durations = append(durations, durationChoice{
			label: "Last used (" + formatDuration(last) + ")",
			value: last,
		})
		selected = len(durations) - 1
	}

	return &Screen{
		eng:       eng,
		kind:      eng.DefaultKind(),
		durations: durations,
		selected:  selected,
	}
}

func (s *Screen) Init() tea.Cmd {
	return nil
}

func (s *Screen) Title() string {
	return "Lock Now"
}

func (s *Screen) KeyHints() []layout.KeyHint {
	if s.arming {
		return []layout.KeyHint{{Key: "Esc", Description: "Cancel"}}
	}
	return []layout.KeyHint{
		{Key: "←→", Description: "Kind"},
		{Key: "↑↓", Description: "Duration"},
		{Key: "Enter", Description: "Lock"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case armTickMsg:
		if !s.arming {
			return s, nil
		}
		s.countdown--
		if s.countdown > 0 {
			return s, armTick()
		}
		return s, s.startLock()

	case tea.KeyMsg:
		if s.arming {
			if msg.String() == "esc" {
				s.arming = false
			}
			return s, nil
		}

		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "left", "right", "h", "l":
			if s.kind == lock.KindSoft {
				s.kind = lock.KindHard
			} else {
				s.kind = lock.KindSoft
			}
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.durations)-1 {
				s.selected++
			}
		case "enter":
			if len(s.eng.SelectedApps()) == 0 {
				s.errMsg = "Select at least one app first."
				return s, nil
			}
			s.errMsg = ""
			s.arming = true
			s.countdown = armSeconds
			return s, armTick()
		}
	}
	return s, nil
}

// startLock fires once the arm countdown reaches zero.
func (s *Screen) startLock() tea.Cmd {
	_, err := s.eng.StartLock(context.Background(), s.kind, s.durations[s.selected].value)
	if err != nil {
		s.arming = false
		s.errMsg = err.Error()
		return nil
	}
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: lockactive.New(s.eng)}
	}
}

func (s *Screen) View(width, height int) string {
	if s.arming {
		msg := theme.Locked.Render(fmt.Sprintf("Locking in %d...", s.countdown)) +
			"\n\n" + theme.Hint.Render("esc to cancel")
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, msg)
	}

	var b strings.Builder

	b.WriteString(theme.Body.Bold(true).Render("Lock kind") + "\n\n")
	b.WriteString(renderKindChoice(s.kind) + "\n\n")

	b.WriteString(theme.Body.Bold(true).Render("Duration") + "\n\n")
	for i, d := range s.durations {
		if i == s.selected {
			b.WriteString(theme.Selected.Render("  ▸ "+d.label) + "\n")
		} else {
			b.WriteString(theme.Unselected.Render("    "+d.label) + "\n")
		}
	}

	apps := s.eng.SelectedApps()
	b.WriteString("\n" + theme.Hint.Render(fmt.Sprintf("Locking %d selected app(s)", len(apps))))

	if s.errMsg != "" {
		b.WriteString("\n\n" + theme.Incorrect.Render(s.errMsg))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

func renderKindChoice(k lock.Kind) string {
	soft := "  Soft (end early with a challenge)  "
	hard := "  Hard (no way out until it expires)  "
	if k == lock.KindSoft {
		return theme.ButtonActive.Render(soft) + "  " + theme.ButtonInactive.Render(hard)
	}
	return theme.ButtonInactive.Render(soft) + "  " + theme.ButtonActive.Render(hard)
}

func armTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return armTickMsg(t)
	})
}

func formatDuration(d time.Duration) string {
	totalMin := int(d.Minutes())
	h := totalMin / 60
	m := totalMin % 60
	switch {
	case h > 0 && m > 0:
		return fmt.Sprintf("%dh %dm", h, m)
	case h > 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dm", m)
	}
}
