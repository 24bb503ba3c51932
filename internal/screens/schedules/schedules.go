// Package schedules lists recurring lock windows and hosts the form
// for adding new ones.
package schedules

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"focuslock/internal/appcat"
	"focuslock/internal/engine"
	"focuslock/internal/router"
	"focuslock/internal/schedule"
	"focuslock/internal/screen"
	"focuslock/internal/ui/layout"
	"focuslock/internal/ui/theme"
)

// Screen lists schedules, most recent first.
type Screen struct {
	eng      *engine.Engine
	selected int
	errMsg   string
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates the schedules screen.
func New(eng *engine.Engine) *Screen {
	return &Screen{eng: eng}
}

func (s *Screen) Init() tea.Cmd {
	return nil
}

func (s *Screen) Title() string {
	return "Schedules"
}

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "A", Description: "Add"},
		{Key: "F", Description: "Favorite"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	items := s.eng.Schedules()

	switch kmsg.String() {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < len(items)-1 {
			s.selected++
		}
	case "a":
		return s, func() tea.Msg {
			return router.PushScreenMsg{Screen: newForm(s.eng)}
		}
	case "f":
		if s.selected < len(items) {
			if err := s.eng.ToggleScheduleFavorite(context.Background(), items[s.selected].ID); err != nil {
				s.errMsg = err.Error()
			}
		}
	}
	return s, nil
}

func (s *Screen) View(width, height int) string {
	items := s.eng.Schedules()

	if len(items) == 0 {
		msg := theme.Hint.Render("No schedules yet. Press A to add one.")
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, msg)
	}

	var b strings.Builder
	for i, sc := range items {
		star := "  "
		if sc.Favorite {
			star = "★ "
		}
		line := fmt.Sprintf("%s%s  %s  %s",
			star, formatWindow(sc), formatWeekdays(sc.Weekdays), formatApps(sc.AppIDs))

		if i == s.selected {
			b.WriteString(theme.Selected.Render("  ▸ "+line) + "\n")
		} else {
			b.WriteString(theme.Unselected.Render("    "+line) + "\n")
		}
	}

	if s.errMsg != "" {
		b.WriteString("\n" + theme.Incorrect.Render(s.errMsg))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

func formatWindow(sc schedule.Schedule) string {
	return fmt.Sprintf("%s-%s", formatClock(sc.StartMinute), formatClock(sc.EndMinute))
}

func formatClock(minute int) string {
	return fmt.Sprintf("%02d:%02d", minute/60, minute%60)
}

func formatWeekdays(days []time.Weekday) string {
	parts := make([]string, 0, len(days))
	for _, d := range days {
		parts = append(parts, d.String()[:3])
	}
	return strings.Join(parts, " ")
}

func formatApps(ids []string) string {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if a, err := appcat.Get(id); err == nil {
			names = append(names, a.Name)
		} else {
			names = append(names, id)
		}
	}
	return strings.Join(names, ", ")
}
