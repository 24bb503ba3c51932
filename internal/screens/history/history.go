// Package history lists past lock events.
package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"focuslock/internal/appcat"
	"focuslock/internal/router"
	"focuslock/internal/screen"
	"focuslock/internal/store"
	"focuslock/internal/ui/layout"
	"focuslock/internal/ui/theme"
)

type historyLoadedMsg struct {
	Events []store.LockEvent
	Err    error
}

// HistoryScreen displays recent lock starts, expiries, and early ends.
type HistoryScreen struct {
	events   store.EventRepo
	records  []store.LockEvent
	selected int
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(events store.EventRepo) *HistoryScreen {
	return &HistoryScreen{events: events}
}

func (s *HistoryScreen) Init() tea.Cmd {
	if s.events == nil {
		return func() tea.Msg { return historyLoadedMsg{} }
	}
	return func() tea.Msg {
		records, err := s.events.QueryLockEvents(context.Background(), store.QueryOpts{Limit: 50})
		return historyLoadedMsg{Events: records, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.records = msg.Events
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.records)-1 {
				s.selected++
			}
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Danger).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.records) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No locks yet. Start one from the home screen!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, ev := range s.records {
		dateStr := ev.Timestamp.Format("Jan 02 15:04")

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %-10s %-4s %s%s",
			prefix, dateStr, actionLabel(ev.Action), ev.Kind,
			appNames(ev.AppIDs), triggerSuffix(ev))

		style := lipgloss.NewStyle().Foreground(theme.Text)
		switch {
		case i == s.selected:
			style = style.Foreground(theme.Primary).Bold(true)
		case ev.Action == "force_end":
			style = style.Foreground(theme.Accent)
		case ev.Action == "expire":
			style = style.Foreground(theme.TextDim)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}

func actionLabel(action string) string {
	switch action {
	case "start":
		return "locked"
	case "expire":
		return "expired"
	case "force_end":
		return "ended"
	default:
		return action
	}
}

func triggerSuffix(ev store.LockEvent) string {
	if ev.Trigger == "schedule" {
		return "  (scheduled)"
	}
	return ""
}

func appNames(ids []string) string {
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
