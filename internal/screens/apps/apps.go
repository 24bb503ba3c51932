// Package apps is the screen where lock targets are selected from the
// app catalog.
package apps

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"focuslock/internal/appcat"
	"focuslock/internal/engine"
	"focuslock/internal/router"
	"focuslock/internal/screen"
	"focuslock/internal/ui/layout"
	"focuslock/internal/ui/theme"
)

// row is either a category heading or a selectable app.
type row struct {
	heading string
	app     appcat.App
}

// Screen toggles apps in and out of the selection.
type Screen struct {
	eng      *engine.Engine
	rows     []row
	selected int
	errMsg   string
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates the app selection screen, grouped by category.
func New(eng *engine.Engine) *Screen {
	var rows []row
	for _, c := range appcat.AllCategories() {
		rows = append(rows, row{heading: appcat.CategoryDisplayName(c)})
		for _, a := range appcat.ByCategory(c) {
			rows = append(rows, row{app: a})
		}
	}

	s := &Screen{eng: eng, rows: rows}
	s.selected = s.nextSelectable(0, 1)
	return s
}

// nextSelectable walks from i in direction dir to the next app row.
func (s *Screen) nextSelectable(i, dir int) int {
	for j := i; j >= 0 && j < len(s.rows); j += dir {
		if s.rows[j].heading == "" {
			return j
		}
	}
	return s.selected
}

func (s *Screen) Init() tea.Cmd {
	return nil
}

func (s *Screen) Title() string {
	return "Apps"
}

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Space", Description: "Toggle"},
		{Key: "Enter", Description: "Only this"},
		{Key: "A", Description: "Whole category"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "up", "k":
		s.selected = s.nextSelectable(s.selected-1, -1)
	case "down", "j":
		s.selected = s.nextSelectable(s.selected+1, 1)
	case "space", " ":
		if err := s.eng.ToggleApp(context.Background(), s.rows[s.selected].app.ID); err != nil {
			s.errMsg = err.Error()
		}
	case "enter":
		if err := s.eng.SelectOnlyApp(context.Background(), s.rows[s.selected].app.ID); err != nil {
			s.errMsg = err.Error()
		}
	case "a":
		if err := s.eng.SelectCategory(context.Background(), s.rows[s.selected].app.Category); err != nil {
			s.errMsg = err.Error()
		}
	}
	return s, nil
}

func (s *Screen) View(width, height int) string {
	var b strings.Builder

	for i, r := range s.rows {
		if r.heading != "" {
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString(theme.Subtitle.Render(r.heading) + "\n")
			continue
		}

		mark := "[ ]"
		if s.eng.IsSelected(r.app.ID) {
			mark = "[x]"
		}
		line := fmt.Sprintf("%s %s", mark, r.app.Name)

		if i == s.selected {
			b.WriteString(theme.Selected.Render("  ▸ "+line) + "\n")
		} else {
			b.WriteString(theme.Unselected.Render("    "+line) + "\n")
		}
	}

	b.WriteString("\n" + theme.Hint.Render(
		fmt.Sprintf("%d selected", len(s.eng.SelectedApps()))))
	if s.errMsg != "" {
		b.WriteString("\n" + theme.Incorrect.Render(s.errMsg))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}
