package home

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"focuslock/internal/engine"
	"focuslock/internal/router"
	"focuslock/internal/screen"
	"focuslock/internal/screens/apps"
	"focuslock/internal/screens/history"
	"focuslock/internal/screens/lockactive"
	"focuslock/internal/screens/locksetup"
	"focuslock/internal/screens/schedules"
	"focuslock/internal/screens/stats"
	"focuslock/internal/store"
	"focuslock/internal/ui/components"
	"focuslock/internal/ui/theme"
)

// HomeScreen is the main screen of the application.
type HomeScreen struct {
	eng    *engine.Engine
	events store.EventRepo
	menu   components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen.
func New(eng *engine.Engine, events store.EventRepo) *HomeScreen {
	h := &HomeScreen{eng: eng, events: events}

	items := []components.MenuItem{
		{Label: "LOCK NOW", Action: func() tea.Cmd {
			return func() tea.Msg {
				if eng.ActiveLock() != nil {
					return router.PushScreenMsg{Screen: lockactive.New(eng)}
				}
				return router.PushScreenMsg{Screen: locksetup.New(eng)}
			}
		}},
		{Label: "APPS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: apps.New(eng)}
			}
		}},
		{Label: "SCHEDULES", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: schedules.New(eng)}
			}
		}},
		{Label: "STATS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: stats.New(eng, events)}
			}
		}},
		{Label: "HISTORY", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(events)}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, theme.Title.Width(width).Render("F O C U S L O C K"))
	sections = append(sections, theme.Subtitle.Width(width).Render("stay off the apps that eat your day"))
	sections = append(sections, h.renderStatus(width))
	sections = append(sections, lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View()))

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

// renderStatus shows either the running lock or the current selection.
func (h *HomeScreen) renderStatus(width int) string {
	var line string
	if l := h.eng.ActiveLock(); l != nil {
		line = theme.Locked.Render(fmt.Sprintf("● %s lock on %d apps, %s left",
			l.Kind, len(l.AppIDs), formatRemaining(h.eng.Remaining())))
	} else {
		n := len(h.eng.SelectedApps())
		switch n {
		case 0:
			line = theme.Hint.Render("no apps selected yet")
		case 1:
			line = theme.Body.Render("1 app selected")
		default:
			line = theme.Body.Render(fmt.Sprintf("%d apps selected", n))
		}
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, line)
}

func formatRemaining(d time.Duration) string {
	totalMin := int(d.Minutes())
	if totalMin >= 60 {
		return fmt.Sprintf("%dh %02dm", totalMin/60, totalMin%60)
	}
	return fmt.Sprintf("%dm", totalMin)
}
