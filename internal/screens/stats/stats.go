// Package stats shows usage and challenge statistics.
package stats

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
	"focuslock/internal/store"
	"focuslock/internal/ui/components"
	"focuslock/internal/ui/layout"
	"focuslock/internal/ui/theme"
)

var ranges = []string{"day", "week", "month"}

type challengeStatsMsg struct {
	total     int
	succeeded int
	err       error
}

// Screen renders the usage chart, top apps, and challenge stats.
type Screen struct {
	eng    *engine.Engine
	events store.EventRepo

	total     int
	succeeded int
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates the stats screen.
func New(eng *engine.Engine, events store.EventRepo) *Screen {
	return &Screen{eng: eng, events: events}
}

func (s *Screen) Init() tea.Cmd {
	if s.events == nil {
		return nil
	}
	return func() tea.Msg {
		total, succeeded, err := s.events.ChallengeStats(context.Background())
		return challengeStatsMsg{total: total, succeeded: succeeded, err: err}
	}
}

func (s *Screen) Title() string {
	return "Stats"
}

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←→", Description: "Range"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case challengeStatsMsg:
		if msg.err != nil {
			s.errMsg = msg.err.Error()
		} else {
			s.total = msg.total
			s.succeeded = msg.succeeded
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "left", "h":
			s.shiftRange(-1)
		case "right", "l":
			s.shiftRange(1)
		}
	}
	return s, nil
}

func (s *Screen) shiftRange(dir int) {
	current := s.eng.StatsRange()
	idx := 1
	for i, r := range ranges {
		if r == current {
			idx = i
			break
		}
	}
	idx = (idx + dir + len(ranges)) % len(ranges)
	_ = s.eng.SetStatsRange(context.Background(), ranges[idx])
}

func (s *Screen) View(width, height int) string {
	var sections []string

	sections = append(sections, s.renderRangeTabs())
	sections = append(sections, s.renderUsageChart())
	sections = append(sections, s.renderTopApps(width))
	sections = append(sections, s.renderChallengeStats())

	if s.errMsg != "" {
		sections = append(sections, theme.Incorrect.Render(s.errMsg))
	}

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (s *Screen) renderRangeTabs() string {
	current := s.eng.StatsRange()
	parts := make([]string, 0, len(ranges))
	for _, r := range ranges {
		if r == current {
			parts = append(parts, theme.Selected.Render("["+r+"]"))
		} else {
			parts = append(parts, theme.Unselected.Render(" "+r+" "))
		}
	}
	return strings.Join(parts, "  ")
}

func (s *Screen) renderUsageChart() string {
	week := s.eng.UsageWeek()
	points := make([]components.BarPoint, 0, len(week))
	for _, p := range week {
		points = append(points, components.BarPoint{Label: p.Label, Value: p.Hours})
	}

	chart := components.NewBarChart(points, 6)
	return theme.Subtitle.Render("Hours on blocked apps") + "\n\n" + chart.View()
}

func (s *Screen) renderTopApps(width int) string {
	top := s.eng.TopApps()
	if len(top) == 0 {
		return theme.Hint.Render("no app usage recorded")
	}

	max := 0
	for _, a := range top {
		if a.MinutesPerDay > max {
			max = a.MinutesPerDay
		}
	}
	if max == 0 {
		max = 1
	}

	barWidth := width / 2
	if barWidth > 48 {
		barWidth = 48
	}

	var b strings.Builder
	b.WriteString(theme.Subtitle.Render("Top apps (min/day)") + "\n\n")
	for _, a := range top {
		name := a.AppID
		if app, err := appcat.Get(a.AppID); err == nil {
			name = app.Name
		}
		bar := components.NewProgressBar(
			fmt.Sprintf("%-12s %4d", name, a.MinutesPerDay),
			float64(a.MinutesPerDay)/float64(max),
			false,
			barWidth,
		)
		b.WriteString(bar.View() + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (s *Screen) renderChallengeStats() string {
	if !s.loaded {
		return theme.Hint.Render("loading challenge stats...")
	}
	if s.total == 0 {
		return theme.Hint.Render("no challenges attempted yet")
	}
	rate := float64(s.succeeded) / float64(s.total) * 100
	d := s.eng.Difficulty()
	return theme.Body.Render(fmt.Sprintf(
		"Challenges: %d passed of %d (%.0f%%)  ·  difficulty level %d",
		s.succeeded, s.total, rate, d.Level))
}
