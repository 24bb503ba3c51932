package schedules

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"focuslock/internal/engine"
	"focuslock/internal/router"
	"focuslock/internal/schedule"
	"focuslock/internal/screen"
	"focuslock/internal/ui/components"
	"focuslock/internal/ui/layout"
	"focuslock/internal/ui/theme"
)

// formScreen collects a new schedule: start, end, and weekdays. The
// window targets the currently selected apps.
type formScreen struct {
	eng *engine.Engine

	fields  []components.TextInput
	labels  []string
	focused int
	errMsg  string
}

var _ screen.Screen = (*formScreen)(nil)
var _ screen.KeyHintProvider = (*formScreen)(nil)

func newForm(eng *engine.Engine) *formScreen {
	fields := []components.TextInput{
		components.NewTextInput("09:00", false, 5),
		components.NewTextInput("17:00", false, 5),
		components.NewTextInput("mon tue wed thu fri", false, 40),
	}
	return &formScreen{
		eng:    eng,
		fields: fields,
		labels: []string{"Start (HH:MM)", "End (HH:MM)", "Weekdays"},
	}
}

func (f *formScreen) Init() tea.Cmd {
	return f.fields[0].Init()
}

func (f *formScreen) Title() string {
	return "New Schedule"
}

func (f *formScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Save"},
		{Key: "Esc", Description: "Cancel"},
	}
}

func (f *formScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc":
			return f, func() tea.Msg { return router.PopScreenMsg{} }
		case "tab", "shift+tab":
			dir := 1
			if kmsg.String() == "shift+tab" {
				dir = len(f.fields) - 1
			}
			f.fields[f.focused].Model.Blur()
			f.focused = (f.focused + dir) % len(f.fields)
			return f, f.fields[f.focused].Model.Focus()
		case "enter":
			return f, f.submit()
		}
	}

	var cmd tea.Cmd
	f.fields[f.focused], cmd = f.fields[f.focused].Update(msg)
	return f, cmd
}

func (f *formScreen) submit() tea.Cmd {
	start, err := parseClock(f.fields[0].Value())
	if err != nil {
		f.errMsg = "start: " + err.Error()
		return nil
	}
	end, err := parseClock(f.fields[1].Value())
	if err != nil {
		f.errMsg = "end: " + err.Error()
		return nil
	}
	days, err := parseWeekdays(f.fields[2].Value())
	if err != nil {
		f.errMsg = err.Error()
		return nil
	}

	apps := f.eng.SelectedApps()
	_, err = f.eng.UpsertSchedule(context.Background(), schedule.Schedule{
		AppIDs:      apps,
		StartMinute: start,
		EndMinute:   end,
		Weekdays:    days,
	})
	if err != nil {
		f.errMsg = err.Error()
		return nil
	}

	return func() tea.Msg { return router.PopScreenMsg{} }
}

func (f *formScreen) View(width, height int) string {
	var b strings.Builder

	for i := range f.fields {
		label := f.labels[i]
		if i == f.focused {
			b.WriteString(theme.Selected.Render(label) + "\n")
		} else {
			b.WriteString(theme.Subtitle.Render(label) + "\n")
		}
		b.WriteString(f.fields[i].View() + "\n\n")
	}

	b.WriteString(theme.Hint.Render(fmt.Sprintf(
		"Window applies to the %d selected app(s).", len(f.eng.SelectedApps()))))

	if f.errMsg != "" {
		b.WriteString("\n\n" + theme.Incorrect.Render(f.errMsg))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		theme.Card.Render(b.String()))
}

// parseClock converts "HH:MM" to a minute of day.
func parseClock(s string) (int, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("want HH:MM, got %q", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("bad hour %q", parts[0])
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("bad minute %q", parts[1])
	}
	if h < 0 || h > 24 || m < 0 || m > 59 || (h == 24 && m != 0) {
		return 0, fmt.Errorf("%q is not a time of day", s)
	}
	return h*60 + m, nil
}

var weekdayNames = map[string]time.Weekday{
	"sun": time.Sunday,
	"mon": time.Monday,
	"tue": time.Tuesday,
	"wed": time.Wednesday,
	"thu": time.Thursday,
	"fri": time.Friday,
	"sat": time.Saturday,
}

// parseWeekdays converts a space or comma separated list of day names
// into weekdays, deduplicated, in Sunday-first order.
func parseWeekdays(s string) ([]time.Weekday, error) {
	fields := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return r == ' ' || r == ','
	})
	if len(fields) == 0 {
		return nil, fmt.Errorf("no weekdays given")
	}

	seen := make(map[time.Weekday]bool)
	for _, f := range fields {
		if len(f) > 3 {
			f = f[:3]
		}
		d, ok := weekdayNames[f]
		if !ok {
			return nil, fmt.Errorf("unknown weekday %q", f)
		}
		seen[d] = true
	}

	var out []time.Weekday
	for d := time.Sunday; d <= time.Saturday; d++ {
		if seen[d] {
			out = append(out, d)
		}
	}
	return out, nil
}
