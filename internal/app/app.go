// Package app hosts the root Bubble Tea model. It owns the one-second
// poll loop that expires locks and fires schedules, and it forces the
// lock screen to the front whenever a lock is running.
package app

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"focuslock/internal/engine"
	"focuslock/internal/router"
	"focuslock/internal/screen"
	"focuslock/internal/screens/home"
	"focuslock/internal/screens/lockactive"
	"focuslock/internal/store"
	"focuslock/internal/ui/layout"
)

// pollTickMsg drives lock expiry and schedule evaluation.
type pollTickMsg time.Time

// Options wires the app's dependencies.
type Options struct {
	Engine *engine.Engine
	Events store.EventRepo
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	eng    *engine.Engine
	router *router.Router
	width  int
	height int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(opts Options) AppModel {
	homeScreen := home.New(opts.Engine, opts.Events)
	return AppModel{
		eng:    opts.Engine,
		router: router.New(homeScreen),
	}
}

func (m AppModel) Init() tea.Cmd {
	return pollTick()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case pollTickMsg:
		return m, tea.Batch(m.poll(time.Time(msg)), pollTick())

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if blocker, ok := m.router.Active().(screen.EscBlocker); ok && blocker.BlockEsc() {
				return m, nil
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// poll runs the once-a-second housekeeping: clear expired locks, fire
// due schedules, and make sure a running lock owns the screen.
func (m AppModel) poll(t time.Time) tea.Cmd {
	ctx := context.Background()
	_, _ = m.eng.CheckExpiry(ctx)
	_, _ = m.eng.PollSchedules(ctx, t)

	if m.eng.ActiveLock() == nil {
		return nil
	}
	if _, onLockScreen := m.router.Active().(*lockactive.Screen); onLockScreen {
		return nil
	}
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: lockactive.New(m.eng)}
	}
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	locked := m.eng.ActiveLock() != nil
	status := ""
	if locked {
		status = "locked " + formatCountdown(m.eng.Remaining())
	}
	header := layout.RenderHeader(title, status, locked, m.width)

	var footerHints []layout.KeyHint
	if provider, ok := active.(screen.KeyHintProvider); ok {
		footerHints = provider.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

func formatCountdown(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Seconds())
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total%3600)/60, total%60)
}

func pollTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return pollTickMsg(t)
	})
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
