package tui

import (
	"fmt"
	"strconv"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/mark3labs/segctl/internal/logger"
	"github.com/mark3labs/segctl/internal/tui/segmented"
	"github.com/mark3labs/segctl/internal/tui/theme"
)

// EventLogSize is how many notifications the demo keeps.
const EventLogSize = 200

// Options configures the demo application.
type Options struct {
	Titles            []string
	ControlHeight     int
	Animate           bool
	PreserveSelection bool
	Appearance        segmented.Appearance
}

// App is the Bubbletea model hosting one segmented control, a content pane
// for the selected segment and an event log.
type App struct {
	control *segmented.Control
	events  *EventLog
	help    help.Model
	keys    KeyMap

	layout        Layout
	controlHeight int
	animate       bool
	preserve      bool
	width         int
	height        int
	quitting      bool
}

// NewApp creates the demo application.
func NewApp(opts Options) (*App, error) {
	if opts.ControlHeight < 1 {
		opts.ControlHeight = 1
	}
	if opts.Appearance == (segmented.Appearance{}) {
		opts.Appearance = segmented.DefaultAppearance()
	}
	events := NewEventLog(EventLogSize)

	control, err := segmented.New(
		segmented.Rect{Height: float64(opts.ControlHeight)},
		opts.Titles,
		segmented.WithAppearance(opts.Appearance),
		segmented.WithDelegate(events),
		segmented.WithAction(events.Action),
		segmented.WithPreserveSelection(opts.PreserveSelection),
	)
	if err != nil {
		return nil, fmt.Errorf("creating segmented control: %w", err)
	}

	return &App{
		control:       control,
		events:        events,
		help:          help.New(),
		keys:          DefaultKeyMap(),
		controlHeight: opts.ControlHeight,
		animate:       opts.Animate,
		preserve:      opts.PreserveSelection,
	}, nil
}

// Control returns the hosted control.
func (a *App) Control() *segmented.Control { return a.control }

// Events returns the event log.
func (a *App) Events() *EventLog { return a.events }

// Animate reports whether keyboard selection animates the selector.
func (a *App) Animate() bool { return a.animate }

// PreserveSelection reports whether rebuilds keep the selected segment.
func (a *App) PreserveSelection() bool { return a.preserve }

// Layout returns the current layout.
func (a *App) Layout() Layout { return a.layout }

// Init initializes the application and returns any initial commands.
func (a *App) Init() tea.Cmd {
	return nil
}

// Update handles incoming messages and updates the model state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		return a, a.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.layout = CalculateLayout(a.width, a.height, a.controlHeight)
		a.control.Layout(segmented.RectFromCells(a.layout.Control))
		return a, nil
	}

	// Mouse presses and animation frames belong to the control
	return a, a.control.Update(msg)
}

func (a *App) handleKeyPress(msg tea.KeyPressMsg) tea.Cmd {
	switch {
	case key.Matches(msg, a.keys.Quit):
		a.quitting = true
		return tea.Quit

	case key.Matches(msg, a.keys.Prev):
		return a.selectIndex(a.control.SelectedIndex() - 1)

	case key.Matches(msg, a.keys.Next):
		return a.selectIndex(a.control.SelectedIndex() + 1)

	case key.Matches(msg, a.keys.Jump):
		n, err := strconv.Atoi(msg.String())
		if err != nil {
			return nil
		}
		return a.selectIndex(n - 1)

	case key.Matches(msg, a.keys.Animate):
		a.animate = !a.animate
		logger.Debug("animation toggled: %v", a.animate)

	case key.Matches(msg, a.keys.Preserve):
		a.preserve = !a.preserve
		a.control.SetPreserveSelection(a.preserve)
		logger.Debug("preserve selection toggled: %v", a.preserve)

	case key.Matches(msg, a.keys.Rebuild):
		// Reassigning the appearance rebuilds every item
		if err := a.control.SetAppearance(a.control.Appearance()); err != nil {
			logger.Warn("rebuild failed: %v", err)
			return nil
		}
		return a.control.Tick()
	}
	return nil
}

// selectIndex selects index, wrapping around at both ends.
func (a *App) selectIndex(index int) tea.Cmd {
	n := len(a.control.Items())
	if n == 0 {
		return nil
	}
	index = ((index % n) + n) % n
	if err := a.control.SelectItem(index, a.animate); err != nil {
		logger.Warn("keyboard selection failed: %v", err)
		return nil
	}
	a.events.Selected(a.control, index)
	return a.control.Tick()
}

// View renders the current frame.
func (a *App) View() tea.View {
	var view tea.View
	view.AltScreen = true                    // Full-screen mode
	view.MouseMode = tea.MouseModeCellMotion // Enable press and release events

	if a.quitting {
		// Return minimal view when quitting - exit alt screen for proper terminal restoration
		view.AltScreen = false
		view.MouseMode = 0
		view.Content = lipgloss.NewLayer("")
		return view
	}

	canvas := uv.NewScreenBuffer(a.width, a.height)
	view.Cursor = a.Draw(canvas, canvas.Bounds())
	view.Content = lipgloss.NewLayer(canvas.Render())
	view.BackgroundColor = theme.HexToColor(theme.Current().BgBase)
	return view
}

// Draw renders all components to the screen buffer.
func (a *App) Draw(scr uv.Screen, area uv.Rectangle) *tea.Cursor {
	s := theme.Current().S()

	a.control.Draw(scr, a.layout.Control)

	if inner := DrawPanel(scr, a.layout.Content, "Selected"); !inner.Empty() {
		body := fmt.Sprintf("%s\n\n%s",
			s.Highlight.Render(a.control.SelectedTitle()),
			s.Muted.Render(fmt.Sprintf("segment %d of %d", a.control.SelectedIndex()+1, len(a.control.Items()))),
		)
		DrawStyled(scr, inner, lipgloss.NewStyle().Padding(1, 2), body)
	}

	if !a.layout.IsCompact() {
		if inner := DrawPanel(scr, a.layout.Events, "Events"); !inner.Empty() {
			a.events.Draw(scr, inner)
		}
	}

	if !a.layout.Footer.Empty() {
		DrawStyled(scr, a.layout.Footer, s.Footer, a.help.View(a.keys))
	}
	return nil
}
