package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-bird/internal/bird"
	"github.com/vovakirdan/tui-bird/internal/core"
	"github.com/vovakirdan/tui-bird/internal/platform/canvas"
	"github.com/vovakirdan/tui-bird/internal/registry"
)

// Model is the Bubble Tea model that drives one game.
type Model struct {
	controller *bird.Controller
	screen     *core.Screen
	keys       KeyMap
	help       help.Model
	logger     *log.Logger
	tickRate   int
	input      core.InputFrame
	directive  bird.Directive
	lastTick   time.Time
	quitting   bool
}

// NewModel creates a model for the given controller. The screen starts at
// the game's logical size and shrinks to fit the terminal.
func NewModel(controller *bird.Controller, tickRate int, logger *log.Logger) Model {
	screenCfg := controller.Config().Screen
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		controller: controller,
		screen:     core.NewScreen(screenCfg.Width, screenCfg.Height),
		keys:       DefaultKeyMap(),
		help:       help.New(),
		logger:     logger,
		tickRate:   tickRate,
		input:      core.NewInputFrame(),
		directive:  controller.Directive(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey buffers the key as an action for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	m.input.Set(m.keys.MapKey(msg, m.directive.Mode))
	return m, nil
}

// handleResize fits the screen buffer to the terminal, keeping one row for help.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.help.Width = msg.Width

	screenCfg := m.controller.Config().Screen
	m.screen.Resize(core.Min(screenCfg.Width, msg.Width), core.Min(screenCfg.Height, msg.Height-1))

	return m, nil
}

// handleTick runs one simulation tick with the time elapsed since the last one.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	var elapsedMs float64
	if !m.lastTick.IsZero() {
		elapsedMs = float64(now.Sub(m.lastTick)) / float64(time.Millisecond)
	}
	m.lastTick = now

	prev := m.directive
	m.directive = m.controller.Tick(m.input.Take(), elapsedMs)
	logTransition(m.logger, prev, m.directive)

	if m.directive.Exit {
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.tickRate)
}

// logTransition records mode changes and finished runs.
func logTransition(logger *log.Logger, prev, next bird.Directive) {
	if prev.Mode == next.Mode {
		return
	}
	logger.Debug("mode changed", "from", prev.Mode, "to", next.Mode)
	if next.Mode == bird.ModeEnded {
		logger.Info("run ended", "score", next.Score, "best", next.Best, "runs", next.Runs)
	}
}

// Directive returns the directive from the last tick.
func (m Model) Directive() bird.Directive {
	return m.directive
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	canvas.Paint(m.screen, m.directive)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts a Bubble Tea program for the controller and blocks until the
// player quits or ctx is cancelled.
func Run(ctx context.Context, controller *bird.Controller, tickRate int, logger *log.Logger) error {
	p := tea.NewProgram(
		NewModel(controller, tickRate, logger),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	_, err := p.Run()
	if err != nil && errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

// Frontend runs the game locally through Bubble Tea.
type Frontend struct{}

// ID returns the frontend identifier.
func (Frontend) ID() string {
	return "tea"
}

// Title returns the frontend description.
func (Frontend) Title() string {
	return "Bubble Tea terminal UI"
}

// Run plays one local game.
func (Frontend) Run(ctx context.Context, opts registry.Options) error {
	seed := opts.Runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return Run(ctx, bird.NewSeeded(opts.Game, seed), opts.Runtime.TickRateOrDefault(), opts.LoggerOrDiscard())
}

func init() {
	registry.Register("tea", func() registry.Frontend {
		return Frontend{}
	})
}
