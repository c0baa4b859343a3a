// Package console runs the game directly on a tcell screen, without Bubble Tea.
package console

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-bird/internal/bird"
	"github.com/vovakirdan/tui-bird/internal/core"
	"github.com/vovakirdan/tui-bird/internal/platform/canvas"
	"github.com/vovakirdan/tui-bird/internal/registry"
)

// palette uses the same ANSI indexes as the Bubble Tea renderer.
var palette = map[core.Color]tcell.Style{
	core.ColorDefault:      tcell.StyleDefault,
	core.ColorRed:          tcell.StyleDefault.Foreground(tcell.PaletteColor(1)),
	core.ColorYellow:       tcell.StyleDefault.Foreground(tcell.PaletteColor(3)),
	core.ColorCyan:         tcell.StyleDefault.Foreground(tcell.PaletteColor(6)),
	core.ColorWhite:        tcell.StyleDefault.Foreground(tcell.PaletteColor(7)),
	core.ColorGray:         tcell.StyleDefault.Foreground(tcell.PaletteColor(245)),
	core.ColorBrightYellow: tcell.StyleDefault.Foreground(tcell.PaletteColor(11)).Bold(true),
}

// Driver feeds tcell events and frame times to a controller and draws the
// result. The caller owns the screen's Init and Fini.
type Driver struct {
	screen     tcell.Screen
	controller *bird.Controller
	buf        *core.Screen
	input      core.InputFrame
	directive  bird.Directive
	tickRate   int
	lastFrame  time.Time
	logger     *log.Logger
	quit       bool
}

// NewDriver creates a driver drawing to screen.
func NewDriver(screen tcell.Screen, controller *bird.Controller, tickRate int, logger *log.Logger) *Driver {
	if tickRate <= 0 {
		tickRate = 60
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	screenCfg := controller.Config().Screen

	return &Driver{
		screen:     screen,
		controller: controller,
		buf:        core.NewScreen(screenCfg.Width, screenCfg.Height),
		input:      core.NewInputFrame(),
		directive:  controller.Directive(),
		tickRate:   tickRate,
		logger:     logger,
	}
}

// HandleEvent buffers key presses and tracks resizes.
// It reports false once ctrl+c was pressed.
func (d *Driver) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			d.quit = true
			return false
		}
		d.input.Set(mapKey(ev, d.directive.Mode))
	case *tcell.EventResize:
		w, h := d.screen.Size()
		screenCfg := d.controller.Config().Screen
		d.buf.Resize(core.Min(screenCfg.Width, w), core.Min(screenCfg.Height, h))
		d.screen.Sync()
	}
	return true
}

// mapKey translates a key event into a game action for the given mode.
func mapKey(ev *tcell.EventKey, mode bird.Mode) core.Action {
	switch ev.Key() {
	case tcell.KeyUp:
		return core.ActionFlap
	case tcell.KeyEnter:
		return playAction(mode)
	case tcell.KeyEscape:
		return core.ActionQuit
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ', 'w':
			return core.ActionFlap
		case 'p', 'r':
			return playAction(mode)
		case 'q':
			return core.ActionQuit
		}
	}
	return core.ActionNone
}

func playAction(mode bird.Mode) core.Action {
	if mode == bird.ModeEnded {
		return core.ActionRestart
	}
	return core.ActionStart
}

// Frame runs one tick with the time elapsed since the previous frame.
func (d *Driver) Frame(now time.Time) bird.Directive {
	var elapsedMs float64
	if !d.lastFrame.IsZero() {
		elapsedMs = float64(now.Sub(d.lastFrame)) / float64(time.Millisecond)
	}
	d.lastFrame = now

	prev := d.directive
	d.directive = d.controller.Tick(d.input.Take(), elapsedMs)
	if prev.Mode != d.directive.Mode {
		d.logger.Debug("mode changed", "from", prev.Mode, "to", d.directive.Mode)
		if d.directive.Mode == bird.ModeEnded {
			d.logger.Info("run ended", "score", d.directive.Score, "best", d.directive.Best, "runs", d.directive.Runs)
		}
	}
	return d.directive
}

// Draw paints the last directive to the tcell screen.
func (d *Driver) Draw() {
	canvas.Paint(d.buf, d.directive)

	d.screen.Clear()
	for y := range d.buf.Height() {
		for x := range d.buf.Width() {
			cell := d.buf.GetCell(x, y)
			style, ok := palette[cell.Color]
			if !ok {
				style = tcell.StyleDefault
			}
			d.screen.SetContent(x, y, cell.Rune, nil, style)
		}
	}
	d.screen.Show()
}

// Run polls events in the background and ticks at the driver's rate until
// the controller exits, ctrl+c is pressed or ctx is cancelled.
func (d *Driver) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)

	go func() {
		for {
			ev := d.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(d.tickRate))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if !d.HandleEvent(ev) {
				return nil
			}
		case now := <-ticker.C:
			if dir := d.Frame(now); dir.Exit {
				return nil
			}
			d.Draw()
		}
	}
}

// Directive returns the directive from the last frame.
func (d *Driver) Directive() bird.Directive {
	return d.directive
}

// Frontend runs the game on the controlling terminal through tcell.
type Frontend struct{}

// ID returns the frontend identifier.
func (Frontend) ID() string {
	return "tcell"
}

// Title returns the frontend description.
func (Frontend) Title() string {
	return "tcell console"
}

// Run plays one local game.
func (Frontend) Run(ctx context.Context, opts registry.Options) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("console: cannot create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("console: cannot init screen: %w", err)
	}
	defer screen.Fini()

	screen.SetStyle(tcell.StyleDefault)
	screen.Clear()

	seed := opts.Runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	controller := bird.NewSeeded(opts.Game, seed)

	d := NewDriver(screen, controller, opts.Runtime.TickRateOrDefault(), opts.LoggerOrDiscard())
	d.HandleEvent(tcell.NewEventResize(screen.Size()))
	return d.Run(ctx)
}

func init() {
	registry.Register("tcell", func() registry.Frontend {
		return Frontend{}
	})
}
