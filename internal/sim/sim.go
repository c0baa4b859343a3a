// Package sim drives the game without a terminal. An autopilot supplies the
// input and every frame has the same fixed duration, so a seed always
// produces the same report.
package sim

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-bird/internal/bird"
	"github.com/vovakirdan/tui-bird/internal/config"
	"github.com/vovakirdan/tui-bird/internal/core"
)

// ErrNoTicks is returned when Options.Ticks is not positive.
var ErrNoTicks = errors.New("sim: ticks must be positive")

// Options configures a headless run.
type Options struct {
	Game    config.BirdConfig
	Seed    int64
	Ticks   int
	FrameMs float64

	// Restart starts a new run after a crash instead of stopping.
	Restart bool

	Logger *log.Logger
}

// Report summarizes a headless run.
type Report struct {
	Seed   int64
	Ticks  int // Ticks actually simulated
	Score  int // Score of the last run
	Best   int
	Runs   int
	Flaps  int
	Ended  bool // Whether the last run crashed
	Mode   bird.Mode
	ActorX int
	ActorY int
}

// String formats the report on one line.
func (r Report) String() string {
	return fmt.Sprintf("seed=%d ticks=%d mode=%s score=%d best=%d runs=%d flaps=%d actor=(%d,%d)",
		r.Seed, r.Ticks, r.Mode, r.Score, r.Best, r.Runs, r.Flaps, r.ActorX, r.ActorY)
}

// Autopilot chooses the action for the next tick: Start on the title screen,
// Restart after a crash when allowed, and a flap whenever the actor is below
// the centre of the next gap and not already rising.
func Autopilot(c *bird.Controller, restart bool) core.Action {
	switch c.Mode() {
	case bird.ModeMenu:
		return core.ActionStart
	case bird.ModeEnded:
		if restart {
			return core.ActionRestart
		}
		return core.ActionNone
	}

	p := c.Session().Player()
	w := c.Session().Wall()
	if p.Y > w.GapCenter && p.Velocity >= 0 {
		return core.ActionFlap
	}
	return core.ActionNone
}

// Run simulates opts.Ticks frames of opts.FrameMs each. Without Restart it
// stops at the first crash.
func Run(opts Options) (Report, error) {
	if opts.Ticks <= 0 {
		return Report{}, ErrNoTicks
	}
	if err := opts.Game.Validate(); err != nil {
		return Report{}, fmt.Errorf("sim: %w", err)
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	c := bird.NewSeeded(opts.Game, opts.Seed)
	report := Report{Seed: opts.Seed}
	d := c.Directive()

	for report.Ticks < opts.Ticks {
		action := Autopilot(c, opts.Restart)
		if d.Mode == bird.ModeEnded && action == core.ActionNone {
			break
		}
		if action == core.ActionFlap {
			report.Flaps++
		}

		prev := d.Mode
		d = c.Tick(action, opts.FrameMs)
		report.Ticks++

		if prev != d.Mode && d.Mode == bird.ModeEnded {
			logger.Info("run ended", "run", d.Runs, "score", d.Score, "tick", report.Ticks)
		}
	}

	report.Score = d.Score
	report.Best = d.Best
	report.Runs = d.Runs
	report.Ended = d.Mode == bird.ModeEnded
	report.Mode = d.Mode
	report.ActorX = d.Actor.X
	report.ActorY = d.Actor.Y
	return report, nil
}
