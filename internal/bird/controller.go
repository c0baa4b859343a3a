// Package bird implements the simulation of a side-scrolling flap game: the
// Menu/Playing/Ended mode machine, fixed-cadence actor physics, wall
// generation and the plane collision check.
//
// The package never draws, polls devices or reads the wall clock. A driver
// calls Controller.Tick once per frame with the elapsed time and at most one
// action, and renders the returned Directive.
package bird

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-bird/internal/config"
	"github.com/vovakirdan/tui-bird/internal/core"
)

// Title is the name shown on the menu screen.
const Title = "Terminal Bird"

// Controller owns the mode and the current session. It is not safe for
// concurrent use; each player gets its own controller.
type Controller struct {
	cfg     config.BirdConfig
	rng     RandomSource
	mode    Mode
	session *Session
	best    int
	runs    int
	exit    bool
}

// NewController creates a controller in the menu.
func NewController(cfg config.BirdConfig, rng RandomSource) *Controller {
	return &Controller{
		cfg:     cfg,
		rng:     rng,
		mode:    ModeMenu,
		session: NewSession(cfg, rng),
	}
}

// NewSeeded creates a controller whose walls come from a math/rand source
// seeded with seed. The same seed and inputs replay the same game.
func NewSeeded(cfg config.BirdConfig, seed int64) *Controller {
	return NewController(cfg, rand.New(rand.NewSource(seed)))
}

// Tick processes one frame and returns what to show.
// Actions the current mode does not handle are ignored, as are malformed ones.
func (c *Controller) Tick(action core.Action, elapsedMs float64) Directive {
	action = action.Normalize()

	if !c.exit {
		switch c.mode {
		case ModeMenu:
			c.menu(action)
		case ModePlaying:
			c.play(action, elapsedMs)
		case ModeEnded:
			c.ended(action)
		}
	}

	return c.Directive()
}

func (c *Controller) menu(action core.Action) {
	switch action {
	case core.ActionStart:
		c.restart()
	case core.ActionQuit:
		c.exit = true
	}
}

func (c *Controller) play(action core.Action, elapsedMs float64) {
	if c.session.Step(action == core.ActionFlap, elapsedMs) {
		c.mode = ModeEnded
		c.best = core.Max(c.best, c.session.Score())
	}
}

func (c *Controller) ended(action core.Action) {
	switch action {
	case core.ActionRestart:
		c.restart()
	case core.ActionQuit:
		c.exit = true
	}
}

// restart replaces the session and enters Playing.
func (c *Controller) restart() {
	c.session = NewSession(c.cfg, c.rng)
	c.mode = ModePlaying
	c.runs++
}

// Mode returns the current mode.
func (c *Controller) Mode() Mode {
	return c.mode
}

// Session returns the current session.
func (c *Controller) Session() *Session {
	return c.session
}

// Config returns the game configuration the controller runs with.
func (c *Controller) Config() config.BirdConfig {
	return c.cfg
}

// Directive describes the current state without advancing it.
func (c *Controller) Directive() Directive {
	p := c.session.Player()
	d := Directive{
		Mode:  c.mode,
		Actor: Position{X: p.X, Y: p.Y},
		View:  p.X,
		Score: c.session.Score(),
		Best:  c.best,
		Runs:  c.runs,
		Exit:  c.exit,
	}

	if c.mode != ModeMenu {
		w := c.session.Wall()
		d.Segments = w.Segments(w.X-d.View, c.cfg.Screen.Height)
	}
	d.Texts = c.prompts(d)
	return d
}

// level reports gap narrowing as a percentage, 100 once the floor is reached.
func (c *Controller) level(score int) int {
	return int(config.NewDifficultyManager(c.cfg.Walls).Level(score) * 100)
}

func (c *Controller) prompts(d Directive) []Text {
	switch c.mode {
	case ModeMenu:
		texts := []Text{
			{Row: 5, Text: Title, Centered: true},
			{Row: 8, Text: "(P) Play", Centered: true},
			{Row: 10, Text: "(Q) Quit", Centered: true},
		}
		if d.Runs > 0 {
			texts = append(texts, Text{Row: 13, Text: fmt.Sprintf("Best: %d", d.Best), Centered: true})
		}
		return texts

	case ModePlaying:
		return []Text{
			{Row: 0, Col: 0, Text: "Press Space to flap"},
			{Row: 2, Col: 0, Text: fmt.Sprintf("Score: %d", d.Score)},
			{Row: 3, Col: 0, Text: fmt.Sprintf("Level: %d%%", c.level(d.Score))},
		}

	case ModeEnded:
		return []Text{
			{Row: 5, Text: fmt.Sprintf("Crashed after %d walls", d.Score), Centered: true},
			{Row: 6, Text: fmt.Sprintf("Best: %d  Runs: %d", d.Best, d.Runs), Centered: true},
			{Row: 8, Text: "(P) Play again", Centered: true},
			{Row: 10, Text: "(Q) Quit", Centered: true},
		}
	}
	return nil
}
