package bird

import "github.com/vovakirdan/tui-bird/internal/config"

// Session is a single run: one player, the wall ahead of it, the score and
// the physics clock.
type Session struct {
	cfg    config.BirdConfig
	rng    RandomSource
	player Player
	wall   Wall
	score  int
	clock  Clock
}

// NewSession starts a run with the player at its start position and the
// first wall one screen width ahead of the origin.
func NewSession(cfg config.BirdConfig, rng RandomSource) *Session {
	return &Session{
		cfg:    cfg,
		rng:    rng,
		player: NewPlayer(cfg.Player.StartX, cfg.Player.StartY, cfg.Physics),
		wall:   NewWall(cfg.Screen.Width, 0, cfg.Walls, rng),
		clock:  NewClock(cfg.Physics.StepMs),
	}
}

// Step advances the run by one tick and reports whether it ended.
//
// Order within a tick: physics step when the clock fires, then the flap,
// then collision, then wall replacement. A run that ends on this tick keeps
// its wall and score.
func (s *Session) Step(flap bool, elapsedMs float64) (ended bool) {
	if s.clock.Advance(elapsedMs) {
		s.player.Fall()
	}
	if flap {
		s.player.Flap()
	}

	if s.player.Y > s.cfg.Screen.Height || s.wall.Hits(s.player) {
		return true
	}

	if s.player.X > s.wall.X {
		s.score++
		s.wall = NewWall(s.player.X+s.cfg.Screen.Width, s.score, s.cfg.Walls, s.rng)
	}
	return false
}

// Player returns a copy of the player.
func (s *Session) Player() Player {
	return s.player
}

// Wall returns the current wall.
func (s *Session) Wall() Wall {
	return s.wall
}

// Score returns the number of walls passed.
func (s *Session) Score() int {
	return s.score
}
