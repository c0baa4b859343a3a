package bird

import "github.com/vovakirdan/tui-bird/internal/config"

// Player is the actor steered through the walls.
// Y grows downward; a negative velocity moves the player up.
type Player struct {
	X        int
	Y        int
	Velocity float64

	physics config.PhysicsConfig
}

// NewPlayer creates a player at rest at the given position.
func NewPlayer(x, y int, physics config.PhysicsConfig) Player {
	return Player{X: x, Y: y, physics: physics}
}

// Fall applies one physics step: gravity up to the velocity cap, vertical
// movement by the truncated velocity, the ceiling clamp, and horizontal
// progress.
func (p *Player) Fall() {
	if p.Velocity < p.physics.MaxVelocity {
		p.Velocity += p.physics.Gravity
	}
	p.Y += int(p.Velocity)
	if p.Y < 0 {
		p.Y = 0
	}
	p.X += p.physics.Advance
}

// Flap kicks the player upward. Repeated flaps stack with no limit.
func (p *Player) Flap() {
	p.Velocity -= p.physics.FlapImpulse
}
