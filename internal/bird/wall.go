package bird

import "github.com/vovakirdan/tui-bird/internal/config"

// RandomSource supplies randomness for wall placement.
// *rand.Rand satisfies it; tests pass scripted sources.
type RandomSource interface {
	// Intn returns a value in [0, n). n is always positive.
	Intn(n int) int
}

// Wall is a vertical obstacle with a single passable gap.
// Walls are immutable; the session replaces a wall once it is passed.
type Wall struct {
	X         int // World column of the wall plane
	GapCenter int // Row at the middle of the gap
	GapSize   int // Rows in the gap, never below the configured minimum
}

// NewWall generates a wall at world column x. The gap centre is drawn
// uniformly from the configured band and the gap narrows with the score.
func NewWall(x, score int, walls config.WallsConfig, rng RandomSource) Wall {
	span := walls.GapCenterMax - walls.GapCenterMin
	center := walls.GapCenterMin
	if span > 0 {
		center += rng.Intn(span)
	}

	return Wall{
		X:         x,
		GapCenter: center,
		GapSize:   config.NewDifficultyManager(walls).GapSize(score),
	}
}

// GapTop returns the first row of the gap.
func (w Wall) GapTop() int {
	return w.GapCenter - w.GapSize/2
}

// GapBottom returns the last row of the gap.
func (w Wall) GapBottom() int {
	return w.GapCenter + w.GapSize/2
}

// Hits reports whether the player is inside the wall's solid part.
// Only the wall plane is tested: a player at any other column never hits.
func (w Wall) Hits(p Player) bool {
	if p.X != w.X {
		return false
	}
	return p.Y < w.GapTop() || p.Y > w.GapBottom()
}

// Segments returns the solid columns of the wall on a screen of the given
// height, at screen column x. Empty ranges are omitted.
func (w Wall) Segments(x, screenH int) []Segment {
	segments := make([]Segment, 0, 2)
	if top := w.GapTop(); top > 0 {
		segments = append(segments, Segment{X: x, Top: 0, Bottom: top})
	}
	if bottom := w.GapBottom(); bottom < screenH {
		segments = append(segments, Segment{X: x, Top: bottom, Bottom: screenH})
	}
	return segments
}
