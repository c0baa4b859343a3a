package bird

// Mode is the top-level state of the game.
type Mode int

const (
	ModeMenu    Mode = iota // Title screen, waiting for Start
	ModePlaying             // A run is in progress
	ModeEnded               // The run is over, waiting for Restart
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "Menu"
	case ModePlaying:
		return "Playing"
	case ModeEnded:
		return "Ended"
	default:
		return "Unknown"
	}
}

// Position is a world coordinate.
type Position struct {
	X, Y int
}

// Segment is a solid wall column on screen: rows [Top, Bottom) at column X.
// X is relative to the view origin.
type Segment struct {
	X      int
	Top    int
	Bottom int
}

// Len returns the number of rows covered by the segment.
func (s Segment) Len() int {
	if s.Bottom <= s.Top {
		return 0
	}
	return s.Bottom - s.Top
}

// Text is a prompt line to print.
type Text struct {
	Row      int
	Col      int // Ignored when Centered is set
	Text     string
	Centered bool
}

// Directive describes what a frontend should show after a tick.
// The simulation never draws; frontends translate directives into output.
type Directive struct {
	Mode     Mode
	Actor    Position  // Actor world position
	View     int       // World column shown at screen column 0
	Segments []Segment // Solid wall columns, screen-relative
	Texts    []Text
	Score    int
	Best     int // Best score in this process
	Runs     int // Runs started in this process
	Exit     bool
}

// ActorColumn returns the screen column where the actor is drawn.
func (d Directive) ActorColumn() int {
	return d.Actor.X - d.View
}
