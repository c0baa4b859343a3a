package core

// Action is a discrete input event delivered to the simulation, abstracted
// from physical key presses. The platform maps keys; the game sees actions.
type Action int

const (
	ActionNone    Action = iota
	ActionFlap           // Space, Up, W - upward kick while playing
	ActionStart          // P, Enter - leave the title menu
	ActionRestart        // R (or P/Enter on the end screen) - begin a new run
	ActionQuit           // Q - leave the game from the menu or end screen

	actionCount
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionFlap:
		return "Flap"
	case ActionStart:
		return "Start"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Valid reports whether a is one of the defined actions.
func (a Action) Valid() bool {
	return a >= ActionNone && a < actionCount
}

// Normalize maps out-of-range actions to ActionNone.
func (a Action) Normalize() Action {
	if !a.Valid() {
		return ActionNone
	}
	return a
}

// InputFrame buffers input between two ticks. The simulation consumes at
// most one action per tick, so the frame keeps a single slot: later keys
// replace earlier ones, except that a pending Quit is never overwritten.
type InputFrame struct {
	pending Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set records an action for the next tick.
func (f *InputFrame) Set(a Action) {
	a = a.Normalize()
	if a == ActionNone || f.pending == ActionQuit {
		return
	}
	f.pending = a
}

// Take returns the pending action and clears the frame.
func (f *InputFrame) Take() Action {
	a := f.pending
	f.pending = ActionNone
	return a
}
