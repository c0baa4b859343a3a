package core

// Color represents a foreground color for a screen cell.
// Frontends translate it to their own palette (ANSI codes, tcell colors).
type Color uint8

// Colors used by the game canvas.
const (
	ColorDefault Color = iota
	ColorRed
	ColorYellow
	ColorCyan
	ColorWhite
	ColorGray
	ColorBrightYellow
)
