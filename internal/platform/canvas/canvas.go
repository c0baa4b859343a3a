// Package canvas paints simulation directives into a core.Screen.
// Every frontend shares it so the game looks the same over Bubble Tea,
// tcell and SSH.
package canvas

import (
	"github.com/vovakirdan/tui-bird/internal/bird"
	"github.com/vovakirdan/tui-bird/internal/core"
)

// Glyphs used for game elements.
const (
	ActorChar = '@'
	WallChar  = '|'
)

// Paint clears dst and draws the directive onto it.
func Paint(dst *core.Screen, d bird.Directive) {
	dst.Clear()

	for _, seg := range d.Segments {
		dst.DrawVLine(seg.X, seg.Top, seg.Len(), WallChar, core.ColorRed)
	}

	if d.Mode != bird.ModeMenu {
		dst.SetCell(d.ActorColumn(), d.Actor.Y, ActorChar, core.ColorBrightYellow)
	}

	color := core.ColorWhite
	if d.Mode == bird.ModeMenu {
		color = core.ColorCyan
	}
	for _, text := range d.Texts {
		if text.Centered {
			dst.DrawTextCentered(text.Row, text.Text, color)
		} else {
			dst.DrawText(text.Col, text.Row, text.Text, color)
		}
	}

	if d.Mode == bird.ModeEnded {
		if r, ok := promptBox(dst.Width(), d.Texts); ok {
			dst.DrawBox(r, core.ColorGray)
		}
	}
}

// promptBox returns a frame around the centered prompts, one cell of
// padding on every side.
func promptBox(screenW int, texts []bird.Text) (core.Rect, bool) {
	top, bottom, width := -1, -1, 0
	for _, text := range texts {
		if !text.Centered {
			continue
		}
		if top == -1 || text.Row < top {
			top = text.Row
		}
		if text.Row > bottom {
			bottom = text.Row
		}
		width = core.Max(width, len([]rune(text.Text)))
	}
	if top == -1 {
		return core.Rect{}, false
	}

	w := core.Min(width+4, screenW)
	h := bottom - top + 3
	return core.NewRect((screenW-w)/2, top-1, w, h), true
}
