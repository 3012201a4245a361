// Package term is a terminal frontend built on tcell.
package term

import (
	"strconv"

	"github.com/gdamore/tcell/v2"

	"github.com/plus3/tetris/tetris"
)

const (
	panelGap  = 3
	blockText = "[]"
	ghostText = "::"
	emptyText = " ."
)

var (
	frameStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	labelStyle = tcell.StyleDefault.Bold(true)
	textStyle  = tcell.StyleDefault
	emptyStyle = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	overStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorMaroon).Bold(true)
)

// cellStyle colors a block; alpha below one dims it toward black.
func cellStyle(c tetris.Color, alpha float64) tcell.Style {
	rgba := c.RGBA(alpha)
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(rgba.R), int32(rgba.G), int32(rgba.B)))
}

// Renderer draws a snapshot with its top-left corner at (X, Y). Every board cell takes
// two columns. The side panel to the right shows score, lines, next and hold.
type Renderer struct {
	X, Y int
}

// Size is the number of columns and rows Draw uses for a width by height board.
func Size(width, height int) (int, int) {
	return 2*width + 2 + panelGap + len("HOLD (used)"), height + 1
}

// Draw clears screen and paints snap. The caller shows the screen.
func (r Renderer) Draw(screen tcell.Screen, snap tetris.Snapshot) {
	screen.Clear()
	r.board(screen, snap)
	r.panel(screen, snap)
	if snap.GameOver {
		r.banner(screen, snap)
	}
}

func (r Renderer) board(screen tcell.Screen, snap tetris.Snapshot) {
	right := r.X + 2*snap.Width + 1
	for y := range snap.Height {
		row := r.Y + y
		screen.SetContent(r.X, row, '|', nil, frameStyle)
		screen.SetContent(right, row, '|', nil, frameStyle)

		for x := range snap.Width {
			c, layer := snap.At(x, y)
			col := r.X + 1 + 2*x
			switch layer {
			case tetris.LayerEmpty:
				r.text(screen, col, row, emptyText, emptyStyle)
			case tetris.LayerGhost:
				r.text(screen, col, row, ghostText, cellStyle(c, 0.5))
			case tetris.LayerLocked, tetris.LayerCurrent:
				r.text(screen, col, row, blockText, cellStyle(c, 1))
			}
		}
	}

	bottom := r.Y + snap.Height
	screen.SetContent(r.X, bottom, '+', nil, frameStyle)
	for col := r.X + 1; col < right; col++ {
		screen.SetContent(col, bottom, '-', nil, frameStyle)
	}
	screen.SetContent(right, bottom, '+', nil, frameStyle)
}

func (r Renderer) panel(screen tcell.Screen, snap tetris.Snapshot) {
	x := r.X + 2*snap.Width + 2 + panelGap
	y := r.Y

	r.text(screen, x, y, "SCORE", labelStyle)
	r.text(screen, x, y+1, strconv.Itoa(snap.Score), textStyle)
	r.text(screen, x, y+3, "LINES", labelStyle)
	r.text(screen, x, y+4, strconv.Itoa(snap.Lines), textStyle)

	r.text(screen, x, y+6, "NEXT", labelStyle)
	r.preview(screen, x, y+7, snap.Next.Shape, 1)

	holdLabel := "HOLD"
	if snap.HoldUsed {
		holdLabel = "HOLD (used)"
	}
	r.text(screen, x, y+12, holdLabel, labelStyle)
	if snap.HasHeld {
		alpha := 1.0
		if snap.HoldUsed {
			alpha = 0.5
		}
		r.preview(screen, x, y+13, snap.Held.Shape, alpha)
	}
}

func (r Renderer) preview(screen tcell.Screen, x, y int, s tetris.Shape, alpha float64) {
	style := cellStyle(s.Color(), alpha)
	for p := range s.Cells() {
		r.text(screen, x+2*p.X, y+p.Y, blockText, style)
	}
}

func (r Renderer) banner(screen tcell.Screen, snap tetris.Snapshot) {
	inner := 2 * snap.Width
	row := r.Y + snap.Height/2
	for i, line := range []string{"GAME OVER", "r:new q:quit"} {
		if len(line) > inner {
			line = line[:inner]
		}
		r.text(screen, r.X+1+(inner-len(line))/2, row+i, line, overStyle)
	}
}

func (r Renderer) text(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	for i, ch := range s {
		screen.SetContent(x+i, y, ch, nil, style)
	}
}
