package tetris_test

import (
	"strings"
	"testing"

	"github.com/plus3/tetris/tetris"
)

// scriptedRand returns the given kinds in order, cycling when exhausted.
type scriptedRand struct {
	kinds []tetris.Kind
	next  int
}

func script(kinds ...tetris.Kind) *scriptedRand {
	return &scriptedRand{kinds: kinds}
}

func (r *scriptedRand) IntN(n int) int {
	k := r.kinds[r.next%len(r.kinds)]
	r.next++
	return int(k)
}

var colorRunes = map[rune]tetris.Color{
	'.': tetris.Empty,
	'Y': tetris.Yellow,
	'C': tetris.Cyan,
	'P': tetris.Purple,
	'G': tetris.Green,
	'R': tetris.Red,
	'B': tetris.Blue,
	'O': tetris.Orange,
}

// rigged builds a width by height board whose bottom rows are given as pictures,
// one rune per cell ('.' is empty).
func rigged(t *testing.T, width, height int, bottom ...string) *tetris.Board {
	t.Helper()

	rows := make([][]tetris.Color, height)
	for y := range rows {
		rows[y] = make([]tetris.Color, width)
	}

	offset := height - len(bottom)
	for i, line := range bottom {
		if len([]rune(line)) != width {
			t.Fatalf("row %q has %d cells, want %d", line, len([]rune(line)), width)
		}
		for x, r := range []rune(line) {
			c, ok := colorRunes[r]
			if !ok {
				t.Fatalf("unknown cell %q in row %q", r, line)
			}
			rows[offset+i][x] = c
		}
	}

	return tetris.NewBoardFromRows(rows)
}

// picture renders a board in the format rigged accepts.
func picture(b *tetris.Board) []string {
	names := make(map[tetris.Color]rune, len(colorRunes))
	for r, c := range colorRunes {
		names[c] = r
	}

	lines := make([]string, b.Height())
	for y := range b.Height() {
		var sb strings.Builder
		for x := range b.Width() {
			sb.WriteRune(names[b.At(x, y)])
		}
		lines[y] = sb.String()
	}
	return lines
}

func shapeFrom(c tetris.Color, rows ...string) tetris.Shape {
	cells := make([][]bool, len(rows))
	for y, row := range rows {
		cells[y] = make([]bool, len(row))
		for x, r := range row {
			cells[y][x] = r == '#'
		}
	}
	return tetris.NewShape(cells, c)
}
