package tetris

import (
	"fmt"
	"iter"
)

// Point is a cell coordinate, either relative to a shape or absolute on a board.
type Point struct {
	X, Y int
}

// Shape is an immutable occupancy bitmap with a color.
type Shape struct {
	cells  [][]bool
	width  int
	height int
	color  Color
}

// NewShape builds a shape from rows of occupancy flags. The rows must form a non-empty
// rectangle and the color must not be Empty; anything else panics.
func NewShape(rows [][]bool, c Color) Shape {
	if c == Empty {
		panic("tetris: shape color must not be Empty")
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		panic("tetris: shape must have at least one cell")
	}

	width := len(rows[0])
	cells := make([][]bool, len(rows))
	for y, row := range rows {
		if len(row) != width {
			panic(fmt.Sprintf("tetris: shape row %d has width %d, expected %d", y, len(row), width))
		}
		cells[y] = append([]bool(nil), row...)
	}

	return Shape{
		cells:  cells,
		width:  width,
		height: len(rows),
		color:  c,
	}
}

// Width returns the number of columns in the bounding box.
func (s Shape) Width() int { return s.width }

// Height returns the number of rows in the bounding box.
func (s Shape) Height() int { return s.height }

// Color returns the color locked cells of this shape take on the board.
func (s Shape) Color() Color { return s.color }

// Occupied reports whether the cell at column x, row y of the bounding box is filled.
// Coordinates outside the bounding box are unoccupied.
func (s Shape) Occupied(x, y int) bool {
	if x < 0 || y < 0 || x >= s.width || y >= s.height {
		return false
	}
	return s.cells[y][x]
}

// Cells yields the offsets of the occupied cells in row-major order.
func (s Shape) Cells() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for y, row := range s.cells {
			for x, filled := range row {
				if filled && !yield(Point{X: x, Y: y}) {
					return
				}
			}
		}
	}
}

func (s Shape) empty() bool {
	for range s.Cells() {
		return false
	}
	return true
}

// Rotate returns the shape turned 90 degrees clockwise. The receiver is not modified.
func (s Shape) Rotate() Shape {
	cells := make([][]bool, s.width)
	for x := range s.width {
		cells[x] = make([]bool, s.height)
		for y := range s.height {
			cells[x][y] = s.cells[s.height-1-y][x]
		}
	}

	return Shape{
		cells:  cells,
		width:  s.height,
		height: s.width,
		color:  s.color,
	}
}

// Equal reports whether both shapes have the same dimensions, cells and color.
func (s Shape) Equal(other Shape) bool {
	if s.width != other.width || s.height != other.height || s.color != other.color {
		return false
	}
	for y := range s.height {
		for x := range s.width {
			if s.cells[y][x] != other.cells[y][x] {
				return false
			}
		}
	}
	return true
}

// String renders the bitmap with '#' for filled and '.' for empty cells, one line per row.
func (s Shape) String() string {
	buf := make([]byte, 0, (s.width+1)*s.height)
	for y, row := range s.cells {
		if y > 0 {
			buf = append(buf, '\n')
		}
		for _, filled := range row {
			if filled {
				buf = append(buf, '#')
			} else {
				buf = append(buf, '.')
			}
		}
	}
	return string(buf)
}
