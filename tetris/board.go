package tetris

import "fmt"

// Board is the fixed-size playfield. Rows are indexed top to bottom, columns left to right.
type Board struct {
	width  int
	height int
	grid   [][]Color
}

// NewBoard returns an empty board. Non-positive dimensions panic.
func NewBoard(width, height int) *Board {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("tetris: invalid board size %dx%d", width, height))
	}

	grid := make([][]Color, height)
	for y := range grid {
		grid[y] = make([]Color, width)
	}

	return &Board{
		width:  width,
		height: height,
		grid:   grid,
	}
}

// NewBoardFromRows returns a board holding a copy of rows. The rows must form a
// non-empty rectangle.
func NewBoardFromRows(rows [][]Color) *Board {
	if len(rows) == 0 || len(rows[0]) == 0 {
		panic("tetris: board must have at least one cell")
	}

	b := NewBoard(len(rows[0]), len(rows))
	for y, row := range rows {
		if len(row) != b.width {
			panic(fmt.Sprintf("tetris: board row %d has width %d, expected %d", y, len(row), b.width))
		}
		copy(b.grid[y], row)
	}
	return b
}

func (b *Board) Width() int  { return b.width }
func (b *Board) Height() int { return b.height }

// At returns the cell at column x, row y. Coordinates off the board read as Empty.
func (b *Board) At(x, y int) Color {
	if !b.inside(x, y) {
		return Empty
	}
	return b.grid[y][x]
}

// Rows returns a copy of the grid.
func (b *Board) Rows() [][]Color {
	rows := make([][]Color, b.height)
	for y, row := range b.grid {
		rows[y] = append([]Color(nil), row...)
	}
	return rows
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	return &Board{
		width:  b.width,
		height: b.height,
		grid:   b.Rows(),
	}
}

// ClearFullLines removes every row without an Empty cell, shifts the remaining rows down
// and refills the top with empty rows. It returns the number of rows removed.
func (b *Board) ClearFullLines() int {
	kept := make([][]Color, 0, b.height)
	for _, row := range b.grid {
		if !rowFull(row) {
			kept = append(kept, row)
		}
	}

	cleared := b.height - len(kept)
	if cleared == 0 {
		return 0
	}

	grid := make([][]Color, 0, b.height)
	for range cleared {
		grid = append(grid, make([]Color, b.width))
	}
	b.grid = append(grid, kept...)

	return cleared
}

// merge writes the piece's occupied cells into the grid with the piece's color.
// Cells above the top edge are dropped.
func (b *Board) merge(p Piece) {
	c := p.Shape.Color()
	for cell := range p.Cells() {
		if b.inside(cell.X, cell.Y) {
			b.grid[cell.Y][cell.X] = c
		}
	}
}

func (b *Board) inside(x, y int) bool {
	return x >= 0 && y >= 0 && x < b.width && y < b.height
}

func rowFull(row []Color) bool {
	for _, c := range row {
		if c == Empty {
			return false
		}
	}
	return true
}
