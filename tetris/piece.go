package tetris

import (
	"iter"
	"strconv"
)

// Direction is a unit move of the falling piece.
type Direction uint8

const (
	Left Direction = iota
	Right
	Down
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "Left"
	case Right:
		return "Right"
	case Down:
		return "Down"
	default:
		return "Direction(" + strconv.Itoa(int(d)) + ")"
	}
}

func (d Direction) delta() (dx, dy int) {
	switch d {
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	case Down:
		return 0, 1
	default:
		panic("tetris: unknown direction " + d.String())
	}
}

// Piece is a shape placed on a board. X and Y locate the top-left corner of the
// shape's bounding box.
type Piece struct {
	Shape Shape
	X, Y  int
}

// spawnPiece centers the shape horizontally on the top row.
func spawnPiece(s Shape, boardWidth int) Piece {
	return Piece{
		Shape: s,
		X:     boardWidth/2 - s.Width()/2,
		Y:     0,
	}
}

// Cells yields the board coordinates of the piece's occupied cells.
func (p Piece) Cells() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for cell := range p.Shape.Cells() {
			if !yield(Point{X: p.X + cell.X, Y: p.Y + cell.Y}) {
				return
			}
		}
	}
}

// CanMove reports whether every occupied cell, shifted one step in dir, stays on the
// board and lands on an empty cell.
func (p Piece) CanMove(dir Direction, board *Board) bool {
	dx, dy := dir.delta()
	for cell := range p.Cells() {
		x, y := cell.X+dx, cell.Y+dy
		if !board.inside(x, y) || board.grid[y][x] != Empty {
			return false
		}
	}
	return true
}

// Move shifts the piece one step in dir if CanMove allows it and does nothing otherwise.
func (p *Piece) Move(dir Direction, board *Board) {
	if !p.CanMove(dir, board) {
		return
	}
	dx, dy := dir.delta()
	p.X += dx
	p.Y += dy
}

// CanStay reports whether the piece fits where it is. Cells above the top edge are
// allowed; cells below the bottom, beside the walls or over filled cells are not.
func (p Piece) CanStay(board *Board) bool {
	for cell := range p.Cells() {
		if cell.X < 0 || cell.X >= board.width || cell.Y >= board.height {
			return false
		}
		if cell.Y >= 0 && board.grid[cell.Y][cell.X] != Empty {
			return false
		}
	}
	return true
}

// Rotate turns the piece clockwise, nudging it back inside the side walls. When the
// result still does not fit, the previous shape is restored but the nudged position is
// kept.
func (p *Piece) Rotate(board *Board) {
	previous := p.Shape
	p.Shape = p.Shape.Rotate()

	for p.X < 0 {
		p.X++
	}
	for p.X+p.Shape.Width() > board.width && p.X > 0 {
		p.X--
	}

	if !p.CanStay(board) {
		p.Shape = previous
	}
}

// Landing returns a copy of the piece dropped as far as it can fall. The receiver is
// not modified. A piece without cells, such as the zero Piece, does not move.
func (p Piece) Landing(board *Board) Piece {
	if p.Shape.empty() {
		return p
	}
	ghost := p
	for ghost.CanMove(Down, board) {
		ghost.Y++
	}
	return ghost
}
