// Package tetris implements the game rules: a fixed grid of colored cells, the seven
// tetrominoes, the falling piece and the tick/lock/spawn/hold state machine that drives them.
// A Game is not safe for concurrent use; see package session for a serialized wrapper.
package tetris

import "image/color"

//go:generate go tool stringer -type=Color,Kind,EventKind -output=enum_string.go

// Color is the value of a single board cell. Empty marks an unoccupied cell.
type Color uint8

const (
	Empty Color = iota
	Yellow
	Cyan
	Purple
	Green
	Red
	Blue
	Orange
)

// RGBA returns the display color for c with the given alpha in [0, 1].
// Empty maps to the board background.
func (c Color) RGBA(alpha float64) color.RGBA {
	var r, g, b uint8
	switch c {
	case Empty:
		r, g, b = 0x33, 0x33, 0x33
	case Yellow:
		r, g, b = 255, 255, 0
	case Cyan:
		r, g, b = 0, 255, 255
	case Purple:
		r, g, b = 128, 0, 128
	case Green:
		r, g, b = 0, 255, 0
	case Red:
		r, g, b = 255, 0, 0
	case Blue:
		r, g, b = 0, 0, 255
	case Orange:
		r, g, b = 255, 165, 0
	default:
		panic("tetris: unknown color " + c.String())
	}

	if alpha < 0 {
		alpha = 0
	} else if alpha > 1 {
		alpha = 1
	}
	a := uint8(alpha * 255)

	// image/color expects alpha-premultiplied components.
	return color.RGBA{
		R: uint8(uint16(r) * uint16(a) / 255),
		G: uint8(uint16(g) * uint16(a) / 255),
		B: uint8(uint16(b) * uint16(a) / 255),
		A: a,
	}
}
