package tetris_test

import (
	"image/color"
	"testing"

	"github.com/plus3/tetris/tetris"
	"github.com/stretchr/testify/assert"
)

func TestSnapshot(t *testing.T) {
	board := rigged(t, 10, 20, "G.........")
	g := tetris.NewGame(10, 20, tetris.WithBoard(board), tetris.WithRand(script(tetris.T, tetris.Z)))
	g.Hold()

	snap := g.Snapshot()

	assert.Equal(t, 10, snap.Width)
	assert.Equal(t, 20, snap.Height)
	assert.True(t, snap.HasHeld)
	assert.Equal(t, tetris.Purple, snap.Held.Shape.Color())
	assert.Equal(t, tetris.Red, snap.Current.Shape.Color())
	assert.Equal(t, 18, snap.Ghost.Y)
	assert.Equal(t, snap.Current.X, snap.Ghost.X)
	assert.True(t, snap.HoldUsed)

	c, layer := snap.At(0, 19)
	assert.Equal(t, tetris.Green, c)
	assert.Equal(t, tetris.LayerLocked, layer)

	c, layer = snap.At(4, 0)
	assert.Equal(t, tetris.Red, c)
	assert.Equal(t, tetris.LayerCurrent, layer)

	_, layer = snap.At(4, 18)
	assert.Equal(t, tetris.LayerGhost, layer)

	_, layer = snap.At(9, 9)
	assert.Equal(t, tetris.LayerEmpty, layer)

	snap.Cells[19][0] = tetris.Empty
	assert.Equal(t, tetris.Green, g.Cell(0, 19), "snapshot cells are a copy")
}

func TestColorRGBA(t *testing.T) {
	assert.Equal(t, color.RGBA{R: 255, G: 0, B: 0, A: 255}, tetris.Red.RGBA(1))
	assert.Equal(t, color.RGBA{}, tetris.Cyan.RGBA(0))
	assert.Equal(t, tetris.Orange.RGBA(1), tetris.Orange.RGBA(7), "alpha is clamped")
	assert.Panics(t, func() { tetris.Color(42).RGBA(1) })
}

func TestEnumStrings(t *testing.T) {
	assert.Equal(t, "Empty", tetris.Empty.String())
	assert.Equal(t, "Orange", tetris.Orange.String())
	assert.Equal(t, "Color(9)", tetris.Color(9).String())
	assert.Equal(t, "L", tetris.L.String())
	assert.Equal(t, "Down", tetris.Down.String())
	assert.Equal(t, "GameOver", tetris.GameOver.String())
}
