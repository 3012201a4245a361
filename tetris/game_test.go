package tetris_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/plus3/tetris/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGame(t *testing.T) {
	g := tetris.NewGame(10, 20, tetris.WithRand(script(tetris.I, tetris.T)))

	assert.Equal(t, 10, g.Width())
	assert.Equal(t, 20, g.Height())
	assert.Equal(t, tetris.Cyan, g.Current().Shape.Color())
	assert.Equal(t, 3, g.Current().X)
	assert.Equal(t, 0, g.Current().Y)
	assert.Equal(t, tetris.Purple, g.Next().Shape.Color())
	assert.Equal(t, 4, g.Next().X)

	_, held := g.Held()
	assert.False(t, held)
	assert.False(t, g.HoldUsed())
	assert.False(t, g.GameOver())
	assert.Zero(t, g.Score())
}

func TestNewGameRejectsDegenerateSizes(t *testing.T) {
	assert.Panics(t, func() { tetris.NewGame(0, 20) })
	assert.Panics(t, func() { tetris.NewGame(3, 20) })
	assert.Panics(t, func() { tetris.NewGame(10, 1) })
	assert.Panics(t, func() { tetris.NewGame(10, 20, tetris.WithBoard(tetris.NewBoard(8, 20))) })
}

func TestTick(t *testing.T) {
	g := tetris.NewGame(10, 20, tetris.WithRand(script(tetris.O)))

	for y := 1; y <= 18; y++ {
		g.Tick()
		require.Equal(t, y, g.Current().Y)
	}
	assert.Equal(t, tetris.Empty, g.Cell(4, 19), "nothing locks while the piece can fall")

	g.Tick()

	assert.Equal(t, tetris.Yellow, g.Cell(4, 19))
	assert.Equal(t, tetris.Yellow, g.Cell(5, 18))
	assert.Equal(t, 0, g.Current().Y, "a new piece spawns at the top")
}

func TestHardDropLocksWithoutClearing(t *testing.T) {
	g := tetris.NewGame(10, 20, tetris.WithRand(script(tetris.I, tetris.O)))
	require.Equal(t, 3, g.Current().X)

	g.HardDrop()

	board := g.Board()
	for x := range 10 {
		want := tetris.Empty
		if x >= 3 && x <= 6 {
			want = tetris.Cyan
		}
		assert.Equal(t, want, board.At(x, 19), "column %d", x)
	}
	for y := range 19 {
		for x := range 10 {
			require.Equal(t, tetris.Empty, board.At(x, y))
		}
	}
	assert.Zero(t, g.Score())
	assert.Zero(t, g.Lines())
	assert.Equal(t, tetris.Yellow, g.Current().Shape.Color())
}

func TestHardDropClearsALine(t *testing.T) {
	board := rigged(t, 10, 20,
		"B.........",
		"RRR....RRR",
	)
	g := tetris.NewGame(10, 20, tetris.WithBoard(board), tetris.WithRand(script(tetris.I, tetris.O)))

	g.HardDrop()

	assert.Equal(t, 100, g.Score())
	assert.Equal(t, 1, g.Lines())
	assert.Equal(t, tetris.Blue, g.Cell(0, 19), "row above shifts down")
	for x := 1; x < 10; x++ {
		assert.Equal(t, tetris.Empty, g.Cell(x, 19))
	}
	for x := range 10 {
		assert.Equal(t, tetris.Empty, g.Cell(x, 0), "new empty row on top")
		assert.Equal(t, tetris.Empty, g.Cell(x, 18))
	}
}

func TestScoringTable(t *testing.T) {
	rows := []string{
		"RRR.RRRRRR",
		"RRR.RRRRRR",
		"RRR.RRRRRR",
		"RRR.RRRRRR",
	}
	partial := "RR..RRRRRR"

	tests := []struct {
		full  int
		award int
	}{
		{0, 0},
		{1, 100},
		{2, 300},
		{3, 500},
		{4, 800},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d lines", tt.full), func(t *testing.T) {
			// Rows that should not clear are missing a second cell.
			bottom := make([]string, 4)
			for i := range bottom {
				if i < 4-tt.full {
					bottom[i] = partial
				} else {
					bottom[i] = rows[i]
				}
			}
			g := tetris.NewGame(10, 20,
				tetris.WithBoard(rigged(t, 10, 20, bottom...)),
				tetris.WithRand(script(tetris.I, tetris.O)),
			)

			g.Rotate()
			require.Equal(t, 1, g.Current().Shape.Width(), "I is vertical")
			require.Equal(t, 3, g.Current().X)
			g.HardDrop()

			assert.Equal(t, tt.award, g.Score())
			assert.Equal(t, tt.full, g.Lines())
		})
	}
}

func TestLineScore(t *testing.T) {
	for n, want := range map[int]int{-1: 0, 0: 0, 1: 100, 2: 300, 3: 500, 4: 800, 5: 0, 20: 0} {
		assert.Equal(t, want, tetris.LineScore(n), "%d lines", n)
	}
}

func TestHold(t *testing.T) {
	t.Run("first hold brings in the next piece", func(t *testing.T) {
		g := tetris.NewGame(10, 20, tetris.WithRand(script(tetris.T, tetris.O, tetris.S)))
		g.MoveLeft()
		before := g.Current()

		g.Hold()

		held, ok := g.Held()
		require.True(t, ok)
		assert.Equal(t, before, held, "held is a copy of the falling piece")
		assert.Equal(t, tetris.Yellow, g.Current().Shape.Color())
		assert.Equal(t, tetris.Green, g.Next().Shape.Color())
		assert.True(t, g.HoldUsed())
	})

	t.Run("second hold before a lock is ignored", func(t *testing.T) {
		g := tetris.NewGame(10, 20, tetris.WithRand(script(tetris.T, tetris.O, tetris.S)))
		g.Hold()
		before := g.Snapshot()

		g.Hold()

		assert.Equal(t, before, g.Snapshot())
	})

	t.Run("hold after a lock swaps and recentres", func(t *testing.T) {
		g := tetris.NewGame(10, 20, tetris.WithRand(script(tetris.T, tetris.O, tetris.S)))
		g.Hold() // holds T, O falls, S is next
		g.HardDrop()
		require.False(t, g.HoldUsed(), "lock resets the hold")
		require.Equal(t, tetris.Green, g.Current().Shape.Color())
		g.MoveRight()
		g.Tick()
		next := g.Next()

		g.Hold()

		held, ok := g.Held()
		require.True(t, ok)
		assert.Equal(t, tetris.Green, held.Shape.Color())
		assert.Equal(t, tetris.Purple, g.Current().Shape.Color())
		assert.Equal(t, 4, g.Current().X)
		assert.Equal(t, 0, g.Current().Y)
		assert.Equal(t, next, g.Next(), "a swap does not draw")
		assert.True(t, g.HoldUsed())
	})

	t.Run("swap into a blocked spawn is refused", func(t *testing.T) {
		tower := make([]string, 16)
		for i := range tower {
			tower[i] = "....RR...."
		}
		g := tetris.NewGame(10, 20,
			tetris.WithBoard(rigged(t, 10, 20, tower...)),
			tetris.WithRand(script(tetris.I, tetris.O, tetris.O, tetris.O)),
		)
		g.Rotate()
		g.Hold()     // holds the vertical I, which respawns in column 5
		g.HardDrop() // O locks on the tower in rows 2-3
		require.Equal(t, tetris.Yellow, g.Cell(5, 2))
		require.False(t, g.HoldUsed())
		before := g.Snapshot()

		g.Hold()

		assert.Equal(t, before, g.Snapshot())
		assert.False(t, g.HoldUsed())
	})
}

func TestGameOver(t *testing.T) {
	t.Run("spawn onto locked cells ends the game", func(t *testing.T) {
		g := tetris.NewGame(10, 20, tetris.WithRand(script(tetris.O)))

		for range 9 {
			g.HardDrop()
			require.False(t, g.GameOver())
		}
		last := g.Current()
		next := g.Next()
		require.Equal(t, 0, last.Y)

		g.HardDrop()

		assert.True(t, g.GameOver())
		assert.Equal(t, last, g.Current(), "the blocked piece is not installed")
		assert.Equal(t, next, g.Next())
	})

	t.Run("rigged spawn row", func(t *testing.T) {
		top := []string{"....RR....", ".........."}
		bottom := make([]string, 20)
		copy(bottom, top)
		for i := 2; i < 20; i++ {
			bottom[i] = ".........."
		}

		var events []tetris.Event
		g := tetris.NewGame(10, 20,
			tetris.WithBoard(rigged(t, 10, 20, bottom...)),
			tetris.WithRand(script(tetris.O)),
			tetris.WithObserver(func(ev tetris.Event) { events = append(events, ev) }),
		)

		assert.True(t, g.GameOver())
		assert.Zero(t, g.Current().Shape.Width(), "no piece was installed")
		assert.Equal(t, []tetris.Event{{Kind: tetris.GameOver}}, events)

		done := make(chan tetris.Snapshot, 1)
		go func() { done <- g.Snapshot() }()
		select {
		case snap := <-done:
			assert.True(t, snap.GameOver)
			assert.Equal(t, snap.Current, snap.Ghost)
		case <-time.After(2 * time.Second):
			t.Fatal("Snapshot did not return")
		}
	})

	t.Run("commands are ignored afterwards", func(t *testing.T) {
		g := tetris.NewGame(10, 20, tetris.WithRand(script(tetris.O)))
		for !g.GameOver() {
			g.HardDrop()
		}
		before := g.Snapshot()

		g.Tick()
		g.MoveLeft()
		g.MoveRight()
		g.MoveDown()
		g.Rotate()
		g.HardDrop()
		g.Hold()

		assert.Equal(t, before, g.Snapshot())
	})
}

func TestObserver(t *testing.T) {
	board := rigged(t, 10, 20, "RRR....RRR")
	var events []tetris.Event
	g := tetris.NewGame(10, 20,
		tetris.WithBoard(board),
		tetris.WithRand(script(tetris.I, tetris.O)),
		tetris.WithObserver(func(ev tetris.Event) { events = append(events, ev) }),
	)

	g.HardDrop()
	g.Hold()

	assert.Equal(t, []tetris.Event{
		{Kind: tetris.Locked, Lines: 1, Award: 100, Score: 100},
		{Kind: tetris.Held, Score: 100},
	}, events)
}

func TestWithBoardCopiesTheBoard(t *testing.T) {
	board := rigged(t, 10, 20, "RRRRRRRRR.")
	g := tetris.NewGame(10, 20, tetris.WithBoard(board), tetris.WithRand(script(tetris.O)))

	g.HardDrop()

	assert.Equal(t, tetris.Yellow, g.Cell(4, 17))
	assert.Equal(t, tetris.Empty, board.At(4, 17), "the caller's board is not touched")
}

func TestMovesDelegateToPiece(t *testing.T) {
	g := tetris.NewGame(10, 20, tetris.WithRand(script(tetris.T)))

	g.MoveLeft()
	g.MoveLeft()
	assert.Equal(t, 2, g.Current().X)
	g.MoveRight()
	assert.Equal(t, 3, g.Current().X)
	g.MoveDown()
	assert.Equal(t, 1, g.Current().Y)
	g.Rotate()
	assert.Equal(t, 2, g.Current().Shape.Width())

	for range 20 {
		g.MoveLeft()
	}
	assert.Equal(t, 0, g.Current().X)
}
