package tetris

import (
	"fmt"
	"math/rand/v2"
)

const (
	// MinWidth is the narrowest board every catalog shape can spawn on.
	MinWidth = 4
	// MinHeight is the shortest board every catalog shape can spawn on.
	MinHeight = 2
)

// Game holds the complete state of one session: the board, the falling piece, the
// next and held pieces and the score.
type Game struct {
	board    *Board
	current  Piece
	next     Piece
	held     *Piece
	holdUsed bool
	score    int
	lines    int
	gameOver bool

	rng       Rand
	observers []Observer
}

// Option configures a Game at construction.
type Option func(*Game)

// WithRand sets the source used to draw shapes.
func WithRand(rng Rand) Option {
	return func(g *Game) {
		g.rng = rng
	}
}

// WithBoard starts the game on a copy of b instead of an empty board. The board must
// match the dimensions passed to NewGame.
func WithBoard(b *Board) Option {
	return func(g *Game) {
		if b.width != g.board.width || b.height != g.board.height {
			panic(fmt.Sprintf("tetris: board is %dx%d, game is %dx%d", b.width, b.height, g.board.width, g.board.height))
		}
		g.board = b.Clone()
	}
}

// WithObserver registers fn to receive the game's events.
func WithObserver(fn Observer) Option {
	return func(g *Game) {
		g.observers = append(g.observers, fn)
	}
}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// NewGame starts a game on a width by height board and spawns the first piece.
// Boards smaller than MinWidth by MinHeight panic.
func NewGame(width, height int, opts ...Option) *Game {
	if width < MinWidth || height < MinHeight {
		panic(fmt.Sprintf("tetris: board %dx%d is smaller than %dx%d", width, height, MinWidth, MinHeight))
	}

	g := &Game{
		board: NewBoard(width, height),
		rng:   globalRand{},
	}
	for _, opt := range opts {
		opt(g)
	}

	g.next = g.draw()
	g.spawn()

	return g
}

// Tick advances the falling piece one row, locking it when it cannot fall.
func (g *Game) Tick() {
	if g.gameOver {
		return
	}
	if g.current.CanMove(Down, g.board) {
		g.current.Move(Down, g.board)
		return
	}
	g.lock()
}

func (g *Game) MoveLeft()  { g.move(Left) }
func (g *Game) MoveRight() { g.move(Right) }
func (g *Game) MoveDown()  { g.move(Down) }

func (g *Game) move(dir Direction) {
	if g.gameOver {
		return
	}
	g.current.Move(dir, g.board)
}

// Rotate turns the falling piece clockwise when it fits.
func (g *Game) Rotate() {
	if g.gameOver {
		return
	}
	g.current.Rotate(g.board)
}

// HardDrop drops the falling piece as far as it goes and locks it immediately.
func (g *Game) HardDrop() {
	if g.gameOver {
		return
	}
	for g.current.CanMove(Down, g.board) {
		g.current.Move(Down, g.board)
	}
	g.lock()
}

// Hold sets the falling piece aside. The first hold brings in the next piece; later
// holds swap with the held piece. Only one hold is allowed per locked piece.
func (g *Game) Hold() {
	if g.gameOver || g.holdUsed {
		return
	}

	if g.held != nil {
		swapped := spawnPiece(g.held.Shape, g.board.width)
		if !swapped.CanStay(g.board) {
			return
		}
		held := g.current
		g.current, g.held = swapped, &held
		g.holdUsed = true
		g.emit(Event{Kind: Held, Score: g.score})
		return
	}

	held := g.current
	g.held = &held
	g.holdUsed = true
	g.emit(Event{Kind: Held, Score: g.score})
	g.spawn()
}

func (g *Game) lock() {
	g.board.merge(g.current)

	lines := g.board.ClearFullLines()
	award := LineScore(lines)
	g.score += award
	g.lines += lines
	g.holdUsed = false
	g.emit(Event{Kind: Locked, Lines: lines, Award: award, Score: g.score})

	g.spawn()
}

// spawn promotes the next piece. A next piece that does not fit ends the game and
// leaves both current and next untouched.
func (g *Game) spawn() {
	candidate := spawnPiece(g.next.Shape, g.board.width)
	if !candidate.CanStay(g.board) {
		g.gameOver = true
		g.emit(Event{Kind: GameOver, Score: g.score})
		return
	}
	g.current = candidate
	g.next = g.draw()
}

func (g *Game) draw() Piece {
	return spawnPiece(RandomShape(g.rng), g.board.width)
}

func (g *Game) emit(ev Event) {
	for _, fn := range g.observers {
		fn(ev)
	}
}

// LineScore is the award for clearing n rows with one piece.
func LineScore(n int) int {
	switch n {
	case 1:
		return 100
	case 2:
		return 300
	case 3:
		return 500
	case 4:
		return 800
	default:
		return 0
	}
}

func (g *Game) Width() int  { return g.board.width }
func (g *Game) Height() int { return g.board.height }

// Cell returns the locked color at column x, row y.
func (g *Game) Cell(x, y int) Color { return g.board.At(x, y) }

// Board returns a copy of the board.
func (g *Game) Board() *Board { return g.board.Clone() }

func (g *Game) Current() Piece { return g.current }
func (g *Game) Next() Piece    { return g.next }

// Held returns the held piece, if any.
func (g *Game) Held() (Piece, bool) {
	if g.held == nil {
		return Piece{}, false
	}
	return *g.held, true
}

func (g *Game) HoldUsed() bool { return g.holdUsed }
func (g *Game) Score() int     { return g.score }

// Lines returns the total number of rows cleared.
func (g *Game) Lines() int     { return g.lines }
func (g *Game) GameOver() bool { return g.gameOver }
