package tetris

// Snapshot is a read-only copy of everything a renderer draws. Ghost is the current
// piece moved to where a hard drop would lock it; it is computed, never stored.
type Snapshot struct {
	Width    int
	Height   int
	Cells    [][]Color
	Current  Piece
	Ghost    Piece
	Next     Piece
	Held     Piece
	HasHeld  bool
	HoldUsed bool
	Score    int
	Lines    int
	GameOver bool
}

// Snapshot copies the game state for rendering.
func (g *Game) Snapshot() Snapshot {
	held, hasHeld := g.Held()
	return Snapshot{
		Width:    g.board.width,
		Height:   g.board.height,
		Cells:    g.board.Rows(),
		Current:  g.current,
		Ghost:    g.current.Landing(g.board),
		Next:     g.next,
		Held:     held,
		HasHeld:  hasHeld,
		HoldUsed: g.holdUsed,
		Score:    g.score,
		Lines:    g.lines,
		GameOver: g.gameOver,
	}
}

// Layer says what occupies a rendered cell.
type Layer uint8

const (
	LayerEmpty Layer = iota
	LayerLocked
	LayerGhost
	LayerCurrent
)

// At resolves the cell at column x, row y with the falling piece drawn over locked
// cells and locked cells drawn over the ghost.
func (s Snapshot) At(x, y int) (Color, Layer) {
	if occupies(s.Current, x, y) {
		return s.Current.Shape.Color(), LayerCurrent
	}
	if y >= 0 && y < len(s.Cells) && x >= 0 && x < len(s.Cells[y]) && s.Cells[y][x] != Empty {
		return s.Cells[y][x], LayerLocked
	}
	if occupies(s.Ghost, x, y) {
		return s.Ghost.Shape.Color(), LayerGhost
	}
	return Empty, LayerEmpty
}

func occupies(p Piece, x, y int) bool {
	return p.Shape.Occupied(x-p.X, y-p.Y)
}
