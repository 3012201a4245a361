package tetris

// Kind names one of the seven tetrominoes.
type Kind uint8

const (
	O Kind = iota
	I
	T
	S
	Z
	J
	L
)

// KindCount is the number of shapes in the catalog.
const KindCount = 7

// Rand is the source of randomness for shape selection. *math/rand/v2.Rand satisfies it.
type Rand interface {
	IntN(n int) int
}

var catalog = [KindCount]Shape{
	O: NewShape([][]bool{
		{true, true},
		{true, true},
	}, Yellow),
	I: NewShape([][]bool{
		{true, true, true, true},
	}, Cyan),
	T: NewShape([][]bool{
		{false, true, false},
		{true, true, true},
	}, Purple),
	S: NewShape([][]bool{
		{false, true, true},
		{true, true, false},
	}, Green),
	Z: NewShape([][]bool{
		{true, true, false},
		{false, true, true},
	}, Red),
	J: NewShape([][]bool{
		{true, false, false},
		{true, true, true},
	}, Blue),
	L: NewShape([][]bool{
		{false, false, true},
		{true, true, true},
	}, Orange),
}

// ShapeOf returns the spawn orientation of the given tetromino.
func ShapeOf(k Kind) Shape {
	if k >= KindCount {
		panic("tetris: unknown shape kind " + k.String())
	}
	return catalog[k]
}

// Shapes returns the whole catalog in Kind order.
func Shapes() []Shape {
	shapes := make([]Shape, KindCount)
	copy(shapes, catalog[:])
	return shapes
}

// RandomShape picks one of the seven shapes uniformly. Picks are independent; there is
// no bag or history.
func RandomShape(rng Rand) Shape {
	return catalog[rng.IntN(KindCount)]
}
