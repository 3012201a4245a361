package tetris

// EventKind classifies a state transition reported to observers.
type EventKind uint8

const (
	// Locked is sent after a piece is merged into the board and full lines are cleared.
	Locked EventKind = iota
	// Held is sent after a successful hold.
	Held
	// GameOver is sent once, when a spawned piece does not fit.
	GameOver
)

// Event describes a transition of a Game. Lines and Award are only set for Locked.
type Event struct {
	Kind  EventKind
	Lines int
	Award int
	Score int
}

// Observer receives events synchronously from inside the command that caused them.
// It must not call back into the Game.
type Observer func(Event)
