package session_test

import (
	"fmt"

	"github.com/plus3/tetris/session"
	"github.com/plus3/tetris/tetris"
)

// ExampleSession drives a game through commands, the way a frontend does. Renderers
// are called once per batch with a fresh snapshot.
func ExampleSession() {
	s := session.New(10, 20,
		session.WithRand(always(tetris.I)),
		session.WithRenderer(func(snap tetris.Snapshot) {
			fmt.Printf("piece at column %d, score %d\n", snap.Current.X, snap.Score)
		}),
		session.WithEvents(func(ev tetris.Event) {
			fmt.Printf("%s: %d lines\n", ev.Kind, ev.Lines)
		}),
	)

	s.DoAll(session.MoveLeft, session.MoveLeft, session.MoveLeft)
	s.Do(session.HardDrop)

	stats := s.Stats()
	fmt.Printf("%d commands, %d locks\n", stats.TotalCommands, stats.Locks)

	// Output:
	// piece at column 0, score 0
	// Locked: 0 lines
	// piece at column 3, score 0
	// 4 commands, 1 locks
}
