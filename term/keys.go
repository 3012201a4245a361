package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/plus3/tetris/session"
)

// Action is what a key press asks for: a session command or leaving the game.
type Action struct {
	Command session.Command
	Quit    bool
}

// KeyMap binds keys to actions. Special keys go in Keys, printable ones in Runes.
type KeyMap struct {
	Keys  map[tcell.Key]Action
	Runes map[rune]Action
}

// DefaultKeyMap uses the arrow keys with vi letters as an alternative.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Keys: map[tcell.Key]Action{
			tcell.KeyLeft:   {Command: session.MoveLeft},
			tcell.KeyRight:  {Command: session.MoveRight},
			tcell.KeyDown:   {Command: session.MoveDown},
			tcell.KeyUp:     {Command: session.Rotate},
			tcell.KeyEscape: {Quit: true},
			tcell.KeyCtrlC:  {Quit: true},
		},
		Runes: map[rune]Action{
			'h': {Command: session.MoveLeft},
			'l': {Command: session.MoveRight},
			'j': {Command: session.MoveDown},
			'k': {Command: session.Rotate},
			'x': {Command: session.Rotate},
			' ': {Command: session.HardDrop},
			'c': {Command: session.Hold},
			'C': {Command: session.Hold},
			'r': {Command: session.Restart},
			'q': {Quit: true},
		},
	}
}

// Lookup returns the action bound to ev.
func (m KeyMap) Lookup(ev *tcell.EventKey) (Action, bool) {
	if ev.Key() == tcell.KeyRune {
		a, ok := m.Runes[ev.Rune()]
		return a, ok
	}
	a, ok := m.Keys[ev.Key()]
	return a, ok
}
