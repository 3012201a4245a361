package session

//go:generate go tool stringer -type=Command

// Command is one input to a session: a player action, the gravity tick or a restart.
type Command uint8

const (
	Tick Command = iota
	MoveLeft
	MoveRight
	MoveDown
	Rotate
	HardDrop
	Hold
	Restart
)

// CommandCount is the number of defined commands.
const CommandCount = 8
