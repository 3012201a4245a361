package session

// Commands buffers input collected during a frame so it can be applied to a session
// in one batch at the end of the frame.
type Commands struct {
	queue []Command
}

func NewCommands() *Commands {
	return &Commands{}
}

// Push queues cmd.
func (c *Commands) Push(cmd Command) {
	c.queue = append(c.queue, cmd)
}

// Len returns the number of queued commands.
func (c *Commands) Len() int {
	return len(c.queue)
}

// Flush applies the queued commands to s in order and resets the buffer.
func (c *Commands) Flush(s *Session) {
	s.DoAll(c.queue...)
	c.queue = c.queue[:0]
}
