package session

import (
	"time"

	"github.com/kamstrup/intmap"
)

// Stats provides counters about a session's games and per-command timings.
type Stats struct {
	TotalCommands int64
	Games         int64
	GameOvers     int64
	Locks         int64
	Holds         int64
	Lines         int64
	Commands      []CommandStats
}

// CommandStats provides execution statistics for a single command.
type CommandStats struct {
	Command        Command
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type commandStatsInternal struct {
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

type stats struct {
	commands  *intmap.Map[Command, *commandStatsInternal]
	games     int64
	gameOvers int64
	locks     int64
	holds     int64
	lines     int64
}

func newStats() *stats {
	return &stats{
		commands: intmap.New[Command, *commandStatsInternal](CommandCount),
	}
}

func (s *stats) record(cmd Command, duration time.Duration) {
	internal, ok := s.commands.Get(cmd)
	if !ok {
		internal = &commandStatsInternal{minDuration: time.Duration(1<<63 - 1)}
		s.commands.Put(cmd, internal)
	}

	internal.executionCount++
	internal.lastDuration = duration
	internal.totalDuration += duration

	if duration < internal.minDuration {
		internal.minDuration = duration
	}
	if duration > internal.maxDuration {
		internal.maxDuration = duration
	}
}

// snapshot reports commands in Command order, skipping those never applied.
func (s *stats) snapshot() *Stats {
	out := &Stats{
		Games:     s.games,
		GameOvers: s.gameOvers,
		Locks:     s.locks,
		Holds:     s.holds,
		Lines:     s.lines,
		Commands:  make([]CommandStats, 0, s.commands.Len()),
	}

	for cmd := range Command(CommandCount) {
		internal, ok := s.commands.Get(cmd)
		if !ok {
			continue
		}

		avgDuration := time.Duration(0)
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
		}

		out.Commands = append(out.Commands, CommandStats{
			Command:        cmd,
			ExecutionCount: internal.executionCount,
			MinDuration:    internal.minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		})
		out.TotalCommands += internal.executionCount
	}

	return out
}
