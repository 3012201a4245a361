// Package session serializes access to a tetris.Game. Timer ticks and player input are
// applied one at a time, either synchronously through Do or from the Run loop.
package session

import (
	"context"
	"io"
	"log"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/plus3/tetris/tetris"
)

// Session owns a game and applies commands to it strictly in order.
type Session struct {
	mu      sync.Mutex
	game    *tetris.Game
	width   int
	height  int
	rng     tetris.Rand
	logger  *log.Logger
	renders []func(tetris.Snapshot)
	events  []tetris.Observer
	inbox   chan Command
	stats   *stats
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger for game events. By default nothing is logged.
func WithLogger(logger *log.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// WithSeed makes shape selection reproducible.
func WithSeed(seed uint64) Option {
	return func(s *Session) {
		s.rng = rand.New(rand.NewPCG(seed, seed))
	}
}

// WithRand sets the shape source directly.
func WithRand(rng tetris.Rand) Option {
	return func(s *Session) {
		s.rng = rng
	}
}

// WithRenderer registers fn to be called with a fresh snapshot after every applied
// batch of commands. It runs with the session locked and must not call back into it.
func WithRenderer(fn func(tetris.Snapshot)) Option {
	return func(s *Session) {
		s.renders = append(s.renders, fn)
	}
}

// WithEvents registers fn to receive game events. The same rules as WithRenderer apply.
func WithEvents(fn tetris.Observer) Option {
	return func(s *Session) {
		s.events = append(s.events, fn)
	}
}

// WithInbox sets how many commands Send can queue ahead of Run. The default is 64.
func WithInbox(size int) Option {
	return func(s *Session) {
		s.inbox = make(chan Command, size)
	}
}

// New starts a session with a fresh width by height game.
func New(width, height int, opts ...Option) *Session {
	s := &Session{
		width:  width,
		height: height,
		logger: log.New(io.Discard, "", 0),
		inbox:  make(chan Command, 64),
		stats:  newStats(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	s.game = s.newGame()
	return s
}

func (s *Session) newGame() *tetris.Game {
	s.stats.games++
	s.logger.Printf("new game %dx%d", s.width, s.height)
	return tetris.NewGame(s.width, s.height,
		tetris.WithRand(s.rng),
		tetris.WithObserver(s.observe),
	)
}

func (s *Session) observe(ev tetris.Event) {
	switch ev.Kind {
	case tetris.Locked:
		s.stats.locks++
		s.stats.lines += int64(ev.Lines)
		if ev.Lines > 0 {
			s.logger.Printf("cleared %d lines for %d points, score %d", ev.Lines, ev.Award, ev.Score)
		}
	case tetris.Held:
		s.stats.holds++
	case tetris.GameOver:
		s.stats.gameOvers++
		s.logger.Printf("game over, score %d", ev.Score)
	default:
		panic("session: unknown event " + ev.Kind.String())
	}

	for _, fn := range s.events {
		fn(ev)
	}
}

// Do applies cmd and notifies renderers.
func (s *Session) Do(cmd Command) {
	s.DoAll(cmd)
}

// DoAll applies cmds in order as one batch; renderers see only the final state.
func (s *Session) DoAll(cmds ...Command) {
	if len(cmds) == 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, cmd := range cmds {
		start := time.Now()
		s.apply(cmd)
		s.stats.record(cmd, time.Since(start))
	}

	if len(s.renders) == 0 {
		return
	}
	snap := s.game.Snapshot()
	for _, fn := range s.renders {
		fn(snap)
	}
}

func (s *Session) apply(cmd Command) {
	switch cmd {
	case Tick:
		s.game.Tick()
	case MoveLeft:
		s.game.MoveLeft()
	case MoveRight:
		s.game.MoveRight()
	case MoveDown:
		s.game.MoveDown()
	case Rotate:
		s.game.Rotate()
	case HardDrop:
		s.game.HardDrop()
	case Hold:
		s.game.Hold()
	case Restart:
		s.game = s.newGame()
	default:
		panic("session: unknown command " + cmd.String())
	}
}

// Send queues cmd for Run. It blocks while the inbox is full and returns ctx.Err()
// if ctx is done first.
func (s *Session) Send(ctx context.Context, cmd Command) error {
	select {
	case s.inbox <- cmd:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run applies a Tick every interval and queued commands as they arrive, until ctx is
// cancelled. Only one Run may be active per session.
func (s *Session) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Do(Tick)
		case cmd := <-s.inbox:
			s.Do(cmd)
		}
	}
}

// Snapshot returns the current game state.
func (s *Session) Snapshot() tetris.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Snapshot()
}

// Restart replaces the game with a new one of the same size.
func (s *Session) Restart() {
	s.Do(Restart)
}

// Stats returns counters and timings for everything applied so far.
func (s *Session) Stats() *Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats.snapshot()
}
