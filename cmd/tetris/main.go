// Command tetris plays a game in the terminal or in a window.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/tetris/debugui"
	"github.com/plus3/tetris/gui"
	"github.com/plus3/tetris/internal/config"
	"github.com/plus3/tetris/session"
	"github.com/plus3/tetris/sound"
	"github.com/plus3/tetris/term"
)

// frontends run a session until the player quits or ctx is done.
var frontends = map[config.Frontend]func(context.Context, config.Config, *session.Session) error{
	config.Terminal:  runTerminal,
	config.Graphical: runGraphical,
}

func main() {
	if err := run(flag.CommandLine, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(fs *flag.FlagSet, args []string) error {
	cfg, err := config.ParseConfig(fs, args)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	logger, closeLog, err := openLog(cfg)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer closeLog()

	opts := []session.Option{session.WithLogger(logger)}
	if cfg.Seed != 0 {
		opts = append(opts, session.WithSeed(cfg.Seed))
	}
	if cfg.Sound {
		player := sound.New()
		if err := player.Init(); err != nil {
			logger.Printf("sound disabled: %v", err)
		} else {
			opts = append(opts, session.WithEvents(player.OnEvent))
		}
	}
	s := session.New(cfg.Width, cfg.Height, opts...)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := frontends[cfg.Frontend](ctx, cfg, s); err != nil && !errors.Is(err, context.Canceled) {
		logger.Printf("exit: %v", err)
		return err
	}

	stats := s.Stats()
	logger.Printf("played %d games, cleared %d lines", stats.Games, stats.Lines)
	return nil
}

// openLog picks the log destination. The terminal frontend owns the screen, so it
// logs nowhere unless a file is configured.
func openLog(cfg config.Config) (*log.Logger, func(), error) {
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, err
		}
		return log.New(f, "tetris ", log.LstdFlags), func() { f.Close() }, nil
	}
	if cfg.Frontend == config.Terminal {
		return log.New(io.Discard, "", 0), func() {}, nil
	}
	return log.New(os.Stderr, "tetris ", log.LstdFlags), func() {}, nil
}

func runTerminal(ctx context.Context, cfg config.Config, s *session.Session) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	g := &term.Game{
		Screen:   screen,
		Session:  s,
		Keys:     term.DefaultKeyMap(),
		Interval: cfg.Tick,
	}
	return g.Run(ctx)
}

func runGraphical(ctx context.Context, cfg config.Config, s *session.Session) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go s.Run(ctx, cfg.Tick)

	width, height := gui.WindowSize(cfg.Width, cfg.Height)
	var overlay *debugui.Overlay
	if cfg.DebugUI {
		stats := debugui.NewStatsWindow(s, 120)
		stats.X = float32(width)
		inspector := debugui.NewGameWindow(s)
		inspector.X = stats.X + 390

		width += 660
		height = max(height, 440)
		overlay = debugui.NewOverlay("Tetris", width, height)
		overlay.Add(stats.Item(), inspector.Item())
	} else {
		ebiten.SetWindowSize(width, height)
		ebiten.SetWindowTitle("Tetris")
	}

	game := gui.New(s, overlay)
	go func() {
		<-ctx.Done()
		game.Stop()
	}()
	if err := ebiten.RunGame(game); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
