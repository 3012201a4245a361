// Package config loads tetris settings from the environment and command-line flags.
package config

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/plus3/tetris/tetris"
)

// Frontend names the user interface to run.
type Frontend string

const (
	Terminal  Frontend = "term"
	Graphical Frontend = "gui"
)

// Config holds tetris command configuration. Flags override the environment.
type Config struct {
	Width    int           `env:"TETRIS_WIDTH"    envDefault:"10"`
	Height   int           `env:"TETRIS_HEIGHT"   envDefault:"20"`
	Tick     time.Duration `env:"TETRIS_TICK"     envDefault:"500ms"`
	Frontend Frontend      `env:"TETRIS_FRONTEND" envDefault:"term"`
	Seed     uint64        `env:"TETRIS_SEED"`
	Sound    bool          `env:"TETRIS_SOUND"`
	DebugUI  bool          `env:"TETRIS_DEBUG_UI"`
	LogFile  string        `env:"TETRIS_LOG_FILE"`
}

// ParseConfig reads the environment, then parses args from fs on top of it.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return parse(cfg, fs, args)
}

// ParseFrom is ParseConfig with an explicit environment instead of the process one.
func ParseFrom(environ map[string]string, fs *flag.FlagSet, args []string) (Config, error) {
	if environ == nil {
		environ = map[string]string{}
	}
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return parse(cfg, fs, args)
}

func parse(cfg Config, fs *flag.FlagSet, args []string) (Config, error) {
	frontend := string(cfg.Frontend)

	fs.IntVar(&cfg.Width, "width", cfg.Width, "board width in cells")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "board height in cells")
	fs.DurationVar(&cfg.Tick, "tick", cfg.Tick, "gravity interval")
	fs.StringVar(&frontend, "frontend", frontend, "user interface: term or gui")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "shape sequence seed (0 picks one at random)")
	fs.BoolVar(&cfg.Sound, "sound", cfg.Sound, "play line clear and game over tones")
	fs.BoolVar(&cfg.DebugUI, "debug-ui", cfg.DebugUI, "show the imgui debug overlay (gui only)")
	fs.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "write logs to this file")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	cfg.Frontend = Frontend(frontend)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports settings no game can run with.
func (c Config) Validate() error {
	var errs []error
	if c.Width < tetris.MinWidth {
		errs = append(errs, fmt.Errorf("width %d is below the minimum of %d", c.Width, tetris.MinWidth))
	}
	if c.Height < tetris.MinHeight {
		errs = append(errs, fmt.Errorf("height %d is below the minimum of %d", c.Height, tetris.MinHeight))
	}
	if c.Tick <= 0 {
		errs = append(errs, fmt.Errorf("tick must be positive, got %s", c.Tick))
	}
	switch c.Frontend {
	case Terminal, Graphical:
	default:
		errs = append(errs, fmt.Errorf("unknown frontend %q", c.Frontend))
	}
	if c.DebugUI && c.Frontend != Graphical {
		errs = append(errs, errors.New("debug ui needs the gui frontend"))
	}
	return errors.Join(errs...)
}
