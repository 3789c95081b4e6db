// Package config holds the command-line settings shared by both frontends.
package config

import (
	"flag"
	"fmt"
	"io"

	"statue-snake/game/types"
	"statue-snake/highscore"
)

const (
	// Statues can fill a smaller board before the snake dies, leaving no
	// cell for food
	MinGridSize = 8
	MaxGridSize = 200
)

type Config struct {
	GridSize      int
	HighScorePath string
	Seed          uint64
	Debug         bool
	LogDir        string

	// raylib frontend
	WindowWidth  int
	WindowHeight int

	Mute bool
}

func Default() Config {
	return Config{
		GridSize:      types.DefaultGridSize,
		HighScorePath: highscore.DefaultPath,
		LogDir:        DefaultLogDir,
		WindowWidth:   600,
		WindowHeight:  640,
	}
}

// Parse reads flags from args (without the program name)
func Parse(name string, args []string, output io.Writer) (Config, error) {
	cfg := Default()

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)
	fs.IntVar(&cfg.GridSize, "grid", cfg.GridSize, "Grid size in cells (square)")
	fs.StringVar(&cfg.HighScorePath, "highscores", cfg.HighScorePath, "High score file")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed (0 = time based)")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "Write a debug log")
	fs.StringVar(&cfg.LogDir, "logdir", cfg.LogDir, "Directory for the debug log")
	fs.IntVar(&cfg.WindowWidth, "width", cfg.WindowWidth, "Window width in pixels")
	fs.IntVar(&cfg.WindowHeight, "height", cfg.WindowHeight, "Window height in pixels")
	fs.BoolVar(&cfg.Mute, "mute", cfg.Mute, "Disable sound")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.GridSize < MinGridSize || c.GridSize > MaxGridSize {
		return fmt.Errorf("config: grid size %d outside [%d, %d]", c.GridSize, MinGridSize, MaxGridSize)
	}
	if c.HighScorePath == "" {
		return fmt.Errorf("config: empty high score path")
	}
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		return fmt.Errorf("config: invalid window size %dx%d", c.WindowWidth, c.WindowHeight)
	}
	return nil
}
