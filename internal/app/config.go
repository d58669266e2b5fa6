package app

import (
	"flag"
	"io"
	"log"

	"gridsnake/internal/core"
	"gridsnake/internal/snake"
)

// Config represents the command-line parameters shared by every frontend.
type Config struct {
	Seed  int64
	TPS   int
	Cell  int
	Quiet bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Seed: 0, TPS: 60, Cell: 20}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.Int64Var(&c.Seed, "seed", c.Seed, "food placement seed (0 picks one from the clock)")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.IntVar(&c.Cell, "cell", c.Cell, "pixel size of one grid cell")
	fs.BoolVar(&c.Quiet, "quiet", c.Quiet, "disable session logging")
}

// GameConfig returns the rules for a new game, resolving a zero seed from
// the clock.
func (c *Config) GameConfig() snake.Config {
	cfg := snake.DefaultConfig()
	cfg.Seed = core.SeedFromClock(c.Seed)
	return cfg
}

// Logger returns the logger session events are written to.
func (c *Config) Logger() *log.Logger {
	if c.Quiet {
		return log.New(io.Discard, "", 0)
	}
	return log.Default()
}

// CellSize returns the pixel size of one grid cell, at least 1.
func (c *Config) CellSize() int {
	return max(c.Cell, 1)
}

// WindowSize returns the pixel size of a window showing the whole grid.
func (c *Config) WindowSize(size core.Size) (int, int) {
	cell := c.CellSize()
	return size.W * cell, size.H * cell
}
