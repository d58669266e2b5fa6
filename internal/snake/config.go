package snake

import "gridsnake/internal/core"

// Fixed playing field: a 640x480 window split into 20px cells.
const (
	GridWidth  = 32
	GridHeight = 24
)

// Config holds the rules of a game session. The grid size and speed ramp are
// fixed in normal play; tests shrink the grid to exercise edge cases.
type Config struct {
	Size core.Size
	Seed int64

	// BaseSpeed is the tick rate (steps per second) a session starts at.
	BaseSpeed float64
	// SpeedStep is added to the tick rate every PointsPerLevel points.
	SpeedStep      float64
	PointsPerLevel int

	// MaxStepsPerUpdate bounds how many movement steps a single Update call
	// may take when the accumulated time covers several intervals.
	MaxStepsPerUpdate int
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Size:              core.Size{W: GridWidth, H: GridHeight},
		BaseSpeed:         5.0,
		SpeedStep:         1.0,
		PointsPerLevel:    5,
		MaxStepsPerUpdate: 1,
	}
}

// normalized replaces unusable values with their defaults.
func (c Config) normalized() Config {
	def := DefaultConfig()
	if c.Size.W <= 0 || c.Size.H <= 0 {
		c.Size = def.Size
	}
	if c.BaseSpeed <= 0 {
		c.BaseSpeed = def.BaseSpeed
	}
	if c.SpeedStep <= 0 {
		c.SpeedStep = def.SpeedStep
	}
	if c.PointsPerLevel <= 0 {
		c.PointsPerLevel = def.PointsPerLevel
	}
	if c.MaxStepsPerUpdate <= 0 {
		c.MaxStepsPerUpdate = def.MaxStepsPerUpdate
	}
	return c
}
