package core

// Size describes the dimensions of the playing grid.
type Size struct {
	W int
	H int
}

// Area returns the number of cells in the grid.
func (s Size) Area() int { return s.W * s.H }

// Contains reports whether c lies inside the grid. There is no wraparound.
func (s Size) Contains(c Cell) bool {
	return c.X >= 0 && c.X < s.W && c.Y >= 0 && c.Y < s.H
}

// Index returns the row-major slice index for c. The result is only
// meaningful when Contains(c) is true.
func (s Size) Index(c Cell) int { return c.Y*s.W + c.X }

// Center returns the cell at the middle of the grid, rounding down.
func (s Size) Center() Cell { return Cell{X: s.W / 2, Y: s.H / 2} }
