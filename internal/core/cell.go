package core

// Cell is an integer grid coordinate. X grows rightwards and Y downwards.
type Cell struct {
	X int
	Y int
}

// Add returns the component-wise sum of two cells.
func (c Cell) Add(other Cell) Cell {
	return Cell{X: c.X + other.X, Y: c.Y + other.Y}
}

// Step returns the neighbouring cell one unit away in direction d.
func (c Cell) Step(d Direction) Cell {
	return c.Add(d.Delta())
}
