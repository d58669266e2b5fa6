package snake

import "gridsnake/internal/core"

// Occupied reports whether a cell is taken.
type Occupied interface {
	Contains(c core.Cell) bool
}

// PlaceFood draws uniformly random cells until one is free. The grid must
// have more cells than are occupied; a completely full grid never returns.
func PlaceFood(rng *core.RNG, occupied Occupied, size core.Size) core.Cell {
	for {
		c := rng.Cell(size)
		if !occupied.Contains(c) {
			return c
		}
	}
}
