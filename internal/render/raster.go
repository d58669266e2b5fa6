package render

import (
	"image"
	"iter"

	"gridsnake/internal/core"
)

// Segments is a snake as seen by renderers: a length and the cells from head
// to tail.
type Segments interface {
	Len() int
	All() iter.Seq2[int, core.Cell]
}

// Rasterize clears grid and writes the shade of every segment into its cell.
// Segments outside the grid are skipped. Shades are never 0, so a zero cell
// is always empty.
func Rasterize(grid *core.ByteGrid, body Segments) {
	grid.Clear()
	n := body.Len()
	for i, c := range body.All() {
		grid.Set(c, SnakeShade(i, n))
	}
}

// CellRect returns the pixel rectangle covering grid cell c.
func CellRect(c core.Cell, cellSize int) image.Rectangle {
	origin := image.Pt(c.X*cellSize, c.Y*cellSize)
	return image.Rectangle{Min: origin, Max: origin.Add(image.Pt(cellSize, cellSize))}
}

// FoodRect returns the food square for cell c, inset by a fifth of the cell
// on every side.
func FoodRect(c core.Cell, cellSize int) image.Rectangle {
	return CellRect(c, cellSize).Inset(cellSize / 5)
}
