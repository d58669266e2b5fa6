package core

// ByteGrid stores a 2D grid of byte-sized cell values in row-major order.
type ByteGrid struct {
	W, H int
	data []uint8
}

// NewByteGrid allocates a grid with the given dimensions.
func NewByteGrid(size Size) *ByteGrid {
	w, h := size.W, size.H
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// Size returns the grid dimensions.
func (g *ByteGrid) Size() Size { return Size{W: g.W, H: g.H} }

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *ByteGrid) Index(x, y int) int { return y*g.W + x }

// At returns the value stored at c, or 0 when c is outside the grid.
func (g *ByteGrid) At(c Cell) uint8 {
	if !g.Size().Contains(c) {
		return 0
	}
	return g.data[g.Index(c.X, c.Y)]
}

// Set stores v at c. Cells outside the grid are ignored.
func (g *ByteGrid) Set(c Cell, v uint8) {
	if !g.Size().Contains(c) {
		return
	}
	g.data[g.Index(c.X, c.Y)] = v
}

// Clear fills the grid with zeros.
func (g *ByteGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}
