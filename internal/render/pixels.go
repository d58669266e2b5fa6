package render

import "image/color"

// Palette colours.
var (
	Background = color.RGBA{A: 255}
	FoodColor  = color.RGBA{R: 255, G: 80, B: 80, A: 255}
	TextColor  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// SnakeShade returns the green level of segment i in a snake of length n.
// The head is brightest and each segment darkens by 200/n, in integer steps.
func SnakeShade(i, n int) uint8 {
	if n <= 0 || i < 0 {
		return 255
	}
	return uint8(255 - i*(200/n))
}

// SnakeColor returns the colour of segment i in a snake of length n.
func SnakeColor(i, n int) color.RGBA {
	return color.RGBA{G: SnakeShade(i, n), A: 255}
}

// shadePalette maps raster values to colours: 0 is the background and any
// other value v is a snake segment with green level v.
var shadePalette = buildShadePalette()

func buildShadePalette() []color.RGBA {
	palette := make([]color.RGBA, 256)
	palette[0] = Background
	for v := 1; v < len(palette); v++ {
		palette[v] = color.RGBA{G: uint8(v), A: 255}
	}
	return palette
}

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		clear(buf[:4*len(cells)])
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := min(int(c), last)
		col := palette[idx]
		base := i * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
