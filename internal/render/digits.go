package render

import (
	"image"
	"strconv"
)

// Digit glyphs are 3 pixels wide and 5 tall.
const (
	DigitWidth  = 3
	DigitHeight = 5

	// DigitPixel is the side of one glyph pixel, DigitPitch the distance
	// between glyph pixels and DigitAdvance the distance between digits.
	DigitPixel   = 4
	DigitPitch   = 5
	DigitAdvance = 20
)

var digitGlyphs = [10][DigitHeight][DigitWidth]bool{
	{{true, true, true}, {true, false, true}, {true, false, true}, {true, false, true}, {true, true, true}},
	{{false, true, false}, {true, true, false}, {false, true, false}, {false, true, false}, {true, true, true}},
	{{true, true, true}, {false, false, true}, {true, true, true}, {true, false, false}, {true, true, true}},
	{{true, true, true}, {false, false, true}, {true, true, true}, {false, false, true}, {true, true, true}},
	{{true, false, true}, {true, false, true}, {true, true, true}, {false, false, true}, {false, false, true}},
	{{true, true, true}, {true, false, false}, {true, true, true}, {false, false, true}, {true, true, true}},
	{{true, true, true}, {true, false, false}, {true, true, true}, {true, false, true}, {true, true, true}},
	{{true, true, true}, {false, false, true}, {false, true, false}, {true, false, false}, {true, false, false}},
	{{true, true, true}, {true, false, true}, {true, true, true}, {true, false, true}, {true, true, true}},
	{{true, true, true}, {true, false, true}, {true, true, true}, {false, false, true}, {true, true, true}},
}

// AppendDigitRects appends the filled pixels of digit d drawn with its top
// left corner at (x, y). Values outside 0-9 draw nothing.
func AppendDigitRects(dst []image.Rectangle, d, x, y int) []image.Rectangle {
	if d < 0 || d > 9 {
		return dst
	}
	for row := 0; row < DigitHeight; row++ {
		for col := 0; col < DigitWidth; col++ {
			if !digitGlyphs[d][row][col] {
				continue
			}
			px := x + col*DigitPitch
			py := y + row*DigitPitch
			dst = append(dst, image.Rect(px, py, px+DigitPixel, py+DigitPixel))
		}
	}
	return dst
}

// AppendNumberRects appends the pixels of the decimal form of n, most
// significant digit first. Negative numbers draw nothing.
func AppendNumberRects(dst []image.Rectangle, n, x, y int) []image.Rectangle {
	if n < 0 {
		return dst
	}
	for i, r := range strconv.Itoa(n) {
		dst = AppendDigitRects(dst, int(r-'0'), x+i*DigitAdvance, y)
	}
	return dst
}

// NumberWidth returns the horizontal space taken by n.
func NumberWidth(n int) int {
	if n < 0 {
		return 0
	}
	digits := len(strconv.Itoa(n))
	return (digits-1)*DigitAdvance + (DigitWidth-1)*DigitPitch + DigitPixel
}

// NumberRect returns the bounds of n drawn at (x, y).
func NumberRect(n, x, y int) image.Rectangle {
	h := (DigitHeight-1)*DigitPitch + DigitPixel
	return image.Rect(x, y, x+NumberWidth(n), y+h)
}
