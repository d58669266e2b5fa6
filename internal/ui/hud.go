//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"gridsnake/internal/render"
	"gridsnake/internal/snake"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	hudMargin      = 10
	labelBaseline  = 27
	labelDigitsGap = 8
)

var (
	panelColor  = color.RGBA{A: 160}
	bannerColor = color.RGBA{A: 200}
)

// HUD draws everything layered over the snake raster: the food, the score,
// the speed and the pause or game-over banner.
type HUD struct {
	cellSize int
	pixel    *ebiten.Image
	rects    []image.Rectangle
}

// NewHUD constructs a HUD for a grid drawn with cellSize pixels per cell.
func NewHUD(cellSize int) *HUD {
	if cellSize <= 0 {
		cellSize = 1
	}
	h := &HUD{cellSize: cellSize}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	return h
}

// Draw paints the HUD for the current game state.
func (h *HUD) Draw(screen *ebiten.Image, g *snake.Game) {
	if h == nil {
		return
	}
	h.fillRect(screen, render.FoodRect(g.Food(), h.cellSize), render.FoodColor)
	h.drawScore(screen, g.Score())
	h.drawSpeed(screen, g.Speed())
	if msg := Message(g.State()); msg != "" {
		h.drawBanner(screen, msg)
	}
}

func (h *HUD) drawScore(screen *ebiten.Image, score int) {
	face := basicfont.Face7x13
	const label = "SCORE"

	x := hudMargin + text.BoundString(face, label).Dx() + labelDigitsGap
	digits := render.NumberRect(score, x, hudMargin)
	panel := image.Rect(hudMargin/2, hudMargin/2, digits.Max.X+hudMargin/2, digits.Max.Y+hudMargin/2)
	h.fillRect(screen, panel, panelColor)
	text.Draw(screen, label, face, hudMargin, labelBaseline, render.TextColor)

	h.rects = render.AppendNumberRects(h.rects[:0], score, x, hudMargin)
	for _, r := range h.rects {
		h.fillRect(screen, r, render.TextColor)
	}
}

func (h *HUD) drawSpeed(screen *ebiten.Image, speed float64) {
	face := basicfont.Face7x13
	label := SpeedLabel(speed)
	width := text.BoundString(face, label).Dx()
	x := screen.Bounds().Dx() - hudMargin - width
	text.Draw(screen, label, face, x, labelBaseline, render.TextColor)
}

func (h *HUD) drawBanner(screen *ebiten.Image, msg string) {
	face := basicfont.Face7x13
	bounds := text.BoundString(face, msg)
	size := screen.Bounds().Size()
	x := (size.X - bounds.Dx()) / 2
	y := size.Y / 2

	pad := image.Rect(x-hudMargin, y-bounds.Dy()-hudMargin/2, x+bounds.Dx()+hudMargin, y+hudMargin)
	h.fillRect(screen, pad, bannerColor)
	text.Draw(screen, msg, face, x, y, render.TextColor)
}

func (h *HUD) fillRect(dst *ebiten.Image, rect image.Rectangle, col color.Color) {
	if rect.Empty() {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(col)
	dst.DrawImage(h.pixel, op)
}
