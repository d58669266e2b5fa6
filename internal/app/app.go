//go:build ebiten

package app

import (
	"errors"

	"gridsnake/internal/core"
	"gridsnake/internal/render"
	"gridsnake/internal/snake"
	"gridsnake/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var keyBindings = map[ebiten.Key]snake.Key{
	ebiten.KeyArrowUp:    snake.KeyUp,
	ebiten.KeyW:          snake.KeyUp,
	ebiten.KeyArrowDown:  snake.KeyDown,
	ebiten.KeyS:          snake.KeyDown,
	ebiten.KeyArrowLeft:  snake.KeyLeft,
	ebiten.KeyA:          snake.KeyLeft,
	ebiten.KeyArrowRight: snake.KeyRight,
	ebiten.KeyD:          snake.KeyRight,
	ebiten.KeyP:          snake.KeyPause,
	ebiten.KeyR:          snake.KeyRestart,
	ebiten.KeyQ:          snake.KeyQuit,
	ebiten.KeyEscape:     snake.KeyQuit,
}

// Game adapts a snake game to the ebiten.Game interface.
type Game struct {
	game    *snake.Game
	tracker *Tracker
	clock   *core.FrameClock

	raster  *core.ByteGrid
	painter *render.GridPainter
	hud     *ui.HUD

	cell    int
	pressed []ebiten.Key
}

// New constructs a Game drawing g with cell pixels per grid cell.
func New(g *snake.Game, tracker *Tracker, cell int) *Game {
	cell = max(cell, 1)
	size := g.Size()
	return &Game{
		game:    g,
		tracker: tracker,
		clock:   core.NewFrameClock(nil),
		raster:  core.NewByteGrid(size),
		painter: render.NewGridPainter(size.W, size.H),
		hud:     ui.NewHUD(cell),
		cell:    cell,
	}
}

// Update handles per-frame input and advances the game by the wall-clock
// time since the previous frame.
func (g *Game) Update() error {
	g.pressed = inpututil.AppendJustPressedKeys(g.pressed[:0])
	for _, k := range g.pressed {
		key, ok := keyBindings[k]
		if !ok {
			continue
		}
		if err := g.game.HandleInput(key); errors.Is(err, snake.ErrQuit) {
			return ebiten.Termination
		}
	}

	g.game.Update(g.clock.Delta())
	g.tracker.Observe(g.game)
	return nil
}

// Draw renders the current game state.
func (g *Game) Draw(screen *ebiten.Image) {
	render.Rasterize(g.raster, g.game.Body())
	g.painter.Blit(screen, g.raster.Cells(), g.cell)
	g.hud.Draw(screen, g.game)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.game.Size()
	return s.W * g.cell, s.H * g.cell
}
