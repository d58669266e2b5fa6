//go:build raylib

package main

import (
	"errors"
	"flag"
	"image"
	"log"

	"gridsnake/internal/app"
	"gridsnake/internal/render"
	"gridsnake/internal/snake"
	"gridsnake/internal/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const fontSize = 20

var keyBindings = map[int32]snake.Key{
	rl.KeyUp:     snake.KeyUp,
	rl.KeyW:      snake.KeyUp,
	rl.KeyDown:   snake.KeyDown,
	rl.KeyS:      snake.KeyDown,
	rl.KeyLeft:   snake.KeyLeft,
	rl.KeyA:      snake.KeyLeft,
	rl.KeyRight:  snake.KeyRight,
	rl.KeyD:      snake.KeyRight,
	rl.KeyP:      snake.KeyPause,
	rl.KeyR:      snake.KeyRestart,
	rl.KeyQ:      snake.KeyQuit,
	rl.KeyEscape: snake.KeyQuit,
}

func main() {
	log.SetFlags(log.Ltime | log.Lshortfile)

	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	game := snake.New(cfg.GameConfig())
	tracker := app.NewTracker(cfg.Logger())
	w, h := cfg.WindowSize(game.Size())

	rl.InitWindow(int32(w), int32(h), "Snake")
	rl.SetTargetFPS(int32(cfg.TPS))
	rl.SetExitKey(rl.KeyNull)
	defer rl.CloseWindow()

	for !rl.WindowShouldClose() {
		if quit := handleKeys(game); quit {
			break
		}
		game.Update(float64(rl.GetFrameTime()))
		tracker.Observe(game)

		rl.BeginDrawing()
		draw(game, cfg.CellSize(), int32(w), int32(h))
		rl.EndDrawing()
	}
	tracker.Finish()
}

// handleKeys drains the raylib key queue into the game and reports whether
// the player asked to quit.
func handleKeys(game *snake.Game) bool {
	for k := rl.GetKeyPressed(); k != 0; k = rl.GetKeyPressed() {
		key, ok := keyBindings[k]
		if !ok {
			continue
		}
		if err := game.HandleInput(key); errors.Is(err, snake.ErrQuit) {
			return true
		}
	}
	return false
}

func draw(game *snake.Game, cell int, width, height int32) {
	rl.ClearBackground(rl.Black)

	n := game.Body().Len()
	for i, c := range game.Body().All() {
		col := render.SnakeColor(i, n)
		fillRect(render.CellRect(c, cell), rl.NewColor(col.R, col.G, col.B, col.A))
	}
	food := render.FoodColor
	fillRect(render.FoodRect(game.Food(), cell), rl.NewColor(food.R, food.G, food.B, food.A))

	x := 10 + int(rl.MeasureText("SCORE", fontSize)) + 8
	digits := render.NumberRect(game.Score(), x, 10)
	fillRect(image.Rect(5, 5, digits.Max.X+5, digits.Max.Y+5), rl.NewColor(0, 0, 0, 160))
	rl.DrawText("SCORE", 10, 12, fontSize, rl.White)
	for _, r := range render.AppendNumberRects(nil, game.Score(), x, 10) {
		fillRect(r, rl.White)
	}

	speed := ui.SpeedLabel(game.Speed())
	rl.DrawText(speed, width-10-rl.MeasureText(speed, fontSize), 12, fontSize, rl.White)

	if msg := ui.Message(game.State()); msg != "" {
		rl.DrawText(msg, (width-rl.MeasureText(msg, fontSize))/2, height/2-fontSize/2, fontSize, rl.White)
	}
}

func fillRect(r image.Rectangle, col rl.Color) {
	rl.DrawRectangle(int32(r.Min.X), int32(r.Min.Y), int32(r.Dx()), int32(r.Dy()), col)
}
