//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"gridsnake/internal/app"
	"gridsnake/internal/snake"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	log.SetFlags(log.Ltime | log.Lshortfile)

	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	game := snake.New(cfg.GameConfig())
	tracker := app.NewTracker(cfg.Logger())
	w, h := cfg.WindowSize(game.Size())

	ebiten.SetWindowTitle("Snake")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	err := ebiten.RunGame(app.New(game, tracker, cfg.CellSize()))
	tracker.Finish()
	if err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
