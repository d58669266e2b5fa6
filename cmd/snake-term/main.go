package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"gridsnake/internal/app"
	"gridsnake/internal/snake"
	"gridsnake/internal/term"

	"github.com/gdamore/tcell/v2"
)

func main() {
	log.SetFlags(log.Ltime | log.Lshortfile)

	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	logPath := flag.String("log", "", "append session log lines to this file")
	flag.Parse()

	if err := run(cfg, *logPath); err != nil {
		log.Print(err)
		os.Exit(1)
	}
}

// openLogger returns a logger appending to path. The board owns the
// terminal, so session lines only go to a file; with no path or -quiet the
// logger is nil. The close func is never nil.
func openLogger(path string, quiet bool) (*log.Logger, func() error, error) {
	if path == "" || quiet {
		return nil, func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}
	return log.New(f, "", log.LstdFlags), f.Close, nil
}

func run(cfg *app.Config, logPath string) error {
	logger, closeLog, err := openLogger(logPath, cfg.Quiet)
	if err != nil {
		return err
	}
	defer closeLog()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tracker := app.NewTracker(logger)
	defer tracker.Finish()

	game := snake.New(cfg.GameConfig())
	return term.New(screen, game, tracker, cfg.TPS).Run(ctx)
}
