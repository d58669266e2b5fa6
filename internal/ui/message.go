package ui

import (
	"fmt"

	"gridsnake/internal/snake"
)

// Overlay messages.
const (
	PausedMessage   = "PAUSED"
	GameOverMessage = "GAME OVER - R TO RESTART"
)

// Message returns the centred banner for state, or "" while running.
func Message(state snake.State) string {
	switch state {
	case snake.StatePaused:
		return PausedMessage
	case snake.StateGameOver:
		return GameOverMessage
	}
	return ""
}

// SpeedLabel formats the movement rate for display.
func SpeedLabel(speed float64) string {
	return fmt.Sprintf("SPEED %.1f", speed)
}
