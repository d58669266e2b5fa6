package snake

import (
	"errors"

	"gridsnake/internal/core"
)

// Key is a logical key press delivered by a frontend.
type Key uint8

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyPause
	KeyRestart
	KeyQuit
)

// ErrQuit is returned by HandleInput when the player asks to leave.
var ErrQuit = errors.New("snake: quit requested")

var keyDirections = map[Key]core.Direction{
	KeyUp:    core.DirUp,
	KeyDown:  core.DirDown,
	KeyLeft:  core.DirLeft,
	KeyRight: core.DirRight,
}

func (k Key) String() string {
	switch k {
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyPause:
		return "pause"
	case KeyRestart:
		return "restart"
	case KeyQuit:
		return "quit"
	}
	return "none"
}

// HandleInput applies one key press. After game over only restart and quit
// do anything. Otherwise arrows steer (a reversal is ignored), pause toggles
// and restart is ignored. Unknown keys are ignored.
func (g *Game) HandleInput(k Key) error {
	if k == KeyQuit {
		return ErrQuit
	}
	if g.gameOver {
		if k == KeyRestart {
			g.Reset()
		}
		return nil
	}
	if d, ok := keyDirections[k]; ok {
		g.body.SetDirection(d)
		return nil
	}
	if k == KeyPause {
		g.paused = !g.paused
	}
	return nil
}
