package app

import (
	"io"
	"log"

	"gridsnake/internal/snake"

	"github.com/google/uuid"
)

// Tracker watches a game once per frame and logs the transitions between
// states. Every restart opens a new session with its own id so the log lines
// of one run can be grouped.
type Tracker struct {
	logger  *log.Logger
	newID   func() string
	session string
	last    snake.State
	started bool
	games   int
}

// NewTracker returns a Tracker writing to logger. A nil logger discards.
func NewTracker(logger *log.Logger) *Tracker {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Tracker{logger: logger, newID: uuid.NewString}
}

// Session returns the id of the current session, or "" before the first
// Observe.
func (t *Tracker) Session() string { return t.session }

// Games returns the number of sessions that ended in game over.
func (t *Tracker) Games() int { return t.games }

// Observe compares the game with the previous frame and logs what changed.
func (t *Tracker) Observe(g *snake.Game) {
	state := g.State()
	if !t.started {
		t.started = true
		t.begin(g)
		t.last = state
		return
	}
	if state == t.last {
		return
	}

	switch {
	case t.last == snake.StateGameOver:
		t.begin(g)
	case state == snake.StatePaused:
		t.logger.Printf("session %s paused: score=%d", t.session, g.Score())
	case state == snake.StateGameOver:
		t.games++
		t.logger.Printf("session %s over: game=%d score=%d length=%d speed=%.1f ticks=%d",
			t.session, t.games, g.Score(), g.Body().Len(), g.Speed(), g.Ticks())
	case state == snake.StateRunning:
		t.logger.Printf("session %s resumed", t.session)
	}
	t.last = state
}

// Finish logs the number of finished games. Frontends call it once on exit.
func (t *Tracker) Finish() {
	if !t.started {
		return
	}
	t.logger.Printf("session %s closed: games=%d", t.session, t.Games())
}

func (t *Tracker) begin(g *snake.Game) {
	t.session = t.newID()
	t.logger.Printf("session %s started: grid=%dx%d seed=%d",
		t.session, g.Size().W, g.Size().H, g.Seed())
}
