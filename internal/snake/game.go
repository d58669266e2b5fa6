package snake

import "gridsnake/internal/core"

// State is the coarse phase of a session.
type State uint8

const (
	StateRunning State = iota
	StatePaused
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game over"
	}
	return "unknown"
}

// Game owns one snake session: the body, the food, the score and the
// movement clock. It is not safe for concurrent use; a single loop drives
// HandleInput and Update and reads the accessors in between.
type Game struct {
	cfg Config
	rng *core.RNG

	body      *Body
	food      core.Cell
	score     int
	speed     float64
	moveTimer float64
	paused    bool
	gameOver  bool
	ticks     int
}

// New constructs a game from cfg and starts the first session.
func New(cfg Config) *Game {
	cfg = cfg.normalized()
	g := &Game{
		cfg:  cfg,
		rng:  core.NewRNG(cfg.Seed),
		body: NewBody(cfg.Size.Area()),
	}
	g.Reset()
	return g
}

// Reset discards the current session and starts a new one: a single segment
// at the grid centre heading right, fresh food, score 0, base speed.
func (g *Game) Reset() {
	g.body.Reset(g.cfg.Size.Center(), core.DirRight)
	g.food = PlaceFood(g.rng, g.body, g.cfg.Size)
	g.score = 0
	g.speed = g.cfg.BaseSpeed
	g.moveTimer = 0
	g.paused = false
	g.gameOver = false
	g.ticks = 0
}

// Update advances the movement clock by dt seconds and moves the snake when
// a full interval has built up. At most MaxStepsPerUpdate steps run per call;
// any remaining time stays in the clock for later frames. Nothing happens
// while paused or after game over, and the clock does not run.
func (g *Game) Update(dt float64) {
	if g.paused || g.gameOver {
		return
	}
	g.moveTimer += dt
	for steps := 0; steps < g.cfg.MaxStepsPerUpdate; steps++ {
		interval := 1 / g.speed
		if g.moveTimer < interval {
			return
		}
		g.moveTimer -= interval
		if !g.step() {
			return
		}
	}
}

// step moves the snake one cell. It reports false when the move ended the
// game. The collision check sees the body before the tail is removed, so
// moving into the current tail cell is fatal.
func (g *Game) step() bool {
	next := g.body.Head().Step(g.body.Direction())
	if !g.cfg.Size.Contains(next) || g.body.Contains(next) {
		g.gameOver = true
		return false
	}
	g.body.PushHead(next)
	g.ticks++

	if next == g.food {
		g.score++
		if g.score%g.cfg.PointsPerLevel == 0 {
			g.speed += g.cfg.SpeedStep
		}
		g.food = PlaceFood(g.rng, g.body, g.cfg.Size)
		return true
	}
	g.body.PopTail()
	return true
}

// Size returns the grid dimensions.
func (g *Game) Size() core.Size { return g.cfg.Size }

// Config returns the normalized configuration the game runs with.
func (g *Game) Config() Config { return g.cfg }

// Body exposes the snake for read-only use by renderers.
func (g *Game) Body() BodyView { return bodyView{g.body} }

// Segments appends the snake cells from head to tail to dst.
func (g *Game) Segments(dst []core.Cell) []core.Cell { return g.body.AppendTo(dst) }

// Food returns the cell holding the food.
func (g *Game) Food() core.Cell { return g.food }

// Score returns the number of food items eaten this session.
func (g *Game) Score() int { return g.score }

// Speed returns the current movement rate in steps per second.
func (g *Game) Speed() float64 { return g.speed }

// Paused reports whether the session is paused.
func (g *Game) Paused() bool { return g.paused }

// GameOver reports whether the snake has crashed.
func (g *Game) GameOver() bool { return g.gameOver }

// Direction returns the heading the next step will take.
func (g *Game) Direction() core.Direction { return g.body.Direction() }

// Ticks returns the number of successful steps this session.
func (g *Game) Ticks() int { return g.ticks }

// Seed returns the seed the food RNG was created with.
func (g *Game) Seed() int64 { return g.cfg.Seed }

// State summarizes the pause and game-over flags.
func (g *Game) State() State {
	switch {
	case g.gameOver:
		return StateGameOver
	case g.paused:
		return StatePaused
	}
	return StateRunning
}
