package snake

import (
	"testing"

	"gridsnake/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArrowKeysSteer(t *testing.T) {
	g := newTestGame(t)

	require.NoError(t, g.HandleInput(KeyUp))
	assert.Equal(t, core.DirUp, g.Direction())
	require.NoError(t, g.HandleInput(KeyLeft))
	assert.Equal(t, core.DirLeft, g.Direction())
	require.NoError(t, g.HandleInput(KeyDown))
	assert.Equal(t, core.DirDown, g.Direction())
	require.NoError(t, g.HandleInput(KeyRight))
	assert.Equal(t, core.DirRight, g.Direction())
}

func TestReverseKeyIgnored(t *testing.T) {
	g := newTestGame(t)
	require.Equal(t, core.DirRight, g.Direction())

	require.NoError(t, g.HandleInput(KeyLeft))
	assert.Equal(t, core.DirRight, g.Direction())
}

func TestLastKeyWithinTickWins(t *testing.T) {
	g := newTestGame(t)
	g.food = core.Cell{X: 0, Y: 0}
	start := g.Body().Head()

	require.NoError(t, g.HandleInput(KeyUp))
	require.NoError(t, g.HandleInput(KeyRight))
	require.NoError(t, g.HandleInput(KeyDown))
	g.Update(interval(g))

	assert.Equal(t, start.Step(core.DirDown), g.Body().Head())
}

func TestQuickDoubleTurnComparesAgainstPendingHeading(t *testing.T) {
	g := newTestGame(t)
	g.food = core.Cell{X: 0, Y: 0}

	// Up is taken, then Left is no longer a reversal of the pending heading.
	require.NoError(t, g.HandleInput(KeyUp))
	require.NoError(t, g.HandleInput(KeyLeft))
	assert.Equal(t, core.DirLeft, g.Direction())
}

func TestPauseToggles(t *testing.T) {
	g := newTestGame(t)

	require.NoError(t, g.HandleInput(KeyPause))
	assert.Equal(t, StatePaused, g.State())
	require.NoError(t, g.HandleInput(KeyPause))
	assert.Equal(t, StateRunning, g.State())
}

func TestRestartIgnoredWhileRunningOrPaused(t *testing.T) {
	g := newTestGame(t)
	feedAhead(g)
	g.Update(interval(g))
	require.Equal(t, 1, g.Score())

	require.NoError(t, g.HandleInput(KeyRestart))
	assert.Equal(t, 1, g.Score())
	assert.Equal(t, 2, g.Body().Len())

	require.NoError(t, g.HandleInput(KeyPause))
	require.NoError(t, g.HandleInput(KeyRestart))
	assert.Equal(t, 1, g.Score())
	assert.True(t, g.Paused())
}

func TestRestartAfterGameOver(t *testing.T) {
	g := newTestGame(t)
	feedAhead(g)
	g.Update(interval(g))
	g.body.SetDirection(core.DirUp)
	g.food = core.Cell{X: 0, Y: 0}
	for !g.GameOver() {
		g.Update(interval(g))
	}
	require.Equal(t, 1, g.Score())

	require.NoError(t, g.HandleInput(KeyRestart))

	assert.Equal(t, StateRunning, g.State())
	assert.Equal(t, 0, g.Score())
	assert.Equal(t, 5.0, g.Speed())
	assert.Equal(t, 1, g.Body().Len())
	assert.Equal(t, g.Size().Center(), g.Body().Head())
	assert.False(t, g.Body().Contains(g.Food()))
}

func TestGameOverIgnoresSteeringAndPause(t *testing.T) {
	g := newTestGame(t)
	g.body.Reset(core.Cell{X: GridWidth - 1, Y: 4}, core.DirRight)
	g.Update(interval(g))
	require.True(t, g.GameOver())

	require.NoError(t, g.HandleInput(KeyPause))
	assert.False(t, g.Paused())
	assert.Equal(t, StateGameOver, g.State())

	require.NoError(t, g.HandleInput(KeyUp))
	assert.Equal(t, core.DirRight, g.Direction())
}

func TestQuitInEveryState(t *testing.T) {
	g := newTestGame(t)
	assert.ErrorIs(t, g.HandleInput(KeyQuit), ErrQuit)

	require.NoError(t, g.HandleInput(KeyPause))
	assert.ErrorIs(t, g.HandleInput(KeyQuit), ErrQuit)

	g.gameOver = true
	assert.ErrorIs(t, g.HandleInput(KeyQuit), ErrQuit)
}

func TestUnknownKeyIgnored(t *testing.T) {
	g := newTestGame(t)
	before := snapshot(g)

	require.NoError(t, g.HandleInput(KeyNone))
	require.NoError(t, g.HandleInput(Key(200)))

	assert.Equal(t, before, snapshot(g))
	assert.Equal(t, core.DirRight, g.Direction())
	assert.Equal(t, StateRunning, g.State())
}
