package app

import (
	"bytes"
	"fmt"
	"log"
	"strings"
	"testing"

	"gridsnake/internal/core"
	"gridsnake/internal/snake"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTracker(buf *bytes.Buffer) *Tracker {
	tr := NewTracker(log.New(buf, "", 0))
	n := 0
	tr.newID = func() string {
		n++
		return fmt.Sprintf("s%d", n)
	}
	return tr
}

func crash(t *testing.T, g *snake.Game) {
	t.Helper()
	for i := 0; i < snake.GridWidth && !g.GameOver(); i++ {
		g.Update(1 / g.Speed())
	}
	require.True(t, g.GameOver())
}

func TestTrackerLogsLifecycle(t *testing.T) {
	var buf bytes.Buffer
	tr := newTestTracker(&buf)
	cfg := snake.DefaultConfig()
	cfg.Seed = 3
	g := snake.New(cfg)

	tr.Observe(g)
	assert.Equal(t, "s1", tr.Session())

	require.NoError(t, g.HandleInput(snake.KeyPause))
	tr.Observe(g)
	require.NoError(t, g.HandleInput(snake.KeyPause))
	tr.Observe(g)
	tr.Observe(g)

	// Steer away from the food's row so the crash never scores.
	if g.Food().Y < g.Body().Head().Y {
		require.NoError(t, g.HandleInput(snake.KeyDown))
	} else {
		require.NoError(t, g.HandleInput(snake.KeyUp))
	}
	crash(t, g)
	tr.Observe(g)
	assert.Equal(t, 1, tr.Games())

	require.NoError(t, g.HandleInput(snake.KeyRestart))
	tr.Observe(g)
	assert.Equal(t, "s2", tr.Session())
	tr.Finish()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "session s1 started: grid=32x24 seed=3", lines[0])
	assert.Equal(t, "session s1 paused: score=0", lines[1])
	assert.Equal(t, "session s1 resumed", lines[2])
	assert.True(t, strings.HasPrefix(lines[3], "session s1 over: game=1 score=0 length=1 speed=5.0 ticks="), lines[3])
	assert.Equal(t, "session s2 started: grid=32x24 seed=3", lines[4])
	assert.Equal(t, "session s2 closed: games=1", lines[5])
}

func TestTrackerFinishBeforeObserveIsSilent(t *testing.T) {
	var buf bytes.Buffer
	tr := newTestTracker(&buf)
	tr.Finish()
	assert.Empty(t, buf.String())
}

func TestTrackerDefaultIDs(t *testing.T) {
	tr := NewTracker(nil)
	g := snake.New(snake.Config{Size: core.Size{W: 8, H: 8}})
	tr.Observe(g)

	assert.Len(t, tr.Session(), 36)
}
