package term

import (
	"context"
	"strings"
	"testing"
	"time"

	"gridsnake/internal/core"
	"gridsnake/internal/snake"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	w, h := MinSize(core.Size{W: snake.GridWidth, H: snake.GridHeight})
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

func newGame() *snake.Game {
	cfg := snake.DefaultConfig()
	cfg.Seed = 21
	return snake.New(cfg)
}

func runeAt(t *testing.T, s tcell.SimulationScreen, x, y int) rune {
	t.Helper()
	cells, w, _ := s.GetContents()
	cell := cells[y*w+x]
	if len(cell.Runes) == 0 {
		return ' '
	}
	return cell.Runes[0]
}

func rowText(t *testing.T, s tcell.SimulationScreen, y int) string {
	t.Helper()
	_, w, _ := s.GetContents()
	var b strings.Builder
	for x := 0; x < w; x++ {
		b.WriteRune(runeAt(t, s, x, y))
	}
	return b.String()
}

func TestKeyFor(t *testing.T) {
	cases := []struct {
		key  tcell.Key
		r    rune
		want snake.Key
	}{
		{tcell.KeyUp, 0, snake.KeyUp},
		{tcell.KeyDown, 0, snake.KeyDown},
		{tcell.KeyLeft, 0, snake.KeyLeft},
		{tcell.KeyRight, 0, snake.KeyRight},
		{tcell.KeyRune, 'w', snake.KeyUp},
		{tcell.KeyRune, 'A', snake.KeyLeft},
		{tcell.KeyRune, 'p', snake.KeyPause},
		{tcell.KeyRune, 'R', snake.KeyRestart},
		{tcell.KeyRune, 'q', snake.KeyQuit},
		{tcell.KeyEscape, 0, snake.KeyQuit},
		{tcell.KeyCtrlC, 0, snake.KeyQuit},
		{tcell.KeyRune, 'x', snake.KeyNone},
		{tcell.KeyTab, 0, snake.KeyNone},
	}
	for _, tc := range cases {
		ev := tcell.NewEventKey(tc.key, tc.r, tcell.ModNone)
		assert.Equal(t, tc.want, KeyFor(ev), "key %v rune %q", tc.key, tc.r)
	}
}

func TestDrawBoard(t *testing.T) {
	s := newScreen(t)
	g := newGame()
	f := New(s, g, nil, 60)

	f.Draw()

	assert.True(t, strings.HasPrefix(rowText(t, s, 0), "SCORE 0  SPEED 5.0"))
	assert.Equal(t, tcell.RuneULCorner, runeAt(t, s, 0, boardTop))
	assert.Equal(t, tcell.RuneLRCorner, runeAt(t, s, 2*snake.GridWidth+1, boardTop+snake.GridHeight+1))

	col, row := screenPos(g.Body().Head())
	assert.Equal(t, segmentRune, runeAt(t, s, col, row))
	assert.Equal(t, segmentRune, runeAt(t, s, col+1, row))

	col, row = screenPos(g.Food())
	assert.Equal(t, foodRune, runeAt(t, s, col, row))
}

func TestDrawPausedBanner(t *testing.T) {
	s := newScreen(t)
	g := newGame()
	require.NoError(t, g.HandleInput(snake.KeyPause))
	f := New(s, g, nil, 60)

	f.Draw()

	assert.Contains(t, rowText(t, s, boardTop+1+snake.GridHeight/2), "PAUSED")
}

func TestRunQuitsOnKey(t *testing.T) {
	s := newScreen(t)
	g := newGame()
	f := New(s, g, nil, 120)

	s.InjectKey(tcell.KeyRune, 'p', tcell.ModNone)
	s.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, f.Run(ctx))
	require.NoError(t, ctx.Err(), "Run should return on the quit key, not the timeout")

	assert.True(t, g.Paused())
}

func TestRunStopsOnCancel(t *testing.T) {
	s := newScreen(t)
	f := New(s, newGame(), nil, 120)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- f.Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestMinSize(t *testing.T) {
	w, h := MinSize(core.Size{W: 32, H: 24})
	assert.Equal(t, 66, w)
	assert.Equal(t, 27, h)
}
