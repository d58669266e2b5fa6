// Package term runs the game in a terminal through tcell. Each grid cell
// takes two columns so the board keeps roughly square proportions.
package term

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gridsnake/internal/app"
	"gridsnake/internal/core"
	"gridsnake/internal/render"
	"gridsnake/internal/snake"
	"gridsnake/internal/ui"

	"github.com/gdamore/tcell/v2"
)

const (
	cellColumns = 2
	boardTop    = 1
	boardLeft   = 0

	segmentRune = '█'
	foodRune    = '●'
)

var runeBindings = map[rune]snake.Key{
	'w': snake.KeyUp,
	's': snake.KeyDown,
	'a': snake.KeyLeft,
	'd': snake.KeyRight,
	'p': snake.KeyPause,
	'r': snake.KeyRestart,
	'q': snake.KeyQuit,
}

var keyBindings = map[tcell.Key]snake.Key{
	tcell.KeyUp:     snake.KeyUp,
	tcell.KeyDown:   snake.KeyDown,
	tcell.KeyLeft:   snake.KeyLeft,
	tcell.KeyRight:  snake.KeyRight,
	tcell.KeyEscape: snake.KeyQuit,
	tcell.KeyCtrlC:  snake.KeyQuit,
}

// KeyFor maps a terminal key event to a game key. Letters are matched
// case-insensitively; anything unbound maps to snake.KeyNone.
func KeyFor(ev *tcell.EventKey) snake.Key {
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		return runeBindings[r]
	}
	return keyBindings[ev.Key()]
}

// Frontend draws a game on a tcell screen and feeds it key presses.
type Frontend struct {
	screen   tcell.Screen
	game     *snake.Game
	tracker  *app.Tracker
	clock    *core.FrameClock
	raster   *core.ByteGrid
	interval time.Duration
}

// New returns a Frontend for an initialised screen running at fps frames
// per second.
func New(screen tcell.Screen, game *snake.Game, tracker *app.Tracker, fps int) *Frontend {
	if tracker == nil {
		tracker = app.NewTracker(nil)
	}
	return &Frontend{
		screen:   screen,
		game:     game,
		tracker:  tracker,
		clock:    core.NewFrameClock(nil),
		raster:   core.NewByteGrid(game.Size()),
		interval: core.FrameInterval(fps),
	}
}

// MinSize returns the terminal size needed to show the whole board.
func MinSize(size core.Size) (int, int) {
	return boardLeft + size.W*cellColumns + 2, boardTop + size.H + 2
}

// Run polls input, advances the game and redraws it once per frame until
// the player quits or ctx is cancelled. Both are a normal exit and return
// nil.
func (f *Frontend) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	go f.screen.ChannelEvents(events, quit)
	defer close(quit)

	ticker := time.NewTicker(f.interval)
	defer ticker.Stop()

	f.clock.Reset()
	f.frame()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if err := f.game.HandleInput(KeyFor(ev)); errors.Is(err, snake.ErrQuit) {
					return nil
				}
			case *tcell.EventResize:
				f.screen.Sync()
			}
		case <-ticker.C:
			f.frame()
		}
	}
}

func (f *Frontend) frame() {
	f.game.Update(f.clock.Delta())
	f.tracker.Observe(f.game)
	f.Draw()
}

// Draw repaints the status line, the border, the snake, the food and any
// banner, then shows the screen.
func (f *Frontend) Draw() {
	s := f.screen
	g := f.game
	size := g.Size()
	base := tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)

	s.Clear()
	drawText(s, 0, 0, fmt.Sprintf("SCORE %d  %s", g.Score(), ui.SpeedLabel(g.Speed())), base)
	f.drawBorder(size, base)

	render.Rasterize(f.raster, g.Body())
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			shade := f.raster.At(core.Cell{X: x, Y: y})
			if shade == 0 {
				continue
			}
			style := base.Foreground(tcell.NewRGBColor(0, int32(shade), 0))
			col, row := screenPos(core.Cell{X: x, Y: y})
			s.SetContent(col, row, segmentRune, nil, style)
			s.SetContent(col+1, row, segmentRune, nil, style)
		}
	}

	food := render.FoodColor
	col, row := screenPos(g.Food())
	s.SetContent(col, row, foodRune, nil, base.Foreground(tcell.NewRGBColor(int32(food.R), int32(food.G), int32(food.B))))

	if msg := ui.Message(g.State()); msg != "" {
		width, _ := MinSize(size)
		drawText(s, (width-len(msg))/2, boardTop+1+size.H/2, msg, base.Reverse(true))
	}
	s.Show()
}

func (f *Frontend) drawBorder(size core.Size, style tcell.Style) {
	s := f.screen
	right := boardLeft + size.W*cellColumns + 1
	bottom := boardTop + size.H + 1
	for x := boardLeft + 1; x < right; x++ {
		s.SetContent(x, boardTop, tcell.RuneHLine, nil, style)
		s.SetContent(x, bottom, tcell.RuneHLine, nil, style)
	}
	for y := boardTop + 1; y < bottom; y++ {
		s.SetContent(boardLeft, y, tcell.RuneVLine, nil, style)
		s.SetContent(right, y, tcell.RuneVLine, nil, style)
	}
	s.SetContent(boardLeft, boardTop, tcell.RuneULCorner, nil, style)
	s.SetContent(right, boardTop, tcell.RuneURCorner, nil, style)
	s.SetContent(boardLeft, bottom, tcell.RuneLLCorner, nil, style)
	s.SetContent(right, bottom, tcell.RuneLRCorner, nil, style)
}

// screenPos returns the terminal column and row of the left half of cell c.
func screenPos(c core.Cell) (int, int) {
	return boardLeft + 1 + c.X*cellColumns, boardTop + 1 + c.Y
}

func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) {
	for i, r := range []rune(text) {
		s.SetContent(x+i, y, r, nil, style)
	}
}
