package snake

import (
	"iter"

	"gridsnake/internal/core"

	"github.com/kamstrup/intmap"
)

const minBodyCapacity = 16

// Body is the snake as an ordered run of cells from head to tail. Segments
// live in a ring buffer so both ends move in constant time, and an occupancy
// index answers membership without scanning.
type Body struct {
	ring []core.Cell
	head int
	n    int
	dir  core.Direction

	occupied *intmap.Map[uint64, uint32]
}

// NewBody allocates an empty body with room for capacity segments before the
// ring has to grow.
func NewBody(capacity int) *Body {
	if capacity < minBodyCapacity {
		capacity = minBodyCapacity
	}
	return &Body{
		ring:     make([]core.Cell, capacity),
		occupied: intmap.New[uint64, uint32](capacity),
	}
}

// cellKey packs a cell into a map key. Every int32-range coordinate pair
// gets a distinct key, including cells outside the grid.
func cellKey(c core.Cell) uint64 {
	return uint64(uint32(int32(c.X)))<<32 | uint64(uint32(int32(c.Y)))
}

// Reset drops every segment and starts over with a single cell at start
// heading in dir.
func (b *Body) Reset(start core.Cell, dir core.Direction) {
	b.head = 0
	b.n = 0
	b.occupied.Clear()
	b.dir = dir
	b.PushHead(start)
}

// Len returns the number of segments.
func (b *Body) Len() int { return b.n }

// Contains reports whether any segment sits on c.
func (b *Body) Contains(c core.Cell) bool {
	_, ok := b.occupied.Get(cellKey(c))
	return ok
}

// Head returns the leading segment. It returns the zero cell on an empty body.
func (b *Body) Head() core.Cell {
	if b.n == 0 {
		return core.Cell{}
	}
	return b.ring[b.head]
}

// Tail returns the trailing segment. It returns the zero cell on an empty body.
func (b *Body) Tail() core.Cell {
	if b.n == 0 {
		return core.Cell{}
	}
	return b.ring[b.slot(b.n-1)]
}

// At returns segment i counted from the head. It panics when i is out of
// range, like a slice index.
func (b *Body) At(i int) core.Cell {
	if i < 0 || i >= b.n {
		panic("snake: segment index out of range")
	}
	return b.ring[b.slot(i)]
}

// All yields the segments from head to tail with their position.
func (b *Body) All() iter.Seq2[int, core.Cell] {
	return func(yield func(int, core.Cell) bool) {
		for i := 0; i < b.n; i++ {
			if !yield(i, b.ring[b.slot(i)]) {
				return
			}
		}
	}
}

// AppendTo appends the segments from head to tail to dst.
func (b *Body) AppendTo(dst []core.Cell) []core.Cell {
	for _, c := range b.All() {
		dst = append(dst, c)
	}
	return dst
}

// PushHead prepends c as the new head. It never fails; bounds and collision
// checks are the caller's job.
func (b *Body) PushHead(c core.Cell) {
	if b.n == len(b.ring) {
		b.grow()
	}
	b.head = (b.head - 1 + len(b.ring)) % len(b.ring)
	b.ring[b.head] = c
	b.n++

	key := cellKey(c)
	count, _ := b.occupied.Get(key)
	b.occupied.Put(key, count+1)
}

// PopTail removes the trailing segment. It is a no-op on an empty body.
func (b *Body) PopTail() {
	if b.n == 0 {
		return
	}
	tail := b.ring[b.slot(b.n-1)]
	b.n--

	key := cellKey(tail)
	count, ok := b.occupied.Get(key)
	switch {
	case !ok:
	case count <= 1:
		b.occupied.Del(key)
	default:
		b.occupied.Put(key, count-1)
	}
}

// Direction returns the current heading.
func (b *Body) Direction() core.Direction { return b.dir }

// SetDirection changes the heading unless d is invalid or points exactly
// against the current one. It reports whether the change was taken.
func (b *Body) SetDirection(d core.Direction) bool {
	if !d.Valid() || b.dir.IsOpposite(d) {
		return false
	}
	b.dir = d
	return true
}

func (b *Body) slot(i int) int {
	return (b.head + i) % len(b.ring)
}

// grow doubles the ring and unrolls the segments so the head sits at 0.
func (b *Body) grow() {
	next := make([]core.Cell, 2*len(b.ring))
	for i := 0; i < b.n; i++ {
		next[i] = b.ring[b.slot(i)]
	}
	b.ring = next
	b.head = 0
}

// BodyView is the read side of a Body handed out to renderers.
type BodyView interface {
	Len() int
	Head() core.Cell
	Tail() core.Cell
	At(i int) core.Cell
	Contains(c core.Cell) bool
	All() iter.Seq2[int, core.Cell]
}

// bodyView forwards reads only, so callers cannot reach the mutators through
// a type assertion.
type bodyView struct{ b *Body }

func (v bodyView) Len() int { return v.b.Len() }
func (v bodyView) Head() core.Cell { return v.b.Head() }
func (v bodyView) Tail() core.Cell { return v.b.Tail() }
func (v bodyView) At(i int) core.Cell { return v.b.At(i) }
func (v bodyView) Contains(c core.Cell) bool { return v.b.Contains(c) }
func (v bodyView) All() iter.Seq2[int, core.Cell] { return v.b.All() }
