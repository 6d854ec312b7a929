package model

// arenaChunkSize is the fixed allocation unit of the Arena. Rectangles are
// handed out by pointer into a chunk, so a chunk must never be reallocated
// once any of its slots is in use.
const arenaChunkSize = 256

// Arena is a slab allocator for Rectangles scoped to a single solve. All
// pointers it returns stay valid until Reset. It amortizes the very high
// allocation churn of candidate generation and local search.
//
// Arena is not safe for concurrent use.
type Arena struct {
	chunks [][]Rectangle
	n      int
}

// NewArena returns an empty arena.
func NewArena() *Arena {
	return &Arena{}
}

// Len returns the number of live rectangles.
func (a *Arena) Len() int { return a.n }

// Reset discards every rectangle while keeping the chunk memory for reuse
// by the next solve.
func (a *Arena) Reset() {
	a.n = 0
}

func (a *Arena) slot() *Rectangle {
	ci, si := a.n/arenaChunkSize, a.n%arenaChunkSize
	if ci == len(a.chunks) {
		a.chunks = append(a.chunks, make([]Rectangle, arenaChunkSize))
	}
	a.n++
	r := &a.chunks[ci][si]
	*r = Rectangle{}
	return r
}

// New allocates a rectangle with the given inclusive bounds and a known
// strawberry weight.
func (a *Arena) New(top, left, bottom, right, weight int) *Rectangle {
	r := a.slot()
	r.TopRow, r.TopCol, r.BottomRow, r.BottomCol = top, left, bottom, right
	r.area = (bottom - top + 1) * (right - left + 1)
	r.weight = weight
	r.ratio = float64(weight) / float64(10+r.area)
	return r
}

// NewWeighed allocates a rectangle and computes its weight from the field.
func (a *Arena) NewWeighed(f *Field, top, left, bottom, right int) *Rectangle {
	return a.New(top, left, bottom, right, f.Weight(top, left, bottom, right))
}
