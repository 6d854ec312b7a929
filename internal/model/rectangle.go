package model

import "github.com/fieldrow/strawberryfields/internal/bitset"

// Rectangle is a candidate or placed greenhouse: inclusive grid bounds plus
// the derived area, weight and ratio fixed at construction. The span bitset
// is built lazily because most candidates are discarded before any geometry
// test runs against them.
type Rectangle struct {
	TopRow    int
	TopCol    int
	BottomRow int
	BottomCol int

	area   int
	weight int
	ratio  float64

	// Label is assigned after solving, 0 until then.
	Label byte

	span *bitset.Bitset
}

// Area returns the number of cells the rectangle covers.
func (r *Rectangle) Area() int { return r.area }

// Weight returns the number of strawberries inside the rectangle.
func (r *Rectangle) Weight() int { return r.weight }

// Cost returns the greenhouse price: a flat 10 plus one per covered cell.
func (r *Rectangle) Cost() int { return 10 + r.area }

// Ratio returns weight divided by cost, the greedy ordering key.
func (r *Rectangle) Ratio() float64 { return r.ratio }

// Less orders rectangles by ascending ratio.
func (r *Rectangle) Less(other *Rectangle) bool {
	return r.ratio < other.ratio
}

// MakeSpan builds the cell bitset for a rows x cols grid, bit cols*row+col
// per covered cell. Calling it again is a no-op.
func (r *Rectangle) MakeSpan(rows, cols int) {
	if r.span != nil {
		return
	}
	s := bitset.New(rows * cols)
	for row := r.TopRow; row <= r.BottomRow; row++ {
		base := cols * row
		for col := r.TopCol; col <= r.BottomCol; col++ {
			s.Set(base + col)
		}
	}
	r.span = s
}

// Span returns the cell bitset. It panics if MakeSpan has not run.
func (r *Rectangle) Span() *bitset.Bitset {
	if r.span == nil {
		panic("model: rectangle span not built")
	}
	return r.span
}

// HasSpan reports whether MakeSpan has run.
func (r *Rectangle) HasSpan() bool { return r.span != nil }

// Intersects reports whether the two rectangles share a cell. Both spans
// must be built; spans are the ground truth so that residual rectangles
// carved out of joins compare correctly.
func (r *Rectangle) Intersects(other *Rectangle) bool {
	return r.Span().Intersects(other.Span())
}

// SubsetOf reports whether every cell of r lies inside other.
func (r *Rectangle) SubsetOf(other *Rectangle) bool {
	return r.Span().SubsetOf(other.Span())
}
