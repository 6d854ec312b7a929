package engine

import "github.com/fieldrow/strawberryfields/internal/model"

// convexHull is the fast path for a cardinality bound of one: the single
// bounding rectangle of every strawberry in the field. The field must hold
// at least one strawberry.
func convexHull(f *model.Field, a *model.Arena) *model.Rectangle {
	berries := f.Strawberries()
	first := berries[0]
	top, bottom := first.Row, first.Row
	left, right := first.Col, first.Col
	for _, s := range berries[1:] {
		if s.Row < top {
			top = s.Row
		}
		if s.Row > bottom {
			bottom = s.Row
		}
		if s.Col < left {
			left = s.Col
		}
		if s.Col > right {
			right = s.Col
		}
	}
	r := a.NewWeighed(f, top, left, bottom, right)
	r.MakeSpan(f.Rows(), f.Cols())
	return r
}
