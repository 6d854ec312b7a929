package engine

import (
	"errors"

	"github.com/fieldrow/strawberryfields/internal/bitset"
	"github.com/fieldrow/strawberryfields/internal/model"
)

// ErrUnsolvable is returned when the candidate list runs out before every
// strawberry is covered. The chain generator always emits each strawberry's
// 1x1 rectangle, so this cannot happen on well-formed input; the guard exists
// so that exhaustion surfaces as an error instead of an overlapping cover.
var ErrUnsolvable = errors.New("engine: candidates exhausted before covering all strawberries")

// greedyMatch selects a disjoint covering from the sorted candidate list.
// Candidates are consumed from the back (best ratio first); any candidate
// overlapping the cells already claimed is discarded. The covering mask must
// be empty on entry.
func greedyMatch(f *model.Field, candidates []*model.Rectangle, covering *bitset.Bitset) ([]*model.Rectangle, error) {
	unmatched := bitset.New(f.Rows() * f.Cols())
	for _, s := range f.Strawberries() {
		unmatched.Set(s.Row*f.Cols() + s.Col)
	}

	var cover []*model.Rectangle
	for unmatched.Any() {
		r, rest := nextDisjoint(candidates, covering, f)
		candidates = rest
		if r == nil {
			return nil, ErrUnsolvable
		}
		covering.Or(r.Span())
		cover = append(cover, r)
		unmatched.AndNot(covering)
	}
	return cover, nil
}

// nextDisjoint pops candidates from the back until one does not intersect
// the covering mask, returning it and the shrunk list. Spans are built here,
// on first contact, so rectangles discarded earlier never pay for one.
func nextDisjoint(candidates []*model.Rectangle, covering *bitset.Bitset, f *model.Field) (*model.Rectangle, []*model.Rectangle) {
	for len(candidates) > 0 {
		r := candidates[len(candidates)-1]
		candidates = candidates[:len(candidates)-1]
		r.MakeSpan(f.Rows(), f.Cols())
		if !covering.Intersects(r.Span()) {
			return r, candidates
		}
	}
	return nil, candidates
}
