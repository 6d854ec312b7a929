package engine

import "github.com/fieldrow/strawberryfields/internal/model"

// joinRectangles allocates the rectangular hull of two disjoint cover
// rectangles, with its span built. The hull generally overlaps other cover
// members; classifying that overlap is the local search's job.
func joinRectangles(f *model.Field, a *model.Arena, r1, r2 *model.Rectangle) *model.Rectangle {
	if r1.Intersects(r2) {
		panic("engine: joining intersecting rectangles")
	}
	top := min(r1.TopRow, r2.TopRow)
	left := min(r1.TopCol, r2.TopCol)
	bottom := max(r1.BottomRow, r2.BottomRow)
	right := max(r1.BottomCol, r2.BottomCol)
	join := a.NewWeighed(f, top, left, bottom, right)
	join.MakeSpan(f.Rows(), f.Cols())
	return join
}

// buildShade classifies every cover rectangle other than the pair against
// the join and assembles the resulting shade. It returns nil when any slice
// is Increasing, because applying such a join would grow the cover.
func buildShade(f *model.Field, a *model.Arena, cover []*model.Rectangle, i, j int) *shade {
	r1, r2 := cover[i], cover[j]
	join := joinRectangles(f, a, r1, r2)
	s := &shade{r1: r1, r2: r2, join: join}

	for k, r3 := range cover {
		if k == i || k == j {
			continue
		}
		sl := classifySlice(r3, join, f.Cols())
		switch sl.kind {
		case kindVoid:
		case kindDecreasing:
			s.envelope = append(s.envelope, r3)
		case kindNonIncreasing:
			residual := a.NewWeighed(f, sl.top, sl.left, sl.bottom, sl.right)
			residual.MakeSpan(f.Rows(), f.Cols())
			if s.penumbra == nil {
				s.penumbra = make(map[*model.Rectangle]*model.Rectangle)
			}
			s.penumbra[r3] = residual
		case kindIncreasing:
			return nil
		}
	}
	return s
}

// localSearch repeatedly replaces the best pair of cover rectangles with
// their join. A shade is applied while its penalty is non-positive, or
// unconditionally while the cover still exceeds the cardinality bound; in
// the latter case the least penalizing join is taken. Each application
// shrinks the cover by at least one, so the loop terminates.
func localSearch(f *model.Field, a *model.Arena, cover []*model.Rectangle, maxRectangles int) []*model.Rectangle {
	for len(cover) >= 2 {
		var best *shade
		for i := 0; i < len(cover); i++ {
			for j := i + 1; j < len(cover); j++ {
				s := buildShade(f, a, cover, i, j)
				if s == nil {
					continue
				}
				if best == nil || s.less(best) {
					best = s
				}
			}
		}
		if best == nil {
			return cover
		}
		if best.penalty() > 0 && len(cover) <= maxRectangles {
			return cover
		}
		cover = applyShade(cover, best)
	}
	return cover
}

// applyShade rewrites the cover: the pair and the envelope leave, the join
// arrives, and each penumbra original is replaced in place by its residual.
func applyShade(cover []*model.Rectangle, s *shade) []*model.Rectangle {
	drop := map[*model.Rectangle]bool{s.r1: true, s.r2: true}
	for _, r := range s.envelope {
		drop[r] = true
	}

	next := cover[:0]
	for _, r := range cover {
		if drop[r] {
			continue
		}
		if residual, ok := s.penumbra[r]; ok {
			r = residual
		}
		next = append(next, r)
	}
	return append(next, s.join)
}
