package engine

import "github.com/fieldrow/strawberryfields/internal/model"

// shade bundles a candidate join of two cover rectangles with everything its
// application would drag along: the envelope (cover members swallowed whole
// by the join) and the penumbra (cover members cut down to a rectangular
// residual, keyed by the original).
type shade struct {
	r1, r2, join *model.Rectangle

	envelope []*model.Rectangle
	penumbra map[*model.Rectangle]*model.Rectangle
}

// penalty is the cost gradient of applying the shade: the join's cost minus
// everything it displaces. Negative means the swap is a net improvement.
func (s *shade) penalty() int {
	envelopeCost := 0
	for _, r := range s.envelope {
		envelopeCost += r.Cost()
	}
	penumbraCost := 0
	for original, residual := range s.penumbra {
		penumbraCost += original.Area() - residual.Area()
	}
	return s.join.Cost() - (s.r1.Cost() + s.r2.Cost() + envelopeCost + penumbraCost)
}

// less orders shades by ascending penalty. On equal penalty the shade with
// the smaller envelope wins, since it leaves more rectangles in play for
// later joins.
func (s *shade) less(other *shade) bool {
	p, q := s.penalty(), other.penalty()
	if p == q {
		return len(s.envelope) < len(other.envelope)
	}
	return p < q
}
