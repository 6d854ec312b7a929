package engine

import (
	"log/slog"
	"time"

	"github.com/fieldrow/strawberryfields/internal/bitset"
	"github.com/fieldrow/strawberryfields/internal/model"
)

// Solver runs the covering pipeline over successive puzzles, reusing its
// rectangle arena between solves. A Solver is not safe for concurrent use.
type Solver struct {
	arena *model.Arena
}

// NewSolver returns a Solver with an empty arena.
func NewSolver() *Solver {
	return &Solver{arena: model.NewArena()}
}

// Solve computes a disjoint covering of the field's strawberries with at
// most maxGreenhouses rectangles where possible, minimizing total cost. The
// cover it returns is labeled and sorted for rendering. A field without
// strawberries yields an empty cover.
func (s *Solver) Solve(f *model.Field, maxGreenhouses int) (*model.Solution, error) {
	start := time.Now()
	defer s.arena.Reset()

	var cover []*model.Rectangle
	if len(f.Strawberries()) > 0 {
		if maxGreenhouses > 1 {
			candidates := Generate(f, s.arena)
			covering := bitset.New(f.Rows() * f.Cols())
			matched, err := greedyMatch(f, candidates, covering)
			if err != nil {
				return nil, err
			}
			cover = localSearch(f, s.arena, matched, maxGreenhouses)
		} else {
			cover = []*model.Rectangle{convexHull(f, s.arena)}
		}
	}

	solution := model.NewSolution(f, detach(cover), time.Since(start))
	solution.AssignLabels()
	slog.Info("optimized field",
		"rows", f.Rows(),
		"cols", f.Cols(),
		"strawberries", len(f.Strawberries()),
		"cardinality", solution.Cardinality(),
		"cost", solution.TotalCost(),
		"elapsed", solution.Elapsed)
	return solution, nil
}

// detach copies the final cover rectangles out of the arena so the solution
// outlives the arena reset at the end of the solve.
func detach(cover []*model.Rectangle) []*model.Rectangle {
	out := make([]*model.Rectangle, len(cover))
	for i, r := range cover {
		cp := *r
		out[i] = &cp
	}
	return out
}
