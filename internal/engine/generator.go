// Package engine implements the three-phase covering pipeline: chain-pruned
// rectangle generation, greedy disjoint matching, and a local search over
// joins that trades pairs of greenhouses for their rectangular hull.
package engine

import (
	"sort"

	"github.com/fieldrow/strawberryfields/internal/model"
)

// maxCandidates returns the number of distinct rectangles an m x n grid can
// produce, used to size the candidate slice up front.
func maxCandidates(m, n int) int {
	return (m*n+1)*(m*n)/2 - (m*(m-1))*(n*(n-1))/4
}

// Generate enumerates candidate rectangles along (row, col, right) chains,
// walking the bottom edge downwards and keeping a rectangle only when its
// weight strictly exceeds the previous emission on the same chain. Dominated
// rectangles (same chain, same weight, larger area) never survive. The result
// is sorted ascending by weight-to-cost ratio; spans are not built here.
func Generate(f *model.Field, a *model.Arena) []*model.Rectangle {
	m, n := f.Rows(), f.Cols()
	candidates := make([]*model.Rectangle, 0, maxCandidates(m, n))

	for row := 0; row < m; row++ {
		for col := 0; col < n; col++ {
			for right := col; right < n; right++ {
				weight := 0
				for down := row; down < m; down++ {
					w := f.Weight(row, col, down, right)
					if w > weight {
						candidates = append(candidates, a.New(row, col, down, right, w))
						weight = w
					}
				}
			}
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Less(candidates[j])
	})
	return candidates
}
