package model

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// labelAlphabet is the label sequence for greenhouses in a solved covering.
// Coverings larger than 52 rectangles fall back to '0'.
const labelAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// Solution is one puzzle's solved covering: the disjoint greenhouses plus
// the field dimensions needed to render them.
type Solution struct {
	RunID        string
	FieldRows    int
	FieldCols    int
	Strawberries []Cell
	Cover        []*Rectangle
	Elapsed      time.Duration
}

// NewSolution wraps a finished cover with a fresh run ID.
func NewSolution(f *Field, cover []*Rectangle, elapsed time.Duration) *Solution {
	return &Solution{
		RunID:        uuid.New().String()[:8],
		FieldRows:    f.Rows(),
		FieldCols:    f.Cols(),
		Strawberries: f.Strawberries(),
		Cover:        cover,
		Elapsed:      elapsed,
	}
}

// Cardinality returns the number of greenhouses.
func (s *Solution) Cardinality() int { return len(s.Cover) }

// TotalCost returns the summed greenhouse cost.
func (s *Solution) TotalCost() int {
	total := 0
	for _, r := range s.Cover {
		total += r.Cost()
	}
	return total
}

// AssignLabels sorts the cover by descending ratio and stamps each
// greenhouse with its letter, 'A' first for the best ratio.
func (s *Solution) AssignLabels() {
	sort.SliceStable(s.Cover, func(i, j int) bool {
		return s.Cover[j].Less(s.Cover[i])
	})
	for i, r := range s.Cover {
		if i < len(labelAlphabet) {
			r.Label = labelAlphabet[i]
		} else {
			r.Label = '0'
		}
	}
}

// Render returns the field as label rows, one string per grid row, with '.'
// for uncovered cells. Labels must already be assigned.
func (s *Solution) Render() []string {
	grid := make([][]byte, s.FieldRows)
	for i := range grid {
		grid[i] = []byte(strings.Repeat(".", s.FieldCols))
	}
	for _, r := range s.Cover {
		for row := r.TopRow; row <= r.BottomRow; row++ {
			for col := r.TopCol; col <= r.BottomCol; col++ {
				grid[row][col] = r.Label
			}
		}
	}
	out := make([]string, len(grid))
	for i, row := range grid {
		out[i] = string(row)
	}
	return out
}
