package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func coverOf(t *testing.T, f *Field, a *Arena, bounds ...[4]int) []*Rectangle {
	t.Helper()
	out := make([]*Rectangle, len(bounds))
	for i, b := range bounds {
		out[i] = a.NewWeighed(f, b[0], b[1], b[2], b[3])
	}
	return out
}

func TestSolution_CardinalityAndCost(t *testing.T) {
	f, err := NewField([][]int{
		{1, 0, 1},
	})
	require.NoError(t, err)
	a := NewArena()
	cover := coverOf(t, f, a, [4]int{0, 0, 0, 0}, [4]int{0, 2, 0, 2})

	s := NewSolution(f, cover, 5*time.Millisecond)
	assert.Equal(t, 2, s.Cardinality())
	assert.Equal(t, 22, s.TotalCost())
	assert.Len(t, s.RunID, 8)
	assert.Equal(t, 5*time.Millisecond, s.Elapsed)
}

func TestAssignLabels_DescendingRatio(t *testing.T) {
	f, err := NewField([][]int{
		{1, 1, 0, 1},
	})
	require.NoError(t, err)
	a := NewArena()
	// ratios: pair 2/12, singleton 1/11
	cover := coverOf(t, f, a, [4]int{0, 3, 0, 3}, [4]int{0, 0, 0, 1})

	s := NewSolution(f, cover, 0)
	s.AssignLabels()

	require.Equal(t, 2, s.Cardinality())
	assert.Equal(t, byte('A'), s.Cover[0].Label)
	assert.Equal(t, byte('B'), s.Cover[1].Label)
	assert.GreaterOrEqual(t, s.Cover[0].Ratio(), s.Cover[1].Ratio())
}

func TestAssignLabels_OverflowGetsZero(t *testing.T) {
	// 53 single-cell greenhouses on a 53-column row: labels run out after
	// 'z' and the remainder all get '0'.
	cells := make([][]int, 1)
	cells[0] = make([]int, 53)
	for i := range cells[0] {
		cells[0][i] = 1
	}
	f, err := NewField(cells)
	require.NoError(t, err)
	a := NewArena()
	var cover []*Rectangle
	for i := 0; i < 53; i++ {
		cover = append(cover, a.NewWeighed(f, 0, i, 0, i))
	}

	s := NewSolution(f, cover, 0)
	s.AssignLabels()

	seen := map[byte]int{}
	for _, r := range s.Cover {
		seen[r.Label]++
	}
	assert.Equal(t, 1, seen['A'])
	assert.Equal(t, 1, seen['z'])
	assert.Equal(t, 1, seen['0'])
	assert.Len(t, seen, 53)
}

func TestRender_LabeledGrid(t *testing.T) {
	f, err := NewField([][]int{
		{1, 0, 0},
		{0, 0, 1},
	})
	require.NoError(t, err)
	a := NewArena()
	cover := coverOf(t, f, a, [4]int{0, 0, 1, 0}, [4]int{0, 2, 1, 2})

	s := NewSolution(f, cover, 0)
	s.AssignLabels()
	rows := s.Render()

	require.Len(t, rows, 2)
	for _, row := range rows {
		assert.Len(t, row, 3)
	}
	assert.Equal(t, byte('.'), rows[0][1])
	assert.NotEqual(t, byte('.'), rows[0][0])
	assert.Equal(t, rows[0][0], rows[1][0], "column rectangle labels both rows")
}
