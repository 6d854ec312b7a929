package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewField_CollectsStrawberries(t *testing.T) {
	f, err := NewField([][]int{
		{1, 0, 0},
		{0, 0, 1},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, f.Rows())
	assert.Equal(t, 3, f.Cols())
	assert.Equal(t, []Cell{{Row: 0, Col: 0}, {Row: 1, Col: 2}}, f.Strawberries())
}

func TestNewField_RejectsEmptyAndRagged(t *testing.T) {
	_, err := NewField(nil)
	assert.Error(t, err)

	_, err = NewField([][]int{{0, 1}, {0}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 1")
}

func TestNewField_RejectsBadCellValue(t *testing.T) {
	_, err := NewField([][]int{{0, 2}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid value")
}

func TestWeight(t *testing.T) {
	f, err := NewField([][]int{
		{1, 0, 1},
		{0, 1, 0},
		{1, 0, 1},
	})
	require.NoError(t, err)

	assert.Equal(t, 5, f.Weight(0, 0, 2, 2), "whole field")
	assert.Equal(t, 1, f.Weight(0, 0, 0, 0), "single strawberry cell")
	assert.Equal(t, 0, f.Weight(0, 1, 0, 1), "single empty cell")
	assert.Equal(t, 2, f.Weight(0, 0, 1, 1), "top-left quadrant")
	assert.Equal(t, 3, f.Weight(1, 0, 2, 2), "bottom two rows")
}
