package engine

import (
	"github.com/fieldrow/strawberryfields/internal/bitset"
	"github.com/fieldrow/strawberryfields/internal/model"
)

// intersectionKind classifies how a join hull cuts into a third cover
// rectangle. The ordinal values order slices so that an Increasing slice,
// which would force a split into two or more pieces, sorts last.
type intersectionKind int

const (
	kindVoid          intersectionKind = -2
	kindDecreasing    intersectionKind = -1
	kindNonIncreasing intersectionKind = 0
	kindIncreasing    intersectionKind = 1
)

// slice records the intersection kind of one cover rectangle against a join
// hull. For a NonIncreasing cut the residual bounds of original minus join
// are filled in; for every other kind they stay -1.
type slice struct {
	original *model.Rectangle
	kind     intersectionKind

	top, left, bottom, right int
}

// classifySlice determines the kind of r3's intersection with join.
//
//	Void          r3 and join share no cell
//	Decreasing    r3 lies entirely inside join
//	NonIncreasing r3 minus join is itself a rectangle (the residual)
//	Increasing    r3 minus join is not a rectangle
//
// Spans of both rectangles must be built.
func classifySlice(r3, join *model.Rectangle, cols int) slice {
	s := slice{original: r3, top: -1, left: -1, bottom: -1, right: -1}

	if !r3.Intersects(join) {
		s.kind = kindVoid
		return s
	}
	if r3.SubsetOf(join) {
		s.kind = kindDecreasing
		return s
	}

	leftOver := r3.Span().Clone()
	leftOver.AndNot(join.Span())

	// Not void and not a subset, so something survives outside the join.
	first, _ := leftOver.NextSet(0)
	topCol := first % cols
	topRow := first / cols

	minRow, maxRow := topRow, topRow
	minCol, maxCol := topCol, topCol
	last := first
	for pos, ok := leftOver.NextSet(first + 1); ok; pos, ok = leftOver.NextSet(pos + 1) {
		last = pos
		col := pos % cols
		row := pos / cols
		if row < minRow {
			minRow = row
		}
		if row > maxRow {
			maxRow = row
		}
		if col < minCol {
			minCol = col
		}
		if col > maxCol {
			maxCol = col
		}
	}

	// Bottom-right bounds come from the last bit visited in the scan; with a
	// single set bit they coincide with the top-left.
	bottomCol := last % cols
	bottomRow := last / cols

	test := bitset.New(leftOver.Len())
	for row := topRow; row <= bottomRow; row++ {
		for col := topCol; col <= bottomCol; col++ {
			test.Set(row*cols + col)
		}
	}

	rectangular := topRow == minRow && topCol == minCol &&
		bottomRow == maxRow && bottomCol == maxCol &&
		test.Equal(leftOver)

	if rectangular {
		s.kind = kindNonIncreasing
		s.top, s.left, s.bottom, s.right = topRow, topCol, bottomRow, bottomCol
	} else {
		s.kind = kindIncreasing
	}
	return s
}
