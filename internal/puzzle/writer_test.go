package puzzle

import (
	"strings"
	"testing"

	"github.com/fieldrow/strawberryfields/internal/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solveText(t *testing.T, input string) (string, int) {
	t.Helper()
	puzzles, err := Parse(strings.NewReader(input))
	require.NoError(t, err)

	var out strings.Builder
	solver := engine.NewSolver()
	total := 0
	for _, p := range puzzles {
		sol, err := solver.Solve(p.Field, p.MaxGreenhouses)
		require.NoError(t, err)
		require.NoError(t, WriteSolution(&out, sol))
		total += sol.TotalCost()
	}
	return out.String(), total
}

func TestWriteSolution_SingleCell(t *testing.T) {
	// Scenario: K=1 over a lone strawberry cell.
	out, _ := solveText(t, "1\n@\n")
	assert.Equal(t, "Cardinality:1\nCost:11\n=\nA\n\n", out)
}

func TestWriteSolution_HullOfCorners(t *testing.T) {
	out, _ := solveText(t, "1\n@..\n...\n..@\n")
	assert.Equal(t,
		"Cardinality:1\nCost:19\n===\nAAA\nAAA\nAAA\n\n", out)
}

func TestWriteSolution_JoinedRow(t *testing.T) {
	out, _ := solveText(t, "2\n@...@\n")
	assert.Equal(t, "Cardinality:1\nCost:15\n=====\nAAAAA\n\n", out)
}

func TestWriteTotal_MultiPuzzleFile(t *testing.T) {
	// Two puzzles in one file: two covering blocks plus one total line.
	out, total := solveText(t, "1\n@\n\n2\n@...@\n")

	blocks := strings.Count(out, "Cardinality:")
	assert.Equal(t, 2, blocks)
	assert.Equal(t, 11+15, total)

	var b strings.Builder
	require.NoError(t, WriteTotal(&b, total))
	assert.Equal(t, "Total Cost: 26\n", b.String())
}

func TestWriteSolution_EmptyFieldAllDots(t *testing.T) {
	out, _ := solveText(t, "3\n...\n...\n")
	assert.Equal(t, "Cardinality:0\nCost:0\n===\n...\n...\n\n", out)
}
