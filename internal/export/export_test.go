package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fieldrow/strawberryfields/internal/engine"
	"github.com/fieldrow/strawberryfields/internal/model"
	"github.com/fieldrow/strawberryfields/internal/puzzle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// buildTestSolutions solves two small puzzles to get realistic coverings.
func buildTestSolutions(t *testing.T) []*model.Solution {
	t.Helper()
	puzzles, err := puzzle.Parse(strings.NewReader("3\n@..@.\n.....\n@...@\n\n1\n@.@\n"))
	require.NoError(t, err)

	solver := engine.NewSolver()
	var solutions []*model.Solution
	for _, p := range puzzles {
		sol, err := solver.Solve(p.Field, p.MaxGreenhouses)
		require.NoError(t, err)
		solutions = append(solutions, sol)
	}
	return solutions
}

func assertNonEmptyFile(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestExportPDF_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.pdf")
	require.NoError(t, ExportPDF(path, buildTestSolutions(t)))
	assertNonEmptyFile(t, path)
}

func TestExportPDF_NoSolutions(t *testing.T) {
	err := ExportPDF(filepath.Join(t.TempDir(), "report.pdf"), nil)
	assert.Error(t, err)
}

func TestExportLabels_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "labels.pdf")
	require.NoError(t, ExportLabels(path, buildTestSolutions(t)))
	assertNonEmptyFile(t, path)
}

func TestExportLabels_NoGreenhouses(t *testing.T) {
	err := ExportLabels(filepath.Join(t.TempDir(), "labels.pdf"), nil)
	assert.Error(t, err)
}

func TestCollectLabelInfos(t *testing.T) {
	solutions := buildTestSolutions(t)
	labels := CollectLabelInfos(solutions)

	want := 0
	for _, sol := range solutions {
		want += sol.Cardinality()
	}
	require.Len(t, labels, want)

	first := labels[0]
	assert.Equal(t, "A", first.Greenhouse)
	assert.Equal(t, 1, first.Puzzle)
	assert.Equal(t, solutions[0].RunID, first.RunID)
	assert.Equal(t, first.Cost, 10+first.Area)
}

func TestExportXlsx_SummaryAndPuzzleSheets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xlsx")
	solutions := buildTestSolutions(t)
	require.NoError(t, ExportXlsx(path, solutions))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	sheets := f.GetSheetList()
	assert.Contains(t, sheets, "Summary")
	assert.Contains(t, sheets, "Puzzle 1")
	assert.Contains(t, sheets, "Puzzle 2")

	// One summary row per puzzle plus header and total footer.
	rows, err := f.GetRows("Summary")
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(rows), len(solutions)+2)
	assert.Equal(t, "Puzzle", rows[0][0])
	assert.Equal(t, "Total Cost", rows[len(rows)-1][0])

	// Puzzle sheet carries one row per greenhouse.
	p1, err := f.GetRows("Puzzle 1")
	require.NoError(t, err)
	assert.Len(t, p1, solutions[0].Cardinality()+1)
	assert.Equal(t, "Label", p1[0][0])
}

func TestExportXlsx_NoSolutions(t *testing.T) {
	err := ExportXlsx(filepath.Join(t.TempDir(), "report.xlsx"), nil)
	assert.Error(t, err)
}

func TestExportDXF_CreatesLayersPerPuzzle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.dxf")
	require.NoError(t, ExportDXF(path, buildTestSolutions(t)))
	assertNonEmptyFile(t, path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, "PUZZLE_1")
	assert.Contains(t, text, "PUZZLE_2")
	assert.Contains(t, text, "LWPOLYLINE")
}

func TestExportDXF_NoSolutions(t *testing.T) {
	err := ExportDXF(filepath.Join(t.TempDir(), "layout.dxf"), nil)
	assert.Error(t, err)
}
