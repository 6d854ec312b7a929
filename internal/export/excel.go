package export

import (
	"fmt"

	"github.com/fieldrow/strawberryfields/internal/model"
	"github.com/xuri/excelize/v2"
)

// ExportXlsx writes a workbook report: a Summary sheet with one row per
// puzzle and a total-cost footer, plus one sheet per puzzle listing its
// greenhouses.
func ExportXlsx(path string, solutions []*model.Solution) error {
	if len(solutions) == 0 {
		return fmt.Errorf("no solutions to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	const summary = "Summary"
	if err := f.SetSheetName("Sheet1", summary); err != nil {
		return fmt.Errorf("renaming summary sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"DDDDDD"}},
	})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}

	summaryHeaders := []string{"Puzzle", "Rows", "Columns", "Strawberries", "Greenhouses", "Cost", "Run", "Elapsed"}
	for i, h := range summaryHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(summary, cell, h); err != nil {
			return fmt.Errorf("writing summary header: %w", err)
		}
	}
	if err := f.SetCellStyle(summary, "A1", "H1", headerStyle); err != nil {
		return fmt.Errorf("styling summary header: %w", err)
	}

	total := 0
	for i, sol := range solutions {
		total += sol.TotalCost()
		row := i + 2
		values := []interface{}{
			i + 1, sol.FieldRows, sol.FieldCols, len(sol.Strawberries),
			sol.Cardinality(), sol.TotalCost(), sol.RunID, sol.Elapsed.String(),
		}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, row)
			if err := f.SetCellValue(summary, cell, v); err != nil {
				return fmt.Errorf("writing summary row %d: %w", i+1, err)
			}
		}

		if err := writePuzzleSheet(f, sol, i+1); err != nil {
			return err
		}
	}

	footerRow := len(solutions) + 3
	cell, _ := excelize.CoordinatesToCellName(1, footerRow)
	if err := f.SetCellValue(summary, cell, "Total Cost"); err != nil {
		return fmt.Errorf("writing total label: %w", err)
	}
	cell, _ = excelize.CoordinatesToCellName(6, footerRow)
	if err := f.SetCellValue(summary, cell, total); err != nil {
		return fmt.Errorf("writing total cost: %w", err)
	}

	if err := f.SetColWidth(summary, "A", "H", 14); err != nil {
		return fmt.Errorf("sizing summary columns: %w", err)
	}

	return f.SaveAs(path)
}

// writePuzzleSheet adds one sheet with a row per greenhouse.
func writePuzzleSheet(f *excelize.File, sol *model.Solution, puzzleNum int) error {
	name := fmt.Sprintf("Puzzle %d", puzzleNum)
	if _, err := f.NewSheet(name); err != nil {
		return fmt.Errorf("creating sheet %q: %w", name, err)
	}

	headers := []string{"Label", "Top Row", "Top Col", "Bottom Row", "Bottom Col", "Area", "Strawberries", "Cost", "Ratio"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(name, cell, h); err != nil {
			return fmt.Errorf("writing %q header: %w", name, err)
		}
	}

	for i, r := range sol.Cover {
		row := i + 2
		values := []interface{}{
			string(r.Label), r.TopRow, r.TopCol, r.BottomRow, r.BottomCol,
			r.Area(), r.Weight(), r.Cost(), r.Ratio(),
		}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, row)
			if err := f.SetCellValue(name, cell, v); err != nil {
				return fmt.Errorf("writing %q row %d: %w", name, i+1, err)
			}
		}
	}

	return nil
}
