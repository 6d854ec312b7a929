package export

import (
	"fmt"

	"github.com/fieldrow/strawberryfields/internal/model"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
	"github.com/yofu/dxf/table"
)

// Vertical gap in grid cells between stacked puzzle drawings.
const dxfPuzzleGap = 4.0

// layerColors cycles the greenhouse outline colors per puzzle layer.
var layerColors = []color.ColorNumber{
	color.Red, color.Green, color.Cyan, color.Magenta, color.Yellow, color.Blue,
}

// ExportDXF writes a CAD drawing of the solved coverings: one layer per
// puzzle holding the field boundary and each greenhouse as a closed
// polyline, with puzzles offset vertically so they do not overlap. Grid
// cells map to drawing units; the Y axis points up, so rows are flipped.
func ExportDXF(path string, solutions []*model.Solution) error {
	if len(solutions) == 0 {
		return fmt.Errorf("no solutions to export")
	}

	d := dxf.NewDrawing()

	offsetY := 0.0
	for i, sol := range solutions {
		layer := fmt.Sprintf("PUZZLE_%d", i+1)
		cl := layerColors[i%len(layerColors)]
		if _, err := d.AddLayer(layer, cl, table.LT_CONTINUOUS, true); err != nil {
			return fmt.Errorf("adding layer %q: %w", layer, err)
		}

		rows := float64(sol.FieldRows)
		cols := float64(sol.FieldCols)

		// Field boundary
		if _, err := d.LwPolyline(true,
			[]float64{0, offsetY},
			[]float64{cols, offsetY},
			[]float64{cols, offsetY + rows},
			[]float64{0, offsetY + rows},
		); err != nil {
			return fmt.Errorf("drawing field boundary of puzzle %d: %w", i+1, err)
		}

		for _, r := range sol.Cover {
			left := float64(r.TopCol)
			right := float64(r.BottomCol + 1)
			// Rows grow downward on the grid but up in the drawing.
			top := offsetY + rows - float64(r.TopRow)
			bottom := offsetY + rows - float64(r.BottomRow+1)

			if _, err := d.LwPolyline(true,
				[]float64{left, bottom},
				[]float64{right, bottom},
				[]float64{right, top},
				[]float64{left, top},
			); err != nil {
				return fmt.Errorf("drawing greenhouse %c of puzzle %d: %w", r.Label, i+1, err)
			}
		}

		offsetY += rows + dxfPuzzleGap
	}

	return d.SaveAs(path)
}
