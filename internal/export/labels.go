package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/fieldrow/strawberryfields/internal/model"
	"github.com/go-pdf/fpdf"
	qrcode "github.com/skip2/go-qrcode"
)

// LabelInfo holds the data encoded into each greenhouse label's QR code.
type LabelInfo struct {
	Greenhouse string `json:"greenhouse"`
	Puzzle     int    `json:"puzzle"`
	RunID      string `json:"run"`
	TopRow     int    `json:"top_row"`
	TopCol     int    `json:"top_col"`
	BottomRow  int    `json:"bottom_row"`
	BottomCol  int    `json:"bottom_col"`
	Area       int    `json:"area"`
	Weight     int    `json:"weight"`
	Cost       int    `json:"cost"`
}

// Label layout constants for Avery 5160-compatible labels (3 columns, 10
// rows per page). Each label cell is approximately 66.7mm x 25.4mm on US
// Letter paper.
const (
	labelMarginTop  = 12.7
	labelMarginLeft = 4.8
	labelWidth      = 66.7
	labelHeight     = 25.4
	labelCols       = 3
	labelRows       = 10
	labelsPerPage   = labelCols * labelRows
	qrSize          = 20.0
	labelPadding    = 2.0
)

// ExportLabels generates a PDF of QR-coded labels, one per greenhouse across
// every solved puzzle, laid out on a standard label sheet (Avery 5160 / 3
// columns x 10 rows on US Letter).
func ExportLabels(path string, solutions []*model.Solution) error {
	labels := CollectLabelInfos(solutions)
	if len(labels) == 0 {
		return fmt.Errorf("no greenhouses to generate labels for")
	}

	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)

	for i, label := range labels {
		if i%labelsPerPage == 0 {
			pdf.AddPage()
		}

		posOnPage := i % labelsPerPage
		col := posOnPage % labelCols
		row := posOnPage / labelCols

		x := labelMarginLeft + float64(col)*labelWidth
		y := labelMarginTop + float64(row)*labelHeight

		if err := renderLabel(pdf, x, y, i, label); err != nil {
			return fmt.Errorf("rendering label %c of puzzle %d: %w",
				label.Greenhouse[0], label.Puzzle, err)
		}
	}

	return pdf.OutputFileAndClose(path)
}

// renderLabel draws a single greenhouse label at the given position.
func renderLabel(pdf *fpdf.Fpdf, x, y float64, seq int, info LabelInfo) error {
	// Light border as a cutting guide
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.1)
	pdf.Rect(x, y, labelWidth, labelHeight, "D")

	qrData, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("marshaling label info: %w", err)
	}

	qrPNG, err := qrcode.Encode(string(qrData), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("generating QR code: %w", err)
	}

	imgName := fmt.Sprintf("qr_%d_%s_%s", seq, info.RunID, info.Greenhouse)
	pdf.RegisterImageOptionsReader(imgName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))

	qrX := x + labelWidth - qrSize - labelPadding
	qrY := y + (labelHeight-qrSize)/2
	pdf.ImageOptions(imgName, qrX, qrY, qrSize, qrSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	textX := x + labelPadding
	textW := labelWidth - qrSize - 3*labelPadding

	// Greenhouse letter and puzzle, bold
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(textX, y+labelPadding)
	pdf.CellFormat(textW, 4.5, fmt.Sprintf("Greenhouse %s - puzzle %d", info.Greenhouse, info.Puzzle), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	pdf.SetXY(textX, y+labelPadding+5)
	bounds := fmt.Sprintf("(%d,%d) - (%d,%d)", info.TopRow, info.TopCol, info.BottomRow, info.BottomCol)
	pdf.CellFormat(textW, 3.5, bounds, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 6)
	pdf.SetTextColor(100, 100, 100)
	pdf.SetXY(textX, y+labelPadding+9)
	stats := fmt.Sprintf("area %d | %d berries | cost %d", info.Area, info.Weight, info.Cost)
	pdf.CellFormat(textW, 3, stats, "", 1, "L", false, 0, "")

	pdf.SetXY(textX, y+labelPadding+12.5)
	pdf.SetFont("Helvetica", "I", 6)
	pdf.CellFormat(textW, 3, "run "+info.RunID, "", 0, "L", false, 0, "")

	pdf.SetTextColor(0, 0, 0)
	return nil
}

// CollectLabelInfos extracts label data from solved puzzles, in puzzle order
// and cover order within each puzzle.
func CollectLabelInfos(solutions []*model.Solution) []LabelInfo {
	var labels []LabelInfo
	for puzzleIdx, sol := range solutions {
		for _, r := range sol.Cover {
			labels = append(labels, LabelInfo{
				Greenhouse: string(r.Label),
				Puzzle:     puzzleIdx + 1,
				RunID:      sol.RunID,
				TopRow:     r.TopRow,
				TopCol:     r.TopCol,
				BottomRow:  r.BottomRow,
				BottomCol:  r.BottomCol,
				Area:       r.Area(),
				Weight:     r.Weight(),
				Cost:       r.Cost(),
			})
		}
	}
	return labels
}
