// Package export renders solved coverings into report artifacts: PDF field
// diagrams, QR greenhouse labels, an Excel workbook and a DXF drawing.
package export

import (
	"fmt"
	"math"

	"github.com/fieldrow/strawberryfields/internal/model"
	"github.com/go-pdf/fpdf"
)

// greenhouseColor is an RGB fill for one greenhouse in a diagram.
type greenhouseColor struct {
	R, G, B int
}

// greenhouseColors is the shared color cycle of the PDF export and the
// desktop viewer.
var greenhouseColors = []greenhouseColor{
	{R: 76, G: 175, B: 80},  // green
	{R: 33, G: 150, B: 243}, // blue
	{R: 255, G: 152, B: 0},  // orange
	{R: 156, G: 39, B: 176}, // purple
	{R: 0, G: 188, B: 212},  // cyan
	{R: 244, G: 67, B: 54},  // red
	{R: 255, G: 235, B: 59}, // yellow
	{R: 121, G: 85, B: 72},  // brown
}

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	legendHeight = 14.0
	drawAreaTop  = marginTop + headerHeight + 10.0
)

// ExportPDF writes a PDF report: one page per solved puzzle with a scaled
// field diagram, followed by a summary page with a per-puzzle table and the
// total cost.
func ExportPDF(path string, solutions []*model.Solution) error {
	if len(solutions) == 0 {
		return fmt.Errorf("no solutions to export")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	for i, sol := range solutions {
		pdf.AddPage()
		renderPuzzlePage(pdf, sol, i+1)
	}

	pdf.AddPage()
	renderSummaryPage(pdf, solutions)

	return pdf.OutputFileAndClose(path)
}

// renderPuzzlePage draws one puzzle's covering on the current page.
func renderPuzzlePage(pdf *fpdf.Fpdf, sol *model.Solution, puzzleNum int) {
	// Title
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("Puzzle %d: %d x %d field (run %s)",
		puzzleNum, sol.FieldRows, sol.FieldCols, sol.RunID)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	// Stats line
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	stats := fmt.Sprintf("Strawberries: %d | Greenhouses: %d | Cost: %d | Solved in %s",
		len(sol.Strawberries), sol.Cardinality(), sol.TotalCost(), sol.Elapsed)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, stats, "", 0, "L", false, 0, "")

	// Scale the grid to the drawing area.
	drawWidth := pageWidth - marginLeft - marginRight
	drawHeight := pageHeight - drawAreaTop - marginBottom - legendHeight
	cell := math.Min(drawWidth/float64(sol.FieldCols), drawHeight/float64(sol.FieldRows))

	canvasW := cell * float64(sol.FieldCols)
	canvasH := cell * float64(sol.FieldRows)
	offsetX := marginLeft + (drawWidth-canvasW)/2
	offsetY := drawAreaTop

	// Field background (soil color)
	pdf.SetFillColor(235, 224, 200)
	pdf.SetDrawColor(100, 100, 100)
	pdf.SetLineWidth(0.5)
	pdf.Rect(offsetX, offsetY, canvasW, canvasH, "FD")

	// Greenhouses
	for i, r := range sol.Cover {
		col := greenhouseColors[i%len(greenhouseColors)]
		gx := offsetX + float64(r.TopCol)*cell
		gy := offsetY + float64(r.TopRow)*cell
		gw := float64(r.BottomCol-r.TopCol+1) * cell
		gh := float64(r.BottomRow-r.TopRow+1) * cell

		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.SetDrawColor(30, 30, 30)
		pdf.SetLineWidth(0.3)
		pdf.Rect(gx, gy, gw, gh, "FD")

		if gw > 6 && gh > 6 {
			pdf.SetFont("Helvetica", "B", labelFontSize(gw, gh))
			pdf.SetTextColor(0, 0, 0)
			label := string(r.Label)
			labelW := pdf.GetStringWidth(label)
			pdf.SetXY(gx+(gw-labelW)/2, gy+gh/2-2)
			pdf.CellFormat(labelW, 4, label, "", 0, "C", false, 0, "")
		}
	}

	// Grid lines over everything so cells stay readable.
	pdf.SetDrawColor(160, 160, 160)
	pdf.SetLineWidth(0.1)
	for r := 1; r < sol.FieldRows; r++ {
		y := offsetY + float64(r)*cell
		pdf.Line(offsetX, y, offsetX+canvasW, y)
	}
	for c := 1; c < sol.FieldCols; c++ {
		x := offsetX + float64(c)*cell
		pdf.Line(x, offsetY, x, offsetY+canvasH)
	}

	// Strawberry markers
	pdf.SetFillColor(183, 28, 28)
	pdf.SetDrawColor(120, 10, 10)
	pdf.SetLineWidth(0.2)
	radius := math.Min(cell*0.22, 2.5)
	for _, s := range sol.Strawberries {
		cx := offsetX + (float64(s.Col)+0.5)*cell
		cy := offsetY + (float64(s.Row)+0.5)*cell
		pdf.Circle(cx, cy, radius, "FD")
	}

	drawGreenhouseLegend(pdf, sol, offsetY+canvasH+4)
}

// drawGreenhouseLegend renders one swatch per greenhouse under the diagram.
func drawGreenhouseLegend(pdf *fpdf.Fpdf, sol *model.Solution, startY float64) {
	if len(sol.Cover) == 0 {
		return
	}

	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(marginLeft, startY)
	pdf.CellFormat(30, 4, "Greenhouses:", "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	xPos := marginLeft + 32
	maxX := pageWidth - marginRight

	for i, r := range sol.Cover {
		col := greenhouseColors[i%len(greenhouseColors)]
		label := fmt.Sprintf("%c (%d,%d)-(%d,%d) cost %d",
			r.Label, r.TopRow, r.TopCol, r.BottomRow, r.BottomCol, r.Cost())
		labelW := pdf.GetStringWidth(label) + 6

		if xPos+labelW > maxX {
			startY += 5
			xPos = marginLeft
		}

		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.Rect(xPos, startY+0.5, 3, 3, "F")

		pdf.SetXY(xPos+4, startY)
		pdf.CellFormat(labelW-4, 4, label, "", 0, "L", false, 0, "")

		xPos += labelW + 2
	}
}

// renderSummaryPage draws the final page with the per-puzzle table and the
// run total.
func renderSummaryPage(pdf *fpdf.Fpdf, solutions []*model.Solution) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 10, "Covering Summary", "", 0, "L", false, 0, "")

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+12, pageWidth-marginRight, marginTop+12)

	y := marginTop + 18

	colWidths := []float64{20, 40, 40, 35, 30, 40}
	headers := []string{"Puzzle", "Field", "Strawberries", "Greenhouses", "Cost", "Run"}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	xPos := marginLeft
	for i, header := range headers {
		pdf.SetXY(xPos, y)
		pdf.CellFormat(colWidths[i], 6, header, "1", 0, "C", true, 0, "")
		xPos += colWidths[i]
	}
	y += 6

	pdf.SetFont("Helvetica", "", 9)
	total := 0
	for i, sol := range solutions {
		total += sol.TotalCost()
		xPos = marginLeft
		rowData := []string{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d x %d", sol.FieldRows, sol.FieldCols),
			fmt.Sprintf("%d", len(sol.Strawberries)),
			fmt.Sprintf("%d", sol.Cardinality()),
			fmt.Sprintf("%d", sol.TotalCost()),
			sol.RunID,
		}

		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}

		for j, cellText := range rowData {
			pdf.SetXY(xPos, y)
			pdf.CellFormat(colWidths[j], 6, cellText, "1", 0, "C", true, 0, "")
			xPos += colWidths[j]
		}
		y += 6
	}

	y += 4
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(120, 7, fmt.Sprintf("Total Cost: %d", total), "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 4,
		"Generated by strawberryfields - greenhouse covering optimizer", "", 0, "C", false, 0, "")
}

// labelFontSize picks a font size that fits the greenhouse rectangle.
func labelFontSize(w, h float64) float64 {
	minDim := math.Min(w, h)
	switch {
	case minDim > 40:
		return 12
	case minDim > 20:
		return 9
	default:
		return 7
	}
}
