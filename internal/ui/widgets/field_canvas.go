package widgets

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/fieldrow/strawberryfields/internal/model"
)

// Greenhouse colors — cycle through these for visual distinction. Kept in
// sync with the PDF export palette.
var greenhouseColors = []color.NRGBA{
	{R: 76, G: 175, B: 80, A: 200},  // green
	{R: 33, G: 150, B: 243, A: 200}, // blue
	{R: 255, G: 152, B: 0, A: 200},  // orange
	{R: 156, G: 39, B: 176, A: 200}, // purple
	{R: 0, G: 188, B: 212, A: 200},  // cyan
	{R: 244, G: 67, B: 54, A: 200},  // red
	{R: 255, G: 235, B: 59, A: 200}, // yellow
	{R: 121, G: 85, B: 72, A: 200},  // brown
}

// FieldCanvas renders a visual representation of a single solved field.
type FieldCanvas struct {
	widget.BaseWidget
	solution  *model.Solution
	maxWidth  float32
	maxHeight float32
}

func NewFieldCanvas(sol *model.Solution, maxW, maxH float32) *FieldCanvas {
	fc := &FieldCanvas{
		solution:  sol,
		maxWidth:  maxW,
		maxHeight: maxH,
	}
	fc.ExtendBaseWidget(fc)
	return fc
}

func (fc *FieldCanvas) CreateRenderer() fyne.WidgetRenderer {
	return newFieldCanvasRenderer(fc)
}

type fieldCanvasRenderer struct {
	fc      *FieldCanvas
	objects []fyne.CanvasObject
}

func newFieldCanvasRenderer(fc *FieldCanvas) *fieldCanvasRenderer {
	r := &fieldCanvasRenderer{fc: fc}
	r.rebuild()
	return r
}

// cellSize computes the grid cell edge that fits the field into the widget's
// max bounds.
func (fc *FieldCanvas) cellSize() float32 {
	cellW := fc.maxWidth / float32(fc.solution.FieldCols)
	cellH := fc.maxHeight / float32(fc.solution.FieldRows)
	if cellH < cellW {
		return cellH
	}
	return cellW
}

func (r *fieldCanvasRenderer) rebuild() {
	r.objects = nil

	sol := r.fc.solution
	cell := r.fc.cellSize()
	canvasW := cell * float32(sol.FieldCols)
	canvasH := cell * float32(sol.FieldRows)

	// Field background (soil color)
	bg := canvas.NewRectangle(color.NRGBA{R: 235, G: 224, B: 200, A: 255})
	bg.Resize(fyne.NewSize(canvasW, canvasH))
	bg.Move(fyne.NewPos(0, 0))
	r.objects = append(r.objects, bg)

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.NRGBA{R: 100, G: 100, B: 100, A: 255}
	border.StrokeWidth = 2
	border.Resize(fyne.NewSize(canvasW, canvasH))
	border.Move(fyne.NewPos(0, 0))
	r.objects = append(r.objects, border)

	// Greenhouses, translucent so strawberries and grid stay visible
	for i, gh := range sol.Cover {
		col := greenhouseColors[i%len(greenhouseColors)]
		gx := float32(gh.TopCol) * cell
		gy := float32(gh.TopRow) * cell
		gw := float32(gh.BottomCol-gh.TopCol+1) * cell
		gh2 := float32(gh.BottomRow-gh.TopRow+1) * cell

		rect := canvas.NewRectangle(col)
		rect.Resize(fyne.NewSize(gw, gh2))
		rect.Move(fyne.NewPos(gx, gy))
		r.objects = append(r.objects, rect)

		rectBorder := canvas.NewRectangle(color.Transparent)
		rectBorder.StrokeColor = color.NRGBA{R: 30, G: 30, B: 30, A: 255}
		rectBorder.StrokeWidth = 1
		rectBorder.Resize(fyne.NewSize(gw, gh2))
		rectBorder.Move(fyne.NewPos(gx, gy))
		r.objects = append(r.objects, rectBorder)

		if gw > 16 && gh2 > 14 {
			label := canvas.NewText(string(gh.Label), color.Black)
			label.TextSize = 12
			label.TextStyle = fyne.TextStyle{Bold: true}
			label.Move(fyne.NewPos(gx+gw/2-4, gy+gh2/2-8))
			r.objects = append(r.objects, label)
		}
	}

	// Grid lines over the greenhouses so cells stay readable
	gridColor := color.NRGBA{R: 160, G: 160, B: 160, A: 120}
	for row := 1; row < sol.FieldRows; row++ {
		line := canvas.NewLine(gridColor)
		line.StrokeWidth = 1
		line.Position1 = fyne.NewPos(0, float32(row)*cell)
		line.Position2 = fyne.NewPos(canvasW, float32(row)*cell)
		r.objects = append(r.objects, line)
	}
	for colIdx := 1; colIdx < sol.FieldCols; colIdx++ {
		line := canvas.NewLine(gridColor)
		line.StrokeWidth = 1
		line.Position1 = fyne.NewPos(float32(colIdx)*cell, 0)
		line.Position2 = fyne.NewPos(float32(colIdx)*cell, canvasH)
		r.objects = append(r.objects, line)
	}

	// Strawberry markers
	radius := cell * 0.22
	if radius > 6 {
		radius = 6
	}
	for _, s := range sol.Strawberries {
		cx := (float32(s.Col) + 0.5) * cell
		cy := (float32(s.Row) + 0.5) * cell

		berry := canvas.NewCircle(color.NRGBA{R: 183, G: 28, B: 28, A: 255})
		berry.StrokeColor = color.NRGBA{R: 120, G: 10, B: 10, A: 255}
		berry.StrokeWidth = 1
		berry.Resize(fyne.NewSize(radius*2, radius*2))
		berry.Move(fyne.NewPos(cx-radius, cy-radius))
		r.objects = append(r.objects, berry)
	}
}

func (r *fieldCanvasRenderer) Layout(size fyne.Size)        {}
func (r *fieldCanvasRenderer) Refresh()                     { r.rebuild() }
func (r *fieldCanvasRenderer) Destroy()                     {}
func (r *fieldCanvasRenderer) Objects() []fyne.CanvasObject { return r.objects }
func (r *fieldCanvasRenderer) MinSize() fyne.Size {
	cell := r.fc.cellSize()
	return fyne.NewSize(
		cell*float32(r.fc.solution.FieldCols),
		cell*float32(r.fc.solution.FieldRows),
	)
}

// RenderSolutions creates a scrollable container of all solved puzzles.
func RenderSolutions(solutions []*model.Solution) fyne.CanvasObject {
	if len(solutions) == 0 {
		return widget.NewLabel("No coverings yet. Open a puzzle file, then click Solve.")
	}

	var items []fyne.CanvasObject

	total := 0
	for i, sol := range solutions {
		total += sol.TotalCost()

		header := widget.NewLabel(fmt.Sprintf(
			"Puzzle %d: %d × %d field — %d strawberries, %d greenhouses, cost %d (run %s, %s)",
			i+1, sol.FieldRows, sol.FieldCols, len(sol.Strawberries),
			sol.Cardinality(), sol.TotalCost(), sol.RunID, sol.Elapsed,
		))
		header.TextStyle = fyne.TextStyle{Bold: true}

		fieldCanvas := NewFieldCanvas(sol, 600, 400)

		items = append(items, header, fieldCanvas, widget.NewSeparator())
	}

	summary := widget.NewLabel(fmt.Sprintf(
		"Total: %d puzzles solved, total cost %d", len(solutions), total,
	))
	summary.TextStyle = fyne.TextStyle{Bold: true}
	items = append(items, summary)

	return container.NewVScroll(container.NewVBox(items...))
}
