// Package ui implements the desktop viewer: a fyne application that opens
// puzzle files, runs the covering solver and renders each solved field.
package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/fieldrow/strawberryfields/internal/engine"
	"github.com/fieldrow/strawberryfields/internal/export"
	"github.com/fieldrow/strawberryfields/internal/model"
	"github.com/fieldrow/strawberryfields/internal/puzzle"
	"github.com/fieldrow/strawberryfields/internal/ui/widgets"
)

// App holds all application state and UI references.
type App struct {
	window    fyne.Window
	solver    *engine.Solver
	puzzles   []puzzle.Puzzle
	solutions []*model.Solution

	// UI references for dynamic updates
	resultContainer *fyne.Container
	statusLabel     *widget.Label
}

func NewApp(window fyne.Window) *App {
	return &App{
		window: window,
		solver: engine.NewSolver(),
	}
}

// SetupMenus creates the native menu bar for the application.
func (a *App) SetupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Open Puzzle File...", func() {
			a.openPuzzleFile()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Export PDF Report...", func() {
			a.exportSolutions("report.pdf", export.ExportPDF)
		}),
		fyne.NewMenuItem("Export QR Labels...", func() {
			a.exportSolutions("labels.pdf", export.ExportLabels)
		}),
		fyne.NewMenuItem("Export Excel Report...", func() {
			a.exportSolutions("report.xlsx", export.ExportXlsx)
		}),
		fyne.NewMenuItem("Export DXF Drawing...", func() {
			a.exportSolutions("layout.dxf", export.ExportDXF)
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() {
			a.window.Close()
		}),
	)

	toolsMenu := fyne.NewMenu("Tools",
		fyne.NewMenuItem("Solve", func() {
			a.runSolve()
		}),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", func() {
			a.showAboutDialog()
		}),
	)

	a.window.SetMainMenu(fyne.NewMainMenu(fileMenu, toolsMenu, helpMenu))
}

func (a *App) showAboutDialog() {
	dialog.ShowInformation(
		"About Strawberry Fields",
		"Strawberry Fields — Greenhouse Covering Optimizer\n\n"+
			"Covers every strawberry on a field with at most K\n"+
			"axis-aligned greenhouses at minimum total cost.\n\n"+
			"Version 1.0.0",
		a.window,
	)
}

// Build constructs the full UI and returns the root container.
func (a *App) Build() fyne.CanvasObject {
	toolbar := widget.NewToolbar(
		widget.NewToolbarAction(theme.FolderOpenIcon(), func() {
			a.openPuzzleFile()
		}),
		widget.NewToolbarAction(theme.MediaPlayIcon(), func() {
			a.runSolve()
		}),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.DocumentIcon(), func() {
			a.exportSolutions("report.pdf", export.ExportPDF)
		}),
		widget.NewToolbarAction(theme.GridIcon(), func() {
			a.exportSolutions("report.xlsx", export.ExportXlsx)
		}),
	)

	a.statusLabel = widget.NewLabel("Open a puzzle file to begin.")
	a.resultContainer = container.NewStack(
		widget.NewLabel("No coverings yet. Open a puzzle file, then click Solve."),
	)

	return container.NewBorder(
		toolbar,
		a.statusLabel,
		nil, nil,
		a.resultContainer,
	)
}

// openPuzzleFile loads a puzzle stream and resets any previous solutions.
func (a *App) openPuzzleFile() {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()

		puzzles, err := puzzle.Parse(reader)
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}

		a.puzzles = puzzles
		a.solutions = nil
		a.refreshResults()
		a.statusLabel.SetText(fmt.Sprintf(
			"Loaded %d puzzle(s) from %s. Click Solve to compute coverings.",
			len(puzzles), reader.URI().Name(),
		))
	}, a.window)
	d.Show()
}

func (a *App) runSolve() {
	if len(a.puzzles) == 0 {
		dialog.ShowInformation("Nothing to solve", "Open a puzzle file first.", a.window)
		return
	}

	var solutions []*model.Solution
	for i, p := range a.puzzles {
		sol, err := a.solver.Solve(p.Field, p.MaxGreenhouses)
		if err != nil {
			dialog.ShowError(fmt.Errorf("solving puzzle %d: %w", i+1, err), a.window)
			return
		}
		solutions = append(solutions, sol)
	}

	a.solutions = solutions
	a.refreshResults()

	total := 0
	greenhouses := 0
	for _, sol := range solutions {
		total += sol.TotalCost()
		greenhouses += sol.Cardinality()
	}
	a.statusLabel.SetText(fmt.Sprintf(
		"Solved %d puzzle(s): %d greenhouses, total cost %d.",
		len(solutions), greenhouses, total,
	))
}

func (a *App) refreshResults() {
	a.resultContainer.RemoveAll()
	a.resultContainer.Add(widgets.RenderSolutions(a.solutions))
	a.resultContainer.Refresh()
}

// exportSolutions prompts for a destination and writes one export artifact.
func (a *App) exportSolutions(defaultName string, write func(string, []*model.Solution) error) {
	if len(a.solutions) == 0 {
		dialog.ShowInformation("No coverings", "Solve the loaded puzzles first.", a.window)
		return
	}

	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer writer.Close()
		path := writer.URI().Path()
		if err := write(path, a.solutions); err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		dialog.ShowInformation("Export Complete",
			fmt.Sprintf("Saved to %s", path), a.window)
	}, a.window)
	d.SetFileName(defaultName)
	d.Show()
}
