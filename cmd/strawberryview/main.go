// Strawberry Fields viewer — desktop front-end for the greenhouse covering
// optimizer.
//
// Build:
//   go build -o strawberryview ./cmd/strawberryview
//
// Cross-compile with fyne-cross (recommended for proper packaging):
//   go install github.com/fyne-io/fyne-cross@latest
//   fyne-cross windows -arch=amd64
//   fyne-cross darwin  -arch=amd64,arm64

package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/fieldrow/strawberryfields/internal/ui"
)

func main() {
	application := app.NewWithID("com.fieldrow.strawberryview")

	window := application.NewWindow("Strawberry Fields — Greenhouse Covering Optimizer")

	appUI := ui.NewApp(window)
	appUI.SetupMenus()
	window.SetContent(appUI.Build())
	window.Resize(fyne.NewSize(1000, 700))
	window.CenterOnScreen()

	window.ShowAndRun()
}
