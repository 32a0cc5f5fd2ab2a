package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"ShapeBoard/internal/state"
)

// --- Swatch for the next fill color ---
type colorSwatch struct {
	widget.BaseWidget
	rect     *canvas.Rectangle
	OnTapped func()
}

func newColorSwatch(c color.Color, tapped func()) *colorSwatch {
	s := &colorSwatch{rect: canvas.NewRectangle(c), OnTapped: tapped}
	s.rect.SetMinSize(fyne.NewSize(32, 32))
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) SetColor(c color.Color) {
	s.rect.FillColor = c
	s.rect.Refresh()
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(s.rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped()
	}
}

// Toolbar holds the board actions and the next-fill indicator.
type Toolbar struct {
	board  *BoardWidget
	swatch *colorSwatch
	fill   *widget.Label
	parent fyne.Window
}

func NewToolbar(b *BoardWidget, parent fyne.Window) *Toolbar {
	t := &Toolbar{board: b, parent: parent, fill: widget.NewLabel("")}
	// Tapping the swatch skips a color.
	t.swatch = newColorSwatch(color.White, func() {
		b.Controller().Colors().NextNonWhiteAndAdvance()
		t.Sync()
	})
	t.Sync()
	return t
}

// Sync shows the fill the next rectangle will get.
func (t *Toolbar) Sync() {
	next := t.board.Controller().Colors().Current()
	if next == state.White {
		next = next.Advance()
	}
	t.swatch.SetColor(next.RGBA())
	t.fill.SetText(next.String())
}

func (t *Toolbar) showExport() {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, t.parent)
			return
		}
		if writer == nil {
			return
		}
		t.board.ExportTo(writer)
	}, t.parent)
	d.SetFileName("board.png")
	d.SetFilter(storage.NewExtensionFileFilter([]string{".png", ".svg", ".pdf"}))
	d.Show()
}

// Object assembles the toolbar.
func (t *Toolbar) Object() fyne.CanvasObject {
	tb := widget.NewToolbar(
		widget.NewToolbarAction(theme.DocumentCreateIcon(), func() {
			t.board.NewBoard(state.NewDocument())
		}), // Empty board
		widget.NewToolbarAction(theme.ViewRestoreIcon(), func() {
			t.board.NewBoard(state.NewDemoDocument())
		}), // Demo board
		widget.NewToolbarAction(theme.DocumentSaveIcon(), t.showExport), // Export
	)

	return container.NewHBox(
		widget.NewLabel("Board:"),
		tb,
		widget.NewSeparator(),
		widget.NewLabel("Next fill:"),
		t.swatch,
		t.fill,
		layout.NewSpacer(),
	)
}
