package ui

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"ShapeBoard/internal/board"
	"ShapeBoard/internal/export"
	"ShapeBoard/internal/state"
)

// BoardWidget is the editable canvas. It feeds pointer events to a
// board.Controller and draws the scenes the controller renders.
type BoardWidget struct {
	widget.BaseWidget
	controller *board.Controller
	scene      board.Scene
	statusBar  *widget.Label

	// OnSceneChange is called after every re-render, on the UI goroutine.
	OnSceneChange func(board.Scene)
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)
var _ desktop.Hoverable = (*BoardWidget)(nil)

func NewBoardWidget(c *board.Controller) *BoardWidget {
	b := &BoardWidget{
		controller: c,
		scene:      c.Render(),
		statusBar:  widget.NewLabel("Ready"),
	}
	c.OnChange = b.sceneChanged
	b.ExtendBaseWidget(b)
	return b
}

func (b *BoardWidget) Controller() *board.Controller { return b.controller }

// Scene returns the scene currently on screen.
func (b *BoardWidget) Scene() board.Scene { return b.scene }

func (b *BoardWidget) StatusBar() *widget.Label { return b.statusBar }

func (b *BoardWidget) SetStatus(text string) {
	fyne.Do(func() {
		b.statusBar.SetText(text)
	})
}

func (b *BoardWidget) sceneChanged(s board.Scene) {
	b.scene = s
	if b.OnSceneChange != nil {
		b.OnSceneChange(s)
	}
	b.Refresh()
}

// NewBoard replaces the document, e.g. with an empty or a demo document.
func (b *BoardWidget) NewBoard(doc *state.Document) {
	b.controller.Reset(doc)
	b.SetStatus(fmt.Sprintf("New board with %d shapes", doc.Len()))
}

// CancelGesture aborts a drag or rectangle in progress.
func (b *BoardWidget) CancelGesture() {
	b.controller.Cancel()
}

func (b *BoardWidget) Resize(size fyne.Size) {
	b.BaseWidget.Resize(size)
	if b.controller != nil && size.Width > 0 && size.Height > 0 {
		b.controller.SetSize(float64(size.Width), float64(size.Height))
	}
}

func toPoint(p fyne.Position) state.Point {
	return state.Pt(float64(p.X), float64(p.Y))
}

func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	p := toPoint(e.Position)
	switch e.Button {
	case desktop.MouseButtonPrimary:
		b.scene.PointerDown(p)
	case desktop.MouseButtonSecondary:
		if hit := b.scene.HitTest(p); hit.Kind != board.KindBackground {
			b.controller.BringToFront(hit.ID)
		}
	}
}

func (b *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		b.controller.PointerUp(toPoint(e.Position))
	}
}

func (b *BoardWidget) Dragged(e *fyne.DragEvent) {
	b.controller.PointerMove(toPoint(e.Position))
}

func (b *BoardWidget) DragEnd() {
	b.controller.Release()
}

func (b *BoardWidget) MouseMoved(e *desktop.MouseEvent) {
	b.controller.PointerMove(toPoint(e.Position))
}

func (b *BoardWidget) MouseIn(*desktop.MouseEvent) {}
func (b *BoardWidget) MouseOut()                   {}

// ExportTo renders the current scene into writer, choosing the format from
// the file extension.
func (b *BoardWidget) ExportTo(writer fyne.URIWriteCloser) {
	defer func() {
		if err := writer.Close(); err != nil {
			log.Printf("Error closing writer: %v", err)
		}
	}()

	format, err := export.FormatForPath(writer.URI().Path())
	if err != nil {
		log.Printf("[EXPORT] %v", err)
		b.SetStatus("Export failed: use .png, .svg or .pdf")
		return
	}
	if err := export.Write(writer, format, b.scene); err != nil {
		log.Printf("[EXPORT] Writing %s: %v", writer.URI(), err)
		b.SetStatus("Error writing file")
		return
	}
	log.Printf("[EXPORT] Wrote %d shapes to %s", len(b.scene.Shapes), writer.URI())
	b.SetStatus(fmt.Sprintf("Exported %d shapes as %s", len(b.scene.Shapes), format))
}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	return newSceneRenderer(b, func() board.Scene { return b.scene })
}
