package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"ShapeBoard/internal/board"
	"ShapeBoard/internal/state"
)

// sceneRenderer draws a board.Scene: the background first, then one canvas
// object per primitive, bottom to top.
type sceneRenderer struct {
	widget     fyne.Widget
	scene      func() board.Scene
	background *canvas.Rectangle
	objects    []fyne.CanvasObject
}

func newSceneRenderer(w fyne.Widget, scene func() board.Scene) *sceneRenderer {
	r := &sceneRenderer{widget: w, scene: scene}
	r.background = canvas.NewRectangle(state.White.RGBA())
	r.rebuild()
	return r
}

func (r *sceneRenderer) rebuild() {
	s := r.scene()
	if s.Background.Geometry != nil {
		r.background.FillColor = s.Background.FillRGBA()
	}
	objects := make([]fyne.CanvasObject, 0, len(s.Shapes)+1)
	objects = append(objects, r.background)
	for _, p := range s.Shapes {
		if o := objectFor(p); o != nil {
			objects = append(objects, o)
		}
	}
	r.objects = objects
}

func objectFor(p board.Primitive) fyne.CanvasObject {
	fill := p.FillRGBA()
	switch g := p.Geometry.(type) {
	case state.Rectangle:
		rect := canvas.NewRectangle(fill)
		rect.Move(toPosition(g.TopLeft))
		rect.Resize(toSize(g.Size))
		return rect
	case state.Circle:
		topLeft, size := g.Bounds()
		circle := canvas.NewCircle(fill)
		circle.Move(toPosition(topLeft))
		circle.Resize(toSize(size))
		return circle
	}
	return nil
}

func toPosition(p state.Point) fyne.Position {
	return fyne.NewPos(float32(p.X), float32(p.Y))
}

func toSize(p state.Point) fyne.Size {
	return fyne.NewSize(float32(p.X), float32(p.Y))
}

func (r *sceneRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *sceneRenderer) Refresh() {
	r.rebuild()
	r.background.Resize(r.widget.Size())
	canvas.Refresh(r.widget)
}

func (r *sceneRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
}

func (r *sceneRenderer) MinSize() fyne.Size {
	return fyne.NewSize(300, 300)
}

func (r *sceneRenderer) Destroy() {}

// ViewerWidget shows frames received from a shared board. It does not
// react to the pointer.
type ViewerWidget struct {
	widget.BaseWidget
	scene board.Scene
}

func NewViewerWidget() *ViewerWidget {
	v := &ViewerWidget{}
	v.ExtendBaseWidget(v)
	return v
}

// ShowScene replaces the displayed scene. Call it on the UI goroutine.
func (v *ViewerWidget) ShowScene(s board.Scene) {
	v.scene = s
	v.Refresh()
}

func (v *ViewerWidget) Scene() board.Scene { return v.scene }

func (v *ViewerWidget) CreateRenderer() fyne.WidgetRenderer {
	return newSceneRenderer(v, func() board.Scene { return v.scene })
}
