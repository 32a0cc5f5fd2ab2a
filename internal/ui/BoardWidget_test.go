package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ShapeBoard/internal/board"
	"ShapeBoard/internal/state"
)

func mouse(x, y float32, button desktop.MouseButton) *desktop.MouseEvent {
	return &desktop.MouseEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)},
		Button:     button,
	}
}

func drag(x, y float32) *fyne.DragEvent {
	return &fyne.DragEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)}}
}

func newTestBoard(t *testing.T, doc *state.Document) *BoardWidget {
	t.Helper()
	test.NewTempApp(t)
	b := NewBoardWidget(board.NewController(doc, nil))
	b.Resize(fyne.NewSize(400, 300))
	return b
}

func TestDrawRectangle(t *testing.T) {
	b := newTestBoard(t, state.NewDocument())
	var published []board.Scene
	b.OnSceneChange = func(s board.Scene) { published = append(published, s) }

	b.MouseDown(mouse(10, 10, desktop.MouseButtonPrimary))
	b.Dragged(drag(30, 20))
	b.Dragged(drag(60, 40))
	b.MouseUp(mouse(60, 40, desktop.MouseButtonPrimary))

	doc := b.Controller().Document()
	require.Equal(t, 1, doc.Len())
	shape, ok := doc.Get(1)
	require.True(t, ok)
	assert.Equal(t, state.Geometry(state.NewRectangle(10, 10, 50, 30)), shape.Geometry)
	assert.Equal(t, state.Red, shape.Style.Fill)
	assert.Nil(t, b.Controller().Active())
	assert.NotEmpty(t, published)

	objects := test.WidgetRenderer(b).Objects()
	require.Len(t, objects, 2)
	rect, ok := objects[1].(*canvas.Rectangle)
	require.True(t, ok)
	assert.Equal(t, fyne.NewPos(10, 10), rect.Position())
	assert.Equal(t, fyne.NewSize(50, 30), rect.Size())
}

func TestClickDoesNotDraw(t *testing.T) {
	b := newTestBoard(t, state.NewDocument())
	b.MouseDown(mouse(10, 10, desktop.MouseButtonPrimary))
	b.MouseUp(mouse(10, 10, desktop.MouseButtonPrimary))
	assert.Equal(t, 0, b.Controller().Document().Len())
	assert.Len(t, test.WidgetRenderer(b).Objects(), 1)
}

func TestDragShape(t *testing.T) {
	b := newTestBoard(t, state.NewDemoDocument())

	b.MouseDown(mouse(45, 85, desktop.MouseButtonPrimary))
	b.Dragged(drag(200, 200))
	b.Dragged(drag(55, 95))
	b.DragEnd()

	shape, _ := b.Controller().Document().Get(6)
	assert.Equal(t, state.Geometry(state.NewRectangle(50, 90, 40, 40)), shape.Geometry)
	assert.Nil(t, b.Controller().Active())
}

func TestSecondaryClickRaisesShape(t *testing.T) {
	b := newTestBoard(t, state.NewDemoDocument())
	// (100, 225) is only inside circle 1.
	b.MouseDown(mouse(100, 225, desktop.MouseButtonSecondary))
	ids := b.Controller().Document().IDs()
	assert.Equal(t, state.ShapeID(1), ids[len(ids)-1])
	assert.Nil(t, b.Controller().Active())

	objects := test.WidgetRenderer(b).Objects()
	top, ok := objects[len(objects)-1].(*canvas.Circle)
	require.True(t, ok)
	assert.Equal(t, state.Blue.RGBA(), top.FillColor)
}

func TestCancelGesture(t *testing.T) {
	b := newTestBoard(t, state.NewDocument())
	b.MouseDown(mouse(10, 10, desktop.MouseButtonPrimary))
	b.Dragged(drag(80, 80))
	require.Equal(t, 1, b.Controller().Document().Len())

	b.CancelGesture()
	assert.Equal(t, 0, b.Controller().Document().Len())
	b.MouseUp(mouse(90, 90, desktop.MouseButtonPrimary))
	assert.Equal(t, 0, b.Controller().Document().Len(), "pointer-up after cancel must not draw")
}

func TestNewBoard(t *testing.T) {
	b := newTestBoard(t, state.NewDemoDocument())
	b.NewBoard(state.NewDocument())
	assert.Empty(t, b.Scene().Shapes)
	assert.Len(t, test.WidgetRenderer(b).Objects(), 1)
}

func TestResizeUpdatesScene(t *testing.T) {
	b := newTestBoard(t, state.NewDocument())
	b.Resize(fyne.NewSize(640, 480))
	assert.Equal(t, 640.0, b.Scene().Width)
	assert.Equal(t, 480.0, b.Scene().Height)
}

func TestViewerWidget(t *testing.T) {
	test.NewTempApp(t)
	v := NewViewerWidget()
	assert.Len(t, test.WidgetRenderer(v).Objects(), 1)

	c := board.NewController(state.NewDemoDocument(), nil)
	v.ShowScene(c.Render())
	assert.Len(t, test.WidgetRenderer(v).Objects(), 7)
}

func TestToolbarSync(t *testing.T) {
	b := newTestBoard(t, state.NewDocument())
	tb := NewToolbar(b, test.NewWindow(nil))
	assert.Equal(t, "red", tb.fill.Text)

	tb.swatch.Tapped(&fyne.PointEvent{})
	assert.Equal(t, "orange", tb.fill.Text)

	b.MouseDown(mouse(0, 0, desktop.MouseButtonPrimary))
	b.MouseUp(mouse(5, 5, desktop.MouseButtonPrimary))
	tb.Sync()
	assert.Equal(t, "yellow", tb.fill.Text)
	shape, _ := b.Controller().Document().Get(1)
	assert.Equal(t, state.Orange, shape.Style.Fill)
}
