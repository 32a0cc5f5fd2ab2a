package board

import (
	"log"

	"ShapeBoard/internal/state"
)

const (
	DefaultWidth  = 1200
	DefaultHeight = 900
)

// Controller routes pointer events to at most one active Tracker and
// renders the document. It must be driven from a single goroutine.
type Controller struct {
	doc    *state.Document
	colors *state.ColorCycler
	active Tracker
	last   state.Point

	width, height float64

	// OnChange is called with a fresh scene whenever an event may have
	// changed the document.
	OnChange func(Scene)
}

func NewController(doc *state.Document, colors *state.ColorCycler) *Controller {
	if doc == nil {
		doc = state.NewDocument()
	}
	if colors == nil {
		colors = state.NewColorCycler()
	}
	return &Controller{
		doc:    doc,
		colors: colors,
		width:  DefaultWidth,
		height: DefaultHeight,
	}
}

func (c *Controller) Document() *state.Document { return c.doc }

// Colors returns the cycler that picks fills for new rectangles.
func (c *Controller) Colors() *state.ColorCycler { return c.colors }

// Active returns the installed tracker, or nil when idle.
func (c *Controller) Active() Tracker { return c.active }

func (c *Controller) SetSize(width, height float64) {
	c.width, c.height = width, height
	c.changed()
}

// Reset replaces the document, abandoning any gesture in progress.
func (c *Controller) Reset(doc *state.Document) {
	c.active = nil
	c.doc = doc
	c.changed()
}

// PointerDownBackground starts drawing a new rectangle at p.
func (c *Controller) PointerDownBackground(p state.Point) {
	c.finishStale()
	id := c.doc.GenerateID()
	style := state.Style{Fill: c.colors.NextNonWhiteAndAdvance()}
	c.install(NewCreateRectTracker(p, id, style), p)
	log.Printf("[BOARD] Creating rectangle %d (%s) at (%.1f, %.1f)", id, style.Fill, p.X, p.Y)
}

// PointerDownShape starts dragging shape id from p.
func (c *Controller) PointerDownShape(id state.ShapeID, p state.Point) {
	c.finishStale()
	shape, ok := c.doc.Get(id)
	if !ok {
		log.Printf("[BOARD] Ignoring drag of unknown shape %d", id)
		return
	}
	c.install(NewDragTracker(p, id, shape.Geometry), p)
	log.Printf("[BOARD] Dragging shape %d from (%.1f, %.1f)", id, p.X, p.Y)
}

// PointerMove forwards p to the active tracker, if any.
func (c *Controller) PointerMove(p state.Point) {
	if c.active == nil {
		return
	}
	c.last = p
	if TrackMove(c.doc, c.active, p) == Done {
		c.active = nil
	}
	c.changed()
}

// PointerUp finishes the active gesture at p.
func (c *Controller) PointerUp(p state.Point) {
	if c.active == nil {
		return
	}
	t := c.active
	c.active = nil
	c.last = p
	TrackFinish(c.doc, t, p)
	c.changed()
}

// Release finishes the active gesture at the last seen pointer position.
// Toolkits that report the end of a drag without a position use it.
func (c *Controller) Release() {
	c.PointerUp(c.last)
}

// Cancel abandons the active gesture and reverts its effect.
func (c *Controller) Cancel() {
	if c.active == nil {
		return
	}
	t := c.active
	c.active = nil
	TrackCancel(c.doc, t)
	a := t.AnchorPoint()
	log.Printf("[BOARD] Gesture started at (%.1f, %.1f) cancelled", a.X, a.Y)
	c.changed()
}

// BringToFront raises shape id to the top of the paint order.
func (c *Controller) BringToFront(id state.ShapeID) {
	c.doc.MoveToTop(id)
	c.changed()
}

// Render turns the document into a scene, bottom to top, with pointer-down
// handlers bound to this controller.
func (c *Controller) Render() Scene {
	s := Scene{
		Width:  c.width,
		Height: c.height,
		Background: Primitive{
			Kind:          KindBackground,
			Geometry:      state.NewRectangle(0, 0, c.width, c.height),
			Fill:          state.White,
			OnPointerDown: c.PointerDownBackground,
		},
		Shapes: make([]Primitive, 0, c.doc.Len()),
	}
	for id, shape := range c.doc.OrderedShapes() {
		p := primitiveFor(id, shape)
		p.OnPointerDown = func(at state.Point) { c.PointerDownShape(id, at) }
		s.Shapes = append(s.Shapes, p)
	}
	return s
}

func (c *Controller) install(t Tracker, p state.Point) {
	c.active = t
	c.last = p
	c.changed()
}

// finishStale ends a gesture whose pointer-up never arrived, for example
// because the button was released outside the window.
func (c *Controller) finishStale() {
	if c.active == nil {
		return
	}
	t := c.active
	a := t.AnchorPoint()
	log.Printf("[BOARD] Finishing stale gesture from (%.1f, %.1f) at (%.1f, %.1f)", a.X, a.Y, c.last.X, c.last.Y)
	c.active = nil
	TrackFinish(c.doc, t, c.last)
}

func (c *Controller) changed() {
	if c.OnChange != nil {
		c.OnChange(c.Render())
	}
}
