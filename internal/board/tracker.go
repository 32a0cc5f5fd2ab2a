// Package board implements pointer gestures on a shape document and renders
// the document into a scene of drawable primitives.
package board

import "ShapeBoard/internal/state"

// Next tells the controller whether a tracker wants further move events.
type Next int

const (
	Continue Next = iota
	Done
)

// Tracker owns one pointer gesture from pointer-down to pointer-up. It is
// either a *CreateRectTracker or a *DragTracker.
type Tracker interface {
	AnchorPoint() state.Point
	tracker()
}

// CreateRectTracker sizes a new rectangle between the anchor and the pointer.
type CreateRectTracker struct {
	Anchor state.Point
	ID     state.ShapeID
	Style  state.Style
}

// DragTracker translates an existing shape by the pointer's total
// displacement from the anchor.
type DragTracker struct {
	Anchor  state.Point
	ID      state.ShapeID
	Initial state.Geometry
}

func NewCreateRectTracker(anchor state.Point, id state.ShapeID, style state.Style) *CreateRectTracker {
	return &CreateRectTracker{Anchor: anchor, ID: id, Style: style}
}

func NewDragTracker(anchor state.Point, id state.ShapeID, initial state.Geometry) *DragTracker {
	return &DragTracker{Anchor: anchor, ID: id, Initial: initial}
}

func (t *CreateRectTracker) AnchorPoint() state.Point { return t.Anchor }
func (t *DragTracker) AnchorPoint() state.Point       { return t.Anchor }

func (*CreateRectTracker) tracker() {}
func (*DragTracker) tracker()       {}

// TrackMove applies the gesture for pointer position p.
func TrackMove(doc *state.Document, t Tracker, p state.Point) Next {
	apply(doc, t, p)
	return Continue
}

// TrackFinish applies the gesture for the final pointer position p. There is
// no separate commit: the document already holds the result.
func TrackFinish(doc *state.Document, t Tracker, p state.Point) {
	apply(doc, t, p)
}

// TrackCancel undoes the gesture's effect on the document.
func TrackCancel(doc *state.Document, t Tracker) {
	switch t := t.(type) {
	case *CreateRectTracker:
		doc.Delete(t.ID)
	case *DragTracker:
		doc.UpdateGeometry(t.ID, t.Initial)
	}
}

func apply(doc *state.Document, t Tracker, p state.Point) {
	switch t := t.(type) {
	case *CreateRectTracker:
		r := state.RectangleBetween(t.Anchor, p)
		if r.Empty() {
			doc.Delete(t.ID)
			return
		}
		doc.Upsert(t.ID, state.Shape{Geometry: r, Style: t.Style})
	case *DragTracker:
		delta := p.Sub(t.Anchor)
		doc.UpdateGeometry(t.ID, t.Initial.OffsetBy(delta))
	}
}
