package board

import (
	"image/color"

	"ShapeBoard/internal/state"
)

type Kind int

const (
	KindBackground Kind = iota
	KindRectangle
	KindCircle
)

func (k Kind) String() string {
	switch k {
	case KindRectangle:
		return "rect"
	case KindCircle:
		return "circle"
	default:
		return "background"
	}
}

// Primitive is one drawable item of a Scene.
type Primitive struct {
	Kind     Kind
	ID       state.ShapeID
	Geometry state.Geometry
	Fill     state.Color

	// OnPointerDown starts a gesture on this primitive. It is nil on
	// primitives that did not come from a live Controller.
	OnPointerDown func(p state.Point)
}

func (p Primitive) FillName() string { return p.Fill.String() }

func (p Primitive) FillRGBA() color.RGBA { return p.Fill.RGBA() }

// Scene is a rendered document: a background covering the whole canvas and
// the shapes bottom to top.
type Scene struct {
	Width, Height float64
	Background    Primitive
	Shapes        []Primitive
}

// HitTest returns the topmost shape containing p, or the background.
func (s Scene) HitTest(p state.Point) Primitive {
	for i := len(s.Shapes) - 1; i >= 0; i-- {
		if s.Shapes[i].Geometry.Contains(p) {
			return s.Shapes[i]
		}
	}
	return s.Background
}

// PointerDown dispatches a pointer-down at p to the primitive under it.
func (s Scene) PointerDown(p state.Point) {
	if h := s.HitTest(p).OnPointerDown; h != nil {
		h(p)
	}
}

func primitiveFor(id state.ShapeID, shape state.Shape) Primitive {
	kind := KindRectangle
	if _, ok := shape.Geometry.(state.Circle); ok {
		kind = KindCircle
	}
	return Primitive{
		Kind:     kind,
		ID:       id,
		Geometry: shape.Geometry,
		Fill:     shape.Style.Fill,
	}
}
