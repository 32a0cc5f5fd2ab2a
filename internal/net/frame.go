package net

import (
	"ShapeBoard/internal/board"
	"ShapeBoard/internal/state"
)

// Frame is one rendered scene as sent to live viewers. It describes what is
// drawn, not the document it was drawn from.
type Frame struct {
	Site       string           `json:"site"`
	Seq        uint64           `json:"seq"`
	Width      float64          `json:"width"`
	Height     float64          `json:"height"`
	Primitives []FramePrimitive `json:"primitives"`
}

type FramePrimitive struct {
	Kind string  `json:"kind"`
	ID   uint64  `json:"id"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	W    float64 `json:"w,omitempty"`
	H    float64 `json:"h,omitempty"`
	R    float64 `json:"r,omitempty"`
	Fill string  `json:"fill"`
}

// NewFrame stamps scene with the next tick of clock.
func NewFrame(clock *state.FrameClock, scene board.Scene) Frame {
	f := Frame{
		Site:       clock.Site(),
		Seq:        clock.Tick(),
		Width:      scene.Width,
		Height:     scene.Height,
		Primitives: make([]FramePrimitive, 0, len(scene.Shapes)),
	}
	for _, p := range scene.Shapes {
		fp := FramePrimitive{Kind: p.Kind.String(), ID: uint64(p.ID), Fill: p.FillName()}
		switch g := p.Geometry.(type) {
		case state.Rectangle:
			fp.X, fp.Y, fp.W, fp.H = g.TopLeft.X, g.TopLeft.Y, g.Size.X, g.Size.Y
		case state.Circle:
			fp.X, fp.Y, fp.R = g.Center.X, g.Center.Y, g.Radius
		}
		f.Primitives = append(f.Primitives, fp)
	}
	return f
}

// Scene rebuilds a read-only scene from the frame. Primitives of unknown
// kind are skipped and unknown fill names draw black.
func (f Frame) Scene() board.Scene {
	s := board.Scene{
		Width:  f.Width,
		Height: f.Height,
		Background: board.Primitive{
			Kind:     board.KindBackground,
			Geometry: state.NewRectangle(0, 0, f.Width, f.Height),
			Fill:     state.White,
		},
	}
	for _, fp := range f.Primitives {
		fill, _ := state.ParseColor(fp.Fill)
		p := board.Primitive{ID: state.ShapeID(fp.ID), Fill: fill}
		switch fp.Kind {
		case board.KindRectangle.String():
			p.Kind = board.KindRectangle
			p.Geometry = state.NewRectangle(fp.X, fp.Y, fp.W, fp.H)
		case board.KindCircle.String():
			p.Kind = board.KindCircle
			p.Geometry = state.NewCircle(fp.X, fp.Y, fp.R)
		default:
			continue
		}
		s.Shapes = append(s.Shapes, p)
	}
	return s
}
