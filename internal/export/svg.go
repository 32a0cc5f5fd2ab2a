package export

import (
	"bytes"
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"

	"ShapeBoard/internal/board"
	"ShapeBoard/internal/state"
)

// SVG writes the scene as an SVG document. Coordinates are rounded to whole
// canvas units.
func SVG(w io.Writer, s board.Scene) error {
	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Start(round(s.Width), round(s.Height))
	svgShape(canvas, `id="background"`, s.Background)
	for _, prim := range s.Shapes {
		svgShape(canvas, fmt.Sprintf(`id="shape_%d"`, prim.ID), prim)
	}
	canvas.End()

	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("writing svg: %w", err)
	}
	return nil
}

func svgShape(canvas *svg.SVG, id string, prim board.Primitive) {
	fill := fmt.Sprintf(`fill="%s"`, prim.FillName())
	switch g := prim.Geometry.(type) {
	case state.Rectangle:
		canvas.Rect(round(g.TopLeft.X), round(g.TopLeft.Y), round(g.Size.X), round(g.Size.Y), id, fill)
	case state.Circle:
		canvas.Circle(round(g.Center.X), round(g.Center.Y), round(g.Radius), id, fill)
	}
}

func round(v float64) int { return int(math.Round(v)) }
