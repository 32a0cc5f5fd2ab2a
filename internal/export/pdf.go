// Package export writes a rendered board scene to image and document formats.
package export

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"

	"ShapeBoard/internal/board"
	"ShapeBoard/internal/state"
)

// PDF writes the scene as a single page sized to the canvas, one point per
// canvas unit.
func PDF(w io.Writer, s board.Scene) error {
	p := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: s.Width, Ht: s.Height},
	})
	p.SetAutoPageBreak(false, 0)
	p.AddPage()

	pdfFill(p, s.Background)
	for _, prim := range s.Shapes {
		pdfFill(p, prim)
	}

	if err := p.Output(w); err != nil {
		return fmt.Errorf("writing pdf: %w", err)
	}
	return nil
}

func pdfFill(p *gofpdf.Fpdf, prim board.Primitive) {
	c := prim.FillRGBA()
	p.SetFillColor(int(c.R), int(c.G), int(c.B))
	switch g := prim.Geometry.(type) {
	case state.Rectangle:
		p.Rect(g.TopLeft.X, g.TopLeft.Y, g.Size.X, g.Size.Y, "F")
	case state.Circle:
		p.Circle(g.Center.X, g.Center.Y, g.Radius, "F")
	}
}
