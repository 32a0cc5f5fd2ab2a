package export

import (
	"fmt"
	"image"
	"io"
	"math"

	"github.com/fogleman/gg"

	"ShapeBoard/internal/board"
	"ShapeBoard/internal/state"
)

// Raster draws the scene into an image the size of the canvas.
func Raster(s board.Scene) image.Image {
	dc := gg.NewContext(int(math.Ceil(s.Width)), int(math.Ceil(s.Height)))
	rasterFill(dc, s.Background)
	for _, prim := range s.Shapes {
		rasterFill(dc, prim)
	}
	return dc.Image()
}

// PNG writes Raster(s) as a PNG image.
func PNG(w io.Writer, s board.Scene) error {
	dc := gg.NewContextForImage(Raster(s))
	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("writing png: %w", err)
	}
	return nil
}

func rasterFill(dc *gg.Context, prim board.Primitive) {
	switch g := prim.Geometry.(type) {
	case state.Rectangle:
		dc.DrawRectangle(g.TopLeft.X, g.TopLeft.Y, g.Size.X, g.Size.Y)
	case state.Circle:
		dc.DrawCircle(g.Center.X, g.Center.Y, g.Radius)
	default:
		return
	}
	dc.SetColor(prim.FillRGBA())
	dc.Fill()
}
