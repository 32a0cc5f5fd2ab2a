package state

import "math"

// Point is a position or a displacement on the canvas.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func Pt(x, y float64) Point { return Point{X: x, Y: y} }

func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

// Geometry is either a Rectangle or a Circle. The set of variants is closed.
type Geometry interface {
	// OffsetBy returns the geometry translated by delta.
	OffsetBy(delta Point) Geometry
	// Contains reports whether p lies inside the geometry.
	Contains(p Point) bool
	// Bounds returns the top-left corner and size of the bounding box.
	Bounds() (topLeft, size Point)

	geometry()
}

// Rectangle is an axis-aligned rectangle. A rectangle stored in a Document
// always has a strictly positive size.
type Rectangle struct {
	TopLeft Point
	Size    Point
}

type Circle struct {
	Center Point
	Radius float64
}

var (
	_ Geometry = Rectangle{}
	_ Geometry = Circle{}
)

func NewRectangle(left, top, width, height float64) Rectangle {
	return Rectangle{TopLeft: Pt(left, top), Size: Pt(width, height)}
}

func NewCircle(cx, cy, radius float64) Circle {
	return Circle{Center: Pt(cx, cy), Radius: radius}
}

func (r Rectangle) geometry() {}
func (c Circle) geometry()    {}

func (r Rectangle) OffsetBy(delta Point) Geometry {
	return Rectangle{TopLeft: r.TopLeft.Add(delta), Size: r.Size}
}

func (c Circle) OffsetBy(delta Point) Geometry {
	return Circle{Center: c.Center.Add(delta), Radius: c.Radius}
}

func (r Rectangle) Contains(p Point) bool {
	return p.X >= r.TopLeft.X && p.X <= r.TopLeft.X+r.Size.X &&
		p.Y >= r.TopLeft.Y && p.Y <= r.TopLeft.Y+r.Size.Y
}

func (c Circle) Contains(p Point) bool {
	return math.Hypot(p.X-c.Center.X, p.Y-c.Center.Y) <= c.Radius
}

func (r Rectangle) Bounds() (Point, Point) { return r.TopLeft, r.Size }

func (c Circle) Bounds() (Point, Point) {
	return Pt(c.Center.X-c.Radius, c.Center.Y-c.Radius), Pt(2*c.Radius, 2*c.Radius)
}

// Empty reports whether the rectangle has no area.
func (r Rectangle) Empty() bool {
	return !(r.Size.X > 0 && r.Size.Y > 0)
}

// RectangleBetween returns the rectangle spanned by two opposite corners,
// normalised so that the size is non-negative.
func RectangleBetween(a, b Point) Rectangle {
	minX, spanX := minSpan(a.X, b.X)
	minY, spanY := minSpan(a.Y, b.Y)
	return Rectangle{TopLeft: Pt(minX, minY), Size: Pt(spanX, spanY)}
}

func minSpan(a, b float64) (float64, float64) {
	if a < b {
		return a, b - a
	}
	return b, a - b
}

type Style struct {
	Fill Color
}

// Shape pairs a geometry with its style. Shapes are values; a document
// changes a shape by replacing it.
type Shape struct {
	Geometry Geometry
	Style    Style
}

func NewShape(g Geometry, fill Color) Shape {
	return Shape{Geometry: g, Style: Style{Fill: fill}}
}
