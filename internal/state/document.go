package state

import (
	"errors"
	"fmt"
	"iter"
	"slices"
)

// ShapeID identifies a shape within one Document. IDs are never reused.
type ShapeID uint64

var ErrDuplicateShapeID = errors.New("duplicate shape id")

// Pair is a shape together with the id it is stored under.
type Pair struct {
	ID    ShapeID
	Shape Shape
}

// Document holds the shapes on a board and their paint order.
//
// sequence lists ids bottom to top and always holds exactly the keys of
// shapes. nextID is greater than every id ever inserted or generated.
// A Document is not safe for concurrent use; it is owned by the board's
// event loop.
type Document struct {
	shapes   map[ShapeID]Shape
	sequence []ShapeID
	nextID   ShapeID
}

func NewDocument() *Document {
	return &Document{
		shapes: make(map[ShapeID]Shape),
		nextID: 1,
	}
}

// NewDocumentFromPairs builds a document from pairs listed bottom to top.
func NewDocumentFromPairs(pairs []Pair) (*Document, error) {
	d := NewDocument()
	for _, p := range pairs {
		if _, exists := d.shapes[p.ID]; exists {
			return nil, fmt.Errorf("building document: %w: %d", ErrDuplicateShapeID, p.ID)
		}
		d.Upsert(p.ID, p.Shape)
	}
	return d, nil
}

// NewDocumentFromShapes assigns fresh ids to shapes, bottom to top.
func NewDocumentFromShapes(shapes []Shape) *Document {
	d := NewDocument()
	for _, s := range shapes {
		d.Upsert(d.GenerateID(), s)
	}
	return d
}

// NewDemoDocument returns the document shown on a fresh board.
func NewDemoDocument() *Document {
	return NewDocumentFromShapes([]Shape{
		NewShape(NewCircle(100, 150, 80), Blue),
		NewShape(NewCircle(120, 120, 100), Red),
		NewShape(NewCircle(200, 90, 70), Indigo),
		NewShape(NewRectangle(250, 80, 200, 20), Violet),
		NewShape(NewRectangle(0, 0, 40, 40), Black),
		NewShape(NewRectangle(40, 80, 40, 40), Green),
	})
}

func (d *Document) GenerateID() ShapeID {
	id := d.nextID
	d.nextID++
	return id
}

// NextID returns the id GenerateID would hand out next.
func (d *Document) NextID() ShapeID { return d.nextID }

// Upsert stores shape under id. A new id goes on top of the paint order.
func (d *Document) Upsert(id ShapeID, shape Shape) {
	if !slices.Contains(d.sequence, id) {
		d.sequence = append(d.sequence, id)
	}
	d.shapes[id] = shape
	if d.nextID <= id {
		d.nextID = id + 1
	}
}

// Delete removes id. Deleting an unknown id does nothing.
func (d *Document) Delete(id ShapeID) {
	if _, exists := d.shapes[id]; !exists {
		return
	}
	if i := slices.Index(d.sequence, id); i >= 0 {
		d.sequence = slices.Delete(d.sequence, i, i+1)
	}
	delete(d.shapes, id)
}

// UpdateGeometry replaces the geometry of id, keeping its style.
func (d *Document) UpdateGeometry(id ShapeID, g Geometry) {
	s, ok := d.shapes[id]
	if !ok {
		return
	}
	s.Geometry = g
	d.shapes[id] = s
}

// MoveToTop moves id to the end of the paint order.
func (d *Document) MoveToTop(id ShapeID) {
	i := slices.Index(d.sequence, id)
	if i < 0 || i == len(d.sequence)-1 {
		return
	}
	d.sequence = append(slices.Delete(d.sequence, i, i+1), id)
}

func (d *Document) Get(id ShapeID) (Shape, bool) {
	s, ok := d.shapes[id]
	return s, ok
}

func (d *Document) Len() int { return len(d.sequence) }

// IDs returns a copy of the paint order, bottom to top.
func (d *Document) IDs() []ShapeID {
	return slices.Clone(d.sequence)
}

// OrderedShapes yields shapes bottom to top. Ranging over it again starts
// from the bottom.
func (d *Document) OrderedShapes() iter.Seq2[ShapeID, Shape] {
	return func(yield func(ShapeID, Shape) bool) {
		for _, id := range d.sequence {
			s, ok := d.shapes[id]
			if !ok {
				continue
			}
			if !yield(id, s) {
				return
			}
		}
	}
}

func (d *Document) Clone() *Document {
	c := &Document{
		shapes:   make(map[ShapeID]Shape, len(d.shapes)),
		sequence: slices.Clone(d.sequence),
		nextID:   d.nextID,
	}
	for id, s := range d.shapes {
		c.shapes[id] = s
	}
	return c
}
