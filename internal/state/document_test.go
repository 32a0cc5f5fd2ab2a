package state

import (
	"errors"
	"maps"
	"math/rand"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var allowDoc = cmp.AllowUnexported(Document{})

func checkInvariants(t *testing.T, d *Document, inserted []ShapeID) {
	t.Helper()
	seq := slices.Clone(d.sequence)
	slices.Sort(seq)
	keys := slices.Sorted(maps.Keys(d.shapes))
	if diff := cmp.Diff(keys, seq, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("sequence and shapes disagree (-shapes +sequence):\n%s", diff)
	}
	for _, id := range inserted {
		if d.nextID <= id {
			t.Fatalf("nextID %d not greater than inserted id %d", d.nextID, id)
		}
	}
}

func TestGenerateID(t *testing.T) {
	d := NewDocument()
	var prev ShapeID
	seen := map[ShapeID]bool{}
	for i := 0; i < 100; i++ {
		id := d.GenerateID()
		if id <= prev {
			t.Fatalf("id %d after %d is not increasing", id, prev)
		}
		if seen[id] {
			t.Fatalf("id %d handed out twice", id)
		}
		seen[id] = true
		prev = id
	}
}

func TestUpsertGet(t *testing.T) {
	d := NewDocument()
	s := NewShape(NewRectangle(1, 2, 3, 4), Green)
	d.Upsert(7, s)

	got, ok := d.Get(7)
	if !ok {
		t.Fatal("shape 7 missing after upsert")
	}
	if diff := cmp.Diff(s, got); diff != "" {
		t.Errorf("Get mismatch (-want +got):\n%s", diff)
	}
	if d.NextID() != 8 {
		t.Errorf("NextID = %d, want 8", d.NextID())
	}
	if id := d.GenerateID(); id != 8 {
		t.Errorf("GenerateID after external upsert = %d, want 8", id)
	}
}

func TestUpsertIdempotent(t *testing.T) {
	s := NewShape(NewCircle(5, 5, 2), Blue)

	once := NewDocument()
	once.Upsert(3, s)

	twice := NewDocument()
	twice.Upsert(3, s)
	twice.Upsert(3, s)

	if diff := cmp.Diff(once, twice, allowDoc); diff != "" {
		t.Errorf("second upsert changed state (-once +twice):\n%s", diff)
	}
}

func TestUpsertExistingKeepsOrder(t *testing.T) {
	d := NewDemoDocument()
	before := d.IDs()
	d.Upsert(before[0], NewShape(NewRectangle(0, 0, 1, 1), Yellow))
	if diff := cmp.Diff(before, d.IDs()); diff != "" {
		t.Errorf("replacing a shape reordered the document:\n%s", diff)
	}
}

func TestDeleteMissingIsNoop(t *testing.T) {
	d := NewDemoDocument()
	before := d.Clone()
	d.Delete(999)
	if diff := cmp.Diff(before, d, allowDoc); diff != "" {
		t.Errorf("Delete of unknown id changed the document:\n%s", diff)
	}
}

func TestDelete(t *testing.T) {
	d := NewDemoDocument()
	d.Delete(2)
	if _, ok := d.Get(2); ok {
		t.Error("shape 2 still present")
	}
	if diff := cmp.Diff([]ShapeID{1, 3, 4, 5, 6}, d.IDs()); diff != "" {
		t.Errorf("sequence after delete:\n%s", diff)
	}
	if id := d.GenerateID(); id != 7 {
		t.Errorf("deleted ids must not be reused, got %d", id)
	}
}

func TestUpdateGeometry(t *testing.T) {
	d := NewDocument()
	d.Upsert(1, NewShape(NewRectangle(0, 0, 10, 10), Orange))
	d.UpdateGeometry(1, NewRectangle(5, 5, 10, 10))
	d.UpdateGeometry(42, NewCircle(0, 0, 1))

	want := NewShape(NewRectangle(5, 5, 10, 10), Orange)
	got, _ := d.Get(1)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("UpdateGeometry (-want +got):\n%s", diff)
	}
	if d.Len() != 1 {
		t.Errorf("UpdateGeometry on unknown id inserted a shape")
	}
}

func TestMoveToTop(t *testing.T) {
	tests := []struct {
		name string
		id   ShapeID
		want []ShapeID
	}{
		{"bottom", 1, []ShapeID{2, 3, 4, 5, 6, 1}},
		{"middle", 4, []ShapeID{1, 2, 3, 5, 6, 4}},
		{"already on top", 6, []ShapeID{1, 2, 3, 4, 5, 6}},
		{"missing", 99, []ShapeID{1, 2, 3, 4, 5, 6}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDemoDocument()
			d.MoveToTop(tt.id)
			if diff := cmp.Diff(tt.want, d.IDs()); diff != "" {
				t.Errorf("sequence (-want +got):\n%s", diff)
			}
		})
	}
}

func TestOrderedShapes(t *testing.T) {
	d := NewDemoDocument()
	d.MoveToTop(2)
	// A dangling id must be skipped.
	d.sequence = append(d.sequence, 77)

	var first []ShapeID
	for id := range d.OrderedShapes() {
		first = append(first, id)
	}
	var second []ShapeID
	for id := range d.OrderedShapes() {
		second = append(second, id)
	}
	want := []ShapeID{1, 3, 4, 5, 6, 2}
	if diff := cmp.Diff(want, first); diff != "" {
		t.Errorf("OrderedShapes (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("OrderedShapes is not restartable:\n%s", diff)
	}

	var stopped []ShapeID
	for id := range d.OrderedShapes() {
		stopped = append(stopped, id)
		if len(stopped) == 2 {
			break
		}
	}
	if len(stopped) != 2 {
		t.Errorf("early break yielded %d ids", len(stopped))
	}
}

func TestNewDocumentFromPairs(t *testing.T) {
	s := NewShape(NewRectangle(0, 0, 1, 1), Red)
	d, err := NewDocumentFromPairs([]Pair{{ID: 4, Shape: s}, {ID: 2, Shape: s}})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]ShapeID{4, 2}, d.IDs()); diff != "" {
		t.Errorf("sequence:\n%s", diff)
	}
	if d.NextID() != 5 {
		t.Errorf("NextID = %d, want 5", d.NextID())
	}

	_, err = NewDocumentFromPairs([]Pair{{ID: 1, Shape: s}, {ID: 1, Shape: s}})
	if !errors.Is(err, ErrDuplicateShapeID) {
		t.Errorf("err = %v, want ErrDuplicateShapeID", err)
	}
}

func TestInvariantsUnderRandomOps(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	d := NewDocument()
	var inserted []ShapeID
	for i := 0; i < 2000; i++ {
		id := ShapeID(rng.Intn(40))
		switch rng.Intn(5) {
		case 0, 1:
			d.Upsert(id, NewShape(NewRectangle(rng.Float64(), rng.Float64(), 1, 1), Colors[rng.Intn(len(Colors))]))
			inserted = append(inserted, id)
		case 2:
			d.Delete(id)
		case 3:
			d.UpdateGeometry(id, NewCircle(1, 1, 1))
		case 4:
			d.MoveToTop(id)
		}
		checkInvariants(t, d, inserted)
	}
}

func TestUpsertDanglingIDNotDuplicated(t *testing.T) {
	d := NewDemoDocument()
	// 7 is listed in the paint order but has no shape.
	d.sequence = append(d.sequence, 7)
	d.Upsert(7, NewShape(NewRectangle(0, 0, 5, 5), Yellow))

	if diff := cmp.Diff([]ShapeID{1, 2, 3, 4, 5, 6, 7}, d.IDs()); diff != "" {
		t.Errorf("sequence (-want +got):\n%s", diff)
	}
	checkInvariants(t, d, []ShapeID{7})
}
