package pipeline

import (
	"math"
	"testing"

	"github.com/matzehuels/forcelayout/pkg/force"
)

func ptr(v float64) *float64 { return &v }

func TestAttributeCacheEvict(t *testing.T) {
	c := NewAttributeCache()
	for key := 0; key < 5; key++ {
		c.Put(key, Attributes{Position: force.Point{X: float64(key)}})
	}

	if removed := c.Evict(3); removed != 2 {
		t.Errorf("Evict(3) removed %d, want 2", removed)
	}
	if c.Len() != 3 {
		t.Errorf("Len() = %d, want 3", c.Len())
	}
	if _, ok := c.Get(4); ok {
		t.Error("key 4 should have been evicted")
	}
	if a, ok := c.Get(2); !ok || a.Position.X != 2 {
		t.Errorf("Get(2) = %+v, %v; want kept", a, ok)
	}
}

func TestAttributeCacheSetPosition(t *testing.T) {
	c := NewAttributeCache()
	c.Put(0, Attributes{Width: 10, Height: 4})
	c.SetPosition(0, force.Point{X: 1, Y: 2})

	a, _ := c.Get(0)
	if a.Width != 10 || a.Height != 4 || a.Position != (force.Point{X: 1, Y: 2}) {
		t.Errorf("Get(0) = %+v", a)
	}

	snap := c.Snapshot()
	snap[0] = Attributes{}
	if a, _ := c.Get(0); a.Width != 10 {
		t.Error("Snapshot should be a copy")
	}
}

func TestPlaceUnseen(t *testing.T) {
	bounds := Bounds{Width: 200, Height: 100}
	elements := []Element{
		{ID: "random-a", Width: 10, Height: 5},
		{ID: "pinned", X: ptr(7), Y: ptr(9)},
		{ID: "cached", Width: 3},
		{ID: "random-b"},
	}

	c := NewAttributeCache()
	c.Put(2, Attributes{Position: force.Point{X: 50, Y: 50}})

	placed := PlaceUnseen(c, elements, bounds, newRand(1))
	if placed != 2 {
		t.Errorf("placed = %d, want 2", placed)
	}

	if a, _ := c.Get(1); a.Position != (force.Point{X: 7, Y: 9}) {
		t.Errorf("pinned element at %+v, want {7 9}", a.Position)
	}
	if a, _ := c.Get(2); a.Position != (force.Point{X: 50, Y: 50}) || a.Width != 3 {
		t.Errorf("cached element = %+v, want position kept and width refreshed", a)
	}
	for _, key := range []int{0, 3} {
		a, ok := c.Get(key)
		if !ok {
			t.Fatalf("key %d not placed", key)
		}
		p := a.Position
		if p.X < 0 || p.X > bounds.Width || p.Y < 0 || p.Y > bounds.Height || math.IsNaN(p.X) {
			t.Errorf("key %d placed at %+v, outside bounds", key, p)
		}
	}
}

func TestPlaceUnseenDeterministic(t *testing.T) {
	elements := make([]Element, 10)
	bounds := Bounds{Width: 800, Height: 600}

	a, b := NewAttributeCache(), NewAttributeCache()
	PlaceUnseen(a, elements, bounds, newRand(42))
	PlaceUnseen(b, elements, bounds, newRand(42))

	for key := range elements {
		pa, _ := a.Get(key)
		pb, _ := b.Get(key)
		if pa != pb {
			t.Errorf("key %d: %+v != %+v with the same seed", key, pa, pb)
		}
	}
}
