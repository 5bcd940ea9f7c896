package pipeline

import (
	"math/rand/v2"

	"github.com/matzehuels/forcelayout/pkg/force"
)

// Element is the host's snapshot of one laid-out item. Its key is its index
// in the element slice passed to Runner.Run.
type Element struct {
	ID     string
	Label  string
	Width  float64
	Height float64

	// X and Y optionally pin the starting center of a new element.
	X *float64
	Y *float64
}

// HasPosition reports whether the element carries an explicit position.
func (e Element) HasPosition() bool {
	return e.X != nil && e.Y != nil
}

// PlaceUnseen makes sure every element has a cache entry. Elements already
// cached keep their position and get their size refreshed; new elements use
// their explicit position when set and otherwise a uniformly random point
// inside bounds. It returns the number of randomly placed elements.
func PlaceUnseen(cache *AttributeCache, elements []Element, bounds Bounds, rng *rand.Rand) int {
	placed := 0
	for key, el := range elements {
		attrs, ok := cache.Get(key)
		switch {
		case ok:
			// keep the position carried over from earlier runs
		case el.HasPosition():
			attrs.Position = force.Point{X: *el.X, Y: *el.Y}
		default:
			attrs.Position = force.Point{
				X: rng.Float64() * bounds.Width,
				Y: rng.Float64() * bounds.Height,
			}
			placed++
		}
		attrs.Width = el.Width
		attrs.Height = el.Height
		cache.Put(key, attrs)
	}
	return placed
}

// newRand returns the seeded generator used for initial placement.
func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
}
