package force

import (
	"math"
	"math/rand/v2"
)

const (
	// MinDistance floors pairwise distance in Repulsion.
	MinDistance = 1e-6

	// Jitter is the maximum per-axis offset used to separate coincident nodes.
	Jitter = 0.05
)

// Attraction returns the spring force pulling node toward center, with
// magnitude stiffness * distance. Components are signed by comparing
// coordinates so the force always points at center.
func Attraction(node Node, center Point, stiffness float64) Force {
	dx := math.Abs(center.X - node.Pos.X)
	dy := math.Abs(center.Y - node.Pos.Y)
	magnitude := stiffness * math.Hypot(dx, dy)
	angle := math.Atan2(dy, dx)

	f := Force{
		DX: magnitude * math.Cos(angle),
		DY: magnitude * math.Sin(angle),
	}
	if node.Pos.X > center.X {
		f.DX = -f.DX
	}
	if node.Pos.Y > center.Y {
		f.DY = -f.DY
	}
	return f
}

// Repulsion sums the charge³/distance² forces every other node exerts on
// node, each directed away from the other node. The node itself is skipped
// by identity. Coincident nodes are nudged apart by a random jitter of at
// most Jitter per axis.
func Repulsion(node Node, others []Node, charge float64) Force {
	strength := charge * charge * charge
	total := Zero
	for _, other := range others {
		if node.Is(other) {
			continue
		}
		dx := node.Pos.X - other.Pos.X
		dy := node.Pos.Y - other.Pos.Y
		if dx == 0 && dy == 0 {
			dx, dy = jitter(), jitter()
		}
		distance := max(math.Hypot(dx, dy), MinDistance)
		magnitude := strength / (distance * distance)
		angle := math.Atan2(dy, dx)
		total = total.Add(Force{
			DX: magnitude * math.Cos(angle),
			DY: magnitude * math.Sin(angle),
		})
	}
	return total
}

// Global returns the net force on node: attraction toward center plus
// repulsion from others.
func Global(node Node, center Point, others []Node, stiffness, charge float64) Force {
	return Attraction(node, center, stiffness).Add(Repulsion(node, others, charge))
}

// Apply returns a copy of node displaced by f. Identity and Ref are kept.
func Apply(node Node, f Force) Node {
	node.Pos = Point{X: node.Pos.X + f.DX, Y: node.Pos.Y + f.DY}
	return node
}

func jitter() float64 {
	return (rand.Float64()*2 - 1) * Jitter
}
