package force

import "math"

// Point is a position in the layout plane.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Force is a 2D displacement vector.
type Force struct {
	DX float64
	DY float64
}

// Zero is the null force.
var Zero = Force{}

// Add returns f + g.
func (f Force) Add(g Force) Force {
	return Force{DX: f.DX + g.DX, DY: f.DY + g.DY}
}

// Div returns f scaled by 1/s.
func (f Force) Div(s float64) Force {
	return Force{DX: f.DX / s, DY: f.DY / s}
}

// Magnitude returns the Euclidean norm of f.
func (f Force) Magnitude() float64 {
	return math.Hypot(f.DX, f.DY)
}

// Angle returns atan2(DY, DX).
func (f Force) Angle() float64 {
	return math.Atan2(f.DY, f.DX)
}

// Sum adds all forces.
func Sum(forces ...Force) Force {
	total := Zero
	for _, f := range forces {
		total = total.Add(f)
	}
	return total
}
