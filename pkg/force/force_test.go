package force

import (
	"math"
	"testing"
)

const eps = 1e-9

func approx(a, b float64) bool { return math.Abs(a-b) <= eps*math.Max(1, math.Abs(b)) }

func TestForceArithmetic(t *testing.T) {
	f := Force{DX: 3, DY: 4}

	if got := f.Magnitude(); got != 5 {
		t.Errorf("Magnitude() = %v, want 5", got)
	}
	if got := f.Add(Force{DX: 1, DY: -2}); got != (Force{DX: 4, DY: 2}) {
		t.Errorf("Add() = %v, want {4 2}", got)
	}
	if got := f.Div(2); got != (Force{DX: 1.5, DY: 2}) {
		t.Errorf("Div() = %v, want {1.5 2}", got)
	}
	if got := (Force{DX: 0, DY: 1}).Angle(); !approx(got, math.Pi/2) {
		t.Errorf("Angle() = %v, want pi/2", got)
	}
	if got := Sum(f, f, Zero); got != (Force{DX: 6, DY: 8}) {
		t.Errorf("Sum() = %v, want {6 8}", got)
	}
}

func TestNodeIdentity(t *testing.T) {
	a := NewNode(0, 1, 1)
	b := NewNode(0, 1, 1)
	if a.Is(b) {
		t.Error("distinct nodes at the same position compare equal")
	}
	moved := Apply(a, Force{DX: 5, DY: 5})
	if !moved.Is(a) {
		t.Error("Apply changed node identity")
	}
	if moved.Ref != a.Ref {
		t.Errorf("Apply changed Ref: %d -> %d", a.Ref, moved.Ref)
	}
	if moved.Pos != (Point{X: 6, Y: 6}) {
		t.Errorf("Apply position = %v, want {6 6}", moved.Pos)
	}
}

func TestAttractionPointsToCenter(t *testing.T) {
	center := Point{X: 0, Y: 0}
	tests := []struct {
		name   string
		x, y   float64
		signDX float64
		signDY float64
	}{
		{name: "quadrant I", x: 10, y: 5, signDX: -1, signDY: -1},
		{name: "quadrant II", x: -10, y: 5, signDX: 1, signDY: -1},
		{name: "quadrant III", x: -10, y: -5, signDX: 1, signDY: 1},
		{name: "quadrant IV", x: 10, y: -5, signDX: -1, signDY: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := NewNode(0, tt.x, tt.y)
			f := Attraction(n, center, 0.1)
			if math.Signbit(f.DX) != (tt.signDX < 0) || math.Signbit(f.DY) != (tt.signDY < 0) {
				t.Errorf("Attraction = %+v, want signs (%v, %v)", f, tt.signDX, tt.signDY)
			}
			want := 0.1 * math.Hypot(tt.x, tt.y)
			if !approx(f.Magnitude(), want) {
				t.Errorf("magnitude = %v, want %v", f.Magnitude(), want)
			}
		})
	}
}

func TestAttractionAtCenterIsZero(t *testing.T) {
	f := Attraction(NewNode(0, 3, 3), Point{X: 3, Y: 3}, 0.5)
	if f.Magnitude() != 0 {
		t.Errorf("Attraction at center = %+v, want zero", f)
	}
}

func TestAttractionMonotonic(t *testing.T) {
	center := Point{X: 100, Y: 100}

	prev := -1.0
	for d := 1.0; d <= 500; d *= 2 {
		got := Attraction(NewNode(0, 100+d, 100+d/3), center, 0.02).Magnitude()
		if got <= prev {
			t.Fatalf("magnitude at distance %v = %v, not greater than %v", d, got, prev)
		}
		prev = got
	}

	prev = -1.0
	n := NewNode(0, 150, 80)
	for k := 0.01; k <= 1; k *= 2 {
		got := Attraction(n, center, k).Magnitude()
		if got <= prev {
			t.Fatalf("magnitude at stiffness %v = %v, not greater than %v", k, got, prev)
		}
		prev = got
	}
}

func TestRepulsionSymmetry(t *testing.T) {
	a := NewNode(0, 10, 20)
	b := NewNode(1, 40, 60)

	fa := Repulsion(a, []Node{b}, 10)
	fb := Repulsion(b, []Node{a}, 10)

	if !approx(fa.Magnitude(), fb.Magnitude()) {
		t.Errorf("magnitudes differ: %v vs %v", fa.Magnitude(), fb.Magnitude())
	}
	if !approx(fa.DX, -fb.DX) || !approx(fa.DY, -fb.DY) {
		t.Errorf("forces not opposite: %+v vs %+v", fa, fb)
	}
	// 10³ / 50² = 0.4
	if !approx(fa.Magnitude(), 0.4) {
		t.Errorf("magnitude = %v, want 0.4", fa.Magnitude())
	}
	// a is below-left of b, so it is pushed further down-left.
	if fa.DX >= 0 || fa.DY >= 0 {
		t.Errorf("force on a = %+v, want pointing away from b", fa)
	}
}

func TestRepulsionSkipsSelf(t *testing.T) {
	a := NewNode(0, 5, 5)
	if f := Repulsion(a, []Node{a}, 10); f != Zero {
		t.Errorf("self repulsion = %+v, want zero", f)
	}

	// A copy with the same identity is still the node itself.
	moved := Apply(a, Force{DX: 1})
	if f := Repulsion(a, []Node{moved}, 10); f != Zero {
		t.Errorf("repulsion from same identity = %+v, want zero", f)
	}
}

func TestRepulsionCoincidentNodes(t *testing.T) {
	a := NewNode(0, 7, 7)
	b := NewNode(1, 7, 7)

	for i := 0; i < 100; i++ {
		f := Repulsion(a, []Node{b}, 10)
		for _, v := range []float64{f.DX, f.DY} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Fatalf("coincident repulsion = %+v, want finite", f)
			}
		}
		if f.Magnitude() == 0 {
			t.Fatalf("coincident repulsion = %+v, want non-zero", f)
		}
	}
}

func TestGlobalIsSum(t *testing.T) {
	center := Point{X: 0, Y: 0}
	a := NewNode(0, 30, -10)
	others := []Node{a, NewNode(1, -20, 5), NewNode(2, 4, 40)}

	got := Global(a, center, others, 0.02, 10)
	want := Attraction(a, center, 0.02).Add(Repulsion(a, others, 10))
	if !approx(got.DX, want.DX) || !approx(got.DY, want.DY) {
		t.Errorf("Global = %+v, want %+v", got, want)
	}
}
