package paths

import (
	"math"
	"testing"
)

var testLines = []Line{
	{A: 1, B: 2, C: 3},
	{A: 5, B: -1, C: 2},
	{A: -1, B: -1, C: 4},
	{A: 0, B: 2, C: 1},
	{A: 3, B: 0, C: -2},
	{A: 0.001, B: 7, C: 0.5},
}

var testPoints = []Vec2{
	{0, 0}, {1, 0}, {0, 1}, {-3, 7}, {12.5, -0.25}, {1e3, -1e3},
}

func vecNear(a, b Vec2, eps float64) bool {
	return math.Abs(a[0]-b[0]) <= eps && math.Abs(a[1]-b[1]) <= eps
}

func TestLineOrigin(t *testing.T) {
	for _, l := range testLines {
		o := l.Origin()
		if d := math.Abs(l.A*o[0] + l.B*o[1] + l.C); d > 1e-9 {
			t.Errorf("%v.Origin() = %v not on line (residual %g)", l, o, d)
		}
		// The origin is the projection of (0, 0), so the offset from
		// (0, 0) must be parallel to the normal.
		if c := o.Cross(l.Normal()); math.Abs(c) > 1e-9 {
			t.Errorf("%v.Origin() = %v not along the normal", l, o)
		}
	}
}

func TestLineFrameAxes(t *testing.T) {
	for _, l := range testLines {
		if d := l.Tangent().Dot(l.Normal()); d != 0 {
			t.Errorf("%v: tangent not perpendicular to normal (dot %g)", l, d)
		}
	}
}

func TestLineMapUnmap(t *testing.T) {
	for _, l := range testLines {
		for _, p := range testPoints {
			got := l.Unmap(l.Map(p))
			if !vecNear(got, p, 1e-6) {
				t.Errorf("%v: Unmap(Map(%v)) = %v", l, p, got)
			}
		}
	}
}

func TestLineRemap(t *testing.T) {
	for _, l1 := range testLines {
		for _, l2 := range testLines {
			for _, p := range testPoints {
				got := l2.Unmap(l1.Remap(l2, l1.Map(p)))
				if !vecNear(got, p, 1e-6) {
					t.Errorf("remap %v -> %v of %v: got %v", l1, l2, p, got)
				}
			}
		}
	}
}

func TestLineMapOnLine(t *testing.T) {
	// Points on the line itself have zero normal coordinate.
	for _, l := range testLines {
		for _, p := range testPoints {
			proj := l.Project(p)
			c := l.Map(proj)
			if math.Abs(c.T) > 1e-6 {
				t.Errorf("%v: Map(%v).T = %g, want 0", l, proj, c.T)
			}
		}
	}
}
