package paths

import "math"

// A Line is the set of points (x, y) satisfying A*x + B*y + C = 0.
// The coefficients are not normalised to unit length.
type Line struct {
	A, B, C float64
}

// A Coord locates a point relative to a particular line: S runs
// along the line's tangent and T along its normal, both measured from
// the line's origin. A Coord is only meaningful together with the
// Line instance that produced it.
type Coord struct {
	S, T float64
}

// Origin returns the orthogonal projection of the cartesian origin
// onto the line.
func (l Line) Origin() Vec2 {
	d := l.A*l.A + l.B*l.B
	return Vec2{-l.A * l.C / d, -l.B * l.C / d}
}

// Tangent returns a direction vector along the line. It is not unit
// length unless the coefficients are normalised.
func (l Line) Tangent() Vec2 {
	return Vec2{-l.B, l.A}
}

// Normal returns a direction vector perpendicular to the line.
func (l Line) Normal() Vec2 {
	return Vec2{l.A, l.B}
}

// Project returns the orthogonal projection of p onto the line.
func (l Line) Project(p Vec2) Vec2 {
	d := l.A*l.A + l.B*l.B
	t := (l.A*p[0] + l.B*p[1] + l.C) / d
	return p.Sub(l.Normal().Scale(t))
}

// Map converts a cartesian point into the line's own coordinate
// frame. The tangent coordinate is recovered from whichever of A and
// B has the larger magnitude, so no near-zero coefficient is ever
// used as a divisor.
func (l Line) Map(p Vec2) Coord {
	d := l.A*l.A + l.B*l.B
	t := (l.A*p[0] + l.B*p[1] + l.C) / d
	o := l.Origin()
	var s float64
	if math.Abs(l.A) >= math.Abs(l.B) {
		s = (p[1] - o[1] - t*l.B) / l.A
	} else {
		s = -(p[0] - o[0] - t*l.A) / l.B
	}
	return Coord{S: s, T: t}
}

// Unmap is the exact inverse of Map: it converts a coordinate in the
// line's frame back into a cartesian point.
func (l Line) Unmap(c Coord) Vec2 {
	o := l.Origin()
	return Vec2{
		o[0] - c.S*l.B + c.T*l.A,
		o[1] + c.S*l.A + c.T*l.B,
	}
}

// Remap expresses c, a coordinate in l's frame, as a coordinate in
// to's frame.
func (l Line) Remap(to Line, c Coord) Coord {
	return to.Map(l.Unmap(c))
}
