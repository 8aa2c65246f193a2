package paths

import "math"

// An ErrorBox is a bounding rectangle expressed in the coordinate
// frame of the line it was last extended with. It contains every
// point it has seen, which gives a constant-time upper bound on the
// squared distance from any of those points to the current line,
// without rescanning them.
type ErrorBox struct {
	line           Line
	s0, s1, t0, t1 float64
}

// NewErrorBox returns a box collapsed to the single coordinate of p
// in line's frame.
func NewErrorBox(line Line, p Vec2) *ErrorBox {
	c := line.Map(p)
	return &ErrorBox{line: line, s0: c.S, s1: c.S, t0: c.T, t1: c.T}
}

// Extend rebounds the box in line's frame so that it contains p as
// well as everything the old box contained. The old rectangle's four
// corners are carried from the old frame into the new one, and the
// new box is their axis-aligned bound together with p.
func (b *ErrorBox) Extend(line Line, p Vec2) {
	c := line.Map(p)
	s0, s1, t0, t1 := c.S, c.S, c.T, c.T
	for _, corner := range b.corners() {
		r := b.line.Remap(line, corner)
		s0 = math.Min(s0, r.S)
		s1 = math.Max(s1, r.S)
		t0 = math.Min(t0, r.T)
		t1 = math.Max(t1, r.T)
	}
	b.line = line
	b.s0, b.s1, b.t0, b.t1 = s0, s1, t0, t1
}

// Error returns an upper bound on the squared cartesian distance from
// any point inside the box to the line it is expressed in. The
// (A²+B²) factor corrects for the unnormalised line coefficients.
func (b *ErrorBox) Error() float64 {
	t := math.Max(b.t0*b.t0, b.t1*b.t1)
	return t * (b.line.A*b.line.A + b.line.B*b.line.B)
}

func (b *ErrorBox) corners() [4]Coord {
	return [4]Coord{
		{b.s0, b.t0},
		{b.s1, b.t0},
		{b.s1, b.t1},
		{b.s0, b.t1},
	}
}

// Corners returns the rectangle's vertices in cartesian coordinates,
// in the winding order (s0,t0), (s1,t0), (s1,t1), (s0,t1).
func (b *ErrorBox) Corners() [4]Vec2 {
	var r [4]Vec2
	for i, c := range b.corners() {
		r[i] = b.line.Unmap(c)
	}
	return r
}
