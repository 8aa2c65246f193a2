package paths

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// inRect reports whether p lies in the rectangle with the given
// corners (in winding order), within eps.
func inRect(corners [4]Vec2, p Vec2, eps float64) bool {
	e0 := corners[1].Sub(corners[0])
	e1 := corners[3].Sub(corners[0])
	d := p.Sub(corners[0])
	for _, e := range []Vec2{e0, e1} {
		t := d.Dot(e)
		if t < -eps || t > e.LenSq()+eps {
			return false
		}
	}
	return true
}

func TestErrorBoxSinglePoint(t *testing.T) {
	f := NewFitter()
	p := Vec2{3, 7}
	f.Push(p)
	b := NewErrorBox(f.FitLine(0, 0), p)
	assert.InDelta(t, 0, b.Error(), 1e-12)
}

func TestErrorBoxCollinear(t *testing.T) {
	// Points on the line contribute nothing to the error.
	line := Line{A: 1, B: -2, C: 3}
	b := NewErrorBox(line, line.Project(Vec2{0, 0}))
	for _, p := range []Vec2{{4, -1}, {-10, 3}, {100, 7}} {
		b.Extend(line, line.Project(p))
	}
	assert.InDelta(t, 0, b.Error(), 1e-9)
}

func TestErrorBoxFixedLineMonotone(t *testing.T) {
	// With an unchanging frame the box only grows, so the error bound
	// never decreases.
	line := Line{A: 1, B: 3, C: -2}
	rnd := rand.New(rand.NewSource(3))
	b := NewErrorBox(line, Vec2{0, 0})
	prev := b.Error()
	for i := 0; i < 50; i++ {
		b.Extend(line, Vec2{rnd.NormFloat64() * 10, rnd.NormFloat64() * 10})
		e := b.Error()
		require.GreaterOrEqual(t, e, prev-1e-9)
		prev = e
	}
}

func TestErrorBoxBoundsDistance(t *testing.T) {
	// Error() bounds the squared distance from every extended point to
	// the current line, across frame changes.
	rnd := rand.New(rand.NewSource(4))
	lines := []Line{
		{A: 0, B: 1, C: 0},
		{A: 1, B: 1, C: -3},
		{A: 2, B: -1, C: 1},
		{A: -1, B: 4, C: 0.5},
	}
	var pts []Vec2
	first := Vec2{1, 2}
	pts = append(pts, first)
	b := NewErrorBox(lines[0], first)
	for i := 0; i < 40; i++ {
		p := Vec2{rnd.NormFloat64() * 5, rnd.NormFloat64() * 5}
		line := lines[(i+1)%len(lines)]
		b.Extend(line, p)
		pts = append(pts, p)
		for _, q := range pts {
			d := lineDist(line, q)
			require.LessOrEqual(t, d*d, b.Error()+1e-9,
				"point %v at distance %g exceeds bound %g", q, d, math.Sqrt(b.Error()))
		}
	}
}

func TestErrorBoxContainsPoints(t *testing.T) {
	// Every extended point stays inside the rectangle, also across
	// frame changes.
	rnd := rand.New(rand.NewSource(5))
	var pts []Vec2
	first := Vec2{0, 0}
	pts = append(pts, first)
	b := NewErrorBox(Line{A: 1, B: 0, C: 0}, first)
	for i := 0; i < 30; i++ {
		p := Vec2{rnd.NormFloat64() * 3, rnd.NormFloat64() * 3}
		line := Line{A: rnd.NormFloat64(), B: rnd.NormFloat64() + 2, C: rnd.NormFloat64()}
		b.Extend(line, p)
		pts = append(pts, p)
		corners := b.Corners()
		for _, q := range pts {
			require.True(t, inRect(corners, q, 1e-6),
				"point %v escaped the box %v", q, corners)
		}
	}
}
