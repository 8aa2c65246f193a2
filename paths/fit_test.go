package paths

import (
	"math"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/stat"
)

// lineDist is the distance from p to l, accounting for unnormalised
// coefficients.
func lineDist(l Line, p Vec2) float64 {
	return math.Abs(l.A*p[0]+l.B*p[1]+l.C) / math.Hypot(l.A, l.B)
}

func TestFitLineSinglePoint(t *testing.T) {
	f := NewFitter()
	pts := []Vec2{{0, 0}, {3, -4}, {1e3, 2.5}, {-7, -7}}
	for _, p := range pts {
		f.Push(p)
	}
	for i, p := range pts {
		l := f.FitLine(i, i)
		if d := lineDist(l, p); d > 1e-9 {
			t.Errorf("FitLine(%d, %d) = %v misses its own point %v by %g", i, i, l, p, d)
		}
	}
}

func TestFitLineCoincident(t *testing.T) {
	f := NewFitter()
	p := Vec2{2, 5}
	for i := 0; i < 5; i++ {
		f.Push(p)
	}
	l := f.FitLine(0, 4)
	if l.A != -1 || l.B != -1 {
		t.Errorf("coincident points: got direction (%g, %g), want (-1, -1)", l.A, l.B)
	}
	if d := lineDist(l, p); d > 1e-9 {
		t.Errorf("coincident points: line %v misses %v by %g", l, p, d)
	}
}

func TestFitLineEmptyRange(t *testing.T) {
	f := NewFitter()
	f.Push(Vec2{1, 1})
	l := f.FitLine(1, 0)
	if l != (Line{A: -1, B: -1}) {
		t.Errorf("empty range: got %v", l)
	}
}

func TestFitLineCollinear(t *testing.T) {
	cases := []struct {
		desc string
		pts  []Vec2
	}{
		{"horizontal", []Vec2{{0, 2}, {3, 2}, {7, 2}, {11, 2}}},
		{"vertical", []Vec2{{5, 0}, {5, 1}, {5, 9}}},
		{"sloped", []Vec2{{0, 1}, {1, 3}, {2, 5}, {3, 7}}},
		{"steep", []Vec2{{0, 0}, {0.1, 10}, {0.2, 20}}},
	}
	for _, c := range cases {
		f := NewFitter()
		for _, p := range c.pts {
			f.Push(p)
		}
		l := f.FitLine(0, len(c.pts)-1)
		for _, p := range c.pts {
			if d := lineDist(l, p); d > 1e-9 {
				t.Errorf("%s: line %v misses %v by %g", c.desc, l, p, d)
			}
		}
	}
}

func TestFitLineMatchesDirect(t *testing.T) {
	// The prefix-sum difference must agree with sums computed directly
	// over the subrange.
	rnd := rand.New(rand.NewSource(1))
	var pts []Vec2
	for i := 0; i < 50; i++ {
		pts = append(pts, Vec2{rnd.Float64() * 100, rnd.Float64() * 100})
	}
	f := NewFitter()
	for _, p := range pts {
		f.Push(p)
	}
	for _, r := range [][2]int{{0, 49}, {0, 0}, {10, 20}, {33, 34}, {49, 49}} {
		i, j := r[0], r[1]
		g := NewFitter()
		for _, p := range pts[i : j+1] {
			g.Push(p)
		}
		want := g.FitLine(0, j-i)
		got := f.FitLine(i, j)
		if math.Abs(got.A-want.A) > 1e-6 || math.Abs(got.B-want.B) > 1e-6 || math.Abs(got.C-want.C) > 1e-6 {
			t.Errorf("FitLine(%d, %d) = %v, direct fit gives %v", i, j, got, want)
		}
	}
}

func TestFitLineRegression(t *testing.T) {
	// For x-dominant data the fit is ordinary y-on-x regression, so it
	// must match gonum's.
	rnd := rand.New(rand.NewSource(2))
	var xs, ys []float64
	f := NewFitter()
	for i := 0; i < 100; i++ {
		x := float64(i)
		y := 0.5*x + 3 + rnd.NormFloat64()*0.1
		xs = append(xs, x)
		ys = append(ys, y)
		f.Push(Vec2{x, y})
	}
	alpha, beta := stat.LinearRegression(xs, ys, nil, false)
	l := f.FitLine(0, 99)
	if l.B != -1 {
		t.Fatalf("x-dominant data: got line %v, want B = -1", l)
	}
	if math.Abs(l.A-beta) > 1e-9 {
		t.Errorf("slope = %g, gonum gives %g", l.A, beta)
	}
	if math.Abs(l.C-alpha) > 1e-9 {
		t.Errorf("intercept = %g, gonum gives %g", l.C, alpha)
	}
}

func TestFitterReset(t *testing.T) {
	f := NewFitter()
	f.Push(Vec2{1, 2})
	f.Push(Vec2{3, 4})
	f.Reset()
	if f.Len() != 0 {
		t.Fatalf("Len() = %d after Reset", f.Len())
	}
	f.Push(Vec2{0, 7})
	if d := lineDist(f.FitLine(0, 0), Vec2{0, 7}); d > 1e-9 {
		t.Errorf("fit after Reset misses the point by %g", d)
	}
}
