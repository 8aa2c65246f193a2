package paths

// fitEps is the cutoff below which the variance terms of a range of
// points are treated as zero, meaning the points are coincident. The
// prefix sums aren't scale-free, so this is an absolute cutoff.
const fitEps = 1e-12

type fitSums struct {
	x, y, xx, yy, xy float64
}

// A Fitter maintains running prefix sums over an append-only point
// sequence, and produces the least-squares best fit line for any
// contiguous index range in constant time.
type Fitter struct {
	// pre[k] holds the sums over points [0, k); pre[0] is zero.
	pre []fitSums
}

// NewFitter returns an empty Fitter.
func NewFitter() *Fitter {
	f := &Fitter{}
	f.Reset()
	return f
}

// Reset discards all points.
func (f *Fitter) Reset() {
	f.pre = append(f.pre[:0], fitSums{})
}

// Len returns the number of points pushed since the last Reset.
func (f *Fitter) Len() int {
	return len(f.pre) - 1
}

// Push appends one point to the sums.
func (f *Fitter) Push(p Vec2) {
	s := f.pre[len(f.pre)-1]
	f.pre = append(f.pre, fitSums{
		x:  s.x + p[0],
		y:  s.y + p[1],
		xx: s.xx + p[0]*p[0],
		yy: s.yy + p[1]*p[1],
		xy: s.xy + p[0]*p[1],
	})
}

func (f *Fitter) rangeSums(i, j int) fitSums {
	hi, lo := f.pre[j+1], f.pre[i]
	return fitSums{
		x:  hi.x - lo.x,
		y:  hi.y - lo.y,
		xx: hi.xx - lo.xx,
		yy: hi.yy - lo.yy,
		xy: hi.xy - lo.xy,
	}
}

// FitLine returns the least-squares best fit line for the points with
// indices i..j inclusive, computed in constant time from the prefix
// sums.
//
// An empty range gets a fixed degenerate line. If both variance terms
// vanish the points are coincident and an arbitrary fixed direction
// through their common position is returned, avoiding an
// ill-conditioned direction computation. Otherwise the larger of the
// two variance terms is used as the denominator; the terms are
// non-negative by Cauchy-Schwarz, and are clamped at zero to guard
// against floating-point underflow.
func (f *Fitter) FitLine(i, j int) Line {
	n := j - i + 1
	if n <= 0 {
		return Line{A: -1, B: -1}
	}
	s := f.rangeSums(i, j)
	fn := float64(n)
	cxx := fn*s.xx - s.x*s.x
	cyy := fn*s.yy - s.y*s.y
	cxy := fn*s.xy - s.x*s.y
	if cxx < 0 {
		cxx = 0
	}
	if cyy < 0 {
		cyy = 0
	}
	if cxx <= fitEps && cyy <= fitEps {
		return Line{A: -1, B: -1, C: (s.x + s.y) / fn}
	}
	if cxx >= cyy {
		a := cxy / cxx
		return Line{A: a, B: -1, C: (s.y - a*s.x) / fn}
	}
	b := cxy / cyy
	return Line{A: -1, B: b, C: (s.x - b*s.y) / fn}
}
