package paths

import "fmt"

// A Verdict classifies what the admissibility scan decided about one
// candidate segment.
type Verdict int

const (
	// VerdictAccept means the segment from the candidate to the new
	// point is admissible.
	VerdictAccept Verdict = iota
	// VerdictCut means a subpath starting at the candidate would
	// self-intersect; the candidate is excluded for good and the
	// scan stops.
	VerdictCut
	// VerdictThreshold means the error bound exceeded the tolerance;
	// the scan stops, since earlier candidates only widen the bound.
	VerdictThreshold
	// VerdictWeak means the candidate is not a pioneer for the
	// current fit; the scan continues with earlier candidates.
	VerdictWeak
	// VerdictStrong means the new point itself stopped being a
	// pioneer; no earlier candidate can restore that, so the scan
	// stops.
	VerdictStrong
)

func (v Verdict) String() string {
	switch v {
	case VerdictAccept:
		return "accept"
	case VerdictCut:
		return "cut"
	case VerdictThreshold:
		return "threshold"
	case VerdictWeak:
		return "weak"
	case VerdictStrong:
		return "strong"
	}
	return fmt.Sprintf("Verdict(%d)", int(v))
}

// A TraceEntry records the scan's verdict for one candidate index of
// the most recent append. The trace is diagnostic only.
type TraceEntry struct {
	Index   int
	Verdict Verdict
}

// tag is the per-index routing record. dist and prev are fixed once
// the index has been scanned; cut may later be set, exactly once, by
// the scan of a later index.
type tag struct {
	dist int
	prev int // predecessor index on the shortest route, -1 for none
	cut  bool
}

// A Simplifier incrementally reduces the points of a Sequence to a
// shorter path whose pointwise deviation from the original stays
// within a threshold distance.
//
// The simplifier subscribes itself to the sequence. On each append it
// first updates its fit statistics and then scans backward over
// earlier indices, testing whether a single segment from each
// candidate to the new point can replace the intervening subpath: the
// subpath must not self-intersect, its deviation from the segment's
// best-fit line must be within the threshold, and both endpoints must
// be pioneers of the subpath's convex hull with respect to that line.
// Admissible segments form an implicit graph over point indices, and
// a routing table records the shortest route through it.
type Simplifier struct {
	seq       *Sequence
	threshold float64
	fit       *Fitter
	tags      []tag
	trace     []TraceEntry
}

// simplifierHook adapts a Simplifier to the Observer interface
// without exposing the callbacks on the Simplifier itself.
type simplifierHook struct {
	s *Simplifier
}

func (h simplifierHook) Appended(_ *Sequence, p Vec2) {
	h.s.consume(p)
}

func (h simplifierHook) Cleared(*Sequence) {
	h.s.reset()
}

// NewSimplifier returns a simplifier subscribed to seq. The threshold
// is the maximum distance the simplified path may deviate from the
// original, and must be positive. Points already in seq are consumed
// immediately.
func NewSimplifier(seq *Sequence, threshold float64) (*Simplifier, error) {
	if threshold <= 0 {
		return nil, fmt.Errorf("threshold must be positive, got %g", threshold)
	}
	s := &Simplifier{
		seq:       seq,
		threshold: threshold,
		fit:       NewFitter(),
	}
	for _, p := range seq.Points() {
		s.consume(p)
	}
	seq.Subscribe(simplifierHook{s})
	return s, nil
}

// Threshold returns the maximum deviation distance.
func (s *Simplifier) Threshold() float64 {
	return s.threshold
}

// Fitter returns the simplifier's line fitter, which always reflects
// the current sequence contents. It can be used to recompute the best
// fit line of any index range for diagnostics.
func (s *Simplifier) Fitter() *Fitter {
	return s.fit
}

// Trace returns the per-candidate verdicts of the most recent append.
// It is rebuilt from scratch on every append and never consulted by
// the simplifier itself.
func (s *Simplifier) Trace() []TraceEntry {
	return s.trace
}

func (s *Simplifier) reset() {
	s.fit.Reset()
	s.tags = s.tags[:0]
	s.trace = nil
}

// consume pushes p into the fit statistics and then scans. The scan
// reads the statistics of the point it is processing, so the push
// must come first.
func (s *Simplifier) consume(p Vec2) {
	s.fit.Push(p)
	s.scan()
}

// scan processes the newest index j: it walks candidate segment
// starts i from j-1 down, classifies each, and records the shortest
// route found for j.
func (s *Simplifier) scan() {
	j := s.fit.Len() - 1
	s.trace = s.trace[:0]
	s.trace = append(s.trace, TraceEntry{Index: j, Verdict: VerdictAccept})
	if j == 0 {
		s.tags = append(s.tags, tag{dist: 0, prev: -1})
		return
	}

	pj := s.seq.At(j)
	// The edge between consecutive points is always admissible: a
	// single-segment subpath has zero error and cannot
	// self-intersect.
	bestPrev, bestDist := j-1, s.tags[j-1].dist

	hull := &Hull{}
	nj := hull.Offer(pj)
	line := s.fit.FitLine(j, j)
	box := NewErrorBox(line, pj)
	thr2 := s.threshold * s.threshold

	for i := j - 1; i >= 0; i-- {
		pi := s.seq.At(i)

		if s.tags[i].cut || (i < j-2 && SegmentsIntersect(pi, s.seq.At(i+1), s.seq.At(j-1), pj)) {
			// i can never again start a simple subpath reaching any
			// later index, so no candidate below it can either.
			s.tags[i].cut = true
			s.trace = append(s.trace, TraceEntry{Index: i, Verdict: VerdictCut})
			break
		}

		line = s.fit.FitLine(i, j)
		box.Extend(line, pi)
		if box.Error() > thr2 {
			s.trace = append(s.trace, TraceEntry{Index: i, Verdict: VerdictThreshold})
			break
		}

		ni := hull.Offer(pi)
		if ni == NoNode || !pioneer(hull, ni, line) {
			s.trace = append(s.trace, TraceEntry{Index: i, Verdict: VerdictWeak})
			continue
		}
		if !pioneer(hull, nj, line) {
			s.trace = append(s.trace, TraceEntry{Index: i, Verdict: VerdictStrong})
			break
		}

		s.trace = append(s.trace, TraceEntry{Index: i, Verdict: VerdictAccept})
		if s.tags[i].dist < bestDist {
			bestPrev, bestDist = i, s.tags[i].dist
		}
	}

	s.tags = append(s.tags, tag{dist: bestDist + 1, prev: bestPrev})
}

// pioneer reports whether hull node n is locally extremal along the
// direction of line: both of its hull neighbours must project onto
// the same side of n's own projection on the tangent. Nodes evicted
// from the hull are never pioneers.
func pioneer(h *Hull, n int, line Line) bool {
	if !h.Valid(n) {
		return false
	}
	t := line.Tangent()
	p := h.At(n)
	d0 := h.At(h.Prev(n)).Sub(p).Dot(t)
	d1 := h.At(h.Next(n)).Sub(p).Dot(t)
	return d0*d1 > 0
}

// Route returns the indices of the original points that the shortest
// admissible route passes through, in increasing order. It is empty
// for an empty sequence.
func (s *Simplifier) Route() []int {
	if len(s.tags) == 0 {
		return nil
	}
	var chain []int
	for k := len(s.tags) - 1; k != -1; k = s.tags[k].prev {
		chain = append(chain, k)
	}
	for l, r := 0, len(chain)-1; l < r; l, r = l+1, r-1 {
		chain[l], chain[r] = chain[r], chain[l]
	}
	return chain
}

// Simplified returns the reduced path for the current sequence
// contents. Sequences of at most one point are returned unchanged.
//
// Each route edge contributes its best fit line; interior output
// vertices are the intersections of consecutive edges' lines, and the
// two endpoints are the projections of the original endpoints onto
// their edges' lines. When consecutive lines are parallel or nearly
// so, the intersection is non-finite or lands far away; the raw
// original point is used instead. That fallback only keeps the output
// within twice the threshold of the original path, a documented
// looseness of the reconstruction.
func (s *Simplifier) Simplified() Path {
	if s.seq.Len() <= 1 {
		return Path{V: s.seq.Points()}
	}
	chain := s.Route()
	lines := make([]Line, len(chain)-1)
	for k := range lines {
		lines[k] = s.fit.FitLine(chain[k], chain[k+1])
	}

	out := make([]Vec2, 0, len(chain))
	out = append(out, lines[0].Project(s.seq.At(chain[0])))
	for k := 1; k < len(chain)-1; k++ {
		shared := s.seq.At(chain[k])
		x := Intersection(lines[k-1], lines[k])
		if !x.IsFinite() || x.Dist(shared) > 2*s.threshold {
			x = shared
		}
		out = append(out, x)
	}
	out = append(out, lines[len(lines)-1].Project(s.seq.At(chain[len(chain)-1])))
	return Path{V: out}
}

// Simplify removes points from paths. Removed points stay within the
// simplifier's tolerance of the best fit lines of the new path's
// segments; where consecutive fit lines are nearly parallel the
// replacement vertices themselves may be up to twice the tolerance
// from the original path. Non-positive tolerances leave the paths
// unchanged.
func (ps *Paths) Simplify(tol float64) {
	if tol <= 0 {
		return
	}
	for i, p := range ps.P {
		ps.P[i] = simplifyPath(p, tol)
	}
}

func simplifyPath(p Path, tol float64) Path {
	if len(p.V) <= 2 {
		return p
	}
	seq := &Sequence{}
	sim, err := NewSimplifier(seq, tol)
	if err != nil {
		panic("simplifyPath: " + err.Error())
	}
	for _, v := range p.V {
		seq.Append(v)
	}
	return sim.Simplified()
}
