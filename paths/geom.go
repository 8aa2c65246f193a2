package paths

import "math"

// Side returns the cross product of (b-a) and (p-a): positive if p
// lies to the left of the directed line through a and b, negative if
// it lies to the right, and zero if the three points are collinear.
func Side(a, b, p Vec2) float64 {
	return b.Sub(a).Cross(p.Sub(a))
}

// SegmentsIntersect reports whether the segments ab and cd intersect.
//
// The straddle test on ab is inclusive of its endpoints while the
// test on cd is exclusive, so a chain of segments sharing endpoints
// doesn't report each shared vertex twice. If all four points are
// collinear the segments intersect iff the span of the four points is
// no longer than the two segments laid end to end.
func SegmentsIntersect(a, b, c, d Vec2) bool {
	abc := Side(a, b, c)
	abd := Side(a, b, d)
	if abc == 0 && abd == 0 {
		span := math.Max(
			math.Max(a.Dist(c), a.Dist(d)),
			math.Max(b.Dist(c), b.Dist(d)),
		)
		span = math.Max(span, math.Max(a.Dist(b), c.Dist(d)))
		return span <= a.Dist(b)+c.Dist(d)
	}
	cda := Side(c, d, a)
	cdb := Side(c, d, b)
	return cda*cdb < 0 && abc*abd <= 0
}

// Intersection returns the point at which the infinite lines l1 and
// l2 cross, solving the 2x2 linear system with full pivoting. If the
// lines are parallel the result has non-finite (infinite)
// coordinates, and if they are identical it is NaN; callers must
// check IsFinite before using the result.
func Intersection(l1, l2 Line) Vec2 {
	m := [2][3]float64{
		{l1.A, l1.B, -l1.C},
		{l2.A, l2.B, -l2.C},
	}

	// Move the largest-magnitude coefficient into the pivot
	// position, swapping rows and columns as needed.
	r, c := 0, 0
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			if math.Abs(m[i][j]) > math.Abs(m[r][c]) {
				r, c = i, j
			}
		}
	}
	if r == 1 {
		m[0], m[1] = m[1], m[0]
	}
	swapped := c == 1
	if swapped {
		m[0][0], m[0][1] = m[0][1], m[0][0]
		m[1][0], m[1][1] = m[1][1], m[1][0]
	}

	if m[0][0] == 0 {
		// Both lines have zero coefficients.
		return Vec2{math.NaN(), math.NaN()}
	}
	f := m[1][0] / m[0][0]
	m[1][1] -= f * m[0][1]
	m[1][2] -= f * m[0][2]

	// Parallel lines leave a zero pivot with a nonzero right-hand
	// side (y infinite); identical lines leave 0/0 (y NaN).
	y := m[1][2] / m[1][1]
	x := (m[0][2] - m[0][1]*y) / m[0][0]
	if swapped {
		x, y = y, x
	}
	return Vec2{x, y}
}
