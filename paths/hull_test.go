package paths

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// offerAll feeds the points of a simple polyline, in order, and
// returns the node handle per point (NoNode for interior points).
func offerAll(h *Hull, pts []Vec2) []int {
	ns := make([]int, len(pts))
	for i, p := range pts {
		ns[i] = h.Offer(p)
	}
	return ns
}

// checkHull asserts that the boundary is counter-clockwise convex and
// that every given point is on or inside it.
func checkHull(t *testing.T, h *Hull, pts []Vec2) {
	t.Helper()
	b := h.Points()
	require.GreaterOrEqual(t, len(b), 1)
	if len(b) < 3 {
		return
	}
	for i := range b {
		u := b[i]
		v := b[(i+1)%len(b)]
		w := b[(i+2)%len(b)]
		assert.GreaterOrEqual(t, Side(u, v, w), 0.0, "boundary %v not convex CCW at %v", b, v)
		for _, p := range pts {
			assert.GreaterOrEqual(t, Side(u, v, p), -1e-9, "point %v outside edge %v-%v of %v", p, u, v, b)
		}
	}
}

func TestHullDegenerate(t *testing.T) {
	h := &Hull{}
	assert.True(t, h.Empty())
	assert.Equal(t, NoNode, h.First())

	n0 := h.Offer(Vec2{0, 0})
	require.NotEqual(t, NoNode, n0)
	assert.Equal(t, 1, h.Size())
	assert.Equal(t, n0, h.First())
	assert.Equal(t, n0, h.Next(n0), "single node cycles to itself")

	n1 := h.Offer(Vec2{5, 0})
	require.NotEqual(t, NoNode, n1)
	assert.Equal(t, 2, h.Size())
	assert.Equal(t, n0, h.Next(n1))
	assert.Equal(t, n0, h.Prev(n1))
}

func TestHullCollinearExtend(t *testing.T) {
	h := &Hull{}
	ns := offerAll(h, []Vec2{{0, 0}, {5, 0}, {10, 0}})
	// Extending along the same line keeps two nodes: the midpoint's
	// node gets evicted.
	assert.Equal(t, 2, h.Size())
	assert.False(t, h.Valid(ns[1]))
	assert.ElementsMatch(t, []Vec2{{0, 0}, {10, 0}}, h.Points())

	// Turning off the line makes a proper CCW triangle.
	n := h.Offer(Vec2{10, 5})
	require.NotEqual(t, NoNode, n)
	assert.Equal(t, 3, h.Size())
	checkHull(t, h, []Vec2{{0, 0}, {5, 0}, {10, 0}, {10, 5}})
}

func TestHullInteriorRejected(t *testing.T) {
	h := &Hull{}
	pts := []Vec2{{0, 0}, {10, 0}, {5, 10}}
	offerAll(h, pts)
	require.Equal(t, 3, h.Size())

	n := h.Offer(Vec2{5, 3})
	assert.Equal(t, NoNode, n)
	assert.Equal(t, 3, h.Size(), "interior point must not change the hull")
	checkHull(t, h, append(pts, Vec2{5, 3}))
}

func TestHullEviction(t *testing.T) {
	h := &Hull{}
	pts := []Vec2{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	ns := offerAll(h, pts)
	require.Equal(t, 4, h.Size())
	checkHull(t, h, pts)

	// (-5, 15) sees the two edges adjacent to (0, 10), which stops
	// being a boundary vertex.
	n := h.Offer(Vec2{-5, 15})
	require.NotEqual(t, NoNode, n)
	assert.False(t, h.Valid(ns[3]))
	assert.Equal(t, 4, h.Size())
	checkHull(t, h, append(pts, Vec2{-5, 15}))

	// Handles of surviving nodes stay usable.
	assert.True(t, h.Valid(ns[0]))
	assert.Equal(t, Vec2{0, 0}, h.At(ns[0]))
}

func TestHullSpiral(t *testing.T) {
	// A simple spiral going outward: every point ends up on the
	// boundary of some intermediate hull, many get evicted later.
	pts := []Vec2{
		{0, 0}, {1, 0}, {1, 1}, {-1, 1}, {-1, -1},
		{2, -1}, {2, 2}, {-2, 2}, {-2, -2}, {3, -2},
	}
	h := &Hull{}
	for i, p := range pts {
		n := h.Offer(p)
		require.NotEqual(t, NoNode, n, "spiral point %d %v should be outside", i, p)
		checkHull(t, h, pts[:i+1])
	}
}

func TestHullFirstTracksNewest(t *testing.T) {
	h := &Hull{}
	offerAll(h, []Vec2{{0, 0}, {10, 0}, {10, 10}})
	n := h.Offer(Vec2{0, 10})
	assert.Equal(t, n, h.First())
	assert.Equal(t, Vec2{0, 10}, h.At(h.First()))
}
