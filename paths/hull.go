package paths

// NoNode is returned by Offer for a point that lies inside the
// current hull and so created no node.
const NoNode = -1

// A hullNode is one vertex of the hull boundary. Nodes live in an
// arena and refer to their neighbours by index. Evicted nodes stay in
// the arena with dead set, since callers hold node handles across
// later insertions.
type hullNode struct {
	p          Vec2
	prev, next int
	dead       bool
}

// A Hull maintains the convex hull of a simple polyline online.
// Points must be offered in path order; the boundary is a circular
// doubly-linked list in counter-clockwise order, and every point ever
// offered lies on or inside it. Insertion is amortized O(1) because
// each walk starts from the most recently accepted point.
//
// The zero value is an empty hull.
type Hull struct {
	nodes []hullNode
	first int
	count int
}

// Size returns the number of live boundary nodes.
func (h *Hull) Size() int {
	return h.count
}

// Empty reports whether the hull holds no points.
func (h *Hull) Empty() bool {
	return h.count == 0
}

// First returns the node for the most recently accepted point, or
// NoNode if the hull is empty.
func (h *Hull) First() int {
	if h.count == 0 {
		return NoNode
	}
	return h.first
}

// At returns the position of node n.
func (h *Hull) At(n int) Vec2 {
	return h.nodes[n].p
}

// Prev returns the node before n on the boundary.
func (h *Hull) Prev(n int) int {
	return h.nodes[n].prev
}

// Next returns the node after n on the boundary.
func (h *Hull) Next(n int) int {
	return h.nodes[n].next
}

// Valid reports whether node n is still part of the boundary.
func (h *Hull) Valid(n int) bool {
	return !h.nodes[n].dead
}

// Points returns the live boundary positions in counter-clockwise
// order, starting from the first node.
func (h *Hull) Points() []Vec2 {
	if h.count == 0 {
		return nil
	}
	r := make([]Vec2, 0, h.count)
	n := h.first
	for {
		r = append(r, h.nodes[n].p)
		n = h.nodes[n].next
		if n == h.first {
			break
		}
	}
	return r
}

func (h *Hull) alloc(p Vec2) int {
	h.nodes = append(h.nodes, hullNode{p: p})
	return len(h.nodes) - 1
}

// splice inserts a new node for p between n0 and n1 and makes it the
// first node.
func (h *Hull) splice(n0, n1 int, p Vec2) int {
	n := h.alloc(p)
	h.nodes[n].prev = n0
	h.nodes[n].next = n1
	h.nodes[n0].next = n
	h.nodes[n1].prev = n
	h.first = n
	h.count++
	return n
}

func (h *Hull) evict(n int) {
	h.nodes[n].dead = true
	h.count--
}

// Offer extends the hull with p, the newest point of the polyline.
// It returns the new node if p was outside the current hull, and
// NoNode if p was interior (in which case the hull is unchanged).
func (h *Hull) Offer(p Vec2) int {
	switch h.count {
	case 0:
		n := h.alloc(p)
		h.nodes[n].prev, h.nodes[n].next = n, n
		h.first = n
		h.count = 1
		return n
	case 1:
		return h.splice(h.first, h.first, p)
	case 2:
		f := h.first
		o := h.nodes[f].next
		s := Side(h.nodes[f].p, h.nodes[o].p, p)
		if s == 0 {
			// Collinear: drop the old first node so the hull stays
			// two nodes rather than becoming a flat triangle.
			h.evict(f)
			return h.splice(o, o, p)
		}
		if s > 0 {
			// f, o, p is counter-clockwise.
			return h.splice(o, f, p)
		}
		return h.splice(f, o, p)
	}

	// General case: the edges visible from p form a contiguous
	// chain adjacent to the first node (the previous path point).
	// visible(u, v) is inclusive of collinear points, so boundary
	// vertices that stop being strictly convex get evicted.
	visible := func(u, v int) bool {
		return Side(h.nodes[u].p, h.nodes[v].p, p) <= 0
	}

	f := h.first
	if !visible(h.nodes[f].prev, f) && !visible(f, h.nodes[f].next) {
		return NoNode
	}

	// Walk to the two tangent nodes bracketing the visible chain.
	n0 := f
	for visible(h.nodes[n0].prev, n0) {
		n0 = h.nodes[n0].prev
		if n0 == f {
			break
		}
	}
	n1 := f
	for visible(n1, h.nodes[n1].next) {
		n1 = h.nodes[n1].next
		if n1 == f {
			break
		}
	}

	for m := h.nodes[n0].next; m != n1; {
		nx := h.nodes[m].next
		h.evict(m)
		m = nx
	}
	return h.splice(n0, n1, p)
}
