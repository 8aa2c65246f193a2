package paths

// An Observer is notified of sequence mutations. Callbacks run
// synchronously, in subscription order, before the mutating call
// returns.
type Observer interface {
	Appended(s *Sequence, p Vec2)
	Cleared(s *Sequence)
}

// A Sequence is an append-only list of points. The only mutations are
// Append and Clear; point indices are stable until a Clear. The zero
// value is an empty sequence.
type Sequence struct {
	pts []Vec2
	obs []Observer
}

// Len returns the number of points.
func (s *Sequence) Len() int {
	return len(s.pts)
}

// At returns the point at index i. It panics if i is out of range.
func (s *Sequence) At(i int) Vec2 {
	return s.pts[i]
}

// Last returns the most recently appended point. It panics if the
// sequence is empty.
func (s *Sequence) Last() Vec2 {
	return s.pts[len(s.pts)-1]
}

// Points returns a copy of all points in order.
func (s *Sequence) Points() []Vec2 {
	return append([]Vec2(nil), s.pts...)
}

// Subscribe registers o for mutation callbacks.
func (s *Sequence) Subscribe(o Observer) {
	s.obs = append(s.obs, o)
}

// Append adds p to the end of the sequence and notifies observers.
func (s *Sequence) Append(p Vec2) {
	s.pts = append(s.pts, p)
	for _, o := range s.obs {
		o.Appended(s, p)
	}
}

// Clear resets the sequence to empty, invalidating all indices, and
// notifies observers.
func (s *Sequence) Clear() {
	s.pts = s.pts[:0]
	for _, o := range s.obs {
		o.Cleared(s)
	}
}
