package domain

// Run is the group of adjacent lines accumulated since the last flush.
// The zero value is the empty run: no representative, count 0.
type Run struct {
	// Representative is the first line of the group, emitted verbatim.
	Representative Line
	Count          uint64
}

func (r Run) Empty() bool { return r.Count == 0 }

// Same reports whether l belongs to the current group. The empty run never
// matches, not even a line whose key is empty.
func (r Run) Same(l Line) bool {
	if r.Empty() {
		return false
	}
	return SameKey(r.Representative, l)
}

// Absorb adds l to the group. The first absorbed line becomes the
// representative.
func (r *Run) Absorb(l Line) {
	if r.Empty() {
		r.Representative = l
	}
	r.Count++
}

// Reset returns the run to the empty state.
func (r *Run) Reset() {
	*r = Run{}
}
