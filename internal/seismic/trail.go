package seismic

import "fmt"

// Sample is one slot of a Trail.
type Sample struct {
	Pos    Vec
	Filled bool
}

// Trail is a fixed-capacity ring of the most recent marker positions.
// Logical slot 0 is the oldest stored sample; unfilled slots follow the
// filled ones until the ring wraps.
type Trail struct {
	data []Vec
	head int // physical index of logical slot 0
	size int
}

// NewTrail creates an empty trail holding up to capacity samples. Capacities
// below one are raised to one.
func NewTrail(capacity int) *Trail {
	if capacity < 1 {
		capacity = 1
	}
	return &Trail{data: make([]Vec, capacity)}
}

// Cap returns the fixed number of slots.
func (t *Trail) Cap() int { return len(t.data) }

// Len returns the number of filled slots.
func (t *Trail) Len() int { return t.size }

// Clear marks every slot unfilled.
func (t *Trail) Clear() {
	for i := range t.data {
		t.data[i] = Vec{}
	}
	t.head = 0
	t.size = 0
}

// Push stores p as the newest sample, evicting the oldest once full.
func (t *Trail) Push(p Vec) {
	n := len(t.data)
	if t.size < n {
		t.data[(t.head+t.size)%n] = p
		t.size++
		return
	}
	t.data[t.head] = p
	t.head = (t.head + 1) % n
}

// Sample returns logical slot i. Slots outside the ring or not yet written
// report an unfilled zero sample.
func (t *Trail) Sample(i int) Sample {
	if i < 0 || i >= t.size {
		return Sample{}
	}
	return Sample{Pos: t.data[(t.head+i)%len(t.data)], Filled: true}
}

// Latest returns the newest sample, if any.
func (t *Trail) Latest() (Vec, bool) {
	if t.size == 0 {
		return Vec{}, false
	}
	return t.data[(t.head+t.size-1)%len(t.data)], true
}

// HasSegment reports whether slots i and i+1 are both filled.
func (t *Trail) HasSegment(i int) bool {
	return i >= 0 && i < len(t.data)-1 && i+1 < t.size
}

// Segment returns the endpoints between slots i and i+1. It panics when
// HasSegment(i) is false.
func (t *Trail) Segment(i int) (a, b Vec) {
	if !t.HasSegment(i) {
		panic(fmt.Sprintf("seismic: trail segment %d not available (%d of %d filled)", i, t.size, len(t.data)))
	}
	n := len(t.data)
	return t.data[(t.head+i)%n], t.data[(t.head+i+1)%n]
}
