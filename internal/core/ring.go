package core

// Ring is a fixed-capacity queue. Pushing onto a full ring overwrites the
// oldest element.
type Ring[T any] struct {
	buf   []T
	start int // index of the oldest element
	count int
}

// NewRing creates an empty ring holding at most capacity elements.
// A capacity below 1 is raised to 1.
func NewRing[T any](capacity int) *Ring[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &Ring[T]{buf: make([]T, capacity)}
}

// Push appends v, dropping the oldest element when the ring is full.
func (r *Ring[T]) Push(v T) {
	if r.count < len(r.buf) {
		r.buf[(r.start+r.count)%len(r.buf)] = v
		r.count++
		return
	}
	r.buf[r.start] = v
	r.start = (r.start + 1) % len(r.buf)
}

// Len returns the number of stored elements.
func (r *Ring[T]) Len() int {
	return r.count
}

// Cap returns the ring capacity.
func (r *Ring[T]) Cap() int {
	return len(r.buf)
}

// Full reports whether the ring holds Cap elements.
func (r *Ring[T]) Full() bool {
	return r.count == len(r.buf)
}

// At returns the i-th element, oldest first. i must be in [0, Len).
func (r *Ring[T]) At(i int) T {
	return r.buf[(r.start+i)%len(r.buf)]
}

// Reset empties the ring without releasing its storage.
func (r *Ring[T]) Reset() {
	r.start = 0
	r.count = 0
}
