package containers

// Ring is a fixed number of slots with a cursor that wraps around the first
// n slots in use. Capacity never changes after creation.
type Ring[T any] struct {
	slots  []T
	inUse  int
	cursor int
}

func NewRing[T any](capacity int) *Ring[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &Ring[T]{
		slots: make([]T, capacity),
		inUse: 1,
	}
}

// Cap returns the number of slots.
func (r *Ring[T]) Cap() int {
	return len(r.slots)
}

// InUse returns how many slots the cursor cycles through.
func (r *Ring[T]) InUse() int {
	return r.inUse
}

// SetInUse limits the cursor to the first n slots. n must be in [1, Cap()];
// the cursor is reset to 0.
func (r *Ring[T]) SetInUse(n int) bool {
	if n < 1 || n > len(r.slots) {
		return false
	}
	r.inUse = n
	r.cursor = 0
	return true
}

func (r *Ring[T]) Cursor() int {
	return r.cursor
}

// Advance moves the cursor to the next slot in use and returns it.
func (r *Ring[T]) Advance() int {
	r.cursor = (r.cursor + 1) % r.inUse
	return r.cursor
}

// At returns a pointer to slot i, or nil if i is out of range.
func (r *Ring[T]) At(i int) *T {
	if i < 0 || i >= len(r.slots) {
		return nil
	}
	return &r.slots[i]
}

// Current returns a pointer to the slot under the cursor.
func (r *Ring[T]) Current() *T {
	return &r.slots[r.cursor]
}

// Each calls fn for every slot, in use or not.
func (r *Ring[T]) Each(fn func(i int, slot *T)) {
	for i := range r.slots {
		fn(i, &r.slots[i])
	}
}

// Reset zeroes every slot and returns to a single slot in use.
func (r *Ring[T]) Reset() {
	var zero T
	for i := range r.slots {
		r.slots[i] = zero
	}
	r.inUse = 1
	r.cursor = 0
}
