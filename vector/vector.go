// Package vector provides a growable, slice-backed dynamic array with
// explicit capacity control.
//
// Vector is the backing store consumed by bitvec; unlike a bare slice it
// carries its capacity policy with it (Reserve, SetCapacity, ResetLoseMemory)
// so the containers built on top never reallocate behind the caller's back.
package vector

// Npos is the sentinel passed to SetCapacity to shrink capacity to the
// current length.
const Npos = -1

// Vector is a growable array of T. The zero value is an empty vector ready
// for use. Vector is not safe for concurrent mutation.
type Vector[T any] struct {
	items []T
}

// Len returns the number of elements.
func (v *Vector[T]) Len() int {
	return len(v.items)
}

// Cap returns the number of elements the vector can hold without
// reallocating.
func (v *Vector[T]) Cap() int {
	return cap(v.items)
}

// Empty returns true if the vector holds no elements.
func (v *Vector[T]) Empty() bool {
	return len(v.items) == 0
}

// PushBack appends x, growing capacity as needed.
func (v *Vector[T]) PushBack(x T) {
	v.items = append(v.items, x)
}

// PushBackZero appends a zero-valued element.
func (v *Vector[T]) PushBackZero() {
	var zero T
	v.items = append(v.items, zero)
}

// PopBack removes the last element. It panics if the vector is empty.
func (v *Vector[T]) PopBack() {
	v.items = v.items[:len(v.items)-1]
}

// Reserve ensures capacity for at least n elements without changing the
// length. It never shrinks.
func (v *Vector[T]) Reserve(n int) {
	if n <= cap(v.items) {
		return
	}
	grown := make([]T, len(v.items), n)
	copy(grown, v.items)
	v.items = grown
}

// Resize sets the length to exactly n. When shrinking, or when growing
// within the current capacity, the backing array is reused, so elements
// exposed by growth keep whatever values the array previously held.
// Elements in freshly allocated storage are zero-valued.
func (v *Vector[T]) Resize(n int) {
	if n <= cap(v.items) {
		v.items = v.items[:n]
		return
	}
	grown := make([]T, n, growCap(cap(v.items), n))
	copy(grown, v.items)
	v.items = grown
}

// ResizeWith sets the length to exactly n, writing fill into every element
// position created by growth.
func (v *Vector[T]) ResizeWith(n int, fill T) {
	old := len(v.items)
	v.Resize(n)
	for i := old; i < n; i++ {
		v.items[i] = fill
	}
}

// SetCapacity reallocates so that capacity is exactly max(n, Len()).
// If n is less than the current length the vector is first truncated to n.
// Passing Npos (or any negative n) shrinks capacity to fit the current
// length.
func (v *Vector[T]) SetCapacity(n int) {
	if n < 0 {
		n = len(v.items)
	}
	if n < len(v.items) {
		v.items = v.items[:n]
	}
	if n == cap(v.items) {
		return
	}
	resized := make([]T, len(v.items), n)
	copy(resized, v.items)
	v.items = resized
}

// At returns the element at index i. Out-of-range indices panic.
func (v *Vector[T]) At(i int) T {
	return v.items[i]
}

// Set writes x at index i. Out-of-range indices panic.
func (v *Vector[T]) Set(i int, x T) {
	v.items[i] = x
}

// Data returns the backing slice. The slice is a borrowed view: it is valid
// only until the next size- or capacity-changing call on the vector.
func (v *Vector[T]) Data() []T {
	return v.items
}

// Swap exchanges the contents of v and o in O(1).
func (v *Vector[T]) Swap(o *Vector[T]) {
	v.items, o.items = o.items, v.items
}

// Clone returns a deep copy of the vector.
func (v *Vector[T]) Clone() Vector[T] {
	if v.items == nil {
		return Vector[T]{}
	}
	items := make([]T, len(v.items))
	copy(items, v.items)
	return Vector[T]{items: items}
}

// Clear sets the length to zero. Capacity is retained.
func (v *Vector[T]) Clear() {
	v.items = v.items[:0]
}

// ResetLoseMemory resets the vector to its empty state without touching the
// backing array. Any caller still holding the slice from Data keeps a live,
// unmodified view; otherwise the storage is left to the garbage collector.
func (v *Vector[T]) ResetLoseMemory() {
	v.items = nil
}

// Validate reports whether the vector's internal bookkeeping is consistent.
// It is a diagnostic aid for tests, not part of the error contract.
func (v *Vector[T]) Validate() bool {
	if v.items == nil {
		return true
	}
	return len(v.items) <= cap(v.items)
}

// growCap doubles capacity until it covers need, so repeated PushBack and
// Resize calls stay amortized O(1).
func growCap(current, need int) int {
	next := current * 2
	if next < need {
		next = need
	}
	return next
}
