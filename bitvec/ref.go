package bitvec

import "math/bits"

// Word is the set of unsigned integer types usable as the storage word of a
// BitVector.
type Word interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// wordBits returns the width of E in bits (8, 16, 32 or 64).
func wordBits[E Word]() int {
	return bits.Len64(uint64(^E(0)))
}

// Ref is a read/write handle to a single bit: a word pointer plus a bit
// offset within that word. It does not own the word; it is a transient view
// into a BitVector's storage and is invalidated by any size- or
// capacity-changing call on the owning vector.
type Ref[E Word] struct {
	word *E
	bit  int
}

// Get returns the referenced bit.
func (r Ref[E]) Get() bool {
	return *r.word&(E(1)<<r.bit) != 0
}

// Set writes the referenced bit, leaving the word's other bits untouched.
func (r Ref[E]) Set(v bool) {
	mask := E(1) << r.bit
	if v {
		*r.word |= mask
	} else {
		*r.word &^= mask
	}
}

// Assign copies the bit value referenced by rhs into the bit referenced
// by r.
func (r Ref[E]) Assign(rhs Ref[E]) {
	r.Set(rhs.Get())
}
