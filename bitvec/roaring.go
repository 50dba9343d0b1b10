package bitvec

import (
	"math/bits"

	"github.com/RoaringBitmap/roaring/v2"
)

// ToRoaring returns a Roaring bitmap containing the index of every set bit
// in v. The vector's length is not representable in a roaring bitmap, so
// round-tripping through FromRoaring needs it passed back in. Indices must
// fit in uint32.
func ToRoaring[E Word](v *BitVector[E]) *roaring.Bitmap {
	rb := roaring.New()
	w := wordBits[E]()
	data := v.Data()

	for i, word := range data {
		u := uint64(word)
		if i == len(data)-1 && v.freeBits > 0 {
			// The free tail holds unspecified bits; keep them out.
			u &= (uint64(1) << (w - v.freeBits)) - 1
		}
		base := i * w
		for u != 0 {
			rb.Add(uint32(base + bits.TrailingZeros64(u)))
			u &= u - 1
		}
	}
	return rb
}

// FromRoaring returns a BitVector of n bits with the bit at every index in
// rb set, all others clear. Indices in rb at or beyond n are dropped.
func FromRoaring[E Word](rb *roaring.Bitmap, n int) *BitVector[E] {
	v := NewSizeValue[E](n, false)

	it := rb.Iterator()
	for it.HasNext() {
		id := int(it.Next())
		if id >= n {
			break // iteration is ascending
		}
		v.Ref(id).Set(true)
	}
	return v
}
