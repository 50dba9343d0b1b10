package bitvec

import "github.com/bits-and-blooms/bitset"

// ToBitSet copies a 64-bit-word vector into a bits-and-blooms BitSet of
// the same length, transferring whole words. Unspecified bits in the free
// tail are cleared in the copy so the two agree at every index.
func ToBitSet(v *BitVector[uint64]) *bitset.BitSet {
	data := v.Data()
	words := make([]uint64, len(data))
	copy(words, data)

	if len(words) > 0 && v.freeBits > 0 {
		words[len(words)-1] &= (uint64(1) << (64 - v.freeBits)) - 1
	}
	return bitset.FromWithLength(uint(v.Len()), words)
}

// FromBitSet copies a bits-and-blooms BitSet into a 64-bit-word BitVector
// of the same length, transferring whole words.
func FromBitSet(bs *bitset.BitSet) *BitVector[uint64] {
	n := int(bs.Len())
	v := New[uint64]()
	v.Resize(n)
	copy(v.words.Data(), bs.Bytes())
	return v
}
