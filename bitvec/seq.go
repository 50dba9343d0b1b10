package bitvec

import "iter"

// FromSeq returns a BitVector holding every boolean produced by seq, in
// order.
func FromSeq[E Word](seq iter.Seq[bool]) *BitVector[E] {
	v := New[E]()
	v.Assign(seq)
	return v
}

// Assign replaces the vector's contents with the booleans produced by seq.
// Callers that know the sequence length can Reserve first; that is a
// performance hint, not a requirement.
func (v *BitVector[E]) Assign(seq iter.Seq[bool]) {
	v.Clear()
	for value := range seq {
		v.PushBack(value)
	}
}

// All returns an iterator over (index, bit) pairs, front to back.
func (v *BitVector[E]) All() iter.Seq2[int, bool] {
	return func(yield func(int, bool) bool) {
		it, end := v.ConstBegin(), v.ConstEnd()
		for i := 0; !it.Equal(end); i++ {
			if !yield(i, it.Bit()) {
				return
			}
			it.Inc()
		}
	}
}

// Values returns an iterator over the bits, front to back.
func (v *BitVector[E]) Values() iter.Seq[bool] {
	return func(yield func(bool) bool) {
		it, end := v.ConstBegin(), v.ConstEnd()
		for !it.Equal(end) {
			if !yield(it.Bit()) {
				return
			}
			it.Inc()
		}
	}
}
