package bitvec

// moveBits copies the bits in [start, end) to the range beginning at dest,
// within the same underlying storage. It is correct when the ranges
// overlap: a destination at or before the source copies front to back, a
// destination after the source copies back to front, so no source bit is
// overwritten before it is read. Insert and erase both ride on this.
//
// It moves one bit at a time. A word-at-a-time variant would be faster for
// long shifts but the container's shifts are dominated by short suffixes.
func moveBits[E Word](start, end, dest Iterator[E]) {
	if dest.LessEq(start.Const()) {
		for !start.Equal(end.Const()) {
			dest.Ref().Assign(start.Ref())
			dest.Inc()
			start.Inc()
		}
		return
	}

	dest.Advance(end.Distance(start.Const()))
	for !start.Equal(end.Const()) {
		dest.Dec()
		end.Dec()
		dest.Ref().Assign(end.Ref())
	}
}
