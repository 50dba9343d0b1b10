package bitvec

// IterStatus classifies an iterator against its owning vector's bounds.
type IterStatus uint8

const (
	// IterNone marks an iterator that does not point into the vector at
	// all — stale after a reallocation, or out of range.
	IterNone IterStatus = 0

	// IterValid marks an iterator inside [Begin, End].
	IterValid IterStatus = 1 << 0

	// IterCurrent marks an iterator whose storage view matches the
	// vector's current storage (it was not left behind by a resize).
	IterCurrent IterStatus = 1 << 1

	// IterDereferenceable marks an iterator strictly before End.
	IterDereferenceable IterStatus = 1 << 2
)

// ConstIterator is a read-only random-access cursor over the bits of a
// BitVector. Its coordinate is a word index plus a bit offset in [0, W);
// the end position is represented as (wordCount, 0). Dereferencing yields a
// boolean. Like a Ref, an iterator is a borrowed view invalidated by
// size- or capacity-changing calls on the owning vector.
//
// The zero ConstIterator is not usable; obtain iterators from a BitVector.
type ConstIterator[E Word] struct {
	words []E
	word  int
	bit   int
}

// Bit returns the bit at the iterator's position.
func (it ConstIterator[E]) Bit() bool {
	return it.words[it.word]&(E(1)<<it.bit) != 0
}

// BitAt returns the bit n positions away, without moving the iterator.
func (it ConstIterator[E]) BitAt(n int) bool {
	return it.Add(n).Bit()
}

// Inc moves the iterator forward one bit, carrying into the next word at
// the word boundary.
func (it *ConstIterator[E]) Inc() {
	it.bit++
	if it.bit == wordBits[E]() {
		it.word++
		it.bit = 0
	}
}

// Dec moves the iterator back one bit, borrowing from the previous word at
// the word boundary.
func (it *ConstIterator[E]) Dec() {
	if it.bit == 0 {
		it.word--
		it.bit = wordBits[E]()
	}
	it.bit--
}

// Advance moves the iterator by n bits; n may be negative. The word delta
// is computed with floor semantics, not Go's truncation toward zero, so
// stepping -1 from offset 0 lands on offset W-1 of the previous word.
func (it *ConstIterator[E]) Advance(n int) {
	w := wordBits[E]()
	n += it.bit

	if n >= 0 {
		it.word += n / w
		it.bit = n % w
		return
	}

	// n in [-1, -w] must step back exactly one word, [-w-1, -2w] two, and
	// so on.
	backward := -n + w - 1
	it.word -= backward / w
	it.bit = (w - 1) - (backward % w)
}

// Add returns a copy of the iterator advanced by n bits.
func (it ConstIterator[E]) Add(n int) ConstIterator[E] {
	it.Advance(n)
	return it
}

// Sub returns a copy of the iterator moved back by n bits.
func (it ConstIterator[E]) Sub(n int) ConstIterator[E] {
	it.Advance(-n)
	return it
}

// Distance returns the signed number of bits from rhs to it, so that
// rhs.Add(it.Distance(rhs)) equals it.
func (it ConstIterator[E]) Distance(rhs ConstIterator[E]) int {
	return (it.word-rhs.word)*wordBits[E]() + it.bit - rhs.bit
}

// Equal reports whether both iterators are at the same position.
func (it ConstIterator[E]) Equal(rhs ConstIterator[E]) bool {
	return it.word == rhs.word && it.bit == rhs.bit
}

// Less orders iterators lexicographically on (word, bit offset).
func (it ConstIterator[E]) Less(rhs ConstIterator[E]) bool {
	return it.word < rhs.word || (it.word == rhs.word && it.bit < rhs.bit)
}

// LessEq reports it <= rhs.
func (it ConstIterator[E]) LessEq(rhs ConstIterator[E]) bool {
	return it.word < rhs.word || (it.word == rhs.word && it.bit <= rhs.bit)
}

// Greater reports it > rhs.
func (it ConstIterator[E]) Greater(rhs ConstIterator[E]) bool {
	return !it.LessEq(rhs)
}

// GreaterEq reports it >= rhs.
func (it ConstIterator[E]) GreaterEq(rhs ConstIterator[E]) bool {
	return !it.Less(rhs)
}

// Validate classifies the iterator against a vector whose storage is words
// and whose last word has freeBits unused trailing bits. An iterator left
// over from before a reallocation or resize reports IterNone.
func (it ConstIterator[E]) Validate(words []E, freeBits int) IterStatus {
	if len(it.words) != len(words) {
		return IterNone
	}
	if len(words) > 0 && &it.words[0] != &words[0] {
		return IterNone
	}

	w := wordBits[E]()
	if it.word < 0 || it.bit < 0 || it.bit >= w {
		return IterNone
	}

	// The logical end sits freeBits before the storage end, inside the
	// partial last word when freeBits > 0.
	pos := it.word*w + it.bit
	size := len(words)*w - freeBits

	switch {
	case pos < size:
		return IterValid | IterCurrent | IterDereferenceable
	case pos == size:
		return IterValid | IterCurrent
	default:
		return IterNone
	}
}

// Iterator is the mutable refinement of ConstIterator: same coordinate and
// arithmetic semantics, but dereferencing yields a writable Ref.
type Iterator[E Word] struct {
	ConstIterator[E]
}

// Const returns the read-only view of the iterator.
func (it Iterator[E]) Const() ConstIterator[E] {
	return it.ConstIterator
}

// Ref returns a writable handle to the bit at the iterator's position.
func (it Iterator[E]) Ref() Ref[E] {
	return Ref[E]{word: &it.words[it.word], bit: it.bit}
}

// RefAt returns a writable handle to the bit n positions away.
func (it Iterator[E]) RefAt(n int) Ref[E] {
	return it.Add(n).Ref()
}

// Add returns a copy of the iterator advanced by n bits.
func (it Iterator[E]) Add(n int) Iterator[E] {
	it.Advance(n)
	return it
}

// Sub returns a copy of the iterator moved back by n bits.
func (it Iterator[E]) Sub(n int) Iterator[E] {
	it.Advance(-n)
	return it
}

// ReverseIterator walks bits from back to front. It wraps a forward
// iterator positioned one past the bit it designates, so RBegin wraps End
// and REnd wraps Begin.
type ReverseIterator[E Word] struct {
	base Iterator[E]
}

// Base returns the underlying forward iterator (one past the designated
// bit).
func (it ReverseIterator[E]) Base() Iterator[E] {
	return it.base
}

// Inc moves one bit toward the front of the vector.
func (it *ReverseIterator[E]) Inc() {
	it.base.Dec()
}

// Dec moves one bit toward the back of the vector.
func (it *ReverseIterator[E]) Dec() {
	it.base.Inc()
}

// Bit returns the designated bit.
func (it ReverseIterator[E]) Bit() bool {
	return it.base.Sub(1).Bit()
}

// Ref returns a writable handle to the designated bit.
func (it ReverseIterator[E]) Ref() Ref[E] {
	return it.base.Sub(1).Ref()
}

// Equal reports whether both reverse iterators are at the same position.
func (it ReverseIterator[E]) Equal(rhs ReverseIterator[E]) bool {
	return it.base.Equal(rhs.base.ConstIterator)
}
