package bitvec

import (
	"errors"
	"fmt"

	"github.com/timjr/eastl/vector"
)

// ErrOutOfRange is returned by At for indices not less than Len.
var ErrOutOfRange = errors.New("index out of range")

// Npos is the sentinel passed to SetCapacity to shrink capacity to the
// current size.
const Npos = vector.Npos

// BitVector is a resizable boolean sequence packed one bit per position
// into words of type E. The zero value is an empty vector ready for use.
//
// Internally it is a word vector plus a count of unused trailing bits in
// the last word; the count is always less than the word width, and a fully
// unused trailing word is never kept. Bits past Len within the last word
// hold unspecified values; no operation assumes they are zero.
type BitVector[E Word] struct {
	words    vector.Vector[E]
	freeBits int
}

// New returns an empty BitVector.
func New[E Word]() *BitVector[E] {
	return &BitVector[E]{}
}

// NewSize returns a BitVector of n bits. Bits in freshly allocated words
// are zero, but as with Resize the contract is only that they hold
// unspecified values; use NewSizeValue for a guaranteed fill.
func NewSize[E Word](n int) *BitVector[E] {
	v := &BitVector[E]{}
	v.Resize(n)
	return v
}

// NewSizeValue returns a BitVector of n bits, every bit set to value.
func NewSizeValue[E Word](n int, value bool) *BitVector[E] {
	v := &BitVector[E]{}
	w := wordBits[E]()
	v.words.ResizeWith(ceilDiv(n, w), fillWord[E](value))
	v.freeBits = v.words.Len()*w - n
	return v
}

// Clone returns a deep copy of the vector.
func (v *BitVector[E]) Clone() *BitVector[E] {
	return &BitVector[E]{
		words:    v.words.Clone(),
		freeBits: v.freeBits,
	}
}

// Len returns the number of bits in the vector.
func (v *BitVector[E]) Len() int {
	return v.words.Len()*wordBits[E]() - v.freeBits
}

// Cap returns the number of bits the vector can hold without reallocating.
func (v *BitVector[E]) Cap() int {
	return v.words.Cap() * wordBits[E]()
}

// Empty returns true if the vector holds no bits.
func (v *BitVector[E]) Empty() bool {
	return v.words.Empty()
}

// Reserve ensures capacity for at least n bits without changing Len.
func (v *BitVector[E]) Reserve(n int) {
	v.words.Reserve(ceilDiv(n, wordBits[E]()))
}

// SetCapacity reallocates word storage to hold exactly n bits, rounded up
// to a whole word; if n is less than Len the vector is truncated. Passing
// Npos shrinks capacity to fit the current size.
func (v *BitVector[E]) SetCapacity(n int) {
	if n < 0 {
		v.words.SetCapacity(vector.Npos)
		return
	}
	if n < v.Len() {
		v.Resize(n)
	}
	v.words.SetCapacity(ceilDiv(n, wordBits[E]()))
}

// Resize grows or shrinks the vector to exactly n bits. Bit positions
// created by growth have unspecified values: fresh words are zero, but
// growth into previously used storage exposes stale bits. Use ResizeFill
// for a guaranteed fill.
func (v *BitVector[E]) Resize(n int) {
	w := wordBits[E]()
	wordCount := ceilDiv(n, w)
	v.words.Resize(wordCount)
	v.freeBits = wordCount*w - n
}

// ResizeFill grows or shrinks the vector to exactly n bits, setting every
// bit created by growth to value. Growth fills bit by bit up to the next
// word boundary, then appends whole pre-filled words.
func (v *BitVector[E]) ResizeFill(n int, value bool) {
	if n <= v.Len() {
		v.Resize(n)
		return
	}

	newBits := n - v.Len()
	for v.freeBits > 0 && newBits > 0 {
		v.PushBack(value)
		newBits--
	}

	if newBits > 0 {
		w := wordBits[E]()
		wordCount := ceilDiv(n, w)
		v.words.ResizeWith(wordCount, fillWord[E](value))
		v.freeBits = wordCount*w - n
	}
}

// PushBack appends one bit. Amortized O(1): a new word is claimed only when
// the free tail of the last word is exhausted.
func (v *BitVector[E]) PushBack(value bool) {
	v.pushBack()
	v.Ref(v.Len() - 1).Set(value)
}

// pushBack claims one bit from the free tail, appending a word first when
// the tail is empty. The claimed bit's value is unspecified.
func (v *BitVector[E]) pushBack() {
	if v.freeBits == 0 {
		v.words.PushBackZero()
		v.freeBits = wordBits[E]()
	}
	v.freeBits--
}

// PopBack removes the last bit. When the last word becomes fully unused it
// is released, so a whole free word is never kept allocated. It panics if
// the vector is empty.
func (v *BitVector[E]) PopBack() {
	if v.Empty() {
		panic("bitvec: PopBack on empty BitVector")
	}

	v.freeBits++
	if v.freeBits == wordBits[E]() {
		v.words.PopBack()
		v.freeBits = 0
	}
}

// Test returns the bit at n, or defaultValue if n is outside [0, Len).
// It never fails.
func (v *BitVector[E]) Test(n int, defaultValue bool) bool {
	if n >= 0 && n < v.Len() {
		return v.Bit(n)
	}
	return defaultValue
}

// Set writes the bit at n, growing the vector to n+1 bits first if needed.
// Growth goes through the unfilled Resize: bits between the old Len and n
// hold unspecified values, not a guaranteed false.
func (v *BitVector[E]) Set(n int, value bool) {
	if n >= v.Len() {
		v.Resize(n + 1)
	}
	v.Ref(n).Set(value)
}

// At returns the bit at n, or ErrOutOfRange if n is outside [0, Len). This
// checked accessor is the only recoverable error in the package; Bit and
// Ref are the unchecked equivalents.
func (v *BitVector[E]) At(n int) (bool, error) {
	if n < 0 || n >= v.Len() {
		return false, fmt.Errorf("bitvec: at %d with len %d: %w", n, v.Len(), ErrOutOfRange)
	}
	return v.Bit(n), nil
}

// Bit returns the bit at n without bounds checking against Len. Indices
// outside the underlying word storage panic; indices inside the free tail
// return unspecified values. The caller is responsible for n < Len.
func (v *BitVector[E]) Bit(n int) bool {
	w := wordBits[E]()
	return v.words.At(n/w)&(E(1)<<(n%w)) != 0
}

// Ref returns a writable handle to the bit at n, without bounds checking
// against Len. The handle is invalidated by any size- or capacity-changing
// call on v.
func (v *BitVector[E]) Ref(n int) Ref[E] {
	w := wordBits[E]()
	data := v.words.Data()
	return Ref[E]{word: &data[n/w], bit: n % w}
}

// Front returns the first bit. It panics if the vector is empty.
func (v *BitVector[E]) Front() bool {
	return v.Bit(0)
}

// Back returns the last bit. It panics if the vector is empty.
func (v *BitVector[E]) Back() bool {
	return v.Bit(v.Len() - 1)
}

// Begin returns a mutable iterator at bit 0.
func (v *BitVector[E]) Begin() Iterator[E] {
	return Iterator[E]{ConstIterator[E]{words: v.words.Data()}}
}

// End returns a mutable iterator one past the last bit.
func (v *BitVector[E]) End() Iterator[E] {
	return v.Begin().Add(v.Len())
}

// ConstBegin returns a read-only iterator at bit 0.
func (v *BitVector[E]) ConstBegin() ConstIterator[E] {
	return ConstIterator[E]{words: v.words.Data()}
}

// ConstEnd returns a read-only iterator one past the last bit.
func (v *BitVector[E]) ConstEnd() ConstIterator[E] {
	return v.ConstBegin().Add(v.Len())
}

// RBegin returns a reverse iterator at the last bit.
func (v *BitVector[E]) RBegin() ReverseIterator[E] {
	return ReverseIterator[E]{base: v.End()}
}

// REnd returns a reverse iterator one before the first bit.
func (v *BitVector[E]) REnd() ReverseIterator[E] {
	return ReverseIterator[E]{base: v.Begin()}
}

// Insert inserts value before position and returns an iterator to the
// inserted bit. Bits from position to the old end shift one place toward
// the tail. The returned iterator is recomputed against the grown storage;
// the caller's position iterator may be stale if growth reallocated.
// Insert panics if position does not point into v.
func (v *BitVector[E]) Insert(position Iterator[E], value bool) Iterator[E] {
	if v.ValidateIterator(position.Const())&IterValid == 0 {
		panic("bitvec: Insert with invalid iterator")
	}

	// Reattach after potential reallocation.
	n := position.Distance(v.ConstBegin())
	v.pushBack()
	position = v.Begin().Add(n)

	moveBits(position, v.End().Sub(1), position.Add(1))
	position.Ref().Set(value)

	return position
}

// InsertN inserts n copies of value before position. Bits from position to
// the old end shift n places toward the tail. InsertN panics if position
// does not point into v.
func (v *BitVector[E]) InsertN(position Iterator[E], n int, value bool) {
	if v.ValidateIterator(position.Const())&IterValid == 0 {
		panic("bitvec: InsertN with invalid iterator")
	}

	p := position.Distance(v.ConstBegin())
	v.Resize(v.Len() + n)
	position = v.Begin().Add(p)

	insertEnd := position.Add(n)
	moveBits(position, v.End().Sub(n), insertEnd)

	for !position.Equal(insertEnd.Const()) {
		position.Ref().Set(value)
		position.Inc()
	}
}

// Erase removes the bit at position, shifting every later bit one place
// toward the front, and returns an iterator to the bit after the removed
// one. Erase panics if position is not dereferenceable.
func (v *BitVector[E]) Erase(position Iterator[E]) Iterator[E] {
	if v.ValidateIterator(position.Const())&IterDereferenceable == 0 {
		panic("bitvec: Erase with invalid iterator")
	}

	n := position.Distance(v.ConstBegin())
	moveBits(position.Add(1), v.End(), position)
	v.Resize(v.Len() - 1)

	// Shrinking never reallocates, but it can drop the last word, so the
	// returned iterator is rebuilt against the current storage.
	return v.Begin().Add(n)
}

// EraseRange removes the bits in [first, last), shifting later bits
// last-first places toward the front, and returns an iterator to the bit
// after the removed range. It panics if the range does not point into v.
func (v *BitVector[E]) EraseRange(first, last Iterator[E]) Iterator[E] {
	if v.ValidateIterator(last.Const())&IterValid == 0 {
		panic("bitvec: EraseRange with invalid iterator")
	}

	if !first.Equal(last.Const()) {
		if v.ValidateIterator(first.Const())&IterDereferenceable == 0 {
			panic("bitvec: EraseRange with invalid iterator")
		}

		count := last.Distance(first.Const())
		n := first.Distance(v.ConstBegin())
		moveBits(last, v.End(), first)
		v.Resize(v.Len() - count)
		first = v.Begin().Add(n)
	}

	return first
}

// EraseReverse removes the bit designated by position and returns a
// reverse iterator to the bit after it in reverse order.
func (v *BitVector[E]) EraseReverse(position ReverseIterator[E]) ReverseIterator[E] {
	position.Inc()
	return ReverseIterator[E]{base: v.Erase(position.Base())}
}

// EraseReverseRange removes the bits designated by the reverse range
// [first, last). The removal is a single contiguous forward erase of
// [last.Base(), first.Base()).
func (v *BitVector[E]) EraseReverseRange(first, last ReverseIterator[E]) ReverseIterator[E] {
	return ReverseIterator[E]{base: v.EraseRange(last.Base(), first.Base())}
}

// Clear removes all bits. Word storage is retained for reuse.
func (v *BitVector[E]) Clear() {
	v.words.Clear()
	v.freeBits = 0
}

// ResetLoseMemory resets the vector to its empty state without touching
// the word storage. It exists for callers that have handed the storage to
// an external owner (via Data or Container) and manage its lifetime there;
// it is not the normal teardown path — use Clear.
func (v *BitVector[E]) ResetLoseMemory() {
	v.words.ResetLoseMemory()
	v.freeBits = 0
}

// Swap exchanges the contents of v and o in O(1); no bits are copied.
// All iterators and refs into either vector are invalidated.
func (v *BitVector[E]) Swap(o *BitVector[E]) {
	v.words.Swap(&o.words)
	v.freeBits, o.freeBits = o.freeBits, v.freeBits
}

// Equal reports whether v and o hold the same bit sequence: same Len and
// the same bit at every index.
func (v *BitVector[E]) Equal(o *BitVector[E]) bool {
	if v.Len() != o.Len() {
		return false
	}

	a, b := v.ConstBegin(), o.ConstBegin()
	aEnd := v.ConstEnd()
	for !a.Equal(aEnd) {
		if a.Bit() != b.Bit() {
			return false
		}
		a.Inc()
		b.Inc()
	}
	return true
}

// Compare orders v and o lexicographically over their bits, with false
// ordered before true; on a common prefix the shorter vector is smaller.
// It returns -1, 0 or 1 like bytes.Compare.
func (v *BitVector[E]) Compare(o *BitVector[E]) int {
	a, b := v.ConstBegin(), o.ConstBegin()
	aEnd, bEnd := v.ConstEnd(), o.ConstEnd()

	for !a.Equal(aEnd) && !b.Equal(bEnd) {
		av, bv := a.Bit(), b.Bit()
		if av != bv {
			if bv {
				return -1
			}
			return 1
		}
		a.Inc()
		b.Inc()
	}

	switch {
	case v.Len() < o.Len():
		return -1
	case v.Len() > o.Len():
		return 1
	default:
		return 0
	}
}

// Data returns the underlying word slice, for code that operates on whole
// words directly. Bits past Len in the last word hold unspecified values.
// The slice is a borrowed view, valid only while v is not mutated.
func (v *BitVector[E]) Data() []E {
	return v.words.Data()
}

// Container returns the underlying word vector.
func (v *BitVector[E]) Container() *vector.Vector[E] {
	return &v.words
}

// Validate reports whether the vector's bookkeeping is consistent: the
// word store validates, and the free-tail count is within the last word.
// It is a diagnostic aid for tests, not part of the error contract.
func (v *BitVector[E]) Validate() bool {
	if !v.words.Validate() {
		return false
	}
	if v.freeBits < 0 || v.freeBits >= wordBits[E]() {
		return false
	}
	if v.words.Empty() && v.freeBits != 0 {
		return false
	}
	return true
}

// ValidateIterator classifies i against v's current storage and bounds.
func (v *BitVector[E]) ValidateIterator(i ConstIterator[E]) IterStatus {
	return i.Validate(v.words.Data(), v.freeBits)
}

// fillWord returns the all-zeros or all-ones word for value.
func fillWord[E Word](value bool) E {
	if value {
		return ^E(0)
	}
	return 0
}

func ceilDiv(n, w int) int {
	return (n + w - 1) / w
}
