// Package bitvec implements a resizable sequence of booleans packed one bit
// per position into fixed-width machine words.
//
// BitVector is to []bool what a bitset is to a map[int]bool: same indexed
// semantics, one bit of storage per element. On top of plain get/set it
// supports the full array surface — push/pop, resize with or without a fill
// value, insertion and removal at arbitrary positions (implemented as
// overlap-safe bit-range shifts), lexicographic comparison, and O(1) swap.
//
// Because Go has no references to individual bits, mutation through an
// iterator goes through a Ref, a small value identifying one bit's word and
// offset. Refs and iterators are borrowed views: they are invalidated by any
// call that changes the vector's size or capacity, exactly like a slice
// obtained before an append.
//
// The word type is a type parameter so callers can match the word width of
// external bit data:
//
//	v := bitvec.New[uint64]()
//	v.PushBack(true)
//	v.PushBack(false)
//	v.Set(70, true) // grows to 71 bits
//
// A BitVector performs no internal synchronization. Concurrent readers are
// safe only while no goroutine mutates the vector.
package bitvec
