package bitvec_test

import (
	"fmt"

	"github.com/timjr/eastl/bitvec"
)

func ExampleBitVector() {
	v := bitvec.New[uint64]()

	v.PushBack(true)
	v.PushBack(false)
	v.PushBack(true)

	fmt.Println(v.Len())
	fmt.Println(v.Bit(1))

	v.Insert(v.Begin().Add(1), true)
	for _, b := range v.All() {
		fmt.Print(boolBit(b))
	}
	fmt.Println()

	// Output:
	// 3
	// false
	// 1101
}

func ExampleBitVector_Set() {
	v := bitvec.New[uint32]()

	// Set grows the vector on demand.
	v.Set(70, true)

	fmt.Println(v.Len())
	fmt.Println(v.Test(70, false))
	fmt.Println(v.Test(1000, true))

	// Output:
	// 71
	// true
	// true
}

func boolBit(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
