package bitvec

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromSeq(t *testing.T) {
	want := []bool{true, false, false, true, true}
	v := FromSeq[uint8](slices.Values(want))

	assert.Equal(t, want, bitsOf(v))
	assert.True(t, v.Validate())
}

func TestAssignReplacesContents(t *testing.T) {
	v := fromBools[uint16](true, true, true, true, true, true)

	v.Assign(slices.Values([]bool{false, true}))

	assert.Equal(t, []bool{false, true}, bitsOf(v))
	assert.Equal(t, 2, v.Len())
}

func TestAllYieldsIndexed(t *testing.T) {
	v := fromBools[uint8](true, false, true)

	gotIdx := make([]int, 0, 3)
	gotBit := make([]bool, 0, 3)
	for i, b := range v.All() {
		gotIdx = append(gotIdx, i)
		gotBit = append(gotBit, b)
	}

	assert.Equal(t, []int{0, 1, 2}, gotIdx)
	assert.Equal(t, []bool{true, false, true}, gotBit)
}

func TestAllEarlyStop(t *testing.T) {
	v := NewSizeValue[uint64](100, true)

	seen := 0
	for range v.Values() {
		seen++
		if seen == 10 {
			break
		}
	}
	assert.Equal(t, 10, seen)
}

func TestSeqRoundTripAcrossWords(t *testing.T) {
	src := make([]bool, 77)
	for i := range src {
		src[i] = i%5 == 0
	}

	v := FromSeq[uint32](slices.Values(src))
	require.Equal(t, 77, v.Len())

	got := slices.Collect(v.Values())
	assert.Equal(t, src, got)
}
