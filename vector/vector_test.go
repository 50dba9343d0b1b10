package vector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVector_PushPop(t *testing.T) {
	var v Vector[uint32]

	assert.True(t, v.Empty())
	assert.Equal(t, 0, v.Len())

	v.PushBack(1)
	v.PushBack(2)
	v.PushBack(3)

	assert.Equal(t, 3, v.Len())
	assert.Equal(t, uint32(2), v.At(1))

	v.PopBack()
	assert.Equal(t, 2, v.Len())
	assert.Equal(t, uint32(2), v.At(v.Len()-1))
}

func TestVector_PushBackZero(t *testing.T) {
	var v Vector[uint64]
	v.PushBack(7)
	v.PushBackZero()

	assert.Equal(t, 2, v.Len())
	assert.Equal(t, uint64(0), v.At(1))
}

func TestVector_Reserve(t *testing.T) {
	var v Vector[uint16]
	v.PushBack(42)

	v.Reserve(100)
	assert.GreaterOrEqual(t, v.Cap(), 100)
	assert.Equal(t, 1, v.Len())
	assert.Equal(t, uint16(42), v.At(0))

	capBefore := v.Cap()
	v.Reserve(10) // never shrinks
	assert.Equal(t, capBefore, v.Cap())
}

func TestVector_Resize(t *testing.T) {
	var v Vector[uint8]

	v.Resize(5)
	assert.Equal(t, 5, v.Len())
	assert.Equal(t, uint8(0), v.At(4))

	v.Set(4, 9)
	v.Resize(2)
	assert.Equal(t, 2, v.Len())

	// Growth within capacity reuses the backing array, stale values and all.
	v.Resize(5)
	assert.Equal(t, uint8(9), v.At(4))
}

func TestVector_ResizeWith(t *testing.T) {
	var v Vector[uint8]
	v.PushBack(1)

	v.ResizeWith(4, 0xFF)
	require.Equal(t, 4, v.Len())
	assert.Equal(t, uint8(1), v.At(0))
	for i := 1; i < 4; i++ {
		assert.Equal(t, uint8(0xFF), v.At(i))
	}

	v.ResizeWith(2, 0xAA) // shrink ignores fill
	assert.Equal(t, 2, v.Len())
	assert.Equal(t, uint8(0xFF), v.At(1))
}

func TestVector_SetCapacity(t *testing.T) {
	var v Vector[uint32]
	for i := 0; i < 10; i++ {
		v.PushBack(uint32(i))
	}
	v.Reserve(64)

	v.SetCapacity(Npos)
	assert.Equal(t, 10, v.Cap())
	assert.Equal(t, 10, v.Len())
	assert.Equal(t, uint32(9), v.At(9))

	v.SetCapacity(4) // below length truncates
	assert.Equal(t, 4, v.Len())
	assert.Equal(t, 4, v.Cap())
	assert.Equal(t, uint32(3), v.At(3))
}

func TestVector_Swap(t *testing.T) {
	var a, b Vector[uint64]
	a.PushBack(1)
	b.PushBack(2)
	b.PushBack(3)

	a.Swap(&b)

	assert.Equal(t, 2, a.Len())
	assert.Equal(t, 1, b.Len())
	assert.Equal(t, uint64(2), a.At(0))
	assert.Equal(t, uint64(1), b.At(0))
}

func TestVector_Clone(t *testing.T) {
	var v Vector[uint8]
	v.PushBack(5)

	c := v.Clone()
	c.Set(0, 6)

	assert.Equal(t, uint8(5), v.At(0))
	assert.Equal(t, uint8(6), c.At(0))
}

func TestVector_ClearRetainsCapacity(t *testing.T) {
	var v Vector[uint32]
	v.Reserve(32)
	v.PushBack(1)

	v.Clear()
	assert.Equal(t, 0, v.Len())
	assert.GreaterOrEqual(t, v.Cap(), 32)
}

func TestVector_ResetLoseMemory(t *testing.T) {
	var v Vector[uint32]
	v.PushBack(1)
	data := v.Data()

	v.ResetLoseMemory()

	assert.Equal(t, 0, v.Len())
	assert.Equal(t, 0, v.Cap())
	assert.True(t, v.Validate())

	// The abandoned storage is untouched; the external holder keeps it.
	assert.Equal(t, uint32(1), data[0])
}

func TestVector_Validate(t *testing.T) {
	var v Vector[uint8]
	assert.True(t, v.Validate())

	v.PushBack(1)
	v.Resize(100)
	v.Resize(3)
	assert.True(t, v.Validate())
}
