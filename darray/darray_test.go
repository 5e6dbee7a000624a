package darray

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func put(e []byte, v int32) {
	binary.LittleEndian.PutUint32(e, uint32(v))
}

func get(e []byte) int32 {
	return int32(binary.LittleEndian.Uint32(e))
}

// values reads the whole array back as int32s.
func values(a *Array) []int32 {
	out := make([]int32, 0, a.Len())
	for i := 0; i < a.Len(); i++ {
		out = append(out, get(a.At(i)))
	}
	return out
}

func newInts(vs ...int32) *Array {
	a := New(4)
	for _, v := range vs {
		put(a.Push(1), v)
	}
	return a
}

func TestArray(t *testing.T) {
	t.Run("push and pop", func(t *testing.T) {
		a := New(4)
		assert.Equal(t, 0, a.Len())
		assert.Nil(t, a.Data())

		for i := int32(0); i < 10; i++ {
			e := a.Push(1)
			require.Len(t, e, 4)
			put(e, i)
		}
		assert.Equal(t, 10, a.Len())

		e := a.Pop(1)
		require.NotNil(t, e)
		assert.Equal(t, int32(9), get(e))
		assert.Equal(t, 9, a.Len())

		assert.Nil(t, a.Pop(100))
		assert.Equal(t, 9, a.Len())
	})

	t.Run("at", func(t *testing.T) {
		a := newInts(0, 1, 2, 3)

		assert.Equal(t, int32(2), get(a.At(2)))
		assert.Equal(t, int32(3), get(a.At(-1)))
		assert.Equal(t, int32(0), get(a.At(-4)))
		assert.Nil(t, a.At(4))
		assert.Nil(t, a.At(-5))
	})

	t.Run("splice", func(t *testing.T) {
		a := newInts(0, 1, 2, 3, 4, 5, 6, 7, 8)

		e := a.Splice(3, 2, 1)
		require.NotNil(t, e)
		put(e, 42)
		assert.Equal(t, []int32{0, 1, 2, 42, 5, 6, 7, 8}, values(a))

		// pure insertion grows the array
		put(a.Splice(1, 0, 1), 99)
		assert.Equal(t, []int32{0, 99, 1, 2, 42, 5, 6, 7, 8}, values(a))

		// pure removal shrinks it
		a.Splice(0, 2, 0)
		assert.Equal(t, []int32{1, 2, 42, 5, 6, 7, 8}, values(a))
	})

	t.Run("remove swap", func(t *testing.T) {
		a := newInts(0, 1, 2, 3)

		e := a.RemoveSwap(0)
		require.NotNil(t, e)
		assert.Equal(t, int32(3), get(e))
		assert.Equal(t, []int32{3, 1, 2}, values(a))

		// removing the last record needs no swap
		e = a.RemoveSwap(-1)
		require.NotNil(t, e)
		assert.Equal(t, int32(2), get(e))
		assert.Equal(t, []int32{3, 1}, values(a))

		assert.Nil(t, a.RemoveSwap(5))
	})

	t.Run("swap", func(t *testing.T) {
		a := newInts(0, 1, 2, 3)

		a.Swap(0, -1)
		assert.Equal(t, []int32{3, 1, 2, 0}, values(a))

		a.Swap(1, 1) // no-op
		a.Swap(0, 9) // out of bounds, no-op
		assert.Equal(t, []int32{3, 1, 2, 0}, values(a))
	})

	t.Run("set len", func(t *testing.T) {
		a := newInts(1, 2, 3)

		a.SetLen(1)
		assert.Equal(t, []int32{1}, values(a))

		// growth into fresh storage zero-fills
		a.SetCap(1)
		a.SetLen(3)
		assert.Equal(t, []int32{1, 0, 0}, values(a))
	})

	t.Run("set cap", func(t *testing.T) {
		a := newInts(1, 2, 3, 4)

		a.SetCap(8)
		assert.Equal(t, 8, a.Cap())
		assert.Equal(t, []int32{1, 2, 3, 4}, values(a))

		a.SetCap(2) // truncates
		assert.Equal(t, []int32{1, 2}, values(a))

		a.SetCap(0)
		assert.Equal(t, 0, a.Len())
		assert.Nil(t, a.Data())
	})

	t.Run("reset", func(t *testing.T) {
		a := newInts(1, 2, 3)

		a.Reset()
		assert.Equal(t, 0, a.Len())

		put(a.Push(1), 7)
		assert.Equal(t, []int32{7}, values(a))
	})
}
