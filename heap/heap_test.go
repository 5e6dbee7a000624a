package heap

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jondebove/cds/internal/pcg"
)

func put(e []byte, v int32) {
	binary.LittleEndian.PutUint32(e, uint32(v))
}

func get(e []byte) int32 {
	return int32(binary.LittleEndian.Uint32(e))
}

func lessInt32(a, b []byte) bool {
	return get(a) < get(b)
}

func newInts(vs ...int32) *Heap {
	h := New(4, lessInt32)
	var e [4]byte
	for _, v := range vs {
		put(e[:], v)
		h.Insert(e[:])
	}
	return h
}

// drain pops the minimum until the heap is empty.
func drain(h *Heap) []int32 {
	out := make([]int32, 0, h.Len())
	for h.Len() > 0 {
		out = append(out, get(h.Remove(0)))
	}
	return out
}

func TestHeap(t *testing.T) {
	t.Run("insert and remove sorted", func(t *testing.T) {
		h := newInts(10, 9, 8, 7, 6, 5, 4, 3, 2, 1)
		assert.Equal(t, 10, h.Len())
		assert.Equal(t, int32(1), get(h.At(0)))

		got := drain(h)
		assert.Equal(t, []int32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, got)
		assert.Equal(t, 0, h.Len())
	})

	t.Run("remove by position", func(t *testing.T) {
		h := newInts(5, 1, 4, 2, 3)

		removed := get(h.Remove(2))
		assert.Equal(t, 4, h.Len())

		rest := drain(h)
		seen := append([]int32{removed}, rest...)
		assert.ElementsMatch(t, []int32{1, 2, 3, 4, 5}, seen)
		assert.IsIncreasing(t, rest)
	})

	t.Run("remove out of bounds", func(t *testing.T) {
		h := newInts(1, 2, 3)
		assert.Nil(t, h.Remove(-1))
		assert.Nil(t, h.Remove(3))
		assert.Equal(t, 3, h.Len())
	})

	t.Run("update", func(t *testing.T) {
		h := newInts(1, 2, 3, 4, 5)

		// the minimum becomes the maximum
		put(h.At(0), 100)
		h.Update(0)
		assert.Equal(t, int32(2), get(h.At(0)))

		got := drain(h)
		assert.Equal(t, []int32{2, 3, 4, 5, 100}, got)
	})

	t.Run("at out of bounds", func(t *testing.T) {
		h := newInts(1)
		assert.Nil(t, h.At(-1))
		assert.Nil(t, h.At(1))
	})

	t.Run("reset", func(t *testing.T) {
		h := newInts(3, 1, 2)
		h.Reset()
		require.Equal(t, 0, h.Len())

		var e [4]byte
		put(e[:], 7)
		h.Insert(e[:])
		assert.Equal(t, []int32{7}, drain(h))
	})

	t.Run("random", func(t *testing.T) {
		rng := pcg.New(11, 0)
		h := New(4, lessInt32)
		var e [4]byte
		for i := 0; i < 1000; i++ {
			put(e[:], int32(rng.Uint32()))
			h.Insert(e[:])
		}
		assert.IsNonDecreasing(t, drain(h))
	})
}
