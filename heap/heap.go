// Package heap implements a binary heap over fixed-size byte records, and an
// in-place heapsort for raw record arrays.
package heap

import (
	"github.com/jondebove/cds/internal/debug"
)

// Heap is a min-heap of records of a fixed byte stride, ordered by a caller
// supplied less function. Record slices returned by its methods alias the
// backing storage and stay valid only until the next Insert.
type Heap struct {
	data []byte
	tmp  []byte
	inc  int
	less func(a, b []byte) bool
}

// New constructs an empty heap of records of size inc bytes, ordered by
// less.
func New(inc int, less func(a, b []byte) bool) *Heap {
	debug.Assert("inc must be positive", func() bool { return inc > 0 })
	debug.Assert("less must not be nil", func() bool { return less != nil })

	return &Heap{
		tmp:  make([]byte, inc),
		inc:  inc,
		less: less,
	}
}

// Reset releases the backing storage and empties the heap. The heap remains
// valid for reuse.
func (h *Heap) Reset() {
	h.data = nil
}

// Len returns the number of records in the heap.
func (h *Heap) Len() int {
	return len(h.data) / h.inc
}

// At returns the record at heap position i, or nil if i is out of bounds.
// Position 0 is the minimum.
func (h *Heap) At(i int) []byte {
	if i < 0 || i >= h.Len() {
		return nil
	}
	return h.at(i)
}

func (h *Heap) at(i int) []byte {
	return h.data[i*h.inc : (i+1)*h.inc : (i+1)*h.inc]
}

func (h *Heap) isLess(i, j int) bool {
	if i == j {
		return false
	}
	return h.less(h.at(i), h.at(j))
}

func (h *Heap) swap(i, j int) {
	if i != j {
		a, b := h.at(i), h.at(j)
		copy(h.tmp, a)
		copy(a, b)
		copy(b, h.tmp)
	}
}

func (h *Heap) up(j int) {
	for {
		i := (j - 1) / 2 // parent
		if i == j || !h.isLess(j, i) {
			break
		}
		h.swap(i, j)
		j = i
	}
}

func (h *Heap) down(i0, n int) bool {
	i := i0
	for {
		j := 2*i + 1 // left child
		if j >= n || j < 0 { // j < 0 after overflow
			break
		}
		if k := j + 1; k < n && h.isLess(k, j) { // right child
			j = k
		}
		if !h.isLess(j, i) {
			break
		}
		h.swap(i, j)
		i = j
	}
	return i > i0
}

// Insert adds a copy of record x to the heap.
func (h *Heap) Insert(x []byte) {
	debug.Assert("record length matches the stride", func() bool {
		return len(x) == h.inc
	})

	h.data = append(h.data, x...)
	h.up(h.Len() - 1)
}

// Remove removes the record at heap position i. It returns the removed
// record, parked just past the heap's tail until the next Insert, or nil if
// i is out of bounds. Remove(0) pops the minimum.
func (h *Heap) Remove(i int) []byte {
	if i < 0 || i >= h.Len() {
		return nil
	}
	n := h.Len() - 1
	if n != i {
		h.swap(i, n)
		if !h.down(i, n) {
			h.up(i)
		}
	}
	out := h.data[n*h.inc : (n+1)*h.inc : (n+1)*h.inc]
	h.data = h.data[:n*h.inc]
	return out
}

// Update restores the heap order after the record at position i has been
// modified in place. It is equivalent to, but cheaper than, removing and
// re-inserting the record.
func (h *Heap) Update(i int) {
	debug.Assert("i within heap", func() bool { return i >= 0 && i < h.Len() })

	if !h.down(i, h.Len()) {
		h.up(i)
	}
}
