// Package darray implements a growable array of fixed-size byte records.
//
// Like htable, the array never interprets its records; the caller declares a
// byte stride at creation time and reads and writes record slices directly.
// Negative indices address records from the end of the array, so At(-1) is
// the last record.
package darray

import (
	"github.com/jondebove/cds/internal/debug"
)

// Array is a dynamic array of records of a fixed byte stride. Record slices
// returned by its methods alias the backing storage and stay valid only
// until the next operation that grows the array.
type Array struct {
	data []byte
	inc  int
}

// New constructs an empty array of records of size inc bytes. It does not
// allocate.
func New(inc int) *Array {
	debug.Assert("inc must be positive", func() bool { return inc > 0 })

	return &Array{inc: inc}
}

// Reset releases the backing storage and empties the array. The array
// remains valid for reuse.
func (a *Array) Reset() {
	a.data = nil
}

// Len returns the number of records.
func (a *Array) Len() int {
	return len(a.data) / a.inc
}

// Cap returns the number of records the array can hold without growing.
func (a *Array) Cap() int {
	return cap(a.data) / a.inc
}

// SetCap reallocates the backing storage to hold exactly capacity records,
// truncating the array if it currently holds more.
func (a *Array) SetCap(capacity int) {
	debug.Assert("capacity must be non-negative", func() bool { return capacity >= 0 })

	if capacity == 0 {
		a.Reset()
		return
	}
	n := len(a.data)
	if max := capacity * a.inc; n > max {
		n = max
	}
	data := make([]byte, n, capacity*a.inc)
	copy(data, a.data)
	a.data = data
}

// SetLen resizes the array to n records. Records exposed by growing past a
// previous truncation keep their old bytes; records in freshly allocated
// storage are zero.
func (a *Array) SetLen(n int) {
	debug.Assert("length must be non-negative", func() bool { return n >= 0 })

	need := n * a.inc
	if need > cap(a.data) {
		grow := a.Cap() + a.Cap()/2 + 8
		if grow < n {
			grow = n
		}
		data := make([]byte, need, grow*a.inc)
		copy(data, a.data)
		a.data = data
		return
	}
	a.data = a.data[:need]
}

// Push grows the array by n records and returns the appended region.
func (a *Array) Push(n int) []byte {
	debug.Assert("n must be non-negative", func() bool { return n >= 0 })

	end := len(a.data)
	a.SetLen(a.Len() + n)
	return a.data[end:]
}

// Pop shrinks the array by n records and returns the removed region, still
// populated until the next growth, or nil if the array holds fewer than n
// records.
func (a *Array) Pop(n int) []byte {
	debug.Assert("n must be non-negative", func() bool { return n >= 0 })

	if a.Len() < n {
		return nil
	}
	end := len(a.data)
	out := a.data[end-n*a.inc : end]
	a.data = a.data[:end-n*a.inc]
	return out
}

// index folds a possibly negative record index into array positions.
func (a *Array) index(i int) int {
	if i < 0 {
		i += a.Len()
	}
	return i
}

// Data returns the raw backing bytes of all records, or nil if the array is
// empty.
func (a *Array) Data() []byte {
	if len(a.data) == 0 {
		return nil
	}
	return a.data
}

// At returns the record at index i, or nil if i is out of bounds.
func (a *Array) At(i int) []byte {
	i = a.index(i)
	if i < 0 || i >= a.Len() {
		return nil
	}
	return a.data[i*a.inc : (i+1)*a.inc : (i+1)*a.inc]
}

// Splice removes rem records and inserts ins records at index off, growing
// or shrinking the array as necessary. It returns the region starting at
// index off.
func (a *Array) Splice(off, rem, ins int) []byte {
	debug.Assert("rem must be non-negative", func() bool { return rem >= 0 })
	debug.Assert("ins must be non-negative", func() bool { return ins >= 0 })

	off = a.index(off)
	debug.Assert("splice range within array", func() bool {
		return off >= 0 && off+rem <= a.Len()
	})

	tail := a.Len() - off - rem
	a.SetLen(a.Len() - rem + ins)

	inc := a.inc
	copy(a.data[(off+ins)*inc:], a.data[(off+rem)*inc:(off+rem+tail)*inc])
	return a.data[off*inc:]
}

// RemoveSwap removes the record at index i by moving the last record into
// its place. Order is not preserved but the operation is O(1). It returns
// the record now at index i, or nil if i is out of bounds.
func (a *Array) RemoveSwap(i int) []byte {
	i = a.index(i)
	if i < 0 || i >= a.Len() {
		return nil
	}
	last := a.Pop(1)
	if i == a.Len() {
		return last
	}
	out := a.data[i*a.inc : (i+1)*a.inc : (i+1)*a.inc]
	copy(out, last)
	return out
}

// Swap exchanges the records at indices i and j. Out-of-bounds indices
// leave the array unchanged.
func (a *Array) Swap(i, j int) {
	i, j = a.index(i), a.index(j)
	if i == j || i < 0 || j < 0 || i >= a.Len() || j >= a.Len() {
		return
	}
	ai := a.data[i*a.inc : (i+1)*a.inc]
	aj := a.data[j*a.inc : (j+1)*a.inc]
	for k := range ai {
		ai[k], aj[k] = aj[k], ai[k]
	}
}
