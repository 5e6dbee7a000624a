package heap

import (
	"github.com/jondebove/cds/internal/debug"
)

// Sort sorts an array of n records of size bytes each, in place, in
// ascending order according to cmp. The records live back to back in data.
func Sort(data []byte, n, size int, cmp func(a, b []byte) int) {
	debug.Assert("size must be positive", func() bool { return size > 0 })
	debug.Assert("data holds n records", func() bool { return len(data) >= n*size })

	h := Heap{
		data: data[:n*size],
		tmp:  make([]byte, size),
		inc:  size,
		// records removed from the root are parked back to front at the
		// shrinking tail, so keeping the maximum at the root yields an
		// ascending array.
		less: func(a, b []byte) bool { return cmp(a, b) > 0 },
	}

	// heapify
	for i := n / 2; i > 0; i-- {
		h.down(i-1, n)
	}

	for ; n > 0; n-- {
		h.Remove(0)
	}
}
