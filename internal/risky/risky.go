// package risky provides unsafe helpers.
package risky

import (
	"unsafe"
)

// Offset returns the byte offset of the first element of sub relative to the
// first element of base. Both slices must derive from the same allocation
// for the result to be meaningful.
func Offset(base, sub []byte) int {
	b := uintptr(unsafe.Pointer(unsafe.SliceData(base)))
	s := uintptr(unsafe.Pointer(unsafe.SliceData(sub)))
	return int(s - b)
}
