// Package dstring implements a dynamic byte string with formatted append.
package dstring

import (
	"bytes"
	"fmt"

	"github.com/jondebove/cds/internal/debug"
)

// String is a growable byte string. The zero value is an empty string ready
// to use. Negative indices address bytes from the end of the string.
type String struct {
	buf []byte
}

// Reset releases the storage and empties the string.
func (s *String) Reset() {
	s.buf = nil
}

// Len returns the number of bytes in the string.
func (s *String) Len() int {
	return len(s.buf)
}

// Cap returns the number of bytes the string can hold without growing.
func (s *String) Cap() int {
	return cap(s.buf)
}

// SetCap reallocates the storage to hold exactly capacity bytes, truncating
// the string if it is currently longer.
func (s *String) SetCap(capacity int) {
	if capacity <= 0 {
		s.Reset()
		return
	}
	n := len(s.buf)
	if n > capacity {
		n = capacity
	}
	buf := make([]byte, n, capacity)
	copy(buf, s.buf)
	s.buf = buf
}

// SetLen resizes the string to n bytes, padding with zero bytes as needed.
func (s *String) SetLen(n int) {
	debug.Assert("length must be non-negative", func() bool { return n >= 0 })

	if n <= len(s.buf) {
		s.buf = s.buf[:n]
		return
	}
	s.buf = append(s.buf, make([]byte, n-len(s.buf))...)
}

// SetStr replaces the contents of the string with str.
func (s *String) SetStr(str string) {
	s.buf = append(s.buf[:0], str...)
}

// Concat appends str to the string.
func (s *String) Concat(str string) {
	s.buf = append(s.buf, str...)
}

// Concatf appends a string formatted per fmt.Sprintf.
func (s *String) Concatf(format string, args ...any) {
	s.buf = fmt.Appendf(s.buf, format, args...)
}

// Printf replaces the contents of the string with one formatted per
// fmt.Sprintf.
func (s *String) Printf(format string, args ...any) {
	s.buf = fmt.Appendf(s.buf[:0], format, args...)
}

// Chomp removes a trailing line feed and a carriage return preceding it. It
// returns the number of bytes removed.
func (s *String) Chomp() int {
	n := 0
	if l := len(s.buf); l > 0 && s.buf[l-1] == '\n' {
		s.buf = s.buf[:l-1]
		n++
	}
	if l := len(s.buf); l > 0 && s.buf[l-1] == '\r' {
		s.buf = s.buf[:l-1]
		n++
	}
	return n
}

// Str returns the contents as a Go string.
func (s *String) Str() string {
	return string(s.buf)
}

// Bytes returns the contents as a byte slice aliasing the storage, or nil
// if the string is empty.
func (s *String) Bytes() []byte {
	if len(s.buf) == 0 {
		return nil
	}
	return s.buf
}

// At returns a pointer to the i-th byte, or nil if i is out of bounds.
func (s *String) At(i int) *byte {
	if i < 0 {
		i += len(s.buf)
	}
	if i < 0 || i >= len(s.buf) {
		return nil
	}
	return &s.buf[i]
}

// Compare compares s with o byte-wise, resolving ties by length. It returns
// an integer lesser than, equal to or greater than 0 if s is found to be
// less than, to match or to be greater than o.
func (s *String) Compare(o *String) int {
	return bytes.Compare(s.buf, o.buf)
}
