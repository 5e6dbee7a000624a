//go:build !release

// Package debug provides assertions that compile away in release builds.
package debug

// Assert panics with info if fn returns false.
func Assert(info string, fn func() bool) {
	if !fn() {
		panic("assertion failed: " + info)
	}
}
