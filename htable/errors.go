package htable

import "errors"

var (
	// ErrExists reports that Enter or EnterUnsafe found a record with an
	// equal key already present. The record returned alongside it is the
	// existing one; the table is unmodified.
	ErrExists = errors.New("htable: record already exists")

	// ErrNotFound reports that DeleteUnsafe was handed a record that does
	// not address a live slot.
	ErrNotFound = errors.New("htable: record not found")

	// ErrOutOfSpace reports that Resize was asked for a capacity smaller
	// than the current number of records.
	ErrOutOfSpace = errors.New("htable: capacity smaller than length")

	// ErrBadEntry reports that the record handed to Enter does not match
	// the key under the table's comparator.
	ErrBadEntry = errors.New("htable: record does not match key")
)
