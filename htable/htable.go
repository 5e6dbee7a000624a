// Package htable implements a generic open-addressing hash table that maps
// opaque keys to fixed-size byte records.
//
// The table never sees the key itself; the caller declares a record stride at
// creation time and supplies a Hasher that knows how to hash a key and how to
// match a key against a stored record. This makes the table usable for any
// record layout, at the cost of the caller keeping the layout and the
// comparator consistent.
package htable

import (
	"github.com/jondebove/cds/internal/debug"
	"github.com/jondebove/cds/internal/risky"
)

// Slot markers. A slot's marker doubles as the cached hash code of its
// record: 0 and 1 are reserved for the empty and tombstone states, and real
// hash codes are floored to markUsed before storage.
const (
	markEmpty uint64 = 0
	markTomb  uint64 = 1
	markUsed  uint64 = 2
)

// mult spreads hash codes before the shift that selects a probe start
// (Fibonacci-style multiplicative hashing keeps only the high bits of the
// product, which carry the most entropy).
const mult = 0x93c467e37db0c7a3

const shiftMin = 3

func capOf(shift int) int {
	return 3 << (shift - 2)
}

// emptyMarks backs every table that has not allocated yet. It is shared
// between tables and must never be written to; EnterUnsafe always rehashes
// into a fresh allocation before its first store.
var emptyMarks [1 << shiftMin]uint64

// Table is an open-addressing hash table with triangular probing. Records
// are raw bytes of a fixed stride, stored by value inside the table; the
// slices returned by Enter, Find and Delete alias the table's storage and
// stay valid only until the next insert or delete on the same table.
//
// A Table must not be used concurrently from multiple goroutines without
// external synchronization.
type Table[K any] struct {
	marks  []uint64
	data   []byte
	inc    int
	len    int
	cap    int // remaining fresh-slot budget before a rehash is forced
	mask   int
	shift  int
	seed   uint64
	hasher Hasher[K]
}

// New constructs a table of records of size inc bytes. It is recommended to
// supply a random seed in case the table is under attack. New does not
// allocate record storage.
func New[K any](inc int, seed uint64, hasher Hasher[K]) *Table[K] {
	debug.Assert("inc must be positive", func() bool { return inc > 0 })
	debug.Assert("hasher must not be nil", func() bool { return hasher != nil })

	t := new(Table[K])
	t.init(inc, seed, hasher)
	return t
}

func (t *Table[K]) init(inc int, seed uint64, hasher Hasher[K]) {
	*t = Table[K]{
		marks:  emptyMarks[:],
		inc:    inc,
		mask:   -1,
		shift:  shiftMin,
		seed:   seed,
		hasher: hasher,
	}
}

// Reset releases the table's storage and returns it to the just-created
// state. The table remains valid for reuse. Reset is idempotent.
func (t *Table[K]) Reset() {
	t.init(t.inc, t.seed, t.hasher)
}

// Len returns the number of records in the table.
func (t *Table[K]) Len() int {
	return t.len
}

func (t *Table[K]) hashOf(key K) uint64 {
	if hash := t.hasher.Hash(key, t.seed); hash >= markUsed {
		return hash
	}
	return markUsed
}

// start returns the probe start index for hash at the current table size.
func (t *Table[K]) start(hash uint64) int {
	return int((hash * mult) >> (64 - uint(t.shift)))
}

// entry returns the record stored in slot i. The capacity is clipped so a
// caller cannot write past its own record.
func (t *Table[K]) entry(i int) []byte {
	return t.data[i*t.inc : (i+1)*t.inc : (i+1)*t.inc]
}

func (t *Table[K]) isEqual(i int, hash uint64, key K) bool {
	return t.marks[i] == hash && t.hasher.Compare(key, t.entry(i)) == 0
}

// rehash moves every live record into a fresh allocation sized for shift.
// Tombstones are dropped. All previously returned record slices are
// invalidated.
func (t *Table[K]) rehash(shift int) {
	debug.Assert("shift within range", func() bool {
		return shift >= shiftMin && shift < 64
	})
	debug.Assert("new size holds all records", func() bool {
		return capOf(shift) >= t.len
	})

	size := 1 << shift
	mask := size - 1
	marks := make([]uint64, size)
	data := make([]byte, size*t.inc)

	for j := 0; j <= t.mask; j++ {
		hash := t.marks[j]
		if hash < markUsed {
			continue
		}
		i := int((hash * mult) >> (64 - uint(shift)))
		for k := 1; marks[i] != markEmpty; k++ {
			i = (i + k) & mask
		}
		marks[i] = hash
		copy(data[i*t.inc:(i+1)*t.inc], t.data[j*t.inc:(j+1)*t.inc])
	}

	t.marks = marks
	t.data = data
	t.cap = capOf(shift) - t.len
	t.mask = mask
	t.shift = shift
}

// Resize grows or shrinks the table so that it can hold at least capacity
// records without an implicit rehash during subsequent inserts. It returns
// ErrOutOfSpace, leaving the table unchanged, if capacity is smaller than
// the current number of records.
func (t *Table[K]) Resize(capacity int) error {
	debug.Assert("capacity must be positive", func() bool { return capacity > 0 })

	if t.len > capacity {
		return ErrOutOfSpace
	}
	shift := shiftMin
	if capOf(t.shift) <= capacity {
		shift = t.shift
	}
	for capOf(shift) < capacity {
		shift++
	}
	if shift != t.shift {
		t.rehash(shift)
	}
	return nil
}

// EnterUnsafe inserts a record with key without writing it. On a fresh
// insert it returns the claimed record, zeroed or holding stale bytes, and
// the caller must fill it so that the table's comparator matches it against
// key before any further table operation. If an equal key is already
// present, EnterUnsafe returns the existing record and ErrExists.
func (t *Table[K]) EnterUnsafe(key K) ([]byte, error) {
	if t.cap == 0 {
		// Grow one level, unless at least half the budget went to
		// slots that are now tombstones; then a same-size rehash
		// reclaims them.
		shift := t.shift
		if t.len > capOf(shift)/2 {
			shift++
		}
		t.rehash(shift)
	}

	hash := t.hashOf(key)
	tomb := -1
	i := t.start(hash)
	for k := 1; ; i, k = (i+k)&t.mask, k+1 {
		switch marker := t.marks[i]; {
		case marker == markEmpty:
			if tomb >= 0 {
				i = tomb
			} else {
				t.cap--
			}
			t.marks[i] = hash
			t.len++
			return t.entry(i), nil
		case marker == markTomb:
			if tomb < 0 {
				tomb = i
			}
		case t.isEqual(i, hash, key):
			return t.entry(i), ErrExists
		}
	}
}

// Enter inserts a copy of entry under key. The supplied entry must itself
// match key under the table's comparator; Enter fails with ErrBadEntry
// otherwise. If an equal key is already present, Enter returns the existing
// record unmodified along with ErrExists.
func (t *Table[K]) Enter(key K, entry []byte) ([]byte, error) {
	debug.Assert("entry length matches the record stride", func() bool {
		return len(entry) == t.inc
	})

	if t.hasher.Compare(key, entry) != 0 {
		return nil, ErrBadEntry
	}
	e, err := t.EnterUnsafe(key)
	if err == nil {
		copy(e, entry)
	}
	return e, err
}

// Find returns the record stored under key, or nil if there is none.
func (t *Table[K]) Find(key K) []byte {
	hash := t.hashOf(key)
	i := t.start(hash)
	for k := 1; ; i, k = (i+k)&t.mask, k+1 {
		switch {
		case t.marks[i] == markEmpty:
			return nil
		case t.isEqual(i, hash, key):
			return t.entry(i)
		}
	}
}

// Delete removes the record stored under key and returns it, or nil if
// there is none. The returned record is still populated so the caller may
// read the removed value, but only until the next insert on the table.
func (t *Table[K]) Delete(key K) []byte {
	hash := t.hashOf(key)
	i := t.start(hash)
	for k := 1; ; i, k = (i+k)&t.mask, k+1 {
		switch {
		case t.marks[i] == markEmpty:
			return nil
		case t.isEqual(i, hash, key):
			t.marks[i] = markTomb
			t.len--
			return t.entry(i)
		}
	}
}

// DeleteUnsafe removes the record previously returned by Enter, EnterUnsafe
// or Find, without hashing its key again. It returns ErrNotFound if entry
// does not address a live slot of this table, which includes records
// obtained before the last rehash.
func (t *Table[K]) DeleteUnsafe(entry []byte) error {
	debug.Assert("entry must not be empty", func() bool { return len(entry) > 0 })

	if len(t.data) == 0 {
		return ErrNotFound
	}
	off := risky.Offset(t.data, entry)
	if off < 0 || off >= len(t.data) {
		return ErrNotFound
	}
	if i := off / t.inc; t.marks[i] >= markUsed {
		t.marks[i] = markTomb
		t.len--
		return nil
	}
	return ErrNotFound
}

// Walk calls fn once for every record in the table, in slot order. The slot
// order is an implementation detail and changes across rehashes. The table
// must not be mutated during the walk.
func (t *Table[K]) Walk(fn func(entry []byte)) {
	debug.Assert("fn must not be nil", func() bool { return fn != nil })

	for j := 0; j <= t.mask; j++ {
		if t.marks[j] >= markUsed {
			fn(t.entry(j))
		}
	}
}

// Yield returns the first record at slot position *iter or later, storing
// that record's position back into *iter, or nil if no record remains. The
// caller advances *iter past the returned position before the next call:
//
//	for i := 0; ; i++ {
//		e := t.Yield(&i)
//		if e == nil {
//			break
//		}
//		// use e
//	}
func (t *Table[K]) Yield(iter *int) []byte {
	debug.Assert("iter must be a valid position", func() bool {
		return iter != nil && *iter >= 0
	})

	for j := *iter; j <= t.mask; j++ {
		if t.marks[j] >= markUsed {
			*iter = j
			return t.entry(j)
		}
	}
	return nil
}
