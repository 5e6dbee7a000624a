package htable_test

import (
	"encoding/binary"
	"fmt"

	"github.com/jondebove/cds/htable"
)

func Example() {
	// a table of perfect squares: 4-byte records hold the square root
	squares := htable.Funcs[int]{
		HashFunc: func(key int, seed uint64) uint64 {
			return uint64(key)
		},
		CompareFunc: func(key int, entry []byte) int {
			r := int(int32(binary.LittleEndian.Uint32(entry)))
			if r*r == key {
				return 0
			}
			return 1
		},
	}

	ht := htable.New[int](4, 0, squares)
	for i := 0; i < 10; i++ {
		var e [4]byte
		binary.LittleEndian.PutUint32(e[:], uint32(i))
		if _, err := ht.Enter(i*i, e[:]); err != nil {
			panic(err)
		}
	}

	show := func(label string, e []byte) {
		r := int(int32(binary.LittleEndian.Uint32(e)))
		fmt.Printf("%s: key=%d, val=%d\n", label, r*r, r)
	}

	show("find", ht.Find(81))
	show("delete", ht.Delete(81))
	ht.Walk(func(e []byte) { show("walk", e) })

	// Unordered output:
	// find: key=81, val=9
	// delete: key=81, val=9
	// walk: key=0, val=0
	// walk: key=1, val=1
	// walk: key=4, val=2
	// walk: key=9, val=3
	// walk: key=16, val=4
	// walk: key=25, val=5
	// walk: key=36, val=6
	// walk: key=49, val=7
	// walk: key=64, val=8
}
