// Package fnv1a implements the 64-bit FNV1a hash with an explicit seed, so
// that hash computations can be chained or salted. It is directly usable as
// the hash half of an htable.Hasher.
//
// http://www.isthe.com/chongo/tech/comp/fnv/index.html
package fnv1a

// Seed is the official FNV1a offset basis. Passing a previous sum as the
// seed chains computations; passing anything else salts the hash.
const Seed = 0xcbf29ce484222325

const mult = 0x00000100000001b3

// Sum computes the FNV1a hash of data, starting from seed.
func Sum(data []byte, seed uint64) uint64 {
	for _, c := range data {
		seed = (seed ^ uint64(c)) * mult
	}
	return seed
}

// String computes the FNV1a hash of s, starting from seed.
func String(s string, seed uint64) uint64 {
	for i := 0; i < len(s); i++ {
		seed = (seed ^ uint64(s[i])) * mult
	}
	return seed
}
