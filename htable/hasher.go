package htable

// Hasher supplies the two capabilities a Table needs from its caller: a
// hash over keys and an equality check between a key and a stored record.
//
// Hash must be deterministic for equal keys under a fixed seed; the quality
// of its spread affects only performance, never correctness. Compare
// returns zero iff key and entry match, and must be consistent with Hash:
// equal keys imply equal hash codes.
type Hasher[K any] interface {
	Hash(key K, seed uint64) uint64
	Compare(key K, entry []byte) int
}

// Funcs adapts a pair of funcs into a Hasher.
type Funcs[K any] struct {
	HashFunc    func(key K, seed uint64) uint64
	CompareFunc func(key K, entry []byte) int
}

func (f Funcs[K]) Hash(key K, seed uint64) uint64 { return f.HashFunc(key, seed) }

func (f Funcs[K]) Compare(key K, entry []byte) int { return f.CompareFunc(key, entry) }
