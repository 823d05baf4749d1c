package hash

import "github.com/spaolacci/murmur3"

// Murmur3HashAlgorithm - The default bucket selection algorithm. It runs MurmurHash3 x64-128 over the key bytes,
// processing 16 byte blocks with two interleaved 64-bit accumulators, mixing in the tail and finishing with the
// avalanche step, and folds the two 64-bit halves into one digest.
type Murmur3HashAlgorithm struct {
	seed uint32
}

// NewMurmur3HashAlgorithm - Returns a pointer to a new Murmur3HashAlgorithm instance
func NewMurmur3HashAlgorithm(seed uint32) *Murmur3HashAlgorithm {
	return &Murmur3HashAlgorithm{seed: seed}
}

// Hash - Given key it returns the folded 128-bit digest
func (M *Murmur3HashAlgorithm) Hash(key []byte) uint64 {
	h1, h2 := murmur3.Sum128WithSeed(key, M.seed)
	return h1 ^ h2
}
