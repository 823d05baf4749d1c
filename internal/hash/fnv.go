package hash

import "hash/fnv"

// FNV1aHashAlgorithm - Bucket selection using 64-bit FNV-1a over the key bytes
type FNV1aHashAlgorithm struct{}

// NewFNV1aHashAlgorithm - Returns a pointer to a new FNV1aHashAlgorithm instance
func NewFNV1aHashAlgorithm() *FNV1aHashAlgorithm {
	return &FNV1aHashAlgorithm{}
}

// Hash - Given key it returns its FNV-1a digest
func (F *FNV1aHashAlgorithm) Hash(key []byte) uint64 {
	h := fnv.New64a()
	_, _ = h.Write(key)
	return h.Sum64()
}
