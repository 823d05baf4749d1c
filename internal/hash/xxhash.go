package hash

import "github.com/cespare/xxhash/v2"

// XXHashAlgorithm - Bucket selection using xxHash64 over the key bytes
type XXHashAlgorithm struct{}

// NewXXHashAlgorithm - Returns a pointer to a new XXHashAlgorithm instance
func NewXXHashAlgorithm() *XXHashAlgorithm {
	return &XXHashAlgorithm{}
}

// Hash - Given key it returns its xxHash64 digest
func (X *XXHashAlgorithm) Hash(key []byte) uint64 {
	return xxhash.Sum64(key)
}
