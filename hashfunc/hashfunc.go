package hashfunc

import "github.com/gostonefire/collections/internal/hash"

// HashAlgorithm - Interface that permits a table user to supply a custom bucket selection algorithm suited for
// its particular distribution of keys. The table reduces the digest modulo its bucket count.
type HashAlgorithm interface {
	// Hash - Given the key bytes it returns a 64-bit digest.
	// The function must be deterministic and must not modify key.
	Hash(key []byte) uint64
}

// Func - Adapter that lets an ordinary function serve as a HashAlgorithm
type Func func(key []byte) uint64

// Hash - Calls F(key)
func (F Func) Hash(key []byte) uint64 {
	return F(key)
}

// Default - Returns the algorithm used when none is given, MurmurHash3 x64-128 folded to 64 bits
func Default() HashAlgorithm {
	return hash.NewMurmur3HashAlgorithm(0)
}

// Murmur3 - Returns MurmurHash3 x64-128 folded to 64 bits, with a zero seed
func Murmur3() HashAlgorithm {
	return hash.NewMurmur3HashAlgorithm(0)
}

// Murmur3Seeded - Returns MurmurHash3 x64-128 folded to 64 bits using seed
func Murmur3Seeded(seed uint32) HashAlgorithm {
	return hash.NewMurmur3HashAlgorithm(seed)
}

// XXHash - Returns xxHash64
func XXHash() HashAlgorithm {
	return hash.NewXXHashAlgorithm()
}

// CRC32 - Returns IEEE CRC32
func CRC32() HashAlgorithm {
	return hash.NewCRC32HashAlgorithm()
}

// FNV1a - Returns 64-bit FNV-1a
func FNV1a() HashAlgorithm {
	return hash.NewFNV1aHashAlgorithm()
}
