package hash

import "hash/crc32"

// CRC32HashAlgorithm - Bucket selection using crc32.ChecksumIEEE over the key bytes. It spreads keys
// less evenly than the default but is cheap and stable across platforms.
type CRC32HashAlgorithm struct{}

// NewCRC32HashAlgorithm - Returns a pointer to a new CRC32HashAlgorithm instance
func NewCRC32HashAlgorithm() *CRC32HashAlgorithm {
	return &CRC32HashAlgorithm{}
}

// Hash - Given key it returns its IEEE CRC32 checksum widened to 64 bits
func (C *CRC32HashAlgorithm) Hash(key []byte) uint64 {
	return uint64(crc32.ChecksumIEEE(key))
}
