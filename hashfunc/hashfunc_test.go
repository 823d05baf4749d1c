//go:build unit

package hashfunc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFunc_Hash(t *testing.T) {
	t.Run("adapts a plain function", func(t *testing.T) {
		// Prepare
		var seen []byte
		f := Func(func(key []byte) uint64 {
			seen = key
			return uint64(len(key))
		})

		// Execute
		h := f.Hash([]byte("alice"))

		// Check
		assert.Equal(t, uint64(5), h, "digest from function")
		assert.Equal(t, []byte("alice"), seen, "key passed through")
	})
}

func TestDefault(t *testing.T) {
	t.Run("default is murmur3", func(t *testing.T) {
		key := []byte("alice")
		assert.Equal(t, Murmur3().Hash(key), Default().Hash(key))
		assert.Equal(t, Murmur3Seeded(0).Hash(key), Default().Hash(key))
	})

	t.Run("built in algorithms differ", func(t *testing.T) {
		key := []byte("alice")
		digests := map[uint64]struct{}{
			Default().Hash(key): {},
			XXHash().Hash(key):  {},
			CRC32().Hash(key):   {},
			FNV1a().Hash(key):   {},
		}
		assert.Len(t, digests, 4)
	})
}
