//go:build unit

package alloc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCounter(t *testing.T) {
	t.Run("balances allocations and releases", func(t *testing.T) {
		// Prepare
		c := NewCounter()

		// Execute
		c.Alloc(100)
		c.Alloc(28)
		c.Free(100)

		// Check
		assert.Equal(t, int64(28), c.LiveBytes(), "live bytes")
		assert.Equal(t, int64(1), c.LiveObjects(), "live objects")
		assert.Equal(t, CounterStat{LiveBytes: 28, LiveObjects: 1, TotalAllocs: 2, TotalFrees: 1}, c.Stat(), "stat")
	})
}

func TestOrNoop(t *testing.T) {
	t.Run("nil becomes noop", func(t *testing.T) {
		tracker := OrNoop(nil)
		assert.Equal(t, Noop(), tracker)
		tracker.Alloc(10)
		tracker.Free(10)
	})

	t.Run("keeps given tracker", func(t *testing.T) {
		c := NewCounter()
		assert.Same(t, c, OrNoop(c))
	})
}
