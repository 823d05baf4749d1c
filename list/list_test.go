//go:build unit

package list

import (
	"testing"

	"github.com/gostonefire/collections/alloc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// checkChain - Verifies head/tail consistency, back links and count against a forward walk
func checkChain[T any](t *testing.T, l *List[T]) {
	t.Helper()

	if l.Len() == 0 {
		assert.Nil(t, l.Front(), "no head")
		assert.Nil(t, l.Back(), "no tail")
		return
	}

	require.NotNil(t, l.Front())
	require.NotNil(t, l.Back())
	assert.Nil(t, l.Front().Prev(), "head has no predecessor")
	assert.Nil(t, l.Back().Next(), "tail has no successor")

	count := 0
	var prev *Node[T]
	for node := l.Front(); node != nil; node = node.Next() {
		assert.Same(t, prev, node.Prev(), "back link of node %d", count)
		prev = node
		count++
		require.LessOrEqual(t, count, l.Len(), "chain is acyclic")
	}
	assert.Same(t, l.Back(), prev, "walk ends at tail")
	assert.Equal(t, l.Len(), count, "count matches chain")
}

func TestNew(t *testing.T) {
	t.Run("creates an empty list", func(t *testing.T) {
		// Execute
		l := New[int32]()

		// Check
		assert.Equal(t, 0, l.Len(), "no nodes")
		assert.Equal(t, int64(4), l.ElementSize(), "element size")
		assert.True(t, l.AtEnd(), "cursor unset")
		assert.Nil(t, l.Current(), "nothing at cursor")
		checkChain(t, l)
	})
}

func TestList_Append(t *testing.T) {
	t.Run("links at tail with zeroed payload", func(t *testing.T) {
		// Prepare
		l := New[int]()

		// Execute
		a := l.Append()
		*a = 1
		b := l.Append()

		// Check
		assert.Equal(t, 0, *b, "zeroed payload")
		assert.Equal(t, 2, l.Len(), "two nodes")
		assert.Same(t, a, l.Front().Value(), "first at head")
		assert.Same(t, b, l.Back().Value(), "second at tail")
		checkChain(t, l)
	})

	t.Run("payload pointers stay valid while appending", func(t *testing.T) {
		// Prepare
		l := New[int]()
		first := l.Append()
		*first = 7

		// Execute
		for i := 0; i < 100; i++ {
			*l.Append() = i
		}

		// Check
		assert.Equal(t, 7, *first, "first payload unchanged")
		assert.Same(t, first, l.Front().Value(), "still the head payload")
		checkChain(t, l)
	})
}

func TestList_Cursor(t *testing.T) {
	t.Run("advances in insertion order and ends", func(t *testing.T) {
		// Prepare
		l := New[string]()
		l.Push("a")
		l.Push("b")
		l.Push("c")

		// Execute
		l.Reset()
		a := l.Advance()
		b := l.Advance()
		c := l.Advance()
		end := l.Advance()

		// Check
		require.NotNil(t, a)
		require.NotNil(t, b)
		require.NotNil(t, c)
		assert.Equal(t, "a", *a)
		assert.Equal(t, "b", *b)
		assert.Equal(t, "c", *c)
		assert.Nil(t, end, "no value past the tail")
		assert.True(t, l.AtEnd(), "at end")
		assert.Nil(t, l.Advance(), "stays at end")
	})

	t.Run("current does not move", func(t *testing.T) {
		// Prepare
		l := New[int]()
		l.Push(1)
		l.Push(2)
		l.Reset()

		// Execute and Check
		assert.Equal(t, 1, *l.Current())
		assert.Equal(t, 1, *l.Current())
		assert.Same(t, l.Front(), l.CurrentNode())
		assert.Same(t, l.Front(), l.AdvanceNode())
		assert.Equal(t, 2, *l.Current())
	})

	t.Run("not restartable without reset", func(t *testing.T) {
		// Prepare
		l := New[int]()
		l.Push(1)
		l.Reset()
		_ = l.Advance()

		// Execute
		again := l.Advance()
		l.Reset()
		afterReset := l.Advance()

		// Check
		assert.Nil(t, again, "exhausted")
		require.NotNil(t, afterReset)
		assert.Equal(t, 1, *afterReset, "restarted")
	})

	t.Run("reset on empty list is at end", func(t *testing.T) {
		l := New[int]()
		l.Reset()
		assert.True(t, l.AtEnd())
		assert.Nil(t, l.AdvanceNode())
	})
}

func TestList_NodeNavigation(t *testing.T) {
	t.Run("walks both directions", func(t *testing.T) {
		// Prepare
		l := New[int]()
		for i := 1; i <= 5; i++ {
			l.Push(i)
		}

		// Execute
		var forward, backward []int
		for node := l.Front(); node != nil; node = node.Next() {
			forward = append(forward, *node.Value())
		}
		for node := l.Back(); node != nil; node = node.Prev() {
			backward = append(backward, *node.Value())
		}

		// Check
		assert.Equal(t, []int{1, 2, 3, 4, 5}, forward)
		assert.Equal(t, []int{5, 4, 3, 2, 1}, backward)
	})
}

func TestList_Iter(t *testing.T) {
	t.Run("independent iterators do not disturb each other", func(t *testing.T) {
		// Prepare
		l := New[int]()
		for i := 1; i <= 3; i++ {
			l.Push(i)
		}
		l.Reset()
		_ = l.Advance()

		// Execute
		outer := l.Iter()
		var pairs [][2]int
		for outer.Next() {
			inner := l.Iter()
			for inner.Next() {
				pairs = append(pairs, [2]int{*outer.Value(), *inner.Value()})
			}
		}

		// Check
		assert.Len(t, pairs, 9, "every combination")
		assert.Equal(t, [2]int{1, 1}, pairs[0])
		assert.Equal(t, [2]int{3, 3}, pairs[8])
		assert.Equal(t, 2, *l.Current(), "list cursor untouched")
		assert.False(t, outer.Next(), "stays exhausted")
		assert.Nil(t, outer.Value())
	})

	t.Run("restartable", func(t *testing.T) {
		// Prepare
		l := New[int]()
		l.Push(1)
		it := l.Iter()
		for it.Next() {
		}

		// Execute
		it.Reset()

		// Check
		assert.True(t, it.Next())
		assert.Same(t, l.Front(), it.Node())
	})
}

func TestList_Destroy(t *testing.T) {
	t.Run("releases every node and the header", func(t *testing.T) {
		// Prepare
		counter := alloc.NewCounter()
		l := NewWithConf[[16]byte](Conf{Tracker: counter})
		for i := 0; i < 10; i++ {
			l.Append()[0] = byte(i)
		}
		assert.Equal(t, int64(11), counter.LiveObjects(), "header and ten nodes")

		// Execute
		l.Destroy()

		// Check
		assert.Equal(t, int64(0), counter.LiveBytes(), "no live bytes")
		assert.Equal(t, int64(0), counter.LiveObjects(), "no live objects")
		assert.Equal(t, 0, l.Len(), "count reset")
	})
}
