package table

// Iterator - Walks all entries of a table holding its own position, independent of the table's cursor and
// of other iterators. The table must not be modified while iterating, except by writing through Value.
type Iterator[K comparable, V any] struct {
	table   *Table[K, V]
	entry   *entry[K, V]
	bucket  int
	started bool
}

// Iterate - Returns a new iterator positioned before the first entry
func (T *Table[K, V]) Iterate() *Iterator[K, V] {
	return &Iterator[K, V]{table: T}
}

// Next - Moves to the next entry and returns false once all buckets have been scanned
func (I *Iterator[K, V]) Next() bool {
	buckets := I.table.buckets

	if !I.started {
		I.started = true
		I.bucket = 0
		if len(buckets) > 0 {
			I.entry = buckets[0]
		}
	} else if I.entry != nil {
		I.entry = I.entry.next
	}

	for I.entry == nil {
		I.bucket++
		if I.bucket >= len(buckets) {
			return false
		}
		I.entry = buckets[I.bucket]
	}

	return true
}

// Key - Returns the key of the current entry
func (I *Iterator[K, V]) Key() K {
	return I.entry.key
}

// Value - Returns the value slot of the current entry
func (I *Iterator[K, V]) Value() *V {
	return &I.entry.value
}

// Bucket - Returns the bucket number of the current entry
func (I *Iterator[K, V]) Bucket() int {
	return I.bucket
}
