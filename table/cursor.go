package table

// Rewind - Resets the embedded cursor to the first position of the first bucket
func (T *Table[K, V]) Rewind() {
	T.head.cursorBucket = 0
	T.head.cursorPosition = 0
}

// Next - Returns the value at the cursor and advances it, see NextEntry
func (T *Table[K, V]) Next() (value *V, ok bool) {
	_, value, ok = T.NextEntry()
	return
}

// NextEntry - Returns the entry at the cursor and advances the cursor within the chain, moving on to the next
// non-empty bucket once the chain is exhausted. Buckets are scanned in order and chains from their head.
//
// It returns:
//   - key and value are the key and value slot of the entry
//   - ok is false once all buckets have been scanned
func (T *Table[K, V]) NextEntry() (key K, value *V, ok bool) {
	for T.head.cursorBucket < len(T.buckets) {
		e := T.buckets[T.head.cursorBucket]
		for i := 0; e != nil && i < T.head.cursorPosition; i++ {
			e = e.next
		}

		if e != nil {
			T.head.cursorPosition++
			key, value, ok = e.key, &e.value, true
			return
		}

		T.head.cursorBucket++
		T.head.cursorPosition = 0
	}

	return
}
