package array

// ForEach - Calls fn with the slot of every live element in index order.
// fn must not append to the array.
func (A *Array[T]) ForEach(fn func(item *T)) {
	for i := 0; i < A.head.length; i++ {
		fn(&A.payload[i])
	}
}

// Filter - Returns a new array holding copies of the live elements for which keep returns true.
// The new array shares tracker and strict mode with A.
func (A *Array[T]) Filter(keep func(item *T) bool) *Array[T] {
	result, _ := NewWithConf[T](Conf{Tracker: A.tracker, Strict: A.strict})

	for i := 0; i < A.head.length; i++ {
		if keep(&A.payload[i]) {
			*result.Append() = A.payload[i]
		}
	}

	return result
}
