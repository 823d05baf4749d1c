package list

// Iterator - Walks a list front to back holding its own position, independent of the list's cursor and of
// other iterators. The list must not be modified while iterating, except by writing through Value.
type Iterator[T any] struct {
	list    *List[T]
	node    *Node[T]
	started bool
}

// Iter - Returns a new iterator positioned before the head
func (L *List[T]) Iter() *Iterator[T] {
	return &Iterator[T]{list: L}
}

// Next - Moves to the next node and returns false once there are no more
func (I *Iterator[T]) Next() bool {
	if !I.started {
		I.started = true
		I.node = I.list.head.head
	} else if I.node != nil {
		I.node = I.node.next
	}

	return I.node != nil
}

// Node - Returns the node the iterator is on
func (I *Iterator[T]) Node() *Node[T] {
	return I.node
}

// Value - Returns the payload of the node the iterator is on
func (I *Iterator[T]) Value() *T {
	if I.node == nil {
		return nil
	}
	return I.node.Value()
}

// Reset - Positions the iterator before the head again
func (I *Iterator[T]) Reset() {
	I.node = nil
	I.started = false
}
