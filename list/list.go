// Package list implements a doubly linked list of fixed-size elements.
//
// Besides node level navigation the list carries one embedded cursor, shared by everyone using the list.
// Two interleaved walks over the same list through the cursor disturb each other; use Iter for an
// iterator that keeps its own position.
package list

import (
	"github.com/gostonefire/collections/alloc"
	"github.com/gostonefire/collections/internal/utils"
)

// Node - One element of a list, owning its payload
type Node[T any] struct {
	value      T
	next, prev *Node[T]
}

// Value - Returns the node's payload
func (N *Node[T]) Value() *T {
	return &N.value
}

// Next - Returns the successor, nil at the tail
func (N *Node[T]) Next() *Node[T] {
	return N.next
}

// Prev - Returns the predecessor, nil at the head
func (N *Node[T]) Prev() *Node[T] {
	return N.prev
}

// Conf - Configuration given to NewWithConf
//   - Tracker receives allocation accounting, nil disables accounting
type Conf struct {
	Tracker alloc.Tracker
}

type header[T any] struct {
	elementSize int64
	count       int
	head, tail  *Node[T]
	cursor      *Node[T]
}

// List - A doubly linked list of T
type List[T any] struct {
	head    header[T]
	tracker alloc.Tracker
}

// New - Returns a new empty list
func New[T any]() *List[T] {
	return NewWithConf[T](Conf{})
}

// NewWithConf - Returns a new empty list configured by c
func NewWithConf[T any](c Conf) *List[T] {
	l := &List[T]{
		head:    header[T]{elementSize: utils.SizeOf[T]()},
		tracker: alloc.OrNoop(c.Tracker),
	}
	l.tracker.Alloc(utils.SizeOf[header[T]]())

	return l
}

// Len - Returns the number of nodes
func (L *List[T]) Len() int {
	return L.head.count
}

// ElementSize - Returns the size in bytes of one element
func (L *List[T]) ElementSize() int64 {
	return L.head.elementSize
}

// Front - Returns the head node, nil if the list is empty
func (L *List[T]) Front() *Node[T] {
	return L.head.head
}

// Back - Returns the tail node, nil if the list is empty
func (L *List[T]) Back() *Node[T] {
	return L.head.tail
}

// Append - Links a new node with a zeroed payload at the tail and returns the payload
func (L *List[T]) Append() *T {
	return L.appendNode().Value()
}

// Push - Appends a node holding val and returns it
func (L *List[T]) Push(val T) *Node[T] {
	node := L.appendNode()
	node.value = val
	return node
}

// Reset - Sets the cursor to the head, or to the end state if the list is empty
func (L *List[T]) Reset() {
	L.head.cursor = L.head.head
}

// AtEnd - Returns true if the cursor is in its end state, which is also the state before the first Reset
func (L *List[T]) AtEnd() bool {
	return L.head.cursor == nil
}

// CurrentNode - Returns the node at the cursor without moving it, nil at the end
func (L *List[T]) CurrentNode() *Node[T] {
	return L.head.cursor
}

// Current - Returns the payload at the cursor without moving it, nil at the end
func (L *List[T]) Current() *T {
	if L.head.cursor == nil {
		return nil
	}
	return L.head.cursor.Value()
}

// AdvanceNode - Returns the node at the cursor and moves the cursor to its successor.
// Once the tail has been passed it returns nil until the next Reset.
func (L *List[T]) AdvanceNode() *Node[T] {
	node := L.head.cursor
	if node == nil {
		return nil
	}
	L.head.cursor = node.next

	return node
}

// Advance - Returns the payload at the cursor and moves the cursor to its successor, see AdvanceNode
func (L *List[T]) Advance() *T {
	node := L.AdvanceNode()
	if node == nil {
		return nil
	}
	return node.Value()
}

// Destroy - Releases every node with its payload, then the header. The list must not be used afterwards.
func (L *List[T]) Destroy() {
	nodeSize := utils.SizeOf[Node[T]]()
	for node := L.head.head; node != nil; {
		next := node.next
		node.next, node.prev = nil, nil
		L.tracker.Free(nodeSize)
		node = next
	}

	L.head.head, L.head.tail, L.head.cursor = nil, nil, nil
	L.head.count = 0
	L.tracker.Free(utils.SizeOf[header[T]]())
}

func (L *List[T]) appendNode() *Node[T] {
	node := &Node[T]{}
	L.tracker.Alloc(utils.SizeOf[Node[T]]())
	L.head.count++

	if L.head.tail == nil {
		L.head.head = node
		L.head.tail = node
		return node
	}

	node.prev = L.head.tail
	L.head.tail.next = node
	L.head.tail = node

	return node
}
