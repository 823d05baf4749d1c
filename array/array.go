// Package array implements a growable array of fixed-size elements.
//
// The array keeps its bookkeeping (element size, length and capacity) in a header owned together with the
// payload, a contiguous run of capacity element slots of which the first Len are live.
//
// Growth relocates the payload. Every slot pointer handed out by Append, At or Items is invalidated by a
// later Append that grows the array, and must not be retained across such a call.
package array

import (
	"github.com/cockroachdb/errors"
	"github.com/gostonefire/collections/alloc"
	"github.com/gostonefire/collections/errs"
	"github.com/gostonefire/collections/internal/conf"
	"github.com/gostonefire/collections/internal/utils"
)

// Conf - Configuration given to NewWithConf
//   - InitialCapacity is the number of slots to start with, zero selects the default of 10
//   - Tracker receives allocation accounting, nil disables accounting
//   - Strict turns failing operations (index out of bounds, pop from empty) into fatal errors
type Conf struct {
	InitialCapacity int
	Tracker         alloc.Tracker
	Strict          bool
}

// header - Metadata kept together with the payload
type header struct {
	elementSize int64
	length      int
	capacity    int
}

// Array - A growable array of T
type Array[T any] struct {
	head    header
	payload []T
	tracker alloc.Tracker
	strict  bool
}

// New - Returns a new empty array with the default configuration
func New[T any]() *Array[T] {
	arr, _ := NewWithConf[T](Conf{})
	return arr
}

// NewWithConf - Returns a new empty array configured by c.
//
// It returns:
//   - arr is a pointer to the new Array
//   - err is of type errs.InvalidConfiguration if c holds a negative capacity
func NewWithConf[T any](c Conf) (arr *Array[T], err error) {
	if c.InitialCapacity < 0 {
		err = errs.NewInvalidConfiguration("initial capacity must not be negative, got %d", c.InitialCapacity)
		return
	}

	capacity := c.InitialCapacity
	if capacity == 0 {
		capacity = conf.InitialCapacity
	}

	arr = &Array[T]{
		head: header{
			elementSize: utils.SizeOf[T](),
			capacity:    capacity,
		},
		payload: make([]T, capacity),
		tracker: alloc.OrNoop(c.Tracker),
		strict:  c.Strict,
	}
	arr.tracker.Alloc(arr.allocSize())

	return
}

// Len - Returns the number of live elements
func (A *Array[T]) Len() int {
	return A.head.length
}

// Cap - Returns the number of allocated element slots
func (A *Array[T]) Cap() int {
	return A.head.capacity
}

// ElementSize - Returns the size in bytes of one element
func (A *Array[T]) ElementSize() int64 {
	return A.head.elementSize
}

// Append - Returns a writable, zeroed slot for a new element at index Len.
// If the array is full its capacity is doubled and the payload relocated, which invalidates every slot
// pointer returned before.
func (A *Array[T]) Append() (slot *T) {
	if A.head.length >= A.head.capacity {
		A.grow()
	}

	slot = &A.payload[A.head.length]
	var zero T
	*slot = zero
	A.head.length++

	return
}

// Push - Appends val
func (A *Array[T]) Push(val T) {
	*A.Append() = val
}

// At - Returns the slot of the element at index.
//
// It returns:
//   - slot is a pointer into the payload, valid until the next growing Append
//   - err is of type errs.IndexOutOfBounds if index is negative or not below Len
func (A *Array[T]) At(index int) (slot *T, err error) {
	if index < 0 || index >= A.head.length {
		err = errs.Check(A.strict, errors.Wrap(errs.NewIndexOutOfBounds(index, A.head.length), "array at"))
		return
	}

	slot = &A.payload[index]

	return
}

// Get - Returns a copy of the element at index, see At
func (A *Array[T]) Get(index int) (val T, err error) {
	slot, err := A.At(index)
	if err != nil {
		return
	}

	val = *slot

	return
}

// Pop - Removes and returns the last live element.
// It returns an error of type errs.EmptyContainer if the array is empty.
func (A *Array[T]) Pop() (val T, err error) {
	if A.head.length == 0 {
		err = errs.Check(A.strict, errors.Wrap(errs.NewEmptyContainer("pop from empty array"), "array pop"))
		return
	}

	A.head.length--
	val = A.payload[A.head.length]

	var zero T
	A.payload[A.head.length] = zero

	return
}

// Clear - Resets the length to zero, capacity and memory are kept for reuse
func (A *Array[T]) Clear() {
	var zero T
	for i := 0; i < A.head.length; i++ {
		A.payload[i] = zero
	}
	A.head.length = 0
}

// Items - Returns the live elements as a slice sharing the payload, valid until the next growing Append
func (A *Array[T]) Items() []T {
	return A.payload[:A.head.length:A.head.length]
}

// Destroy - Releases header and payload as one unit. The array must not be used afterwards.
func (A *Array[T]) Destroy() {
	A.tracker.Free(A.allocSize())
	A.payload = nil
	A.head.length = 0
	A.head.capacity = 0
}

// grow - Doubles the capacity, or initializes it if zero, and relocates the live elements
func (A *Array[T]) grow() {
	capacity := A.head.capacity * conf.GrowthFactor
	if capacity == 0 {
		capacity = conf.InitialCapacity
	}

	payload := make([]T, capacity)
	_ = copy(payload, A.payload[:A.head.length])

	A.tracker.Free(A.allocSize())
	A.payload = payload
	A.head.capacity = capacity
	A.tracker.Alloc(A.allocSize())
}

// allocSize - Size of header and payload together
func (A *Array[T]) allocSize() int64 {
	return utils.SizeOf[header]() + A.head.elementSize*int64(A.head.capacity)
}
