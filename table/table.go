// Package table implements a hash table with a fixed number of buckets and separate chaining.
//
// Keys are hashed and compared by their byte representation (see KeyCodec). Every bucket holds a singly linked
// chain of entries, new entries are pushed at the chain head, so within a bucket the most recently inserted key
// comes first. The table owns copies of all keys and values given to it.
//
// A table carries one embedded two-coordinate cursor (Rewind/Next) for allocation free full scans. The cursor
// is shared by all users of the table and is not stable across inserts and deletes made while scanning; use
// Iterate for an iterator holding its own position.
package table

import (
	"github.com/gostonefire/collections/alloc"
	"github.com/gostonefire/collections/errs"
	"github.com/gostonefire/collections/hashfunc"
	"github.com/gostonefire/collections/internal/conf"
	"github.com/gostonefire/collections/internal/utils"
)

// Conf - Configuration given to NewWithConf
//   - BucketCount is the fixed number of buckets, zero selects the default of 100
//   - HashAlgorithm is an optional custom hash algorithm, nil selects hashfunc.Default
//   - KeyCodec is an optional function producing key bytes, required for keys that hold pointers
//   - Tracker receives allocation accounting, nil disables accounting
//   - Strict turns a Get on a missing key into a fatal error
type Conf[K comparable] struct {
	BucketCount   int
	HashAlgorithm hashfunc.HashAlgorithm
	KeyCodec      KeyCodec[K]
	Tracker       alloc.Tracker
	Strict        bool
}

// entry - One key/value pair in a bucket chain
type entry[K comparable, V any] struct {
	key      K
	keyBytes []byte
	value    V
	next     *entry[K, V]
}

// header - Table metadata and the embedded cursor
type header struct {
	keySize        int64
	valueSize      int64
	length         int
	cursorBucket   int
	cursorPosition int
}

// Table - A hash table from K to V
type Table[K comparable, V any] struct {
	head              header
	buckets           []*entry[K, V]
	hashAlgorithm     hashfunc.HashAlgorithm
	internalAlgorithm bool
	keyCodec          KeyCodec[K]
	tracker           alloc.Tracker
	strict            bool
}

// New - Returns a new empty table with the default number of buckets.
//   - hashAlgorithm is an optional custom hash algorithm, nil selects the built-in MurmurHash3 based one
//
// It returns:
//   - table is a pointer to the new Table
//   - err is of type errs.InvalidConfiguration if K has no fixed byte representation
func New[K comparable, V any](hashAlgorithm hashfunc.HashAlgorithm) (table *Table[K, V], err error) {
	return NewWithConf[K, V](Conf[K]{HashAlgorithm: hashAlgorithm})
}

// NewWithConf - Returns a new empty table configured by c.
// It fails with an error of type errs.InvalidConfiguration if the bucket count is negative or if no KeyCodec
// was given for a key type that has no fixed byte representation.
func NewWithConf[K comparable, V any](c Conf[K]) (table *Table[K, V], err error) {
	if c.BucketCount < 0 {
		err = errs.NewInvalidConfiguration("bucket count must not be negative, got %d", c.BucketCount)
		return
	}

	bucketCount := c.BucketCount
	if bucketCount == 0 {
		bucketCount = conf.BucketCount
	}

	keyCodec := c.KeyCodec
	if keyCodec == nil {
		keyCodec, err = defaultKeyCodec[K]()
		if err != nil {
			return
		}
	}

	// If no HashAlgorithm was given then use the default internal
	var internalAlg bool
	hashAlgorithm := c.HashAlgorithm
	if hashAlgorithm == nil {
		hashAlgorithm = hashfunc.Default()
		internalAlg = true
	}

	table = &Table[K, V]{
		head: header{
			keySize:   utils.SizeOf[K](),
			valueSize: utils.SizeOf[V](),
		},
		buckets:           make([]*entry[K, V], bucketCount),
		hashAlgorithm:     hashAlgorithm,
		internalAlgorithm: internalAlg,
		keyCodec:          keyCodec,
		tracker:           alloc.OrNoop(c.Tracker),
		strict:            c.Strict,
	}
	table.tracker.Alloc(table.headerSize())

	return
}

// Len - Returns the number of entries
func (T *Table[K, V]) Len() int {
	return T.head.length
}

// KeySize - Returns the in-memory size in bytes of a key
func (T *Table[K, V]) KeySize() int64 {
	return T.head.keySize
}

// ValueSize - Returns the in-memory size in bytes of a value
func (T *Table[K, V]) ValueSize() int64 {
	return T.head.valueSize
}

// BucketCount - Returns the number of buckets
func (T *Table[K, V]) BucketCount() int {
	return len(T.buckets)
}

// InternalAlgorithm - Returns true if the table uses the built-in hash algorithm
func (T *Table[K, V]) InternalAlgorithm() bool {
	return T.internalAlgorithm
}

// Destroy - Releases every entry in every chain, then the bucket array and header.
// The table must not be used afterwards.
func (T *Table[K, V]) Destroy() {
	for i, e := range T.buckets {
		for e != nil {
			next := e.next
			e.next = nil
			T.tracker.Free(entrySize(e))
			e = next
		}
		T.buckets[i] = nil
	}

	T.tracker.Free(T.headerSize())
	T.buckets = nil
	T.head.length = 0
	T.head.cursorBucket, T.head.cursorPosition = 0, 0
}

// headerSize - Size of header and bucket array together
func (T *Table[K, V]) headerSize() int64 {
	return utils.SizeOf[header]() + int64(len(T.buckets))*conf.PointerSize
}

// entrySize - Size of an entry including its owned key bytes
func entrySize[K comparable, V any](e *entry[K, V]) int64 {
	return utils.SizeOf[entry[K, V]]() + int64(len(e.keyBytes))
}
