package table

import (
	"github.com/cockroachdb/errors"
	"github.com/gostonefire/collections/errs"
	"github.com/gostonefire/collections/internal/utils"
)

// Slot - Returns the value slot for key. If the key exists its current value slot is returned for update in
// place, otherwise a new entry holding a copy of the key and a zeroed value is pushed at the head of the key's
// bucket chain and its slot returned.
func (T *Table[K, V]) Slot(key K) (value *V) {
	keyBytes := T.keyCodec(key)
	bucketNo := T.bucketNo(keyBytes)

	if e := T.find(bucketNo, keyBytes); e != nil {
		value = &e.value
		return
	}

	e := &entry[K, V]{
		key:      key,
		keyBytes: utils.CopyBytes(keyBytes),
		next:     T.buckets[bucketNo],
	}
	T.buckets[bucketNo] = e
	T.head.length++
	T.tracker.Alloc(entrySize(e))

	value = &e.value

	return
}

// Set - Updates the value of an existing key or adds it if not found
func (T *Table[K, V]) Set(key K, value V) {
	*T.Slot(key) = value
}

// TryGet - Looks up key without failing.
//
// It returns:
//   - value is the value slot of the matching entry, nil if not found
//   - ok is false if the key is not in the table
func (T *Table[K, V]) TryGet(key K) (value *V, ok bool) {
	keyBytes := T.keyCodec(key)

	e := T.find(T.bucketNo(keyBytes), keyBytes)
	if e == nil {
		return
	}

	value, ok = &e.value, true

	return
}

// Get - Gets the value that corresponds to key.
//
// It returns:
//   - value is a copy of the value if found
//   - err is of type errs.NoRecordFound if the key is not in the table, fatal in strict mode
func (T *Table[K, V]) Get(key K) (value V, err error) {
	v, ok := T.TryGet(key)
	if !ok {
		err = errs.Check(T.strict, errors.Wrap(errs.NewNoRecordFound("no record found for key %v", key), "table get"))
		return
	}

	value = *v

	return
}

// Exists - Returns true if key is in the table
func (T *Table[K, V]) Exists(key K) bool {
	_, ok := T.TryGet(key)
	return ok
}

// Delete - Removes the entry for key, relinking its chain. It returns false, doing nothing, if the key is not
// in the table.
func (T *Table[K, V]) Delete(key K) (deleted bool) {
	_, deleted = T.remove(key)
	return
}

// Pop - Returns the value corresponding to key and removes it from the table.
// It returns an error of type errs.NoRecordFound if the key is not in the table, fatal in strict mode.
func (T *Table[K, V]) Pop(key K) (value V, err error) {
	e, ok := T.remove(key)
	if !ok {
		err = errs.Check(T.strict, errors.Wrap(errs.NewNoRecordFound("no record found for key %v", key), "table pop"))
		return
	}

	value = e.value

	return
}

// BucketNo - Returns which bucket number the given key results in
func (T *Table[K, V]) BucketNo(key K) int {
	return T.bucketNo(T.keyCodec(key))
}

// bucketNo - Reduces the digest of keyBytes modulo the bucket count
func (T *Table[K, V]) bucketNo(keyBytes []byte) int {
	return int(T.hashAlgorithm.Hash(keyBytes) % uint64(len(T.buckets)))
}

// find - Scans the chain of bucketNo for an entry with keyBytes
func (T *Table[K, V]) find(bucketNo int, keyBytes []byte) *entry[K, V] {
	for e := T.buckets[bucketNo]; e != nil; e = e.next {
		if utils.IsEqual(keyBytes, e.keyBytes) {
			return e
		}
	}

	return nil
}

// remove - Unlinks the entry for key. A match at the chain head moves the bucket head to its successor,
// otherwise the predecessor is linked to the successor.
func (T *Table[K, V]) remove(key K) (removed *entry[K, V], ok bool) {
	keyBytes := T.keyCodec(key)
	bucketNo := T.bucketNo(keyBytes)

	var prev *entry[K, V]
	for e := T.buckets[bucketNo]; e != nil; prev, e = e, e.next {
		if !utils.IsEqual(keyBytes, e.keyBytes) {
			continue
		}

		if prev == nil {
			T.buckets[bucketNo] = e.next
		} else {
			prev.next = e.next
		}
		e.next = nil

		T.head.length--
		T.tracker.Free(entrySize(e))

		removed, ok = e, true
		return
	}

	return
}
