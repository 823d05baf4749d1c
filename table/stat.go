package table

import (
	"github.com/gostonefire/collections/errs"
	"github.com/gostonefire/collections/hashfunc"
)

// Stat - Statistics on the overall usage and distribution over buckets
//   - Records is the total number of entries stored
//   - Buckets is the number of buckets in the table
//   - UsedBuckets is the number of buckets holding at least one entry
//   - LongestChain is the number of entries in the longest bucket chain
//   - LoadFactor is Records divided by Buckets
//   - BucketDistribution is the number of entries in each bucket, nil unless asked for
type Stat struct {
	Records            int
	Buckets            int
	UsedBuckets        int
	LongestChain       int
	LoadFactor         float64
	BucketDistribution []int
}

// Stat - Walks through the entire set of buckets and produces a Stat struct.
//   - includeDistribution set to true includes a slice of length BucketCount with number of entries per bucket
func (T *Table[K, V]) Stat(includeDistribution bool) (stat Stat) {
	stat.Buckets = len(T.buckets)
	if includeDistribution {
		stat.BucketDistribution = make([]int, len(T.buckets))
	}

	for i, e := range T.buckets {
		chain := 0
		for ; e != nil; e = e.next {
			chain++
		}

		stat.Records += chain
		if chain > 0 {
			stat.UsedBuckets++
		}
		if chain > stat.LongestChain {
			stat.LongestChain = chain
		}
		if includeDistribution {
			stat.BucketDistribution[i] = chain
		}
	}

	if stat.Buckets > 0 {
		stat.LoadFactor = float64(stat.Records) / float64(stat.Buckets)
	}

	return
}

// Reorg - Redistributes every entry over a new bucket array, for instance when the original bucket count turned
// out too small for the keys stored or a better hash algorithm has been found for the data.
//   - hashAlgorithm is the algorithm to use from now on, nil selects the built-in one
//   - bucketCount is the new number of buckets, zero keeps the current count
//
// Entries keep their relative order within a bucket. The embedded cursor is rewound. Key and value slots stay
// valid since entries are relinked, not copied.
// It returns an error of type errs.InvalidConfiguration if bucketCount is negative.
func (T *Table[K, V]) Reorg(hashAlgorithm hashfunc.HashAlgorithm, bucketCount int) (err error) {
	if bucketCount < 0 {
		err = errs.NewInvalidConfiguration("bucket count must not be negative, got %d", bucketCount)
		return
	}
	if bucketCount == 0 {
		bucketCount = len(T.buckets)
	}

	internalAlg := false
	if hashAlgorithm == nil {
		hashAlgorithm = hashfunc.Default()
		internalAlg = true
	}

	old := T.buckets
	T.tracker.Free(T.headerSize())

	T.buckets = make([]*entry[K, V], bucketCount)
	T.hashAlgorithm = hashAlgorithm
	T.internalAlgorithm = internalAlg
	T.tracker.Alloc(T.headerSize())

	var chain []*entry[K, V]
	for _, e := range old {
		chain = chain[:0]
		for ; e != nil; e = e.next {
			chain = append(chain, e)
		}

		// Push from the tail so that entries meeting again in a bucket keep their order
		for i := len(chain) - 1; i >= 0; i-- {
			e = chain[i]
			bucketNo := T.bucketNo(e.keyBytes)
			e.next = T.buckets[bucketNo]
			T.buckets[bucketNo] = e
		}
	}

	T.Rewind()

	return
}
