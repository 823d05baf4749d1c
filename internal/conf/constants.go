package conf

// InitialCapacity - Number of element slots an array is created with, and what a zero capacity grows to
const InitialCapacity int = 10

// GrowthFactor - Factor by which an array's capacity is multiplied when an append would exceed it
const GrowthFactor int = 2

// BucketCount - Default number of buckets in a hash table, fixed for the lifetime of the table unless reorganized
const BucketCount int = 100

// PointerSize - Size in bytes of one bucket chain head
const PointerSize int64 = 8
