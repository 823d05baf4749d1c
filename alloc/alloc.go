// Package alloc provides allocation accounting for the containers. Every container reports the memory it takes
// for its header, payload, nodes and entries to a Tracker, and reports it back when that memory is released.
package alloc

// Tracker - Receives allocation and release notifications from a container.
// Sizes are in bytes and released sizes always equal what was earlier reported as allocated.
type Tracker interface {
	Alloc(bytes int64)
	Free(bytes int64)
}

type noop struct{}

func (noop) Alloc(int64) {}
func (noop) Free(int64)  {}

// Noop - Returns a Tracker that discards all notifications, it is what containers use when none is configured
func Noop() Tracker {
	return noop{}
}

// OrNoop - Returns tracker, or the Noop tracker if tracker is nil
func OrNoop(tracker Tracker) Tracker {
	if tracker == nil {
		return Noop()
	}
	return tracker
}

// CounterStat - Snapshot of a Counter
//   - LiveBytes is the number of bytes allocated and not yet released
//   - LiveObjects is the number of allocations not yet released
//   - TotalAllocs is the number of allocations ever reported
//   - TotalFrees is the number of releases ever reported
type CounterStat struct {
	LiveBytes   int64
	LiveObjects int64
	TotalAllocs int64
	TotalFrees  int64
}

// Counter - A Tracker that keeps running totals. Not safe for concurrent use, same as the containers.
type Counter struct {
	stat CounterStat
}

// NewCounter - Returns a pointer to a new zeroed Counter
func NewCounter() *Counter {
	return &Counter{}
}

// Alloc - Records an allocation of bytes
func (C *Counter) Alloc(bytes int64) {
	C.stat.LiveBytes += bytes
	C.stat.LiveObjects++
	C.stat.TotalAllocs++
}

// Free - Records the release of an allocation of bytes
func (C *Counter) Free(bytes int64) {
	C.stat.LiveBytes -= bytes
	C.stat.LiveObjects--
	C.stat.TotalFrees++
}

// LiveBytes - Returns the number of bytes currently allocated
func (C *Counter) LiveBytes() int64 {
	return C.stat.LiveBytes
}

// LiveObjects - Returns the number of allocations currently live
func (C *Counter) LiveObjects() int64 {
	return C.stat.LiveObjects
}

// Stat - Returns a snapshot of all totals
func (C *Counter) Stat() CounterStat {
	return C.stat
}
