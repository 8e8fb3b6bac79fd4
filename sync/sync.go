// Package sync provides a mutually exclusive lock and a shared-read /
// exclusive-write lock with uniform behavior across platforms.
//
// Both lock types are usable from their zero value: a zero Mutex is in
// the uninitialized state and performs exactly-once lazy initialization
// on first use, while a zero RWLock is immediately ready because the
// native primitive supports static construction. The zero values play
// the role of the MUTEX_INITIALIZER / RWLOCK_INITIALIZER static
// initializers of pthread-style APIs.
package sync

import "sync/atomic"

// Instrumentation counters. Updated atomically; read them with
// sync/atomic or through the accessor functions.
var (
	// MutexCount tracks live initialized mutexes.
	MutexCount uint64

	// RWLockCount tracks explicit RWLock initializations.
	RWLockCount uint64

	// LazyInitCount tracks mutex initializations performed on the
	// lazy first-lock path.
	LazyInitCount uint64
)

// ResetStats resets the instrumentation counters.
func ResetStats() {
	atomic.StoreUint64(&MutexCount, 0)
	atomic.StoreUint64(&RWLockCount, 0)
	atomic.StoreUint64(&LazyInitCount, 0)
}

// LazyInits returns the number of lazy mutex initializations since the
// last ResetStats.
func LazyInits() uint64 {
	return atomic.LoadUint64(&LazyInitCount)
}
