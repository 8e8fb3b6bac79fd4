package sync

import (
	stdsync "sync"
	"sync/atomic"
)

// RWLock is a shared-read / exclusive-write lock. The zero value is
// ready to use: the native primitive supports static construction, so
// unlike Mutex there is no lazy initialization step and no
// initialization state to track.
//
// Releases must match the acquisition mode: releasing a read lock that
// was acquired for writing, or vice versa, is undefined. Fairness
// between waiting readers and writers is platform-defined.
type RWLock struct {
	mu      stdsync.RWMutex
	readers int64
	writers int64
}

// NewRWLock returns an explicitly initialized RWLock.
func NewRWLock() *RWLock {
	l := &RWLock{}
	_ = l.Init()
	return l
}

// Init prepares the RWLock. A zero-value RWLock is already valid
// without calling Init; the call exists for parity with Mutex and for
// callers that want the instrumentation count.
func (l *RWLock) Init() error {
	atomic.AddUint64(&RWLockCount, 1)
	return nil
}

// RLock acquires the lock in shared mode, blocking while a writer
// holds it. Multiple readers may hold the lock concurrently.
func (l *RWLock) RLock() error {
	l.mu.RLock()
	atomic.AddInt64(&l.readers, 1)
	return nil
}

// RUnlock releases a shared-mode hold.
func (l *RWLock) RUnlock() error {
	atomic.AddInt64(&l.readers, -1)
	l.mu.RUnlock()
	return nil
}

// Lock acquires the lock in exclusive mode, blocking until all readers
// and any writer have released it.
func (l *RWLock) Lock() error {
	l.mu.Lock()
	atomic.AddInt64(&l.writers, 1)
	return nil
}

// Unlock releases an exclusive-mode hold.
func (l *RWLock) Unlock() error {
	atomic.AddInt64(&l.writers, -1)
	l.mu.Unlock()
	return nil
}

// Free destroys the RWLock. The native primitive needs no explicit
// teardown, so Free only exists for platform parity; using the lock
// afterwards is undefined all the same.
func (l *RWLock) Free() error {
	return nil
}

// ReaderCount reports the current number of shared-mode holders.
func (l *RWLock) ReaderCount() int64 {
	return atomic.LoadInt64(&l.readers)
}

// WriterCount reports the current number of exclusive-mode holders.
func (l *RWLock) WriterCount() int64 {
	return atomic.LoadInt64(&l.writers)
}
