package sync

import (
	"runtime"
	stdsync "sync"
	"sync/atomic"

	"github.com/chrisdigity/multiplatform-go-utils/diag"
)

// Mutex lifecycle states, held in the atomic state word.
const (
	mutexUnset uint32 = iota
	mutexIniting
	mutexReady
	mutexFreed
)

// Mutex is a mutually exclusive lock. The zero value is a valid,
// statically initialized Mutex: the first Lock or TryLock performs the
// underlying initialization exactly once, however many goroutines race
// for it. Callers that prefer explicit initialization call Init before
// any use; calling Init twice, or Init concurrently with use, is
// undefined.
//
// Mutex is strictly non-recursive: a goroutine locking a Mutex it
// already holds deadlocks.
type Mutex struct {
	state uint32
	lk    *stdsync.Mutex
}

// NewMutex returns an explicitly initialized Mutex.
func NewMutex() *Mutex {
	m := &Mutex{}
	_ = m.Init()
	return m
}

// Init initializes the Mutex for the explicit-init path. The caller
// serializes Init against all other use.
func (m *Mutex) Init() error {
	m.lk = new(stdsync.Mutex)
	atomic.AddUint64(&MutexCount, 1)
	atomic.StoreUint32(&m.state, mutexReady)
	return nil
}

// Lock acquires the exclusive lock, blocking until it is free. A
// statically initialized Mutex is lazily initialized on the way in.
func (m *Mutex) Lock() error {
	if err := m.ready(); err != nil {
		return err
	}
	m.lk.Lock()
	return nil
}

// TryLock attempts to acquire the lock without blocking and reports
// whether it succeeded. Like Lock it initializes a statically
// constructed Mutex first.
func (m *Mutex) TryLock() (bool, error) {
	if err := m.ready(); err != nil {
		return false, err
	}
	return m.lk.TryLock(), nil
}

// Unlock releases the lock. Calling Unlock without holding the lock is
// undefined.
func (m *Mutex) Unlock() error {
	lk := m.lk
	if lk == nil {
		return &LockError{Code: CodeInvalid}
	}
	lk.Unlock()
	return nil
}

// Free destroys the Mutex. Any subsequent Lock or Unlock fails; a
// freed Mutex cannot be revived.
func (m *Mutex) Free() error {
	atomic.StoreUint32(&m.state, mutexFreed)
	m.lk = nil
	atomic.AddUint64(&MutexCount, ^uint64(0))
	diag.Logger().Debug().Msg("mutex freed")
	return nil
}

// ready ensures the Mutex is initialized, performing the lazy
// first-use initialization when the Mutex was statically constructed.
// The state word itself is the initialization guard: the goroutine
// that wins the CAS from unset to initializing allocates the native
// lock and publishes ready; losers spin until the winner's store
// lands. The atomic publish of mutexReady orders the lk write before
// any reader that observes the ready state, so no goroutine can see a
// partially initialized Mutex.
func (m *Mutex) ready() error {
	for {
		switch atomic.LoadUint32(&m.state) {
		case mutexReady:
			return nil
		case mutexFreed:
			return &LockError{Code: CodeInvalid}
		case mutexUnset:
			if atomic.CompareAndSwapUint32(&m.state, mutexUnset, mutexIniting) {
				m.lk = new(stdsync.Mutex)
				atomic.AddUint64(&MutexCount, 1)
				atomic.AddUint64(&LazyInitCount, 1)
				diag.Logger().Debug().Msg("mutex lazily initialized")
				atomic.StoreUint32(&m.state, mutexReady)
				return nil
			}
		default:
			// another goroutine holds the init guard
			runtime.Gosched()
		}
	}
}
