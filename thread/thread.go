// Package thread provides spawn/join lifecycle management for units of
// concurrent execution, with multi-join error aggregation.
//
// An entry routine receives exactly one caller-owned payload and
// returns nothing: results are communicated by writing into the
// payload, which the joiner may read only after Wait returns. Wait
// establishes a happens-before edge between everything the routine did
// and the joiner's continuation, so no further synchronization is
// needed for that read.
package thread

import (
	"sync/atomic"

	"github.com/chrisdigity/multiplatform-go-utils/diag"
)

// Func is a thread entry routine. Use a struct payload when the
// routine needs more than one value in or out; the payload stays owned
// by the caller, who must keep it valid until the routine finishes.
type Func func(arg any)

// Handle identifies one spawned unit of execution. A Handle is
// produced by Create and consumed exactly once by Wait: joining twice
// is undefined, and a Handle that is never joined leaks its completion
// bookkeeping for the process lifetime.
type Handle struct {
	// ID is a process-unique identifier for the spawned routine.
	ID ID

	// Arg is the payload passed to Create, kept on the handle so the
	// joiner can reach results without carrying the pointer
	// separately.
	Arg any

	done      chan struct{}
	completed uint32
}

// Done reports whether the routine has finished. The flag is advisory
// only and is not guaranteed current; Wait is the authoritative way to
// observe completion.
func (h *Handle) Done() bool {
	return h != nil && atomic.LoadUint32(&h.completed) != 0
}

var (
	activeCount uint64
	idCounter   uint64

	// WaitCount tracks join attempts, successful or not.
	WaitCount uint64
)

// ActiveCount reports the number of live routines created by Create.
func ActiveCount() uint64 {
	return atomic.LoadUint64(&activeCount)
}

// Create spawns a new routine executing fn(arg) and returns its
// handle. The returned error is a *SpawnError when the routine could
// not be created.
func Create(fn Func, arg any) (*Handle, error) {
	if fn == nil {
		return nil, &SpawnError{Code: CodeInvalid}
	}
	h := &Handle{
		ID:   ID(atomic.AddUint64(&idCounter, 1)),
		Arg:  arg,
		done: make(chan struct{}),
	}
	atomic.AddUint64(&activeCount, 1)
	diag.Logger().Debug().Uint64("thread", uint64(h.ID)).Msg("thread created")
	go func() {
		fn(arg)
		atomic.StoreUint32(&h.completed, 1)
		atomic.AddUint64(&activeCount, ^uint64(0))
		diag.Logger().Debug().Uint64("thread", uint64(h.ID)).Msg("thread finished")
		close(h.done)
	}()
	return h, nil
}

// Wait blocks indefinitely until the referenced routine finishes. It
// returns a *JoinError for a handle that cannot be joined; joining a
// handle a second time is undefined.
func Wait(h *Handle) error {
	atomic.AddUint64(&WaitCount, 1)
	if h == nil {
		return &JoinError{Code: CodeInvalid}
	}
	if h.done == nil {
		// not produced by Create
		return &JoinError{Code: CodeNotStarted}
	}
	<-h.done
	return nil
}

// MultiWait joins every handle in order. A failed join does not stop
// the sweep: the remaining handles are still joined so no routine is
// left abandoned. It returns the first error encountered, or nil if
// every join succeeded.
func MultiWait(handles []*Handle) error {
	var first error
	for _, h := range handles {
		if err := Wait(h); err != nil && first == nil {
			first = err
		}
	}
	return first
}
