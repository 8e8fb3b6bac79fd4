package sync

import "time"

// blockProbe gives a goroutine that should stay blocked a window in
// which to wrongly proceed.
func blockProbe() <-chan time.Time {
	return time.After(50 * time.Millisecond)
}

// releaseProbe bounds how long an unblocked goroutine may take to make
// progress before the test gives up.
func releaseProbe() <-chan time.Time {
	return time.After(2 * time.Second)
}
