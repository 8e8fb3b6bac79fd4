// Package clock provides high resolution time stamps with millisecond
// and microsecond precision, elapsed-time measurement, and millisecond
// sleep. Time stamps are anchored to an unspecified epoch, not wall
// time: they are only meaningful relative to other stamps of the same
// resolution taken in the same process.
//
// A monotonic source backs the stamps wherever the platform offers
// one. If it is unavailable or fails at run time the stamps fall back
// to a wall-clock source transparently; callers cannot tell which
// source served a given call, but values served by the fallback are
// subject to system clock adjustments.
package clock

import "time"

// Units per second.
const (
	MillisPerSec = 1000
	MicrosPerSec = 1000000
)

// Milliseconds returns a high resolution time stamp in milliseconds.
// Stamps are monotonically non-decreasing while the monotonic source
// is available.
func Milliseconds() int64 {
	return stampNanos() / int64(time.Millisecond)
}

// Microseconds returns a high resolution time stamp in microseconds.
func Microseconds() int64 {
	return stampNanos() / int64(time.Microsecond)
}

// MilliElapsed returns the milliseconds elapsed since start, which
// must be a value previously returned by Milliseconds. Counter
// wraparound over very long intervals is the caller's concern.
func MilliElapsed(start int64) int64 {
	return Milliseconds() - start
}

// MicroElapsed returns the microseconds elapsed since start, which
// must be a value previously returned by Microseconds.
func MicroElapsed(start int64) int64 {
	return Microseconds() - start
}

// MilliSleep suspends the calling goroutine for at least ms
// milliseconds. Other goroutines are unaffected.
func MilliSleep(ms int64) {
	if ms <= 0 {
		return
	}
	time.Sleep(time.Duration(ms) * time.Millisecond)
}

// wallNanos is the wall-clock fallback used when the platform's
// monotonic source fails at run time.
func wallNanos() int64 {
	return time.Now().UnixNano()
}
