//go:build linux || darwin || freebsd || netbsd || openbsd

package clock

import "golang.org/x/sys/unix"

// stampNanos reads the monotonic clock, falling back to the realtime
// clock if the monotonic read fails.
func stampNanos() int64 {
	var ts unix.Timespec
	if unix.ClockGettime(unix.CLOCK_MONOTONIC, &ts) == nil {
		return ts.Nano()
	}
	if unix.ClockGettime(unix.CLOCK_REALTIME, &ts) == nil {
		return ts.Nano()
	}
	return wallNanos()
}
