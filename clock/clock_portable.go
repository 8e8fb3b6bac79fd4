//go:build !(linux || darwin || freebsd || netbsd || openbsd || windows)

package clock

import "time"

// base anchors stamps on platforms without a wired native source.
// time.Since reads the Go runtime's monotonic clock.
var base = time.Now()

func stampNanos() int64 {
	return time.Since(base).Nanoseconds()
}
