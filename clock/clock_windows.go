//go:build windows

package clock

import (
	"sync/atomic"

	"golang.org/x/sys/windows"
)

// perfFreq caches the performance counter frequency, queried once per
// process. Racing warm-up reads are harmless: every writer stores the
// same hardware-derived constant.
var perfFreq int64

// stampNanos reads the performance counter and scales it to
// nanoseconds. Whole seconds are split out before scaling so the
// multiply cannot overflow at realistic uptimes.
func stampNanos() int64 {
	freq := atomic.LoadInt64(&perfFreq)
	if freq == 0 {
		if err := windows.QueryPerformanceFrequency(&freq); err != nil || freq == 0 {
			return wallNanos()
		}
		atomic.StoreInt64(&perfFreq, freq)
	}
	var count int64
	if err := windows.QueryPerformanceCounter(&count); err != nil {
		return wallNanos()
	}
	sec := count / freq
	rem := count % freq
	return sec*1e9 + rem*1e9/freq
}
