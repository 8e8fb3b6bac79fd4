package thread

import (
	"runtime"
	"strconv"
	"strings"
)

// ID identifies a routine created by Create.
type ID uint64

// Equal compares two ids.
func Equal(a, b ID) bool {
	return a == b
}

// Yield yields the processor to other runnable routines.
func Yield() {
	runtime.Gosched()
}

// CurrentID returns the runtime id of the calling goroutine. It is
// drawn from the runtime's own numbering, a different namespace than
// Handle.ID.
func CurrentID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	if n <= 0 {
		return 0
	}
	// Stack header: "goroutine 123 ["
	fields := strings.Fields(strings.TrimPrefix(string(buf[:n]), "goroutine "))
	if len(fields) == 0 {
		return 0
	}
	id, err := strconv.ParseUint(fields[0], 10, 64)
	if err != nil {
		return 0
	}
	return id
}
