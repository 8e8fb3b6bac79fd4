package thread

import "fmt"

// Condition codes carried by thread errors, errno style.
const (
	// CodeNotStarted marks a handle that was never produced by Create.
	CodeNotStarted = 3

	// CodeInvalid marks a nil handle or entry routine.
	CodeInvalid = 22
)

// SpawnError reports that a routine could not be created.
type SpawnError struct {
	Code int
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("thread: spawn failed (code %d)", e.Code)
}

// JoinError reports that waiting for a routine failed.
type JoinError struct {
	Code int
}

func (e *JoinError) Error() string {
	return fmt.Sprintf("thread: join failed (code %d)", e.Code)
}
