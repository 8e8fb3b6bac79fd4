package sync

import "fmt"

// Condition codes carried by lock errors, errno style.
const (
	// CodeInvalid marks an operation on a freed or otherwise unusable
	// lock.
	CodeInvalid = 22
)

// InitError reports that a lock could not be initialized.
type InitError struct {
	Code int
}

func (e *InitError) Error() string {
	return fmt.Sprintf("sync: lock initialization failed (code %d)", e.Code)
}

// LockError reports that a lock operation failed at the platform
// level.
type LockError struct {
	Code int
}

func (e *LockError) Error() string {
	return fmt.Sprintf("sync: lock operation failed (code %d)", e.Code)
}
