package lifecycle

import "fmt"

// ValidationError rejects an operation before any mutation is attempted:
// illegal state transitions, finalizing with incomplete workers, and the
// like. Retrying without changing the request will fail again.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationErrorf(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// ConflictError means the operation lost a race against another writer
// (double drop, second finalize). The caller should refresh its view of
// the data rather than retry blindly.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// IncompleteShiftError blocks finalization while workers have not ended
// their shift. Validation-class; Remaining carries the blocking count.
type IncompleteShiftError struct {
	Remaining int
}

func (e *IncompleteShiftError) Error() string {
	return fmt.Sprintf("%d assignments have not ended their shift", e.Remaining)
}
