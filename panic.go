package progressor

import (
	"fmt"
	"runtime"
)

// PanicError wraps a panic recovered from a work function together with
// the goroutine stack trace captured at the point of the panic. It is
// returned from [Task.Wait]; the panicking operation itself still ends
// with a Cancelled snapshot.
type PanicError struct {
	// Value is the original value passed to panic().
	Value any

	// Stack is the goroutine stack trace at the point of panic.
	Stack string
}

// Error renders the panic value followed by the stack of the work
// goroutine that raised it.
func (e *PanicError) Error() string {
	return fmt.Sprintf("panic in work function: %v\n\n%s", e.Value, e.Stack)
}

// Unwrap returns nil. PanicError does not wrap another error.
func (e *PanicError) Unwrap() error { return nil }

// newPanicError runs inside the recovering deferred call, so the
// captured stack is that of the panicking work goroutine. 8 KiB covers
// typical work-function stacks; runtime.Stack truncates beyond that.
func newPanicError(v any) *PanicError {
	buf := make([]byte, 8192)
	n := runtime.Stack(buf, false)
	return &PanicError{
		Value: v,
		Stack: string(buf[:n]),
	}
}
