package evaluator

import (
	"errors"
	"fmt"
)

var (
	// ErrReference is wrapped by errors for unresolvable names.
	ErrReference = errors.New("ReferenceError")
	// ErrType is wrapped by errors for operations on values of the wrong kind.
	ErrType = errors.New("TypeError")
	// ErrRange is wrapped when the call stack grows too deep.
	ErrRange = errors.New("RangeError")
)

// ThrowError carries a value thrown by a throw statement or by the throw
// method of a generator object.
type ThrowError struct {
	Value Value
}

func (e *ThrowError) Error() string {
	return "Uncaught " + inspect(e.Value, true)
}

func referenceError(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrReference}, args...)...)
}

func typeError(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrType}, args...)...)
}
