package regenerator

import (
	"errors"
	"fmt"

	"github.com/t14raptor/regen/ast"
)

// ErrUnsupportedConstruct is wrapped by every *UnsupportedConstructError.
var ErrUnsupportedConstruct = errors.New("unsupported construct")

// UnsupportedConstructError reports a generator the rewriter cannot turn
// into a step function, such as one with a yield inside a loop.
type UnsupportedConstructError struct {
	Construct string
	Offset    ast.Idx
}

func (e *UnsupportedConstructError) Error() string {
	return fmt.Sprintf("%s: %s at offset %d", ErrUnsupportedConstruct, e.Construct, e.Offset)
}

func (e *UnsupportedConstructError) Unwrap() error {
	return ErrUnsupportedConstruct
}
