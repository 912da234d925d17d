package curve

import (
	"errors"
	"fmt"
)

var (
	ErrCurveMismatch   = errors.New("curve: points are not on the same curve")
	ErrPointNotOnCurve = errors.New("curve: point is not on the curve")
	ErrNilScalar       = errors.New("curve: nil scalar")
)

// Error records the operation that violated a curve precondition.
// It allows callers to recover the offending operation from a panic value.
type Error struct {
	Op     string
	Detail string
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%v: %s: %s", e.Err, e.Op, e.Detail)
}

func (e *Error) Unwrap() error {
	return e.Err
}
