package field

import (
	"errors"
	"fmt"
)

// Errors reported by the field package. Arithmetic methods panic with an
// *Error wrapping one of these; constructors return it.
var (
	ErrOutOfRange     = errors.New("field: value out of range")
	ErrInvalidModulus = errors.New("field: modulus must be at least 2")
	ErrFieldMismatch  = errors.New("field: elements belong to different fields")
	ErrDivisionByZero = errors.New("field: division by zero")
)

// Error records the operation that violated a field precondition.
type Error struct {
	Op     string
	Detail string
	Err    error
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%v: %s: %s", e.Err, e.Op, e.Detail)
	}
	return fmt.Sprintf("%v: %s", e.Err, e.Op)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(op string, err error, format string, args ...interface{}) *Error {
	return &Error{
		Op:     op,
		Detail: fmt.Sprintf(format, args...),
		Err:    err,
	}
}
