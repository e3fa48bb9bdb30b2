package calcerrors

import (
	"errors"
	"fmt"
)

var (
	ErrDivisionByZero      = errors.New("division by zero is not allowed")
	ErrMalformedExpression = errors.New("malformed expression")
)

func NewMalformedError(reason string) error {
	return fmt.Errorf("%w: %s", ErrMalformedExpression, reason)
}

// EvalError reports a failure while applying an operator.
type EvalError struct {
	op    string
	cause error
}

func NewEvalError(op string, cause error) error {
	return &EvalError{op, cause}
}

// Error implements error.
func (e *EvalError) Error() string {
	return fmt.Sprintf("at '%s': %v", e.op, e.cause)
}

func (e *EvalError) Unwrap() error {
	return e.cause
}

var _ error = (*EvalError)(nil)
var _ unwrapInterface = (*EvalError)(nil)
