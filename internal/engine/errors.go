package engine

import (
	"errors"
	"fmt"
)

var (
	ErrEmpty          = errors.New("empty expression")
	ErrSyntax         = errors.New("syntax error")
	ErrDivisionByZero = errors.New("division by zero")
	ErrNotFinite      = errors.New("result is not finite")
)

// EvaluationError reports why an expression could not be evaluated.
// Err is one of the sentinel errors above.
type EvaluationError struct {
	Expr string
	Pos  int
	Err  error
}

func (e *EvaluationError) Error() string {
	if e.Pos >= 0 {
		return fmt.Sprintf("evaluate %q at %d: %v", e.Expr, e.Pos, e.Err)
	}
	return fmt.Sprintf("evaluate %q: %v", e.Expr, e.Err)
}

func (e *EvaluationError) Unwrap() error { return e.Err }
