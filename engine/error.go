package engine

import (
	"errors"
	"fmt"
)

// ErrDivisionByZero is the evaluation failure for x/0.
var ErrDivisionByZero = errors.New("division by zero")

// InstantiationError means a variable was unbound where a bound term was
// required, e.g. an unbound goal or an unbound variable inside an arithmetic
// expression.
type InstantiationError struct {
	Culprit Term
}

func (e *InstantiationError) Error() string {
	return fmt.Sprintf("unbound variable %s", e.Culprit)
}

// TypeError means a term of the wrong kind showed up, e.g. a number in goal
// position or a non-evaluable functor inside an expression.
type TypeError struct {
	Type    string
	Culprit Term
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("%s is not %s", e.Culprit, e.Type)
}

// ExistenceError means a goal referred to a procedure with no clauses while
// the VM is configured to treat that as an error.
type ExistenceError struct {
	Procedure string
}

func (e *ExistenceError) Error() string {
	return fmt.Sprintf("unknown procedure %s", e.Procedure)
}
