package lisp

import (
	"errors"
	"fmt"

	"github.com/xiam/lisp/parser"
)

var (
	ErrStackOverflow = errors.New("stack overflow")
	ErrNotANumber    = errors.New("not a number")
	ErrNotCallable   = errors.New("head of expression is not a symbol")
)

// SyntaxError reports unbalanced statements and special forms with the wrong
// shape.
type SyntaxError = parser.SyntaxError

// ArityError is returned when a function receives a number of arguments it
// does not accept. A negative Max means there is no upper bound.
type ArityError struct {
	Symbol   string
	Min, Max int
	Got      int
}

func (e *ArityError) Error() string {
	var expected string
	switch {
	case e.Max < 0:
		expected = fmt.Sprintf("at least %d", e.Min)
	case e.Min == e.Max:
		expected = fmt.Sprintf("%d", e.Min)
	default:
		expected = fmt.Sprintf("%d to %d", e.Min, e.Max)
	}
	return fmt.Sprintf("%s: wrong number of arguments: expected %s, got %d", e.Symbol, expected, e.Got)
}

// UndefinedFunctionError is returned when the head of an expression does not
// name a registered function.
type UndefinedFunctionError struct {
	Symbol string
}

func (e *UndefinedFunctionError) Error() string {
	return fmt.Sprintf("undefined function %q", e.Symbol)
}

// UnboundSymbolError is returned when a symbol in argument position has no
// value in the active frames.
type UnboundSymbolError struct {
	Symbol string
}

func (e *UnboundSymbolError) Error() string {
	return fmt.Sprintf("unbound symbol %q", e.Symbol)
}

// EvaluationFailure wraps the error of the innermost expression that failed.
// Enclosing expressions return it unchanged.
type EvaluationFailure struct {
	Expr  string
	Depth int
	Err   error
}

func (e *EvaluationFailure) Error() string {
	return fmt.Sprintf("evaluating %s: %v", e.Expr, e.Err)
}

func (e *EvaluationFailure) Unwrap() error {
	return e.Err
}
