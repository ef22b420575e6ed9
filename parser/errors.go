package parser

import (
	"errors"
	"fmt"

	"github.com/xiam/lisp/lexer"
)

var (
	ErrUnexpectedEOF   = errors.New("unexpected EOF")
	ErrUnexpectedToken = errors.New("unexpected token")
	ErrUnbalanced      = errors.New("unbalanced parentheses")
	ErrEmptyStatement  = errors.New("empty statement")
	ErrMalformed       = errors.New("malformed expression")
)

// SyntaxError is returned when the source text can't be read as a sequence of
// balanced expressions, or when an expression does not have the shape a
// special form expects. It contains the line, column, the underlying error and
// an optional description.
type SyntaxError struct {
	Line, Col int
	Err       error
	Desc      string
}

// NewSyntaxError creates a SyntaxError at the given position.
func NewSyntaxError(line, col int, err error, desc string) *SyntaxError {
	return &SyntaxError{Line: line, Col: col, Err: err, Desc: desc}
}

func newTokenError(tok *lexer.Token, err error, desc string) *SyntaxError {
	line, col := tok.Pos()
	return NewSyntaxError(line, col, err, desc)
}

func (s *SyntaxError) Error() string {
	pos := ""
	if s.Line > 0 {
		pos = fmt.Sprintf(" at %d:%d", s.Line, s.Col)
	}
	if s.Desc == "" {
		return fmt.Sprintf("syntax error%s: %v", pos, s.Err)
	}
	return fmt.Sprintf("syntax error%s: %v -- %s", pos, s.Err, s.Desc)
}

func (s *SyntaxError) Unwrap() error {
	return s.Err
}
