// Package lisp implements an interpreter for a small Lisp dialect with
// integers, user functions and let bindings.
package lisp

import (
	"io"
	"strings"

	"github.com/xiam/lisp/parser"
)

// Reader reads the top-level statements of a source text.
type Reader struct {
	r io.Reader
}

// NewReader creates a Reader on top of r.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// Statements reads all the input and splits it into statements. Unbalanced
// statements are returned with their Err field set.
func (r *Reader) Statements() ([]*parser.Statement, error) {
	in, err := io.ReadAll(r.r)
	if err != nil {
		return nil, err
	}
	return parser.Statements(in)
}

// Result is the outcome of one top-level statement.
type Result struct {
	Statement *parser.Statement

	// Value is nil when the statement failed.
	Value *Value
	Err   error
}

// Failed reports whether the statement failed.
func (r *Result) Failed() bool {
	return r.Err != nil
}

// Run evaluates every statement read from r in order. A failing statement is
// reported to the logger and does not stop the ones after it. The returned
// error is only set when the input can't be read.
func (ctx *Context) Run(r io.Reader) ([]*Result, error) {
	statements, err := NewReader(r).Statements()
	if err != nil {
		ctx.log.Printf("error: %v", err)
		return nil, err
	}

	results := make([]*Result, 0, len(statements))
	for _, stmt := range statements {
		results = append(results, ctx.exec(stmt))
	}

	return results, nil
}

// RunString evaluates every statement in src.
func (ctx *Context) RunString(src string) ([]*Result, error) {
	return ctx.Run(strings.NewReader(src))
}

func (ctx *Context) exec(stmt *parser.Statement) *Result {
	res := &Result{Statement: stmt}

	if stmt.Err != nil {
		res.Err = stmt.Err
		ctx.report(res)
		return res
	}

	ctx.trace.Logf("begin to process statement %q", stmt.Text)

	res.Value, res.Err = ctx.EvalString(stmt.Text)
	if res.Err != nil {
		res.Value = nil
		ctx.report(res)
		return res
	}

	ctx.trace.Logf("statement returned %v", res.Value)
	return res
}

func (ctx *Context) report(res *Result) {
	stmt := res.Statement

	text := stmt.Text
	if canonical, err := parser.Canonicalize(text); err == nil {
		text = canonical
	}
	if runes := []rune(text); len(runes) > 60 {
		text = string(runes[:57]) + "..."
	}

	ctx.log.Printf("error: line %d:%d: %s: %v", stmt.Line, stmt.Col, text, res.Err)
}
