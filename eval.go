package lisp

import (
	"errors"
	"fmt"

	"github.com/xiam/lisp/ast"
	"github.com/xiam/lisp/parser"
)

// Eval evaluates a node. Arguments of ordinary calls are reduced
// innermost-first, left to right, before the enclosing call runs. Operands of
// special forms are passed unevaluated.
func (ctx *Context) Eval(node *ast.Node) (*Value, error) {
	value, err := ctx.eval(node)
	if err != nil {
		return nil, ctx.fail(node, err)
	}
	return value, nil
}

// EvalString parses and evaluates a single statement.
func (ctx *Context) EvalString(stmt string) (*Value, error) {
	node, err := parser.ParseStatement(stmt)
	if err != nil {
		return nil, err
	}
	return ctx.Eval(node)
}

func (ctx *Context) eval(node *ast.Node) (*Value, error) {
	switch node.Type() {
	case ast.NodeTypeInt:
		i, _ := node.Int()
		return NewIntValue(i), nil

	case ast.NodeTypeSymbol:
		name, _ := node.Symbol()
		value, ok := ctx.stack.lookup(name)
		if !ok {
			return nil, &UnboundSymbolError{Symbol: name}
		}
		return value, nil

	case ast.NodeTypeExpression:
		value, err := ctx.evalExpression(node)
		if err != nil {
			return nil, ctx.fail(node, err)
		}
		return value, nil

	case ast.NodeTypeList:
		value := Nil
		for _, child := range node.List() {
			var err error
			if value, err = ctx.eval(child); err != nil {
				return nil, err
			}
		}
		return value, nil
	}

	return nil, fmt.Errorf("unknown node type %v", node.Type())
}

func (ctx *Context) evalExpression(node *ast.Node) (*Value, error) {
	list := node.List()
	if len(list) == 0 {
		line, col := node.Pos()
		return nil, parser.NewSyntaxError(line, col, parser.ErrEmptyStatement, "nothing to call")
	}

	symbol, ok := list[0].Symbol()
	if !ok {
		return nil, ErrNotCallable
	}

	if ctx.trace.Enabled() {
		ctx.trace.Logf("call %q with components %q", symbol, node.Components())
	}

	operands := list[1:]
	def, defined := ctx.registry.resolve(symbol)
	if builtin, ok := def.(*Builtin); ok && builtin.NoArgEval() {
		if !builtin.arity.accepts(len(operands)) {
			return nil, arityError(builtin, len(operands))
		}
		return builtin.form(ctx, symbol, operands)
	}

	args := make([]*Value, 0, len(operands))
	for _, operand := range operands {
		value, err := ctx.eval(operand)
		if err != nil {
			return nil, err
		}
		args = append(args, value)
	}

	// the head is resolved after the arguments were reduced
	if !defined {
		return nil, &UndefinedFunctionError{Symbol: symbol}
	}

	ctx.trace.Logf("actually calling %q with args %v", symbol, args)
	return ctx.invoke(def, args)
}

func (ctx *Context) invoke(def Definition, args []*Value) (*Value, error) {
	switch fn := def.(type) {
	case *Builtin:
		if !fn.arity.accepts(len(args)) {
			return nil, arityError(fn, len(args))
		}
		return fn.fn(ctx, fn.symbol, args)

	case *UserFunction:
		return ctx.call(fn, args)
	}

	return nil, fmt.Errorf("unknown definition %T", def)
}

// call binds the arguments of a user function into a new frame and evaluates
// its body. The frame is popped even if the body fails.
func (ctx *Context) call(fn *UserFunction, args []*Value) (*Value, error) {
	if len(args) != len(fn.params) {
		return nil, &ArityError{
			Symbol: fn.symbol,
			Min:    len(fn.params),
			Max:    len(fn.params),
			Got:    len(args),
		}
	}

	frame := NewFrame(FrameCall, fn.symbol)
	for i, param := range fn.params {
		frame.Bind(param, args[i])
	}

	if err := ctx.Push(frame); err != nil {
		return nil, err
	}
	defer ctx.Pop()

	return ctx.eval(fn.body)
}

func arityError(b *Builtin, got int) *ArityError {
	return &ArityError{
		Symbol: b.symbol,
		Min:    b.arity.Min,
		Max:    b.arity.Max,
		Got:    got,
	}
}

// fail wraps err into an EvaluationFailure for node, unless a nested
// expression already did.
func (ctx *Context) fail(node *ast.Node, err error) error {
	var failure *EvaluationFailure
	if errors.As(err, &failure) {
		return err
	}
	return &EvaluationFailure{
		Expr:  node.Encode(),
		Depth: ctx.stack.depth(),
		Err:   err,
	}
}
