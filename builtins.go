package lisp

import (
	"fmt"

	"github.com/xiam/lisp/ast"
	"github.com/xiam/lisp/parser"
)

func bindCore(ctx *Context) {
	ctx.Defn("+", Arity{Min: 2, Max: -1}, fnAdd)
	ctx.Defn("print", Arity{Min: 1, Max: 1}, fnPrint)

	ctx.Defspecial("defun", Arity{Min: 3, Max: 3}, formDefun)
	ctx.Defspecial("let", Arity{Min: 2, Max: 2}, formLet)
}

func fnAdd(ctx *Context, symbol string, args []*Value) (*Value, error) {
	sum := args[0].Number()
	for i := range args {
		if args[i].Type != ValueTypeInt {
			return nil, fmt.Errorf("%s: argument %d is %v: %w", symbol, i+1, args[i], ErrNotANumber)
		}
		if i > 0 {
			sum = sum.Add(args[i].Number())
		}
	}
	return NewNumberValue(sum), nil
}

func fnPrint(ctx *Context, symbol string, args []*Value) (*Value, error) {
	if _, err := fmt.Fprintln(ctx.out, args[0].String()); err != nil {
		return nil, err
	}
	return args[0], nil
}

func malformed(node *ast.Node, format string, args ...interface{}) error {
	line, col := node.Pos()
	return parser.NewSyntaxError(line, col, parser.ErrMalformed, fmt.Sprintf(format, args...))
}

// formDefun handles (defun name (param ...) body).
func formDefun(ctx *Context, symbol string, operands []*ast.Node) (*Value, error) {
	name, ok := operands[0].Symbol()
	if !ok {
		return nil, malformed(operands[0], "%s: function name must be a symbol, got %s", symbol, operands[0].Encode())
	}

	paramList := operands[1]
	if paramList.Type() != ast.NodeTypeExpression {
		return nil, malformed(paramList, "%s %s: parameters must be a list, got %s", symbol, name, paramList.Encode())
	}

	params := make([]string, 0, paramList.Len())
	seen := map[string]bool{}
	for _, node := range paramList.List() {
		param, ok := node.Symbol()
		if !ok {
			return nil, malformed(node, "%s %s: parameter must be a symbol, got %s", symbol, name, node.Encode())
		}
		if seen[param] {
			return nil, malformed(node, "%s %s: duplicate parameter %q", symbol, name, param)
		}
		seen[param] = true
		params = append(params, param)
	}

	ctx.Defun(name, params, operands[2])
	return Nil, nil
}

// formLet handles (let ((name value) ...) body). Values are evaluated in the
// enclosing scope before any of the names is bound.
func formLet(ctx *Context, symbol string, operands []*ast.Node) (*Value, error) {
	bindings := operands[0]
	if bindings.Type() != ast.NodeTypeExpression {
		return nil, malformed(bindings, "%s: bindings must be a list, got %s", symbol, bindings.Encode())
	}

	frame := NewFrame(FrameLet, symbol)
	for _, binding := range bindings.List() {
		if binding.Type() != ast.NodeTypeExpression || binding.Len() != 2 {
			return nil, malformed(binding, "%s: binding must be a (name value) pair, got %s", symbol, binding.Encode())
		}

		pair := binding.List()
		name, ok := pair[0].Symbol()
		if !ok {
			return nil, malformed(pair[0], "%s: binding name must be a symbol, got %s", symbol, pair[0].Encode())
		}
		if _, exists := frame.Lookup(name); exists {
			return nil, malformed(pair[0], "%s: duplicate binding %q", symbol, name)
		}

		value, err := ctx.eval(pair[1])
		if err != nil {
			return nil, err
		}
		frame.Bind(name, value)
	}

	if err := ctx.Push(frame); err != nil {
		return nil, err
	}
	defer ctx.Pop()

	return ctx.eval(operands[1])
}
