package lisp

import (
	"sort"

	"github.com/xiam/lisp/ast"
)

// Function is the native implementation of a builtin. It receives the values
// of its arguments, already evaluated.
type Function func(ctx *Context, symbol string, args []*Value) (*Value, error)

// SpecialForm is the native implementation of a builtin that receives its
// operands unevaluated.
type SpecialForm func(ctx *Context, symbol string, operands []*ast.Node) (*Value, error)

// Arity is the number of arguments a function accepts. A negative Max means
// there is no upper bound.
type Arity struct {
	Min, Max int
}

func (a Arity) accepts(n int) bool {
	return n >= a.Min && (a.Max < 0 || n <= a.Max)
}

// Definition is either a *Builtin or a *UserFunction.
type Definition interface {
	Symbol() string
}

// Builtin is a function implemented natively by the interpreter.
type Builtin struct {
	symbol string
	arity  Arity

	fn   Function
	form SpecialForm
}

// NewBuiltin creates a builtin whose arguments are evaluated before the call.
func NewBuiltin(symbol string, arity Arity, fn Function) *Builtin {
	return &Builtin{symbol: symbol, arity: arity, fn: fn}
}

// NewSpecialForm creates a builtin that receives its operands unevaluated.
func NewSpecialForm(symbol string, arity Arity, form SpecialForm) *Builtin {
	return &Builtin{symbol: symbol, arity: arity, form: form}
}

// Symbol returns the name the builtin is registered under.
func (b *Builtin) Symbol() string {
	return b.symbol
}

// Arity returns the number of arguments the builtin accepts.
func (b *Builtin) Arity() Arity {
	return b.arity
}

// NoArgEval is true for special forms.
func (b *Builtin) NoArgEval() bool {
	return b.form != nil
}

// UserFunction is a function defined with defun.
type UserFunction struct {
	symbol string
	params []string
	body   *ast.Node
}

// NewUserFunction creates a function with the given parameters and body.
func NewUserFunction(symbol string, params []string, body *ast.Node) *UserFunction {
	return &UserFunction{symbol: symbol, params: params, body: body}
}

// Symbol returns the name of the function.
func (f *UserFunction) Symbol() string {
	return f.symbol
}

// Params returns the names of the parameters, in order.
func (f *UserFunction) Params() []string {
	return f.params
}

// Body returns the unevaluated body.
func (f *UserFunction) Body() *ast.Node {
	return f.body
}

// registry maps symbols to definitions in a single namespace. The last
// definition registered for a symbol wins, so a defun named after a builtin
// replaces it for the rest of the run.
type registry struct {
	defs map[string]Definition
}

func newRegistry() *registry {
	return &registry{
		defs: make(map[string]Definition),
	}
}

func (r *registry) register(def Definition) Definition {
	prev := r.defs[def.Symbol()]
	r.defs[def.Symbol()] = def
	return prev
}

func (r *registry) resolve(symbol string) (Definition, bool) {
	def, ok := r.defs[symbol]
	return def, ok
}

func (r *registry) symbols() []string {
	symbols := make([]string, 0, len(r.defs))
	for symbol := range r.defs {
		symbols = append(symbols, symbol)
	}
	sort.Strings(symbols)
	return symbols
}
