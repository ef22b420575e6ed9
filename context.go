package lisp

import (
	"io"
	"log"
	"os"

	"github.com/xiam/lisp/ast"
	"github.com/xiam/lisp/internal/debug"
)

// DefaultMaxDepth is the number of nested frames allowed when Options.MaxDepth
// is zero.
const DefaultMaxDepth = 10000

// Options configures a Context. Zero values select the defaults.
type Options struct {
	// Output receives the lines written by print. Defaults to os.Stdout.
	Output io.Writer

	// Logger receives diagnostics about failed statements. Defaults to a
	// logger that writes timestamped lines to os.Stderr.
	Logger *log.Logger

	// Debug enables tracing of every call.
	Debug bool

	// MaxDepth limits the number of nested frames. Negative values remove
	// the limit.
	MaxDepth int
}

// Context holds the function registry and the call stack of one interpreter
// run.
type Context struct {
	registry *registry
	stack    *callStack

	out   io.Writer
	log   *log.Logger
	trace *debug.Tracer
}

// NewContext creates a Context with the core builtins registered.
func NewContext() *Context {
	ctx := &Context{
		registry: newRegistry(),
		stack:    &callStack{},
	}
	ctx.SetOptions(Options{})
	bindCore(ctx)
	return ctx
}

// SetOptions replaces the options of the context.
func (ctx *Context) SetOptions(options Options) {
	ctx.out = options.Output
	if ctx.out == nil {
		ctx.out = os.Stdout
	}

	ctx.log = options.Logger
	if ctx.log == nil {
		ctx.log = log.New(os.Stderr, "", log.LstdFlags)
	}

	switch {
	case options.MaxDepth == 0:
		ctx.stack.max = DefaultMaxDepth
	case options.MaxDepth < 0:
		ctx.stack.max = 0
	default:
		ctx.stack.max = options.MaxDepth
	}

	ctx.trace = nil
	if options.Debug {
		ctx.trace = debug.New(ctx.log.Printf)
	}
}

// Output returns the writer print writes to.
func (ctx *Context) Output() io.Writer {
	return ctx.out
}

// Logger returns the logger diagnostics are written to.
func (ctx *Context) Logger() *log.Logger {
	return ctx.log
}

// Register adds a definition, replacing any previous one with the same symbol.
func (ctx *Context) Register(def Definition) {
	if prev := ctx.registry.register(def); prev != nil {
		ctx.trace.Logf("%q redefined", def.Symbol())
	}
}

// Defn registers a builtin whose arguments are evaluated before the call.
func (ctx *Context) Defn(symbol string, arity Arity, fn Function) {
	ctx.Register(NewBuiltin(symbol, arity, fn))
}

// Defspecial registers a builtin that receives its operands unevaluated.
func (ctx *Context) Defspecial(symbol string, arity Arity, form SpecialForm) {
	ctx.Register(NewSpecialForm(symbol, arity, form))
}

// Defun registers a user function.
func (ctx *Context) Defun(symbol string, params []string, body *ast.Node) {
	ctx.Register(NewUserFunction(symbol, params, body))
}

// Resolve returns the definition that is called for the given symbol.
func (ctx *Context) Resolve(symbol string) (Definition, bool) {
	return ctx.registry.resolve(symbol)
}

// Functions returns the registered symbols in alphabetical order.
func (ctx *Context) Functions() []string {
	return ctx.registry.symbols()
}

// Push adds a frame to the call stack.
func (ctx *Context) Push(frame *Frame) error {
	if err := ctx.stack.push(frame); err != nil {
		return err
	}
	ctx.trace.Logf("push %q (depth %d)", frame.Name, ctx.stack.depth())
	return nil
}

// Pop removes the topmost frame of the call stack.
func (ctx *Context) Pop() *Frame {
	frame := ctx.stack.pop()
	if frame != nil {
		ctx.trace.Logf("pop %q (depth %d)", frame.Name, ctx.stack.depth())
	}
	return frame
}

// Frame returns the topmost frame, or nil when no call is active.
func (ctx *Context) Frame() *Frame {
	return ctx.stack.top()
}

// Depth returns the number of active frames.
func (ctx *Context) Depth() int {
	return ctx.stack.depth()
}

// Lookup returns the value bound to name in the visible frames.
func (ctx *Context) Lookup(name string) (*Value, bool) {
	return ctx.stack.lookup(name)
}
