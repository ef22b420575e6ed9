package lisp

import (
	"bytes"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestContext() (*Context, *bytes.Buffer, *bytes.Buffer) {
	out := bytes.NewBuffer(nil)
	logs := bytes.NewBuffer(nil)

	ctx := NewContext()
	ctx.SetOptions(Options{
		Output: out,
		Logger: log.New(logs, "", 0),
	})
	return ctx, out, logs
}

func TestContextCreate(t *testing.T) {
	ctx := NewContext()
	assert.NotNil(t, ctx)
	assert.NotNil(t, ctx.Output())
	assert.NotNil(t, ctx.Logger())

	assert.Equal(t, []string{"+", "defun", "let", "print"}, ctx.Functions())
	assert.Equal(t, 0, ctx.Depth())
	assert.Nil(t, ctx.Frame())
}

func TestContextResolve(t *testing.T) {
	ctx := NewContext()

	{
		def, ok := ctx.Resolve("defun")
		assert.True(t, ok)
		assert.True(t, def.(*Builtin).NoArgEval())
		assert.Equal(t, Arity{Min: 3, Max: 3}, def.(*Builtin).Arity())
	}

	{
		def, ok := ctx.Resolve("+")
		assert.True(t, ok)
		assert.False(t, def.(*Builtin).NoArgEval())
	}

	{
		def, ok := ctx.Resolve("missing")
		assert.False(t, ok)
		assert.Nil(t, def)
	}
}

func TestContextLastRegistrationWins(t *testing.T) {
	ctx, out, _ := newTestContext()

	_, err := ctx.EvalString(`(defun print (a) (+ a 1))`)
	assert.NoError(t, err)

	def, ok := ctx.Resolve("print")
	assert.True(t, ok)
	assert.IsType(t, &UserFunction{}, def)

	value, err := ctx.EvalString(`(print 1)`)
	assert.NoError(t, err)
	assert.Equal(t, "2", value.String())
	assert.Equal(t, "", out.String())

	ctx.Defn("print", Arity{Min: 1, Max: 1}, fnPrint)

	def, _ = ctx.Resolve("print")
	assert.IsType(t, &Builtin{}, def)

	_, err = ctx.EvalString(`(print 1)`)
	assert.NoError(t, err)
	assert.Equal(t, "1\n", out.String())
}

func TestContextFrames(t *testing.T) {
	ctx := NewContext()

	outer := NewFrame(FrameCall, "f")
	outer.Bind("a", NewInt64Value(1))
	assert.NoError(t, ctx.Push(outer))

	inner := NewFrame(FrameLet, "let")
	inner.Bind("b", NewInt64Value(2))
	inner.Bind("a", NewInt64Value(3))
	assert.NoError(t, ctx.Push(inner))

	assert.Equal(t, []string{"b", "a"}, inner.Names())
	assert.Equal(t, inner, ctx.Frame())

	{
		value, ok := ctx.Lookup("a")
		assert.True(t, ok)
		assert.Equal(t, "3", value.String())
	}

	{
		value, ok := ctx.Lookup("b")
		assert.True(t, ok)
		assert.Equal(t, "2", value.String())
	}

	// call frames hide everything below them
	assert.NoError(t, ctx.Push(NewFrame(FrameCall, "g")))
	{
		_, ok := ctx.Lookup("a")
		assert.False(t, ok)
	}

	assert.Equal(t, 3, ctx.Depth())
	assert.Equal(t, "g", ctx.Pop().Name)
	assert.Equal(t, "let", ctx.Pop().Name)
	assert.Equal(t, "f", ctx.Pop().Name)
	assert.Nil(t, ctx.Pop())
}

func TestContextMaxDepth(t *testing.T) {
	ctx := NewContext()
	ctx.SetOptions(Options{MaxDepth: 2})

	assert.NoError(t, ctx.Push(NewFrame(FrameCall, "a")))
	assert.NoError(t, ctx.Push(NewFrame(FrameCall, "b")))
	assert.Equal(t, ErrStackOverflow, ctx.Push(NewFrame(FrameCall, "c")))
	assert.Equal(t, 2, ctx.Depth())

	ctx.SetOptions(Options{MaxDepth: -1})
	assert.NoError(t, ctx.Push(NewFrame(FrameCall, "c")))
}

func TestContextDebug(t *testing.T) {
	logs := bytes.NewBuffer(nil)

	ctx := NewContext()
	ctx.SetOptions(Options{
		Output: bytes.NewBuffer(nil),
		Logger: log.New(logs, "", 0),
		Debug:  true,
	})

	_, err := ctx.RunString(`(defun add (a b) (+ a b)) (add 2 3)`)
	assert.NoError(t, err)

	assert.Contains(t, logs.String(), `call "add" with components ["add" "2" "3"]`)
	assert.Contains(t, logs.String(), `push "add" (depth 1)`)
	assert.Contains(t, logs.String(), `pop "add" (depth 0)`)
}
