package lisp

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/xiam/lisp/parser"
)

func TestReaderStatements(t *testing.T) {
	statements, err := NewReader(strings.NewReader("(defun add (a b)\n  (+ a b))\n(add 2 3)")).Statements()
	assert.NoError(t, err)
	assert.Equal(t, 2, len(statements))

	assert.Equal(t, "(defun add (a b)\n  (+ a b))", statements[0].Text)
	assert.Equal(t, "(add 2 3)", statements[1].Text)
	assert.Equal(t, 3, statements[1].Line)
	assert.Equal(t, 1, statements[1].Col)
}

func TestRun(t *testing.T) {
	testCases := []struct {
		In  string
		Out string
	}{
		{
			In:  `(print (+ 1 2))`,
			Out: "3\n",
		},
		{
			In:  "(defun add (a b) (+ a b))\n(print (add 2 3))",
			Out: "5\n",
		},
		{
			In:  "(let ((x 5) (y 1))\n  (print (+ x y)))",
			Out: "6\n",
		},
		{
			In:  "(print 1)(print 2)\n\n(print 3)",
			Out: "1\n2\n3\n",
		},
		{
			In:  "(defun twice (x) (+ x x))\n(defun quad (x) (twice (twice x)))\n(print (quad 3))\n",
			Out: "12\n",
		},
		{
			In:  "; nothing but a comment\n",
			Out: "",
		},
		{
			In:  "",
			Out: "",
		},
	}

	for i := range testCases {
		ctx, out, logs := newTestContext()

		results, err := ctx.RunString(testCases[i].In)
		assert.NoError(t, err)
		for _, res := range results {
			assert.False(t, res.Failed(), res.Statement.Text)
		}

		assert.Equal(t, testCases[i].Out, out.String())
		assert.Equal(t, "", logs.String())
	}
}

func TestRunByteOrderMark(t *testing.T) {
	ctx, out, logs := newTestContext()

	results, err := ctx.RunString("\ufeff(print 1)\n(print 2)\n")
	assert.NoError(t, err)
	assert.Equal(t, 2, len(results))

	assert.Equal(t, "1\n2\n", out.String())
	assert.Equal(t, "", logs.String())
}

func TestRunRecovery(t *testing.T) {
	ctx, out, logs := newTestContext()

	results, err := ctx.RunString("(print (+ 1 2)\n(print 7)")
	assert.NoError(t, err)
	assert.Equal(t, 2, len(results))

	assert.True(t, results[0].Failed())
	assert.Nil(t, results[0].Value)

	var syntaxErr *SyntaxError
	assert.True(t, errors.As(results[0].Err, &syntaxErr))
	assert.True(t, errors.Is(results[0].Err, parser.ErrUnexpectedEOF))

	assert.False(t, results[1].Failed())
	assert.Equal(t, "7", results[1].Value.String())

	assert.Equal(t, "7\n", out.String())
	assert.True(t, strings.HasPrefix(logs.String(), "error: line 1:1: (print (+ 1 2): "))
}

func TestRunFailureDoesNotStop(t *testing.T) {
	ctx, out, logs := newTestContext()

	results, err := ctx.RunString("(print 1)\n(missingFn 1 2)\n)\n(print 2)")
	assert.NoError(t, err)
	assert.Equal(t, 4, len(results))

	assert.False(t, results[0].Failed())
	assert.True(t, results[1].Failed())
	assert.Nil(t, results[1].Value)
	assert.True(t, errors.Is(results[2].Err, parser.ErrUnbalanced))
	assert.False(t, results[3].Failed())

	assert.Equal(t, "1\n2\n", out.String())

	lines := strings.Split(strings.TrimSpace(logs.String()), "\n")
	assert.Equal(t, 2, len(lines))
	assert.True(t, strings.HasPrefix(lines[0], `error: line 2:1: (missingFn 1 2): evaluating (missingFn 1 2): undefined function "missingFn"`))
	assert.True(t, strings.HasPrefix(lines[1], "error: line 3:1: ): "))
}

func TestRunReportsCanonicalText(t *testing.T) {
	ctx, _, logs := newTestContext()

	_, err := ctx.RunString("(+   1\n   (missing   2))")
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(logs.String(), "error: line 1:1: (+ 1 (missing 2)): evaluating (missing 2): "))

	logs.Reset()

	_, err = ctx.RunString("(+ 1 2 3 4 5 6 7 8 9 10 11 12 13 14 15 16 17 18 19 20 21 22 23 24 x)")
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(logs.String(), "error: line 1:1: (+ 1 2 3 4 5 6 7 8 9 10 11 12 13 14 15 16 17 18 19 20 21 ...: "))
}

func TestRunReportsTruncatedRunes(t *testing.T) {
	ctx, _, logs := newTestContext()

	name := strings.Repeat("ñ", 70)
	_, err := ctx.RunString("(+ 1 " + name + ")")
	assert.NoError(t, err)

	assert.True(t, utf8.ValidString(logs.String()))
	assert.True(t, strings.HasPrefix(logs.String(), "error: line 1:1: (+ 1 "+strings.Repeat("ñ", 52)+"...: "))
}

func TestRunSharesDefinitions(t *testing.T) {
	ctx, out, _ := newTestContext()

	_, err := ctx.RunString(`(defun inc (x) (+ x 1))`)
	assert.NoError(t, err)

	_, err = ctx.RunString(`(print (inc 41))`)
	assert.NoError(t, err)

	assert.Equal(t, "42\n", out.String())
}

func TestRunReadError(t *testing.T) {
	ctx, _, logs := newTestContext()

	results, err := ctx.Run(iotest.ErrReader(errors.New("broken pipe")))
	assert.Nil(t, results)
	assert.Error(t, err)
	assert.Equal(t, "error: broken pipe\n", logs.String())

	logs.Reset()

	results, err = ctx.RunString("(print \xff)")
	assert.Nil(t, results)
	assert.Error(t, err)
	assert.NotEmpty(t, logs.String())
}
