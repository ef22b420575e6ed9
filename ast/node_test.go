package ast

import (
	"bytes"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xiam/lisp/lexer"
)

func TestNode(t *testing.T) {
	value := &testSymbolValue{value: "AAAA"}
	token := lexer.NewToken(lexer.TokenWord, value.Value().(string), 1, 1)

	node := NewNode(token, value)
	_, err := node.PushValue(token, value)
	assert.Error(t, err)

	name, ok := node.Symbol()
	assert.True(t, ok)
	assert.Equal(t, "AAAA", name)

	_, ok = node.Int()
	assert.False(t, ok)

	assert.True(t, node.IsValue())
	assert.False(t, node.IsVector())
	assert.Nil(t, node.Parent())
}

func TestNodeList(t *testing.T) {
	value := &testSymbolValue{value: "("}
	token := lexer.NewToken(lexer.TokenOpenExpression, value.Value().(string), 1, 1)

	list := NewList(token)
	_, err := list.PushValue(token, value)
	assert.NoError(t, err)
	assert.Equal(t, 1, list.Len())
	assert.Equal(t, list, list.List()[0].Parent())

	assert.True(t, list.IsVector())
	assert.False(t, list.IsValue())
}

func buildAdd() *Node {
	root := NewList(nil)

	expr, _ := root.PushExpression(nil)
	_, _ = expr.PushValue(nil, NewSymbolValue("+"))
	_, _ = expr.PushValue(nil, NewIntValue(big.NewInt(1)))

	inner, _ := expr.PushExpression(nil)
	_, _ = inner.PushValue(nil, NewSymbolValue("f"))
	_, _ = inner.PushValue(nil, NewSymbolValue("x"))

	_, _ = root.PushValue(nil, NewIntValue(big.NewInt(7)))
	return root
}

func TestEncode(t *testing.T) {
	root := buildAdd()

	assert.Equal(t, "(+ 1 (f x)) 7", string(Encode(root)))
	assert.Equal(t, "(+ 1 (f x))", root.List()[0].Encode())
	assert.Equal(t, "(f x)", root.List()[0].List()[2].Encode())
}

func TestComponents(t *testing.T) {
	root := buildAdd()

	assert.Equal(t, []string{"+", "1", "(f x)"}, root.List()[0].Components())
	assert.Equal(t, []string{"7"}, root.List()[1].Components())
	assert.Equal(t, 0, root.List()[1].Len())
}

func TestFprint(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	Fprint(buf, buildAdd())

	out := buf.String()
	assert.Contains(t, out, "(list): ")
	assert.Contains(t, out, "    (expression): ")
	assert.Contains(t, out, "        (symbol): f ")
	assert.Contains(t, out, "    (int): 7 ")
}
