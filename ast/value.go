package ast

import (
	"math/big"
)

// Valuer represents a value interface
type Valuer interface {
	Type() NodeType
	Value() interface{}
	Encode() string
}

type nodeValue struct {
	t NodeType
	v interface{}
}

func newNodeValue(t NodeType, v interface{}) *nodeValue {
	return &nodeValue{
		t: t,
		v: v,
	}
}

func (n *nodeValue) Type() NodeType {
	return n.t
}

func (n *nodeValue) Value() interface{} {
	return n.v
}

func (n *nodeValue) Encode() string {
	switch n.t {
	case NodeTypeInt:
		return n.v.(*big.Int).String()
	case NodeTypeSymbol:
		return n.v.(string)
	}

	panic("unreachable")
}

// NewIntValue creates a value of type int and sets it to the given integer
func NewIntValue(v *big.Int) Valuer {
	return newNodeValue(NodeTypeInt, v)
}

// NewSymbolValue creates a value of type symbol and sets it to the given name
func NewSymbolValue(v string) Valuer {
	return newNodeValue(NodeTypeSymbol, v)
}

var _ = Valuer(&nodeValue{})
