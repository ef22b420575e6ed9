package ast

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/xiam/lisp/lexer"
)

// Node represents leaf of the AST
type Node struct {
	p *Node

	nt  NodeType
	tok *lexer.Token
	v   interface{}
}

func newNode(nt NodeType, tok *lexer.Token, v interface{}) *Node {
	return &Node{
		nt:  nt,
		v:   v,
		tok: tok,
	}
}

// NewNode creates and returns an orphaned node based on the given token
func NewNode(tok *lexer.Token, v Valuer) *Node {
	return newNode(v.Type(), tok, v)
}

// NewExpression creates and returns a node of type "expression"
func NewExpression(tok *lexer.Token) *Node {
	return newNode(NodeTypeExpression, tok, []*Node{})
}

// NewList creates and returns a node of type "list"
func NewList(tok *lexer.Token) *Node {
	return newNode(NodeTypeList, tok, []*Node{})
}

// PushValue appends a new value to the node
func (n *Node) PushValue(tok *lexer.Token, v Valuer) (*Node, error) {
	node := NewNode(tok, v)
	if err := n.Push(node); err != nil {
		return nil, err
	}
	return node, nil
}

// PushExpression appends a new expression to the node
func (n *Node) PushExpression(tok *lexer.Token) (*Node, error) {
	node := NewExpression(tok)
	if err := n.Push(node); err != nil {
		return nil, err
	}
	return node, nil
}

// Token returns the token associated to the node
func (n Node) Token() *lexer.Token {
	return n.tok
}

// Pos returns the line and column where the node starts, or zeroes if the
// node was not built from source.
func (n Node) Pos() (int, int) {
	if n.tok == nil {
		return 0, 0
	}
	return n.tok.Pos()
}

// Type returns the type of the node
func (n Node) Type() NodeType {
	return n.nt
}

// Value returns the value of the node
func (n Node) Value() interface{} {
	if n.v == nil {
		return nil
	}
	if _, ok := n.v.(Valuer); ok {
		return n.v.(Valuer).Value()
	}
	return n.v
}

// Symbol returns the name of a symbol node.
func (n Node) Symbol() (string, bool) {
	if n.nt != NodeTypeSymbol {
		return "", false
	}
	return n.Value().(string), true
}

// Int returns the value of an integer node.
func (n Node) Int() (*big.Int, bool) {
	if n.nt != NodeTypeInt {
		return nil, false
	}
	return n.Value().(*big.Int), true
}

// Encode returns the encoded value of the node
func (n Node) Encode() string {
	if n.v == nil {
		return ""
	}
	if _, ok := n.v.(Valuer); ok {
		return n.v.(Valuer).Encode()
	}
	return string(Encode(&n))
}

// List returns all the children elements of the node
func (n *Node) List() []*Node {
	return n.v.([]*Node)
}

// Len returns the number of children of a vector node.
func (n *Node) Len() int {
	if !n.IsVector() {
		return 0
	}
	return len(n.List())
}

// Components returns the canonical text of each child of a vector node, so
// that nested expressions are kept as a single component.
func (n *Node) Components() []string {
	if !n.IsVector() {
		return []string{n.Encode()}
	}
	list := n.List()
	components := make([]string, 0, len(list))
	for i := range list {
		components = append(components, string(Encode(list[i])))
	}
	return components
}

func (n Node) String() string {
	switch n.nt {
	case NodeTypeExpression, NodeTypeList:
		return fmt.Sprintf("(%v)[%d]", nodeTypeName[n.nt], len(n.v.([]*Node)))
	}
	return fmt.Sprintf("(%v): %v", nodeTypeName[n.nt], n.Value())
}

// Push appends a child node to a parent node of type "expression" or "list".
func (n *Node) Push(node *Node) error {
	if n.IsVector() {
		n.v = append(n.v.([]*Node), node)
		node.p = n
		return nil
	}
	return errors.New("nodes of type value can't accept children")
}

// IsValue returns true if the node is of type value
func (n *Node) IsValue() bool {
	return n.nt&nodeTypeValue > 0
}

// IsVector returns true if the node is of type vector
func (n *Node) IsVector() bool {
	return n.nt&nodeTypeVector > 0
}

// Parent returns the node that holds n, if any.
func (n *Node) Parent() *Node {
	return n.p
}
