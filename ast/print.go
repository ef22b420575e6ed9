package ast

import (
	"fmt"
	"io"
	"strings"
)

// Fprint writes a human-readable representation of a node to w.
func Fprint(w io.Writer, n *Node) {
	printLevel(w, n, 0)
}

func printLevel(w io.Writer, n *Node, level int) {
	if n == nil {
		fmt.Fprintf(w, ":nil\n")
		return
	}
	indent := strings.Repeat("    ", level)
	fmt.Fprintf(w, "%s(%s): ", indent, n.Type())
	switch n.Type() {

	case NodeTypeExpression, NodeTypeList:
		fmt.Fprintf(w, "(%v)\n", n.Token())
		list := n.List()
		for i := range list {
			printLevel(w, list[i], level+1)
		}

	case NodeTypeInt, NodeTypeSymbol:
		fmt.Fprintf(w, "%v (%v)\n", n.Encode(), n.Token())

	default:
		panic("unknown node type")
	}
}

// Encode transform a node into its canonical text representation: one space
// between components and no space next to parentheses.
func Encode(n *Node) []byte {
	return encodeNodeLevel(n, 0)
}

func encodeNodeLevel(n *Node, level int) []byte {
	if n == nil {
		return []byte("")
	}
	switch n.Type() {
	case NodeTypeList:
		nodes := []string{}
		for i := range n.List() {
			nodes = append(nodes, string(encodeNodeLevel(n.List()[i], level+1)))
		}
		return []byte(strings.Join(nodes, " "))

	case NodeTypeExpression:
		nodes := []string{}
		for i := range n.List() {
			nodes = append(nodes, string(encodeNodeLevel(n.List()[i], level+1)))
		}
		return []byte(fmt.Sprintf("(%s)", strings.Join(nodes, " ")))

	case NodeTypeInt, NodeTypeSymbol:
		return []byte(n.Encode())

	default:
		panic("unknown node type")
	}
}
