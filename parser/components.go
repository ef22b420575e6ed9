package parser

import (
	"github.com/xiam/lisp/ast"
)

// Components splits a parenthesized statement into its top-level components:
// the head symbol followed by each argument. Nested expressions are kept
// whole and every component is returned in canonical form.
func Components(stmt string) ([]string, error) {
	node, err := ParseStatement(stmt)
	if err != nil {
		return nil, err
	}

	if node.Type() != ast.NodeTypeExpression {
		line, col := node.Pos()
		return nil, NewSyntaxError(line, col, ErrMalformed, "not a list")
	}

	return node.Components(), nil
}

// Canonicalize collapses whitespace runs into a single space, drops comments
// and removes spaces next to parentheses.
func Canonicalize(stmt string) (string, error) {
	node, err := ParseStatement(stmt)
	if err != nil {
		return "", err
	}
	return string(ast.Encode(node)), nil
}
