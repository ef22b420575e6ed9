package parser

import (
	"strings"

	"github.com/xiam/lisp/lexer"
)

// Statement is one top-level form of a source text.
type Statement struct {
	Text string

	Line int
	Col  int

	// Err is set when the statement is not balanced.
	Err error
}

func newStatement(src []byte, start *lexer.Token, end int, err error) *Statement {
	line, col := start.Pos()
	return &Statement{
		Text: strings.TrimSpace(string(src[start.Offset():end])),
		Line: line,
		Col:  col,
		Err:  err,
	}
}

// Statements splits source text into top-level statements by tracking the
// depth of parentheses. Unbalanced statements are returned with Err set and
// reading continues after them: a stray ")" is skipped and an unclosed "("
// extends up to the next "(" that begins a later line with no more
// indentation than the unclosed one. The
// returned error is only set when the input can't be tokenized.
func Statements(src []byte) ([]*Statement, error) {
	tokens, err := lexer.Tokenize(src)
	if err != nil {
		return nil, &SyntaxError{Err: err, Desc: "invalid input"}
	}

	statements := []*Statement{}
	for i := 0; i < len(tokens); {
		tok := &tokens[i]

		switch tok.Type() {
		case lexer.TokenWord:
			statements = append(statements, newStatement(src, tok, tok.End(), nil))
			i++

		case lexer.TokenCloseExpression:
			err := newTokenError(tok, ErrUnbalanced, "unexpected )")
			statements = append(statements, newStatement(src, tok, tok.End(), err))
			i++

		case lexer.TokenOpenExpression:
			end, next, err := scanStatement(tokens, i)
			statements = append(statements, newStatement(src, tok, end, err))
			i = next

		default:
			i++
		}
	}

	return statements, nil
}

// scanStatement finds where the statement opened at tokens[start] ends. It
// returns the byte offset of the end of the statement and the index of the
// token to resume from.
func scanStatement(tokens []lexer.Token, start int) (int, int, error) {
	depth := 0
	for i := start; i < len(tokens); i++ {
		switch tokens[i].Type() {
		case lexer.TokenOpenExpression:
			depth++
		case lexer.TokenCloseExpression:
			depth--
			if depth == 0 {
				return tokens[i].End(), i + 1, nil
			}
		}
	}

	err := newTokenError(&tokens[start], ErrUnexpectedEOF, "unclosed (")

	line, col := tokens[start].Pos()
	for i := start + 1; i < len(tokens); i++ {
		if !tokens[i].Is(lexer.TokenOpenExpression) {
			continue
		}
		l, c := tokens[i].Pos()
		if l > line && c <= col && startsLine(tokens, i) {
			return tokens[i].Offset(), i, err
		}
	}

	last := tokens[len(tokens)-1]
	return last.End(), len(tokens), err
}

// startsLine reports whether only whitespace precedes tokens[i] on its line.
func startsLine(tokens []lexer.Token, i int) bool {
	for j := i - 1; j >= 0; j-- {
		switch tokens[j].Type() {
		case lexer.TokenWhitespace:
			continue
		case lexer.TokenNewLine:
			return true
		}
		return false
	}
	return true
}

// Split splits source text into top-level statements, failing on the first
// unbalanced one.
func Split(src []byte) ([]string, error) {
	statements, err := Statements(src)
	if err != nil {
		return nil, err
	}

	texts := make([]string, 0, len(statements))
	for _, stmt := range statements {
		if stmt.Err != nil {
			return nil, stmt.Err
		}
		texts = append(texts, stmt.Text)
	}

	return texts, nil
}
