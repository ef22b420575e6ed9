package parser

import (
	"bytes"
	"io"
	"math/big"
	"strings"

	"github.com/xiam/lisp/ast"
	"github.com/xiam/lisp/lexer"
)

// TokenEOF is returned by the parser once all the tokens were consumed.
var TokenEOF = lexer.NewToken(lexer.TokenEOF, "", 0, 0)

type parserState func(p *Parser) parserState

// ParserOptions changes how the parser reacts to incomplete input.
type ParserOptions struct {
	// AutoCloseOnEOF closes any expression left open at the end of the input
	// instead of failing with ErrUnexpectedEOF.
	AutoCloseOnEOF bool
}

// Parser builds an expression tree out of a stream of tokens.
type Parser struct {
	r    io.Reader
	root *ast.Node

	tokens []lexer.Token
	offset int

	lastTok *lexer.Token

	lastErr error
	options ParserOptions
}

// NewParser creates a parser that reads source text from r.
func NewParser(r io.Reader) *Parser {
	return &Parser{
		r:    r,
		root: ast.NewList(nil),
	}
}

// SetOptions replaces the parser options.
func (p *Parser) SetOptions(options ParserOptions) {
	p.options = options
}

// Root returns the list of top-level expressions that were parsed.
func (p *Parser) Root() *ast.Node {
	return p.root
}

// Parse reads all the input and builds the tree.
func (p *Parser) Parse() error {
	lx := lexer.New(p.r)
	if err := lx.Scan(); err != nil {
		return &SyntaxError{Err: err, Desc: "invalid input"}
	}
	p.tokens = lx.Tokens()

	for state := parserDefaultState; state != nil; {
		state = state(p)
	}

	return p.lastErr
}

func (p *Parser) curr() *lexer.Token {
	return p.lastTok
}

func (p *Parser) next() *lexer.Token {
	if p.offset >= len(p.tokens) {
		p.lastTok = TokenEOF
		return TokenEOF
	}
	tok := &p.tokens[p.offset]
	p.offset++
	p.lastTok = tok
	return tok
}

func parserDefaultState(p *Parser) parserState {
	root := p.root
	tok := p.next()

	switch tok.Type() {
	case lexer.TokenEOF:
		return nil

	default:
		if state := parserStateData(root)(p); state != nil {
			return state
		}
	}

	return parserDefaultState
}

func parserErrorState(err error) parserState {
	return func(p *Parser) parserState {
		p.lastErr = err
		return nil
	}
}

func parserStateData(root *ast.Node) parserState {
	return func(p *Parser) parserState {
		tok := p.curr()

		switch tok.Type() {
		case lexer.TokenWhitespace, lexer.TokenNewLine, lexer.TokenComment:
			// continue

		case lexer.TokenWord:
			if state := parserStateWord(root)(p); state != nil {
				return state
			}

		case lexer.TokenOpenExpression:
			node, err := root.PushExpression(tok)
			if err != nil {
				return parserErrorState(err)
			}
			if state := parserStateOpenExpression(node)(p); state != nil {
				return state
			}

		case lexer.TokenCloseExpression:
			return parserErrorState(newTokenError(tok, ErrUnbalanced, "unexpected )"))

		default:
			return parserErrorState(newTokenError(tok, ErrUnexpectedToken, tok.Text()))
		}

		return nil
	}
}

func parserStateWord(root *ast.Node) parserState {
	return func(p *Parser) parserState {
		curr := p.curr()

		var value ast.Valuer
		if isInteger(curr.Text()) {
			i, ok := new(big.Int).SetString(curr.Text(), 10)
			if !ok {
				return parserErrorState(newTokenError(curr, ErrUnexpectedToken, curr.Text()))
			}
			value = ast.NewIntValue(i)
		} else {
			value = ast.NewSymbolValue(curr.Text())
		}

		if _, err := root.PushValue(curr, value); err != nil {
			return parserErrorState(err)
		}
		return nil
	}
}

func parserStateOpenExpression(root *ast.Node) parserState {
	return func(p *Parser) parserState {
		for {
			tok := p.next()

			switch tok.Type() {
			case lexer.TokenEOF:
				if p.options.AutoCloseOnEOF {
					return nil
				}
				return parserErrorState(newTokenError(root.Token(), ErrUnexpectedEOF, "unclosed ("))

			case lexer.TokenCloseExpression:
				return nil

			default:
				if state := parserStateData(root)(p); state != nil {
					return state
				}
			}
		}
	}
}

// isInteger reports whether the word is an optionally signed decimal integer.
func isInteger(s string) bool {
	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		s = s[1:]
	}
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Parse builds the tree of all the expressions in the given source.
func Parse(in []byte) (*ast.Node, error) {
	p := NewParser(bytes.NewReader(in))

	err := p.Parse()
	if err != nil {
		return nil, err
	}

	return p.root, nil
}

// ParseStatement builds the tree of a single top-level expression.
func ParseStatement(stmt string) (*ast.Node, error) {
	root, err := Parse([]byte(stmt))
	if err != nil {
		return nil, err
	}

	list := root.List()
	switch len(list) {
	case 0:
		return nil, NewSyntaxError(1, 1, ErrEmptyStatement, "")
	case 1:
		return list[0], nil
	}

	line, col := list[1].Pos()
	return nil, NewSyntaxError(line, col, ErrUnexpectedToken, "more than one statement")
}
