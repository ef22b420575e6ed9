package lexer

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"text/scanner"
	"unicode/utf8"
)

type lexState func(*Lexer) lexState

var (
	isOpenExpression  = isTokenType(TokenOpenExpression)
	isCloseExpression = isTokenType(TokenCloseExpression)

	isNewLine    = isTokenType(TokenNewLine)
	isWhitespace = isTokenType(TokenWhitespace)
	isComment    = isTokenType(TokenComment)
)

// New initializes a Lexer object
func New(r io.Reader) *Lexer {
	lx := &Lexer{
		in:     &scanner.Scanner{},
		tokens: []Token{},
		buf:    []rune{},

		line:      1,
		col:       1,
		startLine: 1,
		startCol:  1,
	}

	lx.in.Init(r)
	lx.in.Error = func(s *scanner.Scanner, msg string) {
		if lx.lastErr == nil {
			lx.lastErr = fmt.Errorf("%d:%d: %s", lx.line, lx.col, msg)
		}
	}

	return lx
}

// Lexer represents a lexical analyzer
type Lexer struct {
	in *scanner.Scanner

	tokens  []Token
	lastErr error

	buf []rune

	start  int
	offset int

	startLine int
	startCol  int

	line int
	col  int
}

// Tokens returns all the tokens found by Scan.
func (lx *Lexer) Tokens() []Token {
	return lx.tokens
}

// Scan reads the whole input and splits it into tokens.
func (lx *Lexer) Scan() error {
	for state := lexDefaultState; state != nil; {
		state = state(lx)
	}

	if lx.lastErr == nil {
		lx.emit(TokenEOF)
	}

	return lx.lastErr
}

func (lx *Lexer) emit(tt TokenType) {
	lx.tokens = append(lx.tokens, Token{
		tt:     tt,
		lexeme: string(lx.buf),

		offset: lx.start,
		line:   lx.startLine,
		col:    lx.startCol,
	})

	lx.start = lx.offset
	lx.startLine, lx.startCol = lx.line, lx.col
	lx.buf = lx.buf[0:0]
}

func (lx *Lexer) peek() rune {
	return lx.in.Peek()
}

func (lx *Lexer) next() (rune, error) {
	r := lx.in.Next()
	if lx.lastErr != nil {
		return rune(0), lx.lastErr
	}
	if r == scanner.EOF {
		return rune(0), io.EOF
	}

	// the scanner skips a leading byte order mark, so offsets are taken from
	// its position instead of being counted here
	lx.offset = lx.in.Pos().Offset
	if len(lx.buf) == 0 {
		lx.start = lx.offset - utf8.RuneLen(r)
	}

	if r == '\n' {
		lx.line++
		lx.col = 1
	} else {
		lx.col++
	}

	lx.buf = append(lx.buf, r)
	return r, nil
}

func lexDefaultState(lx *Lexer) lexState {
	r, err := lx.next()
	if err != nil {
		return lexStateError(err)
	}

	switch {
	case isOpenExpression(r):
		return lexEmit(TokenOpenExpression)
	case isCloseExpression(r):
		return lexEmit(TokenCloseExpression)
	case isNewLine(r):
		return lexEmit(TokenNewLine)
	case isWhitespace(r):
		return lexCollectStream(TokenWhitespace)
	case isComment(r):
		return lexComment
	}

	return lexWord
}

func lexWord(lx *Lexer) lexState {
	for {
		p := lx.peek()
		if p == scanner.EOF || isWordBreak(p) {
			break
		}
		if _, err := lx.next(); err != nil {
			return lexStateError(err)
		}
	}
	lx.emit(TokenWord)
	return lexDefaultState
}

func lexComment(lx *Lexer) lexState {
	for {
		p := lx.peek()
		if p == scanner.EOF || isNewLine(p) {
			break
		}
		if _, err := lx.next(); err != nil {
			return lexStateError(err)
		}
	}
	lx.emit(TokenComment)
	return lexDefaultState
}

func lexEmit(tt TokenType) lexState {
	return func(lx *Lexer) lexState {
		lx.emit(tt)
		return lexDefaultState
	}
}

func lexCollectStream(tt TokenType) lexState {
	return func(lx *Lexer) lexState {
		for (isTokenType(tt))(lx.peek()) {
			if _, err := lx.next(); err != nil {
				return lexStateError(err)
			}
		}
		return lexEmit(tt)
	}
}

func lexStateError(err error) lexState {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return func(lx *Lexer) lexState {
		lx.lastErr = err
		return nil
	}
}

// Tokenize takes an array of bytes and returns all the tokens within it,
// or an error if a token can't be identified.
func Tokenize(in []byte) ([]Token, error) {
	lx := New(bytes.NewReader(in))

	if err := lx.Scan(); err != nil {
		return nil, err
	}

	return lx.Tokens(), nil
}
