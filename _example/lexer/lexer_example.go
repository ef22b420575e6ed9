package main

import (
	"fmt"
	"log"

	"github.com/xiam/lisp/lexer"
)

func main() {
	input := `
		; adds two numbers
		(defun add (a b)
			(+ a b))
		(print (add 2 3))
	`

	tokens, err := lexer.Tokenize([]byte(input))
	if err != nil {
		log.Fatal("lexer.Tokenize:", err)
	}

	for i, tok := range tokens {
		if tok.Is(lexer.TokenWhitespace) || tok.Is(lexer.TokenNewLine) {
			continue
		}
		line, col := tok.Pos()
		fmt.Printf("token[%d] (type: %v, line: %d, col: %d, offset: %d)\n\t-> %q\n\n", i, tok.Type(), line, col, tok.Offset(), tok.Text())
	}
}
