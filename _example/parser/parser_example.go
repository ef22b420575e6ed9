package main

import (
	"fmt"
	"log"
	"os"

	"github.com/xiam/lisp/ast"
	"github.com/xiam/lisp/parser"
)

func main() {
	input := `(defun add (a b) (+ a b))
(print   (add 2
	(+ 3 4)))`

	statements, err := parser.Split([]byte(input))
	if err != nil {
		log.Fatal("parser.Split:", err)
	}

	for _, stmt := range statements {
		node, err := parser.ParseStatement(stmt)
		if err != nil {
			log.Fatal("parser.ParseStatement:", err)
		}

		components, err := parser.Components(stmt)
		if err != nil {
			log.Fatal("parser.Components:", err)
		}

		fmt.Printf("%s\n\tcomponents: %q\n", node.Encode(), components)
		ast.Fprint(os.Stdout, node)
		fmt.Println()
	}
}
