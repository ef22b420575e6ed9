package lexer

// TokenType represents all the possible types of a lexical unit
type TokenType uint8

// List of types of lexical units
const (
	TokenInvalid         TokenType = iota
	TokenOpenExpression            // Open parenthesis: "("
	TokenCloseExpression           // Close parenthesis: ")"
	TokenNewLine                   // Newline: "\n"
	TokenWhitespace                // Space, tab, form feed or carriage return: \s\f\t\r
	TokenComment                   // Semicolon up to the end of the line: ";"
	TokenWord                      // Any other sequence: symbols and numbers
	TokenEOF                       // End of file
)

var tokenValues = map[TokenType][]rune{
	TokenOpenExpression:  []rune{'('},
	TokenCloseExpression: []rune{')'},
	TokenNewLine:         []rune{'\n'},
	TokenWhitespace:      []rune(" \f\t\r"),
	TokenComment:         []rune{';'},
}

var tokenNames = map[TokenType]string{
	TokenInvalid:         "invalid",
	TokenOpenExpression:  "open_expression",
	TokenCloseExpression: "close_expression",
	TokenNewLine:         "newline",
	TokenWhitespace:      "separator",
	TokenComment:         "comment",
	TokenWord:            "word",
	TokenEOF:             "EOF",
}

func (tt TokenType) String() string {
	if v, ok := tokenNames[tt]; ok {
		return v
	}
	return tokenNames[TokenInvalid]
}

func tokenName(tt TokenType) string {
	return tt.String()
}

func isTokenType(tt TokenType) func(r rune) bool {
	return func(r rune) bool {
		for _, v := range tokenValues[tt] {
			if v == r {
				return true
			}
		}
		return false
	}
}

// isWordBreak reports whether r ends a word.
func isWordBreak(r rune) bool {
	return isOpenExpression(r) ||
		isCloseExpression(r) ||
		isNewLine(r) ||
		isWhitespace(r) ||
		isComment(r)
}
