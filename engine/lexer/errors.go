package lexer

import "fmt"

// LexError reports malformed input: an unterminated literal, identifier or
// comment, invalid UTF-8 in a literal, or a character no token starts with.
type LexError struct {
	Message  string
	Position int
	Line     int
	Column   int
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lex error at line %d, column %d (offset %d): %s", e.Line, e.Column, e.Position, e.Message)
}
