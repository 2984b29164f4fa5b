package lexer

import "strings"

// TokenType represents the category of a token
type TokenType int

const (
	TOKEN_UNKNOWN      TokenType = iota
	TOKEN_WORD                   // ALTER, utf8, InnoDB (keyword or bare identifier, decided by the parser)
	TOKEN_QUOTED_IDENT           // `tb1` ("tb1" under ANSI_QUOTES)
	TOKEN_STRING                 // 'text', "text"
	TOKEN_NUMBER                 // 45, 3.14, 1e10
	TOKEN_LPAREN                 // (
	TOKEN_RPAREN                 // )
	TOKEN_COMMA                  // ,
	TOKEN_DOT                    // .
	TOKEN_EQUALS                 // =
	TOKEN_SEMICOLON              // ;
	TOKEN_OPERATOR               // - + * / < > !
	TOKEN_HEX                    // x'1F', 0x1F
	TOKEN_BIT                    // b'01', 0b01
	TOKEN_EOF                    // End of input
)

// Token represents a single token with position info
type Token struct {
	Type     TokenType
	Value    string // Decoded value: name without quotes, string with escapes resolved
	Raw      string // Exact source text
	Quote    byte   // Delimiter of quoted identifiers and strings, 0 otherwise
	Position int    // Byte offset in input
	Line     int    // Line number (1-indexed)
	Column   int    // Column number in runes (1-indexed)
}

// String returns human-readable token type name
func (t TokenType) String() string {
	names := []string{
		"UNKNOWN",
		"WORD",
		"QUOTED_IDENT",
		"STRING",
		"NUMBER",
		"LPAREN",
		"RPAREN",
		"COMMA",
		"DOT",
		"EQUALS",
		"SEMICOLON",
		"OPERATOR",
		"HEX",
		"BIT",
		"EOF",
	}
	if int(t) < len(names) {
		return names[t]
	}
	return "UNKNOWN"
}

// IsWord reports whether the token is a bare word spelled kw, case-insensitively.
func (t Token) IsWord(kw string) bool {
	return t.Type == TOKEN_WORD && strings.EqualFold(t.Value, kw)
}

// IsIdent reports whether the token can name an identifier.
func (t Token) IsIdent() bool {
	return t.Type == TOKEN_WORD || t.Type == TOKEN_QUOTED_IDENT
}

// Upper returns the upper-cased value, the form keyword dispatch compares.
func (t Token) Upper() string {
	return strings.ToUpper(t.Value)
}

// Describe renders the token for error messages.
func (t Token) Describe() string {
	if t.Type == TOKEN_EOF {
		return "end of input"
	}
	return "'" + t.Raw + "'"
}
