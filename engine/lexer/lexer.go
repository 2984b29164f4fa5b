package lexer

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/omniql-engine/altersql/engine/dialect"
)

// Tokenizer converts SQL text to tokens for one dialect. It scans lazily:
// each Next call consumes just enough input for one token.
type Tokenizer struct {
	input   string
	dialect *dialect.Dialect
	pos     int
	line    int
	column  int
	prev    TokenType
	prevEnd int

	// open /*! ... */ comment whose body is being lexed as SQL
	inExec                     bool
	execPos, execLine, execCol int
}

// New creates a tokenizer positioned at the start of input
func New(input string, d *dialect.Dialect) *Tokenizer {
	if d == nil {
		d = dialect.MySQL
	}
	return &Tokenizer{
		input:   input,
		dialect: d,
		pos:     0,
		line:    1,
		column:  1,
	}
}

// Tokenize converts SQL text to tokens terminated by TOKEN_EOF
func Tokenize(input string, d *dialect.Dialect) ([]Token, error) {
	t := New(input, d)
	var tokens []Token
	for {
		tok, err := t.Next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Type == TOKEN_EOF {
			return tokens, nil
		}
	}
}

// Next returns the next token. After TOKEN_EOF it keeps returning TOKEN_EOF.
func (t *Tokenizer) Next() (Token, error) {
	tok, err := t.next()
	if err == nil {
		t.prev = tok.Type
		t.prevEnd = t.pos
	}
	return tok, err
}

func (t *Tokenizer) next() (Token, error) {
	if err := t.skipWhitespaceAndComments(); err != nil {
		return Token{}, err
	}

	if t.pos >= len(t.input) {
		if t.inExec {
			return Token{}, t.errorAt(t.execPos, t.execLine, t.execCol, "unclosed comment, expected */")
		}
		return Token{Type: TOKEN_EOF, Position: t.pos, Line: t.line, Column: t.column}, nil
	}

	ch := t.input[t.pos]

	// Single character tokens
	switch ch {
	case '(':
		return t.single(TOKEN_LPAREN), nil
	case ')':
		return t.single(TOKEN_RPAREN), nil
	case ',':
		return t.single(TOKEN_COMMA), nil
	case '.':
		// .5 is a number unless it is glued to a name (t1.5col)
		if isDigit(t.peekByte(1)) && !t.followsName() {
			return t.scanNumber(), nil
		}
		return t.single(TOKEN_DOT), nil
	case '=':
		return t.single(TOKEN_EQUALS), nil
	case ';':
		return t.single(TOKEN_SEMICOLON), nil
	case '`':
		return t.scanQuotedIdent('`')
	case '"':
		if t.dialect.ANSIQuotes {
			return t.scanQuotedIdent('"')
		}
		return t.scanString('"')
	case '\'':
		return t.scanString('\'')
	}

	r, _ := utf8.DecodeRuneInString(t.input[t.pos:])

	// x'1F' and b'01'
	if t.peekByte(1) == '\'' {
		switch ch {
		case 'x', 'X':
			return t.scanQuotedBits(TOKEN_HEX, isHexDigit)
		case 'b', 'B':
			return t.scanQuotedBits(TOKEN_BIT, isBitDigit)
		}
	}

	if isDigit(ch) {
		return t.scanNumber(), nil
	}

	if isWordStart(r) {
		return t.scanWord(), nil
	}

	if isOperatorChar(ch) {
		return t.scanOperator(), nil
	}

	// Unknown character
	return Token{}, t.errorAt(t.pos, t.line, t.column, fmt.Sprintf("unexpected character %q", r))
}

// =============================================================================
// CURSOR
// =============================================================================

// advance moves past one rune, keeping line and column in step
func (t *Tokenizer) advance() {
	r, size := utf8.DecodeRuneInString(t.input[t.pos:])
	t.pos += size
	if r == '\n' {
		t.line++
		t.column = 1
	} else {
		t.column++
	}
}

func (t *Tokenizer) peekByte(offset int) byte {
	if t.pos+offset < len(t.input) {
		return t.input[t.pos+offset]
	}
	return 0
}

func (t *Tokenizer) single(tokenType TokenType) Token {
	tok := Token{
		Type:     tokenType,
		Value:    t.input[t.pos : t.pos+1],
		Raw:      t.input[t.pos : t.pos+1],
		Position: t.pos,
		Line:     t.line,
		Column:   t.column,
	}
	t.advance()
	return tok
}

// followsName reports a name or dot ending right where the current byte starts
func (t *Tokenizer) followsName() bool {
	if t.prevEnd != t.pos {
		return false
	}
	return t.prev == TOKEN_WORD || t.prev == TOKEN_QUOTED_IDENT || t.prev == TOKEN_DOT
}

func (t *Tokenizer) errorAt(pos, line, column int, message string) *LexError {
	return &LexError{
		Message:  message,
		Position: pos,
		Line:     line,
		Column:   column,
	}
}

// =============================================================================
// WHITESPACE AND COMMENTS
// =============================================================================

func (t *Tokenizer) skipWhitespaceAndComments() error {
	for t.pos < len(t.input) {
		ch := t.input[t.pos]
		switch {
		case ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' || ch == '\f' || ch == '\v':
			t.advance()
		case ch == '#':
			t.skipLine()
		case ch == '-' && t.peekByte(1) == '-' && isCommentDashEnd(t.peekByte(2)):
			t.skipLine()
		case ch == '*' && t.peekByte(1) == '/' && t.inExec:
			t.advance()
			t.advance()
			t.inExec = false
		case ch == '/' && t.peekByte(1) == '*' && t.isExecComment():
			t.openExecComment()
		case ch == '/' && t.peekByte(1) == '*':
			if err := t.skipBlockComment(); err != nil {
				return err
			}
		default:
			return nil
		}
	}
	return nil
}

// MySQL requires whitespace (or end of input) after "--" for a comment.
func isCommentDashEnd(ch byte) bool {
	return ch == 0 || ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}

func (t *Tokenizer) skipLine() {
	for t.pos < len(t.input) && t.input[t.pos] != '\n' {
		t.advance()
	}
}

// isExecComment reports /*! (run by every server) or, for MariaDB, /*M!.
// Such a comment nested in another is an ordinary comment.
func (t *Tokenizer) isExecComment() bool {
	if t.inExec {
		return false
	}
	if t.peekByte(2) == '!' {
		return true
	}
	return t.dialect.Name == dialect.MariaDB.Name && t.peekByte(2) == 'M' && t.peekByte(3) == '!'
}

// openExecComment consumes "/*!" and the optional server version so the
// body lexes as ordinary SQL up to the closing */
func (t *Tokenizer) openExecComment() {
	t.execPos, t.execLine, t.execCol = t.pos, t.line, t.column
	t.advance() // Skip /
	t.advance() // Skip *
	if t.peekByte(0) == 'M' {
		t.advance()
	}
	t.advance() // Skip !

	digits := 0
	for isDigit(t.peekByte(digits)) {
		digits++
	}
	switch {
	case digits >= 6:
		digits = 6
	case digits != 5:
		digits = 0
	}
	for i := 0; i < digits; i++ {
		t.advance()
	}
	t.inExec = true
}

func (t *Tokenizer) skipBlockComment() error {
	startPos, startLine, startCol := t.pos, t.line, t.column
	t.advance() // Skip /
	t.advance() // Skip *
	for t.pos < len(t.input) {
		if t.input[t.pos] == '*' && t.peekByte(1) == '/' {
			t.advance()
			t.advance()
			return nil
		}
		t.advance()
	}
	return t.errorAt(startPos, startLine, startCol, "unclosed comment, expected */")
}

// =============================================================================
// QUOTED TOKENS
// =============================================================================

// scanQuotedIdent reads `name`; a doubled quote stands for one quote character
func (t *Tokenizer) scanQuotedIdent(quote byte) (Token, error) {
	startPos, startLine, startCol := t.pos, t.line, t.column

	t.advance() // Skip opening quote

	var value strings.Builder
	for t.pos < len(t.input) {
		ch := t.input[t.pos]
		if ch == quote {
			if t.peekByte(1) == quote {
				value.WriteByte(quote)
				t.advance()
				t.advance()
				continue
			}
			t.advance() // Skip closing quote
			if value.Len() == 0 {
				return Token{}, t.errorAt(startPos, startLine, startCol, "empty quoted identifier")
			}
			return Token{
				Type:     TOKEN_QUOTED_IDENT,
				Value:    value.String(),
				Raw:      t.input[startPos:t.pos],
				Quote:    quote,
				Position: startPos,
				Line:     startLine,
				Column:   startCol,
			}, nil
		}
		r, size := utf8.DecodeRuneInString(t.input[t.pos:])
		if r == utf8.RuneError && size == 1 {
			return Token{}, t.errorAt(t.pos, t.line, t.column, "invalid UTF-8 in quoted identifier")
		}
		value.WriteString(t.input[t.pos : t.pos+size])
		t.advance()
	}

	return Token{}, t.errorAt(startPos, startLine, startCol, fmt.Sprintf("unclosed identifier, expected %c", quote))
}

// scanString reads a string literal. Content is copied byte for byte except
// for MySQL backslash escapes and doubled quotes.
func (t *Tokenizer) scanString(quote byte) (Token, error) {
	startPos, startLine, startCol := t.pos, t.line, t.column

	t.advance() // Skip opening quote

	var value strings.Builder
	for t.pos < len(t.input) {
		ch := t.input[t.pos]

		if ch == '\\' {
			if t.pos+1 >= len(t.input) {
				break
			}
			t.advance()
			switch t.input[t.pos] {
			case '0':
				value.WriteByte(0)
			case 'b':
				value.WriteByte('\b')
			case 'n':
				value.WriteByte('\n')
			case 'r':
				value.WriteByte('\r')
			case 't':
				value.WriteByte('\t')
			case 'Z':
				value.WriteByte(0x1a)
			case '%', '_':
				// Kept with the backslash so LIKE patterns survive
				value.WriteByte('\\')
				value.WriteByte(t.input[t.pos])
			default:
				r, size := utf8.DecodeRuneInString(t.input[t.pos:])
				if r == utf8.RuneError && size == 1 {
					return Token{}, t.errorAt(t.pos, t.line, t.column, "invalid UTF-8 in string literal")
				}
				value.WriteString(t.input[t.pos : t.pos+size])
			}
			t.advance()
			continue
		}

		if ch == quote {
			if t.peekByte(1) == quote {
				value.WriteByte(quote)
				t.advance()
				t.advance()
				continue
			}
			t.advance() // Skip closing quote
			return Token{
				Type:     TOKEN_STRING,
				Value:    value.String(),
				Raw:      t.input[startPos:t.pos],
				Quote:    quote,
				Position: startPos,
				Line:     startLine,
				Column:   startCol,
			}, nil
		}

		r, size := utf8.DecodeRuneInString(t.input[t.pos:])
		if r == utf8.RuneError && size == 1 {
			return Token{}, t.errorAt(t.pos, t.line, t.column, "invalid UTF-8 in string literal")
		}
		value.WriteString(t.input[t.pos : t.pos+size])
		t.advance()
	}

	return Token{}, t.errorAt(startPos, startLine, startCol, fmt.Sprintf("unclosed string, expected %c", quote))
}

// =============================================================================
// WORDS, NUMBERS, OPERATORS
// =============================================================================

func (t *Tokenizer) scanWord() Token {
	startPos, startCol := t.pos, t.column
	for t.pos < len(t.input) {
		r, _ := utf8.DecodeRuneInString(t.input[t.pos:])
		if !isWordPart(r) {
			break
		}
		t.advance()
	}
	word := t.input[startPos:t.pos]
	return Token{
		Type:     TOKEN_WORD,
		Value:    word,
		Raw:      word,
		Position: startPos,
		Line:     t.line,
		Column:   startCol,
	}
}

// scanQuotedBits reads x'1F' or b'0101'. Raw keeps the source spelling.
func (t *Tokenizer) scanQuotedBits(tokenType TokenType, valid func(byte) bool) (Token, error) {
	startPos, startLine, startCol := t.pos, t.line, t.column
	t.advance() // Skip x or b
	t.advance() // Skip opening quote

	for t.pos < len(t.input) && t.input[t.pos] != '\'' {
		if !valid(t.input[t.pos]) {
			r, _ := utf8.DecodeRuneInString(t.input[t.pos:])
			return Token{}, t.errorAt(t.pos, t.line, t.column, fmt.Sprintf("invalid digit %q in %s literal", r, tokenType))
		}
		t.advance()
	}
	if t.pos >= len(t.input) {
		return Token{}, t.errorAt(startPos, startLine, startCol, "unclosed string, expected '")
	}
	t.advance() // Skip closing quote

	raw := t.input[startPos:t.pos]
	digits := raw[2 : len(raw)-1]
	if tokenType == TOKEN_HEX && len(digits)%2 != 0 {
		return Token{}, t.errorAt(startPos, startLine, startCol, "hex literal needs an even number of digits")
	}
	return Token{
		Type:     tokenType,
		Value:    digits,
		Raw:      raw,
		Position: startPos,
		Line:     startLine,
		Column:   startCol,
	}, nil
}

// scanPrefixedBits reads 0x1F or 0b01. It returns false, consuming nothing,
// when the text turns out to be a word such as 0x1g.
func (t *Tokenizer) scanPrefixedBits() (Token, bool) {
	tokenType, valid := TOKEN_HEX, isHexDigit
	if t.peekByte(1) == 'b' {
		tokenType, valid = TOKEN_BIT, isBitDigit
	}
	end := t.pos + 2
	for end < len(t.input) && valid(t.input[end]) {
		end++
	}
	if end == t.pos+2 {
		return Token{}, false
	}
	if r, _ := utf8.DecodeRuneInString(t.input[end:]); end < len(t.input) && isWordPart(r) {
		return Token{}, false
	}

	tok := Token{
		Type:     tokenType,
		Value:    t.input[t.pos+2 : end],
		Raw:      t.input[t.pos:end],
		Position: t.pos,
		Line:     t.line,
		Column:   t.column,
	}
	for t.pos < end {
		t.advance()
	}
	return tok, true
}

// scanNumber reads 45, 3.14 or 1e10. Digits running into letters (2nd_col)
// form a bare word, as MySQL allows identifiers to start with a digit.
func (t *Tokenizer) scanNumber() Token {
	startPos, startLine, startCol := t.pos, t.line, t.column

	if t.input[t.pos] == '0' && (t.peekByte(1) == 'x' || t.peekByte(1) == 'b') {
		if tok, ok := t.scanPrefixedBits(); ok {
			return tok
		}
	}

	for t.pos < len(t.input) && isDigit(t.input[t.pos]) {
		t.advance()
	}

	// Decimal part
	if t.pos < len(t.input) && t.input[t.pos] == '.' && isDigit(t.peekByte(1)) {
		t.advance()
		for t.pos < len(t.input) && isDigit(t.input[t.pos]) {
			t.advance()
		}
	}

	// Exponent
	if ch := t.peekByte(0); ch == 'e' || ch == 'E' {
		next := t.peekByte(1)
		if isDigit(next) || ((next == '+' || next == '-') && isDigit(t.peekByte(2))) {
			t.advance()
			if next == '+' || next == '-' {
				t.advance()
			}
			for t.pos < len(t.input) && isDigit(t.input[t.pos]) {
				t.advance()
			}
		}
	}

	if t.pos < len(t.input) && isDigit(t.input[startPos]) {
		if r, _ := utf8.DecodeRuneInString(t.input[t.pos:]); isWordPart(r) {
			t.pos, t.line, t.column = startPos, startLine, startCol
			return t.scanWord()
		}
	}

	text := t.input[startPos:t.pos]
	return Token{
		Type:     TOKEN_NUMBER,
		Value:    text,
		Raw:      text,
		Position: startPos,
		Line:     startLine,
		Column:   startCol,
	}
}

func (t *Tokenizer) scanOperator() Token {
	startPos, startCol := t.pos, t.column
	t.advance()
	switch t.input[startPos] {
	case '<':
		if ch := t.peekByte(0); ch == '=' || ch == '>' {
			t.advance()
		}
	case '>', '!':
		if t.peekByte(0) == '=' {
			t.advance()
		}
	}
	op := t.input[startPos:t.pos]
	return Token{
		Type:     TOKEN_OPERATOR,
		Value:    op,
		Raw:      op,
		Position: startPos,
		Line:     t.line,
		Column:   startCol,
	}
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isHexDigit(ch byte) bool {
	return isDigit(ch) || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

func isBitDigit(ch byte) bool {
	return ch == '0' || ch == '1'
}

// MySQL permits any character from U+0080 up in unquoted identifiers.
func isWordStart(r rune) bool {
	return r == '_' || r == '$' || (r < utf8.RuneSelf && unicode.IsLetter(r)) || (r >= utf8.RuneSelf && r != utf8.RuneError)
}

func isWordPart(r rune) bool {
	return isWordStart(r) || (r >= '0' && r <= '9')
}

func isOperatorChar(ch byte) bool {
	return ch == '-' || ch == '+' || ch == '*' || ch == '/' || ch == '<' || ch == '>' || ch == '!'
}

// IsBareIdentifier reports whether name re-lexes as a single bare word, so it
// can be rendered without quotes.
func IsBareIdentifier(name string) bool {
	if name == "" {
		return false
	}
	allDigits := true
	for _, r := range name {
		if !isWordPart(r) {
			return false
		}
		if r < '0' || r > '9' {
			allDigits = false
		}
	}
	if allDigits {
		return false
	}
	// 1e5 would come back as a number
	first, _ := utf8.DecodeRuneInString(name)
	if first >= '0' && first <= '9' {
		t := New(name, nil)
		tok, err := t.Next()
		return err == nil && tok.Type == TOKEN_WORD && tok.Value == name
	}
	return true
}
