package parser

import (
	"fmt"

	"github.com/omniql-engine/altersql/engine/ast"
	"github.com/omniql-engine/altersql/engine/dialect"
	"github.com/omniql-engine/altersql/engine/lexer"
)

// Parser implements a recursive descent parser for ALTER TABLE. The token
// slice is never modified; pos is the only mutable state.
type Parser struct {
	tokens  []lexer.Token
	pos     int
	dialect *dialect.Dialect
}

// New creates a parser over tokens produced for dialect d
func New(tokens []lexer.Token, d *dialect.Dialect) *Parser {
	if d == nil {
		d = dialect.MySQL
	}
	return &Parser{
		tokens:  tokens,
		pos:     0,
		dialect: d,
	}
}

// Parse lexes and parses one ALTER TABLE statement, optionally terminated by ';'
func Parse(input string, d *dialect.Dialect) (*ast.AlterTableStatement, error) {
	tokens, err := lexer.Tokenize(input, d)
	if err != nil {
		return nil, err
	}
	return ParseAlterTable(tokens, d)
}

// ParseAlterTable parses one ALTER TABLE statement from tokens. Only a ';'
// may follow the statement.
func ParseAlterTable(tokens []lexer.Token, d *dialect.Dialect) (*ast.AlterTableStatement, error) {
	p := New(tokens, d)
	stmt, err := p.parseAlterTable()
	if err != nil {
		return nil, err
	}
	p.matchType(lexer.TOKEN_SEMICOLON)
	if !p.isAtEnd() {
		tok := p.current()
		return nil, NewParseError(tok, fmt.Sprintf("unexpected %s after ALTER TABLE statement", tok.Describe()), "end of input")
	}
	return stmt, nil
}

// ParseStatementList parses ';'-separated statements. Every statement must
// be an ALTER TABLE; empty statements are skipped.
func ParseStatementList(input string, d *dialect.Dialect) ([]ast.Statement, error) {
	tokens, err := lexer.Tokenize(input, d)
	if err != nil {
		return nil, err
	}

	p := New(tokens, d)
	var stmts []ast.Statement
	for {
		for p.matchType(lexer.TOKEN_SEMICOLON) {
		}
		if p.isAtEnd() {
			return stmts, nil
		}

		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)

		if p.isAtEnd() {
			return stmts, nil
		}
		if !p.matchType(lexer.TOKEN_SEMICOLON) {
			tok := p.current()
			return nil, NewParseError(tok, fmt.Sprintf("unexpected %s after statement", tok.Describe()), "';'", "end of input")
		}
	}
}

// parseStatement dispatches on the leading keyword
func (p *Parser) parseStatement() (ast.Statement, error) {
	tok := p.current()
	if tok.IsWord("ALTER") && p.peek(1).IsWord("TABLE") {
		return p.parseAlterTable()
	}
	return nil, NewParseError(tok, fmt.Sprintf("unsupported statement starting with %s", tok.Describe()), "ALTER TABLE")
}

// =============================================================================
// TOKEN NAVIGATION
// =============================================================================

// current returns current token without advancing
func (p *Parser) current() lexer.Token {
	if p.pos >= len(p.tokens) {
		return p.eof()
	}
	return p.tokens[p.pos]
}

// advance moves to next token, returns previous
func (p *Parser) advance() lexer.Token {
	tok := p.current()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return tok
}

// peek looks ahead without advancing
func (p *Parser) peek(offset int) lexer.Token {
	pos := p.pos + offset
	if pos < 0 || pos >= len(p.tokens) {
		return p.eof()
	}
	return p.tokens[pos]
}

// eof returns the tokenizer's EOF token, or synthesizes one after the last
// token of a slice that lacks it
func (p *Parser) eof() lexer.Token {
	n := len(p.tokens)
	if n == 0 {
		return lexer.Token{Type: lexer.TOKEN_EOF, Line: 1, Column: 1}
	}
	last := p.tokens[n-1]
	if last.Type == lexer.TOKEN_EOF {
		return last
	}

	tok := lexer.Token{
		Type:     lexer.TOKEN_EOF,
		Position: last.Position + len(last.Raw),
		Line:     last.Line,
		Column:   last.Column,
	}
	for _, r := range last.Raw {
		if r == '\n' {
			tok.Line++
			tok.Column = 1
		} else {
			tok.Column++
		}
	}
	return tok
}

// isAtEnd checks if all tokens consumed
func (p *Parser) isAtEnd() bool {
	return p.pos >= len(p.tokens) || p.current().Type == lexer.TOKEN_EOF
}

// isStatementEnd reports ';' or end of input
func (p *Parser) isStatementEnd() bool {
	return p.isAtEnd() || p.current().Type == lexer.TOKEN_SEMICOLON
}

// match consumes the current token if it is one of the bare keywords
func (p *Parser) match(keywords ...string) bool {
	cur := p.current()
	for _, kw := range keywords {
		if cur.IsWord(kw) {
			p.advance()
			return true
		}
	}
	return false
}

// matchType consumes the current token if it has type t
func (p *Parser) matchType(t lexer.TokenType) bool {
	if p.current().Type == t {
		p.advance()
		return true
	}
	return false
}

// expect consumes keyword, otherwise error
func (p *Parser) expect(keyword string) error {
	if !p.match(keyword) {
		tok := p.current()
		return NewParseError(tok, fmt.Sprintf("expected %s, got %s", keyword, tok.Describe()), keyword)
	}
	return nil
}

// expectType consumes a token of type t, otherwise error naming what
func (p *Parser) expectType(t lexer.TokenType, what string) (lexer.Token, error) {
	tok := p.current()
	if tok.Type != t {
		return tok, NewParseError(tok, fmt.Sprintf("expected %s, got %s", what, tok.Describe()), what)
	}
	p.advance()
	return tok, nil
}

// error creates parse error at current position
func (p *Parser) error(message string, expected ...string) error {
	return NewParseError(p.current(), message, expected...)
}
