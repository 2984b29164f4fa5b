package parser

import (
	"fmt"
	"strings"

	"github.com/omniql-engine/altersql/engine/ast"
	"github.com/omniql-engine/altersql/engine/lexer"
	"github.com/omniql-engine/altersql/mapping"
)

// =============================================================================
// DEDICATED TABLE OPTIONS
// =============================================================================

// parseEngine handles: ENGINE [=] name
func (p *Parser) parseEngine() (ast.AlterTableItem, error) {
	start := p.advance() // Skip ENGINE
	p.matchType(lexer.TOKEN_EQUALS)

	value, err := p.parseNameValue("engine name")
	if err != nil {
		return nil, err
	}
	return &ast.SetEngine{Engine: value, Offset: start.Position}, nil
}

// parseDefault handles: DEFAULT {CHARACTER SET | CHARSET | COLLATE} ...
func (p *Parser) parseDefault() (ast.AlterTableItem, error) {
	start := p.advance() // Skip DEFAULT

	tok := p.current()
	switch {
	case tok.IsWord("CHARACTER") || tok.IsWord("CHARSET"):
		return p.parseCharacterSet(start, true)
	case tok.IsWord("COLLATE"):
		return p.parseCollate(start, true)
	}
	return nil, NewParseError(tok, fmt.Sprintf("unexpected %s after DEFAULT", tok.Describe()), "CHARACTER SET", "CHARSET", "COLLATE")
}

func (p *Parser) parseCharacterSetItem() (ast.AlterTableItem, error) {
	return p.parseCharacterSet(p.current(), false)
}

func (p *Parser) parseCollateItem() (ast.AlterTableItem, error) {
	return p.parseCollate(p.current(), false)
}

// parseCharacterSet handles: {CHARACTER SET | CHARSET} [=] cs [COLLATE [=] coll]
func (p *Parser) parseCharacterSet(start lexer.Token, hadDefault bool) (ast.AlterTableItem, error) {
	item := &ast.SetCharacterSet{HadDefault: hadDefault, Offset: start.Position}

	spelling, err := p.parseCharsetKeyword()
	if err != nil {
		return nil, err
	}
	item.CharsetSpelling = spelling
	p.matchType(lexer.TOKEN_EQUALS)

	if item.Charset, err = p.parseNameValue("character set name"); err != nil {
		return nil, err
	}

	// A COLLATE directly after the charset, without a comma, belongs to it
	if p.match("COLLATE") {
		p.matchType(lexer.TOKEN_EQUALS)
		coll, err := p.parseNameValue("collation name")
		if err != nil {
			return nil, err
		}
		item.Collation = &coll
	}
	return item, nil
}

// parseCharsetKeyword consumes CHARACTER SET or CHARSET
func (p *Parser) parseCharsetKeyword() (ast.CharsetSpelling, error) {
	if p.match("CHARSET") {
		return ast.SpellingCharset, nil
	}
	if p.match("CHARACTER") {
		if err := p.expect("SET"); err != nil {
			return 0, err
		}
		return ast.SpellingCharacterSet, nil
	}
	tok := p.current()
	return 0, NewParseError(tok, fmt.Sprintf("expected CHARACTER SET, got %s", tok.Describe()), "CHARACTER SET", "CHARSET")
}

// parseCollate handles: COLLATE [=] coll
func (p *Parser) parseCollate(start lexer.Token, hadDefault bool) (ast.AlterTableItem, error) {
	if err := p.expect("COLLATE"); err != nil {
		return nil, err
	}
	p.matchType(lexer.TOKEN_EQUALS)

	coll, err := p.parseNameValue("collation name")
	if err != nil {
		return nil, err
	}
	return &ast.SetCollate{Collation: coll, HadDefault: hadDefault, Offset: start.Position}, nil
}

// parseComment handles: COMMENT [=] 'text'
func (p *Parser) parseComment() (ast.AlterTableItem, error) {
	start := p.advance() // Skip COMMENT
	p.matchType(lexer.TOKEN_EQUALS)

	lit, err := p.parseStringLiteral("comment string")
	if err != nil {
		return nil, err
	}
	return &ast.SetComment{Comment: lit, Offset: start.Position}, nil
}

// parseConvert handles: CONVERT TO {CHARACTER SET | CHARSET} cs [COLLATE coll]
func (p *Parser) parseConvert() (ast.AlterTableItem, error) {
	start := p.advance() // Skip CONVERT
	if err := p.expect("TO"); err != nil {
		return nil, err
	}
	if _, err := p.parseCharsetKeyword(); err != nil {
		return nil, err
	}

	cs, err := p.parseNameValue("character set name")
	if err != nil {
		return nil, err
	}
	item := &ast.ConvertCharset{Charset: cs, Offset: start.Position}

	if p.match("COLLATE") {
		coll, err := p.parseNameValue("collation name")
		if err != nil {
			return nil, err
		}
		item.Collation = &coll
	}
	return item, nil
}

// =============================================================================
// GENERIC TABLE OPTIONS
// =============================================================================

// parseTableOption handles: KEY [=] value for options without dedicated grammar
func (p *Parser) parseTableOption() (ast.AlterTableItem, error) {
	keyTok := p.advance()
	def, _ := p.dialect.TableOption(keyTok.Value)
	p.matchType(lexer.TOKEN_EQUALS)

	item := &ast.SetTableOption{Key: keyTok.Value, Offset: keyTok.Position}
	tok := p.current()

	switch def.ValueType {
	case mapping.OptionNumber:
		num, err := p.expectType(lexer.TOKEN_NUMBER, "number")
		if err != nil {
			return nil, err
		}
		item.Value = ast.OptionValue{Text: num.Value}
	case mapping.OptionString:
		lit, err := p.parseStringLiteral("string")
		if err != nil {
			return nil, err
		}
		item.Value = ast.OptionValue{Text: lit.Value, Quote: lit.Quote}
	case mapping.OptionIdent:
		value, err := p.parseOptionIdent(def.Name)
		if err != nil {
			return nil, err
		}
		item.Value = value
	case mapping.OptionWord:
		if tok.Type != lexer.TOKEN_WORD {
			return nil, NewParseError(tok, fmt.Sprintf("expected value for %s, got %s", def.Name, tok.Describe()), "value")
		}
		p.advance()
		item.Value = ast.OptionValue{Text: tok.Value}
	default:
		if def.ValueType == mapping.OptionAny && tok.Type == lexer.TOKEN_STRING {
			p.advance()
			item.Value = ast.OptionValue{Text: tok.Value, Quote: tok.Quote}
			break
		}
		words, err := p.parseOptionWords(def.Name)
		if err != nil {
			return nil, err
		}
		item.Value = ast.OptionValue{Text: words}
	}
	return item, nil
}

// parseOptionIdent reads a tablespace or secondary engine name. NULL unsets
// the option and a string is kept as written.
func (p *Parser) parseOptionIdent(key string) (ast.OptionValue, error) {
	tok := p.current()
	switch {
	case tok.IsWord("NULL"):
		p.advance()
		return ast.OptionValue{Text: tok.Value}, nil
	case tok.Type == lexer.TOKEN_STRING:
		p.advance()
		return ast.OptionValue{Text: tok.Value, Quote: tok.Quote}, nil
	}

	id, err := p.parseIdentifier(strings.ToLower(key) + " name")
	if err != nil {
		return ast.OptionValue{}, err
	}
	return ast.OptionValue{Text: id.Name, Ident: &id}, nil
}

// parseOptionWords collects a multi-word value such as "Pack All". The first
// word is always taken; collection stops at a comma, the statement end or a
// word that starts another table option.
func (p *Parser) parseOptionWords(key string) (string, error) {
	tok := p.current()
	if tok.Type != lexer.TOKEN_WORD && tok.Type != lexer.TOKEN_NUMBER {
		return "", NewParseError(tok, fmt.Sprintf("expected value for %s, got %s", key, tok.Describe()), "value")
	}

	words := []string{p.advance().Value}
	for {
		tok = p.current()
		if tok.Type != lexer.TOKEN_WORD && tok.Type != lexer.TOKEN_NUMBER {
			break
		}
		if tok.Type == lexer.TOKEN_WORD && p.dialect.IsTableOption(tok.Value) {
			break
		}
		words = append(words, p.advance().Value)
	}
	return strings.Join(words, " "), nil
}

// parseNameValue reads a charset, collation or engine name. Bare words,
// strings and quoted identifiers all yield the same bare value.
func (p *Parser) parseNameValue(what string) (ast.OptionValue, error) {
	tok := p.current()
	switch tok.Type {
	case lexer.TOKEN_WORD, lexer.TOKEN_STRING, lexer.TOKEN_QUOTED_IDENT:
		if tok.Value == "" {
			return ast.OptionValue{}, NewParseError(tok, fmt.Sprintf("empty %s", what), what)
		}
		p.advance()
		return ast.OptionValue{Text: tok.Value}, nil
	}
	return ast.OptionValue{}, NewParseError(tok, fmt.Sprintf("expected %s, got %s", what, tok.Describe()), what)
}

// parseStringLiteral consumes a string token
func (p *Parser) parseStringLiteral(what string) (ast.StringLiteral, error) {
	tok, err := p.expectType(lexer.TOKEN_STRING, what)
	if err != nil {
		return ast.StringLiteral{}, err
	}
	return ast.StringLiteral{Value: tok.Value, Quote: tok.Quote}, nil
}

// lookupAnyDialectOption finds key among the options of every dialect
func lookupAnyDialectOption(key string) (string, bool) {
	def, ok := mapping.TableOptions[strings.ToUpper(key)]
	return def.Name, ok
}
