package parser

import (
	"fmt"
	"strings"

	"github.com/omniql-engine/altersql/engine/ast"
	"github.com/omniql-engine/altersql/engine/lexer"
	"github.com/omniql-engine/altersql/mapping"
)

// timeFunctions may appear bare or with parentheses in DEFAULT and ON UPDATE
var timeFunctions = map[string]bool{
	"CURRENT_TIMESTAMP": true,
	"LOCALTIME":         true,
	"LOCALTIMESTAMP":    true,
	"NOW":               true,
}

// parseColumnDefinition handles: name type [attributes]
func (p *Parser) parseColumnDefinition() (ast.ColumnDefinition, error) {
	name, err := p.parseIdentifier("column name")
	if err != nil {
		return ast.ColumnDefinition{}, err
	}

	dataType, err := p.parseDataType()
	if err != nil {
		return ast.ColumnDefinition{}, err
	}

	attrs, err := p.parseColumnAttributes()
	if err != nil {
		return ast.ColumnDefinition{}, err
	}

	return ast.ColumnDefinition{Name: name, Type: dataType, Attributes: attrs}, nil
}

// parseDataType handles: TYPE[(params)] [UNSIGNED | SIGNED] [ZEROFILL]
func (p *Parser) parseDataType() (ast.DataType, error) {
	tok := p.current()
	if tok.Type != lexer.TOKEN_WORD {
		return ast.DataType{}, NewParseError(tok, fmt.Sprintf("expected data type, got %s", tok.Describe()), "data type")
	}
	p.advance()

	name := tok.Upper()
	// Multi-word types: DOUBLE PRECISION, NATIONAL VARCHAR, ...
	if mapping.IsTypePrefix(name) && p.current().Type == lexer.TOKEN_WORD {
		combined := name + " " + p.current().Upper()
		if _, ok := p.dialect.LookupType(combined); ok {
			p.advance()
			name = combined
		}
	}

	def, ok := p.dialect.LookupType(name)
	if !ok {
		return ast.DataType{}, NewParseError(tok, fmt.Sprintf("unknown data type %s for dialect %s", tok.Describe(), p.dialect.Name), "data type")
	}

	dataType := ast.DataType{Name: def.Name}

	if p.current().Type == lexer.TOKEN_LPAREN {
		if !def.Params {
			return ast.DataType{}, p.error(fmt.Sprintf("data type %s takes no parameters", def.Name))
		}
		params, err := p.parseTypeParams(def)
		if err != nil {
			return ast.DataType{}, err
		}
		dataType.Params = params
	}

	for {
		switch {
		case p.match("UNSIGNED"):
			dataType.Unsigned = true
		case p.match("SIGNED"):
		case p.match("ZEROFILL"):
			dataType.Zerofill = true
		default:
			return dataType, nil
		}
	}
}

// parseTypeParams handles: (n[, m]) or ('a', 'b', ...) for ENUM and SET
func (p *Parser) parseTypeParams(def mapping.DataTypeDefinition) ([]string, error) {
	p.advance() // Skip (

	var params []string
	for {
		if def.Strings {
			lit, err := p.parseStringLiteral("string value")
			if err != nil {
				return nil, err
			}
			params = append(params, quoteParam(lit.Value))
		} else {
			num, err := p.expectType(lexer.TOKEN_NUMBER, "number")
			if err != nil {
				return nil, err
			}
			params = append(params, num.Value)
		}

		if !p.matchType(lexer.TOKEN_COMMA) {
			break
		}
	}

	if _, err := p.expectType(lexer.TOKEN_RPAREN, "')'"); err != nil {
		return nil, err
	}
	return params, nil
}

// quoteParam renders an ENUM/SET member in single quotes, the form the
// formatter writes back unchanged
func quoteParam(value string) string {
	value = strings.ReplaceAll(value, `\`, `\\`)
	value = strings.ReplaceAll(value, `'`, `''`)
	return "'" + value + "'"
}

// parseColumnAttributes consumes attributes until a token that cannot start one
func (p *Parser) parseColumnAttributes() ([]ast.ColumnAttribute, error) {
	var attrs []ast.ColumnAttribute

	for {
		tok := p.current()
		if tok.Type != lexer.TOKEN_WORD {
			return attrs, nil
		}

		var attr ast.ColumnAttribute
		switch tok.Upper() {
		case "NOT":
			p.advance()
			if err := p.expect("NULL"); err != nil {
				return nil, err
			}
			attr = &ast.NullAttr{NotNull: true}
		case "NULL":
			p.advance()
			attr = &ast.NullAttr{}
		case "DEFAULT":
			p.advance()
			lit, err := p.parseLiteral()
			if err != nil {
				return nil, err
			}
			attr = &ast.DefaultAttr{Value: lit}
		case "AUTO_INCREMENT":
			p.advance()
			attr = &ast.AutoIncrementAttr{}
		case "COMMENT":
			p.advance()
			lit, err := p.parseStringLiteral("comment string")
			if err != nil {
				return nil, err
			}
			attr = &ast.CommentAttr{Comment: lit}
		case "CHARACTER", "CHARSET":
			if _, err := p.parseCharsetKeyword(); err != nil {
				return nil, err
			}
			cs, err := p.parseNameValue("character set name")
			if err != nil {
				return nil, err
			}
			attr = &ast.CharsetAttr{Charset: cs}
		case "COLLATE":
			p.advance()
			coll, err := p.parseNameValue("collation name")
			if err != nil {
				return nil, err
			}
			attr = &ast.CollateAttr{Collation: coll}
		case "ON":
			p.advance()
			if err := p.expect("UPDATE"); err != nil {
				return nil, err
			}
			lit, err := p.parseTimeFunction()
			if err != nil {
				return nil, err
			}
			attr = &ast.OnUpdateAttr{Value: lit}
		case "PRIMARY":
			p.advance()
			if err := p.expect("KEY"); err != nil {
				return nil, err
			}
			attr = &ast.KeyAttr{Primary: true}
		case "KEY":
			p.advance()
			attr = &ast.KeyAttr{Primary: true}
		case "UNIQUE":
			p.advance()
			p.match("KEY")
			attr = &ast.KeyAttr{}
		default:
			return attrs, nil
		}
		attrs = append(attrs, attr)
	}
}

// parseLiteral handles DEFAULT values: NULL, strings, signed numbers, hex
// and bit values, TRUE/FALSE and CURRENT_TIMESTAMP-style functions
func (p *Parser) parseLiteral() (ast.Literal, error) {
	tok := p.current()

	switch tok.Type {
	case lexer.TOKEN_STRING:
		p.advance()
		return ast.Literal{Kind: ast.LiteralString, Text: tok.Value, Quote: tok.Quote}, nil
	case lexer.TOKEN_NUMBER:
		p.advance()
		return ast.Literal{Kind: ast.LiteralNumber, Text: tok.Value}, nil
	case lexer.TOKEN_HEX:
		p.advance()
		return ast.Literal{Kind: ast.LiteralHex, Text: tok.Raw}, nil
	case lexer.TOKEN_BIT:
		p.advance()
		return ast.Literal{Kind: ast.LiteralBit, Text: tok.Raw}, nil
	case lexer.TOKEN_OPERATOR:
		if tok.Value == "-" || tok.Value == "+" {
			p.advance()
			num, err := p.expectType(lexer.TOKEN_NUMBER, "number")
			if err != nil {
				return ast.Literal{}, err
			}
			return ast.Literal{Kind: ast.LiteralNumber, Text: num.Value, Negative: tok.Value == "-"}, nil
		}
	case lexer.TOKEN_WORD:
		switch tok.Upper() {
		case "NULL":
			p.advance()
			return ast.Literal{Kind: ast.LiteralNull, Text: "NULL"}, nil
		case "TRUE", "FALSE":
			p.advance()
			return ast.Literal{Kind: ast.LiteralBool, Text: tok.Upper()}, nil
		}
		if timeFunctions[tok.Upper()] {
			return p.parseTimeFunction()
		}
	}

	return ast.Literal{}, NewParseError(tok, fmt.Sprintf("expected default value, got %s", tok.Describe()),
		"CURRENT_TIMESTAMP", "FALSE", "NULL", "TRUE", "bit value", "hex value", "number", "string")
}

// parseTimeFunction handles: CURRENT_TIMESTAMP[([n])] and its synonyms
func (p *Parser) parseTimeFunction() (ast.Literal, error) {
	tok := p.current()
	if tok.Type != lexer.TOKEN_WORD || !timeFunctions[tok.Upper()] {
		return ast.Literal{}, NewParseError(tok, fmt.Sprintf("expected CURRENT_TIMESTAMP, got %s", tok.Describe()),
			"CURRENT_TIMESTAMP", "LOCALTIME", "LOCALTIMESTAMP", "NOW")
	}
	p.advance()

	text := tok.Upper()
	if p.matchType(lexer.TOKEN_LPAREN) {
		precision := ""
		if p.current().Type == lexer.TOKEN_NUMBER {
			precision = p.advance().Value
		}
		if _, err := p.expectType(lexer.TOKEN_RPAREN, "')'"); err != nil {
			return ast.Literal{}, err
		}
		text += "(" + precision + ")"
	}
	return ast.Literal{Kind: ast.LiteralKeyword, Text: text}, nil
}

// parseColumnPosition handles: [FIRST | AFTER col]
func (p *Parser) parseColumnPosition() (*ast.ColumnPosition, error) {
	if p.match("FIRST") {
		return &ast.ColumnPosition{First: true}, nil
	}
	if p.match("AFTER") {
		col, err := p.parseIdentifier("column name")
		if err != nil {
			return nil, err
		}
		return &ast.ColumnPosition{After: &col}, nil
	}
	return nil, nil
}
