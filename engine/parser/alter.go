package parser

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/omniql-engine/altersql/engine/ast"
	"github.com/omniql-engine/altersql/engine/lexer"
)

// itemParser parses one alter specification starting at its leading keyword
type itemParser func(p *Parser) (ast.AlterTableItem, error)

// alterItemParsers maps the leading keyword of an alter specification to its
// parser. Words missing here fall back to the generic table option parser.
var alterItemParsers = map[string]itemParser{
	"ADD":       (*Parser).parseAdd,
	"CHANGE":    (*Parser).parseChange,
	"MODIFY":    (*Parser).parseModify,
	"DROP":      (*Parser).parseDrop,
	"RENAME":    (*Parser).parseRename,
	"CONVERT":   (*Parser).parseConvert,
	"ENGINE":    (*Parser).parseEngine,
	"DEFAULT":   (*Parser).parseDefault,
	"CHARACTER": (*Parser).parseCharacterSetItem,
	"CHARSET":   (*Parser).parseCharacterSetItem,
	"COLLATE":   (*Parser).parseCollateItem,
	"COMMENT":   (*Parser).parseComment,
}

// alterItemKeywords is the sorted key set of alterItemParsers
var alterItemKeywords []string

func init() {
	for kw := range alterItemParsers {
		alterItemKeywords = append(alterItemKeywords, kw)
	}
	sort.Strings(alterItemKeywords)
}

// parseAlterTable handles: ALTER TABLE [schema.]table item [, item]...
func (p *Parser) parseAlterTable() (*ast.AlterTableStatement, error) {
	start := p.current()
	if err := p.expect("ALTER"); err != nil {
		return nil, err
	}
	if err := p.expect("TABLE"); err != nil {
		return nil, err
	}

	table, err := p.parseTableName()
	if err != nil {
		return nil, err
	}

	stmt := &ast.AlterTableStatement{
		Table:    table,
		Position: start.Position,
	}

	for {
		item, err := p.parseItem()
		if err != nil {
			return nil, err
		}
		stmt.Items = append(stmt.Items, item)

		if p.matchType(lexer.TOKEN_COMMA) {
			continue
		}
		// Table options may follow each other without commas
		if ast.IsTableOption(item) && p.startsTableOption() {
			continue
		}
		break
	}

	if !p.isStatementEnd() {
		tok := p.current()
		return nil, NewParseError(tok, fmt.Sprintf("unexpected %s after alter specification", tok.Describe()), "','", "';'", "end of input")
	}
	return stmt, nil
}

// parseItem dispatches one alter specification
func (p *Parser) parseItem() (ast.AlterTableItem, error) {
	tok := p.current()
	if tok.Type == lexer.TOKEN_WORD {
		if parse, ok := alterItemParsers[tok.Upper()]; ok {
			return parse(p)
		}
		if _, ok := p.dialect.TableOption(tok.Value); ok {
			return p.parseTableOption()
		}
	}
	return nil, p.unknownItemError(tok)
}

func (p *Parser) unknownItemError(tok lexer.Token) error {
	if tok.Type == lexer.TOKEN_EOF || tok.Type == lexer.TOKEN_SEMICOLON {
		return NewParseError(tok, fmt.Sprintf("expected alter specification, got %s", tok.Describe()), alterItemKeywords...)
	}
	if tok.Type == lexer.TOKEN_WORD {
		if known, ok := lookupAnyDialectOption(tok.Value); ok {
			return NewParseError(tok, fmt.Sprintf("table option %s is not supported by dialect %s", known, p.dialect.Name), alterItemKeywords...)
		}
		candidates := append(append([]string{}, alterItemKeywords...), p.dialect.TableOptionNames()...)
		sort.Strings(candidates)
		if suggestion := SuggestSimilar(tok.Value, candidates); suggestion != "" {
			return NewParseError(tok, fmt.Sprintf("unknown alter specification %s. Did you mean '%s'?", tok.Describe(), suggestion), alterItemKeywords...)
		}
	}
	return NewParseError(tok, fmt.Sprintf("unknown alter specification %s", tok.Describe()), alterItemKeywords...)
}

// startsTableOption reports whether the current token begins a table option
func (p *Parser) startsTableOption() bool {
	tok := p.current()
	if tok.Type != lexer.TOKEN_WORD || !p.dialect.IsTableOption(tok.Value) {
		return false
	}
	// DEFAULT only starts DEFAULT CHARACTER SET / DEFAULT COLLATE
	if tok.IsWord("DEFAULT") {
		next := p.peek(1)
		return next.IsWord("CHARACTER") || next.IsWord("CHARSET") || next.IsWord("COLLATE")
	}
	return true
}

// =============================================================================
// COLUMN SPECIFICATIONS
// =============================================================================

// parseChange handles: CHANGE [COLUMN] old new_name type [attributes] [FIRST | AFTER col]
func (p *Parser) parseChange() (ast.AlterTableItem, error) {
	start := p.advance() // Skip CHANGE
	p.match("COLUMN")

	oldName, err := p.parseIdentifier("column name")
	if err != nil {
		return nil, err
	}
	col, err := p.parseColumnDefinition()
	if err != nil {
		return nil, err
	}
	pos, err := p.parseColumnPosition()
	if err != nil {
		return nil, err
	}

	return &ast.ChangeColumn{OldName: oldName, Column: col, Position: pos, Offset: start.Position}, nil
}

// parseModify handles: MODIFY [COLUMN] name type [attributes] [FIRST | AFTER col]
func (p *Parser) parseModify() (ast.AlterTableItem, error) {
	start := p.advance() // Skip MODIFY
	p.match("COLUMN")

	col, err := p.parseColumnDefinition()
	if err != nil {
		return nil, err
	}
	pos, err := p.parseColumnPosition()
	if err != nil {
		return nil, err
	}

	return &ast.ModifyColumn{Column: col, Position: pos, Offset: start.Position}, nil
}

// parseAdd handles ADD [COLUMN] and the ADD INDEX family
func (p *Parser) parseAdd() (ast.AlterTableItem, error) {
	start := p.advance() // Skip ADD
	tok := p.current()

	switch {
	case p.match("INDEX"):
		return p.parseIndexSpec(ast.IndexKindIndex, start)
	case p.match("KEY"):
		return p.parseIndexSpec(ast.IndexKindKey, start)
	case p.match("UNIQUE"):
		p.match("INDEX", "KEY")
		return p.parseIndexSpec(ast.IndexKindUnique, start)
	case p.match("FULLTEXT"):
		p.match("INDEX", "KEY")
		return p.parseIndexSpec(ast.IndexKindFulltext, start)
	case p.match("PRIMARY"):
		if err := p.expect("KEY"); err != nil {
			return nil, err
		}
		return p.parseIndexSpec(ast.IndexKindPrimaryKey, start)
	case p.match("COLUMN"):
		return p.parseAddColumn(start)
	case tok.Type == lexer.TOKEN_QUOTED_IDENT || (tok.Type == lexer.TOKEN_WORD && !p.dialect.IsReserved(tok.Value)):
		return p.parseAddColumn(start)
	}

	return nil, NewParseError(tok, fmt.Sprintf("unexpected %s after ADD", tok.Describe()),
		"COLUMN", "FULLTEXT", "INDEX", "KEY", "PRIMARY KEY", "UNIQUE", "column name")
}

func (p *Parser) parseAddColumn(start lexer.Token) (ast.AlterTableItem, error) {
	col, err := p.parseColumnDefinition()
	if err != nil {
		return nil, err
	}
	pos, err := p.parseColumnPosition()
	if err != nil {
		return nil, err
	}
	return &ast.AddColumn{Column: col, Position: pos, Offset: start.Position}, nil
}

// parseDrop handles: DROP [COLUMN] col | DROP {INDEX | KEY} name | DROP PRIMARY KEY
func (p *Parser) parseDrop() (ast.AlterTableItem, error) {
	start := p.advance() // Skip DROP
	tok := p.current()

	switch {
	case p.match("INDEX", "KEY"):
		name, err := p.parseIdentifier("index name")
		if err != nil {
			return nil, err
		}
		return &ast.DropIndex{Name: name, Offset: start.Position}, nil
	case p.match("PRIMARY"):
		if err := p.expect("KEY"); err != nil {
			return nil, err
		}
		return &ast.DropPrimaryKey{Offset: start.Position}, nil
	case p.match("COLUMN"):
	case tok.Type == lexer.TOKEN_QUOTED_IDENT || (tok.Type == lexer.TOKEN_WORD && !p.dialect.IsReserved(tok.Value)):
	default:
		return nil, NewParseError(tok, fmt.Sprintf("unexpected %s after DROP", tok.Describe()),
			"COLUMN", "INDEX", "KEY", "PRIMARY KEY", "column name")
	}

	name, err := p.parseIdentifier("column name")
	if err != nil {
		return nil, err
	}
	return &ast.DropColumn{Name: name, Offset: start.Position}, nil
}

// parseRename handles: RENAME COLUMN old TO new | RENAME [TO | AS] table
func (p *Parser) parseRename() (ast.AlterTableItem, error) {
	start := p.advance() // Skip RENAME

	if p.match("COLUMN") {
		oldName, err := p.parseIdentifier("column name")
		if err != nil {
			return nil, err
		}
		if err := p.expect("TO"); err != nil {
			return nil, err
		}
		newName, err := p.parseIdentifier("column name")
		if err != nil {
			return nil, err
		}
		return &ast.RenameColumn{OldName: oldName, NewName: newName, Offset: start.Position}, nil
	}

	p.match("TO", "AS")
	table, err := p.parseTableName()
	if err != nil {
		return nil, err
	}
	return &ast.RenameTable{NewName: table, Offset: start.Position}, nil
}

// =============================================================================
// INDEXES
// =============================================================================

// parseIndexSpec handles: [name] (key_part, ...) where
// key_part: col [(length)] [ASC | DESC]
func (p *Parser) parseIndexSpec(kind ast.IndexKind, start lexer.Token) (ast.AlterTableItem, error) {
	item := &ast.AddIndex{Kind: kind, Offset: start.Position}

	if kind != ast.IndexKindPrimaryKey && p.current().Type != lexer.TOKEN_LPAREN {
		name, err := p.parseIdentifier("index name")
		if err != nil {
			return nil, err
		}
		item.Name = &name
	}

	if _, err := p.expectType(lexer.TOKEN_LPAREN, "'('"); err != nil {
		return nil, err
	}

	for {
		col, err := p.parseIdentifier("column name")
		if err != nil {
			return nil, err
		}
		part := ast.IndexColumn{Column: col}

		if p.matchType(lexer.TOKEN_LPAREN) {
			num, err := p.expectType(lexer.TOKEN_NUMBER, "key part length")
			if err != nil {
				return nil, err
			}
			length, convErr := strconv.Atoi(num.Value)
			if convErr != nil || length <= 0 {
				return nil, NewParseError(num, fmt.Sprintf("invalid key part length %s", num.Describe()))
			}
			part.Length = &length
			if _, err := p.expectType(lexer.TOKEN_RPAREN, "')'"); err != nil {
				return nil, err
			}
		}

		switch {
		case p.match("ASC"):
			part.Direction = ast.SortAsc
		case p.match("DESC"):
			part.Direction = ast.SortDesc
		}

		item.Columns = append(item.Columns, part)

		if !p.matchType(lexer.TOKEN_COMMA) {
			break
		}
	}

	if _, err := p.expectType(lexer.TOKEN_RPAREN, "')'"); err != nil {
		return nil, err
	}
	return item, nil
}

// =============================================================================
// NAMES
// =============================================================================

// parseIdentifier consumes a quoted identifier or an unreserved bare word
func (p *Parser) parseIdentifier(what string) (ast.Identifier, error) {
	tok := p.current()
	if !tok.IsIdent() {
		return ast.Identifier{}, NewParseError(tok, fmt.Sprintf("expected %s, got %s", what, tok.Describe()), what)
	}
	if tok.Type == lexer.TOKEN_QUOTED_IDENT {
		p.advance()
		return ast.Identifier{Name: tok.Value, Quoted: true}, nil
	}
	if p.dialect.IsReserved(tok.Value) {
		return ast.Identifier{}, NewParseError(tok,
			fmt.Sprintf("reserved word %s cannot be used as %s without quotes", tok.Describe(), what), what)
	}
	p.advance()
	return ast.Identifier{Name: tok.Value}, nil
}

// parseTableName handles: [schema.]table
func (p *Parser) parseTableName() (ast.TableName, error) {
	first, err := p.parseIdentifier("table name")
	if err != nil {
		return ast.TableName{}, err
	}
	if !p.matchType(lexer.TOKEN_DOT) {
		return ast.TableName{Name: first}, nil
	}
	second, err := p.parseIdentifier("table name")
	if err != nil {
		return ast.TableName{}, err
	}
	return ast.TableName{Schema: &first, Name: second}, nil
}
