package translator

import (
	"fmt"
	"strings"

	"github.com/pingcap/tidb/parser/format"

	"github.com/omniql-engine/altersql/engine/ast"
	"github.com/omniql-engine/altersql/engine/dialect"
	"github.com/omniql-engine/altersql/engine/lexer"
)

// renderer writes MySQL-family SQL through TiDB restore contexts that share
// one buffer: ctx for keywords and names, single and double for strings.
type renderer struct {
	ctx    *format.RestoreCtx
	single *format.RestoreCtx
	double *format.RestoreCtx
	target *dialect.Dialect
	quotes QuoteStyle
}

func newRenderer(sb *strings.Builder, opts Options) *renderer {
	target := opts.TargetDialect
	if target == nil {
		target = dialect.MySQL
	}

	flags := format.RestoreKeyWordUppercase
	if opts.KeywordCase == KeywordLower {
		flags = format.RestoreKeyWordLowercase
	}
	if target.IdentQuote == '"' {
		flags |= format.RestoreNameDoubleQuotes
	} else {
		flags |= format.RestoreNameBackQuotes
	}

	return &renderer{
		ctx:    format.NewRestoreCtx(flags, sb),
		single: format.NewRestoreCtx(format.RestoreStringSingleQuotes|format.RestoreStringEscapeBackslash, sb),
		double: format.NewRestoreCtx(format.RestoreStringDoubleQuotes|format.RestoreStringEscapeBackslash, sb),
		target: target,
		quotes: opts.QuoteStyle,
	}
}

func (r *renderer) keyword(kw string) {
	r.ctx.WriteKeyWord(kw)
}

func (r *renderer) plain(s string) {
	r.ctx.WritePlain(s)
}

// =============================================================================
// NAMES AND VALUES
// =============================================================================

func (r *renderer) ident(id ast.Identifier) {
	if r.needsQuote(id) {
		r.ctx.WriteName(id.Name)
		return
	}
	r.ctx.WritePlain(id.Name)
}

func (r *renderer) needsQuote(id ast.Identifier) bool {
	switch r.quotes {
	case QuoteAlways:
		return true
	case QuotePreserve:
		if id.Quoted {
			return true
		}
	}
	return !lexer.IsBareIdentifier(id.Name) || r.target.IsReserved(id.Name)
}

func (r *renderer) tableName(t ast.TableName) {
	if t.Schema != nil {
		r.ident(*t.Schema)
		r.plain(".")
	}
	r.ident(t.Name)
}

// str writes a string literal with its source quote. Double quotes become
// single quotes when the target reads them as identifiers.
func (r *renderer) str(value string, quote byte) {
	if quote == '"' && !r.target.ANSIQuotes {
		r.double.WriteString(value)
		return
	}
	r.single.WriteString(value)
}

// name writes a charset, collation or engine name bare when it lexes as a
// word, otherwise as a string.
func (r *renderer) name(v ast.OptionValue) {
	if lexer.IsBareIdentifier(v.Text) {
		r.plain(v.Text)
		return
	}
	r.str(v.Text, '\'')
}

// optionValue writes a generic option value: strings keep their quotes,
// names go through identifier quoting, bare words are upper-cased.
func (r *renderer) optionValue(v ast.OptionValue) {
	if v.Ident != nil {
		r.ident(*v.Ident)
		return
	}
	if v.IsString() {
		r.str(v.Text, v.Quote)
		return
	}
	r.plain(strings.ToUpper(v.Text))
}

// assign writes "KEYWORD = "
func (r *renderer) assign(kw string) {
	r.keyword(kw)
	r.plain(" = ")
}

// =============================================================================
// ALTER ITEMS
// =============================================================================

func (r *renderer) item(item ast.AlterTableItem) {
	switch n := item.(type) {
	case *ast.ChangeColumn:
		r.keyword("CHANGE COLUMN")
		r.plain(" ")
		r.ident(n.OldName)
		r.plain(" ")
		r.columnDefinition(n.Column)
		r.columnPosition(n.Position)
	case *ast.ModifyColumn:
		r.keyword("MODIFY COLUMN")
		r.plain(" ")
		r.columnDefinition(n.Column)
		r.columnPosition(n.Position)
	case *ast.AddColumn:
		r.keyword("ADD COLUMN")
		r.plain(" ")
		r.columnDefinition(n.Column)
		r.columnPosition(n.Position)
	case *ast.DropColumn:
		r.keyword("DROP COLUMN")
		r.plain(" ")
		r.ident(n.Name)
	case *ast.RenameColumn:
		r.keyword("RENAME COLUMN")
		r.plain(" ")
		r.ident(n.OldName)
		r.plain(" ")
		r.keyword("TO")
		r.plain(" ")
		r.ident(n.NewName)
	case *ast.RenameTable:
		r.keyword("RENAME TO")
		r.plain(" ")
		r.tableName(n.NewName)
	case *ast.AddIndex:
		r.addIndex(n)
	case *ast.DropIndex:
		r.keyword("DROP INDEX")
		r.plain(" ")
		r.ident(n.Name)
	case *ast.DropPrimaryKey:
		r.keyword("DROP PRIMARY KEY")
	case *ast.ConvertCharset:
		r.keyword("CONVERT TO CHARACTER SET")
		r.plain(" ")
		r.name(n.Charset)
		if n.Collation != nil {
			r.plain(" ")
			r.keyword("COLLATE")
			r.plain(" ")
			r.name(*n.Collation)
		}
	case *ast.SetEngine:
		r.assign("ENGINE")
		r.name(n.Engine)
	case *ast.SetCharacterSet:
		r.assign("CHARACTER SET")
		r.name(n.Charset)
		if n.Collation != nil {
			r.plain(" ")
			r.assign("COLLATE")
			r.name(*n.Collation)
		}
	case *ast.SetCollate:
		r.assign("COLLATE")
		r.name(n.Collation)
	case *ast.SetComment:
		r.assign("COMMENT")
		r.str(n.Comment.Value, n.Comment.Quote)
	case *ast.SetTableOption:
		r.plain(n.Key)
		if def, ok := r.target.TableOption(n.Key); ok && def.Bare {
			r.plain(" ")
		} else {
			r.plain(" = ")
		}
		r.optionValue(n.Value)
	default:
		panic(fmt.Sprintf("translator: unknown alter item %T", item))
	}
}

func (r *renderer) addIndex(n *ast.AddIndex) {
	r.keyword("ADD " + n.Kind.String())
	if n.Name != nil {
		r.plain(" ")
		r.ident(*n.Name)
	}
	r.plain(" (")
	for i, col := range n.Columns {
		if i > 0 {
			r.plain(", ")
		}
		r.ident(col.Column)
		if col.Length != nil {
			r.ctx.WritePlainf("(%d)", *col.Length)
		}
		if col.Direction != ast.SortNone {
			r.plain(" ")
			r.keyword(col.Direction.String())
		}
	}
	r.plain(")")
}

// =============================================================================
// COLUMNS
// =============================================================================

func (r *renderer) columnDefinition(col ast.ColumnDefinition) {
	r.ident(col.Name)
	r.plain(" ")
	r.dataType(col.Type)
	for _, attr := range col.Attributes {
		r.plain(" ")
		r.columnAttribute(attr)
	}
}

func (r *renderer) dataType(t ast.DataType) {
	r.keyword(t.Name)
	if len(t.Params) > 0 {
		r.plain("(" + strings.Join(t.Params, ",") + ")")
	}
	if t.Unsigned {
		r.plain(" ")
		r.keyword("UNSIGNED")
	}
	if t.Zerofill {
		r.plain(" ")
		r.keyword("ZEROFILL")
	}
}

func (r *renderer) columnAttribute(attr ast.ColumnAttribute) {
	switch a := attr.(type) {
	case *ast.NullAttr:
		if a.NotNull {
			r.keyword("NOT NULL")
		} else {
			r.keyword("NULL")
		}
	case *ast.DefaultAttr:
		r.keyword("DEFAULT")
		r.plain(" ")
		r.literal(a.Value)
	case *ast.AutoIncrementAttr:
		r.keyword("AUTO_INCREMENT")
	case *ast.CommentAttr:
		r.keyword("COMMENT")
		r.plain(" ")
		r.str(a.Comment.Value, a.Comment.Quote)
	case *ast.CharsetAttr:
		r.keyword("CHARACTER SET")
		r.plain(" ")
		r.name(a.Charset)
	case *ast.CollateAttr:
		r.keyword("COLLATE")
		r.plain(" ")
		r.name(a.Collation)
	case *ast.OnUpdateAttr:
		r.keyword("ON UPDATE")
		r.plain(" ")
		r.literal(a.Value)
	case *ast.KeyAttr:
		if a.Primary {
			r.keyword("PRIMARY KEY")
		} else {
			r.keyword("UNIQUE KEY")
		}
	default:
		panic(fmt.Sprintf("translator: unknown column attribute %T", attr))
	}
}

func (r *renderer) literal(lit ast.Literal) {
	switch lit.Kind {
	case ast.LiteralString:
		r.str(lit.Text, lit.Quote)
	case ast.LiteralNumber:
		if lit.Negative {
			r.plain("-")
		}
		r.plain(lit.Text)
	case ast.LiteralHex, ast.LiteralBit:
		r.plain(lit.Text)
	default:
		r.keyword(lit.Text)
	}
}

func (r *renderer) columnPosition(pos *ast.ColumnPosition) {
	if pos == nil {
		return
	}
	r.plain(" ")
	if pos.First {
		r.keyword("FIRST")
		return
	}
	if pos.After != nil {
		r.keyword("AFTER")
		r.plain(" ")
		r.ident(*pos.After)
	}
}
