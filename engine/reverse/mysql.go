package reverse

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pingcap/errors"
	"github.com/pingcap/tidb/parser"
	tidb "github.com/pingcap/tidb/parser/ast"
	"github.com/pingcap/tidb/parser/mysql"
	"github.com/pingcap/tidb/parser/opcode"
	"github.com/pingcap/tidb/parser/test_driver"
	"github.com/pingcap/tidb/parser/types"

	"github.com/omniql-engine/altersql/engine/ast"
)

// ============================================================================
// ENTRY POINT
// ============================================================================

// MySQLToStatement parses sql with the TiDB parser and converts it
func MySQLToStatement(sql string) (*ast.AlterTableStatement, error) {
	p := parser.New()
	stmts, _, err := p.Parse(sql, "", "")
	if err != nil {
		return nil, errors.Annotate(ErrParseError, err.Error())
	}
	if len(stmts) == 0 {
		return nil, errors.Annotate(ErrParseError, "empty statement")
	}

	stmt, ok := stmts[0].(*tidb.AlterTableStmt)
	if !ok {
		return nil, errors.Annotatef(ErrNotSupported, "unsupported MySQL statement type %T", stmts[0])
	}
	return FromTiDB(stmt)
}

// FromTiDB converts a TiDB ALTER TABLE node. Specs with no equivalent in
// this AST fail with ErrNotSupported.
func FromTiDB(stmt *tidb.AlterTableStmt) (*ast.AlterTableStatement, error) {
	out := &ast.AlterTableStatement{
		Table:    convertTableName(stmt.Table),
		Position: stmt.OriginTextPosition(),
	}
	for _, spec := range stmt.Specs {
		items, err := convertSpec(spec)
		if err != nil {
			return nil, err
		}
		out.Items = append(out.Items, items...)
	}
	if len(out.Items) == 0 {
		return nil, errors.Annotate(ErrNotSupported, "ALTER TABLE without alter specifications")
	}
	return out, nil
}

// ============================================================================
// ALTER SPECIFICATIONS
// ============================================================================

func convertSpec(spec *tidb.AlterTableSpec) ([]ast.AlterTableItem, error) {
	switch spec.Tp {
	case tidb.AlterTableOption:
		return convertTableOptions(spec.Options)

	case tidb.AlterTableAddColumns:
		var items []ast.AlterTableItem
		for _, col := range spec.NewColumns {
			def, err := convertColumnDef(col)
			if err != nil {
				return nil, err
			}
			item := &ast.AddColumn{Column: def}
			if len(spec.NewColumns) == 1 {
				item.Position = convertPosition(spec.Position)
			}
			items = append(items, item)
		}
		return items, nil

	case tidb.AlterTableChangeColumn:
		def, err := singleColumn(spec)
		if err != nil {
			return nil, err
		}
		return one(&ast.ChangeColumn{
			OldName:  ast.NewIdentifier(spec.OldColumnName.Name.O),
			Column:   def,
			Position: convertPosition(spec.Position),
		})

	case tidb.AlterTableModifyColumn:
		def, err := singleColumn(spec)
		if err != nil {
			return nil, err
		}
		return one(&ast.ModifyColumn{Column: def, Position: convertPosition(spec.Position)})

	case tidb.AlterTableDropColumn:
		return one(&ast.DropColumn{Name: ast.NewIdentifier(spec.OldColumnName.Name.O)})

	case tidb.AlterTableRenameColumn:
		return one(&ast.RenameColumn{
			OldName: ast.NewIdentifier(spec.OldColumnName.Name.O),
			NewName: ast.NewIdentifier(spec.NewColumnName.Name.O),
		})

	case tidb.AlterTableRenameTable:
		return one(&ast.RenameTable{NewName: convertTableName(spec.NewTable)})

	case tidb.AlterTableAddConstraint:
		idx, err := convertConstraint(spec.Constraint)
		if err != nil {
			return nil, err
		}
		return one(idx)

	case tidb.AlterTableDropIndex:
		return one(&ast.DropIndex{Name: ast.NewIdentifier(spec.Name)})

	case tidb.AlterTableDropPrimaryKey:
		return one(&ast.DropPrimaryKey{})

	default:
		return nil, errors.Annotatef(ErrNotSupported, "alter specification type %d", spec.Tp)
	}
}

func one(item ast.AlterTableItem) ([]ast.AlterTableItem, error) {
	return []ast.AlterTableItem{item}, nil
}

func singleColumn(spec *tidb.AlterTableSpec) (ast.ColumnDefinition, error) {
	if len(spec.NewColumns) != 1 {
		return ast.ColumnDefinition{}, errors.Annotatef(ErrNotSupported, "%d column definitions in one clause", len(spec.NewColumns))
	}
	return convertColumnDef(spec.NewColumns[0])
}

func convertTableName(t *tidb.TableName) ast.TableName {
	name := ast.TableName{Name: ast.NewIdentifier(t.Name.O)}
	if t.Schema.O != "" {
		schema := ast.NewIdentifier(t.Schema.O)
		name.Schema = &schema
	}
	return name
}

func convertPosition(pos *tidb.ColumnPosition) *ast.ColumnPosition {
	if pos == nil {
		return nil
	}
	switch pos.Tp {
	case tidb.ColumnPositionFirst:
		return &ast.ColumnPosition{First: true}
	case tidb.ColumnPositionAfter:
		after := ast.NewIdentifier(pos.RelativeColumn.Name.O)
		return &ast.ColumnPosition{After: &after}
	}
	return nil
}

// ============================================================================
// INDEXES
// ============================================================================

var constraintKinds = map[tidb.ConstraintType]ast.IndexKind{
	tidb.ConstraintIndex:      ast.IndexKindIndex,
	tidb.ConstraintKey:        ast.IndexKindKey,
	tidb.ConstraintUniq:       ast.IndexKindUnique,
	tidb.ConstraintUniqKey:    ast.IndexKindUnique,
	tidb.ConstraintUniqIndex:  ast.IndexKindUnique,
	tidb.ConstraintPrimaryKey: ast.IndexKindPrimaryKey,
	tidb.ConstraintFulltext:   ast.IndexKindFulltext,
}

func convertConstraint(c *tidb.Constraint) (*ast.AddIndex, error) {
	kind, ok := constraintKinds[c.Tp]
	if !ok {
		return nil, errors.Annotatef(ErrNotSupported, "constraint type %d", c.Tp)
	}

	idx := &ast.AddIndex{Kind: kind}
	if c.Name != "" && kind != ast.IndexKindPrimaryKey {
		name := ast.NewIdentifier(c.Name)
		idx.Name = &name
	}
	for _, key := range c.Keys {
		if key.Column == nil {
			return nil, errors.Annotate(ErrNotSupported, "expression index part")
		}
		col := ast.IndexColumn{Column: ast.NewIdentifier(key.Column.Name.O)}
		if key.Length > 0 {
			length := key.Length
			col.Length = &length
		}
		if key.Desc {
			col.Direction = ast.SortDesc
		}
		idx.Columns = append(idx.Columns, col)
	}
	return idx, nil
}

// ============================================================================
// TABLE OPTIONS
// ============================================================================

// numericOptions are TiDB table options carried in UintValue
var numericOptions = map[tidb.TableOptionType]string{
	tidb.TableOptionAutoIncrement:  "AUTO_INCREMENT",
	tidb.TableOptionAvgRowLength:   "AVG_ROW_LENGTH",
	tidb.TableOptionCheckSum:       "CHECKSUM",
	tidb.TableOptionDelayKeyWrite:  "DELAY_KEY_WRITE",
	tidb.TableOptionKeyBlockSize:   "KEY_BLOCK_SIZE",
	tidb.TableOptionMaxRows:        "MAX_ROWS",
	tidb.TableOptionMinRows:        "MIN_ROWS",
	tidb.TableOptionShardRowID:     "SHARD_ROW_ID_BITS",
	tidb.TableOptionPreSplitRegion: "PRE_SPLIT_REGIONS",
}

// stringOptions are TiDB table options carried in StrValue
var stringOptions = map[tidb.TableOptionType]string{
	tidb.TableOptionCompression: "COMPRESSION",
	tidb.TableOptionConnection:  "CONNECTION",
	tidb.TableOptionPassword:    "PASSWORD",
	tidb.TableOptionEncryption:  "ENCRYPTION",
}

func convertTableOptions(opts []*tidb.TableOption) ([]ast.AlterTableItem, error) {
	var items []ast.AlterTableItem
	for i := 0; i < len(opts); i++ {
		opt := opts[i]
		switch opt.Tp {
		case tidb.TableOptionEngine:
			items = append(items, &ast.SetEngine{Engine: ast.OptionValue{Text: opt.StrValue}})
		case tidb.TableOptionCharset:
			var collation *ast.OptionValue
			if i+1 < len(opts) && opts[i+1].Tp == tidb.TableOptionCollate {
				collation = &ast.OptionValue{Text: opts[i+1].StrValue}
				i++
			}
			charset := ast.OptionValue{Text: opt.StrValue}
			if opt.UintValue == tidb.TableOptionCharsetWithConvertTo {
				items = append(items, &ast.ConvertCharset{Charset: charset, Collation: collation})
			} else {
				items = append(items, &ast.SetCharacterSet{Charset: charset, Collation: collation})
			}
		case tidb.TableOptionCollate:
			items = append(items, &ast.SetCollate{Collation: ast.OptionValue{Text: opt.StrValue}})
		case tidb.TableOptionComment:
			items = append(items, &ast.SetComment{Comment: ast.StringLiteral{Value: opt.StrValue, Quote: '\''}})
		default:
			if key, ok := numericOptions[opt.Tp]; ok {
				items = append(items, &ast.SetTableOption{
					Key:   key,
					Value: ast.OptionValue{Text: strconv.FormatUint(opt.UintValue, 10)},
				})
				continue
			}
			if key, ok := stringOptions[opt.Tp]; ok {
				items = append(items, &ast.SetTableOption{
					Key:   key,
					Value: ast.OptionValue{Text: opt.StrValue, Quote: '\''},
				})
				continue
			}
			return nil, errors.Annotatef(ErrNotSupported, "table option type %d", opt.Tp)
		}
	}
	return items, nil
}

// ============================================================================
// COLUMNS
// ============================================================================

func convertColumnDef(col *tidb.ColumnDef) (ast.ColumnDefinition, error) {
	def := ast.ColumnDefinition{
		Name: ast.NewIdentifier(col.Name.Name.O),
		Type: convertFieldType(col.Tp),
	}

	if cs := col.Tp.GetCharset(); cs != "" && cs != "binary" {
		def.Attributes = append(def.Attributes, &ast.CharsetAttr{Charset: ast.OptionValue{Text: cs}})
		if coll := col.Tp.GetCollate(); coll != "" {
			def.Attributes = append(def.Attributes, &ast.CollateAttr{Collation: ast.OptionValue{Text: coll}})
		}
	}

	for _, opt := range col.Options {
		attr, err := convertColumnOption(opt)
		if err != nil {
			return ast.ColumnDefinition{}, errors.Annotatef(err, "column %s", col.Name.Name.O)
		}
		def.Attributes = append(def.Attributes, attr)
	}
	return def, nil
}

func convertFieldType(ft *types.FieldType) ast.DataType {
	tp := ft.GetType()
	dt := ast.DataType{
		Name:     strings.ToUpper(types.TypeToStr(tp, ft.GetCharset())),
		Unsigned: mysql.HasUnsignedFlag(ft.GetFlag()),
		Zerofill: mysql.HasZerofillFlag(ft.GetFlag()),
	}

	flen, decimal := ft.GetFlen(), ft.GetDecimal()
	switch tp {
	case mysql.TypeEnum, mysql.TypeSet:
		for _, elem := range ft.GetElems() {
			dt.Params = append(dt.Params, quoteElem(elem))
		}
	case mysql.TypeDatetime, mysql.TypeTimestamp, mysql.TypeDuration:
		// fractional seconds precision lives in Decimal
		if decimal != types.UnspecifiedLength {
			dt.Params = []string{strconv.Itoa(decimal)}
		}
	case mysql.TypeNewDecimal, mysql.TypeFloat, mysql.TypeDouble:
		if flen != types.UnspecifiedLength {
			dt.Params = []string{strconv.Itoa(flen)}
			if decimal != types.UnspecifiedLength {
				dt.Params = append(dt.Params, strconv.Itoa(decimal))
			}
		}
	default:
		if flen != types.UnspecifiedLength {
			dt.Params = []string{strconv.Itoa(flen)}
		}
	}
	return dt
}

func quoteElem(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func convertColumnOption(opt *tidb.ColumnOption) (ast.ColumnAttribute, error) {
	switch opt.Tp {
	case tidb.ColumnOptionNotNull:
		return &ast.NullAttr{NotNull: true}, nil
	case tidb.ColumnOptionNull:
		return &ast.NullAttr{}, nil
	case tidb.ColumnOptionAutoIncrement:
		return &ast.AutoIncrementAttr{}, nil
	case tidb.ColumnOptionPrimaryKey:
		return &ast.KeyAttr{Primary: true}, nil
	case tidb.ColumnOptionUniqKey:
		return &ast.KeyAttr{}, nil
	case tidb.ColumnOptionCollate:
		return &ast.CollateAttr{Collation: ast.OptionValue{Text: opt.StrValue}}, nil
	case tidb.ColumnOptionDefaultValue:
		lit, err := convertLiteral(opt.Expr)
		if err != nil {
			return nil, err
		}
		return &ast.DefaultAttr{Value: lit}, nil
	case tidb.ColumnOptionOnUpdate:
		lit, err := convertLiteral(opt.Expr)
		if err != nil {
			return nil, err
		}
		return &ast.OnUpdateAttr{Value: lit}, nil
	case tidb.ColumnOptionComment:
		lit, err := convertLiteral(opt.Expr)
		if err != nil {
			return nil, err
		}
		if lit.Kind != ast.LiteralString {
			return nil, errors.Annotate(ErrNotSupported, "non-string column comment")
		}
		return &ast.CommentAttr{Comment: ast.StringLiteral{Value: lit.Text, Quote: lit.Quote}}, nil
	}
	return nil, errors.Annotatef(ErrNotSupported, "column option type %d", opt.Tp)
}

// ============================================================================
// LITERALS
// ============================================================================

func convertLiteral(expr tidb.ExprNode) (ast.Literal, error) {
	switch e := expr.(type) {
	case *test_driver.ValueExpr:
		return valueLiteral(e.GetValue())
	case *tidb.UnaryOperationExpr:
		if e.Op != opcode.Minus && e.Op != opcode.Plus {
			break
		}
		lit, err := convertLiteral(e.V)
		if err != nil {
			return ast.Literal{}, err
		}
		if lit.Kind != ast.LiteralNumber {
			break
		}
		if e.Op == opcode.Minus {
			lit.Negative = !lit.Negative
		}
		return lit, nil
	case *tidb.FuncCallExpr:
		return timeFunctionLiteral(e)
	}
	return ast.Literal{}, errors.Annotatef(ErrNotSupported, "default expression %T", expr)
}

func valueLiteral(v interface{}) (ast.Literal, error) {
	switch x := v.(type) {
	case nil:
		return ast.Literal{Kind: ast.LiteralNull, Text: "NULL"}, nil
	case string:
		return ast.Literal{Kind: ast.LiteralString, Text: x, Quote: '\''}, nil
	case int64:
		return numberLiteral(strconv.FormatInt(x, 10)), nil
	case uint64:
		return numberLiteral(strconv.FormatUint(x, 10)), nil
	case float64:
		return numberLiteral(strconv.FormatFloat(x, 'g', -1, 64)), nil
	case fmt.Stringer:
		return numberLiteral(x.String()), nil
	}
	return ast.Literal{}, errors.Annotatef(ErrNotSupported, "literal of type %T", v)
}

func numberLiteral(text string) ast.Literal {
	if strings.HasPrefix(text, "-") {
		return ast.Literal{Kind: ast.LiteralNumber, Text: text[1:], Negative: true}
	}
	return ast.Literal{Kind: ast.LiteralNumber, Text: text}
}

// timeFunctionLiteral converts CURRENT_TIMESTAMP and its synonyms, which the
// TiDB parser normalizes to a function call.
func timeFunctionLiteral(fn *tidb.FuncCallExpr) (ast.Literal, error) {
	name := strings.ToUpper(fn.FnName.O)
	switch name {
	case "CURRENT_TIMESTAMP", "NOW", "LOCALTIME", "LOCALTIMESTAMP":
	default:
		return ast.Literal{}, errors.Annotatef(ErrNotSupported, "function %s in default value", name)
	}
	if len(fn.Args) == 0 {
		return ast.Literal{Kind: ast.LiteralKeyword, Text: name}, nil
	}

	arg, err := convertLiteral(fn.Args[0])
	if err != nil || arg.Kind != ast.LiteralNumber {
		return ast.Literal{}, errors.Annotatef(ErrNotSupported, "precision argument of %s", name)
	}
	return ast.Literal{Kind: ast.LiteralKeyword, Text: name + "(" + arg.Text + ")"}, nil
}
