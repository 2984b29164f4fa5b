package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omniql-engine/altersql/engine/ast"
	"github.com/omniql-engine/altersql/engine/dialect"
	"github.com/omniql-engine/altersql/engine/lexer"
)

func mustParse(t *testing.T, sql string, d *dialect.Dialect) *ast.AlterTableStatement {
	t.Helper()
	stmt, err := Parse(sql, d)
	require.NoError(t, err, sql)
	require.NotNil(t, stmt)
	return stmt
}

func parseError(t *testing.T, sql string, d *dialect.Dialect) *ParseError {
	t.Helper()
	_, err := Parse(sql, d)
	require.Error(t, err, sql)
	pe, ok := err.(*ParseError)
	require.True(t, ok, "expected *ParseError, got %T: %v", err, err)
	return pe
}

func TestParseChangeColumn(t *testing.T) {
	stmt := mustParse(t, "ALTER TABLE `test`.`tb1` CHANGE COLUMN `fname` `fname1` VARCHAR(45) NULL DEFAULT NULL  ;", dialect.MySQL)

	require.NotNil(t, stmt.Table.Schema)
	assert.Equal(t, ast.Identifier{Name: "test", Quoted: true}, *stmt.Table.Schema)
	assert.Equal(t, ast.Identifier{Name: "tb1", Quoted: true}, stmt.Table.Name)
	require.Len(t, stmt.Items, 1)

	change, ok := stmt.Items[0].(*ast.ChangeColumn)
	require.True(t, ok)
	assert.Equal(t, ast.Identifier{Name: "fname", Quoted: true}, change.OldName)
	assert.Equal(t, ast.Identifier{Name: "fname1", Quoted: true}, change.Column.Name)
	assert.Equal(t, ast.DataType{Name: "VARCHAR", Params: []string{"45"}}, change.Column.Type)
	assert.Equal(t, []ast.ColumnAttribute{
		&ast.NullAttr{},
		&ast.DefaultAttr{Value: ast.Literal{Kind: ast.LiteralNull, Text: "NULL"}},
	}, change.Column.Attributes)
	assert.Nil(t, change.Position)
	assert.Equal(t, 25, change.Pos())
}

func TestParseCharsetThenCollate(t *testing.T) {
	separate := mustParse(t, "ALTER TABLE `test`.`tb1` CHARACTER SET = utf8 , COLLATE = utf8_general_ci ;", dialect.MySQL)
	require.Len(t, separate.Items, 2)

	cs := separate.Items[0].(*ast.SetCharacterSet)
	assert.Equal(t, "utf8", cs.Charset.Text)
	assert.Nil(t, cs.Collation)
	assert.False(t, cs.HadDefault)
	assert.Equal(t, ast.SpellingCharacterSet, cs.CharsetSpelling)

	coll := separate.Items[1].(*ast.SetCollate)
	assert.Equal(t, "utf8_general_ci", coll.Collation.Text)

	attached := mustParse(t, "ALTER TABLE `test`.`tb1` DEFAULT CHARACTER SET utf8 COLLATE = utf8_general_ci", dialect.MySQL)
	require.Len(t, attached.Items, 1)
	cs = attached.Items[0].(*ast.SetCharacterSet)
	assert.True(t, cs.HadDefault)
	require.NotNil(t, cs.Collation)
	assert.Equal(t, "utf8_general_ci", cs.Collation.Text)

	assert.True(t, ast.Equal(separate, attached))
}

func TestParseAddIndex(t *testing.T) {
	stmt := mustParse(t, "ALTER TABLE `test`.`tb1` ADD INDEX `f` (`fname` ASC) ;", dialect.MySQL)
	require.Len(t, stmt.Items, 1)

	idx := stmt.Items[0].(*ast.AddIndex)
	assert.Equal(t, ast.IndexKindIndex, idx.Kind)
	require.NotNil(t, idx.Name)
	assert.Equal(t, "f", idx.Name.Name)
	assert.Equal(t, []ast.IndexColumn{
		{Column: ast.Identifier{Name: "fname", Quoted: true}, Direction: ast.SortAsc},
	}, idx.Columns)
}

func TestParseTableOptions(t *testing.T) {
	stmt := mustParse(t, "ALTER TABLE `test`.`tb1` COLLATE = utf8_general_ci , PACK_KEYS = Pack All , ENGINE = InnoDB ;", dialect.MySQL)
	require.Len(t, stmt.Items, 3)

	assert.Equal(t, "utf8_general_ci", stmt.Items[0].(*ast.SetCollate).Collation.Text)
	opt := stmt.Items[1].(*ast.SetTableOption)
	assert.Equal(t, "PACK_KEYS", opt.Key)
	assert.Equal(t, ast.OptionValue{Text: "Pack All"}, opt.Value)
	assert.Equal(t, ast.OptionValue{Text: "InnoDB"}, stmt.Items[2].(*ast.SetEngine).Engine)
}

func TestParseOptionsWithoutCommas(t *testing.T) {
	stmt := mustParse(t, "ALTER TABLE t1 ENGINE=InnoDB AUTO_INCREMENT=10 ROW_FORMAT DYNAMIC COMMENT='x' DEFAULT CHARSET=latin1", dialect.MySQL)
	require.Len(t, stmt.Items, 5)

	assert.IsType(t, &ast.SetEngine{}, stmt.Items[0])
	assert.Equal(t, ast.OptionValue{Text: "10"}, stmt.Items[1].(*ast.SetTableOption).Value)
	assert.Equal(t, ast.OptionValue{Text: "DYNAMIC"}, stmt.Items[2].(*ast.SetTableOption).Value)
	assert.Equal(t, ast.StringLiteral{Value: "x", Quote: '\''}, stmt.Items[3].(*ast.SetComment).Comment)

	cs := stmt.Items[4].(*ast.SetCharacterSet)
	assert.Equal(t, ast.SpellingCharset, cs.CharsetSpelling)
	assert.True(t, cs.HadDefault)
}

func TestParseOptionValueShapes(t *testing.T) {
	tests := []struct {
		sql   string
		key   string
		value ast.OptionValue
	}{
		{"ALTER TABLE t PACK_KEYS = DEFAULT", "PACK_KEYS", ast.OptionValue{Text: "DEFAULT"}},
		{"ALTER TABLE t PACK_KEYS 1", "PACK_KEYS", ast.OptionValue{Text: "1"}},
		{"ALTER TABLE t PACK_KEYS = 'odd'", "PACK_KEYS", ast.OptionValue{Text: "odd", Quote: '\''}},
		{"ALTER TABLE t PASSWORD = \"secret\"", "PASSWORD", ast.OptionValue{Text: "secret", Quote: '"'}},
		{"ALTER TABLE t stats_persistent = 0", "stats_persistent", ast.OptionValue{Text: "0"}},
		{"ALTER TABLE t ALGORITHM = INPLACE", "ALGORITHM", ast.OptionValue{Text: "INPLACE"}},
	}

	for _, tt := range tests {
		t.Run(tt.sql, func(t *testing.T) {
			stmt := mustParse(t, tt.sql, dialect.MySQL)
			require.Len(t, stmt.Items, 1)
			opt := stmt.Items[0].(*ast.SetTableOption)
			assert.Equal(t, tt.key, opt.Key)
			assert.Equal(t, tt.value, opt.Value)
		})
	}
}

func TestParseNamedOptionValues(t *testing.T) {
	stmt := mustParse(t, "ALTER TABLE t TABLESPACE `innodb_system`", dialect.MySQL)
	require.Len(t, stmt.Items, 1)
	opt := stmt.Items[0].(*ast.SetTableOption)
	assert.Equal(t, "TABLESPACE", opt.Key)
	assert.Equal(t, ast.OptionValue{Text: "innodb_system", Ident: &ast.Identifier{Name: "innodb_system", Quoted: true}}, opt.Value)

	stmt = mustParse(t, "ALTER TABLE t TABLESPACE ts1 STORAGE DISK, ENGINE = NDB", dialect.MySQL)
	require.Len(t, stmt.Items, 3)
	assert.Equal(t, ast.OptionValue{Text: "ts1", Ident: &ast.Identifier{Name: "ts1"}}, stmt.Items[0].(*ast.SetTableOption).Value)
	storage := stmt.Items[1].(*ast.SetTableOption)
	assert.Equal(t, "STORAGE", storage.Key)
	assert.Equal(t, ast.OptionValue{Text: "DISK"}, storage.Value)

	stmt = mustParse(t, "ALTER TABLE t SECONDARY_ENGINE = `rapid`", dialect.MySQL)
	assert.Equal(t, "rapid", stmt.Items[0].(*ast.SetTableOption).Value.Ident.Name)

	stmt = mustParse(t, "ALTER TABLE t SECONDARY_ENGINE = NULL", dialect.MySQL)
	assert.Equal(t, ast.OptionValue{Text: "NULL"}, stmt.Items[0].(*ast.SetTableOption).Value)

	// one keyword only, the next word starts another clause
	pe := parseError(t, "ALTER TABLE t ROW_FORMAT = DYNAMIC COMPACT", dialect.MySQL)
	assert.Contains(t, pe.Message, "unexpected 'COMPACT' after alter specification")

	pe = parseError(t, "ALTER TABLE t TABLESPACE select", dialect.MySQL)
	assert.Contains(t, pe.Message, "reserved word 'select' cannot be used as tablespace name")
}

func TestParseDefaultLiterals(t *testing.T) {
	tests := []struct {
		sql  string
		want ast.Literal
	}{
		{"ALTER TABLE t ADD c DECIMAL(3,2) DEFAULT .5", ast.Literal{Kind: ast.LiteralNumber, Text: ".5"}},
		{"ALTER TABLE t ADD c DECIMAL(3,2) DEFAULT -.5", ast.Literal{Kind: ast.LiteralNumber, Text: ".5", Negative: true}},
		{"ALTER TABLE t ADD c BIT(1) DEFAULT b'0'", ast.Literal{Kind: ast.LiteralBit, Text: "b'0'"}},
		{"ALTER TABLE t ADD c BIT(4) DEFAULT 0b1010", ast.Literal{Kind: ast.LiteralBit, Text: "0b1010"}},
		{"ALTER TABLE t ADD c BINARY(1) DEFAULT x'1F'", ast.Literal{Kind: ast.LiteralHex, Text: "x'1F'"}},
		{"ALTER TABLE t ADD c VARBINARY(4) DEFAULT 0x1F", ast.Literal{Kind: ast.LiteralHex, Text: "0x1F"}},
	}

	for _, tt := range tests {
		t.Run(tt.sql, func(t *testing.T) {
			stmt := mustParse(t, tt.sql, dialect.MySQL)
			add := stmt.Items[0].(*ast.AddColumn)
			require.Len(t, add.Column.Attributes, 1)
			assert.Equal(t, &ast.DefaultAttr{Value: tt.want}, add.Column.Attributes[0])
		})
	}
}

func TestParseExecutableComment(t *testing.T) {
	stmt := mustParse(t, "ALTER TABLE t /*!40101 ENGINE=MyISAM */ COMMENT 'x'", dialect.MySQL)
	require.Len(t, stmt.Items, 2)
	assert.Equal(t, "MyISAM", stmt.Items[0].(*ast.SetEngine).Engine.Text)
	assert.IsType(t, &ast.SetComment{}, stmt.Items[1])
}

func TestParseComment(t *testing.T) {
	stmt := mustParse(t, "ALTER TABLE t1 COMMENT '表的注释';", dialect.MySQL)
	require.Len(t, stmt.Items, 1)
	assert.Equal(t, ast.StringLiteral{Value: "表的注释", Quote: '\''}, stmt.Items[0].(*ast.SetComment).Comment)
	assert.Equal(t, ast.Identifier{Name: "t1"}, stmt.Table.Name)
	assert.Nil(t, stmt.Table.Schema)
}

func TestParseCharsetSpellings(t *testing.T) {
	inputs := []string{
		"ALTER TABLE \n    `test`  CHARACTER SET utf8mb4 COLLATE utf8mb4_bin;",
		"ALTER TABLE \n    `test`  CHARACTER SET 'utf8mb4' COLLATE 'utf8mb4_bin';",
		"ALTER TABLE \n    `test`  CHARACTER SET \"utf8mb4\" COLLATE \"utf8mb4_bin\";",
		"ALTER TABLE \n    `test`  default CHARACTER SET utf8mb4 COLLATE =utf8mb4_bin",
	}

	for _, d := range []*dialect.Dialect{dialect.MySQL, dialect.MariaDB} {
		for _, sql := range inputs {
			stmt := mustParse(t, sql, d)
			require.Len(t, stmt.Items, 1)
			cs := stmt.Items[0].(*ast.SetCharacterSet)
			assert.Equal(t, ast.OptionValue{Text: "utf8mb4"}, cs.Charset)
			require.NotNil(t, cs.Collation)
			assert.Equal(t, ast.OptionValue{Text: "utf8mb4_bin"}, *cs.Collation)
		}
	}
}

func TestParseANSIQuotes(t *testing.T) {
	d := dialect.MySQL.WithANSIQuotes()
	stmt := mustParse(t, `ALTER TABLE "test"."tb1" CHARACTER SET "utf8" COMMENT 'c'`, d)

	assert.Equal(t, ast.Identifier{Name: "tb1", Quoted: true}, stmt.Table.Name)
	require.Len(t, stmt.Items, 2)
	assert.Equal(t, ast.OptionValue{Text: "utf8"}, stmt.Items[0].(*ast.SetCharacterSet).Charset)

	// A double-quoted comment is an identifier under ANSI_QUOTES
	pe := parseError(t, `ALTER TABLE t COMMENT "c"`, d)
	assert.Contains(t, pe.Expected, "comment string")
}

func TestParseColumnItems(t *testing.T) {
	ten := 10
	after := ast.Identifier{Name: "id"}

	tests := []struct {
		name string
		sql  string
		want ast.AlterTableItem
	}{
		{
			"add column after",
			"ALTER TABLE t ADD COLUMN c INT(11) UNSIGNED NOT NULL AFTER id",
			&ast.AddColumn{
				Column: ast.ColumnDefinition{
					Name:       ast.Identifier{Name: "c"},
					Type:       ast.DataType{Name: "INT", Params: []string{"11"}, Unsigned: true},
					Attributes: []ast.ColumnAttribute{&ast.NullAttr{NotNull: true}},
				},
				Position: &ast.ColumnPosition{After: &after},
				Offset:   14,
			},
		},
		{
			"add without column keyword",
			"ALTER TABLE t ADD c DOUBLE PRECISION DEFAULT -1.5 FIRST",
			&ast.AddColumn{
				Column: ast.ColumnDefinition{
					Name: ast.Identifier{Name: "c"},
					Type: ast.DataType{Name: "DOUBLE PRECISION"},
					Attributes: []ast.ColumnAttribute{
						&ast.DefaultAttr{Value: ast.Literal{Kind: ast.LiteralNumber, Text: "1.5", Negative: true}},
					},
				},
				Position: &ast.ColumnPosition{First: true},
				Offset:   14,
			},
		},
		{
			"modify with attributes",
			"ALTER TABLE t MODIFY id BIGINT ZEROFILL AUTO_INCREMENT PRIMARY KEY COMMENT 'pk'",
			&ast.ModifyColumn{
				Column: ast.ColumnDefinition{
					Name: ast.Identifier{Name: "id"},
					Type: ast.DataType{Name: "BIGINT", Zerofill: true},
					Attributes: []ast.ColumnAttribute{
						&ast.AutoIncrementAttr{},
						&ast.KeyAttr{Primary: true},
						&ast.CommentAttr{Comment: ast.StringLiteral{Value: "pk", Quote: '\''}},
					},
				},
				Offset: 14,
			},
		},
		{
			"timestamps",
			"ALTER TABLE t ADD updated TIMESTAMP(6) NOT NULL DEFAULT current_timestamp(6) ON UPDATE CURRENT_TIMESTAMP(6)",
			&ast.AddColumn{
				Column: ast.ColumnDefinition{
					Name: ast.Identifier{Name: "updated"},
					Type: ast.DataType{Name: "TIMESTAMP", Params: []string{"6"}},
					Attributes: []ast.ColumnAttribute{
						&ast.NullAttr{NotNull: true},
						&ast.DefaultAttr{Value: ast.Literal{Kind: ast.LiteralKeyword, Text: "CURRENT_TIMESTAMP(6)"}},
						&ast.OnUpdateAttr{Value: ast.Literal{Kind: ast.LiteralKeyword, Text: "CURRENT_TIMESTAMP(6)"}},
					},
				},
				Offset: 14,
			},
		},
		{
			"enum with charset",
			"ALTER TABLE t MODIFY s ENUM('a','it''s') CHARACTER SET utf8 COLLATE utf8_bin UNIQUE KEY DEFAULT 'a'",
			&ast.ModifyColumn{
				Column: ast.ColumnDefinition{
					Name: ast.Identifier{Name: "s"},
					Type: ast.DataType{Name: "ENUM", Params: []string{"'a'", "'it''s'"}},
					Attributes: []ast.ColumnAttribute{
						&ast.CharsetAttr{Charset: ast.OptionValue{Text: "utf8"}},
						&ast.CollateAttr{Collation: ast.OptionValue{Text: "utf8_bin"}},
						&ast.KeyAttr{},
						&ast.DefaultAttr{Value: ast.Literal{Kind: ast.LiteralString, Text: "a", Quote: '\''}},
					},
				},
				Offset: 14,
			},
		},
		{
			"drop column",
			"ALTER TABLE t DROP COLUMN `c`",
			&ast.DropColumn{Name: ast.Identifier{Name: "c", Quoted: true}, Offset: 14},
		},
		{
			"drop without column keyword",
			"ALTER TABLE t DROP c",
			&ast.DropColumn{Name: ast.Identifier{Name: "c"}, Offset: 14},
		},
		{
			"rename column",
			"ALTER TABLE t RENAME COLUMN a TO b",
			&ast.RenameColumn{OldName: ast.Identifier{Name: "a"}, NewName: ast.Identifier{Name: "b"}, Offset: 14},
		},
		{
			"rename table",
			"ALTER TABLE t RENAME AS s.t2",
			&ast.RenameTable{NewName: ast.TableName{Schema: &ast.Identifier{Name: "s"}, Name: ast.Identifier{Name: "t2"}}, Offset: 14},
		},
		{
			"add unique key",
			"ALTER TABLE t ADD UNIQUE KEY uk (a(10) DESC, b)",
			&ast.AddIndex{
				Kind: ast.IndexKindUnique,
				Name: &ast.Identifier{Name: "uk"},
				Columns: []ast.IndexColumn{
					{Column: ast.Identifier{Name: "a"}, Length: &ten, Direction: ast.SortDesc},
					{Column: ast.Identifier{Name: "b"}},
				},
				Offset: 14,
			},
		},
		{
			"add primary key",
			"ALTER TABLE t ADD PRIMARY KEY (id)",
			&ast.AddIndex{Kind: ast.IndexKindPrimaryKey, Columns: []ast.IndexColumn{{Column: ast.Identifier{Name: "id"}}}, Offset: 14},
		},
		{
			"add fulltext",
			"ALTER TABLE t ADD FULLTEXT ft (body)",
			&ast.AddIndex{Kind: ast.IndexKindFulltext, Name: &ast.Identifier{Name: "ft"}, Columns: []ast.IndexColumn{{Column: ast.Identifier{Name: "body"}}}, Offset: 14},
		},
		{
			"drop index",
			"ALTER TABLE t DROP KEY idx",
			&ast.DropIndex{Name: ast.Identifier{Name: "idx"}, Offset: 14},
		},
		{
			"drop primary key",
			"ALTER TABLE t DROP PRIMARY KEY",
			&ast.DropPrimaryKey{Offset: 14},
		},
		{
			"convert charset",
			"ALTER TABLE t CONVERT TO CHARACTER SET utf8mb4 COLLATE utf8mb4_bin",
			&ast.ConvertCharset{Charset: ast.OptionValue{Text: "utf8mb4"}, Collation: &ast.OptionValue{Text: "utf8mb4_bin"}, Offset: 14},
		},
		{
			"default collate",
			"ALTER TABLE t DEFAULT COLLATE utf8_bin",
			&ast.SetCollate{Collation: ast.OptionValue{Text: "utf8_bin"}, HadDefault: true, Offset: 14},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stmt := mustParse(t, tt.sql, dialect.MySQL)
			require.Len(t, stmt.Items, 1)
			assert.Equal(t, tt.want, stmt.Items[0])
		})
	}
}

func TestParseMultipleItems(t *testing.T) {
	stmt := mustParse(t, "ALTER TABLE t1 /* rebuild */ ADD COLUMN a INT, DROP INDEX ia, ENGINE = InnoDB -- trailing", dialect.TiDB)
	require.Len(t, stmt.Items, 3)
	assert.IsType(t, &ast.AddColumn{}, stmt.Items[0])
	assert.IsType(t, &ast.DropIndex{}, stmt.Items[1])
	assert.IsType(t, &ast.SetEngine{}, stmt.Items[2])
}

func TestParseDialectDifferences(t *testing.T) {
	stmt := mustParse(t, "ALTER TABLE t SHARD_ROW_ID_BITS = 4", dialect.TiDB)
	assert.Equal(t, "4", stmt.Items[0].(*ast.SetTableOption).Value.Text)

	pe := parseError(t, "ALTER TABLE t SHARD_ROW_ID_BITS = 4", dialect.MySQL)
	assert.Contains(t, pe.Message, "not supported by dialect mysql")

	mustParse(t, "ALTER TABLE t ADD addr INET6", dialect.MariaDB)
	pe = parseError(t, "ALTER TABLE t ADD addr INET6", dialect.MySQL)
	assert.Contains(t, pe.Message, "unknown data type")

	// ROWNUM is reserved by MariaDB only
	mustParse(t, "ALTER TABLE t DROP rownum", dialect.MySQL)
	pe = parseError(t, "ALTER TABLE t DROP rownum", dialect.MariaDB)
	assert.Contains(t, pe.Message, "unexpected 'rownum' after DROP")
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name     string
		sql      string
		message  string
		expected string
		line     int
		column   int
	}{
		{"no items", "ALTER TABLE t1", "expected alter specification", "CHANGE", 1, 15},
		{"typo", "ALTER TABLE t1 CHANEG COLUMN a b INT", "Did you mean 'CHANGE'?", "CHANGE", 1, 16},
		{"missing comma", "ALTER TABLE t1 ENGINE = InnoDB ADD INDEX (a)", "after alter specification", "','", 1, 32},
		{"reserved column", "ALTER TABLE t1 ADD select INT", "after ADD", "COLUMN", 1, 20},
		{"reserved name after keyword", "ALTER TABLE t1 ADD COLUMN `ok` INT AFTER order", "reserved word 'order'", "column name", 1, 42},
		{"unknown type", "ALTER TABLE t1 MODIFY a FOO", "unknown data type 'FOO'", "data type", 1, 25},
		{"second line", "ALTER TABLE t1\n  FROB x", "unknown alter specification 'FROB'", "ENGINE", 2, 3},
		{"trailing statement", "ALTER TABLE t1 ENGINE = InnoDB; SELECT 1", "after ALTER TABLE statement", "end of input", 1, 33},
		{"not alter", "SELECT 1", "expected ALTER", "ALTER", 1, 1},
		{"bad default", "ALTER TABLE t1 MODIFY a INT DEFAULT (1)", "expected default value", "NULL", 1, 37},
		{"number option", "ALTER TABLE t1 AUTO_INCREMENT = abc", "expected number", "number", 1, 33},
		{"unclosed key parts", "ALTER TABLE t1 ADD INDEX i (a, b", "expected ')'", "')'", 1, 33},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pe := parseError(t, tt.sql, dialect.MySQL)
			assert.Contains(t, pe.Message, tt.message)
			assert.Contains(t, pe.Expected, tt.expected)
			assert.Equal(t, tt.line, pe.Line)
			assert.Equal(t, tt.column, pe.Column)
			assert.Contains(t, pe.Error(), "parse error at line")
		})
	}
}

func TestParseLexError(t *testing.T) {
	_, err := Parse("ALTER TABLE t1 COMMENT 'unterminated", dialect.MySQL)
	require.Error(t, err)
	_, ok := err.(*lexer.LexError)
	assert.True(t, ok, "expected *lexer.LexError, got %T", err)
}

func TestParseAlterTableFromTokens(t *testing.T) {
	tokens, err := lexer.Tokenize("ALTER TABLE t ENGINE = MyISAM", dialect.MariaDB)
	require.NoError(t, err)

	stmt, err := ParseAlterTable(tokens, dialect.MariaDB)
	require.NoError(t, err)
	assert.Equal(t, "MyISAM", stmt.Items[0].(*ast.SetEngine).Engine.Text)

	// The same tokens can be parsed again
	again, err := ParseAlterTable(tokens, dialect.MariaDB)
	require.NoError(t, err)
	assert.True(t, ast.Equal(stmt, again))
}

func TestParseEndOfInputAfterMultiLineToken(t *testing.T) {
	tokens, err := lexer.Tokenize("ALTER TABLE t ADD c ENUM('a\nb'", dialect.MySQL)
	require.NoError(t, err)

	for _, toks := range [][]lexer.Token{tokens, tokens[:len(tokens)-1]} {
		_, err := ParseAlterTable(toks, dialect.MySQL)
		require.Error(t, err)
		pe, ok := err.(*ParseError)
		require.True(t, ok, "expected *ParseError, got %T", err)
		assert.Contains(t, pe.Message, "got end of input")
		assert.Equal(t, 2, pe.Line)
		assert.Equal(t, 3, pe.Column)
	}
}

func TestParseStatementList(t *testing.T) {
	stmts, err := ParseStatementList("ALTER TABLE a ENGINE=InnoDB; ; ALTER TABLE b COMMENT 'x';", dialect.MySQL)
	require.NoError(t, err)
	require.Len(t, stmts, 2)
	assert.Equal(t, "b", stmts[1].(*ast.AlterTableStatement).Table.Name.Name)

	stmts, err = ParseStatementList("  -- nothing here\n", dialect.MySQL)
	require.NoError(t, err)
	assert.Empty(t, stmts)

	_, err = ParseStatementList("ALTER TABLE a ENGINE=InnoDB; SELECT 1", dialect.MySQL)
	require.Error(t, err)
	pe, ok := err.(*ParseError)
	require.True(t, ok)
	assert.Contains(t, pe.Message, "unsupported statement")
	assert.Equal(t, []string{"ALTER TABLE"}, pe.Expected)
}

func TestSuggestSimilar(t *testing.T) {
	candidates := []string{"CHANGE", "COMMENT", "ENGINE", "MODIFY"}
	assert.Equal(t, "CHANGE", SuggestSimilar("chnage", candidates))
	assert.Equal(t, "ENGINE", SuggestSimilar("ENGIN", candidates))
	assert.Equal(t, "", SuggestSimilar("XYZZY", candidates))
	assert.Equal(t, 3, levenshtein("kitten", "sitting"))
}

func TestNewParseErrorSortsExpected(t *testing.T) {
	pe := NewParseError(lexer.Token{Type: lexer.TOKEN_WORD, Raw: "x", Line: 1, Column: 2}, "boom", "b", "a", "b")
	assert.Equal(t, []string{"a", "b"}, pe.Expected)
	assert.Equal(t, "parse error at line 1, column 2: boom (expected one of: a, b)", pe.Error())
}
