package reverse

import (
	"testing"

	"github.com/pingcap/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omniql-engine/altersql/engine/ast"
	"github.com/omniql-engine/altersql/engine/dialect"
	"github.com/omniql-engine/altersql/engine/parser"
)

// Statements the TiDB grammar and ours read the same way.
func TestMatchesNativeParser(t *testing.T) {
	cases := []string{
		"ALTER TABLE `test`.`tb1` CHANGE COLUMN `fname` `fname1` VARCHAR(45) NULL DEFAULT NULL",
		"ALTER TABLE `test`.`tb1` ENGINE = InnoDB, COMMENT = '表的注释'",
		"ALTER TABLE t1 CHARACTER SET = utf8, COLLATE = utf8_general_ci",
		"ALTER TABLE t1 DROP COLUMN a, DROP INDEX idx_b, DROP PRIMARY KEY",
		"ALTER TABLE t1 RENAME COLUMN a TO b",
		"ALTER TABLE t1 RENAME TO db2.t2",
		"ALTER TABLE t1 ADD COLUMN c INT UNSIGNED NOT NULL DEFAULT -1 AFTER b",
		"ALTER TABLE t1 MODIFY COLUMN d DATETIME(6) DEFAULT CURRENT_TIMESTAMP(6) ON UPDATE CURRENT_TIMESTAMP(6) FIRST",
		"ALTER TABLE t1 ADD UNIQUE KEY uk_a (a, b(10) DESC)",
		"ALTER TABLE t1 AUTO_INCREMENT = 100",
	}

	for _, sql := range cases {
		t.Run(sql, func(t *testing.T) {
			want, err := parser.Parse(sql, dialect.TiDB)
			require.NoError(t, err)

			got, err := ToStatement(sql)
			require.NoError(t, err)
			assert.True(t, ast.Equal(want, got), "converted: %#v", got.Items)
		})
	}
}

func TestCharsetAndCollation(t *testing.T) {
	stmt, err := ToStatement("ALTER TABLE t CHARACTER SET = utf8 COLLATE = utf8_general_ci")
	require.NoError(t, err)
	require.Len(t, stmt.Items, 1)

	cs, ok := stmt.Items[0].(*ast.SetCharacterSet)
	require.True(t, ok)
	assert.Equal(t, "utf8", cs.Charset.Text)
	require.NotNil(t, cs.Collation)
	assert.Equal(t, "utf8_general_ci", cs.Collation.Text)

	stmt, err = ToStatement("ALTER TABLE t CONVERT TO CHARACTER SET utf8mb4 COLLATE utf8mb4_bin")
	require.NoError(t, err)
	require.Len(t, stmt.Items, 1)

	conv, ok := stmt.Items[0].(*ast.ConvertCharset)
	require.True(t, ok)
	assert.Equal(t, "utf8mb4", conv.Charset.Text)
	require.NotNil(t, conv.Collation)
	assert.Equal(t, "utf8mb4_bin", conv.Collation.Text)
}

func TestAddIndex(t *testing.T) {
	stmt, err := ToStatement("ALTER TABLE `test`.`tb1` ADD INDEX `f` (`fname` DESC, `lname`(10))")
	require.NoError(t, err)
	require.NotNil(t, stmt.Table.Schema)
	assert.Equal(t, "test", stmt.Table.Schema.Name)
	assert.Equal(t, "tb1", stmt.Table.Name.Name)
	require.Len(t, stmt.Items, 1)

	idx, ok := stmt.Items[0].(*ast.AddIndex)
	require.True(t, ok)
	assert.Equal(t, ast.IndexKindIndex, idx.Kind)
	require.NotNil(t, idx.Name)
	assert.Equal(t, "f", idx.Name.Name)
	require.Len(t, idx.Columns, 2)
	assert.Equal(t, ast.SortDesc, idx.Columns[0].Direction)
	assert.Nil(t, idx.Columns[0].Length)
	require.NotNil(t, idx.Columns[1].Length)
	assert.Equal(t, 10, *idx.Columns[1].Length)

	stmt, err = ToStatement("ALTER TABLE t ADD PRIMARY KEY (id)")
	require.NoError(t, err)
	pk := stmt.Items[0].(*ast.AddIndex)
	assert.Equal(t, ast.IndexKindPrimaryKey, pk.Kind)
	assert.Nil(t, pk.Name)
}

func TestColumnTypes(t *testing.T) {
	stmt, err := ToStatement("ALTER TABLE t ADD COLUMN a DECIMAL(10,2) ZEROFILL, ADD COLUMN b ENUM('x', 'it''s'), ADD COLUMN c BLOB COMMENT 'raw'")
	require.NoError(t, err)
	require.Len(t, stmt.Items, 3)

	a := stmt.Items[0].(*ast.AddColumn).Column
	assert.Equal(t, "DECIMAL", a.Type.Name)
	assert.Equal(t, []string{"10", "2"}, a.Type.Params)
	assert.True(t, a.Type.Zerofill)

	b := stmt.Items[1].(*ast.AddColumn).Column
	assert.Equal(t, "ENUM", b.Type.Name)
	assert.Equal(t, []string{"'x'", "'it''s'"}, b.Type.Params)

	c := stmt.Items[2].(*ast.AddColumn).Column
	assert.Equal(t, "BLOB", c.Type.Name)
	require.Len(t, c.Attributes, 1)
	comment, ok := c.Attributes[0].(*ast.CommentAttr)
	require.True(t, ok)
	assert.Equal(t, "raw", comment.Comment.Value)
}

func TestErrors(t *testing.T) {
	_, err := ToStatement("")
	assert.Equal(t, ErrEmptyQuery, errors.Cause(err))

	_, err = ToStatement("ALTER TABLE")
	assert.Equal(t, ErrParseError, errors.Cause(err))

	_, err = ToStatement("SELECT 1")
	assert.Equal(t, ErrNotSupported, errors.Cause(err))

	_, err = ToStatement("ALTER TABLE t PACK_KEYS = 1")
	assert.Equal(t, ErrNotSupported, errors.Cause(err))

	_, err = ToStatement("ALTER TABLE t ALTER COLUMN a SET DEFAULT 1")
	assert.Equal(t, ErrNotSupported, errors.Cause(err))
}
