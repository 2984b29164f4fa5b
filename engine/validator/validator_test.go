package validator

import (
	"testing"

	"github.com/pingcap/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/omniql-engine/altersql/engine/dialect"
	"github.com/omniql-engine/altersql/engine/parser"
)

func TestValidateTiDB(t *testing.T) {
	valid := []string{
		"ALTER TABLE `test`.`tb1`\n\tCHANGE COLUMN `fname` `fname1` VARCHAR(45) NULL DEFAULT NULL;",
		"ALTER TABLE `test`.`tb1`\n\tCHARACTER SET = utf8 COLLATE = utf8_general_ci;",
		"ALTER TABLE `test`.`tb1`\n\tADD INDEX `f` (`fname` ASC);",
		"ALTER TABLE `test`.`tb1`\n\tENGINE = InnoDB;",
		"ALTER TABLE t1\n\tCOMMENT = '表的注释';",
	}
	for _, sql := range valid {
		assert.NoError(t, ValidateTiDB(sql), sql)
	}

	assert.Error(t, ValidateTiDB("ALTER TABLE t1 FROB"))
	assert.Error(t, ValidateTiDB("SELECT 1"))
}

func TestValidateMySQL(t *testing.T) {
	valid := []string{
		"ALTER TABLE `test`.`tb1`\n\tADD INDEX `f` (`fname` ASC);",
		"ALTER TABLE t1\n\tCOMMENT = '表的注释';",
		"ALTER TABLE `test`.`tb1`\n\tCHARACTER SET = utf8 COLLATE = utf8_general_ci;",
	}
	for _, sql := range valid {
		assert.NoError(t, ValidateMySQL(sql), sql)
	}

	assert.Error(t, ValidateMySQL("ALTER TABLE"))
	assert.Error(t, ValidateMySQL("SELECT 1"))
}

func TestValidateSQLRouting(t *testing.T) {
	res, err := ValidateSQLWithDetails("ALTER TABLE t1\n\tCOMMENT = 'x';", dialect.TiDB)
	require.NoError(t, err)
	assert.True(t, res.Valid)
	assert.Equal(t, "tidb", res.Validator)

	res, err = ValidateSQLWithDetails("ALTER TABLE", dialect.MariaDB)
	require.NoError(t, err)
	assert.False(t, res.Valid)
	assert.Equal(t, "mysql", res.Validator)
	assert.NotEmpty(t, res.Error)

	assert.NoError(t, ValidateSQL("ALTER TABLE t1\n\tCOMMENT = 'x';", dialect.MySQL))

	_, err = ForDialect(nil)
	require.Error(t, err)
	assert.Equal(t, dialect.ErrUnknownDialect, errors.Cause(err))
}

func TestCheckCharsets(t *testing.T) {
	stmt, err := parser.Parse("ALTER TABLE t CHARACTER SET utf8 COLLATE utf8_general_ci, CONVERT TO CHARACTER SET utf8mb4 COLLATE utf8mb4_bin", dialect.MySQL)
	require.NoError(t, err)
	assert.NoError(t, CheckCharsets(stmt))

	stmt, err = parser.Parse("ALTER TABLE t CHARACTER SET utf8mb4 COLLATE latin1_bin", dialect.MySQL)
	require.NoError(t, err)
	err = CheckCharsets(stmt)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not valid for character set")

	stmt, err = parser.Parse("ALTER TABLE t CHARACTER SET klingon, COLLATE nope_ci, MODIFY c VARCHAR(10) CHARACTER SET latin1 COLLATE utf8mb4_bin", dialect.MySQL)
	require.NoError(t, err)
	errs := multierr.Errors(CheckCharsets(stmt))
	require.Len(t, errs, 3)
	assert.Contains(t, errs[0].Error(), "unknown character set")
	assert.Contains(t, errs[1].Error(), "unknown collation")
	assert.Contains(t, errs[2].Error(), "not valid for character set")
}
