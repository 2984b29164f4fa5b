package validator

import (
	"github.com/pingcap/errors"
	"github.com/pingcap/tidb/parser"
	"github.com/pingcap/tidb/parser/ast"
	_ "github.com/pingcap/tidb/parser/test_driver"
)

// TiDBValidator checks syntax with the TiDB parser
type TiDBValidator struct{}

// Validate implements Validator
func (TiDBValidator) Validate(query string) error {
	return ValidateTiDB(query)
}

// ValidateWithDetails implements Validator
func (TiDBValidator) ValidateWithDetails(query string) *ValidationResult {
	return result("tidb", ValidateTiDB(query))
}

// ValidateTiDB validates that query is a single ALTER TABLE TiDB accepts
func ValidateTiDB(query string) error {
	// parser.Parser is not safe for concurrent use
	stmt, err := parser.New().ParseOneStmt(query, "", "")
	if err != nil {
		return errors.Annotate(err, "tidb grammar rejected statement")
	}
	if _, ok := stmt.(*ast.AlterTableStmt); !ok {
		return errors.Errorf("expected ALTER TABLE, got %T", stmt)
	}
	return nil
}
