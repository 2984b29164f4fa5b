package validator

import (
	"github.com/pingcap/errors"
	"github.com/xwb1989/sqlparser"
)

// MySQLValidator checks syntax with the Vitess-derived MySQL grammar
type MySQLValidator struct{}

// Validate implements Validator
func (MySQLValidator) Validate(query string) error {
	return ValidateMySQL(query)
}

// ValidateWithDetails implements Validator
func (MySQLValidator) ValidateWithDetails(query string) *ValidationResult {
	return ValidateMySQLWithDetails(query)
}

// ValidateMySQL validates MySQL SQL syntax
func ValidateMySQL(query string) error {
	stmt, err := sqlparser.Parse(query)
	if err != nil {
		return errors.Annotate(err, "mysql grammar rejected statement")
	}
	if _, ok := stmt.(*sqlparser.DDL); !ok {
		return errors.Errorf("expected a DDL statement, got %T", stmt)
	}
	return nil
}

// ValidateMySQLWithDetails returns detailed validation result
func ValidateMySQLWithDetails(query string) *ValidationResult {
	return result("mysql", ValidateMySQL(query))
}
