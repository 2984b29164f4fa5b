// Package validator re-parses rendered SQL with independent MySQL-family
// grammars, so formatter output can be checked against real parsers.
package validator

import (
	"github.com/pingcap/errors"

	"github.com/omniql-engine/altersql/engine/dialect"
)

// Validator validates rendered statements
type Validator interface {
	Validate(query string) error
	ValidateWithDetails(query string) *ValidationResult
}

// ValidationResult contains detailed validation info
type ValidationResult struct {
	Valid     bool
	Error     string
	Validator string // Grammar that checked the query
}

// ForDialect returns the validator whose grammar matches d
func ForDialect(d *dialect.Dialect) (Validator, error) {
	if d == nil {
		return nil, errors.Annotate(dialect.ErrUnknownDialect, "nil dialect")
	}
	switch d.Name {
	case dialect.TiDB.Name:
		return TiDBValidator{}, nil
	case dialect.MySQL.Name, dialect.MariaDB.Name:
		return MySQLValidator{}, nil
	}
	return nil, errors.Annotatef(dialect.ErrUnknownDialect, "no validator for %s", d.Name)
}

// ValidateSQL validates query with the grammar of dialect d
func ValidateSQL(query string, d *dialect.Dialect) error {
	v, err := ForDialect(d)
	if err != nil {
		return err
	}
	return v.Validate(query)
}

// ValidateSQLWithDetails returns detailed validation result
func ValidateSQLWithDetails(query string, d *dialect.Dialect) (*ValidationResult, error) {
	v, err := ForDialect(d)
	if err != nil {
		return nil, err
	}
	return v.ValidateWithDetails(query), nil
}

func result(name string, err error) *ValidationResult {
	if err != nil {
		return &ValidationResult{Valid: false, Error: err.Error(), Validator: name}
	}
	return &ValidationResult{Valid: true, Validator: name}
}
