// Package reverse imports ALTER TABLE statements parsed by the TiDB parser
// into this module's AST.
package reverse

import (
	"github.com/pingcap/errors"

	"github.com/omniql-engine/altersql/engine/ast"
)

// ============================================================================
// ERRORS
// ============================================================================

var (
	ErrNotSupported = errors.New("feature not supported by altersql")
	ErrParseError   = errors.New("failed to parse query")
	ErrEmptyQuery   = errors.New("empty query")
)

// ============================================================================
// MAIN INTERFACE
// ============================================================================

// ToStatement parses sql with the TiDB grammar and converts the first
// statement. Only ALTER TABLE is supported.
func ToStatement(sql string) (*ast.AlterTableStatement, error) {
	if sql == "" {
		return nil, ErrEmptyQuery
	}
	return MySQLToStatement(sql)
}
