// Package altersql parses MySQL-family ALTER TABLE statements and formats
// them back to canonical text.
package altersql

import (
	"github.com/pingcap/errors"
	"github.com/pingcap/log"
	"go.uber.org/zap"

	"github.com/omniql-engine/altersql/engine/ast"
	"github.com/omniql-engine/altersql/engine/dialect"
	"github.com/omniql-engine/altersql/engine/parser"
	"github.com/omniql-engine/altersql/engine/reverse"
	"github.com/omniql-engine/altersql/engine/translator"
	"github.com/omniql-engine/altersql/engine/validator"
)

// ErrRoundTrip is returned when formatted text does not parse back to the
// statement it came from.
var ErrRoundTrip = errors.New("formatted statement does not round-trip")

// Parse parses one ALTER TABLE statement in the named dialect.
func Parse(sql, dialectName string) (*ast.AlterTableStatement, error) {
	d, err := dialect.Lookup(dialectName)
	if err != nil {
		return nil, err
	}
	return ParseDialect(sql, d)
}

// ParseDialect is Parse for an already resolved dialect.
func ParseDialect(sql string, d *dialect.Dialect) (*ast.AlterTableStatement, error) {
	stmt, err := parser.Parse(sql, d)
	return stmt, errors.Trace(err)
}

// ParseStatementList parses a script of ';'-separated ALTER TABLE statements.
func ParseStatementList(sql, dialectName string) ([]ast.Statement, error) {
	d, err := dialect.Lookup(dialectName)
	if err != nil {
		return nil, err
	}
	return ParseStatementListDialect(sql, d)
}

// ParseStatementListDialect is ParseStatementList for an already resolved dialect.
func ParseStatementListDialect(sql string, d *dialect.Dialect) ([]ast.Statement, error) {
	stmts, err := parser.ParseStatementList(sql, d)
	if err != nil {
		log.Debug("statement list rejected", zap.String("dialect", d.String()), zap.Error(err))
		return nil, errors.Trace(err)
	}
	log.Debug("statement list parsed", zap.String("dialect", d.String()), zap.Int("statements", len(stmts)))
	return stmts, nil
}

// Format renders stmt. A nil opts.TargetDialect renders for MySQL.
func Format(stmt *ast.AlterTableStatement, opts translator.Options) string {
	return translator.Format(stmt, opts)
}

// Rewrite parses sql in the dialect named from and formats it. A nil
// opts.TargetDialect renders for the source dialect.
func Rewrite(sql, from string, opts translator.Options) (string, error) {
	d, err := dialect.Lookup(from)
	if err != nil {
		return "", err
	}
	return RewriteDialect(sql, d, opts)
}

// RewriteDialect is Rewrite for an already resolved dialect.
func RewriteDialect(sql string, d *dialect.Dialect, opts translator.Options) (string, error) {
	opts, err := resolveTarget(d, opts)
	if err != nil {
		return "", err
	}
	stmt, err := ParseDialect(sql, d)
	if err != nil {
		return "", err
	}
	return translator.Format(stmt, opts), nil
}

// RoundTrip formats sql with default options and verifies that the text
// parses back to an equal statement and formats to itself. It returns the
// canonical text.
func RoundTrip(sql, dialectName string) (string, error) {
	d, err := dialect.Lookup(dialectName)
	if err != nil {
		return "", err
	}
	return RoundTripDialect(sql, d, translator.DefaultOptions())
}

// RoundTripDialect is RoundTrip for an already resolved dialect and options.
func RoundTripDialect(sql string, d *dialect.Dialect, opts translator.Options) (string, error) {
	opts, err := resolveTarget(d, opts)
	if err != nil {
		return "", err
	}
	stmt, err := ParseDialect(sql, d)
	if err != nil {
		return "", err
	}
	text := translator.Format(stmt, opts)

	again, err := ParseDialect(text, opts.TargetDialect)
	if err != nil {
		return "", errors.Annotatef(ErrRoundTrip, "formatted text rejected: %v", err)
	}
	if !ast.Equal(stmt, again) {
		return "", errors.Annotatef(ErrRoundTrip, "structure changed in %q", text)
	}
	if second := translator.Format(again, opts); second != text {
		return "", errors.Annotatef(ErrRoundTrip, "formatting is not stable: %q then %q", text, second)
	}
	return text, nil
}

// Check formats sql and re-parses the result with the independent grammar
// of the target dialect. Unknown character sets and collations are reported
// as well. It returns the formatted text even when a check fails.
func Check(sql string, d *dialect.Dialect, opts translator.Options) (string, error) {
	opts, err := resolveTarget(d, opts)
	if err != nil {
		return "", err
	}
	stmt, err := ParseDialect(sql, d)
	if err != nil {
		return "", err
	}
	text := translator.Format(stmt, opts)

	if err := validator.ValidateSQL(text, opts.TargetDialect); err != nil {
		return text, errors.Trace(err)
	}
	if err := validator.CheckCharsets(stmt); err != nil {
		return text, errors.Trace(err)
	}
	return text, nil
}

// resolveTarget defaults the target dialect to d and rejects targets of
// another grammar family.
func resolveTarget(d *dialect.Dialect, opts translator.Options) (translator.Options, error) {
	if opts.TargetDialect == nil {
		opts.TargetDialect = d
		return opts, nil
	}
	if !d.SameGrammar(opts.TargetDialect) {
		return opts, errors.Errorf("cannot render %s statements for %s", d, opts.TargetDialect)
	}
	return opts, nil
}

// Import parses sql with the TiDB grammar and converts the statement.
func Import(sql string) (*ast.AlterTableStatement, error) {
	stmt, err := reverse.ToStatement(sql)
	return stmt, errors.Trace(err)
}
