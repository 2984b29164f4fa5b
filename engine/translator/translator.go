// Package translator renders ALTER TABLE ASTs back to SQL text for a target
// dialect of the MySQL family.
package translator

import (
	"strings"

	"github.com/pingcap/errors"

	"github.com/omniql-engine/altersql/engine/ast"
	"github.com/omniql-engine/altersql/engine/dialect"
)

// ErrUnsupportedStatement is returned by Translate for statements it cannot render.
var ErrUnsupportedStatement = errors.New("unsupported statement")

// KeywordCase selects how keywords are spelled.
type KeywordCase int

const (
	KeywordUpper KeywordCase = iota
	KeywordLower
)

func (c KeywordCase) String() string {
	if c == KeywordLower {
		return "lower"
	}
	return "upper"
}

// ParseKeywordCase accepts "upper" or "lower" in any case.
func ParseKeywordCase(s string) (KeywordCase, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "upper":
		return KeywordUpper, nil
	case "lower":
		return KeywordLower, nil
	}
	return KeywordUpper, errors.Errorf("invalid keyword case %q (want upper or lower)", s)
}

// QuoteStyle selects which identifiers are quoted.
type QuoteStyle int

const (
	// QuotePreserve quotes identifiers quoted in the source plus any that
	// need quoting.
	QuotePreserve QuoteStyle = iota
	// QuoteAlways quotes every identifier.
	QuoteAlways
	// QuoteMinimal quotes only identifiers that need it.
	QuoteMinimal
)

func (s QuoteStyle) String() string {
	switch s {
	case QuoteAlways:
		return "always"
	case QuoteMinimal:
		return "minimal"
	default:
		return "preserve"
	}
}

// ParseQuoteStyle accepts "preserve", "always" or "minimal" in any case.
func ParseQuoteStyle(s string) (QuoteStyle, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "preserve":
		return QuotePreserve, nil
	case "always":
		return QuoteAlways, nil
	case "minimal":
		return QuoteMinimal, nil
	}
	return QuotePreserve, errors.Errorf("invalid quote style %q (want preserve, always or minimal)", s)
}

// Options controls rendering. The zero value renders upper-case keywords
// for MySQL with preserved quoting.
type Options struct {
	KeywordCase KeywordCase
	// TargetDialect decides identifier quoting and reserved words; nil means MySQL.
	TargetDialect *dialect.Dialect
	QuoteStyle    QuoteStyle
}

// DefaultOptions renders upper-case keywords with preserved quoting.
func DefaultOptions() Options {
	return Options{KeywordCase: KeywordUpper, QuoteStyle: QuotePreserve}
}

// LowerCaseOptions renders lower-case keywords with preserved quoting.
func LowerCaseOptions() Options {
	return Options{KeywordCase: KeywordLower, QuoteStyle: QuotePreserve}
}

// Translate renders a statement. Only ALTER TABLE is supported.
func Translate(stmt ast.Statement, opts Options) (string, error) {
	switch s := stmt.(type) {
	case *ast.AlterTableStatement:
		if s == nil {
			return "", errors.Annotate(ErrUnsupportedStatement, "nil ALTER TABLE statement")
		}
		return Format(s, opts), nil
	default:
		return "", errors.Annotatef(ErrUnsupportedStatement, "%T", stmt)
	}
}

// Format renders an ALTER TABLE statement. Each structural item gets its own
// line; consecutive table options share one line separated by spaces, and
// lines are separated by commas.
func Format(stmt *ast.AlterTableStatement, opts Options) string {
	var sb strings.Builder
	r := newRenderer(&sb, opts)

	r.keyword("ALTER TABLE")
	r.plain(" ")
	r.tableName(stmt.Table)

	for i, item := range stmt.Items {
		switch {
		case i == 0:
			r.plain("\n\t")
		case ast.IsTableOption(item) && ast.IsTableOption(stmt.Items[i-1]):
			r.plain(" ")
		default:
			r.plain(",\n\t")
		}
		r.item(item)
	}

	r.plain(";")
	return sb.String()
}
