// Package dialect describes the SQL dialects of the MySQL family that the
// lexer, parser and translator are parameterized by.
//
// A Dialect is an immutable value: its keyword, table-option and data-type
// sets are built once from the mapping tables at package init and only read
// afterwards, so descriptors may be shared freely between goroutines.
package dialect

import (
	"strings"

	"github.com/pingcap/errors"

	"github.com/omniql-engine/altersql/mapping"
)

// ErrUnknownDialect is returned by Lookup for names outside mapping.SupportedDialects.
var ErrUnknownDialect = errors.New("unknown dialect")

// Dialect identifies a dialect's keyword set, identifier quote and literal rules.
type Dialect struct {
	// Name is the canonical lower-case dialect name.
	Name string
	// Family groups dialects sharing one grammar.
	Family string
	// IdentQuote delimits quoted identifiers: '`', or '"' under ANSI_QUOTES.
	IdentQuote byte
	// ANSIQuotes makes double quotes delimit identifiers instead of strings.
	ANSIQuotes bool

	reserved map[string]struct{}
	options  map[string]mapping.TableOptionDefinition
}

var (
	// MySQL is the MySQL 8.0 dialect.
	MySQL = newDialect("mysql", mapping.MySQLReserved)
	// MariaDB shares MySQL's grammar with its own reserved words and options.
	MariaDB = newDialect("mariadb", mapping.MariaDBReserved)
	// TiDB speaks the MySQL protocol and grammar with TiDB table options.
	TiDB = newDialect("tidb", mapping.MySQLReserved, mapping.TiDBReserved)
)

var registry = map[string]*Dialect{
	MySQL.Name:   MySQL,
	MariaDB.Name: MariaDB,
	TiDB.Name:    TiDB,
}

func newDialect(name string, extraReserved ...[]string) *Dialect {
	d := &Dialect{
		Name:       name,
		Family:     "mysql",
		IdentQuote: '`',
		reserved:   make(map[string]struct{}),
		options:    mapping.GetTableOptionsForDialect(name),
	}
	for _, w := range mapping.CommonReserved {
		d.reserved[w] = struct{}{}
	}
	for _, words := range extraReserved {
		for _, w := range words {
			d.reserved[w] = struct{}{}
		}
	}
	return d
}

// Lookup returns the registered dialect for a case-insensitive name or alias.
func Lookup(name string) (*Dialect, error) {
	canonical, ok := mapping.DialectAliases[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, errors.Annotatef(ErrUnknownDialect, "%q (supported: %s)", name, strings.Join(mapping.SupportedDialects, ", "))
	}
	return registry[canonical], nil
}

// MustLookup is like Lookup but panics on unknown names. Intended for tests
// and package-level variables.
func MustLookup(name string) *Dialect {
	d, err := Lookup(name)
	if err != nil {
		panic(err)
	}
	return d
}

// WithANSIQuotes returns a copy of d where double quotes delimit identifiers.
// The keyword and option tables are shared with d; they are never mutated.
func (d *Dialect) WithANSIQuotes() *Dialect {
	c := *d
	c.ANSIQuotes = true
	c.IdentQuote = '"'
	return &c
}

// String returns the dialect name, suffixed when ANSI_QUOTES is on.
func (d *Dialect) String() string {
	if d.ANSIQuotes {
		return d.Name + "+ansi_quotes"
	}
	return d.Name
}

// SameGrammar reports whether d and other parse the same grammar family.
func (d *Dialect) SameGrammar(other *Dialect) bool {
	return other != nil && d.Family == other.Family
}

// IsReserved reports whether word (any case) must be quoted as an identifier.
func (d *Dialect) IsReserved(word string) bool {
	_, ok := d.reserved[strings.ToUpper(word)]
	return ok
}

// TableOption returns the generic table option definition for key (any case).
func (d *Dialect) TableOption(key string) (mapping.TableOptionDefinition, bool) {
	def, ok := d.options[strings.ToUpper(key)]
	return def, ok
}

// IsTableOption reports whether word can start a table option in this
// dialect, either a generic key or one with dedicated grammar.
func (d *Dialect) IsTableOption(word string) bool {
	upper := strings.ToUpper(word)
	if _, ok := d.options[upper]; ok {
		return true
	}
	for _, start := range mapping.DedicatedOptionStarts {
		if upper == start {
			return true
		}
	}
	return false
}

// TableOptionNames returns the generic option keys the dialect accepts.
func (d *Dialect) TableOptionNames() []string {
	names := make([]string, 0, len(d.options))
	for name := range d.options {
		names = append(names, name)
	}
	return names
}

// LookupType resolves an upper-case data type name for this dialect.
func (d *Dialect) LookupType(name string) (mapping.DataTypeDefinition, bool) {
	return mapping.LookupType(name, d.Name)
}

// QuoteIdent wraps name in the dialect's identifier quote, doubling any
// embedded quote character.
func (d *Dialect) QuoteIdent(name string) string {
	q := string(d.IdentQuote)
	return q + strings.ReplaceAll(name, q, q+q) + q
}
