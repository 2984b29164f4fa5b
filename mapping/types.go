package mapping

// DataTypeDefinition describes a column data type name
type DataTypeDefinition struct {
	Name     string   // Canonical upper-case spelling
	Params   bool     // Accepts a parenthesized parameter list
	Strings  bool     // Parameters are string literals (ENUM, SET)
	Dialects []string // Dialects accepting the type; empty means all
}

// TypeMap - data types of the MySQL family keyed by upper-case name.
// Multi-word names are keyed with a single space.
var TypeMap = map[string]DataTypeDefinition{
	// Numeric Types
	"BIT":              {Name: "BIT", Params: true},
	"BOOL":             {Name: "BOOL"},
	"BOOLEAN":          {Name: "BOOLEAN"},
	"TINYINT":          {Name: "TINYINT", Params: true},
	"SMALLINT":         {Name: "SMALLINT", Params: true},
	"MEDIUMINT":        {Name: "MEDIUMINT", Params: true},
	"INT":              {Name: "INT", Params: true},
	"INTEGER":          {Name: "INTEGER", Params: true},
	"BIGINT":           {Name: "BIGINT", Params: true},
	"DECIMAL":          {Name: "DECIMAL", Params: true},
	"DEC":              {Name: "DEC", Params: true},
	"NUMERIC":          {Name: "NUMERIC", Params: true},
	"FIXED":            {Name: "FIXED", Params: true},
	"FLOAT":            {Name: "FLOAT", Params: true},
	"DOUBLE":           {Name: "DOUBLE", Params: true},
	"DOUBLE PRECISION": {Name: "DOUBLE PRECISION", Params: true},
	"REAL":             {Name: "REAL", Params: true},
	"SERIAL":           {Name: "SERIAL"},

	// Date/Time Types
	"DATE":      {Name: "DATE"},
	"DATETIME":  {Name: "DATETIME", Params: true},
	"TIMESTAMP": {Name: "TIMESTAMP", Params: true},
	"TIME":      {Name: "TIME", Params: true},
	"YEAR":      {Name: "YEAR", Params: true},

	// String Types
	"CHAR":              {Name: "CHAR", Params: true},
	"NCHAR":             {Name: "NCHAR", Params: true},
	"NATIONAL CHAR":     {Name: "NATIONAL CHAR", Params: true},
	"VARCHAR":           {Name: "VARCHAR", Params: true},
	"NVARCHAR":          {Name: "NVARCHAR", Params: true},
	"NATIONAL VARCHAR":  {Name: "NATIONAL VARCHAR", Params: true},
	"CHARACTER VARYING": {Name: "CHARACTER VARYING", Params: true},
	"BINARY":            {Name: "BINARY", Params: true},
	"VARBINARY":         {Name: "VARBINARY", Params: true},
	"TINYBLOB":          {Name: "TINYBLOB"},
	"BLOB":              {Name: "BLOB", Params: true},
	"MEDIUMBLOB":        {Name: "MEDIUMBLOB"},
	"LONGBLOB":          {Name: "LONGBLOB"},
	"TINYTEXT":          {Name: "TINYTEXT"},
	"TEXT":              {Name: "TEXT", Params: true},
	"MEDIUMTEXT":        {Name: "MEDIUMTEXT"},
	"LONGTEXT":          {Name: "LONGTEXT"},
	"LONG VARCHAR":      {Name: "LONG VARCHAR"},
	"ENUM":              {Name: "ENUM", Params: true, Strings: true},
	"SET":               {Name: "SET", Params: true, Strings: true},

	// JSON / spatial
	"JSON":               {Name: "JSON"},
	"GEOMETRY":           {Name: "GEOMETRY"},
	"POINT":              {Name: "POINT"},
	"LINESTRING":         {Name: "LINESTRING"},
	"POLYGON":            {Name: "POLYGON"},
	"MULTIPOINT":         {Name: "MULTIPOINT"},
	"MULTILINESTRING":    {Name: "MULTILINESTRING"},
	"MULTIPOLYGON":       {Name: "MULTIPOLYGON"},
	"GEOMETRYCOLLECTION": {Name: "GEOMETRYCOLLECTION"},

	// MariaDB only
	"INET4": {Name: "INET4", Dialects: []string{"mariadb"}},
	"INET6": {Name: "INET6", Dialects: []string{"mariadb"}},
	"UUID":  {Name: "UUID", Dialects: []string{"mariadb"}},

	// MySQL 9 vector type, also accepted by TiDB
	"VECTOR": {Name: "VECTOR", Params: true, Dialects: []string{"mysql", "tidb"}},
}

// LookupType returns the data type definition for an upper-case name if the
// dialect accepts it
func LookupType(name, dialect string) (DataTypeDefinition, bool) {
	def, ok := TypeMap[name]
	if !ok {
		return DataTypeDefinition{}, false
	}
	if len(def.Dialects) == 0 {
		return def, true
	}
	for _, d := range def.Dialects {
		if d == dialect {
			return def, true
		}
	}
	return DataTypeDefinition{}, false
}

// IsTypePrefix reports whether name is the first word of a multi-word type
func IsTypePrefix(name string) bool {
	for key := range TypeMap {
		if len(key) > len(name) && key[:len(name)] == name && key[len(name)] == ' ' {
			return true
		}
	}
	return false
}
