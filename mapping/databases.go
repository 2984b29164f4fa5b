package mapping

// SupportedDialects lists the dialect names the parser and formatter accept.
// All of them share the MySQL grammar family.
var SupportedDialects = []string{
	"mysql",
	"mariadb",
	"tidb",
}

// DialectAliases maps alternative spellings to a canonical dialect name.
var DialectAliases = map[string]string{
	"mysql":   "mysql",
	"mariadb": "mariadb",
	"maria":   "mariadb",
	"tidb":    "tidb",
}
