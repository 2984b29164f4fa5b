package mapping

// ============================================================================
// RESERVED WORDS
// ============================================================================
//
// A reserved word cannot appear as a bare identifier; the formatter quotes it
// and the parser refuses it where an unquoted name is ambiguous (ADD <name>).
// Only the words the ALTER TABLE grammar can collide with are listed, grouped
// by which dialects reserve them.

// CommonReserved is reserved in every dialect of the MySQL family.
var CommonReserved = []string{
	"ADD", "ALL", "ALTER", "ANALYZE", "AND", "AS", "ASC", "BEFORE", "BETWEEN",
	"BIGINT", "BINARY", "BLOB", "BOTH", "BY", "CALL", "CASCADE", "CASE",
	"CHANGE", "CHAR", "CHARACTER", "CHECK", "COLLATE", "COLUMN", "CONDITION",
	"CONSTRAINT", "CONTINUE", "CONVERT", "CREATE", "CROSS", "CURRENT_DATE",
	"CURRENT_TIME", "CURRENT_TIMESTAMP", "CURRENT_USER", "CURSOR", "DATABASE",
	"DATABASES", "DAY_HOUR", "DAY_MINUTE", "DAY_SECOND", "DEC", "DECIMAL",
	"DECLARE", "DEFAULT", "DELAYED", "DELETE", "DESC", "DESCRIBE",
	"DETERMINISTIC", "DISTINCT", "DISTINCTROW", "DIV", "DOUBLE", "DROP",
	"DUAL", "EACH", "ELSE", "ELSEIF", "ENCLOSED", "ESCAPED", "EXISTS", "EXIT",
	"EXPLAIN", "FALSE", "FETCH", "FLOAT", "FOR", "FORCE", "FOREIGN", "FROM",
	"FULLTEXT", "GRANT", "GROUP", "HAVING", "HIGH_PRIORITY", "IF", "IGNORE",
	"IN", "INDEX", "INFILE", "INNER", "INOUT", "INSERT", "INT", "INTEGER",
	"INTERVAL", "INTO", "IS", "ITERATE", "JOIN", "KEY", "KEYS", "KILL",
	"LEADING", "LEAVE", "LEFT", "LIKE", "LIMIT", "LINES", "LOAD", "LOCALTIME",
	"LOCALTIMESTAMP", "LOCK", "LONG", "LONGBLOB", "LONGTEXT", "LOOP",
	"LOW_PRIORITY", "MATCH", "MEDIUMBLOB", "MEDIUMINT", "MEDIUMTEXT", "MOD",
	"NATURAL", "NOT", "NULL", "NUMERIC", "ON", "OPTIMIZE", "OPTION",
	"OPTIONALLY", "OR", "ORDER", "OUT", "OUTER", "OUTFILE", "PARTITION",
	"PRECISION", "PRIMARY", "PROCEDURE", "RANGE", "READ", "REAL", "REFERENCES",
	"REGEXP", "RENAME", "REPEAT", "REPLACE", "REQUIRE", "RESTRICT", "RETURN",
	"REVOKE", "RIGHT", "RLIKE", "SCHEMA", "SCHEMAS", "SELECT", "SET", "SHOW",
	"SMALLINT", "SPATIAL", "SQL", "STARTING", "TABLE", "TERMINATED", "THEN",
	"TINYBLOB", "TINYINT", "TINYTEXT", "TO", "TRAILING", "TRIGGER", "TRUE",
	"UNION", "UNIQUE", "UNLOCK", "UNSIGNED", "UPDATE", "USAGE", "USE", "USING",
	"VALUES", "VARBINARY", "VARCHAR", "VARYING", "WHEN", "WHERE", "WHILE",
	"WITH", "WRITE", "XOR", "YEAR_MONTH", "ZEROFILL",
}

// MySQLReserved is reserved by MySQL 8.0 but not by the other dialects.
var MySQLReserved = []string{
	"CUME_DIST", "DENSE_RANK", "EMPTY", "FIRST_VALUE", "GROUPING", "GROUPS",
	"JSON_TABLE", "LAG", "LAST_VALUE", "LATERAL", "LEAD", "NTH_VALUE", "NTILE",
	"OF", "OVER", "PERCENT_RANK", "RANK", "RECURSIVE", "ROW", "ROWS",
	"ROW_NUMBER", "SYSTEM", "WINDOW",
}

// MariaDBReserved is reserved by MariaDB only.
var MariaDBReserved = []string{
	"OFFSET", "RETURNING", "ROWNUM",
}

// TiDBReserved is reserved by TiDB only, on top of the MySQL 8.0 words it
// inherits.
var TiDBReserved = []string{
	"TABLESAMPLE", "TIDB_CURRENT_TSO", "ARRAY",
}
