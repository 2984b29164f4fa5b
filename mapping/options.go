package mapping

// OptionValueType describes what a table option accepts after its (optional) '='
type OptionValueType string

const (
	OptionNumber OptionValueType = "NUMBER" // AUTO_INCREMENT = 10
	OptionString OptionValueType = "STRING" // PASSWORD = 'secret'
	OptionWord   OptionValueType = "WORD"   // ROW_FORMAT = DYNAMIC (one keyword)
	OptionAny    OptionValueType = "ANY"    // PACK_KEYS = Pack All (words, numbers or one string)
	OptionIdent  OptionValueType = "IDENT"  // TABLESPACE = `ts1` (a case-sensitive name)
)

// TableOptionDefinition defines one generic table option
type TableOptionDefinition struct {
	Name      string          // Canonical key, upper case
	ValueType OptionValueType // Accepted value shape
	Dialects  []string        // Dialects accepting the key; empty means all
	Bare      bool            // Written without '=' (STORAGE DISK)
}

// TableOptions lists the generic key = value table options. ENGINE, CHARACTER
// SET, COLLATE and COMMENT have dedicated grammar and are not listed here.
var TableOptions = map[string]TableOptionDefinition{
	"AUTO_INCREMENT":     {Name: "AUTO_INCREMENT", ValueType: OptionNumber},
	"AVG_ROW_LENGTH":     {Name: "AVG_ROW_LENGTH", ValueType: OptionNumber},
	"CHECKSUM":           {Name: "CHECKSUM", ValueType: OptionNumber},
	"COMPRESSION":        {Name: "COMPRESSION", ValueType: OptionString},
	"CONNECTION":         {Name: "CONNECTION", ValueType: OptionString},
	"DELAY_KEY_WRITE":    {Name: "DELAY_KEY_WRITE", ValueType: OptionNumber},
	"ENCRYPTION":         {Name: "ENCRYPTION", ValueType: OptionString},
	"INSERT_METHOD":      {Name: "INSERT_METHOD", ValueType: OptionWord},
	"KEY_BLOCK_SIZE":     {Name: "KEY_BLOCK_SIZE", ValueType: OptionNumber},
	"MAX_ROWS":           {Name: "MAX_ROWS", ValueType: OptionNumber},
	"MIN_ROWS":           {Name: "MIN_ROWS", ValueType: OptionNumber},
	"PACK_KEYS":          {Name: "PACK_KEYS", ValueType: OptionAny},
	"PASSWORD":           {Name: "PASSWORD", ValueType: OptionString},
	"ROW_FORMAT":         {Name: "ROW_FORMAT", ValueType: OptionWord},
	"STATS_AUTO_RECALC":  {Name: "STATS_AUTO_RECALC", ValueType: OptionAny},
	"STATS_PERSISTENT":   {Name: "STATS_PERSISTENT", ValueType: OptionAny},
	"STATS_SAMPLE_PAGES": {Name: "STATS_SAMPLE_PAGES", ValueType: OptionAny},
	"TABLESPACE":         {Name: "TABLESPACE", ValueType: OptionIdent},

	// ALTER TABLE algorithm/lock clauses share the key = value shape
	"ALGORITHM": {Name: "ALGORITHM", ValueType: OptionWord},
	"LOCK":      {Name: "LOCK", ValueType: OptionWord},

	// MySQL only
	"AUTOEXTEND_SIZE":  {Name: "AUTOEXTEND_SIZE", ValueType: OptionAny, Dialects: []string{"mysql"}},
	"ENGINE_ATTRIBUTE": {Name: "ENGINE_ATTRIBUTE", ValueType: OptionString, Dialects: []string{"mysql"}},
	"SECONDARY_ENGINE": {Name: "SECONDARY_ENGINE", ValueType: OptionIdent, Dialects: []string{"mysql"}},
	"STORAGE":          {Name: "STORAGE", ValueType: OptionWord, Dialects: []string{"mysql"}, Bare: true},

	// MariaDB only
	"PAGE_CHECKSUM":          {Name: "PAGE_CHECKSUM", ValueType: OptionNumber, Dialects: []string{"mariadb"}},
	"PAGE_COMPRESSED":        {Name: "PAGE_COMPRESSED", ValueType: OptionNumber, Dialects: []string{"mariadb"}},
	"PAGE_COMPRESSION_LEVEL": {Name: "PAGE_COMPRESSION_LEVEL", ValueType: OptionNumber, Dialects: []string{"mariadb"}},
	"TRANSACTIONAL":          {Name: "TRANSACTIONAL", ValueType: OptionNumber, Dialects: []string{"mariadb"}},
	"IETF_QUOTES":            {Name: "IETF_QUOTES", ValueType: OptionWord, Dialects: []string{"mariadb"}},

	// TiDB only
	"SHARD_ROW_ID_BITS": {Name: "SHARD_ROW_ID_BITS", ValueType: OptionNumber, Dialects: []string{"tidb"}},
	"PRE_SPLIT_REGIONS": {Name: "PRE_SPLIT_REGIONS", ValueType: OptionNumber, Dialects: []string{"tidb"}},
	"AUTO_ID_CACHE":     {Name: "AUTO_ID_CACHE", ValueType: OptionNumber, Dialects: []string{"tidb"}},
	"AUTO_RANDOM_BASE":  {Name: "AUTO_RANDOM_BASE", ValueType: OptionNumber, Dialects: []string{"tidb"}},
	"TTL_ENABLE":        {Name: "TTL_ENABLE", ValueType: OptionString, Dialects: []string{"tidb"}},
}

// DedicatedOptionStarts are the leading keywords of table options that have
// their own AST variant.
var DedicatedOptionStarts = []string{
	"ENGINE", "CHARACTER", "CHARSET", "COLLATE", "COMMENT", "DEFAULT",
}

// ============================================================================
// HELPER FUNCTIONS
// ============================================================================

// TableOptionsByDialect - reverse mapping built from TableOptions
var TableOptionsByDialect map[string]map[string]TableOptionDefinition

func init() {
	TableOptionsByDialect = make(map[string]map[string]TableOptionDefinition)

	for _, dialect := range SupportedDialects {
		TableOptionsByDialect[dialect] = make(map[string]TableOptionDefinition)
	}
	for key, def := range TableOptions {
		if len(def.Dialects) == 0 {
			for _, dialect := range SupportedDialects {
				TableOptionsByDialect[dialect][key] = def
			}
			continue
		}
		for _, dialect := range def.Dialects {
			TableOptionsByDialect[dialect][key] = def
		}
	}
}

// GetTableOptionsForDialect returns the generic table options a dialect accepts
func GetTableOptionsForDialect(dialect string) map[string]TableOptionDefinition {
	return TableOptionsByDialect[dialect]
}
