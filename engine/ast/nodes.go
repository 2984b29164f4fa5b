package ast

// Node is the interface all AST nodes implement
type Node interface {
	node()
	Pos() int
}

// Statement is a complete SQL statement
type Statement interface {
	Node
	statement()
}

// Identifier is a table, column or index name. Quoted only affects rendering.
type Identifier struct {
	Name   string
	Quoted bool
}

// NewIdentifier returns an unquoted identifier
func NewIdentifier(name string) Identifier {
	return Identifier{Name: name}
}

// TableName is a possibly schema-qualified table reference
type TableName struct {
	Schema *Identifier
	Name   Identifier
}

// AlterTableStatement represents ALTER TABLE with its items in source order
type AlterTableStatement struct {
	Table    TableName
	Items    []AlterTableItem
	Position int
}

func (n *AlterTableStatement) node()      {}
func (n *AlterTableStatement) statement() {}
func (n *AlterTableStatement) Pos() int   { return n.Position }

// AlterTableItem is one clause of an ALTER TABLE statement. The set of
// implementations is closed to this package.
type AlterTableItem interface {
	Node
	alterTableItem()
}

// TableOption is an alter item that sets a table option. Consecutive table
// options may be written without commas between them.
type TableOption interface {
	AlterTableItem
	tableOption()
}

// IsTableOption reports whether item is a table option clause
func IsTableOption(item AlterTableItem) bool {
	_, ok := item.(TableOption)
	return ok
}

// OptionValue is the value of a table option. Quote is 0 for bare words,
// ' or " for string literals. Ident is set for values naming a tablespace
// or engine, which keep their case and quoting.
type OptionValue struct {
	Text  string
	Quote byte
	Ident *Identifier
}

// IsString reports whether the value was written as a string literal
func (v OptionValue) IsString() bool {
	return v.Ident == nil && (v.Quote == '\'' || v.Quote == '"')
}

// StringLiteral is a decoded string with the quote it was written with
type StringLiteral struct {
	Value string
	Quote byte
}

// ============================================================================
// COLUMN ITEMS
// ============================================================================

// ChangeColumn: CHANGE [COLUMN] old new_definition [FIRST | AFTER col]
type ChangeColumn struct {
	OldName  Identifier
	Column   ColumnDefinition
	Position *ColumnPosition
	Offset   int
}

// ModifyColumn: MODIFY [COLUMN] definition [FIRST | AFTER col]
type ModifyColumn struct {
	Column   ColumnDefinition
	Position *ColumnPosition
	Offset   int
}

// AddColumn: ADD [COLUMN] definition [FIRST | AFTER col]
type AddColumn struct {
	Column   ColumnDefinition
	Position *ColumnPosition
	Offset   int
}

// DropColumn: DROP [COLUMN] name
type DropColumn struct {
	Name   Identifier
	Offset int
}

// RenameColumn: RENAME COLUMN old TO new
type RenameColumn struct {
	OldName Identifier
	NewName Identifier
	Offset  int
}

// RenameTable: RENAME [TO | AS] new_table
type RenameTable struct {
	NewName TableName
	Offset  int
}

func (n *ChangeColumn) node()           {}
func (n *ChangeColumn) alterTableItem() {}
func (n *ChangeColumn) Pos() int        { return n.Offset }

func (n *ModifyColumn) node()           {}
func (n *ModifyColumn) alterTableItem() {}
func (n *ModifyColumn) Pos() int        { return n.Offset }

func (n *AddColumn) node()           {}
func (n *AddColumn) alterTableItem() {}
func (n *AddColumn) Pos() int        { return n.Offset }

func (n *DropColumn) node()           {}
func (n *DropColumn) alterTableItem() {}
func (n *DropColumn) Pos() int        { return n.Offset }

func (n *RenameColumn) node()           {}
func (n *RenameColumn) alterTableItem() {}
func (n *RenameColumn) Pos() int        { return n.Offset }

func (n *RenameTable) node()           {}
func (n *RenameTable) alterTableItem() {}
func (n *RenameTable) Pos() int        { return n.Offset }

// ============================================================================
// INDEX ITEMS
// ============================================================================

// IndexKind distinguishes the ADD INDEX family
type IndexKind int

const (
	IndexKindIndex IndexKind = iota
	IndexKindKey
	IndexKindUnique
	IndexKindPrimaryKey
	IndexKindFulltext
)

// String returns the canonical keywords for the kind
func (k IndexKind) String() string {
	switch k {
	case IndexKindKey:
		return "KEY"
	case IndexKindUnique:
		return "UNIQUE INDEX"
	case IndexKindPrimaryKey:
		return "PRIMARY KEY"
	case IndexKindFulltext:
		return "FULLTEXT INDEX"
	default:
		return "INDEX"
	}
}

// SortDirection is the optional ASC/DESC of an index key part
type SortDirection int

const (
	SortNone SortDirection = iota
	SortAsc
	SortDesc
)

func (d SortDirection) String() string {
	switch d {
	case SortAsc:
		return "ASC"
	case SortDesc:
		return "DESC"
	default:
		return ""
	}
}

// IndexColumn is one key part: col[(length)] [ASC | DESC]
type IndexColumn struct {
	Column    Identifier
	Length    *int
	Direction SortDirection
}

// AddIndex: ADD {INDEX | KEY | UNIQUE | PRIMARY KEY | FULLTEXT} [name] (key_part, ...)
type AddIndex struct {
	Kind    IndexKind
	Name    *Identifier
	Columns []IndexColumn
	Offset  int
}

// DropIndex: DROP {INDEX | KEY} name
type DropIndex struct {
	Name   Identifier
	Offset int
}

// DropPrimaryKey: DROP PRIMARY KEY
type DropPrimaryKey struct {
	Offset int
}

func (n *AddIndex) node()           {}
func (n *AddIndex) alterTableItem() {}
func (n *AddIndex) Pos() int        { return n.Offset }

func (n *DropIndex) node()           {}
func (n *DropIndex) alterTableItem() {}
func (n *DropIndex) Pos() int        { return n.Offset }

func (n *DropPrimaryKey) node()           {}
func (n *DropPrimaryKey) alterTableItem() {}
func (n *DropPrimaryKey) Pos() int        { return n.Offset }

// ============================================================================
// TABLE OPTIONS
// ============================================================================

// CharsetSpelling records which synonym introduced a character set clause
type CharsetSpelling int

const (
	SpellingCharacterSet CharsetSpelling = iota
	SpellingCharset
)

// ConvertCharset: CONVERT TO CHARACTER SET cs [COLLATE coll]
type ConvertCharset struct {
	Charset   OptionValue
	Collation *OptionValue
	Offset    int
}

// SetEngine: ENGINE [=] name
type SetEngine struct {
	Engine OptionValue
	Offset int
}

// SetCharacterSet: [DEFAULT] {CHARACTER SET | CHARSET} [=] cs [COLLATE [=] coll]
type SetCharacterSet struct {
	Charset         OptionValue
	Collation       *OptionValue
	HadDefault      bool
	CharsetSpelling CharsetSpelling
	Offset          int
}

// SetCollate: [DEFAULT] COLLATE [=] coll
type SetCollate struct {
	Collation  OptionValue
	HadDefault bool
	Offset     int
}

// SetComment: COMMENT [=] 'text'
type SetComment struct {
	Comment StringLiteral
	Offset  int
}

// SetTableOption is any other KEY [=] value table option (PACK_KEYS, ROW_FORMAT, ...)
type SetTableOption struct {
	Key    string
	Value  OptionValue
	Offset int
}

func (n *ConvertCharset) node()           {}
func (n *ConvertCharset) alterTableItem() {}
func (n *ConvertCharset) Pos() int        { return n.Offset }

func (n *SetEngine) node()           {}
func (n *SetEngine) alterTableItem() {}
func (n *SetEngine) tableOption()    {}
func (n *SetEngine) Pos() int        { return n.Offset }

func (n *SetCharacterSet) node()           {}
func (n *SetCharacterSet) alterTableItem() {}
func (n *SetCharacterSet) tableOption()    {}
func (n *SetCharacterSet) Pos() int        { return n.Offset }

func (n *SetCollate) node()           {}
func (n *SetCollate) alterTableItem() {}
func (n *SetCollate) tableOption()    {}
func (n *SetCollate) Pos() int        { return n.Offset }

func (n *SetComment) node()           {}
func (n *SetComment) alterTableItem() {}
func (n *SetComment) tableOption()    {}
func (n *SetComment) Pos() int        { return n.Offset }

func (n *SetTableOption) node()           {}
func (n *SetTableOption) alterTableItem() {}
func (n *SetTableOption) tableOption()    {}
func (n *SetTableOption) Pos() int        { return n.Offset }
