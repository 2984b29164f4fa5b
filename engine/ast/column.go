package ast

// ColumnDefinition is name, data type and attributes in source order
type ColumnDefinition struct {
	Name       Identifier
	Type       DataType
	Attributes []ColumnAttribute
}

// DataType is a column type. Params hold rendered text: numbers, or quoted
// string literals for ENUM and SET.
type DataType struct {
	Name     string
	Params   []string
	Unsigned bool
	Zerofill bool
}

// ColumnPosition is FIRST or AFTER col
type ColumnPosition struct {
	First bool
	After *Identifier
}

// LiteralKind classifies a DEFAULT or ON UPDATE value
type LiteralKind int

const (
	LiteralNull LiteralKind = iota
	LiteralString
	LiteralNumber
	LiteralBool
	LiteralKeyword // CURRENT_TIMESTAMP, CURRENT_TIMESTAMP(6), NOW()
	LiteralHex     // x'1F', 0x1F as written
	LiteralBit     // b'01', 0b01 as written
)

// Literal is a constant in a column attribute
type Literal struct {
	Kind     LiteralKind
	Text     string
	Quote    byte
	Negative bool
}

// ColumnAttribute is one attribute following a column's data type
type ColumnAttribute interface {
	columnAttribute()
}

// NullAttr: NULL or NOT NULL
type NullAttr struct {
	NotNull bool
}

// DefaultAttr: DEFAULT literal
type DefaultAttr struct {
	Value Literal
}

// AutoIncrementAttr: AUTO_INCREMENT
type AutoIncrementAttr struct{}

// CommentAttr: COMMENT 'text'
type CommentAttr struct {
	Comment StringLiteral
}

// CharsetAttr: CHARACTER SET cs
type CharsetAttr struct {
	Charset OptionValue
}

// CollateAttr: COLLATE coll
type CollateAttr struct {
	Collation OptionValue
}

// OnUpdateAttr: ON UPDATE CURRENT_TIMESTAMP
type OnUpdateAttr struct {
	Value Literal
}

// KeyAttr: PRIMARY KEY, or UNIQUE [KEY] when Primary is false
type KeyAttr struct {
	Primary bool
}

func (*NullAttr) columnAttribute()          {}
func (*DefaultAttr) columnAttribute()       {}
func (*AutoIncrementAttr) columnAttribute() {}
func (*CommentAttr) columnAttribute()       {}
func (*CharsetAttr) columnAttribute()       {}
func (*CollateAttr) columnAttribute()       {}
func (*OnUpdateAttr) columnAttribute()      {}
func (*KeyAttr) columnAttribute()           {}
