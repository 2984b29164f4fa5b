package ast

import "strings"

// Normalize returns a copy of stmt with spelling-only differences removed:
// DEFAULT and CHARSET markers are cleared, and a character set without a
// collation directly followed by a COLLATE option becomes one item. Both
// forms render to the same text.
func Normalize(stmt *AlterTableStatement) *AlterTableStatement {
	if stmt == nil {
		return nil
	}
	out := &AlterTableStatement{
		Table:    stmt.Table,
		Position: stmt.Position,
		Items:    make([]AlterTableItem, 0, len(stmt.Items)),
	}

	for i := 0; i < len(stmt.Items); i++ {
		switch item := stmt.Items[i].(type) {
		case *SetCharacterSet:
			cs := *item
			cs.HadDefault = false
			cs.CharsetSpelling = SpellingCharacterSet
			if cs.Collation == nil && i+1 < len(stmt.Items) {
				if next, ok := stmt.Items[i+1].(*SetCollate); ok {
					coll := next.Collation
					cs.Collation = &coll
					i++
				}
			}
			out.Items = append(out.Items, &cs)
		case *SetCollate:
			c := *item
			c.HadDefault = false
			out.Items = append(out.Items, &c)
		default:
			out.Items = append(out.Items, item)
		}
	}
	return out
}

// Equal reports whether a and b have the same structure after Normalize.
// Identifier quoting and case are ignored, as are the case of bare option
// values and the quote character of string literals.
func Equal(a, b *AlterTableStatement) bool {
	if a == nil || b == nil {
		return a == b
	}
	a, b = Normalize(a), Normalize(b)

	if !tableNameEqual(a.Table, b.Table) || len(a.Items) != len(b.Items) {
		return false
	}
	for i := range a.Items {
		if !ItemEqual(a.Items[i], b.Items[i]) {
			return false
		}
	}
	return true
}

// ItemEqual compares two alter items without normalizing them
func ItemEqual(a, b AlterTableItem) bool {
	switch x := a.(type) {
	case *ChangeColumn:
		y, ok := b.(*ChangeColumn)
		return ok && identEqual(x.OldName, y.OldName) && columnEqual(x.Column, y.Column) && positionEqual(x.Position, y.Position)
	case *ModifyColumn:
		y, ok := b.(*ModifyColumn)
		return ok && columnEqual(x.Column, y.Column) && positionEqual(x.Position, y.Position)
	case *AddColumn:
		y, ok := b.(*AddColumn)
		return ok && columnEqual(x.Column, y.Column) && positionEqual(x.Position, y.Position)
	case *DropColumn:
		y, ok := b.(*DropColumn)
		return ok && identEqual(x.Name, y.Name)
	case *RenameColumn:
		y, ok := b.(*RenameColumn)
		return ok && identEqual(x.OldName, y.OldName) && identEqual(x.NewName, y.NewName)
	case *RenameTable:
		y, ok := b.(*RenameTable)
		return ok && tableNameEqual(x.NewName, y.NewName)
	case *AddIndex:
		y, ok := b.(*AddIndex)
		return ok && x.Kind == y.Kind && optIdentEqual(x.Name, y.Name) && indexColumnsEqual(x.Columns, y.Columns)
	case *DropIndex:
		y, ok := b.(*DropIndex)
		return ok && identEqual(x.Name, y.Name)
	case *DropPrimaryKey:
		_, ok := b.(*DropPrimaryKey)
		return ok
	case *ConvertCharset:
		y, ok := b.(*ConvertCharset)
		return ok && valueEqual(x.Charset, y.Charset) && optValueEqual(x.Collation, y.Collation)
	case *SetEngine:
		y, ok := b.(*SetEngine)
		return ok && valueEqual(x.Engine, y.Engine)
	case *SetCharacterSet:
		y, ok := b.(*SetCharacterSet)
		return ok && valueEqual(x.Charset, y.Charset) && optValueEqual(x.Collation, y.Collation) &&
			x.HadDefault == y.HadDefault && x.CharsetSpelling == y.CharsetSpelling
	case *SetCollate:
		y, ok := b.(*SetCollate)
		return ok && valueEqual(x.Collation, y.Collation) && x.HadDefault == y.HadDefault
	case *SetComment:
		y, ok := b.(*SetComment)
		return ok && x.Comment.Value == y.Comment.Value
	case *SetTableOption:
		y, ok := b.(*SetTableOption)
		return ok && strings.EqualFold(x.Key, y.Key) && valueEqual(x.Value, y.Value)
	}
	return false
}

// ============================================================================
// HELPERS
// ============================================================================

func identEqual(a, b Identifier) bool {
	return strings.EqualFold(a.Name, b.Name)
}

func optIdentEqual(a, b *Identifier) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return identEqual(*a, *b)
}

func tableNameEqual(a, b TableName) bool {
	return optIdentEqual(a.Schema, b.Schema) && identEqual(a.Name, b.Name)
}

func valueEqual(a, b OptionValue) bool {
	if a.Ident != nil || b.Ident != nil {
		return a.Ident != nil && b.Ident != nil && a.Ident.Name == b.Ident.Name
	}
	if a.IsString() != b.IsString() {
		return false
	}
	if a.IsString() {
		return a.Text == b.Text
	}
	return strings.EqualFold(a.Text, b.Text)
}

func optValueEqual(a, b *OptionValue) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return valueEqual(*a, *b)
}

func positionEqual(a, b *ColumnPosition) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.First == b.First && optIdentEqual(a.After, b.After)
}

func indexColumnsEqual(a, b []IndexColumn) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !identEqual(a[i].Column, b[i].Column) || a[i].Direction != b[i].Direction {
			return false
		}
		if (a[i].Length == nil) != (b[i].Length == nil) {
			return false
		}
		if a[i].Length != nil && *a[i].Length != *b[i].Length {
			return false
		}
	}
	return true
}

func columnEqual(a, b ColumnDefinition) bool {
	if !identEqual(a.Name, b.Name) || !dataTypeEqual(a.Type, b.Type) {
		return false
	}
	if len(a.Attributes) != len(b.Attributes) {
		return false
	}
	for i := range a.Attributes {
		if !attributeEqual(a.Attributes[i], b.Attributes[i]) {
			return false
		}
	}
	return true
}

func dataTypeEqual(a, b DataType) bool {
	if !strings.EqualFold(a.Name, b.Name) || a.Unsigned != b.Unsigned || a.Zerofill != b.Zerofill {
		return false
	}
	if len(a.Params) != len(b.Params) {
		return false
	}
	for i := range a.Params {
		if a.Params[i] != b.Params[i] {
			return false
		}
	}
	return true
}

func attributeEqual(a, b ColumnAttribute) bool {
	switch x := a.(type) {
	case *NullAttr:
		y, ok := b.(*NullAttr)
		return ok && x.NotNull == y.NotNull
	case *DefaultAttr:
		y, ok := b.(*DefaultAttr)
		return ok && literalEqual(x.Value, y.Value)
	case *AutoIncrementAttr:
		_, ok := b.(*AutoIncrementAttr)
		return ok
	case *CommentAttr:
		y, ok := b.(*CommentAttr)
		return ok && x.Comment.Value == y.Comment.Value
	case *CharsetAttr:
		y, ok := b.(*CharsetAttr)
		return ok && valueEqual(x.Charset, y.Charset)
	case *CollateAttr:
		y, ok := b.(*CollateAttr)
		return ok && valueEqual(x.Collation, y.Collation)
	case *OnUpdateAttr:
		y, ok := b.(*OnUpdateAttr)
		return ok && literalEqual(x.Value, y.Value)
	case *KeyAttr:
		y, ok := b.(*KeyAttr)
		return ok && x.Primary == y.Primary
	}
	return false
}

func literalEqual(a, b Literal) bool {
	if a.Kind != b.Kind || a.Negative != b.Negative {
		return false
	}
	if a.Kind == LiteralString {
		return a.Text == b.Text
	}
	// x'1F' and X'1f' are the same bytes
	return strings.EqualFold(a.Text, b.Text)
}
