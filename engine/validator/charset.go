package validator

import (
	"strings"

	"github.com/pingcap/errors"
	"github.com/pingcap/tidb/parser/charset"
	"go.uber.org/multierr"

	"github.com/omniql-engine/altersql/engine/ast"
)

// CheckCharsets reports unknown character sets and collations, and
// collations that do not belong to the character set they are paired with.
// The check is advisory: names come from TiDB's charset tables. All problems
// are combined into one error; multierr.Errors splits them.
func CheckCharsets(stmt *ast.AlterTableStatement) error {
	var errs error
	for _, item := range stmt.Items {
		switch n := item.(type) {
		case *ast.SetCharacterSet:
			errs = multierr.Append(errs, checkPair(n.Pos(), &n.Charset, n.Collation))
		case *ast.ConvertCharset:
			errs = multierr.Append(errs, checkPair(n.Pos(), &n.Charset, n.Collation))
		case *ast.SetCollate:
			errs = multierr.Append(errs, checkPair(n.Pos(), nil, &n.Collation))
		case *ast.ChangeColumn:
			errs = multierr.Append(errs, checkColumn(n.Pos(), n.Column))
		case *ast.ModifyColumn:
			errs = multierr.Append(errs, checkColumn(n.Pos(), n.Column))
		case *ast.AddColumn:
			errs = multierr.Append(errs, checkColumn(n.Pos(), n.Column))
		}
	}
	return errs
}

func checkColumn(pos int, col ast.ColumnDefinition) error {
	var cs, coll *ast.OptionValue
	for _, attr := range col.Attributes {
		switch a := attr.(type) {
		case *ast.CharsetAttr:
			cs = &a.Charset
		case *ast.CollateAttr:
			coll = &a.Collation
		}
	}
	if cs == nil && coll == nil {
		return nil
	}
	return checkPair(pos, cs, coll)
}

func checkPair(pos int, cs, coll *ast.OptionValue) error {
	var csName string
	if cs != nil {
		csName = strings.ToLower(cs.Text)
		// DEFAULT stands for the schema character set
		if csName != "default" {
			if _, err := charset.GetCharsetInfo(csName); err != nil {
				return errors.Errorf("offset %d: unknown character set %q", pos, cs.Text)
			}
		}
	}
	if coll == nil {
		return nil
	}

	c, err := charset.GetCollationByName(strings.ToLower(coll.Text))
	if err != nil {
		return errors.Errorf("offset %d: unknown collation %q", pos, coll.Text)
	}
	if csName != "" && csName != "default" && !strings.EqualFold(c.CharsetName, csName) {
		return errors.Errorf("offset %d: collation %q is not valid for character set %q", pos, coll.Text, cs.Text)
	}
	return nil
}
