package ddcg

import (
	"github.com/oisee/ddcg/pkg/ast"
	"github.com/oisee/ddcg/pkg/diag"
	"github.com/oisee/ddcg/pkg/dialect"
)

// cgIf lowers (if p c) and (if p c a) per spec.md §4.8. The predicate is
// always routed through ZFLAG (letting any form serve as a predicate via
// CgForm's re-routing fixup) and the consequent/alternate always target
// the canonical register: `if` appears only in statement/tail position
// in this language, never as a binary-operator operand, so there is no
// case in a valid program where a non-canonical dd would need honoring
// here. dd is accepted by the dispatcher but not threaded through.
func (c *Compiler) cgIf(args []*ast.Node, cd dialect.CD) error {
	if len(args) < 2 || len(args) > 3 {
		return diag.At("if", diag.ErrUnsupportedForm)
	}
	pred, conseq := args[0], args[1]
	canonical := c.Dialect.Canonical

	if len(args) == 2 {
		if cd.Kind == dialect.Ret {
			if err := c.CgForm(pred, dialect.ZFlag, dialect.CondCD(dialect.NextCD(), dialect.RetCD())); err != nil {
				return err
			}
			return c.CgForm(conseq, canonical, dialect.RetCD())
		}
		lfalse := c.Labels.Fresh()
		if err := c.CgForm(pred, dialect.ZFlag, dialect.CondCD(dialect.NextCD(), dialect.LabelCD(lfalse))); err != nil {
			return err
		}
		if err := c.CgForm(conseq, canonical, cd); err != nil {
			return err
		}
		c.Listing.Label(labelName(lfalse))
		return c.Goto(cd)
	}

	alt := args[2]
	lfalse := c.Labels.Fresh()
	lend := c.Labels.Fresh()
	if err := c.CgForm(pred, dialect.ZFlag, dialect.CondCD(dialect.NextCD(), dialect.LabelCD(lfalse))); err != nil {
		return err
	}
	if err := c.CgForm(conseq, canonical, dialect.LabelCD(lend)); err != nil {
		return err
	}
	c.Listing.Label(labelName(lfalse))
	if err := c.CgForm(alt, canonical, dialect.NextCD()); err != nil {
		return err
	}
	c.Listing.Label(labelName(lend))
	return c.Goto(cd)
}
