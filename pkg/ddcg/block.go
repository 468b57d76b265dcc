package ddcg

import (
	"github.com/oisee/ddcg/pkg/ast"
	"github.com/oisee/ddcg/pkg/diag"
	"github.com/oisee/ddcg/pkg/dialect"
)

// cgSequence lowers a statement sequence with a tail-position contract:
// every statement but the last targets the canonical register with
// CD_NEXT, and the last one receives the caller's own (dd, cd). The
// caller's control destination must not be honored a second time by the
// sequence itself (spec.md §4.9). Used by both `do` and `sub` bodies.
func (c *Compiler) cgSequence(stmts []*ast.Node, dd dialect.Dest, cd dialect.CD) error {
	for _, s := range stmts[:len(stmts)-1] {
		if err := c.CgForm(s, c.Dialect.Canonical, dialect.NextCD()); err != nil {
			return err
		}
	}
	return c.CgForm(stmts[len(stmts)-1], dd, cd)
}

// cgDo lowers (do s1 … sn): the block's value is the last statement's
// value, and the outer termination is honored by that statement's own
// lowering (spec.md §4.9).
func (c *Compiler) cgDo(args []*ast.Node, dd dialect.Dest, cd dialect.CD) error {
	if len(args) == 0 {
		return diag.At("do", diag.ErrUnsupportedForm)
	}
	return c.cgSequence(args, dd, cd)
}
