package ddcg

import (
	"github.com/oisee/ddcg/pkg/ast"
	"github.com/oisee/ddcg/pkg/diag"
	"github.com/oisee/ddcg/pkg/dialect"
)

// cgCall lowers a bare (name) form: a no-argument subroutine call if
// name is declared as a subroutine, else a syntax or unsupported-form
// error (spec.md §4.7 final bullet, §4.10).
func (c *Compiler) cgCall(name string, args []*ast.Node, cd dialect.CD) error {
	if !c.Symbols.IsDeclared(name) {
		return diag.At(name, diag.ErrSyntax)
	}
	kind, _ := c.Symbols.KindOf(name)
	if kind != SubSymbol {
		return diag.At(name, diag.ErrUnsupportedForm)
	}
	if len(args) != 0 {
		return diag.At(name, diag.ErrUnsupportedForm)
	}
	if cd.Kind == dialect.Ret {
		c.Listing.Instr(c.Dialect.Jump, name) // tail call
		return nil
	}
	c.Listing.Instr(c.Dialect.Call, name)
	return c.Goto(cd)
}
