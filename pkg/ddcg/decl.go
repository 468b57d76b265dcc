package ddcg

import (
	"github.com/oisee/ddcg/pkg/ast"
	"github.com/oisee/ddcg/pkg/diag"
	"github.com/oisee/ddcg/pkg/dialect"
)

// cgInt16 declares each named global as a reserved 16-bit variable,
// emitting its storage directive at declaration time (spec.md §4.5, P5).
// The form produces no value; dd is irrelevant.
func (c *Compiler) cgInt16(args []*ast.Node, cd dialect.CD) error {
	if len(args) == 0 {
		return diag.At("int16", diag.ErrUnsupportedForm)
	}
	for _, a := range args {
		if !a.IsAtom() {
			return diag.At("int16", diag.ErrSyntax)
		}
		if err := c.Symbols.Declare(a.Text, VarSymbol); err != nil {
			return err
		}
		c.emitVarStorage(a.Text)
	}
	return c.Goto(cd)
}

// cgSet lowers (set v e): evaluate e into the canonical register, store
// it to v's memory, then honor cd (spec.md §4.7).
func (c *Compiler) cgSet(args []*ast.Node, cd dialect.CD) error {
	if len(args) != 2 || !args[0].IsAtom() {
		return diag.At("set", diag.ErrSyntax)
	}
	name := args[0].Text
	if !c.Symbols.IsDeclared(name) {
		return diag.At(name, diag.ErrUndeclaredSymbol)
	}
	if kind, _ := c.Symbols.KindOf(name); kind != VarSymbol {
		return diag.At(name, diag.ErrUnsupportedForm)
	}
	if err := c.CgForm(args[1], c.Dialect.Canonical, dialect.NextCD()); err != nil {
		return err
	}
	c.emitStoreVar(name)
	return c.Goto(cd)
}

// cgSub declares name as a subroutine, emits its label, and lowers its
// body with CD_RET into the canonical register — the same convention the
// top-level driver uses, since a subroutine has no other value channel
// (spec.md §4.7). The body's own terminator honors the form's own
// control destination; sub never emits a second one.
func (c *Compiler) cgSub(args []*ast.Node) error {
	if len(args) < 1 || !args[0].IsAtom() {
		return diag.At("sub", diag.ErrSyntax)
	}
	name := args[0].Text
	if err := c.Symbols.Declare(name, SubSymbol); err != nil {
		return err
	}
	c.Listing.Label(name)
	body := args[1:]
	if len(body) == 0 {
		c.emitReturn()
		return nil
	}
	return c.cgSequence(body, c.Dialect.Canonical, dialect.RetCD())
}
