package ddcg

import (
	"github.com/oisee/ddcg/pkg/ast"
	"github.com/oisee/ddcg/pkg/diag"
	"github.com/oisee/ddcg/pkg/dialect"
)

// CgForm is the core walker (spec.md §4.7). Every recursive call to it is
// parameterized by the form being lowered, the data destination dd, and
// the control destination cd. Its first act is destination re-routing:
// if dd cannot be targeted directly by the lowerings below, the form is
// computed into the canonical register instead and then transferred.
func (c *Compiler) CgForm(n *ast.Node, dd dialect.Dest, cd dialect.CD) error {
	if c.Dialect.NeedsReroute(dd) {
		if err := c.CgForm(n, c.Dialect.Canonical, dialect.NextCD()); err != nil {
			return err
		}
		c.fixupTransfer(dd)
		return c.Goto(cd)
	}
	return c.dispatch(n, dd, cd)
}

// fixupTransfer moves the freshly computed canonical-register value into
// a destination that cg_form's lowerings cannot target directly.
func (c *Compiler) fixupTransfer(dd dialect.Dest) {
	switch {
	case dd == dialect.ZFlag && c.Dialect.Kind == dialect.Z80:
		// LD A,L ; OR A,H sets the zero flag iff HL == 0.
		c.Listing.Instr("LD", "A,L")
		c.Listing.Instr("OR", "A,H")
	case dd == dialect.ZFlag && c.Dialect.Kind == dialect.W65816:
		c.Listing.Instr("CMP", "#0")
	case dd == dialect.XR:
		c.Listing.Instr("TAX", "")
	case dd == dialect.YR:
		c.Listing.Instr("TAY", "")
	case dd == dialect.ZP:
		c.Listing.Instr("STA", c.zpSlot(c.Scratch.Depth()))
	case dd == dialect.OneS:
		c.Listing.Instr("PHA", "")
	}
}

// dispatch runs after re-routing: dd here is always directly targetable.
func (c *Compiler) dispatch(n *ast.Node, dd dialect.Dest, cd dialect.CD) error {
	if n.IsAtom() {
		return c.cgAtom(n.Text, dd, cd)
	}
	if !n.IsPair() {
		return diag.At("()", diag.ErrSyntax)
	}
	if !n.Head.IsAtom() {
		return diag.At("<form>", diag.ErrSyntax)
	}
	head := n.Head.Text
	args := n.Tail.Items()

	switch head {
	case "+", "-", "&", "|", "^", "*", "/":
		if len(args) != 2 {
			return diag.At(head, diag.ErrUnsupportedForm)
		}
		return c.cgBinop(head, args[0], args[1], dd, cd)
	case "int16":
		return c.cgInt16(args, cd)
	case "set":
		return c.cgSet(args, cd)
	case "if":
		return c.cgIf(args, cd)
	case "sub":
		return c.cgSub(args)
	case "do":
		return c.cgDo(args, dd, cd)
	case "@":
		return c.cg65816Only(head, func() error { return c.cgAddressOf(args, cd) })
	case "peek":
		return c.cg65816Only(head, func() error { return c.cgPeek(args, cd) })
	case "poke":
		return c.cg65816Only(head, func() error { return c.cgPoke(args, cd) })
	case "highbyte", "lowbyte":
		return c.cg65816Only(head, func() error { return c.cgByteExtract(head, args, cd) })
	case ">>", "<<":
		return c.cg65816Only(head, func() error { return c.cgShift(head, args, cd) })
	default:
		return c.cgCall(head, args, cd)
	}
}

func (c *Compiler) cg65816Only(head string, fn func() error) error {
	if c.Dialect.Kind != dialect.W65816 {
		return diag.At(head, diag.ErrUnsupportedForm)
	}
	return fn()
}

// cgAtom lowers an atomic leaf: a numeric literal, a declared variable
// reference, or an error (spec.md §4.1, §4.7 step 3).
func (c *Compiler) cgAtom(text string, dd dialect.Dest, cd dialect.CD) error {
	if isNumericLiteral(text, c.Dialect.NegativeLiteralPrefix) {
		v, err := decodeLiteral(text)
		if err != nil {
			return diag.At(text, diag.ErrSyntax)
		}
		c.emitLoadImmediate(dd, v)
		return c.Goto(cd)
	}
	if !c.Symbols.IsDeclared(text) {
		return diag.At(text, diag.ErrUndeclaredSymbol)
	}
	kind, _ := c.Symbols.KindOf(text)
	if kind != VarSymbol {
		return diag.At(text, diag.ErrUnsupportedForm)
	}
	c.emitLoadVar(dd, text)
	return c.Goto(cd)
}
