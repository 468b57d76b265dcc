package ddcg

import (
	"fmt"

	"github.com/oisee/ddcg/pkg/ast"
	"github.com/oisee/ddcg/pkg/diag"
	"github.com/oisee/ddcg/pkg/dialect"
	"github.com/oisee/ddcg/pkg/runtime"
)

// cgBinop is the heart of the walker (spec.md §4.7 "cg_binop"). It
// evaluates the two operands into the canonical and secondary registers
// — saving the left operand's sibling across a compound left operand's
// own evaluation when necessary — then invokes the operator-specific
// lowering. dd is always directly targetable here; CgForm's re-routing
// has already resolved anything that isn't.
func (c *Compiler) cgBinop(op string, x, y *ast.Node, dd dialect.Dest, cd dialect.CD) error {
	if c.Dialect.Kind == dialect.W65816 {
		return c.cgBinop65816(op, x, y, dd, cd)
	}
	return c.cgBinopZ80(op, x, y, dd, cd)
}

// cgBinopZ80 follows spec.md §4.7 exactly: a compound left operand
// forces the right operand to be saved across the left operand's own
// evaluation, since both land in the canonical register HL; an atomic
// left operand carries no such risk, so the right operand goes straight
// into the secondary register DE.
func (c *Compiler) cgBinopZ80(op string, x, y *ast.Node, dd dialect.Dest, cd dialect.CD) error {
	canonical, secondary := c.Dialect.Canonical, c.Dialect.Secondary
	if x.IsPair() {
		slot := c.Scratch.Alloc()
		if err := c.CgForm(y, canonical, dialect.NextCD()); err != nil {
			c.Scratch.Free()
			return err
		}
		c.Listing.Instr("LD", fmt.Sprintf("(TMPDE%d),HL", slot))
		if err := c.CgForm(x, canonical, dialect.NextCD()); err != nil {
			c.Scratch.Free()
			return err
		}
		c.Listing.Instr("LD", fmt.Sprintf("DE,(TMPDE%d)", slot))
		c.Scratch.Free()
	} else {
		if err := c.CgForm(y, secondary, dialect.NextCD()); err != nil {
			return err
		}
		if err := c.CgForm(x, canonical, dialect.NextCD()); err != nil {
			return err
		}
	}
	return c.lowerZ80Op(op, dd, cd)
}

// cgBinop65816 always routes the second operand through a freshly
// allocated zero-page scratch slot: unlike DE on Z80, ZP is memory, not
// a register, so there is no clobber hazard from a compound left operand
// to special-case away — the same sequence is correct either way.
func (c *Compiler) cgBinop65816(op string, x, y *ast.Node, dd dialect.Dest, cd dialect.CD) error {
	slot := c.Scratch.Alloc()
	defer c.Scratch.Free()
	addr := c.zpSlot(slot)
	if err := c.CgForm(y, dialect.AC, dialect.NextCD()); err != nil {
		return err
	}
	c.Listing.Instr("STA", addr)
	if err := c.CgForm(x, dialect.AC, dialect.NextCD()); err != nil {
		return err
	}
	return c.lowerBitOp65816(op, addr, cd)
}

func (c *Compiler) lowerZ80Op(op string, dd dialect.Dest, cd dialect.CD) error {
	canonical, secondary := c.Dialect.Canonical, c.Dialect.Secondary
	switch op {
	case "+":
		return c.lowerAdd(dd, cd)
	case "-":
		c.emitByteWise16("SUB", "SBC", dd, canonical, secondary)
		return c.Goto(cd)
	case "&":
		c.emitByteWise16("AND", "AND", dd, canonical, secondary)
		return c.Goto(cd)
	case "|":
		c.emitByteWise16("OR", "OR", dd, canonical, secondary)
		return c.Goto(cd)
	case "^":
		c.emitByteWise16("XOR", "XOR", dd, canonical, secondary)
		return c.Goto(cd)
	case "*", "/":
		return c.lowerMulDiv(op, dd, cd)
	default:
		return diag.At(op, diag.ErrUnsupportedForm)
	}
}

// lowerAdd uses the register-pair add when the destination is the
// canonical register — one of the two forms spec.md scenario 1 sanctions
// — and falls back to the byte-wise sequence otherwise.
func (c *Compiler) lowerAdd(dd dialect.Dest, cd dialect.CD) error {
	canonical, secondary := c.Dialect.Canonical, c.Dialect.Secondary
	if dd == canonical {
		c.Listing.Instr("ADD", fmt.Sprintf("%s,%s", c.Dialect.RegName(canonical), c.Dialect.RegName(secondary)))
		return c.Goto(cd)
	}
	c.emitByteWise16("ADD", "ADC", dd, canonical, secondary)
	return c.Goto(cd)
}

// emitByteWise16 lowers a 16-bit operator into dd byte-wise, reading the
// low/high bytes of src1 and src2 (spec.md §4.7 arithmetic lowerings).
func (c *Compiler) emitByteWise16(loOp, hiOp string, dd, src1, src2 dialect.Dest) {
	lo1, hi1 := dialect.RegHalves(src1)
	lo2, hi2 := dialect.RegHalves(src2)
	loD, hiD := dialect.RegHalves(dd)
	c.Listing.Instr("LD", fmt.Sprintf("A,%s", lo1))
	c.Listing.Instr(loOp, fmt.Sprintf("A,%s", lo2))
	c.Listing.Instr("LD", fmt.Sprintf("%s,A", loD))
	c.Listing.Instr("LD", fmt.Sprintf("A,%s", hi1))
	c.Listing.Instr(hiOp, fmt.Sprintf("A,%s", hi2))
	c.Listing.Instr("LD", fmt.Sprintf("%s,A", hiD))
}

// lowerMulDiv compiles to a call (or, in tail position, a tail jump) to
// the named runtime-library routine, then moves the result out of the
// canonical register if a different destination was requested.
func (c *Compiler) lowerMulDiv(op string, dd dialect.Dest, cd dialect.CD) error {
	canonical, secondary := c.Dialect.Canonical, c.Dialect.Secondary
	name := runtime.MulDivSymbol(op, c.Dialect.RegName(canonical), c.Dialect.RegName(secondary))
	if cd.Kind == dialect.Ret {
		// A CD_RET site always pairs with dd == canonical (the top-level
		// driver, cg_sub, and cg_if's consequent all construct it that
		// way), so the routine's own return hands back the right result.
		c.Listing.Instr(c.Dialect.Jump, name)
		return nil
	}
	c.Listing.Instr(c.Dialect.Call, name)
	if dd != canonical {
		c.emitMove(dd, canonical)
	}
	return c.Goto(cd)
}

// lowerBitOp65816 implements the 65816 dialect's unified arithmetic and
// bitwise lowering: the first source sits in AC, the second in the
// zero-page slot addr. The caller's dd is always AC here — NeedsReroute
// sends every other 65816 destination through CgForm's transfer fixup
// instead — so no result transfer is needed after the operation itself.
func (c *Compiler) lowerBitOp65816(op string, addr string, cd dialect.CD) error {
	var mnem string
	switch op {
	case "+":
		c.Listing.Instr("CLC", "")
		mnem = "ADC"
	case "-":
		c.Listing.Instr("SEC", "")
		mnem = "SBC"
	case "&":
		mnem = "AND"
	case "|":
		mnem = "ORA"
	case "^":
		mnem = "EOR"
	case "*", "/":
		name := runtime.MulDivSymbol(op, "AC", "ZP")
		if cd.Kind == dialect.Ret {
			c.Listing.Instr(c.Dialect.Jump, name)
			return nil
		}
		c.Listing.Instr(c.Dialect.Call, name)
		return c.Goto(cd)
	default:
		return diag.At(op, diag.ErrUnsupportedForm)
	}
	c.Listing.Instr(mnem, addr)
	return c.Goto(cd)
}
