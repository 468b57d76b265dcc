package ddcg

import (
	"fmt"

	"github.com/oisee/ddcg/pkg/dialect"
	"github.com/oisee/ddcg/pkg/diag"
)

// Goto is the control-destination dispatcher (spec.md §4.6): given a CD,
// it emits the terminator that honors it exactly once.
func (c *Compiler) Goto(cd dialect.CD) error {
	switch cd.Kind {
	case dialect.Next:
		return nil
	case dialect.Ret:
		c.emitReturn()
		return nil
	case dialect.Label:
		c.emitJump(cd.Lbl)
		return nil
	case dialect.Cond:
		return c.gotoCond(*cd.OnNonZero, *cd.OnZero)
	default:
		return diag.ErrBadControlDestination
	}
}

func (c *Compiler) gotoCond(onNonZero, onZero dialect.CD) error {
	switch {
	case onNonZero.Kind == dialect.Next && onZero.Kind == dialect.Next:
		return nil
	case onNonZero.Kind == dialect.Next && onZero.Kind == dialect.Ret:
		c.emitCondReturn(false) // return when zero
		return nil
	case onNonZero.Kind == dialect.Next && onZero.Kind == dialect.Label:
		c.emitCondJump(false, onZero.Lbl) // jump when zero
		return nil
	case onNonZero.Kind == dialect.Ret && onZero.Kind == dialect.Next:
		c.emitCondReturn(true) // return when nonzero
		return nil
	case onNonZero.Kind == dialect.Ret && onZero.Kind == dialect.Ret:
		c.emitReturn()
		return nil
	case onNonZero.Kind == dialect.Ret && onZero.Kind == dialect.Label:
		c.emitCondReturn(true) // return when nonzero
		return c.Goto(onZero)  // otherwise fall through to the label
	default:
		return diag.ErrBadControlDestination
	}
}

func (c *Compiler) emitReturn() {
	c.Listing.Instr(c.Dialect.Return, "")
}

func (c *Compiler) emitJump(label int) {
	c.Listing.Instr(c.Dialect.Jump, labelName(label))
}

// emitCondReturn emits a return taken when the zero flag matches nonzero.
// Z80 has a direct conditional return; the 65816 has none, so it uses the
// branch-over-return idiom spec.md §4.6 calls out.
func (c *Compiler) emitCondReturn(nonzero bool) {
	if c.Dialect.Kind == dialect.Z80 {
		cond := "Z"
		if nonzero {
			cond = "NZ"
		}
		c.Listing.Instr("RET", cond)
		return
	}
	skip := c.Labels.Fresh()
	branch := "BNE"
	if nonzero {
		branch = "BEQ"
	}
	c.Listing.Instr(branch, labelName(skip))
	c.emitReturn()
	c.Listing.Label(labelName(skip))
}

// emitCondJump emits a jump to label taken when the zero flag matches
// nonzero.
func (c *Compiler) emitCondJump(nonzero bool, label int) {
	if c.Dialect.Kind == dialect.Z80 {
		cond := "Z"
		if nonzero {
			cond = "NZ"
		}
		c.Listing.Instr("JP", fmt.Sprintf("%s,%s", cond, labelName(label)))
		return
	}
	mnem := "BEQ"
	if nonzero {
		mnem = "BNE"
	}
	c.Listing.Instr(mnem, labelName(label))
}
