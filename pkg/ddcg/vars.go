package ddcg

import (
	"fmt"

	"github.com/oisee/ddcg/pkg/dialect"
)

// emitLoadImmediate loads a decoded numeric literal into dd. dd is
// always directly targetable here: CgForm's re-routing already resolved
// anything that isn't.
func (c *Compiler) emitLoadImmediate(dd dialect.Dest, v int) {
	if c.Dialect.Kind == dialect.Z80 {
		c.Listing.Instr("LD", fmt.Sprintf("%s,%d", c.Dialect.RegName(dd), v))
		return
	}
	c.Listing.Instr("LDA", fmt.Sprintf("#%d", v))
}

// emitLoadVar loads a declared variable's value into dd.
func (c *Compiler) emitLoadVar(dd dialect.Dest, name string) {
	if c.Dialect.Kind == dialect.Z80 {
		c.Listing.Instr("LD", fmt.Sprintf("%s,(%s)", c.Dialect.RegName(dd), name))
		return
	}
	c.Listing.Instr("LDA", name)
}

// emitStoreVar stores the canonical register's value into a declared
// variable's memory.
func (c *Compiler) emitStoreVar(name string) {
	if c.Dialect.Kind == dialect.Z80 {
		c.Listing.Instr("LD", fmt.Sprintf("(%s),%s", name, c.Dialect.RegName(c.Dialect.Canonical)))
		return
	}
	c.Listing.Instr("STA", name)
}

// emitVarStorage emits the reservation directive for a newly declared
// variable, at its own label (spec.md §4.5).
func (c *Compiler) emitVarStorage(name string) {
	c.Listing.Label(name)
	if c.Dialect.Kind == dialect.Z80 {
		c.Listing.Instr("DEFW", "0")
		return
	}
	c.Listing.Instr(".WORD", "0")
}

// zpSlot names the zero-page scratch address for 65816 scratch slot n. The
// cursor steps by 2 bytes per slot — each slot holds a 16-bit value — so
// two live slots never overlap.
func (c *Compiler) zpSlot(n int) string {
	return fmt.Sprintf("$%02X", n*2)
}

// emitMove moves a 16-bit value between two Z80 register pairs via the
// stack — the Z80 has no direct 16-bit register-to-register load.
func (c *Compiler) emitMove(dst, src dialect.Dest) {
	c.Listing.Instr("PUSH", c.Dialect.RegName(src))
	c.Listing.Instr("POP", c.Dialect.RegName(dst))
}
