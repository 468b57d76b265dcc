package ddcg

import (
	"bytes"
	"fmt"
)

// Listing is the append-only sequence of assembly lines one compilation
// produces. Emission order is the single source of truth for program
// order (spec.md §5).
type Listing struct {
	buf bytes.Buffer
}

// Label appends a label line.
func (l *Listing) Label(name string) {
	fmt.Fprintf(&l.buf, "%s:\n", name)
}

// Instr appends an instruction line: four spaces, the mnemonic
// left-justified in a six-column field, then the operand. An empty
// operand is permitted.
func (l *Listing) Instr(mnem, operand string) {
	if operand == "" {
		fmt.Fprintf(&l.buf, "    %-6s\n", mnem)
		return
	}
	fmt.Fprintf(&l.buf, "    %-6s %s\n", mnem, operand)
}

// String returns the accumulated listing text.
func (l *Listing) String() string {
	return l.buf.String()
}

func labelName(n int) string {
	return fmt.Sprintf("L%d", n)
}
