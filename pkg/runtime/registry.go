// Package runtime names the external runtime-library routines the
// emitted assembly may call. These routines (multiply_*, divide_*, …)
// are never defined by the core — only their naming convention is its
// contract with them (spec.md §1, §6).
package runtime

import "fmt"

// MulDivSymbol returns the conventional entry-point name for a 16-bit
// multiply or divide between the given register/operand names, e.g.
// "multiply_HL_DE" on Z80 or "multiply_AC_ZP" on the 65816.
func MulDivSymbol(op, dst, src string) string {
	verb := "multiply"
	if op == "/" {
		verb = "divide"
	}
	return fmt.Sprintf("%s_%s_%s", verb, dst, src)
}
