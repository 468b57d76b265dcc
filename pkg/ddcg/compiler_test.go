package ddcg

import (
	"fmt"
	"strings"
	"testing"

	"github.com/oisee/ddcg/pkg/dialect"
	"github.com/oisee/ddcg/pkg/sexpr"
)

// line and lbl replicate Listing's own formatting so expected listings can
// be built without hard-coding column arithmetic in every test.
func line(mnem, operand string) string {
	if operand == "" {
		return fmt.Sprintf("    %-6s\n", mnem)
	}
	return fmt.Sprintf("    %-6s %s\n", mnem, operand)
}

func lbl(name string) string { return name + ":\n" }

func compileZ80(t *testing.T, src string) string {
	t.Helper()
	forms, err := sexpr.Read(src)
	if err != nil {
		t.Fatalf("sexpr.Read(%q): %v", src, err)
	}
	out, err := Compile(&dialect.Z80Dialect, forms)
	if err != nil {
		t.Fatalf("Compile(%q): %v", src, err)
	}
	return out
}

// Scenario 1: constant load, tail return (spec.md §8.1).
func TestScenarioConstantLoad(t *testing.T) {
	got := compileZ80(t, "(+ 1 2)")
	want := line("LD", "DE,2") + line("LD", "HL,1") + line("ADD", "HL,DE") + line("RET", "")
	if got != want {
		t.Fatalf("got:\n%swant:\n%s", got, want)
	}
}

// Scenario 2: nested left operand forces a scratch save (spec.md §8.2).
func TestScenarioNestedLeftOperand(t *testing.T) {
	got := compileZ80(t, "(* (/ (- 101 32) 180) 100)")
	want := line("LD", "HL,100") +
		line("LD", "(TMPDE0),HL") +
		line("LD", "HL,180") +
		line("LD", "(TMPDE1),HL") +
		line("LD", "DE,32") +
		line("LD", "HL,101") +
		line("LD", "A,L") + line("SUB", "A,E") + line("LD", "L,A") +
		line("LD", "A,H") + line("SBC", "A,D") + line("LD", "H,A") +
		line("LD", "DE,(TMPDE1)") +
		line("CALL", "divide_HL_DE") +
		line("LD", "DE,(TMPDE0)") +
		line("JP", "multiply_HL_DE")
	if got != want {
		t.Fatalf("got:\n%swant:\n%s", got, want)
	}
}

// Scenario 3: variable declaration and assignment (spec.md §8.3). P1 governs
// the int16 form too, so its own top-level RET is expected alongside set's.
func TestScenarioVarDeclAndAssign(t *testing.T) {
	got := compileZ80(t, "(int16 x) (set x (+ x 1))")
	want := lbl("x") + line("DEFW", "0") + line("RET", "") +
		line("LD", "DE,1") + line("LD", "HL,(x)") + line("ADD", "HL,DE") +
		line("LD", "(x),HL") + line("RET", "")
	if got != want {
		t.Fatalf("got:\n%swant:\n%s", got, want)
	}
}

// Scenario 4: if with alternate (spec.md §8.4).
func TestScenarioIfWithAlternate(t *testing.T) {
	got := compileZ80(t, "(int16 x) (if x 10 20)")
	want := lbl("x") + line("DEFW", "0") + line("RET", "") +
		line("LD", "HL,(x)") +
		line("LD", "A,L") + line("OR", "A,H") +
		line("JP", "Z,L100") +
		line("LD", "HL,10") +
		line("JP", "L101") +
		lbl("L100") +
		line("LD", "HL,20") +
		lbl("L101") +
		line("RET", "")
	if got != want {
		t.Fatalf("got:\n%swant:\n%s", got, want)
	}
}

// Scenario 5: if without alternate in tail position (spec.md §8.5). No
// false-label is emitted.
func TestScenarioIfWithoutAlternateTail(t *testing.T) {
	got := compileZ80(t, "(int16 x) (if x 10)")
	want := lbl("x") + line("DEFW", "0") + line("RET", "") +
		line("LD", "HL,(x)") +
		line("LD", "A,L") + line("OR", "A,H") +
		line("RET", "Z") +
		line("LD", "HL,10") +
		line("RET", "")
	if got != want {
		t.Fatalf("got:\n%swant:\n%s", got, want)
	}
	if containsLabel(got, "L100") {
		t.Fatalf("no-alternate if must not emit a false label:\n%s", got)
	}
}

// Scenario 6: subroutine definition and bare call (spec.md §8.6).
func TestScenarioSubAndBareCall(t *testing.T) {
	got := compileZ80(t, "(sub f (+ 2 3)) (f)")
	want := lbl("f") +
		line("LD", "DE,3") + line("LD", "HL,2") + line("ADD", "HL,DE") + line("RET", "") +
		line("JP", "f")
	if got != want {
		t.Fatalf("got:\n%swant:\n%s", got, want)
	}
}

func containsLabel(listing, name string) bool {
	return stringsContains(listing, name+":")
}

func stringsContains(s, substr string) bool {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}
	return false
}

// P2: scratch-allocator depth returns to its entry value after cg_binop.
func TestScratchDepthRestoredAfterBinop(t *testing.T) {
	forms, err := sexpr.Read("(* (/ (- 101 32) 180) 100)")
	if err != nil {
		t.Fatalf("sexpr.Read: %v", err)
	}
	c := New(&dialect.Z80Dialect)
	if err := c.CgForm(forms[0], dialect.HL, dialect.RetCD()); err != nil {
		t.Fatalf("CgForm: %v", err)
	}
	if d := c.Scratch.Depth(); d != 0 {
		t.Fatalf("scratch depth after compile = %d, want 0", d)
	}
}

// P3: no two labels in one compilation share an integer identifier.
func TestLabelsUnique(t *testing.T) {
	l := NewLabels()
	seen := map[int]bool{}
	for i := 0; i < 50; i++ {
		n := l.Fresh()
		if seen[n] {
			t.Fatalf("label %d issued twice", n)
		}
		seen[n] = true
	}
}

// P5: exactly one reservation directive per declared variable, at
// declaration time.
func TestVariableDeclaredOnce(t *testing.T) {
	got := compileZ80(t, "(int16 x y)")
	wantX := lbl("x") + line("DEFW", "0")
	wantY := lbl("y") + line("DEFW", "0")
	if strings.Count(got, wantX) != 1 || strings.Count(got, wantY) != 1 {
		t.Fatalf("both x and y should get exactly one DEFW 0 reservation:\n%s", got)
	}
}

func TestRedeclarationIsError(t *testing.T) {
	forms, err := sexpr.Read("(int16 x) (int16 x)")
	if err != nil {
		t.Fatalf("sexpr.Read: %v", err)
	}
	c := New(&dialect.Z80Dialect)
	for i, f := range forms {
		err := c.CgForm(f, dialect.HL, dialect.RetCD())
		if i == 1 && err == nil {
			t.Fatalf("expected redefinition error on second (int16 x)")
		}
	}
}

func TestUndeclaredSymbolIsError(t *testing.T) {
	forms, _ := sexpr.Read("(+ y 1)")
	c := New(&dialect.Z80Dialect)
	if err := c.CgForm(forms[0], dialect.HL, dialect.RetCD()); err == nil {
		t.Fatalf("expected undeclared-symbol error")
	}
}

func TestBareCallToUndeclaredNameIsError(t *testing.T) {
	forms, _ := sexpr.Read("(frobnicate)")
	c := New(&dialect.Z80Dialect)
	if err := c.CgForm(forms[0], dialect.HL, dialect.RetCD()); err == nil {
		t.Fatalf("expected error calling an undeclared name")
	}
}

// P4: octal decoding follows the later-revision whole-token rule (spec.md
// §9 open question), not the earlier int(t[1:], 8) behavior.
func TestOctalLiteralDecoding(t *testing.T) {
	cases := map[string]int{
		"010": 8,
		"0x0A": 10,
		"0b101": 5,
		"42": 42,
	}
	for tok, want := range cases {
		got, err := decodeLiteral(tok)
		if err != nil {
			t.Fatalf("decodeLiteral(%q): %v", tok, err)
		}
		if got != want {
			t.Errorf("decodeLiteral(%q) = %d, want %d", tok, got, want)
		}
	}
}
