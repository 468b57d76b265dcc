// Package ddcg implements the destination-driven code generator: the
// recursive walker that lowers the source language's AST to assembly,
// parameterized at every step by a data destination and a control
// destination (spec.md §1–§4).
package ddcg

import (
	"github.com/oisee/ddcg/pkg/ast"
	"github.com/oisee/ddcg/pkg/dialect"
)

// Compiler owns all per-compilation state: the listing being built, the
// scratch allocator, the label counter, and the symbol table. A single
// walk over the AST mutates this state sequentially; nothing here is
// safe for concurrent use, nor does it need to be (spec.md §5).
type Compiler struct {
	Dialect *dialect.Dialect
	Listing Listing
	Scratch Scratch
	Labels  *Labels
	Symbols *SymbolTable
}

// New creates a Compiler targeting the given dialect.
func New(d *dialect.Dialect) *Compiler {
	return &Compiler{
		Dialect: d,
		Labels:  NewLabels(),
		Symbols: NewSymbolTable(),
	}
}

// Compile lowers each top-level form in program in turn, each one
// targeting the canonical register with a return control destination,
// and returns the assembled listing text (the driver, spec.md §2 "M").
func Compile(d *dialect.Dialect, program []*ast.Node) (string, error) {
	c := New(d)
	for _, form := range program {
		if err := c.CgForm(form, c.Dialect.Canonical, dialect.RetCD()); err != nil {
			return "", err
		}
	}
	return c.Listing.String(), nil
}
