package ddcg

import "github.com/oisee/ddcg/pkg/diag"

// SymbolKind distinguishes a declared global's role.
type SymbolKind int

const (
	VarSymbol SymbolKind = iota
	SubSymbol
)

// Symbol is one entry in the symbol table.
type Symbol struct {
	Name string
	Kind SymbolKind
}

// SymbolTable is the process-wide ordered set of declared globals.
// Insertion order is kept only for reproducible output, not semantics.
type SymbolTable struct {
	order  []string
	byName map[string]Symbol
}

// NewSymbolTable returns an empty table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{byName: make(map[string]Symbol)}
}

// Declare inserts name with the given kind, or reports ErrRedefinition
// if it is already present.
func (t *SymbolTable) Declare(name string, kind SymbolKind) error {
	if _, ok := t.byName[name]; ok {
		return diag.At(name, diag.ErrRedefinition)
	}
	t.byName[name] = Symbol{Name: name, Kind: kind}
	t.order = append(t.order, name)
	return nil
}

// IsDeclared reports whether name is in the table.
func (t *SymbolTable) IsDeclared(name string) bool {
	_, ok := t.byName[name]
	return ok
}

// KindOf returns the kind of a declared name.
func (t *SymbolTable) KindOf(name string) (SymbolKind, bool) {
	sym, ok := t.byName[name]
	return sym.Kind, ok
}
