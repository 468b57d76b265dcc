// Package diag holds the compiler's error taxonomy. Every error the core
// raises is fatal at its detection site (no recovery, no partial output);
// callers distinguish categories with errors.Is against the sentinels
// below rather than string matching.
package diag

import (
	"errors"
	"fmt"
)

var (
	// ErrSyntax: the AST head is neither a recognized form nor a declared
	// global, or an atom in operator position is nonsensical.
	ErrSyntax = errors.New("syntax error")
	// ErrUnsupportedForm: a recognized head with an invalid shape, e.g.
	// arguments passed to a no-argument subroutine call.
	ErrUnsupportedForm = errors.New("unsupported form")
	// ErrRedefinition: sub or variable declaration reuses a declared name.
	ErrRedefinition = errors.New("redefinition")
	// ErrUndeclaredSymbol: a bare atom that is neither numeric nor declared.
	ErrUndeclaredSymbol = errors.New("undeclared symbol")
	// ErrBadDataDestination: a lowering was asked to target a DD it does
	// not support. Always an internal invariant violation.
	ErrBadDataDestination = errors.New("bad data destination")
	// ErrBadControlDestination: likewise for CD.
	ErrBadControlDestination = errors.New("bad control destination")
)

// At wraps base with the offending symbol name, e.g. "undeclared symbol: foo".
func At(symbol string, base error) error {
	return fmt.Errorf("%w: %s", base, symbol)
}
