// Package ast defines the cons-list AST shape the core code generator
// consumes. It is the entire contract with the parser: the parser is an
// external collaborator, specified only by the shape of the nodes it
// returns.
package ast

// Kind tags what a Node represents.
type Kind int

const (
	Nil Kind = iota
	Atom
	Pair
)

// Node is a classical cons cell. A form (op a b) is Cons(Atom("op"),
// Cons(a, Cons(b, NilNode))): Head is "op", Tail is the argument list.
// Dotted pairs (a Tail that is itself an Atom rather than a Pair or Nil)
// are representable but unused by valid programs.
type Node struct {
	Kind Kind
	Text string // valid when Kind == Atom
	Head *Node  // valid when Kind == Pair
	Tail *Node  // valid when Kind == Pair
}

// NilNode is the sentinel empty list terminating every proper list.
var NilNode = &Node{Kind: Nil}

// NewAtom wraps an opaque token as an atom node.
func NewAtom(text string) *Node {
	return &Node{Kind: Atom, Text: text}
}

// Cons builds a pair node.
func Cons(head, tail *Node) *Node {
	return &Node{Kind: Pair, Head: head, Tail: tail}
}

// List builds a proper list from its arguments.
func List(nodes ...*Node) *Node {
	result := NilNode
	for i := len(nodes) - 1; i >= 0; i-- {
		result = Cons(nodes[i], result)
	}
	return result
}

// IsNil reports whether n is the empty-list sentinel.
func (n *Node) IsNil() bool { return n == nil || n.Kind == Nil }

// IsAtom reports whether n is an atom.
func (n *Node) IsAtom() bool { return n != nil && n.Kind == Atom }

// IsPair reports whether n is a pair.
func (n *Node) IsPair() bool { return n != nil && n.Kind == Pair }

// Items walks a proper list and returns its elements in order, stopping
// at the first non-pair tail. Valid programs never build improper lists
// in argument position, so this is the only traversal the core needs.
func (n *Node) Items() []*Node {
	var items []*Node
	for n.IsPair() {
		items = append(items, n.Head)
		n = n.Tail
	}
	return items
}
