// Package sexpr is a minimal reader for the source language's concrete
// syntax: whitespace-separated tokens, parenthesis-delimited pairs, and
// an optional dot separating car from cdr (spec.md §6). It performs no
// semantic validation whatsoever — it is purely the cons-list reader the
// core compiler assumes exists; the core never imports anything about
// its internals, only the ast.Node shape it returns.
package sexpr

import (
	"fmt"
	"strings"

	"github.com/oisee/ddcg/pkg/ast"
)

// Read parses src as a sequence of top-level s-expressions.
func Read(src string) ([]*ast.Node, error) {
	p := &parser{toks: tokenize(src)}
	var forms []*ast.Node
	for !p.atEnd() {
		n, err := p.readNode()
		if err != nil {
			return nil, err
		}
		forms = append(forms, n)
	}
	return forms, nil
}

func tokenize(src string) []string {
	var toks []string
	var cur strings.Builder
	flush := func() {
		if cur.Len() > 0 {
			toks = append(toks, cur.String())
			cur.Reset()
		}
	}
	for _, r := range src {
		switch r {
		case '(', ')':
			flush()
			toks = append(toks, string(r))
		case ' ', '\t', '\n', '\r':
			flush()
		default:
			cur.WriteRune(r)
		}
	}
	flush()
	return toks
}

type parser struct {
	toks []string
	pos  int
}

func (p *parser) atEnd() bool { return p.pos >= len(p.toks) }

func (p *parser) peek() string {
	if p.atEnd() {
		return ""
	}
	return p.toks[p.pos]
}

func (p *parser) next() string {
	t := p.toks[p.pos]
	p.pos++
	return t
}

func (p *parser) readNode() (*ast.Node, error) {
	if p.atEnd() {
		return nil, fmt.Errorf("sexpr: unexpected end of input")
	}
	tok := p.next()
	switch tok {
	case "(":
		return p.readList()
	case ")":
		return nil, fmt.Errorf("sexpr: unexpected )")
	default:
		return ast.NewAtom(tok), nil
	}
}

// readList reads the contents of a form after the opening '(' has
// already been consumed, supporting an optional dotted tail.
func (p *parser) readList() (*ast.Node, error) {
	if p.peek() == ")" {
		p.next()
		return ast.NilNode, nil
	}
	head, err := p.readNode()
	if err != nil {
		return nil, err
	}
	if p.peek() == "." {
		p.next()
		tail, err := p.readNode()
		if err != nil {
			return nil, err
		}
		if p.peek() != ")" {
			return nil, fmt.Errorf("sexpr: expected ) after dotted tail")
		}
		p.next()
		return ast.Cons(head, tail), nil
	}
	tail, err := p.readList()
	if err != nil {
		return nil, err
	}
	return ast.Cons(head, tail), nil
}
