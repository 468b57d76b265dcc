package sexpr

import "testing"

func TestReadSimpleForm(t *testing.T) {
	forms, err := Read("(+ 2 3)")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(forms) != 1 {
		t.Fatalf("got %d forms, want 1", len(forms))
	}
	n := forms[0]
	if !n.IsPair() || n.Head.Text != "+" {
		t.Fatalf("unexpected shape: %+v", n)
	}
	items := n.Tail.Items()
	if len(items) != 2 || items[0].Text != "2" || items[1].Text != "3" {
		t.Fatalf("args = %v, want [2 3]", items)
	}
}

func TestReadMultipleTopLevelForms(t *testing.T) {
	forms, err := Read("(int16 x) (set x 1)")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(forms) != 2 {
		t.Fatalf("got %d forms, want 2", len(forms))
	}
}

func TestReadNestedForm(t *testing.T) {
	forms, err := Read("(sub f (+ 2 3))")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	body := forms[0].Tail.Items()
	if len(body) != 2 || body[0].Text != "f" {
		t.Fatalf("body = %v", body)
	}
	if !body[1].IsPair() || body[1].Head.Text != "+" {
		t.Fatalf("nested form not parsed: %+v", body[1])
	}
}

func TestReadEmptyList(t *testing.T) {
	forms, err := Read("()")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if !forms[0].IsNil() {
		t.Fatalf("() should parse to nil, got %+v", forms[0])
	}
}

func TestReadDottedPair(t *testing.T) {
	forms, err := Read("(a . b)")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	n := forms[0]
	if n.Head.Text != "a" || !n.Tail.IsAtom() || n.Tail.Text != "b" {
		t.Fatalf("dotted pair parsed incorrectly: %+v", n)
	}
}

func TestReadUnmatchedParen(t *testing.T) {
	if _, err := Read("(+ 1 2"); err == nil {
		t.Fatalf("expected error on unmatched paren")
	}
	if _, err := Read(")"); err == nil {
		t.Fatalf("expected error on stray close paren")
	}
}
