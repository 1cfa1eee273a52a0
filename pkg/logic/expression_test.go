package logic

import "testing"

func TestAtomEquality(t *testing.T) {
	a1 := NewAtom("a")
	a2 := NewAtom("a")
	b := NewAtom("b")

	if !a1.Equal(a2) {
		t.Error("identical atoms should be equal")
	}
	if a1.Equal(b) {
		t.Error("distinct atoms should not be equal")
	}
}

func TestAndCanonicalizesChildren(t *testing.T) {
	a := NewAtom("a")
	b := NewAtom("b")

	and1 := NewAnd(b, a)
	and2 := NewAnd(a, b)
	if !and1.Equal(and2) {
		t.Errorf("And should be order-independent: %s vs %s", and1, and2)
	}
}

func TestAndDedupesIdenticalChildren(t *testing.T) {
	a := NewAtom("a")
	and := NewAnd(a, NewAtom("a"))
	if len(and.Operands) != 1 {
		t.Errorf("expected And{a,a} to dedupe to one operand, got %d", len(and.Operands))
	}
}

func TestTotalOrderGroupsByKind(t *testing.T) {
	atom := NewAtom("z")
	neg := NewNegAtom("a")
	and := NewAnd(NewAtom("x"), NewAtom("y"))
	or := NewOr(NewAtom("x"), NewAtom("y"))

	var exprs []Expression = []Expression{and, or, neg, atom}
	sortExpressions(exprs)

	wantOrder := []Kind{KindAtom, KindNegAtom, KindAnd, KindOr}
	for i, e := range exprs {
		if e.Kind() != wantOrder[i] {
			t.Errorf("position %d: got kind %v, want %v", i, e.Kind(), wantOrder[i])
		}
	}
}
