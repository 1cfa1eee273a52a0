package logic

import "testing"

// TestNormalIsIdempotent checks §8 property 1: Normal(Normal(E)) == Normal(E).
func TestNormalIsIdempotent(t *testing.T) {
	exprs := []Expression{
		NewNot(NewAnd(NewAtom("a"), NewAtom("b"))),
		NewOr(NewAnd(NewAtom("a"), NewAtom("b")), NewAtom("c")),
		NewNot(NewNot(NewAtom("a"))),
		NewAnd(NewAnd(NewAtom("a"), NewAtom("b")), NewAtom("c")),
	}
	for _, e := range exprs {
		once, err := Normal(e)
		if err != nil {
			t.Fatalf("Normal(%s): %v", e, err)
		}
		twice, err := Normal(once)
		if err != nil {
			t.Fatalf("Normal(Normal(%s)): %v", e, err)
		}
		if !once.Equal(twice) {
			t.Errorf("Normal not idempotent for %s: %s vs %s", e, once, twice)
		}
	}
}

// TestInverseInvolution checks §8 property 2:
// Normal(Inverse(Inverse(E))) == Normal(E).
func TestInverseInvolution(t *testing.T) {
	exprs := []Expression{
		NewAtom("a"),
		NewNegAtom("a"),
		NewAnd(NewAtom("a"), NewAtom("b")),
		NewOr(NewAtom("a"), NewAnd(NewAtom("b"), NewAtom("c"))),
	}
	for _, e := range exprs {
		want, err := Normal(e)
		if err != nil {
			t.Fatalf("Normal(%s): %v", e, err)
		}
		got, err := Normal(Inverse(Inverse(e)))
		if err != nil {
			t.Fatalf("Normal(Inverse(Inverse(%s))): %v", e, err)
		}
		if !want.Equal(got) {
			t.Errorf("involution failed for %s: want %s, got %s", e, want, got)
		}
	}
}

// TestDeMorganOnNormalForms checks §8 property 3.
func TestDeMorganOnNormalForms(t *testing.T) {
	a, b := NewAtom("a"), NewAtom("b")
	and := NewAnd(a, b)

	lhs, err := Normal(NewNot(and))
	if err != nil {
		t.Fatal(err)
	}
	rhs, err := Normal(NewOr(Inverse(a), Inverse(b)))
	if err != nil {
		t.Fatal(err)
	}
	if !lhs.Equal(rhs) {
		t.Errorf("De Morgan (not-and): %s vs %s", lhs, rhs)
	}

	or := NewOr(a, b)
	lhs2, err := Normal(NewNot(or))
	if err != nil {
		t.Fatal(err)
	}
	rhs2, err := Normal(NewAnd(Inverse(a), Inverse(b)))
	if err != nil {
		t.Fatal(err)
	}
	if !lhs2.Equal(rhs2) {
		t.Errorf("De Morgan (not-or): %s vs %s", lhs2, rhs2)
	}
}

func TestNormalCollapsesSingletonAndFlattensNests(t *testing.T) {
	a, b, c := NewAtom("a"), NewAtom("b"), NewAtom("c")

	nested := NewAnd(NewAnd(a, b), c)
	got, err := Normal(nested)
	if err != nil {
		t.Fatal(err)
	}
	and, ok := got.(*And)
	if !ok {
		t.Fatalf("expected *And, got %T", got)
	}
	if len(and.Operands) != 3 {
		t.Errorf("expected flattened And with 3 operands, got %d (%s)", len(and.Operands), got)
	}

	singleton := NewAnd(a, a)
	got2, err := Normal(singleton)
	if err != nil {
		t.Fatal(err)
	}
	if !got2.Equal(a) {
		t.Errorf("expected And{a,a} to collapse to a, got %s", got2)
	}
}

func TestSubexpressionsAndAtoms(t *testing.T) {
	a, b := NewAtom("a"), NewAtom("b")
	e := NewAnd(a, NewOr(a, b))

	subs := Subexpressions(e)
	if len(subs) != 4 { // e, a, Or{a,b}, b
		t.Errorf("expected 4 distinct subexpressions, got %d: %v", len(subs), subs)
	}

	atoms := Atoms(e)
	if len(atoms) != 2 {
		t.Errorf("expected 2 atoms, got %d: %v", len(atoms), atoms)
	}
}

func TestNormalRejectsMalformedAfterNormalisation(t *testing.T) {
	// A hand-built tree that puts a node of unrecognised kind under a Not
	// is an internal contract violation; normal rejects the unknown kind
	// with ErrMalformed before the Not can be pushed down.
	bad := &Not{Child: &stubExpression{}}
	if _, err := Normal(bad); err == nil {
		t.Error("expected Normal to reject a Not that cannot be resolved")
	}
}

// stubExpression is a minimal Expression whose Kind is neither atom nor
// connective, used only to exercise Normal's defensive error path.
type stubExpression struct{}

func (s *stubExpression) Kind() Kind              { return Kind(99) }
func (s *stubExpression) String() string          { return "<stub>" }
func (s *stubExpression) Equal(o Expression) bool { _, ok := o.(*stubExpression); return ok }
func (s *stubExpression) Less(o Expression) bool  { return int(s.Kind()) < int(o.Kind()) }
