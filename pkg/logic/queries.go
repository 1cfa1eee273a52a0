package logic

import "fmt"

// Children returns the immediate operands of And/Or; for every other kind it
// returns nil. Operands are already canonicalised (sorted, deduplicated) by
// the And/Or constructors, so Children is a cheap accessor rather than a
// recomputation.
func Children(e Expression) []Expression {
	switch t := e.(type) {
	case *And:
		return t.Operands
	case *Or:
		return t.Operands
	default:
		return nil
	}
}

// Inverse pushes De Morgan duality through e: atoms and neg-atoms swap,
// And{xs} becomes Or{Inverse(x) : x in xs} and dually, and Not(x) cancels to
// x. It is recursive over already Not-free input so that it is itself a
// proper negation rather than a single swap (see SPEC_FULL.md §4.1); applied
// to a tree that still contains Not nodes it is not required to, and does
// not, produce a normal form on its own — Normal is what flattens and
// collapses the result.
//
// Contract: Normal(Inverse(Inverse(e))) == Normal(e) for all e.
func Inverse(e Expression) Expression {
	switch t := e.(type) {
	case *Atom:
		return NewNegAtom(t.Name)
	case *NegAtom:
		return NewAtom(t.Name)
	case *And:
		inverted := make([]Expression, len(t.Operands))
		for i, op := range t.Operands {
			inverted[i] = Inverse(op)
		}
		return NewOr(inverted...)
	case *Or:
		inverted := make([]Expression, len(t.Operands))
		for i, op := range t.Operands {
			inverted[i] = Inverse(op)
		}
		return NewAnd(inverted...)
	case *Not:
		return t.Child
	default:
		panic(fmt.Sprintf("logic: Inverse: unhandled kind %v", e.Kind()))
	}
}

// Normal reduces e to normal form: every Not is eliminated by pushing
// negation to the atoms (via Inverse), same-kind And/Or nests are flattened,
// singleton And{x}/Or{x} collapse to x, and children stay canonicalised.
// Normal is idempotent: Normal(Normal(e)) == Normal(e).
//
// It returns ErrMalformed if, after normalisation, a Not still wraps a
// non-atom — a parser contract violation that should never occur from a
// well-formed syntax tree, guarded here defensively (§7, Internal errors).
func Normal(e Expression) (Expression, error) {
	n, err := normal(e)
	if err != nil {
		return nil, err
	}
	if hasNot(n) {
		return nil, fmt.Errorf("%w: Not node survived normalisation in %s", ErrMalformed, n.String())
	}
	return n, nil
}

func normal(e Expression) (Expression, error) {
	switch t := e.(type) {
	case *Atom, *NegAtom:
		return e, nil
	case *Not:
		child, err := normal(t.Child)
		if err != nil {
			return nil, err
		}
		return Inverse(child), nil
	case *And:
		return normalJunction(t.Operands, KindAnd)
	case *Or:
		return normalJunction(t.Operands, KindOr)
	default:
		return nil, fmt.Errorf("%w: unrecognised expression kind %v", ErrMalformed, e.Kind())
	}
}

// normalJunction normalises every child, flattens same-kind nests into the
// parent (e.g. And{And{a,b}, c} -> And{a,b,c}), and collapses the result to
// a single operand if canonicalisation leaves just one.
func normalJunction(children []Expression, kind Kind) (Expression, error) {
	flat := make([]Expression, 0, len(children))
	for _, c := range children {
		nc, err := normal(c)
		if err != nil {
			return nil, err
		}
		if nc.Kind() == kind {
			flat = append(flat, Children(nc)...)
		} else {
			flat = append(flat, nc)
		}
	}
	var built Expression
	if kind == KindAnd {
		built = NewAnd(flat...)
	} else {
		built = NewOr(flat...)
	}
	if operands := Children(built); len(operands) == 1 {
		return operands[0], nil
	}
	return built, nil
}

func hasNot(e Expression) bool {
	switch t := e.(type) {
	case *Not:
		return true
	case *And:
		return anyHasNot(t.Operands)
	case *Or:
		return anyHasNot(t.Operands)
	default:
		return false
	}
}

func anyHasNot(xs []Expression) bool {
	for _, x := range xs {
		if hasNot(x) {
			return true
		}
	}
	return false
}

// Subexpressions returns every distinct node of e's syntax tree, including e
// itself, deduplicated by structural equality and returned in canonical
// order.
func Subexpressions(e Expression) []Expression {
	seen := make([]Expression, 0, 8)
	var walk func(Expression)
	walk = func(x Expression) {
		for _, s := range seen {
			if s.Equal(x) {
				return
			}
		}
		seen = append(seen, x)
		for _, c := range Children(x) {
			walk(c)
		}
		if n, ok := x.(*Not); ok {
			walk(n.Child)
		}
	}
	walk(e)
	sortExpressions(seen)
	return seen
}

// Atoms returns the set of atom/neg-atom leaves occurring in e.
func Atoms(e Expression) []Expression {
	out := make([]Expression, 0, 4)
	for _, s := range Subexpressions(e) {
		if s.Kind() == KindAtom || s.Kind() == KindNegAtom {
			out = append(out, s)
		}
	}
	return out
}
