// Package logic implements the coalescence engine: a saturation-style search
// that decides whether a normalised propositional expression is a tautology
// by constructing a proof of it in a sequent-style calculus.
//
// The package is organised leaves-first:
//   - expression.go / queries.go hold the recursive expression model and its
//     derived queries (atoms, subexpressions, inverse, children); index.go
//     precomputes the lineage of every occurrence against a fixed root.
//   - token.go holds the sequent/frontier data the engine operates on.
//   - engine.go implements spawn, fire, project and the main coalesce loop.
//   - extractor.go backtracks a saturated frontier into a proof DAG and
//     verifies it.
//
// Everything in this package is a pure function of its Expression argument;
// there is no shared mutable state beyond the optional logging sink.
package logic

import "strings"

// Kind discriminates the tagged variants of Expression. The zero value is
// KindAtom so that a nil-checked default never silently matches a connective.
type Kind int

const (
	KindAtom Kind = iota
	KindNegAtom
	KindAnd
	KindOr
	KindNot
)

func (k Kind) String() string {
	switch k {
	case KindAtom:
		return "Atom"
	case KindNegAtom:
		return "NegAtom"
	case KindAnd:
		return "And"
	case KindOr:
		return "Or"
	case KindNot:
		return "Not"
	default:
		return "Unknown"
	}
}

// Expression is the recursive, immutable type of normalised (and pre-normal)
// propositional formulas. All concrete implementations are comparable by
// value and safe to share across goals without cloning, since the engine
// never mutates an Expression after it is built by the parser/normaliser.
type Expression interface {
	// Kind reports the tagged variant.
	Kind() Kind

	// String renders the expression using the surface syntax of the parser
	// (§6.1), suitable for debugging and for DOT node labels.
	String() string

	// Equal reports structural equality: same kind, same name(s)/operands.
	Equal(other Expression) bool

	// Less defines the total order used for canonical iteration (§5, §9):
	// atoms first, then NegAtoms, then And, then Or, then Not; lexicographic
	// tie-break within a kind.
	Less(other Expression) bool
}

// Atom is a propositional variable.
type Atom struct{ Name string }

func NewAtom(name string) *Atom { return &Atom{Name: name} }

func (a *Atom) Kind() Kind             { return KindAtom }
func (a *Atom) String() string         { return a.Name }
func (a *Atom) Equal(o Expression) bool {
	b, ok := o.(*Atom)
	return ok && a.Name == b.Name
}
func (a *Atom) Less(o Expression) bool {
	if o.Kind() != KindAtom {
		return KindAtom < o.Kind()
	}
	return a.Name < o.(*Atom).Name
}

// NegAtom is the negation of a variable. Negation is never applied to a
// non-atom in normal form; Not(And ...) etc. are rewritten away by Normal.
type NegAtom struct{ Name string }

func NewNegAtom(name string) *NegAtom { return &NegAtom{Name: name} }

func (n *NegAtom) Kind() Kind     { return KindNegAtom }
func (n *NegAtom) String() string { return "~" + n.Name }
func (n *NegAtom) Equal(o Expression) bool {
	b, ok := o.(*NegAtom)
	return ok && n.Name == b.Name
}
func (n *NegAtom) Less(o Expression) bool {
	if o.Kind() != KindNegAtom {
		return KindNegAtom < o.Kind()
	}
	return n.Name < o.(*NegAtom).Name
}

// And is commutative, associative, idempotent conjunction, represented as an
// ordered set with unique elements: Operands is always sorted by Less and
// free of structural duplicates (see canonicalize). In normal form it has at
// least two children; a pre-normal And built directly by the parser may have
// exactly two, possibly structurally equal and therefore collapsed to one,
// which Normal then reduces to that single operand.
type And struct{ Operands []Expression }

func NewAnd(children ...Expression) *And { return &And{Operands: canonicalize(children)} }

func (a *And) Kind() Kind     { return KindAnd }
func (a *And) String() string { return joinOperands(a.Operands, " & ") }
func (a *And) Equal(o Expression) bool {
	b, ok := o.(*And)
	return ok && operandsEqual(a.Operands, b.Operands)
}
func (a *And) Less(o Expression) bool {
	if o.Kind() != KindAnd {
		return KindAnd < o.Kind()
	}
	return operandsLess(a.Operands, o.(*And).Operands)
}

// Or is the dual of And.
type Or struct{ Operands []Expression }

func NewOr(children ...Expression) *Or { return &Or{Operands: canonicalize(children)} }

func (a *Or) Kind() Kind     { return KindOr }
func (a *Or) String() string { return joinOperands(a.Operands, " | ") }
func (a *Or) Equal(o Expression) bool {
	b, ok := o.(*Or)
	return ok && operandsEqual(a.Operands, b.Operands)
}
func (a *Or) Less(o Expression) bool {
	if o.Kind() != KindOr {
		return KindOr < o.Kind()
	}
	return operandsLess(a.Operands, o.(*Or).Operands)
}

// Not is present only in pre-normal trees; Normal eliminates every
// occurrence by pushing negation down to the atoms (queries.go).
type Not struct{ Child Expression }

func NewNot(child Expression) *Not { return &Not{Child: child} }

func (n *Not) Kind() Kind     { return KindNot }
func (n *Not) String() string { return "~(" + n.Child.String() + ")" }
func (n *Not) Equal(o Expression) bool {
	b, ok := o.(*Not)
	return ok && n.Child.Equal(b.Child)
}
func (n *Not) Less(o Expression) bool {
	if o.Kind() != KindNot {
		return KindNot < o.Kind()
	}
	return n.Child.Less(o.(*Not).Child)
}

func joinOperands(ops []Expression, sep string) string {
	parts := make([]string, len(ops))
	for i, op := range ops {
		if op.Kind() == KindAnd || op.Kind() == KindOr {
			parts[i] = "(" + op.String() + ")"
		} else {
			parts[i] = op.String()
		}
	}
	return strings.Join(parts, sep)
}

// canonicalize sorts children by Less and removes structural duplicates,
// giving And/Or the "ordered set with unique elements" representation
// required by §3: free commutativity and idempotence, deterministic
// iteration order for every consumer of Children/Operands.
func canonicalize(children []Expression) []Expression {
	out := make([]Expression, 0, len(children))
	for _, c := range children {
		dup := false
		for _, existing := range out {
			if existing.Equal(c) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, c)
		}
	}
	sortExpressions(out)
	return out
}

func sortExpressions(xs []Expression) {
	// Small fixed point insertion sort: operand lists are short in practice
	// (propositional formulas meant for hand verification), and this keeps
	// the ordering logic next to Less without pulling in sort.Slice's
	// reflection-based comparator for every call.
	for i := 1; i < len(xs); i++ {
		for j := i; j > 0 && xs[j].Less(xs[j-1]); j-- {
			xs[j], xs[j-1] = xs[j-1], xs[j]
		}
	}
}

func operandsEqual(a, b []Expression) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

func operandsLess(a, b []Expression) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i].Less(b[i]) {
			return true
		}
		if b[i].Less(a[i]) {
			return false
		}
	}
	return len(a) < len(b)
}
