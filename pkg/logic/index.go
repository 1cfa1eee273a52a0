package logic

// Index precomputes the queries the engine repeatedly needs against a fixed
// root expression E: its subexpressions, its atoms, and the lineage of every
// occurrence of every subexpression. As DESIGN.md records for index.go,
// lineages are borrowed references into E's own node values rather than
// clones, since E is immutable for the lifetime of a coalesce run.
type Index struct {
	root     Expression
	subexprs []Expression
	atoms    []Expression
	lineages map[string][][]Expression // canonical key -> ancestor chains
}

// NewIndex builds an Index over root, which callers are expected to have
// already passed through Normal (§4.2 assumes Coalesce/Proof only ever see
// Not-free input). NewIndex itself performs no normalisation and does not
// reject a root that still contains Not nodes; instead the lineage walk
// below descends through *Not the same as it does through And/Or children,
// so that even a non-normal-form root still gets a complete lineage index
// rather than silently dropping everything nested under a Not (which would
// otherwise leave Parents/Fire with missing parent occurrences for those
// nodes, producing a wrong coalesce verdict instead of an honest failure).
func NewIndex(root Expression) *Index {
	ix := &Index{
		root:     root,
		lineages: make(map[string][][]Expression),
	}
	ix.subexprs = Subexpressions(root)
	for _, s := range ix.subexprs {
		if s.Kind() == KindAtom || s.Kind() == KindNegAtom {
			ix.atoms = append(ix.atoms, s)
		}
	}
	var walk func(node Expression, ancestors []Expression)
	walk = func(node Expression, ancestors []Expression) {
		chain := append([]Expression{node}, ancestors...)
		key := Key(node)
		ix.lineages[key] = append(ix.lineages[key], chain)
		childAncestors := append([]Expression{node}, ancestors...)
		for _, c := range Children(node) {
			walk(c, childAncestors)
		}
		if n, ok := node.(*Not); ok {
			walk(n.Child, childAncestors)
		}
	}
	walk(root, nil)
	return ix
}

// Root returns the expression the index was built over.
func (ix *Index) Root() Expression { return ix.root }

// Subexpressions returns every distinct subexpression of the root, in
// canonical order.
func (ix *Index) Subexpressions() []Expression { return ix.subexprs }

// Atoms returns every distinct atom/neg-atom occurring in the root.
func (ix *Index) Atoms() []Expression { return ix.atoms }

// DimensionBound is |Atoms(E)| (§4.2.2): the maximum token size at which
// projection remains legal.
func (ix *Index) DimensionBound() int { return len(ix.atoms) }

// Lineages returns every ancestor-path `[x, parent, ..., root]` for every
// occurrence of x in the root expression's syntax tree. Two occurrences of
// a structurally-equal subexpression under different parents yield distinct
// chains.
func (ix *Index) Lineages(x Expression) [][]Expression {
	return ix.lineages[Key(x)]
}

// Parents returns the distinct immediate-parent expressions of every
// occurrence of x: the connective nodes p such that x is a child of p in
// some occurrence within the root. Fire (engine.go) uses this to locate the
// parent-token and sibling-tokens for a given element of the current token.
func (ix *Index) Parents(x Expression) []Expression {
	lineages := ix.Lineages(x)
	out := make([]Expression, 0, len(lineages))
	for _, chain := range lineages {
		if len(chain) < 2 {
			continue // x is the root itself: no parent occurrence
		}
		parent := chain[1]
		dup := false
		for _, p := range out {
			if p.Equal(parent) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, parent)
		}
	}
	return out
}

// Key returns the canonical string key used to compare expressions by
// content rather than identity, for use in maps (tokens, the lineage index,
// the proof DAG's vertex table).
func Key(e Expression) string { return e.String() }
