package logic

import "github.com/gitrdm/tautology/internal/logx"

// engineConfig holds the tunables of a single Coalesce run. It is built from
// Option values the way the teacher's SolveOptimalWithOptions builds its
// optConfig (pkg/minikanren/optimize.go): a private struct plus a handful of
// exported With* constructors, rather than a public struct passed by value.
type engineConfig struct {
	dimensionBound func(ix *Index) int
	sparse         bool
	logger         *logx.Logger
}

// Option configures a Coalesce (or Proof) run.
type Option func(*engineConfig)

func defaultConfig() *engineConfig {
	return &engineConfig{
		dimensionBound: func(ix *Index) int { return ix.DimensionBound() },
		sparse:         false,
		logger:         logx.Nop(),
	}
}

// WithDimensionBound overrides the default dimension bound of |atoms(E)|.
// DESIGN.md's Open Question decision (a) notes that some variants use
// |names(E)|+1 instead; this lets a caller select that alternative without
// forking the engine.
func WithDimensionBound(n int) Option {
	return func(c *engineConfig) { c.dimensionBound = func(*Index) int { return n } }
}

// WithSparse enables the sparse_fire frontier-shrink optimisation (§4.2.4).
// It is a correctness-preserving optimisation only: enabling it must never
// change the success/failure verdict of Coalesce, only its running time.
func WithSparse(enabled bool) Option {
	return func(c *engineConfig) { c.sparse = enabled }
}

// WithLogger attaches a logging sink; see internal/logx and §6.4. Without
// this option the engine uses logx.Nop(); a nil logger also makes every call
// a no-op.
func WithLogger(l *logx.Logger) Option {
	return func(c *engineConfig) { c.logger = l }
}

// Spawn seeds the frontier with the axiom sequents reachable at atom level:
// every {p, ¬p} pair of atoms occurring in the index's root expression
// (§4.2.1). An empty result means the engine must fail immediately: no
// proof can begin.
func Spawn(ix *Index) *Frontier {
	f := NewFrontier()
	atoms := ix.Atoms()
	for _, p := range atoms {
		var negOfP Expression
		switch a := p.(type) {
		case *Atom:
			negOfP = NewNegAtom(a.Name)
		case *NegAtom:
			negOfP = NewAtom(a.Name)
		default:
			continue
		}
		for _, q := range atoms {
			if q.Equal(negOfP) {
				f.Add(NewToken(p, q))
			}
		}
	}
	return f
}

// Fire performs one round of the fire rewrite (§4.2.1): for every token and
// every element x of that token, every occurrence-parent of x in E yields a
// candidate parent-token, admitted according to the And/Or sibling rule.
// The previous frontier is preserved in the result (monotone union), so Fire
// never loses a derivation already made.
func Fire(ix *Index, t *Frontier) *Frontier {
	next := t.Clone()
	for _, tok := range t.Tokens() {
		for _, x := range tok.Elements() {
			for _, parent := range ix.Parents(x) {
				without := tok.Without(x)
				candidate := without.With(parent)
				if next.Has(candidate) {
					continue
				}
				siblings := Children(parent)
				admit := false
				switch parent.Kind() {
				case KindAnd:
					admit = true
					for _, s := range siblings {
						if !t.Has(without.With(s)) {
							admit = false
							break
						}
					}
				case KindOr:
					for _, s := range siblings {
						if t.Has(without.With(s)) {
							admit = true
							break
						}
					}
				}
				if admit {
					next.Add(candidate)
				}
			}
		}
	}
	return next
}

// project widens every token of t with every subexpression of E not already
// present as a "don't-care" weakening context (§4.2.1). It is only legal
// while the frontier's largest token is still within the dimension bound
// (§4.2.2); the main loop enforces that precondition.
func project(ix *Index, t *Frontier) *Frontier {
	next := t.Clone()
	subs := ix.Subexpressions()
	for _, tok := range t.Tokens() {
		for _, s := range subs {
			widened := tok.With(s)
			if widened.Key() != tok.Key() {
				next.Add(widened)
			}
		}
	}
	return next
}

// sparseFire drops tokens subsumed by a parent-extension (§4.2.4): a
// non-empty t is removed when every x in t has some occurrence-parent p for
// which t ∪ {p} and (t \ {x}) ∪ {p} are both already present. A token
// holding an element with no parent (the root itself) is always kept. This is a
// correctness-preserving frontier shrink; Coalesce with sparse disabled is
// the normative algorithm.
func sparseFire(ix *Index, t *Frontier) *Frontier {
	keep := NewFrontier()
	for _, tok := range t.Tokens() {
		subsumed := len(tok.Elements()) > 0
		for _, x := range tok.Elements() {
			parents := ix.Parents(x)
			if len(parents) == 0 {
				subsumed = false
				break
			}
			foundSubsuming := false
			for _, p := range parents {
				withP := tok.With(p)
				withoutXwithP := tok.Without(x).With(p)
				if t.Has(withP) && t.Has(withoutXwithP) {
					foundSubsuming = true
					break
				}
			}
			if !foundSubsuming {
				subsumed = false
				break
			}
		}
		if !subsumed {
			keep.Add(tok)
		}
	}
	return keep
}

// Coalesce runs the main loop of §4.2.3 against root E: spawn, then
// alternate fire rounds with (bound-gated) project rounds until the
// singleton sequent {E} is derived or the frontier stabilises beyond the
// dimension bound. It returns the saturated frontier and true on success,
// or (nil, false) on failure — callers that need the failure reason should
// use Proof instead, which surfaces ErrNotCoalesceable.
func Coalesce(root Expression, opts ...Option) (*Frontier, bool) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	log := cfg.logger.Named(logx.CategoryCoalesce)

	ix := NewIndex(root)
	bound := cfg.dimensionBound(ix)
	goal := NewToken(root)

	spawnLog := cfg.logger.Named(logx.CategorySpawn)
	frontier := Spawn(ix)
	spawnLog.Debug("spawned axioms", "count", frontier.Len())
	if frontier.Len() == 0 {
		log.Info("coalesce failed: empty spawn", "expression", root.String())
		return nil, false
	}

	fireLog := cfg.logger.Named(logx.CategoryFire)
	projectLog := cfg.logger.Named(logx.CategoryProject)

	prev := NewFrontier()
	for !frontier.Has(goal) {
		if frontier.Equal(prev) {
			if frontier.MaxSize() <= bound {
				projectLog.Debug("projecting", "max_size", frontier.MaxSize(), "bound", bound)
				frontier = project(ix, frontier)
			} else {
				log.Info("coalesce failed: stabilised beyond dimension bound", "bound", bound)
				return nil, false
			}
		}
		prev = frontier
		frontier = Fire(ix, frontier)
		if cfg.sparse {
			frontier = sparseFire(ix, frontier)
		}
		fireLog.Trace("fired", "frontier_size", frontier.Len())
	}
	log.Info("coalesce succeeded", "frontier_size", frontier.Len())
	return frontier, true
}
