package logic

import (
	"fmt"

	"github.com/gitrdm/tautology/internal/logx"
	"github.com/google/uuid"
)

// proofNamespace seeds the UUIDv5 derivation of proof DAG vertex ids from a
// sequent's canonical key (SPEC_FULL.md §10): the same sequent always maps
// to the same id within a process, without a global counter, and the ids
// stay stable and legible across repeated runs over the same formula.
var proofNamespace = uuid.MustParse("2c1cb1a0-2f67-4e0b-9a3b-9a6e6b1c9c61")

// EdgeRule names which of the three inference rules (§4.3.1) accepted an
// edge, used for log lines and for DOT edge labels.
type EdgeRule string

const (
	RuleWeakening   EdgeRule = "weakening"
	RuleConnective  EdgeRule = "connective-introduction"
	RuleContraction EdgeRule = "contraction"
	RuleNone        EdgeRule = ""
)

// IsEdge implements the edge predicate of §4.3.1: given a parent sequent S
// and a candidate premise S', it reports whether one of Weakening,
// Connective-introduction or Contraction licenses the inference, trying the
// rules in that order and returning the first that accepts.
func IsEdge(s, sPrime Token) (bool, EdgeRule) {
	if s.Equal(sPrime) {
		return false, RuleNone
	}
	if s.IsSupersetOf(sPrime) {
		return true, RuleWeakening
	}
	removed := setDiff(s, sPrime)
	added := setDiff(sPrime, s)
	if len(removed) == 1 && len(added) == 1 {
		parent, child := removed[0], added[0]
		for _, c := range Children(parent) {
			if c.Equal(child) {
				return true, RuleConnective
			}
		}
	}
	if len(removed) <= 1 && len(added) == 1 {
		child := added[0]
		for _, p := range s.Elements() {
			for _, c := range Children(p) {
				if c.Equal(child) {
					return true, RuleContraction
				}
			}
		}
	}
	return false, RuleNone
}

func setDiff(a, b Token) []Expression {
	out := make([]Expression, 0)
	for _, x := range a.Elements() {
		if !b.Has(x) {
			out = append(out, x)
		}
	}
	return out
}

// ProofNode is a vertex of the extracted proof DAG: a sequent together with
// a stable id and its outgoing edges.
type ProofNode struct {
	ID       uuid.UUID
	Sequent  Token
	Rules    map[uuid.UUID]EdgeRule // outgoing edge -> the rule that licensed it
	children []*ProofNode
}

func nodeID(t Token) uuid.UUID { return uuid.NewSHA1(proofNamespace, []byte(t.Key())) }

// ProofDAG is the extracted proof: vertices keyed by sequent identity,
// edges directed, populated only during extraction and never mutated after
// verification begins (§3). State moves one-way through Fresh ->
// Backtracked -> {Verified, Rejected} (§4.3.4).
type ProofDAG struct {
	Root  *ProofNode
	nodes map[uuid.UUID]*ProofNode
	// edges records (a,b) pairs already inserted in either direction, so
	// that reverse-edge suppression keeps the graph acyclic (§9 design
	// notes) even though Weakening/Contraction could otherwise license a
	// symmetric pair.
	edges map[[2]uuid.UUID]bool

	state proofState
	// verifyErrors is populated by Verify and retained so a Rejected proof
	// can still be inspected (§4.3.4: a Rejected proof is still returned).
	verifyErrors []string
}

type proofState int

const (
	stateFresh proofState = iota
	stateBacktracked
	stateVerified
	stateRejected
)

func (s proofState) String() string {
	switch s {
	case stateFresh:
		return "Fresh"
	case stateBacktracked:
		return "Backtracked"
	case stateVerified:
		return "Verified"
	case stateRejected:
		return "Rejected"
	default:
		return "Unknown"
	}
}

// State reports the extraction state machine's current value (§4.3.4).
func (p *ProofDAG) State() string { return p.state.String() }

// Nodes returns every vertex of the DAG, keyed by id.
func (p *ProofDAG) Nodes() map[uuid.UUID]*ProofNode { return p.nodes }

func (p *ProofDAG) getOrCreate(t Token) *ProofNode {
	id := nodeID(t)
	if n, ok := p.nodes[id]; ok {
		return n
	}
	n := &ProofNode{ID: id, Sequent: t, Rules: make(map[uuid.UUID]EdgeRule)}
	p.nodes[id] = n
	return n
}

func (p *ProofDAG) addEdge(from, to *ProofNode, rule EdgeRule) {
	key := [2]uuid.UUID{from.ID, to.ID}
	rev := [2]uuid.UUID{to.ID, from.ID}
	if p.edges[key] || p.edges[rev] {
		return
	}
	p.edges[key] = true
	from.children = append(from.children, to)
	from.Rules[to.ID] = rule
}

// Proof runs Coalesce over root and, on success, backtracks the saturated
// frontier into a ProofDAG (§4.3.2). It fails with ErrNotCoalesceable if no
// proof exists within the search bound.
func Proof(root Expression, opts ...Option) (*ProofDAG, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	frontier, ok := Coalesce(root, opts...)
	if !ok {
		return nil, ErrNotCoalesceable
	}
	ix := NewIndex(root)
	return extract(ix, root, frontier, cfg.logger)
}

// extract performs the backward walk of §4.3.2: starting from the path
// [{E}], visit every token of the saturated frontier connected by IsEdge and
// not already on the current path, recording edges and assigning node ids
// on first encounter. The path, not a global visited set, gates recursion,
// so the resulting graph is acyclic while still sharing structure (e.g. two
// different derivations reaching the same axiom keep a single vertex).
func extract(ix *Index, root Expression, frontier *Frontier, logger *logx.Logger) (*ProofDAG, error) {
	backtrackLog := logger.Named(logx.CategoryBacktrack)
	edgeLog := logger.Named(logx.CategoryIsEdge)

	dag := &ProofDAG{
		nodes: make(map[uuid.UUID]*ProofNode),
		edges: make(map[[2]uuid.UUID]bool),
		state: stateFresh,
	}
	goal := NewToken(root)
	dag.Root = dag.getOrCreate(goal)
	dag.state = stateBacktracked

	var walk func(current Token, path []string)
	walk = func(current Token, path []string) {
		currentNode := dag.getOrCreate(current)
		backtrackLog.Trace("visiting", "sequent", current.String())
		for _, candidate := range frontier.Tokens() {
			if onPath(candidate.Key(), path) {
				continue
			}
			ok, rule := IsEdge(current, candidate)
			edgeLog.Trace("checked edge", "from", current.String(), "to", candidate.String(), "ok", ok)
			if !ok {
				continue
			}
			childNode := dag.getOrCreate(candidate)
			dag.addEdge(currentNode, childNode, rule)
			walk(candidate, append(path, candidate.Key()))
		}
	}
	walk(goal, []string{goal.Key()})
	return dag, nil
}

func onPath(key string, path []string) bool {
	for _, p := range path {
		if p == key {
			return true
		}
	}
	return false
}

// Verify re-validates an already-extracted DAG (§4.3.3): from the root,
// every sink (no outgoing edges) must be an axiom {p, ¬p}; every non-sink is
// verified recursively. Failures aggregate rather than stopping at the
// first, joined by newline in the returned error.
func Verify(p *ProofDAG) error {
	visited := make(map[uuid.UUID]bool)
	var errs []string
	var walk func(n *ProofNode)
	walk = func(n *ProofNode) {
		if visited[n.ID] {
			return
		}
		visited[n.ID] = true
		if len(n.children) == 0 {
			if !isAxiom(n.Sequent) {
				errs = append(errs, fmt.Sprintf("sink %s is not an axiom {p, ~p}", n.Sequent.String()))
			}
			return
		}
		for _, c := range n.children {
			walk(c)
		}
	}
	if p.Root == nil {
		errs = append(errs, "proof has no root node")
	} else {
		walk(p.Root)
	}
	if len(errs) > 0 {
		p.state = stateRejected
		p.verifyErrors = errs
		return &ProofMalformedError{Messages: errs}
	}
	p.state = stateVerified
	return nil
}

// isAxiom reports whether t is a two-element sequent {p, ¬p} for some atom
// p (§3, §8 property 7).
func isAxiom(t Token) bool {
	if t.Size() != 2 {
		return false
	}
	elems := t.Elements()
	a, b := elems[0], elems[1]
	switch av := a.(type) {
	case *Atom:
		bn, ok := b.(*NegAtom)
		return ok && bn.Name == av.Name
	case *NegAtom:
		ba, ok := b.(*Atom)
		return ok && ba.Name == av.Name
	default:
		return false
	}
}
