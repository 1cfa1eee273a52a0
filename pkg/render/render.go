// Package render implements the pretty-printer and Graphviz DOT exporter
// used to visualise a proof DAG (SPEC_FULL.md §6.3). Neither component is
// part of the coalescence engine's core subject matter; both are named
// external collaborators that the CLI wires together.
package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/gitrdm/tautology/pkg/logic"
)

// Debug renders a proof DAG as an indented tree of sequents, depth-first
// from the root, for quick terminal inspection. A sequent reachable by more
// than one path is rendered once per occurrence, with a "(see above)"
// marker on repeats so the output stays finite even though the DAG itself
// shares structure.
func Debug(p *logic.ProofDAG) string {
	var b strings.Builder
	seen := make(map[uuid.UUID]bool)
	nodes := p.Nodes()
	var walk func(n *logic.ProofNode, depth int)
	walk = func(n *logic.ProofNode, depth int) {
		indent := strings.Repeat("  ", depth)
		fmt.Fprintf(&b, "%s%s\n", indent, n.Sequent.String())
		if seen[n.ID] {
			fmt.Fprintf(&b, "%s  (see above)\n", indent)
			return
		}
		seen[n.ID] = true
		for _, c := range sortedChildren(n, nodes) {
			walk(c, depth+1)
		}
	}
	walk(p.Root, 0)
	return b.String()
}

// sortedChildren resolves n's successor ids against the DAG's node table and
// orders them by sequent key, so Debug and DOT output are deterministic
// across runs (§5).
func sortedChildren(n *logic.ProofNode, nodes map[uuid.UUID]*logic.ProofNode) []*logic.ProofNode {
	out := make([]*logic.ProofNode, 0, len(n.Rules))
	for id := range n.Rules {
		if node, ok := nodes[id]; ok {
			out = append(out, node)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Sequent.Key() < out[j].Sequent.Key() })
	return out
}
