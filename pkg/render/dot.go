package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/gitrdm/tautology/pkg/logic"
)

// DOT renders a proof DAG as Graphviz DOT source (§6.3): nodes labelled by
// their sequent's debug form, node ids derived from the stable UUIDv5 the
// engine already assigned each vertex (pkg/logic.ProofNode.ID), so the
// output is deterministic across runs without a separate hashing step here.
func DOT(p *logic.ProofDAG) string {
	var b strings.Builder
	b.WriteString("digraph proof {\n")
	b.WriteString("  rankdir=BT;\n")
	b.WriteString("  node [shape=box, fontname=\"monospace\"];\n")

	byID := p.Nodes()
	sortedIDs := make([]uuid.UUID, 0, len(byID))
	for id := range byID {
		sortedIDs = append(sortedIDs, id)
	}
	sort.Slice(sortedIDs, func(i, j int) bool { return sortedIDs[i].String() < sortedIDs[j].String() })

	for _, id := range sortedIDs {
		n := byID[id]
		fmt.Fprintf(&b, "  %q [label=%q];\n", n.ID.String(), n.Sequent.String())
	}
	for _, id := range sortedIDs {
		n := byID[id]
		for _, c := range sortedChildren(n, byID) {
			fmt.Fprintf(&b, "  %q -> %q [label=%q];\n", n.ID.String(), c.ID.String(), string(n.Rules[c.ID]))
		}
	}
	b.WriteString("}\n")
	return b.String()
}
