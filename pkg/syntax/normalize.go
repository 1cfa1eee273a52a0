package syntax

import "github.com/gitrdm/tautology/pkg/logic"

// ParseNormal parses src and immediately normalises the result, which is
// the form every other entry point in this repository (Coalesce, Proof)
// expects to receive (§2: parse -> normalise -> engine -> extractor).
func ParseNormal(src string) (logic.Expression, error) {
	expr, err := Parse(src)
	if err != nil {
		return nil, err
	}
	return logic.Normal(expr)
}
