package logic

import (
	"errors"
	"strings"
)

// Sentinel errors for the engine's failure modes (§7). Callers compare
// against these with errors.Is rather than matching on error strings.
var (
	// ErrMalformed signals that normalisation could not push a Not down to
	// an atom, violating the parser/normaliser contract (§4.1).
	ErrMalformed = errors.New("logic: malformed expression")

	// ErrNotCoalesceable signals that spawn produced no axioms, or that the
	// frontier stabilised beyond the dimension bound without deriving the
	// root sequent (§4.2.3).
	ErrNotCoalesceable = errors.New("logic: not coalesceable")
)

// ProofMalformedError is returned by Verify when a sink vertex of the proof
// DAG is not an axiom, or a node id is dangling. Verification aggregates
// every failure rather than stopping at the first (§4.3.3): all offending
// sequents are rendered and joined by newline.
type ProofMalformedError struct {
	Messages []string
}

func (e *ProofMalformedError) Error() string {
	return "logic: proof malformed:\n" + strings.Join(e.Messages, "\n")
}

// Is reports whether target is the ProofMalformed sentinel class, so callers
// can write errors.Is(err, logic.ErrProofMalformed) without depending on the
// concrete type.
func (e *ProofMalformedError) Is(target error) bool {
	return target == ErrProofMalformed
}

// ErrProofMalformed is the sentinel matched by ProofMalformedError.Is.
var ErrProofMalformed = errors.New("logic: proof malformed")

// InternalError wraps an assertion failure in the normalisation or lineage
// invariants (§7): these are treated as bugs and are never silently
// recovered, but they are still returned as ordinary errors rather than
// left to panic, so that downstream tools (the CLI, tests) can report them.
type InternalError struct {
	Assertion string
}

func (e *InternalError) Error() string { return "logic: internal: " + e.Assertion }

func (e *InternalError) Is(target error) bool {
	return target == ErrInternal
}

// ErrInternal is the sentinel matched by InternalError.Is.
var ErrInternal = errors.New("logic: internal assertion violated")
