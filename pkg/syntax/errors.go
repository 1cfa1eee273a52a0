// Package syntax implements the parser for the infix surface syntax of
// SPEC_FULL.md §6.1 (`a & b | c > d = e`) and desugars it directly into the
// Atom/NegAtom/And/Or/Not tree of pkg/logic, ready for logic.Normal. Parsing
// and normalisation are named external collaborators of the coalescence
// engine (§1), not part of its core subject matter, but they are still a
// required, fully implemented part of this repository (SPEC_FULL.md §2).
package syntax

import "fmt"

// ParseError is the single error type surfaced by Parse; it carries one of
// the three kinds named in §6.1 so callers can match on Kind without
// parsing the message.
type ParseError struct {
	Kind  ErrorKind
	What  string // the offending token text, when applicable
	Where int    // rune offset into the input
}

// ErrorKind enumerates the parser's error kinds (§6.1).
type ErrorKind int

const (
	UnmatchedParen ErrorKind = iota
	UnexpectedOperator
	EmptyExpression
)

func (e *ParseError) Error() string {
	switch e.Kind {
	case UnmatchedParen:
		return fmt.Sprintf("syntax: unmatched parenthesis at offset %d", e.Where)
	case UnexpectedOperator:
		return fmt.Sprintf("syntax: unexpected operator %q at offset %d", e.What, e.Where)
	case EmptyExpression:
		return fmt.Sprintf("syntax: empty expression at offset %d", e.Where)
	default:
		return "syntax: parse error"
	}
}
