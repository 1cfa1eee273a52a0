package syntax

import "github.com/gitrdm/tautology/pkg/logic"

// parser implements recursive-descent parsing for the infix surface syntax,
// grounded on the pack's classical-logic parser convention (current index
// into a flat token slice, peek/advance/isAtEnd helpers).
type parser struct {
	toks    []token
	current int
}

// Parse parses src into a pre-normal logic.Expression. The four binary
// operators are all left-associative at a single precedence level per
// §6.1 — `a & b | c` therefore parses as `(a & b) | c`, not by operator
// priority — and `>`/`=` are desugared directly into Or/And/Not combinations
// at parse time, since logic.Expression has no Implies/Iff variant of its
// own (§3): the normaliser only ever has to deal with Atom, NegAtom, And,
// Or, Not.
func Parse(src string) (logic.Expression, error) {
	toks, err := lex(src)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	if p.peek().kind == tokEOF {
		return nil, &ParseError{Kind: EmptyExpression, Where: 0}
	}
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if !p.isAtEnd() {
		if p.peek().kind == tokRParen {
			return nil, &ParseError{Kind: UnmatchedParen, Where: p.peek().start}
		}
		return nil, &ParseError{Kind: UnexpectedOperator, What: p.peek().text, Where: p.peek().start}
	}
	return expr, nil
}

func (p *parser) parseExpression() (logic.Expression, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		switch p.peek().kind {
		case tokAnd:
			p.advance()
			right, err := p.parseUnary()
			if err != nil {
				return nil, err
			}
			left = logic.NewAnd(left, right)
		case tokOr:
			p.advance()
			right, err := p.parseUnary()
			if err != nil {
				return nil, err
			}
			left = logic.NewOr(left, right)
		case tokImplies:
			p.advance()
			right, err := p.parseUnary()
			if err != nil {
				return nil, err
			}
			left = logic.NewOr(logic.NewNot(left), right)
		case tokIff:
			p.advance()
			right, err := p.parseUnary()
			if err != nil {
				return nil, err
			}
			left = logic.NewAnd(
				logic.NewOr(logic.NewNot(left), right),
				logic.NewOr(logic.NewNot(right), left),
			)
		default:
			return left, nil
		}
	}
}

func (p *parser) parseUnary() (logic.Expression, error) {
	if p.peek().kind == tokNot {
		p.advance()
		child, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return logic.NewNot(child), nil
	}
	return p.parsePrimary()
}

func (p *parser) parsePrimary() (logic.Expression, error) {
	tok := p.peek()
	switch tok.kind {
	case tokAtom:
		p.advance()
		return logic.NewAtom(tok.text), nil
	case tokLParen:
		p.advance()
		inner, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if p.peek().kind != tokRParen {
			return nil, &ParseError{Kind: UnmatchedParen, Where: tok.start}
		}
		p.advance()
		return inner, nil
	case tokEOF:
		return nil, &ParseError{Kind: EmptyExpression, Where: tok.start}
	case tokRParen:
		return nil, &ParseError{Kind: UnmatchedParen, Where: tok.start}
	default:
		return nil, &ParseError{Kind: UnexpectedOperator, What: tok.text, Where: tok.start}
	}
}

func (p *parser) peek() token { return p.toks[p.current] }

func (p *parser) advance() token {
	t := p.toks[p.current]
	if p.current < len(p.toks)-1 {
		p.current++
	}
	return t
}

func (p *parser) isAtEnd() bool { return p.peek().kind == tokEOF }
