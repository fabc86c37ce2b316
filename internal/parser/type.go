package parser

import (
	"github.com/hark-lang/hark/internal/diagnostics"
	"github.com/hark-lang/hark/internal/span"
	"github.com/hark-lang/hark/internal/token"
	"github.com/hark-lang/hark/internal/types"
)

// parseType is the recursive-descent type grammar: ground names, the
// function-type form `fn(T, ...) -> T`, and a parenthesized type that is
// either one grouped type or a tuple type. The latter shares the same
// backtrack discipline as expression grouping: try one type and only
// treat the parens as a tuple if RParen doesn't immediately follow. A
// failed inner parse does not backtrack, matching the original
// implementation this is grounded on.
func (p *Parser) parseType() (types.Ty, *diagnostics.Error) {
	tok := p.peek()
	switch {
	case p.matches(token.BOOL):
		return types.Bool{Sp: span.Single(tok.ByteIndex, tok.Line)}, nil
	case p.matches(token.INT):
		return types.I64{Sp: span.Single(tok.ByteIndex, tok.Line)}, nil
	case p.matches(token.FN):
		if _, err := p.expect(token.LPAREN); err != nil {
			return nil, err
		}
		domain, err := parseDelimited(p, (*Parser).parseType)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RARROW); err != nil {
			return nil, err
		}
		codomain, err := p.parseType()
		if err != nil {
			return nil, err
		}
		sp := p.spanFromPos(tok.ByteIndex, tok.Line)
		return types.Arrow{Sp: sp, Domain: types.Tuple{Sp: sp, Elems: domain}, Codomain: codomain}, nil
	case p.matches(token.LPAREN):
		if p.matches(token.RPAREN) {
			return types.Unit(p.spanFromPos(tok.ByteIndex, tok.Line)), nil
		}
		mark := p.mark()
		ty, err := p.parseType()
		if err != nil {
			return nil, err
		}
		if p.matches(token.RPAREN) {
			return ty, nil
		}
		p.resetTo(mark)
		elems, err := parseDelimited(p, (*Parser).parseType)
		if err != nil {
			return nil, err
		}
		return types.Tuple{Sp: p.spanFromPos(tok.ByteIndex, tok.Line), Elems: elems}, nil
	case tok.Kind == token.TYPENAME:
		return nil, diagnostics.New(diagnostics.CodeParseExpected, span.Single(tok.ByteIndex, tok.Line),
			"named types are not yet supported: %q", tok.Lexeme)
	default:
		return nil, diagnostics.New(diagnostics.CodeParseExpected, span.Single(tok.ByteIndex, tok.Line),
			"expected a type, found %q", tok.Lexeme)
	}
}
