package parser

import (
	"github.com/hark-lang/hark/internal/ast"
	"github.com/hark-lang/hark/internal/diagnostics"
	"github.com/hark-lang/hark/internal/lexer"
	"github.com/hark-lang/hark/internal/span"
	"github.com/hark-lang/hark/internal/token"
	"github.com/hark-lang/hark/internal/types"
)

func parseIntegral(p *Parser, start token.Token) (ast.Expr, *diagnostics.Error) {
	value, err := lexer.ParseIntegral(start.Lexeme)
	if err != nil {
		// The lexer's INTEGRAL rule only ever matches digit runs, so the
		// only failure left is a literal outside the i64 range.
		return nil, diagnostics.New(diagnostics.CodeParseExpected, span.Single(start.ByteIndex, start.Line),
			"integer literal %q does not fit in i64", start.Lexeme)
	}
	ty := types.I64{Sp: span.Single(start.ByteIndex, start.Line)}
	return ast.NewIntegral(p.spanFrom(start), p.ids.Next(), ty, value), nil
}

func parseBool(p *Parser, start token.Token) (ast.Expr, *diagnostics.Error) {
	ty := types.Bool{Sp: span.Single(start.ByteIndex, start.Line)}
	return ast.NewBool(p.spanFrom(start), p.ids.Next(), ty, start.Kind == token.TRUE), nil
}

// parseStr strips the surrounding quotes. Strings have no ground type in
// this type system (spec.md §3 names only Bool/I64/F64), so the node
// keeps a fresh, permanently unconstrained inference variable.
func parseStr(p *Parser, start token.Token) (ast.Expr, *diagnostics.Error) {
	value := start.Lexeme
	if len(value) >= 2 {
		value = value[1 : len(value)-1]
	}
	return ast.NewStr(p.spanFrom(start), p.ids.Next(), p.freshInferAt(start), value), nil
}

func parseID(p *Parser, start token.Token) (ast.Expr, *diagnostics.Error) {
	return ast.NewID(p.spanFrom(start), p.ids.Next(), p.freshInferAt(start), start.Lexeme), nil
}

// parsePrefixOp handles Plus/Minus/Tilde/Bang. The operand is parsed at
// ZERO, not UNARY: spec.md §4.2 gives unary operators the loosest
// possible binding so a chain like `-x + y` parses as `-(x + y)`.
func parsePrefixOp(p *Parser, start token.Token) (ast.Expr, *diagnostics.Error) {
	inner, err := p.parseExpression(ZERO)
	if err != nil {
		return nil, err
	}
	return ast.NewUnary(p.spanFrom(start), p.ids.Next(), p.freshInferAt(start), start.Kind, inner), nil
}

// parseGroupOrTuple resolves the grouping/tuple ambiguity with the
// parser's one backtrack slot: try a single parenthesized expression
// first, and only fall back to a tuple if the closing paren doesn't
// immediately follow.
func parseGroupOrTuple(p *Parser, start token.Token) (ast.Expr, *diagnostics.Error) {
	if p.matches(token.RPAREN) {
		return ast.NewTuple(p.spanFrom(start), p.ids.Next(), types.Unit(p.spanFrom(start)), nil), nil
	}

	mark := p.mark()
	inner, err := p.parseExpression(ZERO)
	if err != nil {
		return nil, err
	}
	if p.matches(token.RPAREN) {
		return ast.NewGrouping(p.spanFrom(start), p.ids.Next(), inner), nil
	}
	p.resetTo(mark)

	elems, err := parseDelimited(p, func(p *Parser) (ast.Expr, *diagnostics.Error) {
		return p.parseExpression(ZERO)
	})
	if err != nil {
		return nil, err
	}
	return ast.NewTuple(p.spanFrom(start), p.ids.Next(), p.freshInferAt(start), elems), nil
}

func parseBlock(p *Parser, start token.Token) (ast.Expr, *diagnostics.Error) {
	var exprs []ast.Expr
	suppressed := false
	for {
		if p.matches(token.RBRACE) {
			suppressed = true
			break
		}
		e, err := p.parseExpression(ZERO)
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, e)
		if !p.matches(token.SEMICOLON) {
			if _, err := p.expect(token.RBRACE); err != nil {
				return nil, err
			}
			break
		}
	}
	return ast.NewBlock(p.spanFrom(start), p.ids.Next(), p.freshInferAt(start), exprs, suppressed), nil
}

// parseLet implements both the canonical statement form (`let x = e`,
// Body nil, type unit) and the optional `in` continuation (Body set,
// type equal to the continuation's) per SPEC_FULL.md §4.10.
func parseLet(p *Parser, start token.Token) (ast.Expr, *diagnostics.Error) {
	binder, err := p.parseBinder()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.EQUAL); err != nil {
		return nil, err
	}
	bound, err := p.parseExpression(ZERO)
	if err != nil {
		return nil, err
	}
	var body ast.Expr
	if p.matches(token.IN) {
		body, err = p.parseExpression(ZERO)
		if err != nil {
			return nil, err
		}
	}
	return ast.NewLet(p.spanFrom(start), p.ids.Next(), p.freshInferAt(start), binder, bound, body), nil
}

func parseLambda(p *Parser, start token.Token) (ast.Expr, *diagnostics.Error) {
	var params []ast.Binder
	var err *diagnostics.Error
	if p.matches(token.LPAREN) {
		params, err = parseDelimited(p, (*Parser).parseBinder)
		if err != nil {
			return nil, err
		}
	} else {
		b, err := p.parseBinder()
		if err != nil {
			return nil, err
		}
		params = []ast.Binder{b}
	}
	if _, err := p.expect(token.RFARROW); err != nil {
		return nil, err
	}
	body, err := p.parseExpression(ZERO)
	if err != nil {
		return nil, err
	}
	ret := body.Type()
	if p.matches(token.RARROW) {
		ret, err = p.parseType()
		if err != nil {
			return nil, err
		}
	}
	return ast.NewLambda(p.spanFrom(start), p.ids.Next(), p.freshInferAt(start), params, ret, body), nil
}
