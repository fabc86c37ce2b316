package parser

import (
	"github.com/hark-lang/hark/internal/ast"
	"github.com/hark-lang/hark/internal/diagnostics"
	"github.com/hark-lang/hark/internal/token"
)

// parseApplication is LParen's left denotation: `left` is the callee.
// Each argument is a full expression parsed at ZERO, delimited by the
// commas and the closing paren, so `f(x + y)` and `f(g(x))` each take a
// single argument. The application itself binds at CALL, so `f(x) + 1`
// adds to the call's result.
func parseApplication(p *Parser, left ast.Expr, op token.Token) (ast.Expr, *diagnostics.Error) {
	args, err := parseDelimited(p, func(p *Parser) (ast.Expr, *diagnostics.Error) {
		return p.parseExpression(ZERO)
	})
	if err != nil {
		return nil, err
	}
	sp := p.spanFromPos(left.Span().Lo, left.Span().Line)
	return ast.NewApp(sp, p.ids.Next(), p.freshInferAt(op), left, args), nil
}

// parseBinary handles every infix arithmetic and comparison operator.
// Left-associative operators recurse at their own precedence, so an
// operator of the same precedence ends the right operand and
// same-precedence chains parse left-associatively; right-associative
// operators recurse one level below their own, so the right operand
// absorbs the rest of the chain.
func parseBinary(p *Parser, left ast.Expr, op token.Token) (ast.Expr, *diagnostics.Error) {
	prec := ofLeft(op.Kind)
	if rightAssociative(op.Kind) {
		prec--
	}
	right, err := p.parseExpression(prec)
	if err != nil {
		return nil, err
	}
	sp := p.spanFromPos(left.Span().Lo, left.Span().Line)
	return ast.NewBinary(sp, p.ids.Next(), p.freshInferAt(op), op.Kind, left, right), nil
}
