// Package parser is the Pratt-style expression parser spec.md §4.2
// describes: a null-denotation table for tokens that can start an
// expression, a left-denotation table for tokens that continue one, and
// a single bounded backtrack slot for the grouping/tuple and
// parenthesized-type ambiguities. It follows the teacher's
// prefixParseFns/infixParseFns dispatch-table convention rather than a
// precedence-climbing switch.
package parser

import (
	"github.com/hark-lang/hark/internal/ast"
	"github.com/hark-lang/hark/internal/diagnostics"
	"github.com/hark-lang/hark/internal/ids"
	"github.com/hark-lang/hark/internal/span"
	"github.com/hark-lang/hark/internal/token"
	"github.com/hark-lang/hark/internal/types"
)

type nullFn func(p *Parser, start token.Token) (ast.Expr, *diagnostics.Error)
type leftFn func(p *Parser, left ast.Expr, op token.Token) (ast.Expr, *diagnostics.Error)

var nullTable map[token.Kind]nullFn
var leftTable map[token.Kind]leftFn

func init() {
	nullTable = map[token.Kind]nullFn{
		token.INTEGRAL:   parseIntegral,
		token.TRUE:       parseBool,
		token.FALSE:      parseBool,
		token.STR:        parseStr,
		token.IDENTIFIER: parseID,
		token.PLUS:       parsePrefixOp,
		token.MINUS:      parsePrefixOp,
		token.TILDE:      parsePrefixOp,
		token.BANG:       parsePrefixOp,
		token.LPAREN:     parseGroupOrTuple,
		token.LBRACE:     parseBlock,
		token.LET:        parseLet,
		token.FN:         parseLambda,
	}
	leftTable = map[token.Kind]leftFn{
		token.LPAREN:    parseApplication,
		token.PLUS:      parseBinary,
		token.MINUS:     parseBinary,
		token.STAR:      parseBinary,
		token.SLASH:     parseBinary,
		token.DSTAR:     parseBinary,
		token.DEQUAL:    parseBinary,
		token.BANGEQUAL: parseBinary,
		token.LT:        parseBinary,
		token.LTE:       parseBinary,
		token.GT:        parseBinary,
		token.GTE:       parseBinary,
	}
}

// Parser holds the token cursor and the counter it shares with the
// inferencer (spec.md §4.3).
type Parser struct {
	tokens []token.Token
	i      int
	ids    *ids.Counter
}

func New(tokens []token.Token, counter *ids.Counter) *Parser {
	return &Parser{tokens: tokens, ids: counter}
}

// Parse consumes exactly one expression and requires the token stream be
// fully consumed afterward, surfacing a trailing-input diagnostic
// otherwise (spec.md §4.2).
func Parse(tokens []token.Token, counter *ids.Counter) (ast.Expr, *diagnostics.List) {
	p := New(tokens, counter)
	expr, err := p.parseExpression(ZERO)
	if err != nil {
		return nil, diagnostics.Single(err)
	}
	if p.peek().Kind != token.EOF {
		tok := p.peek()
		return nil, diagnostics.Single(diagnostics.New(diagnostics.CodeParseTrailing,
			span.Single(tok.ByteIndex, tok.Line), "unexpected trailing input: %q", tok.Lexeme))
	}
	return expr, nil
}

// parseExpression is the core Pratt loop: dispatch the null denotation of
// the current token, then repeatedly dispatch left denotations as long as
// they bind tighter than minPrec.
func (p *Parser) parseExpression(minPrec Precedence) (ast.Expr, *diagnostics.Error) {
	start := p.next()
	null, ok := nullTable[start.Kind]
	if !ok {
		return nil, diagnostics.New(diagnostics.CodeParseNoNud,
			span.Single(start.ByteIndex, start.Line), "unexpected token %q, expected an expression", start.Lexeme)
	}
	left, err := null(p, start)
	if err != nil {
		return nil, err
	}
	for ofLeft(p.peek().Kind) > minPrec {
		op := p.next()
		left, err = leftTable[op.Kind](p, left, op)
		if err != nil {
			return nil, err
		}
	}
	return left, nil
}

func (p *Parser) peek() token.Token {
	if p.i < len(p.tokens) {
		return p.tokens[p.i]
	}
	return p.tokens[len(p.tokens)-1]
}

func (p *Parser) next() token.Token {
	tok := p.peek()
	if p.i < len(p.tokens) {
		p.i++
	}
	return tok
}

func (p *Parser) matches(kind token.Kind) bool {
	if p.peek().Kind == kind {
		p.next()
		return true
	}
	return false
}

func (p *Parser) expect(kind token.Kind) (token.Token, *diagnostics.Error) {
	tok := p.peek()
	if tok.Kind != kind {
		return token.Token{}, diagnostics.New(diagnostics.CodeParseExpected,
			span.Single(tok.ByteIndex, tok.Line), "expected %s, found %q", kind, tok.Lexeme)
	}
	return p.next(), nil
}

// mark and resetTo implement the single bounded backtrack slot: a call
// site saves the cursor, attempts a parse, and rewinds if it guessed the
// wrong production.
func (p *Parser) mark() int       { return p.i }
func (p *Parser) resetTo(i int)   { p.i = i }

// spanFrom covers [start, last consumed token].
func (p *Parser) spanFrom(start token.Token) span.Span {
	return p.spanFromPos(start.ByteIndex, start.Line)
}

func (p *Parser) spanFromPos(lo, line int) span.Span {
	last := p.tokens[p.i-1]
	return span.Span{Lo: lo, Hi: last.ByteIndex + len(last.Lexeme), Line: line}
}

func (p *Parser) freshInferAt(tok token.Token) types.Ty {
	return types.Infer{Sp: span.Single(tok.ByteIndex, tok.Line), ID: p.ids.Next()}
}

// parseDelimited parses a comma-separated, RParen-terminated list whose
// elements can themselves be expressions, types, or binders (spec.md
// §4.2's generic parse_tuple helper). A trailing comma before RParen is
// accepted because the loop re-checks for RParen before parsing another
// element.
func parseDelimited[T any](p *Parser, parseItem func(*Parser) (T, *diagnostics.Error)) ([]T, *diagnostics.Error) {
	var items []T
	for !p.matches(token.RPAREN) {
		item, err := parseItem(p)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
		if !p.matches(token.COMMA) {
			if _, err := p.expect(token.RPAREN); err != nil {
				return nil, err
			}
			break
		}
	}
	return items, nil
}
