package parser

import "github.com/hark-lang/hark/internal/token"

// Precedence implements spec.md §4.1's fixed, ordered precedence table.
type Precedence int

const (
	ZERO Precedence = iota
	ASSIGN
	OR
	AND
	EQ
	CMP
	BITOR
	BITXOR
	BITAND
	SHIFT
	TERM
	FACTOR
	EXPO
	CAST
	UNARY
	CALL
	PRIMARY
)

// ofLeft is the left-denotation precedence of a token: how tightly it
// binds when it appears after an already-parsed expression.
func ofLeft(kind token.Kind) Precedence {
	switch kind {
	case token.PLUS, token.MINUS:
		return TERM
	case token.STAR, token.SLASH:
		return FACTOR
	case token.DSTAR:
		return EXPO
	case token.DEQUAL, token.BANGEQUAL:
		return EQ
	case token.LT, token.LTE, token.GT, token.GTE:
		return CMP
	case token.LPAREN:
		return CALL
	default:
		return ZERO
	}
}

// rightAssociative reports whether tok's binary parselet should recurse
// one level below its own precedence (right-associative) rather than at
// it.
func rightAssociative(kind token.Kind) bool {
	switch kind {
	case token.DSTAR, token.EQUAL:
		return true
	default:
		return false
	}
}
