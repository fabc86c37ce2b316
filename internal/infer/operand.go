package infer

import (
	"github.com/hark-lang/hark/internal/ast"
	"github.com/hark-lang/hark/internal/diagnostics"
	"github.com/hark-lang/hark/internal/env"
	"github.com/hark-lang/hark/internal/ids"
	"github.com/hark-lang/hark/internal/token"
	"github.com/hark-lang/hark/internal/types"
)

func inferUnary(node *ast.Unary, e *env.Env, counter *ids.Counter) (types.Ty, types.Constraint, *diagnostics.Error) {
	ity, ic, err := Infer(node.Expr, e, counter)
	if err != nil {
		return nil, nil, err
	}

	var scheme types.Scheme
	switch node.Op {
	case token.BANG:
		scheme = unaryBoolScheme()
	case token.MINUS, token.TILDE, token.PLUS:
		subst, serr := types.Solve(ic)
		if serr != nil {
			return nil, nil, serr
		}
		scheme = unaryNumericScheme(types.Apply(subst, ity))
	default:
		panic("infer: unreachable unary operator")
	}

	arrow := scheme.Instantiate(counter).(types.Arrow)
	c := types.Conj([]types.Constraint{
		ic,
		types.Eq{T: ity, U: arrow.Domain.Elems[0]},
		types.Eq{T: node.Type(), U: arrow.Codomain},
	})
	return node.Type(), c, nil
}

func inferBinary(node *ast.Binary, e *env.Env, counter *ids.Counter) (types.Ty, types.Constraint, *diagnostics.Error) {
	lty, lc, err := Infer(node.Left, e, counter)
	if err != nil {
		return nil, nil, err
	}
	rty, rc, err := Infer(node.Right, e, counter)
	if err != nil {
		return nil, nil, err
	}

	var scheme types.Scheme
	switch node.Op {
	case token.PLUS, token.MINUS, token.STAR, token.SLASH, token.DSTAR:
		subst, serr := types.Solve(types.Conj([]types.Constraint{lc, rc}))
		if serr != nil {
			return nil, nil, serr
		}
		scheme = arithmeticScheme(types.Apply(subst, lty), types.Apply(subst, rty))
	case token.DEQUAL, token.BANGEQUAL, token.LT, token.LTE, token.GT, token.GTE:
		scheme = comparisonScheme()
	default:
		panic("infer: unreachable binary operator")
	}

	arrow := scheme.Instantiate(counter).(types.Arrow)
	c := types.Conj([]types.Constraint{
		lc, rc,
		types.Eq{T: lty, U: arrow.Domain.Elems[0]},
		types.Eq{T: rty, U: arrow.Domain.Elems[1]},
		types.Eq{T: node.Type(), U: arrow.Codomain},
	})
	return node.Type(), c, nil
}
