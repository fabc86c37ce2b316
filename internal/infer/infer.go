// Package infer is the constraint generator spec.md §4.5 specifies: one
// rule per ast.Expr kind, producing a type and a Constraint tree that
// internal/types.Solve later resolves to a substitution. It walks the
// AST with a type switch, the same dispatch style the teacher's
// typesystem package uses for its own tree-walking passes.
package infer

import (
	"github.com/hark-lang/hark/internal/ast"
	"github.com/hark-lang/hark/internal/diagnostics"
	"github.com/hark-lang/hark/internal/env"
	"github.com/hark-lang/hark/internal/ids"
	"github.com/hark-lang/hark/internal/types"
)

// Infer returns the type of expr, the constraint accumulated while
// generating it, and a diagnostic if expr could not be typed at all
// (unbound identifier, occurs-check failure, unification failure). The
// returned Ty is only principal after the caller applies the solution of
// Solve(constraint) to it.
func Infer(expr ast.Expr, e *env.Env, counter *ids.Counter) (types.Ty, types.Constraint, *diagnostics.Error) {
	switch node := expr.(type) {
	case *ast.Integral:
		if _, ok := node.Type().(types.I64); !ok {
			panic("infer: integral literal parsed without an I64 type hint")
		}
		return node.Type(), types.Empty{}, nil
	case *ast.Bool:
		if _, ok := node.Type().(types.Bool); !ok {
			panic("infer: bool literal parsed without a Bool type hint")
		}
		return node.Type(), types.Empty{}, nil
	case *ast.Str:
		return node.Type(), types.Empty{}, nil
	case *ast.ID:
		return inferID(node, e, counter)
	case *ast.Unary:
		return inferUnary(node, e, counter)
	case *ast.Binary:
		return inferBinary(node, e, counter)
	case *ast.Grouping:
		return Infer(node.Inner, e, counter)
	case *ast.Tuple:
		return inferTuple(node, e, counter)
	case *ast.Block:
		return inferBlock(node, e, counter)
	case *ast.Let:
		return inferLet(node, e, counter)
	case *ast.Lambda:
		return inferLambda(node, e, counter)
	case *ast.App:
		return inferApp(node, e, counter)
	default:
		panic("infer: unreachable expression kind")
	}
}

func inferID(node *ast.ID, e *env.Env, counter *ids.Counter) (types.Ty, types.Constraint, *diagnostics.Error) {
	scheme, ok := e.Lookup(node.Name)
	if !ok {
		return nil, nil, diagnostics.New(diagnostics.CodeTypeUnbound, node.Span(), "unbound identifier %q", node.Name)
	}
	instantiated := scheme.Instantiate(counter)
	return node.Type(), types.Eq{T: node.Type(), U: instantiated}, nil
}

func inferTuple(node *ast.Tuple, e *env.Env, counter *ids.Counter) (types.Ty, types.Constraint, *diagnostics.Error) {
	elemTys := make([]types.Ty, len(node.Elems))
	cs := make([]types.Constraint, 0, len(node.Elems))
	for i, el := range node.Elems {
		ty, c, err := Infer(el, e, counter)
		if err != nil {
			return nil, nil, err
		}
		elemTys[i] = ty
		cs = append(cs, c)
	}
	return types.Tuple{Sp: node.Span(), Elems: elemTys}, types.Conj(cs), nil
}
