package infer

import (
	"github.com/hark-lang/hark/internal/ast"
	"github.com/hark-lang/hark/internal/diagnostics"
	"github.com/hark-lang/hark/internal/env"
	"github.com/hark-lang/hark/internal/ids"
	"github.com/hark-lang/hark/internal/types"
)

// inferLambda binds each parameter monomorphically (lambda parameters
// are never generalized, only let-bound names are) in a scope scoped to
// the body alone.
func inferLambda(node *ast.Lambda, e *env.Env, counter *ids.Counter) (types.Ty, types.Constraint, *diagnostics.Error) {
	mark := e.Save()
	e.Push()
	paramTys := make([]types.Ty, len(node.Params))
	for i, p := range node.Params {
		e.Define(p.Name, types.Mono(p.Ty))
		paramTys[i] = p.Ty
	}
	bodyTy, bodyC, err := Infer(node.Body, e, counter)
	e.Restore(mark)
	if err != nil {
		return nil, nil, err
	}

	arrow := types.Arrow{
		Sp:       node.Span(),
		Domain:   types.Tuple{Sp: node.Span(), Elems: paramTys},
		Codomain: node.Ret,
	}
	c := types.Conj([]types.Constraint{
		bodyC,
		types.Eq{T: node.Ret, U: bodyTy},
		types.Eq{T: node.Type(), U: arrow},
	})
	return node.Type(), c, nil
}

// inferApp unifies the callee's type against an Arrow built from the
// argument types and the application's own placeholder type, the
// standard HM application rule.
func inferApp(node *ast.App, e *env.Env, counter *ids.Counter) (types.Ty, types.Constraint, *diagnostics.Error) {
	fnTy, fnC, err := Infer(node.Fn, e, counter)
	if err != nil {
		return nil, nil, err
	}

	argTys := make([]types.Ty, len(node.Args))
	cs := []types.Constraint{fnC}
	for i, a := range node.Args {
		ty, c, err := Infer(a, e, counter)
		if err != nil {
			return nil, nil, err
		}
		argTys[i] = ty
		cs = append(cs, c)
	}

	expected := types.Arrow{Sp: node.Span(), Domain: types.Tuple{Sp: node.Span(), Elems: argTys}, Codomain: node.Type()}
	cs = append(cs, types.Eq{T: fnTy, U: expected})
	return node.Type(), types.Conj(cs), nil
}
