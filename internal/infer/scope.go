package infer

import (
	"github.com/hark-lang/hark/internal/ast"
	"github.com/hark-lang/hark/internal/diagnostics"
	"github.com/hark-lang/hark/internal/env"
	"github.com/hark-lang/hark/internal/ids"
	"github.com/hark-lang/hark/internal/types"
)

// inferBlock pushes one scope for the whole block (not one per
// statement), so a single Restore unwinds every local binding at once
// (spec.md §4.4's save/restore discipline). The block's type is its
// last expression's type, or unit when suppressed or empty.
func inferBlock(node *ast.Block, e *env.Env, counter *ids.Counter) (types.Ty, types.Constraint, *diagnostics.Error) {
	mark := e.Save()
	e.Push()

	var cs []types.Constraint
	last := types.Ty(types.Unit(node.Span()))
	for _, ex := range node.Exprs {
		ty, c, err := Infer(ex, e, counter)
		if err != nil {
			e.Restore(mark)
			return nil, nil, err
		}
		cs = append(cs, c)
		last = ty
	}
	e.Restore(mark)

	if node.Suppressed {
		last = types.Unit(node.Span())
	}
	return last, types.Conj(cs), nil
}

// inferLet eagerly solves the bound expression's constraint before
// generalizing, per spec.md §4.5: generalization needs a grounded type,
// not a residual constraint the top-level solver hasn't run yet.
//
// The statement form (node.Body == nil) defines the binder in the
// enclosing scope and has type unit. The `in` form (SPEC_FULL.md §4.10)
// defines the binder only for node.Body and takes on its type.
func inferLet(node *ast.Let, e *env.Env, counter *ids.Counter) (types.Ty, types.Constraint, *diagnostics.Error) {
	bty, bc, err := Infer(node.Bound, e, counter)
	if err != nil {
		return nil, nil, err
	}

	annotated := types.Conj([]types.Constraint{bc, types.Eq{T: node.Binder.Ty, U: bty}})
	subst, serr := types.Solve(annotated)
	if serr != nil {
		return nil, nil, serr
	}
	envFTV := make(map[uint64]struct{})
	for id := range e.FTV() {
		for v := range types.FTV(types.Apply(subst, types.Infer{ID: id})) {
			envFTV[v] = struct{}{}
		}
	}
	scheme := types.Generalize(types.Apply(subst, node.Binder.Ty), envFTV)

	if node.Body == nil {
		e.Define(node.Binder.Name, scheme)
		return node.Type(), types.Conj([]types.Constraint{annotated, types.Eq{T: node.Type(), U: types.Unit(node.Span())}}), nil
	}

	mark := e.Save()
	e.Push()
	e.Define(node.Binder.Name, scheme)
	bodyTy, bodyC, err := Infer(node.Body, e, counter)
	e.Restore(mark)
	if err != nil {
		return nil, nil, err
	}
	return node.Type(), types.Conj([]types.Constraint{annotated, bodyC, types.Eq{T: node.Type(), U: bodyTy}}), nil
}
