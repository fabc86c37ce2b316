// Operator typing per SPEC_FULL.md §4.9: a small fixed table of monotype
// schemes instead of ad hoc overload resolution. Arithmetic operators
// commit to the i64 family by default and fall back to the f64 family
// only when both operands have already resolved, by the time the
// operator is visited, to a concrete F64 (grounded in
// original_source/src/typing/infer.rs's binary-operator rule, which
// picks the operand types' own ground family rather than hard-coding one).
package infer

import "github.com/hark-lang/hark/internal/types"

// templateVar is the placeholder id schemes use for their quantified
// variable; Scheme.Instantiate replaces it with a fresh id from the
// shared counter, so the literal value here never leaks into a solved
// type.
const templateVar = 0

func comparisonScheme() types.Scheme {
	a := types.Infer{ID: templateVar}
	return types.Scheme{
		Ty:     types.Arrow{Domain: types.Tuple{Elems: []types.Ty{a, a}}, Codomain: types.Bool{}},
		Forall: map[uint64]struct{}{templateVar: {}},
	}
}

func arithmeticScheme(lty, rty types.Ty) types.Scheme {
	_, lf := lty.(types.F64)
	_, rf := rty.(types.F64)
	if lf && rf {
		return types.Mono(types.Arrow{
			Domain:   types.Tuple{Elems: []types.Ty{types.F64{}, types.F64{}}},
			Codomain: types.F64{},
		})
	}
	return types.Mono(types.Arrow{
		Domain:   types.Tuple{Elems: []types.Ty{types.I64{}, types.I64{}}},
		Codomain: types.I64{},
	})
}

func unaryNumericScheme(ity types.Ty) types.Scheme {
	if _, f := ity.(types.F64); f {
		return types.Mono(types.Arrow{Domain: types.Tuple{Elems: []types.Ty{types.F64{}}}, Codomain: types.F64{}})
	}
	return types.Mono(types.Arrow{Domain: types.Tuple{Elems: []types.Ty{types.I64{}}}, Codomain: types.I64{}})
}

func unaryBoolScheme() types.Scheme {
	return types.Mono(types.Arrow{Domain: types.Tuple{Elems: []types.Ty{types.Bool{}}}, Codomain: types.Bool{}})
}
