package types_test

import (
	"testing"

	"github.com/hark-lang/hark/internal/span"
	"github.com/hark-lang/hark/internal/types"
)

func noSpan() span.Span { return span.Single(0, 1) }

func TestSolveGroundEquality(t *testing.T) {
	cases := []struct {
		name string
		t, u types.Ty
		ok   bool
	}{
		{"bool=bool", types.Bool{}, types.Bool{}, true},
		{"i64=i64", types.I64{}, types.I64{}, true},
		{"bool!=i64", types.Bool{}, types.I64{}, false},
		{"i64!=f64", types.I64{}, types.F64{}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := types.Solve(types.Eq{T: c.t, U: c.u})
			if c.ok && err != nil {
				t.Fatalf("expected success, got %v", err)
			}
			if !c.ok && err == nil {
				t.Fatalf("expected mismatch error, got none")
			}
		})
	}
}

func TestSolveBindsInferVariable(t *testing.T) {
	v := types.Infer{ID: 1}
	s, err := types.Solve(types.Eq{T: v, U: types.I64{}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := types.Apply(s, v)
	if !types.Equal(got, types.I64{}) {
		t.Fatalf("expected i64, got %s", got)
	}
}

func TestSolveOccursCheckFails(t *testing.T) {
	v := types.Infer{ID: 1}
	arrow := types.Arrow{Domain: types.Tuple{Elems: []types.Ty{v}}, Codomain: v}
	_, err := types.Solve(types.Eq{T: v, U: arrow})
	if err == nil {
		t.Fatalf("expected occurs-check error")
	}
	if err.Code != "T-OCCURS" {
		t.Fatalf("expected T-OCCURS, got %s", err.Code)
	}
}

func TestSolveSelfBindIsNoop(t *testing.T) {
	v := types.Infer{ID: 7}
	s, err := types.Solve(types.Eq{T: v, U: v})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s) != 0 {
		t.Fatalf("expected empty substitution for t7=t7, got %v", s)
	}
}

func TestSolveTupleArityMismatch(t *testing.T) {
	a := types.Tuple{Elems: []types.Ty{types.I64{}, types.Bool{}}}
	b := types.Tuple{Elems: []types.Ty{types.I64{}}}
	_, err := types.Solve(types.Eq{T: a, U: b})
	if err == nil {
		t.Fatalf("expected mismatch for differing tuple arity")
	}
}

func TestSolveArrowUnifiesDomainAndCodomain(t *testing.T) {
	v1, v2 := types.Infer{ID: 1}, types.Infer{ID: 2}
	lhs := types.Arrow{Domain: types.Tuple{Elems: []types.Ty{v1}}, Codomain: v2}
	rhs := types.Arrow{Domain: types.Tuple{Elems: []types.Ty{types.I64{}}}, Codomain: types.Bool{}}
	s, err := types.Solve(types.Eq{T: lhs, U: rhs})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !types.Equal(types.Apply(s, v1), types.I64{}) {
		t.Fatalf("expected v1 = i64")
	}
	if !types.Equal(types.Apply(s, v2), types.Bool{}) {
		t.Fatalf("expected v2 = bool")
	}
}

func TestSolveConjunctionIsOrderIndependent(t *testing.T) {
	v1, v2 := types.Infer{ID: 1}, types.Infer{ID: 2}
	forward := types.Conj([]types.Constraint{
		types.Eq{T: v1, U: types.I64{}},
		types.Eq{T: v2, U: v1},
	})
	backward := types.Conj([]types.Constraint{
		types.Eq{T: v2, U: v1},
		types.Eq{T: v1, U: types.I64{}},
	})
	for _, c := range []types.Constraint{forward, backward} {
		s, err := types.Solve(c)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !types.Equal(types.Apply(s, v1), types.I64{}) || !types.Equal(types.Apply(s, v2), types.I64{}) {
			t.Fatalf("expected both variables to resolve to i64")
		}
	}
}
