package types_test

import (
	"testing"

	"github.com/hark-lang/hark/internal/types"
)

func TestEqualIgnoresSpan(t *testing.T) {
	a := types.I64{Sp: noSpan()}
	b := types.I64{}
	if !types.Equal(a, b) {
		t.Fatalf("expected span-differing I64 values to be equal")
	}
}

func TestEqualStructuralTuple(t *testing.T) {
	a := types.Tuple{Elems: []types.Ty{types.I64{}, types.Bool{}}}
	b := types.Tuple{Elems: []types.Ty{types.I64{}, types.Bool{}}}
	c := types.Tuple{Elems: []types.Ty{types.Bool{}, types.I64{}}}
	if !types.Equal(a, b) {
		t.Fatalf("expected matching tuples to be equal")
	}
	if types.Equal(a, c) {
		t.Fatalf("expected differently-ordered tuples to differ")
	}
}

func TestIsUnit(t *testing.T) {
	if !types.IsUnit(types.Unit(noSpan())) {
		t.Fatalf("expected Unit() to report IsUnit")
	}
	if types.IsUnit(types.Tuple{Elems: []types.Ty{types.I64{}}}) {
		t.Fatalf("1-tuple is not unit")
	}
}

func TestFTVCollectsThroughArrowAndTuple(t *testing.T) {
	v1, v2, v3 := types.Infer{ID: 1}, types.Infer{ID: 2}, types.Infer{ID: 3}
	ty := types.Arrow{
		Domain:   types.Tuple{Elems: []types.Ty{v1, v2}},
		Codomain: v3,
	}
	ftv := types.FTV(ty)
	for _, id := range []uint64{1, 2, 3} {
		if _, ok := ftv[id]; !ok {
			t.Fatalf("expected t%d in FTV(%s)", id, ty)
		}
	}
	if len(ftv) != 3 {
		t.Fatalf("expected exactly 3 free variables, got %d", len(ftv))
	}
}

func TestFTVGroundTypeIsEmpty(t *testing.T) {
	if ftv := types.FTV(types.I64{}); len(ftv) != 0 {
		t.Fatalf("expected no free variables in a ground type, got %v", ftv)
	}
}

func TestApplyLeavesUnmappedVariables(t *testing.T) {
	v1, v2 := types.Infer{ID: 1}, types.Infer{ID: 2}
	s := types.Subst{1: types.I64{}}
	got := types.Apply(s, types.Tuple{Elems: []types.Ty{v1, v2}})
	tup, ok := got.(types.Tuple)
	if !ok {
		t.Fatalf("expected a Tuple, got %T", got)
	}
	if !types.Equal(tup.Elems[0], types.I64{}) {
		t.Fatalf("expected first element resolved to i64")
	}
	if !types.Equal(tup.Elems[1], v2) {
		t.Fatalf("expected second element left as t2, got %s", tup.Elems[1])
	}
}

func TestApplyEmptySubstIsIdentity(t *testing.T) {
	ty := types.Arrow{Domain: types.Tuple{Elems: []types.Ty{types.I64{}}}, Codomain: types.Bool{}}
	got := types.Apply(types.Subst{}, ty)
	if !types.Equal(got, ty) {
		t.Fatalf("expected identity under empty substitution")
	}
}

func TestComposeResolvesSThroughTOnOverlap(t *testing.T) {
	s := types.Subst{1: types.Infer{ID: 2}}
	tt := types.Subst{1: types.Bool{}, 2: types.I64{}}
	out := types.Compose(s, tt)
	if !types.Equal(out[1], types.I64{}) {
		t.Fatalf("expected composed value for key 1 to be t's resolution of s[1], got %s", out[1])
	}
	if !types.Equal(out[2], types.I64{}) {
		t.Fatalf("expected key 2 to come straight from t, got %s", out[2])
	}
}

func TestComposeAssociative(t *testing.T) {
	r := types.Subst{1: types.Infer{ID: 2}}
	s := types.Subst{2: types.Infer{ID: 3}}
	u := types.Subst{3: types.I64{}}

	left := types.Compose(types.Compose(r, s), u)
	right := types.Compose(r, types.Compose(s, u))

	v1 := types.Infer{ID: 1}
	if !types.Equal(types.Apply(left, v1), types.Apply(right, v1)) {
		t.Fatalf("expected compose(compose(r,s),u) == compose(r,compose(s,u)) on t1: %s vs %s",
			types.Apply(left, v1), types.Apply(right, v1))
	}
}
