package types_test

import (
	"math/rand"
	"testing"

	"github.com/hark-lang/hark/internal/types"
)

// shuffle returns a freshly-ordered copy of cs; the constraint language is
// a conjunction, so solving shouldn't depend on this order (spec.md §4.6).
func shuffle(cs []types.Constraint) []types.Constraint {
	out := make([]types.Constraint, len(cs))
	copy(out, cs)
	rand.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

func TestSolveIsShuffleInvariant(t *testing.T) {
	v1, v2, v3 := types.Infer{ID: 1}, types.Infer{ID: 2}, types.Infer{ID: 3}
	cs := []types.Constraint{
		types.Eq{T: v1, U: types.I64{}},
		types.Eq{T: v2, U: v1},
		types.Eq{T: v3, U: types.Tuple{Elems: []types.Ty{v1, v2}}},
	}

	want := map[uint64]types.Ty{1: types.I64{}, 2: types.I64{}, 3: types.Tuple{Elems: []types.Ty{types.I64{}, types.I64{}}}}

	for trial := 0; trial < 20; trial++ {
		s, err := types.Solve(types.Conj(shuffle(cs)))
		if err != nil {
			t.Fatalf("trial %d: unexpected error: %v", trial, err)
		}
		for id, expected := range want {
			got := types.Apply(s, types.Infer{ID: id})
			if !types.Equal(got, expected) {
				t.Fatalf("trial %d: t%d = %s, want %s", trial, id, got, expected)
			}
		}
	}
}
