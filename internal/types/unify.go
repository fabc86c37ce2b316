package types

import (
	"github.com/hark-lang/hark/internal/diagnostics"
	"github.com/hark-lang/hark/internal/span"
)

// Solve implements spec.md §4.6's recursive solver.
func Solve(c Constraint) (Subst, *diagnostics.Error) {
	switch c := c.(type) {
	case Empty:
		return Subst{}, nil
	case Eq:
		return unify(c.T, c.U)
	case And:
		s, err := Solve(c.C)
		if err != nil {
			return nil, err
		}
		d := ApplyConstraint(s, c.D)
		t, err := Solve(d)
		if err != nil {
			return nil, err
		}
		return Compose(s, t), nil
	default:
		panic("types: unreachable constraint kind")
	}
}

func unify(t, u Ty) (Subst, *diagnostics.Error) {
	if ti, ok := t.(Infer); ok {
		return bind(ti.ID, u)
	}
	if ui, ok := u.(Infer); ok {
		return bind(ui.ID, t)
	}

	switch t := t.(type) {
	case Arrow:
		ua, ok := u.(Arrow)
		if !ok {
			return nil, mismatch(t, u)
		}
		return Solve(And{
			C: Eq{T: t.Domain, U: ua.Domain},
			D: Eq{T: t.Codomain, U: ua.Codomain},
		})
	case Tuple:
		ut, ok := u.(Tuple)
		if !ok || len(ut.Elems) != len(t.Elems) {
			return nil, mismatch(t, u)
		}
		var cs []Constraint
		for i := range t.Elems {
			cs = append(cs, Eq{T: t.Elems[i], U: ut.Elems[i]})
		}
		return Solve(Conj(cs))
	default:
		if sameGround(t, u) {
			return Subst{}, nil
		}
		return nil, mismatch(t, u)
	}
}

func sameGround(t, u Ty) bool {
	switch t.(type) {
	case Bool, I64, F64, TyVar:
		return Equal(t, u)
	default:
		return false
	}
}

func mismatch(t, u Ty) *diagnostics.Error {
	return diagnostics.New(diagnostics.CodeTypeMismatch, span.Merge(t.Span(), u.Span()),
		"failed to unify type %s with %s", t, u)
}

// bind performs the occurs check and, if it passes, returns the singleton
// substitution {i -> t} (spec.md §4.6).
func bind(i uint64, t Ty) (Subst, *diagnostics.Error) {
	if inf, ok := t.(Infer); ok && inf.ID == i {
		return Subst{}, nil
	}
	if _, occurs := FTV(t)[i]; occurs {
		return nil, diagnostics.New(diagnostics.CodeTypeOccurs, t.Span(),
			"occurs check failed: t%d occurs in %s", i, t)
	}
	return Subst{i: t}, nil
}
