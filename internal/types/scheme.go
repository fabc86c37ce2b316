package types

import (
	"sort"
	"strings"

	"github.com/hark-lang/hark/internal/ids"
)

// Scheme encodes a type scheme ∀forall. Ty (spec.md §3's TyScheme).
type Scheme struct {
	Ty     Ty
	Forall map[uint64]struct{}
}

// Mono wraps ty with no quantified variables: an ordinary monotype,
// exactly what Lambda parameter bindings get (spec.md §4.5).
func Mono(ty Ty) Scheme {
	return Scheme{Ty: ty}
}

// FTV returns ftv(ty) \ forall: the variables instantiation leaves
// untouched (it freshens only the quantified ones). Quantified variables are fresh at generalization time and
// never collide with later use, so subtracting forall here (rather than
// returning ftv(ty) unfiltered, which spec.md §3 allows as a shortcut) is
// the precise version and costs nothing extra to compute.
func (s Scheme) FTV() map[uint64]struct{} {
	all := FTV(s.Ty)
	out := make(map[uint64]struct{}, len(all))
	for id := range all {
		if _, bound := s.Forall[id]; !bound {
			out[id] = struct{}{}
		}
	}
	return out
}

// Instantiate replaces every quantified variable with a fresh Infer,
// drawn from counter, and applies the resulting substitution to the
// scheme's type (spec.md §4.5's Id rule).
func (s Scheme) Instantiate(counter *ids.Counter) Ty {
	if len(s.Forall) == 0 {
		return s.Ty
	}
	sub := make(Subst, len(s.Forall))
	for id := range s.Forall {
		sub[id] = Infer{Sp: s.Ty.Span(), ID: counter.Next()}
	}
	return Apply(sub, s.Ty)
}

// Generalize quantifies every variable free in ty but not free in env,
// producing the scheme Let-generalization binds (spec.md §4.5).
func Generalize(ty Ty, envFTV map[uint64]struct{}) Scheme {
	tyFTV := FTV(ty)
	forall := make(map[uint64]struct{}, len(tyFTV))
	for id := range tyFTV {
		if _, inEnv := envFTV[id]; !inEnv {
			forall[id] = struct{}{}
		}
	}
	return Scheme{Ty: ty, Forall: forall}
}

func (s Scheme) String() string {
	ids := make([]uint64, 0, len(s.Forall))
	for id := range s.Forall {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = Infer{ID: id}.String()
	}
	if len(names) == 0 {
		return s.Ty.String()
	}
	return "forall " + strings.Join(names, ",") + ". " + s.Ty.String()
}
