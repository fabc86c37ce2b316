// Package types is the Hindley-Milner type model shared by the parser
// (type annotations) and the inferencer (constraint generation,
// unification, generalization). It implements spec.md §3's Ty/TyKind,
// TyScheme, Constraint, and Substitution, and spec.md §4.6/§4.7's
// unifier and normalizer.
package types

import (
	"fmt"
	"strings"

	"github.com/hark-lang/hark/internal/span"
)

// Ty is the closed set of type forms. Concrete types implement it the way
// the teacher's AST implements ast.Expression: one struct per kind,
// dispatched with a type switch instead of a tag field. Equality on Ty is
// structural on kind only; Span is carried for diagnostics and ignored by
// Equal, FTV, and Apply's result identity.
type Ty interface {
	isTy()
	Span() span.Span
	String() string
}

// Bool, I64, F64 are the ground types.
type Bool struct{ Sp span.Span }
type I64 struct{ Sp span.Span }
type F64 struct{ Sp span.Span }

// Infer is a unification variable keyed by a fresh id from ids.Counter.
type Infer struct {
	Sp span.Span
	ID uint64
}

// TyVar is a named variable, produced only by the normalizer (spec.md §4.7).
type TyVar struct {
	Sp   span.Span
	Name string
}

// Tuple is the parenthesized product type; the zero-element form is unit.
type Tuple struct {
	Sp    span.Span
	Elems []Ty
}

// Arrow is a function type. Domain is typed as Tuple directly so "Arrow
// domains are always Tuples" (spec.md §3) is an invariant the Go type
// system enforces, not one that has to be checked at runtime.
type Arrow struct {
	Sp       span.Span
	Domain   Tuple
	Codomain Ty
}

func (Bool) isTy()  {}
func (I64) isTy()   {}
func (F64) isTy()   {}
func (Infer) isTy() {}
func (TyVar) isTy() {}
func (Tuple) isTy() {}
func (Arrow) isTy() {}

func (t Bool) Span() span.Span  { return t.Sp }
func (t I64) Span() span.Span   { return t.Sp }
func (t F64) Span() span.Span   { return t.Sp }
func (t Infer) Span() span.Span { return t.Sp }
func (t TyVar) Span() span.Span { return t.Sp }
func (t Tuple) Span() span.Span { return t.Sp }
func (t Arrow) Span() span.Span { return t.Sp }

// Unit is the 0-element tuple.
func Unit(sp span.Span) Tuple { return Tuple{Sp: sp, Elems: nil} }

func IsUnit(t Ty) bool {
	tup, ok := t.(Tuple)
	return ok && len(tup.Elems) == 0
}

func (t Bool) String() string { return "bool" }
func (t I64) String() string  { return "i64" }
func (t F64) String() string  { return "f64" }
func (t Infer) String() string {
	return fmt.Sprintf("t%d", t.ID)
}
func (t TyVar) String() string { return t.Name }
func (t Tuple) String() string {
	parts := make([]string, len(t.Elems))
	for i, e := range t.Elems {
		parts[i] = e.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
func (t Arrow) String() string {
	return fmt.Sprintf("%s -> %s", t.Domain.String(), t.Codomain.String())
}

// Equal compares two types structurally, ignoring spans, per spec.md §3.
func Equal(a, b Ty) bool {
	switch a := a.(type) {
	case Bool:
		_, ok := b.(Bool)
		return ok
	case I64:
		_, ok := b.(I64)
		return ok
	case F64:
		_, ok := b.(F64)
		return ok
	case Infer:
		bb, ok := b.(Infer)
		return ok && bb.ID == a.ID
	case TyVar:
		bb, ok := b.(TyVar)
		return ok && bb.Name == a.Name
	case Tuple:
		bb, ok := b.(Tuple)
		if !ok || len(bb.Elems) != len(a.Elems) {
			return false
		}
		for i := range a.Elems {
			if !Equal(a.Elems[i], bb.Elems[i]) {
				return false
			}
		}
		return true
	case Arrow:
		bb, ok := b.(Arrow)
		return ok && Equal(a.Domain, bb.Domain) && Equal(a.Codomain, bb.Codomain)
	default:
		return false
	}
}

// FTV returns the set of unification-variable ids reachable through
// Infer nodes in t.
func FTV(t Ty) map[uint64]struct{} {
	out := make(map[uint64]struct{})
	collectFTV(t, out)
	return out
}

func collectFTV(t Ty, out map[uint64]struct{}) {
	switch t := t.(type) {
	case Infer:
		out[t.ID] = struct{}{}
	case Tuple:
		for _, e := range t.Elems {
			collectFTV(e, out)
		}
	case Arrow:
		collectFTV(t.Domain, out)
		collectFTV(t.Codomain, out)
	}
}

// Subst maps inference-variable ids to the type they have been bound to.
type Subst map[uint64]Ty

// Apply substitutes every Infer(i) reachable in t with s[i], recursively.
// Variables absent from s are left untouched.
func Apply(s Subst, t Ty) Ty {
	if len(s) == 0 {
		return t
	}
	switch t := t.(type) {
	case Infer:
		if repl, ok := s[t.ID]; ok {
			return repl
		}
		return t
	case Tuple:
		elems := make([]Ty, len(t.Elems))
		for i, e := range t.Elems {
			elems[i] = Apply(s, e)
		}
		return Tuple{Sp: t.Sp, Elems: elems}
	case Arrow:
		domain := Apply(s, t.Domain).(Tuple)
		return Arrow{Sp: t.Sp, Domain: domain, Codomain: Apply(s, t.Codomain)}
	default:
		return t
	}
}

// Compose returns a substitution equivalent to applying s, then t: it
// applies t to every value of s, then extends the result with t's
// bindings for keys s does not bind. For a key bound by both, the result
// keeps t applied to s's value, since applying s first replaces that
// variable before t can see it.
func Compose(s, t Subst) Subst {
	out := make(Subst, len(s)+len(t))
	for k, v := range s {
		out[k] = Apply(t, v)
	}
	for k, v := range t {
		if _, ok := out[k]; !ok {
			out[k] = v
		}
	}
	return out
}
