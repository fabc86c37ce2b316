package types

// Normalizer rewrites leftover Infer(i) nodes into TyVar(name) with names
// drawn from an alphabetic generator (a, b, ..., z, aa, ab, ...),
// memoized per run so identical variables share a name (spec.md §4.7).
type Normalizer struct {
	names map[uint64]string
	next  int
}

func NewNormalizer() *Normalizer {
	return &Normalizer{names: make(map[uint64]string)}
}

// Normalize rewrites t in place (conceptually; Ty values are immutable,
// so this returns the rewritten tree).
func (n *Normalizer) Normalize(t Ty) Ty {
	switch t := t.(type) {
	case Infer:
		return TyVar{Sp: t.Sp, Name: n.nameFor(t.ID)}
	case Tuple:
		elems := make([]Ty, len(t.Elems))
		for i, e := range t.Elems {
			elems[i] = n.Normalize(e)
		}
		return Tuple{Sp: t.Sp, Elems: elems}
	case Arrow:
		return Arrow{Sp: t.Sp, Domain: n.Normalize(t.Domain).(Tuple), Codomain: n.Normalize(t.Codomain)}
	default:
		return t
	}
}

func (n *Normalizer) nameFor(id uint64) string {
	if name, ok := n.names[id]; ok {
		return name
	}
	name := alphabeticName(n.next)
	n.next++
	n.names[id] = name
	return name
}

// alphabeticName maps 0,1,2,...,25,26,27,... to a,b,...,z,aa,ab,...
func alphabeticName(i int) string {
	const letters = "abcdefghijklmnopqrstuvwxyz"
	if i < 26 {
		return string(letters[i])
	}
	return alphabeticName(i/26-1) + string(letters[i%26])
}
