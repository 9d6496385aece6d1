package dce

import (
	"strconv"

	"honnef.co/go/gdce/ir"
)

// LKind discriminates the three points of the liveness lattice (spec.md
// §3.2).
type LKind int

const (
	LDead LKind = iota
	LLive
	LTop
)

// Liveness is one point of the join-semilattice Dead <= Live(S) <= Top,
// Live(S1) <= Live(S2) iff S1 subset S2.
type Liveness struct {
	Kind   LKind
	Fields ir.FieldSet
}

var Dead = Liveness{Kind: LDead}
var Top = Liveness{Kind: LTop}

// Live builds a Live(fields) lattice point. Live(empty) never occurs per
// spec.md §3.3; callers must not call this with an empty FieldSet.
func Live(fields ir.FieldSet) Liveness {
	if fields.Empty() {
		panic("dce: Live(empty) is not a valid lattice point; use Dead")
	}
	return Liveness{Kind: LLive, Fields: fields}
}

// LiveField builds a single-field Live({i}).
func LiveField(i int) Liveness { return Live(ir.NewFieldSet(i)) }

func (l Liveness) IsDead() bool { return l.Kind == LDead }
func (l Liveness) IsTop() bool  { return l.Kind == LTop }
func (l Liveness) IsLive() bool { return l.Kind != LDead }

func (l Liveness) String() string {
	switch l.Kind {
	case LDead:
		return "Dead"
	case LTop:
		return "Top"
	default:
		out := "Live({"
		for i, f := range l.Fields.Elems() {
			if i > 0 {
				out += ","
			}
			out += strconv.Itoa(f)
		}
		return out + "})"
	}
}

// Join computes the least upper bound of a and b (spec.md §3.2):
//
//	⊥ ⊔ a = a; a ⊔ ⊤ = ⊤; Live(S1) ⊔ Live(S2) = Live(S1 ∪ S2).
func Join(a, b Liveness) Liveness {
	switch {
	case a.Kind == LDead:
		return b
	case b.Kind == LDead:
		return a
	case a.Kind == LTop || b.Kind == LTop:
		return Top
	default:
		return Live(a.Fields.Union(b.Fields))
	}
}

// Equal reports lattice-value equality.
func (l Liveness) Equal(o Liveness) bool {
	if l.Kind != o.Kind {
		return false
	}
	if l.Kind != LLive {
		return true
	}
	return l.Fields.Equal(o.Fields)
}

// Leq reports whether l <= o in the lattice order.
func Leq(l, o Liveness) bool { return Join(l, o).Equal(o) }

// LivenessTable is a dense, variable-indexed array of lattice values: the S3
// seed, and later the S4 fixpoint.
type LivenessTable struct {
	vals []Liveness
}

func newLivenessTable(nv int) LivenessTable {
	return LivenessTable{vals: make([]Liveness, nv)}
}

func (t LivenessTable) Get(v ir.Var) Liveness { return t.vals[v.Idx()] }

func (t LivenessTable) set(v ir.Var, l Liveness) { t.vals[v.Idx()] = l }

// raise joins l into v's current value in place, returning whether the value
// changed.
func (t LivenessTable) raise(v ir.Var, l Liveness) bool {
	old := t.vals[v.Idx()]
	joined := Join(old, l)
	if joined.Equal(old) {
		return false
	}
	t.vals[v.Idx()] = joined
	return true
}

// Clone makes an independent copy, used by the solver to seed its working
// table from the immutable S3 result.
func (t LivenessTable) Clone() LivenessTable {
	out := newLivenessTable(len(t.vals))
	copy(out.vals, t.vals)
	return out
}

func (t LivenessTable) NumVars() int { return len(t.vals) }
