package ir

import "golang.org/x/exp/constraints"

// intSet is a compact, sorted set of small non-negative integers with
// Add / Has / Num operations: a sorted slice beats a map for the sizes
// seen in practice (tuple arities, field indices) and gives deterministic,
// sorted iteration for free.
type intSet[T constraints.Integer] struct {
	// sorted, deduplicated.
	elems []T
}

func newIntSet[T constraints.Integer](elems ...T) intSet[T] {
	s := intSet[T]{}
	for _, e := range elems {
		s.Add(e)
	}
	return s
}

func (s *intSet[T]) Add(e T) {
	i := s.search(e)
	if i < len(s.elems) && s.elems[i] == e {
		return
	}
	s.elems = append(s.elems, 0)
	copy(s.elems[i+1:], s.elems[i:])
	s.elems[i] = e
}

func (s intSet[T]) Has(e T) bool {
	i := s.search(e)
	return i < len(s.elems) && s.elems[i] == e
}

func (s intSet[T]) Num() int { return len(s.elems) }

func (s intSet[T]) Empty() bool { return len(s.elems) == 0 }

// Elems returns the set's members in ascending order. The caller must not
// mutate the returned slice.
func (s intSet[T]) Elems() []T { return s.elems }

func (s intSet[T]) search(e T) int {
	lo, hi := 0, len(s.elems)
	for lo < hi {
		mid := (lo + hi) / 2
		if s.elems[mid] < e {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// Union returns a new set containing every element of s and other.
func (s intSet[T]) Union(other intSet[T]) intSet[T] {
	if s.Empty() {
		return other
	}
	if other.Empty() {
		return s
	}
	out := intSet[T]{elems: make([]T, 0, len(s.elems)+len(other.elems))}
	i, j := 0, 0
	for i < len(s.elems) && j < len(other.elems) {
		switch {
		case s.elems[i] < other.elems[j]:
			out.elems = append(out.elems, s.elems[i])
			i++
		case s.elems[i] > other.elems[j]:
			out.elems = append(out.elems, other.elems[j])
			j++
		default:
			out.elems = append(out.elems, s.elems[i])
			i++
			j++
		}
	}
	out.elems = append(out.elems, s.elems[i:]...)
	out.elems = append(out.elems, other.elems[j:]...)
	return out
}

func (s intSet[T]) Equal(other intSet[T]) bool {
	if len(s.elems) != len(other.elems) {
		return false
	}
	for i := range s.elems {
		if s.elems[i] != other.elems[i] {
			return false
		}
	}
	return true
}

// FieldSet is a sorted set of struct/tuple field indices, as used by the
// Live(F) lattice point (spec.md §3.2).
type FieldSet struct{ set intSet[int] }

func NewFieldSet(fields ...int) FieldSet { return FieldSet{newIntSet(fields...)} }

func (f FieldSet) Add(i int) FieldSet {
	f.set.Add(i)
	return f
}

func (f FieldSet) Has(i int) bool      { return f.set.Has(i) }
func (f FieldSet) Num() int            { return f.set.Num() }
func (f FieldSet) Empty() bool         { return f.set.Empty() }
func (f FieldSet) Elems() []int        { return f.set.Elems() }
func (f FieldSet) Union(g FieldSet) FieldSet {
	return FieldSet{f.set.Union(g.set)}
}
func (f FieldSet) Equal(g FieldSet) bool { return f.set.Equal(g.set) }

// VarSet is a sorted set of variable indices.
type VarSet struct{ set intSet[int] }

func NewVarSet() VarSet { return VarSet{} }

func (s VarSet) Add(v Var) VarSet {
	s.set.Add(v.idx)
	return s
}

func (s VarSet) Has(v Var) bool { return s.set.Has(v.idx) }
func (s VarSet) Num() int       { return s.set.Num() }
