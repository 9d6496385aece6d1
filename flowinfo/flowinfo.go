// Package flowinfo defines the read-only global_info record that spec.md §6.1
// says the pass consumes from a prior whole-program flow analysis, plus a
// concrete in-memory implementation so the pass can be built, tested, and
// demoed without a real whole-program analyzer attached. The shape mirrors
// functions.Descriptions, the teacher's own per-function fact cache computed
// once over a whole program and then consulted read-only by every later pass.
package flowinfo

import "honnef.co/go/gdce/ir"

// Def mirrors ir's local definition classification, but as seen by the
// global analysis: a variable is either bound by an expression or is some
// kind of formal/external parameter.
type Def struct {
	Expr   ir.Expr
	IsExpr bool
}

// Escape classifies whether a variable's value may become observable outside
// its defining closure (spec.md Glossary, "Escape").
type Escape int

const (
	NoEscape Escape = iota
	Escapes
	EscapeConstant
)

// Approx is the flow analysis's approximation of the set of closures a
// variable (typically one used in call position) may hold at runtime.
type Approx struct {
	// Top means "give up", i.e. any closure could flow here.
	Top bool
	// Known lists the closure-constant variables that may flow to this
	// position, valid only when Top is false.
	Known []ir.Var
}

// GlobalInfo is the borrowed, read-only record produced by the whole-program
// flow analysis (spec.md §6.1). Implementations must be safe for concurrent
// read access and must not be mutated for the lifetime of a pass invocation.
type GlobalInfo interface {
	Def(v ir.Var) Def
	Approximation(v ir.Var) Approx
	ReturnVals(closure ir.Var) []ir.Var
	Escape(v ir.Var) Escape
}

// Store is a straightforward map-backed GlobalInfo, populated ahead of time
// by whatever whole-program analysis precedes this pass (out of scope here,
// per spec.md §1). Variables absent from a map get their lattice default:
// Def{} (a Param), Approx{Top: true} (fully unknown), no return values, and
// NoEscape.
type Store struct {
	Defs    map[ir.Var]Def
	Approxs map[ir.Var]Approx
	Returns map[ir.Var][]ir.Var
	Escapes map[ir.Var]Escape
}

func NewStore() *Store {
	return &Store{
		Defs:    map[ir.Var]Def{},
		Approxs: map[ir.Var]Approx{},
		Returns: map[ir.Var][]ir.Var{},
		Escapes: map[ir.Var]Escape{},
	}
}

func (s *Store) Def(v ir.Var) Def {
	if d, ok := s.Defs[v]; ok {
		return d
	}
	return Def{}
}

func (s *Store) Approximation(v ir.Var) Approx {
	if a, ok := s.Approxs[v]; ok {
		return a
	}
	return Approx{Top: true}
}

func (s *Store) ReturnVals(closure ir.Var) []ir.Var {
	return s.Returns[closure]
}

func (s *Store) Escape(v ir.Var) Escape {
	return s.Escapes[v]
}

func (s *Store) SetDef(v ir.Var, d Def)                 { s.Defs[v] = d }
func (s *Store) SetApprox(v ir.Var, a Approx)           { s.Approxs[v] = a }
func (s *Store) SetReturns(closure ir.Var, rs []ir.Var) { s.Returns[closure] = rs }
func (s *Store) SetEscape(v ir.Var, e Escape)           { s.Escapes[v] = e }
