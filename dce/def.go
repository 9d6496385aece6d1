// Package dce implements the global, field-sensitive dead-variable analysis
// and sentinel-substitution rewrite described by spec.md: a definition map
// (S1), a use-graph builder (S2), a seed liveness pass (S3), a backwards
// fixpoint solver (S4), and the zero rewriter (S5).
package dce

import "honnef.co/go/gdce/ir"

// Def records how a single variable was bound: by an expression (Let), or
// as a Param (a block formal, or anything mutated in place by Assign).
type Def struct {
	Expr   ir.Expr
	IsExpr bool
}

// DefTable is the S1 output: one Def per variable, indexed by ir.Var.Idx().
type DefTable struct {
	defs []Def
}

func newDefTable(nv int) DefTable {
	// every variable starts out Param; Let sites overwrite their own entry.
	return DefTable{defs: make([]Def, nv)}
}

func (t DefTable) Get(v ir.Var) Def { return t.defs[v.Idx()] }

func (t DefTable) set(v ir.Var, d Def) { t.defs[v.Idx()] = d }

// Definitions walks every block's body once and classifies each variable as
// Param or as bound by an expression (spec.md §4.1).
func Definitions(prog *ir.Program) DefTable {
	t := newDefTable(prog.NumVars())
	for _, b := range prog.Blocks() {
		for _, st := range b.Body {
			if let, ok := st.Instr.(ir.Let); ok {
				t.set(let.X, Def{Expr: let.E, IsExpr: true})
			}
			// Assign's target keeps its Param default: its value comes
			// from outside the static definition site.
		}
	}
	return t
}
