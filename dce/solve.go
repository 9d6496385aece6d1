package dce

import "honnef.co/go/gdce/ir"

// Solve computes the least fixpoint of the per-variable update of spec.md
// §4.4 over the inverted use-graph, using a dirty-set worklist: whenever a
// variable's value changes, every variable it uses is requeued (propagate
// on change; iteration order doesn't affect the result, since Join is
// commutative and associative, only how quickly the fixpoint is reached).
func Solve(prog *ir.Program, uses UseGraph, defs DefTable, seed LivenessTable) LivenessTable {
	nv := prog.NumVars()
	table := seed.Clone()
	dependents := invert(uses, nv)

	inWorklist := make([]bool, nv)
	worklist := make([]int, nv)
	for i := 0; i < nv; i++ {
		worklist[i] = i
		inWorklist[i] = true
	}

	for len(worklist) > 0 {
		idx := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]
		inWorklist[idx] = false

		x := ir.VarOfIdx(idx)
		newVal := propagate(x, uses, defs, seed, table)
		if newVal.Equal(table.Get(x)) {
			continue
		}
		table.set(x, newVal)

		for _, dep := range dependents[idx] {
			if !inWorklist[dep] {
				inWorklist[dep] = true
				worklist = append(worklist, dep)
			}
		}
	}

	return table
}

// invert builds, for every variable c, the list of variables dependents[c]
// whose propagate() value reads table.Get(c). propagate(z) folds over
// uses.Uses(z), and each edge there contributes table.Get(e.X) (spec.md
// §4.4's contribution always inspects live_table[y] where y is the
// consumer). So z depends on c exactly when some edge (c, k) appears in
// uses.Uses(z); equivalently, c is the consumer of z, i.e. z is among the
// variables c uses. Scanning uses.Uses(z) for every z and filing each edge
// under its consumer therefore yields dependents[consumer] = every z the
// consumer uses — precisely the set that must be revisited when the
// consumer's own value changes.
func invert(uses UseGraph, nv int) [][]int {
	dependents := make([][]int, nv)
	for z := 0; z < nv; z++ {
		for _, e := range uses.Uses(ir.VarOfIdx(z)) {
			dependents[e.X.Idx()] = append(dependents[e.X.Idx()], z)
		}
	}
	return dependents
}

// propagate implements the update function of spec.md §4.4:
//
//	propagate(x) = seed[x] ⊔ live_table[x] ⊔ ⊔_{(y,k) ∈ uses[x]} contribution(x, y, k)
func propagate(x ir.Var, uses UseGraph, defs DefTable, seed, table LivenessTable) Liveness {
	acc := Join(seed.Get(x), table.Get(x))
	for _, e := range uses.Uses(x) {
		acc = Join(acc, contribution(x, e.X, e.Kind, defs, table))
	}
	return acc
}

// contribution implements spec.md §4.4's contribution(x, y, k) where the
// use-graph edge says "y uses x via kind k" (x is the variable found in
// uses[x] at the (y,k) entry being folded over, y is the consumer named by
// the edge).
func contribution(x, y ir.Var, kind UsageKind, defs DefTable, table LivenessTable) Liveness {
	if kind == Propagate {
		return table.Get(y)
	}

	switch yVal := table.Get(y); yVal.Kind {
	case LDead:
		return Dead
	case LLive:
		if def := defs.Get(y); def.IsExpr {
			if mb, ok := def.Expr.(ir.MakeBlock); ok {
				if indexOf(mb.Vars, x, yVal.Fields) {
					return Top
				}
				return Dead
			}
		}
		return topOrFieldRefinement(defs, y)
	default: // LTop
		return topOrFieldRefinement(defs, y)
	}
}

// topOrFieldRefinement handles the shared tail of both the Live(F) and Top
// cases of spec.md §4.4's contribution table: if y is itself a field
// projection, an observation of y refines back down to Live({i}); anything
// else defaults to Top.
func topOrFieldRefinement(defs DefTable, y ir.Var) Liveness {
	if def := defs.Get(y); def.IsExpr {
		if f, ok := def.Expr.(ir.Field); ok {
			return LiveField(f.I)
		}
	}
	return Top
}

// indexOf reports whether any field index in observed selects variable x
// out of vars, i.e. exists i in observed. vars[i] == x.
func indexOf(vars []ir.Var, x ir.Var, observed ir.FieldSet) bool {
	for _, i := range observed.Elems() {
		if i >= 0 && i < len(vars) && vars[i] == x {
			return true
		}
	}
	return false
}
