// Package purity implements the pure_expr oracle collaborator of spec.md §4.3:
// a local, syntactic judgement of whether evaluating an ir.Expr can have an
// observable side effect. It never looks past the expression itself; whether
// an Apply is pure depends only on a caller-supplied table of known-pure
// functions, the same shape as the teacher's functions.Descriptions cache of
// per-function purity facts.
package purity

import "honnef.co/go/gdce/ir"

// Oracle answers the pure_expr question for a single expression. A zero
// Oracle has no pure-primitive table, so it treats every Apply and every
// Prim as impure; NewOracle adds the standard arithmetic and comparison
// primitives as pure.
type Oracle struct {
	// PureFuncs names functions (by whatever identifier the caller's
	// GlobalInfo uses, typically a qualified name recovered from the
	// function's defining Closure) known to be free of side effects and to
	// always terminate. Mirrors functions.stdlibDescs in spirit.
	PureFuncs map[string]bool
	// FuncName resolves Var (expected to denote a Closure) to the name
	// looked up in PureFuncs. A nil FuncName means no Apply is ever
	// considered pure via this table.
	FuncName func(ir.Var) (string, bool)
	// purePrims are primitive operators known to be referentially
	// transparent and effect-free.
	purePrims map[string]bool
}

// NewOracle builds an Oracle seeded with the standard arithmetic/comparison
// primitives, matching the conservative "default to impure" stance the
// teacher's IsPure analysis takes for anything it hasn't special-cased.
func NewOracle(pureFuncs map[string]bool, funcName func(ir.Var) (string, bool)) *Oracle {
	return &Oracle{
		PureFuncs: pureFuncs,
		FuncName:  funcName,
		purePrims: defaultPurePrims(),
	}
}

func defaultPurePrims() map[string]bool {
	names := []string{
		"+", "-", "*", "/", "mod",
		"and", "or", "not", "xor",
		"lsl", "lsr", "asr",
		"eq", "neq", "lt", "le", "gt", "ge",
		"isint", "ignore",
	}
	m := make(map[string]bool, len(names))
	for _, n := range names {
		m[n] = true
	}
	return m
}

// Purity is satisfied by anything that judges a single expression pure; the
// same pure_expr question the dce package's own Purity interface asks
// during seeding (spec.md §4.3). Declared here too so Gate can wrap any
// such judgement, not just *Oracle.
type Purity interface {
	Pure(ir.Expr) bool
}

// Gate forces Pure to false whenever Enabled is false (spec.md §6.3's
// "Global dead-code flag" switch), without requiring every Purity
// implementation to know about the flag itself. Every expression reported
// impure drives S3 to raise every variable to Top and reduces the pass to
// the identity rewrite.
type Gate struct {
	Oracle  Purity
	Enabled bool
}

// Pure implements spec.md §4.3's "per the purity oracle conjoined with the
// global dead-code-enabled flag".
func (g Gate) Pure(e ir.Expr) bool {
	if !g.Enabled || g.Oracle == nil {
		return false
	}
	return g.Oracle.Pure(e)
}

// Pure reports whether evaluating e has no observable side effect.
func (o *Oracle) Pure(e ir.Expr) bool {
	switch e := e.(type) {
	case ir.Const:
		return true
	case ir.MakeBlock:
		// allocation itself has no externally observable effect; the
		// pass's own liveness lattice is what decides whether writing into
		// it matters.
		return true
	case ir.Closure:
		return true
	case ir.Field:
		return true
	case ir.Prim:
		return o.purePrims[e.Op.Name] && !e.Op.Extern
	case ir.Apply:
		if o.FuncName == nil {
			return false
		}
		name, ok := o.FuncName(e.Fn)
		if !ok {
			return false
		}
		return o.PureFuncs[name]
	default:
		return false
	}
}
