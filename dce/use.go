package dce

import (
	"honnef.co/go/gdce/flowinfo"
	"honnef.co/go/gdce/ir"
	"honnef.co/go/gdce/ir/irutil"
)

// UsageKind tags an edge in the use-graph (spec.md §4.2).
type UsageKind int

const (
	// Compute: y is consumed to produce x; the contribution of y's
	// liveness to x depends on how y is used.
	Compute UsageKind = iota
	// Propagate: x inherits y's liveness verbatim.
	Propagate
)

func (k UsageKind) String() string {
	if k == Propagate {
		return "propagate"
	}
	return "compute"
}

// Edge is one entry of uses[y]: the user X and how it uses y.
type Edge struct {
	X    ir.Var
	Kind UsageKind
}

func (e Edge) String() string { return e.X.String() }

// UseGraph is the S2 output: uses[y] holds every x that references y, tagged
// with the kind of reference (spec.md §3.2 "Use-graph").
type UseGraph struct {
	// edges is indexed by y.Idx(); edges[y] lists every (x, kind) such that
	// x uses y. A small sorted slice beats a map here: per-variable fan-in
	// is tiny in practice and this keeps iteration order deterministic
	// without an extra sort step (spec.md §5).
	edges [][]Edge
}

func newUseGraph(nv int) UseGraph {
	return UseGraph{edges: make([][]Edge, nv)}
}

func (g *UseGraph) add(x, y ir.Var, kind UsageKind) {
	es := g.edges[y.Idx()]
	// insert keeping es sorted by user index; equal users keep insertion order.
	i := len(es)
	for i > 0 && es[i-1].X.Idx() > x.Idx() {
		i--
	}
	es = append(es, Edge{})
	copy(es[i+1:], es[i:])
	es[i] = Edge{X: x, Kind: kind}
	g.edges[y.Idx()] = es
}

// Uses returns every (user, kind) pair for variable y, i.e. uses[y] from
// spec.md §3.2.
func (g UseGraph) Uses(y ir.Var) []Edge { return g.edges[y.Idx()] }

// Usages builds the inverted use-graph of spec.md §4.2.
func Usages(prog *ir.Program, info flowinfo.GlobalInfo) UseGraph {
	g := newUseGraph(prog.NumVars())

	for _, b := range prog.Blocks() {
		for _, st := range b.Body {
			switch instr := st.Instr.(type) {
			case ir.Let:
				addExprEdges(&g, prog, instr.X, instr.E, info)
			case ir.Assign:
				g.add(instr.X, instr.Y, Compute)
			// SetField, ArraySet, OffsetRef contribute no use-graph edges;
			// their influence is expressed entirely during seeding.
			case ir.SetField, ir.ArraySet, ir.OffsetRef:
			}
		}
		for _, c := range irutil.Conts(b.Term) {
			addContEdges(&g, prog, c)
		}
	}

	return g
}

func addExprEdges(g *UseGraph, prog *ir.Program, x ir.Var, e ir.Expr, info flowinfo.GlobalInfo) {
	switch e := e.(type) {
	case ir.Apply:
		g.add(x, e.Fn, Compute)
		approx := info.Approximation(e.Fn)
		if approx.Top {
			// the oracle's escape bits already forced the relevant
			// variables to Top during seeding; no propagate edges.
			return
		}
		for _, k := range approx.Known {
			def := info.Def(k)
			clo, ok := def.Expr.(ir.Closure)
			if !ok || !def.IsExpr {
				continue
			}
			if len(clo.Params) != len(e.Args) {
				// over/under-application: already marked escaping by the
				// oracle.
				continue
			}
			for _, r := range info.ReturnVals(k) {
				g.add(x, r, Propagate)
			}
			for i, p := range clo.Params {
				g.add(p, e.Args[i], Propagate)
			}
		}
	case ir.MakeBlock:
		for _, v := range e.Vars {
			g.add(x, v, Compute)
		}
	case ir.Field:
		g.add(x, e.Z, Compute)
	case ir.Const:
		// no edges
	case ir.Closure:
		// x itself gets no edge here: a closure value's liveness is
		// governed entirely by who applies it (the Apply case above). The
		// entry continuation's arguments still need pairing with the
		// entry block's formals, exactly like any other continuation.
		addContEdges(g, prog, e.Cont)
	case ir.Prim:
		for _, a := range e.Args {
			if av, ok := a.(ir.AVar); ok {
				g.add(x, av.Var, Compute)
			}
		}
	}
}

func addContEdges(g *UseGraph, prog *ir.Program, c ir.Cont) {
	target, ok := prog.Block(c.Target)
	if !ok {
		// missing target blocks are treated as dead: no edges.
		return
	}
	n := len(target.Params)
	if len(c.Args) < n {
		n = len(c.Args)
	}
	for i := 0; i < n; i++ {
		g.add(target.Params[i], c.Args[i], Propagate)
	}
}
