package dce

import (
	"honnef.co/go/gdce/flowinfo"
	"honnef.co/go/gdce/ir"
	"honnef.co/go/gdce/purity"
)

// Options configures a single invocation of the pass (spec.md §6.3).
type Options struct {
	// Enabled is the global dead-code flag; when false the purity oracle
	// answers false for every expression, every seed becomes Top, and the
	// pass degrades to the identity rewrite.
	Enabled bool
	Purity  Purity
	Trace   Tracer
}

// Tracer receives the intermediate tables the debug switch of spec.md §6.3
// dumps. A nil Tracer interface value, or NoTracer, means tracing is off.
type Tracer interface {
	Uses(UseGraph, *ir.Program)
	Seed(LivenessTable, *ir.Program)
	Final(LivenessTable, *ir.Program)
	Program(label string, p *ir.Program)
}

// NoTracer discards every trace call; it's the Options.Trace default.
var NoTracer Tracer = noTracer{}

type noTracer struct{}

func (noTracer) Uses(UseGraph, *ir.Program)       {}
func (noTracer) Seed(LivenessTable, *ir.Program)  {}
func (noTracer) Final(LivenessTable, *ir.Program) {}
func (noTracer) Program(string, *ir.Program)      {}

// Run is the top-level sequencing of spec.md §4.6:
//
//	f(program, sentinel, global_info):
//	  nv       = Var.count()
//	  defs     = definitions(nv, program)
//	  uses     = usages(nv, program, global_info)
//	  pure_fns = purity_oracle(program)
//	  seed     = liveness(nv, program, pure_fns, global_info)
//	  table    = solver(vars, uses, defs, seed)
//	  return zero(program, sentinel, table)
func Run(prog *ir.Program, sentinel ir.Var, info flowinfo.GlobalInfo, opts Options) *ir.Program {
	trace := opts.Trace
	if trace == nil {
		trace = NoTracer
	}
	trace.Program("input", prog)

	pure := purity.Gate{Oracle: opts.Purity, Enabled: opts.Enabled}

	defs := Definitions(prog)
	uses := Usages(prog, info)
	trace.Uses(uses, prog)

	seed := InitialLiveness(prog, pure, info)
	trace.Seed(seed, prog)

	table := Solve(prog, uses, defs, seed)
	trace.Final(table, prog)

	out := Zero(prog, sentinel, table)
	trace.Program("output", out)
	return out
}

// AddSentinel prepends Let(s, Prim(Extern "%undefined", [])) to the entry
// block and returns the new program together with the fresh sentinel
// variable (spec.md §4.5 "Sentinel insertion", §3.4). s is allocated with
// index prog.NumVars(), so the caller must build any flowinfo.GlobalInfo
// against the returned program's variable count, not the original's.
func AddSentinel(prog *ir.Program) (*ir.Program, ir.Var) {
	s := ir.VarOfIdx(prog.NumVars())
	entry := prog.EntryBlock()

	nb := *entry
	bind := ir.Stmt{Instr: ir.Let{X: s, E: ir.Prim{Op: ir.ExternOp(ir.UndefinedSymbol)}}}
	nb.Body = append([]ir.Stmt{bind}, entry.Body...)

	grown := growVars(prog, s.Idx()+1)
	out := grown.ReplaceBlock(&nb)
	return out, s
}

// growVars returns a Program identical to prog but reporting nv variables
// instead of prog.NumVars(), used right before inserting the sentinel so
// its fresh index is in range.
func growVars(prog *ir.Program, nv int) *ir.Program {
	blocks := prog.Blocks()
	return ir.NewProgram(prog.Entry, blocks, nv)
}
