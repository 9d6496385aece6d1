package dce

import "honnef.co/go/gdce/ir"

// sigma implements spec.md §4.5's σ(v) = if live(v) then v else sentinel,
// plus the program lookup σ_cont needs to find a continuation's target
// block.
type sigma struct {
	prog     *ir.Program
	table    LivenessTable
	sentinel ir.Var
}

func (s sigma) of(v ir.Var) ir.Var {
	if s.table.Get(v).IsDead() {
		return s.sentinel
	}
	return v
}

func (s sigma) ofAll(vs []ir.Var) []ir.Var {
	out := make([]ir.Var, len(vs))
	for i, v := range vs {
		out[i] = s.of(v)
	}
	return out
}

// Zero is the rewriter of spec.md §4.5: it replaces references to dead
// variables with sentinel and compacts trailing dead fields of heap blocks.
// It never deletes an instruction; syntactic cleanup of the resulting dead
// bindings is left to the downstream local dead-code eliminator (spec.md
// §1).
func Zero(prog *ir.Program, sentinel ir.Var, table LivenessTable) *ir.Program {
	s := sigma{prog: prog, table: table, sentinel: sentinel}
	blocks := prog.Blocks()
	rewritten := make([]*ir.Block, len(blocks))
	for i, b := range blocks {
		rewritten[i] = rewriteBlock(s, b)
	}
	return prog.ReplaceBlocks(rewritten)
}

func rewriteBlock(s sigma, b *ir.Block) *ir.Block {
	nb := *b
	nb.Body = make([]ir.Stmt, len(b.Body))
	for i, st := range b.Body {
		nb.Body[i] = ir.Stmt{Instr: rewriteInstr(s, st.Instr), Loc: st.Loc}
	}
	nb.Term = rewriteBranch(s, b.Term)
	return &nb
}

func rewriteInstr(s sigma, instr ir.Instruction) ir.Instruction {
	switch instr := instr.(type) {
	case ir.Let:
		return ir.Let{X: instr.X, E: rewriteExpr(s, instr.X, instr.E)}
	default:
		// Assign, SetField, OffsetRef, ArraySet: unchanged.
		return instr
	}
}

func rewriteExpr(s sigma, x ir.Var, e ir.Expr) ir.Expr {
	switch e := e.(type) {
	case ir.Closure:
		return ir.Closure{Params: e.Params, Cont: rewriteCont(s, e.Cont)}
	case ir.MakeBlock:
		live := s.table.Get(x)
		if live.Kind != LLive {
			// a Top or Dead block binding is left unchanged; a dead
			// binding is removed by the downstream pass, and a fully
			// live (Top) block has no field set to narrow against.
			return e
		}
		return compactBlock(s, e, live.Fields)
	case ir.Apply:
		return ir.Apply{Fn: e.Fn, Args: s.ofAll(e.Args)}
	default:
		// Assign-equivalent Let forms (Field, Const, Prim): unchanged.
		return e
	}
}

// compactBlock replaces vars[i] for i not in F with sentinel, then drops
// trailing sentinel elements (spec.md §4.5: "Compact"). Interior sentinels
// are left untouched so surviving field indices stay stable.
func compactBlock(s sigma, mb ir.MakeBlock, live ir.FieldSet) ir.Expr {
	vars := make([]ir.Var, len(mb.Vars))
	for i, v := range mb.Vars {
		if live.Has(i) {
			vars[i] = v
		} else {
			vars[i] = s.sentinel
		}
	}
	end := len(vars)
	for end > 0 && vars[end-1] == s.sentinel {
		end--
	}
	return ir.MakeBlock{Tag: mb.Tag, Vars: vars[:end], Kind: mb.Kind}
}

func rewriteBranch(s sigma, br ir.Branch) ir.Branch {
	switch br := br.(type) {
	case ir.Return:
		return ir.Return{X: s.of(br.X)}
	case ir.Jump:
		return ir.Jump{Cont: rewriteCont(s, br.Cont)}
	case ir.Poptrap:
		return ir.Poptrap{Cont: rewriteCont(s, br.Cont)}
	case ir.Cond:
		// x drove a live conditional (seeded Top); it is left untouched.
		return ir.Cond{X: br.X, Then: rewriteCont(s, br.Then), Else: rewriteCont(s, br.Else)}
	case ir.Switch:
		return ir.Switch{X: br.X, A1: rewriteConts(s, br.A1), A2: rewriteConts(s, br.A2)}
	case ir.Pushtrap:
		return ir.Pushtrap{
			Cont:       rewriteCont(s, br.Cont),
			HandlerVar: br.HandlerVar,
			ContH:      rewriteCont(s, br.ContH),
			PushID:     br.PushID,
		}
	default:
		// Raise, Stop: unchanged.
		return br
	}
}

func rewriteConts(s sigma, cs []ir.Cont) []ir.Cont {
	out := make([]ir.Cont, len(cs))
	for i, c := range cs {
		out[i] = rewriteCont(s, c)
	}
	return out
}

// rewriteCont implements σ_cont(pc, args) of spec.md §4.5: for each
// position, replace args[i] with sentinel if the target's params[i] is
// dead. If the target block is missing, args pass through unchanged, and
// arity is always preserved.
func rewriteCont(s sigma, c ir.Cont) ir.Cont {
	target, ok := s.prog.Block(c.Target)
	if !ok {
		return c
	}
	args := append([]ir.Var(nil), c.Args...)
	n := len(target.Params)
	if len(args) < n {
		n = len(args)
	}
	for i := 0; i < n; i++ {
		if s.table.Get(target.Params[i]).IsDead() {
			args[i] = s.sentinel
		}
	}
	return ir.Cont{Target: c.Target, Args: args}
}
