// Package demo builds a small, fixed IR program exercising the pass's
// interesting cases (a live-by-field record, a dead constant binding, an
// escaping return value), standing in for the real frontend that would hand
// gdce a program recovered from a compiler's earlier stages. It is small,
// self-contained, and chosen to light up one behavior each.
package demo

import (
	"go/constant"

	"honnef.co/go/gdce/flowinfo"
	"honnef.co/go/gdce/ir"
)

// Program returns a fixed four-variable program:
//
//	L0():
//	  let a = const 1
//	  let b = const 2         ; dead: never read
//	  let r = block(a, b)     ; only field 0 is ever projected
//	  let f0 = r.0
//	  return f0
//
// f0 escapes via Return, which makes field 0 of r Top-reachable and field 1
// (bound to b) dead, so S5 should compact r down to a one-field block and
// leave b's own binding untouched (local DCE, out of scope, would remove
// it).
func Program() (*ir.Program, flowinfo.GlobalInfo) {
	var vb ir.VarBuilder
	a := vb.Fresh("a")
	b := vb.Fresh("b")
	r := vb.Fresh("r")
	f0 := vb.Fresh("f0")

	body := []ir.Stmt{
		{Instr: ir.Let{X: a, E: ir.Const{Value: constant.MakeInt64(1)}}},
		{Instr: ir.Let{X: b, E: ir.Const{Value: constant.MakeInt64(2)}}},
		{Instr: ir.Let{X: r, E: ir.MakeBlock{Tag: 0, Vars: []ir.Var{a, b}, Kind: ir.KindTuple}}},
		{Instr: ir.Let{X: f0, E: ir.Field{Z: r, I: 0}}},
	}
	entry := &ir.Block{
		Addr: 0,
		Body: body,
		Term: ir.Return{X: f0},
	}
	prog := ir.NewProgram(0, []*ir.Block{entry}, vb.NumVars())

	info := flowinfo.NewStore()
	info.SetEscape(f0, flowinfo.Escapes)
	return prog, info
}

// PureFuncs is the empty known-pure-function table: the demo program makes
// no Apply calls, so nothing needs to be listed.
func PureFuncs() map[string]bool { return map[string]bool{} }

// FuncName never resolves a Var to a name, since the demo program has no
// closures to look up.
func FuncName(ir.Var) (string, bool) { return "", false }
