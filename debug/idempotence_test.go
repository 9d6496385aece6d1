package debug

import (
	"testing"

	"github.com/stretchr/testify/require"
	"honnef.co/go/gdce/dce"
	"honnef.co/go/gdce/flowinfo"
	"honnef.co/go/gdce/ir"
)

// Running the rewrite a second time over its own output must be a no-op:
// whatever the first pass left live stays live, so sigma's substitutions
// have nothing left to do.
func TestZeroIsIdempotent(t *testing.T) {
	a := ir.VarOfIdx(0)
	b := ir.VarOfIdx(1)
	r := ir.VarOfIdx(2)
	f0 := ir.VarOfIdx(3)

	prog := ir.NewProgram(0, []*ir.Block{{
		Addr: 0,
		Body: []ir.Stmt{
			{Instr: ir.Let{X: a, E: ir.Const{}}},
			{Instr: ir.Let{X: b, E: ir.Const{}}},
			{Instr: ir.Let{X: r, E: ir.MakeBlock{Vars: []ir.Var{a, b}}}},
			{Instr: ir.Let{X: f0, E: ir.Field{Z: r, I: 0}}},
		},
		Term: ir.Return{X: f0},
	}}, 4)

	info := flowinfo.NewStore()
	info.SetEscape(f0, flowinfo.Escapes)

	prog, sentinel := dce.AddSentinel(prog)
	once := dce.Run(prog, sentinel, info, dce.Options{Enabled: true, Purity: constTruePurity{}})

	defs := dce.Definitions(once)
	uses := dce.Usages(once, info)
	seed := dce.InitialLiveness(once, constTruePurity{}, info)
	table := dce.Solve(once, uses, defs, seed)
	twice := dce.Zero(once, sentinel, table)

	require.Equal(t, Sprint(once), Sprint(twice))
}

type constTruePurity struct{}

func (constTruePurity) Pure(ir.Expr) bool { return true }
