package dce

import (
	"testing"

	"github.com/stretchr/testify/require"
	"honnef.co/go/gdce/flowinfo"
	"honnef.co/go/gdce/ir"
)

type alwaysPure struct{}

func (alwaysPure) Pure(ir.Expr) bool { return true }

type alwaysImpure struct{}

func (alwaysImpure) Pure(ir.Expr) bool { return false }

func TestInitialLivenessPureLetStaysDead(t *testing.T) {
	a := ir.VarOfIdx(0)
	prog := ir.NewProgram(0, []*ir.Block{{
		Addr: 0,
		Body: []ir.Stmt{{Instr: ir.Let{X: a, E: ir.Const{}}}},
		Term: ir.Stop{},
	}}, 1)

	table := InitialLiveness(prog, alwaysPure{}, flowinfo.NewStore())
	require.True(t, table.Get(a).IsDead())
}

func TestInitialLivenessImpureLetIsTop(t *testing.T) {
	a := ir.VarOfIdx(0)
	prog := ir.NewProgram(0, []*ir.Block{{
		Addr: 0,
		Body: []ir.Stmt{{Instr: ir.Let{X: a, E: ir.Prim{Op: ir.ExternOp("print")}}}},
		Term: ir.Stop{},
	}}, 1)

	table := InitialLiveness(prog, alwaysImpure{}, flowinfo.NewStore())
	require.True(t, table.Get(a).IsTop())
}

func TestInitialLivenessSetFieldSeedsFieldAndTarget(t *testing.T) {
	x := ir.VarOfIdx(0)
	y := ir.VarOfIdx(1)
	prog := ir.NewProgram(0, []*ir.Block{{
		Addr: 0,
		Body: []ir.Stmt{{Instr: ir.SetField{X: x, I: 2, Y: y}}},
		Term: ir.Stop{},
	}}, 2)

	table := InitialLiveness(prog, alwaysPure{}, flowinfo.NewStore())
	require.True(t, table.Get(x).Equal(LiveField(2)))
	require.True(t, table.Get(y).IsTop())
}

func TestInitialLivenessArraySetSeedsAllThree(t *testing.T) {
	x := ir.VarOfIdx(0)
	y := ir.VarOfIdx(1)
	z := ir.VarOfIdx(2)
	prog := ir.NewProgram(0, []*ir.Block{{
		Addr: 0,
		Body: []ir.Stmt{{Instr: ir.ArraySet{X: x, Y: y, Z: z}}},
		Term: ir.Stop{},
	}}, 3)

	table := InitialLiveness(prog, alwaysPure{}, flowinfo.NewStore())
	require.True(t, table.Get(x).IsTop())
	require.True(t, table.Get(y).IsTop())
	require.True(t, table.Get(z).IsTop())
}

func TestInitialLivenessReturnEscapeRaisesToTop(t *testing.T) {
	r := ir.VarOfIdx(0)
	prog := ir.NewProgram(0, []*ir.Block{{
		Addr: 0,
		Term: ir.Return{X: r},
	}}, 1)

	info := flowinfo.NewStore()
	info.SetEscape(r, flowinfo.Escapes)
	table := InitialLiveness(prog, alwaysPure{}, info)
	require.True(t, table.Get(r).IsTop())
}

func TestInitialLivenessReturnNoEscapeStaysDead(t *testing.T) {
	r := ir.VarOfIdx(0)
	prog := ir.NewProgram(0, []*ir.Block{{
		Addr: 0,
		Term: ir.Return{X: r},
	}}, 1)

	table := InitialLiveness(prog, alwaysPure{}, flowinfo.NewStore())
	require.True(t, table.Get(r).IsDead())
}

func TestInitialLivenessCondAndSwitchRaiseDiscriminant(t *testing.T) {
	c := ir.VarOfIdx(0)
	prog := ir.NewProgram(0, []*ir.Block{{
		Addr: 0,
		Term: ir.Cond{X: c, Then: ir.Cont{Target: 1}, Else: ir.Cont{Target: 1}},
	}}, 1)

	table := InitialLiveness(prog, alwaysPure{}, flowinfo.NewStore())
	require.True(t, table.Get(c).IsTop())

	s := ir.VarOfIdx(0)
	prog = ir.NewProgram(0, []*ir.Block{{
		Addr: 0,
		Term: ir.Switch{X: s, A1: []ir.Cont{{Target: 1}}},
	}}, 1)

	table = InitialLiveness(prog, alwaysPure{}, flowinfo.NewStore())
	require.True(t, table.Get(s).IsTop())
}
