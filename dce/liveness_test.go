package dce

import (
	"testing"

	"github.com/stretchr/testify/require"
	"honnef.co/go/gdce/ir"
)

func TestJoinLattice(t *testing.T) {
	require.Equal(t, Live(ir.NewFieldSet(1)), Join(Dead, Live(ir.NewFieldSet(1))))
	require.Equal(t, Top, Join(Top, Live(ir.NewFieldSet(1))))
	require.True(t, Join(Live(ir.NewFieldSet(1)), Live(ir.NewFieldSet(2))).Equal(Live(ir.NewFieldSet(1, 2))))
}

func TestLeq(t *testing.T) {
	require.True(t, Leq(Dead, Top))
	require.True(t, Leq(Live(ir.NewFieldSet(1)), Live(ir.NewFieldSet(1, 2))))
	require.False(t, Leq(Top, Live(ir.NewFieldSet(1))))
}

func TestLiveEmptyPanics(t *testing.T) {
	require.Panics(t, func() { Live(ir.NewFieldSet()) })
}

func TestLivenessTableRaiseReportsChange(t *testing.T) {
	tbl := newLivenessTable(1)
	v := ir.VarOfIdx(0)

	require.True(t, tbl.raise(v, LiveField(0)))
	require.False(t, tbl.raise(v, LiveField(0)))
	require.True(t, tbl.raise(v, Top))
}

func TestLivenessTableCloneIsIndependent(t *testing.T) {
	tbl := newLivenessTable(1)
	v := ir.VarOfIdx(0)
	tbl.raise(v, Top)

	clone := tbl.Clone()
	clone.set(v, Dead)

	require.Equal(t, Top, tbl.Get(v))
	require.Equal(t, Dead, clone.Get(v))
}
