package purity

import (
	"testing"

	"github.com/stretchr/testify/require"
	"honnef.co/go/gdce/ir"
)

func TestOracleConstAndAllocationArePure(t *testing.T) {
	o := NewOracle(nil, nil)
	require.True(t, o.Pure(ir.Const{}))
	require.True(t, o.Pure(ir.MakeBlock{}))
	require.True(t, o.Pure(ir.Closure{}))
	require.True(t, o.Pure(ir.Field{}))
}

func TestOraclePrimPurity(t *testing.T) {
	o := NewOracle(nil, nil)
	require.True(t, o.Pure(ir.Prim{Op: ir.Op("+")}))
	require.False(t, o.Pure(ir.Prim{Op: ir.Op("print")}))
	require.False(t, o.Pure(ir.Prim{Op: ir.ExternOp("+")}))
}

func TestOracleApplyLooksUpPureFuncs(t *testing.T) {
	f := ir.VarOfIdx(0)
	o := NewOracle(map[string]bool{"id": true}, func(v ir.Var) (string, bool) {
		if v == f {
			return "id", true
		}
		return "", false
	})
	require.True(t, o.Pure(ir.Apply{Fn: f}))

	unknown := ir.VarOfIdx(1)
	require.False(t, o.Pure(ir.Apply{Fn: unknown}))
}

func TestOracleApplyWithoutFuncNameIsImpure(t *testing.T) {
	o := NewOracle(map[string]bool{"id": true}, nil)
	require.False(t, o.Pure(ir.Apply{Fn: ir.VarOfIdx(0)}))
}

func TestGateDisabledIsAlwaysImpure(t *testing.T) {
	o := NewOracle(nil, nil)
	g := Gate{Oracle: o, Enabled: false}
	require.False(t, g.Pure(ir.Const{}))
}

func TestGateEnabledDelegates(t *testing.T) {
	o := NewOracle(nil, nil)
	g := Gate{Oracle: o, Enabled: true}
	require.True(t, g.Pure(ir.Const{}))
}

func TestGateNilOracleIsImpure(t *testing.T) {
	g := Gate{Enabled: true}
	require.False(t, g.Pure(ir.Const{}))
}
