package ir

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVarBuilderFreshIsDense(t *testing.T) {
	var vb VarBuilder
	a := vb.Fresh("a")
	b := vb.Fresh("b")

	require.Equal(t, 0, a.Idx())
	require.Equal(t, 1, b.Idx())
	require.Equal(t, 2, vb.NumVars())
}

func TestVarStringFallsBackToIndex(t *testing.T) {
	v := VarOfIdx(3)
	require.Equal(t, "v3", v.String())
	require.True(t, v.IsValid())
}

func TestNoVarIsInvalid(t *testing.T) {
	require.False(t, NoVar.IsValid())
}

func TestVarOfIdxRoundTrips(t *testing.T) {
	var vb VarBuilder
	a := vb.Fresh("a")
	require.Equal(t, a.Idx(), VarOfIdx(a.Idx()).Idx())
}
