package ir

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func twoBlockProgram() *Program {
	entry := &Block{Addr: 0, Term: Jump{Cont: Cont{Target: 1}}}
	other := &Block{Addr: 1, Term: Return{}}
	return NewProgram(0, []*Block{entry, other}, 0)
}

func TestBlocksAreSortedByAddress(t *testing.T) {
	// construct out of order to exercise the sort.
	other := &Block{Addr: 1, Term: Return{}}
	entry := &Block{Addr: 0, Term: Jump{Cont: Cont{Target: 1}}}
	p := NewProgram(0, []*Block{other, entry}, 0)

	blocks := p.Blocks()
	require.Len(t, blocks, 2)
	require.Equal(t, Addr(0), blocks[0].Addr)
	require.Equal(t, Addr(1), blocks[1].Addr)
}

func TestEntryBlockPanicsWhenMissing(t *testing.T) {
	p := NewProgram(5, nil, 0)
	require.Panics(t, func() { p.EntryBlock() })
}

func TestReplaceBlockDoesNotMutateOriginal(t *testing.T) {
	p := twoBlockProgram()
	nb := &Block{Addr: 1, Term: Stop{}}
	p2 := p.ReplaceBlock(nb)

	orig, _ := p.Block(1)
	require.IsType(t, Return{}, orig.Term)

	updated, _ := p2.Block(1)
	require.IsType(t, Stop{}, updated.Term)
}

func TestReplaceBlocksAppliesAllAtOnce(t *testing.T) {
	p := twoBlockProgram()
	nb0 := &Block{Addr: 0, Term: Stop{}}
	nb1 := &Block{Addr: 1, Term: Stop{}}
	p2 := p.ReplaceBlocks([]*Block{nb0, nb1})

	for _, a := range []Addr{0, 1} {
		b, _ := p2.Block(a)
		require.IsType(t, Stop{}, b.Term)
	}
	// original untouched
	orig, _ := p.Block(0)
	require.IsType(t, Jump{}, orig.Term)
}

func TestCloneIsIndependent(t *testing.T) {
	p := twoBlockProgram()
	clone := p.Clone()
	b, _ := clone.Block(0)
	b.Params = append(b.Params, VarOfIdx(0))

	orig, _ := p.Block(0)
	require.Empty(t, orig.Params)
}
