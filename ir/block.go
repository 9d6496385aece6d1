package ir

// Block is an ordered sequence of formal parameters, a body of instructions,
// and a terminating branch (spec.md §3.1).
type Block struct {
	Addr    Addr
	Params  []Var
	Body    []Stmt
	Term    Branch
	TermLoc Location
}

// Program maps block addresses to blocks, with one distinguished entry
// block (spec.md §3.1).
type Program struct {
	Entry  Addr
	blocks map[Addr]*Block
	nv     int
}

// NewProgram builds a Program from its blocks and declares the total number
// of variables in scope (ir.Var.Idx() must stay below nv for every variable
// appearing anywhere in the program).
func NewProgram(entry Addr, blocks []*Block, nv int) *Program {
	p := &Program{Entry: entry, blocks: make(map[Addr]*Block, len(blocks)), nv: nv}
	for _, b := range blocks {
		p.blocks[b.Addr] = b
	}
	return p
}

// NumVars returns nv, the dense variable count of the program.
func (p *Program) NumVars() int { return p.nv }

// Block looks up a block by address. It returns (nil, false) for a missing
// target, which callers must treat as a dead continuation (spec.md §7).
func (p *Program) Block(a Addr) (*Block, bool) {
	b, ok := p.blocks[a]
	return b, ok
}

// EntryBlock returns the program's distinguished entry block.
func (p *Program) EntryBlock() *Block {
	b, ok := p.blocks[p.Entry]
	if !ok {
		panic("ir: program has no entry block")
	}
	return b
}

// Blocks returns every block in the program, ordered by ascending address
// for deterministic iteration (spec.md §5).
func (p *Program) Blocks() []*Block {
	out := make([]*Block, 0, len(p.blocks))
	for _, b := range p.blocks {
		out = append(out, b)
	}
	sortBlocks(out)
	return out
}

func sortBlocks(bs []*Block) {
	// insertion sort: block counts are small and this keeps ir dependency-free
	for i := 1; i < len(bs); i++ {
		for j := i; j > 0 && bs[j].Addr < bs[j-1].Addr; j-- {
			bs[j], bs[j-1] = bs[j-1], bs[j]
		}
	}
}

// clone returns a shallow, block-and-slice-copying clone of the program, so
// rewrites never mutate the caller's input (spec.md §6.1: "Mutated only by
// returning a new value; the input is not modified in place.").
func (p *Program) clone() *Program {
	np := &Program{Entry: p.Entry, blocks: make(map[Addr]*Block, len(p.blocks)), nv: p.nv}
	for a, b := range p.blocks {
		nb := *b
		nb.Params = append([]Var(nil), b.Params...)
		nb.Body = append([]Stmt(nil), b.Body...)
		np.blocks[a] = &nb
	}
	return np
}

// Clone is the exported form of clone, for callers that need to produce a
// new Program value from an existing one.
func (p *Program) Clone() *Program { return p.clone() }

// ReplaceBlock returns a new Program identical to p except that the block at
// b.Addr is replaced by b.
func (p *Program) ReplaceBlock(b *Block) *Program {
	np := p.clone()
	np.blocks[b.Addr] = b
	return np
}

// ReplaceBlocks returns a new Program identical to p except that every block
// in bs replaces the block at its own address. Unlike calling ReplaceBlock
// in a loop, this clones the block map once.
func (p *Program) ReplaceBlocks(bs []*Block) *Program {
	np := p.clone()
	for _, b := range bs {
		np.blocks[b.Addr] = b
	}
	return np
}
