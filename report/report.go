// Package report formats the pass's liveness tables and rewrite statistics
// for human consumption.
package report

import (
	"fmt"
	"io"

	"honnef.co/go/gdce/dce"
	"honnef.co/go/gdce/ir"
)

// Liveness writes one line per variable of table, in variable order, e.g.
// "v3: Live({0,2})".
func Liveness(w io.Writer, table dce.LivenessTable) {
	for i := 0; i < table.NumVars(); i++ {
		v := ir.VarOfIdx(i)
		fmt.Fprintf(w, "%s: %s\n", v, table.Get(v))
	}
}

// Stats summarizes what a rewrite pass did, for the CLI's closing summary
// line.
type Stats struct {
	NumVars    int
	NumDead    int
	NumLive    int
	NumTop     int
	BlocksSeen int
}

// Summarize walks table and counts how many variables fell into each
// lattice class.
func Summarize(prog *ir.Program, table dce.LivenessTable) Stats {
	s := Stats{NumVars: table.NumVars(), BlocksSeen: len(prog.Blocks())}
	for i := 0; i < table.NumVars(); i++ {
		switch table.Get(ir.VarOfIdx(i)).Kind {
		case dce.LDead:
			s.NumDead++
		case dce.LLive:
			s.NumLive++
		case dce.LTop:
			s.NumTop++
		}
	}
	return s
}

func (s Stats) String() string {
	return fmt.Sprintf("%d vars across %d blocks: %d dead, %d field-live, %d top",
		s.NumVars, s.BlocksSeen, s.NumDead, s.NumLive, s.NumTop)
}
