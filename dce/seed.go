package dce

import (
	"honnef.co/go/gdce/flowinfo"
	"honnef.co/go/gdce/ir"
)

// Purity is the pure_expr judgement consulted while seeding, already
// conjoined with the global dead-code-enabled flag (spec.md §4.3, §6.3).
type Purity interface {
	Pure(ir.Expr) bool
}

// InitialLiveness performs the single syntactic walk of S3 (spec.md §4.3):
// seed every variable to Dead, then raise variables with locally observable
// effects.
func InitialLiveness(prog *ir.Program, pure Purity, info flowinfo.GlobalInfo) LivenessTable {
	t := newLivenessTable(prog.NumVars())

	for _, b := range prog.Blocks() {
		for _, st := range b.Body {
			switch instr := st.Instr.(type) {
			case ir.Let:
				if !pure.Pure(instr.E) {
					t.raise(instr.X, Top)
				}
			case ir.SetField:
				t.raise(instr.X, LiveField(instr.I))
				t.raise(instr.Y, Top)
			case ir.ArraySet:
				t.raise(instr.X, Top)
				t.raise(instr.Y, Top)
				t.raise(instr.Z, Top)
			case ir.OffsetRef:
				t.raise(instr.X, LiveField(instr.I))
			case ir.Assign:
				// nothing at seed time; propagation handles it.
			}
		}
		seedTerminator(&t, b.Term, info)
	}

	return t
}

func seedTerminator(t *LivenessTable, br ir.Branch, info flowinfo.GlobalInfo) {
	switch br := br.(type) {
	case ir.Return:
		esc := info.Escape(br.X)
		if esc == flowinfo.Escapes || esc == flowinfo.EscapeConstant {
			t.raise(br.X, Top)
		}
	case ir.Raise:
		t.raise(br.X, Top)
	case ir.Cond:
		t.raise(br.X, Top)
	case ir.Switch:
		t.raise(br.X, Top)
	case ir.Stop, ir.Jump, ir.Pushtrap, ir.Poptrap:
		// nothing additional.
	}
}
