package debug

import (
	"fmt"
	"strings"

	"honnef.co/go/gdce/ir"
)

// Sprint renders a program as indented pseudo-assembly, adapted from this
// package's long-standing role of turning compiler-internal values into
// readable text for -debug output (previously FormatNode for Go ASTs; here,
// for this pass's own IR).
func Sprint(p *ir.Program) string {
	var b strings.Builder
	for _, blk := range p.Blocks() {
		fmt.Fprintf(&b, "%s(%s):\n", addrString(blk.Addr), varList(blk.Params))
		for _, st := range blk.Body {
			fmt.Fprintf(&b, "  %s\n", instrString(st.Instr))
		}
		fmt.Fprintf(&b, "  %s\n", branchString(blk.Term))
	}
	return b.String()
}

func addrString(a ir.Addr) string { return fmt.Sprintf("L%d", int(a)) }

func varList(vs []ir.Var) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = v.String()
	}
	return strings.Join(parts, ", ")
}

func contString(c ir.Cont) string {
	return fmt.Sprintf("%s(%s)", addrString(c.Target), varList(c.Args))
}

func instrString(instr ir.Instruction) string {
	switch instr := instr.(type) {
	case ir.Let:
		return fmt.Sprintf("let %s = %s", instr.X, exprString(instr.E))
	case ir.Assign:
		return fmt.Sprintf("%s := %s", instr.X, instr.Y)
	case ir.SetField:
		return fmt.Sprintf("%s.%d <- %s", instr.X, instr.I, instr.Y)
	case ir.ArraySet:
		return fmt.Sprintf("%s[%s] <- %s", instr.X, instr.Y, instr.Z)
	case ir.OffsetRef:
		return fmt.Sprintf("%s += %d", instr.X, instr.I)
	default:
		return fmt.Sprintf("<%T>", instr)
	}
}

func exprString(e ir.Expr) string {
	switch e := e.(type) {
	case ir.Apply:
		return fmt.Sprintf("apply %s(%s)", e.Fn, varList(e.Args))
	case ir.MakeBlock:
		return fmt.Sprintf("block(%s)", varList(e.Vars))
	case ir.Field:
		return fmt.Sprintf("%s.%d", e.Z, e.I)
	case ir.Const:
		return fmt.Sprintf("const %s", e.Value)
	case ir.Closure:
		return fmt.Sprintf("closure(%s) -> %s", varList(e.Params), contString(e.Cont))
	case ir.Prim:
		return fmt.Sprintf("prim %s(%s)", e.Op.Name, atomList(e.Args))
	default:
		return fmt.Sprintf("<%T>", e)
	}
}

func atomList(as []ir.Atom) string {
	parts := make([]string, len(as))
	for i, a := range as {
		switch a := a.(type) {
		case ir.AVar:
			parts[i] = a.Var.String()
		case ir.AConst:
			parts[i] = a.Value.String()
		}
	}
	return strings.Join(parts, ", ")
}

func branchString(br ir.Branch) string {
	switch br := br.(type) {
	case ir.Return:
		return fmt.Sprintf("return %s", br.X)
	case ir.Raise:
		return fmt.Sprintf("raise %s", br.X)
	case ir.Stop:
		return "stop"
	case ir.Jump:
		return fmt.Sprintf("jump %s", contString(br.Cont))
	case ir.Cond:
		return fmt.Sprintf("if %s then %s else %s", br.X, contString(br.Then), contString(br.Else))
	case ir.Switch:
		return fmt.Sprintf("switch %s [%d ints, %d tags]", br.X, len(br.A1), len(br.A2))
	case ir.Pushtrap:
		return fmt.Sprintf("pushtrap %s handler %s -> %s", contString(br.Cont), br.HandlerVar, contString(br.ContH))
	case ir.Poptrap:
		return fmt.Sprintf("poptrap %s", contString(br.Cont))
	default:
		return fmt.Sprintf("<%T>", br)
	}
}
