// Package irutil provides generic helpers over honnef.co/go/gdce/ir programs:
// continuation listing, reachability walks and instruction iteration.
package irutil

import "honnef.co/go/gdce/ir"

// Conts returns every continuation a branch transfers control to, in the
// order spec.md §4.2 "Edges from continuations" enumerates them.
func Conts(br ir.Branch) []ir.Cont {
	switch br := br.(type) {
	case ir.Jump:
		return []ir.Cont{br.Cont}
	case ir.Poptrap:
		return []ir.Cont{br.Cont}
	case ir.Cond:
		return []ir.Cont{br.Then, br.Else}
	case ir.Switch:
		out := make([]ir.Cont, 0, len(br.A1)+len(br.A2))
		out = append(out, br.A1...)
		out = append(out, br.A2...)
		return out
	case ir.Pushtrap:
		return []ir.Cont{br.Cont, br.ContH}
	case ir.Return, ir.Raise, ir.Stop:
		return nil
	default:
		return nil
	}
}

// Walk visits every block reachable from the block at address from by
// following continuations, depth-first, calling fn on each. fn returning
// false prunes that block's successors without stopping the walk.
func Walk(prog *ir.Program, from ir.Addr, fn func(*ir.Block) bool) {
	seen := map[ir.Addr]bool{}
	wl := []ir.Addr{from}
	for len(wl) > 0 {
		a := wl[len(wl)-1]
		wl = wl[:len(wl)-1]
		if seen[a] {
			continue
		}
		seen[a] = true
		b, ok := prog.Block(a)
		if !ok {
			continue
		}
		if !fn(b) {
			continue
		}
		for _, c := range Conts(b.Term) {
			wl = append(wl, c.Target)
		}
	}
}

// Reachable reports whether to is reachable from the block at address from
// by following continuations.
func Reachable(prog *ir.Program, from, to ir.Addr) bool {
	if from == to {
		return true
	}
	found := false
	Walk(prog, from, func(b *ir.Block) bool {
		if b.Addr == to {
			found = true
			return false
		}
		return true
	})
	return found
}

// EachInstr visits every (Instruction, Location) pair in every block of the
// program, in block-address then in-block order, matching the deterministic
// iteration spec.md §5 requires.
func EachInstr(prog *ir.Program, fn func(*ir.Block, ir.Stmt)) {
	for _, b := range prog.Blocks() {
		for _, st := range b.Body {
			fn(b, st)
		}
	}
}
