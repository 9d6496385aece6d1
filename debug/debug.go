// Package debug implements the globaldeadcode and times debug switches of
// spec.md §6.3: best-effort tracing of the pass's intermediate tables that
// never affects the computed output. Output goes through log.Printf, gated
// by an Enabled bool.
package debug

import (
	"log"
	"strconv"
	"time"

	"honnef.co/go/gdce/dce"
	"honnef.co/go/gdce/ir"
)

// Tracer implements dce.Tracer, dumping the use-graph, seed liveness, final
// liveness, and (optionally) the program before and after rewriting.
// MaxFields caps how many members of a Live(F) field set get printed per
// variable; 0 means unlimited (config.Config.DeadCode.MaxTraceFields).
type Tracer struct {
	Enabled   bool
	DumpProgs bool
	MaxFields int
	Logger    *log.Logger
}

func (t *Tracer) logger() *log.Logger {
	if t.Logger != nil {
		return t.Logger
	}
	return log.Default()
}

func (t *Tracer) Uses(g dce.UseGraph, prog *ir.Program) {
	if !t.Enabled {
		return
	}
	t.logger().Printf("dce: use-graph for %d variables", prog.NumVars())
	for i := 0; i < prog.NumVars(); i++ {
		y := ir.VarOfIdx(i)
		for _, e := range g.Uses(y) {
			t.logger().Printf("dce: %s uses %s (%s)", e.String(), y, e.Kind)
		}
	}
}

func (t *Tracer) Seed(table dce.LivenessTable, prog *ir.Program) {
	if !t.Enabled {
		return
	}
	t.dumpTable("seed", table, prog)
}

func (t *Tracer) Final(table dce.LivenessTable, prog *ir.Program) {
	if !t.Enabled {
		return
	}
	t.dumpTable("final", table, prog)
}

func (t *Tracer) Program(label string, p *ir.Program) {
	if !t.Enabled || !t.DumpProgs {
		return
	}
	t.logger().Printf("dce: %s program:\n%s", label, Sprint(p))
}

func (t *Tracer) dumpTable(label string, table dce.LivenessTable, prog *ir.Program) {
	for i := 0; i < prog.NumVars(); i++ {
		v := ir.VarOfIdx(i)
		l := table.Get(v)
		t.logger().Printf("dce: %s[%s] = %s", label, v, t.truncate(l))
	}
}

func (t *Tracer) truncate(l dce.Liveness) string {
	if t.MaxFields <= 0 || l.Kind != dce.LLive {
		return l.String()
	}
	elems := l.Fields.Elems()
	if len(elems) <= t.MaxFields {
		return l.String()
	}
	out := "Live({"
	for i, f := range elems[:t.MaxFields] {
		if i > 0 {
			out += ","
		}
		out += strconv.Itoa(f)
	}
	return out + ",...}) (truncated)"
}

// Timer wraps a unit of work with the times debug switch of spec.md §6.3:
// when enabled, it logs elapsed wall time; when disabled, it's a no-op.
type Timer struct {
	Enabled bool
	Logger  *log.Logger
}

func (t Timer) Track(label string) func() {
	if !t.Enabled {
		return func() {}
	}
	start := time.Now()
	logger := t.Logger
	if logger == nil {
		logger = log.Default()
	}
	return func() {
		logger.Printf("dce: %s took %s", label, time.Since(start))
	}
}
