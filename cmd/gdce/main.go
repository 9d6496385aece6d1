// gdce runs the global dead-code elimination pass over a single IR program
// and prints a liveness report, wrapping the one analysis in a minimal
// flag-driven CLI.
package main // import "honnef.co/go/gdce/cmd/gdce"

import (
	"flag"
	"fmt"
	"log"
	"os"

	"honnef.co/go/gdce/config"
	"honnef.co/go/gdce/dce"
	"honnef.co/go/gdce/debug"
	"honnef.co/go/gdce/demo"
	"honnef.co/go/gdce/ir"
	"honnef.co/go/gdce/purity"
	"honnef.co/go/gdce/report"
)

func usage() {
	fmt.Fprintf(os.Stderr, "Usage of gdce:\n")
	fmt.Fprintf(os.Stderr, "\tgdce [flags] dir\n")
	fmt.Fprintf(os.Stderr, "Flags:\n")
	flag.PrintDefaults()
}

// capturingTracer forwards every call to an inner dce.Tracer and remembers
// the final liveness table and the program it was computed for, so the
// driver doesn't have to recompute S1-S4 a second time just to print a
// report.
type capturingTracer struct {
	inner dce.Tracer
	final dce.LivenessTable
	prog  *ir.Program
}

func (c *capturingTracer) Uses(g dce.UseGraph, p *ir.Program)  { c.inner.Uses(g, p) }
func (c *capturingTracer) Seed(t dce.LivenessTable, p *ir.Program) { c.inner.Seed(t, p) }
func (c *capturingTracer) Final(t dce.LivenessTable, p *ir.Program) {
	c.final = t
	c.prog = p
	c.inner.Final(t, p)
}
func (c *capturingTracer) Program(label string, p *ir.Program) { c.inner.Program(label, p) }

func main() {
	flag.Usage = usage
	debugFlag := flag.Bool("debug", false, "dump use-graph, seed and final liveness tables")
	dumpProgs := flag.Bool("dump-programs", false, "additionally dump the input and rewritten programs")
	timesFlag := flag.Bool("times", false, "print stage timings to stderr")
	maxFields := flag.Int("max-trace-fields", 0, "cap the number of fields shown per Live(F) entry in -debug output (0 = unlimited)")
	flag.Parse()

	dir := "."
	if flag.NArg() > 0 {
		dir = flag.Arg(0)
	}

	cfg, err := config.Load(dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "gdce: loading config: %s\n", err)
		os.Exit(1)
	}
	if *maxFields != 0 {
		cfg.DeadCode.MaxTraceFields = *maxFields
	}

	logger := log.New(os.Stderr, "", log.LstdFlags)
	tracer := &capturingTracer{inner: &debug.Tracer{
		Enabled:   *debugFlag || cfg.Debug.GlobalDeadCode,
		DumpProgs: *dumpProgs,
		MaxFields: cfg.DeadCode.MaxTraceFields,
		Logger:    logger,
	}}
	timer := debug.Timer{Enabled: *timesFlag || cfg.Debug.Times, Logger: logger}

	prog, info := demo.Program()

	stop := timer.Track("add-sentinel")
	prog, sentinel := dce.AddSentinel(prog)
	stop()

	stop = timer.Track("dce")
	out := dce.Run(prog, sentinel, info, dce.Options{
		Enabled: cfg.DeadCode.Enabled,
		Purity:  purity.NewOracle(demo.PureFuncs(), demo.FuncName),
		Trace:   tracer,
	})
	stop()

	if tracer.prog == nil {
		fmt.Fprintln(os.Stderr, "gdce: pass produced no liveness table")
		os.Exit(1)
	}

	report.Liveness(os.Stdout, tracer.final)
	fmt.Fprintln(os.Stdout, report.Summarize(out, tracer.final))
}
