// Command starforth runs the StarForth virtual machine: an interactive
// FORTH-79 prompt by default, or one of several diagnostic modes selected by
// flag (run the word-test harness, benchmark a module, or generate the
// -break-me markdown report).
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rajames440/starforth/internal/block"
	"github.com/rajames440/starforth/internal/interp"
	"github.com/rajames440/starforth/internal/logio"
	"github.com/rajames440/starforth/internal/testrunner"
	"github.com/rajames440/starforth/internal/vm"
	"github.com/rajames440/starforth/internal/words"
)

func main() {
	var (
		memSize    int
		stackSize  int
		timeout    time.Duration
		trace      bool
		blocksPath string
		numBlocks  int

		runTests  bool
		module    string
		word      string
		benchmark bool
		benchIter int
		breakMe   bool
		breakPath string
	)
	flag.IntVar(&memSize, "mem-size", vm.DefaultMemorySize, "VM memory size in bytes")
	flag.IntVar(&stackSize, "stack-size", vm.DefaultStackSize, "data/return stack depth in cells")
	flag.DurationVar(&timeout, "timeout", 0, "abort execution after this long")
	flag.BoolVar(&trace, "trace", false, "enable trace logging")
	flag.StringVar(&blocksPath, "blocks", "", "path to a block storage file (enables BLOCK/BUFFER/LOAD)")
	flag.IntVar(&numBlocks, "num-buffers", 32, "number of block buffers to keep resident")

	flag.BoolVar(&runTests, "test", false, "run the word-test harness instead of a REPL")
	flag.StringVar(&module, "module", "", "with -test, run only the named module")
	flag.StringVar(&word, "word", "", "with -test, run only the named word's suite")
	flag.BoolVar(&benchmark, "benchmark", false, "with -test and -module, time repeated runs")
	flag.IntVar(&benchIter, "benchmark-iterations", 1000, "iterations per benchmarked module run")
	flag.BoolVar(&breakMe, "break-me", false, "run every suite and write docs/BREAK_ME_REPORT.md")
	flag.StringVar(&breakPath, "break-me-report", "docs/BREAK_ME_REPORT.md", "report path for -break-me")
	flag.Parse()

	log := logio.Logger{}
	log.SetOutput(os.Stderr)
	defer os.Exit(log.ExitCode())

	logf := log.Leveledf("TRACE")
	if !trace {
		logf = nil
	}

	opts := []vm.Option{
		vm.WithMemorySize(memSize),
		vm.WithStackSize(stackSize),
		vm.WithOutput(os.Stdout),
		vm.WithLogf(logf),
	}
	if blocksPath != "" {
		backend, err := block.OpenFileBackend(blocksPath)
		if err != nil {
			log.Errorf("%v", err)
			return
		}
		defer backend.Close()
		maxBlock := (memSize / block.Size) + numBlocks
		opts = append(opts, vm.WithBlocks(block.NewStore(backend, numBlocks, maxBlock)))
	}
	v := vm.New(opts...)
	words.Register(v)

	ctx := context.Background()
	if timeout != 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	switch {
	case breakMe:
		runBreakMe(v, breakPath)
	case runTests:
		runHarness(v, module, word, benchmark, benchIter)
	default:
		runREPL(ctx, v, &log)
	}
}

func runREPL(ctx context.Context, v *vm.VM, log *logio.Logger) {
	scanner := interp.NewScanner()
	scanner.AddReader(os.Stdin)
	interp.New(v, scanner)

	log.ErrorIf(v.Run(ctx))
	log.ErrorIf(v.Flush())
}

func runHarness(v *vm.VM, module, word string, benchmark bool, benchIter int) {
	r := testrunner.NewDefaultRunner(v)
	if benchmark {
		r.EnableBenchmarkMode(benchIter)
	}

	var err error
	switch {
	case word != "":
		err = r.RunWordTests(word)
	case module != "":
		err = r.RunModuleTests(module)
	default:
		stats := r.RunAllTests()
		fmt.Fprintf(os.Stdout, "%d total, %d passed, %d failed, %d skipped, %d errors\n",
			stats.TotalTests, stats.Pass, stats.Fail, stats.Skip, stats.Error)
		if stats.Fail > 0 || stats.Error > 0 {
			os.Exit(1)
		}
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runBreakMe(v *vm.VM, path string) {
	r := testrunner.NewDefaultRunner(v)
	if err := r.BreakMeReport(path); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
