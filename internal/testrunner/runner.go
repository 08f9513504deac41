package testrunner

import (
	"fmt"
	"time"

	"github.com/rajames440/starforth/internal/block"
	"github.com/rajames440/starforth/internal/interp"
	"github.com/rajames440/starforth/internal/vm"
)

// defaultNumBuffers/defaultMaxBlock size the in-memory block store RunAllTests
// wires up on demand, large enough for the Block Words suite's test blocks
// without needing a caller-supplied backend.
const (
	defaultNumBuffers = 8
	defaultMaxBlock   = 64
)

// timeModule runs f and reports how long it took, grounded on
// test_runner.c's get_time_ns/clock()-based timing, restyled onto
// time.Since since Go's monotonic clock needs no platform shim.
func timeModule(f func()) time.Duration {
	start := time.Now()
	f()
	return time.Since(start)
}

// Runner drives TestModule/WordTestSuite/TestCase tables against a live VM,
// grounded on test_runner.c's file-scope globals (test_modules,
// global_test_stats, benchmark_mode/benchmark_iterations, fail_fast),
// restyled as Runner fields so multiple runs (e.g. one per -break-me
// invocation) never share mutable package state.
type Runner struct {
	VM      *vm.VM
	Modules []TestModule
	Stats   TestStats

	FailFast  bool
	Benchmark bool
	BenchIter int
}

// NewRunner returns a Runner over v with the given modules, in POST order.
func NewRunner(v *vm.VM, modules []TestModule) *Runner {
	return &Runner{VM: v, Modules: modules, BenchIter: 1000}
}

// NewDefaultRunner returns a Runner wired with AllModules() and, if v has no
// block store attached yet, an in-memory one sized for the Block Words
// suite -- so BLOCK/BUFFER/UPDATE/LOAD cases run without a caller first
// standing up a file-backed store.
func NewDefaultRunner(v *vm.VM) *Runner {
	if v.Blocks == nil {
		v.Blocks = block.NewStore(block.NewMemBackend(), defaultNumBuffers, defaultMaxBlock)
	}
	return NewRunner(v, AllModules())
}

// EnableBenchmarkMode turns on repeat-and-time execution for RunModuleTests, per
// test_runner.c's enable_benchmark_mode.
func (r *Runner) EnableBenchmarkMode(iterations int) {
	r.Benchmark = true
	r.BenchIter = iterations
}

func (r *Runner) logf(mess string, args ...interface{}) {
	if r.VM.LogFn != nil {
		r.VM.LogFn("TEST: "+mess, args...)
	}
}

// RunSingleTest executes one TestCase against r.VM, per test_common.c's
// run_single_test: the VM's interpreter state is saved, the error flag
// cleared, the case's FORTH source interpreted in a fresh sub-scan, the
// result classified against test.ShouldError, and the VM state restored
// before returning.
func (r *Runner) RunSingleTest(wordName string, test TestCase) TestResult {
	if !test.Implemented {
		return Skip
	}

	saved := SnapshotVMState(r.VM)
	r.VM.Error = vm.ErrNone
	r.VM.LastFault = vm.ErrNone

	r.logf("Running %s.%s: %s", wordName, test.Name, test.Input)

	scanner := interp.NewScanner()
	scanner.AddString(wordName+"."+test.Name, test.Input)
	interp.New(r.VM, scanner).Interpret()

	var result TestResult
	switch {
	case test.ShouldError && r.VM.LastFault != vm.ErrNone:
		result = Pass
		r.logf("  expected error occurred")
	case test.ShouldError:
		result = Fail
		r.logf("  expected error but none occurred")
	case r.VM.LastFault != vm.ErrNone:
		result = Fail
		r.logf("  unexpected VM error: %s", r.VM.LastFault)
	default:
		result = Pass
		r.logf("  test passed")
	}

	RestoreVMState(r.VM, saved)

	if result == Fail {
		r.logf("FAIL %s.%s: input=%q expected=%q", wordName, test.Name, test.Input, test.Expected)
		if r.FailFast {
			panic(fmt.Sprintf("testrunner: fail-fast: %s.%s: %s", wordName, test.Name, test.Expected))
		}
	}

	return result
}

// RunTestSuite executes every TestCase in suite, restoring the dictionary
// boundary around the whole suite so suite-defined words never leak into
// later suites, per test_common.c's run_test_suite.
func (r *Runner) RunTestSuite(suite WordTestSuite) {
	r.logf("Testing word: %s", suite.WordName)

	dictSnap := SnapshotDictState(r.VM)

	var pass, fail, skip, errs int
	for _, test := range suite.Tests {
		if !test.Implemented {
			skip++
			continue
		}
		switch r.RunSingleTest(suite.WordName, test) {
		case Pass:
			pass++
		case Fail:
			fail++
		case Skip:
			skip++
		case Error:
			errs++
		}
	}

	RestoreDictState(r.VM, dictSnap)

	r.Stats.Add(pass, fail, skip, errs)
	r.logf("  %s: %d passed, %d failed, %d skipped, %d errors", suite.WordName, pass, fail, skip, errs)
}

// runModule runs every suite in a module once, with no benchmarking.
func (r *Runner) runModule(m TestModule) {
	for _, suite := range m.Suites {
		r.RunTestSuite(suite)
	}
}

// RunAllTests resets r.Stats and runs every module in POST order, per
// test_runner.c's run_all_tests.
func (r *Runner) RunAllTests() TestStats {
	r.Stats = TestStats{}
	for _, m := range r.Modules {
		r.logf("=== Testing Module: %s ===", m.Name)
		if len(m.Suites) == 0 {
			r.logf("Module %s: no tests implemented yet", m.Name)
			continue
		}
		r.runModule(m)
	}
	r.logf("FINAL TEST SUMMARY: %d total, %d passed, %d failed, %d skipped, %d errors",
		r.Stats.TotalTests, r.Stats.Pass, r.Stats.Fail, r.Stats.Skip, r.Stats.Error)
	return r.Stats
}

// RunModuleTests runs (and, in benchmark mode, times) every suite in the
// named module, per test_runner.c's run_module_tests.
func (r *Runner) RunModuleTests(name string) error {
	for _, m := range r.Modules {
		if m.Name != name {
			continue
		}
		if !r.Benchmark {
			r.runModule(m)
			return nil
		}
		r.runModule(m) // warmup
		elapsed := timeModule(func() {
			for i := 0; i < r.BenchIter; i++ {
				r.runModule(m)
			}
		})
		perRun := elapsed / time.Duration(r.BenchIter)
		r.logf("  %.0f runs/sec | %v/run", float64(time.Second)/float64(perRun), perRun)
		return nil
	}
	return fmt.Errorf("testrunner: unknown module %q", name)
}

// RunWordTests searches every module's suites for one matching wordName and
// runs it, per test_runner.c's run_word_tests (there a stub; StarForth
// completes it by actually indexing the Suites data each module carries).
func (r *Runner) RunWordTests(wordName string) error {
	r.logf("Searching for tests for word: %s", wordName)
	for _, m := range r.Modules {
		for _, suite := range m.Suites {
			if suite.WordName == wordName {
				r.RunTestSuite(suite)
				return nil
			}
		}
	}
	r.logf("no tests found for word: %s", wordName)
	return fmt.Errorf("testrunner: no tests for word %q", wordName)
}
