// Package testrunner implements StarForth's word-validation harness: a
// data-driven table of per-word test cases run against a live *vm.VM,
// snapshot/restore around each case and suite so tests never pollute one
// another's stacks or dictionary, plus benchmark and break-me reporting
// modes.
//
// Grounded line-for-line on original_source/src/test_runner/test_common.c
// and test_runner.c: TestCase/WordTestSuite/TestStats/TestModule mirror the
// C structs of the same name, and Runner's methods mirror
// run_single_test/run_test_suite/run_all_tests/run_module_tests/
// run_word_tests, restyled as methods on a Runner value instead of
// functions closing over file-scope globals.
package testrunner

// TestType classifies a TestCase's intent, per test_common.h's TestType enum.
type TestType int

const (
	Normal TestType = iota
	EdgeCase
	ErrorCase
)

// TestResult is the outcome of running a single TestCase.
type TestResult int

const (
	Pass TestResult = iota
	Fail
	Skip
	Error
)

func (r TestResult) String() string {
	switch r {
	case Pass:
		return "PASS"
	case Fail:
		return "FAIL"
	case Skip:
		return "SKIP"
	case Error:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// TestCase is one scripted interaction with the VM, per test_common.h's
// TestCase struct.
type TestCase struct {
	Name        string
	Input       string // FORTH source fed to the VM exactly as typed
	Expected    string // human-readable description, for reports only
	Type        TestType
	ShouldError bool
	Implemented bool
}

// WordTestSuite groups every TestCase exercising one FORTH word, per
// test_runner.h's WordTestSuite struct.
type WordTestSuite struct {
	WordName string
	Tests    []TestCase
}

// TestStats accumulates pass/fail/skip/error counts, per test_runner.h's
// TestStats struct (global_test_stats in the original, a Runner field here).
type TestStats struct {
	TotalTests int
	Pass       int
	Fail       int
	Skip       int
	Error      int
}

// Add folds suite-level counts into the running total.
func (s *TestStats) Add(pass, fail, skip, errs int) {
	s.TotalTests += pass + fail + skip + errs
	s.Pass += pass
	s.Fail += fail
	s.Skip += skip
	s.Error += errs
}

// TestModule names one POST-ordered group of word suites, per
// test_runner.h's TestModule struct (function pointer there; data slice
// here, since Go suites are plain values rather than C callbacks).
type TestModule struct {
	Name   string
	Suites []WordTestSuite
}
